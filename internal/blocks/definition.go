// Package blocks describes custom block kinds with explicit configuration:
// the sockets a block has, what it outputs and how it looks in the editor.
package blocks

import (
	"reflect"

	"github.com/iancoleman/strcase"
)

// Spec configures a custom block. Init runs first, then every value input
// and statement input is appended in declaration order.
type Spec struct {
	Init       func(*Shape)
	Values     []ValueInput
	Statements []StatementInput
	Output     *Output
}

type ValueInput struct {
	ID    string
	Check string
	Init  func(*InputShape)
}

type StatementInput struct {
	ID    string
	Check string
}

type Output struct {
	ID    string
	Check string
}

// Definition is a named block configuration.
type Definition struct {
	Name string
	spec Spec
}

// Define names a definition after the Go type of construct, in snake case:
// StringLength{} becomes "string_length".
func Define(construct any, spec Spec) Definition {
	t := reflect.TypeOf(construct)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := ""
	if t != nil {
		name = strcase.ToSnake(t.Name())
	}
	return Definition{Name: name, spec: spec}
}

// Statements returns the ids of the statement sockets.
func (slf Definition) Statements() []string {
	out := make([]string, len(slf.spec.Statements))
	for i, s := range slf.spec.Statements {
		out[i] = s.ID
	}
	return out
}

// Build runs the configuration against a fresh shape.
func (slf Definition) Build() Shape {
	shape := Shape{Type: slf.Name}
	if slf.spec.Init != nil {
		slf.spec.Init(&shape)
	}
	for _, v := range slf.spec.Values {
		in := shape.appendInput(v.ID, InputKindValue)
		in.SetCheck(v.Check)
		if v.Init != nil {
			v.Init(in)
		}
	}
	for _, s := range slf.spec.Statements {
		shape.appendInput(s.ID, InputKindStatement).SetCheck(s.Check)
	}
	if o := slf.spec.Output; o != nil && shape.Output == nil {
		shape.SetOutput(o.Check)
	}
	return shape
}
