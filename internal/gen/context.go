package gen

import (
	"blockgen/internal/api/models"
	"blockgen/internal/gen/names"
	"blockgen/internal/gen/order"
	"fmt"
	"regexp"
	"strings"
)

// FunctionName is replaced with the actual helper name in bodies passed to
// ProvideFunction.
const FunctionName = "{functionName}"

// Context holds the state of one generation pass. It is created by
// Generator.Init and must not be shared between passes.
type Context struct {
	gen       *Generator
	workspace *models.Workspace
	names     *names.Names
	defs      *definitions

	// functionNames maps desired helper names to the names handed out
	functionNames map[string]string
	helperBodies  map[string]string

	err error
}

func newContext(g *Generator, ws *models.Workspace) *Context {
	n := names.New(names.DefaultReservedWords...)
	n.Reserve(g.reserved...)
	n.Reserve(ws.Options.ReservedWords...)
	n.SetVariableMap(ws)

	return &Context{
		gen:           g,
		workspace:     ws,
		names:         n,
		defs:          newDefinitions(),
		functionNames: make(map[string]string),
		helperBodies:  make(map[string]string),
	}
}

// Names returns the pass's name registry.
func (ctx *Context) Names() *names.Names {
	return ctx.names
}

func (ctx *Context) Workspace() *models.Workspace {
	return ctx.workspace
}

// Indent returns one level of indentation.
func (ctx *Context) Indent() string {
	return ctx.gen.indent
}

// Err returns the first failure recorded outside an emitter's return path.
func (ctx *Context) Err() error {
	if ctx.err != nil {
		return ctx.err
	}
	return ctx.names.Err()
}

// VariableName returns the mangled name of the variable referenced by a
// field of b.
func (ctx *Context) VariableName(b *models.Block, field string) string {
	return ctx.names.GetName(b.Field(field), names.Variable)
}

// ProcedureName returns the mangled name of a user procedure.
func (ctx *Context) ProcedureName(name string) string {
	return ctx.names.GetName(name, names.Procedure)
}

// DistinctVariable reserves a fresh temporary variable name.
func (ctx *Context) DistinctVariable(seed string) string {
	return ctx.names.GetDistinctName(seed, names.Variable)
}

// Define stores code to be emitted ahead of the program body.
func (ctx *Context) Define(key, code string) {
	ctx.defs.Set(key, code)
}

// Definition returns code previously stored under key.
func (ctx *Context) Definition(key string) (string, bool) {
	return ctx.defs.Get(key)
}

var twoSpaceIndent = regexp.MustCompile(`(?m)^(?:  )+`)

// ProvideFunction registers a helper under desiredName once per pass and
// returns the name it was given. Every FunctionName in body is replaced with
// that name.
func (ctx *Context) ProvideFunction(desiredName string, body []string) string {
	if name, ok := ctx.functionNames[desiredName]; ok {
		if ctx.gen.strictHelpers && ctx.helperBodies[desiredName] != strings.Join(body, "\n") && ctx.err == nil {
			ctx.err = fmt.Errorf("%w: %s", ErrHelperBodyMismatch, desiredName)
		}
		return name
	}

	name := ctx.names.GetDistinctName(desiredName, names.Procedure)
	ctx.functionNames[desiredName] = name
	if ctx.gen.strictHelpers {
		ctx.helperBodies[desiredName] = strings.Join(body, "\n")
	}

	code := strings.ReplaceAll(strings.Join(body, "\n"), FunctionName, name)
	if indent := ctx.Indent(); indent != "  " {
		code = twoSpaceIndent.ReplaceAllStringFunc(code, func(lead string) string {
			return strings.Repeat(indent, len(lead)/2)
		})
	}
	ctx.defs.Set(desiredName, code)
	return name
}

// BlockToCode emits b and, unless thisOnly is set, the statements chained
// after it.
func (ctx *Context) BlockToCode(b *models.Block, thisOnly bool) (Result, error) {
	if b == nil {
		return Handled(), nil
	}
	if b.Disabled {
		if thisOnly {
			return Handled(), nil
		}
		return ctx.BlockToCode(b.Next, false)
	}

	emit, ok := ctx.gen.registry.Get(b.Type)
	if !ok {
		return Result{}, blockError(b, &UnknownBlockError{Kind: b.Type})
	}
	res, err := emit(b, ctx)
	if err != nil {
		return Result{}, blockError(b, err)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, blockError(b, err)
	}

	switch res.Kind {
	case KindValue:
		if !b.OutputConnected() && b.Parent() != nil {
			return Result{}, blockError(b, ErrExpectedStatement)
		}
		code, err := ctx.scrub(b, res.Code, thisOnly)
		if err != nil {
			return Result{}, err
		}
		return Value(code, res.Order), nil
	case KindStatement:
		code, err := ctx.scrub(b, res.Code, thisOnly)
		if err != nil {
			return Result{}, err
		}
		return Statement(code), nil
	default:
		return Handled(), nil
	}
}

// ValueToCode emits the block plugged into the named value socket of b,
// grouped as needed for a slot of precedence outer. An empty socket yields
// "".
func (ctx *Context) ValueToCode(b *models.Block, input string, outer order.Order) (string, error) {
	target := b.Input(input)
	if target == nil {
		return "", nil
	}
	res, err := ctx.BlockToCode(target, false)
	if err != nil {
		return "", err
	}
	switch {
	case res.Kind == KindHandled:
		return "", nil
	case res.Kind != KindValue:
		return "", blockError(target, ErrExpectedValue)
	case res.Code == "":
		return "", nil
	}
	return order.Wrap(res.Code, outer, res.Order), nil
}

// ValueOr is ValueToCode with a fallback for an empty socket.
func (ctx *Context) ValueOr(b *models.Block, input string, outer order.Order, fallback string) (string, error) {
	code, err := ctx.ValueToCode(b, input, outer)
	if err != nil {
		return "", err
	}
	if code == "" {
		return fallback, nil
	}
	return code, nil
}

// StatementToCode emits the statements plugged into the named socket of b,
// indented one level.
func (ctx *Context) StatementToCode(b *models.Block, input string) (string, error) {
	target := b.Input(input)
	res, err := ctx.BlockToCode(target, false)
	if err != nil {
		return "", err
	}
	if res.Kind == KindValue {
		return "", blockError(target, ErrExpectedStatement)
	}
	if res.Code == "" {
		return "", nil
	}
	return PrefixLines(res.Code, ctx.Indent()), nil
}

// Finish prepends the definitions to code and clears the pass state.
func (ctx *Context) Finish(code string) string {
	out := strings.Join(ctx.defs.Values(), "\n\n") + "\n\n\n" + code
	ctx.defs.Reset()
	ctx.functionNames = make(map[string]string)
	ctx.helperBodies = make(map[string]string)
	ctx.names.Reset()
	return out
}
