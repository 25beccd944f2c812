package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleWorkspace = `{
	"blocks": {"languageVersion": 0, "blocks": [
		{
			"type": "controls_if", "id": "if1", "x": 10, "y": 20,
			"extraState": {"elseIfCount": 1, "hasElse": true},
			"icons": {"comment": {"text": "check it"}},
			"inputs": {
				"IF0": {"block": {"type": "logic_boolean", "id": "b1", "fields": {"BOOL": "TRUE"}}},
				"DO0": {"block": {"type": "variables_set", "id": "s1",
					"fields": {"VAR": {"id": "v1"}},
					"inputs": {"VALUE": {"shadow": {"type": "math_number", "id": "n1", "fields": {"NUM": 4.5}}}},
					"next": {"block": {"type": "text_print", "id": "p1", "enabled": false}}
				}},
				"IF1": {"block": null},
				"ELSE": {}
			}
		},
		{"type": "procedures_defnoreturn", "id": "d1",
			"fields": {"NAME": "go"},
			"extraState": {"params": [{"name": "a", "id": "v2"}, "b"]}}
	]},
	"variables": [{"name": "total", "id": "v1"}, {"name": "a", "id": "v2"}, {"name": "b", "id": "v3"}],
	"options": {"oneBasedIndex": true}
}`

func TestDecodeWorkspace(t *testing.T) {
	ws, err := DecodeWorkspace([]byte(sampleWorkspace))
	require.NoError(t, err)
	require.Len(t, ws.TopBlocks(), 2)
	assert.True(t, ws.Options.OneBasedIndex)

	top := ws.TopBlocks()[0]
	assert.Equal(t, "controls_if", top.Type)
	assert.Equal(t, "check it", top.Comment)
	assert.Equal(t, 10.0, top.X)
	assert.Equal(t, ExtraState{ElseIfCount: 1, HasElse: true}, top.Extra)
	assert.True(t, top.OneBasedIndex())

	var names []string
	var kinds []InputKind
	for _, in := range top.Inputs {
		names = append(names, in.Name)
		kinds = append(kinds, in.Kind)
	}
	assert.Equal(t, []string{"IF0", "DO0", "IF1", "ELSE"}, names)
	assert.Equal(t, []InputKind{InputValue, InputStatement, InputValue, InputStatement}, kinds)
	assert.Nil(t, top.Input("IF1"))
	assert.NotNil(t, top.InputNamed("ELSE"))

	cond := top.Input("IF0")
	assert.True(t, cond.OutputConnected())
	assert.Same(t, top, cond.Parent())

	set := top.Input("DO0")
	assert.False(t, set.OutputConnected())
	assert.Equal(t, Field{Name: "VAR", Value: "v1", Variable: true}, set.Fields[0])
	assert.Equal(t, "4.5", set.Input("VALUE").Field("NUM"))
	require.NotNil(t, set.Next)
	assert.True(t, set.Next.Disabled)
	assert.Same(t, ws, set.Next.Workspace())

	def := ws.TopBlocks()[1]
	assert.Equal(t, []Param{{Name: "a", ID: "v2"}, {Name: "b"}}, def.Extra.Params)
	assert.Equal(t, []string{"a", "b"}, def.Extra.ParamNames())
}

type customStatements map[string]bool

func (c customStatements) ClassifyInput(kind, input string) (bool, bool) {
	statement, ok := c[kind+"."+input]
	return statement, ok
}

func TestDecodeWorkspace_InputClassifier(t *testing.T) {
	data := `{"blocks": {"blocks": [{"type": "repeat_while", "inputs": {
		"COND": {"block": {"type": "logic_boolean", "fields": {"BOOL": false}}},
		"BODY": {"block": {"type": "text_print"}}
	}}]}}`

	ws, err := DecodeWorkspace([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, InputValue, ws.TopBlocks()[0].InputNamed("BODY").Kind)

	ws, err = DecodeWorkspace([]byte(data), WithInputClassifier(customStatements{"repeat_while.BODY": true}))
	require.NoError(t, err)
	top := ws.TopBlocks()[0]
	assert.Equal(t, InputStatement, top.InputNamed("BODY").Kind)
	assert.Equal(t, InputValue, top.InputNamed("COND").Kind)
	assert.Equal(t, "FALSE", top.Input("COND").Field("BOOL"))
}

func TestDecodeWorkspace_LegacyMutation(t *testing.T) {
	data := `{"blocks": {"blocks": [
		{"type": "lists_create_with", "extraState": "<mutation items=\"3\"></mutation>"},
		{"type": "procedures_callreturn", "extraState": "<mutation name=\"go\"><arg name=\"x\" varid=\"v9\"></arg></mutation>"},
		{"type": "procedures_ifreturn", "extraState": "<mutation value=\"1\"></mutation>"},
		{"type": "controls_if", "extraState": "<mutation elseif=\"2\" else=\"1\"></mutation>"}
	]}}`
	ws, err := DecodeWorkspace([]byte(data))
	require.NoError(t, err)
	top := ws.TopBlocks()

	assert.Equal(t, 3, top[0].Extra.ItemCount)
	assert.Equal(t, "go", top[1].Extra.Name)
	assert.Equal(t, []Param{{Name: "x", ID: "v9"}}, top[1].Extra.Params)
	assert.True(t, top[2].Extra.HasReturnValue)
	assert.Equal(t, ExtraState{ElseIfCount: 2, HasElse: true}, top[3].Extra)
}

func TestDecodeWorkspace_Errors(t *testing.T) {
	_, err := DecodeWorkspace([]byte(`{"blocks": `))
	assert.Error(t, err)

	_, err = DecodeWorkspace([]byte(`{"blocks": {"blocks": [{"id": "x"}]}}`))
	assert.ErrorIs(t, err, ErrEmptyBlockType)

	_, err = DecodeWorkspace([]byte(`{"blocks": {"blocks": [{"type": "text", "fields": []}]}}`))
	assert.Error(t, err)

	_, err = DecodeWorkspace([]byte(`{"blocks": {"blocks": [{"type": "text", "extraState": "<mutation"}]}}`))
	assert.Error(t, err)
}

func TestIsStatementInputName(t *testing.T) {
	for _, name := range []string{"DO", "DO0", "DO12", "ELSE", "STACK"} {
		assert.True(t, IsStatementInputName("controls_if", name), name)
	}
	for _, name := range []string{"IF0", "DONE", "VALUE", "ELSEIF"} {
		assert.False(t, IsStatementInputName("controls_if", name), name)
	}
	assert.False(t, IsStatementInputName("logic_ternary", "ELSE"))
	assert.True(t, IsStatementInputName("controls_ifelse", "ELSE"))
}

func TestDecodeWorkspace_TernaryElseIsValue(t *testing.T) {
	data := `{"blocks": {"blocks": [{"type": "text_print", "inputs": {"TEXT": {"block": {
		"type": "logic_ternary", "inputs": {
			"IF": {"block": {"type": "logic_boolean", "fields": {"BOOL": "TRUE"}}},
			"THEN": {"block": {"type": "text", "fields": {"TEXT": "a"}}},
			"ELSE": {"block": {"type": "text", "fields": {"TEXT": "b"}}}
		}}}}}]}}`

	ws, err := DecodeWorkspace([]byte(data))
	require.NoError(t, err)
	ternary := ws.TopBlocks()[0].Input("TEXT")
	require.NotNil(t, ternary)
	assert.Equal(t, InputValue, ternary.InputNamed("ELSE").Kind)
	assert.Equal(t, "b", ternary.Input("ELSE").Field("TEXT"))
	assert.True(t, ternary.Input("ELSE").OutputConnected())
}

func TestDecodeWorkspace_ClassifierOverridesNames(t *testing.T) {
	data := `{"blocks": {"blocks": [{"type": "odd_block", "inputs": {
		"DO": {"block": {"type": "text", "fields": {"TEXT": "v"}}}
	}}]}}`

	ws, err := DecodeWorkspace([]byte(data), WithInputClassifier(customStatements{"odd_block.DO": false}))
	require.NoError(t, err)
	assert.Equal(t, InputValue, ws.TopBlocks()[0].InputNamed("DO").Kind)
}
