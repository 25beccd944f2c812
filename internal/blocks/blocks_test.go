package blocks

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type HTTPRequestBuilder struct{}

func TestDefineNamesFromType(t *testing.T) {
	assert.Equal(t, "string_length", StringLengthBlock.Name)
	assert.Equal(t, "repeat_while", RepeatWhileBlock.Name)
	assert.Equal(t, "string_length", Define(&StringLength{}, Spec{}).Name)
	assert.Equal(t, "", Define(nil, Spec{}).Name)
}

func TestBuildRunsCallbacksInOrder(t *testing.T) {
	var calls []string
	def := Define(StringLength{}, Spec{
		Init: func(s *Shape) {
			calls = append(calls, "init")
			s.SetColour(20)
		},
		Values: []ValueInput{
			{ID: "A", Check: "Number", Init: func(in *InputShape) {
				calls = append(calls, "A")
				in.AppendField("a")
			}},
			{ID: "B"},
		},
		Statements: []StatementInput{{ID: "DO"}},
		Output:     &Output{ID: "out", Check: "Number"},
	})

	shape := def.Build()
	assert.Equal(t, []string{"init", "A"}, calls)
	require.Len(t, shape.Inputs, 3)
	assert.Equal(t, InputShape{Name: "A", Kind: InputKindValue, Check: "Number", Labels: []string{"a"}}, *shape.Inputs[0])
	assert.Equal(t, "B", shape.Inputs[1].Name)
	assert.Equal(t, InputKindStatement, shape.Inputs[2].Kind)
	require.NotNil(t, shape.Output)
	assert.Equal(t, "Number", shape.Output.Check)
	assert.Equal(t, 20, shape.Colour)

	// a fresh shape every time
	again := def.Build()
	assert.Len(t, again.Inputs, 3)
}

func TestBuildKeepsOutputFromInit(t *testing.T) {
	def := Define(StringLength{}, Spec{
		Init:   func(s *Shape) { s.SetOutput("String") },
		Output: &Output{ID: "out", Check: "Number"},
	})
	assert.Equal(t, "String", def.Build().Output.Check)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(StringLengthBlock))
	require.NoError(t, r.Register(RepeatWhileBlock))
	require.NoError(t, r.Register(Define(HTTPRequestBuilder{}, Spec{})))

	err := r.Register(StringLengthBlock)
	assert.True(t, errors.Is(err, ErrDuplicateDefinition))
	assert.ErrorIs(t, r.Register(Definition{}), ErrDuplicateDefinition)

	var got []string
	for _, def := range r.Definitions() {
		got = append(got, def.Name)
	}
	assert.Equal(t, []string{"http_request_builder", "repeat_while", "string_length"}, got)

	def, ok := r.Lookup("string_length")
	require.True(t, ok)
	assert.Equal(t, "String", def.Build().Inputs[0].Check)

	assert.True(t, r.IsStatementInput("repeat_while", "BODY"))
	assert.False(t, r.IsStatementInput("repeat_while", "COND"))
	assert.False(t, r.IsStatementInput("unknown", "BODY"))
}

func TestClassifyInput(t *testing.T) {
	cases := []struct {
		kind, input      string
		statement, known bool
	}{
		{"repeat_while", "BODY", true, true},
		{"repeat_while", "COND", false, true},
		{"logic_ternary", "ELSE", false, true},
		{"controls_ifelse", "ELSE", true, true},
		{"controls_ifelse", "IF0", false, true},
		{"controls_for", "DO", true, true},
		{"procedures_defreturn", "STACK", true, true},
		{"procedures_defreturn", "RETURN", false, true},
		{"controls_if", "ELSE", false, false},
		{"unknown", "DO", false, false},
	}
	for _, tc := range cases {
		statement, known := DefaultRegistry.ClassifyInput(tc.kind, tc.input)
		assert.Equal(t, tc.statement, statement, tc.kind+"."+tc.input)
		assert.Equal(t, tc.known, known, tc.kind+"."+tc.input)
	}
}

func TestToolboxXML(t *testing.T) {
	out, err := ToolboxXML([]Category{
		{Name: "Control", Items: []string{"controls_if"}, Sub: []Category{{Name: "More", Items: []string{"logic_compare"}}}},
		{Name: "Variables", Custom: "VARIABLE", Items: []string{"ignored"}},
	})
	require.NoError(t, err)
	assert.Equal(t, `<xml>`+
		`<category name="Control"><block type="controls_if"></block>`+
		`<category name="More"><block type="logic_compare"></block></category></category>`+
		`<category name="Variables" custom="VARIABLE"></category>`+
		`</xml>`, out)
}

func TestDefaultToolboxListsCustomBlocks(t *testing.T) {
	categories := DefaultToolbox(DefaultRegistry)
	last := categories[len(categories)-1]
	assert.Equal(t, "Custom", last.Name)
	assert.Equal(t, []string{"repeat_while", "string_length"}, last.Items)
}
