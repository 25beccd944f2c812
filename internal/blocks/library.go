package blocks

// StringLength counts the letters of a text.
type StringLength struct{}

var StringLengthBlock = Define(StringLength{}, Spec{
	Init: func(s *Shape) {
		s.SetColour(160).
			SetTooltip("Returns number of letters in the provided text.").
			SetHelpURL("http://www.w3schools.com/jsref/jsref_length_string.asp")
	},
	Values: []ValueInput{
		{ID: "VALUE", Check: "String", Init: func(in *InputShape) {
			in.AppendField("length of")
		}},
	},
	Output: &Output{ID: "output", Check: "Number"},
})

// RepeatWhile runs its BODY at least once, then again while COND holds.
type RepeatWhile struct{}

var RepeatWhileBlock = Define(RepeatWhile{}, Spec{
	Init: func(s *Shape) {
		s.SetStatement().
			SetColour(120).
			SetTooltip("Run the body, then repeat while the condition is true.")
	},
	Values: []ValueInput{
		{ID: "COND", Check: "Boolean", Init: func(in *InputShape) {
			in.AppendField("while")
		}},
	},
	Statements: []StatementInput{
		{ID: "BODY"},
	},
})
