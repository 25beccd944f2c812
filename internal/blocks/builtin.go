package blocks

import "slices"

// builtinStatements lists the statement sockets of the standard kinds; kinds
// with value sockets only map to nil. controls_if is left out: its DO
// sockets grow with the else-if count, so callers fall back to socket names.
var builtinStatements = map[string][]string{
	"controls_ifelse":          {"DO0", "ELSE"},
	"logic_compare":            nil,
	"logic_operation":          nil,
	"logic_negate":             nil,
	"logic_boolean":            nil,
	"logic_null":               nil,
	"logic_ternary":            nil,
	"controls_repeat_ext":      {"DO"},
	"controls_repeat":          {"DO"},
	"controls_whileUntil":      {"DO"},
	"controls_for":             {"DO"},
	"controls_forEach":         {"DO"},
	"controls_flow_statements": nil,
	"math_number":              nil,
	"math_arithmetic":          nil,
	"math_single":              nil,
	"math_round":               nil,
	"math_trig":                nil,
	"math_constant":            nil,
	"math_number_property":     nil,
	"math_change":              nil,
	"math_on_list":             nil,
	"math_modulo":              nil,
	"math_constrain":           nil,
	"math_random_int":          nil,
	"math_random_float":        nil,
	"math_atan2":               nil,
	"lists_create_empty":       nil,
	"lists_create_with":        nil,
	"lists_repeat":             nil,
	"lists_length":             nil,
	"lists_isEmpty":            nil,
	"lists_indexOf":            nil,
	"lists_getIndex":           nil,
	"lists_setIndex":           nil,
	"lists_getSublist":         nil,
	"lists_sort":               nil,
	"lists_split":              nil,
	"lists_reverse":            nil,
	"text":                     nil,
	"text_multiline":           nil,
	"text_join":                nil,
	"text_append":              nil,
	"text_length":              nil,
	"text_isEmpty":             nil,
	"text_indexOf":             nil,
	"text_charAt":              nil,
	"text_getSubstring":        nil,
	"text_changeCase":          nil,
	"text_trim":                nil,
	"text_print":               nil,
	"text_prompt_ext":          nil,
	"text_prompt":              nil,
	"text_count":               nil,
	"text_replace":             nil,
	"text_reverse":             nil,
	"procedures_defreturn":     {"STACK"},
	"procedures_defnoreturn":   {"STACK"},
	"procedures_callreturn":    nil,
	"procedures_callnoreturn":  nil,
	"procedures_ifreturn":      nil,
	"variables_get":            nil,
	"variables_set":            nil,
	"variables_get_dynamic":    nil,
	"variables_set_dynamic":    nil,
	"colour_picker":            nil,
	"colour_random":            nil,
	"colour_rgb":               nil,
	"colour_blend":             nil,
}

func builtinStatementInput(kind, input string) (statement, known bool) {
	sockets, ok := builtinStatements[kind]
	if !ok {
		return false, false
	}
	return slices.Contains(sockets, input), true
}
