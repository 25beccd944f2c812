package gen

import (
	"blockgen/internal/api/models"
	"blockgen/internal/gen/order"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emitCase struct {
	name  string
	block *models.Block
	code  string
	order order.Order
	stmt  bool
}

func testWorkspace(oneBased bool) *models.Workspace {
	ws := models.NewWorkspace()
	ws.Options.OneBasedIndex = oneBased
	for _, name := range []string{"list", "x", "s", "i", "n", "done", "a", "b"} {
		ws.CreateVariable(name, name+"-id")
	}
	return ws
}

func v(name string) *models.Block {
	return getVar(name + "-id")
}

func block(kind string, fields ...string) *models.Block {
	b := models.NewBlock(kind)
	for i := 0; i+1 < len(fields); i += 2 {
		b.SetField(fields[i], fields[i+1])
	}
	return b
}

func runEmitCases(t *testing.T, oneBased bool, cases []emitCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, _ := emit(t, testWorkspace(oneBased), tc.block)
			if tc.stmt {
				assert.Equal(t, Statement(tc.code), res)
				return
			}
			assert.Equal(t, Value(tc.code, tc.order), res)
		})
	}
}

// ============ Logic ============

func TestEmit_Logic(t *testing.T) {
	runEmitCases(t, false, []emitCase{
		{"compare nested", block("logic_compare", "OP", "EQ").SetValue("A", num("1")).
			SetValue("B", block("logic_compare", "OP", "LT").SetValue("A", num("1")).SetValue("B", num("2"))),
			"1 == 1 < 2", order.Equality, false},
		{"compare defaults", block("logic_compare", "OP", "GTE"), "0 >= 0", order.Relational, false},
		{"or with one operand", block("logic_operation", "OP", "OR").SetValue("A", boolean(true)),
			"true || false", order.LogicalOr, false},
		{"and with one operand", block("logic_operation", "OP", "AND").SetValue("B", boolean(false)),
			"true && false", order.LogicalAnd, false},
		{"or inside and", block("logic_operation", "OP", "AND").
			SetValue("A", block("logic_operation", "OP", "OR").SetValue("A", boolean(true)).SetValue("B", boolean(false))).
			SetValue("B", boolean(true)),
			"(true || false) && true", order.LogicalAnd, false},
		{"negate compare", block("logic_negate").SetValue("BOOL",
			block("logic_compare", "OP", "EQ").SetValue("A", num("1")).SetValue("B", num("2"))),
			"!(1 == 2)", order.LogicalNot, false},
		{"negate empty", block("logic_negate"), "!true", order.LogicalNot, false},
		{"ternary", block("logic_ternary").SetValue("IF", boolean(true)).SetValue("THEN", num("1")).SetValue("ELSE", num("2")),
			"true ? 1 : 2", order.Conditional, false},
		{"null", block("logic_null"), "null", order.Atomic, false},
		{"if elseif else", block("controls_if").WithExtra(models.ExtraState{ElseIfCount: 1, HasElse: true}).
			SetValue("IF0", boolean(true)).SetStatement("DO0", alert("a")).
			SetValue("IF1", boolean(false)).
			SetStatement("ELSE", alert("c")),
			"if (true) {\n  window.alert('a');\n} else if (false) {\n} else {\n  window.alert('c');\n}\n", 0, true},
		{"ifelse kind", block("controls_ifelse").SetValue("IF0", v("done")),
			"if (done) {\n} else {\n}\n", 0, true},
	})
}

// ============ Loops ============

func TestEmit_Loops(t *testing.T) {
	runEmitCases(t, false, []emitCase{
		{"repeat literal", block("controls_repeat_ext").SetValue("TIMES", num("10")).SetStatement("DO", alert("x")),
			"for (var count = 0; count < 10; count++) {\n  window.alert('x');\n}\n", 0, true},
		{"repeat field", block("controls_repeat", "TIMES", "3"),
			"for (var count = 0; count < 3; count++) {\n}\n", 0, true},
		{"repeat expression", block("controls_repeat_ext").SetValue("TIMES", arithmetic("ADD", v("n"), num("1"))),
			"var repeat_end = n + 1;\nfor (var count = 0; count < repeat_end; count++) {\n}\n", 0, true},
		{"until", block("controls_whileUntil", "MODE", "UNTIL").SetValue("BOOL", v("done")),
			"while (!done) {\n}\n", 0, true},
		{"for up", block("controls_for").SetVariable("VAR", "i-id").
			SetValue("FROM", num("1")).SetValue("TO", num("10")).SetValue("BY", num("1")),
			"for (i = 1; i <= 10; i++) {\n}\n", 0, true},
		{"for down", block("controls_for").SetVariable("VAR", "i-id").
			SetValue("FROM", num("10")).SetValue("TO", num("1")).SetValue("BY", num("2")),
			"for (i = 10; i >= 1; i -= 2) {\n}\n", 0, true},
		{"for dynamic", block("controls_for").SetVariable("VAR", "i-id").
			SetValue("FROM", num("1")).SetValue("TO", v("n")).SetValue("BY", num("1")),
			"var i_inc = 1;\nif (1 > n) {\n  i_inc = -i_inc;\n}\n" +
				"for (i = 1; i_inc >= 0 ? i <= n : i >= n; i += i_inc) {\n}\n", 0, true},
		{"for each", block("controls_forEach").SetVariable("VAR", "i-id").SetValue("LIST", v("list")),
			"for (var i_index in list) {\n  i = list[i_index];\n}\n", 0, true},
		{"for each expression", block("controls_forEach").SetVariable("VAR", "i-id").
			SetValue("LIST", block("lists_reverse").SetValue("LIST", v("list"))),
			"var i_list = list.slice().reverse();\nfor (var i_index in i_list) {\n  i = i_list[i_index];\n}\n", 0, true},
		{"break", block("controls_flow_statements", "FLOW", "BREAK"), "break;\n", 0, true},
		{"continue", block("controls_flow_statements", "FLOW", "CONTINUE"), "continue;\n", 0, true},
	})
}

// ============ Math ============

func TestEmit_Math(t *testing.T) {
	runEmitCases(t, false, []emitCase{
		{"number", num("3.50"), "3.5", order.Atomic, false},
		{"empty number", num(""), "0", order.Atomic, false},
		{"blank number", num("  "), "0", order.Atomic, false},
		{"negative number", num("-2"), "-2", order.UnaryNegation, false},
		{"grouped sum", arithmetic("MULTIPLY", arithmetic("ADD", num("1"), num("2")), num("3")),
			"(1 + 2) * 3", order.Multiplication, false},
		{"right subtraction", arithmetic("MINUS", num("5"), arithmetic("MINUS", num("3"), num("1"))),
			"5 - (3 - 1)", order.Subtraction, false},
		{"chained addition", arithmetic("ADD", arithmetic("ADD", num("1"), num("2")), num("3")),
			"1 + 2 + 3", order.Addition, false},
		{"division of product", arithmetic("DIVIDE", num("1"), arithmetic("MULTIPLY", num("2"), num("3"))),
			"1 / (2 * 3)", order.Division, false},
		{"power", arithmetic("POWER", num("2"), num("3")), "Math.pow(2, 3)", order.FunctionCall, false},
		{"root", block("math_single", "OP", "ROOT").SetValue("NUM", num("4")), "Math.sqrt(4)", order.FunctionCall, false},
		{"negate negative", block("math_single", "OP", "NEG").SetValue("NUM", num("-5")), "-(-5)", order.UnaryNegation, false},
		{"sin", block("math_trig", "OP", "SIN").SetValue("NUM", num("90")),
			"Math.sin(90 / 180 * Math.PI)", order.FunctionCall, false},
		{"log10", block("math_single", "OP", "LOG10").SetValue("NUM", num("100")),
			"Math.log(100) / Math.log(10)", order.Division, false},
		{"round", block("math_round", "OP", "ROUNDUP").SetValue("NUM", num("1.5")), "Math.ceil(1.5)", order.FunctionCall, false},
		{"constant", block("math_constant", "CONSTANT", "PI"), "Math.PI", order.Member, false},
		{"even", block("math_number_property", "PROPERTY", "EVEN").SetValue("NUMBER_TO_CHECK", num("4")),
			"4 % 2 == 0", order.Equality, false},
		{"divisible", block("math_number_property", "PROPERTY", "DIVISIBLE_BY").
			SetValue("NUMBER_TO_CHECK", num("10")).SetValue("DIVISOR", num("5")),
			"10 % 5 == 0", order.Equality, false},
		{"prime", block("math_number_property", "PROPERTY", "PRIME").SetValue("NUMBER_TO_CHECK", num("7")),
			"mathIsPrime(7)", order.FunctionCall, false},
		{"modulo", block("math_modulo").SetValue("DIVIDEND", num("7")).SetValue("DIVISOR", num("3")),
			"7 % 3", order.Modulus, false},
		{"constrain", block("math_constrain").SetValue("VALUE", num("5")).SetValue("LOW", num("1")).SetValue("HIGH", num("10")),
			"Math.min(Math.max(5, 1), 10)", order.FunctionCall, false},
		{"sum", block("math_on_list", "OP", "SUM").SetValue("LIST", v("list")),
			"mathSum(list)", order.FunctionCall, false},
		{"min", block("math_on_list", "OP", "MIN").SetValue("LIST", v("list")),
			"mathMin(list)", order.FunctionCall, false},
		{"max", block("math_on_list", "OP", "MAX").SetValue("LIST", v("list")),
			"mathMax(list)", order.FunctionCall, false},
		{"average", block("math_on_list", "OP", "AVERAGE").SetValue("LIST", v("list")),
			"mathMean(list)", order.FunctionCall, false},
		{"random int", block("math_random_int").SetValue("FROM", num("1")).SetValue("TO", num("6")),
			"mathRandomInt(1, 6)", order.FunctionCall, false},
		{"random float", block("math_random_float"), "Math.random()", order.FunctionCall, false},
		{"atan2", block("math_atan2").SetValue("X", num("1")).SetValue("Y", num("2")),
			"Math.atan2(2, 1) / Math.PI * 180", order.Division, false},
		{"change", block("math_change").SetVariable("VAR", "x-id").SetValue("DELTA", num("1")),
			"x = (typeof x == 'number' ? x : 0) + 1;\n", 0, true},
	})
}

// ============ Lists ============

func getIndex(mode, where string, at *models.Block) *models.Block {
	b := block("lists_getIndex", "MODE", mode, "WHERE", where).SetValue("VALUE", v("list"))
	if at != nil {
		b.SetValue("AT", at)
	}
	return b
}

func setIndex(mode, where string, list, at *models.Block) *models.Block {
	b := block("lists_setIndex", "MODE", mode, "WHERE", where).SetValue("LIST", list).SetValue("TO", num("5"))
	if at != nil {
		b.SetValue("AT", at)
	}
	return b
}

func TestEmit_Lists(t *testing.T) {
	runEmitCases(t, false, []emitCase{
		{"empty", block("lists_create_empty"), "[]", order.Atomic, false},
		{"create with gap", block("lists_create_with").SetValue("ADD0", num("1")).SetValue("ADD1", nil).SetValue("ADD2", num("3")),
			"[1, null, 3]", order.Atomic, false},
		{"create from item count", block("lists_create_with").WithExtra(models.ExtraState{ItemCount: 2}),
			"[null, null]", order.Atomic, false},
		{"repeat", block("lists_repeat").SetValue("ITEM", str("x")).SetValue("NUM", num("3")),
			"listsRepeat('x', 3)", order.FunctionCall, false},
		{"length", block("lists_length").SetValue("VALUE", v("list")), "list.length", order.Member, false},
		{"is empty", block("lists_isEmpty").SetValue("VALUE", v("list")), "!list.length", order.LogicalNot, false},
		{"index of", block("lists_indexOf", "END", "FIRST").SetValue("FIND", str("a")).SetValue("VALUE", v("list")),
			"list.indexOf('a')", order.FunctionCall, false},
		{"last index of", block("lists_indexOf", "END", "LAST").SetValue("FIND", str("a")).SetValue("VALUE", v("list")),
			"list.lastIndexOf('a')", order.FunctionCall, false},
		{"get from start", getIndex("GET", "FROM_START", num("3")), "list[3]", order.Member, false},
		{"get from start dynamic", getIndex("GET", "FROM_START", v("x")), "list[x]", order.Member, false},
		{"get from end", getIndex("GET", "FROM_END", num("1")), "list.slice(-2)[0]", order.FunctionCall, false},
		{"get from end dynamic", getIndex("GET", "FROM_END", v("x")), "list.slice(-(x + 1))[0]", order.FunctionCall, false},
		{"get remove first", getIndex("GET_REMOVE", "FIRST", nil), "list.shift()", order.Member, false},
		{"get last", getIndex("GET", "LAST", nil), "list.slice(-1)[0]", order.Member, false},
		{"remove last", getIndex("REMOVE", "LAST", nil), "list.pop();\n", 0, true},
		{"remove from end", getIndex("REMOVE", "FROM_END", num("1")), "list.splice(-2, 1);\n", 0, true},
		{"get random", getIndex("GET", "RANDOM", nil), "listsGetRandomItem(list, false)", order.FunctionCall, false},
		{"remove random", getIndex("REMOVE", "RANDOM", nil), "listsGetRandomItem(list, true);\n", 0, true},
		{"set first", setIndex("SET", "FIRST", v("list"), nil), "list[0] = 5;\n", 0, true},
		{"set last cached", setIndex("SET", "LAST", block("lists_create_empty"), nil),
			"var tmpList = [];\ntmpList[tmpList.length - 1] = 5;\n", 0, true},
		{"insert last", setIndex("INSERT", "LAST", v("list"), nil), "list.push(5);\n", 0, true},
		{"insert from end", setIndex("INSERT", "FROM_END", v("list"), num("1")),
			"list.splice(list.length - 2, 0, 5);\n", 0, true},
		{"set random", setIndex("SET", "RANDOM", v("list"), nil),
			"var tmpX = Math.floor(Math.random() * list.length);\nlist[tmpX] = 5;\n", 0, true},
		{"sublist slice", block("lists_getSublist", "WHERE1", "FROM_START", "WHERE2", "FROM_END").
			SetValue("LIST", v("list")).SetValue("AT1", num("1")).SetValue("AT2", num("1")),
			"list.slice(1, list.length - 1)", order.FunctionCall, false},
		{"sublist copy", block("lists_getSublist", "WHERE1", "FIRST", "WHERE2", "LAST").SetValue("LIST", v("list")),
			"list.slice(0)", order.FunctionCall, false},
		{"sublist helper", block("lists_getSublist", "WHERE1", "FROM_END", "WHERE2", "LAST").
			SetValue("LIST", block("lists_reverse").SetValue("LIST", v("list"))).SetValue("AT1", num("2")),
			"subsequenceFromEndLast(list.slice().reverse(), 2)", order.FunctionCall, false},
		{"sort", block("lists_sort", "TYPE", "NUMERIC", "DIRECTION", "1").SetValue("LIST", v("list")),
			`list.slice().sort(listsGetSortCompare("NUMERIC", 1))`, order.FunctionCall, false},
		{"sort descending", block("lists_sort", "TYPE", "TEXT", "DIRECTION", "-1").SetValue("LIST", v("list")),
			`list.slice().sort(listsGetSortCompare("TEXT", -1))`, order.FunctionCall, false},
		{"split", block("lists_split", "MODE", "SPLIT").SetValue("INPUT", str("a,b")).SetValue("DELIM", str(",")),
			"'a,b'.split(',')", order.FunctionCall, false},
		{"join default", block("lists_split", "MODE", "JOIN").SetValue("DELIM", str(",")),
			"[].join(',')", order.FunctionCall, false},
		{"reverse", block("lists_reverse").SetValue("LIST", v("list")), "list.slice().reverse()", order.FunctionCall, false},
	})
}

func TestEmit_SublistHelperBody(t *testing.T) {
	b := block("lists_getSublist", "WHERE1", "FROM_END", "WHERE2", "LAST").
		SetValue("LIST", block("lists_reverse").SetValue("LIST", v("list"))).SetValue("AT1", num("2"))
	_, ctx := emit(t, testWorkspace(false), b)

	body, ok := ctx.Definition("subsequenceFromEndLast")
	require.True(t, ok)
	assert.Equal(t, "function subsequenceFromEndLast(sequence, at1) {\n"+
		"  var start = sequence.length - 1 - at1;\n"+
		"  var end = sequence.length - 1 + 1;\n"+
		"  return sequence.slice(start, end);\n"+
		"}", body)
}

// ============ Index adjustment ============

func TestEmit_OneBasedIndex(t *testing.T) {
	runEmitCases(t, true, []emitCase{
		{"literal", getIndex("GET", "FROM_START", num("3")), "list[2]", order.Member, false},
		{"dynamic", getIndex("GET", "FROM_START", v("x")), "list[x - 1]", order.Member, false},
		{"missing defaults to first", getIndex("GET", "FROM_START", nil), "list[0]", order.Member, false},
		{"from end literal", getIndex("GET", "FROM_END", num("1")), "list.slice(-1)[0]", order.FunctionCall, false},
		{"from end dynamic", getIndex("GET", "FROM_END", v("x")), "list.slice(-x)[0]", order.FunctionCall, false},
		{"index of", block("lists_indexOf", "END", "FIRST").SetValue("FIND", str("a")).SetValue("VALUE", v("list")),
			"list.indexOf('a') + 1", order.Addition, false},
		{"sublist", block("lists_getSublist", "WHERE1", "FROM_START", "WHERE2", "FROM_START").
			SetValue("LIST", v("list")).SetValue("AT1", num("2")).SetValue("AT2", num("3")),
			"list.slice(1, 3)", order.FunctionCall, false},
		{"char at dynamic", block("text_charAt", "WHERE", "FROM_START").SetValue("VALUE", v("s")).SetValue("AT", v("x")),
			"s.charAt(x - 1)", order.FunctionCall, false},
	})
}

func TestGetAdjusted_GroupsForOuterOrder(t *testing.T) {
	b := block("lists_getIndex").SetValue("AT", arithmetic("ADD", v("x"), num("1")))
	ws := testWorkspace(false)
	ws.AddTopBlock(b)
	ctx, err := NewGenerator().Init(ws)
	require.NoError(t, err)

	at, err := ctx.GetAdjusted(b, "AT", 0, false, order.None)
	require.NoError(t, err)
	assert.Equal(t, "x + 1", at)

	at, err = ctx.GetAdjusted(b, "AT", 2, false, order.Multiplication)
	require.NoError(t, err)
	assert.Equal(t, "(x + 1 + 2)", at)

	at, err = ctx.GetAdjusted(b, "AT", -1, false, order.None)
	require.NoError(t, err)
	assert.Equal(t, "(x + 1) - 1", at)

	at, err = ctx.GetAdjusted(b, "AT", 0, true, order.None)
	require.NoError(t, err)
	assert.Equal(t, "-(x + 1)", at)

	at, err = ctx.GetAdjusted(b, "MISSING", 2, true, order.None)
	require.NoError(t, err)
	assert.Equal(t, "-2", at)
}

// ============ Text ============

func TestEmit_Text(t *testing.T) {
	runEmitCases(t, false, []emitCase{
		{"quoted", str("it's"), `'it\'s'`, order.Atomic, false},
		{"multiline", block("text_multiline", "TEXT", "a\nb"), "('a' + '\\n' +\n'b')", order.Atomic, false},
		{"join none", block("text_join"), "''", order.Atomic, false},
		{"join one", block("text_join").SetValue("ADD0", num("5")), "String(5)", order.FunctionCall, false},
		{"join two", block("text_join").SetValue("ADD0", str("a")).SetValue("ADD1", v("x")),
			"'a' + String(x)", order.Addition, false},
		{"join many", block("text_join").SetValue("ADD0", str("a")).SetValue("ADD1", v("x")).SetValue("ADD2", str("c")),
			"['a',x,'c'].join('')", order.FunctionCall, false},
		{"append", block("text_append").SetVariable("VAR", "x-id").SetValue("TEXT", str("a")), "x += 'a';\n", 0, true},
		{"length", block("text_length").SetValue("VALUE", str("abc")), "'abc'.length", order.Member, false},
		{"is empty", block("text_isEmpty").SetValue("VALUE", v("s")), "!s.length", order.LogicalNot, false},
		{"index of", block("text_indexOf", "END", "FIRST").SetValue("FIND", str("a")).SetValue("VALUE", v("s")),
			"s.indexOf('a')", order.FunctionCall, false},
		{"char first", block("text_charAt", "WHERE", "FIRST").SetValue("VALUE", v("s")), "s.charAt(0)", order.FunctionCall, false},
		{"char last", block("text_charAt", "WHERE", "LAST").SetValue("VALUE", v("s")), "s.slice(-1)", order.FunctionCall, false},
		{"char from start", block("text_charAt", "WHERE", "FROM_START").SetValue("VALUE", v("s")).SetValue("AT", num("2")),
			"s.charAt(2)", order.FunctionCall, false},
		{"char from end", block("text_charAt", "WHERE", "FROM_END").SetValue("VALUE", v("s")).SetValue("AT", num("1")),
			"s.slice(-2).charAt(0)", order.FunctionCall, false},
		{"char random", block("text_charAt", "WHERE", "RANDOM").SetValue("VALUE", v("s")),
			"textRandomLetter(s)", order.FunctionCall, false},
		{"substring", block("text_getSubstring", "WHERE1", "FROM_START", "WHERE2", "FROM_START").
			SetValue("STRING", v("s")).SetValue("AT1", num("1")).SetValue("AT2", num("2")),
			"s.slice(1, 3)", order.FunctionCall, false},
		{"substring helper", block("text_getSubstring", "WHERE1", "FROM_END", "WHERE2", "FROM_END").
			SetValue("STRING", block("text_changeCase", "CASE", "UPPERCASE").SetValue("TEXT", v("s"))).
			SetValue("AT1", num("1")).SetValue("AT2", num("0")),
			"subsequenceFromEndFromEnd(s.toUpperCase(), 1, 0)", order.FunctionCall, false},
		{"upper", block("text_changeCase", "CASE", "UPPERCASE").SetValue("TEXT", v("s")), "s.toUpperCase()", order.FunctionCall, false},
		{"title", block("text_changeCase", "CASE", "TITLECASE").SetValue("TEXT", v("s")), "textToTitleCase(s)", order.FunctionCall, false},
		{"trim both", block("text_trim", "MODE", "BOTH").SetValue("TEXT", v("s")), "s.trim()", order.FunctionCall, false},
		{"trim left", block("text_trim", "MODE", "LEFT").SetValue("TEXT", v("s")), `s.replace(/^[\s\xa0]+/, '')`, order.FunctionCall, false},
		{"print", block("text_print").SetValue("TEXT", v("s")), "window.alert(s);\n", 0, true},
		{"print empty", block("text_print"), "window.alert('');\n", 0, true},
		{"prompt number", block("text_prompt_ext", "TYPE", "NUMBER").SetValue("TEXT", str("n?")),
			"Number(window.prompt('n?'))", order.FunctionCall, false},
		{"prompt field", block("text_prompt", "TYPE", "TEXT", "TEXT", "name?"), "window.prompt('name?')", order.FunctionCall, false},
		{"count", block("text_count").SetValue("TEXT", v("s")).SetValue("SUB", str("a")),
			"textCount(s, 'a')", order.Subtraction, false},
		{"replace", block("text_replace").SetValue("TEXT", v("s")).SetValue("FROM", str("a")).SetValue("TO", str("b")),
			"textReplace(s, 'a', 'b')", order.Member, false},
		{"reverse", block("text_reverse").SetValue("TEXT", v("s")), "s.split('').reverse().join('')", order.Member, false},
	})
}

// ============ Procedures, variables, colour ============

func TestEmit_ProcedureProgram(t *testing.T) {
	def := block("procedures_defreturn", "NAME", "sum").
		WithExtra(models.ExtraState{Params: []models.Param{{Name: "a", ID: "a-id"}, {Name: "b", ID: "b-id"}}}).
		SetValue("RETURN", arithmetic("ADD", v("a"), v("b")))
	call := block("procedures_callnoreturn").WithExtra(models.ExtraState{Name: "sum"}).
		SetValue("ARG0", num("1")).SetValue("ARG1", num("2"))

	ws := models.NewWorkspace()
	ws.CreateVariable("a", "a-id")
	ws.CreateVariable("b", "b-id")
	code := generate(t, ws, def, call)
	assert.Equal(t, "var a, b;\n\nfunction sum(a, b) {\n  return a + b;\n}\n\n\nsum(1, 2);\n", code)
}

func TestEmit_Procedures(t *testing.T) {
	runEmitCases(t, false, []emitCase{
		{"call with field name", block("procedures_callreturn", "NAME", "sum").SetValue("ARG0", num("1")),
			"sum(1)", order.FunctionCall, false},
		{"call fills missing args", block("procedures_callreturn", "NAME", "sum").
			WithExtra(models.ExtraState{Params: []models.Param{{Name: "a"}, {Name: "b"}}}).SetValue("ARG0", num("1")),
			"sum(1, null)", order.FunctionCall, false},
		{"if return value", block("procedures_ifreturn").WithExtra(models.ExtraState{HasReturnValue: true}).
			SetValue("CONDITION", boolean(true)).SetValue("VALUE", num("1")),
			"if (true) {\n  return 1;\n}\n", 0, true},
		{"if return", block("procedures_ifreturn"), "if (false) {\n  return;\n}\n", 0, true},
	})
}

func TestEmit_ProcedureLoopTrap(t *testing.T) {
	def := block("procedures_defnoreturn", "NAME", "run").WithID("p1").SetStatement("STACK", alert("x"))
	_, ctx := emit(t, models.NewWorkspace(), def, WithLoopTrap("trap(%1);\n"))
	stored, ok := ctx.Definition("%run")
	require.True(t, ok)
	assert.Equal(t, "function run() {\n  trap('p1');\n  window.alert('x');\n}", stored)
}

func TestEmit_VariablesAndColour(t *testing.T) {
	runEmitCases(t, false, []emitCase{
		{"get", v("x"), "x", order.Atomic, false},
		{"set default", block("variables_set").SetVariable("VAR", "x-id"), "x = 0;\n", 0, true},
		{"set dynamic", block("variables_set_dynamic").SetVariable("VAR", "x-id").SetValue("VALUE", str("a")), "x = 'a';\n", 0, true},
		{"unknown id", getVar("ghost"), "ghost", order.Atomic, false},
		{"picker", block("colour_picker", "COLOUR", "#ff0000"), "'#ff0000'", order.Atomic, false},
		{"random", block("colour_random"), "colourRandom()", order.FunctionCall, false},
		{"rgb", block("colour_rgb"), "colourRgb(0, 0, 0)", order.FunctionCall, false},
		{"blend", block("colour_blend"), "colourBlend('#000000', '#000000', 0.5)", order.FunctionCall, false},
	})
}

func TestEmit_CustomBlocks(t *testing.T) {
	runEmitCases(t, false, []emitCase{
		{"string length", block("string_length").SetValue("VALUE", str("abc")), "'abc'.length", order.Member, false},
		{"repeat while", block("repeat_while").SetValue("COND", v("done")).SetStatement("BODY", alert("x")),
			"do {\n  window.alert('x');\n} while (done);\n", 0, true},
	})
}

// ============ Unhandled options ============

func TestEmit_UnhandledOptions(t *testing.T) {
	cases := []struct {
		block *models.Block
		field string
	}{
		{block("math_number", "NUM", "abc"), "NUM"},
		{arithmetic("MODULO", nil, nil), "OP"},
		{block("math_single", "OP", "CUBE"), "OP"},
		{block("logic_operation", "OP", "XOR"), "OP"},
		{block("controls_whileUntil", "MODE", "FOREVER"), "MODE"},
		{block("controls_flow_statements", "FLOW", "RETURN"), "FLOW"},
		{block("lists_indexOf", "END", "MIDDLE"), "END"},
		{getIndex("GET", "MIDDLE", nil), "WHERE"},
		{getIndex("PEEK", "FIRST", nil), "MODE"},
		{setIndex("GET", "FIRST", v("list"), nil), "MODE"},
		{block("lists_sort", "TYPE", "SHUFFLE"), "TYPE"},
		{block("lists_split", "MODE", "CHOP"), "MODE"},
		{block("text_trim", "MODE", "MIDDLE"), "MODE"},
		{block("text_changeCase", "CASE", "SPONGE"), "CASE"},
		{block("text_prompt_ext", "TYPE", "DATE"), "TYPE"},
		{block("math_constant", "CONSTANT", "TAU"), "CONSTANT"},
	}
	for _, tc := range cases {
		t.Run(tc.block.Type+"/"+tc.field, func(t *testing.T) {
			ws := testWorkspace(false)
			ws.AddTopBlock(tc.block)
			ctx, err := NewGenerator().Init(ws)
			require.NoError(t, err)

			_, err = ctx.BlockToCode(tc.block, false)
			var opt *UnhandledOptionError
			require.True(t, errors.As(err, &opt), "got %v", err)
			assert.Equal(t, tc.block.Type, opt.Kind)
			assert.Equal(t, tc.field, opt.Field)
			assert.Equal(t, tc.block.Field(tc.field), opt.Option)
		})
	}
}
