package gen

import (
	"blockgen/internal/api/models"
	"blockgen/internal/gen/order"
	"regexp"
	"strconv"
	"strings"
)

func registerText(r *Registry) {
	r.Register("text", text)
	r.Register("text_multiline", textMultiline)
	r.Register("text_join", textJoin)
	r.Register("text_append", textAppend)
	r.Register("text_length", textLength)
	r.Register("text_isEmpty", textIsEmpty)
	r.Register("text_indexOf", textIndexOf)
	r.Register("text_charAt", textCharAt)
	r.Register("text_getSubstring", textGetSubstring)
	r.Register("text_changeCase", textChangeCase)
	r.Register("text_trim", textTrim)
	r.Register("text_print", textPrint)
	r.Register("text_prompt", textPrompt)
	r.Register("text_prompt_ext", textPrompt)
	r.Register("text_count", textCountBlock)
	r.Register("text_replace", textReplaceBlock)
	r.Register("text_reverse", textReverse)
}

var (
	quotedString = regexp.MustCompile(`^\s*'([^']|\\')*'\s*$`)
	simpleText   = regexp.MustCompile(`^'?\w+'?$`)
)

// forceString coerces value to a string unless it already is a literal.
func forceString(value string) (string, order.Order) {
	if quotedString.MatchString(value) {
		return value, order.Atomic
	}
	return "String(" + value + ")", order.FunctionCall
}

func text(b *models.Block, _ *Context) (Result, error) {
	return Value(Quote(b.Field("TEXT")), order.Atomic), nil
}

func textMultiline(b *models.Block, _ *Context) (Result, error) {
	code := MultilineQuote(b.Field("TEXT"))
	if strings.Contains(code, "\n") {
		code = "(" + code + ")"
	}
	return Value(code, order.Atomic), nil
}

func textJoin(b *models.Block, ctx *Context) (Result, error) {
	switch n := itemCount(b, "ADD"); n {
	case 0:
		return Value("''", order.Atomic), nil
	case 1:
		el, err := ctx.ValueOr(b, "ADD0", order.None, "''")
		if err != nil {
			return Result{}, err
		}
		code, _ := forceString(el)
		return Value(code, order.FunctionCall), nil
	case 2:
		el0, err := ctx.ValueOr(b, "ADD0", order.None, "''")
		if err != nil {
			return Result{}, err
		}
		el1, err := ctx.ValueOr(b, "ADD1", order.None, "''")
		if err != nil {
			return Result{}, err
		}
		a, _ := forceString(el0)
		c, _ := forceString(el1)
		return Value(a+" + "+c, order.Addition), nil
	default:
		elements := make([]string, n)
		for i := range elements {
			el, err := ctx.ValueOr(b, "ADD"+strconv.Itoa(i), order.Comma, "''")
			if err != nil {
				return Result{}, err
			}
			elements[i] = el
		}
		return Value("["+strings.Join(elements, ",")+"].join('')", order.FunctionCall), nil
	}
}

func textAppend(b *models.Block, ctx *Context) (Result, error) {
	v := ctx.VariableName(b, "VAR")
	value, err := ctx.ValueOr(b, "TEXT", order.None, "''")
	if err != nil {
		return Result{}, err
	}
	code, _ := forceString(value)
	return Statement(v + " += " + code + ";\n"), nil
}

func textLength(b *models.Block, ctx *Context) (Result, error) {
	s, err := ctx.ValueOr(b, "VALUE", order.FunctionCall, "''")
	if err != nil {
		return Result{}, err
	}
	return Value(s+".length", order.Member), nil
}

func textIsEmpty(b *models.Block, ctx *Context) (Result, error) {
	s, err := ctx.ValueOr(b, "VALUE", order.Member, "''")
	if err != nil {
		return Result{}, err
	}
	return Value("!"+s+".length", order.LogicalNot), nil
}

func textIndexOf(b *models.Block, ctx *Context) (Result, error) {
	return indexOf(b, ctx, "''")
}

func textCharAt(b *models.Block, ctx *Context) (Result, error) {
	where := fieldOr(b, "WHERE", "FROM_START")
	textOrder := order.Member
	if where == "RANDOM" {
		textOrder = order.None
	}
	s, err := ctx.ValueOr(b, "VALUE", textOrder, "''")
	if err != nil {
		return Result{}, err
	}

	var code string
	switch where {
	case "FIRST":
		code = s + ".charAt(0)"
	case "LAST":
		code = s + ".slice(-1)"
	case "FROM_START":
		at, err := ctx.GetAdjusted(b, "AT", 0, false, order.None)
		if err != nil {
			return Result{}, err
		}
		code = s + ".charAt(" + at + ")"
	case "FROM_END":
		at, err := ctx.GetAdjusted(b, "AT", 1, true, order.None)
		if err != nil {
			return Result{}, err
		}
		code = s + ".slice(" + at + ").charAt(0)"
	case "RANDOM":
		fn := ctx.ProvideFunction("textRandomLetter", textRandomLetter)
		code = fn + "(" + s + ")"
	default:
		return Result{}, unhandled(b, "WHERE")
	}
	return Value(code, order.FunctionCall), nil
}

func textGetSubstring(b *models.Block, ctx *Context) (Result, error) {
	s, err := ctx.ValueOr(b, "STRING", order.FunctionCall, "''")
	if err != nil {
		return Result{}, err
	}
	where1, where2 := b.Field("WHERE1"), b.Field("WHERE2")

	var code string
	switch {
	case where1 == "FIRST" && where2 == "LAST":
		code = s
	case simpleText.MatchString(s) || (where1 != "FROM_END" && where1 != "LAST" && where2 != "FROM_END" && where2 != "LAST"):
		at1, at2, err := sliceBounds(b, ctx, s)
		if err != nil {
			return Result{}, err
		}
		code = s + ".slice(" + at1 + ", " + at2 + ")"
	default:
		if code, err = subsequenceCall(b, ctx, s); err != nil {
			return Result{}, err
		}
	}
	return Value(code, order.FunctionCall), nil
}

func textChangeCase(b *models.Block, ctx *Context) (Result, error) {
	switch b.Field("CASE") {
	case "UPPERCASE", "LOWERCASE":
		s, err := ctx.ValueOr(b, "TEXT", order.Member, "''")
		if err != nil {
			return Result{}, err
		}
		if b.Field("CASE") == "UPPERCASE" {
			return Value(s+".toUpperCase()", order.FunctionCall), nil
		}
		return Value(s+".toLowerCase()", order.FunctionCall), nil
	case "TITLECASE":
		s, err := ctx.ValueOr(b, "TEXT", order.None, "''")
		if err != nil {
			return Result{}, err
		}
		fn := ctx.ProvideFunction("textToTitleCase", textToTitleCase)
		return Value(fn+"("+s+")", order.FunctionCall), nil
	}
	return Result{}, unhandled(b, "CASE")
}

var trimCalls = map[string]string{
	"LEFT":  `.replace(/^[\s\xa0]+/, '')`,
	"RIGHT": `.replace(/[\s\xa0]+$/, '')`,
	"BOTH":  ".trim()",
}

func textTrim(b *models.Block, ctx *Context) (Result, error) {
	call, ok := trimCalls[b.Field("MODE")]
	if !ok {
		return Result{}, unhandled(b, "MODE")
	}
	s, err := ctx.ValueOr(b, "TEXT", order.Member, "''")
	if err != nil {
		return Result{}, err
	}
	return Value(s+call, order.FunctionCall), nil
}

func textPrint(b *models.Block, ctx *Context) (Result, error) {
	msg, err := ctx.ValueOr(b, "TEXT", order.None, "''")
	if err != nil {
		return Result{}, err
	}
	return Statement("window.alert(" + msg + ");\n"), nil
}

// textPrompt covers text_prompt, which carries its message as a field, and
// text_prompt_ext, which takes it from a socket.
func textPrompt(b *models.Block, ctx *Context) (Result, error) {
	var msg string
	if f, ok := b.LookupField("TEXT"); ok {
		msg = Quote(f)
	} else {
		var err error
		if msg, err = ctx.ValueOr(b, "TEXT", order.None, "''"); err != nil {
			return Result{}, err
		}
	}
	code := "window.prompt(" + msg + ")"
	switch b.Field("TYPE") {
	case "NUMBER":
		code = "Number(" + code + ")"
	case "TEXT", "":
	default:
		return Result{}, unhandled(b, "TYPE")
	}
	return Value(code, order.FunctionCall), nil
}

func textCountBlock(b *models.Block, ctx *Context) (Result, error) {
	s, err := ctx.ValueOr(b, "TEXT", order.Member, "''")
	if err != nil {
		return Result{}, err
	}
	sub, err := ctx.ValueOr(b, "SUB", order.None, "''")
	if err != nil {
		return Result{}, err
	}
	fn := ctx.ProvideFunction("textCount", textCount)
	return Value(fn+"("+s+", "+sub+")", order.Subtraction), nil
}

func textReplaceBlock(b *models.Block, ctx *Context) (Result, error) {
	s, err := ctx.ValueOr(b, "TEXT", order.Member, "''")
	if err != nil {
		return Result{}, err
	}
	from, err := ctx.ValueOr(b, "FROM", order.None, "''")
	if err != nil {
		return Result{}, err
	}
	to, err := ctx.ValueOr(b, "TO", order.None, "''")
	if err != nil {
		return Result{}, err
	}
	fn := ctx.ProvideFunction("textReplace", textReplace)
	return Value(fn+"("+s+", "+from+", "+to+")", order.Member), nil
}

func textReverse(b *models.Block, ctx *Context) (Result, error) {
	s, err := ctx.ValueOr(b, "TEXT", order.Member, "''")
	if err != nil {
		return Result{}, err
	}
	return Value(s+".split('').reverse().join('')", order.Member), nil
}
