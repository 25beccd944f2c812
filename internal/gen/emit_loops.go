package gen

import (
	"blockgen/internal/api/models"
	"blockgen/internal/gen/order"
	"math"
	"regexp"
	"strconv"
	"strings"
)

func registerLoops(r *Registry) {
	r.Register("controls_repeat_ext", controlsRepeat)
	r.Register("controls_repeat", controlsRepeat)
	r.Register("controls_whileUntil", controlsWhileUntil)
	r.Register("controls_for", controlsFor)
	r.Register("controls_forEach", controlsForEach)
	r.Register("controls_flow_statements", controlsFlowStatements)
}

var simpleIdent = regexp.MustCompile(`^\w+$`)

// addLoopTrap puts the configured trap at the top of a loop body. %1 in the
// trap becomes the quoted block id.
func (ctx *Context) addLoopTrap(b *models.Block, branch string) string {
	if ctx.gen.loopTrap == "" {
		return branch
	}
	trap := strings.ReplaceAll(ctx.gen.loopTrap, "%1", Quote(b.ID))
	return PrefixLines(trap, ctx.Indent()) + branch
}

func controlsRepeat(b *models.Block, ctx *Context) (Result, error) {
	var repeats string
	if times, ok := b.LookupField("TIMES"); ok {
		n, err := strconv.ParseFloat(strings.TrimSpace(times), 64)
		if err != nil {
			return Result{}, unhandled(b, "TIMES")
		}
		repeats = FormatNumber(n)
	} else {
		var err error
		if repeats, err = ctx.ValueOr(b, "TIMES", order.Assignment, "0"); err != nil {
			return Result{}, err
		}
	}
	branch, err := ctx.StatementToCode(b, "DO")
	if err != nil {
		return Result{}, err
	}
	branch = ctx.addLoopTrap(b, branch)

	var code strings.Builder
	loopVar := ctx.DistinctVariable("count")
	endVar := repeats
	if !simpleIdent.MatchString(repeats) && !IsNumber(repeats) {
		endVar = ctx.DistinctVariable("repeat_end")
		code.WriteString("var " + endVar + " = " + repeats + ";\n")
	}
	code.WriteString("for (var " + loopVar + " = 0; " + loopVar + " < " + endVar + "; " + loopVar + "++) {\n" +
		branch + "}\n")
	return Statement(code.String()), nil
}

func controlsWhileUntil(b *models.Block, ctx *Context) (Result, error) {
	mode := b.Field("MODE")
	if mode != "WHILE" && mode != "UNTIL" {
		return Result{}, unhandled(b, "MODE")
	}
	until := mode == "UNTIL"
	prec := order.None
	if until {
		prec = order.LogicalNot
	}
	cond, err := ctx.ValueOr(b, "BOOL", prec, "false")
	if err != nil {
		return Result{}, err
	}
	branch, err := ctx.StatementToCode(b, "DO")
	if err != nil {
		return Result{}, err
	}
	branch = ctx.addLoopTrap(b, branch)
	if until {
		cond = "!" + cond
	}
	return Statement("while (" + cond + ") {\n" + branch + "}\n"), nil
}

func controlsFor(b *models.Block, ctx *Context) (Result, error) {
	v := ctx.VariableName(b, "VAR")
	from, err := ctx.ValueOr(b, "FROM", order.Assignment, "0")
	if err != nil {
		return Result{}, err
	}
	to, err := ctx.ValueOr(b, "TO", order.Assignment, "0")
	if err != nil {
		return Result{}, err
	}
	by, err := ctx.ValueOr(b, "BY", order.Assignment, "1")
	if err != nil {
		return Result{}, err
	}
	branch, err := ctx.StatementToCode(b, "DO")
	if err != nil {
		return Result{}, err
	}
	branch = ctx.addLoopTrap(b, branch)

	var code strings.Builder
	if IsNumber(from) && IsNumber(to) && IsNumber(by) {
		start, end := parseNumber(from), parseNumber(to)
		up := start <= end
		code.WriteString("for (" + v + " = " + from + "; " + v)
		if up {
			code.WriteString(" <= ")
		} else {
			code.WriteString(" >= ")
		}
		code.WriteString(to + "; " + v)
		step := math.Abs(parseNumber(by))
		switch {
		case step == 1 && up:
			code.WriteString("++")
		case step == 1:
			code.WriteString("--")
		case up:
			code.WriteString(" += " + FormatNumber(step))
		default:
			code.WriteString(" -= " + FormatNumber(step))
		}
		code.WriteString(") {\n" + branch + "}\n")
		return Statement(code.String()), nil
	}

	startVar := from
	if !simpleIdent.MatchString(from) && !IsNumber(from) {
		startVar = ctx.DistinctVariable(v + "_start")
		code.WriteString("var " + startVar + " = " + from + ";\n")
	}
	endVar := to
	if !simpleIdent.MatchString(to) && !IsNumber(to) {
		endVar = ctx.DistinctVariable(v + "_end")
		code.WriteString("var " + endVar + " = " + to + ";\n")
	}
	incVar := ctx.DistinctVariable(v + "_inc")
	code.WriteString("var " + incVar + " = ")
	if IsNumber(by) {
		code.WriteString(FormatNumber(math.Abs(parseNumber(by))) + ";\n")
	} else {
		code.WriteString("Math.abs(" + by + ");\n")
	}
	code.WriteString("if (" + startVar + " > " + endVar + ") {\n")
	code.WriteString(ctx.Indent() + incVar + " = -" + incVar + ";\n")
	code.WriteString("}\n")
	code.WriteString("for (" + v + " = " + startVar + "; " +
		incVar + " >= 0 ? " + v + " <= " + endVar + " : " + v + " >= " + endVar + "; " +
		v + " += " + incVar + ") {\n" + branch + "}\n")
	return Statement(code.String()), nil
}

func controlsForEach(b *models.Block, ctx *Context) (Result, error) {
	v := ctx.VariableName(b, "VAR")
	list, err := ctx.ValueOr(b, "LIST", order.Assignment, "[]")
	if err != nil {
		return Result{}, err
	}
	branch, err := ctx.StatementToCode(b, "DO")
	if err != nil {
		return Result{}, err
	}
	branch = ctx.addLoopTrap(b, branch)

	var code strings.Builder
	listVar := list
	if !simpleIdent.MatchString(list) {
		listVar = ctx.DistinctVariable(v + "_list")
		code.WriteString("var " + listVar + " = " + list + ";\n")
	}
	indexVar := ctx.DistinctVariable(v + "_index")
	branch = ctx.Indent() + v + " = " + listVar + "[" + indexVar + "];\n" + branch
	code.WriteString("for (var " + indexVar + " in " + listVar + ") {\n" + branch + "}\n")
	return Statement(code.String()), nil
}

func controlsFlowStatements(b *models.Block, _ *Context) (Result, error) {
	switch b.Field("FLOW") {
	case "BREAK":
		return Statement("break;\n"), nil
	case "CONTINUE":
		return Statement("continue;\n"), nil
	}
	return Result{}, unhandled(b, "FLOW")
}

// parseNumber reads a literal already accepted by IsNumber.
func parseNumber(code string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(code), 64)
	return f
}
