package gen

import (
	"blockgen/internal/api/models"
	"blockgen/internal/gen/order"
	"strconv"
	"strings"
)

func registerLogic(r *Registry) {
	r.Register("controls_if", controlsIf)
	r.Register("controls_ifelse", controlsIf)
	r.Register("logic_compare", logicCompare)
	r.Register("logic_operation", logicOperation)
	r.Register("logic_negate", logicNegate)
	r.Register("logic_boolean", logicBoolean)
	r.Register("logic_null", logicNull)
	r.Register("logic_ternary", logicTernary)
}

func controlsIf(b *models.Block, ctx *Context) (Result, error) {
	var sb strings.Builder
	for n := 0; n == 0 || n <= b.Extra.ElseIfCount || b.InputNamed("IF"+strconv.Itoa(n)) != nil; n++ {
		suffix := strconv.Itoa(n)
		cond, err := ctx.ValueOr(b, "IF"+suffix, order.None, "false")
		if err != nil {
			return Result{}, err
		}
		branch, err := ctx.StatementToCode(b, "DO"+suffix)
		if err != nil {
			return Result{}, err
		}
		if n > 0 {
			sb.WriteString(" else ")
		}
		sb.WriteString("if (" + cond + ") {\n" + branch + "}")
	}

	if b.Type == "controls_ifelse" || b.Extra.HasElse || b.InputNamed("ELSE") != nil {
		branch, err := ctx.StatementToCode(b, "ELSE")
		if err != nil {
			return Result{}, err
		}
		sb.WriteString(" else {\n" + branch + "}")
	}
	sb.WriteString("\n")
	return Statement(sb.String()), nil
}

var compareOperators = map[string]string{
	"EQ":  "==",
	"NEQ": "!=",
	"LT":  "<",
	"LTE": "<=",
	"GT":  ">",
	"GTE": ">=",
}

func logicCompare(b *models.Block, ctx *Context) (Result, error) {
	op, ok := compareOperators[b.Field("OP")]
	if !ok {
		return Result{}, unhandled(b, "OP")
	}
	prec := order.Relational
	if op == "==" || op == "!=" {
		prec = order.Equality
	}
	a, err := ctx.ValueOr(b, "A", prec, "0")
	if err != nil {
		return Result{}, err
	}
	c, err := ctx.ValueOr(b, "B", prec, "0")
	if err != nil {
		return Result{}, err
	}
	return Value(a+" "+op+" "+c, prec), nil
}

// logicOperation fills a single missing operand with the operator's
// identity. With both operands missing the whole expression is false.
func logicOperation(b *models.Block, ctx *Context) (Result, error) {
	var op, identity string
	var prec order.Order
	switch b.Field("OP") {
	case "AND":
		op, identity, prec = "&&", "true", order.LogicalAnd
	case "OR":
		op, identity, prec = "||", "false", order.LogicalOr
	default:
		return Result{}, unhandled(b, "OP")
	}

	a, err := ctx.ValueToCode(b, "A", prec)
	if err != nil {
		return Result{}, err
	}
	c, err := ctx.ValueToCode(b, "B", prec)
	if err != nil {
		return Result{}, err
	}
	if a == "" && c == "" {
		return Value("false", order.Atomic), nil
	}
	if a == "" {
		a = identity
	}
	if c == "" {
		c = identity
	}
	return Value(a+" "+op+" "+c, prec), nil
}

func logicNegate(b *models.Block, ctx *Context) (Result, error) {
	arg, err := ctx.ValueOr(b, "BOOL", order.LogicalNot, "true")
	if err != nil {
		return Result{}, err
	}
	return Value("!"+arg, order.LogicalNot), nil
}

func logicBoolean(b *models.Block, _ *Context) (Result, error) {
	if b.Field("BOOL") == "TRUE" {
		return Value("true", order.Atomic), nil
	}
	return Value("false", order.Atomic), nil
}

func logicNull(_ *models.Block, _ *Context) (Result, error) {
	return Value("null", order.Atomic), nil
}

func logicTernary(b *models.Block, ctx *Context) (Result, error) {
	cond, err := ctx.ValueOr(b, "IF", order.Conditional, "false")
	if err != nil {
		return Result{}, err
	}
	then, err := ctx.ValueOr(b, "THEN", order.Conditional, "null")
	if err != nil {
		return Result{}, err
	}
	els, err := ctx.ValueOr(b, "ELSE", order.Conditional, "null")
	if err != nil {
		return Result{}, err
	}
	return Value(cond+" ? "+then+" : "+els, order.Conditional), nil
}
