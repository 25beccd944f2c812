package gen

import (
	"blockgen/internal/api/models"
	"blockgen/internal/gen/order"
	"strconv"
	"strings"
)

func registerMath(r *Registry) {
	r.Register("math_number", mathNumber)
	r.Register("math_arithmetic", mathArithmetic)
	r.Register("math_single", mathSingle)
	r.Register("math_round", mathSingle)
	r.Register("math_trig", mathSingle)
	r.Register("math_constant", mathConstant)
	r.Register("math_number_property", mathNumberProperty)
	r.Register("math_change", mathChange)
	r.Register("math_on_list", mathOnList)
	r.Register("math_modulo", mathModulo)
	r.Register("math_constrain", mathConstrain)
	r.Register("math_random_int", mathRandomIntBlock)
	r.Register("math_random_float", mathRandomFloat)
	r.Register("math_atan2", mathAtan2)
}

func mathNumber(b *models.Block, _ *Context) (Result, error) {
	raw := strings.TrimSpace(b.Field("NUM"))
	if raw == "" {
		// Number('') is 0.
		return Value("0", order.Atomic), nil
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Result{}, unhandled(b, "NUM")
	}
	if n < 0 {
		return Value(FormatNumber(n), order.UnaryNegation), nil
	}
	return Value(FormatNumber(n), order.Atomic), nil
}

var arithmeticOperators = map[string]struct {
	op   string
	prec order.Order
}{
	"ADD":      {" + ", order.Addition},
	"MINUS":    {" - ", order.Subtraction},
	"MULTIPLY": {" * ", order.Multiplication},
	"DIVIDE":   {" / ", order.Division},
	"POWER":    {"", order.Comma},
}

func mathArithmetic(b *models.Block, ctx *Context) (Result, error) {
	spec, ok := arithmeticOperators[b.Field("OP")]
	if !ok {
		return Result{}, unhandled(b, "OP")
	}
	a, err := ctx.ValueOr(b, "A", spec.prec, "0")
	if err != nil {
		return Result{}, err
	}
	c, err := ctx.ValueOr(b, "B", spec.prec, "0")
	if err != nil {
		return Result{}, err
	}
	if spec.op == "" {
		return Value("Math.pow("+a+", "+c+")", order.FunctionCall), nil
	}
	return Value(a+spec.op+c, spec.prec), nil
}

var singleCalls = map[string][2]string{
	"ABS":       {"Math.abs(", ")"},
	"ROOT":      {"Math.sqrt(", ")"},
	"LN":        {"Math.log(", ")"},
	"EXP":       {"Math.exp(", ")"},
	"POW10":     {"Math.pow(10,", ")"},
	"ROUND":     {"Math.round(", ")"},
	"ROUNDUP":   {"Math.ceil(", ")"},
	"ROUNDDOWN": {"Math.floor(", ")"},
	"SIN":       {"Math.sin(", " / 180 * Math.PI)"},
	"COS":       {"Math.cos(", " / 180 * Math.PI)"},
	"TAN":       {"Math.tan(", " / 180 * Math.PI)"},
}

var singleDivisions = map[string][2]string{
	"LOG10": {"Math.log(", ") / Math.log(10)"},
	"ASIN":  {"Math.asin(", ") / Math.PI * 180"},
	"ACOS":  {"Math.acos(", ") / Math.PI * 180"},
	"ATAN":  {"Math.atan(", ") / Math.PI * 180"},
}

// mathSingle covers math_single, math_round and math_trig, which share the
// OP field.
func mathSingle(b *models.Block, ctx *Context) (Result, error) {
	op := b.Field("OP")
	if op == "NEG" {
		arg, err := ctx.ValueOr(b, "NUM", order.UnaryNegation, "0")
		if err != nil {
			return Result{}, err
		}
		// avoid "--x"
		if strings.HasPrefix(arg, "-") {
			arg = " " + arg
		}
		return Value("-"+arg, order.UnaryNegation), nil
	}

	call, isCall := singleCalls[op]
	div, isDiv := singleDivisions[op]
	if !isCall && !isDiv {
		return Result{}, unhandled(b, "OP")
	}

	prec := order.None
	if op == "SIN" || op == "COS" || op == "TAN" {
		prec = order.Division
	}
	arg, err := ctx.ValueOr(b, "NUM", prec, "0")
	if err != nil {
		return Result{}, err
	}
	if isCall {
		return Value(call[0]+arg+call[1], order.FunctionCall), nil
	}
	return Value(div[0]+arg+div[1], order.Division), nil
}

var mathConstants = map[string]Result{
	"PI":           Value("Math.PI", order.Member),
	"E":            Value("Math.E", order.Member),
	"GOLDEN_RATIO": Value("(1 + Math.sqrt(5)) / 2", order.Division),
	"SQRT2":        Value("Math.SQRT2", order.Member),
	"SQRT1_2":      Value("Math.SQRT1_2", order.Member),
	"INFINITY":     Value("Infinity", order.Atomic),
}

func mathConstant(b *models.Block, _ *Context) (Result, error) {
	res, ok := mathConstants[b.Field("CONSTANT")]
	if !ok {
		return Result{}, unhandled(b, "CONSTANT")
	}
	return res, nil
}

func mathNumberProperty(b *models.Block, ctx *Context) (Result, error) {
	arg, err := ctx.ValueOr(b, "NUMBER_TO_CHECK", order.Modulus, "0")
	if err != nil {
		return Result{}, err
	}
	property := b.Field("PROPERTY")
	if property == "PRIME" {
		fn := ctx.ProvideFunction("mathIsPrime", mathIsPrime)
		return Value(fn+"("+arg+")", order.FunctionCall), nil
	}

	var code string
	switch property {
	case "EVEN":
		code = arg + " % 2 == 0"
	case "ODD":
		code = arg + " % 2 == 1"
	case "WHOLE":
		code = arg + " % 1 == 0"
	case "POSITIVE":
		code = arg + " > 0"
	case "NEGATIVE":
		code = arg + " < 0"
	case "DIVISIBLE_BY":
		divisor, err := ctx.ValueOr(b, "DIVISOR", order.Modulus, "0")
		if err != nil {
			return Result{}, err
		}
		code = arg + " % " + divisor + " == 0"
	default:
		return Result{}, unhandled(b, "PROPERTY")
	}
	return Value(code, order.Equality), nil
}

func mathChange(b *models.Block, ctx *Context) (Result, error) {
	delta, err := ctx.ValueOr(b, "DELTA", order.Addition, "0")
	if err != nil {
		return Result{}, err
	}
	v := ctx.VariableName(b, "VAR")
	return Statement(v + " = (typeof " + v + " == 'number' ? " + v + " : 0) + " + delta + ";\n"), nil
}

var listReducers = map[string]struct {
	name string
	body []string
}{
	"SUM":     {"mathSum", mathSum},
	"MIN":     {"mathMin", mathMin},
	"MAX":     {"mathMax", mathMax},
	"AVERAGE": {"mathMean", mathMean},
	"MEDIAN":  {"mathMedian", mathMedian},
	"MODE":    {"mathModes", mathModes},
	"STD_DEV": {"mathStandardDeviation", mathStandardDeviation},
	"RANDOM":  {"mathRandomList", mathRandomList},
}

func mathOnList(b *models.Block, ctx *Context) (Result, error) {
	reducer, ok := listReducers[b.Field("OP")]
	if !ok {
		return Result{}, unhandled(b, "OP")
	}
	fn := ctx.ProvideFunction(reducer.name, reducer.body)
	list, err := ctx.ValueOr(b, "LIST", order.None, "[]")
	if err != nil {
		return Result{}, err
	}
	return Value(fn+"("+list+")", order.FunctionCall), nil
}

func mathModulo(b *models.Block, ctx *Context) (Result, error) {
	dividend, err := ctx.ValueOr(b, "DIVIDEND", order.Modulus, "0")
	if err != nil {
		return Result{}, err
	}
	divisor, err := ctx.ValueOr(b, "DIVISOR", order.Modulus, "0")
	if err != nil {
		return Result{}, err
	}
	return Value(dividend+" % "+divisor, order.Modulus), nil
}

func mathConstrain(b *models.Block, ctx *Context) (Result, error) {
	v, err := ctx.ValueOr(b, "VALUE", order.Comma, "0")
	if err != nil {
		return Result{}, err
	}
	low, err := ctx.ValueOr(b, "LOW", order.Comma, "0")
	if err != nil {
		return Result{}, err
	}
	high, err := ctx.ValueOr(b, "HIGH", order.Comma, "Infinity")
	if err != nil {
		return Result{}, err
	}
	return Value("Math.min(Math.max("+v+", "+low+"), "+high+")", order.FunctionCall), nil
}

func mathRandomIntBlock(b *models.Block, ctx *Context) (Result, error) {
	from, err := ctx.ValueOr(b, "FROM", order.Comma, "0")
	if err != nil {
		return Result{}, err
	}
	to, err := ctx.ValueOr(b, "TO", order.Comma, "0")
	if err != nil {
		return Result{}, err
	}
	fn := ctx.ProvideFunction("mathRandomInt", mathRandomInt)
	return Value(fn+"("+from+", "+to+")", order.FunctionCall), nil
}

func mathRandomFloat(_ *models.Block, _ *Context) (Result, error) {
	return Value("Math.random()", order.FunctionCall), nil
}

func mathAtan2(b *models.Block, ctx *Context) (Result, error) {
	x, err := ctx.ValueOr(b, "X", order.Comma, "0")
	if err != nil {
		return Result{}, err
	}
	y, err := ctx.ValueOr(b, "Y", order.Comma, "0")
	if err != nil {
		return Result{}, err
	}
	return Value("Math.atan2("+y+", "+x+") / Math.PI * 180", order.Division), nil
}
