package gen

import (
	"blockgen/internal/api/models"
	"blockgen/internal/gen/names"
	"blockgen/internal/gen/order"
	"strconv"
	"strings"
)

func registerProcedures(r *Registry) {
	r.Register("procedures_defreturn", proceduresDef)
	r.Register("procedures_defnoreturn", proceduresDef)
	r.Register("procedures_callreturn", proceduresCallReturn)
	r.Register("procedures_callnoreturn", proceduresCallNoReturn)
	r.Register("procedures_ifreturn", proceduresIfReturn)
}

// proceduresDef stores the function under "%name" and emits nothing in
// place.
func proceduresDef(b *models.Block, ctx *Context) (Result, error) {
	funcName := ctx.ProcedureName(b.Field("NAME"))
	branch, err := ctx.StatementToCode(b, "STACK")
	if err != nil {
		return Result{}, err
	}
	branch = ctx.addLoopTrap(b, branch)
	returnValue, err := ctx.ValueToCode(b, "RETURN", order.None)
	if err != nil {
		return Result{}, err
	}
	if returnValue != "" {
		returnValue = ctx.Indent() + "return " + returnValue + ";\n"
	}

	args := make([]string, len(b.Extra.Params))
	for i, p := range b.Extra.Params {
		key := p.ID
		if key == "" {
			key = p.Name
		}
		args[i] = ctx.names.GetName(key, names.Variable)
	}

	code := "function " + funcName + "(" + strings.Join(args, ", ") + ") {\n" +
		branch + returnValue + "}"
	code, err = ctx.scrub(b, code, false)
	if err != nil {
		return Result{}, err
	}
	ctx.Define("%"+funcName, code)
	return Handled(), nil
}

// procedureCall renders the call expression shared by both call blocks.
func procedureCall(b *models.Block, ctx *Context) (string, error) {
	name, ok := b.LookupField("NAME")
	if !ok {
		name = b.Extra.Name
	}
	funcName := ctx.ProcedureName(name)

	args := make([]string, max(len(b.Extra.Params), socketCount(b, "ARG")))
	for i := range args {
		arg, err := ctx.ValueOr(b, "ARG"+strconv.Itoa(i), order.Comma, "null")
		if err != nil {
			return "", err
		}
		args[i] = arg
	}
	return funcName + "(" + strings.Join(args, ", ") + ")", nil
}

func proceduresCallReturn(b *models.Block, ctx *Context) (Result, error) {
	code, err := procedureCall(b, ctx)
	if err != nil {
		return Result{}, err
	}
	return Value(code, order.FunctionCall), nil
}

func proceduresCallNoReturn(b *models.Block, ctx *Context) (Result, error) {
	code, err := procedureCall(b, ctx)
	if err != nil {
		return Result{}, err
	}
	return Statement(code + ";\n"), nil
}

func proceduresIfReturn(b *models.Block, ctx *Context) (Result, error) {
	cond, err := ctx.ValueOr(b, "CONDITION", order.None, "false")
	if err != nil {
		return Result{}, err
	}
	code := "if (" + cond + ") {\n"
	if b.Extra.HasReturnValue || b.InputNamed("VALUE") != nil {
		value, err := ctx.ValueOr(b, "VALUE", order.None, "null")
		if err != nil {
			return Result{}, err
		}
		code += ctx.Indent() + "return " + value + ";\n"
	} else {
		code += ctx.Indent() + "return;\n"
	}
	return Statement(code + "}\n"), nil
}
