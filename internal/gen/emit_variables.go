package gen

import (
	"blockgen/internal/api/models"
	"blockgen/internal/gen/order"
)

func registerVariables(r *Registry) {
	r.Register("variables_get", variablesGet)
	r.Register("variables_get_dynamic", variablesGet)
	r.Register("variables_set", variablesSet)
	r.Register("variables_set_dynamic", variablesSet)
}

func variablesGet(b *models.Block, ctx *Context) (Result, error) {
	return Value(ctx.VariableName(b, "VAR"), order.Atomic), nil
}

func variablesSet(b *models.Block, ctx *Context) (Result, error) {
	value, err := ctx.ValueOr(b, "VALUE", order.Assignment, "0")
	if err != nil {
		return Result{}, err
	}
	return Statement(ctx.VariableName(b, "VAR") + " = " + value + ";\n"), nil
}
