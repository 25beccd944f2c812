package gen

import (
	"blockgen/internal/api/models"
	"blockgen/internal/blocks"
	"blockgen/internal/gen/order"
)

// registerCustom binds emitters to the custom blocks of blocks.DefaultRegistry.
func registerCustom(r *Registry) {
	r.RegisterDefinition(blocks.StringLengthBlock, stringLength)
	r.RegisterDefinition(blocks.RepeatWhileBlock, repeatWhile)
}

func stringLength(b *models.Block, ctx *Context) (Result, error) {
	s, err := ctx.ValueOr(b, "VALUE", order.Member, "''")
	if err != nil {
		return Result{}, err
	}
	return Value(s+".length", order.Member), nil
}

func repeatWhile(b *models.Block, ctx *Context) (Result, error) {
	cond, err := ctx.ValueOr(b, "COND", order.None, "false")
	if err != nil {
		return Result{}, err
	}
	branch, err := ctx.StatementToCode(b, "BODY")
	if err != nil {
		return Result{}, err
	}
	branch = ctx.addLoopTrap(b, branch)
	return Statement("do {\n" + branch + "} while (" + cond + ");\n"), nil
}
