package gen

import (
	"blockgen/internal/api/models"
	"blockgen/internal/gen/order"
)

func registerColour(r *Registry) {
	r.Register("colour_picker", colourPicker)
	r.Register("colour_random", colourRandomBlock)
	r.Register("colour_rgb", colourRGBBlock)
	r.Register("colour_blend", colourBlendBlock)
}

func colourPicker(b *models.Block, _ *Context) (Result, error) {
	return Value(Quote(b.Field("COLOUR")), order.Atomic), nil
}

func colourRandomBlock(_ *models.Block, ctx *Context) (Result, error) {
	fn := ctx.ProvideFunction("colourRandom", colourRandom)
	return Value(fn+"()", order.FunctionCall), nil
}

func colourRGBBlock(b *models.Block, ctx *Context) (Result, error) {
	var rgb [3]string
	for i, input := range []string{"RED", "GREEN", "BLUE"} {
		v, err := ctx.ValueOr(b, input, order.Comma, "0")
		if err != nil {
			return Result{}, err
		}
		rgb[i] = v
	}
	fn := ctx.ProvideFunction("colourRgb", colourRGB)
	return Value(fn+"("+rgb[0]+", "+rgb[1]+", "+rgb[2]+")", order.FunctionCall), nil
}

func colourBlendBlock(b *models.Block, ctx *Context) (Result, error) {
	c1, err := ctx.ValueOr(b, "COLOUR1", order.Comma, "'#000000'")
	if err != nil {
		return Result{}, err
	}
	c2, err := ctx.ValueOr(b, "COLOUR2", order.Comma, "'#000000'")
	if err != nil {
		return Result{}, err
	}
	ratio, err := ctx.ValueOr(b, "RATIO", order.Comma, "0.5")
	if err != nil {
		return Result{}, err
	}
	fn := ctx.ProvideFunction("colourBlend", colourBlend)
	return Value(fn+"("+c1+", "+c2+", "+ratio+")", order.FunctionCall), nil
}
