package gen

import (
	"blockgen/internal/api/models"
	"blockgen/internal/gen/order"
	"strconv"
	"strings"
)

func registerLists(r *Registry) {
	r.Register("lists_create_empty", listsCreateEmpty)
	r.Register("lists_create_with", listsCreateWith)
	r.Register("lists_repeat", listsRepeatBlock)
	r.Register("lists_length", listsLength)
	r.Register("lists_isEmpty", listsIsEmpty)
	r.Register("lists_indexOf", listsIndexOf)
	r.Register("lists_getIndex", listsGetIndex)
	r.Register("lists_setIndex", listsSetIndex)
	r.Register("lists_getSublist", listsGetSublist)
	r.Register("lists_sort", listsSort)
	r.Register("lists_split", listsSplit)
	r.Register("lists_reverse", listsReverse)
}

// itemCount is the number of numbered sockets with the given prefix, taken
// from the mutator state or from the highest socket present.
func itemCount(b *models.Block, prefix string) int {
	return max(b.Extra.ItemCount, socketCount(b, prefix))
}

// socketCount is one past the highest numbered socket with the prefix.
func socketCount(b *models.Block, prefix string) int {
	n := 0
	for _, in := range b.Inputs {
		rest, ok := strings.CutPrefix(in.Name, prefix)
		if !ok {
			continue
		}
		if i, err := strconv.Atoi(rest); err == nil && i+1 > n {
			n = i + 1
		}
	}
	return n
}

func listsCreateEmpty(_ *models.Block, _ *Context) (Result, error) {
	return Value("[]", order.Atomic), nil
}

func listsCreateWith(b *models.Block, ctx *Context) (Result, error) {
	n := itemCount(b, "ADD")
	elements := make([]string, n)
	for i := range elements {
		el, err := ctx.ValueOr(b, "ADD"+strconv.Itoa(i), order.Comma, "null")
		if err != nil {
			return Result{}, err
		}
		elements[i] = el
	}
	return Value("["+strings.Join(elements, ", ")+"]", order.Atomic), nil
}

func listsRepeatBlock(b *models.Block, ctx *Context) (Result, error) {
	fn := ctx.ProvideFunction("listsRepeat", listsRepeat)
	item, err := ctx.ValueOr(b, "ITEM", order.Comma, "null")
	if err != nil {
		return Result{}, err
	}
	count, err := ctx.ValueOr(b, "NUM", order.Comma, "0")
	if err != nil {
		return Result{}, err
	}
	return Value(fn+"("+item+", "+count+")", order.FunctionCall), nil
}

func listsLength(b *models.Block, ctx *Context) (Result, error) {
	list, err := ctx.ValueOr(b, "VALUE", order.Member, "[]")
	if err != nil {
		return Result{}, err
	}
	return Value(list+".length", order.Member), nil
}

func listsIsEmpty(b *models.Block, ctx *Context) (Result, error) {
	list, err := ctx.ValueOr(b, "VALUE", order.Member, "[]")
	if err != nil {
		return Result{}, err
	}
	return Value("!"+list+".length", order.LogicalNot), nil
}

// indexOf is shared by lists_indexOf and text_indexOf.
func indexOf(b *models.Block, ctx *Context, fallback string) (Result, error) {
	var method string
	switch b.Field("END") {
	case "FIRST":
		method = "indexOf"
	case "LAST":
		method = "lastIndexOf"
	default:
		return Result{}, unhandled(b, "END")
	}
	item, err := ctx.ValueOr(b, "FIND", order.None, "''")
	if err != nil {
		return Result{}, err
	}
	seq, err := ctx.ValueOr(b, "VALUE", order.Member, fallback)
	if err != nil {
		return Result{}, err
	}
	code := seq + "." + method + "(" + item + ")"
	if b.OneBasedIndex() {
		return Value(code+" + 1", order.Addition), nil
	}
	return Value(code, order.FunctionCall), nil
}

func listsIndexOf(b *models.Block, ctx *Context) (Result, error) {
	return indexOf(b, ctx, "[]")
}

func fieldOr(b *models.Block, name, fallback string) string {
	if v := b.Field(name); v != "" {
		return v
	}
	return fallback
}

func listsGetIndex(b *models.Block, ctx *Context) (Result, error) {
	mode := fieldOr(b, "MODE", "GET")
	where := fieldOr(b, "WHERE", "FROM_START")
	listOrder := order.Member
	if where == "RANDOM" {
		listOrder = order.Comma
	}
	list, err := ctx.ValueOr(b, "VALUE", listOrder, "[]")
	if err != nil {
		return Result{}, err
	}

	switch where {
	case "FIRST":
		switch mode {
		case "GET":
			return Value(list+"[0]", order.Member), nil
		case "GET_REMOVE":
			return Value(list+".shift()", order.Member), nil
		case "REMOVE":
			return Statement(list + ".shift();\n"), nil
		}
	case "LAST":
		switch mode {
		case "GET":
			return Value(list+".slice(-1)[0]", order.Member), nil
		case "GET_REMOVE":
			return Value(list+".pop()", order.Member), nil
		case "REMOVE":
			return Statement(list + ".pop();\n"), nil
		}
	case "FROM_START":
		at, err := ctx.GetAdjusted(b, "AT", 0, false, order.None)
		if err != nil {
			return Result{}, err
		}
		switch mode {
		case "GET":
			return Value(list+"["+at+"]", order.Member), nil
		case "GET_REMOVE":
			return Value(list+".splice("+at+", 1)[0]", order.FunctionCall), nil
		case "REMOVE":
			return Statement(list + ".splice(" + at + ", 1);\n"), nil
		}
	case "FROM_END":
		at, err := ctx.GetAdjusted(b, "AT", 1, true, order.None)
		if err != nil {
			return Result{}, err
		}
		switch mode {
		case "GET":
			return Value(list+".slice("+at+")[0]", order.FunctionCall), nil
		case "GET_REMOVE":
			return Value(list+".splice("+at+", 1)[0]", order.FunctionCall), nil
		case "REMOVE":
			return Statement(list + ".splice(" + at + ", 1);\n"), nil
		}
	case "RANDOM":
		fn := ctx.ProvideFunction("listsGetRandomItem", listsGetRandomItem)
		code := fn + "(" + list + ", " + strconv.FormatBool(mode != "GET") + ")"
		switch mode {
		case "GET", "GET_REMOVE":
			return Value(code, order.FunctionCall), nil
		case "REMOVE":
			return Statement(code + ";\n"), nil
		}
	default:
		return Result{}, unhandled(b, "WHERE")
	}
	return Result{}, unhandled(b, "MODE")
}

func listsSetIndex(b *models.Block, ctx *Context) (Result, error) {
	list, err := ctx.ValueOr(b, "LIST", order.Member, "[]")
	if err != nil {
		return Result{}, err
	}
	mode := fieldOr(b, "MODE", "GET")
	where := fieldOr(b, "WHERE", "FROM_START")
	value, err := ctx.ValueOr(b, "TO", order.Assignment, "null")
	if err != nil {
		return Result{}, err
	}

	// cacheList evaluates a complex list expression once.
	cacheList := func() string {
		if simpleIdent.MatchString(list) {
			return ""
		}
		listVar := ctx.DistinctVariable("tmpList")
		code := "var " + listVar + " = " + list + ";\n"
		list = listVar
		return code
	}

	switch where {
	case "FIRST":
		switch mode {
		case "SET":
			return Statement(list + "[0] = " + value + ";\n"), nil
		case "INSERT":
			return Statement(list + ".unshift(" + value + ");\n"), nil
		}
	case "LAST":
		switch mode {
		case "SET":
			code := cacheList()
			return Statement(code + list + "[" + list + ".length - 1] = " + value + ";\n"), nil
		case "INSERT":
			return Statement(list + ".push(" + value + ");\n"), nil
		}
	case "FROM_START":
		at, err := ctx.GetAdjusted(b, "AT", 0, false, order.None)
		if err != nil {
			return Result{}, err
		}
		switch mode {
		case "SET":
			return Statement(list + "[" + at + "] = " + value + ";\n"), nil
		case "INSERT":
			return Statement(list + ".splice(" + at + ", 0, " + value + ");\n"), nil
		}
	case "FROM_END":
		at, err := ctx.GetAdjusted(b, "AT", 1, false, order.Subtraction)
		if err != nil {
			return Result{}, err
		}
		if mode != "SET" && mode != "INSERT" {
			break
		}
		code := cacheList()
		if mode == "SET" {
			return Statement(code + list + "[" + list + ".length - " + at + "] = " + value + ";\n"), nil
		}
		return Statement(code + list + ".splice(" + list + ".length - " + at + ", 0, " + value + ");\n"), nil
	case "RANDOM":
		if mode != "SET" && mode != "INSERT" {
			break
		}
		code := cacheList()
		xVar := ctx.DistinctVariable("tmpX")
		code += "var " + xVar + " = Math.floor(Math.random() * " + list + ".length);\n"
		if mode == "SET" {
			return Statement(code + list + "[" + xVar + "] = " + value + ";\n"), nil
		}
		return Statement(code + list + ".splice(" + xVar + ", 0, " + value + ");\n"), nil
	default:
		return Result{}, unhandled(b, "WHERE")
	}
	return Result{}, unhandled(b, "MODE")
}

// sliceBounds computes the two slice arguments for a sublist or substring
// taken directly with .slice().
func sliceBounds(b *models.Block, ctx *Context, seq string) (string, string, error) {
	var at1, at2 string
	var err error
	switch b.Field("WHERE1") {
	case "FROM_START":
		at1, err = ctx.GetAdjusted(b, "AT1", 0, false, order.None)
	case "FROM_END":
		at1, err = ctx.GetAdjusted(b, "AT1", 1, false, order.Subtraction)
		at1 = seq + ".length - " + at1
	case "FIRST":
		at1 = "0"
	default:
		return "", "", unhandled(b, "WHERE1")
	}
	if err != nil {
		return "", "", err
	}

	switch b.Field("WHERE2") {
	case "FROM_START":
		at2, err = ctx.GetAdjusted(b, "AT2", 1, false, order.None)
	case "FROM_END":
		at2, err = ctx.GetAdjusted(b, "AT2", 0, false, order.Subtraction)
		at2 = seq + ".length - " + at2
	case "LAST":
		at2 = seq + ".length"
	default:
		return "", "", unhandled(b, "WHERE2")
	}
	if err != nil {
		return "", "", err
	}
	return at1, at2, nil
}

// subsequenceCall slices seq through the subsequence helper.
func subsequenceCall(b *models.Block, ctx *Context, seq string) (string, error) {
	where1, where2 := b.Field("WHERE1"), b.Field("WHERE2")
	if _, ok := wherePascalCase[where1]; !ok || where1 == "LAST" {
		return "", unhandled(b, "WHERE1")
	}
	if _, ok := wherePascalCase[where2]; !ok || where2 == "FIRST" {
		return "", unhandled(b, "WHERE2")
	}
	at1, err := ctx.GetAdjusted(b, "AT1", 0, false, order.None)
	if err != nil {
		return "", err
	}
	at2, err := ctx.GetAdjusted(b, "AT2", 0, false, order.None)
	if err != nil {
		return "", err
	}
	fn := ctx.ProvideFunction(subsequence(where1, where2))
	code := fn + "(" + seq
	if takesIndex(where1) {
		code += ", " + at1
	}
	if takesIndex(where2) {
		code += ", " + at2
	}
	return code + ")", nil
}

func listsGetSublist(b *models.Block, ctx *Context) (Result, error) {
	list, err := ctx.ValueOr(b, "LIST", order.Member, "[]")
	if err != nil {
		return Result{}, err
	}
	where1, where2 := b.Field("WHERE1"), b.Field("WHERE2")

	var code string
	switch {
	case where1 == "FIRST" && where2 == "LAST":
		code = list + ".slice(0)"
	case simpleIdent.MatchString(list) || (where1 != "FROM_END" && where2 == "FROM_START"):
		at1, at2, err := sliceBounds(b, ctx, list)
		if err != nil {
			return Result{}, err
		}
		code = list + ".slice(" + at1 + ", " + at2 + ")"
	default:
		if code, err = subsequenceCall(b, ctx, list); err != nil {
			return Result{}, err
		}
	}
	return Value(code, order.FunctionCall), nil
}

func listsSort(b *models.Block, ctx *Context) (Result, error) {
	list, err := ctx.ValueOr(b, "LIST", order.FunctionCall, "[]")
	if err != nil {
		return Result{}, err
	}
	direction := "-1"
	if b.Field("DIRECTION") == "1" {
		direction = "1"
	}
	kind := b.Field("TYPE")
	switch kind {
	case "NUMERIC", "TEXT", "IGNORE_CASE":
	default:
		return Result{}, unhandled(b, "TYPE")
	}
	fn := ctx.ProvideFunction("listsGetSortCompare", listsGetSortCompare)
	return Value(list+".slice().sort("+fn+`("`+kind+`", `+direction+"))", order.FunctionCall), nil
}

func listsSplit(b *models.Block, ctx *Context) (Result, error) {
	input, err := ctx.ValueToCode(b, "INPUT", order.Member)
	if err != nil {
		return Result{}, err
	}
	delim, err := ctx.ValueOr(b, "DELIM", order.None, "''")
	if err != nil {
		return Result{}, err
	}
	var method string
	switch b.Field("MODE") {
	case "SPLIT":
		if input == "" {
			input = "''"
		}
		method = "split"
	case "JOIN":
		if input == "" {
			input = "[]"
		}
		method = "join"
	default:
		return Result{}, unhandled(b, "MODE")
	}
	return Value(input+"."+method+"("+delim+")", order.FunctionCall), nil
}

func listsReverse(b *models.Block, ctx *Context) (Result, error) {
	list, err := ctx.ValueOr(b, "LIST", order.FunctionCall, "[]")
	if err != nil {
		return Result{}, err
	}
	return Value(list+".slice().reverse()", order.FunctionCall), nil
}
