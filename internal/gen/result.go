package gen

import "blockgen/internal/gen/order"

type ResultKind int

const (
	// KindHandled means the emitter stored its output elsewhere.
	KindHandled ResultKind = iota
	KindStatement
	KindValue
)

// Result is what an emitter returns. Value results carry the precedence of
// their outermost operator; statement results are newline-terminated text.
// The zero Result is KindHandled.
type Result struct {
	Code  string
	Order order.Order
	Kind  ResultKind
}

func Value(code string, o order.Order) Result {
	return Result{Code: code, Order: o, Kind: KindValue}
}

func Statement(code string) Result {
	return Result{Code: code, Kind: KindStatement}
}

func Handled() Result {
	return Result{}
}

func (r Result) IsValue() bool {
	return r.Kind == KindValue
}
