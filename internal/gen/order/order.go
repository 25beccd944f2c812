// Package order holds the JavaScript operator precedence levels used when
// emitting expressions. Lower values bind tighter.
package order

import (
	"math"
	"strconv"
)

// Order is a precedence level. Levels that share an integral part belong to
// the same class.
type Order float64

const (
	Atomic         Order = 0   // 0 "" ...
	New            Order = 1.1 // new
	Member         Order = 1.2 // . []
	FunctionCall   Order = 2   // ()
	Increment      Order = 3   // ++
	Decrement      Order = 3   // --
	BitwiseNot     Order = 4.1 // ~
	UnaryPlus      Order = 4.2 // +
	UnaryNegation  Order = 4.3 // -
	LogicalNot     Order = 4.4 // !
	Typeof         Order = 4.5 // typeof
	Void           Order = 4.6 // void
	Delete         Order = 4.7 // delete
	Await          Order = 4.8 // await
	Exponentiation Order = 5.0 // **
	Multiplication Order = 5.1 // *
	Division       Order = 5.2 // /
	Modulus        Order = 5.3 // %
	Subtraction    Order = 6.1 // -
	Addition       Order = 6.2 // +
	BitwiseShift   Order = 7   // << >> >>>
	Relational     Order = 8   // < <= > >=
	In             Order = 8   // in
	Instanceof     Order = 8   // instanceof
	Equality       Order = 9   // == != === !==
	BitwiseAnd     Order = 10  // &
	BitwiseXor     Order = 11  // ^
	BitwiseOr      Order = 12  // |
	LogicalAnd     Order = 13  // &&
	LogicalOr      Order = 14  // ||
	Conditional    Order = 15  // ?:
	Assignment     Order = 16  // = += -= **= *= /= %= <<= >>= ...
	Yield          Order = 17  // yield
	Comma          Order = 18  // ,
	None           Order = 99  // (...)
)

type pair struct {
	outer, inner Order
}

// overrides lists (outer, inner) pairs that never need grouping even though
// they share a class. Subtraction, division and modulus are absent on purpose:
// a - (b - c) and a / (b / c) change meaning without the parentheses.
var overrides = map[pair]struct{}{
	{FunctionCall, Member}:           {}, // a.b.c()
	{FunctionCall, FunctionCall}:     {}, // a()()
	{Member, Member}:                 {}, // a.b.c
	{Member, FunctionCall}:           {}, // a().b
	{LogicalNot, LogicalNot}:         {}, // !!a
	{Multiplication, Multiplication}: {}, // a * (b * c)
	{Addition, Addition}:             {}, // a + (b + c)
	{LogicalAnd, LogicalAnd}:         {}, // a && (b && c)
	{LogicalOr, LogicalOr}:           {}, // a || (b || c)
}

// Class returns the integral class of the level.
func (o Order) Class() int {
	return int(math.Floor(float64(o)))
}

func (o Order) String() string {
	return strconv.FormatFloat(float64(o), 'f', -1, 64)
}

// IsOverride reports whether the pair is on the safe-override list.
func IsOverride(outer, inner Order) bool {
	_, ok := overrides[pair{outer, inner}]
	return ok
}

// NeedsParens reports whether an expression of level inner must be grouped
// when placed in a slot that requested level outer.
func NeedsParens(outer, inner Order) bool {
	oc, ic := outer.Class(), inner.Class()
	if oc > ic {
		return false
	}
	if oc == ic && (oc == Atomic.Class() || oc == None.Class()) {
		return false
	}
	return !IsOverride(outer, inner)
}

// Wrap groups code when NeedsParens says so.
func Wrap(code string, outer, inner Order) string {
	if NeedsParens(outer, inner) {
		return "(" + code + ")"
	}
	return code
}
