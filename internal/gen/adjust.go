package gen

import (
	"blockgen/internal/api/models"
	"blockgen/internal/gen/order"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var numberLiteral = regexp.MustCompile(`^\s*-?\d+(\.\d+)?\s*$`)

// IsNumber reports whether code is a plain decimal literal.
func IsNumber(code string) bool {
	return numberLiteral.MatchString(code)
}

// FormatNumber renders f the way a JavaScript engine prints numbers.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		exp = strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + exp
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// GetAdjusted emits the index held in the named socket of b, shifted by
// delta and optionally negated, so that it addresses a zero-based sequence.
// With one-based indexing the delta is lowered by one. Literal indexes are
// folded; dynamic ones are grouped only when the slot of precedence outer
// needs it. Pass order.None when the slot imposes nothing.
func (ctx *Context) GetAdjusted(b *models.Block, input string, delta int, negate bool, outer order.Order) (string, error) {
	if outer == order.Atomic {
		outer = order.None
	}
	fallback := "0"
	if b.OneBasedIndex() {
		delta--
		fallback = "1"
	}

	request := outer
	switch {
	case delta > 0:
		request = order.Addition
	case delta < 0:
		request = order.Subtraction
	case negate:
		request = order.UnaryNegation
	}
	at, err := ctx.ValueOr(b, input, request, fallback)
	if err != nil {
		return "", err
	}

	if IsNumber(at) {
		n, err := strconv.ParseFloat(strings.TrimSpace(at), 64)
		if err != nil {
			return "", err
		}
		n += float64(delta)
		if negate {
			n = -n
		}
		return FormatNumber(n), nil
	}

	var inner order.Order
	adjusted := false
	switch {
	case delta > 0:
		at = at + " + " + strconv.Itoa(delta)
		inner, adjusted = order.Addition, true
	case delta < 0:
		at = at + " - " + strconv.Itoa(-delta)
		inner, adjusted = order.Subtraction, true
	}
	if negate {
		if delta != 0 {
			at = "-(" + at + ")"
		} else {
			at = "-" + at
		}
		inner, adjusted = order.UnaryNegation, true
	}
	if adjusted {
		at = order.Wrap(at, outer, inner)
	}
	return at, nil
}
