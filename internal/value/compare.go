package value

import (
	"math"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var noCaseCollator = collate.New(language.English, collate.IgnoreCase)

// Less implements the native ordering of spec.md §4.5: when both operands
// share a kind that has a native order (Float, Int, UInt, String), compare
// directly; otherwise fall back to to_f64 comparison. noCase requests
// case-insensitive string ordering, grounded on the teacher's
// CompareLocaleStr (golang.org/x/text/collate with collate.IgnoreCase).
func Less(a, b Value, noCase bool) bool {
	if a.Kind() == b.Kind() {
		switch a.Kind() {
		case KindFloat:
			return a.Float() < b.Float()
		case KindInt:
			return a.Int() < b.Int()
		case KindUInt:
			return a.UInt() < b.UInt()
		case KindString:
			if noCase {
				return noCaseCollator.CompareString(a.Str(), b.Str()) < 0
			}
			return a.Str() < b.Str()
		}
	}
	return ToFloat64(a) < ToFloat64(b)
}

// LessOrEqual implements spec.md §4.5's `a<=b` as `a<b || !(b<a)`, except
// that a comparison with a NaN operand is false, giving the IEEE-NaN
// behavior: any comparison involving NaN is false, except through the `!=`
// path in LooseEqual.
func LessOrEqual(a, b Value, noCase bool) bool {
	if hasNaNOperand(a, b) {
		return false
	}
	return Less(a, b, noCase) || !Less(b, a, noCase)
}

// GreaterOrEqual is LessOrEqual's mirror: `a>=b` as `a>b || !(b>a)`, i.e.
// `Less(b,a) || !Less(a,b)`, and likewise false with a NaN operand.
func GreaterOrEqual(a, b Value, noCase bool) bool {
	if hasNaNOperand(a, b) {
		return false
	}
	return Less(b, a, noCase) || !Less(a, b, noCase)
}

// hasNaNOperand reports whether Less would compare a and b as float64s with
// at least one of them NaN.
func hasNaNOperand(a, b Value) bool {
	if a.Kind() == b.Kind() {
		switch a.Kind() {
		case KindInt, KindUInt, KindString:
			return false
		}
	}
	return math.IsNaN(ToFloat64(a)) || math.IsNaN(ToFloat64(b))
}

// orderEqual reports whether a and b are neither less nor greater than one
// another under Less — the notion of equality spec.md §4.5's loose
// equality is built on when both sides share a kind.
func orderEqual(a, b Value, noCase bool) bool {
	return !Less(a, b, noCase) && !Less(b, a, noCase)
}

// LooseEqual implements spec.md §4.5's `==`: ordering-equal when both
// sides share a kind (two Floats compare with IEEE `==`, so NaN is never
// equal), else both sides coerced via to_f64 and compared.
func LooseEqual(a, b Value, noCase bool) bool {
	if a.Kind() == b.Kind() {
		if a.Kind() == KindFloat {
			return a.Float() == b.Float()
		}
		return orderEqual(a, b, noCase)
	}
	af, bf := ToFloat64(a), ToFloat64(b)
	return af == bf
}

// StrictEqual implements spec.md §4.5's `===`: kinds must match, then
// loose equality is applied.
func StrictEqual(a, b Value, noCase bool) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	return LooseEqual(a, b, noCase)
}
