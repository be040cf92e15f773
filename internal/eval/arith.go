package eval

import (
	"math"

	"github.com/go-jsexpr/jsexpr/internal/evalerr"
	"github.com/go-jsexpr/jsexpr/internal/value"
)

// combineFunc combines two already-evaluated, non-error operands at one
// precedence level (spec.md §4.4 levels 5-11). Error checking happens once,
// in parseLeftAssoc, before a combineFunc is ever invoked.
type combineFunc func(left, right value.Value) value.Value

// propagateError implements spec.md §7's combiner rule: check each operand
// for error-kind first, the first one encountered wins.
func propagateError(left, right value.Value) (value.Value, bool) {
	if left.IsError() {
		return left, true
	}
	if right.IsError() {
		return right, true
	}
	return value.Value{}, false
}

func isIntegral(v value.Value) bool {
	return v.Kind() == value.KindInt || v.Kind() == value.KindUInt
}

func boolValue(b bool) value.Value { return value.Bool(b) }

func combineBitOr(a, b value.Value) value.Value {
	return value.Int(value.ToInt64(a) | value.ToInt64(b))
}

func combineBitXor(a, b value.Value) value.Value {
	return value.Int(value.ToInt64(a) ^ value.ToInt64(b))
}

func combineBitAnd(a, b value.Value) value.Value {
	return value.Int(value.ToInt64(a) & value.ToInt64(b))
}

// combineAdd implements spec.md §4.4 level 10's `+`: string concatenation
// when either side is a String, otherwise numeric addition that stays
// integral when both sides are. The concatenation result is copied into the
// evaluation arena (spec.md §3: computed strings live in the current
// evaluation arena).
func (p *parser) combineAdd(a, b value.Value) value.Value {
	if a.Kind() == value.KindString || b.Kind() == value.KindString {
		s, ok := p.arena.AllocString(value.Stringify(a) + value.Stringify(b))
		if !ok {
			return value.Error(evalerr.NewOutOfMemory())
		}
		return value.String(s)
	}
	switch {
	case a.Kind() == value.KindInt && b.Kind() == value.KindInt:
		return value.Int(a.Int() + b.Int())
	case a.Kind() == value.KindUInt && b.Kind() == value.KindUInt:
		return value.UInt(a.UInt() + b.UInt())
	case isIntegral(a) && isIntegral(b):
		return value.Int(value.ToInt64(a) + value.ToInt64(b))
	default:
		return value.Float(value.ToFloat64(a) + value.ToFloat64(b))
	}
}

func combineSub(a, b value.Value) value.Value {
	switch {
	case a.Kind() == value.KindInt && b.Kind() == value.KindInt:
		return value.Int(a.Int() - b.Int())
	case a.Kind() == value.KindUInt && b.Kind() == value.KindUInt:
		return value.UInt(a.UInt() - b.UInt())
	case isIntegral(a) && isIntegral(b):
		return value.Int(value.ToInt64(a) - value.ToInt64(b))
	default:
		return value.Float(value.ToFloat64(a) - value.ToFloat64(b))
	}
}

func combineMul(a, b value.Value) value.Value {
	switch {
	case a.Kind() == value.KindInt && b.Kind() == value.KindInt:
		return value.Int(a.Int() * b.Int())
	case a.Kind() == value.KindUInt && b.Kind() == value.KindUInt:
		return value.UInt(a.UInt() * b.UInt())
	case isIntegral(a) && isIntegral(b):
		return value.Int(value.ToInt64(a) * value.ToInt64(b))
	default:
		return value.Float(value.ToFloat64(a) * value.ToFloat64(b))
	}
}

// combineDiv implements spec.md §4.4 level 11's `/`. Division is always
// float-valued (matching JS); an integer-kind dividend and divisor with a
// zero divisor yields NaN rather than the ±Infinity IEEE division would
// otherwise produce.
func combineDiv(a, b value.Value) value.Value {
	bf := value.ToFloat64(b)
	if isIntegral(a) && isIntegral(b) && bf == 0 {
		return value.Float(math.NaN())
	}
	return value.Float(value.ToFloat64(a) / bf)
}

func combineMod(a, b value.Value) value.Value {
	return value.Float(math.Mod(value.ToFloat64(a), value.ToFloat64(b)))
}

func numericUnaryMinus(v value.Value) value.Value {
	switch v.Kind() {
	case value.KindInt:
		return value.Int(-v.Int())
	case value.KindFloat:
		return value.Float(-v.Float())
	default:
		return value.Float(-value.ToFloat64(v))
	}
}

func numericUnaryPlus(v value.Value) value.Value {
	switch v.Kind() {
	case value.KindInt, value.KindUInt, value.KindFloat:
		return v
	default:
		return value.Float(value.ToFloat64(v))
	}
}
