package value

import (
	"math"
	"strconv"
	"strings"
)

// Stringify stringifies v per spec.md §4.7. Used for display, for
// `[expr]`-chain-segment stringification (spec.md §4.6), and for
// coercion-by-concatenation (§4.2).
func Stringify(v Value) string {
	switch v.Kind() {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBool:
		if v.Bool() {
			return "true"
		}
		return "false"
	case KindFloat:
		return formatFloat(v.Float())
	case KindInt:
		return strconv.FormatInt(v.Int(), 10)
	case KindUInt:
		return strconv.FormatUint(v.UInt(), 10)
	case KindString:
		return v.Str()
	case KindFunction:
		return "[Function]"
	case KindObject:
		return "[Object]"
	case KindArray:
		return formatArray(v.ArrayElems())
	case KindJSON:
		return v.Str()
	case KindError:
		if err := v.Err(); err != nil {
			return err.Render()
		}
		return "Error"
	default:
		return ""
	}
}

// formatFloat writes the shortest decimal that round-trips, with
// Infinity/-Infinity/NaN spelled the JS way rather than Go's
// "+Inf"/"-Inf"/"NaN" forms (NaN happens to already match). Finite values
// use Go's %g layout, not JavaScript's: exponent form is used when the
// decimal exponent is 6 or more or below -4 (so 1e6 prints as "1e+06",
// where JavaScript prints "1000000"), and the exponent has at least two
// digits.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}

func formatArray(elems []Value) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = Stringify(e)
	}
	return strings.Join(parts, ",")
}
