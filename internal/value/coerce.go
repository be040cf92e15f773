package value

import (
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// int64 clamp thresholds from spec.md §4.2: the largest magnitude for
// which a float64 can represent every integer exactly (2^53-1), and the
// nearest float64 below 2^63 (int64 itself cannot represent 2^63).
const (
	maxSafeInteger  = 9007199254740991.0
	int64ClampLimit = 9223372036854774784.0
	uint64ClampTop  = 18446744073709549568.0
)

// ToFloat64 implements spec.md §4.2's to_f64: a total function from any
// Value to float64.
func ToFloat64(v Value) float64 {
	switch v.Kind() {
	case KindUndefined:
		return math.NaN()
	case KindNull:
		return 0
	case KindBool:
		if v.Bool() {
			return 1
		}
		return 0
	case KindFloat:
		return v.Float()
	case KindInt:
		return float64(v.Int())
	case KindUInt:
		return float64(v.UInt())
	case KindString:
		return parseNumericString(v.Str())
	case KindArray:
		return arrayToFloat64(v.ArrayElems())
	case KindJSON:
		return jsonToFloat64(v.Str())
	default:
		return math.NaN()
	}
}

func arrayToFloat64(elems []Value) float64 {
	switch len(elems) {
	case 0:
		return 0
	case 1:
		return ToFloat64(elems[0])
	default:
		return math.NaN()
	}
}

func jsonToFloat64(raw string) float64 {
	r := gjson.Parse(raw)
	if !r.IsArray() {
		return math.NaN()
	}
	arr := r.Array()
	switch len(arr) {
	case 0:
		return 0
	case 1:
		return jsonResultToFloat64(arr[0])
	default:
		return math.NaN()
	}
}

func jsonResultToFloat64(r gjson.Result) float64 {
	switch r.Type {
	case gjson.Number:
		return r.Num
	case gjson.String:
		return parseNumericString(r.Str)
	case gjson.True:
		return 1
	case gjson.False, gjson.Null:
		return 0
	case gjson.JSON:
		return jsonToFloat64(r.Raw)
	default:
		return math.NaN()
	}
}

// parseNumericString mirrors strtod: leading/trailing whitespace is
// ignored, "Infinity"/"-Infinity" are recognized, anything else that
// fails to parse entirely yields NaN.
func parseNumericString(s string) float64 {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0
	}
	switch trimmed {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// ToInt64 implements spec.md §4.2's to_i64.
func ToInt64(v Value) int64 {
	switch v.Kind() {
	case KindInt:
		return v.Int()
	case KindNull:
		return 0
	case KindBool:
		if v.Bool() {
			return 1
		}
		return 0
	default:
		return floatToInt64(ToFloat64(v))
	}
}

func floatToInt64(f float64) int64 {
	if math.IsNaN(f) {
		return 0
	}
	if f >= -maxSafeInteger && f <= maxSafeInteger {
		return int64(f)
	}
	if f > 0 {
		f = math.Floor(f)
	} else {
		f = math.Ceil(f)
	}
	if f >= int64ClampLimit {
		return math.MaxInt64
	}
	if f <= -int64ClampLimit {
		return math.MinInt64
	}
	return int64(f)
}

// ToUint64 implements spec.md §4.2's to_u64.
func ToUint64(v Value) uint64 {
	switch v.Kind() {
	case KindUInt:
		return v.UInt()
	case KindNull:
		return 0
	case KindBool:
		if v.Bool() {
			return 1
		}
		return 0
	default:
		return floatToUint64(ToFloat64(v))
	}
}

func floatToUint64(f float64) uint64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f <= maxSafeInteger {
		return uint64(f)
	}
	f = math.Floor(f)
	if f >= uint64ClampTop {
		return math.MaxUint64
	}
	return uint64(f)
}

// ToBool implements spec.md §4.2's to_bool.
func ToBool(v Value) bool {
	switch v.Kind() {
	case KindUndefined, KindNull:
		return false
	case KindFloat:
		f := v.Float()
		return f != 0 && !math.IsNaN(f)
	case KindInt:
		return v.Int() != 0
	case KindUInt:
		return v.UInt() != 0
	case KindString:
		return len(v.Str()) != 0
	default:
		return true
	}
}
