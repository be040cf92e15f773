package value

import (
	"math"
	"testing"
)

func TestToFloat64(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want float64
	}{
		{"undefined", Undefined(), math.NaN()},
		{"null", Null(), 0},
		{"true", Bool(true), 1},
		{"false", Bool(false), 0},
		{"float", Float(3.5), 3.5},
		{"int", Int(-7), -7},
		{"uint", UInt(7), 7},
		{"string-number", String("42.5"), 42.5},
		{"string-infinity", String("Infinity"), math.Inf(1)},
		{"string-neg-infinity", String("-Infinity"), math.Inf(-1)},
		{"string-garbage", String("abc"), math.NaN()},
		{"string-empty", String(""), 0},
		{"array-empty", Array(nil), 0},
		{"array-one", Array([]Value{Int(9)}), 9},
		{"array-many", Array([]Value{Int(1), Int(2)}), math.NaN()},
		{"json-array-empty", JSON("[]"), 0},
		{"json-array-one", JSON("[3]"), 3},
		{"json-array-many", JSON("[1,2]"), math.NaN()},
		{"json-scalar", JSON("5"), math.NaN()},
		{"function", Function(nil), math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToFloat64(tt.v)
			if math.IsNaN(tt.want) {
				if !math.IsNaN(got) {
					t.Errorf("ToFloat64() = %v, want NaN", got)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ToFloat64() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToInt64(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want int64
	}{
		{"int-direct", Int(42), 42},
		{"null", Null(), 0},
		{"bool-true", Bool(true), 1},
		{"nan-float", Float(math.NaN()), 0},
		{"small-float-truncates", Float(3.9), 3},
		{"small-negative-float-truncates", Float(-3.9), -3},
		{"huge-positive-clamps", Float(1e30), math.MaxInt64},
		{"huge-negative-clamps", Float(-1e30), math.MinInt64},
		{"beyond-safe-floors", Float(9007199254740993.0), 9007199254740992},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToInt64(tt.v); got != tt.want {
				t.Errorf("ToInt64() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToUint64(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want uint64
	}{
		{"uint-direct", UInt(42), 42},
		{"negative-float-clamps-to-zero", Float(-5), 0},
		{"nan-float", Float(math.NaN()), 0},
		{"huge-clamps", Float(1e30), math.MaxUint64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToUint64(tt.v); got != tt.want {
				t.Errorf("ToUint64() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToBool(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"undefined", Undefined(), false},
		{"null", Null(), false},
		{"zero-float", Float(0), false},
		{"neg-zero-float", Float(math.Copysign(0, -1)), false},
		{"nan-float", Float(math.NaN()), false},
		{"nonzero-float", Float(0.1), true},
		{"zero-int", Int(0), false},
		{"nonzero-int", Int(-1), true},
		{"zero-uint", UInt(0), false},
		{"empty-string", String(""), false},
		{"nonempty-string", String("x"), true},
		{"array", Array(nil), true},
		{"function", Function(nil), true},
		{"json", JSON("null"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToBool(tt.v); got != tt.want {
				t.Errorf("ToBool() = %v, want %v", got, tt.want)
			}
		})
	}
}
