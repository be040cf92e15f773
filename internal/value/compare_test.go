package value

import "testing"

func TestLessNativeOrdering(t *testing.T) {
	if !Less(Int(1), Int(2), false) {
		t.Error("1 < 2 should hold")
	}
	if Less(Int(2), Int(1), false) {
		t.Error("2 < 1 should not hold")
	}
	if !Less(String("a"), String("b"), false) {
		t.Error(`"a" < "b" should hold`)
	}
}

func TestLessFallsBackToFloat64ForMixedKinds(t *testing.T) {
	if !Less(Int(1), Float(1.5), false) {
		t.Error("Int(1) < Float(1.5) should hold via to_f64")
	}
}

func TestLessNoCase(t *testing.T) {
	if Less(String("B"), String("a"), false) {
		// case-sensitive: "B" (0x42) < "a" (0x61) is true byte-wise.
	} else {
		t.Error(`case-sensitive "B" < "a" should hold byte-wise`)
	}
	if Less(String("B"), String("a"), true) {
		t.Error(`case-insensitive "B" < "a" should not hold ("b" sorts after "a")`)
	}
}

func TestNaNComparisonsAreFalse(t *testing.T) {
	nan := Float(nanValue())
	one := Float(1)
	if Less(nan, one, false) || Less(one, nan, false) {
		t.Error("NaN must never compare less than or greater than anything")
	}
	if LessOrEqual(nan, one, false) {
		t.Error("NaN <= 1 should be false")
	}
	if GreaterOrEqual(nan, one, false) {
		t.Error("NaN >= 1 should be false")
	}
}

func nanValue() float64 {
	var zero float64
	return zero / zero
}

func TestLooseEqualSameKind(t *testing.T) {
	if !LooseEqual(Int(5), Int(5), false) {
		t.Error("Int(5) == Int(5) should hold")
	}
	if LooseEqual(Int(5), Int(6), false) {
		t.Error("Int(5) == Int(6) should not hold")
	}
}

func TestLooseEqualCoercesAcrossKinds(t *testing.T) {
	if !LooseEqual(Int(1), String("1"), false) {
		t.Error(`Int(1) == String("1") should hold via to_f64`)
	}
	if !LooseEqual(Bool(true), Int(1), false) {
		t.Error("Bool(true) == Int(1) should hold via to_f64")
	}
}

func TestStrictEqualRequiresSameKind(t *testing.T) {
	if StrictEqual(Int(1), String("1"), false) {
		t.Error("Int(1) === String(\"1\") should not hold")
	}
	if !StrictEqual(Int(1), Int(1), false) {
		t.Error("Int(1) === Int(1) should hold")
	}
}
