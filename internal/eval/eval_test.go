package eval

import (
	"strconv"
	"strings"
	"testing"

	"github.com/go-jsexpr/jsexpr/internal/arena"
	"github.com/go-jsexpr/jsexpr/internal/evalerr"
	"github.com/go-jsexpr/jsexpr/internal/value"
)

func run(t *testing.T, expr string, env *Env) value.Value {
	t.Helper()
	if env == nil {
		env = &Env{}
	}
	a := arena.New(0)
	got := Eval(expr, env, a)
	a.Reset()
	return got
}

func runStr(t *testing.T, expr string, env *Env) string {
	t.Helper()
	return value.Stringify(run(t, expr, env))
}

// --- spec.md §8 concrete scenarios ---

func TestScenario1Arithmetic(t *testing.T) {
	if got := runStr(t, "1 + 2 * (10 * 20)", nil); got != "401" {
		t.Errorf("got %q, want 401", got)
	}
}

func TestScenario2StringConcat(t *testing.T) {
	if got := runStr(t, "'hello' + ' ' + 'world'", nil); got != "hello world" {
		t.Errorf("got %q, want %q", got, "hello world")
	}
}

func TestScenario3JsonChainAccess(t *testing.T) {
	env := &Env{Ref: jsonRefEnv(`{"data":[1,true,false,null,{"a":1}]}`)}
	if got := runStr(t, "json.data[3] == null", env); got != "true" {
		t.Errorf("got %q, want true", got)
	}
}

func TestScenario4HostI64Builtins(t *testing.T) {
	env := &Env{Ref: i64u64RefEnv()}
	if got := runStr(t, `i64("9223372036854775807") - i64("1")`, env); got != "9223372036854775806" {
		t.Errorf("got %q, want 9223372036854775806", got)
	}
}

func TestScenario5ShortCircuitLogic(t *testing.T) {
	if got := runStr(t, "(1 || (2 > 5)) && (4 < 5 || 5 < 4)", nil); got != "true" {
		t.Errorf("got %q, want true", got)
	}
}

func TestScenario6CallOnUndefinedIsNotAFunction(t *testing.T) {
	if got := runStr(t, "howdy()", nil); got != "TypeError: howdy is not a function" {
		t.Errorf("got %q", got)
	}
}

func TestScenario7MemberOfUndefinedIsChainedTypeError(t *testing.T) {
	if got := runStr(t, "a.b", nil); got != "TypeError: Cannot read properties of undefined (reading 'b')" {
		t.Errorf("got %q", got)
	}
}

func TestScenario8OptionalChainSwallowsUndefined(t *testing.T) {
	if got := runStr(t, "a?.b", nil); got != "undefined" {
		t.Errorf("got %q, want undefined", got)
	}
}

func TestScenario9CaseSensitiveOrdering(t *testing.T) {
	env := &Env{NoCase: false}
	if got := runStr(t, "'HI' < 'hi'", env); got != "true" {
		t.Errorf("got %q, want true", got)
	}
}

func TestScenario10NoCaseOrdering(t *testing.T) {
	env := &Env{NoCase: true}
	if got := runStr(t, "'HI' < 'hi'", env); got != "false" {
		t.Errorf("got %q, want false", got)
	}
}

// --- universal invariants (spec.md §8) ---

func TestArenaCountersZeroAfterCleanup(t *testing.T) {
	a := arena.New(0)
	_ = Eval(`'a' + 'b' + 'c'`, &Env{}, a)
	a.Reset()
	stats := a.Stats()
	if stats.SlabUsed != 0 || stats.HeapAllocs != 0 || stats.HeapBytes != 0 {
		t.Errorf("counters not zero after cleanup: %+v", stats)
	}
}

func TestOperatorPrecedenceAdditiveMultiplicative(t *testing.T) {
	if got := runStr(t, "2 + 3*4", nil); got != "14" {
		t.Errorf("2 + 3*4 = %q, want 14", got)
	}
	if got := runStr(t, "2*3 + 4", nil); got != "10" {
		t.Errorf("2*3 + 4 = %q, want 10", got)
	}
}

func TestDoubleNegationIsToBool(t *testing.T) {
	if got := runStr(t, "!!1", nil); got != "true" {
		t.Errorf("!!1 = %q, want true", got)
	}
	if got := runStr(t, "!!0", nil); got != "false" {
		t.Errorf("!!0 = %q, want false", got)
	}
}

func TestNullishCoalescing(t *testing.T) {
	tests := []struct{ expr, want string }{
		{"undefined ?? 5", "5"},
		{"null ?? 5", "5"},
		{"0 ?? 5", "0"},
		{"'' ?? 5", ""},
	}
	for _, tt := range tests {
		if got := runStr(t, tt.expr, nil); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.expr, got, tt.want)
		}
	}
}

func TestShortCircuitDoesNotInvokeSideEffect(t *testing.T) {
	called := false
	env := &Env{Ref: func(this, ident value.Value, udata any) value.Value {
		if ident.Str() == "sideEffect" {
			return value.Function(func(receiver, args value.Value, udata any) value.Value {
				called = true
				return value.Bool(true)
			})
		}
		return value.Undefined()
	}}
	run(t, "false && sideEffect()", env)
	if called {
		t.Error("false && sideEffect() should not call sideEffect")
	}
	run(t, "true || sideEffect()", env)
	if called {
		t.Error("true || sideEffect() should not call sideEffect")
	}
}

func TestDepthLimit(t *testing.T) {
	ok := "(" + strings.Repeat("(", 99) + "1" + strings.Repeat(")", 99) + ")"
	if got := runStr(t, ok, nil); got != "1" {
		t.Errorf("100 levels of parens: got %q, want 1", got)
	}
	tooDeep := "(" + strings.Repeat("(", 100) + "1" + strings.Repeat(")", 100) + ")"
	got := run(t, tooDeep, nil)
	if !got.IsError() {
		t.Fatalf("expected MaxDepthError, got %+v", got)
	}
	if got.Err().Payload() != "MaxDepthError" {
		t.Errorf("payload = %q, want MaxDepthError", got.Err().Payload())
	}
}

func TestUnarySignFolding(t *testing.T) {
	if got := runStr(t, "- - - -1", nil); got != "1" {
		t.Errorf("- - - -1 = %q, want 1", got)
	}
	if got := runStr(t, "- - - -1 - 2", nil); got != "-1" {
		t.Errorf("- - - -1 - 2 = %q, want -1", got)
	}
}

func TestArrayOfOneMultiplication(t *testing.T) {
	tests := []struct{ expr, want string }{
		{"[11]*2", "22"},
		{"[]*2", "0"},
		{"[11,22]*2", "NaN"},
	}
	for _, tt := range tests {
		if got := runStr(t, tt.expr, nil); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.expr, got, tt.want)
		}
	}
}

func TestOptionalChainOnDefinedReceiverMissingMemberIsUndefined(t *testing.T) {
	env := &Env{Ref: func(this, ident value.Value, udata any) value.Value {
		if ident.Str() == "obj" {
			return value.Object(nil, 1)
		}
		return value.Undefined()
	}}
	if got := runStr(t, "obj?.missing", env); got != "undefined" {
		t.Errorf("got %q, want undefined", got)
	}
}

func TestDivisionAndModByZero(t *testing.T) {
	if got := runStr(t, "1 / 0", nil); got != "NaN" {
		t.Errorf("1/0 = %q, want NaN", got)
	}
	if got := runStr(t, "1 % 0", nil); got != "NaN" {
		t.Errorf("1%%0 = %q, want NaN", got)
	}
}

func TestCommaSequenceReturnsLastEvaluatesAll(t *testing.T) {
	var order []string
	env := &Env{Ref: func(this, ident value.Value, udata any) value.Value {
		order = append(order, ident.Str())
		switch ident.Str() {
		case "a":
			return value.Int(1)
		case "b":
			return value.Int(2)
		}
		return value.Undefined()
	}}
	if got := runStr(t, "(a, b)", env); got != "2" {
		t.Errorf("(a,b) = %q, want 2", got)
	}
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Errorf("evaluation order = %v, want [a b]", order)
	}
}

// jsonRefEnv resolves the identifier "json" to a Json-kind Value over raw.
func jsonRefEnv(raw string) RefFunc {
	return func(this, ident value.Value, udata any) value.Value {
		if ident.Str() == "json" {
			return value.JSON(raw)
		}
		return value.Undefined()
	}
}

// i64u64RefEnv registers i64/u64 as ordinary host-resolved functions for
// spec.md §8 scenario 4: these are not the NNi64/NNu64 literal suffix of
// §4.6, just identifiers a host happens to bind to parsing functions.
func i64u64RefEnv() RefFunc {
	return func(this, ident value.Value, udata any) value.Value {
		switch ident.Str() {
		case "i64":
			return value.Function(func(receiver, args value.Value, udata any) value.Value {
				s := value.Stringify(args.ArrayElems()[0])
				n, err := strconv.ParseInt(s, 10, 64)
				if err != nil {
					return value.Error(evalerr.NewSyntax("bad i64 literal"))
				}
				return value.Int(n)
			})
		case "u64":
			return value.Function(func(receiver, args value.Value, udata any) value.Value {
				s := value.Stringify(args.ArrayElems()[0])
				n, err := strconv.ParseUint(s, 10, 64)
				if err != nil {
					return value.Error(evalerr.NewSyntax("bad u64 literal"))
				}
				return value.UInt(n)
			})
		}
		return value.Undefined()
	}
}
