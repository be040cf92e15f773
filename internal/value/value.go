// Package value implements the tagged Value union of spec.md §3: the
// single data type every precedence level in internal/eval produces and
// consumes, with JavaScript-compatible coercion, comparison, and
// stringification semantics.
package value

import "github.com/go-jsexpr/jsexpr/internal/evalerr"

// Kind discriminates the variants of Value.
type Kind uint8

const (
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindFloat
	KindInt
	KindUInt
	KindString
	KindFunction
	KindObject
	KindArray
	KindJSON
	KindError
)

// String names the kind, used in error messages and the CLI.
func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindUInt:
		return "uint"
	case KindString:
		return "string"
	case KindFunction:
		return "function"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindJSON:
		return "json"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Callable is a host function value, invoked from call syntax. receiver is
// the expression preceding the call (e.g. `a` in `a.b(...)`), args is an
// Array-kind Value holding the evaluated argument list, and udata is the
// Env's opaque user-data pointer, threaded through unchanged.
type Callable func(receiver Value, args Value, udata any) Value

// objectMarker carries an Object value's opaque payload. The core never
// looks inside it — it is only ever compared for identity (the global
// sentinel check) or handed back to the host unchanged.
type objectMarker struct {
	ptr any
	tag uint32
}

var globalMarker = &objectMarker{}

// Value is a JavaScript-subset runtime value: exactly one of the Kind
// variants below is meaningful at a time, selected by Kind(). Copying a
// Value by assignment is always legal (spec.md §3 invariant).
type Value struct {
	kind Kind

	b   bool
	f   float64
	i   int64
	u   uint64
	s   string
	arr []Value
	fn  Callable
	obj *objectMarker
	err *evalerr.Error
}

func (v Value) Kind() Kind { return v.kind }

// Constructors

func Undefined() Value { return Value{kind: KindUndefined} }
func Null() Value      { return Value{kind: KindNull} }
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }
func Int(i int64) Value     { return Value{kind: KindInt, i: i} }
func UInt(u uint64) Value   { return Value{kind: KindUInt, u: u} }
func String(s string) Value { return Value{kind: KindString, s: s} }
func Array(elems []Value) Value {
	return Value{kind: KindArray, arr: elems}
}
func Function(fn Callable) Value {
	return Value{kind: KindFunction, fn: fn}
}

// Object constructs an opaque host object value. ptr and tag are never
// interpreted by the core.
func Object(ptr any, tag uint32) Value {
	return Value{kind: KindObject, obj: &objectMarker{ptr: ptr, tag: tag}}
}

// JSON constructs a Value viewing a raw JSON fragment (spec.md §3: "Json
// values are views into host-owned bytes; lifetime is the caller's
// responsibility").
func JSON(raw string) Value {
	return Value{kind: KindJSON, s: raw}
}

// Error wraps an *evalerr.Error as a Value so it can flow through the
// evaluator like any other value (spec.md §7: "Errors are values").
func Error(err *evalerr.Error) Value {
	return Value{kind: KindError, err: err}
}

// Global returns the sentinel Object value used as `this` for root
// identifier lookups (spec.md §3, §4.6).
func Global() Value {
	return Value{kind: KindObject, obj: globalMarker}
}

// IsGlobal reports whether v is the global sentinel returned by Global().
func IsGlobal(v Value) bool {
	return v.kind == KindObject && v.obj == globalMarker
}

// Accessors. Calling the wrong accessor for v.Kind() returns the zero
// value, matching the "total function" style of the rest of this package.

func (v Value) Bool() bool { return v.b }
func (v Value) Float() float64 {
	return v.f
}
func (v Value) Int() int64   { return v.i }
func (v Value) UInt() uint64 { return v.u }

// Str returns the raw payload for String and JSON kinds.
func (v Value) Str() string { return v.s }

func (v Value) ArrayElems() []Value { return v.arr }

func (v Value) Func() Callable { return v.fn }

// ObjectPtr and ObjectTag return an Object value's opaque payload.
func (v Value) ObjectPtr() any {
	if v.obj == nil {
		return nil
	}
	return v.obj.ptr
}

func (v Value) ObjectTag() uint32 {
	if v.obj == nil {
		return 0
	}
	return v.obj.tag
}

// Err returns the wrapped error for an Error-kind Value, or nil.
func (v Value) Err() *evalerr.Error {
	return v.err
}

// IsError reports whether v is an Error-kind value.
func (v Value) IsError() bool { return v.kind == KindError }

// IsNullish reports whether v is Undefined or Null, the condition `??`
// tests (spec.md §4.4 level 3).
func (v Value) IsNullish() bool {
	return v.kind == KindUndefined || v.kind == KindNull
}

// IsNumeric reports whether v is one of the three numeric kinds.
func (v Value) IsNumeric() bool {
	return v.kind == KindFloat || v.kind == KindInt || v.kind == KindUInt
}
