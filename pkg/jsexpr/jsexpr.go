// Package jsexpr is the public, embeddable surface of the evaluator:
// functional-options configuration in the shape of the teacher's own
// pkg/dwscript (dwscript.New(WithTypeCheck(false))), plus the value
// constructors/accessors a host needs to build an Env and read results
// back out, without reaching into internal/*.
package jsexpr

import (
	"errors"

	"github.com/go-jsexpr/jsexpr/internal/arena"
	"github.com/go-jsexpr/jsexpr/internal/eval"
	"github.com/go-jsexpr/jsexpr/internal/value"
)

// Value is the evaluator's tagged-union runtime value. Copying a Value by
// assignment is always legal.
type Value = value.Value

// Callable is a host function value, invoked from call syntax.
type Callable = value.Callable

// RefFunc resolves an identifier or member name against a receiver. this
// is the global sentinel for root identifiers, or the preceding chain
// segment's value for member access.
type RefFunc = eval.RefFunc

// Value construction, re-exported from internal/value so hosts never need
// to import an internal package to build an Env or a Callable's result.
var (
	Undefined = value.Undefined
	Null      = value.Null
	Bool      = value.Bool
	Float     = value.Float
	Int       = value.Int
	UInt      = value.UInt
	String    = value.String
	Array     = value.Array
	Function  = value.Function
	Object    = value.Object
	JSON      = value.JSON
	Global    = value.Global
	IsGlobal  = value.IsGlobal
	Stringify = value.Stringify
)

// Engine bundles the evaluation configuration (Env, depth/slab sizing)
// behind one embeddable type, the same shape the teacher's dwscript.Engine
// gives a host: construct once with New, then call Eval repeatedly.
type Engine struct {
	env      eval.Env
	slabSize int

	lastStats    arena.Stats
	allocatorErr error
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithNoCase makes string comparison and ordering case-insensitive
// (spec §4.5), off by default.
func WithNoCase(noCase bool) Option {
	return func(e *Engine) { e.env.NoCase = noCase }
}

// WithMaxDepth overrides the sub-expression recursion limit (spec §4.8,
// default 100 when unset or non-positive).
func WithMaxDepth(maxDepth int) Option {
	return func(e *Engine) { e.env.MaxDepth = maxDepth }
}

// WithSlabSize overrides the per-evaluation arena's fixed slab size in
// bytes (spec §4.1, default 1024).
func WithSlabSize(bytes int) Option {
	return func(e *Engine) { e.slabSize = bytes }
}

// WithRef installs the host callback used to resolve root identifiers and
// member access (spec §6). An Engine with no RefFunc treats every
// identifier as undefined.
func WithRef(ref RefFunc) Option {
	return func(e *Engine) { e.env.Ref = ref }
}

// WithUserData sets the opaque value threaded unchanged through every
// RefFunc and Callable invocation.
func WithUserData(udata any) Option {
	return func(e *Engine) { e.env.UData = udata }
}

// WithAllocator installs a host-provided {malloc, free} pair in place of
// the Go-heap-backed default, for arena overflow blocks (spec §4.1/§5).
// Per internal/arena this is process-wide and one-shot: New returns an
// error if an allocator was already installed, by this Engine or another.
func WithAllocator(alloc func(n int) []byte, free func([]byte)) Option {
	return func(e *Engine) {
		if !arena.SetAllocator(alloc, free) {
			e.allocatorErr = errAllocatorAlreadySet
		}
	}
}

var errAllocatorAlreadySet = errors.New("jsexpr: allocator already installed")

// New constructs an Engine. It only returns an error when a WithAllocator
// option could not install its allocator (one already installed process-wide).
func New(opts ...Option) (*Engine, error) {
	e := &Engine{slabSize: 1024}
	for _, opt := range opts {
		opt(e)
	}
	if e.allocatorErr != nil {
		return nil, e.allocatorErr
	}
	return e, nil
}

// Eval parses and evaluates expr, returning the resulting Value. err is
// non-nil exactly when the result is Error-kind, wrapping the same
// *evalerr.Error so a host can use errors.As/errors.Is conventionally;
// the Value itself is still returned for hosts that prefer to branch on
// Value.IsError() directly.
//
// The evaluation arena is created fresh and reset before Eval returns, so
// MemStats reflects this call's usage, not a running total, and a
// previously returned String/Array Value's backing bytes must not be
// retained past the next Eval call (spec §3).
func (e *Engine) Eval(expr string) (Value, error) {
	a := arena.New(e.slabSize)
	result := eval.Eval(expr, &e.env, a)
	e.lastStats = a.Stats()
	a.Reset()
	if result.IsError() {
		return result, result.Err()
	}
	return result, nil
}

// MemStats reports the arena counters from the most recently completed
// Eval call.
func (e *Engine) MemStats() arena.Stats {
	return e.lastStats
}
