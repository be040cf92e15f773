package eval

import "github.com/go-jsexpr/jsexpr/internal/value"

// RefFunc resolves an identifier against a receiver (spec.md §6's
// reference-callback contract). this is the global sentinel for root
// lookups, or the preceding chain value for member access. Returning
// Undefined means "unknown"; returning an Error-kind value propagates.
type RefFunc func(this value.Value, ident value.Value, udata any) value.Value

// Env bundles the per-evaluation host configuration of spec.md §6: the
// no_case flag, the opaque user-data pointer, the reference callback, and
// the configured recursion limit (§4.8, 0 meaning "use the default").
type Env struct {
	NoCase   bool
	UData    any
	Ref      RefFunc
	MaxDepth int
}
