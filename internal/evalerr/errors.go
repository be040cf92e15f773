// Package evalerr implements the error taxonomy of spec.md §3 and §7: a
// small flag set plus an optional payload, and the bit-exact rendering
// table of §6. Errors are values (not Go errors raised via panic/return
// plumbing) — internal/value wraps *Error as an Error-kind Value so it
// can flow through the evaluator the same way any other value does.
package evalerr

import "fmt"

// Flag is one bit of spec.md §3's error flag set. A single *Error may
// carry more than one flag (e.g. UndefinedIdentifier|ChainedAccess).
type Flag uint8

const (
	Syntax Flag = 1 << iota
	OutOfMemory
	UndefinedIdentifier
	NotAFunction
	CustomMessage
	UnsupportedKeyword
	ChainedAccess
)

// Error is an evaluation error value. Constructors below set exactly the
// flag combinations spec.md §6/§7 define; Render reproduces the bit-exact
// message table of §6.
type Error struct {
	flags   Flag
	payload string
}

func (e *Error) Has(f Flag) bool { return e.flags&f != 0 }

// Payload returns the offending identifier or custom message, if any.
func (e *Error) Payload() string { return e.payload }

// Error implements the standard error interface so host code can treat a
// *Error conventionally (fmt.Errorf("%w", err), errors.Is, etc.).
func (e *Error) Error() string { return e.Render() }

// Render reproduces the bit-exact message table of spec.md §6.
func (e *Error) Render() string {
	switch {
	case e.Has(NotAFunction):
		return fmt.Sprintf("TypeError: %s is not a function", e.payload)
	case e.Has(UnsupportedKeyword):
		return fmt.Sprintf("SyntaxError: Unsupported keyword '%s'", e.payload)
	case e.Has(Syntax):
		return "SyntaxError"
	case e.Has(UndefinedIdentifier) && e.Has(ChainedAccess):
		return fmt.Sprintf("TypeError: Cannot read properties of undefined (reading '%s')", e.payload)
	case e.Has(UndefinedIdentifier):
		return fmt.Sprintf("ReferenceError: Can't find variable: '%s'", e.payload)
	case e.Has(OutOfMemory):
		return "MemoryError: Out of memory"
	case e.Has(CustomMessage):
		return e.payload
	default:
		return "Error"
	}
}

// NewSyntax constructs a plain syntax error (spec.md §6 row "syntax
// (otherwise)"). msg is informational only; the rendered form is always
// "SyntaxError" for bit-exact compatibility, but Payload() still carries
// detail for hosts that want to log it.
func NewSyntax(msg string) *Error {
	return &Error{flags: Syntax, payload: msg}
}

// NewUnsupportedKeyword reports a reserved word used as an identifier
// (spec.md §4.6: `in new void await yield typeof function instanceof`).
func NewUnsupportedKeyword(ident string) *Error {
	return &Error{flags: Syntax | UnsupportedKeyword, payload: ident}
}

// NewNotAFunction reports call syntax applied to a non-Function receiver.
// ident is the most recently read identifier, per spec.md §4.6/§7.
func NewNotAFunction(ident string) *Error {
	return &Error{flags: NotAFunction, payload: ident}
}

// NewUndefinedRoot reports an unresolved identifier at the root of an
// expression (ReferenceError form).
func NewUndefinedRoot(ident string) *Error {
	return &Error{flags: UndefinedIdentifier, payload: ident}
}

// NewUndefinedChained reports an unresolved member name reached through a
// chain segment, whether the receiver itself is undefined or its member
// resolves to undefined (TypeError form).
func NewUndefinedChained(ident string) *Error {
	return &Error{flags: UndefinedIdentifier | ChainedAccess, payload: ident}
}

// NewOutOfMemory reports an arena allocation failure.
func NewOutOfMemory() *Error {
	return &Error{flags: OutOfMemory}
}

// NewCustomMessage constructs a host- or evaluator-created error carrying
// msg verbatim (spec.md §7: "host-created ... or MaxDepthError").
func NewCustomMessage(msg string) *Error {
	return &Error{flags: CustomMessage, payload: msg}
}

// MaxDepthError is the fixed custom-message payload spec.md §4.8 requires
// when the recursion-depth limit is exceeded.
func MaxDepthError() *Error {
	return NewCustomMessage("MaxDepthError")
}
