package eval

import (
	"github.com/go-jsexpr/jsexpr/internal/evalerr"
	"github.com/go-jsexpr/jsexpr/internal/jsonview"
	"github.com/go-jsexpr/jsexpr/internal/lexer"
	"github.com/go-jsexpr/jsexpr/internal/value"
)

// parseChain consumes zero or more chain segments (spec.md §4.6) following
// an already-evaluated atom. receiver tracks the value a trailing call
// would see as left_prev: the object the most recent member was read from,
// or the global sentinel when no member access has happened yet.
func (p *parser) parseChain(base value.Value, skip bool) value.Value {
	current := base
	receiver := value.Global()
	for {
		switch p.cur().Type {
		case lexer.DOT, lexer.OPTCHAIN:
			optional := p.cur().Type == lexer.OPTCHAIN
			p.advance()
			name, ok := p.expectIdentName()
			if !ok {
				return value.Error(evalerr.NewSyntax("expected identifier after '.'"))
			}
			if skip {
				continue
			}
			receiver = current
			current = p.accessMember(current, name, optional)
		case lexer.LBRACKET:
			p.advance()
			idxSkip := skip || current.IsError()
			idx := p.depthLimited(idxSkip, p.parseComma)
			if p.cur().Type != lexer.RBRACKET {
				return value.Error(evalerr.NewSyntax("expected ']'"))
			}
			p.advance()
			if skip {
				continue
			}
			if e, has := propagateError(current, idx); has {
				receiver = current
				current = e
				continue
			}
			receiver = current
			current = p.accessMember(current, value.Stringify(idx), false)
		case lexer.LPAREN:
			args := p.parseCallArgs(skip || current.IsError())
			if skip {
				continue
			}
			current = p.evalCall(current, receiver, args)
			receiver = value.Global()
		default:
			return current
		}
	}
}

func (p *parser) expectIdentName() (string, bool) {
	tok := p.cur()
	if tok.Type != lexer.IDENT {
		return "", false
	}
	p.advance()
	p.lastIdent = tok.Literal
	return tok.Literal, true
}

func (p *parser) parseCallArgs(skip bool) value.Value {
	p.advance() // consume '('
	return p.parseCommaList(lexer.RPAREN, skip)
}

// accessMember implements the `.ident`/`?.ident`/`[expr]` chain segments of
// spec.md §4.6. A Json-kind receiver is projected lazily via
// internal/jsonview; any other receiver goes through the host reference
// callback. An Undefined (or undefined-identifier-flavored error) receiver
// never reaches the host: it becomes the chained TypeError directly, or
// plain Undefined when optional (the `?.` form) — matching spec.md §8
// scenario 7/8's "a.b"/"a?.b" with a itself undefined.
func (p *parser) accessMember(receiver value.Value, name string, optional bool) value.Value {
	if receiver.IsError() && !receiver.Err().Has(evalerr.UndefinedIdentifier) {
		return receiver
	}
	if receiver.IsError() || receiver.Kind() == value.KindUndefined {
		if optional {
			return value.Undefined()
		}
		return value.Error(evalerr.NewUndefinedChained(name))
	}
	if receiver.Kind() == value.KindJSON {
		return jsonview.Get(receiver.Str(), name)
	}
	p.lastIdent = name
	if p.env.Ref == nil {
		if optional {
			return value.Undefined()
		}
		return value.Error(evalerr.NewUndefinedChained(name))
	}
	result := p.env.Ref(receiver, value.String(name), p.env.UData)
	if result.IsError() {
		return result
	}
	if result.Kind() == value.KindUndefined {
		if optional {
			return value.Undefined()
		}
		return value.Error(evalerr.NewUndefinedChained(name))
	}
	return result
}

// evalCall implements the `(args)` chain segment of spec.md §4.6. fnValue
// must be Function-kind; an Undefined or undefined-identifier-flavored
// receiver also lands on "not a function" rather than propagating the
// reference error, matching the observed behavior of calling an unresolved
// identifier (spec.md §8 scenario 6: "howdy()" reports "howdy is not a
// function", not a ReferenceError).
func (p *parser) evalCall(fnValue, leftPrev, args value.Value) value.Value {
	if args.IsError() {
		return args
	}
	if fnValue.IsError() && !fnValue.Err().Has(evalerr.UndefinedIdentifier) {
		return fnValue
	}
	if fnValue.Kind() != value.KindFunction || fnValue.Func() == nil {
		return value.Error(evalerr.NewNotAFunction(p.lastIdent))
	}
	return fnValue.Func()(leftPrev, args, p.env.UData)
}
