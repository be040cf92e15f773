// Package eval implements spec.md §4's expression grammar: a single-pass,
// recursive-descent, operator-precedence-climbing parser that evaluates as
// it parses rather than building a separate AST. There is deliberately no
// parser/AST split — each precedence-level function both recognizes its
// grammar and folds it into a Value (see DESIGN.md for why this departs
// from the teacher's own two-stage parser/interp split).
package eval

import (
	"github.com/go-jsexpr/jsexpr/internal/arena"
	"github.com/go-jsexpr/jsexpr/internal/evalerr"
	"github.com/go-jsexpr/jsexpr/internal/lexer"
	"github.com/go-jsexpr/jsexpr/internal/value"
)

// parser walks a fully tokenized expression once. toks always ends with an
// EOF token; pos never advances past it.
type parser struct {
	toks      []lexer.Token
	pos       int
	env       *Env
	arena     *arena.Arena
	depth     *depthGuard
	lastIdent string
}

func (p *parser) cur() lexer.Token {
	return p.toks[p.pos]
}

func (p *parser) advance() {
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
}

func (p *parser) atEnd() bool {
	return p.cur().Type == lexer.EOF
}

// depthLimited runs fn under the recursion-depth guard of spec.md §4.8.
// When the limit is exceeded, fn still runs in skip mode — so the
// over-limit branch is parsed (the token cursor stays correct) but never
// evaluated — and the result is replaced with a MaxDepthError value.
func (p *parser) depthLimited(skip bool, fn func(bool) value.Value) value.Value {
	leave, ok := p.depth.enter()
	defer leave()
	if !ok {
		fn(true)
		return value.Error(evalerr.MaxDepthError())
	}
	return fn(skip)
}

// Eval tokenizes expr once, then parses and evaluates it under env using a
// for scratch string/array allocation. The result may be an Error-kind
// Value; it is never a panic.
func Eval(expr string, env *Env, a *arena.Arena) value.Value {
	toks := tokenizeAll(expr)
	if err := firstIllegalToken(toks); err != nil {
		return value.Error(err)
	}

	p := &parser{toks: toks, env: env, arena: a, depth: newDepthGuard(env.MaxDepth)}
	result := p.parseComma(false)
	if result.IsError() {
		return result
	}
	if !p.atEnd() {
		return value.Error(evalerr.NewSyntax("unexpected trailing input"))
	}
	return result
}

func tokenizeAll(expr string) []lexer.Token {
	l := lexer.New(expr)
	var toks []lexer.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == lexer.EOF {
			return toks
		}
	}
}

// firstIllegalToken implements the documented deviation from spec.md §5's
// "not even syntactically validated": jsexpr tokenizes eagerly, so a
// lexically malformed short-circuited branch is still caught up front,
// before any evaluation begins, rather than only once control reaches it.
func firstIllegalToken(toks []lexer.Token) *evalerr.Error {
	for _, t := range toks {
		if t.Type == lexer.ILLEGAL {
			return evalerr.NewSyntax(t.Literal)
		}
	}
	return nil
}

// parseComma implements spec.md §4.4 level 1 in its "sequence" form: every
// comma-separated expression evaluates left-to-right, and the sequence's
// value is the last one. (Comma's other form — the "iterator" used by
// array literals and call-argument lists — is parseCommaList, which
// collects every element instead of discarding all but the last.)
func (p *parser) parseComma(skip bool) value.Value {
	left := p.parseTernary(skip)
	for p.cur().Type == lexer.COMMA {
		p.advance()
		next := p.parseTernary(skip || left.IsError())
		if !left.IsError() {
			left = next
		}
	}
	return left
}
