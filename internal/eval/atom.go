package eval

import (
	"math"

	"github.com/go-jsexpr/jsexpr/internal/evalerr"
	"github.com/go-jsexpr/jsexpr/internal/lexer"
	"github.com/go-jsexpr/jsexpr/internal/value"
)

// keywordLiterals resolve to fixed values without consulting the host
// (spec.md §4.6).
var keywordLiterals = map[string]value.Value{
	"true":      value.Bool(true),
	"false":     value.Bool(false),
	"null":      value.Null(),
	"undefined": value.Undefined(),
	"NaN":       value.Float(math.NaN()),
	"Infinity":  value.Float(math.Inf(1)),
}

// reservedKeywords produce an unsupported-keyword error when read as a
// plain identifier (spec.md §4.6).
var reservedKeywords = map[string]bool{
	"in": true, "new": true, "void": true, "await": true, "yield": true,
	"typeof": true, "function": true, "instanceof": true,
}

// parseAtomChain parses one atom (spec.md §4.6) followed by zero or more
// chain segments.
func (p *parser) parseAtomChain(skip bool) value.Value {
	base := p.parseAtom(skip)
	return p.parseChain(base, skip)
}

func (p *parser) parseAtom(skip bool) value.Value {
	tok := p.cur()
	switch tok.Type {
	case lexer.INT, lexer.FLOAT:
		p.advance()
		if skip {
			return value.Undefined()
		}
		return parseNumericLiteral(tok)
	case lexer.STRING:
		p.advance()
		if skip {
			return value.Undefined()
		}
		return value.String(tok.Literal)
	case lexer.LPAREN:
		p.advance()
		v := p.depthLimited(skip, p.parseComma)
		if p.cur().Type != lexer.RPAREN {
			return value.Error(evalerr.NewSyntax("expected ')'"))
		}
		p.advance()
		return v
	case lexer.LBRACKET:
		return p.parseArrayLiteral(skip)
	case lexer.IDENT:
		return p.parseIdentifierAtom(skip)
	default:
		p.advance()
		return value.Error(evalerr.NewSyntax("unexpected token"))
	}
}

func (p *parser) parseIdentifierAtom(skip bool) value.Value {
	tok := p.cur()
	p.advance()
	p.lastIdent = tok.Literal
	if skip {
		return value.Undefined()
	}
	if lit, ok := keywordLiterals[tok.Literal]; ok {
		return lit
	}
	if reservedKeywords[tok.Literal] {
		return value.Error(evalerr.NewUnsupportedKeyword(tok.Literal))
	}
	return p.resolveRootIdent(tok.Literal)
}

// resolveRootIdent resolves a bare identifier against the global sentinel
// (spec.md §4.6). An Undefined result from the host becomes a root-form
// undefined-identifier error here; chain segments handle the chained form
// themselves in accessMember.
func (p *parser) resolveRootIdent(name string) value.Value {
	if p.env.Ref == nil {
		return value.Error(evalerr.NewUndefinedRoot(name))
	}
	result := p.env.Ref(value.Global(), value.String(name), p.env.UData)
	if result.IsError() {
		return result
	}
	if result.Kind() == value.KindUndefined {
		return value.Error(evalerr.NewUndefinedRoot(name))
	}
	return result
}

func (p *parser) parseArrayLiteral(skip bool) value.Value {
	p.advance() // consume '['
	return p.parseCommaList(lexer.RBRACKET, skip)
}

// parseCommaList parses zero or more ternary-level expressions separated by
// commas up to closer — the "iterator" form of the comma operator (spec.md
// §4.4 level 1) used by array literals and call-argument lists, which
// collects every element instead of keeping only the last.
func (p *parser) parseCommaList(closer lexer.TokenType, skip bool) value.Value {
	var elems []value.Value
	if p.cur().Type != closer {
		for {
			elemVal := p.depthLimited(skip, p.parseTernary)
			if !skip {
				elems = append(elems, elemVal)
			}
			if p.cur().Type != lexer.COMMA {
				break
			}
			p.advance()
		}
	}
	if p.cur().Type != closer {
		return value.Error(evalerr.NewSyntax("expected '" + closer.String() + "'"))
	}
	p.advance()
	if skip {
		return value.Undefined()
	}
	for _, e := range elems {
		if e.IsError() {
			return e
		}
	}
	return value.Array(elems)
}
