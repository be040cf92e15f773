package eval

import (
	"github.com/go-jsexpr/jsexpr/internal/evalerr"
	"github.com/go-jsexpr/jsexpr/internal/lexer"
	"github.com/go-jsexpr/jsexpr/internal/value"
)

// parseLeftAssoc implements the shared shape of spec.md §4.4 levels 5-11:
// parse one operand via next, then fold any number of same-level operators
// left to right. Once either side of a pending combination is an error, the
// remaining operands on this level are still parsed (so the token cursor
// stays correct) but never evaluated, and the error carries forward
// unchanged — spec.md §7's "the first error detected aborts the current
// evaluation".
func (p *parser) parseLeftAssoc(skip bool, next func(bool) value.Value, ops map[lexer.TokenType]combineFunc) value.Value {
	left := next(skip)
	for {
		combine, isOp := ops[p.cur().Type]
		if !isOp {
			return left
		}
		p.advance()
		rightSkip := skip || left.IsError()
		right := next(rightSkip)
		if rightSkip {
			continue
		}
		if e, has := propagateError(left, right); has {
			left = e
			continue
		}
		left = combine(left, right)
	}
}

func (p *parser) parseBitOr(skip bool) value.Value {
	return p.parseLeftAssoc(skip, p.parseBitXor, map[lexer.TokenType]combineFunc{
		lexer.BITOR: combineBitOr,
	})
}

func (p *parser) parseBitXor(skip bool) value.Value {
	return p.parseLeftAssoc(skip, p.parseBitAnd, map[lexer.TokenType]combineFunc{
		lexer.BITXOR: combineBitXor,
	})
}

func (p *parser) parseBitAnd(skip bool) value.Value {
	return p.parseLeftAssoc(skip, p.parseEquality, map[lexer.TokenType]combineFunc{
		lexer.BITAND: combineBitAnd,
	})
}

func (p *parser) parseEquality(skip bool) value.Value {
	noCase := p.env.NoCase
	return p.parseLeftAssoc(skip, p.parseRelational, map[lexer.TokenType]combineFunc{
		lexer.EQ:       func(a, b value.Value) value.Value { return boolValue(value.LooseEqual(a, b, noCase)) },
		lexer.NEQ:      func(a, b value.Value) value.Value { return boolValue(!value.LooseEqual(a, b, noCase)) },
		lexer.STRICTEQ: func(a, b value.Value) value.Value { return boolValue(value.StrictEqual(a, b, noCase)) },
		lexer.STRICTNE: func(a, b value.Value) value.Value { return boolValue(!value.StrictEqual(a, b, noCase)) },
	})
}

func (p *parser) parseRelational(skip bool) value.Value {
	noCase := p.env.NoCase
	return p.parseLeftAssoc(skip, p.parseAdditive, map[lexer.TokenType]combineFunc{
		lexer.LT: func(a, b value.Value) value.Value { return boolValue(value.Less(a, b, noCase)) },
		lexer.LE: func(a, b value.Value) value.Value { return boolValue(value.LessOrEqual(a, b, noCase)) },
		lexer.GT: func(a, b value.Value) value.Value { return boolValue(value.Less(b, a, noCase)) },
		lexer.GE: func(a, b value.Value) value.Value { return boolValue(value.GreaterOrEqual(a, b, noCase)) },
	})
}

func (p *parser) parseAdditive(skip bool) value.Value {
	return p.parseLeftAssoc(skip, p.parseMultiplicative, map[lexer.TokenType]combineFunc{
		lexer.PLUS:  p.combineAdd,
		lexer.MINUS: combineSub,
	})
}

func (p *parser) parseMultiplicative(skip bool) value.Value {
	return p.parseLeftAssoc(skip, p.parseUnary, map[lexer.TokenType]combineFunc{
		lexer.ASTERISK: combineMul,
		lexer.SLASH:    combineDiv,
		lexer.PERCENT:  combineMod,
	})
}

// parseUnary implements the unary prefix +/- noted on spec.md §4.4 level
// 10 ("Unary prefix +/- permitted before a factor"), folding any number of
// stacked signs by recursing into itself before falling through to a
// chained atom — resolved in DESIGN.md's open question on "- - - -1". It
// also implements the logical-not prefix `!` that spec.md §8's
// double-negation invariant (`!!x == to_bool(x)`) requires, at the same
// binding strength since the precedence table gives it no row of its own.
func (p *parser) parseUnary(skip bool) value.Value {
	tok := p.cur()
	switch tok.Type {
	case lexer.PLUS, lexer.MINUS:
		p.advance()
		operand := p.parseUnary(skip)
		if skip || operand.IsError() {
			return operand
		}
		if tok.Type == lexer.PLUS {
			return numericUnaryPlus(operand)
		}
		return numericUnaryMinus(operand)
	case lexer.BANG:
		p.advance()
		operand := p.parseUnary(skip)
		if skip || operand.IsError() {
			return operand
		}
		return value.Bool(!value.ToBool(operand))
	default:
		return p.parseAtomChain(skip)
	}
}

// parseAnd implements spec.md §4.4 level 4's `&&`: short-circuits via
// to_bool, never evaluating the right side when the left is falsy.
func (p *parser) parseAnd(skip bool) value.Value {
	left := p.parseBitOr(skip)
	for p.cur().Type == lexer.AND {
		p.advance()
		if skip || left.IsError() {
			p.parseBitOr(true)
			continue
		}
		keepLeft := !value.ToBool(left)
		right := p.parseBitOr(keepLeft)
		if !keepLeft {
			left = right
		}
	}
	return left
}

// parseOrNullish implements spec.md §4.4 level 3's `||` and `??`, left to
// right at the same binding strength: `||` keeps the left side when
// to_bool(left) holds, `??` keeps it unless left is Undefined or Null.
func (p *parser) parseOrNullish(skip bool) value.Value {
	left := p.parseAnd(skip)
	for {
		opType := p.cur().Type
		if opType != lexer.OR && opType != lexer.NULLISH {
			return left
		}
		p.advance()
		if skip || left.IsError() {
			p.parseAnd(true)
			continue
		}
		var keepLeft bool
		if opType == lexer.OR {
			keepLeft = value.ToBool(left)
		} else {
			keepLeft = !left.IsNullish()
		}
		right := p.parseAnd(keepLeft)
		if !keepLeft {
			left = right
		}
	}
}

// parseTernary implements spec.md §4.4 level 2's right-associative `?:`.
// Exactly one branch is evaluated for real; the other is parsed in skip
// mode so the token cursor still advances correctly but no host call or
// combiner runs on it (§5's "exactly one branch" guarantee). Both branches
// count as sub-expression recursion for §4.8's depth guard, since both are
// structurally descended into regardless of which one is kept.
func (p *parser) parseTernary(skip bool) value.Value {
	cond := p.parseOrNullish(skip)
	if p.cur().Type != lexer.QUESTION {
		return cond
	}
	p.advance()

	aborted := skip || cond.IsError()
	takeThen := !aborted && value.ToBool(cond)

	thenVal := p.depthLimited(aborted || !takeThen, p.parseTernary)
	if p.cur().Type != lexer.COLON {
		return value.Error(evalerr.NewSyntax("expected ':' in ternary expression"))
	}
	p.advance()
	elseVal := p.depthLimited(aborted || takeThen, p.parseTernary)

	switch {
	case aborted:
		return cond
	case takeThen:
		return thenVal
	default:
		return elseVal
	}
}
