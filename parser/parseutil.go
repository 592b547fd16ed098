package parser

import (
	"esfront/token"
)

func (p *Parser) eat(t token.Token) bool {
	if p.tok.Token == t {
		p.next()
		return true
	}
	return false
}

func (p *Parser) expect(t token.Token) {
	if !p.eat(t) {
		p.unexpected()
	}
}

func (p *Parser) unexpected() {
	p.unexpectedAt(p.tok.Start)
}

func (p *Parser) unexpectedAt(pos int) {
	p.raise(pos, "Unexpected token")
}

// is reports whether the current token is an operator of kind t spelled
// op, e.g. is(T_RELATIONAL, "<").
func (p *Parser) is(t token.Token, op string) bool {
	return p.tok.Token == t && p.tok.Value == op
}

func (p *Parser) canInsertSemicolon() bool {
	return p.tok.Token == token.T_EOF ||
		p.tok.Token == token.T_BRACER ||
		p.tok.NewlineBefore
}

func (p *Parser) semicolon() {
	if !p.eat(token.T_SEMI) && !p.canInsertSemicolon() {
		p.unexpected()
	}
}

func (p *Parser) isContextual(name string) bool {
	return p.tok.Token == token.T_NAME && p.tok.Value == name && !p.tok.Escaped
}

func (p *Parser) eatContextual(name string) bool {
	if !p.isContextual(name) {
		return false
	}
	p.next()
	return true
}

func (p *Parser) expectContextual(name string) {
	if !p.eatContextual(name) {
		p.unexpected()
	}
}

// startsExpr reports whether the current token can start an expression.
// A '/' always can, since regular expressions are read on demand.
func (p *Parser) startsExpr() bool {
	switch {
	case p.tok.Token.StartsExpr(), p.tok.Token == token.T_SLASH, p.is(token.T_ASSIGN, "/="):
		return true
	case p.options.JSX && p.is(token.T_RELATIONAL, "<"):
		return true
	}
	return false
}

func (p *Parser) afterTrailingComma(t token.Token, notNext bool) bool {
	if p.tok.Token == t {
		if !notNext {
			p.next()
		}
		return true
	}
	return false
}

// DestructuringErrors records positions of constructs that are errors in
// an expression but fine in a pattern, or the other way round, until the
// parser knows which one it is reading. -1 means unset.
type DestructuringErrors struct {
	shorthandAssign     int
	trailingComma       int
	parenthesizedAssign int
	parenthesizedBind   int
	doubleProto         int
}

func NewDestructuringErrors() *DestructuringErrors {
	return &DestructuringErrors{
		shorthandAssign:     -1,
		trailingComma:       -1,
		parenthesizedAssign: -1,
		parenthesizedBind:   -1,
		doubleProto:         -1,
	}
}

func (p *Parser) checkPatternErrors(refDestructuringErrors *DestructuringErrors, isAssign bool) {
	if refDestructuringErrors == nil {
		return
	}
	if refDestructuringErrors.trailingComma > -1 {
		p.raiseRecoverable(refDestructuringErrors.trailingComma, "Comma is not permitted after the rest element")
	}
	parens := refDestructuringErrors.parenthesizedBind
	if isAssign {
		parens = refDestructuringErrors.parenthesizedAssign
	}
	if parens > -1 {
		msg := "Parenthesized pattern"
		if isAssign {
			msg = "Assigning to rvalue"
		}
		p.raiseRecoverable(parens, msg)
	}
}

// checkExpressionErrors reports whether refDestructuringErrors holds an
// error for expressions, raising it when andThrow is set.
func (p *Parser) checkExpressionErrors(refDestructuringErrors *DestructuringErrors, andThrow bool) bool {
	if refDestructuringErrors == nil {
		return false
	}
	shorthandAssign, doubleProto := refDestructuringErrors.shorthandAssign, refDestructuringErrors.doubleProto
	if !andThrow {
		return shorthandAssign >= 0 || doubleProto >= 0
	}
	if shorthandAssign >= 0 {
		p.raise(shorthandAssign, "Shorthand property assignments are valid only in destructuring patterns")
	}
	if doubleProto >= 0 {
		p.raiseRecoverable(doubleProto, "Redefinition of __proto__ property")
	}
	return false
}

func (p *Parser) checkYieldAwaitInDefaultParams() {
	if p.yieldPos != 0 && (p.awaitPos == 0 || p.yieldPos < p.awaitPos) {
		p.raise(p.yieldPos, "Yield expression cannot be a default value")
	}
	if p.awaitPos != 0 {
		p.raise(p.awaitPos, "Await expression cannot be a default value")
	}
}
