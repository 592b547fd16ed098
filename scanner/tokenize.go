package scanner

import (
	"esfront/diag"
	"esfront/token"
)

// Without a parser, whether a '/' starts a regular expression is decided
// from the tokens seen so far, tracking which brackets and functions are
// open in expression or statement position.

type TokenContextType int

const (
	BRACKET_STATEMENT TokenContextType = iota
	BRACKET_EXPRESSION
	BRACKET_TEMPLATE
	PAREN_STATEMENT
	PAREN_EXPRESSION
	FUNCTION_STATEMENT
	FUNCTION_EXPRESSION
	FUNCTION_EXPRESSION_GENERATOR
	FUNCTION_GENERATOR
)

type TokenContext struct {
	Token      string
	IsExpr     bool
	Generator  bool
	Identifier TokenContextType
}

func newTokContext(tok string, isExpr, generator bool, identifier TokenContextType) *TokenContext {
	return &TokenContext{Token: tok, IsExpr: isExpr, Generator: generator, Identifier: identifier}
}

var TokenContexts = map[TokenContextType]*TokenContext{
	BRACKET_STATEMENT:             newTokContext("{", false, false, BRACKET_STATEMENT),
	BRACKET_EXPRESSION:            newTokContext("{", true, false, BRACKET_EXPRESSION),
	BRACKET_TEMPLATE:              newTokContext("${", false, false, BRACKET_TEMPLATE),
	PAREN_STATEMENT:               newTokContext("(", false, false, PAREN_STATEMENT),
	PAREN_EXPRESSION:              newTokContext("(", true, false, PAREN_EXPRESSION),
	FUNCTION_STATEMENT:            newTokContext("function", false, false, FUNCTION_STATEMENT),
	FUNCTION_EXPRESSION:           newTokContext("function", true, false, FUNCTION_EXPRESSION),
	FUNCTION_EXPRESSION_GENERATOR: newTokContext("function", true, true, FUNCTION_EXPRESSION_GENERATOR),
	FUNCTION_GENERATOR:            newTokContext("function", false, true, FUNCTION_GENERATOR),
}

type contextTracker struct {
	context     []*TokenContext
	exprAllowed bool
	prevType    token.Token
}

func newContextTracker() *contextTracker {
	return &contextTracker{
		context:     []*TokenContext{TokenContexts[BRACKET_STATEMENT]},
		exprAllowed: true,
		prevType:    token.T_EOF,
	}
}

func (c *contextTracker) currentContext() *TokenContext {
	return c.context[len(c.context)-1]
}

func (c *contextTracker) push(t TokenContextType) {
	c.context = append(c.context, TokenContexts[t])
}

func (c *contextTracker) pop() *TokenContext {
	out := c.context[len(c.context)-1]
	c.context = c.context[:len(c.context)-1]
	return out
}

func (c *contextTracker) inGeneratorContext() bool {
	for i := len(c.context) - 1; i >= 0; i-- {
		if c.context[i].Token == "function" {
			return c.context[i].Generator
		}
	}
	return false
}

func (c *contextTracker) braceIsBlock(w Word) bool {
	parent := c.currentContext()
	prevType := c.prevType
	if parent.Identifier == FUNCTION_EXPRESSION || parent.Identifier == FUNCTION_STATEMENT {
		return true
	}
	if prevType == token.T_COLON && (parent.Identifier == BRACKET_STATEMENT || parent.Identifier == BRACKET_EXPRESSION) {
		return !parent.IsExpr
	}
	if prevType == token.T_RETURN || prevType == token.T_NAME && c.exprAllowed {
		return w.NewlineBefore
	}
	switch prevType {
	case token.T_ELSE, token.T_SEMI, token.T_EOF, token.T_PARENR, token.T_ARROW:
		return true
	case token.T_BRACEL:
		return parent.Identifier == BRACKET_STATEMENT
	case token.T_VAR, token.T_CONST, token.T_NAME:
		return false
	}
	return !c.exprAllowed
}

// closeBracket pops the context of ')' or '}'.
func (c *contextTracker) closeBracket() {
	if len(c.context) == 1 {
		c.exprAllowed = true
		return
	}
	out := c.pop()
	if out.Identifier == BRACKET_STATEMENT && c.currentContext().Token == "function" {
		out = c.pop()
	}
	c.exprAllowed = !out.IsExpr
}

func (c *contextTracker) updateContext(w Word) {
	prevType := c.prevType
	defer func() { c.prevType = w.Token }()

	if w.Token.IsKeyword() && prevType == token.T_DOT {
		c.exprAllowed = false
		return
	}
	switch w.Token {
	case token.T_PARENR, token.T_BRACER:
		c.closeBracket()
	case token.T_BRACEL:
		if c.braceIsBlock(w) {
			c.push(BRACKET_STATEMENT)
		} else {
			c.push(BRACKET_EXPRESSION)
		}
		c.exprAllowed = true
	case token.T_TEMPLATE:
		if !w.TemplateHead() && len(c.context) > 1 && c.currentContext().Identifier == BRACKET_TEMPLATE {
			c.pop()
		}
		if !w.Tail {
			c.push(BRACKET_TEMPLATE)
		}
		c.exprAllowed = !w.Tail
	case token.T_PARENL:
		switch prevType {
		case token.T_IF, token.T_FOR, token.T_WITH, token.T_WHILE:
			c.push(PAREN_STATEMENT)
		default:
			c.push(PAREN_EXPRESSION)
		}
		c.exprAllowed = true
	case token.T_INCDEC:
	case token.T_FUNCTION, token.T_CLASS:
		cur := c.currentContext().Identifier
		if prevType.BeforeExpr() && prevType != token.T_ELSE &&
			!(prevType == token.T_SEMI && cur != PAREN_STATEMENT) &&
			!(prevType == token.T_RETURN && w.NewlineBefore) &&
			!((prevType == token.T_COLON || prevType == token.T_BRACEL) && cur == BRACKET_STATEMENT) {
			c.push(FUNCTION_EXPRESSION)
		} else {
			c.push(FUNCTION_STATEMENT)
		}
		c.exprAllowed = false
	case token.T_COLON:
		if c.currentContext().Token == "function" {
			c.pop()
		}
		c.exprAllowed = true
	case token.T_STAR:
		if prevType == token.T_FUNCTION {
			idx := len(c.context) - 1
			if c.context[idx].Identifier == FUNCTION_EXPRESSION {
				c.context[idx] = TokenContexts[FUNCTION_EXPRESSION_GENERATOR]
			} else {
				c.context[idx] = TokenContexts[FUNCTION_GENERATOR]
			}
		}
		c.exprAllowed = true
	case token.T_NAME:
		allowed := false
		if prevType != token.T_DOT {
			if w.Value == "of" && !c.exprAllowed || w.Value == "yield" && c.inGeneratorContext() {
				allowed = true
			}
		}
		c.exprAllowed = allowed
	default:
		c.exprAllowed = w.Token.BeforeExpr()
	}
}

// Tokenize scans src into tokens without parsing it. Comments are returned
// only when opts.Comments is set. In tolerant mode the recorded errors are
// returned alongside the tokens.
func Tokenize(src string, opts Options) (words []Word, comments []Comment, err error) {
	s := New(src, opts)
	defer diag.Recover(&err)

	c := newContextTracker()
	for {
		if opts.Comments {
			comments = append(comments, s.ScanComments()...)
		}
		s.RegexAllowed = c.exprAllowed
		w := s.Lex()
		if w.Token == token.T_EOF {
			break
		}
		words = append(words, w)
		c.updateContext(w)
	}
	return words, comments, s.Errors().Err()
}
