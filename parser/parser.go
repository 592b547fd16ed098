// Package parser builds an ast.Program from ECMAScript source text.
//
// The parser is a recursive descent parser with precedence climbing for
// binary operators. Errors unwind with a diag.Bailout panic and are turned
// back into error values at the entry points. In tolerant mode recoverable
// errors are recorded and a statement that fails to parse is replaced by an
// ast.BadStatement.
package parser

import (
	"slices"

	"go.uber.org/zap"

	"esfront/ast"
	"esfront/diag"
	"esfront/scanner"
	"esfront/token"
)

type Parser struct {
	options *Options
	input   string
	scan    *scanner.Scanner
	handler *diag.Handler
	log     *zap.Logger

	// tok is the current token, prev the last consumed one.
	tok, prev scanner.Word
	tokens    []scanner.Word
	comments  []scanner.Comment

	inModule bool
	strict   bool

	potentialArrowAt         int
	potentialArrowInForAwait bool
	yieldPos                 int
	awaitPos                 int
	awaitIdentPos            int

	labels           []label
	undefinedExports map[string]*ast.Identifier
	scopeStack       []*Scope
	privateNameStack []*privateNames
}

func New(src string, opts *Options) *Parser {
	options := GetOptions(opts)
	p := &Parser{
		options:          options,
		input:            src,
		log:              options.Logger,
		inModule:         options.SourceType == "module",
		potentialArrowAt: -1,
		undefinedExports: map[string]*ast.Identifier{},
	}
	p.handler = &diag.Handler{Tolerant: options.Tolerant, Hook: p.onError}
	p.scan = scanner.New(src, scanner.Options{
		Comments:    options.Comments,
		Tolerant:    options.Tolerant,
		Module:      p.inModule,
		JSX:         options.JSX,
		RegexMode:   options.RegexMode,
		RegexEngine: options.RegexEngine,
		Source:      options.Source,
		Handler:     p.handler,
	})
	// Regular expressions are read on demand with RescanRegExp.
	p.scan.RegexAllowed = false
	p.strict = p.inModule
	return p
}

// Parse parses the whole input as a program. In tolerant mode the program
// is returned together with the recorded errors, if any.
func (p *Parser) Parse() (prog *ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			prog, err = nil, p.failure(r)
		}
	}()
	p.enterScope(SCOPE_TOP)
	if !p.strict {
		p.strict = p.strictDirective()
	}
	p.nextToken()
	prog = p.parseTopLevel()
	return prog, p.handler.Errors().Err()
}

// ParseExpression parses the whole input as a single expression.
func (p *Parser) ParseExpression() (expr ast.Expression, err error) {
	defer func() {
		if r := recover(); r != nil {
			expr, err = nil, p.failure(r)
		}
	}()
	p.enterScope(SCOPE_TOP)
	p.nextToken()
	expr = p.parseExpression("", nil)
	if p.tok.Token != token.T_EOF {
		p.unexpected()
	}
	return expr, p.handler.Errors().Err()
}

// Tokens returns the consumed tokens when the Tokens option is set.
func (p *Parser) Tokens() []scanner.Word { return p.tokens }

// Comments returns the comments when the Comments option is set.
func (p *Parser) Comments() []scanner.Comment { return p.comments }

// Errors returns the errors recorded so far.
func (p *Parser) Errors() diag.List { return p.handler.Errors() }

func ParseScript(src string, opts *Options) (*ast.Program, error) {
	o := GetOptions(opts)
	o.SourceType = "script"
	return New(src, o).Parse()
}

func ParseModule(src string, opts *Options) (*ast.Program, error) {
	o := GetOptions(opts)
	o.SourceType = "module"
	return New(src, o).Parse()
}

func ParseExpression(src string, opts *Options) (ast.Expression, error) {
	return New(src, opts).ParseExpression()
}

// failure converts a recovered panic value into the error returned to the
// caller. Values other than a diag.Bailout are re-raised.
func (p *Parser) failure(r any) error {
	b, ok := r.(diag.Bailout)
	if !ok {
		panic(r)
	}
	if p.options.Tolerant && !b.Err.Fatal() {
		p.handler.Record(b.Err)
		return p.handler.Errors()
	}
	return b.Err
}

// TOKEN RELATED CODE

// next moves to the next token. A keyword spelled with escapes is an error
// wherever it is consumed as a keyword.
func (p *Parser) next() {
	if p.tok.Escaped && p.tok.Token.IsKeyword() {
		p.raiseRecoverable(p.tok.Start, "Escape sequence in keyword "+p.tok.Value)
	}
	p.nextToken()
}

func (p *Parser) nextToken() {
	p.advance(p.scan.Lex)
}

func (p *Parser) nextJSXTag() {
	p.advance(p.scan.LexJSXTag)
}

func (p *Parser) nextJSXChild() {
	p.advance(p.scan.LexJSXChild)
}

func (p *Parser) advance(lex func() scanner.Word) {
	if p.options.Tokens && p.tok.End > p.tok.Start {
		p.tokens = append(p.tokens, p.tok)
	}
	p.prev = p.tok
	if p.options.Comments {
		p.comments = append(p.comments, p.scan.ScanComments()...)
	}
	p.tok = lex()
}

// rescanRegExp re-reads the current '/' or '/=' token as a regular
// expression literal.
func (p *Parser) rescanRegExp() {
	p.tok = p.scan.RescanRegExp(p.tok)
}

// peek returns the token after the current one without consuming anything.
func (p *Parser) peek() scanner.Word {
	st := p.scan.Save()
	w := p.scan.Lex()
	p.scan.Restore(st)
	return w
}

// peekByte returns the first source byte after the current token,
// skipping nothing.
func (p *Parser) peekByte() byte {
	if p.tok.End < len(p.input) {
		return p.input[p.tok.End]
	}
	return 0
}

func (p *Parser) newError(kind diag.Kind, pos int, msg string) *diag.Error {
	loc := p.scan.Position(pos)
	return &diag.Error{
		Kind:        kind,
		Index:       pos,
		Line:        loc.Line,
		Column:      loc.Column,
		Description: msg,
		Source:      p.options.Source,
	}
}

// raise aborts the current statement with a syntax error.
func (p *Parser) raise(pos int, msg string) {
	err := p.newError(diag.Syntax, pos, msg)
	if !p.options.Tolerant {
		p.onError(err)
	}
	diag.Raise(err)
}

// raiseRecoverable reports an early error. Tolerant parsing continues.
func (p *Parser) raiseRecoverable(pos int, msg string) {
	p.handler.Report(p.newError(diag.Early, pos, msg))
}

func (p *Parser) onError(err *diag.Error) {
	if err.Kind == diag.RegexTranslation {
		p.log.Debug("regex literal kept unadapted",
			zap.Int("index", err.Index),
			zap.String("reason", err.Description))
	} else {
		p.log.Debug("parse error",
			zap.Stringer("kind", err.Kind),
			zap.Int("line", err.Line),
			zap.Int("column", err.Column),
			zap.String("description", err.Description))
	}
	if p.options.ErrorHook != nil {
		p.options.ErrorHook(err)
	}
}

// strictDirective reports whether the directive prologue starting at the
// scanner position contains a 'use strict' directive. It lexes with a
// private scanner so that nothing is consumed or reported.
func (p *Parser) strictDirective() (strict bool) {
	s := scanner.New(p.input[p.scan.Pos():], scanner.Options{Module: p.inModule, Tolerant: true})
	s.RegexAllowed = false
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(diag.Bailout); !ok {
				panic(r)
			}
			strict = false
		}
	}()

	w := s.Lex()
	for w.Token == token.T_STRING {
		next := s.Lex()
		if w.Raw == "'use strict'" || w.Raw == `"use strict"` {
			switch next.Token {
			case token.T_SEMI, token.T_BRACER, token.T_EOF:
				return true
			}
			return next.NewlineBefore && !continuesExpression(next)
		}
		if next.Token == token.T_SEMI {
			next = s.Lex()
		}
		w = next
	}
	return false
}

// continuesExpression reports whether w, found after a newline, would
// continue the expression before it.
func continuesExpression(w scanner.Word) bool {
	if w.Raw == "" {
		return false
	}
	switch w.Raw[0] {
	case '(', '`', '.', '[', '+', '-', '/', '*', '%', '<', '>', '=', ',', '?', '^', '&':
		return true
	case '!':
		return len(w.Raw) > 1 && w.Raw[1] == '='
	}
	return false
}

// ERROR RECOVERY

// snapshot is the parser state a failed statement may leave inconsistent.
type snapshot struct {
	scopes        []*Scope
	labels        []label
	privateNames  []*privateNames
	strict        bool
	yieldPos      int
	awaitPos      int
	awaitIdentPos int
}

func (p *Parser) save() snapshot {
	scopes := make([]*Scope, len(p.scopeStack))
	for i, s := range p.scopeStack {
		scopes[i] = s.clone()
	}
	return snapshot{
		scopes:        scopes,
		labels:        slices.Clone(p.labels),
		privateNames:  slices.Clone(p.privateNameStack),
		strict:        p.strict,
		yieldPos:      p.yieldPos,
		awaitPos:      p.awaitPos,
		awaitIdentPos: p.awaitIdentPos,
	}
}

func (p *Parser) restore(s snapshot) {
	// Scopes are restored in place so that callers holding a scope keep
	// seeing the live one.
	p.scopeStack = p.scopeStack[:min(len(p.scopeStack), len(s.scopes))]
	for i, saved := range s.scopes {
		if i < len(p.scopeStack) {
			*p.scopeStack[i] = *saved
		} else {
			p.scopeStack = append(p.scopeStack, saved)
		}
	}
	p.labels = s.labels
	p.privateNameStack = s.privateNames
	p.strict = s.strict
	p.yieldPos = s.yieldPos
	p.awaitPos = s.awaitPos
	p.awaitIdentPos = s.awaitIdentPos
}

// parseStatementOrRecover parses a statement of a statement list. In
// tolerant mode a syntax error inside the statement is recorded and the
// tokens up to the next likely statement start become an ast.BadStatement.
func (p *Parser) parseStatementOrRecover(context string, topLevel bool, exports map[string]bool) (stmt ast.Statement) {
	if !p.options.Tolerant {
		return p.parseStatement(context, topLevel, exports)
	}
	m := p.startNode()
	state := p.save()
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		b, ok := r.(diag.Bailout)
		if !ok || b.Err.Fatal() || p.tok.Token == token.T_EOF && p.tok.Start == m.pos {
			panic(r)
		}
		p.handler.Record(b.Err)
		p.restore(state)
		p.skipToStatement(m.pos)
		p.log.Debug("recovered statement",
			zap.Int("start", m.pos),
			zap.Int("end", p.prev.End),
			zap.String("error", b.Err.Description))
		bad := &ast.BadStatement{}
		if p.prev.End > m.pos {
			bad.NodeBase = p.finishNode(m)
		} else {
			bad.NodeBase = p.finishNodeAt(m, m.pos, m.loc)
		}
		stmt = bad
	}()
	return p.parseStatement(context, topLevel, exports)
}

// skipToStatement drops tokens until just after a ';', before a '}' or the
// end of input, or before a token on a new line that starts a statement.
// Braces opened while skipping are skipped whole. At least one token is
// dropped when the failed statement consumed none.
func (p *Parser) skipToStatement(start int) {
	depth := 0
	if p.tok.Start == start && p.tok.Token != token.T_EOF {
		if p.tok.Token == token.T_BRACEL {
			depth++
		}
		p.nextToken()
	}
	for {
		switch p.tok.Token {
		case token.T_EOF:
			return
		case token.T_BRACEL:
			depth++
		case token.T_BRACER:
			if depth == 0 {
				return
			}
			depth--
			p.nextToken()
			continue
		case token.T_SEMI:
			if depth == 0 {
				p.nextToken()
				return
			}
		}
		if depth == 0 && p.tok.NewlineBefore && startsStatement(p.tok) {
			return
		}
		p.nextToken()
	}
}

func startsStatement(w scanner.Word) bool {
	switch w.Token {
	case token.T_VAR, token.T_CONST, token.T_FUNCTION, token.T_CLASS, token.T_IF,
		token.T_FOR, token.T_WHILE, token.T_DO, token.T_RETURN, token.T_THROW,
		token.T_TRY, token.T_SWITCH, token.T_BREAK, token.T_CONTINUE, token.T_WITH,
		token.T_DEBUGGER, token.T_IMPORT, token.T_EXPORT:
		return true
	case token.T_NAME:
		return w.Value == "let" && !w.Escaped
	}
	return false
}
