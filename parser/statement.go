package parser

import (
	"fmt"
	"sort"
	"strings"

	"esfront/ast"
	"esfront/token"
)

const (
	FUNC_STATEMENT Flags = 1 << iota
	FUNC_HANGING_STATEMENT
	FUNC_NULLABLE_ID
)

func (p *Parser) parseTopLevel() *ast.Program {
	m := p.startNodeAt(0, p.scan.Position(0))
	strict := p.strict
	exports := map[string]bool{}
	body := []ast.Statement{}
	for p.tok.Token != token.T_EOF {
		body = append(body, p.parseStatementOrRecover("", true, exports))
	}

	if p.inModule && len(p.undefinedExports) > 0 {
		undefined := make([]*ast.Identifier, 0, len(p.undefinedExports))
		for _, id := range p.undefinedExports {
			undefined = append(undefined, id)
		}
		sort.Slice(undefined, func(i, j int) bool { return undefined[i].Start < undefined[j].Start })
		for _, id := range undefined {
			p.raiseRecoverable(id.Start, fmt.Sprintf("Export '%s' is not defined", id.Name))
		}
	}

	p.adaptDirectivePrologue(body)
	end := len(p.input)
	return &ast.Program{
		NodeBase:   p.finishNodeAt(m, end, p.scan.Position(end)),
		SourceType: p.options.SourceType,
		Strict:     strict,
		Body:       ast.ListOf(body),
	}
}

// parseStatement parses a single statement. context is empty for a
// statement list item and names the construct otherwise ("if", "label",
// "do", ...), which limits the declarations allowed.
func (p *Parser) parseStatement(context string, topLevel bool, exports map[string]bool) ast.Statement {
	startType, m := p.tok.Token, p.startNode()
	kind := ""

	if p.isLet(context) {
		startType = token.T_VAR
		kind = "let"
	}

	switch startType {
	case token.T_BREAK, token.T_CONTINUE:
		return p.parseBreakContinueStatement(m, startType == token.T_BREAK)
	case token.T_DEBUGGER:
		return p.parseDebuggerStatement(m)
	case token.T_DO:
		return p.parseDoStatement(m)
	case token.T_FOR:
		return p.parseForStatement(m)
	case token.T_FUNCTION:
		if context != "" && (p.strict || context != "if" && context != "label") {
			p.unexpected()
		}
		return p.parseFunctionStatement(m, false, context == "")
	case token.T_CLASS:
		if context != "" {
			p.unexpected()
		}
		return p.parseClass(m, true, false).(*ast.ClassDeclaration)
	case token.T_IF:
		return p.parseIfStatement(m)
	case token.T_RETURN:
		return p.parseReturnStatement(m)
	case token.T_SWITCH:
		return p.parseSwitchStatement(m)
	case token.T_THROW:
		return p.parseThrowStatement(m)
	case token.T_TRY:
		return p.parseTryStatement(m)
	case token.T_CONST, token.T_VAR:
		if kind == "" {
			kind = p.tok.Value
		}
		if context != "" && kind != "var" {
			p.unexpected()
		}
		return p.parseVarStatement(m, kind)
	case token.T_WHILE:
		return p.parseWhileStatement(m)
	case token.T_WITH:
		return p.parseWithStatement(m)
	case token.T_BRACEL:
		return p.parseBlock(true, m, false)
	case token.T_SEMI:
		p.next()
		return &ast.EmptyStatement{NodeBase: p.finishNode(m)}
	case token.T_EXPORT, token.T_IMPORT:
		if startType == token.T_IMPORT {
			// import(...) and import.meta start expression statements
			if next := p.peek(); next.Token == token.T_PARENL || next.Token == token.T_DOT {
				return p.parseExpressionStatement(m, p.parseExpression("", nil))
			}
		}
		if !topLevel {
			p.raise(p.tok.Start, "'import' and 'export' may only appear at the top level")
		}
		if !p.inModule {
			p.raise(p.tok.Start, "'import' and 'export' may appear only with 'sourceType: module'")
		}
		if startType == token.T_IMPORT {
			return p.parseImport(m)
		}
		return p.parseExport(m, exports)
	}

	if p.isAsyncFunction() {
		if context != "" {
			p.unexpected()
		}
		p.next()
		return p.parseFunctionStatement(m, true, context == "")
	}

	maybeName := p.tok.Value
	expr := p.parseExpression("", nil)
	if id, ok := expr.(*ast.Identifier); ok && startType == token.T_NAME && p.eat(token.T_COLON) {
		return p.parseLabeledStatement(m, maybeName, id, context)
	}
	return p.parseExpressionStatement(m, expr)
}

// isLet reports whether a contextual let starts a lexical declaration.
func (p *Parser) isLet(context string) bool {
	if !p.isContextual("let") {
		return false
	}
	next := p.peek()
	// `let [` is never an expression statement
	if next.Token == token.T_BRACKETL || next.Token == token.T_NAME && next.Escaped {
		return true
	}
	if context != "" {
		return false
	}
	switch {
	case next.Token == token.T_BRACEL:
		return true
	case next.Token == token.T_IN || next.Token == token.T_INSTANCEOF:
		return false
	case next.Token == token.T_NAME || next.Token.IsKeyword():
		return true
	}
	return false
}

// isAsyncFunction reports whether the current token starts an async
// function declaration.
func (p *Parser) isAsyncFunction() bool {
	if !p.isContextual("async") {
		return false
	}
	next := p.peek()
	return next.Token == token.T_FUNCTION && !next.NewlineBefore && !next.Escaped
}

func (p *Parser) parseBreakContinueStatement(m marker, isBreak bool) ast.Statement {
	keyword := "continue"
	if isBreak {
		keyword = "break"
	}
	p.next()
	var lbl *ast.Identifier
	if !p.eat(token.T_SEMI) && !p.canInsertSemicolon() {
		if p.tok.Token != token.T_NAME {
			p.unexpected()
		}
		lbl = p.parseIdent(false)
		p.semicolon()
	}

	// There must be an enclosing target to break or continue to.
	found := false
	for _, lab := range p.labels {
		if lbl == nil || lab.name == lbl.Name {
			if lab.kind != "" && (isBreak || lab.kind == "loop") {
				found = true
				break
			}
			if lbl != nil && isBreak {
				found = true
				break
			}
		}
	}
	if !found {
		p.raiseRecoverable(m.pos, "Unsyntactic "+keyword)
	}
	if isBreak {
		return &ast.BreakStatement{NodeBase: p.finishNode(m), Label: lbl}
	}
	return &ast.ContinueStatement{NodeBase: p.finishNode(m), Label: lbl}
}

func (p *Parser) parseDebuggerStatement(m marker) *ast.DebuggerStatement {
	p.next()
	p.semicolon()
	return &ast.DebuggerStatement{NodeBase: p.finishNode(m)}
}

var (
	loopLabel   = label{kind: "loop", statementStart: -1}
	switchLabel = label{kind: "switch", statementStart: -1}
)

func (p *Parser) popLabel() {
	p.labels = p.labels[:len(p.labels)-1]
}

func (p *Parser) parseDoStatement(m marker) *ast.DoWhileStatement {
	p.next()
	p.labels = append(p.labels, loopLabel)
	body := p.parseStatement("do", false, nil)
	p.popLabel()
	p.expect(token.T_WHILE)
	test := p.parseParenExpression()
	p.eat(token.T_SEMI)
	return &ast.DoWhileStatement{NodeBase: p.finishNode(m), Body: body, Test: test}
}

// parseForStatement disambiguates for, for-in, for-of and for-await-of
// after reading the init part.
func (p *Parser) parseForStatement(m marker) ast.Statement {
	p.next()
	awaitAt := -1
	if p.canAwait() && p.eatContextual("await") {
		awaitAt = p.prev.Start
	}
	p.labels = append(p.labels, loopLabel)
	p.enterScope(0)
	p.expect(token.T_PARENL)
	if p.tok.Token == token.T_SEMI {
		if awaitAt > -1 {
			p.unexpectedAt(awaitAt)
		}
		return p.parseFor(m, nil)
	}

	isLet := p.isLet("")
	if p.tok.Token == token.T_VAR || p.tok.Token == token.T_CONST || isLet {
		initStart := p.startNode()
		kind := p.tok.Value
		if isLet {
			kind = "let"
		}
		p.next()
		decls := p.parseVar(true, kind)
		init := &ast.VariableDeclaration{NodeBase: p.finishNode(initStart), Kind: kind, Declarations: ast.ListOf(decls)}
		if (p.tok.Token == token.T_IN || p.isContextual("of")) && len(decls) == 1 {
			isAwait := false
			if p.tok.Token == token.T_IN {
				if awaitAt > -1 {
					p.unexpectedAt(awaitAt)
				}
			} else {
				isAwait = awaitAt > -1
			}
			return p.parseForIn(m, init, isAwait)
		}
		if awaitAt > -1 {
			p.unexpectedAt(awaitAt)
		}
		return p.parseFor(m, init)
	}

	startsWithLet := p.isContextual("let")
	containsEsc := p.tok.Escaped
	refDestructuringErrors := NewDestructuringErrors()
	initPos := p.tok.Start
	var init ast.Expression
	if awaitAt > -1 {
		init = p.parseExprSubscripts(refDestructuringErrors, "await")
	} else {
		init = p.parseExpression("init", refDestructuringErrors)
	}
	isForOf := p.isContextual("of")
	if p.tok.Token == token.T_IN || isForOf {
		isAwait := false
		if awaitAt > -1 {
			if p.tok.Token == token.T_IN {
				p.unexpectedAt(awaitAt)
			}
			isAwait = true
		} else if isForOf {
			if id, ok := init.(*ast.Identifier); ok && id.Start == initPos && !containsEsc && id.Name == "async" {
				p.unexpected()
			}
		}
		if startsWithLet && isForOf {
			p.raise(init.Base().Start, "The left-hand side of a for-of loop may not start with let.")
		}
		left := p.toAssignable(init, false, refDestructuringErrors)
		p.checkLValPattern(left, BIND_NONE, nil)
		return p.parseForIn(m, left, isAwait)
	}
	p.checkExpressionErrors(refDestructuringErrors, true)
	if awaitAt > -1 {
		p.unexpectedAt(awaitAt)
	}
	return p.parseFor(m, init)
}

func (p *Parser) parseFor(m marker, init ast.Node) *ast.ForStatement {
	p.expect(token.T_SEMI)
	var test, update ast.Expression
	if p.tok.Token != token.T_SEMI {
		test = p.parseExpression("", nil)
	}
	p.expect(token.T_SEMI)
	if p.tok.Token != token.T_PARENR {
		update = p.parseExpression("", nil)
	}
	p.expect(token.T_PARENR)
	body := p.parseStatement("for", false, nil)
	p.exitScope()
	p.popLabel()
	return &ast.ForStatement{NodeBase: p.finishNode(m), Init: init, Test: test, Update: update, Body: body}
}

func (p *Parser) parseForIn(m marker, init ast.Node, isAwait bool) ast.Statement {
	isForIn := p.tok.Token == token.T_IN
	p.next()

	if decl, ok := init.(*ast.VariableDeclaration); ok && decl.Declarations.At(0).Init != nil {
		first := decl.Declarations.At(0)
		_, simple := first.ID.(*ast.Identifier)
		if !isForIn || p.strict || decl.Kind != "var" || !simple {
			loop := "for-of"
			if isForIn {
				loop = "for-in"
			}
			p.raise(decl.Start, loop+" loop variable declaration may not have an initializer")
		}
	}

	var right ast.Expression
	if isForIn {
		right = p.parseExpression("", nil)
	} else {
		right = p.parseMaybeAssign("", nil)
	}
	p.expect(token.T_PARENR)
	body := p.parseStatement("for", false, nil)
	p.exitScope()
	p.popLabel()
	if isForIn {
		return &ast.ForInStatement{NodeBase: p.finishNode(m), Left: init, Right: right, Body: body}
	}
	return &ast.ForOfStatement{NodeBase: p.finishNode(m), Await: isAwait, Left: init, Right: right, Body: body}
}

func (p *Parser) parseFunctionStatement(m marker, isAsync, declarationPosition bool) *ast.FunctionDeclaration {
	p.next()
	flags := FUNC_STATEMENT
	if !declarationPosition {
		flags |= FUNC_HANGING_STATEMENT
	}
	return p.parseFunction(m, flags, isAsync, "").(*ast.FunctionDeclaration)
}

func (p *Parser) parseIfStatement(m marker) *ast.IfStatement {
	p.next()
	test := p.parseParenExpression()
	consequent := p.parseStatement("if", false, nil)
	var alternate ast.Statement
	if p.eat(token.T_ELSE) {
		alternate = p.parseStatement("if", false, nil)
	}
	return &ast.IfStatement{NodeBase: p.finishNode(m), Test: test, Consequent: consequent, Alternate: alternate}
}

func (p *Parser) parseReturnStatement(m marker) *ast.ReturnStatement {
	if !p.inFunction() && !p.options.AllowReturnOutsideFunction {
		p.raiseRecoverable(p.tok.Start, "'return' outside of function")
	}
	p.next()
	var arg ast.Expression
	if !p.eat(token.T_SEMI) && !p.canInsertSemicolon() {
		arg = p.parseExpression("", nil)
		p.semicolon()
	}
	return &ast.ReturnStatement{NodeBase: p.finishNode(m), Argument: arg}
}

func (p *Parser) parseSwitchStatement(m marker) *ast.SwitchStatement {
	p.next()
	discriminant := p.parseParenExpression()
	cases := []*ast.SwitchCase{}
	p.expect(token.T_BRACEL)
	p.labels = append(p.labels, switchLabel)
	p.enterScope(0)

	// cur is the case being read. It is finished when the next one starts.
	var cur *ast.SwitchCase
	var curStart marker
	var consequent []ast.Statement
	finishCase := func() {
		if cur != nil {
			cur.NodeBase = p.finishNode(curStart)
			cur.Consequent = ast.ListOf(consequent)
			cases = append(cases, cur)
		}
	}
	for sawDefault := false; p.tok.Token != token.T_BRACER; {
		if p.tok.Token == token.T_CASE || p.tok.Token == token.T_DEFAULT {
			isCase := p.tok.Token == token.T_CASE
			finishCase()
			cur, curStart, consequent = &ast.SwitchCase{}, p.startNode(), []ast.Statement{}
			p.next()
			if isCase {
				cur.Test = p.parseExpression("", nil)
			} else {
				if sawDefault {
					p.raiseRecoverable(p.prev.Start, "Multiple default clauses")
				}
				sawDefault = true
			}
			p.expect(token.T_COLON)
		} else {
			if cur == nil {
				p.unexpected()
			}
			consequent = append(consequent, p.parseStatementOrRecover("", false, nil))
		}
	}
	p.exitScope()
	finishCase()
	p.next() // closing brace
	p.popLabel()
	return &ast.SwitchStatement{NodeBase: p.finishNode(m), Discriminant: discriminant, Cases: ast.ListOf(cases)}
}

func (p *Parser) parseThrowStatement(m marker) *ast.ThrowStatement {
	p.next()
	if p.tok.NewlineBefore {
		p.raise(p.prev.End, "Illegal newline after throw")
	}
	arg := p.parseExpression("", nil)
	p.semicolon()
	return &ast.ThrowStatement{NodeBase: p.finishNode(m), Argument: arg}
}

func (p *Parser) parseTryStatement(m marker) *ast.TryStatement {
	p.next()
	block := p.parseBlock(true, p.startNode(), false)
	var handler *ast.CatchClause
	if p.tok.Token == token.T_CATCH {
		clauseStart := p.startNode()
		p.next()
		var param ast.Pattern
		if p.eat(token.T_PARENL) {
			param = p.parseCatchClauseParam()
		} else {
			p.enterScope(0)
		}
		body := p.parseBlock(false, p.startNode(), false)
		p.exitScope()
		handler = &ast.CatchClause{NodeBase: p.finishNode(clauseStart), Param: param, Body: body}
	}
	var finalizer *ast.BlockStatement
	if p.eat(token.T_FINALLY) {
		finalizer = p.parseBlock(true, p.startNode(), false)
	}
	if handler == nil && finalizer == nil {
		p.raise(m.pos, "Missing catch or finally clause")
	}
	return &ast.TryStatement{NodeBase: p.finishNode(m), Block: block, Handler: handler, Finalizer: finalizer}
}

func (p *Parser) parseCatchClauseParam() ast.Pattern {
	param := p.parseBindingAtom()
	_, simple := param.(*ast.Identifier)
	if simple {
		p.enterScope(SCOPE_SIMPLE_CATCH)
		p.checkLValPattern(param, BIND_SIMPLE_CATCH, nil)
	} else {
		p.enterScope(0)
		p.checkLValPattern(param, BIND_LEXICAL, nil)
	}
	p.expect(token.T_PARENR)
	return param
}

func (p *Parser) parseVarStatement(m marker, kind string) *ast.VariableDeclaration {
	p.next()
	decls := p.parseVar(false, kind)
	p.semicolon()
	return &ast.VariableDeclaration{NodeBase: p.finishNode(m), Kind: kind, Declarations: ast.ListOf(decls)}
}

func (p *Parser) parseWhileStatement(m marker) *ast.WhileStatement {
	p.next()
	test := p.parseParenExpression()
	p.labels = append(p.labels, loopLabel)
	body := p.parseStatement("while", false, nil)
	p.popLabel()
	return &ast.WhileStatement{NodeBase: p.finishNode(m), Test: test, Body: body}
}

func (p *Parser) parseWithStatement(m marker) *ast.WithStatement {
	if p.strict {
		p.raiseRecoverable(p.tok.Start, "'with' in strict mode")
	}
	p.next()
	object := p.parseParenExpression()
	body := p.parseStatement("with", false, nil)
	return &ast.WithStatement{NodeBase: p.finishNode(m), Object: object, Body: body}
}

func (p *Parser) parseLabeledStatement(m marker, maybeName string, expr *ast.Identifier, context string) *ast.LabeledStatement {
	for _, lab := range p.labels {
		if lab.name == maybeName {
			p.raiseRecoverable(expr.Start, fmt.Sprintf("Label '%s' is already declared", maybeName))
			break
		}
	}
	kind := ""
	switch {
	case p.tok.Token.IsLoop():
		kind = "loop"
	case p.tok.Token == token.T_SWITCH:
		kind = "switch"
	}
	// Labels stacked on the same statement take its kind.
	for i := len(p.labels) - 1; i >= 0; i-- {
		if p.labels[i].statementStart != m.pos {
			break
		}
		p.labels[i].statementStart = p.tok.Start
		p.labels[i].kind = kind
	}
	p.labels = append(p.labels, label{name: maybeName, kind: kind, statementStart: p.tok.Start})

	switch {
	case context == "":
		context = "label"
	case !strings.Contains(context, "label"):
		context += "label"
	}
	body := p.parseStatement(context, false, nil)
	p.popLabel()
	return &ast.LabeledStatement{NodeBase: p.finishNode(m), Label: expr, Body: body}
}

func (p *Parser) parseExpressionStatement(m marker, expr ast.Expression) *ast.ExpressionStatement {
	p.semicolon()
	return &ast.ExpressionStatement{NodeBase: p.finishNode(m), Expression: expr}
}

// parseBlock reads a braced statement list. exitStrict drops strict mode
// before the token after the closing brace is read.
func (p *Parser) parseBlock(createNewLexicalScope bool, m marker, exitStrict bool) *ast.BlockStatement {
	p.expect(token.T_BRACEL)
	if createNewLexicalScope {
		p.enterScope(0)
	}
	body := []ast.Statement{}
	for p.tok.Token != token.T_BRACER {
		body = append(body, p.parseStatementOrRecover("", false, nil))
	}
	if exitStrict {
		p.strict = false
	}
	p.next()
	if createNewLexicalScope {
		p.exitScope()
	}
	return &ast.BlockStatement{NodeBase: p.finishNode(m), Body: ast.ListOf(body)}
}

// adaptDirectivePrologue marks the leading string literal statements as
// directives.
func (p *Parser) adaptDirectivePrologue(statements []ast.Statement) {
	for _, stmt := range statements {
		es, ok := p.directiveCandidate(stmt)
		if !ok {
			return
		}
		lit := es.Expression.(*ast.Literal)
		es.Directive = lit.Raw[1 : len(lit.Raw)-1]
	}
}

func (p *Parser) directiveCandidate(stmt ast.Statement) (*ast.ExpressionStatement, bool) {
	es, ok := stmt.(*ast.ExpressionStatement)
	if !ok {
		return nil, false
	}
	lit, ok := es.Expression.(*ast.Literal)
	if !ok || lit.Kind != ast.LITERAL_STRING {
		return nil, false
	}
	// a parenthesized string is not a directive
	c := p.input[es.Start]
	return es, c == '"' || c == '\''
}

func (p *Parser) parseVar(isFor bool, kind string) []*ast.VariableDeclarator {
	decls := []*ast.VariableDeclarator{}
	for {
		m := p.startNode()
		id := p.parseVarId(kind)
		var init ast.Expression
		forInit := ""
		if isFor {
			forInit = "init"
		}
		_, simple := id.(*ast.Identifier)
		switch {
		case p.eat(token.T_EQ):
			init = p.parseMaybeAssign(forInit, nil)
		case kind == "const" && !(p.tok.Token == token.T_IN || p.isContextual("of")):
			p.unexpected()
		case !simple && !(isFor && (p.tok.Token == token.T_IN || p.isContextual("of"))):
			p.raise(p.prev.End, "Complex binding patterns require an initialization value")
		}
		decls = append(decls, &ast.VariableDeclarator{NodeBase: p.finishNode(m), ID: id, Init: init})
		if !p.eat(token.T_COMMA) {
			return decls
		}
	}
}

func (p *Parser) parseVarId(kind string) ast.Pattern {
	id := p.parseBindingAtom()
	binding := BIND_LEXICAL
	if kind == "var" {
		binding = BIND_VAR
	}
	p.checkLValPattern(id, binding, nil)
	return id
}

// parseFunction parses a function after the function keyword. flags tell
// declarations (FUNC_STATEMENT) from expressions.
func (p *Parser) parseFunction(m marker, flags Flags, isAsync bool, forInit string) ast.Node {
	if p.tok.Token == token.T_STAR && flags&FUNC_HANGING_STATEMENT != 0 {
		p.unexpected()
	}
	generator := p.eat(token.T_STAR)

	var id *ast.Identifier
	if flags&FUNC_STATEMENT != 0 {
		if flags&FUNC_NULLABLE_ID == 0 || p.tok.Token == token.T_NAME {
			id = p.parseIdent(false)
		}
		if id != nil && flags&FUNC_HANGING_STATEMENT == 0 {
			// Sloppy plain declarations follow the Annex B function binding rules.
			binding := BIND_FUNCTION
			if p.strict || generator || isAsync {
				binding = BIND_LEXICAL
				if p.treatFunctionsAsVar() {
					binding = BIND_VAR
				}
			}
			p.checkLValSimple(id, binding, nil)
		}
	}

	oldYieldPos, oldAwaitPos, oldAwaitIdentPos := p.yieldPos, p.awaitPos, p.awaitIdentPos
	p.yieldPos, p.awaitPos, p.awaitIdentPos = 0, 0, 0
	p.enterScope(functionFlags(isAsync, generator))

	if flags&FUNC_STATEMENT == 0 && p.tok.Token == token.T_NAME {
		id = p.parseIdent(false)
	}
	params := p.parseFunctionParams()
	body, _ := p.parseFunctionBody(m.pos, params, id, false, false, forInit)
	p.yieldPos, p.awaitPos, p.awaitIdentPos = oldYieldPos, oldAwaitPos, oldAwaitIdentPos

	block := body.(*ast.BlockStatement)
	if flags&FUNC_STATEMENT != 0 {
		return &ast.FunctionDeclaration{NodeBase: p.finishNode(m), ID: id, Params: ast.ListOf(params), Body: block, Generator: generator, Async: isAsync}
	}
	return &ast.FunctionExpression{NodeBase: p.finishNode(m), ID: id, Params: ast.ListOf(params), Body: block, Generator: generator, Async: isAsync}
}

func (p *Parser) parseFunctionParams() []ast.Pattern {
	p.expect(token.T_PARENL)
	params := p.parseBindingList(token.T_PARENR, false, true)
	p.checkYieldAwaitInDefaultParams()
	return params
}

// parseClass parses a class declaration or expression. optionalID allows a
// declaration without a name, as in export default class {}.
func (p *Parser) parseClass(m marker, isStatement, optionalID bool) ast.Node {
	p.next()

	// class bodies are always strict
	oldStrict := p.strict
	p.strict = true

	id := p.parseClassId(isStatement, optionalID)
	var superClass ast.Expression
	if p.eat(token.T_EXTENDS) {
		superClass = p.parseExprSubscripts(nil, "")
	}
	privateNameMap := p.enterClassBody()
	bodyStart := p.startNode()
	hadConstructor := false
	elements := []ast.Node{}
	p.expect(token.T_BRACEL)
	for p.tok.Token != token.T_BRACER {
		element := p.parseClassElement(superClass != nil)
		if element == nil {
			continue
		}
		elements = append(elements, element)
		if md, ok := element.(*ast.MethodDefinition); ok && md.Kind == "constructor" {
			if hadConstructor {
				p.raiseRecoverable(md.Start, "Duplicate constructor in the same class")
			}
			hadConstructor = true
		} else if key, ok := classElementKey(element).(*ast.PrivateIdentifier); ok && isPrivateNameConflicted(privateNameMap, element, key.Name) {
			p.raiseRecoverable(key.Start, fmt.Sprintf("Identifier '#%s' has already been declared", key.Name))
		}
	}
	p.strict = oldStrict
	p.next()
	body := &ast.ClassBody{NodeBase: p.finishNode(bodyStart), Body: ast.ListOf(elements)}
	p.exitClassBody()

	if isStatement {
		return &ast.ClassDeclaration{NodeBase: p.finishNode(m), ID: id, SuperClass: superClass, Body: body}
	}
	return &ast.ClassExpression{NodeBase: p.finishNode(m), ID: id, SuperClass: superClass, Body: body}
}

func (p *Parser) parseClassId(isStatement, optionalID bool) *ast.Identifier {
	if p.tok.Token != token.T_NAME {
		if isStatement && !optionalID {
			p.unexpected()
		}
		return nil
	}
	id := p.parseIdent(false)
	if isStatement {
		p.checkLValSimple(id, BIND_LEXICAL, nil)
	}
	return id
}

func classElementKey(element ast.Node) ast.Expression {
	switch e := element.(type) {
	case *ast.MethodDefinition:
		return e.Key
	case *ast.PropertyDefinition:
		return e.Key
	}
	return nil
}

func (p *Parser) enterClassBody() map[string]string {
	names := &privateNames{declared: map[string]string{}}
	p.privateNameStack = append(p.privateNameStack, names)
	return names.declared
}

// exitClassBody hands private names not declared in the class to the
// enclosing class, or reports them at the outermost one.
func (p *Parser) exitClassBody() {
	top := p.privateNameStack[len(p.privateNameStack)-1]
	p.privateNameStack = p.privateNameStack[:len(p.privateNameStack)-1]
	var parent *privateNames
	if n := len(p.privateNameStack); n > 0 {
		parent = p.privateNameStack[n-1]
	}
	for _, id := range top.used {
		if _, ok := top.declared[id.Name]; ok {
			continue
		}
		if parent != nil {
			parent.used = append(parent.used, id)
		} else {
			p.raiseRecoverable(id.Start, fmt.Sprintf("Private field '#%s' must be declared in an enclosing class", id.Name))
		}
	}
}

// isPrivateNameConflicted records a private name declaration. A getter and
// a setter of the same placement may share a name.
func isPrivateNameConflicted(privateNameMap map[string]string, element ast.Node, name string) bool {
	curr := privateNameMap[name]
	next := "true"
	if md, ok := element.(*ast.MethodDefinition); ok && (md.Kind == "get" || md.Kind == "set") {
		placement := "i"
		if md.Static {
			placement = "s"
		}
		next = placement + md.Kind
	}
	switch {
	case curr == "iget" && next == "iset", curr == "iset" && next == "iget",
		curr == "sget" && next == "sset", curr == "sset" && next == "sget":
		privateNameMap[name] = "true"
		return false
	case curr == "":
		privateNameMap[name] = next
		return false
	}
	return true
}

func (p *Parser) isClassElementNameStart() bool {
	switch p.tok.Token {
	case token.T_NAME, token.T_PRIVATEID, token.T_NUM, token.T_STRING, token.T_BRACKETL:
		return true
	}
	return p.tok.Token.IsKeyword()
}

func (p *Parser) parseClassElement(constructorAllowsSuper bool) ast.Node {
	if p.eat(token.T_SEMI) {
		return nil
	}
	m := p.startNode()
	keyName, kind := "", "method"
	isGenerator, isAsync, isStatic := false, false, false

	if p.eatContextual("static") {
		if p.tok.Token == token.T_BRACEL {
			return p.parseClassStaticBlock(m)
		}
		if p.isClassElementNameStart() || p.tok.Token == token.T_STAR {
			isStatic = true
		} else {
			keyName = "static"
		}
	}
	if keyName == "" && p.eatContextual("async") {
		if (p.isClassElementNameStart() || p.tok.Token == token.T_STAR) && !p.canInsertSemicolon() {
			isAsync = true
		} else {
			keyName = "async"
		}
	}
	if keyName == "" && p.eat(token.T_STAR) {
		isGenerator = true
	}
	if keyName == "" && !isAsync && !isGenerator {
		lastValue := p.tok.Value
		if p.eatContextual("get") || p.eatContextual("set") {
			if p.isClassElementNameStart() {
				kind = lastValue
			} else {
				keyName = lastValue
			}
		}
	}

	var key ast.Expression
	computed := false
	if keyName != "" {
		// The modifier word turned out to be the element name.
		km := p.startNodeAt(p.prev.Start, p.prev.Loc.Start)
		key = &ast.Identifier{NodeBase: p.finishNode(km), Name: keyName}
	} else {
		key, computed = p.parseClassElementName()
	}

	if p.tok.Token == token.T_PARENL || kind != "method" || isGenerator || isAsync {
		isConstructor := !isStatic && checkKeyName(key, computed, "constructor")
		if isConstructor && kind != "method" {
			p.raiseRecoverable(key.Base().Start, "Constructor can't have get/set modifier")
		}
		if isConstructor {
			kind = "constructor"
		}
		return p.parseClassMethod(m, key, computed, kind, isStatic, isGenerator, isAsync, isConstructor && constructorAllowsSuper)
	}
	return p.parseClassField(m, key, computed, isStatic)
}

func (p *Parser) parseClassElementName() (ast.Expression, bool) {
	if p.tok.Token == token.T_PRIVATEID {
		if p.tok.Value == "constructor" {
			p.raiseRecoverable(p.tok.Start, "Classes can't have an element named '#constructor'")
		}
		m := p.startNode()
		name := p.tok.Value
		p.next()
		return &ast.PrivateIdentifier{NodeBase: p.finishNode(m), Name: name}, false
	}
	return p.parsePropertyName()
}

func checkKeyName(key ast.Expression, computed bool, name string) bool {
	if computed {
		return false
	}
	switch k := key.(type) {
	case *ast.Identifier:
		return k.Name == name
	case *ast.Literal:
		s, ok := k.StringValue()
		return ok && s == name
	}
	return false
}

func (p *Parser) parseClassMethod(m marker, key ast.Expression, computed bool, kind string, isStatic, isGenerator, isAsync, allowsDirectSuper bool) *ast.MethodDefinition {
	if kind == "constructor" {
		if isGenerator {
			p.raiseRecoverable(key.Base().Start, "Constructor can't be a generator")
		}
		if isAsync {
			p.raiseRecoverable(key.Base().Start, "Constructor can't be an async method")
		}
	} else if isStatic && checkKeyName(key, computed, "prototype") {
		p.raiseRecoverable(key.Base().Start, "Classes may not have a static property named prototype")
	}

	value := p.parseMethod(isGenerator, isAsync, allowsDirectSuper)
	switch {
	case kind == "get" && value.Params.Len() != 0:
		p.raiseRecoverable(value.Start, "getter should have no params")
	case kind == "set" && value.Params.Len() != 1:
		p.raiseRecoverable(value.Start, "setter should have exactly one param")
	case kind == "set":
		if rest, ok := value.Params.At(0).(*ast.RestElement); ok {
			p.raiseRecoverable(rest.Start, "Setter cannot use rest params")
		}
	}
	return &ast.MethodDefinition{NodeBase: p.finishNode(m), Key: key, Value: value, Kind: kind, Computed: computed, Static: isStatic}
}

func (p *Parser) parseClassField(m marker, key ast.Expression, computed, isStatic bool) *ast.PropertyDefinition {
	if checkKeyName(key, computed, "constructor") {
		p.raiseRecoverable(key.Base().Start, "Classes can't have a field named 'constructor'")
	} else if isStatic && checkKeyName(key, computed, "prototype") {
		p.raiseRecoverable(key.Base().Start, "Classes can't have a static field named 'prototype'")
	}

	var value ast.Expression
	if p.eat(token.T_EQ) {
		p.enterScope(SCOPE_CLASS_FIELD_INIT | SCOPE_SUPER)
		value = p.parseMaybeAssign("", nil)
		p.exitScope()
	}
	p.semicolon()
	return &ast.PropertyDefinition{NodeBase: p.finishNode(m), Key: key, Value: value, Computed: computed, Static: isStatic}
}

func (p *Parser) parseClassStaticBlock(m marker) *ast.StaticBlock {
	p.expect(token.T_BRACEL)
	oldLabels := p.labels
	p.labels = nil
	p.enterScope(SCOPE_CLASS_STATIC_BLOCK | SCOPE_SUPER)
	body := []ast.Statement{}
	for p.tok.Token != token.T_BRACER {
		body = append(body, p.parseStatementOrRecover("", false, nil))
	}
	p.next()
	p.exitScope()
	p.labels = oldLabels
	return &ast.StaticBlock{NodeBase: p.finishNode(m), Body: ast.ListOf(body)}
}

// MODULES

func (p *Parser) parseExport(m marker, exports map[string]bool) ast.Statement {
	p.next()
	if p.eat(token.T_STAR) {
		return p.parseExportAllDeclaration(m, exports)
	}
	if p.eat(token.T_DEFAULT) {
		p.checkExport(exports, "default", p.prev.Start)
		decl := p.parseExportDefaultDeclaration()
		return &ast.ExportDefaultDeclaration{NodeBase: p.finishNode(m), Declaration: decl}
	}

	if p.shouldParseExportStatement() {
		decl := p.parseStatement("", false, nil)
		switch d := decl.(type) {
		case *ast.VariableDeclaration:
			for i := 0; i < d.Declarations.Len(); i++ {
				p.checkPatternExport(exports, d.Declarations.At(i).ID)
			}
		case *ast.FunctionDeclaration:
			p.checkExport(exports, d.ID.Name, d.ID.Start)
		case *ast.ClassDeclaration:
			p.checkExport(exports, d.ID.Name, d.ID.Start)
		}
		return &ast.ExportNamedDeclaration{
			NodeBase:    p.finishNode(m),
			Declaration: decl,
			Specifiers:  ast.ListOf([]*ast.ExportSpecifier{}),
			Attributes:  ast.ListOf([]*ast.ImportAttribute{}),
		}
	}

	specifiers := p.parseExportSpecifiers(exports)
	var source *ast.Literal
	attributes := []*ast.ImportAttribute{}
	if p.eatContextual("from") {
		if p.tok.Token != token.T_STRING {
			p.unexpected()
		}
		source = p.parseLiteral()
		attributes = p.parseWithClause()
	} else {
		for _, spec := range specifiers {
			switch local := spec.Local.(type) {
			case *ast.Identifier:
				p.checkUnreserved(local.Name, local.Start)
				p.checkLocalExport(local)
			case *ast.Literal:
				p.raise(local.Start, "A string literal cannot be used as an exported binding without `from`.")
			}
		}
	}
	p.semicolon()
	return &ast.ExportNamedDeclaration{
		NodeBase:   p.finishNode(m),
		Specifiers: ast.ListOf(specifiers),
		Source:     source,
		Attributes: ast.ListOf(attributes),
	}
}

func (p *Parser) shouldParseExportStatement() bool {
	switch p.tok.Token {
	case token.T_VAR, token.T_CONST, token.T_CLASS, token.T_FUNCTION:
		return true
	}
	return p.isLet("") || p.isAsyncFunction()
}

func (p *Parser) parseExportDefaultDeclaration() ast.Node {
	isAsync := p.isAsyncFunction()
	switch {
	case p.tok.Token == token.T_FUNCTION || isAsync:
		m := p.startNode()
		p.next()
		if isAsync {
			p.next()
		}
		return p.parseFunction(m, FUNC_STATEMENT|FUNC_NULLABLE_ID, isAsync, "")
	case p.tok.Token == token.T_CLASS:
		return p.parseClass(p.startNode(), true, true)
	}
	decl := p.parseMaybeAssign("", nil)
	p.semicolon()
	return decl
}

func (p *Parser) parseExportAllDeclaration(m marker, exports map[string]bool) *ast.ExportAllDeclaration {
	var exported ast.Expression
	if p.eatContextual("as") {
		exported = p.parseModuleExportName()
		p.checkExport(exports, exportName(exported), p.prev.Start)
	}
	p.expectContextual("from")
	if p.tok.Token != token.T_STRING {
		p.unexpected()
	}
	source := p.parseLiteral()
	attributes := p.parseWithClause()
	p.semicolon()
	return &ast.ExportAllDeclaration{NodeBase: p.finishNode(m), Exported: exported, Source: source, Attributes: ast.ListOf(attributes)}
}

func exportName(n ast.Expression) string {
	switch n := n.(type) {
	case *ast.Identifier:
		return n.Name
	case *ast.Literal:
		s, _ := n.StringValue()
		return s
	}
	return ""
}

func (p *Parser) checkExport(exports map[string]bool, name string, pos int) {
	if exports == nil {
		return
	}
	if exports[name] {
		p.raiseRecoverable(pos, fmt.Sprintf("Duplicate export '%s'", name))
	}
	exports[name] = true
}

func (p *Parser) checkPatternExport(exports map[string]bool, pat ast.Node) {
	switch pat := pat.(type) {
	case *ast.Identifier:
		p.checkExport(exports, pat.Name, pat.Start)
	case *ast.ObjectPattern:
		for i := 0; i < pat.Properties.Len(); i++ {
			p.checkPatternExport(exports, pat.Properties.At(i))
		}
	case *ast.ArrayPattern:
		for i := 0; i < pat.Elements.Len(); i++ {
			if elt := pat.Elements.At(i); elt != nil {
				p.checkPatternExport(exports, elt)
			}
		}
	case *ast.Property:
		p.checkPatternExport(exports, pat.Value)
	case *ast.AssignmentPattern:
		p.checkPatternExport(exports, pat.Left)
	case *ast.RestElement:
		p.checkPatternExport(exports, pat.Argument)
	}
}

func (p *Parser) parseExportSpecifiers(exports map[string]bool) []*ast.ExportSpecifier {
	nodes := []*ast.ExportSpecifier{}
	first := true
	p.expect(token.T_BRACEL)
	for !p.eat(token.T_BRACER) {
		if !first {
			p.expect(token.T_COMMA)
			if p.afterTrailingComma(token.T_BRACER, false) {
				break
			}
		} else {
			first = false
		}
		m := p.startNode()
		local := p.parseModuleExportName()
		exported := local
		if p.eatContextual("as") {
			exported = p.parseModuleExportName()
		}
		p.checkExport(exports, exportName(exported), exported.Base().Start)
		nodes = append(nodes, &ast.ExportSpecifier{NodeBase: p.finishNode(m), Local: local, Exported: exported})
	}
	return nodes
}

func (p *Parser) parseModuleExportName() ast.Expression {
	if p.tok.Token == token.T_STRING {
		return p.parseLiteral()
	}
	return p.parseIdent(true)
}

func (p *Parser) parseImport(m marker) *ast.ImportDeclaration {
	p.next()
	specifiers := []ast.Node{}
	if p.tok.Token != token.T_STRING {
		specifiers = p.parseImportSpecifiers()
		p.expectContextual("from")
		if p.tok.Token != token.T_STRING {
			p.unexpected()
		}
	}
	source := p.parseLiteral()
	attributes := p.parseWithClause()
	p.semicolon()
	return &ast.ImportDeclaration{NodeBase: p.finishNode(m), Specifiers: ast.ListOf(specifiers), Source: source, Attributes: ast.ListOf(attributes)}
}

func (p *Parser) parseImportSpecifiers() []ast.Node {
	nodes := []ast.Node{}
	if p.tok.Token == token.T_NAME {
		m := p.startNode()
		local := p.parseIdent(false)
		p.checkLValSimple(local, BIND_LEXICAL, nil)
		nodes = append(nodes, &ast.ImportDefaultSpecifier{NodeBase: p.finishNode(m), Local: local})
		if !p.eat(token.T_COMMA) {
			return nodes
		}
	}
	if p.tok.Token == token.T_STAR {
		m := p.startNode()
		p.next()
		p.expectContextual("as")
		local := p.parseIdent(false)
		p.checkLValSimple(local, BIND_LEXICAL, nil)
		return append(nodes, &ast.ImportNamespaceSpecifier{NodeBase: p.finishNode(m), Local: local})
	}

	p.expect(token.T_BRACEL)
	first := true
	for !p.eat(token.T_BRACER) {
		if !first {
			p.expect(token.T_COMMA)
			if p.afterTrailingComma(token.T_BRACER, false) {
				break
			}
		} else {
			first = false
		}
		nodes = append(nodes, p.parseImportSpecifier())
	}
	return nodes
}

func (p *Parser) parseImportSpecifier() *ast.ImportSpecifier {
	m := p.startNode()
	imported := p.parseModuleExportName()
	var local *ast.Identifier
	if p.eatContextual("as") {
		local = p.parseIdent(false)
	} else {
		id, ok := imported.(*ast.Identifier)
		if !ok {
			p.unexpected()
		}
		p.checkUnreserved(id.Name, id.Start)
		local = id
	}
	p.checkLValSimple(local, BIND_LEXICAL, nil)
	return &ast.ImportSpecifier{NodeBase: p.finishNode(m), Imported: imported, Local: local}
}

// parseWithClause reads the import attributes after `with`, if any.
func (p *Parser) parseWithClause() []*ast.ImportAttribute {
	nodes := []*ast.ImportAttribute{}
	if !p.eat(token.T_WITH) {
		return nodes
	}
	p.expect(token.T_BRACEL)
	keys := map[string]bool{}
	first := true
	for !p.eat(token.T_BRACER) {
		if !first {
			p.expect(token.T_COMMA)
			if p.afterTrailingComma(token.T_BRACER, false) {
				break
			}
		} else {
			first = false
		}
		attr := p.parseImportAttribute()
		name := exportName(attr.Key)
		if keys[name] {
			p.raiseRecoverable(attr.Key.Base().Start, fmt.Sprintf("Duplicate attribute key '%s'", name))
		}
		keys[name] = true
		nodes = append(nodes, attr)
	}
	return nodes
}

func (p *Parser) parseImportAttribute() *ast.ImportAttribute {
	m := p.startNode()
	var key ast.Expression
	if p.tok.Token == token.T_STRING {
		key = p.parseLiteral()
	} else {
		key = p.parseIdent(true)
	}
	p.expect(token.T_COLON)
	if p.tok.Token != token.T_STRING {
		p.unexpected()
	}
	value := p.parseLiteral()
	return &ast.ImportAttribute{NodeBase: p.finishNode(m), Key: key, Value: value}
}
