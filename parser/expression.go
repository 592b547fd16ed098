package parser

import (
	"fmt"
	"strings"

	"esfront/ast"
	"esfront/jsregexp"
	"esfront/token"
)

// checkPropClash reports a second __proto__ property in an object literal.
// Inside a possible pattern the error is deferred through
// refDestructuringErrors.
func (p *Parser) checkPropClash(prop ast.Node, hasProto *bool, refDestructuringErrors *DestructuringErrors) {
	pr, ok := prop.(*ast.Property)
	if !ok || pr.Computed || pr.Method || pr.Shorthand || pr.Kind != "init" {
		return
	}
	var name string
	switch key := pr.Key.(type) {
	case *ast.Identifier:
		name = key.Name
	case *ast.Literal:
		s, ok := key.StringValue()
		if !ok {
			return
		}
		name = s
	default:
		return
	}
	if name != "__proto__" {
		return
	}
	if *hasProto {
		if refDestructuringErrors != nil {
			if refDestructuringErrors.doubleProto < 0 {
				refDestructuringErrors.doubleProto = pr.Key.Base().Start
			}
		} else {
			p.raiseRecoverable(pr.Key.Base().Start, "Redefinition of __proto__ property")
		}
	}
	*hasProto = true
}

// forInit is "init" in the head of a for statement, where 'in' is not an
// operator, "await" in the head of a for-await statement and empty
// elsewhere.
func (p *Parser) parseExpression(forInit string, refDestructuringErrors *DestructuringErrors) ast.Expression {
	m := p.startNode()
	expr := p.parseMaybeAssign(forInit, refDestructuringErrors)
	if p.tok.Token != token.T_COMMA {
		return expr
	}
	exprs := []ast.Expression{expr}
	for p.eat(token.T_COMMA) {
		exprs = append(exprs, p.parseMaybeAssign(forInit, refDestructuringErrors))
	}
	return &ast.SequenceExpression{NodeBase: p.finishNode(m), Expressions: ast.ListOf(exprs)}
}

func (p *Parser) parseMaybeAssign(forInit string, refDestructuringErrors *DestructuringErrors) ast.Expression {
	if p.isContextual("yield") && p.inGenerator() {
		return p.parseYield(forInit)
	}

	ownDestructuringErrors := false
	oldParenAssign, oldTrailingComma, oldDoubleProto := -1, -1, -1
	if refDestructuringErrors != nil {
		oldParenAssign = refDestructuringErrors.parenthesizedAssign
		oldTrailingComma = refDestructuringErrors.trailingComma
		oldDoubleProto = refDestructuringErrors.doubleProto
		refDestructuringErrors.parenthesizedAssign = -1
		refDestructuringErrors.trailingComma = -1
	} else {
		refDestructuringErrors = NewDestructuringErrors()
		ownDestructuringErrors = true
	}

	m := p.startNode()
	if p.tok.Token == token.T_PARENL || p.tok.Token == token.T_NAME {
		p.potentialArrowAt = p.tok.Start
		p.potentialArrowInForAwait = forInit == "await"
	}
	left := p.parseMaybeConditional(forInit, refDestructuringErrors)

	if p.tok.Token.IsAssign() {
		operator := p.tok.Value
		var target ast.Pattern
		if p.tok.Token == token.T_EQ {
			target = p.toAssignable(left, false, refDestructuringErrors)
		}
		if !ownDestructuringErrors {
			refDestructuringErrors.parenthesizedAssign = -1
			refDestructuringErrors.trailingComma = -1
			refDestructuringErrors.doubleProto = -1
		}
		if refDestructuringErrors.shorthandAssign >= left.Base().Start {
			refDestructuringErrors.shorthandAssign = -1
		}
		if p.tok.Token == token.T_EQ {
			p.checkLValPattern(target, BIND_NONE, nil)
		} else {
			p.checkLValSimple(left, BIND_NONE, nil)
			target = asPattern(left)
		}
		p.next()
		right := p.parseMaybeAssign(forInit, nil)
		if oldDoubleProto > -1 {
			refDestructuringErrors.doubleProto = oldDoubleProto
		}
		return &ast.AssignmentExpression{NodeBase: p.finishNode(m), Operator: operator, Left: target, Right: right}
	}
	if ownDestructuringErrors {
		p.checkExpressionErrors(refDestructuringErrors, true)
	}
	if oldParenAssign > -1 {
		refDestructuringErrors.parenthesizedAssign = oldParenAssign
	}
	if oldTrailingComma > -1 {
		refDestructuringErrors.trailingComma = oldTrailingComma
	}
	return left
}

func (p *Parser) parseMaybeConditional(forInit string, refDestructuringErrors *DestructuringErrors) ast.Expression {
	m := p.startNode()
	expr := p.parseExprOps(forInit, refDestructuringErrors)
	if p.checkExpressionErrors(refDestructuringErrors, false) {
		return expr
	}
	if !p.eat(token.T_QUESTION) {
		return expr
	}
	consequent := p.parseMaybeAssign("", nil)
	p.expect(token.T_COLON)
	alternate := p.parseMaybeAssign(forInit, nil)
	return &ast.ConditionalExpression{NodeBase: p.finishNode(m), Test: expr, Consequent: consequent, Alternate: alternate}
}

func (p *Parser) parseExprOps(forInit string, refDestructuringErrors *DestructuringErrors) ast.Expression {
	m := p.startNode()
	expr := p.parseMaybeUnary(refDestructuringErrors, false, false, forInit)
	if p.checkExpressionErrors(refDestructuringErrors, false) {
		return expr
	}
	if _, ok := expr.(*ast.ArrowFunctionExpression); ok && expr.Base().Start == m.pos {
		return expr
	}
	return p.parseExprOp(expr, m, -1, forInit)
}

// parseExprOp climbs binary operators binding tighter than minPrec.
func (p *Parser) parseExprOp(left ast.Expression, leftStart marker, minPrec int, forInit string) ast.Expression {
	prec := p.tok.Token.Binop()
	if prec == 0 || forInit != "" && p.tok.Token == token.T_IN || prec <= minPrec {
		return left
	}
	logical := p.tok.Token == token.T_LOGICALOR || p.tok.Token == token.T_LOGICALAND
	coalesce := p.tok.Token == token.T_COALESCE
	if coalesce {
		prec = token.T_LOGICALAND.Binop()
	}
	op := p.tok.Value
	p.next()
	m := p.startNode()
	right := p.parseExprOp(p.parseMaybeUnary(nil, false, false, forInit), m, prec, forInit)
	node := p.buildBinary(leftStart, left, right, op, logical || coalesce)
	if logical && p.tok.Token == token.T_COALESCE ||
		coalesce && (p.tok.Token == token.T_LOGICALOR || p.tok.Token == token.T_LOGICALAND) {
		p.raiseRecoverable(p.tok.Start, "Logical expressions and coalesce expressions cannot be mixed. Wrap either by parentheses")
	}
	return p.parseExprOp(node, leftStart, minPrec, forInit)
}

func (p *Parser) buildBinary(m marker, left, right ast.Expression, op string, logical bool) ast.Expression {
	if _, ok := right.(*ast.PrivateIdentifier); ok {
		p.raise(right.Base().Start, "Private identifier can only be left side of binary expression")
	}
	if logical {
		return &ast.LogicalExpression{NodeBase: p.finishNode(m), Operator: op, Left: left, Right: right}
	}
	return &ast.BinaryExpression{NodeBase: p.finishNode(m), Operator: op, Left: left, Right: right}
}

func (p *Parser) parseMaybeUnary(refDestructuringErrors *DestructuringErrors, sawUnary, incDec bool, forInit string) ast.Expression {
	m := p.startNode()
	var expr ast.Expression
	switch {
	case p.isContextual("await") && p.canAwait():
		expr = p.parseAwait(forInit)
		sawUnary = true

	case p.tok.Token.Prefix():
		update := p.tok.Token == token.T_INCDEC
		operator := p.tok.Value
		p.next()
		arg := p.parseMaybeUnary(nil, true, update, forInit)
		p.checkExpressionErrors(refDestructuringErrors, true)
		if update {
			p.checkLValSimple(arg, BIND_NONE, nil)
			expr = &ast.UpdateExpression{NodeBase: p.finishNode(m), Operator: operator, Prefix: true, Argument: arg}
			break
		}
		switch {
		case p.strict && operator == "delete" && isLocalVariableAccess(arg):
			p.raiseRecoverable(m.pos, "Deleting local variable in strict mode")
		case operator == "delete" && isPrivateFieldAccess(arg):
			p.raiseRecoverable(m.pos, "Private fields can not be deleted")
		default:
			sawUnary = true
		}
		expr = &ast.UnaryExpression{NodeBase: p.finishNode(m), Operator: operator, Prefix: true, Argument: arg}

	case !sawUnary && p.tok.Token == token.T_PRIVATEID:
		if forInit != "" || len(p.privateNameStack) == 0 {
			p.unexpected()
		}
		expr = p.parsePrivateIdent()
		// only valid as the left side of 'in', as in #x in obj
		if p.tok.Token != token.T_IN {
			p.unexpected()
		}

	default:
		expr = p.parseExprSubscripts(refDestructuringErrors, forInit)
		if p.checkExpressionErrors(refDestructuringErrors, false) {
			return expr
		}
		for p.tok.Token.Postfix() && !p.canInsertSemicolon() {
			p.checkLValSimple(expr, BIND_NONE, nil)
			operator := p.tok.Value
			p.next()
			expr = &ast.UpdateExpression{NodeBase: p.finishNode(m), Operator: operator, Argument: expr}
		}
	}

	if incDec || p.tok.Token != token.T_STARSTAR {
		return expr
	}
	p.next()
	if sawUnary {
		p.unexpectedAt(p.prev.Start)
	}
	return p.buildBinary(m, expr, p.parseMaybeUnary(nil, false, false, forInit), "**", false)
}

func (p *Parser) parseExprSubscripts(refDestructuringErrors *DestructuringErrors, forInit string) ast.Expression {
	m := p.startNode()
	expr := p.parseExprAtom(refDestructuringErrors, forInit, false)
	if _, ok := expr.(*ast.ArrowFunctionExpression); ok && p.prev.Raw != ")" {
		return expr
	}
	result := p.parseSubscripts(expr, m, false, forInit)
	if refDestructuringErrors != nil {
		if _, ok := result.(*ast.MemberExpression); ok {
			start := result.Base().Start
			if refDestructuringErrors.parenthesizedAssign >= start {
				refDestructuringErrors.parenthesizedAssign = -1
			}
			if refDestructuringErrors.parenthesizedBind >= start {
				refDestructuringErrors.parenthesizedBind = -1
			}
			if refDestructuringErrors.trailingComma >= start {
				refDestructuringErrors.trailingComma = -1
			}
		}
	}
	return result
}

func (p *Parser) parseSubscripts(base ast.Expression, m marker, noCalls bool, forInit string) ast.Expression {
	id, _ := base.(*ast.Identifier)
	maybeAsyncArrow := id != nil && id.Name == "async" && p.prev.End == id.End &&
		!p.canInsertSemicolon() && id.End-id.Start == 5 && p.potentialArrowAt == id.Start
	optionalChained := false

	for {
		element := p.parseSubscript(base, m, noCalls, maybeAsyncArrow, optionalChained, forInit)
		if isOptional(element) {
			optionalChained = true
		}
		_, arrow := element.(*ast.ArrowFunctionExpression)
		if element == base || arrow {
			if optionalChained {
				element = &ast.ChainExpression{NodeBase: p.finishNode(m), Expression: element}
			}
			return element
		}
		base = element
	}
}

func (p *Parser) parseSubscript(base ast.Expression, m marker, noCalls, maybeAsyncArrow, optionalChained bool, forInit string) ast.Expression {
	optional := p.eat(token.T_QUESTIONDOT)
	if noCalls && optional {
		p.raise(p.prev.Start, "Optional chaining cannot appear in the callee of new expressions")
	}

	computed := p.eat(token.T_BRACKETL)
	if computed || optional && p.tok.Token != token.T_PARENL && !p.atTemplate() || p.eat(token.T_DOT) {
		var property ast.Expression
		_, isSuper := base.(*ast.Super)
		switch {
		case computed:
			property = p.parseExpression("", nil)
			p.expect(token.T_BRACKETR)
		case p.tok.Token == token.T_PRIVATEID && !isSuper:
			property = p.parsePrivateIdent()
		default:
			property = p.parseIdent(true)
		}
		return &ast.MemberExpression{NodeBase: p.finishNode(m), Object: base, Property: property, Computed: computed, Optional: optional}
	}

	if !noCalls && p.eat(token.T_PARENL) {
		refDestructuringErrors := NewDestructuringErrors()
		oldYieldPos, oldAwaitPos, oldAwaitIdentPos := p.yieldPos, p.awaitPos, p.awaitIdentPos
		p.yieldPos, p.awaitPos, p.awaitIdentPos = 0, 0, 0
		exprList := p.parseExprList(token.T_PARENR, true, false, refDestructuringErrors)
		if maybeAsyncArrow && !optional && !p.canInsertSemicolon() && p.eat(token.T_ARROW) {
			p.checkPatternErrors(refDestructuringErrors, false)
			p.checkYieldAwaitInDefaultParams()
			if p.awaitIdentPos > 0 {
				p.raise(p.awaitIdentPos, "Cannot use 'await' as identifier inside an async function")
			}
			p.yieldPos, p.awaitPos, p.awaitIdentPos = oldYieldPos, oldAwaitPos, oldAwaitIdentPos
			return p.parseArrowExpression(m, toNodes(exprList), true, forInit)
		}
		p.checkExpressionErrors(refDestructuringErrors, true)
		p.yieldPos = orElse(oldYieldPos, p.yieldPos)
		p.awaitPos = orElse(oldAwaitPos, p.awaitPos)
		p.awaitIdentPos = orElse(oldAwaitIdentPos, p.awaitIdentPos)
		return &ast.CallExpression{NodeBase: p.finishNode(m), Callee: base, Arguments: ast.ListOf(exprList), Optional: optional}
	}

	if p.atTemplate() {
		if optional || optionalChained {
			p.raise(p.tok.Start, "Optional chaining cannot appear in the tag of tagged template expressions")
		}
		quasi := p.parseTemplate(true)
		return &ast.TaggedTemplateExpression{NodeBase: p.finishNode(m), Tag: base, Quasi: quasi}
	}
	return base
}

// atTemplate reports whether the current token starts a template literal.
func (p *Parser) atTemplate() bool {
	return p.tok.TemplateHead()
}

func (p *Parser) parseExprAtom(refDestructuringErrors *DestructuringErrors, forInit string, forNew bool) ast.Expression {
	if p.tok.Token == token.T_SLASH || p.is(token.T_ASSIGN, "/=") {
		p.rescanRegExp()
	}

	canBeArrow := p.potentialArrowAt == p.tok.Start
	switch p.tok.Token {
	case token.T_SUPER:
		if !p.allowSuper() {
			p.raise(p.tok.Start, "'super' keyword outside a method")
		}
		m := p.startNode()
		p.next()
		if p.tok.Token == token.T_PARENL && !p.allowDirectSuper() {
			p.raise(m.pos, "super() call outside constructor of a subclass")
		}
		switch p.tok.Token {
		case token.T_DOT, token.T_BRACKETL, token.T_PARENL:
		default:
			p.unexpected()
		}
		return &ast.Super{NodeBase: p.finishNode(m)}

	case token.T_THIS:
		m := p.startNode()
		p.next()
		return &ast.ThisExpression{NodeBase: p.finishNode(m)}

	case token.T_NAME:
		m := p.startNode()
		containsEsc := p.tok.Escaped
		id := p.parseIdent(false)
		if !containsEsc && id.Name == "async" && !p.canInsertSemicolon() && p.eat(token.T_FUNCTION) {
			return p.parseFunction(m, 0, true, forInit).(*ast.FunctionExpression)
		}
		if canBeArrow && !p.canInsertSemicolon() {
			if p.eat(token.T_ARROW) {
				return p.parseArrowExpression(m, []ast.Node{id}, false, forInit)
			}
			if id.Name == "async" && p.tok.Token == token.T_NAME && !containsEsc &&
				(!p.potentialArrowInForAwait || p.tok.Value != "of" || p.tok.Escaped) {
				param := p.parseIdent(false)
				if p.canInsertSemicolon() || !p.eat(token.T_ARROW) {
					p.unexpected()
				}
				return p.parseArrowExpression(m, []ast.Node{param}, true, forInit)
			}
		}
		return id

	case token.T_REGEXP, token.T_NUM, token.T_STRING:
		return p.parseLiteral()

	case token.T_NULL, token.T_TRUE, token.T_FALSE:
		m := p.startNode()
		lit := &ast.Literal{Raw: p.tok.Token.String()}
		switch p.tok.Token {
		case token.T_NULL:
			lit.Kind = ast.LITERAL_NULL
		default:
			lit.Kind = ast.LITERAL_BOOLEAN
			lit.Value = p.tok.Token == token.T_TRUE
		}
		p.next()
		lit.NodeBase = p.finishNode(m)
		return lit

	case token.T_PARENL:
		start := p.tok.Start
		expr := p.parseParenAndDistinguishExpression(canBeArrow, forInit)
		if refDestructuringErrors != nil {
			if refDestructuringErrors.parenthesizedAssign < 0 && !isSimpleAssignTarget(expr) {
				refDestructuringErrors.parenthesizedAssign = start
			}
			if refDestructuringErrors.parenthesizedBind < 0 {
				refDestructuringErrors.parenthesizedBind = start
			}
		}
		return expr

	case token.T_BRACKETL:
		m := p.startNode()
		p.next()
		elements := p.parseExprList(token.T_BRACKETR, true, true, refDestructuringErrors)
		return &ast.ArrayExpression{NodeBase: p.finishNode(m), Elements: ast.ListOf(elements)}

	case token.T_BRACEL:
		return p.parseObj(false, refDestructuringErrors).(*ast.ObjectExpression)

	case token.T_FUNCTION:
		m := p.startNode()
		p.next()
		return p.parseFunction(m, 0, false, "").(*ast.FunctionExpression)

	case token.T_CLASS:
		return p.parseClass(p.startNode(), false, false).(*ast.ClassExpression)

	case token.T_NEW:
		return p.parseNew()

	case token.T_TEMPLATE:
		if p.tok.TemplateHead() {
			return p.parseTemplate(false)
		}

	case token.T_IMPORT:
		return p.parseExprImport(forNew)

	case token.T_RELATIONAL:
		if p.options.JSX && p.tok.Value == "<" {
			return p.parseJSXElement(p.next)
		}
	}
	p.unexpected()
	return nil
}

func (p *Parser) parseExprImport(forNew bool) ast.Expression {
	m := p.startNode()
	p.next()
	switch {
	case p.tok.Token == token.T_PARENL && !forNew:
		return p.parseDynamicImport(m)
	case p.tok.Token == token.T_DOT:
		meta := &ast.Identifier{NodeBase: p.finishNode(m), Name: "import"}
		return p.parseImportMeta(m, meta)
	}
	p.unexpected()
	return nil
}

func (p *Parser) parseDynamicImport(m marker) *ast.ImportExpression {
	p.next() // skip `(`
	source := p.parseMaybeAssign("", nil)
	var options ast.Expression
	if !p.eat(token.T_PARENR) {
		p.expect(token.T_COMMA)
		if !p.afterTrailingComma(token.T_PARENR, false) {
			options = p.parseMaybeAssign("", nil)
			if !p.eat(token.T_PARENR) {
				p.expect(token.T_COMMA)
				if !p.afterTrailingComma(token.T_PARENR, false) {
					p.unexpected()
				}
			}
		}
	}
	return &ast.ImportExpression{NodeBase: p.finishNode(m), Source: source, Options: options}
}

func (p *Parser) parseImportMeta(m marker, meta *ast.Identifier) *ast.MetaProperty {
	p.next() // skip `.`
	containsEsc := p.tok.Escaped
	property := p.parseIdent(true)
	if property.Name != "meta" {
		p.raiseRecoverable(property.Start, "The only valid meta property for import is 'import.meta'")
	}
	if containsEsc {
		p.raiseRecoverable(m.pos, "'import.meta' must not contain escaped characters")
	}
	if !p.inModule {
		p.raiseRecoverable(m.pos, "Cannot use 'import.meta' outside a module")
	}
	return &ast.MetaProperty{NodeBase: p.finishNode(m), Meta: meta, Property: property}
}

func (p *Parser) parseLiteral() *ast.Literal {
	w := p.tok
	m := p.startNode()
	lit := &ast.Literal{Raw: w.Raw}
	switch w.Token {
	case token.T_STRING:
		lit.Kind = ast.LITERAL_STRING
		lit.Value = w.Value
		if w.Octal && p.strict {
			p.raiseRecoverable(w.Start, "Octal literal in strict mode")
		}
	case token.T_NUM:
		if w.BigInt != nil {
			lit.Kind = ast.LITERAL_BIGINT
			lit.Value = w.BigInt
			lit.BigInt = w.BigInt.String()
		} else {
			lit.Kind = ast.LITERAL_NUMBER
			lit.Value = w.Number
		}
		if w.Octal && p.strict {
			p.raiseRecoverable(w.Start, "Invalid number")
		}
	case token.T_REGEXP:
		lit.Kind = ast.LITERAL_REGEXP
		rv := &ast.RegexValue{}
		if i := strings.LastIndexByte(w.Raw, '/'); i > 0 {
			rv.Flags = w.Raw[i+1:]
		}
		if w.Regex != nil {
			rv.Pattern = w.Regex.Pattern
			if p.options.RegexMode != jsregexp.Skip {
				rv.Result = w.Regex
			}
		}
		lit.Regex = rv
		lit.Value = rv
	default:
		p.unexpected()
	}
	p.next()
	lit.NodeBase = p.finishNode(m)
	return lit
}

func (p *Parser) parseParenExpression() ast.Expression {
	p.expect(token.T_PARENL)
	val := p.parseExpression("", nil)
	p.expect(token.T_PARENR)
	return val
}

// The list is read as expressions and becomes arrow parameters when '=>'
// follows.
func (p *Parser) parseParenAndDistinguishExpression(canBeArrow bool, forInit string) ast.Expression {
	m := p.startNode()
	p.next()

	inner := p.startNode()
	var exprList []ast.Node
	first, lastIsComma := true, false
	refDestructuringErrors := NewDestructuringErrors()
	oldYieldPos, oldAwaitPos := p.yieldPos, p.awaitPos
	spreadStart := -1
	p.yieldPos, p.awaitPos = 0, 0
	for p.tok.Token != token.T_PARENR {
		if first {
			first = false
		} else {
			p.expect(token.T_COMMA)
		}
		if p.afterTrailingComma(token.T_PARENR, true) {
			lastIsComma = true
			break
		} else if p.tok.Token == token.T_ELLIPSIS {
			spreadStart = p.tok.Start
			exprList = append(exprList, p.parseRestBinding())
			if p.tok.Token == token.T_COMMA {
				p.raiseRecoverable(p.tok.Start, "Comma is not permitted after the rest element")
			}
			break
		} else {
			exprList = append(exprList, p.parseMaybeAssign("", refDestructuringErrors))
		}
	}
	innerEnd, innerEndLoc := p.prev.End, p.prev.Loc.End
	p.expect(token.T_PARENR)

	if canBeArrow && !p.canInsertSemicolon() && p.eat(token.T_ARROW) {
		p.checkPatternErrors(refDestructuringErrors, false)
		p.checkYieldAwaitInDefaultParams()
		p.yieldPos, p.awaitPos = oldYieldPos, oldAwaitPos
		return p.parseArrowExpression(m, exprList, false, forInit)
	}

	if len(exprList) == 0 || lastIsComma {
		p.unexpectedAt(p.prev.Start)
	}
	if spreadStart >= 0 {
		p.unexpectedAt(spreadStart)
	}
	p.checkExpressionErrors(refDestructuringErrors, true)
	p.yieldPos = orElse(oldYieldPos, p.yieldPos)
	p.awaitPos = orElse(oldAwaitPos, p.awaitPos)

	if len(exprList) == 1 {
		return exprList[0].(ast.Expression)
	}
	exprs := make([]ast.Expression, len(exprList))
	for i, e := range exprList {
		exprs[i] = e.(ast.Expression)
	}
	return &ast.SequenceExpression{NodeBase: p.finishNodeAt(inner, innerEnd, innerEndLoc), Expressions: ast.ListOf(exprs)}
}

// The callee of new takes member accesses but no call arguments.
func (p *Parser) parseNew() ast.Expression {
	m := p.startNode()
	p.next()
	if p.tok.Token == token.T_DOT {
		meta := &ast.Identifier{NodeBase: p.finishNode(m), Name: "new"}
		p.next()
		containsEsc := p.tok.Escaped
		property := p.parseIdent(true)
		if property.Name != "target" {
			p.raiseRecoverable(property.Start, "The only valid meta property for new is 'new.target'")
		}
		if containsEsc {
			p.raiseRecoverable(m.pos, "'new.target' must not contain escaped characters")
		}
		if !p.allowNewDotTarget() {
			p.raiseRecoverable(m.pos, "'new.target' can only be used in functions and class static block")
		}
		return &ast.MetaProperty{NodeBase: p.finishNode(m), Meta: meta, Property: property}
	}
	calleeStart := p.startNode()
	callee := p.parseSubscripts(p.parseExprAtom(nil, "", true), calleeStart, true, "")
	var args []ast.Expression
	if p.eat(token.T_PARENL) {
		args = p.parseExprList(token.T_PARENR, true, false, nil)
	}
	return &ast.NewExpression{NodeBase: p.finishNode(m), Callee: callee, Arguments: ast.ListOf(args)}
}

func (p *Parser) parseTemplateElement(isTagged bool) *ast.TemplateElement {
	w := p.tok
	if w.Cooked == nil && !isTagged {
		p.raiseRecoverable(w.Start, "Bad escape sequence in untagged template literal")
	}
	trim := 0
	switch {
	case !w.Tail:
		trim = 2
	case len(w.Raw) >= 2 && w.Raw[len(w.Raw)-1] == '`':
		trim = 1
	}
	m := p.startNodeAt(w.Start+1, w.Loc.Start.Offset(1))
	elem := &ast.TemplateElement{
		NodeBase: p.finishNodeAt(m, w.End-trim, w.Loc.End.Offset(-trim)),
		Raw:      w.Value,
		Cooked:   w.Cooked,
		Tail:     w.Tail,
	}
	p.next()
	return elem
}

func (p *Parser) parseTemplate(isTagged bool) *ast.TemplateLiteral {
	m := p.startNode()
	quasis := []*ast.TemplateElement{}
	exprs := []ast.Expression{}
	for {
		elem := p.parseTemplateElement(isTagged)
		quasis = append(quasis, elem)
		if elem.Tail {
			break
		}
		exprs = append(exprs, p.parseExpression("", nil))
		if p.tok.Token == token.T_EOF {
			p.raise(p.tok.Start, "Unterminated template literal")
		}
		if p.tok.Token != token.T_TEMPLATE || p.tok.TemplateHead() {
			p.unexpected()
		}
	}
	return &ast.TemplateLiteral{NodeBase: p.finishNode(m), Quasis: ast.ListOf(quasis), Expressions: ast.ListOf(exprs)}
}

func (p *Parser) isAsyncProp(key ast.Expression, computed bool) bool {
	id, ok := key.(*ast.Identifier)
	if computed || !ok || id.Name != "async" || p.tok.NewlineBefore {
		return false
	}
	switch p.tok.Token {
	case token.T_NAME, token.T_NUM, token.T_STRING, token.T_BRACKETL, token.T_STAR, token.T_PRIVATEID:
		return true
	}
	return p.tok.Token.IsKeyword()
}

func (p *Parser) parseObj(isPattern bool, refDestructuringErrors *DestructuringErrors) ast.Node {
	m := p.startNode()
	var props []ast.Node
	first, hasProto := true, false
	p.next()
	for !p.eat(token.T_BRACER) {
		if !first {
			p.expect(token.T_COMMA)
			if p.afterTrailingComma(token.T_BRACER, false) {
				break
			}
		} else {
			first = false
		}
		prop := p.parseProperty(isPattern, refDestructuringErrors)
		if !isPattern {
			p.checkPropClash(prop, &hasProto, refDestructuringErrors)
		}
		props = append(props, prop)
	}
	if isPattern {
		return &ast.ObjectPattern{NodeBase: p.finishNode(m), Properties: ast.ListOf(props)}
	}
	return &ast.ObjectExpression{NodeBase: p.finishNode(m), Properties: ast.ListOf(props)}
}

func (p *Parser) parseProperty(isPattern bool, refDestructuringErrors *DestructuringErrors) ast.Node {
	m := p.startNode()
	if p.eat(token.T_ELLIPSIS) {
		if isPattern {
			arg := p.parseIdent(false)
			if p.tok.Token == token.T_COMMA {
				p.raiseRecoverable(p.tok.Start, "Comma is not permitted after the rest element")
			}
			return &ast.RestElement{NodeBase: p.finishNode(m), Argument: arg}
		}
		arg := p.parseMaybeAssign("", refDestructuringErrors)
		if p.tok.Token == token.T_COMMA && refDestructuringErrors != nil && refDestructuringErrors.trailingComma < 0 {
			refDestructuringErrors.trailingComma = p.tok.Start
		}
		return &ast.SpreadElement{NodeBase: p.finishNode(m), Argument: arg}
	}

	isGenerator, isAsync := false, false
	if !isPattern {
		isGenerator = p.eat(token.T_STAR)
	}
	containsEsc := p.tok.Escaped
	key, computed := p.parsePropertyName()
	if !isPattern && !containsEsc && !isGenerator && p.isAsyncProp(key, computed) {
		isAsync = true
		isGenerator = p.eat(token.T_STAR)
		key, computed = p.parsePropertyName()
	}
	prop := &ast.Property{Key: key, Computed: computed, Kind: "init"}
	p.parsePropertyValue(prop, m, isPattern, isGenerator, isAsync, refDestructuringErrors, containsEsc)
	prop.NodeBase = p.finishNode(m)
	return prop
}

func (p *Parser) parseGetterSetter(prop *ast.Property) {
	kind := prop.Key.(*ast.Identifier).Name
	prop.Key, prop.Computed = p.parsePropertyName()
	fn := p.parseMethod(false, false, false)
	prop.Value = fn
	prop.Kind = kind
	paramCount := 1
	if kind == "get" {
		paramCount = 0
	}
	switch {
	case fn.Params.Len() != paramCount && kind == "get":
		p.raiseRecoverable(fn.Start, "getter should have no params")
	case fn.Params.Len() != paramCount:
		p.raiseRecoverable(fn.Start, "setter should have exactly one param")
	case kind == "set":
		if rest, ok := fn.Params.At(0).(*ast.RestElement); ok {
			p.raiseRecoverable(rest.Start, "Setter cannot use rest params")
		}
	}
}

func (p *Parser) parsePropertyValue(prop *ast.Property, m marker, isPattern, isGenerator, isAsync bool, refDestructuringErrors *DestructuringErrors, containsEsc bool) {
	if (isGenerator || isAsync) && p.tok.Token == token.T_COLON {
		p.unexpected()
	}
	id, isIdent := prop.Key.(*ast.Identifier)
	isIdent = isIdent && !prop.Computed

	switch {
	case p.eat(token.T_COLON):
		if isPattern {
			prop.Value = p.parseMaybeDefault(p.startNode(), nil)
		} else {
			prop.Value = p.parseMaybeAssign("", refDestructuringErrors)
		}

	case p.tok.Token == token.T_PARENL:
		if isPattern {
			p.unexpected()
		}
		prop.Method = true
		prop.Value = p.parseMethod(isGenerator, isAsync, false)

	case !isPattern && !containsEsc && isIdent && (id.Name == "get" || id.Name == "set") &&
		p.tok.Token != token.T_COMMA && p.tok.Token != token.T_BRACER && p.tok.Token != token.T_EQ:
		if isGenerator || isAsync {
			p.unexpected()
		}
		p.parseGetterSetter(prop)

	case isIdent:
		if isGenerator || isAsync {
			p.unexpected()
		}
		p.checkUnreserved(id.Name, id.Start)
		if id.Name == "await" && p.awaitIdentPos == 0 {
			p.awaitIdentPos = m.pos
		}
		switch {
		case isPattern:
			prop.Value = p.parseMaybeDefault(m, id)
		case p.tok.Token == token.T_EQ && refDestructuringErrors != nil:
			if refDestructuringErrors.shorthandAssign < 0 {
				refDestructuringErrors.shorthandAssign = p.tok.Start
			}
			prop.Value = p.parseMaybeDefault(m, id)
		default:
			prop.Value = id
		}
		prop.Shorthand = true

	default:
		p.unexpected()
	}
}

func (p *Parser) parsePropertyName() (ast.Expression, bool) {
	if p.eat(token.T_BRACKETL) {
		key := p.parseMaybeAssign("", nil)
		p.expect(token.T_BRACKETR)
		return key, true
	}
	if p.tok.Token == token.T_NUM || p.tok.Token == token.T_STRING {
		return p.parseLiteral(), false
	}
	return p.parseIdent(true), false
}

func (p *Parser) parseMethod(isGenerator, isAsync, allowDirectSuper bool) *ast.FunctionExpression {
	m := p.startNode()
	oldYieldPos, oldAwaitPos, oldAwaitIdentPos := p.yieldPos, p.awaitPos, p.awaitIdentPos
	p.yieldPos, p.awaitPos, p.awaitIdentPos = 0, 0, 0

	flags := functionFlags(isAsync, isGenerator) | SCOPE_SUPER
	if allowDirectSuper {
		flags |= SCOPE_DIRECT_SUPER
	}
	p.enterScope(flags)
	p.expect(token.T_PARENL)
	params := p.parseBindingList(token.T_PARENR, false, true)
	p.checkYieldAwaitInDefaultParams()
	body, _ := p.parseFunctionBody(m.pos, params, nil, false, true, "")

	p.yieldPos, p.awaitPos, p.awaitIdentPos = oldYieldPos, oldAwaitPos, oldAwaitIdentPos
	return &ast.FunctionExpression{
		NodeBase:  p.finishNode(m),
		Params:    ast.ListOf(params),
		Body:      body.(*ast.BlockStatement),
		Generator: isGenerator,
		Async:     isAsync,
	}
}

func (p *Parser) parseArrowExpression(m marker, params []ast.Node, isAsync bool, forInit string) *ast.ArrowFunctionExpression {
	oldYieldPos, oldAwaitPos, oldAwaitIdentPos := p.yieldPos, p.awaitPos, p.awaitIdentPos
	p.enterScope(functionFlags(isAsync, false) | SCOPE_ARROW)
	p.yieldPos, p.awaitPos, p.awaitIdentPos = 0, 0, 0

	patterns := make([]ast.Pattern, len(params))
	for i, param := range params {
		patterns[i] = p.toAssignable(param, true, nil)
	}
	body, expression := p.parseFunctionBody(m.pos, patterns, nil, true, false, forInit)

	p.yieldPos, p.awaitPos, p.awaitIdentPos = oldYieldPos, oldAwaitPos, oldAwaitIdentPos
	return &ast.ArrowFunctionExpression{
		NodeBase:   p.finishNode(m),
		Params:     ast.ListOf(patterns),
		Body:       body,
		Expression: expression,
		Async:      isAsync,
	}
}

// parseFunctionBody exits the function scope entered by the caller.
func (p *Parser) parseFunctionBody(start int, params []ast.Pattern, id *ast.Identifier, isArrowFunction, isMethod bool, forInit string) (ast.Node, bool) {
	defer p.exitScope()

	if isArrowFunction && p.tok.Token != token.T_BRACEL {
		body := p.parseMaybeAssign(forInit, nil)
		p.checkParams(params, false)
		return body, true
	}

	oldStrict, useStrict := p.strict, false
	nonSimple := !isSimpleParamList(params)
	if !oldStrict || nonSimple {
		useStrict = p.tok.Token == token.T_BRACEL && p.strictDirective()
		if useStrict && nonSimple {
			p.raiseRecoverable(start, "Illegal 'use strict' directive in function with non-simple parameter list")
		}
	}
	oldLabels := p.labels
	p.labels = nil
	if useStrict {
		p.strict = true
	}

	p.checkParams(params, !oldStrict && !useStrict && !isArrowFunction && !isMethod && !nonSimple)
	if p.strict && id != nil {
		p.checkLValSimple(id, BIND_OUTSIDE, nil)
	}
	body := p.parseBlock(false, p.startNode(), useStrict && !oldStrict)
	p.adaptDirectivePrologue(body.Body.Slice())
	p.labels = oldLabels
	return body, false
}

func isSimpleParamList(params []ast.Pattern) bool {
	for _, param := range params {
		if _, ok := param.(*ast.Identifier); !ok {
			return false
		}
	}
	return true
}

func (p *Parser) checkParams(params []ast.Pattern, allowDuplicates bool) {
	var nameHash map[string]bool
	if !allowDuplicates {
		nameHash = map[string]bool{}
	}
	for _, param := range params {
		p.checkLValInnerPattern(param, BIND_VAR, nameHash)
	}
}

// parseExprList reads up to close. With allowEmpty, holes are nil.
func (p *Parser) parseExprList(close token.Token, allowTrailingComma, allowEmpty bool, refDestructuringErrors *DestructuringErrors) []ast.Expression {
	elts := []ast.Expression{}
	first := true
	for !p.eat(close) {
		if !first {
			p.expect(token.T_COMMA)
			if allowTrailingComma && p.afterTrailingComma(close, false) {
				break
			}
		} else {
			first = false
		}

		var elt ast.Expression
		switch {
		case allowEmpty && p.tok.Token == token.T_COMMA:
			elt = nil
		case p.tok.Token == token.T_ELLIPSIS:
			elt = p.parseSpread(refDestructuringErrors)
			if refDestructuringErrors != nil && p.tok.Token == token.T_COMMA && refDestructuringErrors.trailingComma < 0 {
				refDestructuringErrors.trailingComma = p.tok.Start
			}
		default:
			elt = p.parseMaybeAssign("", refDestructuringErrors)
		}
		elts = append(elts, elt)
	}
	return elts
}

func (p *Parser) checkUnreserved(name string, start int) {
	if p.inGenerator() && name == "yield" {
		p.raiseRecoverable(start, "Cannot use 'yield' as identifier inside a generator")
	}
	if p.inAsync() && name == "await" {
		p.raiseRecoverable(start, "Cannot use 'await' as identifier inside an async function")
	}
	if p.currentThisScope().Flags&SCOPE_VAR == 0 && name == "arguments" {
		p.raiseRecoverable(start, "Cannot use 'arguments' in class field initializer")
	}
	if p.inClassStaticBlock() && (name == "arguments" || name == "await") {
		p.raise(start, fmt.Sprintf("Cannot use %s in class static initialization block", name))
	}
	if _, ok := token.Lookup(name); ok {
		p.raise(start, fmt.Sprintf("Unexpected keyword '%s'", name))
	}
	reserved := name == "enum" || p.inModule && name == "await" || p.strict && token.IsStrictReserved(name)
	if reserved {
		if !p.inAsync() && name == "await" {
			p.raiseRecoverable(start, "Cannot use keyword 'await' outside an async function")
		}
		p.raiseRecoverable(start, fmt.Sprintf("The keyword '%s' is reserved", name))
	}
}

// parseIdent accepts keywords too when liberal, for property names.
func (p *Parser) parseIdent(liberal bool) *ast.Identifier {
	m := p.startNode()
	if p.tok.Token != token.T_NAME && !p.tok.Token.IsKeyword() {
		p.unexpected()
	}
	name := p.tok.Value
	if liberal {
		p.nextToken()
	} else {
		p.next()
	}
	id := &ast.Identifier{NodeBase: p.finishNode(m), Name: name}
	if !liberal {
		p.checkUnreserved(name, id.Start)
		if name == "await" && p.awaitIdentPos == 0 {
			p.awaitIdentPos = id.Start
		}
	}
	return id
}

func (p *Parser) parsePrivateIdent() *ast.PrivateIdentifier {
	m := p.startNode()
	if p.tok.Token != token.T_PRIVATEID {
		p.unexpected()
	}
	name := p.tok.Value
	p.next()
	id := &ast.PrivateIdentifier{NodeBase: p.finishNode(m), Name: name}
	if len(p.privateNameStack) == 0 {
		p.raise(id.Start, fmt.Sprintf("Private field '#%s' must be declared in an enclosing class", name))
	}
	top := p.privateNameStack[len(p.privateNameStack)-1]
	top.used = append(top.used, id)
	return id
}

func (p *Parser) parseYield(forInit string) *ast.YieldExpression {
	if p.yieldPos == 0 {
		p.yieldPos = p.tok.Start
	}
	m := p.startNode()
	p.next()
	y := &ast.YieldExpression{}
	if p.tok.Token != token.T_SEMI && !p.canInsertSemicolon() && (p.tok.Token == token.T_STAR || p.startsExpr()) {
		y.Delegate = p.eat(token.T_STAR)
		y.Argument = p.parseMaybeAssign(forInit, nil)
	}
	y.NodeBase = p.finishNode(m)
	return y
}

func (p *Parser) parseAwait(forInit string) *ast.AwaitExpression {
	if p.awaitPos == 0 {
		p.awaitPos = p.tok.Start
	}
	m := p.startNode()
	p.next()
	arg := p.parseMaybeUnary(nil, true, false, forInit)
	return &ast.AwaitExpression{NodeBase: p.finishNode(m), Argument: arg}
}
