package parser

import (
	"esfront/ast"
	"esfront/jsx"
	"esfront/token"
)

// JSX tokens are read by the scanner's tag and child lexers. Each consuming
// step below picks the lexer for the token that follows: tag contents use
// nextJSXTag, element contents nextJSXChild and embedded expressions the
// regular next.

func withBase[T ast.Node](n T, b ast.NodeBase) T {
	*n.Base() = b
	return n
}

// expectJSX consumes a t token and reads the next one with advance.
func (p *Parser) expectJSX(t token.Token, advance func()) {
	if p.tok.Token != t {
		p.unexpected()
	}
	advance()
}

func (p *Parser) atJSXTagEnd() bool {
	return p.is(token.T_RELATIONAL, ">")
}

// parseJSXElement parses an element or fragment at the current '<'. after
// reads the token following the element.
func (p *Parser) parseJSXElement(after func()) ast.Expression {
	m := p.startNode()
	p.nextJSXTag()
	el := p.parseJSXElementAt(m, after)
	if p.is(token.T_RELATIONAL, "<") {
		p.raise(p.tok.Start, "Adjacent JSX elements must be wrapped in an enclosing tag")
	}
	return el
}

// parseJSXElementAt continues after the '<' that opened the element at m.
func (p *Parser) parseJSXElementAt(m marker, after func()) ast.Expression {
	name := p.parseJSXElementName()
	attributes := []ast.Expression{}
	for p.tok.Token != token.T_SLASH && !p.atJSXTagEnd() {
		attributes = append(attributes, p.parseJSXAttribute())
	}
	selfClosing := false
	if p.tok.Token == token.T_SLASH {
		selfClosing = true
		p.nextJSXTag()
	}
	if !p.atJSXTagEnd() {
		p.unexpected()
	}
	if selfClosing {
		after()
	} else {
		p.nextJSXChild()
	}
	openEnd := p.finishNode(m)

	children := []ast.Expression{}
	var closingName ast.Expression
	var closingBase ast.NodeBase
	if !selfClosing {
	contents:
		for {
			switch {
			case p.is(token.T_RELATIONAL, "<"):
				start := p.startNode()
				p.nextJSXTag()
				if p.tok.Token == token.T_SLASH {
					p.nextJSXTag()
					closingName = p.parseJSXElementName()
					if !p.atJSXTagEnd() {
						p.unexpected()
					}
					after()
					closingBase = p.finishNode(start)
					break contents
				}
				children = append(children, p.parseJSXElementAt(start, p.nextJSXChild))
			case p.tok.Token == token.T_JSXTEXT:
				children = append(children, p.parseJSXText())
			case p.tok.Token == token.T_BRACEL:
				children = append(children, p.parseJSXExpressionContainer(p.nextJSXChild, true))
			default:
				p.unexpected()
			}
		}
		if qualifiedJSXName(closingName) != qualifiedJSXName(name) {
			p.raise(closingBase.Start, "Expected corresponding JSX closing tag for <"+qualifiedJSXName(name)+">")
		}
	}

	if name == nil {
		return withBase(&jsx.Fragment{
			OpeningFragment: withBase(&jsx.OpeningFragment{}, openEnd),
			Children:        ast.ListOf(children),
			ClosingFragment: withBase(&jsx.ClosingFragment{}, closingBase),
		}, p.finishNode(m))
	}
	opening := withBase(&jsx.OpeningElement{Name: name, Attributes: ast.ListOf(attributes), SelfClosing: selfClosing}, openEnd)
	var closing *jsx.ClosingElement
	if !selfClosing {
		closing = withBase(&jsx.ClosingElement{Name: closingName}, closingBase)
	}
	return withBase(&jsx.Element{OpeningElement: opening, Children: ast.ListOf(children), ClosingElement: closing}, p.finishNode(m))
}

func (p *Parser) parseJSXIdentifier() *jsx.Identifier {
	m := p.startNode()
	if p.tok.Token != token.T_JSXNAME {
		p.unexpected()
	}
	name := p.tok.Value
	p.nextJSXTag()
	return withBase(&jsx.Identifier{Name: name}, p.finishNode(m))
}

func (p *Parser) parseJSXNamespacedName() ast.Expression {
	m := p.startNode()
	name := p.parseJSXIdentifier()
	if p.tok.Token != token.T_COLON {
		return name
	}
	p.nextJSXTag()
	local := p.parseJSXIdentifier()
	return withBase(&jsx.NamespacedName{Namespace: name, Name: local}, p.finishNode(m))
}

// parseJSXElementName returns nil for the empty name of a fragment.
func (p *Parser) parseJSXElementName() ast.Expression {
	if p.atJSXTagEnd() {
		return nil
	}
	m := p.startNode()
	node := p.parseJSXNamespacedName()
	if _, ok := node.(*jsx.NamespacedName); ok && p.tok.Token == token.T_DOT {
		p.unexpected()
	}
	for p.tok.Token == token.T_DOT {
		p.nextJSXTag()
		property := p.parseJSXIdentifier()
		node = withBase(&jsx.MemberExpression{Object: node, Property: property}, p.finishNode(m))
	}
	return node
}

func (p *Parser) parseJSXAttribute() ast.Expression {
	m := p.startNode()
	if p.tok.Token == token.T_BRACEL {
		p.next()
		p.expect(token.T_ELLIPSIS)
		arg := p.parseMaybeAssign("", nil)
		p.expectJSX(token.T_BRACER, p.nextJSXTag)
		return withBase(&jsx.SpreadAttribute{Argument: arg}, p.finishNode(m))
	}
	name := p.parseJSXNamespacedName()
	var value ast.Expression
	if p.tok.Token == token.T_EQ {
		p.nextJSXTag()
		value = p.parseJSXAttributeValue()
	}
	return withBase(&jsx.Attribute{Name: name, Value: value}, p.finishNode(m))
}

func (p *Parser) parseJSXAttributeValue() ast.Expression {
	switch {
	case p.tok.Token == token.T_BRACEL:
		container := p.parseJSXExpressionContainer(p.nextJSXTag, false).(*jsx.ExpressionContainer)
		if _, ok := container.Expression.(*jsx.EmptyExpression); ok {
			p.raise(container.Start, "JSX attributes must only be assigned a non-empty expression")
		}
		return container
	case p.is(token.T_RELATIONAL, "<"):
		return p.parseJSXElement(p.nextJSXTag)
	case p.tok.Token == token.T_STRING:
		m := p.startNode()
		lit := &ast.Literal{Kind: ast.LITERAL_STRING, Value: p.tok.Value, Raw: p.tok.Raw}
		p.nextJSXTag()
		lit.NodeBase = p.finishNode(m)
		return lit
	}
	p.raise(p.tok.Start, "JSX value should be either an expression or a quoted JSX text")
	return nil
}

// parseJSXExpressionContainer parses {expr}, {} and, among children,
// {...expr}. after reads the token following the closing brace.
func (p *Parser) parseJSXExpressionContainer(after func(), child bool) ast.Expression {
	m := p.startNode()
	p.next()
	if child && p.tok.Token == token.T_ELLIPSIS {
		p.next()
		expr := p.parseExpression("", nil)
		p.expectJSX(token.T_BRACER, after)
		return withBase(&jsx.SpreadChild{Expression: expr}, p.finishNode(m))
	}
	var expr ast.Expression
	if p.tok.Token == token.T_BRACER {
		em := p.startNodeAt(p.prev.End, p.prev.Loc.End)
		expr = withBase(&jsx.EmptyExpression{}, p.finishNodeAt(em, p.tok.Start, p.tok.Loc.Start))
	} else {
		expr = p.parseExpression("", nil)
	}
	p.expectJSX(token.T_BRACER, after)
	return withBase(&jsx.ExpressionContainer{Expression: expr}, p.finishNode(m))
}

func (p *Parser) parseJSXText() *jsx.Text {
	m := p.startNode()
	text := &jsx.Text{Value: p.tok.Value, Raw: p.tok.Raw}
	p.nextJSXChild()
	return withBase(text, p.finishNode(m))
}

// qualifiedJSXName renders a tag name for comparing opening and closing
// tags.
func qualifiedJSXName(name ast.Expression) string {
	switch n := name.(type) {
	case *jsx.Identifier:
		return n.Name
	case *jsx.NamespacedName:
		return n.Namespace.Name + ":" + n.Name.Name
	case *jsx.MemberExpression:
		return qualifiedJSXName(n.Object) + "." + n.Property.Name
	}
	return ""
}
