package parser

import (
	"esfront/ast"
	"esfront/token"
)

// toAssignable converts an expression parsed by the cover grammar into the
// pattern it stands for. The result keeps the source span of n.
func (p *Parser) toAssignable(n ast.Node, isBinding bool, refDestructuringErrors *DestructuringErrors) ast.Pattern {
	switch n := n.(type) {
	case *ast.Identifier:
		if p.inAsync() && n.Name == "await" {
			p.raise(n.Start, "Cannot use 'await' as identifier inside an async function")
		}
		return n

	case *ast.ObjectPattern, *ast.ArrayPattern, *ast.AssignmentPattern, *ast.RestElement, *ast.BadExpression:
		return n.(ast.Pattern)

	case *ast.ObjectExpression:
		p.checkPatternErrors(refDestructuringErrors, true)
		props := n.Properties.Slice()
		for i, prop := range props {
			props[i] = p.toAssignableProperty(prop, isBinding)
			if rest, ok := props[i].(*ast.RestElement); ok {
				switch rest.Argument.(type) {
				case *ast.ArrayPattern, *ast.ObjectPattern:
					p.raise(rest.Argument.Base().Start, "Unexpected token")
				}
			}
		}
		return &ast.ObjectPattern{NodeBase: n.NodeBase, Properties: ast.ListOf(props)}

	case *ast.ArrayExpression:
		p.checkPatternErrors(refDestructuringErrors, true)
		return &ast.ArrayPattern{NodeBase: n.NodeBase, Elements: ast.ListOf(p.toAssignableList(n.Elements.Slice(), isBinding))}

	case *ast.SpreadElement:
		arg := p.toAssignable(n.Argument, isBinding, nil)
		if _, ok := arg.(*ast.AssignmentPattern); ok {
			p.raise(arg.Base().Start, "Rest elements cannot have a default value")
		}
		return &ast.RestElement{NodeBase: n.NodeBase, Argument: arg}

	case *ast.AssignmentExpression:
		if n.Operator != "=" {
			p.raise(n.Left.Base().End, "Only '=' operator can be used for specifying default value.")
		}
		return &ast.AssignmentPattern{NodeBase: n.NodeBase, Left: p.toAssignable(n.Left, isBinding, nil), Right: n.Right}

	case *ast.ChainExpression:
		p.raiseRecoverable(n.Start, "Optional chaining cannot appear in left-hand side")
		return &ast.BadExpression{NodeBase: n.NodeBase}

	case *ast.MemberExpression:
		if !isBinding {
			return n
		}
	}
	p.raiseRecoverable(n.Base().Start, "Assigning to rvalue")
	return &ast.BadExpression{NodeBase: *n.Base()}
}

func (p *Parser) toAssignableProperty(n ast.Node, isBinding bool) ast.Node {
	prop, ok := n.(*ast.Property)
	if !ok {
		return p.toAssignable(n, isBinding, nil)
	}
	if prop.Kind != "init" {
		p.raise(prop.Key.Base().Start, "Object pattern can't contain getter or setter")
	}
	value := p.toAssignable(prop.Value, isBinding, nil)
	if value == prop.Value {
		return prop
	}
	c := *prop
	c.Value = value
	return &c
}

func (p *Parser) toAssignableList(exprList []ast.Expression, isBinding bool) []ast.Pattern {
	out := make([]ast.Pattern, len(exprList))
	for i, elt := range exprList {
		if elt != nil {
			out[i] = p.toAssignable(elt, isBinding, nil)
		}
	}
	return out
}

// asPattern returns n as an assignment target, or a placeholder when n can
// never be one. The error has been reported by the caller.
func asPattern(n ast.Node) ast.Pattern {
	if pat, ok := n.(ast.Pattern); ok {
		return pat
	}
	return &ast.BadExpression{NodeBase: *n.Base()}
}

// Parses spread element.
func (p *Parser) parseSpread(refDestructuringErrors *DestructuringErrors) *ast.SpreadElement {
	m := p.startNode()
	p.next()
	arg := p.parseMaybeAssign("", refDestructuringErrors)
	return &ast.SpreadElement{NodeBase: p.finishNode(m), Argument: arg}
}

func (p *Parser) parseRestBinding() *ast.RestElement {
	m := p.startNode()
	p.next()
	arg := p.parseBindingAtom()
	return &ast.RestElement{NodeBase: p.finishNode(m), Argument: arg}
}

// Parses lvalue (assignable) atom.
func (p *Parser) parseBindingAtom() ast.Pattern {
	switch p.tok.Token {
	case token.T_BRACKETL:
		m := p.startNode()
		p.next()
		elts := p.parseBindingList(token.T_BRACKETR, true, true)
		return &ast.ArrayPattern{NodeBase: p.finishNode(m), Elements: ast.ListOf(elts)}
	case token.T_BRACEL:
		return p.parseObj(true, nil).(*ast.ObjectPattern)
	}
	return p.parseIdent(false)
}

func (p *Parser) parseBindingList(close token.Token, allowEmpty, allowTrailingComma bool) []ast.Pattern {
	elts := []ast.Pattern{}
	first := true
	for !p.eat(close) {
		if first {
			first = false
		} else {
			p.expect(token.T_COMMA)
		}
		if allowEmpty && p.tok.Token == token.T_COMMA {
			elts = append(elts, nil)
		} else if allowTrailingComma && p.afterTrailingComma(close, false) {
			break
		} else if p.tok.Token == token.T_ELLIPSIS {
			elts = append(elts, p.parseRestBinding())
			if p.tok.Token == token.T_COMMA {
				p.raiseRecoverable(p.tok.Start, "Comma is not permitted after the rest element")
			}
			p.expect(close)
			break
		} else {
			elts = append(elts, p.parseMaybeDefault(p.startNode(), nil))
		}
	}
	return elts
}

// parseMaybeDefault parses a binding with an optional '= default'. left,
// when not nil, is the already parsed binding.
func (p *Parser) parseMaybeDefault(m marker, left ast.Pattern) ast.Pattern {
	if left == nil {
		left = p.parseBindingAtom()
	}
	if !p.eat(token.T_EQ) {
		return left
	}
	right := p.parseMaybeAssign("", nil)
	return &ast.AssignmentPattern{NodeBase: p.finishNode(m), Left: left, Right: right}
}

// checkLValSimple checks an identifier or member expression used as an
// assignment target or binding. checkClashes, when not nil, collects the
// names bound so far to report duplicates.
func (p *Parser) checkLValSimple(expr ast.Node, binding BindingType, checkClashes map[string]bool) {
	isBind := binding != BIND_NONE
	switch expr := expr.(type) {
	case *ast.Identifier:
		if p.strict && isStrictBindReserved(expr.Name) {
			msg := "Assigning to "
			if isBind {
				msg = "Binding "
			}
			p.raiseRecoverable(expr.Start, msg+expr.Name+" in strict mode")
		}
		if !isBind {
			return
		}
		if binding == BIND_LEXICAL && expr.Name == "let" {
			p.raiseRecoverable(expr.Start, "let is disallowed as a lexically bound name")
		}
		if checkClashes != nil {
			if checkClashes[expr.Name] {
				p.raiseRecoverable(expr.Start, "Argument name clash")
			}
			checkClashes[expr.Name] = true
		}
		if binding != BIND_OUTSIDE {
			p.declareName(expr.Name, binding, expr.Start)
		}

	case *ast.ChainExpression:
		p.raiseRecoverable(expr.Start, "Optional chaining cannot appear in left-hand side")

	case *ast.MemberExpression:
		if isBind {
			p.raiseRecoverable(expr.Start, "Binding member expression")
		}

	case *ast.BadExpression:
		// already reported

	default:
		msg := "Assigning to rvalue"
		if isBind {
			msg = "Binding rvalue"
		}
		p.raiseRecoverable(expr.Base().Start, msg)
	}
}

func (p *Parser) checkLValPattern(expr ast.Node, binding BindingType, checkClashes map[string]bool) {
	switch expr := expr.(type) {
	case *ast.ObjectPattern:
		for i := 0; i < expr.Properties.Len(); i++ {
			p.checkLValInnerPattern(expr.Properties.At(i), binding, checkClashes)
		}
	case *ast.ArrayPattern:
		for i := 0; i < expr.Elements.Len(); i++ {
			if elem := expr.Elements.At(i); elem != nil {
				p.checkLValInnerPattern(elem, binding, checkClashes)
			}
		}
	default:
		p.checkLValSimple(expr, binding, checkClashes)
	}
}

func (p *Parser) checkLValInnerPattern(expr ast.Node, binding BindingType, checkClashes map[string]bool) {
	switch expr := expr.(type) {
	case *ast.Property:
		p.checkLValInnerPattern(expr.Value, binding, checkClashes)
	case *ast.AssignmentPattern:
		p.checkLValPattern(expr.Left, binding, checkClashes)
	case *ast.RestElement:
		p.checkLValPattern(expr.Argument, binding, checkClashes)
	default:
		p.checkLValPattern(expr, binding, checkClashes)
	}
}

func isStrictBindReserved(name string) bool {
	return name == "eval" || name == "arguments" || token.IsStrictReserved(name)
}
