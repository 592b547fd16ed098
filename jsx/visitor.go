package jsx

import (
	"esfront/ast"
)

// Visitor is the JSX capability of a visitor. A visitor that also
// implements ast.Visitor is reached for JSX nodes through VisitorBase or
// RewriterBase, which route ast.Visitor.VisitExtension here.
type Visitor interface {
	VisitElement(n *Element) ast.Node
	VisitOpeningElement(n *OpeningElement) ast.Node
	VisitClosingElement(n *ClosingElement) ast.Node
	VisitFragment(n *Fragment) ast.Node
	VisitOpeningFragment(n *OpeningFragment) ast.Node
	VisitClosingFragment(n *ClosingFragment) ast.Node
	VisitAttribute(n *Attribute) ast.Node
	VisitSpreadAttribute(n *SpreadAttribute) ast.Node
	VisitIdentifier(n *Identifier) ast.Node
	VisitNamespacedName(n *NamespacedName) ast.Node
	VisitMemberExpression(n *MemberExpression) ast.Node
	VisitExpressionContainer(n *ExpressionContainer) ast.Node
	VisitEmptyExpression(n *EmptyExpression) ast.Node
	VisitText(n *Text) ast.Node
	VisitSpreadChild(n *SpreadChild) ast.Node
}

// Handler is implemented by core visitors that also handle JSX nodes.
// VisitIdentifier and VisitMemberExpression exist in both Visitor and
// ast.Visitor with different argument types, so one type cannot implement
// both. JSX returns a separate value, usually a struct that embeds
// Walker() or Rebuilder() and overrides a few methods.
type Handler interface {
	JSX() Visitor
}

func route(self ast.Visitor, n ast.Node) (ast.Node, bool) {
	jn, ok := n.(Node)
	if !ok {
		return nil, false
	}
	h, ok := self.(Handler)
	if !ok {
		return nil, false
	}
	return jn.AcceptJSX(h.JSX()), true
}

// VisitorBase walks JSX nodes like any other node. Embed it and set Self;
// if Self implements Handler its JSX capability receives the JSX nodes.
type VisitorBase struct {
	ast.VisitorBase
	walker walker
}

func (b *VisitorBase) self() ast.Visitor {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *VisitorBase) VisitExtension(n ast.Node) ast.Node {
	if r, ok := route(b.self(), n); ok {
		return r
	}
	return b.VisitorBase.VisitExtension(n)
}

// Walker returns the default JSX walk, for embedding in a Handler's JSX
// value.
func (b *VisitorBase) Walker() Visitor {
	b.walker.parent = b
	return &b.walker
}

// walker is the default JSX capability of VisitorBase: it visits children
// through the outer visitor and returns every node unchanged.
type walker struct {
	parent *VisitorBase
}

func (w *walker) walk(n ast.Node) ast.Node {
	v := w.parent.self()
	for c := n.ChildNodes(); c.Next(); {
		c.Current().Accept(v)
	}
	return n
}

func (w *walker) VisitElement(n *Element) ast.Node                         { return w.walk(n) }
func (w *walker) VisitOpeningElement(n *OpeningElement) ast.Node           { return w.walk(n) }
func (w *walker) VisitClosingElement(n *ClosingElement) ast.Node           { return w.walk(n) }
func (w *walker) VisitFragment(n *Fragment) ast.Node                       { return w.walk(n) }
func (w *walker) VisitOpeningFragment(n *OpeningFragment) ast.Node         { return n }
func (w *walker) VisitClosingFragment(n *ClosingFragment) ast.Node         { return n }
func (w *walker) VisitAttribute(n *Attribute) ast.Node                     { return w.walk(n) }
func (w *walker) VisitSpreadAttribute(n *SpreadAttribute) ast.Node         { return w.walk(n) }
func (w *walker) VisitIdentifier(n *Identifier) ast.Node                   { return n }
func (w *walker) VisitNamespacedName(n *NamespacedName) ast.Node           { return w.walk(n) }
func (w *walker) VisitMemberExpression(n *MemberExpression) ast.Node       { return w.walk(n) }
func (w *walker) VisitExpressionContainer(n *ExpressionContainer) ast.Node { return w.walk(n) }
func (w *walker) VisitEmptyExpression(n *EmptyExpression) ast.Node         { return n }
func (w *walker) VisitText(n *Text) ast.Node                               { return n }
func (w *walker) VisitSpreadChild(n *SpreadChild) ast.Node                 { return w.walk(n) }

// RewriterBase rebuilds JSX nodes from their rewritten children. Embed it
// and set Self; if Self implements Handler its JSX capability receives the
// JSX nodes, otherwise the default rebuild is used.
type RewriterBase struct {
	ast.RewriterBase
	rebuilder rebuilder
}

func (r *RewriterBase) self() ast.Visitor {
	if r.Self != nil {
		return r.Self
	}
	return r
}

func (r *RewriterBase) VisitExtension(n ast.Node) ast.Node {
	if res, ok := route(r.self(), n); ok {
		return res
	}
	if jn, ok := n.(Node); ok {
		return jn.AcceptJSX(r.Rebuilder())
	}
	return r.RewriterBase.VisitExtension(n)
}

// Rebuilder returns the default JSX rewrite, for embedding in a Handler's
// JSX value.
func (r *RewriterBase) Rebuilder() Visitor {
	r.rebuilder.parent = r
	return &r.rebuilder
}

type rebuilder struct {
	parent *RewriterBase
}

func (b *rebuilder) VisitElement(n *Element) ast.Node {
	v := b.parent.self()
	return n.UpdateWith(
		ast.VisitAndConvertOptional(v, n.OpeningElement),
		ast.VisitAndConvertList(v, n.Children),
		ast.VisitAndConvertOptional(v, n.ClosingElement),
	)
}

func (b *rebuilder) VisitOpeningElement(n *OpeningElement) ast.Node {
	v := b.parent.self()
	return n.UpdateWith(ast.VisitAndConvert(v, n.Name), ast.VisitAndConvertList(v, n.Attributes))
}

func (b *rebuilder) VisitClosingElement(n *ClosingElement) ast.Node {
	return n.UpdateWith(ast.VisitAndConvert(b.parent.self(), n.Name))
}

func (b *rebuilder) VisitFragment(n *Fragment) ast.Node {
	v := b.parent.self()
	return n.UpdateWith(
		ast.VisitAndConvertOptional(v, n.OpeningFragment),
		ast.VisitAndConvertList(v, n.Children),
		ast.VisitAndConvertOptional(v, n.ClosingFragment),
	)
}

func (b *rebuilder) VisitOpeningFragment(n *OpeningFragment) ast.Node { return n }
func (b *rebuilder) VisitClosingFragment(n *ClosingFragment) ast.Node { return n }

func (b *rebuilder) VisitAttribute(n *Attribute) ast.Node {
	v := b.parent.self()
	return n.UpdateWith(ast.VisitAndConvert(v, n.Name), ast.VisitAndConvertOptional(v, n.Value))
}

func (b *rebuilder) VisitSpreadAttribute(n *SpreadAttribute) ast.Node {
	return n.UpdateWith(ast.VisitAndConvert(b.parent.self(), n.Argument))
}

func (b *rebuilder) VisitIdentifier(n *Identifier) ast.Node { return n }

func (b *rebuilder) VisitNamespacedName(n *NamespacedName) ast.Node {
	v := b.parent.self()
	return n.UpdateWith(ast.VisitAndConvertOptional(v, n.Namespace), ast.VisitAndConvertOptional(v, n.Name))
}

func (b *rebuilder) VisitMemberExpression(n *MemberExpression) ast.Node {
	v := b.parent.self()
	return n.UpdateWith(ast.VisitAndConvert(v, n.Object), ast.VisitAndConvertOptional(v, n.Property))
}

func (b *rebuilder) VisitExpressionContainer(n *ExpressionContainer) ast.Node {
	return n.UpdateWith(ast.VisitAndConvert(b.parent.self(), n.Expression))
}

func (b *rebuilder) VisitEmptyExpression(n *EmptyExpression) ast.Node { return n }
func (b *rebuilder) VisitText(n *Text) ast.Node                       { return n }

func (b *rebuilder) VisitSpreadChild(n *SpreadChild) ast.Node {
	return n.UpdateWith(ast.VisitAndConvert(b.parent.self(), n.Expression))
}
