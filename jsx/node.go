// Package jsx declares the JSX syntax tree nodes. They plug into the core
// tree as ast.NODE_EXTENSION nodes and are told apart by JSXType.
package jsx

import (
	"strconv"

	"esfront/ast"
)

type Type int

const (
	ELEMENT Type = iota
	OPENING_ELEMENT
	CLOSING_ELEMENT
	FRAGMENT
	OPENING_FRAGMENT
	CLOSING_FRAGMENT
	ATTRIBUTE
	SPREAD_ATTRIBUTE
	IDENTIFIER
	NAMESPACED_NAME
	MEMBER_EXPRESSION
	EXPRESSION_CONTAINER
	EMPTY_EXPRESSION
	TEXT
	SPREAD_CHILD
)

var typeToString = map[Type]string{
	ELEMENT:              "JSXElement",
	OPENING_ELEMENT:      "JSXOpeningElement",
	CLOSING_ELEMENT:      "JSXClosingElement",
	FRAGMENT:             "JSXFragment",
	OPENING_FRAGMENT:     "JSXOpeningFragment",
	CLOSING_FRAGMENT:     "JSXClosingFragment",
	ATTRIBUTE:            "JSXAttribute",
	SPREAD_ATTRIBUTE:     "JSXSpreadAttribute",
	IDENTIFIER:           "JSXIdentifier",
	NAMESPACED_NAME:      "JSXNamespacedName",
	MEMBER_EXPRESSION:    "JSXMemberExpression",
	EXPRESSION_CONTAINER: "JSXExpressionContainer",
	EMPTY_EXPRESSION:     "JSXEmptyExpression",
	TEXT:                 "JSXText",
	SPREAD_CHILD:         "JSXSpreadChild",
}

func (t Type) String() string {
	if s, ok := typeToString[t]; ok {
		return s
	}
	return "Unknown"
}

// Node is implemented by every JSX node.
type Node interface {
	ast.Expression
	JSXType() Type
	// AcceptJSX calls the JSX visitor method for the node's kind.
	AcceptJSX(v Visitor) ast.Node
}

// base gives every JSX node its extension kind and debug name.
type base struct {
	ast.ExtensionBase
}

func (*base) DebugAttributes() []string { return nil }

// Element is <Name ...>children</Name>. ClosingElement is nil when the
// opening element is self-closing.
type Element struct {
	base
	OpeningElement *OpeningElement
	Children       *ast.NodeList[ast.Expression]
	ClosingElement *ClosingElement
}

func (*Element) JSXType() Type                   { return ELEMENT }
func (*Element) TypeName() string                { return ELEMENT.String() }
func (n *Element) Accept(v ast.Visitor) ast.Node { return v.VisitExtension(n) }
func (n *Element) AcceptJSX(v Visitor) ast.Node  { return v.VisitElement(n) }
func (n *Element) ChildNodes() ast.ChildNodes {
	return ast.Children(ast.Optional(n.OpeningElement), ast.Many(n.Children), ast.Optional(n.ClosingElement))
}
func (n *Element) UpdateWith(opening *OpeningElement, children *ast.NodeList[ast.Expression], closing *ClosingElement) *Element {
	if opening == n.OpeningElement && children == n.Children && closing == n.ClosingElement {
		return n
	}
	c := *n
	c.OpeningElement, c.Children, c.ClosingElement = opening, children, closing
	return &c
}

// OpeningElement attributes are *Attribute or *SpreadAttribute. Name is an
// *Identifier, *NamespacedName or *MemberExpression.
type OpeningElement struct {
	base
	Name        ast.Expression
	Attributes  *ast.NodeList[ast.Expression]
	SelfClosing bool
}

func (*OpeningElement) JSXType() Type                   { return OPENING_ELEMENT }
func (*OpeningElement) TypeName() string                { return OPENING_ELEMENT.String() }
func (n *OpeningElement) Accept(v ast.Visitor) ast.Node { return v.VisitExtension(n) }
func (n *OpeningElement) AcceptJSX(v Visitor) ast.Node  { return v.VisitOpeningElement(n) }
func (n *OpeningElement) ChildNodes() ast.ChildNodes {
	return ast.Children(ast.One(n.Name), ast.Many(n.Attributes))
}
func (n *OpeningElement) DebugAttributes() []string {
	if n.SelfClosing {
		return []string{"selfClosing"}
	}
	return nil
}
func (n *OpeningElement) UpdateWith(name ast.Expression, attributes *ast.NodeList[ast.Expression]) *OpeningElement {
	if name == n.Name && attributes == n.Attributes {
		return n
	}
	c := *n
	c.Name, c.Attributes = name, attributes
	return &c
}

type ClosingElement struct {
	base
	Name ast.Expression
}

func (*ClosingElement) JSXType() Type                   { return CLOSING_ELEMENT }
func (*ClosingElement) TypeName() string                { return CLOSING_ELEMENT.String() }
func (n *ClosingElement) Accept(v ast.Visitor) ast.Node { return v.VisitExtension(n) }
func (n *ClosingElement) AcceptJSX(v Visitor) ast.Node  { return v.VisitClosingElement(n) }
func (n *ClosingElement) ChildNodes() ast.ChildNodes    { return ast.Children(ast.One(n.Name)) }
func (n *ClosingElement) UpdateWith(name ast.Expression) *ClosingElement {
	if name == n.Name {
		return n
	}
	c := *n
	c.Name = name
	return &c
}

// Fragment is <>children</>.
type Fragment struct {
	base
	OpeningFragment *OpeningFragment
	Children        *ast.NodeList[ast.Expression]
	ClosingFragment *ClosingFragment
}

func (*Fragment) JSXType() Type                   { return FRAGMENT }
func (*Fragment) TypeName() string                { return FRAGMENT.String() }
func (n *Fragment) Accept(v ast.Visitor) ast.Node { return v.VisitExtension(n) }
func (n *Fragment) AcceptJSX(v Visitor) ast.Node  { return v.VisitFragment(n) }
func (n *Fragment) ChildNodes() ast.ChildNodes {
	return ast.Children(ast.Optional(n.OpeningFragment), ast.Many(n.Children), ast.Optional(n.ClosingFragment))
}
func (n *Fragment) UpdateWith(opening *OpeningFragment, children *ast.NodeList[ast.Expression], closing *ClosingFragment) *Fragment {
	if opening == n.OpeningFragment && children == n.Children && closing == n.ClosingFragment {
		return n
	}
	c := *n
	c.OpeningFragment, c.Children, c.ClosingFragment = opening, children, closing
	return &c
}

type OpeningFragment struct {
	base
}

func (*OpeningFragment) JSXType() Type                   { return OPENING_FRAGMENT }
func (*OpeningFragment) TypeName() string                { return OPENING_FRAGMENT.String() }
func (n *OpeningFragment) Accept(v ast.Visitor) ast.Node { return v.VisitExtension(n) }
func (n *OpeningFragment) AcceptJSX(v Visitor) ast.Node  { return v.VisitOpeningFragment(n) }
func (*OpeningFragment) ChildNodes() ast.ChildNodes      { return ast.Children() }

type ClosingFragment struct {
	base
}

func (*ClosingFragment) JSXType() Type                   { return CLOSING_FRAGMENT }
func (*ClosingFragment) TypeName() string                { return CLOSING_FRAGMENT.String() }
func (n *ClosingFragment) Accept(v ast.Visitor) ast.Node { return v.VisitExtension(n) }
func (n *ClosingFragment) AcceptJSX(v Visitor) ast.Node  { return v.VisitClosingFragment(n) }
func (*ClosingFragment) ChildNodes() ast.ChildNodes      { return ast.Children() }

// Attribute is name or name=value. Value is nil, a string *ast.Literal,
// an *ExpressionContainer, an *Element or a *Fragment.
type Attribute struct {
	base
	Name  ast.Expression
	Value ast.Expression
}

func (*Attribute) JSXType() Type                   { return ATTRIBUTE }
func (*Attribute) TypeName() string                { return ATTRIBUTE.String() }
func (n *Attribute) Accept(v ast.Visitor) ast.Node { return v.VisitExtension(n) }
func (n *Attribute) AcceptJSX(v Visitor) ast.Node  { return v.VisitAttribute(n) }
func (n *Attribute) ChildNodes() ast.ChildNodes {
	return ast.Children(ast.One(n.Name), ast.One(n.Value))
}
func (n *Attribute) UpdateWith(name, value ast.Expression) *Attribute {
	if name == n.Name && value == n.Value {
		return n
	}
	c := *n
	c.Name, c.Value = name, value
	return &c
}

// SpreadAttribute is {...expr} in an attribute list.
type SpreadAttribute struct {
	base
	Argument ast.Expression
}

func (*SpreadAttribute) JSXType() Type                   { return SPREAD_ATTRIBUTE }
func (*SpreadAttribute) TypeName() string                { return SPREAD_ATTRIBUTE.String() }
func (n *SpreadAttribute) Accept(v ast.Visitor) ast.Node { return v.VisitExtension(n) }
func (n *SpreadAttribute) AcceptJSX(v Visitor) ast.Node  { return v.VisitSpreadAttribute(n) }
func (n *SpreadAttribute) ChildNodes() ast.ChildNodes    { return ast.Children(ast.One(n.Argument)) }
func (n *SpreadAttribute) UpdateWith(argument ast.Expression) *SpreadAttribute {
	if argument == n.Argument {
		return n
	}
	c := *n
	c.Argument = argument
	return &c
}

// Identifier is a tag or attribute name. Unlike ast.Identifier it may
// contain dashes.
type Identifier struct {
	base
	Name string
}

func (*Identifier) JSXType() Type                   { return IDENTIFIER }
func (*Identifier) TypeName() string                { return IDENTIFIER.String() }
func (n *Identifier) Accept(v ast.Visitor) ast.Node { return v.VisitExtension(n) }
func (n *Identifier) AcceptJSX(v Visitor) ast.Node  { return v.VisitIdentifier(n) }
func (*Identifier) ChildNodes() ast.ChildNodes      { return ast.Children() }
func (n *Identifier) DebugAttributes() []string     { return []string{"name=" + n.Name} }

// NamespacedName is ns:name.
type NamespacedName struct {
	base
	Namespace *Identifier
	Name      *Identifier
}

func (*NamespacedName) JSXType() Type                   { return NAMESPACED_NAME }
func (*NamespacedName) TypeName() string                { return NAMESPACED_NAME.String() }
func (n *NamespacedName) Accept(v ast.Visitor) ast.Node { return v.VisitExtension(n) }
func (n *NamespacedName) AcceptJSX(v Visitor) ast.Node  { return v.VisitNamespacedName(n) }
func (n *NamespacedName) ChildNodes() ast.ChildNodes {
	return ast.Children(ast.Optional(n.Namespace), ast.Optional(n.Name))
}
func (n *NamespacedName) UpdateWith(namespace, name *Identifier) *NamespacedName {
	if namespace == n.Namespace && name == n.Name {
		return n
	}
	c := *n
	c.Namespace, c.Name = namespace, name
	return &c
}

// MemberExpression is a dotted tag name such as a.b.c. Object is an
// *Identifier or a *MemberExpression.
type MemberExpression struct {
	base
	Object   ast.Expression
	Property *Identifier
}

func (*MemberExpression) JSXType() Type                   { return MEMBER_EXPRESSION }
func (*MemberExpression) TypeName() string                { return MEMBER_EXPRESSION.String() }
func (n *MemberExpression) Accept(v ast.Visitor) ast.Node { return v.VisitExtension(n) }
func (n *MemberExpression) AcceptJSX(v Visitor) ast.Node  { return v.VisitMemberExpression(n) }
func (n *MemberExpression) ChildNodes() ast.ChildNodes {
	return ast.Children(ast.One(n.Object), ast.Optional(n.Property))
}
func (n *MemberExpression) UpdateWith(object ast.Expression, property *Identifier) *MemberExpression {
	if object == n.Object && property == n.Property {
		return n
	}
	c := *n
	c.Object, c.Property = object, property
	return &c
}

// ExpressionContainer is {expr}. Expression is an *EmptyExpression for {}.
type ExpressionContainer struct {
	base
	Expression ast.Expression
}

func (*ExpressionContainer) JSXType() Type                   { return EXPRESSION_CONTAINER }
func (*ExpressionContainer) TypeName() string                { return EXPRESSION_CONTAINER.String() }
func (n *ExpressionContainer) Accept(v ast.Visitor) ast.Node { return v.VisitExtension(n) }
func (n *ExpressionContainer) AcceptJSX(v Visitor) ast.Node  { return v.VisitExpressionContainer(n) }
func (n *ExpressionContainer) ChildNodes() ast.ChildNodes    { return ast.Children(ast.One(n.Expression)) }
func (n *ExpressionContainer) UpdateWith(expression ast.Expression) *ExpressionContainer {
	if expression == n.Expression {
		return n
	}
	c := *n
	c.Expression = expression
	return &c
}

type EmptyExpression struct {
	base
}

func (*EmptyExpression) JSXType() Type                   { return EMPTY_EXPRESSION }
func (*EmptyExpression) TypeName() string                { return EMPTY_EXPRESSION.String() }
func (n *EmptyExpression) Accept(v ast.Visitor) ast.Node { return v.VisitExtension(n) }
func (n *EmptyExpression) AcceptJSX(v Visitor) ast.Node  { return v.VisitEmptyExpression(n) }
func (*EmptyExpression) ChildNodes() ast.ChildNodes      { return ast.Children() }

// Text is literal text between tags. Value has HTML entities decoded.
type Text struct {
	base
	Value string
	Raw   string
}

func (*Text) JSXType() Type                   { return TEXT }
func (*Text) TypeName() string                { return TEXT.String() }
func (n *Text) Accept(v ast.Visitor) ast.Node { return v.VisitExtension(n) }
func (n *Text) AcceptJSX(v Visitor) ast.Node  { return v.VisitText(n) }
func (*Text) ChildNodes() ast.ChildNodes      { return ast.Children() }
func (n *Text) DebugAttributes() []string     { return []string{"value=" + strconv.Quote(n.Value)} }

// SpreadChild is {...expr} among element children.
type SpreadChild struct {
	base
	Expression ast.Expression
}

func (*SpreadChild) JSXType() Type                   { return SPREAD_CHILD }
func (*SpreadChild) TypeName() string                { return SPREAD_CHILD.String() }
func (n *SpreadChild) Accept(v ast.Visitor) ast.Node { return v.VisitExtension(n) }
func (n *SpreadChild) AcceptJSX(v Visitor) ast.Node  { return v.VisitSpreadChild(n) }
func (n *SpreadChild) ChildNodes() ast.ChildNodes    { return ast.Children(ast.One(n.Expression)) }
func (n *SpreadChild) UpdateWith(expression ast.Expression) *SpreadChild {
	if expression == n.Expression {
		return n
	}
	c := *n
	c.Expression = expression
	return &c
}
