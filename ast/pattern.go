package ast

// ObjectPattern properties are *Property (with Pattern values) or a final
// *RestElement.
type ObjectPattern struct {
	NodeBase
	Properties *NodeList[Node]
}

func (*ObjectPattern) Type() NodeType           { return NODE_OBJECT_PATTERN }
func (*ObjectPattern) patternNode()             {}
func (n *ObjectPattern) Accept(v Visitor) Node  { return v.VisitObjectPattern(n) }
func (n *ObjectPattern) ChildNodes() ChildNodes { return children(many(n.Properties)) }
func (n *ObjectPattern) UpdateWith(properties *NodeList[Node]) *ObjectPattern {
	if properties == n.Properties {
		return n
	}
	c := *n
	c.Properties = properties
	return &c
}

// ArrayPattern elements are nil for elisions.
type ArrayPattern struct {
	NodeBase
	Elements *NodeList[Pattern]
}

func (*ArrayPattern) Type() NodeType           { return NODE_ARRAY_PATTERN }
func (*ArrayPattern) patternNode()             {}
func (n *ArrayPattern) Accept(v Visitor) Node  { return v.VisitArrayPattern(n) }
func (n *ArrayPattern) ChildNodes() ChildNodes { return children(many(n.Elements)) }
func (n *ArrayPattern) UpdateWith(elements *NodeList[Pattern]) *ArrayPattern {
	if elements == n.Elements {
		return n
	}
	c := *n
	c.Elements = elements
	return &c
}

type RestElement struct {
	NodeBase
	Argument Pattern
}

func (*RestElement) Type() NodeType           { return NODE_REST_ELEMENT }
func (*RestElement) patternNode()             {}
func (n *RestElement) Accept(v Visitor) Node  { return v.VisitRestElement(n) }
func (n *RestElement) ChildNodes() ChildNodes { return children(one(n.Argument)) }
func (n *RestElement) UpdateWith(argument Pattern) *RestElement {
	if argument == n.Argument {
		return n
	}
	c := *n
	c.Argument = argument
	return &c
}

type AssignmentPattern struct {
	NodeBase
	Left  Pattern
	Right Expression
}

func (*AssignmentPattern) Type() NodeType          { return NODE_ASSIGNMENT_PATTERN }
func (*AssignmentPattern) patternNode()            {}
func (n *AssignmentPattern) Accept(v Visitor) Node { return v.VisitAssignmentPattern(n) }
func (n *AssignmentPattern) ChildNodes() ChildNodes {
	return children(one(n.Left), one(n.Right))
}
func (n *AssignmentPattern) UpdateWith(left Pattern, right Expression) *AssignmentPattern {
	if left == n.Left && right == n.Right {
		return n
	}
	c := *n
	c.Left, c.Right = left, right
	return &c
}
