package ast

import (
	"esfront/jsregexp"
)

type Identifier struct {
	NodeBase
	Name string
}

func (*Identifier) Type() NodeType          { return NODE_IDENTIFIER }
func (*Identifier) expressionNode()         {}
func (*Identifier) patternNode()            {}
func (n *Identifier) Accept(v Visitor) Node { return v.VisitIdentifier(n) }
func (*Identifier) ChildNodes() ChildNodes  { return children() }

// PrivateIdentifier is a #name. It is an Expression only as the left
// operand of `in`.
type PrivateIdentifier struct {
	NodeBase
	Name string
}

func (*PrivateIdentifier) Type() NodeType          { return NODE_PRIVATE_IDENTIFIER }
func (*PrivateIdentifier) expressionNode()         {}
func (n *PrivateIdentifier) Accept(v Visitor) Node { return v.VisitPrivateIdentifier(n) }
func (*PrivateIdentifier) ChildNodes() ChildNodes  { return children() }

type LiteralKind int

const (
	LITERAL_STRING LiteralKind = iota
	LITERAL_NUMBER
	LITERAL_BIGINT
	LITERAL_BOOLEAN
	LITERAL_NULL
	LITERAL_REGEXP
)

// RegexValue is the value of a regular expression literal. Result is nil
// when the pattern was not checked.
type RegexValue struct {
	Pattern string
	Flags   string
	Result  *jsregexp.Result
}

// Literal holds a string, float64, *big.Int, bool, nil or, for regular
// expressions, *RegexValue in Value.
type Literal struct {
	NodeBase
	Kind   LiteralKind
	Value  any
	Raw    string
	Regex  *RegexValue
	BigInt string
}

func (*Literal) Type() NodeType          { return NODE_LITERAL }
func (*Literal) expressionNode()         {}
func (n *Literal) Accept(v Visitor) Node { return v.VisitLiteral(n) }
func (*Literal) ChildNodes() ChildNodes  { return children() }

// StringValue returns the value of a string literal.
func (n *Literal) StringValue() (string, bool) {
	s, ok := n.Value.(string)
	return s, ok && n.Kind == LITERAL_STRING
}

type ThisExpression struct {
	NodeBase
}

func (*ThisExpression) Type() NodeType          { return NODE_THIS_EXPRESSION }
func (*ThisExpression) expressionNode()         {}
func (n *ThisExpression) Accept(v Visitor) Node { return v.VisitThisExpression(n) }
func (*ThisExpression) ChildNodes() ChildNodes  { return children() }

type Super struct {
	NodeBase
}

func (*Super) Type() NodeType          { return NODE_SUPER }
func (*Super) expressionNode()         {}
func (n *Super) Accept(v Visitor) Node { return v.VisitSuper(n) }
func (*Super) ChildNodes() ChildNodes  { return children() }

// ArrayExpression elements are nil for holes.
type ArrayExpression struct {
	NodeBase
	Elements *NodeList[Expression]
}

func (*ArrayExpression) Type() NodeType           { return NODE_ARRAY_EXPRESSION }
func (*ArrayExpression) expressionNode()          {}
func (n *ArrayExpression) Accept(v Visitor) Node  { return v.VisitArrayExpression(n) }
func (n *ArrayExpression) ChildNodes() ChildNodes { return children(many(n.Elements)) }
func (n *ArrayExpression) UpdateWith(elements *NodeList[Expression]) *ArrayExpression {
	if elements == n.Elements {
		return n
	}
	c := *n
	c.Elements = elements
	return &c
}

// ObjectExpression properties are *Property or *SpreadElement.
type ObjectExpression struct {
	NodeBase
	Properties *NodeList[Node]
}

func (*ObjectExpression) Type() NodeType           { return NODE_OBJECT_EXPRESSION }
func (*ObjectExpression) expressionNode()          {}
func (n *ObjectExpression) Accept(v Visitor) Node  { return v.VisitObjectExpression(n) }
func (n *ObjectExpression) ChildNodes() ChildNodes { return children(many(n.Properties)) }
func (n *ObjectExpression) UpdateWith(properties *NodeList[Node]) *ObjectExpression {
	if properties == n.Properties {
		return n
	}
	c := *n
	c.Properties = properties
	return &c
}

// Property is a member of an object literal or object pattern. Value is an
// Expression in literals and a Pattern in patterns.
type Property struct {
	NodeBase
	Key       Expression
	Value     Node
	Kind      string // "init", "get" or "set"
	Method    bool
	Shorthand bool
	Computed  bool
}

func (*Property) Type() NodeType          { return NODE_PROPERTY }
func (n *Property) Accept(v Visitor) Node { return v.VisitProperty(n) }
func (n *Property) ChildNodes() ChildNodes {
	if n.Shorthand {
		// The key and value are the same source text.
		return children(one(n.Value))
	}
	return children(one(n.Key), one(n.Value))
}
func (n *Property) UpdateWith(key Expression, value Node) *Property {
	if key == n.Key && value == n.Value {
		return n
	}
	c := *n
	c.Key, c.Value = key, value
	return &c
}

type FunctionExpression struct {
	NodeBase
	ID        *Identifier
	Params    *NodeList[Pattern]
	Body      *BlockStatement
	Generator bool
	Async     bool
}

func (*FunctionExpression) Type() NodeType          { return NODE_FUNCTION_EXPRESSION }
func (*FunctionExpression) expressionNode()         {}
func (n *FunctionExpression) Accept(v Visitor) Node { return v.VisitFunctionExpression(n) }
func (n *FunctionExpression) ChildNodes() ChildNodes {
	return children(one(opt(n.ID)), many(n.Params), one(opt(n.Body)))
}
func (n *FunctionExpression) UpdateWith(id *Identifier, params *NodeList[Pattern], body *BlockStatement) *FunctionExpression {
	if id == n.ID && params == n.Params && body == n.Body {
		return n
	}
	c := *n
	c.ID, c.Params, c.Body = id, params, body
	return &c
}

// ArrowFunctionExpression.Body is a *BlockStatement, or an Expression when
// Expression is set.
type ArrowFunctionExpression struct {
	NodeBase
	Params     *NodeList[Pattern]
	Body       Node
	Expression bool
	Async      bool
}

func (*ArrowFunctionExpression) Type() NodeType          { return NODE_ARROW_FUNCTION_EXPRESSION }
func (*ArrowFunctionExpression) expressionNode()         {}
func (n *ArrowFunctionExpression) Accept(v Visitor) Node { return v.VisitArrowFunctionExpression(n) }
func (n *ArrowFunctionExpression) ChildNodes() ChildNodes {
	return children(many(n.Params), one(n.Body))
}
func (n *ArrowFunctionExpression) UpdateWith(params *NodeList[Pattern], body Node) *ArrowFunctionExpression {
	if params == n.Params && body == n.Body {
		return n
	}
	c := *n
	c.Params, c.Body = params, body
	return &c
}

type ClassExpression struct {
	NodeBase
	ID         *Identifier
	SuperClass Expression
	Body       *ClassBody
}

func (*ClassExpression) Type() NodeType          { return NODE_CLASS_EXPRESSION }
func (*ClassExpression) expressionNode()         {}
func (n *ClassExpression) Accept(v Visitor) Node { return v.VisitClassExpression(n) }
func (n *ClassExpression) ChildNodes() ChildNodes {
	return children(one(opt(n.ID)), one(n.SuperClass), one(opt(n.Body)))
}
func (n *ClassExpression) UpdateWith(id *Identifier, superClass Expression, body *ClassBody) *ClassExpression {
	if id == n.ID && superClass == n.SuperClass && body == n.Body {
		return n
	}
	c := *n
	c.ID, c.SuperClass, c.Body = id, superClass, body
	return &c
}

// ClassBody members are *MethodDefinition, *PropertyDefinition or
// *StaticBlock.
type ClassBody struct {
	NodeBase
	Body *NodeList[Node]
}

func (*ClassBody) Type() NodeType           { return NODE_CLASS_BODY }
func (n *ClassBody) Accept(v Visitor) Node  { return v.VisitClassBody(n) }
func (n *ClassBody) ChildNodes() ChildNodes { return children(many(n.Body)) }
func (n *ClassBody) UpdateWith(body *NodeList[Node]) *ClassBody {
	if body == n.Body {
		return n
	}
	c := *n
	c.Body = body
	return &c
}

type MethodDefinition struct {
	NodeBase
	Key      Expression
	Value    *FunctionExpression
	Kind     string // "constructor", "method", "get" or "set"
	Computed bool
	Static   bool
}

func (*MethodDefinition) Type() NodeType          { return NODE_METHOD_DEFINITION }
func (n *MethodDefinition) Accept(v Visitor) Node { return v.VisitMethodDefinition(n) }
func (n *MethodDefinition) ChildNodes() ChildNodes {
	return children(one(n.Key), one(opt(n.Value)))
}
func (n *MethodDefinition) UpdateWith(key Expression, value *FunctionExpression) *MethodDefinition {
	if key == n.Key && value == n.Value {
		return n
	}
	c := *n
	c.Key, c.Value = key, value
	return &c
}

type PropertyDefinition struct {
	NodeBase
	Key      Expression
	Value    Expression
	Computed bool
	Static   bool
}

func (*PropertyDefinition) Type() NodeType          { return NODE_PROPERTY_DEFINITION }
func (n *PropertyDefinition) Accept(v Visitor) Node { return v.VisitPropertyDefinition(n) }
func (n *PropertyDefinition) ChildNodes() ChildNodes {
	return children(one(n.Key), one(n.Value))
}
func (n *PropertyDefinition) UpdateWith(key, value Expression) *PropertyDefinition {
	if key == n.Key && value == n.Value {
		return n
	}
	c := *n
	c.Key, c.Value = key, value
	return &c
}

type TaggedTemplateExpression struct {
	NodeBase
	Tag   Expression
	Quasi *TemplateLiteral
}

func (*TaggedTemplateExpression) Type() NodeType          { return NODE_TAGGED_TEMPLATE_EXPRESSION }
func (*TaggedTemplateExpression) expressionNode()         {}
func (n *TaggedTemplateExpression) Accept(v Visitor) Node { return v.VisitTaggedTemplateExpression(n) }
func (n *TaggedTemplateExpression) ChildNodes() ChildNodes {
	return children(one(n.Tag), one(opt(n.Quasi)))
}
func (n *TaggedTemplateExpression) UpdateWith(tag Expression, quasi *TemplateLiteral) *TaggedTemplateExpression {
	if tag == n.Tag && quasi == n.Quasi {
		return n
	}
	c := *n
	c.Tag, c.Quasi = tag, quasi
	return &c
}

// TemplateLiteral always has one more quasi than expressions.
type TemplateLiteral struct {
	NodeBase
	Quasis      *NodeList[*TemplateElement]
	Expressions *NodeList[Expression]
}

func (*TemplateLiteral) Type() NodeType          { return NODE_TEMPLATE_LITERAL }
func (*TemplateLiteral) expressionNode()         {}
func (n *TemplateLiteral) Accept(v Visitor) Node { return v.VisitTemplateLiteral(n) }
func (n *TemplateLiteral) ChildNodes() ChildNodes {
	return children(interleave(n.Quasis, n.Expressions))
}
func (n *TemplateLiteral) UpdateWith(quasis *NodeList[*TemplateElement], expressions *NodeList[Expression]) *TemplateLiteral {
	if quasis == n.Quasis && expressions == n.Expressions {
		return n
	}
	c := *n
	c.Quasis, c.Expressions = quasis, expressions
	return &c
}

// TemplateElement has a nil Cooked value for invalid escapes in tagged
// templates.
type TemplateElement struct {
	NodeBase
	Raw    string
	Cooked *string
	Tail   bool
}

func (*TemplateElement) Type() NodeType          { return NODE_TEMPLATE_ELEMENT }
func (n *TemplateElement) Accept(v Visitor) Node { return v.VisitTemplateElement(n) }
func (*TemplateElement) ChildNodes() ChildNodes  { return children() }

type UnaryExpression struct {
	NodeBase
	Operator string
	Prefix   bool
	Argument Expression
}

func (*UnaryExpression) Type() NodeType           { return NODE_UNARY_EXPRESSION }
func (*UnaryExpression) expressionNode()          {}
func (n *UnaryExpression) Accept(v Visitor) Node  { return v.VisitUnaryExpression(n) }
func (n *UnaryExpression) ChildNodes() ChildNodes { return children(one(n.Argument)) }
func (n *UnaryExpression) UpdateWith(argument Expression) *UnaryExpression {
	if argument == n.Argument {
		return n
	}
	c := *n
	c.Argument = argument
	return &c
}

type UpdateExpression struct {
	NodeBase
	Operator string
	Prefix   bool
	Argument Expression
}

func (*UpdateExpression) Type() NodeType           { return NODE_UPDATE_EXPRESSION }
func (*UpdateExpression) expressionNode()          {}
func (n *UpdateExpression) Accept(v Visitor) Node  { return v.VisitUpdateExpression(n) }
func (n *UpdateExpression) ChildNodes() ChildNodes { return children(one(n.Argument)) }
func (n *UpdateExpression) UpdateWith(argument Expression) *UpdateExpression {
	if argument == n.Argument {
		return n
	}
	c := *n
	c.Argument = argument
	return &c
}

type BinaryExpression struct {
	NodeBase
	Operator string
	Left     Expression
	Right    Expression
}

func (*BinaryExpression) Type() NodeType          { return NODE_BINARY_EXPRESSION }
func (*BinaryExpression) expressionNode()         {}
func (n *BinaryExpression) Accept(v Visitor) Node { return v.VisitBinaryExpression(n) }
func (n *BinaryExpression) ChildNodes() ChildNodes {
	return children(one(n.Left), one(n.Right))
}
func (n *BinaryExpression) UpdateWith(left, right Expression) *BinaryExpression {
	if left == n.Left && right == n.Right {
		return n
	}
	c := *n
	c.Left, c.Right = left, right
	return &c
}

type LogicalExpression struct {
	NodeBase
	Operator string
	Left     Expression
	Right    Expression
}

func (*LogicalExpression) Type() NodeType          { return NODE_LOGICAL_EXPRESSION }
func (*LogicalExpression) expressionNode()         {}
func (n *LogicalExpression) Accept(v Visitor) Node { return v.VisitLogicalExpression(n) }
func (n *LogicalExpression) ChildNodes() ChildNodes {
	return children(one(n.Left), one(n.Right))
}
func (n *LogicalExpression) UpdateWith(left, right Expression) *LogicalExpression {
	if left == n.Left && right == n.Right {
		return n
	}
	c := *n
	c.Left, c.Right = left, right
	return &c
}

type AssignmentExpression struct {
	NodeBase
	Operator string
	Left     Pattern
	Right    Expression
}

func (*AssignmentExpression) Type() NodeType          { return NODE_ASSIGNMENT_EXPRESSION }
func (*AssignmentExpression) expressionNode()         {}
func (n *AssignmentExpression) Accept(v Visitor) Node { return v.VisitAssignmentExpression(n) }
func (n *AssignmentExpression) ChildNodes() ChildNodes {
	return children(one(n.Left), one(n.Right))
}
func (n *AssignmentExpression) UpdateWith(left Pattern, right Expression) *AssignmentExpression {
	if left == n.Left && right == n.Right {
		return n
	}
	c := *n
	c.Left, c.Right = left, right
	return &c
}

type ConditionalExpression struct {
	NodeBase
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

func (*ConditionalExpression) Type() NodeType          { return NODE_CONDITIONAL_EXPRESSION }
func (*ConditionalExpression) expressionNode()         {}
func (n *ConditionalExpression) Accept(v Visitor) Node { return v.VisitConditionalExpression(n) }
func (n *ConditionalExpression) ChildNodes() ChildNodes {
	return children(one(n.Test), one(n.Consequent), one(n.Alternate))
}
func (n *ConditionalExpression) UpdateWith(test, consequent, alternate Expression) *ConditionalExpression {
	if test == n.Test && consequent == n.Consequent && alternate == n.Alternate {
		return n
	}
	c := *n
	c.Test, c.Consequent, c.Alternate = test, consequent, alternate
	return &c
}

type CallExpression struct {
	NodeBase
	Callee    Expression
	Arguments *NodeList[Expression]
	Optional  bool
}

func (*CallExpression) Type() NodeType          { return NODE_CALL_EXPRESSION }
func (*CallExpression) expressionNode()         {}
func (n *CallExpression) Accept(v Visitor) Node { return v.VisitCallExpression(n) }
func (n *CallExpression) ChildNodes() ChildNodes {
	return children(one(n.Callee), many(n.Arguments))
}
func (n *CallExpression) UpdateWith(callee Expression, arguments *NodeList[Expression]) *CallExpression {
	if callee == n.Callee && arguments == n.Arguments {
		return n
	}
	c := *n
	c.Callee, c.Arguments = callee, arguments
	return &c
}

type NewExpression struct {
	NodeBase
	Callee    Expression
	Arguments *NodeList[Expression]
}

func (*NewExpression) Type() NodeType          { return NODE_NEW_EXPRESSION }
func (*NewExpression) expressionNode()         {}
func (n *NewExpression) Accept(v Visitor) Node { return v.VisitNewExpression(n) }
func (n *NewExpression) ChildNodes() ChildNodes {
	return children(one(n.Callee), many(n.Arguments))
}
func (n *NewExpression) UpdateWith(callee Expression, arguments *NodeList[Expression]) *NewExpression {
	if callee == n.Callee && arguments == n.Arguments {
		return n
	}
	c := *n
	c.Callee, c.Arguments = callee, arguments
	return &c
}

type MemberExpression struct {
	NodeBase
	Object   Expression
	Property Expression
	Computed bool
	Optional bool
}

func (*MemberExpression) Type() NodeType          { return NODE_MEMBER_EXPRESSION }
func (*MemberExpression) expressionNode()         {}
func (*MemberExpression) patternNode()            {}
func (n *MemberExpression) Accept(v Visitor) Node { return v.VisitMemberExpression(n) }
func (n *MemberExpression) ChildNodes() ChildNodes {
	return children(one(n.Object), one(n.Property))
}
func (n *MemberExpression) UpdateWith(object, property Expression) *MemberExpression {
	if object == n.Object && property == n.Property {
		return n
	}
	c := *n
	c.Object, c.Property = object, property
	return &c
}

// ChainExpression wraps an optional chain such as a?.b.c.
type ChainExpression struct {
	NodeBase
	Expression Expression
}

func (*ChainExpression) Type() NodeType           { return NODE_CHAIN_EXPRESSION }
func (*ChainExpression) expressionNode()          {}
func (n *ChainExpression) Accept(v Visitor) Node  { return v.VisitChainExpression(n) }
func (n *ChainExpression) ChildNodes() ChildNodes { return children(one(n.Expression)) }
func (n *ChainExpression) UpdateWith(expression Expression) *ChainExpression {
	if expression == n.Expression {
		return n
	}
	c := *n
	c.Expression = expression
	return &c
}

type SequenceExpression struct {
	NodeBase
	Expressions *NodeList[Expression]
}

func (*SequenceExpression) Type() NodeType           { return NODE_SEQUENCE_EXPRESSION }
func (*SequenceExpression) expressionNode()          {}
func (n *SequenceExpression) Accept(v Visitor) Node  { return v.VisitSequenceExpression(n) }
func (n *SequenceExpression) ChildNodes() ChildNodes { return children(many(n.Expressions)) }
func (n *SequenceExpression) UpdateWith(expressions *NodeList[Expression]) *SequenceExpression {
	if expressions == n.Expressions {
		return n
	}
	c := *n
	c.Expressions = expressions
	return &c
}

type YieldExpression struct {
	NodeBase
	Argument Expression
	Delegate bool
}

func (*YieldExpression) Type() NodeType           { return NODE_YIELD_EXPRESSION }
func (*YieldExpression) expressionNode()          {}
func (n *YieldExpression) Accept(v Visitor) Node  { return v.VisitYieldExpression(n) }
func (n *YieldExpression) ChildNodes() ChildNodes { return children(one(n.Argument)) }
func (n *YieldExpression) UpdateWith(argument Expression) *YieldExpression {
	if argument == n.Argument {
		return n
	}
	c := *n
	c.Argument = argument
	return &c
}

type AwaitExpression struct {
	NodeBase
	Argument Expression
}

func (*AwaitExpression) Type() NodeType           { return NODE_AWAIT_EXPRESSION }
func (*AwaitExpression) expressionNode()          {}
func (n *AwaitExpression) Accept(v Visitor) Node  { return v.VisitAwaitExpression(n) }
func (n *AwaitExpression) ChildNodes() ChildNodes { return children(one(n.Argument)) }
func (n *AwaitExpression) UpdateWith(argument Expression) *AwaitExpression {
	if argument == n.Argument {
		return n
	}
	c := *n
	c.Argument = argument
	return &c
}

// MetaProperty is new.target or import.meta.
type MetaProperty struct {
	NodeBase
	Meta     *Identifier
	Property *Identifier
}

func (*MetaProperty) Type() NodeType          { return NODE_META_PROPERTY }
func (*MetaProperty) expressionNode()         {}
func (n *MetaProperty) Accept(v Visitor) Node { return v.VisitMetaProperty(n) }
func (n *MetaProperty) ChildNodes() ChildNodes {
	return children(one(opt(n.Meta)), one(opt(n.Property)))
}
func (n *MetaProperty) UpdateWith(meta, property *Identifier) *MetaProperty {
	if meta == n.Meta && property == n.Property {
		return n
	}
	c := *n
	c.Meta, c.Property = meta, property
	return &c
}

type ImportExpression struct {
	NodeBase
	Source  Expression
	Options Expression
}

func (*ImportExpression) Type() NodeType          { return NODE_IMPORT_EXPRESSION }
func (*ImportExpression) expressionNode()         {}
func (n *ImportExpression) Accept(v Visitor) Node { return v.VisitImportExpression(n) }
func (n *ImportExpression) ChildNodes() ChildNodes {
	return children(one(n.Source), one(n.Options))
}
func (n *ImportExpression) UpdateWith(source, options Expression) *ImportExpression {
	if source == n.Source && options == n.Options {
		return n
	}
	c := *n
	c.Source, c.Options = source, options
	return &c
}

// SpreadElement appears only in array literals, argument lists and object
// literals.
type SpreadElement struct {
	NodeBase
	Argument Expression
}

func (*SpreadElement) Type() NodeType           { return NODE_SPREAD_ELEMENT }
func (*SpreadElement) expressionNode()          {}
func (n *SpreadElement) Accept(v Visitor) Node  { return v.VisitSpreadElement(n) }
func (n *SpreadElement) ChildNodes() ChildNodes { return children(one(n.Argument)) }
func (n *SpreadElement) UpdateWith(argument Expression) *SpreadElement {
	if argument == n.Argument {
		return n
	}
	c := *n
	c.Argument = argument
	return &c
}

// BadExpression stands in for an expression the tolerant parser could not
// parse or convert.
type BadExpression struct {
	NodeBase
}

func (*BadExpression) Type() NodeType          { return NODE_BAD_EXPRESSION }
func (*BadExpression) expressionNode()         {}
func (*BadExpression) patternNode()            {}
func (n *BadExpression) Accept(v Visitor) Node { return v.VisitBadExpression(n) }
func (*BadExpression) ChildNodes() ChildNodes  { return children() }
