// Package ast declares the syntax tree produced by the parser.
//
// Nodes are pointers to structs embedding NodeBase and are never modified
// after construction. A rewrite builds a new node through the node's
// UpdateWith method, which hands back the receiver when no child changed.
package ast

import (
	"esfront/token"
)

type NodeType int

const (
	NODE_PROGRAM NodeType = iota
	NODE_IDENTIFIER
	NODE_PRIVATE_IDENTIFIER
	NODE_LITERAL

	NODE_EXPRESSION_STATEMENT
	NODE_BLOCK_STATEMENT
	NODE_STATIC_BLOCK
	NODE_EMPTY_STATEMENT
	NODE_DEBUGGER_STATEMENT
	NODE_WITH_STATEMENT
	NODE_RETURN_STATEMENT
	NODE_LABELED_STATEMENT
	NODE_BREAK_STATEMENT
	NODE_CONTINUE_STATEMENT
	NODE_IF_STATEMENT
	NODE_SWITCH_STATEMENT
	NODE_SWITCH_CASE
	NODE_THROW_STATEMENT
	NODE_TRY_STATEMENT
	NODE_CATCH_CLAUSE
	NODE_WHILE_STATEMENT
	NODE_DO_WHILE_STATEMENT
	NODE_FOR_STATEMENT
	NODE_FOR_IN_STATEMENT
	NODE_FOR_OF_STATEMENT
	NODE_FUNCTION_DECLARATION
	NODE_VARIABLE_DECLARATION
	NODE_VARIABLE_DECLARATOR
	NODE_CLASS_DECLARATION
	NODE_BAD_STATEMENT

	NODE_THIS_EXPRESSION
	NODE_SUPER
	NODE_ARRAY_EXPRESSION
	NODE_OBJECT_EXPRESSION
	NODE_PROPERTY
	NODE_FUNCTION_EXPRESSION
	NODE_ARROW_FUNCTION_EXPRESSION
	NODE_CLASS_EXPRESSION
	NODE_CLASS_BODY
	NODE_METHOD_DEFINITION
	NODE_PROPERTY_DEFINITION
	NODE_TAGGED_TEMPLATE_EXPRESSION
	NODE_TEMPLATE_LITERAL
	NODE_TEMPLATE_ELEMENT
	NODE_UNARY_EXPRESSION
	NODE_UPDATE_EXPRESSION
	NODE_BINARY_EXPRESSION
	NODE_LOGICAL_EXPRESSION
	NODE_ASSIGNMENT_EXPRESSION
	NODE_CONDITIONAL_EXPRESSION
	NODE_CALL_EXPRESSION
	NODE_NEW_EXPRESSION
	NODE_MEMBER_EXPRESSION
	NODE_CHAIN_EXPRESSION
	NODE_SEQUENCE_EXPRESSION
	NODE_YIELD_EXPRESSION
	NODE_AWAIT_EXPRESSION
	NODE_META_PROPERTY
	NODE_IMPORT_EXPRESSION
	NODE_SPREAD_ELEMENT
	NODE_BAD_EXPRESSION

	NODE_OBJECT_PATTERN
	NODE_ARRAY_PATTERN
	NODE_REST_ELEMENT
	NODE_ASSIGNMENT_PATTERN

	NODE_IMPORT_DECLARATION
	NODE_IMPORT_SPECIFIER
	NODE_IMPORT_DEFAULT_SPECIFIER
	NODE_IMPORT_NAMESPACE_SPECIFIER
	NODE_IMPORT_ATTRIBUTE
	NODE_EXPORT_NAMED_DECLARATION
	NODE_EXPORT_SPECIFIER
	NODE_EXPORT_DEFAULT_DECLARATION
	NODE_EXPORT_ALL_DECLARATION

	// NODE_EXTENSION is reported by node kinds defined outside this package.
	NODE_EXTENSION
)

var nodeTypeToString = map[NodeType]string{
	NODE_PROGRAM:                    "Program",
	NODE_IDENTIFIER:                 "Identifier",
	NODE_PRIVATE_IDENTIFIER:         "PrivateIdentifier",
	NODE_LITERAL:                    "Literal",
	NODE_EXPRESSION_STATEMENT:       "ExpressionStatement",
	NODE_BLOCK_STATEMENT:            "BlockStatement",
	NODE_STATIC_BLOCK:               "StaticBlock",
	NODE_EMPTY_STATEMENT:            "EmptyStatement",
	NODE_DEBUGGER_STATEMENT:         "DebuggerStatement",
	NODE_WITH_STATEMENT:             "WithStatement",
	NODE_RETURN_STATEMENT:           "ReturnStatement",
	NODE_LABELED_STATEMENT:          "LabeledStatement",
	NODE_BREAK_STATEMENT:            "BreakStatement",
	NODE_CONTINUE_STATEMENT:         "ContinueStatement",
	NODE_IF_STATEMENT:               "IfStatement",
	NODE_SWITCH_STATEMENT:           "SwitchStatement",
	NODE_SWITCH_CASE:                "SwitchCase",
	NODE_THROW_STATEMENT:            "ThrowStatement",
	NODE_TRY_STATEMENT:              "TryStatement",
	NODE_CATCH_CLAUSE:               "CatchClause",
	NODE_WHILE_STATEMENT:            "WhileStatement",
	NODE_DO_WHILE_STATEMENT:         "DoWhileStatement",
	NODE_FOR_STATEMENT:              "ForStatement",
	NODE_FOR_IN_STATEMENT:           "ForInStatement",
	NODE_FOR_OF_STATEMENT:           "ForOfStatement",
	NODE_FUNCTION_DECLARATION:       "FunctionDeclaration",
	NODE_VARIABLE_DECLARATION:       "VariableDeclaration",
	NODE_VARIABLE_DECLARATOR:        "VariableDeclarator",
	NODE_CLASS_DECLARATION:          "ClassDeclaration",
	NODE_BAD_STATEMENT:              "BadStatement",
	NODE_THIS_EXPRESSION:            "ThisExpression",
	NODE_SUPER:                      "Super",
	NODE_ARRAY_EXPRESSION:           "ArrayExpression",
	NODE_OBJECT_EXPRESSION:          "ObjectExpression",
	NODE_PROPERTY:                   "Property",
	NODE_FUNCTION_EXPRESSION:        "FunctionExpression",
	NODE_ARROW_FUNCTION_EXPRESSION:  "ArrowFunctionExpression",
	NODE_CLASS_EXPRESSION:           "ClassExpression",
	NODE_CLASS_BODY:                 "ClassBody",
	NODE_METHOD_DEFINITION:          "MethodDefinition",
	NODE_PROPERTY_DEFINITION:        "PropertyDefinition",
	NODE_TAGGED_TEMPLATE_EXPRESSION: "TaggedTemplateExpression",
	NODE_TEMPLATE_LITERAL:           "TemplateLiteral",
	NODE_TEMPLATE_ELEMENT:           "TemplateElement",
	NODE_UNARY_EXPRESSION:           "UnaryExpression",
	NODE_UPDATE_EXPRESSION:          "UpdateExpression",
	NODE_BINARY_EXPRESSION:          "BinaryExpression",
	NODE_LOGICAL_EXPRESSION:         "LogicalExpression",
	NODE_ASSIGNMENT_EXPRESSION:      "AssignmentExpression",
	NODE_CONDITIONAL_EXPRESSION:     "ConditionalExpression",
	NODE_CALL_EXPRESSION:            "CallExpression",
	NODE_NEW_EXPRESSION:             "NewExpression",
	NODE_MEMBER_EXPRESSION:          "MemberExpression",
	NODE_CHAIN_EXPRESSION:           "ChainExpression",
	NODE_SEQUENCE_EXPRESSION:        "SequenceExpression",
	NODE_YIELD_EXPRESSION:           "YieldExpression",
	NODE_AWAIT_EXPRESSION:           "AwaitExpression",
	NODE_META_PROPERTY:              "MetaProperty",
	NODE_IMPORT_EXPRESSION:          "ImportExpression",
	NODE_SPREAD_ELEMENT:             "SpreadElement",
	NODE_BAD_EXPRESSION:             "BadExpression",
	NODE_OBJECT_PATTERN:             "ObjectPattern",
	NODE_ARRAY_PATTERN:              "ArrayPattern",
	NODE_REST_ELEMENT:               "RestElement",
	NODE_ASSIGNMENT_PATTERN:         "AssignmentPattern",
	NODE_IMPORT_DECLARATION:         "ImportDeclaration",
	NODE_IMPORT_SPECIFIER:           "ImportSpecifier",
	NODE_IMPORT_DEFAULT_SPECIFIER:   "ImportDefaultSpecifier",
	NODE_IMPORT_NAMESPACE_SPECIFIER: "ImportNamespaceSpecifier",
	NODE_IMPORT_ATTRIBUTE:           "ImportAttribute",
	NODE_EXPORT_NAMED_DECLARATION:   "ExportNamedDeclaration",
	NODE_EXPORT_SPECIFIER:           "ExportSpecifier",
	NODE_EXPORT_DEFAULT_DECLARATION: "ExportDefaultDeclaration",
	NODE_EXPORT_ALL_DECLARATION:     "ExportAllDeclaration",
	NODE_EXTENSION:                  "Extension",
}

func (t NodeType) String() string {
	if s, ok := nodeTypeToString[t]; ok {
		return s
	}
	return "Unknown"
}

// Node is implemented by every syntax tree node.
type Node interface {
	Type() NodeType
	Base() *NodeBase
	// Accept calls the visitor method for the node's kind.
	Accept(v Visitor) Node
	// ChildNodes enumerates the non-nil children in source order.
	ChildNodes() ChildNodes
}

type Expression interface {
	Node
	expressionNode()
}

type Statement interface {
	Node
	statementNode()
}

// Pattern is a binding or assignment target.
type Pattern interface {
	Node
	patternNode()
}

// NodeBase holds the source span of a node. Start and End are byte offsets
// and always set; Loc and Range are set only when the parser was asked for
// them.
type NodeBase struct {
	Start int
	End   int
	Loc   *token.SourceLocation
	Range *token.Range
}

func (b *NodeBase) Base() *NodeBase { return b }

// NodeList is a fixed sequence of children. Elements may be nil, e.g. for
// array holes. A nil *NodeList is empty.
type NodeList[T Node] struct {
	items []T
}

// ListOf builds a list that takes ownership of items.
func ListOf[T Node](items []T) *NodeList[T] {
	return &NodeList[T]{items: items}
}

func (l *NodeList[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

func (l *NodeList[T]) At(i int) T { return l.items[i] }

// Slice returns a copy of the elements.
func (l *NodeList[T]) Slice() []T {
	if l == nil {
		return nil
	}
	return append([]T(nil), l.items...)
}

// Same reports whether l and other are the same list instance. Lists with
// equal elements are not the same.
func (l *NodeList[T]) Same(other *NodeList[T]) bool { return l == other }

func (l *NodeList[T]) node(i int) Node { return l.items[i] }

type nodeSeq interface {
	Len() int
	node(i int) Node
}

// Slot is one child property: a single child, a list, or a pair of lists
// read alternately.
type Slot struct {
	node  Node
	list  nodeSeq
	other nodeSeq
}

func one(n Node) Slot { return Slot{node: n} }

func many(l nodeSeq) Slot { return Slot{list: l} }

// interleave yields a[0], b[0], a[1], b[1], ...
func interleave(a, b nodeSeq) Slot { return Slot{list: a, other: b} }

func (s *Slot) length() int {
	if s.list == nil {
		return 1
	}
	n := s.list.Len()
	if s.other != nil {
		n += s.other.Len()
	}
	return n
}

func (s *Slot) at(i int) Node {
	if s.list == nil {
		return s.node
	}
	if s.other == nil {
		return s.list.node(i)
	}
	na, nb := s.list.Len(), s.other.Len()
	k := min(na, nb)
	if i < 2*k {
		if i%2 == 0 {
			return s.list.node(i / 2)
		}
		return s.other.node(i / 2)
	}
	if na > nb {
		return s.list.node(i - k)
	}
	return s.other.node(i - k)
}

// ChildNodes is a cursor over a node's child properties. The same cursor
// serves every node kind: a node lists its properties in declaration order
// and the cursor walks them, skipping nil children and flattening lists.
//
//	for c := n.ChildNodes(); c.Next(); {
//		use(c.Current())
//	}
type ChildNodes struct {
	slots [4]Slot
	n     int
	prop  int
	index int
	cur   Node
}

func children(slots ...Slot) ChildNodes {
	var c ChildNodes
	c.n = copy(c.slots[:], slots)
	c.index = -1
	return c
}

// Next advances to the next non-nil child and reports whether there is one.
func (c *ChildNodes) Next() bool {
	for c.prop < c.n {
		s := &c.slots[c.prop]
		c.index++
		if c.index >= s.length() {
			c.prop++
			c.index = -1
			continue
		}
		if n := s.at(c.index); n != nil {
			c.cur = n
			return true
		}
	}
	c.cur = nil
	return false
}

func (c *ChildNodes) Current() Node { return c.cur }

// Collect returns the remaining children as a slice.
func (c ChildNodes) Collect() []Node {
	var out []Node
	for c.Next() {
		out = append(out, c.Current())
	}
	return out
}

// Children, One, Optional and Many build child cursors for node kinds
// declared outside this package.
func Children(slots ...Slot) ChildNodes { return children(slots...) }

func One(n Node) Slot { return one(n) }

func Optional[T interface {
	comparable
	Node
}](n T) Slot {
	return one(opt(n))
}

func Many[T Node](l *NodeList[T]) Slot { return many(l) }

// opt turns a nil pointer child into a nil Node.
func opt[T interface {
	comparable
	Node
}](n T) Node {
	var zero T
	if n == zero {
		return nil
	}
	return n
}
