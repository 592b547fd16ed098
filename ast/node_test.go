package ast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ident(name string, start int) *Identifier {
	return &Identifier{NodeBase: NodeBase{Start: start, End: start + len(name)}, Name: name}
}

func str(s string, start int) *Literal {
	raw := "'" + s + "'"
	return &Literal{NodeBase: NodeBase{Start: start, End: start + len(raw)}, Kind: LITERAL_STRING, Value: s, Raw: raw}
}

func names(nodes []Node) []string {
	var out []string
	for _, n := range nodes {
		switch n := n.(type) {
		case *Identifier:
			out = append(out, n.Name)
		case *TemplateElement:
			out = append(out, "`"+n.Raw)
		default:
			out = append(out, n.Type().String())
		}
	}
	return out
}

func TestNodeTypeString(t *testing.T) {
	assert.Equal(t, "Program", NODE_PROGRAM.String())
	assert.Equal(t, "ArrowFunctionExpression", NODE_ARROW_FUNCTION_EXPRESSION.String())
	assert.Equal(t, "Extension", NODE_EXTENSION.String())
	assert.Equal(t, "Unknown", NodeType(-1).String())
}

func TestNodeList(t *testing.T) {
	var empty *NodeList[Expression]
	assert.Equal(t, 0, empty.Len())
	assert.Nil(t, empty.Slice())

	items := []Expression{ident("a", 0), nil, ident("b", 3)}
	l := ListOf(items)
	require.Equal(t, 3, l.Len())
	assert.Nil(t, l.At(1))

	s := l.Slice()
	s[0] = ident("z", 0)
	assert.Equal(t, "a", l.At(0).(*Identifier).Name, "Slice must copy")

	other := ListOf(l.Slice())
	assert.True(t, l.Same(l))
	assert.False(t, l.Same(other), "equal elements are not the same list")
}

func TestChildNodesOrder(t *testing.T) {
	// a ? b : c
	cond := &ConditionalExpression{Test: ident("a", 0), Consequent: ident("b", 4), Alternate: ident("c", 8)}
	assert.Equal(t, []string{"a", "b", "c"}, names(cond.ChildNodes().Collect()))

	// for (;;) x
	loop := &ForStatement{Body: &ExpressionStatement{Expression: ident("x", 9)}}
	assert.Equal(t, []string{"ExpressionStatement"}, names(loop.ChildNodes().Collect()))

	// f(a, b)
	call := &CallExpression{Callee: ident("f", 0), Arguments: ListOf([]Expression{ident("a", 2), ident("b", 5)})}
	assert.Equal(t, []string{"f", "a", "b"}, names(call.ChildNodes().Collect()))
}

func TestChildNodesSkipsHoles(t *testing.T) {
	// [, a, , b]
	arr := &ArrayExpression{Elements: ListOf([]Expression{nil, ident("a", 3), nil, ident("b", 8)})}
	assert.Equal(t, []string{"a", "b"}, names(arr.ChildNodes().Collect()))

	fn := &FunctionExpression{Body: &BlockStatement{}}
	assert.Equal(t, []string{"BlockStatement"}, names(fn.ChildNodes().Collect()))

	assert.Empty(t, (&Identifier{Name: "x"}).ChildNodes().Collect())
	assert.Empty(t, (&ArrayExpression{}).ChildNodes().Collect())
}

func TestChildNodesTemplateInterleave(t *testing.T) {
	q := func(raw string, tail bool) *TemplateElement { return &TemplateElement{Raw: raw, Tail: tail} }
	tl := &TemplateLiteral{
		Quasis:      ListOf([]*TemplateElement{q("a", false), q("b", false), q("c", true)}),
		Expressions: ListOf([]Expression{ident("x", 0), ident("y", 0)}),
	}
	assert.Equal(t, []string{"`a", "x", "`b", "y", "`c"}, names(tl.ChildNodes().Collect()))

	plain := &TemplateLiteral{Quasis: ListOf([]*TemplateElement{q("only", true)})}
	assert.Equal(t, []string{"`only"}, names(plain.ChildNodes().Collect()))
}

func TestChildNodesShorthand(t *testing.T) {
	a := ident("a", 1)
	p := &Property{Key: a, Value: a, Kind: "init", Shorthand: true}
	assert.Equal(t, []string{"a"}, names(p.ChildNodes().Collect()))

	spec := &ExportSpecifier{Local: a, Exported: a}
	assert.Len(t, spec.ChildNodes().Collect(), 1)

	renamed := &ExportSpecifier{Local: a, Exported: ident("b", 6)}
	assert.Equal(t, []string{"a", "b"}, names(renamed.ChildNodes().Collect()))
}

func TestChildNodesCursor(t *testing.T) {
	bin := &BinaryExpression{Operator: "+", Left: ident("a", 0), Right: ident("b", 4)}
	c := bin.ChildNodes()
	assert.Nil(t, c.Current())
	require.True(t, c.Next())
	assert.Same(t, bin.Left, c.Current())

	// Collect works on a copy and leaves the cursor where it was.
	rest := c.Collect()
	assert.Equal(t, []string{"b"}, names(rest))
	assert.Same(t, bin.Left, c.Current())

	require.True(t, c.Next())
	assert.False(t, c.Next())
	assert.Nil(t, c.Current())
	assert.False(t, c.Next())
}

func TestUpdateWithIdentity(t *testing.T) {
	a, b := ident("a", 0), ident("b", 4)
	bin := &BinaryExpression{NodeBase: NodeBase{Start: 0, End: 5}, Operator: "+", Left: a, Right: b}
	assert.Same(t, bin, bin.UpdateWith(a, b))

	c := ident("c", 4)
	next := bin.UpdateWith(a, c)
	require.NotSame(t, bin, next)
	assert.Equal(t, "+", next.Operator)
	assert.Equal(t, bin.NodeBase, next.NodeBase)
	assert.Same(t, c, next.Right)
	assert.Same(t, b, bin.Right, "receiver must not change")

	body := ListOf([]Statement{&EmptyStatement{}})
	prog := &Program{SourceType: "module", Strict: true, Body: body}
	assert.Same(t, prog, prog.UpdateWith(body))
	other := prog.UpdateWith(ListOf(body.Slice()))
	assert.NotSame(t, prog, other)
	assert.True(t, other.Strict)
}

type testExt struct {
	ExtensionBase
	Child Expression
}

func (n *testExt) Accept(v Visitor) Node  { return v.VisitExtension(n) }
func (n *testExt) ChildNodes() ChildNodes { return children(one(n.Child)) }

func TestExtensionBase(t *testing.T) {
	var e Expression = &testExt{}
	assert.Equal(t, NODE_EXTENSION, e.Type())
	e.Base().Start = 4
	assert.Equal(t, 4, e.Base().Start)
}

func TestFprint(t *testing.T) {
	// x = 'y';
	prog := &Program{
		NodeBase:   NodeBase{Start: 0, End: 8},
		SourceType: "script",
		Body: ListOf([]Statement{&ExpressionStatement{
			NodeBase: NodeBase{Start: 0, End: 8},
			Expression: &AssignmentExpression{
				NodeBase: NodeBase{Start: 0, End: 7},
				Operator: "=",
				Left:     ident("x", 0),
				Right:    str("y", 4),
			},
		}}),
	}
	var sb strings.Builder
	require.NoError(t, Fprint(&sb, prog))
	want := strings.Join([]string{
		"Program [0, 8] sourceType=script",
		"  ExpressionStatement [0, 8]",
		"    AssignmentExpression [0, 7] operator==",
		"      Identifier [0, 1] name=x",
		`      Literal [4, 7] value="y"`,
		"",
	}, "\n")
	assert.Equal(t, want, sb.String())
}
