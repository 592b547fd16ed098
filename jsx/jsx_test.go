package jsx

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esfront/ast"
)

func name(s string) *Identifier { return &Identifier{Name: s} }

// sample builds <div class={x}>hi {...y}<a.b /></div> wrapped in a
// statement.
func sample() *ast.ExpressionStatement {
	opening := &OpeningElement{
		Name: name("div"),
		Attributes: ast.ListOf([]ast.Expression{&Attribute{
			Name:  name("class"),
			Value: &ExpressionContainer{Expression: &ast.Identifier{Name: "x"}},
		}}),
	}
	inner := &Element{
		OpeningElement: &OpeningElement{
			Name:        &MemberExpression{Object: name("a"), Property: name("b")},
			SelfClosing: true,
		},
	}
	el := &Element{
		OpeningElement: opening,
		Children: ast.ListOf([]ast.Expression{
			&Text{Value: "hi ", Raw: "hi "},
			&SpreadChild{Expression: &ast.Identifier{Name: "y"}},
			inner,
		}),
		ClosingElement: &ClosingElement{Name: name("div")},
	}
	return &ast.ExpressionStatement{Expression: el}
}

func TestTypes(t *testing.T) {
	var n Node = &Element{}
	assert.Equal(t, ast.NODE_EXTENSION, n.Type())
	assert.Equal(t, ELEMENT, n.JSXType())
	assert.Equal(t, "JSXSpreadChild", SPREAD_CHILD.String())
	assert.Equal(t, "Unknown", Type(99).String())

	// JSX nodes are expressions in the core tree.
	var _ ast.Expression = &Fragment{}
	var _ ast.Expression = &EmptyExpression{}
}

func TestChildNodes(t *testing.T) {
	el := sample().Expression.(*Element)
	kids := el.ChildNodes().Collect()
	require.Len(t, kids, 5)
	assert.IsType(t, &OpeningElement{}, kids[0])
	assert.IsType(t, &Text{}, kids[1])
	assert.IsType(t, &ClosingElement{}, kids[4])

	inner := kids[3].(*Element)
	assert.Len(t, inner.ChildNodes().Collect(), 1, "self-closing element has no closing child")
}

// collector records core and JSX identifiers through one visitor.
type collector struct {
	VisitorBase
	seen []string
}

func (c *collector) VisitIdentifier(n *ast.Identifier) ast.Node {
	c.seen = append(c.seen, n.Name)
	return n
}

func (c *collector) JSX() Visitor { return &collectorJSX{Visitor: c.Walker(), c: c} }

type collectorJSX struct {
	Visitor
	c *collector
}

func (j *collectorJSX) VisitIdentifier(n *Identifier) ast.Node {
	j.c.seen = append(j.c.seen, "<"+n.Name)
	return n
}

func TestVisitorRouting(t *testing.T) {
	c := &collector{}
	c.Self = c
	ast.Walk(c, sample())
	assert.Equal(t, []string{"<div", "<class", "x", "y", "<a", "<b", "<div"}, c.seen)
}

func TestVisitorOpaqueWithoutHandler(t *testing.T) {
	// A core visitor unaware of JSX still reaches core nodes inside JSX.
	c := &coreOnly{}
	c.Self = c
	ast.Walk(c, sample())
	assert.Equal(t, []string{"x", "y"}, c.seen)
}

type coreOnly struct {
	ast.VisitorBase
	seen []string
}

func (c *coreOnly) VisitIdentifier(n *ast.Identifier) ast.Node {
	c.seen = append(c.seen, n.Name)
	return n
}

func TestRewriterIdentity(t *testing.T) {
	stmt := sample()
	r := &RewriterBase{}
	r.Self = r
	out, err := ast.Rewrite(r, stmt)
	require.NoError(t, err)
	assert.Same(t, stmt, out)
}

// upper renames JSX tags and the core identifier x.
type upper struct {
	RewriterBase
}

func (u *upper) VisitIdentifier(n *ast.Identifier) ast.Node {
	if n.Name != "x" {
		return n
	}
	return &ast.Identifier{Name: "X"}
}

func (u *upper) JSX() Visitor { return &upperJSX{Visitor: u.Rebuilder()} }

type upperJSX struct {
	Visitor
}

func (*upperJSX) VisitIdentifier(n *Identifier) ast.Node {
	if n.Name != "div" {
		return n
	}
	return &Identifier{Name: strings.ToUpper(n.Name)}
}

func TestRewriterRouting(t *testing.T) {
	stmt := sample()
	u := &upper{}
	u.Self = u
	out, err := ast.Rewrite(u, stmt)
	require.NoError(t, err)

	before := stmt.Expression.(*Element)
	after := out.(*ast.ExpressionStatement).Expression.(*Element)
	require.NotSame(t, before, after)
	assert.Equal(t, "DIV", after.OpeningElement.Name.(*Identifier).Name)
	assert.Equal(t, "DIV", after.ClosingElement.Name.(*Identifier).Name)

	attr := after.OpeningElement.Attributes.At(0).(*Attribute)
	assert.Same(t, before.OpeningElement.Attributes.At(0).(*Attribute).Name, attr.Name)
	assert.Equal(t, "X", attr.Value.(*ExpressionContainer).Expression.(*ast.Identifier).Name)

	// Children without renamed identifiers are shared.
	assert.Same(t, before.Children.At(0), after.Children.At(0))
	assert.Same(t, before.Children.At(1), after.Children.At(1))
	assert.Same(t, before.Children.At(2), after.Children.At(2))
}

func TestCoreRewriterRejectsJSX(t *testing.T) {
	_, err := ast.Rewrite(&ast.RewriterBase{}, sample())
	var unsupported *ast.UnsupportedNodeError
	require.True(t, errors.As(err, &unsupported))
	assert.IsType(t, &Element{}, unsupported.Node)
}

func TestFprint(t *testing.T) {
	frag := &Fragment{
		OpeningFragment: &OpeningFragment{},
		Children:        ast.ListOf([]ast.Expression{&Text{Value: "a&b", Raw: "a&amp;b"}}),
		ClosingFragment: &ClosingFragment{},
	}
	var sb strings.Builder
	require.NoError(t, ast.Fprint(&sb, frag))
	want := strings.Join([]string{
		"JSXFragment [0, 0]",
		"  JSXOpeningFragment [0, 0]",
		`  JSXText [0, 0] value="a&b"`,
		"  JSXClosingFragment [0, 0]",
		"",
	}, "\n")
	assert.Equal(t, want, sb.String())
}
