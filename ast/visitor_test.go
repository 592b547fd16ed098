package ast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample builds:
//
//	function f(a) { return a + b; }
//	if (x) y; else z;
func sample() *Program {
	ret := &ReturnStatement{Argument: &BinaryExpression{Operator: "+", Left: ident("a", 23), Right: ident("b", 27)}}
	fn := &FunctionDeclaration{
		ID:     ident("f", 9),
		Params: ListOf([]Pattern{ident("a", 11)}),
		Body:   &BlockStatement{Body: ListOf([]Statement{ret})},
	}
	branch := &IfStatement{
		Test:       ident("x", 36),
		Consequent: &ExpressionStatement{Expression: ident("y", 39)},
		Alternate:  &ExpressionStatement{Expression: ident("z", 47)},
	}
	return &Program{SourceType: "script", Body: ListOf([]Statement{fn, branch})}
}

type identCounter struct {
	VisitorBase
	seen []string
}

func (c *identCounter) VisitIdentifier(n *Identifier) Node {
	c.seen = append(c.seen, n.Name)
	return n
}

func TestVisitorBaseWalk(t *testing.T) {
	c := &identCounter{}
	c.Self = c
	Walk(c, sample())
	assert.Equal(t, []string{"f", "a", "a", "b", "x", "y", "z"}, c.seen)
}

func TestVisitorBaseWithoutSelf(t *testing.T) {
	// Without Self the defaults still walk, but overrides are not reached.
	c := &identCounter{}
	Walk(c, sample())
	assert.Empty(t, c.seen)
	Walk(c, nil)
}

func TestIdentityRewrite(t *testing.T) {
	prog := sample()
	r := &RewriterBase{}
	out, err := Rewrite(r, prog)
	require.NoError(t, err)
	assert.Same(t, prog, out)
}

type renamer struct {
	RewriterBase
	from, to string
}

func (r *renamer) VisitIdentifier(n *Identifier) Node {
	if n.Name != r.from {
		return n
	}
	c := *n
	c.Name = r.to
	return &c
}

func TestMinimalDiffRewrite(t *testing.T) {
	prog := sample()
	r := &renamer{from: "y", to: "w"}
	r.Self = r
	out, err := Rewrite(r, prog)
	require.NoError(t, err)

	next := out.(*Program)
	require.NotSame(t, prog, next)
	assert.False(t, prog.Body.Same(next.Body))

	// The function is untouched and shared.
	assert.Same(t, prog.Body.At(0), next.Body.At(0))

	before := prog.Body.At(1).(*IfStatement)
	after := next.Body.At(1).(*IfStatement)
	require.NotSame(t, before, after)
	assert.Same(t, before.Test, after.Test)
	assert.Same(t, before.Alternate, after.Alternate)
	assert.Equal(t, "w", after.Consequent.(*ExpressionStatement).Expression.(*Identifier).Name)
	assert.Equal(t, "y", before.Consequent.(*ExpressionStatement).Expression.(*Identifier).Name)
}

func TestRewriteListKeepsHoles(t *testing.T) {
	arr := &ArrayExpression{Elements: ListOf([]Expression{nil, ident("q", 3), nil, ident("y", 6)})}
	r := &renamer{from: "y", to: "w"}
	r.Self = r
	out, err := Rewrite(r, arr)
	require.NoError(t, err)
	got := out.(*ArrayExpression).Elements.Slice()
	require.Len(t, got, 4)
	assert.Nil(t, got[0])
	assert.Same(t, arr.Elements.At(1), got[1])
	assert.Nil(t, got[2])
	assert.Equal(t, "w", got[3].(*Identifier).Name)
}

type stmtInExpr struct {
	RewriterBase
}

func (r *stmtInExpr) VisitIdentifier(n *Identifier) Node {
	return &EmptyStatement{}
}

func TestRewriteConversionError(t *testing.T) {
	r := &stmtInExpr{}
	r.Self = r
	_, err := Rewrite(r, &UnaryExpression{Operator: "!", Prefix: true, Argument: ident("a", 1)})
	var conv *ConversionError
	require.True(t, errors.As(err, &conv))
	assert.Equal(t, NODE_EMPTY_STATEMENT, conv.Node.Type())
	assert.Equal(t, "ast.Expression", conv.Want)
	assert.Equal(t, "cannot convert EmptyStatement to ast.Expression", err.Error())
}

type dropper struct {
	RewriterBase
}

func (r *dropper) VisitReturnStatement(n *ReturnStatement) Node {
	return n.UpdateWith(nil)
}

func TestRewriteRemovesOptionalChild(t *testing.T) {
	r := &dropper{}
	r.Self = r
	out, err := Rewrite(r, sample())
	require.NoError(t, err)
	fn := out.(*Program).Body.At(0).(*FunctionDeclaration)
	assert.Nil(t, fn.Body.Body.At(0).(*ReturnStatement).Argument)
}

func TestRewriteExtension(t *testing.T) {
	n := &ExpressionStatement{Expression: &testExt{Child: ident("a", 0)}}

	_, err := Rewrite(&RewriterBase{}, n)
	var unsupported *UnsupportedNodeError
	require.True(t, errors.As(err, &unsupported))
	assert.Contains(t, err.Error(), "unsupported node type Extension")

	// The walker descends into extension children.
	c := &identCounter{}
	c.Self = c
	Walk(c, n)
	assert.Equal(t, []string{"a"}, c.seen)
}

func TestRewriteRepanicsOtherValues(t *testing.T) {
	assert.PanicsWithValue(t, "boom", func() {
		_, _ = Rewrite(&panicker{}, ident("a", 0))
	})
}

type panicker struct {
	RewriterBase
}

func (*panicker) VisitIdentifier(*Identifier) Node { panic("boom") }
