package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttributes(t *testing.T) {
	assert.True(t, T_PARENL.BeforeExpr())
	assert.True(t, T_PARENL.StartsExpr())
	assert.False(t, T_PARENR.BeforeExpr())
	assert.False(t, T_NAME.BeforeExpr())
	assert.True(t, T_EQ.IsAssign())
	assert.True(t, T_INCDEC.Postfix())
	assert.True(t, T_TYPEOF.Prefix())
	assert.True(t, T_WHILE.IsLoop())

	assert.Equal(t, 1, T_LOGICALOR.Binop())
	assert.Equal(t, 10, T_STAR.Binop())
	assert.Equal(t, 7, T_INSTANCEOF.Binop())
	assert.Equal(t, 0, T_STARSTAR.Binop())

	assert.Equal(t, KIND_KEYWORD, T_IF.Kind())
	assert.Equal(t, KIND_PUNCTUATOR, T_ARROW.Kind())
	assert.Equal(t, "Punctuator", T_ARROW.Kind().String())
}

func TestLookup(t *testing.T) {
	tok, ok := Lookup("function")
	assert.True(t, ok)
	assert.Equal(t, T_FUNCTION, tok)

	_, ok = Lookup("let")
	assert.False(t, ok)

	assert.True(t, IsReserved("enum"))
	assert.True(t, IsStrictReserved("yield"))
	assert.False(t, IsReserved("yield"))
	assert.Equal(t, "async", Intern("async"))
}

func TestLineInfo(t *testing.T) {
	src := "a\nbc\r\nd éf"
	assert.Equal(t, Position{1, 0}, LineInfo(src, 0))
	assert.Equal(t, Position{2, 1}, LineInfo(src, 3))
	assert.Equal(t, Position{3, 0}, LineInfo(src, 6))
	// "é" is two bytes but one column.
	assert.Equal(t, Position{3, 3}, LineInfo(src, 10))
	assert.Equal(t, Position{3, 4}, LineInfo(src, len(src)))

	src = "a\u2028b\u2029c"
	assert.Equal(t, Position{2, 0}, LineInfo(src, 4))
	assert.Equal(t, Position{3, 1}, LineInfo(src, len(src)))
}

func TestIdentifierChars(t *testing.T) {
	assert.True(t, IsIdentifierStart('$'))
	assert.False(t, IsIdentifierStart('1'))
	assert.True(t, IsIdentifierPart('1'))
	assert.False(t, IsIdentifierPart(0x7f))
	assert.True(t, IsIdentifierStart('é'))
	assert.True(t, IsIdentifierPart(0x200c))
	assert.False(t, IsIdentifierStart(0x200c))
	assert.False(t, IsIdentifierStart(0x2028))
}
