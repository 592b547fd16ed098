package diag

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorString(t *testing.T) {
	e := &Error{Kind: Syntax, Index: 4, Line: 1, Column: 4, Description: "Unexpected token"}
	assert.Equal(t, "Unexpected token (1:4)", e.Error())

	e.Source = "a.js"
	assert.Equal(t, "Unexpected token (1:4) in a.js", e.Error())
}

func TestHandlerTolerant(t *testing.T) {
	var seen []*Error
	h := &Handler{Tolerant: true, Hook: func(e *Error) { seen = append(seen, e) }}

	h.Report(&Error{Kind: Lexical, Description: "one"})
	h.Report(&Error{Kind: Early, Description: "two"})
	require.Len(t, h.Errors(), 2)
	assert.Len(t, seen, 2)
	assert.Equal(t, "2 errors:\n\tone (0:0)\n\ttwo (0:0)", h.Errors().Error())
}

func TestHandlerRaises(t *testing.T) {
	run := func(h *Handler, e *Error) (err error) {
		defer Recover(&err)
		h.Report(e)
		return nil
	}

	err := run(&Handler{}, &Error{Kind: Syntax, Description: "boom"})
	require.Error(t, err)
	var de *Error
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "boom", de.Description)

	// Regex errors abort even in tolerant mode.
	h := &Handler{Tolerant: true}
	err = run(h, &Error{Kind: RegexSyntax, Description: "bad"})
	assert.Error(t, err)
	assert.Empty(t, h.Errors())
}

func TestCause(t *testing.T) {
	cause := errors.New("inner")
	e := (&Error{Kind: RegexSyntax}).WithCause(cause)
	assert.True(t, errors.Is(e, cause))
	assert.Equal(t, cause, e.Cause())
	assert.Nil(t, List(nil).Err())
}
