// Package diag holds the error values produced while scanning and parsing.
package diag

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies an error by the phase that detected it.
type Kind int

const (
	Lexical Kind = iota
	Syntax
	Early
	RegexSyntax
	RegexTranslation
)

func (k Kind) String() string {
	switch k {
	case Lexical:
		return "lexical"
	case Syntax:
		return "syntax"
	case Early:
		return "early"
	case RegexSyntax:
		return "regex syntax"
	case RegexTranslation:
		return "regex translation"
	}
	return "unknown"
}

// Error is a positioned error. Line is 1-based, Column is 0-based and Index
// is the absolute byte offset into the source.
type Error struct {
	Kind        Kind
	Index       int
	Line        int
	Column      int
	Description string
	Source      string
	cause       error
}

func (e *Error) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s (%d:%d) in %s", e.Description, e.Line, e.Column, e.Source)
	}
	return fmt.Sprintf("%s (%d:%d)", e.Description, e.Line, e.Column)
}

// Cause returns the underlying error, e.g. the regex error for a
// RegexSyntax error. It returns nil when there is none.
func (e *Error) Cause() error { return e.cause }

func (e *Error) Unwrap() error { return e.cause }

// Fatal reports whether the error must abort a parse even in tolerant mode.
func (e *Error) Fatal() bool {
	return e.Kind == RegexSyntax
}

// WithCause returns a copy of e carrying cause.
func (e *Error) WithCause(cause error) *Error {
	c := *e
	c.cause = cause
	return &c
}

// List is an ordered list of errors, itself usable as an error.
type List []*Error

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%d errors:", len(l))
	for _, e := range l {
		buf.WriteString("\n\t")
		buf.WriteString(e.Error())
	}
	return buf.String()
}

// Err returns nil for an empty list and the list otherwise.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// Handler decides what happens to a recoverable error: in tolerant mode it is
// recorded and scanning or parsing continues, otherwise it is raised.
type Handler struct {
	Tolerant bool
	// Hook, when set, sees every error before it is recorded or raised.
	Hook   func(*Error)
	errors List
}

// Bailout is the panic value used to unwind to the API boundary.
type Bailout struct {
	Err *Error
}

// Raise unwinds with err. Callers recover it with Recover.
func Raise(err *Error) {
	panic(Bailout{Err: err})
}

// Report hands err to the hook and then records or raises it.
func (h *Handler) Report(err *Error) {
	if h.Hook != nil {
		h.Hook(err)
	}
	if h.Tolerant && !err.Fatal() {
		h.errors = append(h.errors, err)
		return
	}
	Raise(err)
}

// Record appends err without raising, regardless of mode.
func (h *Handler) Record(err *Error) {
	if h.Hook != nil {
		h.Hook(err)
	}
	h.errors = append(h.errors, err)
}

func (h *Handler) Errors() List { return h.errors }

// Truncate drops errors recorded after the first n, when a lookahead is
// abandoned.
func (h *Handler) Truncate(n int) {
	if n < len(h.errors) {
		h.errors = h.errors[:n]
	}
}

// Recover converts a Bailout panic into an error stored in *errp. Any other
// panic is re-raised. Use as `defer diag.Recover(&err)`.
func Recover(errp *error) {
	if r := recover(); r != nil {
		b, ok := r.(Bailout)
		if !ok {
			panic(r)
		}
		*errp = b.Err
	}
}

// Wrap annotates err with msg and a stack trace.
func Wrap(err error, msg string) error {
	return errors.Wrap(err, msg)
}
