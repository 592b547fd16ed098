package jsregexp

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrUnsupported is the root of every translation failure: the pattern is
// valid ECMAScript but the target engine cannot express it.
var ErrUnsupported = errors.New("construct not supported by target engine")

// SyntaxError is an invalid pattern or flags string. Offset is the index of
// the offending code point within the pattern, counted in UTF-16 code units
// when neither u nor v is set.
type SyntaxError struct {
	Pattern string
	Flags   string
	Offset  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Invalid regular expression: /%s/%s: %s", e.Pattern, e.Flags, e.Message)
}

// TranslationError reports a construct that has no faithful equivalent in
// the target engine.
type TranslationError struct {
	Engine    Engine
	Construct string
	err       error
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("cannot translate %s for %s: %v", e.Construct, e.Engine, e.err)
}

func (e *TranslationError) Unwrap() error { return e.err }

func (e *TranslationError) Cause() error { return e.err }

func unsupported(engine Engine, construct string) *TranslationError {
	return &TranslationError{Engine: engine, Construct: construct, err: ErrUnsupported}
}

func compileFailed(engine Engine, err error) *TranslationError {
	return &TranslationError{
		Engine:    engine,
		Construct: "pattern",
		err:       errors.Wrap(ErrUnsupported, err.Error()),
	}
}
