package scanner

import (
	"github.com/pkg/errors"

	"esfront/diag"
	"esfront/jsregexp"
	"esfront/token"
)

// RescanRegExp re-reads a '/' or '/=' token as a regular expression literal.
// The parser calls it where an expression must start.
func (s *Scanner) RescanRegExp(w Word) Word {
	if w.Token != token.T_SLASH && !(w.Token == token.T_ASSIGN && w.Value == "/=") {
		return w
	}
	s.pos = w.Start
	out := Word{NewlineBefore: w.NewlineBefore}
	s.readRegexp(&out, w.Start)
	s.finish(&out, w.Start, w.Loc.Start)
	return out
}

func (s *Scanner) readRegexp(w *Word, start int) {
	s.pos = start + 1
	escaped, inClass := false, false
	terminated := false
	for s.pos < len(s.src) {
		r, size := s.fullCharCodeAtPos()
		if token.IsLineTerminator(r) {
			break
		}
		if !escaped {
			if r == '[' {
				inClass = true
			} else if r == ']' && inClass {
				inClass = false
			} else if r == '/' && !inClass {
				terminated = true
				break
			}
			escaped = r == '\\'
		} else {
			escaped = false
		}
		s.pos += size
	}
	w.Token = token.T_REGEXP
	pattern := s.src[start+1 : s.pos]
	if !terminated {
		s.raise(start, "Unterminated regular expression")
		w.Value = s.src[start:s.pos]
		w.Regex = &jsregexp.Result{Pattern: pattern}
		return
	}
	s.pos++
	flagsStart := s.pos
	flags, escapedFlags := s.readWord1()
	if escapedFlags {
		s.raise(flagsStart, "Unexpected token")
	}
	w.Value = s.src[start:s.pos]
	w.Regex = s.regexValue(start, pattern, flags)
}

// regexValue checks a literal in the configured mode. Pattern errors are
// fatal; a pattern the adapt engine cannot express is reported as
// recoverable and falls back to the validated literal.
func (s *Scanner) regexValue(start int, pattern, flags string) *jsregexp.Result {
	opts := jsregexp.Options{Mode: s.opts.RegexMode, Engine: s.opts.RegexEngine}
	res, err := jsregexp.Parse(pattern, flags, opts)
	if err == nil {
		return res
	}
	var se *jsregexp.SyntaxError
	if errors.As(err, &se) {
		s.handler.Report(s.newError(diag.RegexSyntax, start, se.Error()).WithCause(err))
		return &jsregexp.Result{Pattern: pattern}
	}
	s.handler.Report(s.newError(diag.RegexTranslation, start, err.Error()).WithCause(err))
	opts.Mode = jsregexp.Validate
	if res, err = jsregexp.Parse(pattern, flags, opts); err != nil {
		return &jsregexp.Result{Pattern: pattern}
	}
	return res
}
