// Package scanner turns ECMAScript source text into tokens.
//
// The scanner cannot tell on its own whether a '/' starts a regular
// expression or is a division operator; the parser decides by setting
// RegexAllowed before asking for the next token, or by calling RescanRegExp
// on a '/' or '/=' token found where an expression must start. Template
// literal nesting is tracked by the scanner itself with a stack of brace
// depths.
package scanner

import (
	"math/big"
	"unicode/utf8"

	"esfront/diag"
	"esfront/jsregexp"
	"esfront/token"
)

type Options struct {
	Comments    bool
	Tolerant    bool
	Module      bool
	JSX         bool
	RegexMode   jsregexp.Mode
	RegexEngine jsregexp.Engine
	Source      string
	ErrorHook   func(*diag.Error)
	// Handler, when set, receives errors instead of a handler built from
	// Tolerant and ErrorHook. The parser shares its handler this way.
	Handler *diag.Handler
}

// Word is a token.
type Word struct {
	Token token.Token
	// Value is the identifier name, the operator text, the decoded string
	// value or, for templates, the raw characters with line terminators
	// normalized.
	Value         string
	Raw           string
	Start, End    int
	Loc           token.SourceLocation
	NewlineBefore bool
	// Octal is set for legacy octal and non-octal decimal integer literals
	// and for strings containing octal, \8 or \9 escapes.
	Octal   bool
	Escaped bool
	Number  float64
	BigInt  *big.Int
	Regex   *jsregexp.Result
	// Cooked is nil for templates with invalid escapes.
	Cooked *string
	Tail   bool
}

func (w Word) Kind() token.Kind { return w.Token.Kind() }

// TemplateHead reports whether a template token starts at a backquote,
// as opposed to continuing after a substitution.
func (w Word) TemplateHead() bool {
	return w.Token == token.T_TEMPLATE && len(w.Raw) > 0 && w.Raw[0] == '`'
}

// Comment is a line or block comment. Value excludes the delimiters.
type Comment struct {
	Block      bool
	Value      string
	Start, End int
	Loc        token.SourceLocation
}

type Scanner struct {
	src  string
	opts Options

	pos       int
	line      int
	lineStart int
	// column cache for the current line
	colPos int
	colCol int

	newline bool
	// offset where the last token ended, for the --> comment rule
	lastTokEnd int

	// RegexAllowed makes a '/' start a regular expression literal.
	RegexAllowed bool

	templateStack []int
	braceDepth    int

	handler *diag.Handler
}

func New(src string, opts Options) *Scanner {
	s := &Scanner{src: src, opts: opts, line: 1, RegexAllowed: true}
	s.handler = opts.Handler
	if s.handler == nil {
		s.handler = &diag.Handler{Tolerant: opts.Tolerant, Hook: opts.ErrorHook}
	}
	return s
}

func (s *Scanner) Source() string    { return s.src }
func (s *Scanner) Errors() diag.List { return s.handler.Errors() }

// Pos returns the offset of the next unread byte.
func (s *Scanner) Pos() int { return s.pos }

// Position returns the line and column of a byte offset.
func (s *Scanner) Position(offset int) token.Position {
	if offset < s.lineStart || offset > s.pos {
		return token.LineInfo(s.src, offset)
	}
	if s.colPos < s.lineStart || offset < s.colPos {
		s.colPos, s.colCol = s.lineStart, 0
	}
	s.colCol += utf8.RuneCountInString(s.src[s.colPos:offset])
	s.colPos = offset
	return token.Position{Line: s.line, Column: s.colCol}
}

func (s *Scanner) location(start int, startPos token.Position) token.SourceLocation {
	return token.SourceLocation{Start: startPos, End: s.Position(s.pos), Source: s.opts.Source}
}

// newError builds an error positioned at offset.
func (s *Scanner) newError(kind diag.Kind, offset int, msg string) *diag.Error {
	p := s.Position(offset)
	return &diag.Error{
		Kind:        kind,
		Index:       offset,
		Line:        p.Line,
		Column:      p.Column,
		Description: msg,
		Source:      s.opts.Source,
	}
}

// raise reports a lexical error. In tolerant mode it returns and the caller
// continues with a best-effort token.
func (s *Scanner) raise(offset int, msg string) {
	s.handler.Report(s.newError(diag.Lexical, offset, msg))
}

// State is a snapshot of the scanner, for short lookaheads.
type State struct {
	pos, line, lineStart int
	colPos, colCol       int
	newline              bool
	lastTokEnd           int
	regexAllowed         bool
	templateStack        []int
	braceDepth           int
	errors               int
}

func (s *Scanner) Save() State {
	return State{
		pos:           s.pos,
		line:          s.line,
		lineStart:     s.lineStart,
		colPos:        s.colPos,
		colCol:        s.colCol,
		newline:       s.newline,
		lastTokEnd:    s.lastTokEnd,
		regexAllowed:  s.RegexAllowed,
		templateStack: append([]int(nil), s.templateStack...),
		braceDepth:    s.braceDepth,
		errors:        len(s.handler.Errors()),
	}
}

func (s *Scanner) Restore(st State) {
	s.pos = st.pos
	s.line = st.line
	s.lineStart = st.lineStart
	s.colPos = st.colPos
	s.colCol = st.colCol
	s.newline = st.newline
	s.lastTokEnd = st.lastTokEnd
	s.RegexAllowed = st.regexAllowed
	s.templateStack = st.templateStack
	s.braceDepth = st.braceDepth
	s.handler.Truncate(st.errors)
}

// Lex returns the next token.
func (s *Scanner) Lex() Word {
	for {
		s.skipSpace(nil)
		start := s.pos
		w := Word{Start: start, NewlineBefore: s.newline}
		startPos := s.Position(start)
		if s.pos >= len(s.src) {
			w.Token = token.T_EOF
		} else if !s.readToken(&w) {
			// Tolerant mode skipped an unexpected character.
			continue
		}
		s.finish(&w, start, startPos)
		return w
	}
}

func (s *Scanner) finish(w *Word, start int, startPos token.Position) {
	w.Start = start
	w.End = s.pos
	w.Raw = s.src[start:s.pos]
	w.Loc = s.location(start, startPos)
	s.newline = false
	s.lastTokEnd = s.pos
}

func (s *Scanner) peekByte(i int) byte {
	if s.pos+i < len(s.src) {
		return s.src[s.pos+i]
	}
	return 0
}

// fullCharCodeAtPos decodes the code point at the current position.
func (s *Scanner) fullCharCodeAtPos() (rune, int) {
	if s.pos >= len(s.src) {
		return -1, 0
	}
	c := s.src[s.pos]
	if c < utf8.RuneSelf {
		return rune(c), 1
	}
	return utf8.DecodeRuneInString(s.src[s.pos:])
}

// newLine records a line terminator ending at offset end.
func (s *Scanner) newLine(end int) {
	s.line++
	s.lineStart = end
}

func (s *Scanner) readToken(w *Word) bool {
	c := s.src[s.pos]
	if c < utf8.RuneSelf {
		if isASCIIIdentStart(c) || c == '\\' {
			s.readWord(w)
			return true
		}
	} else if r, _ := s.fullCharCodeAtPos(); token.IsIdentifierStart(r) {
		s.readWord(w)
		return true
	}
	return s.getTokenFromCode(w, c)
}

func (s *Scanner) finishOp(w *Word, t token.Token, size int) bool {
	w.Token = t
	w.Value = s.src[s.pos : s.pos+size]
	s.pos += size
	return true
}

func (s *Scanner) getTokenFromCode(w *Word, c byte) bool {
	switch c {
	case '.':
		return s.readToken_dot(w)
	case '(':
		return s.finishOp(w, token.T_PARENL, 1)
	case ')':
		return s.finishOp(w, token.T_PARENR, 1)
	case ';':
		return s.finishOp(w, token.T_SEMI, 1)
	case ',':
		return s.finishOp(w, token.T_COMMA, 1)
	case '[':
		return s.finishOp(w, token.T_BRACKETL, 1)
	case ']':
		return s.finishOp(w, token.T_BRACKETR, 1)
	case '{':
		s.braceDepth++
		return s.finishOp(w, token.T_BRACEL, 1)
	case '}':
		if n := len(s.templateStack); n > 0 && s.templateStack[n-1] == s.braceDepth {
			s.templateStack = s.templateStack[:n-1]
			s.readTemplate(w)
			return true
		}
		s.braceDepth--
		return s.finishOp(w, token.T_BRACER, 1)
	case ':':
		return s.finishOp(w, token.T_COLON, 1)
	case '`':
		s.readTemplate(w)
		return true
	case '0':
		switch s.peekByte(1) {
		case 'x', 'X':
			s.readRadixNumber(w, 16)
			return true
		case 'o', 'O':
			s.readRadixNumber(w, 8)
			return true
		case 'b', 'B':
			s.readRadixNumber(w, 2)
			return true
		}
		s.readNumber(w, false)
		return true
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		s.readNumber(w, false)
		return true
	case '"', '\'':
		s.readString(w, c)
		return true
	case '/':
		return s.readToken_slash(w)
	case '%', '*':
		return s.readToken_mult_modulo_exp(w, c)
	case '|', '&':
		return s.readToken_pipe_amp(w, c)
	case '^':
		if s.peekByte(1) == '=' {
			return s.finishOp(w, token.T_ASSIGN, 2)
		}
		return s.finishOp(w, token.T_BITWISEXOR, 1)
	case '+', '-':
		return s.readToken_plus_min(w, c)
	case '<', '>':
		return s.readToken_lt_gt(w, c)
	case '=', '!':
		return s.readToken_eq_excl(w, c)
	case '?':
		return s.readToken_question(w)
	case '~':
		return s.finishOp(w, token.T_PREFIX, 1)
	case '#':
		return s.readToken_numberSign(w)
	}
	r, size := s.fullCharCodeAtPos()
	s.raise(s.pos, "Unexpected character '"+string(r)+"'")
	s.pos += size
	return false
}

func (s *Scanner) readToken_dot(w *Word) bool {
	next := s.peekByte(1)
	if next >= '0' && next <= '9' {
		s.readNumber(w, true)
		return true
	}
	if next == '.' && s.peekByte(2) == '.' {
		return s.finishOp(w, token.T_ELLIPSIS, 3)
	}
	return s.finishOp(w, token.T_DOT, 1)
}

func (s *Scanner) readToken_slash(w *Word) bool {
	if s.RegexAllowed {
		s.readRegexp(w, s.pos)
		return true
	}
	if s.peekByte(1) == '=' {
		return s.finishOp(w, token.T_ASSIGN, 2)
	}
	return s.finishOp(w, token.T_SLASH, 1)
}

func (s *Scanner) readToken_mult_modulo_exp(w *Word, c byte) bool {
	size := 1
	t := token.T_MODULO
	if c == '*' {
		t = token.T_STAR
		if s.peekByte(1) == '*' {
			size = 2
			t = token.T_STARSTAR
		}
	}
	if s.peekByte(size) == '=' {
		return s.finishOp(w, token.T_ASSIGN, size+1)
	}
	return s.finishOp(w, t, size)
}

func (s *Scanner) readToken_pipe_amp(w *Word, c byte) bool {
	next := s.peekByte(1)
	if next == c {
		if s.peekByte(2) == '=' {
			return s.finishOp(w, token.T_ASSIGN, 3)
		}
		if c == '|' {
			return s.finishOp(w, token.T_LOGICALOR, 2)
		}
		return s.finishOp(w, token.T_LOGICALAND, 2)
	}
	if next == '=' {
		return s.finishOp(w, token.T_ASSIGN, 2)
	}
	if c == '|' {
		return s.finishOp(w, token.T_BITWISEOR, 1)
	}
	return s.finishOp(w, token.T_BITWISEAND, 1)
}

func (s *Scanner) readToken_plus_min(w *Word, c byte) bool {
	next := s.peekByte(1)
	if next == c {
		return s.finishOp(w, token.T_INCDEC, 2)
	}
	if next == '=' {
		return s.finishOp(w, token.T_ASSIGN, 2)
	}
	return s.finishOp(w, token.T_PLUSMIN, 1)
}

func (s *Scanner) readToken_lt_gt(w *Word, c byte) bool {
	next := s.peekByte(1)
	if next == c {
		size := 2
		if c == '>' && s.peekByte(2) == '>' {
			size = 3
		}
		if s.peekByte(size) == '=' {
			return s.finishOp(w, token.T_ASSIGN, size+1)
		}
		return s.finishOp(w, token.T_BITSHIFT, size)
	}
	if next == '=' {
		return s.finishOp(w, token.T_RELATIONAL, 2)
	}
	return s.finishOp(w, token.T_RELATIONAL, 1)
}

func (s *Scanner) readToken_eq_excl(w *Word, c byte) bool {
	next := s.peekByte(1)
	if c == '=' && next == '>' {
		return s.finishOp(w, token.T_ARROW, 2)
	}
	if next == '=' {
		size := 2
		if s.peekByte(2) == '=' {
			size = 3
		}
		return s.finishOp(w, token.T_EQUALITY, size)
	}
	if c == '=' {
		return s.finishOp(w, token.T_EQ, 1)
	}
	return s.finishOp(w, token.T_PREFIX, 1)
}

func (s *Scanner) readToken_question(w *Word) bool {
	next := s.peekByte(1)
	if next == '.' {
		if d := s.peekByte(2); d < '0' || d > '9' {
			return s.finishOp(w, token.T_QUESTIONDOT, 2)
		}
	}
	if next == '?' {
		if s.peekByte(2) == '=' {
			return s.finishOp(w, token.T_ASSIGN, 3)
		}
		return s.finishOp(w, token.T_COALESCE, 2)
	}
	return s.finishOp(w, token.T_QUESTION, 1)
}

func (s *Scanner) readToken_numberSign(w *Word) bool {
	start := s.pos
	s.pos++
	r, _ := s.fullCharCodeAtPos()
	if token.IsIdentifierStart(r) || r == '\\' {
		name, escaped := s.readWord1()
		w.Token = token.T_PRIVATEID
		w.Value = name
		w.Escaped = escaped
		return true
	}
	s.raise(start, "Unexpected character '#'")
	return false
}

func isASCIIIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '$' || c == '_'
}
