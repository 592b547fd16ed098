package scanner

import (
	"html"
	"strings"

	"esfront/token"
)

// advance moves past one code point, counting line terminators.
func (s *Scanner) advance() {
	r, size := s.fullCharCodeAtPos()
	s.pos += size
	switch r {
	case '\r':
		if s.peekByte(0) == '\n' {
			s.pos++
		}
		s.newLine(s.pos)
	case '\n', 0x2028, 0x2029:
		s.newLine(s.pos)
	}
}

// LexJSXChild reads the next token between JSX tags: text, '{', '<' or EOF.
func (s *Scanner) LexJSXChild() Word {
	start := s.pos
	startPos := s.Position(start)
	w := Word{Start: start, NewlineBefore: s.newline}
	if s.pos >= len(s.src) {
		w.Token = token.T_EOF
		s.finish(&w, start, startPos)
		return w
	}
	switch s.src[s.pos] {
	case '{':
		s.braceDepth++
		s.finishOp(&w, token.T_BRACEL, 1)
		s.finish(&w, start, startPos)
		return w
	case '<':
		s.finishOp(&w, token.T_RELATIONAL, 1)
		s.finish(&w, start, startPos)
		return w
	}
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if c == '{' || c == '<' {
			break
		}
		if c == '>' || c == '}' {
			s.raise(s.pos, "Unexpected token `"+string(c)+"`. Did you mean `"+
				jsxEscape(c)+"` or `{'"+string(c)+"'}`?")
		}
		s.advance()
	}
	w.Token = token.T_JSXTEXT
	w.Value = decodeEntities(s.src[start:s.pos])
	s.finish(&w, start, startPos)
	return w
}

func jsxEscape(c byte) string {
	if c == '>' {
		return "&gt;"
	}
	return "&rbrace;"
}

// LexJSXTag reads the next token inside a JSX tag.
func (s *Scanner) LexJSXTag() Word {
	s.skipSpace(nil)
	start := s.pos
	startPos := s.Position(start)
	w := Word{Start: start, NewlineBefore: s.newline}
	if s.pos >= len(s.src) {
		w.Token = token.T_EOF
		s.finish(&w, start, startPos)
		return w
	}
	c := s.src[s.pos]
	switch c {
	case '<', '>':
		s.finishOp(&w, token.T_RELATIONAL, 1)
	case '/':
		s.finishOp(&w, token.T_SLASH, 1)
	case '=':
		s.finishOp(&w, token.T_EQ, 1)
	case ':':
		s.finishOp(&w, token.T_COLON, 1)
	case '.':
		s.finishOp(&w, token.T_DOT, 1)
	case '{':
		s.braceDepth++
		s.finishOp(&w, token.T_BRACEL, 1)
	case '}':
		s.braceDepth--
		s.finishOp(&w, token.T_BRACER, 1)
	case '"', '\'':
		s.readJSXString(&w, c)
	default:
		if r, _ := s.fullCharCodeAtPos(); token.IsIdentifierStart(r) {
			s.readJSXWord(&w)
		} else if !s.readToken(&w) {
			return s.LexJSXTag()
		}
	}
	s.finish(&w, start, startPos)
	return w
}

func (s *Scanner) readJSXWord(w *Word) {
	start := s.pos
	for s.pos < len(s.src) {
		r, size := s.fullCharCodeAtPos()
		if r != '-' && !token.IsIdentifierPart(r) {
			break
		}
		s.pos += size
	}
	w.Token = token.T_JSXNAME
	w.Value = s.src[start:s.pos]
}

func (s *Scanner) readJSXString(w *Word, quote byte) {
	start := s.pos
	s.pos++
	for {
		if s.pos >= len(s.src) {
			s.raise(start, "Unterminated string constant")
			w.Value = decodeEntities(s.src[start+1 : s.pos])
			break
		}
		if s.src[s.pos] == quote {
			w.Value = decodeEntities(s.src[start+1 : s.pos])
			s.pos++
			break
		}
		s.advance()
	}
	w.Token = token.T_STRING
}

// decodeEntities replaces terminated character references such as &amp;,
// &#123; and &#x7B;. Unknown or unterminated references stay as written.
func decodeEntities(text string) string {
	if strings.IndexByte(text, '&') < 0 {
		return text
	}
	var b strings.Builder
	for {
		i := strings.IndexByte(text, '&')
		if i < 0 {
			b.WriteString(text)
			break
		}
		b.WriteString(text[:i])
		text = text[i:]
		end := strings.IndexByte(text, ';')
		if end < 0 || end > 10 {
			b.WriteByte('&')
			text = text[1:]
			continue
		}
		ref := text[:end+1]
		if dec := html.UnescapeString(ref); dec != ref {
			b.WriteString(dec)
		} else {
			b.WriteString(ref)
		}
		text = text[end+1:]
	}
	return b.String()
}
