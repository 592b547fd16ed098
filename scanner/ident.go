package scanner

import (
	"strings"

	"esfront/token"
)

// readWord1 reads an identifier name, decoding \u escapes.
func (s *Scanner) readWord1() (string, bool) {
	var b strings.Builder
	escaped := false
	first := true
	chunkStart := s.pos
	for s.pos < len(s.src) {
		r, size := s.fullCharCodeAtPos()
		if r == '\\' {
			b.WriteString(s.src[chunkStart:s.pos])
			escStart := s.pos
			escaped = true
			s.pos++
			if s.peekByte(0) != 'u' {
				s.raise(s.pos, "Expecting Unicode escape sequence \\uXXXX")
			} else {
				s.pos++
			}
			esc, ok := s.readCodePoint(false)
			if ok {
				valid := token.IsIdentifierPart(esc)
				if first {
					valid = token.IsIdentifierStart(esc)
				}
				if !valid {
					s.raise(escStart, "Invalid Unicode escape")
				}
				b.WriteRune(esc)
			}
			chunkStart = s.pos
		} else if first && token.IsIdentifierStart(r) || !first && token.IsIdentifierPart(r) {
			s.pos += size
		} else {
			break
		}
		first = false
	}
	b.WriteString(s.src[chunkStart:s.pos])
	return b.String(), escaped
}

// readWord reads an identifier or keyword. Escaped keywords keep their
// keyword token with Escaped set; the parser decides whether that is valid.
func (s *Scanner) readWord(w *Word) {
	name, escaped := s.readWord1()
	w.Value = token.Intern(name)
	w.Escaped = escaped
	w.Token = token.T_NAME
	if t, ok := token.Lookup(name); ok {
		w.Token = t
	}
}
