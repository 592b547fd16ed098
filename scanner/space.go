package scanner

import (
	"unicode/utf8"

	"esfront/token"
)

// ScanComments skips whitespace and returns the comments before the next
// token without consuming it.
func (s *Scanner) ScanComments() []Comment {
	var out []Comment
	s.skipSpace(&out)
	return out
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\v', '\f', 0xA0, 0x1680, 0x202F, 0x205F, 0x3000, 0xFEFF:
		return true
	}
	return r >= 0x2000 && r <= 0x200A
}

// skipSpace moves past whitespace and comments, appending the comments to
// out when it is not nil.
func (s *Scanner) skipSpace(out *[]Comment) {
	if s.pos == 0 && len(s.src) > 1 && s.src[0] == '#' && s.src[1] == '!' {
		s.skipLineComment(2, out)
	}
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch c {
		case ' ', '\t', '\v', '\f':
			s.pos++
		case '\n':
			s.pos++
			s.newLine(s.pos)
			s.newline = true
		case '\r':
			s.pos++
			if s.pos < len(s.src) && s.src[s.pos] == '\n' {
				s.pos++
			}
			s.newLine(s.pos)
			s.newline = true
		case '/':
			switch s.peekByte(1) {
			case '*':
				s.skipBlockComment(out)
			case '/':
				s.skipLineComment(2, out)
			default:
				return
			}
		case '<':
			// <!-- is a line comment in scripts.
			if s.opts.Module || s.src[s.pos:min(s.pos+4, len(s.src))] != "<!--" {
				return
			}
			s.skipLineComment(4, out)
		case '-':
			// --> is a line comment at the start of a line in scripts.
			if s.opts.Module || s.src[s.pos:min(s.pos+3, len(s.src))] != "-->" ||
				!(s.newline || s.lastTokEnd == 0) {
				return
			}
			s.skipLineComment(3, out)
		default:
			if c < utf8.RuneSelf {
				return
			}
			r, size := utf8.DecodeRuneInString(s.src[s.pos:])
			switch {
			case r == 0x2028 || r == 0x2029:
				s.pos += size
				s.newLine(s.pos)
				s.newline = true
			case isSpace(r):
				s.pos += size
			default:
				return
			}
		}
	}
}

func (s *Scanner) skipLineComment(startSkip int, out *[]Comment) {
	start := s.pos
	startPos := s.Position(start)
	s.pos += startSkip
	for s.pos < len(s.src) {
		r, size := s.fullCharCodeAtPos()
		if token.IsLineTerminator(r) {
			break
		}
		s.pos += size
	}
	if out != nil && s.opts.Comments {
		*out = append(*out, Comment{
			Value: s.src[start+startSkip : s.pos],
			Start: start,
			End:   s.pos,
			Loc:   s.location(start, startPos),
		})
	}
}

func (s *Scanner) skipBlockComment(out *[]Comment) {
	start := s.pos
	startPos := s.Position(start)
	s.pos += 2
	end := -1
	for s.pos < len(s.src) {
		if s.src[s.pos] == '*' && s.peekByte(1) == '/' {
			end = s.pos
			s.pos += 2
			break
		}
		r, size := s.fullCharCodeAtPos()
		s.pos += size
		if token.IsLineTerminator(r) {
			if r == '\r' && s.pos < len(s.src) && s.src[s.pos] == '\n' {
				s.pos++
			}
			s.newLine(s.pos)
			s.newline = true
		}
	}
	if end < 0 {
		s.raise(start, "Unterminated comment")
		end = s.pos
	}
	if out != nil && s.opts.Comments {
		*out = append(*out, Comment{
			Block: true,
			Value: s.src[start+2 : end],
			Start: start,
			End:   s.pos,
			Loc:   s.location(start, startPos),
		})
	}
}
