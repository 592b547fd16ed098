package scanner

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"esfront/token"
)

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return 99
}

// readInt reads digits in radix with optional numeric separators and returns
// how many bytes it consumed.
func (s *Scanner) readInt(radix int, legacyOctal bool) int {
	start := s.pos
	legacy := legacyOctal && s.peekByte(0) == '0'
	var last byte
	for i := 0; s.pos < len(s.src); i, s.pos = i+1, s.pos+1 {
		c := s.src[s.pos]
		if c == '_' {
			if legacy {
				s.raise(s.pos, "Numeric separator is not allowed in legacy octal numeric literals")
			}
			if last == '_' {
				s.raise(s.pos, "Numeric separator must be exactly one underscore")
			}
			if i == 0 {
				s.raise(s.pos, "Numeric separator is not allowed at the first of digits")
			}
			last = c
			continue
		}
		if digitValue(c) >= radix {
			break
		}
		last = c
	}
	if last == '_' {
		s.raise(s.pos-1, "Numeric separator is not allowed at the last of digits")
	}
	return s.pos - start
}

func (s *Scanner) checkIdentifierAfterNumber() {
	if r, _ := s.fullCharCodeAtPos(); r >= 0 && token.IsIdentifierStart(r) {
		s.raise(s.pos, "Identifier directly after number")
	}
}

func (s *Scanner) readRadixNumber(w *Word, radix int) {
	start := s.pos
	s.pos += 2
	if s.readInt(radix, false) == 0 {
		s.raise(start+2, "Expected number in radix "+strconv.Itoa(radix))
	}
	digits := strings.ReplaceAll(s.src[start+2:s.pos], "_", "")
	w.Token = token.T_NUM
	n, ok := new(big.Int).SetString(digits, radix)
	if !ok {
		n = new(big.Int)
	}
	if s.peekByte(0) == 'n' {
		s.pos++
		w.BigInt = n
	}
	w.Number, _ = new(big.Float).SetInt(n).Float64()
	w.Value = s.src[start:s.pos]
	s.checkIdentifierAfterNumber()
}

func (s *Scanner) readNumber(w *Word, startsWithDot bool) {
	start := s.pos
	if !startsWithDot && s.readInt(10, true) == 0 {
		s.raise(start, "Invalid number")
	}
	leadingZero := s.pos-start >= 2 && s.src[start] == '0'
	octal := leadingZero && strings.IndexAny(s.src[start:s.pos], "89") < 0
	w.Token = token.T_NUM
	w.Octal = leadingZero

	next := s.peekByte(0)
	if !leadingZero && !startsWithDot && next == 'n' {
		digits := strings.ReplaceAll(s.src[start:s.pos], "_", "")
		s.pos++
		n, _ := new(big.Int).SetString(digits, 10)
		w.BigInt = n
		w.Number, _ = new(big.Float).SetInt(n).Float64()
		w.Value = s.src[start:s.pos]
		s.checkIdentifierAfterNumber()
		return
	}
	if next == '.' && !octal {
		s.pos++
		s.readInt(10, false)
		next = s.peekByte(0)
	}
	if (next == 'e' || next == 'E') && !octal {
		s.pos++
		if c := s.peekByte(0); c == '+' || c == '-' {
			s.pos++
		}
		if s.readInt(10, false) == 0 {
			s.raise(start, "Invalid number")
		}
	}
	s.checkIdentifierAfterNumber()

	text := strings.ReplaceAll(s.src[start:s.pos], "_", "")
	w.Value = s.src[start:s.pos]
	if octal {
		n, _ := new(big.Int).SetString(text[1:], 8)
		if n != nil {
			w.Number, _ = new(big.Float).SetInt(n).Float64()
		}
		return
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !math.IsInf(f, 0) {
		f = 0
	}
	w.Number = f
}

// wtf8 accumulates string values. Escaped surrogate pairs are joined and
// lone surrogates are kept in the generalized UTF-8 encoding, which
// utf8.DecodeRuneInString reports as invalid.
type wtf8 struct {
	b    strings.Builder
	high rune
}

func isHighSurrogate(r rune) bool { return r >= 0xD800 && r <= 0xDBFF }
func isLowSurrogate(r rune) bool  { return r >= 0xDC00 && r <= 0xDFFF }

func (w *wtf8) flush() {
	if w.high != 0 {
		writeSurrogate(&w.b, w.high)
		w.high = 0
	}
}

func writeSurrogate(b *strings.Builder, r rune) {
	b.WriteByte(byte(0xE0 | r>>12))
	b.WriteByte(byte(0x80 | (r>>6)&0x3F))
	b.WriteByte(byte(0x80 | r&0x3F))
}

func (w *wtf8) WriteRune(r rune) {
	if w.high != 0 && isLowSurrogate(r) {
		w.b.WriteRune((w.high-0xD800)<<10 + (r - 0xDC00) + 0x10000)
		w.high = 0
		return
	}
	w.flush()
	switch {
	case isHighSurrogate(r):
		w.high = r
	case isLowSurrogate(r):
		writeSurrogate(&w.b, r)
	default:
		w.b.WriteRune(r)
	}
}

func (w *wtf8) WriteString(s string) {
	if s == "" {
		return
	}
	w.flush()
	w.b.WriteString(s)
}

func (w *wtf8) String() string {
	w.flush()
	return w.b.String()
}

func (s *Scanner) readString(w *Word, quote byte) {
	start := s.pos
	s.pos++
	var out wtf8
	chunkStart := s.pos
	for {
		if s.pos >= len(s.src) {
			s.raise(start, "Unterminated string constant")
			break
		}
		c := s.src[s.pos]
		if c == quote {
			out.WriteString(s.src[chunkStart:s.pos])
			s.pos++
			break
		}
		if c == '\\' {
			out.WriteString(s.src[chunkStart:s.pos])
			s.readEscapedChar(&out, w, false)
			chunkStart = s.pos
			continue
		}
		if c == '\n' || c == '\r' {
			s.raise(start, "Unterminated string constant")
			out.WriteString(s.src[chunkStart:s.pos])
			break
		}
		r, size := s.fullCharCodeAtPos()
		s.pos += size
		if r == 0x2028 || r == 0x2029 {
			s.newLine(s.pos)
		}
	}
	w.Token = token.T_STRING
	w.Value = out.String()
}

// readEscapedChar decodes the escape at the backslash under the cursor. It
// returns false for an escape that is invalid in a template, without
// reporting it.
func (s *Scanner) readEscapedChar(out *wtf8, w *Word, inTemplate bool) bool {
	s.pos++
	if s.pos >= len(s.src) {
		if !inTemplate {
			s.raise(s.pos-1, "Invalid escape sequence")
		}
		return false
	}
	c := s.src[s.pos]
	s.pos++
	switch c {
	case 'n':
		out.WriteRune('\n')
	case 'r':
		out.WriteRune('\r')
	case 't':
		out.WriteRune('\t')
	case 'b':
		out.WriteRune('\b')
	case 'v':
		out.WriteRune('\v')
	case 'f':
		out.WriteRune('\f')
	case 'x':
		r, ok := s.readHexChar(2)
		if !ok {
			return s.badEscape(s.pos, inTemplate)
		}
		out.WriteRune(r)
	case 'u':
		r, ok := s.readCodePoint(inTemplate)
		if !ok {
			return false
		}
		out.WriteRune(r)
	case '\r':
		if s.peekByte(0) == '\n' {
			s.pos++
		}
		s.newLine(s.pos)
	case '\n':
		s.newLine(s.pos)
	case '8', '9':
		if inTemplate {
			return false
		}
		w.Octal = true
		out.WriteRune(rune(c))
	default:
		if c >= '0' && c <= '7' {
			begin := s.pos - 1
			end := begin + 1
			for end < len(s.src) && end-begin < 3 && s.src[end] >= '0' && s.src[end] <= '7' {
				end++
			}
			n, _ := strconv.ParseUint(s.src[begin:end], 8, 32)
			if n > 255 {
				end--
				n, _ = strconv.ParseUint(s.src[begin:end], 8, 32)
			}
			s.pos = end
			next := s.peekByte(0)
			if end-begin > 1 || c != '0' || next == '8' || next == '9' {
				if inTemplate {
					return false
				}
				w.Octal = true
			}
			out.WriteRune(rune(n))
			return true
		}
		s.pos--
		r, size := s.fullCharCodeAtPos()
		s.pos += size
		if r == 0x2028 || r == 0x2029 {
			s.newLine(s.pos)
			return true
		}
		out.WriteRune(r)
	}
	return true
}

func (s *Scanner) badEscape(offset int, inTemplate bool) bool {
	if !inTemplate {
		s.raise(offset, "Bad character escape sequence")
	}
	return false
}

// readHexChar reads exactly n hex digits.
func (s *Scanner) readHexChar(n int) (rune, bool) {
	if s.pos+n > len(s.src) {
		return 0, false
	}
	v, err := strconv.ParseUint(s.src[s.pos:s.pos+n], 16, 32)
	if err != nil {
		return 0, false
	}
	s.pos += n
	return rune(v), true
}

// readCodePoint reads the digits of a \u escape, either four hex digits or a
// braced code point.
func (s *Scanner) readCodePoint(inTemplate bool) (rune, bool) {
	if s.peekByte(0) != '{' {
		codePos := s.pos
		r, ok := s.readHexChar(4)
		if !ok {
			return 0, s.badEscape(codePos, inTemplate)
		}
		return r, true
	}
	s.pos++
	codePos := s.pos
	end := strings.IndexByte(s.src[s.pos:], '}')
	if end <= 0 {
		return 0, s.badEscape(codePos, inTemplate)
	}
	digits := s.src[s.pos : s.pos+end]
	for i := 0; i < len(digits); i++ {
		if digitValue(digits[i]) >= 16 {
			return 0, s.badEscape(codePos, inTemplate)
		}
	}
	digits = strings.TrimLeft(digits, "0")
	var v uint64
	if len(digits) <= 8 {
		v, _ = strconv.ParseUint("0"+digits, 16, 64)
	}
	if len(digits) > 8 || v > utf8.MaxRune {
		if !inTemplate {
			s.raise(codePos, "Code point out of bounds")
		}
		return 0, false
	}
	s.pos += end + 1
	return rune(v), true
}

// readTemplate reads a template span starting at '`' or at the '}' closing
// a substitution, up to the next '`' or '${'.
func (s *Scanner) readTemplate(w *Word) {
	start := s.pos
	s.pos++
	var cooked wtf8
	valid := true
	chunkStart := s.pos
	contentEnd := -1
	for {
		if s.pos >= len(s.src) {
			s.raise(start, "Unterminated template")
			cooked.WriteString(s.src[chunkStart:s.pos])
			contentEnd = s.pos
			w.Tail = true
			break
		}
		c := s.src[s.pos]
		if c == '`' || c == '$' && s.peekByte(1) == '{' {
			cooked.WriteString(s.src[chunkStart:s.pos])
			contentEnd = s.pos
			if c == '`' {
				s.pos++
				w.Tail = true
			} else {
				s.pos += 2
				s.templateStack = append(s.templateStack, s.braceDepth)
			}
			break
		}
		switch c {
		case '\\':
			cooked.WriteString(s.src[chunkStart:s.pos])
			if !s.readEscapedChar(&cooked, w, true) {
				valid = false
			}
			chunkStart = s.pos
		case '\r', '\n':
			cooked.WriteString(s.src[chunkStart:s.pos])
			s.pos++
			if c == '\r' && s.peekByte(0) == '\n' {
				s.pos++
			}
			cooked.WriteRune('\n')
			s.newLine(s.pos)
			chunkStart = s.pos
		default:
			r, size := s.fullCharCodeAtPos()
			s.pos += size
			if r == 0x2028 || r == 0x2029 {
				s.newLine(s.pos)
			}
		}
	}
	w.Token = token.T_TEMPLATE
	w.Value = normalizeNewlines(s.src[start+1 : contentEnd])
	if valid {
		v := cooked.String()
		w.Cooked = &v
	}
}

func normalizeNewlines(s string) string {
	if strings.IndexByte(s, '\r') < 0 {
		return s
	}
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\r", "\n")
}
