package token

import (
	"fmt"
	"unicode/utf8"
)

// Position is a line/column pair. Lines are 1-based, columns are 0-based
// and counted in code points.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Offset returns the position n columns to the right of p.
func (p Position) Offset(n int) Position {
	return Position{Line: p.Line, Column: p.Column + n}
}

type SourceLocation struct {
	Start  Position
	End    Position
	Source string
}

// Range is a [start, end) pair of byte offsets into the source.
type Range [2]int

func (r Range) Start() int { return r[0] }
func (r Range) End() int   { return r[1] }

// IsLineTerminator reports whether r is one of the four ECMAScript line
// terminators.
func IsLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == 0x2028 || r == 0x2029
}

// nextLineBreak returns the offset just past the first line terminator in
// src[from:end], or -1.
func nextLineBreak(src string, from, end int) int {
	for i := from; i < end; {
		c := src[i]
		switch {
		case c == '\n':
			return i + 1
		case c == '\r':
			if i+1 < end && src[i+1] == '\n' {
				return i + 2
			}
			return i + 1
		case c < utf8.RuneSelf:
			i++
		default:
			r, size := utf8.DecodeRuneInString(src[i:])
			if r == 0x2028 || r == 0x2029 {
				return i + size
			}
			i += size
		}
	}
	return -1
}

// LineInfo computes the position of the byte offset in src by counting line
// terminators from the start of the input. The scanner tracks positions
// incrementally; this is used for error reporting and tests.
func LineInfo(src string, offset int) Position {
	if offset > len(src) {
		offset = len(src)
	}
	line, cur := 1, 0
	for {
		next := nextLineBreak(src, cur, offset)
		if next < 0 {
			return Position{Line: line, Column: utf8.RuneCountInString(src[cur:offset])}
		}
		line++
		cur = next
	}
}
