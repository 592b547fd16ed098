package token

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

var (
	idStart = rangetable.Merge(
		unicode.L, unicode.Nl, unicode.Other_ID_Start,
	)
	idContinue = rangetable.Merge(
		idStart, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc,
		unicode.Other_ID_Continue,
	)
)

// IsIdentifierStart reports whether r may begin an IdentifierName.
func IsIdentifierStart(r rune) bool {
	if r < utf8.RuneSelf {
		return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '$' || r == '_'
	}
	return unicode.Is(idStart, r) && !unicode.Is(unicode.Pattern_Syntax, r) && !unicode.Is(unicode.Pattern_White_Space, r)
}

// IsIdentifierPart reports whether r may continue an IdentifierName.
func IsIdentifierPart(r rune) bool {
	if r < utf8.RuneSelf {
		return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '$' || r == '_'
	}
	if r == 0x200c || r == 0x200d {
		return true
	}
	return unicode.Is(idContinue, r) && !unicode.Is(unicode.Pattern_Syntax, r) && !unicode.Is(unicode.Pattern_White_Space, r)
}
