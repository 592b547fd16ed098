package jsregexp

import "strings"

// Flags is the set of flags of a regular expression literal.
type Flags uint8

const (
	FlagHasIndices  Flags = 1 << iota // d
	FlagGlobal                        // g
	FlagIgnoreCase                    // i
	FlagMultiline                     // m
	FlagDotAll                        // s
	FlagUnicode                       // u
	FlagUnicodeSets                   // v
	FlagSticky                        // y
)

const flagLetters = "dgimsuvy"

func flagFor(c rune) Flags {
	if i := strings.IndexRune(flagLetters, c); i >= 0 {
		return 1 << uint(i)
	}
	return 0
}

// ParseFlags validates and decodes a flags string.
func ParseFlags(s string) (Flags, error) {
	var f Flags
	for _, c := range s {
		bit := flagFor(c)
		if bit == 0 {
			return 0, &SyntaxError{Message: "Invalid regular expression flag"}
		}
		if f&bit != 0 {
			return 0, &SyntaxError{Message: "Duplicate regular expression flag"}
		}
		f |= bit
	}
	if f&FlagUnicode != 0 && f&FlagUnicodeSets != 0 {
		return 0, &SyntaxError{Message: "Invalid regular expression flag"}
	}
	return f, nil
}

func (f Flags) Has(bit Flags) bool { return f&bit != 0 }

// Unicode reports whether either of the u or v flags is set.
func (f Flags) Unicode() bool { return f&(FlagUnicode|FlagUnicodeSets) != 0 }

func (f Flags) String() string {
	var b strings.Builder
	for i, c := range flagLetters {
		if f&(1<<uint(i)) != 0 {
			b.WriteRune(c)
		}
	}
	return b.String()
}
