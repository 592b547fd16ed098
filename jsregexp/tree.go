package jsregexp

// Node is an element of a parsed pattern.
type Node interface {
	regexpNode()
}

// Alternation is a|b|c. It only appears with two or more alternatives.
type Alternation struct {
	Alts []Node
}

// Concat is a sequence of terms. The empty Concat matches the empty string.
type Concat struct {
	Items []Node
}

// Char is a single literal code point. In non-Unicode mode the pattern is
// read as UTF-16 code units, so a code point above the BMP becomes two
// surrogate Chars and a lone surrogate escape one.
type Char struct {
	R rune
}

type Dot struct{}

type AssertKind int

const (
	AssertBegin AssertKind = iota
	AssertEnd
	AssertWordBoundary
	AssertNotWordBoundary
)

type Assertion struct {
	Kind AssertKind
}

// Look is a lookahead or lookbehind assertion.
type Look struct {
	Behind bool
	Negate bool
	Body   Node
}

// Modifiers holds the flags toggled by a (?ims-ims:...) group.
type Modifiers struct {
	Add    Flags
	Remove Flags
}

type Group struct {
	Capture   bool
	Index     int // 1-based, capturing groups only
	Name      string
	Modifiers *Modifiers
	Body      Node
}

// Repeat is a quantified term. Max is -1 when unbounded.
type Repeat struct {
	Min, Max int
	Lazy     bool
	Body     Node
}

// Backref is \N or \k<name>. Index is resolved for named references once
// the whole pattern has been read; with duplicate names it is the first.
type Backref struct {
	Index int
	Name  string
}

// Class is a bracketed character class.
type Class struct {
	Negate bool
	Items  []Node
}

// ClassRange is lo-hi inside a class; single characters inside classes are
// represented as Char.
type ClassRange struct {
	Lo, Hi rune
}

// ClassEscape is one of \d \D \w \W \s \S.
type ClassEscape struct {
	Kind byte
}

// Property is \p{...} or \P{...}. Name is the canonical property name, Value
// the optional value (for General_Category, Script and Script_Extensions).
type Property struct {
	Negate bool
	Name   string
	Value  string
	// Strings is set for properties of strings (v mode only).
	Strings bool
}

type SetOp int

const (
	SetIntersection SetOp = iota
	SetSubtraction
)

// ClassSetExpr is a v-mode intersection or subtraction of class operands.
type ClassSetExpr struct {
	Op       SetOp
	Operands []Node
}

// ClassStrings is \q{abc|d}.
type ClassStrings struct {
	Strings []string
}

func (*Alternation) regexpNode()  {}
func (*Concat) regexpNode()       {}
func (*Char) regexpNode()         {}
func (*Dot) regexpNode()          {}
func (*Assertion) regexpNode()    {}
func (*Look) regexpNode()         {}
func (*Group) regexpNode()        {}
func (*Repeat) regexpNode()       {}
func (*Backref) regexpNode()      {}
func (*Class) regexpNode()        {}
func (*ClassRange) regexpNode()   {}
func (*ClassEscape) regexpNode()  {}
func (*Property) regexpNode()     {}
func (*ClassSetExpr) regexpNode() {}
func (*ClassStrings) regexpNode() {}
