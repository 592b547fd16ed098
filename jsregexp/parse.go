package jsregexp

import (
	"unicode/utf16"

	"esfront/token"
)

// branchID identifies an alternative of a disjunction. Two group names may
// repeat only when they live in alternatives separated by some common
// disjunction.
type branchID struct {
	parent *branchID
	base   *branchID
}

func newBranch(parent, base *branchID) *branchID {
	b := &branchID{parent: parent, base: base}
	if base == nil {
		b.base = b
	}
	return b
}

func (b *branchID) sibling() *branchID { return newBranch(b.parent, b.base) }

func (b *branchID) separatedFrom(alt *branchID) bool {
	for s := b; s != nil; s = s.parent {
		for o := alt; o != nil; o = o.parent {
			if s.base == o.base && s != o {
				return true
			}
		}
	}
	return false
}

type parser struct {
	src []rune
	pos int

	flags Flags
	u     bool // u or v
	v     bool
	n     bool // named group syntax is active

	numCaptures int // capturing groups in the whole pattern
	groupIndex  int
	maxBackref  int
	lastInt     int

	lastAssertionQuantifiable bool

	branch     *branchID
	groupNames map[string][]*branchID
	nameIndex  map[string]int
	names      []string
	namedRefs  []*Backref
}

func (p *parser) raise(msg string) {
	panic(&SyntaxError{Offset: p.pos, Message: msg})
}

func (p *parser) at(i int) rune {
	if i < len(p.src) {
		return p.src[i]
	}
	return -1
}

func (p *parser) current() rune   { return p.at(p.pos) }
func (p *parser) lookahead() rune { return p.at(p.pos + 1) }

func (p *parser) eat(c rune) bool {
	if p.current() == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) eatChars(cs ...rune) bool {
	for i, c := range cs {
		if p.at(p.pos+i) != c {
			return false
		}
	}
	p.pos += len(cs)
	return true
}

// prescan counts capturing groups and notes whether the pattern contains a
// group name, which turns on \k parsing outside Unicode mode.
func prescan(src []rune) (captures int, named bool) {
	inClass := false
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '(':
			if inClass {
				continue
			}
			if i+1 < len(src) && src[i+1] == '?' {
				if i+3 < len(src) && src[i+2] == '<' && src[i+3] != '=' && src[i+3] != '!' {
					captures++
					named = true
				}
				continue
			}
			captures++
		}
	}
	return captures, named
}

func (p *parser) pattern() Node {
	p.groupNames = map[string][]*branchID{}
	p.nameIndex = map[string]int{}
	p.names = make([]string, p.numCaptures+1)

	n := p.disjunction()
	if p.pos != len(p.src) {
		if p.eat(')') {
			p.raise("Unmatched ')'")
		}
		if p.eat(']') || p.eat('}') {
			p.raise("Lone quantifier brackets")
		}
		if p.current() == '\\' {
			p.raise("\\ at end of pattern")
		}
		p.raise("Unexpected character")
	}
	if p.maxBackref > p.groupIndex {
		p.raise("Invalid escape")
	}
	for _, ref := range p.namedRefs {
		idx, ok := p.nameIndex[ref.Name]
		if !ok {
			p.raise("Invalid named capture referenced")
		}
		ref.Index = idx
	}
	return n
}

func (p *parser) disjunction() Node {
	p.branch = newBranch(p.branch, nil)
	alts := []Node{p.alternative()}
	for p.eat('|') {
		p.branch = p.branch.sibling()
		alts = append(alts, p.alternative())
	}
	p.branch = p.branch.parent

	if _, _, _, ok := p.quantifier(true); ok {
		p.raise("Nothing to repeat")
	}
	if p.eat('{') {
		p.raise("Lone quantifier brackets")
	}
	if len(alts) == 1 {
		return alts[0]
	}
	return &Alternation{Alts: alts}
}

func (p *parser) alternative() Node {
	c := &Concat{}
	for p.pos < len(p.src) {
		t := p.term()
		if t == nil {
			break
		}
		c.Items = append(c.Items, t)
	}
	return c
}

func (p *parser) term() Node {
	if a := p.assertion(); a != nil {
		if p.lastAssertionQuantifiable {
			if min, max, lazy, ok := p.quantifier(false); ok {
				if p.u {
					p.raise("Invalid quantifier")
				}
				return &Repeat{Min: min, Max: max, Lazy: lazy, Body: a}
			}
		}
		return a
	}
	var atom Node
	if p.u {
		atom = p.atom()
	} else {
		atom = p.extendedAtom()
	}
	if atom == nil {
		return nil
	}
	if min, max, lazy, ok := p.quantifier(false); ok {
		return &Repeat{Min: min, Max: max, Lazy: lazy, Body: atom}
	}
	return atom
}

func (p *parser) assertion() Node {
	start := p.pos
	p.lastAssertionQuantifiable = false

	if p.eat('^') {
		return &Assertion{Kind: AssertBegin}
	}
	if p.eat('$') {
		return &Assertion{Kind: AssertEnd}
	}
	if p.eat('\\') {
		if p.eat('B') {
			return &Assertion{Kind: AssertNotWordBoundary}
		}
		if p.eat('b') {
			return &Assertion{Kind: AssertWordBoundary}
		}
		p.pos = start
	}
	if p.eat('(') && p.eat('?') {
		behind := p.eat('<')
		if p.current() == '=' || p.current() == '!' {
			negate := p.current() == '!'
			p.pos++
			body := p.disjunction()
			if !p.eat(')') {
				p.raise("Unterminated group")
			}
			p.lastAssertionQuantifiable = !behind
			return &Look{Behind: behind, Negate: negate, Body: body}
		}
	}
	p.pos = start
	return nil
}

func (p *parser) quantifier(noError bool) (min, max int, lazy, ok bool) {
	switch {
	case p.eat('*'):
		min, max = 0, -1
	case p.eat('+'):
		min, max = 1, -1
	case p.eat('?'):
		min, max = 0, 1
	default:
		if min, max, ok = p.bracedQuantifier(noError); !ok {
			return 0, 0, false, false
		}
	}
	lazy = p.eat('?')
	return min, max, lazy, true
}

func (p *parser) bracedQuantifier(noError bool) (min, max int, ok bool) {
	start := p.pos
	if p.eat('{') {
		if p.decimalDigits() {
			min = p.lastInt
			max = min
			if p.eat(',') {
				if p.decimalDigits() {
					max = p.lastInt
				} else {
					max = -1
				}
			}
			if p.eat('}') {
				if max != -1 && max < min && !noError {
					p.raise("numbers out of order in {} quantifier")
				}
				return min, max, true
			}
		}
		if p.u && !noError {
			p.raise("Incomplete quantifier")
		}
		p.pos = start
	}
	return 0, 0, false
}

const maxCount = 1<<31 - 1

func (p *parser) decimalDigits() bool {
	start := p.pos
	p.lastInt = 0
	for isDecimalDigit(p.current()) {
		if p.lastInt < maxCount/10 {
			p.lastInt = p.lastInt*10 + int(p.current()-'0')
		} else {
			p.lastInt = maxCount
		}
		p.pos++
	}
	return p.pos != start
}

func (p *parser) atom() Node {
	if c := p.current(); c != -1 && !isSyntaxCharacter(c) {
		p.pos++
		return &Char{R: c}
	}
	if p.eat('.') {
		return &Dot{}
	}
	if n := p.reverseSolidusAtomEscape(); n != nil {
		return n
	}
	if n := p.characterClass(); n != nil {
		return n
	}
	return p.group()
}

// extendedAtom is the Annex B atom used outside Unicode mode.
func (p *parser) extendedAtom() Node {
	if p.eat('.') {
		return &Dot{}
	}
	if n := p.reverseSolidusAtomEscape(); n != nil {
		return n
	}
	if n := p.characterClass(); n != nil {
		return n
	}
	if n := p.group(); n != nil {
		return n
	}
	if p.current() == '{' {
		start := p.pos
		if _, _, ok := p.bracedQuantifier(true); ok {
			p.pos = start
			p.raise("Nothing to repeat")
		}
	}
	switch c := p.current(); c {
	case -1, '^', '$', '\\', '.', '*', '+', '?', '(', ')', '[', '|':
		return nil
	default:
		p.pos++
		return &Char{R: c}
	}
}

func (p *parser) reverseSolidusAtomEscape() Node {
	start := p.pos
	if !p.eat('\\') {
		return nil
	}
	if n := p.atomEscape(); n != nil {
		return n
	}
	if !p.u && p.current() == 'c' {
		// \c without a control letter is a literal backslash.
		return &Char{R: '\\'}
	}
	p.pos = start
	return nil
}

func (p *parser) atomEscape() Node {
	if n := p.backReference(); n != nil {
		return n
	}
	if n := p.characterClassEscape(); n != nil {
		return n
	}
	if r, ok := p.characterEscape(); ok {
		return &Char{R: r}
	}
	if p.n && p.eat('k') {
		name, ok := p.groupName()
		if !ok {
			p.raise("Invalid named reference")
		}
		ref := &Backref{Name: name}
		p.namedRefs = append(p.namedRefs, ref)
		return ref
	}
	if p.u {
		if p.current() == 'c' {
			p.raise("Invalid unicode escape")
		}
		p.raise("Invalid escape")
	}
	return nil
}

func (p *parser) backReference() Node {
	start := p.pos
	if c := p.current(); c >= '1' && c <= '9' {
		p.decimalDigits()
		n := p.lastInt
		if p.u {
			if n > p.maxBackref {
				p.maxBackref = n
			}
			return &Backref{Index: n}
		}
		if n <= p.numCaptures {
			return &Backref{Index: n}
		}
		p.pos = start
	}
	return nil
}

func (p *parser) characterClassEscape() Node {
	switch c := p.current(); c {
	case 'd', 'D', 's', 'S', 'w', 'W':
		p.pos++
		return &ClassEscape{Kind: byte(c)}
	case 'p', 'P':
		if !p.u {
			return nil
		}
		negate := c == 'P'
		p.pos++
		if p.eat('{') {
			if prop := p.propertyValueExpression(); prop != nil && p.eat('}') {
				if negate && prop.Strings {
					p.raise("Invalid property name")
				}
				prop.Negate = negate
				return prop
			}
		}
		p.raise("Invalid property name")
	}
	return nil
}

func (p *parser) propertyValueExpression() *Property {
	start := p.pos
	name := p.propertyChars(isPropertyNameChar)
	if name != "" && p.eat('=') {
		value := p.propertyChars(isPropertyValueChar)
		if value != "" {
			prop, msg := resolveProperty(name, value, true, p.v)
			if prop == nil {
				p.raise(msg)
			}
			return prop
		}
	}
	p.pos = start
	if value := p.propertyChars(isPropertyValueChar); value != "" {
		prop, msg := resolveProperty(value, "", false, p.v)
		if prop == nil {
			p.raise(msg)
		}
		return prop
	}
	return nil
}

func (p *parser) propertyChars(ok func(rune) bool) string {
	start := p.pos
	for ok(p.current()) {
		p.pos++
	}
	return string(p.src[start:p.pos])
}

func (p *parser) characterEscape() (rune, bool) {
	start := p.pos
	c := p.current()
	switch c {
	case 't':
		p.pos++
		return '\t', true
	case 'n':
		p.pos++
		return '\n', true
	case 'v':
		p.pos++
		return '\v', true
	case 'f':
		p.pos++
		return '\f', true
	case 'r':
		p.pos++
		return '\r', true
	case 'c':
		if l := p.lookahead(); isControlLetter(l) {
			p.pos += 2
			return l % 32, true
		}
	case '0':
		if !isDecimalDigit(p.lookahead()) {
			p.pos++
			return 0, true
		}
	case 'x':
		p.pos++
		if v, ok := p.fixedHex(2); ok {
			return v, true
		}
		if p.u {
			p.raise("Invalid escape")
		}
		p.pos = start
	case 'u':
		if r, ok := p.unicodeEscape(p.u); ok {
			return r, true
		}
	}
	if !p.u {
		if r, ok := p.legacyOctal(); ok {
			return r, true
		}
	}
	if p.identityEscape() {
		return p.src[p.pos-1], true
	}
	return 0, false
}

// unicodeEscape reads u XXXX or u{X...}; the current position is at 'u'.
func (p *parser) unicodeEscape(unicodeMode bool) (rune, bool) {
	start := p.pos
	if !p.eat('u') {
		return 0, false
	}
	if lead, ok := p.fixedHex(4); ok {
		if unicodeMode && lead >= 0xd800 && lead <= 0xdbff {
			afterLead := p.pos
			if p.eatChars('\\', 'u') {
				if trail, ok := p.fixedHex(4); ok && trail >= 0xdc00 && trail <= 0xdfff {
					return (lead-0xd800)*0x400 + (trail - 0xdc00) + 0x10000, true
				}
			}
			p.pos = afterLead
		}
		return lead, true
	}
	if unicodeMode && p.eat('{') {
		v, ok := p.hexDigits()
		if ok && p.eat('}') && v <= 0x10ffff {
			return v, true
		}
	}
	if unicodeMode {
		p.raise("Invalid unicode escape")
	}
	p.pos = start
	return 0, false
}

func (p *parser) fixedHex(n int) (rune, bool) {
	start := p.pos
	var v rune
	for i := 0; i < n; i++ {
		d := hexValue(p.current())
		if d < 0 {
			p.pos = start
			return 0, false
		}
		v = v*16 + d
		p.pos++
	}
	return v, true
}

func (p *parser) hexDigits() (rune, bool) {
	start := p.pos
	var v rune
	for d := hexValue(p.current()); d >= 0; d = hexValue(p.current()) {
		if v <= 0x10ffff {
			v = v*16 + d
		}
		p.pos++
	}
	return v, p.pos != start
}

func (p *parser) legacyOctal() (rune, bool) {
	n1 := p.current()
	if !isOctalDigit(n1) {
		return 0, false
	}
	p.pos++
	n2 := p.current()
	if !isOctalDigit(n2) {
		return n1 - '0', true
	}
	p.pos++
	n3 := p.current()
	if n1 <= '3' && isOctalDigit(n3) {
		p.pos++
		return (n1-'0')*64 + (n2-'0')*8 + (n3 - '0'), true
	}
	return (n1-'0')*8 + (n2 - '0'), true
}

func (p *parser) identityEscape() bool {
	c := p.current()
	if p.u {
		if isSyntaxCharacter(c) || c == '/' {
			p.pos++
			return true
		}
		return false
	}
	if c != -1 && c != 'c' && (!p.n || c != 'k') {
		p.pos++
		return true
	}
	return false
}

func (p *parser) group() Node {
	if !p.eat('(') {
		return nil
	}
	if p.eat('?') {
		if mods := p.modifiers(); mods != nil || p.eat(':') {
			if mods != nil && !p.eat(':') {
				p.raise("Invalid group")
			}
			body := p.disjunction()
			if !p.eat(')') {
				p.raise("Unterminated group")
			}
			return &Group{Modifiers: mods, Body: body}
		}
		if p.current() != '<' {
			p.raise("Invalid group")
		}
		name, ok := p.groupName()
		if !ok {
			p.raise("Invalid capture group name")
		}
		p.declareName(name)
		return p.capture(name)
	}
	return p.capture("")
}

func (p *parser) capture(name string) Node {
	p.groupIndex++
	g := &Group{Capture: true, Index: p.groupIndex, Name: name}
	if g.Index < len(p.names) {
		p.names[g.Index] = name
	}
	if name != "" {
		if _, ok := p.nameIndex[name]; !ok {
			p.nameIndex[name] = g.Index
		}
	}
	g.Body = p.disjunction()
	if !p.eat(')') {
		p.raise("Unterminated group")
	}
	return g
}

func (p *parser) declareName(name string) {
	known := p.groupNames[name]
	for _, alt := range known {
		if !alt.separatedFrom(p.branch) {
			p.raise("Duplicate capture group name")
		}
	}
	p.groupNames[name] = append(known, p.branch)
}

// modifiers reads the flag part of (?ims-ims:...). It returns nil when the
// group is not a modifiers group.
func (p *parser) modifiers() *Modifiers {
	add, addText := p.modifierFlags()
	hyphen := p.eat('-')
	if addText == "" && !hyphen {
		return nil
	}
	m := &Modifiers{Add: add}
	if hyphen {
		remove, removeText := p.modifierFlags()
		if addText == "" && removeText == "" && p.current() == ':' {
			p.raise("Invalid regular expression modifiers")
		}
		if add&remove != 0 {
			p.raise("Duplicate regular expression modifiers")
		}
		m.Remove = remove
	}
	return m
}

func (p *parser) modifierFlags() (Flags, string) {
	start := p.pos
	var f Flags
	for {
		c := p.current()
		if c != 'i' && c != 'm' && c != 's' {
			break
		}
		bit := flagFor(c)
		if f&bit != 0 {
			p.raise("Duplicate regular expression modifiers")
		}
		f |= bit
		p.pos++
	}
	return f, string(p.src[start:p.pos])
}

// groupName reads <name>; the current position is at '<'.
func (p *parser) groupName() (string, bool) {
	if !p.eat('<') {
		return "", false
	}
	var name []rune
	for first := true; ; first = false {
		c := p.current()
		if c == '\\' {
			p.pos++
			r, ok := p.unicodeEscape(true)
			if !ok {
				return "", false
			}
			c = r
		} else {
			p.pos++
			if lo := p.current(); c >= 0xd800 && c <= 0xdbff && lo >= 0xdc00 && lo <= 0xdfff {
				c = utf16.DecodeRune(c, lo)
				p.pos++
			}
		}
		if c == -1 {
			return "", false
		}
		if !first && c == '>' {
			break
		}
		if first && !isIdentifierStart(c) || !first && !isIdentifierPart(c) {
			return "", false
		}
		name = append(name, c)
	}
	return string(name), len(name) > 0
}

func (p *parser) characterClass() Node {
	if !p.eat('[') {
		return nil
	}
	cls := &Class{Negate: p.eat('^')}
	if p.v {
		items, strings := p.classSetExpression()
		if cls.Negate && strings {
			p.raise("Negated character class may contain strings")
		}
		cls.Items = items
	} else {
		cls.Items = p.classRanges()
	}
	if !p.eat(']') {
		p.raise("Unterminated character class")
	}
	return cls
}

func (p *parser) classRanges() []Node {
	var items []Node
	for {
		left := p.classAtom()
		if left == nil {
			return items
		}
		if !p.eat('-') {
			items = append(items, left)
			continue
		}
		right := p.classAtom()
		if right == nil {
			items = append(items, left, &Char{R: '-'})
			return items
		}
		lc, lok := left.(*Char)
		rc, rok := right.(*Char)
		if !lok || !rok {
			if p.u {
				p.raise("Invalid character class")
			}
			items = append(items, left, &Char{R: '-'}, right)
			continue
		}
		if lc.R > rc.R {
			p.raise("Range out of order in character class")
		}
		items = append(items, &ClassRange{Lo: lc.R, Hi: rc.R})
	}
}

func (p *parser) classAtom() Node {
	start := p.pos
	if p.eat('\\') {
		if n := p.classEscape(); n != nil {
			return n
		}
		if p.u {
			if c := p.current(); c == 'c' || isOctalDigit(c) {
				p.raise("Invalid class escape")
			}
			p.raise("Invalid escape")
		}
		if c := p.current(); c != 'c' && c != -1 {
			p.raise("Invalid escape")
		}
		p.pos = start
	}
	c := p.current()
	if c == -1 || c == ']' {
		return nil
	}
	p.pos++
	return &Char{R: c}
}

func (p *parser) classEscape() Node {
	if p.eat('b') {
		return &Char{R: '\b'}
	}
	if p.u && p.eat('-') {
		return &Char{R: '-'}
	}
	if !p.u && p.current() == 'c' {
		if l := p.lookahead(); isDecimalDigit(l) || l == '_' {
			p.pos += 2
			return &Char{R: l % 32}
		}
	}
	if n := p.characterClassEscape(); n != nil {
		return n
	}
	if r, ok := p.characterEscape(); ok {
		return &Char{R: r}
	}
	return nil
}

// classSetExpression parses the contents of a v-mode class. strings is set
// when the class may match strings longer than one code point.
func (p *parser) classSetExpression() (items []Node, strings bool) {
	if r := p.classSetRange(); r != nil {
		items = append(items, r)
	} else if operand, s := p.classSetOperand(); operand != nil {
		strings = s
		if p.current() == '&' && p.lookahead() == '&' {
			expr := &ClassSetExpr{Op: SetIntersection, Operands: []Node{operand}}
			for p.eatChars('&', '&') {
				if p.current() != '&' {
					if next, s := p.classSetOperand(); next != nil {
						if !s {
							strings = false
						}
						expr.Operands = append(expr.Operands, next)
						continue
					}
				}
				p.raise("Invalid character in character class")
			}
			return []Node{expr}, strings
		}
		if p.current() == '-' && p.lookahead() == '-' {
			expr := &ClassSetExpr{Op: SetSubtraction, Operands: []Node{operand}}
			for p.eatChars('-', '-') {
				next, _ := p.classSetOperand()
				if next == nil {
					p.raise("Invalid character in character class")
				}
				expr.Operands = append(expr.Operands, next)
			}
			return []Node{expr}, strings
		}
		items = append(items, operand)
	} else {
		return nil, false
	}
	for {
		if r := p.classSetRange(); r != nil {
			items = append(items, r)
			continue
		}
		operand, s := p.classSetOperand()
		if operand == nil {
			return items, strings
		}
		if s {
			strings = true
		}
		items = append(items, operand)
	}
}

func (p *parser) classSetRange() Node {
	start := p.pos
	if left, ok := p.classSetCharacter(); ok {
		if p.eat('-') {
			if right, ok := p.classSetCharacter(); ok {
				if left > right {
					p.raise("Range out of order in character class")
				}
				return &ClassRange{Lo: left, Hi: right}
			}
		}
		p.pos = start
	}
	return nil
}

func (p *parser) classSetOperand() (Node, bool) {
	if c, ok := p.classSetCharacter(); ok {
		return &Char{R: c}, false
	}
	if n, s := p.classStringDisjunction(); n != nil {
		return n, s
	}
	return p.nestedClass()
}

func (p *parser) nestedClass() (Node, bool) {
	start := p.pos
	if p.eat('[') {
		cls := &Class{Negate: p.eat('^')}
		items, strings := p.classSetExpression()
		if p.eat(']') {
			if cls.Negate && strings {
				p.raise("Negated character class may contain strings")
			}
			cls.Items = items
			return cls, strings
		}
		p.pos = start
	}
	if p.eat('\\') {
		if n := p.characterClassEscape(); n != nil {
			prop, ok := n.(*Property)
			return n, ok && prop.Strings
		}
		p.pos = start
	}
	return nil, false
}

func (p *parser) classStringDisjunction() (Node, bool) {
	start := p.pos
	if p.eatChars('\\', 'q') {
		if p.eat('{') {
			n := &ClassStrings{}
			strings := false
			for {
				var s []rune
				for {
					c, ok := p.classSetCharacter()
					if !ok {
						break
					}
					s = append(s, c)
				}
				if len(s) != 1 {
					strings = true
				}
				n.Strings = append(n.Strings, string(s))
				if !p.eat('|') {
					break
				}
			}
			if p.eat('}') {
				return n, strings
			}
		} else {
			p.raise("Invalid escape")
		}
		p.pos = start
	}
	return nil, false
}

func (p *parser) classSetCharacter() (rune, bool) {
	start := p.pos
	if p.eat('\\') {
		if r, ok := p.characterEscape(); ok {
			return r, true
		}
		if c := p.current(); isClassSetReservedPunctuator(c) {
			p.pos++
			return c, true
		}
		if p.eat('b') {
			return '\b', true
		}
		p.pos = start
		return 0, false
	}
	c := p.current()
	if c < 0 || c == p.lookahead() && isClassSetReservedDoublePunctuator(c) {
		return 0, false
	}
	if isClassSetSyntaxCharacter(c) {
		return 0, false
	}
	p.pos++
	return c, true
}

func isSyntaxCharacter(c rune) bool {
	switch c {
	case '^', '$', '\\', '.', '*', '+', '?', '(', ')', '[', ']', '{', '}', '|':
		return true
	}
	return false
}

func isClassSetReservedDoublePunctuator(c rune) bool {
	switch c {
	case '!', '#', '$', '%', '&', '*', '+', ',', '.', ':', ';', '<', '=', '>',
		'?', '@', '^', '`', '~':
		return true
	}
	return false
}

func isClassSetSyntaxCharacter(c rune) bool {
	switch c {
	case '(', ')', '[', ']', '{', '}', '/', '-', '\\', '|':
		return true
	}
	return false
}

func isClassSetReservedPunctuator(c rune) bool {
	switch c {
	case '!', '#', '%', '&', ',', '-', ':', ';', '<', '=', '>', '@', '`', '~':
		return true
	}
	return false
}

func isDecimalDigit(c rune) bool { return c >= '0' && c <= '9' }
func isOctalDigit(c rune) bool   { return c >= '0' && c <= '7' }

func isControlLetter(c rune) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}

func isPropertyNameChar(c rune) bool {
	return isControlLetter(c) || c == '_'
}

func isPropertyValueChar(c rune) bool {
	return isPropertyNameChar(c) || isDecimalDigit(c)
}

func isIdentifierStart(c rune) bool { return token.IsIdentifierStart(c) }

func isIdentifierPart(c rune) bool { return token.IsIdentifierPart(c) }

func hexValue(c rune) rune {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return -1
}
