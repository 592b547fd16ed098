package jsregexp

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/dlclark/regexp2"
)

// re2MaxRepeat is the largest repetition count Go's regexp accepts.
const re2MaxRepeat = 1000

type translator struct {
	engine Engine
	flags  Flags // effective flags, changed by modifier groups
	names  map[string]bool
	buf    strings.Builder
}

func translate(res *Result, engine Engine) (adapted string, err error) {
	t := &translator{engine: engine, flags: res.Flags, names: map[string]bool{}}
	defer func() {
		if r := recover(); r != nil {
			te, ok := r.(*TranslationError)
			if !ok {
				panic(r)
			}
			err = te
		}
	}()
	if engine == RE2 && res.Flags.Has(FlagIgnoreCase) {
		t.buf.WriteString("(?i)")
	}
	t.node(res.Tree)
	return t.buf.String(), nil
}

func (t *translator) fail(construct string) {
	panic(unsupported(t.engine, construct))
}

func (t *translator) node(n Node) {
	switch n := n.(type) {
	case *Alternation:
		for i, alt := range n.Alts {
			if i > 0 {
				t.buf.WriteByte('|')
			}
			t.node(alt)
		}
	case *Concat:
		t.concat(n.Items)
	case *Char:
		if isSurrogate(n.R) {
			t.fail("lone surrogate")
		}
		t.literal(n.R, false)
	case *Dot:
		t.dot()
	case *Assertion:
		t.assertion(n.Kind)
	case *Look:
		if t.engine == RE2 {
			t.fail("lookaround assertion")
		}
		switch {
		case n.Behind && n.Negate:
			t.buf.WriteString("(?<!")
		case n.Behind:
			t.buf.WriteString("(?<=")
		case n.Negate:
			t.buf.WriteString("(?!")
		default:
			t.buf.WriteString("(?=")
		}
		t.node(n.Body)
		t.buf.WriteByte(')')
	case *Group:
		t.group(n)
	case *Repeat:
		t.repeat(n)
	case *Backref:
		if t.engine == RE2 {
			t.fail("backreference")
		}
		if n.Name != "" {
			fmt.Fprintf(&t.buf, `\k<%s>`, n.Name)
		} else {
			fmt.Fprintf(&t.buf, `\%d(?:)`, n.Index)
		}
	case *Class:
		t.class(n)
	case *ClassEscape, *Property:
		t.buf.WriteByte('[')
		t.classItem(n)
		t.buf.WriteByte(']')
	default:
		t.fail(fmt.Sprintf("%T", n))
	}
}

// concat joins surrogate pairs written as two escapes into one code point.
func (t *translator) concat(items []Node) {
	for i := 0; i < len(items); i++ {
		if lead, ok := items[i].(*Char); ok && lead.R >= 0xd800 && lead.R <= 0xdbff && i+1 < len(items) {
			if trail, ok := items[i+1].(*Char); ok && trail.R >= 0xdc00 && trail.R <= 0xdfff {
				t.literal((lead.R-0xd800)*0x400+(trail.R-0xdc00)+0x10000, false)
				i++
				continue
			}
		}
		t.node(items[i])
	}
}

// dot matches one code unit outside Unicode mode, so there it never
// matches a code point above the BMP.
func (t *translator) dot() {
	if !t.flags.Unicode() {
		rs := []runeRange{{0, 0xffff}}
		if !t.flags.Has(FlagDotAll) {
			rs = clipBMP(complementRanges(lineTerminators))
		}
		t.buf.WriteByte('[')
		t.ranges(rs)
		t.buf.WriteByte(']')
		return
	}
	if t.flags.Has(FlagDotAll) {
		if t.engine == RE2 {
			t.buf.WriteString("(?s:.)")
		} else {
			t.buf.WriteString(`[\s\S]`)
		}
		return
	}
	t.buf.WriteString("[^")
	t.ranges(lineTerminators)
	t.buf.WriteByte(']')
}

func (t *translator) assertion(kind AssertKind) {
	multiline := t.flags.Has(FlagMultiline)
	switch kind {
	case AssertBegin:
		switch {
		case !multiline:
			t.buf.WriteByte('^')
		case t.engine == RE2:
			t.buf.WriteString("(?m:^)")
		default:
			t.buf.WriteString("(?<![^")
			t.ranges(lineTerminators)
			t.buf.WriteString("])")
		}
	case AssertEnd:
		switch {
		case !multiline && t.engine == RE2:
			t.buf.WriteByte('$')
		case !multiline:
			t.buf.WriteString(`\z`)
		case t.engine == RE2:
			t.buf.WriteString("(?m:$)")
		default:
			t.buf.WriteString("(?![^")
			t.ranges(lineTerminators)
			t.buf.WriteString("])")
		}
	case AssertWordBoundary:
		t.buf.WriteString(`\b`)
	case AssertNotWordBoundary:
		t.buf.WriteString(`\B`)
	}
}

func (t *translator) group(g *Group) {
	saved := t.flags
	defer func() { t.flags = saved }()

	switch {
	case g.Capture && g.Name != "":
		if !isWordName(g.Name, t.engine) {
			t.fail("group name " + g.Name)
		}
		if t.names[g.Name] && t.engine == RE2 {
			t.fail("duplicate group name " + g.Name)
		}
		t.names[g.Name] = true
		if t.engine == RE2 {
			fmt.Fprintf(&t.buf, "(?P<%s>", g.Name)
		} else {
			fmt.Fprintf(&t.buf, "(?<%s>", g.Name)
		}
	case g.Capture:
		t.buf.WriteByte('(')
	case g.Modifiers != nil:
		t.flags = (t.flags | g.Modifiers.Add) &^ g.Modifiers.Remove
		switch {
		case g.Modifiers.Add.Has(FlagIgnoreCase):
			t.buf.WriteString("(?i:")
		case g.Modifiers.Remove.Has(FlagIgnoreCase):
			t.buf.WriteString("(?-i:")
		default:
			t.buf.WriteString("(?:")
		}
	default:
		t.buf.WriteString("(?:")
	}
	t.node(g.Body)
	t.buf.WriteByte(')')
}

func (t *translator) repeat(r *Repeat) {
	if t.engine == RE2 && (r.Min > re2MaxRepeat || r.Max > re2MaxRepeat) {
		t.fail("repetition count above 1000")
	}
	switch body := r.Body.(type) {
	case *Concat:
		if len(body.Items) == 1 {
			t.atom(body.Items[0])
		} else {
			t.buf.WriteString("(?:")
			t.node(body)
			t.buf.WriteByte(')')
		}
	default:
		t.atom(body)
	}
	switch {
	case r.Min == 0 && r.Max == -1:
		t.buf.WriteByte('*')
	case r.Min == 1 && r.Max == -1:
		t.buf.WriteByte('+')
	case r.Min == 0 && r.Max == 1:
		t.buf.WriteByte('?')
	case r.Max == -1:
		fmt.Fprintf(&t.buf, "{%d,}", r.Min)
	case r.Min == r.Max:
		fmt.Fprintf(&t.buf, "{%d}", r.Min)
	default:
		fmt.Fprintf(&t.buf, "{%d,%d}", r.Min, r.Max)
	}
	if r.Lazy {
		t.buf.WriteByte('?')
	}
}

// atom writes n so that a following quantifier applies to all of it.
func (t *translator) atom(n Node) {
	switch n.(type) {
	case *Char, *Dot, *Class, *Group, *ClassEscape, *Property, *Backref:
		t.node(n)
	default:
		t.buf.WriteString("(?:")
		t.node(n)
		t.buf.WriteByte(')')
	}
}

func (t *translator) class(c *Class) {
	if len(c.Items) == 0 {
		switch {
		case c.Negate && t.engine == RE2:
			t.buf.WriteString(`[\x{0}-\x{10FFFF}]`)
		case c.Negate:
			t.buf.WriteString(`[\s\S]`)
		case t.engine == RE2:
			t.buf.WriteString(`[^\x{0}-\x{10FFFF}]`)
		default:
			t.buf.WriteString(`(?!)`)
		}
		return
	}
	t.buf.WriteByte('[')
	if c.Negate {
		t.buf.WriteByte('^')
	}
	for _, item := range c.Items {
		t.classItem(item)
	}
	t.buf.WriteByte(']')
}

func (t *translator) classItem(n Node) {
	switch n := n.(type) {
	case *Char:
		if isSurrogate(n.R) {
			t.fail("lone surrogate")
		}
		t.literal(n.R, true)
	case *ClassRange:
		lo, hi := n.Lo, n.Hi
		if isSurrogate(lo) || isSurrogate(hi) {
			t.fail("surrogate range")
		}
		t.ranges([]runeRange{{lo, hi}})
	case *ClassEscape:
		switch n.Kind {
		case 'd':
			t.buf.WriteString("0-9")
		case 'D', 'w', 'W':
			t.buf.WriteByte('\\')
			t.buf.WriteByte(n.Kind)
		case 's':
			t.ranges(jsSpace)
		case 'S':
			t.ranges(complementRanges(jsSpace))
		}
	case *Property:
		t.property(n)
	case *Class:
		if n.Negate {
			t.fail("negated nested class")
		}
		for _, item := range n.Items {
			t.classItem(item)
		}
	case *ClassStrings:
		for _, s := range n.Strings {
			rs := []rune(s)
			if len(rs) != 1 {
				t.fail("string in character class")
			}
			t.classItem(&Char{R: rs[0]})
		}
	case *ClassSetExpr:
		t.fail("class set operation")
	default:
		t.fail(fmt.Sprintf("%T", n))
	}
}

func (t *translator) property(p *Property) {
	if p.Strings {
		t.fail("property of strings " + p.Name)
	}
	if t.engine == RE2 && p.Value != "" && p.Value != "LC" {
		_, cat := unicode.Categories[p.Value]
		_, script := unicode.Scripts[p.Value]
		if p.Name == "General_Category" && cat || p.Name == "Script" && script {
			if p.Negate {
				fmt.Fprintf(&t.buf, `\P{%s}`, p.Value)
			} else {
				fmt.Fprintf(&t.buf, `\p{%s}`, p.Value)
			}
			return
		}
	}
	rs, ok := propertyRanges(p)
	if !ok {
		name := p.Name
		if p.Value != "" {
			name += "=" + p.Value
		}
		t.fail("property " + name)
	}
	t.ranges(rs)
}

// ranges writes class ranges, leaving out the surrogate block, which never
// occurs in UTF-8 text.
func (t *translator) ranges(rs []runeRange) {
	for _, r := range rs {
		if r.lo <= 0xdfff && r.hi >= 0xd800 {
			var parts []runeRange
			if r.lo < 0xd800 {
				parts = append(parts, runeRange{r.lo, 0xd7ff})
			}
			if r.hi > 0xdfff {
				parts = append(parts, runeRange{0xe000, r.hi})
			}
			t.ranges(parts)
			continue
		}
		t.literal(r.lo, true)
		if r.hi != r.lo {
			t.buf.WriteByte('-')
			t.literal(r.hi, true)
		}
	}
}

// literal writes one code point so that it matches itself.
func (t *translator) literal(r rune, inClass bool) {
	if r < 0x80 && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' || !inClass && r == ' ') {
		t.buf.WriteRune(r)
		return
	}
	if t.engine == RE2 {
		fmt.Fprintf(&t.buf, `\x{%X}`, r)
		return
	}
	if r <= 0xffff {
		fmt.Fprintf(&t.buf, `\u%04X`, r)
		return
	}
	t.buf.WriteRune(r)
}

func clipBMP(rs []runeRange) []runeRange {
	var out []runeRange
	for _, r := range rs {
		if r.lo > 0xffff {
			break
		}
		if r.hi > 0xffff {
			r.hi = 0xffff
		}
		out = append(out, r)
	}
	return out
}

func isSurrogate(r rune) bool { return r >= 0xd800 && r <= 0xdfff }

// isWordName reports whether a group name is accepted by the target's
// group syntax: ASCII word characters for RE2, any letter or digit for
// regexp2.
func isWordName(name string, engine Engine) bool {
	for _, r := range name {
		if r == '_' || r < 0x80 && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			continue
		}
		if engine == Regexp2 && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return name != ""
}

func compileRE2(adapted string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(adapted)
	if err != nil {
		return nil, compileFailed(RE2, err)
	}
	return re, nil
}

func compileRegexp2(adapted string, flags Flags) (*regexp2.Regexp, error) {
	opts := regexp2.RegexOptions(regexp2.ECMAScript)
	if flags.Has(FlagIgnoreCase) {
		opts |= regexp2.IgnoreCase
	}
	re, err := regexp2.Compile(adapted, opts)
	if err != nil {
		return nil, compileFailed(Regexp2, err)
	}
	return re, nil
}
