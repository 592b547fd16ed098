package jsregexp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	f, err := ParseFlags("gimsuy")
	require.NoError(t, err)
	assert.True(t, f.Has(FlagGlobal))
	assert.True(t, f.Has(FlagSticky))
	assert.True(t, f.Unicode())
	assert.Equal(t, "gimsuy", f.String())

	for _, bad := range []string{"gg", "uv", "x"} {
		_, err := ParseFlags(bad)
		assert.Error(t, err, bad)
	}
}

type TestCase struct {
	Name    string
	Pattern string
	Flags   string
	Message string // expected syntax error, "" for a valid pattern
}

func TestValidate(t *testing.T) {
	tests := []TestCase{
		{"named group", `(?<year>\d{4})`, "u", ""},
		{"incomplete quantifier", `a{`, "u", "Incomplete quantifier"},
		{"annex b brace", `a{`, "", ""},
		{"annex b brace literal", `a{1`, "", ""},
		{"unterminated group", `(a`, "", "Unterminated group"},
		{"unmatched paren", `a)`, "", "Unmatched ')'"},
		{"nothing to repeat", `*a`, "", "Nothing to repeat"},
		{"braced nothing to repeat", `{2}`, "", "Nothing to repeat"},
		{"range order", `[b-a]`, "", "Range out of order in character class"},
		{"quantifier order", `a{2,1}`, "", "numbers out of order in {} quantifier"},
		{"duplicate name", `(?<a>x)(?<a>y)`, "", "Duplicate capture group name"},
		{"duplicate name in alternatives", `(?<a>x)|(?<a>y)`, "", ""},
		{"duplicate name nested alternatives", `(?:(?<a>x)|(?<a>y))(?<a>z)`, "", "Duplicate capture group name"},
		{"unknown reference", `\k<b>(?<a>.)`, "", "Invalid named capture referenced"},
		{"forward reference", `\k<a>(?<a>.)`, "", ""},
		{"annex b k escape", `\k`, "", ""},
		{"property", `\p{Script=Greek}`, "u", ""},
		{"property alias", `\p{sc=Grek}\p{Lu}\p{Letter}\p{ASCII_Hex_Digit}`, "u", ""},
		{"bad property", `\p{Foo}`, "u", "Invalid property name"},
		{"bad property value", `\p{Script=Foo}`, "u", "Invalid property value"},
		{"property without u", `\p{Foo}`, "", ""},
		{"string property", `\p{RGI_Emoji}`, "v", ""},
		{"string property needs v", `\p{RGI_Emoji}`, "u", "Invalid property name"},
		{"negated string class", `[^\p{RGI_Emoji}]`, "v", "Negated character class may contain strings"},
		{"set intersection", `[\p{L}&&\p{ASCII}]`, "v", ""},
		{"set subtraction", `[\w--\d]`, "v", ""},
		{"string disjunction", `[\q{abc|d}]`, "v", ""},
		{"code point escape", `\u{1F600}`, "u", ""},
		{"astral range without u", `[😀-😁]`, "", "Range out of order in character class"},
		{"astral range with u", `[😀-😁]`, "u", ""},
		{"astral group name without u", `(?<𝑓>x)\k<𝑓>`, "", ""},
		{"class escape range", `[\d-z]`, "u", "Invalid character class"},
		{"annex b class escape range", `[\d-z]`, "", ""},
		{"modifiers", `(?i:a)(?-m:b)(?s-i:c)`, "", ""},
		{"duplicate modifiers", `(?ii:a)`, "", "Duplicate regular expression modifiers"},
		{"empty modifiers", `(?-:a)`, "", "Invalid regular expression modifiers"},
		{"backreference", `(a)\1`, "", ""},
		{"u backreference out of range", `\2(a)`, "u", "Invalid escape"},
		{"annex b octal", `\2(a)`, "", ""},
		{"lookbehind", `(?<=\$)\d+`, "", ""},
		{"quantified lookbehind", `(?<=a)*`, "", "Nothing to repeat"},
		{"annex b quantified lookahead", `(?=a)*`, "", ""},
		{"quantified lookahead with u", `(?=a)*`, "u", "Invalid quantifier"},
		{"annex b control", `\c1`, "", ""},
		{"lone brace with u", `}`, "u", "Lone quantifier brackets"},
		{"identity escape with u", `\a`, "u", "Invalid escape"},
		{"trailing backslash", `a\`, "", "\\ at end of pattern"},
		{"invalid group", `(?a)`, "", "Invalid group"},
		{"unterminated class", `[a`, "", "Unterminated character class"},
	}
	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			res, err := Parse(test.Pattern, test.Flags, Options{Mode: Validate})
			if test.Message == "" {
				require.NoError(t, err)
				require.NotNil(t, res.Tree)
				return
			}
			require.Error(t, err)
			var se *SyntaxError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, test.Message, se.Message)
			assert.Equal(t, test.Pattern, se.Pattern)
		})
	}
}

func TestGroups(t *testing.T) {
	res, err := Parse(`(?<year>\d{4})-(\d\d)(?:x)`, "u", Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Groups)
	assert.Equal(t, []string{"", "year", ""}, res.GroupNames)
}

func TestTree(t *testing.T) {
	res, err := Parse(`a|b+?`, "", Options{})
	require.NoError(t, err)
	expected := &Alternation{Alts: []Node{
		&Concat{Items: []Node{&Char{R: 'a'}}},
		&Concat{Items: []Node{&Repeat{Min: 1, Max: -1, Lazy: true, Body: &Char{R: 'b'}}}},
	}}
	assert.Equal(t, expected, res.Tree)
}

func TestTreeCodeUnits(t *testing.T) {
	res, err := Parse(`😀`, "", Options{})
	require.NoError(t, err)
	assert.Equal(t, &Concat{Items: []Node{&Char{R: 0xd83d}, &Char{R: 0xde00}}}, res.Tree)

	res, err = Parse(`😀`, "u", Options{})
	require.NoError(t, err)
	assert.Equal(t, &Concat{Items: []Node{&Char{R: 0x1f600}}}, res.Tree)
}

func TestSkip(t *testing.T) {
	res, err := Parse(`(`, "g", Options{Mode: Skip})
	require.NoError(t, err)
	assert.Nil(t, res.Tree)
	assert.Equal(t, "(", res.Pattern)
}

func TestAdaptRE2(t *testing.T) {
	adapt := func(pattern, flags string) *Result {
		res, err := Parse(pattern, flags, Options{Mode: Adapt, Engine: RE2})
		require.NoError(t, err, pattern)
		require.NotNil(t, res.RE2)
		return res
	}

	res := adapt(`(?<year>\d{4})`, "u")
	assert.Equal(t, `(?P<year>[0-9]{4})`, res.Adapted)
	assert.Equal(t, []string{"", "year"}, res.RE2.SubexpNames())

	dot := adapt(`a.b`, "").RE2
	assert.True(t, dot.MatchString("axb"))
	assert.False(t, dot.MatchString("a\nb"))
	assert.True(t, dot.MatchString("a b"))
	assert.False(t, dot.MatchString("a\u2028b"))
	assert.True(t, adapt(`a.b`, "s").RE2.MatchString("a\nb"))

	assert.True(t, adapt(`^\s$`, "").RE2.MatchString(" "))
	assert.True(t, adapt(`^\S$`, "").RE2.MatchString("x"))
	assert.True(t, adapt(`^[^]$`, "").RE2.MatchString("\n"))
	assert.False(t, adapt(`[]`, "").RE2.MatchString("a"))
	assert.True(t, adapt(`^b`, "m").RE2.MatchString("a\nb"))
	assert.False(t, adapt(`^b`, "").RE2.MatchString("a\nb"))
	assert.True(t, adapt(`abc`, "i").RE2.MatchString("xABC"))
	assert.True(t, adapt(`a(?i:b)c`, "").RE2.MatchString("aBc"))
	assert.False(t, adapt(`a(?i:b)c`, "").RE2.MatchString("aBC"))
	assert.True(t, adapt(`^\u{1F600}$`, "u").RE2.MatchString("😀"))
	assert.True(t, adapt(`^😀$`, "").RE2.MatchString("😀"))
	assert.False(t, adapt(`^.$`, "").RE2.MatchString("😀"))
	assert.True(t, adapt(`^.$`, "u").RE2.MatchString("😀"))
	assert.False(t, adapt(`^.$`, "s").RE2.MatchString("😀"))
	assert.True(t, adapt(`^.$`, "s").RE2.MatchString("\n"))
	assert.True(t, adapt(`^\p{Script=Greek}+$`, "u").RE2.MatchString("αβγ"))
	assert.True(t, adapt(`^\p{ASCII_Hex_Digit}+$`, "u").RE2.MatchString("c0ffee"))
	assert.False(t, adapt(`^\P{L}$`, "u").RE2.MatchString("a"))
	assert.True(t, adapt(`^[\q{a|b}c]+$`, "v").RE2.MatchString("abc"))
	assert.True(t, adapt(`^(?:ab){2,3}$`, "").RE2.MatchString("ababab"))
}

func TestAdaptRE2Unsupported(t *testing.T) {
	for _, pattern := range []string{`(a)\1`, `(?=a)`, `(?<!a)b`, `a{1001}`, `\uD800`, `[\p{L}--\p{Lu}]`, `😀+`, `[😀]`} {
		flags := ""
		if pattern == `[\p{L}--\p{Lu}]` {
			flags = "v"
		}
		_, err := Parse(pattern, flags, Options{Mode: Adapt, Engine: RE2})
		require.Error(t, err, pattern)
		assert.True(t, errors.Is(err, ErrUnsupported), pattern)

		var te *TranslationError
		assert.True(t, errors.As(err, &te), pattern)
		var se *SyntaxError
		assert.False(t, errors.As(err, &se), pattern)
	}
}

func TestAdaptRegexp2(t *testing.T) {
	res, err := Parse(`(a)\1`, "", Options{Mode: Adapt, Engine: Regexp2})
	require.NoError(t, err)
	require.NotNil(t, res.Regexp2)
	ok, err := res.Regexp2.MatchString("xaa")
	require.NoError(t, err)
	assert.True(t, ok)

	res, err = Parse(`(?<=\$)\d+`, "", Options{Mode: Adapt, Engine: Regexp2})
	require.NoError(t, err)
	ok, err = res.Regexp2.MatchString("cost $42")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = res.Regexp2.MatchString("cost 42")
	require.NoError(t, err)
	assert.False(t, ok)

	res, err = Parse(`^abc$`, "i", Options{Mode: Adapt, Engine: Regexp2})
	require.NoError(t, err)
	ok, err = res.Regexp2.MatchString("ABC")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = Parse(`[\q{abc}]`, "v", Options{Mode: Adapt, Engine: Regexp2})
	assert.True(t, errors.Is(err, ErrUnsupported))
}

func TestAdaptSyntaxErrorIsNotTranslation(t *testing.T) {
	_, err := Parse(`a{`, "u", Options{Mode: Adapt})
	var se *SyntaxError
	require.True(t, errors.As(err, &se))
	assert.False(t, errors.Is(err, ErrUnsupported))
}

func TestAdaptCache(t *testing.T) {
	a, err := Parse(`x+y`, "g", Options{Mode: Adapt})
	require.NoError(t, err)
	b, err := Parse(`x+y`, "g", Options{Mode: Adapt})
	require.NoError(t, err)
	assert.Same(t, a, b)

	c, err := Parse(`x+y`, "g", Options{Mode: Adapt, Engine: Regexp2})
	require.NoError(t, err)
	assert.NotSame(t, a, c)
}
