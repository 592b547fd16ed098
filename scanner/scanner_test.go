package scanner

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esfront/diag"
	"esfront/jsregexp"
	"esfront/token"
)

type tok struct {
	Token token.Token
	Value string
}

func collect(t *testing.T, src string, opts Options) []tok {
	t.Helper()
	words, _, err := Tokenize(src, opts)
	require.NoError(t, err)
	var out []tok
	for _, w := range words {
		out = append(out, tok{w.Token, w.Value})
	}
	return out
}

func TestPunctuators(t *testing.T) {
	got := collect(t, "a >>>= b ?? c?.d ... **= => !== ||= ?.5", Options{})
	want := []tok{
		{token.T_NAME, "a"},
		{token.T_ASSIGN, ">>>="},
		{token.T_NAME, "b"},
		{token.T_COALESCE, "??"},
		{token.T_NAME, "c"},
		{token.T_QUESTIONDOT, "?."},
		{token.T_NAME, "d"},
		{token.T_ELLIPSIS, "..."},
		{token.T_ASSIGN, "**="},
		{token.T_ARROW, "=>"},
		{token.T_EQUALITY, "!=="},
		{token.T_ASSIGN, "||="},
		{token.T_QUESTION, "?"},
		{token.T_NUM, ".5"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens (-want +got):\n%s", diff)
	}
}

type TestCase struct {
	Name   string
	Source string
	Tokens []token.Token
}

func TestRegexDetection(t *testing.T) {
	tests := []TestCase{
		{"division", "a / b / c", []token.Token{token.T_NAME, token.T_SLASH, token.T_NAME, token.T_SLASH, token.T_NAME}},
		{"assignment", "x = /re/g", []token.Token{token.T_NAME, token.T_EQ, token.T_REGEXP}},
		{"after statement paren", "if (x) /re/.test(y)", []token.Token{
			token.T_IF, token.T_PARENL, token.T_NAME, token.T_PARENR, token.T_REGEXP,
			token.T_DOT, token.T_NAME, token.T_PARENL, token.T_NAME, token.T_PARENR,
		}},
		{"after expression paren", "(a) / 2", []token.Token{token.T_PARENL, token.T_NAME, token.T_PARENR, token.T_SLASH, token.T_NUM}},
		{"after block", "{} /re/", []token.Token{token.T_BRACEL, token.T_BRACER, token.T_REGEXP}},
		{"after object literal", "x = {} / 2", []token.Token{token.T_NAME, token.T_EQ, token.T_BRACEL, token.T_BRACER, token.T_SLASH, token.T_NUM}},
		{"keyword after dot", "a.return / 2", []token.Token{token.T_NAME, token.T_DOT, token.T_RETURN, token.T_SLASH, token.T_NUM}},
		{"return", "return /x/", []token.Token{token.T_RETURN, token.T_REGEXP}},
		{"regex class with slash", "x(/[/]/)", []token.Token{token.T_NAME, token.T_PARENL, token.T_REGEXP, token.T_PARENR}},
		{"yield in generator", "function* g() { yield /x/ }", []token.Token{
			token.T_FUNCTION, token.T_STAR, token.T_NAME, token.T_PARENL, token.T_PARENR,
			token.T_BRACEL, token.T_NAME, token.T_REGEXP, token.T_BRACER,
		}},
	}
	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			var got []token.Token
			for _, w := range collect(t, test.Source, Options{}) {
				got = append(got, w.Token)
			}
			if diff := cmp.Diff(test.Tokens, got); diff != "" {
				t.Errorf("tokens (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTemplateNesting(t *testing.T) {
	words, _, err := Tokenize("`a${ {b: `c${d}`} }e`", Options{})
	require.NoError(t, err)
	var got []tok
	for _, w := range words {
		got = append(got, tok{w.Token, w.Value})
	}
	want := []tok{
		{token.T_TEMPLATE, "a"},
		{token.T_BRACEL, "{"},
		{token.T_NAME, "b"},
		{token.T_COLON, ":"},
		{token.T_TEMPLATE, "c"},
		{token.T_NAME, "d"},
		{token.T_TEMPLATE, ""},
		{token.T_BRACER, "}"},
		{token.T_TEMPLATE, "e"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens (-want +got):\n%s", diff)
	}
	assert.True(t, words[0].TemplateHead())
	assert.False(t, words[0].Tail)
	assert.False(t, words[6].TemplateHead())
	assert.True(t, words[6].Tail)
	assert.True(t, words[8].Tail)
	require.NotNil(t, words[8].Cooked)
	assert.Equal(t, "e", *words[8].Cooked)
}

func TestTemplateValues(t *testing.T) {
	words, _, err := Tokenize("`\\unicode` `a\r\nb\\x41`", Options{})
	require.NoError(t, err)
	require.Len(t, words, 2)
	assert.Nil(t, words[0].Cooked)
	assert.Equal(t, `\unicode`, words[0].Value)
	require.NotNil(t, words[1].Cooked)
	assert.Equal(t, "a\nbA", *words[1].Cooked)
	assert.Equal(t, "a\nb\\x41", words[1].Value)
	assert.Equal(t, 2, words[1].Loc.End.Line)
}

func TestNumbers(t *testing.T) {
	words, _, err := Tokenize("0x1F 0o17 0b11 017 08 1_000 .5e1 10n 1e400", Options{})
	require.NoError(t, err)
	require.Len(t, words, 9)
	var values []float64
	for _, w := range words {
		values = append(values, w.Number)
	}
	assert.Equal(t, []float64{31, 15, 3, 15, 8, 1000, 5, 10}, values[:8])
	assert.True(t, words[8].Number > 1e308)
	assert.True(t, words[3].Octal)
	assert.True(t, words[4].Octal)
	assert.False(t, words[0].Octal)
	require.NotNil(t, words[7].BigInt)
	assert.Equal(t, "10", words[7].BigInt.String())
	assert.Equal(t, "10n", words[7].Raw)
}

func lexError(t *testing.T, src string) *diag.Error {
	t.Helper()
	_, _, err := Tokenize(src, Options{})
	require.Error(t, err, src)
	var de *diag.Error
	require.True(t, errors.As(err, &de), src)
	return de
}

func TestLexicalErrors(t *testing.T) {
	tests := []struct {
		src, message string
		index        int
	}{
		{"1__0", "Numeric separator must be exactly one underscore", 2},
		{"1_", "Numeric separator is not allowed at the last of digits", 1},
		{"3in x", "Identifier directly after number", 1},
		{"0b", "Expected number in radix 2", 2},
		{"'abc", "Unterminated string constant", 0},
		{"x = 'a\nb'", "Unterminated string constant", 4},
		{"/* open", "Unterminated comment", 0},
		{"`abc", "Unterminated template", 0},
		{"x = /abc", "Unterminated regular expression", 4},
		{"'\\x4'", "Bad character escape sequence", 3},
		{"'\\u{110000}'", "Code point out of bounds", 4},
		{"a @ b", "Unexpected character '@'", 2},
		{"\\u0031a", "Invalid Unicode escape", 0},
	}
	for _, test := range tests {
		de := lexError(t, test.src)
		assert.Equal(t, test.message, de.Description, test.src)
		assert.Equal(t, test.index, de.Index, test.src)
		assert.Equal(t, diag.Lexical, de.Kind, test.src)
	}
}

func TestStrings(t *testing.T) {
	words, _, err := Tokenize(`'\u{1F600}\x41\n' "😀" "\uD800" '\07' "\0" 'a\
b'`, Options{})
	require.NoError(t, err)
	require.Len(t, words, 6)
	assert.Equal(t, "😀A\n", words[0].Value)
	assert.Equal(t, "😀", words[1].Value)
	assert.Equal(t, "\xed\xa0\x80", words[2].Value)
	assert.Equal(t, "\a", words[3].Value)
	assert.True(t, words[3].Octal)
	assert.Equal(t, "\x00", words[4].Value)
	assert.False(t, words[4].Octal)
	assert.Equal(t, "ab", words[5].Value)
	assert.Equal(t, 2, words[5].Loc.End.Line)
}

func TestIdentifiers(t *testing.T) {
	words, _, err := Tokenize(`\u0061bc \u0069f café #priv`, Options{})
	require.NoError(t, err)
	require.Len(t, words, 4)
	assert.Equal(t, tok{token.T_NAME, "abc"}, tok{words[0].Token, words[0].Value})
	assert.True(t, words[0].Escaped)
	assert.Equal(t, token.T_IF, words[1].Token)
	assert.True(t, words[1].Escaped)
	assert.Equal(t, "café", words[2].Value)
	assert.Equal(t, tok{token.T_PRIVATEID, "priv"}, tok{words[3].Token, words[3].Value})
	assert.Equal(t, token.KIND_PRIVATE_NAME, words[3].Kind())
}

func TestCommentsAndPositions(t *testing.T) {
	src := "a // c\n/* b\n */ é = 1"
	s := New(src, Options{Comments: true, Source: "test.js"})
	assert.Empty(t, s.ScanComments())
	a := s.Lex()
	assert.False(t, a.NewlineBefore)

	comments := s.ScanComments()
	require.Len(t, comments, 2)
	assert.Equal(t, " c", comments[0].Value)
	assert.False(t, comments[0].Block)
	assert.Equal(t, " b\n ", comments[1].Value)
	assert.True(t, comments[1].Block)
	assert.Equal(t, token.Position{Line: 2, Column: 0}, comments[1].Loc.Start)
	assert.Equal(t, token.Position{Line: 3, Column: 3}, comments[1].Loc.End)

	e := s.Lex()
	assert.True(t, e.NewlineBefore)
	assert.Equal(t, "é", e.Value)
	assert.Equal(t, token.Position{Line: 3, Column: 4}, e.Loc.Start)
	assert.Equal(t, token.Position{Line: 3, Column: 5}, e.Loc.End)
	assert.Equal(t, "test.js", e.Loc.Source)

	eq := s.Lex()
	assert.Equal(t, token.Position{Line: 3, Column: 6}, eq.Loc.Start)
	assert.Equal(t, src[eq.Start:eq.End], eq.Raw)
}

func TestHTMLComments(t *testing.T) {
	got := collect(t, "<!-- x\na\n--> y\nb", Options{})
	assert.Equal(t, []tok{{token.T_NAME, "a"}, {token.T_NAME, "b"}}, got)

	got = collect(t, "a --> b", Options{})
	assert.Equal(t, token.T_INCDEC, got[1].Token)

	got = collect(t, "a <!-- b", Options{Module: true})
	assert.Equal(t, token.T_RELATIONAL, got[1].Token)

	got = collect(t, "#!/usr/bin/env node\nx", Options{})
	assert.Equal(t, []tok{{token.T_NAME, "x"}}, got)
}

func TestRegexErrors(t *testing.T) {
	_, _, err := Tokenize("x = /a{/u", Options{Tolerant: true})
	require.Error(t, err)
	var de *diag.Error
	require.True(t, errors.As(err, &de))
	assert.Equal(t, diag.RegexSyntax, de.Kind)
	assert.Equal(t, 4, de.Index)
	var se *jsregexp.SyntaxError
	require.True(t, errors.As(de.Cause(), &se))
	assert.Equal(t, "Incomplete quantifier", se.Message)

	words, _, err := Tokenize(`x = /(a)\1/`, Options{
		Tolerant:    true,
		RegexMode:   jsregexp.Adapt,
		RegexEngine: jsregexp.RE2,
	})
	require.Error(t, err)
	list, ok := err.(diag.List)
	require.True(t, ok)
	require.Len(t, list, 1)
	assert.Equal(t, diag.RegexTranslation, list[0].Kind)
	assert.True(t, errors.Is(list[0], jsregexp.ErrUnsupported))
	require.Len(t, words, 3)
	require.NotNil(t, words[2].Regex)
	assert.NotNil(t, words[2].Regex.Tree)
	assert.Equal(t, `/(a)\1/`, words[2].Value)
}

func TestRescanRegExp(t *testing.T) {
	s := New("/=a/g;", Options{})
	s.RegexAllowed = false
	w := s.Lex()
	require.Equal(t, token.T_ASSIGN, w.Token)
	w = s.RescanRegExp(w)
	assert.Equal(t, token.T_REGEXP, w.Token)
	assert.Equal(t, "/=a/g", w.Raw)
	assert.Equal(t, "=a", w.Regex.Pattern)
	assert.Equal(t, token.T_SEMI, s.Lex().Token)
}

func TestSaveRestore(t *testing.T) {
	s := New("let [a] = b", Options{})
	s.Lex()
	st := s.Save()
	assert.Equal(t, token.T_BRACKETL, s.Lex().Token)
	assert.Equal(t, token.T_NAME, s.Lex().Token)
	s.Restore(st)
	w := s.Lex()
	assert.Equal(t, token.T_BRACKETL, w.Token)
	assert.Equal(t, 4, w.Start)
}

func TestTolerant(t *testing.T) {
	words, _, err := Tokenize("a @ 'b\nc", Options{Tolerant: true})
	require.Error(t, err)
	list := err.(diag.List)
	require.Len(t, list, 2)
	assert.Equal(t, "Unexpected character '@'", list[0].Description)
	assert.Equal(t, "Unterminated string constant", list[1].Description)
	var kinds []token.Token
	for _, w := range words {
		kinds = append(kinds, w.Token)
	}
	assert.Equal(t, []token.Token{token.T_NAME, token.T_STRING, token.T_NAME}, kinds)
}

func TestJSX(t *testing.T) {
	s := New(`<div a-b="x &amp; y">hi &lt;{x}</div>`, Options{JSX: true})
	var got []tok
	for i := 0; i < 6; i++ {
		w := s.LexJSXTag()
		got = append(got, tok{w.Token, w.Value})
	}
	want := []tok{
		{token.T_RELATIONAL, "<"},
		{token.T_JSXNAME, "div"},
		{token.T_JSXNAME, "a-b"},
		{token.T_EQ, "="},
		{token.T_STRING, "x & y"},
		{token.T_RELATIONAL, ">"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tag tokens (-want +got):\n%s", diff)
	}

	text := s.LexJSXChild()
	assert.Equal(t, token.T_JSXTEXT, text.Token)
	assert.Equal(t, "hi <", text.Value)
	assert.Equal(t, "hi &lt;", text.Raw)
	assert.Equal(t, token.T_BRACEL, s.LexJSXChild().Token)
	assert.Equal(t, "x", s.Lex().Value)
	assert.Equal(t, token.T_BRACER, s.Lex().Token)
	assert.Equal(t, token.T_RELATIONAL, s.LexJSXChild().Token)
	assert.Equal(t, token.T_SLASH, s.LexJSXTag().Token)
}

func TestDecodeEntities(t *testing.T) {
	assert.Equal(t, "a & b", decodeEntities("a &amp; b"))
	assert.Equal(t, "{}", decodeEntities("&#123;&#x7D;"))
	assert.Equal(t, "&nope; &", decodeEntities("&nope; &"))
}
