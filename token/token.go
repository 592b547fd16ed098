// Package token defines the lexical token kinds of ECMAScript together with
// the attributes the parser needs to drive the scanner (whether a token may
// start an expression, whether a regular expression may follow it, binary
// operator precedence, ...).
//
// All tables in this package are built once at init time and never mutated
// afterwards, so they are safe for concurrent use by independent parsers.
package token

type Token int

const (
	// BASIC
	T_EOF Token = iota
	T_NAME
	T_PRIVATEID
	T_NUM
	T_STRING
	T_REGEXP
	T_TEMPLATE

	// PUNCTUATION
	T_BRACKETL
	T_BRACKETR
	T_BRACEL
	T_BRACER
	T_PARENL
	T_PARENR
	T_COMMA
	T_SEMI
	T_COLON
	T_DOT
	T_QUESTION
	T_QUESTIONDOT
	T_ARROW
	T_ELLIPSIS

	// Operator token types
	T_EQ
	T_ASSIGN
	T_INCDEC
	T_PREFIX
	T_LOGICALOR
	T_LOGICALAND
	T_BITWISEOR
	T_BITWISEXOR
	T_BITWISEAND
	T_EQUALITY
	T_RELATIONAL
	T_BITSHIFT
	T_PLUSMIN
	T_MODULO
	T_STAR
	T_SLASH
	T_STARSTAR
	T_COALESCE

	// Keywords
	T_BREAK
	T_CASE
	T_CATCH
	T_CONTINUE
	T_DEBUGGER
	T_DEFAULT
	T_DO
	T_ELSE
	T_FINALLY
	T_FOR
	T_FUNCTION
	T_IF
	T_RETURN
	T_SWITCH
	T_THROW
	T_TRY
	T_VAR
	T_CONST
	T_WHILE
	T_WITH
	T_NEW
	T_THIS
	T_SUPER
	T_CLASS
	T_EXTENDS
	T_EXPORT
	T_IMPORT
	T_NULL
	T_TRUE
	T_FALSE
	T_IN
	T_INSTANCEOF
	T_TYPEOF
	T_VOID
	T_DELETE

	// JSX
	T_JSXNAME
	T_JSXTEXT

	numTokens
)

// Kind is the coarse category of a token.
type Kind int

const (
	KIND_EOF Kind = iota
	KIND_IDENTIFIER
	KIND_KEYWORD
	KIND_PUNCTUATOR
	KIND_STRING
	KIND_NUMERIC
	KIND_REGEX
	KIND_TEMPLATE
	KIND_PRIVATE_NAME
	KIND_JSX_IDENTIFIER
	KIND_JSX_TEXT
)

var kindNames = [...]string{
	KIND_EOF:            "EOF",
	KIND_IDENTIFIER:     "Identifier",
	KIND_KEYWORD:        "Keyword",
	KIND_PUNCTUATOR:     "Punctuator",
	KIND_STRING:         "String",
	KIND_NUMERIC:        "Numeric",
	KIND_REGEX:          "RegularExpression",
	KIND_TEMPLATE:       "Template",
	KIND_PRIVATE_NAME:   "PrivateName",
	KIND_JSX_IDENTIFIER: "JSXIdentifier",
	KIND_JSX_TEXT:       "JSXText",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

const (
	beforeExpr = 1 << iota
	startsExpr
	isLoop
	isAssign
	prefix
	postfix
)

// TokenType holds the static attributes of a token kind.
type TokenType struct {
	Label   string
	Keyword string
	Binop   int // binary precedence, 0 when the token is not a binary operator
	Kind    Kind
	flags   int
}

var tokenTypes [numTokens]TokenType

func newToken(t Token, label, keyword string, kind Kind, flags int, binop int) {
	tokenTypes[t] = TokenType{
		Label:   label,
		Keyword: keyword,
		Binop:   binop,
		Kind:    kind,
		flags:   flags,
	}
}

func kw(t Token, name string, flags int, binop int) {
	newToken(t, name, name, KIND_KEYWORD, flags, binop)
	keywords[name] = t
}

func punct(t Token, label string, flags int, binop int) {
	newToken(t, label, "", KIND_PUNCTUATOR, flags, binop)
}

var keywords = map[string]Token{}

func init() {
	// Basic token types
	newToken(T_EOF, "eof", "", KIND_EOF, 0, 0)
	newToken(T_NAME, "name", "", KIND_IDENTIFIER, startsExpr, 0)
	newToken(T_PRIVATEID, "privateId", "", KIND_PRIVATE_NAME, startsExpr, 0)
	newToken(T_NUM, "num", "", KIND_NUMERIC, startsExpr, 0)
	newToken(T_STRING, "string", "", KIND_STRING, startsExpr, 0)
	newToken(T_REGEXP, "regexp", "", KIND_REGEX, startsExpr, 0)
	newToken(T_TEMPLATE, "template", "", KIND_TEMPLATE, startsExpr, 0)

	// Punctuation token types
	punct(T_BRACKETL, "[", beforeExpr|startsExpr, 0)
	punct(T_BRACKETR, "]", 0, 0)
	punct(T_BRACEL, "{", beforeExpr|startsExpr, 0)
	punct(T_BRACER, "}", 0, 0)
	punct(T_PARENL, "(", beforeExpr|startsExpr, 0)
	punct(T_PARENR, ")", 0, 0)
	punct(T_COMMA, ",", beforeExpr, 0)
	punct(T_SEMI, ";", beforeExpr, 0)
	punct(T_COLON, ":", beforeExpr, 0)
	punct(T_DOT, ".", 0, 0)
	punct(T_QUESTION, "?", beforeExpr, 0)
	punct(T_QUESTIONDOT, "?.", 0, 0)
	punct(T_ARROW, "=>", beforeExpr, 0)
	punct(T_ELLIPSIS, "...", beforeExpr, 0)

	// Operator token types
	punct(T_EQ, "=", beforeExpr|isAssign, 0)
	punct(T_ASSIGN, "_=", beforeExpr|isAssign, 0)
	punct(T_INCDEC, "++/--", prefix|postfix|startsExpr, 0)
	punct(T_PREFIX, "!/~", beforeExpr|prefix|startsExpr, 0)
	punct(T_LOGICALOR, "||", beforeExpr, 1)
	punct(T_LOGICALAND, "&&", beforeExpr, 2)
	punct(T_BITWISEOR, "|", beforeExpr, 3)
	punct(T_BITWISEXOR, "^", beforeExpr, 4)
	punct(T_BITWISEAND, "&", beforeExpr, 5)
	punct(T_EQUALITY, "==/!=/===/!==", beforeExpr, 6)
	punct(T_RELATIONAL, "</>/<=/>=", beforeExpr, 7)
	punct(T_BITSHIFT, "<</>>/>>>", beforeExpr, 8)
	punct(T_PLUSMIN, "+/-", beforeExpr|prefix|startsExpr, 9)
	punct(T_MODULO, "%", beforeExpr, 10)
	punct(T_STAR, "*", beforeExpr, 10)
	punct(T_SLASH, "/", beforeExpr, 10)
	punct(T_STARSTAR, "**", beforeExpr, 0)
	punct(T_COALESCE, "??", beforeExpr, 1)

	// Keywords
	kw(T_BREAK, "break", 0, 0)
	kw(T_CASE, "case", beforeExpr, 0)
	kw(T_CATCH, "catch", 0, 0)
	kw(T_CONTINUE, "continue", 0, 0)
	kw(T_DEBUGGER, "debugger", 0, 0)
	kw(T_DEFAULT, "default", beforeExpr, 0)
	kw(T_DO, "do", isLoop|beforeExpr, 0)
	kw(T_ELSE, "else", beforeExpr, 0)
	kw(T_FINALLY, "finally", 0, 0)
	kw(T_FOR, "for", isLoop, 0)
	kw(T_FUNCTION, "function", startsExpr, 0)
	kw(T_IF, "if", 0, 0)
	kw(T_RETURN, "return", beforeExpr, 0)
	kw(T_SWITCH, "switch", 0, 0)
	kw(T_THROW, "throw", beforeExpr, 0)
	kw(T_TRY, "try", 0, 0)
	kw(T_VAR, "var", 0, 0)
	kw(T_CONST, "const", 0, 0)
	kw(T_WHILE, "while", isLoop, 0)
	kw(T_WITH, "with", 0, 0)
	kw(T_NEW, "new", beforeExpr|startsExpr, 0)
	kw(T_THIS, "this", startsExpr, 0)
	kw(T_SUPER, "super", startsExpr, 0)
	kw(T_CLASS, "class", startsExpr, 0)
	kw(T_EXTENDS, "extends", beforeExpr, 0)
	kw(T_EXPORT, "export", 0, 0)
	kw(T_IMPORT, "import", startsExpr, 0)
	kw(T_NULL, "null", startsExpr, 0)
	kw(T_TRUE, "true", startsExpr, 0)
	kw(T_FALSE, "false", startsExpr, 0)
	kw(T_IN, "in", beforeExpr, 7)
	kw(T_INSTANCEOF, "instanceof", beforeExpr, 7)
	kw(T_TYPEOF, "typeof", beforeExpr|prefix|startsExpr, 0)
	kw(T_VOID, "void", beforeExpr|prefix|startsExpr, 0)
	kw(T_DELETE, "delete", beforeExpr|prefix|startsExpr, 0)

	// JSX
	newToken(T_JSXNAME, "jsxName", "", KIND_JSX_IDENTIFIER, 0, 0)
	newToken(T_JSXTEXT, "jsxText", "", KIND_JSX_TEXT, 0, 0)

	for _, name := range contextualNames {
		interned[name] = name
	}
	for name := range keywords {
		interned[name] = name
	}
}

func (t Token) info() *TokenType {
	if t < 0 || t >= numTokens {
		return &tokenTypes[T_EOF]
	}
	return &tokenTypes[t]
}

// Type returns the static attributes of t.
func (t Token) Type() *TokenType { return t.info() }

func (t Token) String() string  { return t.info().Label }
func (t Token) Kind() Kind      { return t.info().Kind }
func (t Token) Binop() int      { return t.info().Binop }
func (t Token) IsKeyword() bool { return t.info().Kind == KIND_KEYWORD }

// BeforeExpr reports whether an expression (and so a regular expression
// literal) may directly follow the token.
func (t Token) BeforeExpr() bool { return t.info().flags&beforeExpr != 0 }
func (t Token) StartsExpr() bool { return t.info().flags&startsExpr != 0 }
func (t Token) IsLoop() bool     { return t.info().flags&isLoop != 0 }
func (t Token) IsAssign() bool   { return t.info().flags&isAssign != 0 }
func (t Token) Prefix() bool     { return t.info().flags&prefix != 0 }
func (t Token) Postfix() bool    { return t.info().flags&postfix != 0 }

// Lookup maps an identifier name to its keyword token, if it is one.
func Lookup(name string) (Token, bool) {
	t, ok := keywords[name]
	return t, ok
}

var contextualNames = []string{
	"let", "static", "yield", "await", "async", "of", "get", "set", "as",
	"from", "target", "meta", "constructor", "arguments", "eval", "enum",
	"implements", "interface", "package", "private", "protected", "public",
	"undefined", "prototype", "__proto__", "use strict", "with", "assert",
	"accessor", "source", "defer",
}

var interned = map[string]string{}

// Intern returns the canonical instance of a keyword or contextual keyword,
// or s itself when it is not a known word.
func Intern(s string) string {
	if v, ok := interned[s]; ok {
		return v
	}
	return s
}

var strictReserved = map[string]bool{
	"implements": true, "interface": true, "let": true, "package": true,
	"private": true, "protected": true, "public": true, "static": true,
	"yield": true,
}

// IsStrictReserved reports whether name is reserved in strict mode code only.
func IsStrictReserved(name string) bool { return strictReserved[name] }

// IsReserved reports whether name may never be used as an identifier
// reference (keywords, "enum" and the literals).
func IsReserved(name string) bool {
	if _, ok := keywords[name]; ok {
		return true
	}
	return name == "enum"
}
