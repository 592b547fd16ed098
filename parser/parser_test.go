package parser

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esfront/ast"
	"esfront/diag"
	"esfront/jsregexp"
	"esfront/jsx"
	"esfront/token"
)

// TestCase is a source text and the tree expected from it.
type TestCase struct {
	Name     string
	Input    string
	Expected *ast.Program
}

// exportAll lets cmp look into node lists and JSX bases.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

func RunTests(t *testing.T, cases []TestCase) {
	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			actual, err := ParseScript(tc.Input, nil)
			require.NoError(t, err)
			require.NotNil(t, actual)
			if diff := cmp.Diff(tc.Expected, actual, exportAll, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("AST mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func span(start, end int) ast.NodeBase { return ast.NodeBase{Start: start, End: end} }

func ident(name string, start int) *ast.Identifier {
	return &ast.Identifier{NodeBase: span(start, start+len(name)), Name: name}
}

func TestParser(t *testing.T) {
	cases := []TestCase{
		{
			Name:  "Class Declaration",
			Input: "class C { aaa }",
			Expected: &ast.Program{
				NodeBase:   span(0, 15),
				SourceType: "script",
				Body: ast.ListOf([]ast.Statement{
					&ast.ClassDeclaration{
						NodeBase: span(0, 15),
						ID:       ident("C", 6),
						Body: &ast.ClassBody{
							NodeBase: span(8, 15),
							Body: ast.ListOf([]ast.Node{
								&ast.PropertyDefinition{NodeBase: span(10, 13), Key: ident("aaa", 10)},
							}),
						},
					},
				}),
			},
		},
		{
			Name:  "Binary Precedence",
			Input: "a + b * c",
			Expected: &ast.Program{
				NodeBase:   span(0, 9),
				SourceType: "script",
				Body: ast.ListOf([]ast.Statement{
					&ast.ExpressionStatement{
						NodeBase: span(0, 9),
						Expression: &ast.BinaryExpression{
							NodeBase: span(0, 9),
							Operator: "+",
							Left:     ident("a", 0),
							Right: &ast.BinaryExpression{
								NodeBase: span(4, 9),
								Operator: "*",
								Left:     ident("b", 4),
								Right:    ident("c", 8),
							},
						},
					},
				}),
			},
		},
		{
			Name:  "Return Cut By Newline",
			Input: "function f() { return\nx }",
			Expected: &ast.Program{
				NodeBase:   span(0, 25),
				SourceType: "script",
				Body: ast.ListOf([]ast.Statement{
					&ast.FunctionDeclaration{
						NodeBase: span(0, 25),
						ID:       ident("f", 9),
						Params:   ast.ListOf([]ast.Pattern{}),
						Body: &ast.BlockStatement{
							NodeBase: span(13, 25),
							Body: ast.ListOf([]ast.Statement{
								&ast.ReturnStatement{NodeBase: span(15, 21)},
								&ast.ExpressionStatement{NodeBase: span(22, 23), Expression: ident("x", 22)},
							}),
						},
					},
				}),
			},
		},
		{
			Name:  "Return With Argument",
			Input: "function f(){ return a }",
			Expected: &ast.Program{
				NodeBase:   span(0, 24),
				SourceType: "script",
				Body: ast.ListOf([]ast.Statement{
					&ast.FunctionDeclaration{
						NodeBase: span(0, 24),
						ID:       ident("f", 9),
						Params:   ast.ListOf([]ast.Pattern{}),
						Body: &ast.BlockStatement{
							NodeBase: span(12, 24),
							Body: ast.ListOf([]ast.Statement{
								&ast.ReturnStatement{NodeBase: span(14, 22), Argument: ident("a", 21)},
							}),
						},
					},
				}),
			},
		},
	}

	RunTests(t, cases)
}

func parseErr(t *testing.T, src string, opts *Options) *diag.Error {
	t.Helper()
	_, err := New(src, opts).Parse()
	require.Error(t, err)
	var de *diag.Error
	require.True(t, errors.As(err, &de), "got %T", err)
	return de
}

func body(t *testing.T, prog *ast.Program) []ast.Statement {
	t.Helper()
	require.NotNil(t, prog)
	return prog.Body.Slice()
}

func TestAutomaticSemicolons(t *testing.T) {
	prog, err := ParseScript("a\nb", nil)
	require.NoError(t, err)
	assert.Len(t, body(t, prog), 2)

	prog, err = ParseScript("a\n++b", nil)
	require.NoError(t, err)
	stmts := body(t, prog)
	require.Len(t, stmts, 2)
	update := stmts[1].(*ast.ExpressionStatement).Expression.(*ast.UpdateExpression)
	assert.True(t, update.Prefix)

	prog, err = ParseScript("let x = 1\nlet y = 2", nil)
	require.NoError(t, err)
	stmts = body(t, prog)
	require.Len(t, stmts, 2)
	assert.Equal(t, "let", stmts[0].(*ast.VariableDeclaration).Kind)

	// A newline inside a call does not end the statement.
	prog, err = ParseScript("f\n(1)", nil)
	require.NoError(t, err)
	stmts = body(t, prog)
	require.Len(t, stmts, 1)
	assert.IsType(t, &ast.CallExpression{}, stmts[0].(*ast.ExpressionStatement).Expression)

	de := parseErr(t, "a b", nil)
	assert.Equal(t, "Unexpected token", de.Description)
	assert.Equal(t, 2, de.Index)
	assert.Equal(t, 1, de.Line)
	assert.Equal(t, 2, de.Column)
}

func TestArrowOrSequence(t *testing.T) {
	expr, err := ParseExpression("(a, b) => a + b", nil)
	require.NoError(t, err)
	arrow, ok := expr.(*ast.ArrowFunctionExpression)
	require.True(t, ok, "got %T", expr)
	assert.Equal(t, 2, arrow.Params.Len())
	assert.True(t, arrow.Expression)
	assert.IsType(t, &ast.BinaryExpression{}, arrow.Body)

	expr, err = ParseExpression("(a, b)", nil)
	require.NoError(t, err)
	seq, ok := expr.(*ast.SequenceExpression)
	require.True(t, ok, "got %T", expr)
	assert.Equal(t, 2, seq.Expressions.Len())
	assert.Equal(t, 1, seq.Start)
	assert.Equal(t, 5, seq.End)

	expr, err = ParseExpression("async (x) => x", nil)
	require.NoError(t, err)
	assert.True(t, expr.(*ast.ArrowFunctionExpression).Async)

	expr, err = ParseExpression("async (x)", nil)
	require.NoError(t, err)
	assert.IsType(t, &ast.CallExpression{}, expr)

	expr, err = ParseExpression("([a, b] = c) => a", nil)
	require.NoError(t, err)
	arrow = expr.(*ast.ArrowFunctionExpression)
	assert.IsType(t, &ast.AssignmentPattern{}, arrow.Params.At(0))

	_, err = ParseExpression("(a, 1) => a", nil)
	assert.Error(t, err)
}

func TestDuplicateParameters(t *testing.T) {
	_, err := ParseScript("function f(a, a) {}", nil)
	assert.NoError(t, err)

	for _, src := range []string{
		`"use strict"; function f(a, a) {}`,
		`function f(a, a) { "use strict" }`,
		`(a, a) => 1`,
		`function f(a, [a]) {}`,
	} {
		de := parseErr(t, src, nil)
		assert.Equal(t, "Argument name clash", de.Description, src)
		assert.Equal(t, diag.Early, de.Kind, src)
	}

	_, err = ParseModule("function f(a, a) {}", nil)
	assert.Error(t, err)
}

func TestStrictMode(t *testing.T) {
	prog, err := ParseScript(`"use strict"; x`, nil)
	require.NoError(t, err)
	assert.True(t, prog.Strict)
	assert.Equal(t, "use strict", body(t, prog)[0].(*ast.ExpressionStatement).Directive)

	prog, err = ParseScript(`("use strict"); with (a) {}`, nil)
	require.NoError(t, err)
	assert.False(t, prog.Strict)
	assert.Empty(t, body(t, prog)[0].(*ast.ExpressionStatement).Directive)

	de := parseErr(t, `"use strict"; with (a) {}`, nil)
	assert.Equal(t, 14, de.Index)

	prog, err = ParseModule("export const a = 1", nil)
	require.NoError(t, err)
	assert.True(t, prog.Strict)
	assert.Equal(t, "module", prog.SourceType)
}

func TestRegexLiterals(t *testing.T) {
	expr, err := ParseExpression(`/(?<year>\d{4})-\k<year>/u`, nil)
	require.NoError(t, err)
	lit := expr.(*ast.Literal)
	assert.Equal(t, ast.LITERAL_REGEXP, lit.Kind)
	require.NotNil(t, lit.Regex)
	assert.Equal(t, "u", lit.Regex.Flags)
	assert.Equal(t, `(?<year>\d{4})-\k<year>`, lit.Regex.Pattern)
	require.NotNil(t, lit.Regex.Result)
	assert.Contains(t, lit.Regex.Result.GroupNames, "year")

	// Division after an operand, a regex where an expression starts.
	expr, err = ParseExpression("a / b / c", nil)
	require.NoError(t, err)
	assert.IsType(t, &ast.BinaryExpression{}, expr)

	_, err = ParseExpression("/a{/", nil)
	assert.NoError(t, err)

	for _, tolerant := range []bool{false, true} {
		prog, err := New("x = /a{/u", &Options{Tolerant: tolerant}).Parse()
		assert.Nil(t, prog)
		var de *diag.Error
		require.True(t, errors.As(err, &de), "got %T", err)
		assert.Equal(t, diag.RegexSyntax, de.Kind)
		assert.Equal(t, 4, de.Index)
		assert.NotNil(t, de.Cause())
	}

	expr, err = ParseExpression(`/(/`, &Options{RegexMode: jsregexp.Skip})
	require.NoError(t, err)
	assert.Nil(t, expr.(*ast.Literal).Regex.Result)
}

func TestTolerant(t *testing.T) {
	_, err := ParseScript("function () {", nil)
	require.Error(t, err)

	prog, err := ParseScript("function () {", &Options{Tolerant: true})
	require.NotNil(t, prog)
	var list diag.List
	require.True(t, errors.As(err, &list), "got %T", err)
	assert.NotEmpty(t, list)
	require.Equal(t, 1, prog.Body.Len())
	assert.IsType(t, &ast.BadStatement{}, prog.Body.At(0))

	p := New("var = 1;\nx = 2", &Options{Tolerant: true})
	prog, err = p.Parse()
	require.Error(t, err)
	stmts := body(t, prog)
	require.Len(t, stmts, 2)
	assert.IsType(t, &ast.BadStatement{}, stmts[0])
	assert.Equal(t, 0, stmts[0].Base().Start)
	assert.Equal(t, 8, stmts[0].Base().End)
	assert.IsType(t, &ast.ExpressionStatement{}, stmts[1])
	assert.Len(t, p.Errors(), 1)

	// Early errors are recorded without dropping the statement.
	var hooked []*diag.Error
	opts := &Options{Tolerant: true, ErrorHook: func(e *diag.Error) { hooked = append(hooked, e) }}
	prog, err = ParseScript(`"use strict"; var eval = 1; 010`, opts)
	require.Error(t, err)
	stmts = body(t, prog)
	require.Len(t, stmts, 3)
	assert.IsType(t, &ast.VariableDeclaration{}, stmts[1])
	assert.Len(t, hooked, 2)

	for src, types := range map[string][]ast.Statement{
		"'use strict'; with (a) {}; f(a)":       {&ast.ExpressionStatement{}, &ast.WithStatement{}, &ast.EmptyStatement{}, &ast.ExpressionStatement{}},
		"a: a: ;\nb()":                          {&ast.LabeledStatement{}, &ast.ExpressionStatement{}},
		"class A { static prototype = 1 }\nb()": {&ast.ClassDeclaration{}, &ast.ExpressionStatement{}},
		"class A { get constructor() {} }":      {&ast.ClassDeclaration{}},
		"while (1) { break a }":                 {&ast.WhileStatement{}},
	} {
		p := New(src, &Options{Tolerant: true})
		prog, err := p.Parse()
		require.Error(t, err, src)
		stmts := body(t, prog)
		require.Len(t, stmts, len(types), src)
		for i, typ := range types {
			assert.IsType(t, typ, stmts[i], src)
		}
		require.Len(t, p.Errors(), 1, src)
		assert.Equal(t, diag.Early, p.Errors()[0].Kind, src)
	}

	// Recovery skips a brace-delimited run whole, across lines.
	p = New("var = {\n  a: f()\n};\nx", &Options{Tolerant: true})
	prog, err = p.Parse()
	require.Error(t, err)
	stmts = body(t, prog)
	require.Len(t, stmts, 2)
	assert.IsType(t, &ast.BadStatement{}, stmts[0])
	assert.IsType(t, &ast.ExpressionStatement{}, stmts[1])
	assert.Len(t, p.Errors(), 1)
}

func TestBreakContinueAndLabels(t *testing.T) {
	_, err := ParseScript("a: for (;;) { for (;;) { continue a; } }", nil)
	assert.NoError(t, err)

	for src, msg := range map[string]string{
		"break;":                   "Unsyntactic break",
		"while (1) { continue b }": "Unsyntactic continue",
		"a: a: ;":                  "Label 'a' is already declared",
		"return 1":                 "'return' outside of function",
	} {
		de := parseErr(t, src, nil)
		assert.Equal(t, msg, de.Description, src)
	}

	_, err = ParseScript("return 1", &Options{AllowReturnOutsideFunction: true})
	assert.NoError(t, err)
}

func TestModules(t *testing.T) {
	prog, err := ParseModule(`import a, { b as c } from "m"; export { c as default }; export * as ns from "n";`, nil)
	require.NoError(t, err)
	stmts := body(t, prog)
	require.Len(t, stmts, 3)
	imp := stmts[0].(*ast.ImportDeclaration)
	assert.Equal(t, 2, imp.Specifiers.Len())
	assert.Equal(t, "m", imp.Source.Value)
	assert.IsType(t, &ast.ExportNamedDeclaration{}, stmts[1])
	assert.IsType(t, &ast.ExportAllDeclaration{}, stmts[2])

	de := parseErr(t, "export { nope }", &Options{SourceType: "module"})
	assert.Equal(t, "Export 'nope' is not defined", de.Description)

	de = parseErr(t, "export default 1; export default 2", &Options{SourceType: "module"})
	assert.Equal(t, "Duplicate export 'default'", de.Description)

	_, err = ParseScript(`import a from "m"`, nil)
	assert.Error(t, err)

	expr, err := ParseExpression(`import("x")`, nil)
	require.NoError(t, err)
	assert.IsType(t, &ast.ImportExpression{}, expr)
}

func TestJSX(t *testing.T) {
	opts := &Options{JSX: true}
	expr, err := ParseExpression(`<div className="a">hi {name}<br/></div>`, opts)
	require.NoError(t, err)
	el, ok := expr.(*jsx.Element)
	require.True(t, ok, "got %T", expr)
	assert.Equal(t, 0, el.Base().Start)
	assert.Equal(t, 39, el.Base().End)

	opening := el.OpeningElement
	assert.Equal(t, "div", opening.Name.(*jsx.Identifier).Name)
	assert.False(t, opening.SelfClosing)
	require.Equal(t, 1, opening.Attributes.Len())
	attr := opening.Attributes.At(0).(*jsx.Attribute)
	assert.Equal(t, "className", attr.Name.(*jsx.Identifier).Name)
	assert.Equal(t, "a", attr.Value.(*ast.Literal).Value)

	children := el.Children.Slice()
	require.Len(t, children, 3)
	assert.Equal(t, "hi ", children[0].(*jsx.Text).Value)
	container := children[1].(*jsx.ExpressionContainer)
	assert.Equal(t, "name", container.Expression.(*ast.Identifier).Name)
	assert.True(t, children[2].(*jsx.Element).OpeningElement.SelfClosing)
	assert.Equal(t, "div", el.ClosingElement.Name.(*jsx.Identifier).Name)

	expr, err = ParseExpression("<>a</>", opts)
	require.NoError(t, err)
	frag, ok := expr.(*jsx.Fragment)
	require.True(t, ok, "got %T", expr)
	assert.Equal(t, 1, frag.Children.Len())

	expr, err = ParseExpression("<a.b.c />", opts)
	require.NoError(t, err)
	member := expr.(*jsx.Element).OpeningElement.Name.(*jsx.MemberExpression)
	assert.Equal(t, "a.b.c", qualifiedJSXName(member))

	prog, err := ParseScript("const x = <a {...props} b />;\ny", opts)
	require.NoError(t, err)
	assert.Len(t, body(t, prog), 2)

	for src, msg := range map[string]string{
		"<a></b>":    "Expected corresponding JSX closing tag for <a>",
		"<a/><b/>":   "Adjacent JSX elements must be wrapped in an enclosing tag",
		"<a b={} />": "JSX attributes must only be assigned a non-empty expression",
		"<a b=c />":  "JSX value should be either an expression or a quoted JSX text",
	} {
		de := parseErr(t, src, opts)
		assert.Equal(t, msg, de.Description, src)
	}

	_, err = ParseExpression("<a />", nil)
	assert.Error(t, err)
}

// checkSpans walks n and checks that every node carries its range and
// location and lies inside its parent in source order.
func checkSpans(t *testing.T, p *Parser, n ast.Node) {
	b := n.Base()
	require.NotNil(t, b.Range, "%s", n.Type())
	assert.Equal(t, token.Range{b.Start, b.End}, *b.Range)
	require.NotNil(t, b.Loc)
	assert.Equal(t, p.scan.Position(b.Start), b.Loc.Start)
	assert.Equal(t, p.scan.Position(b.End), b.Loc.End)
	if id, ok := n.(*ast.Identifier); ok {
		assert.Equal(t, id.Name, p.input[id.Start:id.End])
	}
	last := b.Start
	for c := n.ChildNodes(); c.Next(); {
		child := c.Current().Base()
		assert.GreaterOrEqual(t, child.Start, last, "%s child of %s", c.Current().Type(), n.Type())
		assert.LessOrEqual(t, child.End, b.End, "%s child of %s", c.Current().Type(), n.Type())
		last = child.Start
		checkSpans(t, p, c.Current())
	}
}

const spanSample = `const {a, b: [c = 1, ...d]} = obj;
function* gen(x, y = 2) { yield x ** y; }
class K extends Base {
  #p = 1;
  static s() { return this.#p?.q; }
  get v() { return ` + "`t${a}u`" + `; }
}
label: for (let i of list) { if (i) continue label; else break; }
async () => { await tag` + "`x${1}`" + `; };
try { new K(...args); } catch ({ message }) { m = message; } finally {}
switch (a) { case 1: a++; default: }
`

func TestRanges(t *testing.T) {
	p := New(spanSample, &Options{Range: true, Location: true, Source: "sample.js"})
	prog, err := p.Parse()
	require.NoError(t, err)
	assert.Equal(t, 0, prog.Start)
	assert.Equal(t, len(spanSample), prog.End)
	assert.Equal(t, "sample.js", prog.Loc.Source)
	checkSpans(t, p, prog)
}

type renamer struct {
	ast.RewriterBase
	from, to string
}

func (r *renamer) VisitIdentifier(n *ast.Identifier) ast.Node {
	if n.Name != r.from {
		return n
	}
	c := *n
	c.Name = r.to
	return &c
}

func TestRewrite(t *testing.T) {
	prog, err := ParseScript(spanSample, nil)
	require.NoError(t, err)

	out, err := ast.Rewrite(&ast.RewriterBase{}, prog)
	require.NoError(t, err)
	assert.Same(t, prog, out)

	r := &renamer{from: "list", to: "items"}
	r.Self = r
	out, err = ast.Rewrite(r, prog)
	require.NoError(t, err)
	rewritten := out.(*ast.Program)
	require.NotSame(t, prog, rewritten)
	require.Equal(t, prog.Body.Len(), rewritten.Body.Len())
	for i := 0; i < prog.Body.Len(); i++ {
		if _, ok := prog.Body.At(i).(*ast.LabeledStatement); ok {
			assert.NotSame(t, prog.Body.At(i), rewritten.Body.At(i))
			continue
		}
		assert.Same(t, prog.Body.At(i), rewritten.Body.At(i), "statement %d", i)
	}

	var buf bytes.Buffer
	require.NoError(t, ast.Fprint(&buf, rewritten))
	assert.Contains(t, buf.String(), "items")
	assert.NotContains(t, buf.String(), "list")
}

func TestTokensAndComments(t *testing.T) {
	p := New("a /* c */ + 1 // d", &Options{Tokens: true, Comments: true})
	_, err := p.Parse()
	require.NoError(t, err)

	var raw []string
	for _, w := range p.Tokens() {
		raw = append(raw, w.Raw)
	}
	assert.Equal(t, []string{"a", "+", "1"}, raw)

	comments := p.Comments()
	require.Len(t, comments, 2)
	assert.True(t, comments[0].Block)
	assert.Equal(t, " c ", comments[0].Value)
	assert.Equal(t, " d", comments[1].Value)
}

func TestLoadOptions(t *testing.T) {
	opts, err := LoadOptions([]byte("sourceType: module\njsx: true\nregexMode: skip\nrange: true\n"))
	require.NoError(t, err)
	assert.Equal(t, "module", opts.SourceType)
	assert.True(t, opts.JSX)
	assert.True(t, opts.Range)
	assert.Equal(t, jsregexp.Skip, opts.RegexMode)

	opts, err = LoadOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, "script", opts.SourceType)
	assert.Equal(t, jsregexp.Validate, opts.RegexMode)

	_, err = LoadOptions([]byte("sourceType: amd\n"))
	assert.Error(t, err)
	_, err = LoadOptions([]byte("colour: red\n"))
	assert.Error(t, err)
	_, err = LoadOptions([]byte("regexMode: eager\n"))
	assert.Error(t, err)
}
