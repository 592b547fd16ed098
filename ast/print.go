package ast

import (
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
)

// Described is implemented by extension nodes that want their own name
// and attributes in Fprint output.
type Described interface {
	TypeName() string
	DebugAttributes() []string
}

// Fprint writes an indented debug dump of the tree rooted at n.
func Fprint(w io.Writer, n Node) error {
	p := &printer{w: w}
	p.print(n, 0)
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(indent int, format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s"+format+"\n", append([]any{strings.Repeat("  ", indent)}, args...)...)
}

func (p *printer) print(n Node, indent int) {
	if n == nil {
		p.printf(indent, "<nil>")
		return
	}
	name := n.Type().String()
	if d, ok := n.(Described); ok {
		name = d.TypeName()
	}
	b := n.Base()
	p.printf(indent, "%s [%d, %d]%s", name, b.Start, b.End, attributes(n))
	for c := n.ChildNodes(); c.Next(); {
		p.print(c.Current(), indent+1)
	}
}

// attributes renders the non-child fields worth seeing in a dump.
func attributes(n Node) string {
	var attrs []string
	add := func(k, v string) { attrs = append(attrs, k+"="+v) }
	flag := func(k string, on bool) {
		if on {
			attrs = append(attrs, k)
		}
	}
	switch n := n.(type) {
	case *Program:
		add("sourceType", n.SourceType)
		flag("strict", n.Strict)
	case *Identifier:
		add("name", n.Name)
	case *PrivateIdentifier:
		add("name", "#"+n.Name)
	case *Literal:
		add("value", literalValue(n))
	case *ExpressionStatement:
		if n.Directive != "" {
			add("directive", strconv.Quote(n.Directive))
		}
	case *VariableDeclaration:
		add("kind", n.Kind)
	case *Property:
		add("kind", n.Kind)
		flag("method", n.Method)
		flag("shorthand", n.Shorthand)
		flag("computed", n.Computed)
	case *MethodDefinition:
		add("kind", n.Kind)
		flag("static", n.Static)
		flag("computed", n.Computed)
	case *PropertyDefinition:
		flag("static", n.Static)
		flag("computed", n.Computed)
	case *FunctionDeclaration:
		flag("async", n.Async)
		flag("generator", n.Generator)
	case *FunctionExpression:
		flag("async", n.Async)
		flag("generator", n.Generator)
	case *ArrowFunctionExpression:
		flag("async", n.Async)
		flag("expression", n.Expression)
	case *UnaryExpression:
		add("operator", n.Operator)
	case *UpdateExpression:
		add("operator", n.Operator)
		flag("prefix", n.Prefix)
	case *BinaryExpression:
		add("operator", n.Operator)
	case *LogicalExpression:
		add("operator", n.Operator)
	case *AssignmentExpression:
		add("operator", n.Operator)
	case *MemberExpression:
		flag("computed", n.Computed)
		flag("optional", n.Optional)
	case *CallExpression:
		flag("optional", n.Optional)
	case *YieldExpression:
		flag("delegate", n.Delegate)
	case *ForOfStatement:
		flag("await", n.Await)
	case *TemplateElement:
		add("raw", strconv.Quote(n.Raw))
		if n.Cooked == nil {
			add("cooked", "<invalid>")
		}
		flag("tail", n.Tail)
	}
	if d, ok := n.(Described); ok {
		attrs = append(attrs, d.DebugAttributes()...)
	}
	if len(attrs) == 0 {
		return ""
	}
	return " " + strings.Join(attrs, " ")
}

func literalValue(n *Literal) string {
	switch v := n.Value.(type) {
	case string:
		return strconv.Quote(v)
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case *big.Int:
		return v.String() + "n"
	case *RegexValue:
		return "/" + v.Pattern + "/" + v.Flags
	case nil:
		if n.Kind == LITERAL_REGEXP && n.Regex != nil {
			return "/" + n.Regex.Pattern + "/" + n.Regex.Flags
		}
		return "null"
	}
	return n.Raw
}
