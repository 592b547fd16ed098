package ast

// ImportDeclaration specifiers are *ImportSpecifier,
// *ImportDefaultSpecifier or *ImportNamespaceSpecifier.
type ImportDeclaration struct {
	NodeBase
	Specifiers *NodeList[Node]
	Source     *Literal
	Attributes *NodeList[*ImportAttribute]
}

func (*ImportDeclaration) Type() NodeType          { return NODE_IMPORT_DECLARATION }
func (*ImportDeclaration) statementNode()          {}
func (n *ImportDeclaration) Accept(v Visitor) Node { return v.VisitImportDeclaration(n) }
func (n *ImportDeclaration) ChildNodes() ChildNodes {
	return children(many(n.Specifiers), one(opt(n.Source)), many(n.Attributes))
}
func (n *ImportDeclaration) UpdateWith(specifiers *NodeList[Node], source *Literal, attributes *NodeList[*ImportAttribute]) *ImportDeclaration {
	if specifiers == n.Specifiers && source == n.Source && attributes == n.Attributes {
		return n
	}
	c := *n
	c.Specifiers, c.Source, c.Attributes = specifiers, source, attributes
	return &c
}

// ImportSpecifier.Imported is an *Identifier or a string *Literal.
type ImportSpecifier struct {
	NodeBase
	Imported Expression
	Local    *Identifier
}

func (*ImportSpecifier) Type() NodeType          { return NODE_IMPORT_SPECIFIER }
func (n *ImportSpecifier) Accept(v Visitor) Node { return v.VisitImportSpecifier(n) }
func (n *ImportSpecifier) ChildNodes() ChildNodes {
	if n.Imported == Expression(n.Local) {
		return children(one(opt(n.Local)))
	}
	return children(one(n.Imported), one(opt(n.Local)))
}
func (n *ImportSpecifier) UpdateWith(imported Expression, local *Identifier) *ImportSpecifier {
	if imported == n.Imported && local == n.Local {
		return n
	}
	c := *n
	c.Imported, c.Local = imported, local
	return &c
}

type ImportDefaultSpecifier struct {
	NodeBase
	Local *Identifier
}

func (*ImportDefaultSpecifier) Type() NodeType           { return NODE_IMPORT_DEFAULT_SPECIFIER }
func (n *ImportDefaultSpecifier) Accept(v Visitor) Node  { return v.VisitImportDefaultSpecifier(n) }
func (n *ImportDefaultSpecifier) ChildNodes() ChildNodes { return children(one(opt(n.Local))) }
func (n *ImportDefaultSpecifier) UpdateWith(local *Identifier) *ImportDefaultSpecifier {
	if local == n.Local {
		return n
	}
	c := *n
	c.Local = local
	return &c
}

type ImportNamespaceSpecifier struct {
	NodeBase
	Local *Identifier
}

func (*ImportNamespaceSpecifier) Type() NodeType           { return NODE_IMPORT_NAMESPACE_SPECIFIER }
func (n *ImportNamespaceSpecifier) Accept(v Visitor) Node  { return v.VisitImportNamespaceSpecifier(n) }
func (n *ImportNamespaceSpecifier) ChildNodes() ChildNodes { return children(one(opt(n.Local))) }
func (n *ImportNamespaceSpecifier) UpdateWith(local *Identifier) *ImportNamespaceSpecifier {
	if local == n.Local {
		return n
	}
	c := *n
	c.Local = local
	return &c
}

// ImportAttribute is one entry of a `with { type: "json" }` clause.
type ImportAttribute struct {
	NodeBase
	Key   Expression
	Value *Literal
}

func (*ImportAttribute) Type() NodeType          { return NODE_IMPORT_ATTRIBUTE }
func (n *ImportAttribute) Accept(v Visitor) Node { return v.VisitImportAttribute(n) }
func (n *ImportAttribute) ChildNodes() ChildNodes {
	return children(one(n.Key), one(opt(n.Value)))
}
func (n *ImportAttribute) UpdateWith(key Expression, value *Literal) *ImportAttribute {
	if key == n.Key && value == n.Value {
		return n
	}
	c := *n
	c.Key, c.Value = key, value
	return &c
}

type ExportNamedDeclaration struct {
	NodeBase
	Declaration Statement
	Specifiers  *NodeList[*ExportSpecifier]
	Source      *Literal
	Attributes  *NodeList[*ImportAttribute]
}

func (*ExportNamedDeclaration) Type() NodeType          { return NODE_EXPORT_NAMED_DECLARATION }
func (*ExportNamedDeclaration) statementNode()          {}
func (n *ExportNamedDeclaration) Accept(v Visitor) Node { return v.VisitExportNamedDeclaration(n) }
func (n *ExportNamedDeclaration) ChildNodes() ChildNodes {
	return children(one(n.Declaration), many(n.Specifiers), one(opt(n.Source)), many(n.Attributes))
}
func (n *ExportNamedDeclaration) UpdateWith(declaration Statement, specifiers *NodeList[*ExportSpecifier], source *Literal, attributes *NodeList[*ImportAttribute]) *ExportNamedDeclaration {
	if declaration == n.Declaration && specifiers == n.Specifiers && source == n.Source && attributes == n.Attributes {
		return n
	}
	c := *n
	c.Declaration, c.Specifiers, c.Source, c.Attributes = declaration, specifiers, source, attributes
	return &c
}

// ExportSpecifier names are *Identifier or string *Literal.
type ExportSpecifier struct {
	NodeBase
	Local    Expression
	Exported Expression
}

func (*ExportSpecifier) Type() NodeType          { return NODE_EXPORT_SPECIFIER }
func (n *ExportSpecifier) Accept(v Visitor) Node { return v.VisitExportSpecifier(n) }
func (n *ExportSpecifier) ChildNodes() ChildNodes {
	if n.Local == n.Exported {
		return children(one(n.Local))
	}
	return children(one(n.Local), one(n.Exported))
}
func (n *ExportSpecifier) UpdateWith(local, exported Expression) *ExportSpecifier {
	if local == n.Local && exported == n.Exported {
		return n
	}
	c := *n
	c.Local, c.Exported = local, exported
	return &c
}

// ExportDefaultDeclaration.Declaration is a *FunctionDeclaration, a
// *ClassDeclaration or an Expression.
type ExportDefaultDeclaration struct {
	NodeBase
	Declaration Node
}

func (*ExportDefaultDeclaration) Type() NodeType           { return NODE_EXPORT_DEFAULT_DECLARATION }
func (*ExportDefaultDeclaration) statementNode()           {}
func (n *ExportDefaultDeclaration) Accept(v Visitor) Node  { return v.VisitExportDefaultDeclaration(n) }
func (n *ExportDefaultDeclaration) ChildNodes() ChildNodes { return children(one(n.Declaration)) }
func (n *ExportDefaultDeclaration) UpdateWith(declaration Node) *ExportDefaultDeclaration {
	if declaration == n.Declaration {
		return n
	}
	c := *n
	c.Declaration = declaration
	return &c
}

type ExportAllDeclaration struct {
	NodeBase
	Exported   Expression
	Source     *Literal
	Attributes *NodeList[*ImportAttribute]
}

func (*ExportAllDeclaration) Type() NodeType          { return NODE_EXPORT_ALL_DECLARATION }
func (*ExportAllDeclaration) statementNode()          {}
func (n *ExportAllDeclaration) Accept(v Visitor) Node { return v.VisitExportAllDeclaration(n) }
func (n *ExportAllDeclaration) ChildNodes() ChildNodes {
	return children(one(n.Exported), one(opt(n.Source)), many(n.Attributes))
}
func (n *ExportAllDeclaration) UpdateWith(exported Expression, source *Literal, attributes *NodeList[*ImportAttribute]) *ExportAllDeclaration {
	if exported == n.Exported && source == n.Source && attributes == n.Attributes {
		return n
	}
	c := *n
	c.Exported, c.Source, c.Attributes = exported, source, attributes
	return &c
}

// ExtensionBase is embedded by node kinds defined in other packages, such
// as JSX. Those nodes report NODE_EXTENSION and dispatch to
// Visitor.VisitExtension.
type ExtensionBase struct {
	NodeBase
}

func (*ExtensionBase) Type() NodeType  { return NODE_EXTENSION }
func (*ExtensionBase) expressionNode() {}
