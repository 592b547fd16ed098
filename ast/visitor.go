package ast

import (
	"fmt"
	"reflect"
)

// Visitor has one method per node kind. Extension nodes from other
// packages arrive at VisitExtension. Every method returns the node that
// replaces its argument; returning the argument keeps it.
type Visitor interface {
	VisitProgram(n *Program) Node
	VisitExpressionStatement(n *ExpressionStatement) Node
	VisitBlockStatement(n *BlockStatement) Node
	VisitStaticBlock(n *StaticBlock) Node
	VisitEmptyStatement(n *EmptyStatement) Node
	VisitDebuggerStatement(n *DebuggerStatement) Node
	VisitWithStatement(n *WithStatement) Node
	VisitReturnStatement(n *ReturnStatement) Node
	VisitLabeledStatement(n *LabeledStatement) Node
	VisitBreakStatement(n *BreakStatement) Node
	VisitContinueStatement(n *ContinueStatement) Node
	VisitIfStatement(n *IfStatement) Node
	VisitSwitchStatement(n *SwitchStatement) Node
	VisitSwitchCase(n *SwitchCase) Node
	VisitThrowStatement(n *ThrowStatement) Node
	VisitTryStatement(n *TryStatement) Node
	VisitCatchClause(n *CatchClause) Node
	VisitWhileStatement(n *WhileStatement) Node
	VisitDoWhileStatement(n *DoWhileStatement) Node
	VisitForStatement(n *ForStatement) Node
	VisitForInStatement(n *ForInStatement) Node
	VisitForOfStatement(n *ForOfStatement) Node
	VisitFunctionDeclaration(n *FunctionDeclaration) Node
	VisitVariableDeclaration(n *VariableDeclaration) Node
	VisitVariableDeclarator(n *VariableDeclarator) Node
	VisitClassDeclaration(n *ClassDeclaration) Node
	VisitBadStatement(n *BadStatement) Node
	VisitIdentifier(n *Identifier) Node
	VisitPrivateIdentifier(n *PrivateIdentifier) Node
	VisitLiteral(n *Literal) Node
	VisitThisExpression(n *ThisExpression) Node
	VisitSuper(n *Super) Node
	VisitArrayExpression(n *ArrayExpression) Node
	VisitObjectExpression(n *ObjectExpression) Node
	VisitProperty(n *Property) Node
	VisitFunctionExpression(n *FunctionExpression) Node
	VisitArrowFunctionExpression(n *ArrowFunctionExpression) Node
	VisitClassExpression(n *ClassExpression) Node
	VisitClassBody(n *ClassBody) Node
	VisitMethodDefinition(n *MethodDefinition) Node
	VisitPropertyDefinition(n *PropertyDefinition) Node
	VisitTaggedTemplateExpression(n *TaggedTemplateExpression) Node
	VisitTemplateLiteral(n *TemplateLiteral) Node
	VisitTemplateElement(n *TemplateElement) Node
	VisitUnaryExpression(n *UnaryExpression) Node
	VisitUpdateExpression(n *UpdateExpression) Node
	VisitBinaryExpression(n *BinaryExpression) Node
	VisitLogicalExpression(n *LogicalExpression) Node
	VisitAssignmentExpression(n *AssignmentExpression) Node
	VisitConditionalExpression(n *ConditionalExpression) Node
	VisitCallExpression(n *CallExpression) Node
	VisitNewExpression(n *NewExpression) Node
	VisitMemberExpression(n *MemberExpression) Node
	VisitChainExpression(n *ChainExpression) Node
	VisitSequenceExpression(n *SequenceExpression) Node
	VisitYieldExpression(n *YieldExpression) Node
	VisitAwaitExpression(n *AwaitExpression) Node
	VisitMetaProperty(n *MetaProperty) Node
	VisitImportExpression(n *ImportExpression) Node
	VisitSpreadElement(n *SpreadElement) Node
	VisitBadExpression(n *BadExpression) Node
	VisitObjectPattern(n *ObjectPattern) Node
	VisitArrayPattern(n *ArrayPattern) Node
	VisitRestElement(n *RestElement) Node
	VisitAssignmentPattern(n *AssignmentPattern) Node
	VisitImportDeclaration(n *ImportDeclaration) Node
	VisitImportSpecifier(n *ImportSpecifier) Node
	VisitImportDefaultSpecifier(n *ImportDefaultSpecifier) Node
	VisitImportNamespaceSpecifier(n *ImportNamespaceSpecifier) Node
	VisitImportAttribute(n *ImportAttribute) Node
	VisitExportNamedDeclaration(n *ExportNamedDeclaration) Node
	VisitExportSpecifier(n *ExportSpecifier) Node
	VisitExportDefaultDeclaration(n *ExportDefaultDeclaration) Node
	VisitExportAllDeclaration(n *ExportAllDeclaration) Node
	VisitExtension(n Node) Node
}

// VisitorBase walks every child through Self and returns each node
// unchanged. Embed it and set Self to the embedding visitor so that
// overridden methods are reached from the default ones.
type VisitorBase struct {
	Self Visitor
}

func (b *VisitorBase) self() Visitor {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *VisitorBase) walk(n Node) Node {
	v := b.self()
	for c := n.ChildNodes(); c.Next(); {
		c.Current().Accept(v)
	}
	return n
}

func (b *VisitorBase) VisitProgram(n *Program) Node                                   { return b.walk(n) }
func (b *VisitorBase) VisitExpressionStatement(n *ExpressionStatement) Node           { return b.walk(n) }
func (b *VisitorBase) VisitBlockStatement(n *BlockStatement) Node                     { return b.walk(n) }
func (b *VisitorBase) VisitStaticBlock(n *StaticBlock) Node                           { return b.walk(n) }
func (b *VisitorBase) VisitEmptyStatement(n *EmptyStatement) Node                     { return b.walk(n) }
func (b *VisitorBase) VisitDebuggerStatement(n *DebuggerStatement) Node               { return b.walk(n) }
func (b *VisitorBase) VisitWithStatement(n *WithStatement) Node                       { return b.walk(n) }
func (b *VisitorBase) VisitReturnStatement(n *ReturnStatement) Node                   { return b.walk(n) }
func (b *VisitorBase) VisitLabeledStatement(n *LabeledStatement) Node                 { return b.walk(n) }
func (b *VisitorBase) VisitBreakStatement(n *BreakStatement) Node                     { return b.walk(n) }
func (b *VisitorBase) VisitContinueStatement(n *ContinueStatement) Node               { return b.walk(n) }
func (b *VisitorBase) VisitIfStatement(n *IfStatement) Node                           { return b.walk(n) }
func (b *VisitorBase) VisitSwitchStatement(n *SwitchStatement) Node                   { return b.walk(n) }
func (b *VisitorBase) VisitSwitchCase(n *SwitchCase) Node                             { return b.walk(n) }
func (b *VisitorBase) VisitThrowStatement(n *ThrowStatement) Node                     { return b.walk(n) }
func (b *VisitorBase) VisitTryStatement(n *TryStatement) Node                         { return b.walk(n) }
func (b *VisitorBase) VisitCatchClause(n *CatchClause) Node                           { return b.walk(n) }
func (b *VisitorBase) VisitWhileStatement(n *WhileStatement) Node                     { return b.walk(n) }
func (b *VisitorBase) VisitDoWhileStatement(n *DoWhileStatement) Node                 { return b.walk(n) }
func (b *VisitorBase) VisitForStatement(n *ForStatement) Node                         { return b.walk(n) }
func (b *VisitorBase) VisitForInStatement(n *ForInStatement) Node                     { return b.walk(n) }
func (b *VisitorBase) VisitForOfStatement(n *ForOfStatement) Node                     { return b.walk(n) }
func (b *VisitorBase) VisitFunctionDeclaration(n *FunctionDeclaration) Node           { return b.walk(n) }
func (b *VisitorBase) VisitVariableDeclaration(n *VariableDeclaration) Node           { return b.walk(n) }
func (b *VisitorBase) VisitVariableDeclarator(n *VariableDeclarator) Node             { return b.walk(n) }
func (b *VisitorBase) VisitClassDeclaration(n *ClassDeclaration) Node                 { return b.walk(n) }
func (b *VisitorBase) VisitBadStatement(n *BadStatement) Node                         { return b.walk(n) }
func (b *VisitorBase) VisitIdentifier(n *Identifier) Node                             { return b.walk(n) }
func (b *VisitorBase) VisitPrivateIdentifier(n *PrivateIdentifier) Node               { return b.walk(n) }
func (b *VisitorBase) VisitLiteral(n *Literal) Node                                   { return b.walk(n) }
func (b *VisitorBase) VisitThisExpression(n *ThisExpression) Node                     { return b.walk(n) }
func (b *VisitorBase) VisitSuper(n *Super) Node                                       { return b.walk(n) }
func (b *VisitorBase) VisitArrayExpression(n *ArrayExpression) Node                   { return b.walk(n) }
func (b *VisitorBase) VisitObjectExpression(n *ObjectExpression) Node                 { return b.walk(n) }
func (b *VisitorBase) VisitProperty(n *Property) Node                                 { return b.walk(n) }
func (b *VisitorBase) VisitFunctionExpression(n *FunctionExpression) Node             { return b.walk(n) }
func (b *VisitorBase) VisitArrowFunctionExpression(n *ArrowFunctionExpression) Node   { return b.walk(n) }
func (b *VisitorBase) VisitClassExpression(n *ClassExpression) Node                   { return b.walk(n) }
func (b *VisitorBase) VisitClassBody(n *ClassBody) Node                               { return b.walk(n) }
func (b *VisitorBase) VisitMethodDefinition(n *MethodDefinition) Node                 { return b.walk(n) }
func (b *VisitorBase) VisitPropertyDefinition(n *PropertyDefinition) Node             { return b.walk(n) }
func (b *VisitorBase) VisitTaggedTemplateExpression(n *TaggedTemplateExpression) Node { return b.walk(n) }
func (b *VisitorBase) VisitTemplateLiteral(n *TemplateLiteral) Node                   { return b.walk(n) }
func (b *VisitorBase) VisitTemplateElement(n *TemplateElement) Node                   { return b.walk(n) }
func (b *VisitorBase) VisitUnaryExpression(n *UnaryExpression) Node                   { return b.walk(n) }
func (b *VisitorBase) VisitUpdateExpression(n *UpdateExpression) Node                 { return b.walk(n) }
func (b *VisitorBase) VisitBinaryExpression(n *BinaryExpression) Node                 { return b.walk(n) }
func (b *VisitorBase) VisitLogicalExpression(n *LogicalExpression) Node               { return b.walk(n) }
func (b *VisitorBase) VisitAssignmentExpression(n *AssignmentExpression) Node         { return b.walk(n) }
func (b *VisitorBase) VisitConditionalExpression(n *ConditionalExpression) Node       { return b.walk(n) }
func (b *VisitorBase) VisitCallExpression(n *CallExpression) Node                     { return b.walk(n) }
func (b *VisitorBase) VisitNewExpression(n *NewExpression) Node                       { return b.walk(n) }
func (b *VisitorBase) VisitMemberExpression(n *MemberExpression) Node                 { return b.walk(n) }
func (b *VisitorBase) VisitChainExpression(n *ChainExpression) Node                   { return b.walk(n) }
func (b *VisitorBase) VisitSequenceExpression(n *SequenceExpression) Node             { return b.walk(n) }
func (b *VisitorBase) VisitYieldExpression(n *YieldExpression) Node                   { return b.walk(n) }
func (b *VisitorBase) VisitAwaitExpression(n *AwaitExpression) Node                   { return b.walk(n) }
func (b *VisitorBase) VisitMetaProperty(n *MetaProperty) Node                         { return b.walk(n) }
func (b *VisitorBase) VisitImportExpression(n *ImportExpression) Node                 { return b.walk(n) }
func (b *VisitorBase) VisitSpreadElement(n *SpreadElement) Node                       { return b.walk(n) }
func (b *VisitorBase) VisitBadExpression(n *BadExpression) Node                       { return b.walk(n) }
func (b *VisitorBase) VisitObjectPattern(n *ObjectPattern) Node                       { return b.walk(n) }
func (b *VisitorBase) VisitArrayPattern(n *ArrayPattern) Node                         { return b.walk(n) }
func (b *VisitorBase) VisitRestElement(n *RestElement) Node                           { return b.walk(n) }
func (b *VisitorBase) VisitAssignmentPattern(n *AssignmentPattern) Node               { return b.walk(n) }
func (b *VisitorBase) VisitImportDeclaration(n *ImportDeclaration) Node               { return b.walk(n) }
func (b *VisitorBase) VisitImportSpecifier(n *ImportSpecifier) Node                   { return b.walk(n) }
func (b *VisitorBase) VisitImportDefaultSpecifier(n *ImportDefaultSpecifier) Node     { return b.walk(n) }
func (b *VisitorBase) VisitImportNamespaceSpecifier(n *ImportNamespaceSpecifier) Node { return b.walk(n) }
func (b *VisitorBase) VisitImportAttribute(n *ImportAttribute) Node                   { return b.walk(n) }
func (b *VisitorBase) VisitExportNamedDeclaration(n *ExportNamedDeclaration) Node     { return b.walk(n) }
func (b *VisitorBase) VisitExportSpecifier(n *ExportSpecifier) Node                   { return b.walk(n) }
func (b *VisitorBase) VisitExportDefaultDeclaration(n *ExportDefaultDeclaration) Node { return b.walk(n) }
func (b *VisitorBase) VisitExportAllDeclaration(n *ExportAllDeclaration) Node         { return b.walk(n) }

// VisitExtension walks the children of nodes it does not know.
func (b *VisitorBase) VisitExtension(n Node) Node { return b.walk(n) }

// RewriterBase rebuilds every node from its rewritten children. A node
// whose children all come back unchanged is returned as is, so an identity
// rewrite allocates nothing.
type RewriterBase struct {
	Self Visitor
}

func (r *RewriterBase) self() Visitor {
	if r.Self != nil {
		return r.Self
	}
	return r
}

func (r *RewriterBase) VisitProgram(n *Program) Node {
	return n.UpdateWith(VisitAndConvertList(r.self(), n.Body))
}

func (r *RewriterBase) VisitExpressionStatement(n *ExpressionStatement) Node {
	return n.UpdateWith(VisitAndConvert(r.self(), n.Expression))
}

func (r *RewriterBase) VisitBlockStatement(n *BlockStatement) Node {
	return n.UpdateWith(VisitAndConvertList(r.self(), n.Body))
}

func (r *RewriterBase) VisitStaticBlock(n *StaticBlock) Node {
	return n.UpdateWith(VisitAndConvertList(r.self(), n.Body))
}

func (r *RewriterBase) VisitEmptyStatement(n *EmptyStatement) Node       { return n }
func (r *RewriterBase) VisitDebuggerStatement(n *DebuggerStatement) Node { return n }

func (r *RewriterBase) VisitWithStatement(n *WithStatement) Node {
	v := r.self()
	return n.UpdateWith(VisitAndConvert(v, n.Object), VisitAndConvert(v, n.Body))
}

func (r *RewriterBase) VisitReturnStatement(n *ReturnStatement) Node {
	return n.UpdateWith(VisitAndConvertOptional(r.self(), n.Argument))
}

func (r *RewriterBase) VisitLabeledStatement(n *LabeledStatement) Node {
	v := r.self()
	return n.UpdateWith(VisitAndConvertOptional(v, n.Label), VisitAndConvert(v, n.Body))
}

func (r *RewriterBase) VisitBreakStatement(n *BreakStatement) Node {
	return n.UpdateWith(VisitAndConvertOptional(r.self(), n.Label))
}

func (r *RewriterBase) VisitContinueStatement(n *ContinueStatement) Node {
	return n.UpdateWith(VisitAndConvertOptional(r.self(), n.Label))
}

func (r *RewriterBase) VisitIfStatement(n *IfStatement) Node {
	v := r.self()
	return n.UpdateWith(
		VisitAndConvert(v, n.Test),
		VisitAndConvert(v, n.Consequent),
		VisitAndConvertOptional(v, n.Alternate),
	)
}

func (r *RewriterBase) VisitSwitchStatement(n *SwitchStatement) Node {
	v := r.self()
	return n.UpdateWith(VisitAndConvert(v, n.Discriminant), VisitAndConvertList(v, n.Cases))
}

func (r *RewriterBase) VisitSwitchCase(n *SwitchCase) Node {
	v := r.self()
	return n.UpdateWith(VisitAndConvertOptional(v, n.Test), VisitAndConvertList(v, n.Consequent))
}

func (r *RewriterBase) VisitThrowStatement(n *ThrowStatement) Node {
	return n.UpdateWith(VisitAndConvert(r.self(), n.Argument))
}

func (r *RewriterBase) VisitTryStatement(n *TryStatement) Node {
	v := r.self()
	return n.UpdateWith(
		VisitAndConvertOptional(v, n.Block),
		VisitAndConvertOptional(v, n.Handler),
		VisitAndConvertOptional(v, n.Finalizer),
	)
}

func (r *RewriterBase) VisitCatchClause(n *CatchClause) Node {
	v := r.self()
	return n.UpdateWith(VisitAndConvertOptional(v, n.Param), VisitAndConvertOptional(v, n.Body))
}

func (r *RewriterBase) VisitWhileStatement(n *WhileStatement) Node {
	v := r.self()
	return n.UpdateWith(VisitAndConvert(v, n.Test), VisitAndConvert(v, n.Body))
}

func (r *RewriterBase) VisitDoWhileStatement(n *DoWhileStatement) Node {
	v := r.self()
	return n.UpdateWith(VisitAndConvert(v, n.Body), VisitAndConvert(v, n.Test))
}

func (r *RewriterBase) VisitForStatement(n *ForStatement) Node {
	v := r.self()
	return n.UpdateWith(
		VisitAndConvertOptional(v, n.Init),
		VisitAndConvertOptional(v, n.Test),
		VisitAndConvertOptional(v, n.Update),
		VisitAndConvert(v, n.Body),
	)
}

func (r *RewriterBase) VisitForInStatement(n *ForInStatement) Node {
	v := r.self()
	return n.UpdateWith(VisitAndConvert(v, n.Left), VisitAndConvert(v, n.Right), VisitAndConvert(v, n.Body))
}

func (r *RewriterBase) VisitForOfStatement(n *ForOfStatement) Node {
	v := r.self()
	return n.UpdateWith(VisitAndConvert(v, n.Left), VisitAndConvert(v, n.Right), VisitAndConvert(v, n.Body))
}

func (r *RewriterBase) VisitFunctionDeclaration(n *FunctionDeclaration) Node {
	v := r.self()
	return n.UpdateWith(
		VisitAndConvertOptional(v, n.ID),
		VisitAndConvertList(v, n.Params),
		VisitAndConvertOptional(v, n.Body),
	)
}

func (r *RewriterBase) VisitVariableDeclaration(n *VariableDeclaration) Node {
	return n.UpdateWith(VisitAndConvertList(r.self(), n.Declarations))
}

func (r *RewriterBase) VisitVariableDeclarator(n *VariableDeclarator) Node {
	v := r.self()
	return n.UpdateWith(VisitAndConvert(v, n.ID), VisitAndConvertOptional(v, n.Init))
}

func (r *RewriterBase) VisitClassDeclaration(n *ClassDeclaration) Node {
	v := r.self()
	return n.UpdateWith(
		VisitAndConvertOptional(v, n.ID),
		VisitAndConvertOptional(v, n.SuperClass),
		VisitAndConvertOptional(v, n.Body),
	)
}

func (r *RewriterBase) VisitBadStatement(n *BadStatement) Node           { return n }
func (r *RewriterBase) VisitIdentifier(n *Identifier) Node               { return n }
func (r *RewriterBase) VisitPrivateIdentifier(n *PrivateIdentifier) Node { return n }
func (r *RewriterBase) VisitLiteral(n *Literal) Node                     { return n }
func (r *RewriterBase) VisitThisExpression(n *ThisExpression) Node       { return n }
func (r *RewriterBase) VisitSuper(n *Super) Node                         { return n }
func (r *RewriterBase) VisitTemplateElement(n *TemplateElement) Node     { return n }
func (r *RewriterBase) VisitBadExpression(n *BadExpression) Node         { return n }

func (r *RewriterBase) VisitArrayExpression(n *ArrayExpression) Node {
	return n.UpdateWith(VisitAndConvertList(r.self(), n.Elements))
}

func (r *RewriterBase) VisitObjectExpression(n *ObjectExpression) Node {
	return n.UpdateWith(VisitAndConvertList(r.self(), n.Properties))
}

func (r *RewriterBase) VisitProperty(n *Property) Node {
	v := r.self()
	if n.Shorthand {
		return n.UpdateWith(n.Key, VisitAndConvert(v, n.Value))
	}
	return n.UpdateWith(VisitAndConvert(v, n.Key), VisitAndConvert(v, n.Value))
}

func (r *RewriterBase) VisitFunctionExpression(n *FunctionExpression) Node {
	v := r.self()
	return n.UpdateWith(
		VisitAndConvertOptional(v, n.ID),
		VisitAndConvertList(v, n.Params),
		VisitAndConvertOptional(v, n.Body),
	)
}

func (r *RewriterBase) VisitArrowFunctionExpression(n *ArrowFunctionExpression) Node {
	v := r.self()
	return n.UpdateWith(VisitAndConvertList(v, n.Params), VisitAndConvert(v, n.Body))
}

func (r *RewriterBase) VisitClassExpression(n *ClassExpression) Node {
	v := r.self()
	return n.UpdateWith(
		VisitAndConvertOptional(v, n.ID),
		VisitAndConvertOptional(v, n.SuperClass),
		VisitAndConvertOptional(v, n.Body),
	)
}

func (r *RewriterBase) VisitClassBody(n *ClassBody) Node {
	return n.UpdateWith(VisitAndConvertList(r.self(), n.Body))
}

func (r *RewriterBase) VisitMethodDefinition(n *MethodDefinition) Node {
	v := r.self()
	return n.UpdateWith(VisitAndConvert(v, n.Key), VisitAndConvertOptional(v, n.Value))
}

func (r *RewriterBase) VisitPropertyDefinition(n *PropertyDefinition) Node {
	v := r.self()
	return n.UpdateWith(VisitAndConvert(v, n.Key), VisitAndConvertOptional(v, n.Value))
}

func (r *RewriterBase) VisitTaggedTemplateExpression(n *TaggedTemplateExpression) Node {
	v := r.self()
	return n.UpdateWith(VisitAndConvert(v, n.Tag), VisitAndConvertOptional(v, n.Quasi))
}

func (r *RewriterBase) VisitTemplateLiteral(n *TemplateLiteral) Node {
	v := r.self()
	return n.UpdateWith(VisitAndConvertList(v, n.Quasis), VisitAndConvertList(v, n.Expressions))
}

func (r *RewriterBase) VisitUnaryExpression(n *UnaryExpression) Node {
	return n.UpdateWith(VisitAndConvert(r.self(), n.Argument))
}

func (r *RewriterBase) VisitUpdateExpression(n *UpdateExpression) Node {
	return n.UpdateWith(VisitAndConvert(r.self(), n.Argument))
}

func (r *RewriterBase) VisitBinaryExpression(n *BinaryExpression) Node {
	v := r.self()
	return n.UpdateWith(VisitAndConvert(v, n.Left), VisitAndConvert(v, n.Right))
}

func (r *RewriterBase) VisitLogicalExpression(n *LogicalExpression) Node {
	v := r.self()
	return n.UpdateWith(VisitAndConvert(v, n.Left), VisitAndConvert(v, n.Right))
}

func (r *RewriterBase) VisitAssignmentExpression(n *AssignmentExpression) Node {
	v := r.self()
	return n.UpdateWith(VisitAndConvert(v, n.Left), VisitAndConvert(v, n.Right))
}

func (r *RewriterBase) VisitConditionalExpression(n *ConditionalExpression) Node {
	v := r.self()
	return n.UpdateWith(
		VisitAndConvert(v, n.Test),
		VisitAndConvert(v, n.Consequent),
		VisitAndConvert(v, n.Alternate),
	)
}

func (r *RewriterBase) VisitCallExpression(n *CallExpression) Node {
	v := r.self()
	return n.UpdateWith(VisitAndConvert(v, n.Callee), VisitAndConvertList(v, n.Arguments))
}

func (r *RewriterBase) VisitNewExpression(n *NewExpression) Node {
	v := r.self()
	return n.UpdateWith(VisitAndConvert(v, n.Callee), VisitAndConvertList(v, n.Arguments))
}

func (r *RewriterBase) VisitMemberExpression(n *MemberExpression) Node {
	v := r.self()
	return n.UpdateWith(VisitAndConvert(v, n.Object), VisitAndConvert(v, n.Property))
}

func (r *RewriterBase) VisitChainExpression(n *ChainExpression) Node {
	return n.UpdateWith(VisitAndConvert(r.self(), n.Expression))
}

func (r *RewriterBase) VisitSequenceExpression(n *SequenceExpression) Node {
	return n.UpdateWith(VisitAndConvertList(r.self(), n.Expressions))
}

func (r *RewriterBase) VisitYieldExpression(n *YieldExpression) Node {
	return n.UpdateWith(VisitAndConvertOptional(r.self(), n.Argument))
}

func (r *RewriterBase) VisitAwaitExpression(n *AwaitExpression) Node {
	return n.UpdateWith(VisitAndConvert(r.self(), n.Argument))
}

func (r *RewriterBase) VisitMetaProperty(n *MetaProperty) Node {
	v := r.self()
	return n.UpdateWith(VisitAndConvertOptional(v, n.Meta), VisitAndConvertOptional(v, n.Property))
}

func (r *RewriterBase) VisitImportExpression(n *ImportExpression) Node {
	v := r.self()
	return n.UpdateWith(VisitAndConvert(v, n.Source), VisitAndConvertOptional(v, n.Options))
}

func (r *RewriterBase) VisitSpreadElement(n *SpreadElement) Node {
	return n.UpdateWith(VisitAndConvert(r.self(), n.Argument))
}

func (r *RewriterBase) VisitObjectPattern(n *ObjectPattern) Node {
	return n.UpdateWith(VisitAndConvertList(r.self(), n.Properties))
}

func (r *RewriterBase) VisitArrayPattern(n *ArrayPattern) Node {
	return n.UpdateWith(VisitAndConvertList(r.self(), n.Elements))
}

func (r *RewriterBase) VisitRestElement(n *RestElement) Node {
	return n.UpdateWith(VisitAndConvert(r.self(), n.Argument))
}

func (r *RewriterBase) VisitAssignmentPattern(n *AssignmentPattern) Node {
	v := r.self()
	return n.UpdateWith(VisitAndConvert(v, n.Left), VisitAndConvert(v, n.Right))
}

func (r *RewriterBase) VisitImportDeclaration(n *ImportDeclaration) Node {
	v := r.self()
	return n.UpdateWith(
		VisitAndConvertList(v, n.Specifiers),
		VisitAndConvertOptional(v, n.Source),
		VisitAndConvertList(v, n.Attributes),
	)
}

func (r *RewriterBase) VisitImportSpecifier(n *ImportSpecifier) Node {
	v := r.self()
	local := VisitAndConvertOptional(v, n.Local)
	if n.Imported == Expression(n.Local) {
		return n.UpdateWith(local, local)
	}
	return n.UpdateWith(VisitAndConvert(v, n.Imported), local)
}

func (r *RewriterBase) VisitImportDefaultSpecifier(n *ImportDefaultSpecifier) Node {
	return n.UpdateWith(VisitAndConvertOptional(r.self(), n.Local))
}

func (r *RewriterBase) VisitImportNamespaceSpecifier(n *ImportNamespaceSpecifier) Node {
	return n.UpdateWith(VisitAndConvertOptional(r.self(), n.Local))
}

func (r *RewriterBase) VisitImportAttribute(n *ImportAttribute) Node {
	v := r.self()
	return n.UpdateWith(VisitAndConvert(v, n.Key), VisitAndConvertOptional(v, n.Value))
}

func (r *RewriterBase) VisitExportNamedDeclaration(n *ExportNamedDeclaration) Node {
	v := r.self()
	return n.UpdateWith(
		VisitAndConvertOptional(v, n.Declaration),
		VisitAndConvertList(v, n.Specifiers),
		VisitAndConvertOptional(v, n.Source),
		VisitAndConvertList(v, n.Attributes),
	)
}

func (r *RewriterBase) VisitExportSpecifier(n *ExportSpecifier) Node {
	v := r.self()
	local := VisitAndConvert(v, n.Local)
	if n.Local == n.Exported {
		return n.UpdateWith(local, local)
	}
	return n.UpdateWith(local, VisitAndConvert(v, n.Exported))
}

func (r *RewriterBase) VisitExportDefaultDeclaration(n *ExportDefaultDeclaration) Node {
	return n.UpdateWith(VisitAndConvert(r.self(), n.Declaration))
}

func (r *RewriterBase) VisitExportAllDeclaration(n *ExportAllDeclaration) Node {
	v := r.self()
	return n.UpdateWith(
		VisitAndConvertOptional(v, n.Exported),
		VisitAndConvertOptional(v, n.Source),
		VisitAndConvertList(v, n.Attributes),
	)
}

// VisitExtension panics with an *UnsupportedNodeError: a rewriter cannot
// rebuild a node kind it does not know.
func (r *RewriterBase) VisitExtension(n Node) Node {
	panic(&UnsupportedNodeError{Node: n})
}

// UnsupportedNodeError reports a node kind a rewriter cannot handle.
type UnsupportedNodeError struct {
	Node Node
}

func (e *UnsupportedNodeError) Error() string {
	return fmt.Sprintf("unsupported node type %s (%T)", e.Node.Type(), e.Node)
}

// ConversionError reports a visitor that replaced a child with a node that
// does not fit the child's slot, such as a statement in expression position.
type ConversionError struct {
	Node Node
	Want string
}

func (e *ConversionError) Error() string {
	if e.Node == nil {
		return fmt.Sprintf("cannot convert nil node to %s", e.Want)
	}
	return fmt.Sprintf("cannot convert %s to %s", e.Node.Type(), e.Want)
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

func convert[T Node](r Node) T {
	t, ok := r.(T)
	if !ok {
		panic(&ConversionError{Node: r, Want: typeName[T]()})
	}
	return t
}

// VisitAndConvert visits a required child and converts the result back to
// the child's type.
func VisitAndConvert[T Node](v Visitor, n T) T {
	return convert[T](n.Accept(v))
}

// VisitAndConvertOptional is VisitAndConvert for children that may be nil.
// A nil result is allowed and removes the child.
func VisitAndConvertOptional[T interface {
	comparable
	Node
}](v Visitor, n T) T {
	var zero T
	if n == zero {
		return zero
	}
	r := n.Accept(v)
	if r == nil {
		return zero
	}
	return convert[T](r)
}

// VisitAndConvertList visits every element of l. The result is l itself
// when every element came back unchanged. Nil elements stay nil.
func VisitAndConvertList[T Node](v Visitor, l *NodeList[T]) *NodeList[T] {
	var out []T
	for i := 0; i < l.Len(); i++ {
		elem := l.items[i]
		if Node(elem) == nil {
			continue
		}
		var next T
		if r := elem.Accept(v); r != nil {
			next = convert[T](r)
		}
		if out == nil {
			if Node(next) == Node(elem) {
				continue
			}
			out = make([]T, l.Len())
			copy(out, l.items[:i])
		}
		out[i] = next
	}
	if out == nil {
		return l
	}
	return ListOf(out)
}

// Walk visits n with v, ignoring the result. A nil n is a no-op.
func Walk(v Visitor, n Node) {
	if n != nil {
		n.Accept(v)
	}
}

// Rewrite visits n with v and returns the replacement. Unsupported nodes
// and failed conversions are returned as errors.
func Rewrite(v Visitor, n Node) (result Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case *UnsupportedNodeError:
				err = e
			case *ConversionError:
				err = e
			default:
				panic(r)
			}
		}
	}()
	if n == nil {
		return nil, nil
	}
	return n.Accept(v), nil
}
