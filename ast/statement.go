package ast

type Program struct {
	NodeBase
	SourceType string // "script" or "module"
	Strict     bool
	Body       *NodeList[Statement]
}

func (*Program) Type() NodeType           { return NODE_PROGRAM }
func (n *Program) Accept(v Visitor) Node  { return v.VisitProgram(n) }
func (n *Program) ChildNodes() ChildNodes { return children(many(n.Body)) }
func (n *Program) UpdateWith(body *NodeList[Statement]) *Program {
	if body == n.Body {
		return n
	}
	c := *n
	c.Body = body
	return &c
}

// ExpressionStatement is also used for directives, which carry the raw
// text of their string literal in Directive.
type ExpressionStatement struct {
	NodeBase
	Expression Expression
	Directive  string
}

func (*ExpressionStatement) Type() NodeType           { return NODE_EXPRESSION_STATEMENT }
func (*ExpressionStatement) statementNode()           {}
func (n *ExpressionStatement) Accept(v Visitor) Node  { return v.VisitExpressionStatement(n) }
func (n *ExpressionStatement) ChildNodes() ChildNodes { return children(one(n.Expression)) }
func (n *ExpressionStatement) UpdateWith(expression Expression) *ExpressionStatement {
	if expression == n.Expression {
		return n
	}
	c := *n
	c.Expression = expression
	return &c
}

type BlockStatement struct {
	NodeBase
	Body *NodeList[Statement]
}

func (*BlockStatement) Type() NodeType           { return NODE_BLOCK_STATEMENT }
func (*BlockStatement) statementNode()           {}
func (n *BlockStatement) Accept(v Visitor) Node  { return v.VisitBlockStatement(n) }
func (n *BlockStatement) ChildNodes() ChildNodes { return children(many(n.Body)) }
func (n *BlockStatement) UpdateWith(body *NodeList[Statement]) *BlockStatement {
	if body == n.Body {
		return n
	}
	c := *n
	c.Body = body
	return &c
}

type StaticBlock struct {
	NodeBase
	Body *NodeList[Statement]
}

func (*StaticBlock) Type() NodeType           { return NODE_STATIC_BLOCK }
func (n *StaticBlock) Accept(v Visitor) Node  { return v.VisitStaticBlock(n) }
func (n *StaticBlock) ChildNodes() ChildNodes { return children(many(n.Body)) }
func (n *StaticBlock) UpdateWith(body *NodeList[Statement]) *StaticBlock {
	if body == n.Body {
		return n
	}
	c := *n
	c.Body = body
	return &c
}

type EmptyStatement struct {
	NodeBase
}

func (*EmptyStatement) Type() NodeType          { return NODE_EMPTY_STATEMENT }
func (*EmptyStatement) statementNode()          {}
func (n *EmptyStatement) Accept(v Visitor) Node { return v.VisitEmptyStatement(n) }
func (*EmptyStatement) ChildNodes() ChildNodes  { return children() }

type DebuggerStatement struct {
	NodeBase
}

func (*DebuggerStatement) Type() NodeType          { return NODE_DEBUGGER_STATEMENT }
func (*DebuggerStatement) statementNode()          {}
func (n *DebuggerStatement) Accept(v Visitor) Node { return v.VisitDebuggerStatement(n) }
func (*DebuggerStatement) ChildNodes() ChildNodes  { return children() }

type WithStatement struct {
	NodeBase
	Object Expression
	Body   Statement
}

func (*WithStatement) Type() NodeType          { return NODE_WITH_STATEMENT }
func (*WithStatement) statementNode()          {}
func (n *WithStatement) Accept(v Visitor) Node { return v.VisitWithStatement(n) }
func (n *WithStatement) ChildNodes() ChildNodes {
	return children(one(n.Object), one(n.Body))
}
func (n *WithStatement) UpdateWith(object Expression, body Statement) *WithStatement {
	if object == n.Object && body == n.Body {
		return n
	}
	c := *n
	c.Object, c.Body = object, body
	return &c
}

type ReturnStatement struct {
	NodeBase
	Argument Expression
}

func (*ReturnStatement) Type() NodeType           { return NODE_RETURN_STATEMENT }
func (*ReturnStatement) statementNode()           {}
func (n *ReturnStatement) Accept(v Visitor) Node  { return v.VisitReturnStatement(n) }
func (n *ReturnStatement) ChildNodes() ChildNodes { return children(one(n.Argument)) }
func (n *ReturnStatement) UpdateWith(argument Expression) *ReturnStatement {
	if argument == n.Argument {
		return n
	}
	c := *n
	c.Argument = argument
	return &c
}

type LabeledStatement struct {
	NodeBase
	Label *Identifier
	Body  Statement
}

func (*LabeledStatement) Type() NodeType          { return NODE_LABELED_STATEMENT }
func (*LabeledStatement) statementNode()          {}
func (n *LabeledStatement) Accept(v Visitor) Node { return v.VisitLabeledStatement(n) }
func (n *LabeledStatement) ChildNodes() ChildNodes {
	return children(one(opt(n.Label)), one(n.Body))
}
func (n *LabeledStatement) UpdateWith(label *Identifier, body Statement) *LabeledStatement {
	if label == n.Label && body == n.Body {
		return n
	}
	c := *n
	c.Label, c.Body = label, body
	return &c
}

type BreakStatement struct {
	NodeBase
	Label *Identifier
}

func (*BreakStatement) Type() NodeType           { return NODE_BREAK_STATEMENT }
func (*BreakStatement) statementNode()           {}
func (n *BreakStatement) Accept(v Visitor) Node  { return v.VisitBreakStatement(n) }
func (n *BreakStatement) ChildNodes() ChildNodes { return children(one(opt(n.Label))) }
func (n *BreakStatement) UpdateWith(label *Identifier) *BreakStatement {
	if label == n.Label {
		return n
	}
	c := *n
	c.Label = label
	return &c
}

type ContinueStatement struct {
	NodeBase
	Label *Identifier
}

func (*ContinueStatement) Type() NodeType           { return NODE_CONTINUE_STATEMENT }
func (*ContinueStatement) statementNode()           {}
func (n *ContinueStatement) Accept(v Visitor) Node  { return v.VisitContinueStatement(n) }
func (n *ContinueStatement) ChildNodes() ChildNodes { return children(one(opt(n.Label))) }
func (n *ContinueStatement) UpdateWith(label *Identifier) *ContinueStatement {
	if label == n.Label {
		return n
	}
	c := *n
	c.Label = label
	return &c
}

type IfStatement struct {
	NodeBase
	Test       Expression
	Consequent Statement
	Alternate  Statement
}

func (*IfStatement) Type() NodeType          { return NODE_IF_STATEMENT }
func (*IfStatement) statementNode()          {}
func (n *IfStatement) Accept(v Visitor) Node { return v.VisitIfStatement(n) }
func (n *IfStatement) ChildNodes() ChildNodes {
	return children(one(n.Test), one(n.Consequent), one(n.Alternate))
}
func (n *IfStatement) UpdateWith(test Expression, consequent, alternate Statement) *IfStatement {
	if test == n.Test && consequent == n.Consequent && alternate == n.Alternate {
		return n
	}
	c := *n
	c.Test, c.Consequent, c.Alternate = test, consequent, alternate
	return &c
}

type SwitchStatement struct {
	NodeBase
	Discriminant Expression
	Cases        *NodeList[*SwitchCase]
}

func (*SwitchStatement) Type() NodeType          { return NODE_SWITCH_STATEMENT }
func (*SwitchStatement) statementNode()          {}
func (n *SwitchStatement) Accept(v Visitor) Node { return v.VisitSwitchStatement(n) }
func (n *SwitchStatement) ChildNodes() ChildNodes {
	return children(one(n.Discriminant), many(n.Cases))
}
func (n *SwitchStatement) UpdateWith(discriminant Expression, cases *NodeList[*SwitchCase]) *SwitchStatement {
	if discriminant == n.Discriminant && cases == n.Cases {
		return n
	}
	c := *n
	c.Discriminant, c.Cases = discriminant, cases
	return &c
}

// SwitchCase has a nil Test for the default clause.
type SwitchCase struct {
	NodeBase
	Test       Expression
	Consequent *NodeList[Statement]
}

func (*SwitchCase) Type() NodeType          { return NODE_SWITCH_CASE }
func (n *SwitchCase) Accept(v Visitor) Node { return v.VisitSwitchCase(n) }
func (n *SwitchCase) ChildNodes() ChildNodes {
	return children(one(n.Test), many(n.Consequent))
}
func (n *SwitchCase) UpdateWith(test Expression, consequent *NodeList[Statement]) *SwitchCase {
	if test == n.Test && consequent == n.Consequent {
		return n
	}
	c := *n
	c.Test, c.Consequent = test, consequent
	return &c
}

type ThrowStatement struct {
	NodeBase
	Argument Expression
}

func (*ThrowStatement) Type() NodeType           { return NODE_THROW_STATEMENT }
func (*ThrowStatement) statementNode()           {}
func (n *ThrowStatement) Accept(v Visitor) Node  { return v.VisitThrowStatement(n) }
func (n *ThrowStatement) ChildNodes() ChildNodes { return children(one(n.Argument)) }
func (n *ThrowStatement) UpdateWith(argument Expression) *ThrowStatement {
	if argument == n.Argument {
		return n
	}
	c := *n
	c.Argument = argument
	return &c
}

type TryStatement struct {
	NodeBase
	Block     *BlockStatement
	Handler   *CatchClause
	Finalizer *BlockStatement
}

func (*TryStatement) Type() NodeType          { return NODE_TRY_STATEMENT }
func (*TryStatement) statementNode()          {}
func (n *TryStatement) Accept(v Visitor) Node { return v.VisitTryStatement(n) }
func (n *TryStatement) ChildNodes() ChildNodes {
	return children(one(opt(n.Block)), one(opt(n.Handler)), one(opt(n.Finalizer)))
}
func (n *TryStatement) UpdateWith(block *BlockStatement, handler *CatchClause, finalizer *BlockStatement) *TryStatement {
	if block == n.Block && handler == n.Handler && finalizer == n.Finalizer {
		return n
	}
	c := *n
	c.Block, c.Handler, c.Finalizer = block, handler, finalizer
	return &c
}

// CatchClause has a nil Param for `catch {`.
type CatchClause struct {
	NodeBase
	Param Pattern
	Body  *BlockStatement
}

func (*CatchClause) Type() NodeType          { return NODE_CATCH_CLAUSE }
func (n *CatchClause) Accept(v Visitor) Node { return v.VisitCatchClause(n) }
func (n *CatchClause) ChildNodes() ChildNodes {
	return children(one(n.Param), one(opt(n.Body)))
}
func (n *CatchClause) UpdateWith(param Pattern, body *BlockStatement) *CatchClause {
	if param == n.Param && body == n.Body {
		return n
	}
	c := *n
	c.Param, c.Body = param, body
	return &c
}

type WhileStatement struct {
	NodeBase
	Test Expression
	Body Statement
}

func (*WhileStatement) Type() NodeType          { return NODE_WHILE_STATEMENT }
func (*WhileStatement) statementNode()          {}
func (n *WhileStatement) Accept(v Visitor) Node { return v.VisitWhileStatement(n) }
func (n *WhileStatement) ChildNodes() ChildNodes {
	return children(one(n.Test), one(n.Body))
}
func (n *WhileStatement) UpdateWith(test Expression, body Statement) *WhileStatement {
	if test == n.Test && body == n.Body {
		return n
	}
	c := *n
	c.Test, c.Body = test, body
	return &c
}

type DoWhileStatement struct {
	NodeBase
	Body Statement
	Test Expression
}

func (*DoWhileStatement) Type() NodeType          { return NODE_DO_WHILE_STATEMENT }
func (*DoWhileStatement) statementNode()          {}
func (n *DoWhileStatement) Accept(v Visitor) Node { return v.VisitDoWhileStatement(n) }
func (n *DoWhileStatement) ChildNodes() ChildNodes {
	return children(one(n.Body), one(n.Test))
}
func (n *DoWhileStatement) UpdateWith(body Statement, test Expression) *DoWhileStatement {
	if body == n.Body && test == n.Test {
		return n
	}
	c := *n
	c.Body, c.Test = body, test
	return &c
}

// ForStatement.Init is a *VariableDeclaration, an Expression or nil.
type ForStatement struct {
	NodeBase
	Init   Node
	Test   Expression
	Update Expression
	Body   Statement
}

func (*ForStatement) Type() NodeType          { return NODE_FOR_STATEMENT }
func (*ForStatement) statementNode()          {}
func (n *ForStatement) Accept(v Visitor) Node { return v.VisitForStatement(n) }
func (n *ForStatement) ChildNodes() ChildNodes {
	return children(one(n.Init), one(n.Test), one(n.Update), one(n.Body))
}
func (n *ForStatement) UpdateWith(init Node, test, update Expression, body Statement) *ForStatement {
	if init == n.Init && test == n.Test && update == n.Update && body == n.Body {
		return n
	}
	c := *n
	c.Init, c.Test, c.Update, c.Body = init, test, update, body
	return &c
}

// ForInStatement.Left is a *VariableDeclaration or a Pattern.
type ForInStatement struct {
	NodeBase
	Left  Node
	Right Expression
	Body  Statement
}

func (*ForInStatement) Type() NodeType          { return NODE_FOR_IN_STATEMENT }
func (*ForInStatement) statementNode()          {}
func (n *ForInStatement) Accept(v Visitor) Node { return v.VisitForInStatement(n) }
func (n *ForInStatement) ChildNodes() ChildNodes {
	return children(one(n.Left), one(n.Right), one(n.Body))
}
func (n *ForInStatement) UpdateWith(left Node, right Expression, body Statement) *ForInStatement {
	if left == n.Left && right == n.Right && body == n.Body {
		return n
	}
	c := *n
	c.Left, c.Right, c.Body = left, right, body
	return &c
}

type ForOfStatement struct {
	NodeBase
	Await bool
	Left  Node
	Right Expression
	Body  Statement
}

func (*ForOfStatement) Type() NodeType          { return NODE_FOR_OF_STATEMENT }
func (*ForOfStatement) statementNode()          {}
func (n *ForOfStatement) Accept(v Visitor) Node { return v.VisitForOfStatement(n) }
func (n *ForOfStatement) ChildNodes() ChildNodes {
	return children(one(n.Left), one(n.Right), one(n.Body))
}
func (n *ForOfStatement) UpdateWith(left Node, right Expression, body Statement) *ForOfStatement {
	if left == n.Left && right == n.Right && body == n.Body {
		return n
	}
	c := *n
	c.Left, c.Right, c.Body = left, right, body
	return &c
}

// FunctionDeclaration has a nil ID only as `export default function`.
type FunctionDeclaration struct {
	NodeBase
	ID        *Identifier
	Params    *NodeList[Pattern]
	Body      *BlockStatement
	Generator bool
	Async     bool
}

func (*FunctionDeclaration) Type() NodeType          { return NODE_FUNCTION_DECLARATION }
func (*FunctionDeclaration) statementNode()          {}
func (n *FunctionDeclaration) Accept(v Visitor) Node { return v.VisitFunctionDeclaration(n) }
func (n *FunctionDeclaration) ChildNodes() ChildNodes {
	return children(one(opt(n.ID)), many(n.Params), one(opt(n.Body)))
}
func (n *FunctionDeclaration) UpdateWith(id *Identifier, params *NodeList[Pattern], body *BlockStatement) *FunctionDeclaration {
	if id == n.ID && params == n.Params && body == n.Body {
		return n
	}
	c := *n
	c.ID, c.Params, c.Body = id, params, body
	return &c
}

type VariableDeclaration struct {
	NodeBase
	Kind         string // "var", "let" or "const"
	Declarations *NodeList[*VariableDeclarator]
}

func (*VariableDeclaration) Type() NodeType           { return NODE_VARIABLE_DECLARATION }
func (*VariableDeclaration) statementNode()           {}
func (n *VariableDeclaration) Accept(v Visitor) Node  { return v.VisitVariableDeclaration(n) }
func (n *VariableDeclaration) ChildNodes() ChildNodes { return children(many(n.Declarations)) }
func (n *VariableDeclaration) UpdateWith(declarations *NodeList[*VariableDeclarator]) *VariableDeclaration {
	if declarations == n.Declarations {
		return n
	}
	c := *n
	c.Declarations = declarations
	return &c
}

type VariableDeclarator struct {
	NodeBase
	ID   Pattern
	Init Expression
}

func (*VariableDeclarator) Type() NodeType          { return NODE_VARIABLE_DECLARATOR }
func (n *VariableDeclarator) Accept(v Visitor) Node { return v.VisitVariableDeclarator(n) }
func (n *VariableDeclarator) ChildNodes() ChildNodes {
	return children(one(n.ID), one(n.Init))
}
func (n *VariableDeclarator) UpdateWith(id Pattern, init Expression) *VariableDeclarator {
	if id == n.ID && init == n.Init {
		return n
	}
	c := *n
	c.ID, c.Init = id, init
	return &c
}

type ClassDeclaration struct {
	NodeBase
	ID         *Identifier
	SuperClass Expression
	Body       *ClassBody
}

func (*ClassDeclaration) Type() NodeType          { return NODE_CLASS_DECLARATION }
func (*ClassDeclaration) statementNode()          {}
func (n *ClassDeclaration) Accept(v Visitor) Node { return v.VisitClassDeclaration(n) }
func (n *ClassDeclaration) ChildNodes() ChildNodes {
	return children(one(opt(n.ID)), one(n.SuperClass), one(opt(n.Body)))
}
func (n *ClassDeclaration) UpdateWith(id *Identifier, superClass Expression, body *ClassBody) *ClassDeclaration {
	if id == n.ID && superClass == n.SuperClass && body == n.Body {
		return n
	}
	c := *n
	c.ID, c.SuperClass, c.Body = id, superClass, body
	return &c
}

// BadStatement stands in for source the tolerant parser could not parse.
type BadStatement struct {
	NodeBase
}

func (*BadStatement) Type() NodeType          { return NODE_BAD_STATEMENT }
func (*BadStatement) statementNode()          {}
func (n *BadStatement) Accept(v Visitor) Node { return v.VisitBadStatement(n) }
func (*BadStatement) ChildNodes() ChildNodes  { return children() }
