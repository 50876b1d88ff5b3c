/*
File    : logo2/parser/node.go
*/
package parser

import (
	"strconv"
	"strings"

	"github.com/logo2lang/logo2/lexer"
)

// NodeVisitor implements the Visitor pattern over the AST. Each Visit
// method handles one node type, enabling operations like printing or
// structural checks without switching on node types at the call site.
// (The evaluator itself dispatches with a type switch; the visitor
// serves the auxiliary traversals.)
type NodeVisitor interface {
	VisitStatements(node *StatementsNode)
	VisitLiteral(node *LiteralNode)
	VisitName(node *NameNode)
	VisitUnary(node *UnaryNode)
	VisitBinary(node *BinaryNode)
	VisitPostfix(node *PostfixNode)
	VisitAssign(node *AssignNode)
	VisitInvokeFunction(node *InvokeFunctionNode)
	VisitIfThenElse(node *IfThenElseNode)
	VisitBlock(node *BlockNode)
	VisitVarStatement(node *VarStatementNode)
	VisitRepeatStatement(node *RepeatStatementNode)
	VisitWhileStatement(node *WhileStatementNode)
	VisitForStatement(node *ForStatementNode)
	VisitFunctionDeclaration(node *FunctionDeclarationNode)
	VisitAnonymousFunction(node *AnonymousFunctionNode)
	VisitReturn(node *ReturnNode)
	VisitBreakContinue(node *BreakContinueNode)
	VisitEnumDeclaration(node *EnumDeclarationNode)
	VisitExpressionStatement(node *ExpressionStatementNode)
}

// Node is the base interface of every AST node.
// Literal() returns a source-shaped textual form of the node; parsing
// that text again yields a structurally equivalent tree.
type Node interface {
	Literal() string
	Accept(visitor NodeVisitor)
}

// StatementNode marks nodes usable in statement position.
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode marks nodes usable in expression position. Every
// expression is also a valid statement.
type ExpressionNode interface {
	StatementNode
	Expression()
}

// StatementsNode is the root of a parsed program: an ordered list of
// top-level statements.
type StatementsNode struct {
	Statements []StatementNode
}

// Add appends a statement to the program.
func (node *StatementsNode) Add(stmt StatementNode) {
	node.Statements = append(node.Statements, stmt)
}

func (node *StatementsNode) Literal() string {
	var sb strings.Builder
	for _, stmt := range node.Statements {
		sb.WriteString(stmt.Literal())
		sb.WriteString(" ")
	}
	return strings.TrimRight(sb.String(), " ")
}

func (node *StatementsNode) Accept(visitor NodeVisitor) { visitor.VisitStatements(node) }
func (node *StatementsNode) Statement()                 {}

// LiteralNode holds a literal token (integer, real, string, true/false,
// null). The token carries the decoded value for numeric kinds.
type LiteralNode struct {
	Token lexer.Token
}

func (node *LiteralNode) Literal() string {
	if node.Token.Type == lexer.STRING {
		return "\"" + node.Token.Lexeme + "\""
	}
	return node.Token.Lexeme
}

func (node *LiteralNode) Accept(visitor NodeVisitor) { visitor.VisitLiteral(node) }
func (node *LiteralNode) Statement()                 {}
func (node *LiteralNode) Expression()                {}

// NameNode references a variable, function or enum member by name. The
// name may be qualified with "::" (e.g. Color::Red).
type NameNode struct {
	Token lexer.Token
	Name  string
}

func (node *NameNode) Literal() string            { return node.Name }
func (node *NameNode) Accept(visitor NodeVisitor) { visitor.VisitName(node) }
func (node *NameNode) Statement()                 {}
func (node *NameNode) Expression()                {}

// UnaryNode is a prefix operation: -x, !flag, ~bits.
type UnaryNode struct {
	Operator lexer.Token
	Operand  ExpressionNode
}

func (node *UnaryNode) Literal() string            { return node.Operator.Lexeme + node.Operand.Literal() }
func (node *UnaryNode) Accept(visitor NodeVisitor) { visitor.VisitUnary(node) }
func (node *UnaryNode) Statement()                 {}
func (node *UnaryNode) Expression()                {}

// BinaryNode is an infix operation with two operands.
type BinaryNode struct {
	Operator lexer.Token
	Left     ExpressionNode
	Right    ExpressionNode
}

func (node *BinaryNode) Literal() string {
	return "(" + node.Left.Literal() + " " + node.Operator.Lexeme + " " + node.Right.Literal() + ")"
}

func (node *BinaryNode) Accept(visitor NodeVisitor) { visitor.VisitBinary(node) }
func (node *BinaryNode) Statement()                 {}
func (node *BinaryNode) Expression()                {}

// PostfixNode is a postfix operation on an already-parsed operand.
type PostfixNode struct {
	Operator lexer.Token
	Operand  ExpressionNode
}

func (node *PostfixNode) Literal() string            { return node.Operand.Literal() + node.Operator.Lexeme }
func (node *PostfixNode) Accept(visitor NodeVisitor) { visitor.VisitPostfix(node) }
func (node *PostfixNode) Statement()                 {}
func (node *PostfixNode) Expression()                {}

// AssignNode replaces the value of an existing binding.
type AssignNode struct {
	Token lexer.Token
	Name  string
	Value ExpressionNode
}

func (node *AssignNode) Literal() string            { return node.Name + " = " + node.Value.Literal() }
func (node *AssignNode) Accept(visitor NodeVisitor) { visitor.VisitAssign(node) }
func (node *AssignNode) Statement()                 {}
func (node *AssignNode) Expression()                {}

// InvokeFunctionNode calls a function by name with ordered arguments.
type InvokeFunctionNode struct {
	Token     lexer.Token
	Name      string
	Arguments []ExpressionNode
}

func (node *InvokeFunctionNode) Literal() string {
	args := make([]string, 0, len(node.Arguments))
	for _, arg := range node.Arguments {
		args = append(args, arg.Literal())
	}
	return node.Name + "(" + strings.Join(args, ", ") + ")"
}

func (node *InvokeFunctionNode) Accept(visitor NodeVisitor) { visitor.VisitInvokeFunction(node) }
func (node *InvokeFunctionNode) Statement()                 {}
func (node *InvokeFunctionNode) Expression()                {}

// IfThenElseNode is the conditional expression. Else is optional; a
// missing or unchosen else yields null.
type IfThenElseNode struct {
	Condition ExpressionNode
	Then      ExpressionNode
	Else      ExpressionNode
}

func (node *IfThenElseNode) Literal() string {
	text := "if " + node.Condition.Literal() + " " + node.Then.Literal()
	if node.Else != nil {
		text += " else " + node.Else.Literal()
	}
	return text
}

func (node *IfThenElseNode) Accept(visitor NodeVisitor) { visitor.VisitIfThenElse(node) }
func (node *IfThenElseNode) Statement()                 {}
func (node *IfThenElseNode) Expression()                {}

// BlockNode is a braced list of statements; as an expression its value
// is the value of its last child (null when empty).
type BlockNode struct {
	Statements []StatementNode
}

// Add appends a statement to the block.
func (node *BlockNode) Add(stmt StatementNode) {
	node.Statements = append(node.Statements, stmt)
}

func (node *BlockNode) Literal() string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for _, stmt := range node.Statements {
		sb.WriteString(stmt.Literal())
		sb.WriteString(" ")
	}
	sb.WriteString("}")
	return sb.String()
}

func (node *BlockNode) Accept(visitor NodeVisitor) { visitor.VisitBlock(node) }
func (node *BlockNode) Statement()                 {}
func (node *BlockNode) Expression()                {}

// VarStatementNode declares a variable or constant, with an optional
// initializer (mandatory for const; the parser enforces that).
type VarStatementNode struct {
	Token lexer.Token
	Name  string
	Const bool
	Init  ExpressionNode
}

func (node *VarStatementNode) Literal() string {
	keyword := "var"
	if node.Const {
		keyword = "const"
	}
	text := keyword + " " + node.Name
	if node.Init != nil {
		text += " = " + node.Init.Literal()
	}
	return text + ";"
}

func (node *VarStatementNode) Accept(visitor NodeVisitor) { visitor.VisitVarStatement(node) }
func (node *VarStatementNode) Statement()                 {}

// RepeatStatementNode runs its body a fixed number of times.
type RepeatStatementNode struct {
	Count ExpressionNode
	Body  *BlockNode
}

func (node *RepeatStatementNode) Literal() string {
	return "repeat " + node.Count.Literal() + " " + node.Body.Literal()
}

func (node *RepeatStatementNode) Accept(visitor NodeVisitor) { visitor.VisitRepeatStatement(node) }
func (node *RepeatStatementNode) Statement()                 {}

// WhileStatementNode runs its body while the condition holds.
type WhileStatementNode struct {
	Condition ExpressionNode
	Body      *BlockNode
}

func (node *WhileStatementNode) Literal() string {
	return "while " + node.Condition.Literal() + " " + node.Body.Literal()
}

func (node *WhileStatementNode) Accept(visitor NodeVisitor) { visitor.VisitWhileStatement(node) }
func (node *WhileStatementNode) Statement()                 {}

// ForStatementNode is the C-style loop: init statement, condition,
// increment expression, body.
type ForStatementNode struct {
	Init      StatementNode
	Condition ExpressionNode
	Increment ExpressionNode
	Body      *BlockNode
}

func (node *ForStatementNode) Literal() string {
	text := "for "
	if node.Init != nil {
		text += node.Init.Literal()
	}
	text += " "
	if node.Condition != nil {
		text += node.Condition.Literal()
	}
	text += "; "
	if node.Increment != nil {
		text += node.Increment.Literal()
	}
	return text + " " + node.Body.Literal()
}

func (node *ForStatementNode) Accept(visitor NodeVisitor) { visitor.VisitForStatement(node) }
func (node *ForStatementNode) Statement()                 {}

// FunctionDeclarationNode declares a named function. Body is a block, or
// a bare expression for the => form.
type FunctionDeclarationNode struct {
	Token      lexer.Token
	Name       string
	Parameters []string
	Body       ExpressionNode
	Arrow      bool
}

func (node *FunctionDeclarationNode) Literal() string {
	text := "fn " + node.Name + "(" + strings.Join(node.Parameters, ", ") + ")"
	if node.Arrow {
		return text + " => " + node.Body.Literal() + ";"
	}
	return text + " " + node.Body.Literal()
}

func (node *FunctionDeclarationNode) Accept(visitor NodeVisitor) {
	visitor.VisitFunctionDeclaration(node)
}
func (node *FunctionDeclarationNode) Statement() {}

// AnonymousFunctionNode is a function literal; evaluating it captures
// the current scope chain.
type AnonymousFunctionNode struct {
	Token      lexer.Token
	Parameters []string
	Body       ExpressionNode
	Arrow      bool
}

func (node *AnonymousFunctionNode) Literal() string {
	text := "fn(" + strings.Join(node.Parameters, ", ") + ")"
	if node.Arrow {
		return text + " => " + node.Body.Literal()
	}
	return text + " " + node.Body.Literal()
}

func (node *AnonymousFunctionNode) Accept(visitor NodeVisitor) { visitor.VisitAnonymousFunction(node) }
func (node *AnonymousFunctionNode) Statement()                 {}
func (node *AnonymousFunctionNode) Expression()                {}

// ReturnNode exits the enclosing function, optionally with a value.
type ReturnNode struct {
	Value ExpressionNode
}

func (node *ReturnNode) Literal() string {
	if node.Value == nil {
		return "return;"
	}
	return "return " + node.Value.Literal() + ";"
}

func (node *ReturnNode) Accept(visitor NodeVisitor) { visitor.VisitReturn(node) }
func (node *ReturnNode) Statement()                 {}

// BreakContinueNode exits or restarts the nearest loop.
type BreakContinueNode struct {
	Continue bool
}

func (node *BreakContinueNode) Literal() string {
	if node.Continue {
		return "continue;"
	}
	return "break;"
}

func (node *BreakContinueNode) Accept(visitor NodeVisitor) { visitor.VisitBreakContinue(node) }
func (node *BreakContinueNode) Statement()                 {}

// EnumMember is one named constant of an enum declaration.
type EnumMember struct {
	Name  string
	Value int64
}

// EnumDeclarationNode declares an enumeration. Members keep their
// declaration order; missing initializers auto-number from the previous
// value plus one.
type EnumDeclarationNode struct {
	Token   lexer.Token
	Name    string
	Members []EnumMember
}

func (node *EnumDeclarationNode) Literal() string {
	parts := make([]string, 0, len(node.Members))
	for _, m := range node.Members {
		parts = append(parts, m.Name+" = "+strconv.FormatInt(m.Value, 10))
	}
	return "enum " + node.Name + " { " + strings.Join(parts, ", ") + " }"
}

func (node *EnumDeclarationNode) Accept(visitor NodeVisitor) { visitor.VisitEnumDeclaration(node) }
func (node *EnumDeclarationNode) Statement()                 {}

// ExpressionStatementNode wraps an expression consumed for its side
// effect (an expression followed by a semicolon).
type ExpressionStatementNode struct {
	Expr ExpressionNode
}

func (node *ExpressionStatementNode) Literal() string { return node.Expr.Literal() + ";" }
func (node *ExpressionStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitExpressionStatement(node)
}
func (node *ExpressionStatementNode) Statement() {}
