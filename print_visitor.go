/*
File    : logo2/print_visitor.go
*/
package main

import (
	"bytes"
	"fmt"

	"github.com/logo2lang/logo2/parser"
)

const indentSize = 4

// PrintingVisitor renders a parsed AST as an indented tree, one line
// per node. It exercises the NodeVisitor interface the same way any
// structural traversal would.
type PrintingVisitor struct {
	Indent int
	Buf    bytes.Buffer
}

func (p *PrintingVisitor) indent() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

// line writes one indented line for a node.
func (p *PrintingVisitor) line(format string, a ...interface{}) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf(format, a...))
	p.Buf.WriteString("\n")
}

// nested visits a child one indentation level deeper.
func (p *PrintingVisitor) nested(node parser.Node) {
	if node == nil {
		return
	}
	p.Indent += indentSize
	node.Accept(p)
	p.Indent -= indentSize
}

func (p *PrintingVisitor) VisitStatements(node *parser.StatementsNode) {
	p.line("Program")
	for _, stmt := range node.Statements {
		p.nested(stmt)
	}
}

func (p *PrintingVisitor) VisitLiteral(node *parser.LiteralNode) {
	p.line("Literal [%s]", node.Literal())
}

func (p *PrintingVisitor) VisitName(node *parser.NameNode) {
	p.line("Name [%s]", node.Name)
}

func (p *PrintingVisitor) VisitUnary(node *parser.UnaryNode) {
	p.line("Unary [%s]", node.Operator.Lexeme)
	p.nested(node.Operand)
}

func (p *PrintingVisitor) VisitBinary(node *parser.BinaryNode) {
	p.line("Binary [%s]", node.Operator.Lexeme)
	p.nested(node.Left)
	p.nested(node.Right)
}

func (p *PrintingVisitor) VisitPostfix(node *parser.PostfixNode) {
	p.line("Postfix [%s]", node.Operator.Lexeme)
	p.nested(node.Operand)
}

func (p *PrintingVisitor) VisitAssign(node *parser.AssignNode) {
	p.line("Assign [%s]", node.Name)
	p.nested(node.Value)
}

func (p *PrintingVisitor) VisitInvokeFunction(node *parser.InvokeFunctionNode) {
	p.line("Invoke [%s]", node.Name)
	for _, arg := range node.Arguments {
		p.nested(arg)
	}
}

func (p *PrintingVisitor) VisitIfThenElse(node *parser.IfThenElseNode) {
	p.line("If")
	p.nested(node.Condition)
	p.nested(node.Then)
	p.nested(node.Else)
}

func (p *PrintingVisitor) VisitBlock(node *parser.BlockNode) {
	p.line("Block")
	for _, stmt := range node.Statements {
		p.nested(stmt)
	}
}

func (p *PrintingVisitor) VisitVarStatement(node *parser.VarStatementNode) {
	keyword := "var"
	if node.Const {
		keyword = "const"
	}
	p.line("%s [%s]", keyword, node.Name)
	p.nested(node.Init)
}

func (p *PrintingVisitor) VisitRepeatStatement(node *parser.RepeatStatementNode) {
	p.line("Repeat")
	p.nested(node.Count)
	p.nested(node.Body)
}

func (p *PrintingVisitor) VisitWhileStatement(node *parser.WhileStatementNode) {
	p.line("While")
	p.nested(node.Condition)
	p.nested(node.Body)
}

func (p *PrintingVisitor) VisitForStatement(node *parser.ForStatementNode) {
	p.line("For")
	p.nested(node.Init)
	p.nested(node.Condition)
	p.nested(node.Increment)
	p.nested(node.Body)
}

func (p *PrintingVisitor) VisitFunctionDeclaration(node *parser.FunctionDeclarationNode) {
	p.line("Function [%s(%v)]", node.Name, node.Parameters)
	p.nested(node.Body)
}

func (p *PrintingVisitor) VisitAnonymousFunction(node *parser.AnonymousFunctionNode) {
	p.line("AnonymousFunction [%v]", node.Parameters)
	p.nested(node.Body)
}

func (p *PrintingVisitor) VisitReturn(node *parser.ReturnNode) {
	p.line("Return")
	p.nested(node.Value)
}

func (p *PrintingVisitor) VisitBreakContinue(node *parser.BreakContinueNode) {
	if node.Continue {
		p.line("Continue")
	} else {
		p.line("Break")
	}
}

func (p *PrintingVisitor) VisitEnumDeclaration(node *parser.EnumDeclarationNode) {
	p.line("Enum [%s]", node.Name)
	p.Indent += indentSize
	for _, member := range node.Members {
		p.line("%s = %d", member.Name, member.Value)
	}
	p.Indent -= indentSize
}

func (p *PrintingVisitor) VisitExpressionStatement(node *parser.ExpressionStatementNode) {
	p.line("ExpressionStatement")
	p.nested(node.Expr)
}

// String returns the accumulated tree rendering.
func (p *PrintingVisitor) String() string {
	return p.Buf.String()
}
