/*
File    : logo2/parser/errors.go
*/
package parser

import (
	"fmt"

	"github.com/logo2lang/logo2/lexer"
)

// ParseErrorCode names a parse error category.
type ParseErrorCode string

const (
	Syntax                    ParseErrorCode = "Syntax"
	UnknownOperator           ParseErrorCode = "UnknownOperator"
	IdentifierExpected        ParseErrorCode = "IdentifierExpected"
	MissingInitExpression     ParseErrorCode = "MissingInitExpression"
	SemicolonExpected         ParseErrorCode = "SemicolonExpected"
	AssignExpected            ParseErrorCode = "AssignExpected"
	CommaExpected             ParseErrorCode = "CommaExpected"
	CommaOrCloseParenExpected ParseErrorCode = "CommaOrCloseParenExpected"
	DuplicateDefinition       ParseErrorCode = "DuplicateDefinition"
	UndefinedSymbol           ParseErrorCode = "UndefinedSymbol"
	CannotModifyConst         ParseErrorCode = "CannotModifyConst"
	OpenParenExpected         ParseErrorCode = "OpenParenExpected"
	CloseParenExpected        ParseErrorCode = "CloseParenExpected"
	OpenBraceExpected         ParseErrorCode = "OpenBraceExpected"
	CloseBraceExpected        ParseErrorCode = "CloseBraceExpected"
	InvalidStatement          ParseErrorCode = "InvalidStatement"
	ConditionExpected         ParseErrorCode = "ConditionExpressionExpected"
	BreakContinueNoLoop       ParseErrorCode = "BreakContinueNoLoop"
	ExpressionOrVarExpected   ParseErrorCode = "ExpressionOrVarExpected"
	IllegalExpression         ParseErrorCode = "IllegalExpression"
)

// ParseError describes one parse failure: its category, the offending
// token (for the source position) and optional explanatory text. Fatal
// errors abort the current expression and travel as Go errors;
// recoverable ones are appended to the parser's error list.
type ParseError struct {
	Code  ParseErrorCode
	Token lexer.Token
	Text  string
}

// NewParseError creates a parse error for the given token. The optional
// text argument carries extra explanation.
func NewParseError(code ParseErrorCode, token lexer.Token, text ...string) *ParseError {
	err := &ParseError{Code: code, Token: token}
	if len(text) > 0 {
		err.Text = text[0]
	}
	return err
}

// Error renders the error as "Error <code> (<line>,<column>): <text>".
func (e *ParseError) Error() string {
	return fmt.Sprintf("Error %s (%d,%d): %s", e.Code, e.Token.Line, e.Token.Col, e.Text)
}
