/*
File    : logo2/parser/parser.go
*/

/*
Package parser implements a Pratt parser (top-down operator precedence
parser) for the Logo2 language.

The parser consumes tokens from a lexer.Tokenizer and produces an AST.
Two registries map token types to parslets: prefix parslets handle
primaries, prefix operators, if-expressions, anonymous functions and
grouping; infix parslets handle binary operators, assignment and
function invocation. Each parslet carries a precedence; the core loop
consumes one prefix-parsed left operand, then folds infix operators in
while their precedence exceeds the current minimum.

Alongside parsing, the parser maintains a stack of symbol tables
mirroring the block structure, which catches duplicate definitions,
assignments to undefined or const names, and break/continue outside a
loop, all before anything runs.

Fatal syntax errors abort the current expression; recoverable ones are
collected into an error list and parsing continues.
*/
package parser

import (
	"os"

	"github.com/logo2lang/logo2/lexer"
)

// Parslet precedences, higher binds tighter.
const (
	precedenceAssign     = 2
	precedenceComparison = 90
	precedenceAdditive   = 100
	precedenceMultiply   = 200
	precedencePrefix     = 300
	precedencePower      = 350
	precedenceOrXor      = 390
	precedenceAnd        = 400
	precedenceGroup      = 1000
	precedenceInvoke     = 1200
)

// prefixParslet parses an expression that starts at the given token.
type prefixParslet struct {
	parse      func(token lexer.Token) (ExpressionNode, error)
	precedence int
}

// infixParslet parses an operator appearing after a left operand.
type infixParslet struct {
	parse      func(left ExpressionNode, token lexer.Token) (ExpressionNode, error)
	precedence int
}

// Parser holds the parsing state: the tokenizer, the parslet
// registries, the symbol-table stack and the collected errors.
type Parser struct {
	tokenizer *lexer.Tokenizer

	prefixParslets map[lexer.TokenType]*prefixParslet
	infixParslets  map[lexer.TokenType]*infixParslet

	symbols   []*SymbolTable
	loopDepth int
	errors    []*ParseError
}

// NewParser creates a parser bound to the given tokenizer, installs the
// language vocabulary into it and registers all parslets. The bottom
// symbol table (the global scope) is pushed immediately.
func NewParser(tokenizer *lexer.Tokenizer) *Parser {
	par := &Parser{
		tokenizer:      tokenizer,
		prefixParslets: make(map[lexer.TokenType]*prefixParslet),
		infixParslets:  make(map[lexer.TokenType]*infixParslet),
	}
	par.init()
	par.symbols = append(par.symbols, NewSymbolTable(nil))
	return par
}

// init installs the token vocabulary and the parslet registries.
func (par *Parser) init() {
	par.tokenizer.AddTokens([]lexer.TokenPair{
		{Lexeme: "+", Type: lexer.ADD},
		{Lexeme: "-", Type: lexer.SUB},
		{Lexeme: "*", Type: lexer.MUL},
		{Lexeme: "/", Type: lexer.DIV},
		{Lexeme: "%", Type: lexer.MOD},
		{Lexeme: "**", Type: lexer.POWER},
		{Lexeme: "&", Type: lexer.AND},
		{Lexeme: "|", Type: lexer.OR},
		{Lexeme: "^", Type: lexer.XOR},
		{Lexeme: "!", Type: lexer.NOT},
		{Lexeme: "~", Type: lexer.CMP},

		{Lexeme: "+=", Type: lexer.ASSIGN_ADD},
		{Lexeme: "-=", Type: lexer.ASSIGN_SUB},
		{Lexeme: "*=", Type: lexer.ASSIGN_MUL},
		{Lexeme: "/=", Type: lexer.ASSIGN_DIV},
		{Lexeme: "%=", Type: lexer.ASSIGN_MOD},
		{Lexeme: "**=", Type: lexer.ASSIGN_POWER},
		{Lexeme: "&=", Type: lexer.ASSIGN_AND},
		{Lexeme: "|=", Type: lexer.ASSIGN_OR},
		{Lexeme: "^=", Type: lexer.ASSIGN_XOR},

		{Lexeme: "==", Type: lexer.EQUAL},
		{Lexeme: "!=", Type: lexer.NOT_EQUAL},
		{Lexeme: "<", Type: lexer.LESS_THAN},
		{Lexeme: ">", Type: lexer.GREATER_THAN},
		{Lexeme: "<=", Type: lexer.LESS_THAN_EQUAL},
		{Lexeme: ">=", Type: lexer.GREATER_THAN_EQUAL},

		{Lexeme: "(", Type: lexer.OPEN_PAREN},
		{Lexeme: ")", Type: lexer.CLOSE_PAREN},
		{Lexeme: "{", Type: lexer.OPEN_BRACE},
		{Lexeme: "}", Type: lexer.CLOSE_BRACE},
		{Lexeme: "[", Type: lexer.OPEN_BRACKET},
		{Lexeme: "]", Type: lexer.CLOSE_BRACKET},
		{Lexeme: "=", Type: lexer.ASSIGN},
		{Lexeme: ";", Type: lexer.SEMICOLON},
		{Lexeme: ",", Type: lexer.COMMA},
		{Lexeme: "::", Type: lexer.SCOPE_RES},
		{Lexeme: "=>", Type: lexer.GOES_TO},

		{Lexeme: "null", Type: lexer.KEYWORD_NULL},
		{Lexeme: "true", Type: lexer.KEYWORD_TRUE},
		{Lexeme: "false", Type: lexer.KEYWORD_FALSE},
		{Lexeme: "var", Type: lexer.KEYWORD_VAR},
		{Lexeme: "const", Type: lexer.KEYWORD_CONST},
		{Lexeme: "if", Type: lexer.KEYWORD_IF},
		{Lexeme: "else", Type: lexer.KEYWORD_ELSE},
		{Lexeme: "repeat", Type: lexer.KEYWORD_REPEAT},
		{Lexeme: "while", Type: lexer.KEYWORD_WHILE},
		{Lexeme: "for", Type: lexer.KEYWORD_FOR},
		{Lexeme: "foreach", Type: lexer.KEYWORD_FOREACH},
		{Lexeme: "fn", Type: lexer.KEYWORD_FN},
		{Lexeme: "return", Type: lexer.KEYWORD_RETURN},
		{Lexeme: "break", Type: lexer.KEYWORD_BREAK},
		{Lexeme: "breakout", Type: lexer.KEYWORD_BREAKOUT},
		{Lexeme: "continue", Type: lexer.KEYWORD_CONTINUE},
		{Lexeme: "and", Type: lexer.KEYWORD_AND},
		{Lexeme: "or", Type: lexer.KEYWORD_OR},
		{Lexeme: "not", Type: lexer.KEYWORD_NOT},
		{Lexeme: "enum", Type: lexer.KEYWORD_ENUM},
		{Lexeme: "do", Type: lexer.KEYWORD_DO},
	})

	// Literals and names
	par.registerPrefix(par.parseLiteral, 0,
		lexer.INTEGER, lexer.REAL, lexer.STRING,
		lexer.KEYWORD_TRUE, lexer.KEYWORD_FALSE, lexer.KEYWORD_NULL)
	par.registerPrefix(par.parseName, 0, lexer.IDENTIFIER)

	// Prefix operators: - ! ~
	par.registerPrefix(par.parsePrefixOperator, precedencePrefix,
		lexer.SUB, lexer.NOT, lexer.CMP)

	// Grouping and the two expression keywords
	par.registerPrefix(par.parseGroup, precedenceGroup, lexer.OPEN_PAREN)
	par.registerPrefix(par.parseIfThenElse, 0, lexer.KEYWORD_IF)
	par.registerPrefix(par.parseAnonymousFunction, 0, lexer.KEYWORD_FN)

	// Binary operators
	par.registerBinary(precedenceAdditive, false, lexer.ADD, lexer.SUB)
	par.registerBinary(precedenceMultiply, false, lexer.MUL, lexer.DIV, lexer.MOD)
	par.registerBinary(precedencePower, true, lexer.POWER)
	par.registerBinary(precedenceComparison, false,
		lexer.EQUAL, lexer.NOT_EQUAL, lexer.LESS_THAN, lexer.LESS_THAN_EQUAL,
		lexer.GREATER_THAN, lexer.GREATER_THAN_EQUAL)
	par.registerBinary(precedenceAnd, false, lexer.AND)
	par.registerBinary(precedenceOrXor, false, lexer.OR, lexer.XOR)

	// Assignment family (right associative) and invocation
	par.registerInfix(par.parseAssign, precedenceAssign, lexer.ASSIGN)
	par.registerInfix(par.parseCompoundAssign, precedenceAssign,
		lexer.ASSIGN_ADD, lexer.ASSIGN_SUB, lexer.ASSIGN_MUL, lexer.ASSIGN_DIV,
		lexer.ASSIGN_MOD, lexer.ASSIGN_POWER, lexer.ASSIGN_AND, lexer.ASSIGN_OR,
		lexer.ASSIGN_XOR)
	par.registerInfix(par.parseInvokeFunction, precedenceInvoke, lexer.OPEN_PAREN)
}

// registerPrefix installs a prefix parslet for multiple token types.
func (par *Parser) registerPrefix(parse func(lexer.Token) (ExpressionNode, error), precedence int, types ...lexer.TokenType) {
	for _, typ := range types {
		par.prefixParslets[typ] = &prefixParslet{parse: parse, precedence: precedence}
	}
}

// registerInfix installs an infix parslet for multiple token types.
func (par *Parser) registerInfix(parse func(ExpressionNode, lexer.Token) (ExpressionNode, error), precedence int, types ...lexer.TokenType) {
	for _, typ := range types {
		par.infixParslets[typ] = &infixParslet{parse: parse, precedence: precedence}
	}
}

// registerBinary installs a generic binary-operator parslet with the
// given precedence and associativity.
func (par *Parser) registerBinary(precedence int, rightAssoc bool, types ...lexer.TokenType) {
	sub := 0
	if rightAssoc {
		sub = 1
	}
	parse := func(left ExpressionNode, token lexer.Token) (ExpressionNode, error) {
		right, err := par.parseExpression(precedence - sub)
		if err != nil {
			return nil, err
		}
		return &BinaryNode{Operator: token, Left: left, Right: right}, nil
	}
	par.registerInfix(parse, precedence, types...)
}

// AddError appends a recoverable error to the parser's list.
func (par *Parser) AddError(err *ParseError) {
	par.errors = append(par.errors, err)
}

// HasErrors reports whether any error was recorded during the last
// parse.
func (par *Parser) HasErrors() bool {
	return len(par.errors) > 0
}

// Errors returns the recorded errors.
func (par *Parser) Errors() []*ParseError {
	return par.errors
}

// Parse tokenizes the source starting at the given line and parses it
// to a program root. Errors (fatal and recoverable alike) are available
// through HasErrors/Errors afterwards.
func (par *Parser) Parse(src string, line int) *StatementsNode {
	par.tokenizer.Tokenize(src, line)
	par.errors = nil
	return par.doParse()
}

// ParseFile reads and parses a source file.
func (par *Parser) ParseFile(path string) (*StatementsNode, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return par.Parse(string(text), 1), nil
}

// doParse parses statements until the token stream ends. A fatal error
// is recorded and stops the parse; the partial program is returned.
func (par *Parser) doParse() *StatementsNode {
	root := &StatementsNode{}
	for {
		stmt, err := par.parseStatement()
		if err != nil {
			par.recordError(err)
			break
		}
		if stmt == nil {
			break
		}
		root.Add(stmt)
	}
	return root
}

// recordError appends a fatal error to the error list, wrapping foreign
// errors into a generic syntax error.
func (par *Parser) recordError(err error) {
	if perr, ok := err.(*ParseError); ok {
		par.AddError(perr)
		return
	}
	par.AddError(NewParseError(Syntax, par.peek(), err.Error()))
}

// parseExpression is the Pratt core: parse one prefix expression, then
// fold in infix operators while the upcoming operator binds tighter
// than minPrecedence.
func (par *Parser) parseExpression(minPrecedence int) (ExpressionNode, error) {
	token := par.next()
	prefix, ok := par.prefixParslets[token.Type]
	if !ok {
		return nil, NewParseError(UnknownOperator, token, token.Lexeme)
	}
	left, err := prefix.parse(token)
	if err != nil {
		return nil, err
	}

	for minPrecedence < par.peekPrecedence() {
		token = par.next()
		if !token.IsValid() {
			break
		}
		infix, ok := par.infixParslets[token.Type]
		if !ok {
			break
		}
		left, err = infix.parse(left, token)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

// peekPrecedence returns the precedence of the upcoming infix operator,
// or 0 when the next token is not one.
func (par *Parser) peekPrecedence() int {
	if parslet, ok := par.infixParslets[par.peek().Type]; ok {
		return parslet.precedence
	}
	return 0
}

// next consumes and returns the next token.
func (par *Parser) next() lexer.Token {
	return par.tokenizer.Next()
}

// peek returns the next token without consuming it.
func (par *Parser) peek() lexer.Token {
	return par.tokenizer.Peek()
}

// match consumes the next token if it has the wanted type and reports
// whether it did.
func (par *Parser) match(typ lexer.TokenType) bool {
	if par.peek().Type == typ {
		par.next()
		return true
	}
	return false
}

// expect consumes the next token if it has the wanted type; otherwise
// it records a recoverable error of the given code.
func (par *Parser) expect(typ lexer.TokenType, code ParseErrorCode) bool {
	if par.match(typ) {
		return true
	}
	par.AddError(NewParseError(code, par.peek()))
	return false
}

// skipTo consumes tokens until one of the wanted type is eaten. It
// returns false when the stream ends first. Used for error recovery.
func (par *Parser) skipTo(typ lexer.TokenType) bool {
	for {
		next := par.next()
		if next.Type == typ {
			return true
		}
		if !next.IsValid() {
			return false
		}
	}
}

// pushScope enters a nested symbol scope.
func (par *Parser) pushScope() {
	par.symbols = append(par.symbols, NewSymbolTable(par.currentScope()))
}

// popScope leaves the innermost symbol scope.
func (par *Parser) popScope() {
	par.symbols = par.symbols[:len(par.symbols)-1]
}

func (par *Parser) currentScope() *SymbolTable {
	return par.symbols[len(par.symbols)-1]
}

// addSymbol installs a symbol in the current scope; false means the
// name is already taken there.
func (par *Parser) addSymbol(sym *Symbol) bool {
	return par.currentScope().Add(sym)
}

// findSymbol resolves a name through the scope chain (or only the
// current scope when localOnly is set).
func (par *Parser) findSymbol(name string, localOnly bool) *Symbol {
	return par.currentScope().Find(name, localOnly)
}
