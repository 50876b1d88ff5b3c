/*
File    : logo2/parser/parslets.go
*/
package parser

import "github.com/logo2lang/logo2/lexer"

// parseLiteral turns a literal token into a literal node.
func (par *Parser) parseLiteral(token lexer.Token) (ExpressionNode, error) {
	return &LiteralNode{Token: token}, nil
}

// parseName parses a possibly qualified name, folding "::" segments
// into a single qualified identifier (e.g. Color::Red).
func (par *Parser) parseName(token lexer.Token) (ExpressionNode, error) {
	name := token.Lexeme
	for par.peek().Type == lexer.SCOPE_RES {
		par.next()
		if par.peek().Type != lexer.IDENTIFIER {
			par.AddError(NewParseError(IdentifierExpected, par.peek(), "Identifier expected after '::'"))
			break
		}
		name += "::" + par.next().Lexeme
	}
	return &NameNode{Token: token, Name: name}, nil
}

// parsePrefixOperator parses - ! ~ applied to the expression that
// follows, binding at prefix precedence.
func (par *Parser) parsePrefixOperator(token lexer.Token) (ExpressionNode, error) {
	operand, err := par.parseExpression(precedencePrefix)
	if err != nil {
		return nil, err
	}
	return &UnaryNode{Operator: token, Operand: operand}, nil
}

// parseGroup parses a parenthesized expression. The parentheses exist
// only for grouping; the inner expression is returned directly.
func (par *Parser) parseGroup(token lexer.Token) (ExpressionNode, error) {
	expr, err := par.parseExpression(0)
	if err != nil {
		return nil, err
	}
	par.expect(lexer.CLOSE_PAREN, CloseParenExpected)
	return expr, nil
}

// parseIfThenElse parses the if expression: a condition, a then block
// and an optional else block. Both branches are expressions; the value
// of the chosen branch is the value of the whole form.
func (par *Parser) parseIfThenElse(token lexer.Token) (ExpressionNode, error) {
	condition, err := par.parseExpression(0)
	if err != nil {
		return nil, err
	}
	then, err := par.parseBlock(nil)
	if err != nil {
		return nil, err
	}
	node := &IfThenElseNode{Condition: condition, Then: then}
	if par.match(lexer.KEYWORD_ELSE) {
		elseBlock, err := par.parseBlock(nil)
		if err != nil {
			return nil, err
		}
		node.Else = elseBlock
	}
	return node, nil
}

// parseAnonymousFunction parses the fn(...) expression form, either
// with a => expression body or a block body.
func (par *Parser) parseAnonymousFunction(token lexer.Token) (ExpressionNode, error) {
	if !par.match(lexer.OPEN_PAREN) {
		return nil, NewParseError(OpenParenExpected, par.peek())
	}
	params, err := par.parseParameterList()
	if err != nil {
		return nil, err
	}

	node := &AnonymousFunctionNode{Token: token, Parameters: params}
	par.loopDepth++
	defer func() { par.loopDepth-- }()
	if par.match(lexer.GOES_TO) {
		par.pushScope()
		for _, param := range params {
			par.addSymbol(&Symbol{Name: param, Kind: SymbolArgument})
		}
		body, err := par.parseExpression(0)
		par.popScope()
		if err != nil {
			return nil, err
		}
		node.Body = body
		node.Arrow = true
		return node, nil
	}
	body, err := par.parseBlock(params)
	if err != nil {
		return nil, err
	}
	node.Body = body
	return node, nil
}

// parseParameterList reads identifiers up to the closing paren, which
// is consumed.
func (par *Parser) parseParameterList() ([]string, error) {
	var params []string
	for par.peek().Type != lexer.CLOSE_PAREN {
		arg := par.next()
		if arg.Type != lexer.IDENTIFIER {
			return nil, NewParseError(IdentifierExpected, arg)
		}
		params = append(params, arg.Lexeme)
		if par.match(lexer.COMMA) || par.peek().Type == lexer.CLOSE_PAREN {
			continue
		}
		return nil, NewParseError(CommaOrCloseParenExpected, par.peek())
	}
	par.next() // eat close paren
	return params, nil
}

// parseAssign parses `name = value`. The target must be a resolvable,
// non-const name; both conditions are checked against the symbol table
// at parse time.
func (par *Parser) parseAssign(left ExpressionNode, token lexer.Token) (ExpressionNode, error) {
	right, err := par.parseExpression(precedenceAssign - 1)
	if err != nil {
		return nil, err
	}
	name, ok := left.(*NameNode)
	if !ok {
		return nil, NewParseError(IdentifierExpected, token)
	}
	sym := par.findSymbol(name.Name, false)
	if sym == nil {
		return nil, NewParseError(UndefinedSymbol, name.Token, name.Name)
	}
	if sym.Const {
		return nil, NewParseError(CannotModifyConst, name.Token, name.Name)
	}
	return &AssignNode{Token: token, Name: name.Name, Value: right}, nil
}

// compoundOperators maps each compound-assignment token onto the binary
// operator it folds in.
var compoundOperators = map[lexer.TokenType]struct {
	typ    lexer.TokenType
	lexeme string
}{
	lexer.ASSIGN_ADD:   {lexer.ADD, "+"},
	lexer.ASSIGN_SUB:   {lexer.SUB, "-"},
	lexer.ASSIGN_MUL:   {lexer.MUL, "*"},
	lexer.ASSIGN_DIV:   {lexer.DIV, "/"},
	lexer.ASSIGN_MOD:   {lexer.MOD, "%"},
	lexer.ASSIGN_POWER: {lexer.POWER, "**"},
	lexer.ASSIGN_AND:   {lexer.AND, "&"},
	lexer.ASSIGN_OR:    {lexer.OR, "|"},
	lexer.ASSIGN_XOR:   {lexer.XOR, "^"},
}

// parseCompoundAssign desugars `name op= value` into
// `name = name op value`, with the same target checks as plain
// assignment.
func (par *Parser) parseCompoundAssign(left ExpressionNode, token lexer.Token) (ExpressionNode, error) {
	right, err := par.parseExpression(precedenceAssign - 1)
	if err != nil {
		return nil, err
	}
	name, ok := left.(*NameNode)
	if !ok {
		return nil, NewParseError(IdentifierExpected, token)
	}
	sym := par.findSymbol(name.Name, false)
	if sym == nil {
		return nil, NewParseError(UndefinedSymbol, name.Token, name.Name)
	}
	if sym.Const {
		return nil, NewParseError(CannotModifyConst, name.Token, name.Name)
	}
	op := compoundOperators[token.Type]
	operator := lexer.Token{Type: op.typ, Lexeme: op.lexeme, Line: token.Line, Col: token.Col}
	value := &BinaryNode{
		Operator: operator,
		Left:     &NameNode{Token: name.Token, Name: name.Name},
		Right:    right,
	}
	return &AssignNode{Token: token, Name: name.Name, Value: value}, nil
}

// parseInvokeFunction parses the call operator: an argument list after
// a callee name.
func (par *Parser) parseInvokeFunction(left ExpressionNode, token lexer.Token) (ExpressionNode, error) {
	name, ok := left.(*NameNode)
	if !ok {
		return nil, NewParseError(Syntax, token, "only named functions can be invoked")
	}

	var args []ExpressionNode
	for par.peek().Type != lexer.CLOSE_PAREN {
		if !par.peek().IsValid() {
			return nil, NewParseError(CloseParenExpected, par.peek())
		}
		arg, err := par.parseExpression(0)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if par.match(lexer.COMMA) || par.peek().Type == lexer.CLOSE_PAREN {
			continue
		}
		return nil, NewParseError(CommaExpected, par.peek())
	}
	par.next() // eat close paren
	return &InvokeFunctionNode{Token: token, Name: name.Name, Arguments: args}, nil
}
