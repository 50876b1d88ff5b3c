/*
File    : logo2/parser/statements.go
*/
package parser

import "github.com/logo2lang/logo2/lexer"

// parseStatement parses a single statement, dispatching on the upcoming
// token. It returns (nil, nil) when the token stream is exhausted.
func (par *Parser) parseStatement() (StatementNode, error) {
	peek := par.peek()
	if !peek.IsValid() {
		if peek.Lexeme != "" {
			// an unclassifiable operator run ends the parse with a
			// recorded error rather than silently
			par.next()
			par.AddError(NewParseError(UnknownOperator, peek, peek.Lexeme))
		}
		return nil, nil
	}

	switch peek.Type {
	case lexer.KEYWORD_VAR:
		return par.parseVarConstStatement(false)
	case lexer.KEYWORD_CONST:
		return par.parseVarConstStatement(true)
	case lexer.KEYWORD_REPEAT:
		return par.parseRepeatStatement()
	case lexer.KEYWORD_WHILE:
		return par.parseWhileStatement()
	case lexer.KEYWORD_FOR:
		return par.parseForStatement()
	case lexer.KEYWORD_FN:
		// `fn(` starts an anonymous function expression; `fn name`
		// is a declaration
		if par.peekSecond().Type != lexer.OPEN_PAREN {
			return par.parseFunctionDeclaration()
		}
	case lexer.KEYWORD_RETURN:
		return par.parseReturnStatement()
	case lexer.KEYWORD_BREAK:
		return par.parseBreakContinueStatement(false)
	case lexer.KEYWORD_CONTINUE:
		return par.parseBreakContinueStatement(true)
	case lexer.KEYWORD_ENUM:
		return par.parseEnumDeclaration()
	case lexer.OPEN_BRACE:
		return par.parseBlock(nil)
	case lexer.SEMICOLON:
		par.next() // empty statement
		return par.parseStatement()
	case lexer.KEYWORD_BREAKOUT, lexer.KEYWORD_DO, lexer.KEYWORD_FOREACH:
		// reserved words with no parse rule
		return nil, NewParseError(InvalidStatement, peek)
	}

	expr, err := par.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if expr == nil {
		par.AddError(NewParseError(InvalidStatement, peek))
		return nil, nil
	}
	if par.match(lexer.SEMICOLON) {
		return &ExpressionStatementNode{Expr: expr}, nil
	}
	// a bare expression is a statement; its value is observable in the
	// REPL
	return expr, nil
}

// peekSecond returns the token after the next one, restoring the
// tokenizer cursor afterwards.
func (par *Parser) peekSecond() lexer.Token {
	position, line, col := par.tokenizer.Position, par.tokenizer.Line, par.tokenizer.Col
	par.next()
	second := par.peek()
	par.tokenizer.Position, par.tokenizer.Line, par.tokenizer.Col = position, line, col
	return second
}

// parseVarConstStatement parses `var NAME (= EXPR)? ;` and the const
// variant, which requires the initializer. The name is installed as a
// symbol in the current scope; a duplicate in the same scope is fatal.
func (par *Parser) parseVarConstStatement(constant bool) (StatementNode, error) {
	keyword := par.next() // eat var or const
	name := par.next()
	if name.Type != lexer.IDENTIFIER {
		return nil, NewParseError(IdentifierExpected, name)
	}
	if sym := par.findSymbol(name.Lexeme, true); sym != nil {
		return nil, NewParseError(DuplicateDefinition, name,
			"Symbol "+name.Lexeme+" already defined in scope")
	}

	var init ExpressionNode
	if par.match(lexer.ASSIGN) {
		expr, err := par.parseExpression(0)
		if err != nil {
			return nil, err
		}
		init = expr
	} else if constant {
		return nil, NewParseError(MissingInitExpression, par.peek())
	}
	par.expect(lexer.SEMICOLON, SemicolonExpected)

	if !par.addSymbol(&Symbol{Name: name.Lexeme, Kind: SymbolVariable, Const: constant}) {
		return nil, NewParseError(DuplicateDefinition, name)
	}
	return &VarStatementNode{Token: keyword, Name: name.Lexeme, Const: constant, Init: init}, nil
}

// parseRepeatStatement parses `repeat EXPR BLOCK`.
func (par *Parser) parseRepeatStatement() (StatementNode, error) {
	par.next() // eat "repeat"
	count, err := par.parseExpression(0)
	if err != nil {
		return nil, err
	}

	par.loopDepth++
	body, blockErr := par.parseBlock(nil)
	par.loopDepth--
	if blockErr != nil {
		return nil, blockErr
	}
	return &RepeatStatementNode{Count: count, Body: body}, nil
}

// parseWhileStatement parses `while EXPR BLOCK`.
func (par *Parser) parseWhileStatement() (StatementNode, error) {
	par.next() // eat "while"
	condition, err := par.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if condition == nil {
		par.AddError(NewParseError(ConditionExpected, par.peek()))
	}

	par.loopDepth++
	body, blockErr := par.parseBlock(nil)
	par.loopDepth--
	if blockErr != nil {
		return nil, blockErr
	}
	return &WhileStatementNode{Condition: condition, Body: body}, nil
}

// parseForStatement parses `for INIT COND; INC BLOCK`. The whole loop,
// including the header, lives in its own scope.
func (par *Parser) parseForStatement() (StatementNode, error) {
	par.next() // eat "for"
	par.pushScope()
	defer par.popScope()

	init, err := par.parseStatement()
	if err != nil {
		return nil, err
	}
	condition, err := par.parseExpression(0)
	if err != nil {
		return nil, err
	}
	par.expect(lexer.SEMICOLON, SemicolonExpected)

	increment, err := par.parseExpression(0)
	if err != nil {
		return nil, err
	}

	par.loopDepth++
	body, blockErr := par.parseBlock(nil)
	par.loopDepth--
	if blockErr != nil {
		return nil, blockErr
	}
	return &ForStatementNode{Init: init, Condition: condition, Increment: increment, Body: body}, nil
}

// parseFunctionDeclaration parses `fn NAME(arg, ...) { BODY }` and the
// `fn NAME(arg, ...) => EXPR` form. The function symbol lands in the
// enclosing scope; parameters become Argument symbols of the body
// scope.
func (par *Parser) parseFunctionDeclaration() (StatementNode, error) {
	fn := par.next() // eat fn keyword
	ident := par.next()
	if ident.Type != lexer.IDENTIFIER {
		return nil, NewParseError(IdentifierExpected, ident)
	}
	duplicate := par.findSymbol(ident.Lexeme, false) != nil
	if duplicate {
		par.AddError(NewParseError(DuplicateDefinition, ident))
	}
	if !par.match(lexer.OPEN_PAREN) {
		return nil, NewParseError(OpenParenExpected, ident)
	}

	params, err := par.parseParameterList()
	if err != nil {
		return nil, err
	}

	node := &FunctionDeclarationNode{Token: fn, Name: ident.Lexeme, Parameters: params}
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
	} else {
		body, err := par.parseBlock(params)
		if err != nil {
			return nil, err
		}
		node.Body = body
	}

	if !duplicate {
		par.addSymbol(&Symbol{Name: node.Name, Kind: SymbolFunction})
	}
	return node, nil
}

// parseReturnStatement parses `return EXPR? ;`.
func (par *Parser) parseReturnStatement() (StatementNode, error) {
	par.next() // eat return keyword
	if par.match(lexer.SEMICOLON) {
		return &ReturnNode{}, nil
	}
	expr, err := par.parseExpression(0)
	if err != nil {
		return nil, err
	}
	par.expect(lexer.SEMICOLON, SemicolonExpected)
	return &ReturnNode{Value: expr}, nil
}

// parseBreakContinueStatement parses `break;` / `continue;`. Outside of
// a loop the statement is recorded as a BreakContinueNoLoop error.
func (par *Parser) parseBreakContinueStatement(cont bool) (StatementNode, error) {
	keyword := par.next() // eat keyword
	par.expect(lexer.SEMICOLON, SemicolonExpected)
	if par.loopDepth == 0 {
		par.AddError(NewParseError(BreakContinueNoLoop, keyword))
	}
	return &BreakContinueNode{Continue: cont}, nil
}

// parseBlock parses `{ STATEMENT* }` in a fresh symbol scope, binding
// the given names as Argument symbols first (used for function bodies).
func (par *Parser) parseBlock(args []string) (*BlockNode, error) {
	par.expect(lexer.OPEN_BRACE, OpenBraceExpected)

	par.pushScope()
	defer par.popScope()

	for _, arg := range args {
		par.addSymbol(&Symbol{Name: arg, Kind: SymbolArgument})
	}

	block := &BlockNode{}
	for par.peek().Type != lexer.CLOSE_BRACE {
		if !par.peek().IsValid() {
			par.AddError(NewParseError(CloseBraceExpected, par.peek()))
			return block, nil
		}
		stmt, err := par.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt == nil {
			break
		}
		block.Add(stmt)
	}
	par.match(lexer.CLOSE_BRACE)
	return block, nil
}
