/*
File    : logo2/parser/enum.go
*/
package parser

import "github.com/logo2lang/logo2/lexer"

// parseEnumDeclaration parses `enum NAME { member (= CONST)?, ... }`.
// Members without an initializer number themselves from the previous
// value plus one (the first from 0); initializers must be literal
// integer constants. Member errors are recorded and the body is
// recovered by skipping to the closing brace where needed.
func (par *Parser) parseEnumDeclaration() (StatementNode, error) {
	par.next() // eat enum
	name := par.next()
	if name.Type != lexer.IDENTIFIER {
		par.AddError(NewParseError(IdentifierExpected, name, "Expected identifier after 'enum'"))
		par.skipTo(lexer.CLOSE_BRACE)
		return par.parseStatement()
	}
	duplicate := par.findSymbol(name.Lexeme, false) != nil
	if duplicate {
		par.AddError(NewParseError(DuplicateDefinition, name,
			"Identifier already defined in current scope"))
	}

	par.expect(lexer.OPEN_BRACE, OpenBraceExpected)

	node := &EnumDeclarationNode{Token: name, Name: name.Lexeme}
	seen := make(map[string]bool)
	current := int64(0)
	for par.peek().Type != lexer.CLOSE_BRACE && par.peek().IsValid() {
		member := par.next()
		bad := false
		if member.Type != lexer.IDENTIFIER {
			par.AddError(NewParseError(IdentifierExpected, member, "Expected: identifier"))
			bad = true
		}
		if seen[member.Lexeme] {
			par.AddError(NewParseError(DuplicateDefinition, member,
				"Duplicate enum value '"+member.Lexeme+"'"))
			bad = true
		}
		if par.match(lexer.ASSIGN) {
			value, err := par.parseExpression(0)
			if err != nil {
				return nil, err
			}
			if lit, ok := value.(*LiteralNode); ok && lit.Token.Type == lexer.INTEGER {
				current = lit.Token.Value.(int64)
			} else {
				par.AddError(NewParseError(IllegalExpression, par.peek(),
					"Expression must be constant"))
			}
		}
		if !bad {
			seen[member.Lexeme] = true
			node.Members = append(node.Members, EnumMember{Name: member.Lexeme, Value: current})
		}
		current++
		if !par.match(lexer.COMMA) && par.peek().Type != lexer.CLOSE_BRACE {
			par.AddError(NewParseError(CommaExpected, par.peek()))
		}
	}
	par.match(lexer.CLOSE_BRACE)

	if !duplicate {
		par.addSymbol(&Symbol{Name: node.Name, Kind: SymbolEnum})
	}
	return node, nil
}
