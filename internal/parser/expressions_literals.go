package parser

import (
	"fmt"

	"github.com/funvibe/splat/internal/ast"
	"github.com/funvibe/splat/internal/diagnostics"
	"github.com/funvibe/splat/internal/token"
)

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	value, ok := p.curToken.Literal.(int64)
	if !ok {
		p.addError(diagnostics.ErrP200, p.curToken,
			fmt.Sprintf("could not parse %q as integer", p.curToken.Lexeme))
		return nil
	}
	return &ast.IntegerLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	value, ok := p.curToken.Literal.(float64)
	if !ok {
		p.addError(diagnostics.ErrP200, p.curToken,
			fmt.Sprintf("could not parse %q as float", p.curToken.Lexeme))
		return nil
	}
	return &ast.FloatLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal.(string)}
}

func (p *Parser) parseBytesLiteral() ast.Expression {
	return &ast.BytesLiteral{Token: p.curToken, Value: p.curToken.Literal.([]byte)}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parseNilLiteral() ast.Expression {
	return &ast.NilLiteral{Token: p.curToken}
}

// parseSpreadableElement parses one element of a list, tuple or set display,
// a comprehension output, or a call argument. A leading '*' produces a
// SpreadExpression; '**' is rejected here because it only makes sense for
// dicts. curToken is the first token of the element.
func (p *Parser) parseSpreadableElement(context string) ast.Expression {
	if p.curTokenIs(token.POWER) {
		p.addError(diagnostics.ErrP301, p.curToken,
			fmt.Sprintf(`"**" unpacking is only valid in a dict, not in a %s`, context))
		return nil
	}
	if p.curTokenIs(token.ASTERISK) {
		star := p.curToken
		p.nextToken()
		inner := p.parseExpression(LOWEST)
		if inner == nil {
			return nil
		}
		return &ast.SpreadExpression{Token: star, Expression: inner}
	}
	return p.parseExpression(LOWEST)
}

// parseDisplayRest consumes the ", element" tail of a display after its
// first element, up to and including the closing bracket. A 'for' after a
// comma or a second element is a malformed comprehension, not a display.
func (p *Parser) parseDisplayRest(first ast.Expression, context string, closing token.TokenType) []ast.Expression {
	elements := []ast.Expression{first}

	for {
		p.skipPeekNewlines()
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken() // consume up to ','
		p.skipPeekNewlines()
		if p.peekTokenIs(closing) {
			break // trailing comma
		}
		if p.peekTokenIs(token.FOR) {
			p.addError(diagnostics.ErrP300, p.peekToken,
				"comprehension output must be a single expression")
			return nil
		}
		p.nextToken()
		el := p.parseSpreadableElement(context)
		if el == nil {
			return nil
		}
		elements = append(elements, el)

		p.skipPeekNewlines()
		if p.peekTokenIs(token.FOR) {
			p.addError(diagnostics.ErrP300, p.peekToken,
				"comprehension output must be a single expression")
			return nil
		}
	}

	if !p.expectPeek(closing) {
		return nil
	}
	return elements
}

// parseBracketLiteral handles everything that starts with '[': the empty
// list, list displays and list comprehensions.
func (p *Parser) parseBracketLiteral() ast.Expression {
	startToken := p.curToken
	p.nextToken() // consume '['

	for p.curTokenIs(token.NEWLINE) {
		p.nextToken()
	}

	if p.curTokenIs(token.RBRACKET) {
		return &ast.ListLiteral{Token: startToken, Elements: []ast.Expression{}}
	}

	first := p.parseSpreadableElement("list")
	if first == nil {
		return nil
	}

	p.skipPeekNewlines()
	if p.peekTokenIs(token.FOR) {
		lc := &ast.ListComprehension{Token: startToken, Output: first}
		lc.Clauses = p.parseCompClauses()
		if lc.Clauses == nil {
			return nil
		}
		p.skipPeekNewlines()
		if !p.expectPeek(token.RBRACKET) {
			return nil
		}
		return lc
	}

	elements := p.parseDisplayRest(first, "list", token.RBRACKET)
	if elements == nil {
		return nil
	}
	return &ast.ListLiteral{Token: startToken, Elements: elements}
}

// parseBraceLiteral handles everything that starts with '{': the empty dict,
// set and dict displays, and set and dict comprehensions. Which one it is
// only becomes clear after the first element.
func (p *Parser) parseBraceLiteral() ast.Expression {
	startToken := p.curToken
	p.nextToken() // consume '{'

	for p.curTokenIs(token.NEWLINE) {
		p.nextToken()
	}

	// {} is the empty dict; the empty set is spelled set().
	if p.curTokenIs(token.RBRACE) {
		return &ast.DictLiteral{Token: startToken, Entries: []ast.Expression{}}
	}

	// '**mapping' makes it a dict.
	if p.curTokenIs(token.POWER) {
		entry := p.parseDoubleSpread()
		if entry == nil {
			return nil
		}
		p.skipPeekNewlines()
		if p.peekTokenIs(token.FOR) {
			dc := &ast.DictComprehension{Token: startToken, Output: entry}
			dc.Clauses = p.parseCompClauses()
			if dc.Clauses == nil {
				return nil
			}
			p.skipPeekNewlines()
			if !p.expectPeek(token.RBRACE) {
				return nil
			}
			return dc
		}
		return p.parseDictDisplayRest(startToken, entry)
	}

	// '*iterable' makes it a set, unless a ':' betrays a dict key.
	if p.curTokenIs(token.ASTERISK) {
		star := p.curToken
		p.nextToken()
		inner := p.parseExpression(LOWEST)
		if inner == nil {
			return nil
		}
		p.skipPeekNewlines()
		if p.peekTokenIs(token.COLON) {
			p.addError(diagnostics.ErrP301, star,
				`"*" unpacking cannot be used as a dict key`)
			return nil
		}
		spread := &ast.SpreadExpression{Token: star, Expression: inner}
		if p.peekTokenIs(token.FOR) {
			sc := &ast.SetComprehension{Token: startToken, Output: spread}
			sc.Clauses = p.parseCompClauses()
			if sc.Clauses == nil {
				return nil
			}
			p.skipPeekNewlines()
			if !p.expectPeek(token.RBRACE) {
				return nil
			}
			return sc
		}
		elements := p.parseDisplayRest(spread, "set", token.RBRACE)
		if elements == nil {
			return nil
		}
		return &ast.SetLiteral{Token: startToken, Elements: elements}
	}

	first := p.parseExpression(LOWEST)
	if first == nil {
		return nil
	}

	p.skipPeekNewlines()

	// 'key: value' makes it a dict.
	if p.peekTokenIs(token.COLON) {
		p.nextToken() // at ':'
		entry := &ast.DictEntry{Token: p.curToken, Key: first}
		if p.peekTokenIs(token.ASTERISK) {
			p.addError(diagnostics.ErrP301, p.peekToken,
				`"*" unpacking cannot be used as a dict value`)
			return nil
		}
		p.nextToken()
		for p.curTokenIs(token.NEWLINE) {
			p.nextToken()
		}
		entry.Value = p.parseExpression(LOWEST)
		if entry.Value == nil {
			return nil
		}

		p.skipPeekNewlines()
		if p.peekTokenIs(token.FOR) {
			dc := &ast.DictComprehension{Token: startToken, Output: entry}
			dc.Clauses = p.parseCompClauses()
			if dc.Clauses == nil {
				return nil
			}
			p.skipPeekNewlines()
			if !p.expectPeek(token.RBRACE) {
				return nil
			}
			return dc
		}
		return p.parseDictDisplayRest(startToken, entry)
	}

	if p.peekTokenIs(token.FOR) {
		sc := &ast.SetComprehension{Token: startToken, Output: first}
		sc.Clauses = p.parseCompClauses()
		if sc.Clauses == nil {
			return nil
		}
		p.skipPeekNewlines()
		if !p.expectPeek(token.RBRACE) {
			return nil
		}
		return sc
	}

	elements := p.parseDisplayRest(first, "set", token.RBRACE)
	if elements == nil {
		return nil
	}
	return &ast.SetLiteral{Token: startToken, Elements: elements}
}

// parseDoubleSpread parses a '**mapping' dict merge entry. curToken is '**'.
func (p *Parser) parseDoubleSpread() ast.Expression {
	tok := p.curToken
	p.nextToken()
	inner := p.parseExpression(LOWEST)
	if inner == nil {
		return nil
	}
	return &ast.DoubleSpreadExpression{Token: tok, Expression: inner}
}

// parseDictDisplayRest consumes the ", entry" tail of a dict display after
// its first entry, up to and including the closing '}'.
func (p *Parser) parseDictDisplayRest(startToken token.Token, first ast.Expression) ast.Expression {
	entries := []ast.Expression{first}

	for {
		p.skipPeekNewlines()
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken() // consume up to ','
		p.skipPeekNewlines()
		if p.peekTokenIs(token.RBRACE) {
			break // trailing comma
		}
		if p.peekTokenIs(token.FOR) {
			p.addError(diagnostics.ErrP300, p.peekToken,
				"comprehension output must be a single expression")
			return nil
		}
		p.nextToken()

		entry := p.parseDictEntry()
		if entry == nil {
			return nil
		}
		entries = append(entries, entry)

		p.skipPeekNewlines()
		if p.peekTokenIs(token.FOR) {
			p.addError(diagnostics.ErrP300, p.peekToken,
				"comprehension output must be a single expression")
			return nil
		}
	}

	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return &ast.DictLiteral{Token: startToken, Entries: entries}
}

// parseDictEntry parses one 'key: value' or '**mapping' entry of a dict
// display. curToken is the first token of the entry.
func (p *Parser) parseDictEntry() ast.Expression {
	if p.curTokenIs(token.POWER) {
		return p.parseDoubleSpread()
	}
	if p.curTokenIs(token.ASTERISK) {
		p.addError(diagnostics.ErrP301, p.curToken,
			`"*" unpacking cannot be used as a dict key`)
		return nil
	}

	key := p.parseExpression(LOWEST)
	if key == nil {
		return nil
	}
	if !p.expectPeek(token.COLON) {
		return nil
	}
	entry := &ast.DictEntry{Token: p.curToken, Key: key}

	if p.peekTokenIs(token.ASTERISK) {
		p.addError(diagnostics.ErrP301, p.peekToken,
			`"*" unpacking cannot be used as a dict value`)
		return nil
	}
	p.nextToken()
	for p.curTokenIs(token.NEWLINE) {
		p.nextToken()
	}
	entry.Value = p.parseExpression(LOWEST)
	if entry.Value == nil {
		return nil
	}
	return entry
}

// parseCompClauses parses the clause chain of a comprehension. Called with
// peekToken at the first 'for'; clauses accumulate until neither 'for' nor
// 'if' follows, so every chain starts with a CompFor.
func (p *Parser) parseCompClauses() []ast.CompClause {
	var clauses []ast.CompClause

	for {
		p.skipPeekNewlines()
		switch {
		case p.peekTokenIs(token.FOR):
			p.nextToken() // at 'for'
			forTok := p.curToken
			targets := p.parseIdentifierList()
			if targets == nil {
				return nil
			}
			if !p.expectPeek(token.IN) {
				return nil
			}
			p.nextToken()
			for p.curTokenIs(token.NEWLINE) {
				p.nextToken()
			}
			iterable := p.parseExpression(LOWEST)
			if iterable == nil {
				return nil
			}
			clauses = append(clauses, &ast.CompFor{Token: forTok, Targets: targets, Iterable: iterable})

		case p.peekTokenIs(token.IF):
			p.nextToken() // at 'if'
			ifTok := p.curToken
			p.nextToken()
			for p.curTokenIs(token.NEWLINE) {
				p.nextToken()
			}
			condition := p.parseExpression(LOWEST)
			if condition == nil {
				return nil
			}
			clauses = append(clauses, &ast.CompIf{Token: ifTok, Condition: condition})

		default:
			return clauses
		}
	}
}

// parseIdentifierList parses a comma-separated run of identifiers starting
// at peekToken. Used for loop targets, comprehension targets and function
// parameters.
func (p *Parser) parseIdentifierList() []*ast.Identifier {
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	idents := []*ast.Identifier{{Token: p.curToken, Value: p.curToken.Lexeme}}

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		idents = append(idents, &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme})
	}
	return idents
}
