package parser

import (
	"github.com/funvibe/splat/internal/ast"
	"github.com/funvibe/splat/internal/token"
)

func (p *Parser) parseIfExpression() ast.Expression {
	expression := &ast.IfExpression{Token: p.curToken}

	p.nextToken() // consume 'if'
	expression.Condition = p.parseExpression(LOWEST)
	if expression.Condition == nil {
		return nil
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	expression.Consequence = p.parseBlockStatement()

	// Check for an optional else, looking ahead past newlines without
	// consuming them unless the else is actually there.
	hasElse := false
	if p.peekTokenIs(token.ELSE) {
		hasElse = true
	} else if p.peekTokenIs(token.NEWLINE) {
		for _, t := range p.stream.Peek(50) {
			if t.Type == token.NEWLINE {
				continue
			}
			if t.Type == token.ELSE {
				hasElse = true
			}
			break
		}
	}

	if hasElse {
		p.skipPeekNewlines()
		if p.peekTokenIs(token.ELSE) {
			p.nextToken()

			if p.peekTokenIs(token.IF) {
				// else if chains nest as a single-statement alternative
				p.nextToken()
				nested := p.parseIfExpression()
				if nested == nil {
					return nil
				}
				expression.Alternative = &ast.BlockStatement{
					Token:      token.Token{Type: token.LBRACE, Lexeme: "{"},
					Statements: []ast.Statement{&ast.ExpressionStatement{Token: nested.GetToken(), Expression: nested}},
				}
			} else {
				if !p.expectPeek(token.LBRACE) {
					return nil
				}
				expression.Alternative = p.parseBlockStatement()
			}
		}
	}

	return expression
}

func (p *Parser) parseForExpression() ast.Expression {
	expr := &ast.ForExpression{Token: p.curToken}

	expr.Targets = p.parseIdentifierList()
	if expr.Targets == nil {
		return nil
	}

	if !p.expectPeek(token.IN) {
		return nil
	}
	p.nextToken() // consume 'in'
	expr.Iterable = p.parseExpression(LOWEST)
	if expr.Iterable == nil {
		return nil
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	expr.Body = p.parseBlockStatement()
	return expr
}

// parseFunctionLiteral parses a lambda: \x, y -> expr. A parameterless
// lambda is spelled \ -> expr.
func (p *Parser) parseFunctionLiteral() ast.Expression {
	fl := &ast.FunctionLiteral{Token: p.curToken}

	if !p.peekTokenIs(token.ARROW) {
		fl.Parameters = p.parseIdentifierList()
		if fl.Parameters == nil {
			return nil
		}
	}

	if !p.expectPeek(token.ARROW) {
		return nil
	}
	p.nextToken()
	for p.curTokenIs(token.NEWLINE) {
		p.nextToken()
	}
	fl.Body = p.parseExpression(LOWEST)
	if fl.Body == nil {
		return nil
	}
	return fl
}
