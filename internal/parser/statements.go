package parser

import (
	"github.com/funvibe/splat/internal/ast"
	"github.com/funvibe/splat/internal/diagnostics"
	"github.com/funvibe/splat/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.BREAK:
		return &ast.BreakStatement{Token: p.curToken}
	case token.CONTINUE:
		return &ast.ContinueStatement{Token: p.curToken}
	default:
		if p.curTokenIs(token.IDENT) && p.peekTokenIs(token.ASSIGN) {
			return p.parseAssignStatement()
		}
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseAssignStatement() ast.Statement {
	name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal.(string)}

	p.nextToken() // consume name, now at '='
	stmt := &ast.AssignStatement{Token: p.curToken, Name: name}

	p.nextToken()
	// Allow the value on the next line
	for p.curTokenIs(token.NEWLINE) {
		p.nextToken()
	}

	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(LOWEST)
	if stmt.Expression == nil {
		return nil
	}

	// Catch things like xs[0] = 1: subscripts are not assignment targets.
	if p.peekTokenIs(token.ASSIGN) {
		p.addError(diagnostics.ErrP203, p.peekToken, "invalid assignment target")
		return nil
	}

	return stmt
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken, Statements: []ast.Statement{}}

	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.NEWLINE) {
			p.nextToken()
			continue
		}

		errsBefore := len(p.ctx.Errors)
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}

		if len(p.ctx.Errors) > errsBefore {
			// Recover at the next newline or closing brace.
			for !p.curTokenIs(token.NEWLINE) && !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
				p.nextToken()
			}
			continue
		}

		if !p.peekTokenIs(token.NEWLINE) && !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
			p.addError(diagnostics.ErrP200, p.peekToken,
				"expected newline or } after statement in block")
			return block
		}
		p.nextToken()
	}

	if p.curTokenIs(token.EOF) {
		p.addError(diagnostics.ErrP200, p.curToken, "expected } to close block, got end of input")
		return block
	}

	block.RBraceToken = p.curToken
	return block
}
