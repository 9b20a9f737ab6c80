package parser

import (
	"github.com/funvibe/splat/internal/ast"
	"github.com/funvibe/splat/internal/diagnostics"
	"github.com/funvibe/splat/internal/token"
)

func (p *Parser) parseExpression(precedence int) ast.Expression {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > MaxRecursionDepth {
		if !p.inRecursionRecovery {
			p.addError(diagnostics.ErrP202, p.curToken,
				"expression too complex: recursion depth limit exceeded")
			p.inRecursionRecovery = true
		}
		// Skip the rest of the statement to avoid a cascade of errors.
		p.skipToStatementBoundary()
		p.inRecursionRecovery = false
		return nil
	}

	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken.Type)
		return nil
	}
	leftExp := prefix()
	if leftExp == nil {
		return nil
	}

	for precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		nextExp := infix(leftExp)
		if nextExp == nil {
			return nil
		}
		leftExp = nextExp
	}

	return leftExp
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expression := &ast.PrefixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Lexeme,
	}
	p.nextToken()
	expression.Right = p.parseExpression(PREFIX)
	if expression.Right == nil {
		return nil
	}
	return expression
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expression := &ast.InfixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Lexeme,
		Left:     left,
	}

	precedence := p.curPrecedence()
	p.nextToken()
	// Allow newline after operator (e.g., x && \n y)
	for p.curTokenIs(token.NEWLINE) {
		p.nextToken()
	}
	expression.Right = p.parseExpression(precedence)
	if expression.Right == nil {
		return nil
	}

	return expression
}

// parseRightAssocInfixExpression parses right-associative operators like **:
// 2 ** 3 ** 2 parses as 2 ** (3 ** 2)
func (p *Parser) parseRightAssocInfixExpression(left ast.Expression) ast.Expression {
	expression := &ast.InfixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Lexeme,
		Left:     left,
	}

	precedence := p.curPrecedence()
	p.nextToken()
	for p.curTokenIs(token.NEWLINE) {
		p.nextToken()
	}
	expression.Right = p.parseExpression(precedence - 1)
	if expression.Right == nil {
		return nil
	}

	return expression
}

// parseGroupedExpression handles everything that starts with '(': grouping,
// the empty tuple, tuple displays and generator expressions.
func (p *Parser) parseGroupedExpression() ast.Expression {
	startToken := p.curToken
	p.nextToken() // consume '('

	for p.curTokenIs(token.NEWLINE) {
		p.nextToken()
	}

	// Check for empty tuple ()
	if p.curTokenIs(token.RPAREN) {
		return &ast.TupleLiteral{Token: startToken, Elements: []ast.Expression{}}
	}

	starred := p.curTokenIs(token.ASTERISK)
	first := p.parseSpreadableElement("tuple")
	if first == nil {
		return nil
	}

	p.skipPeekNewlines()

	if p.peekTokenIs(token.FOR) {
		ge := &ast.GeneratorExpression{Token: startToken, Output: first}
		ge.Clauses = p.parseCompClauses()
		if ge.Clauses == nil {
			return nil
		}
		p.skipPeekNewlines()
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
		return ge
	}

	if p.peekTokenIs(token.COMMA) {
		elements := p.parseDisplayRest(first, "tuple", token.RPAREN)
		if elements == nil {
			return nil
		}
		return &ast.TupleLiteral{Token: startToken, Elements: elements}
	}

	if starred {
		// (*x) with no comma and no 'for' is neither a tuple nor a
		// generator expression.
		p.addError(diagnostics.ErrP301, first.GetToken(),
			`"*" unpacking inside parentheses needs a trailing comma or a 'for' clause`)
		return nil
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return first
}

func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	exp := &ast.CallExpression{Token: p.curToken, Function: function}
	exp.Arguments = p.parseCallArguments()
	if exp.Arguments == nil {
		return nil
	}
	return exp
}

func (p *Parser) parseCallArguments() []ast.Expression {
	lparen := p.curToken
	args := []ast.Expression{}

	p.skipPeekNewlines()
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return args
	}

	p.nextToken() // first token of first argument
	first := p.parseSpreadableElement("call")
	if first == nil {
		return nil
	}

	p.skipPeekNewlines()

	// A call whose sole argument is a generator expression needs no extra
	// parentheses: sum(x * x for x in xs)
	if p.peekTokenIs(token.FOR) {
		if _, ok := first.(*ast.SpreadExpression); ok {
			p.addError(diagnostics.ErrP301, first.GetToken(),
				`parenthesize the generator expression to use "*" unpacking in a call`)
			return nil
		}
		ge := &ast.GeneratorExpression{Token: lparen, Output: first}
		ge.Clauses = p.parseCompClauses()
		if ge.Clauses == nil {
			return nil
		}
		p.skipPeekNewlines()
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
		return []ast.Expression{ge}
	}

	args = append(args, first)
	for {
		p.skipPeekNewlines()
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken() // consume up to ','
		p.skipPeekNewlines()
		if p.peekTokenIs(token.RPAREN) {
			break // trailing comma
		}
		if p.peekTokenIs(token.FOR) {
			p.addError(diagnostics.ErrP300, p.peekToken,
				"generator expression must be parenthesized when not the sole argument")
			return nil
		}
		p.nextToken()
		arg := p.parseSpreadableElement("call")
		if arg == nil {
			return nil
		}
		args = append(args, arg)

		p.skipPeekNewlines()
		if p.peekTokenIs(token.FOR) {
			p.addError(diagnostics.ErrP300, p.peekToken,
				"generator expression must be parenthesized when not the sole argument")
			return nil
		}
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return args
}

func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	exp := &ast.IndexExpression{Token: p.curToken, Left: left}

	p.nextToken()
	for p.curTokenIs(token.NEWLINE) {
		p.nextToken()
	}
	exp.Index = p.parseExpression(LOWEST)
	if exp.Index == nil {
		return nil
	}

	p.skipPeekNewlines()
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return exp
}
