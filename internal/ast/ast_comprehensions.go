package ast

import "github.com/funvibe/splat/internal/token"

// CompClause is one clause of a comprehension: either a generator
// (for x in xs) or a filter (if cond). Clauses nest left to right.
type CompClause interface {
	compClauseNode()
	GetToken() token.Token
}

// CompFor represents a generator clause: for target, ... in iterable
type CompFor struct {
	Token    token.Token // The 'for' token
	Targets  []*Identifier
	Iterable Expression
}

func (cf *CompFor) compClauseNode() {}
func (cf *CompFor) GetToken() token.Token {
	if cf == nil {
		return token.Token{}
	}
	return cf.Token
}

// CompIf represents a filter clause: if condition
type CompIf struct {
	Token     token.Token // The 'if' token
	Condition Expression
}

func (ci *CompIf) compClauseNode() {}
func (ci *CompIf) GetToken() token.Token {
	if ci == nil {
		return token.Token{}
	}
	return ci.Token
}

// ListComprehension represents [output for ...]. Output is either a plain
// expression or a SpreadExpression for element unpacking.
type ListComprehension struct {
	Token   token.Token // The '[' token
	Output  Expression
	Clauses []CompClause
}

func (lc *ListComprehension) Accept(v Visitor)     { v.VisitListComprehension(lc) }
func (lc *ListComprehension) expressionNode()      {}
func (lc *ListComprehension) TokenLiteral() string { return lc.Token.Lexeme }
func (lc *ListComprehension) GetToken() token.Token {
	if lc == nil {
		return token.Token{}
	}
	return lc.Token
}

// SetComprehension represents {output for ...} with a plain or starred output.
type SetComprehension struct {
	Token   token.Token // The '{' token
	Output  Expression
	Clauses []CompClause
}

func (sc *SetComprehension) Accept(v Visitor)     { v.VisitSetComprehension(sc) }
func (sc *SetComprehension) expressionNode()      {}
func (sc *SetComprehension) TokenLiteral() string { return sc.Token.Lexeme }
func (sc *SetComprehension) GetToken() token.Token {
	if sc == nil {
		return token.Token{}
	}
	return sc.Token
}

// DictComprehension represents {k: v for ...} or {**m for ...}. Output is
// either a *DictEntry or a *DoubleSpreadExpression.
type DictComprehension struct {
	Token   token.Token // The '{' token
	Output  Expression
	Clauses []CompClause
}

func (dc *DictComprehension) Accept(v Visitor)     { v.VisitDictComprehension(dc) }
func (dc *DictComprehension) expressionNode()      {}
func (dc *DictComprehension) TokenLiteral() string { return dc.Token.Lexeme }
func (dc *DictComprehension) GetToken() token.Token {
	if dc == nil {
		return token.Token{}
	}
	return dc.Token
}

// GeneratorExpression represents (output for ...). Evaluation is lazy; the
// result is a single-pass generator object.
type GeneratorExpression struct {
	Token   token.Token // The '(' token
	Output  Expression
	Clauses []CompClause
}

func (ge *GeneratorExpression) Accept(v Visitor)     { v.VisitGeneratorExpression(ge) }
func (ge *GeneratorExpression) expressionNode()      {}
func (ge *GeneratorExpression) TokenLiteral() string { return ge.Token.Lexeme }
func (ge *GeneratorExpression) GetToken() token.Token {
	if ge == nil {
		return token.Token{}
	}
	return ge.Token
}
