package ast

import (
	"github.com/funvibe/splat/internal/token"
)

// PrefixExpression represents a prefix operation, e.g., -5 or !true.
type PrefixExpression struct {
	Token    token.Token // The prefix token, e.g. !
	Operator string
	Right    Expression
}

func (pe *PrefixExpression) Accept(v Visitor)      { v.VisitPrefixExpression(pe) }
func (pe *PrefixExpression) expressionNode()       {}
func (pe *PrefixExpression) TokenLiteral() string  { return pe.Token.Lexeme }
func (pe *PrefixExpression) GetToken() token.Token { return pe.Token }

// InfixExpression represents an infix operation, e.g., 5 + 5.
type InfixExpression struct {
	Token    token.Token // The operator token, e.g. +
	Left     Expression
	Operator string
	Right    Expression
}

func (ie *InfixExpression) Accept(v Visitor)      { v.VisitInfixExpression(ie) }
func (ie *InfixExpression) expressionNode()       {}
func (ie *InfixExpression) TokenLiteral() string  { return ie.Token.Lexeme }
func (ie *InfixExpression) GetToken() token.Token { return ie.Token }

// IfExpression represents if cond { ... } else { ... }. The else block may
// hold a single nested if, which is how else-if chains parse.
type IfExpression struct {
	Token       token.Token // The 'if' token
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement // optional
}

func (ie *IfExpression) Accept(v Visitor)      { v.VisitIfExpression(ie) }
func (ie *IfExpression) expressionNode()       {}
func (ie *IfExpression) TokenLiteral() string  { return ie.Token.Lexeme }
func (ie *IfExpression) GetToken() token.Token { return ie.Token }

// ForExpression represents for target in iterable { ... }. Multiple targets
// destructure each element as a tuple: for k, v in items(d) { ... }
type ForExpression struct {
	Token    token.Token // The 'for' token
	Targets  []*Identifier
	Iterable Expression
	Body     *BlockStatement
}

func (fe *ForExpression) Accept(v Visitor)      { v.VisitForExpression(fe) }
func (fe *ForExpression) expressionNode()       {}
func (fe *ForExpression) TokenLiteral() string  { return fe.Token.Lexeme }
func (fe *ForExpression) GetToken() token.Token { return fe.Token }

// FunctionLiteral represents a lambda: \x, y -> expr
type FunctionLiteral struct {
	Token      token.Token // The '\' token
	Parameters []*Identifier
	Body       Expression
}

func (fl *FunctionLiteral) Accept(v Visitor)      { v.VisitFunctionLiteral(fl) }
func (fl *FunctionLiteral) expressionNode()       {}
func (fl *FunctionLiteral) TokenLiteral() string  { return fl.Token.Lexeme }
func (fl *FunctionLiteral) GetToken() token.Token { return fl.Token }

// CallExpression represents a function call, e.g., print(x, y).
// Arguments may contain SpreadExpression elements: f(a, *rest)
type CallExpression struct {
	Token     token.Token // The '(' token
	Function  Expression  // Identifier or FunctionLiteral
	Arguments []Expression
}

func (ce *CallExpression) Accept(v Visitor)      { v.VisitCallExpression(ce) }
func (ce *CallExpression) expressionNode()       {}
func (ce *CallExpression) TokenLiteral() string  { return ce.Token.Lexeme }
func (ce *CallExpression) GetToken() token.Token { return ce.Token }

// IndexExpression represents subscript access, e.g. xs[i] or d[k].
type IndexExpression struct {
	Token token.Token // The '[' token
	Left  Expression
	Index Expression
}

func (ie *IndexExpression) Accept(v Visitor)      { v.VisitIndexExpression(ie) }
func (ie *IndexExpression) expressionNode()       {}
func (ie *IndexExpression) TokenLiteral() string  { return ie.Token.Lexeme }
func (ie *IndexExpression) GetToken() token.Token { return ie.Token }

// ListLiteral represents a list display, e.g. [1, *xs, 3]
type ListLiteral struct {
	Token    token.Token // The '[' token
	Elements []Expression
}

func (ll *ListLiteral) Accept(v Visitor)      { v.VisitListLiteral(ll) }
func (ll *ListLiteral) expressionNode()       {}
func (ll *ListLiteral) TokenLiteral() string  { return ll.Token.Lexeme }
func (ll *ListLiteral) GetToken() token.Token { return ll.Token }

// TupleLiteral represents a tuple display, e.g. (1, *xs) or ().
type TupleLiteral struct {
	Token    token.Token // The '(' token
	Elements []Expression
}

func (tl *TupleLiteral) Accept(v Visitor)      { v.VisitTupleLiteral(tl) }
func (tl *TupleLiteral) expressionNode()       {}
func (tl *TupleLiteral) TokenLiteral() string  { return tl.Token.Lexeme }
func (tl *TupleLiteral) GetToken() token.Token { return tl.Token }

// SetLiteral represents a set display, e.g. {1, *xs}
type SetLiteral struct {
	Token    token.Token // The '{' token
	Elements []Expression
}

func (sl *SetLiteral) Accept(v Visitor)      { v.VisitSetLiteral(sl) }
func (sl *SetLiteral) expressionNode()       {}
func (sl *SetLiteral) TokenLiteral() string  { return sl.Token.Lexeme }
func (sl *SetLiteral) GetToken() token.Token { return sl.Token }

// DictLiteral represents a dict display, e.g. {"a": 1, **base}.
// Entries hold *DictEntry and *DoubleSpreadExpression nodes.
type DictLiteral struct {
	Token   token.Token // The '{' token
	Entries []Expression
}

func (dl *DictLiteral) Accept(v Visitor)      { v.VisitDictLiteral(dl) }
func (dl *DictLiteral) expressionNode()       {}
func (dl *DictLiteral) TokenLiteral() string  { return dl.Token.Lexeme }
func (dl *DictLiteral) GetToken() token.Token { return dl.Token }

// DictEntry is a single key: value pair inside a dict display or the
// output of a dict comprehension.
type DictEntry struct {
	Token token.Token // The ':' token
	Key   Expression
	Value Expression
}

func (de *DictEntry) Accept(v Visitor)      { v.VisitDictEntry(de) }
func (de *DictEntry) expressionNode()       {}
func (de *DictEntry) TokenLiteral() string  { return de.Token.Lexeme }
func (de *DictEntry) GetToken() token.Token { return de.Token }

// SpreadExpression represents single-star unpacking: *expr
type SpreadExpression struct {
	Token      token.Token // The '*' token
	Expression Expression
}

func (se *SpreadExpression) Accept(v Visitor)      { v.VisitSpreadExpression(se) }
func (se *SpreadExpression) expressionNode()       {}
func (se *SpreadExpression) TokenLiteral() string  { return se.Token.Lexeme }
func (se *SpreadExpression) GetToken() token.Token { return se.Token }

// DoubleSpreadExpression represents mapping unpacking: **expr
type DoubleSpreadExpression struct {
	Token      token.Token // The '**' token
	Expression Expression
}

func (de *DoubleSpreadExpression) Accept(v Visitor)      { v.VisitDoubleSpreadExpression(de) }
func (de *DoubleSpreadExpression) expressionNode()       {}
func (de *DoubleSpreadExpression) TokenLiteral() string  { return de.Token.Lexeme }
func (de *DoubleSpreadExpression) GetToken() token.Token { return de.Token }
