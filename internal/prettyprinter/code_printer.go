package prettyprinter

import (
	"bytes"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/funvibe/splat/internal/ast"
)

// --- Code Printer (Output looks like source code) ---

// Operator precedence (higher = binds tighter)
var operatorPrecedence = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3,
	"!=": 3,
	"in": 3,
	"<":  4,
	">":  4,
	"<=": 4,
	">=": 4,
	"+":  5,
	"-":  5,
	"*":  6,
	"/":  6,
	"%":  6,
	"**": 7, // Power (right-assoc)
}

func getPrecedence(op string) int {
	if p, ok := operatorPrecedence[op]; ok {
		return p
	}
	return 10 // Default high precedence for unknown ops
}

// Right-associative operators
var rightAssoc = map[string]bool{
	"**": true,
}

type CodePrinter struct {
	buf    bytes.Buffer
	indent int
	column int // current column position
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
	if idx := strings.LastIndex(s, "\n"); idx != -1 {
		p.column = len(s) - idx - 1
	} else {
		p.column += len(s)
	}
}

func (p *CodePrinter) writeln() {
	p.buf.WriteString("\n")
	p.column = 0
}

func (p *CodePrinter) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("    ")
	}
	p.column = p.indent * 4
}

// printExpr prints an expression, adding parentheses only if needed
func (p *CodePrinter) printExpr(expr ast.Expression, parentPrec int, isRight bool) {
	if expr == nil {
		p.write("<???>")
		return
	}
	switch e := expr.(type) {
	case *ast.InfixExpression:
		if e == nil {
			p.write("<???>")
			return
		}
		prec := getPrecedence(e.Operator)
		needParens := prec < parentPrec
		// For same precedence, check associativity
		if prec == parentPrec {
			if isRight && !rightAssoc[e.Operator] {
				needParens = true
			} else if !isRight && rightAssoc[e.Operator] {
				needParens = true
			}
		}
		if needParens {
			p.write("(")
		}
		p.printExpr(e.Left, prec, false)
		p.write(" " + e.Operator + " ")
		p.printExpr(e.Right, prec, true)
		if needParens {
			p.write(")")
		}
	case *ast.PrefixExpression:
		if e == nil {
			p.write("<???>")
			return
		}
		p.write(e.Operator)
		// Prefix has high precedence
		p.printExpr(e.Right, 100, false)
	default:
		// For non-infix expressions, just use visitor
		expr.Accept(p)
	}
}

func (p *CodePrinter) VisitProgram(n *ast.Program) {
	for _, stmt := range n.Statements {
		if stmt != nil {
			stmt.Accept(p)
			p.writeln()
		}
	}
}

func (p *CodePrinter) VisitExpressionStatement(n *ast.ExpressionStatement) {
	if n == nil || n.Expression == nil {
		p.write("<???>")
		return
	}
	n.Expression.Accept(p)
}

func (p *CodePrinter) VisitAssignStatement(n *ast.AssignStatement) {
	if n == nil {
		p.write("nil")
		return
	}
	if n.Name != nil {
		p.write(n.Name.Value)
	} else {
		p.write("<???>")
	}
	p.write(" = ")
	p.printExpr(n.Value, 0, false)
}

func (p *CodePrinter) VisitBreakStatement(n *ast.BreakStatement) {
	p.write("break")
}

func (p *CodePrinter) VisitContinueStatement(n *ast.ContinueStatement) {
	p.write("continue")
}

func (p *CodePrinter) VisitBlockStatement(n *ast.BlockStatement) {
	if n == nil {
		p.write("nil")
		return
	}
	p.write("{\n")
	p.indent++
	for _, stmt := range n.Statements {
		p.writeIndent()
		if stmt != nil {
			stmt.Accept(p)
		} else {
			p.write("<???>")
		}
		p.write("\n")
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *CodePrinter) VisitIdentifier(n *ast.Identifier) {
	if n == nil {
		p.write("nil")
		return
	}
	p.write(n.Value)
}

func (p *CodePrinter) VisitIntegerLiteral(n *ast.IntegerLiteral) {
	if n == nil {
		p.write("nil")
		return
	}
	if n.Token.Lexeme != "" {
		p.write(n.Token.Lexeme)
	} else {
		p.write(strconv.FormatInt(n.Value, 10))
	}
}

func (p *CodePrinter) VisitFloatLiteral(n *ast.FloatLiteral) {
	if n == nil {
		p.write("nil")
		return
	}
	if n.Token.Lexeme != "" {
		p.write(n.Token.Lexeme)
	} else {
		p.write(strconv.FormatFloat(n.Value, 'g', -1, 64))
	}
}

func (p *CodePrinter) VisitBooleanLiteral(n *ast.BooleanLiteral) {
	if n == nil {
		p.write("nil")
		return
	}
	if n.Value {
		p.write("true")
	} else {
		p.write("false")
	}
}

func (p *CodePrinter) VisitNilLiteral(n *ast.NilLiteral) {
	p.write("nil")
}

func (p *CodePrinter) VisitStringLiteral(n *ast.StringLiteral) {
	if n == nil {
		p.write("nil")
		return
	}
	p.write(strconv.Quote(n.Value))
}

func (p *CodePrinter) VisitBytesLiteral(n *ast.BytesLiteral) {
	if n == nil {
		p.write("nil")
		return
	}
	if n.Token.Lexeme != "" {
		p.write(n.Token.Lexeme)
	} else {
		p.write("@x\"" + hex.EncodeToString(n.Value) + "\"")
	}
}

func (p *CodePrinter) VisitPrefixExpression(n *ast.PrefixExpression) {
	if n == nil {
		p.write("nil")
		return
	}
	p.printExpr(n, 0, false)
}

func (p *CodePrinter) VisitInfixExpression(n *ast.InfixExpression) {
	if n == nil {
		p.write("nil")
		return
	}
	p.printExpr(n, 0, false)
}

func (p *CodePrinter) VisitIfExpression(n *ast.IfExpression) {
	if n == nil {
		p.write("nil")
		return
	}
	p.write("if ")
	if n.Condition != nil {
		n.Condition.Accept(p)
	} else {
		p.write("<???>")
	}
	p.write(" ")
	if n.Consequence != nil {
		n.Consequence.Accept(p)
	} else {
		p.write("<???>")
	}
	if n.Alternative != nil {
		p.write(" else ")
		// Collapse a single nested if back into else-if form
		if len(n.Alternative.Statements) == 1 {
			if es, ok := n.Alternative.Statements[0].(*ast.ExpressionStatement); ok {
				if nested, ok := es.Expression.(*ast.IfExpression); ok {
					nested.Accept(p)
					return
				}
			}
		}
		n.Alternative.Accept(p)
	}
}

func (p *CodePrinter) VisitForExpression(n *ast.ForExpression) {
	if n == nil {
		p.write("nil")
		return
	}
	p.write("for ")
	p.printTargets(n.Targets)
	p.write(" in ")
	if n.Iterable != nil {
		n.Iterable.Accept(p)
	} else {
		p.write("<???>")
	}
	p.write(" ")
	if n.Body != nil {
		n.Body.Accept(p)
	} else {
		p.write("<???>")
	}
}

func (p *CodePrinter) printTargets(targets []*ast.Identifier) {
	if len(targets) == 0 {
		p.write("<???>")
		return
	}
	for i, t := range targets {
		if i > 0 {
			p.write(", ")
		}
		if t != nil {
			p.write(t.Value)
		} else {
			p.write("<???>")
		}
	}
}

func (p *CodePrinter) VisitFunctionLiteral(n *ast.FunctionLiteral) {
	if n == nil {
		p.write("nil")
		return
	}
	p.write("\\")
	for i, param := range n.Parameters {
		if i > 0 {
			p.write(", ")
		}
		if param != nil {
			p.write(param.Value)
		} else {
			p.write("<???>")
		}
	}
	p.write(" -> ")
	if n.Body != nil {
		n.Body.Accept(p)
	} else {
		p.write("<???>")
	}
}

func (p *CodePrinter) VisitCallExpression(n *ast.CallExpression) {
	if n == nil {
		p.write("nil")
		return
	}
	if n.Function != nil {
		n.Function.Accept(p)
	} else {
		p.write("<???>")
	}
	// A sole generator expression argument shares the call's parentheses
	if len(n.Arguments) == 1 {
		if ge, ok := n.Arguments[0].(*ast.GeneratorExpression); ok && ge != nil {
			p.write("(")
			if ge.Output != nil {
				ge.Output.Accept(p)
			} else {
				p.write("<???>")
			}
			p.printCompClauses(ge.Clauses)
			p.write(")")
			return
		}
	}
	p.write("(")
	for i, arg := range n.Arguments {
		if i > 0 {
			p.write(", ")
		}
		if arg != nil {
			arg.Accept(p)
		} else {
			p.write("<???>")
		}
	}
	p.write(")")
}

func (p *CodePrinter) VisitIndexExpression(n *ast.IndexExpression) {
	if n == nil {
		p.write("nil")
		return
	}
	if n.Left != nil {
		n.Left.Accept(p)
	} else {
		p.write("<???>")
	}
	p.write("[")
	if n.Index != nil {
		n.Index.Accept(p)
	} else {
		p.write("<???>")
	}
	p.write("]")
}

func (p *CodePrinter) VisitListLiteral(n *ast.ListLiteral) {
	if n == nil {
		p.write("nil")
		return
	}
	if len(n.Elements) > 5 {
		// Multiline for large lists
		p.write("[\n")
		p.indent++
		for i, el := range n.Elements {
			p.writeIndent()
			if el != nil {
				el.Accept(p)
			} else {
				p.write("<???>")
			}
			if i < len(n.Elements)-1 {
				p.write(",")
			}
			p.writeln()
		}
		p.indent--
		p.writeIndent()
		p.write("]")
		return
	}
	p.write("[")
	for i, el := range n.Elements {
		if i > 0 {
			p.write(", ")
		}
		if el != nil {
			el.Accept(p)
		} else {
			p.write("<???>")
		}
	}
	p.write("]")
}

func (p *CodePrinter) VisitTupleLiteral(n *ast.TupleLiteral) {
	if n == nil {
		p.write("nil")
		return
	}
	p.write("(")
	for i, el := range n.Elements {
		if i > 0 {
			p.write(", ")
		}
		if el != nil {
			el.Accept(p)
		} else {
			p.write("<???>")
		}
	}
	// One-element tuples need the trailing comma to stay tuples
	if len(n.Elements) == 1 {
		p.write(",")
	}
	p.write(")")
}

func (p *CodePrinter) VisitSetLiteral(n *ast.SetLiteral) {
	if n == nil {
		p.write("nil")
		return
	}
	p.write("{")
	for i, el := range n.Elements {
		if i > 0 {
			p.write(", ")
		}
		if el != nil {
			el.Accept(p)
		} else {
			p.write("<???>")
		}
	}
	p.write("}")
}

func (p *CodePrinter) VisitDictLiteral(n *ast.DictLiteral) {
	if n == nil {
		p.write("nil")
		return
	}
	if len(n.Entries) > 4 {
		// Multiline for large dicts
		p.write("{\n")
		p.indent++
		for i, entry := range n.Entries {
			p.writeIndent()
			if entry != nil {
				entry.Accept(p)
			} else {
				p.write("<???>")
			}
			if i < len(n.Entries)-1 {
				p.write(",")
			}
			p.writeln()
		}
		p.indent--
		p.writeIndent()
		p.write("}")
		return
	}
	p.write("{")
	for i, entry := range n.Entries {
		if i > 0 {
			p.write(", ")
		}
		if entry != nil {
			entry.Accept(p)
		} else {
			p.write("<???>")
		}
	}
	p.write("}")
}

func (p *CodePrinter) VisitDictEntry(n *ast.DictEntry) {
	if n == nil {
		p.write("nil")
		return
	}
	if n.Key != nil {
		n.Key.Accept(p)
	} else {
		p.write("<???>")
	}
	p.write(": ")
	if n.Value != nil {
		n.Value.Accept(p)
	} else {
		p.write("<???>")
	}
}

func (p *CodePrinter) VisitSpreadExpression(n *ast.SpreadExpression) {
	if n == nil {
		p.write("nil")
		return
	}
	p.write("*")
	if n.Expression != nil {
		// Parenthesize anything that does not bind tighter than the star
		p.printExpr(n.Expression, 100, false)
	} else {
		p.write("<???>")
	}
}

func (p *CodePrinter) VisitDoubleSpreadExpression(n *ast.DoubleSpreadExpression) {
	if n == nil {
		p.write("nil")
		return
	}
	p.write("**")
	if n.Expression != nil {
		p.printExpr(n.Expression, 100, false)
	} else {
		p.write("<???>")
	}
}

func (p *CodePrinter) printCompClauses(clauses []ast.CompClause) {
	for _, clause := range clauses {
		switch c := clause.(type) {
		case *ast.CompFor:
			if c == nil {
				p.write(" <???>")
				continue
			}
			p.write(" for ")
			p.printTargets(c.Targets)
			p.write(" in ")
			if c.Iterable != nil {
				c.Iterable.Accept(p)
			} else {
				p.write("<???>")
			}
		case *ast.CompIf:
			if c == nil {
				p.write(" <???>")
				continue
			}
			p.write(" if ")
			if c.Condition != nil {
				c.Condition.Accept(p)
			} else {
				p.write("<???>")
			}
		}
	}
}

func (p *CodePrinter) VisitListComprehension(n *ast.ListComprehension) {
	if n == nil {
		p.write("nil")
		return
	}
	p.write("[")
	if n.Output != nil {
		n.Output.Accept(p)
	} else {
		p.write("<???>")
	}
	p.printCompClauses(n.Clauses)
	p.write("]")
}

func (p *CodePrinter) VisitSetComprehension(n *ast.SetComprehension) {
	if n == nil {
		p.write("nil")
		return
	}
	p.write("{")
	if n.Output != nil {
		n.Output.Accept(p)
	} else {
		p.write("<???>")
	}
	p.printCompClauses(n.Clauses)
	p.write("}")
}

func (p *CodePrinter) VisitDictComprehension(n *ast.DictComprehension) {
	if n == nil {
		p.write("nil")
		return
	}
	p.write("{")
	if n.Output != nil {
		n.Output.Accept(p)
	} else {
		p.write("<???>")
	}
	p.printCompClauses(n.Clauses)
	p.write("}")
}

func (p *CodePrinter) VisitGeneratorExpression(n *ast.GeneratorExpression) {
	if n == nil {
		p.write("nil")
		return
	}
	p.write("(")
	if n.Output != nil {
		n.Output.Accept(p)
	} else {
		p.write("<???>")
	}
	p.printCompClauses(n.Clauses)
	p.write(")")
}
