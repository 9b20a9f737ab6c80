package prettyprinter

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/funvibe/splat/internal/ast"
)

// --- Tree Printer (Output shows AST structure) ---

type TreePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

func (p *TreePrinter) line(s string) {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("  ")
	}
	p.buf.WriteString(s)
	p.buf.WriteString("\n")
}

func (p *TreePrinter) child(n ast.Node) {
	p.indent++
	if n == nil {
		p.line("<nil>")
	} else {
		n.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) children(nodes []ast.Expression) {
	for _, n := range nodes {
		if n == nil {
			p.indent++
			p.line("<nil>")
			p.indent--
			continue
		}
		p.child(n)
	}
}

func targetNames(targets []*ast.Identifier) string {
	out := ""
	for i, t := range targets {
		if i > 0 {
			out += ", "
		}
		if t != nil {
			out += t.Value
		} else {
			out += "?"
		}
	}
	return out
}

func (p *TreePrinter) VisitProgram(n *ast.Program) {
	p.line("Program")
	p.indent++
	for _, stmt := range n.Statements {
		if stmt != nil {
			stmt.Accept(p)
		}
	}
	p.indent--
}

func (p *TreePrinter) VisitExpressionStatement(n *ast.ExpressionStatement) {
	if n == nil || n.Expression == nil {
		p.line("<nil>")
		return
	}
	n.Expression.Accept(p)
}

func (p *TreePrinter) VisitAssignStatement(n *ast.AssignStatement) {
	name := "?"
	if n.Name != nil {
		name = n.Name.Value
	}
	p.line("Assign(" + name + ")")
	p.child(n.Value)
}

func (p *TreePrinter) VisitBreakStatement(n *ast.BreakStatement) {
	p.line("Break")
}

func (p *TreePrinter) VisitContinueStatement(n *ast.ContinueStatement) {
	p.line("Continue")
}

func (p *TreePrinter) VisitBlockStatement(n *ast.BlockStatement) {
	p.line("Block")
	p.indent++
	for _, stmt := range n.Statements {
		if stmt != nil {
			stmt.Accept(p)
		}
	}
	p.indent--
}

func (p *TreePrinter) VisitIdentifier(n *ast.Identifier) {
	p.line("Identifier(" + n.Value + ")")
}

func (p *TreePrinter) VisitIntegerLiteral(n *ast.IntegerLiteral) {
	p.line(fmt.Sprintf("Integer(%d)", n.Value))
}

func (p *TreePrinter) VisitFloatLiteral(n *ast.FloatLiteral) {
	p.line(fmt.Sprintf("Float(%g)", n.Value))
}

func (p *TreePrinter) VisitBooleanLiteral(n *ast.BooleanLiteral) {
	p.line(fmt.Sprintf("Boolean(%t)", n.Value))
}

func (p *TreePrinter) VisitNilLiteral(n *ast.NilLiteral) {
	p.line("Nil")
}

func (p *TreePrinter) VisitStringLiteral(n *ast.StringLiteral) {
	p.line("String(" + strconv.Quote(n.Value) + ")")
}

func (p *TreePrinter) VisitBytesLiteral(n *ast.BytesLiteral) {
	p.line("Bytes(" + hex.EncodeToString(n.Value) + ")")
}

func (p *TreePrinter) VisitPrefixExpression(n *ast.PrefixExpression) {
	p.line("Prefix(" + n.Operator + ")")
	p.child(n.Right)
}

func (p *TreePrinter) VisitInfixExpression(n *ast.InfixExpression) {
	p.line("Infix(" + n.Operator + ")")
	p.child(n.Left)
	p.child(n.Right)
}

func (p *TreePrinter) VisitIfExpression(n *ast.IfExpression) {
	p.line("If")
	p.indent++
	p.line("Cond")
	p.child(n.Condition)
	p.line("Then")
	p.child(n.Consequence)
	if n.Alternative != nil {
		p.line("Else")
		p.child(n.Alternative)
	}
	p.indent--
}

func (p *TreePrinter) VisitForExpression(n *ast.ForExpression) {
	p.line("For(" + targetNames(n.Targets) + ")")
	p.child(n.Iterable)
	p.child(n.Body)
}

func (p *TreePrinter) VisitFunctionLiteral(n *ast.FunctionLiteral) {
	p.line("Lambda(" + targetNames(n.Parameters) + ")")
	p.child(n.Body)
}

func (p *TreePrinter) VisitCallExpression(n *ast.CallExpression) {
	p.line("Call")
	p.child(n.Function)
	p.children(n.Arguments)
}

func (p *TreePrinter) VisitIndexExpression(n *ast.IndexExpression) {
	p.line("Index")
	p.child(n.Left)
	p.child(n.Index)
}

func (p *TreePrinter) VisitListLiteral(n *ast.ListLiteral) {
	p.line("List")
	p.children(n.Elements)
}

func (p *TreePrinter) VisitTupleLiteral(n *ast.TupleLiteral) {
	p.line("Tuple")
	p.children(n.Elements)
}

func (p *TreePrinter) VisitSetLiteral(n *ast.SetLiteral) {
	p.line("Set")
	p.children(n.Elements)
}

func (p *TreePrinter) VisitDictLiteral(n *ast.DictLiteral) {
	p.line("Dict")
	p.children(n.Entries)
}

func (p *TreePrinter) VisitDictEntry(n *ast.DictEntry) {
	p.line("Entry")
	p.child(n.Key)
	p.child(n.Value)
}

func (p *TreePrinter) VisitSpreadExpression(n *ast.SpreadExpression) {
	p.line("Spread")
	p.child(n.Expression)
}

func (p *TreePrinter) VisitDoubleSpreadExpression(n *ast.DoubleSpreadExpression) {
	p.line("DoubleSpread")
	p.child(n.Expression)
}

func (p *TreePrinter) printCompClauses(clauses []ast.CompClause) {
	for _, clause := range clauses {
		switch c := clause.(type) {
		case *ast.CompFor:
			p.line("For(" + targetNames(c.Targets) + ")")
			p.child(c.Iterable)
		case *ast.CompIf:
			p.line("Filter")
			p.child(c.Condition)
		}
	}
}

func (p *TreePrinter) VisitListComprehension(n *ast.ListComprehension) {
	p.line("ListComp")
	p.indent++
	p.line("Output")
	p.child(n.Output)
	p.printCompClauses(n.Clauses)
	p.indent--
}

func (p *TreePrinter) VisitSetComprehension(n *ast.SetComprehension) {
	p.line("SetComp")
	p.indent++
	p.line("Output")
	p.child(n.Output)
	p.printCompClauses(n.Clauses)
	p.indent--
}

func (p *TreePrinter) VisitDictComprehension(n *ast.DictComprehension) {
	p.line("DictComp")
	p.indent++
	p.line("Output")
	p.child(n.Output)
	p.printCompClauses(n.Clauses)
	p.indent--
}

func (p *TreePrinter) VisitGeneratorExpression(n *ast.GeneratorExpression) {
	p.line("GenExp")
	p.indent++
	p.line("Output")
	p.child(n.Output)
	p.printCompClauses(n.Clauses)
	p.indent--
}
