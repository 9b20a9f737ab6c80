package analyzer

import (
	"fmt"

	"github.com/funvibe/splat/internal/ast"
	"github.com/funvibe/splat/internal/diagnostics"
)

// Analyzer walks the AST and reports the static errors that do not need
// runtime values: break/continue placement and duplicate lambda parameters.
type Analyzer struct {
	errors []*diagnostics.DiagnosticError
	inLoop bool // Track if we are inside a loop
}

func New() *Analyzer {
	return &Analyzer{}
}

// Analyze checks the program and returns all collected errors.
func (a *Analyzer) Analyze(node ast.Node) []*diagnostics.DiagnosticError {
	if node == nil {
		return nil
	}
	node.Accept(a)
	return a.errors
}

func (a *Analyzer) addError(err *diagnostics.DiagnosticError) {
	a.errors = append(a.errors, err)
}

func (a *Analyzer) walkExpr(e ast.Expression) {
	if e != nil {
		e.Accept(a)
	}
}

func (a *Analyzer) walkExprs(exprs []ast.Expression) {
	for _, e := range exprs {
		a.walkExpr(e)
	}
}

// walkComprehension visits clause expressions and the output with the loop
// flag cleared. A comprehension iterates internally, but break and continue
// cannot target it.
func (a *Analyzer) walkComprehension(output ast.Expression, clauses []ast.CompClause) {
	prevInLoop := a.inLoop
	a.inLoop = false
	for _, clause := range clauses {
		switch c := clause.(type) {
		case *ast.CompFor:
			a.walkExpr(c.Iterable)
		case *ast.CompIf:
			a.walkExpr(c.Condition)
		}
	}
	a.walkExpr(output)
	a.inLoop = prevInLoop
}

func (a *Analyzer) VisitProgram(n *ast.Program) {
	for _, stmt := range n.Statements {
		if stmt != nil {
			stmt.Accept(a)
		}
	}
}

func (a *Analyzer) VisitExpressionStatement(n *ast.ExpressionStatement) {
	a.walkExpr(n.Expression)
}

func (a *Analyzer) VisitAssignStatement(n *ast.AssignStatement) {
	a.walkExpr(n.Value)
}

func (a *Analyzer) VisitBreakStatement(n *ast.BreakStatement) {
	if !a.inLoop {
		a.addError(diagnostics.NewError(diagnostics.ErrA400, n.Token, "break statement outside of loop"))
	}
}

func (a *Analyzer) VisitContinueStatement(n *ast.ContinueStatement) {
	if !a.inLoop {
		a.addError(diagnostics.NewError(diagnostics.ErrA400, n.Token, "continue statement outside of loop"))
	}
}

func (a *Analyzer) VisitBlockStatement(n *ast.BlockStatement) {
	for _, stmt := range n.Statements {
		if stmt != nil {
			stmt.Accept(a)
		}
	}
}

func (a *Analyzer) VisitIdentifier(n *ast.Identifier)         {}
func (a *Analyzer) VisitIntegerLiteral(n *ast.IntegerLiteral) {}
func (a *Analyzer) VisitFloatLiteral(n *ast.FloatLiteral)     {}
func (a *Analyzer) VisitBooleanLiteral(n *ast.BooleanLiteral) {}
func (a *Analyzer) VisitNilLiteral(n *ast.NilLiteral)         {}
func (a *Analyzer) VisitStringLiteral(n *ast.StringLiteral)   {}
func (a *Analyzer) VisitBytesLiteral(n *ast.BytesLiteral)     {}

func (a *Analyzer) VisitPrefixExpression(n *ast.PrefixExpression) {
	a.walkExpr(n.Right)
}

func (a *Analyzer) VisitInfixExpression(n *ast.InfixExpression) {
	a.walkExpr(n.Left)
	a.walkExpr(n.Right)
}

func (a *Analyzer) VisitIfExpression(n *ast.IfExpression) {
	a.walkExpr(n.Condition)
	if n.Consequence != nil {
		n.Consequence.Accept(a)
	}
	if n.Alternative != nil {
		n.Alternative.Accept(a)
	}
}

func (a *Analyzer) VisitForExpression(n *ast.ForExpression) {
	// The iterable is evaluated before the loop starts, so it is not part
	// of the loop body.
	a.walkExpr(n.Iterable)

	prevInLoop := a.inLoop
	a.inLoop = true
	if n.Body != nil {
		n.Body.Accept(a)
	}
	a.inLoop = prevInLoop
}

func (a *Analyzer) VisitFunctionLiteral(n *ast.FunctionLiteral) {
	seen := make(map[string]bool, len(n.Parameters))
	for _, param := range n.Parameters {
		if param == nil {
			continue
		}
		if seen[param.Value] {
			a.addError(diagnostics.NewError(diagnostics.ErrA401, param.Token,
				fmt.Sprintf("duplicate parameter '%s' in lambda", param.Value)))
			continue
		}
		seen[param.Value] = true
	}

	// The body is a new function scope; an enclosing loop cannot be broken
	// from inside it.
	prevInLoop := a.inLoop
	a.inLoop = false
	a.walkExpr(n.Body)
	a.inLoop = prevInLoop
}

func (a *Analyzer) VisitCallExpression(n *ast.CallExpression) {
	a.walkExpr(n.Function)
	a.walkExprs(n.Arguments)
}

func (a *Analyzer) VisitIndexExpression(n *ast.IndexExpression) {
	a.walkExpr(n.Left)
	a.walkExpr(n.Index)
}

func (a *Analyzer) VisitListLiteral(n *ast.ListLiteral) {
	a.walkExprs(n.Elements)
}

func (a *Analyzer) VisitTupleLiteral(n *ast.TupleLiteral) {
	a.walkExprs(n.Elements)
}

func (a *Analyzer) VisitSetLiteral(n *ast.SetLiteral) {
	a.walkExprs(n.Elements)
}

func (a *Analyzer) VisitDictLiteral(n *ast.DictLiteral) {
	a.walkExprs(n.Entries)
}

func (a *Analyzer) VisitDictEntry(n *ast.DictEntry) {
	a.walkExpr(n.Key)
	a.walkExpr(n.Value)
}

func (a *Analyzer) VisitSpreadExpression(n *ast.SpreadExpression) {
	a.walkExpr(n.Expression)
}

func (a *Analyzer) VisitDoubleSpreadExpression(n *ast.DoubleSpreadExpression) {
	a.walkExpr(n.Expression)
}

func (a *Analyzer) VisitListComprehension(n *ast.ListComprehension) {
	a.walkComprehension(n.Output, n.Clauses)
}

func (a *Analyzer) VisitSetComprehension(n *ast.SetComprehension) {
	a.walkComprehension(n.Output, n.Clauses)
}

func (a *Analyzer) VisitDictComprehension(n *ast.DictComprehension) {
	a.walkComprehension(n.Output, n.Clauses)
}

func (a *Analyzer) VisitGeneratorExpression(n *ast.GeneratorExpression) {
	a.walkComprehension(n.Output, n.Clauses)
}
