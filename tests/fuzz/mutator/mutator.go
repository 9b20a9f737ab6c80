package mutator

import (
	"math/rand"

	"github.com/funvibe/splat/internal/ast"
)

// ASTMutator applies random mutations to an AST.
type ASTMutator struct {
	rnd *rand.Rand
}

// NewASTMutator creates a new ASTMutator with the given seed.
func NewASTMutator(seed int64) *ASTMutator {
	return &ASTMutator{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// Mutate applies a random mutation to the program.
// It modifies the AST in place.
func (m *ASTMutator) Mutate(program *ast.Program) {
	if len(program.Statements) == 0 {
		return
	}

	// Pick a random statement to mutate
	idx := m.rnd.Intn(len(program.Statements))
	m.mutateStatement(program.Statements[idx])
}

func (m *ASTMutator) mutateStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		if s == nil || s.Expression == nil {
			return
		}
		m.mutateExpression(s.Expression)
	case *ast.AssignStatement:
		if s == nil || s.Value == nil {
			return
		}
		m.mutateExpression(s.Value)
	case *ast.BlockStatement:
		if s == nil {
			return
		}
		m.mutateBlock(s)
	}
}

func (m *ASTMutator) mutateExpression(expr ast.Expression) {
	if expr == nil {
		return
	}
	switch e := expr.(type) {
	case *ast.InfixExpression:
		r := m.rnd.Float32()
		if r < 0.33 {
			e.Operator = m.randomOperator()
		} else if r < 0.66 {
			m.mutateExpression(e.Left)
		} else {
			m.mutateExpression(e.Right)
		}
	case *ast.PrefixExpression:
		if m.rnd.Float32() < 0.5 {
			e.Operator = m.randomPrefixOperator()
		} else {
			m.mutateExpression(e.Right)
		}
	case *ast.IntegerLiteral:
		// Change value
		e.Value += m.rnd.Int63n(21) - 10 // -10 to +10
	case *ast.BooleanLiteral:
		// Flip boolean
		e.Value = !e.Value
	case *ast.StringLiteral:
		// Mutate string content
		if len(e.Value) > 0 {
			runes := []rune(e.Value)
			idx := m.rnd.Intn(len(runes))
			runes[idx] = rune(m.rnd.Intn(128)) // Random ASCII char
			e.Value = string(runes)
		}
	case *ast.IfExpression:
		if m.rnd.Float32() < 0.33 {
			m.mutateExpression(e.Condition)
		} else if m.rnd.Float32() < 0.66 {
			m.mutateBlock(e.Consequence)
		} else if e.Alternative != nil {
			m.mutateBlock(e.Alternative)
		}
	case *ast.ForExpression:
		if m.rnd.Float32() < 0.5 {
			m.mutateExpression(e.Iterable)
		} else {
			m.mutateBlock(e.Body)
		}
	case *ast.CallExpression:
		if len(e.Arguments) > 0 {
			idx := m.rnd.Intn(len(e.Arguments))
			m.mutateExpression(e.Arguments[idx])
		}
	case *ast.IndexExpression:
		if m.rnd.Float32() < 0.5 {
			m.mutateExpression(e.Left)
		} else {
			m.mutateExpression(e.Index)
		}
	case *ast.ListLiteral:
		if len(e.Elements) > 0 {
			idx := m.rnd.Intn(len(e.Elements))
			m.mutateExpression(e.Elements[idx])
		}
	case *ast.TupleLiteral:
		if len(e.Elements) > 0 {
			idx := m.rnd.Intn(len(e.Elements))
			m.mutateExpression(e.Elements[idx])
		}
	case *ast.SetLiteral:
		if len(e.Elements) > 0 {
			idx := m.rnd.Intn(len(e.Elements))
			m.mutateExpression(e.Elements[idx])
		}
	case *ast.DictEntry:
		if m.rnd.Float32() < 0.5 {
			m.mutateExpression(e.Key)
		} else {
			m.mutateExpression(e.Value)
		}
	case *ast.SpreadExpression:
		m.mutateExpression(e.Expression)
	case *ast.DoubleSpreadExpression:
		m.mutateExpression(e.Expression)
	case *ast.ListComprehension:
		m.mutateComprehension(e.Output, e.Clauses)
	case *ast.SetComprehension:
		m.mutateComprehension(e.Output, e.Clauses)
	case *ast.DictComprehension:
		m.mutateComprehension(e.Output, e.Clauses)
	case *ast.GeneratorExpression:
		m.mutateComprehension(e.Output, e.Clauses)
	case *ast.FunctionLiteral:
		m.mutateExpression(e.Body)
	}
}

// mutateComprehension touches either the output expression or one of the
// clauses. Clause iterables and filter conditions are fair game; targets
// are left alone so the result still binds its loop variables.
func (m *ASTMutator) mutateComprehension(output ast.Expression, clauses []ast.CompClause) {
	if len(clauses) == 0 || m.rnd.Float32() < 0.5 {
		m.mutateExpression(output)
		return
	}
	switch c := clauses[m.rnd.Intn(len(clauses))].(type) {
	case *ast.CompFor:
		m.mutateExpression(c.Iterable)
	case *ast.CompIf:
		m.mutateExpression(c.Condition)
	}
}

func (m *ASTMutator) mutateBlock(block *ast.BlockStatement) {
	if block == nil {
		return
	}
	if len(block.Statements) == 0 {
		return
	}
	// Delete a random statement
	if m.rnd.Float32() < 0.1 {
		idx := m.rnd.Intn(len(block.Statements))
		block.Statements = append(block.Statements[:idx], block.Statements[idx+1:]...)
		return
	}

	// Mutate a random statement inside the block
	idx := m.rnd.Intn(len(block.Statements))
	m.mutateStatement(block.Statements[idx])
}

func (m *ASTMutator) randomOperator() string {
	ops := []string{"+", "-", "*", "/", "%", "==", "!=", "<", ">", "<=", ">=", "&&", "||"}
	return ops[m.rnd.Intn(len(ops))]
}

func (m *ASTMutator) randomPrefixOperator() string {
	ops := []string{"-", "!"}
	return ops[m.rnd.Intn(len(ops))]
}
