package evaluator

import (
	"io"
	"os"

	"github.com/funvibe/splat/internal/ast"
	"github.com/funvibe/splat/internal/config"
)

const maxEvalDepth = config.MaxEvalDepth

type Evaluator struct {
	Out io.Writer

	// CurrentFile being evaluated
	CurrentFile string

	// evalDepth tracks the current nesting depth of Eval calls to prevent
	// Go stack overflow
	evalDepth int
}

func New() *Evaluator {
	return &Evaluator{Out: os.Stdout}
}

// Eval evaluates node in env. Errors come back as *Error objects; the
// wrapper stamps them with the position of the nearest node that knows it.
func (e *Evaluator) Eval(node ast.Node, env *Environment) Object {
	e.evalDepth++
	if e.evalDepth > maxEvalDepth {
		e.evalDepth--
		return newError("maximum recursion depth exceeded")
	}

	obj := e.evalCore(node, env)
	e.evalDepth--

	if err, ok := obj.(*Error); ok {
		if err.Line == 0 && node != nil {
			if provider, ok := node.(ast.TokenProvider); ok {
				tok := provider.GetToken()
				err.Line = tok.Line
				err.Column = tok.Column
			}
		}
	}
	return obj
}

func (e *Evaluator) evalCore(node ast.Node, env *Environment) Object {
	switch node := node.(type) {
	// Statements
	case *ast.Program:
		return e.evalProgram(node, env)
	case *ast.ExpressionStatement:
		return e.Eval(node.Expression, env)
	case *ast.AssignStatement:
		return e.evalAssignStatement(node, env)
	case *ast.BlockStatement:
		return e.evalBlockStatement(node, env)
	case *ast.BreakStatement:
		return &BreakSignal{}
	case *ast.ContinueStatement:
		return &ContinueSignal{}

	// Literals
	case *ast.IntegerLiteral:
		return &Integer{Value: node.Value}
	case *ast.FloatLiteral:
		return &Float{Value: node.Value}
	case *ast.BooleanLiteral:
		return nativeBoolToBooleanObject(node.Value)
	case *ast.NilLiteral:
		return NIL
	case *ast.StringLiteral:
		return &String{Value: node.Value}
	case *ast.BytesLiteral:
		return &Bytes{Value: node.Value}

	// Expressions
	case *ast.Identifier:
		return e.evalIdentifier(node, env)
	case *ast.PrefixExpression:
		return e.evalPrefixExpression(node, env)
	case *ast.InfixExpression:
		return e.evalInfixExpression(node, env)
	case *ast.IfExpression:
		return e.evalIfExpression(node, env)
	case *ast.ForExpression:
		return e.evalForExpression(node, env)
	case *ast.FunctionLiteral:
		return &Function{Parameters: node.Parameters, Body: node.Body, Env: env}
	case *ast.CallExpression:
		return e.evalCallExpression(node, env)
	case *ast.IndexExpression:
		return e.evalIndexExpression(node, env)

	// Container displays
	case *ast.ListLiteral:
		return e.evalListLiteral(node, env)
	case *ast.TupleLiteral:
		return e.evalTupleLiteral(node, env)
	case *ast.SetLiteral:
		return e.evalSetLiteral(node, env)
	case *ast.DictLiteral:
		return e.evalDictLiteral(node, env)
	case *ast.SpreadExpression:
		// A spread is normally consumed by its container; evaluated in
		// isolation it just unwraps.
		return e.Eval(node.Expression, env)
	case *ast.DoubleSpreadExpression:
		return e.Eval(node.Expression, env)

	// Comprehensions
	case *ast.ListComprehension:
		return e.evalListComprehension(node, env)
	case *ast.SetComprehension:
		return e.evalSetComprehension(node, env)
	case *ast.DictComprehension:
		return e.evalDictComprehension(node, env)
	case *ast.GeneratorExpression:
		return e.evalGeneratorExpression(node, env)
	}

	return nil
}
