package evaluator

import (
	"github.com/funvibe/splat/internal/ast"
)

func (e *Evaluator) evalIfExpression(ie *ast.IfExpression, env *Environment) Object {
	condition := e.Eval(ie.Condition, env)
	if isError(condition) {
		return condition
	}

	if isTruthy(condition) {
		return e.Eval(ie.Consequence, env)
	} else if ie.Alternative != nil {
		return e.Eval(ie.Alternative, env)
	} else {
		return NIL
	}
}

// evalForExpression drives a for loop over any iterable. The loop's value
// is the last completed body evaluation, nil for an empty iteration.
// break exits with the value accumulated so far; continue skips the rest
// of the body without touching it.
func (e *Evaluator) evalForExpression(node *ast.ForExpression, env *Environment) Object {
	iterable := e.Eval(node.Iterable, env)
	if isError(iterable) {
		return iterable
	}

	it, iterErr := iterateOrError(iterable)
	if iterErr != nil {
		return iterErr
	}

	var lastResult Object = NIL
	for {
		item, ok := it.Next()
		if !ok {
			break
		}
		if isError(item) {
			return item
		}

		// Each iteration binds the targets in a fresh child environment,
		// so closures made in the body capture that iteration's values.
		iterEnv := NewEnclosedEnvironment(env)
		if bound := bindTargets(node.Targets, item, iterEnv); isError(bound) {
			return bound
		}

		res := e.evalBlockStatement(node.Body, iterEnv)
		if isError(res) {
			return res
		}
		if _, ok := res.(*BreakSignal); ok {
			return lastResult
		}
		if _, ok := res.(*ContinueSignal); ok {
			continue
		}
		if res != nil {
			lastResult = res
		}
	}
	return lastResult
}
