package evaluator

import (
	"github.com/funvibe/splat/internal/ast"
)

// runClauses drives the clause chain depth-first starting at clause i: the
// first for is outermost, and for every binding of a clause the remaining
// clauses run in full before it advances. For each binding combination
// that survives all filters, emit is called with the binding environment.
// A non-nil result is an error and aborts the walk immediately, so a
// partially built container is never observable.
func (e *Evaluator) runClauses(clauses []ast.CompClause, i int, env *Environment, emit func(*Environment) Object) Object {
	if i == len(clauses) {
		return emit(env)
	}

	switch c := clauses[i].(type) {
	case *ast.CompFor:
		iterable := e.Eval(c.Iterable, env)
		if isError(iterable) {
			return iterable
		}
		it, iterErr := iterateOrError(iterable)
		if iterErr != nil {
			return iterErr
		}
		for {
			elem, ok := it.Next()
			if !ok {
				return nil
			}
			if isError(elem) {
				return elem
			}
			// Each binding gets a fresh child environment; targets are
			// visible to later clauses and the output, and never leak out.
			bindingEnv := NewEnclosedEnvironment(env)
			if bound := bindTargets(c.Targets, elem, bindingEnv); isError(bound) {
				return bound
			}
			if res := e.runClauses(clauses, i+1, bindingEnv, emit); res != nil {
				return res
			}
		}

	case *ast.CompIf:
		cond := e.Eval(c.Condition, env)
		if isError(cond) {
			return cond
		}
		if !isTruthy(cond) {
			return nil
		}
		return e.runClauses(clauses, i+1, env, emit)
	}

	return newError("unknown comprehension clause: %T", clauses[i])
}

func (e *Evaluator) evalListComprehension(node *ast.ListComprehension, env *Environment) Object {
	var elements []Object

	// The accumulate step is picked once from the parsed output shape,
	// not re-inspected per iteration.
	var emit func(*Environment) Object
	if spread, ok := node.Output.(*ast.SpreadExpression); ok {
		emit = func(bindingEnv *Environment) Object {
			val := e.Eval(spread.Expression, bindingEnv)
			if isError(val) {
				return val
			}
			it, iterErr := iterateOrError(val)
			if iterErr != nil {
				return iterErr
			}
			for {
				elem, ok := it.Next()
				if !ok {
					return nil
				}
				if isError(elem) {
					return elem
				}
				elements = append(elements, elem)
			}
		}
	} else {
		output := node.Output
		emit = func(bindingEnv *Environment) Object {
			val := e.Eval(output, bindingEnv)
			if isError(val) {
				return val
			}
			elements = append(elements, val)
			return nil
		}
	}

	if res := e.runClauses(node.Clauses, 0, env, emit); res != nil {
		return res
	}
	return &List{Elements: elements}
}

func (e *Evaluator) evalSetComprehension(node *ast.SetComprehension, env *Environment) Object {
	set := NewSet()

	insert := func(el Object) Object {
		if !set.Add(el) {
			return newError("unhashable type: %s", typeName(el))
		}
		return nil
	}

	var emit func(*Environment) Object
	if spread, ok := node.Output.(*ast.SpreadExpression); ok {
		emit = func(bindingEnv *Environment) Object {
			val := e.Eval(spread.Expression, bindingEnv)
			if isError(val) {
				return val
			}
			it, iterErr := iterateOrError(val)
			if iterErr != nil {
				return iterErr
			}
			for {
				elem, ok := it.Next()
				if !ok {
					return nil
				}
				if isError(elem) {
					return elem
				}
				if res := insert(elem); res != nil {
					return res
				}
			}
		}
	} else {
		output := node.Output
		emit = func(bindingEnv *Environment) Object {
			val := e.Eval(output, bindingEnv)
			if isError(val) {
				return val
			}
			return insert(val)
		}
	}

	if res := e.runClauses(node.Clauses, 0, env, emit); res != nil {
		return res
	}
	return set
}

func (e *Evaluator) evalDictComprehension(node *ast.DictComprehension, env *Environment) Object {
	dict := NewDict()

	// Keys keep first-insertion order, values are last write wins, for
	// both the K: V and the **E output forms.
	var emit func(*Environment) Object
	switch output := node.Output.(type) {
	case *ast.DictEntry:
		emit = func(bindingEnv *Environment) Object {
			key := e.Eval(output.Key, bindingEnv)
			if isError(key) {
				return key
			}
			value := e.Eval(output.Value, bindingEnv)
			if isError(value) {
				return value
			}
			if !dict.Set(key, value) {
				return newError("unhashable type: %s", typeName(key))
			}
			return nil
		}
	case *ast.DoubleSpreadExpression:
		emit = func(bindingEnv *Environment) Object {
			val := e.Eval(output.Expression, bindingEnv)
			if isError(val) {
				return val
			}
			if mergeErr := mergeDict(dict, val); mergeErr != nil {
				return mergeErr
			}
			return nil
		}
	default:
		return newError("invalid dict comprehension output: %T", node.Output)
	}

	if res := e.runClauses(node.Clauses, 0, env, emit); res != nil {
		return res
	}
	return dict
}

// evalGeneratorExpression builds the generator without doing any clause
// work; even the first source expression is untouched until consumption.
func (e *Evaluator) evalGeneratorExpression(node *ast.GeneratorExpression, env *Environment) Object {
	output := node.Output
	starred := false
	if spread, ok := node.Output.(*ast.SpreadExpression); ok {
		output = spread.Expression
		starred = true
	}
	return newGenerator(e, env, node.Clauses, output, starred)
}
