package evaluator

import (
	"github.com/funvibe/splat/internal/ast"
)

// evalExpressions evaluates an expression list, splicing *spread elements
// in place. An error is returned as a single-element slice.
func (e *Evaluator) evalExpressions(exps []ast.Expression, env *Environment) []Object {
	var result []Object
	for _, exp := range exps {
		if spread, ok := exp.(*ast.SpreadExpression); ok {
			val := e.Eval(spread.Expression, env)
			if isError(val) {
				return []Object{val}
			}
			it, iterErr := iterateOrError(val)
			if iterErr != nil {
				return []Object{iterErr}
			}
			for {
				elem, ok := it.Next()
				if !ok {
					break
				}
				if isError(elem) {
					return []Object{elem}
				}
				result = append(result, elem)
			}
			continue
		}

		evaluated := e.Eval(exp, env)
		if isError(evaluated) {
			return []Object{evaluated}
		}
		result = append(result, evaluated)
	}
	return result
}

func (e *Evaluator) evalListLiteral(node *ast.ListLiteral, env *Environment) Object {
	elements := e.evalExpressions(node.Elements, env)
	if len(elements) == 1 && isError(elements[0]) {
		return elements[0]
	}
	return &List{Elements: elements}
}

func (e *Evaluator) evalTupleLiteral(node *ast.TupleLiteral, env *Environment) Object {
	elements := e.evalExpressions(node.Elements, env)
	if len(elements) == 1 && isError(elements[0]) {
		return elements[0]
	}
	return &Tuple{Elements: elements}
}

func (e *Evaluator) evalSetLiteral(node *ast.SetLiteral, env *Environment) Object {
	elements := e.evalExpressions(node.Elements, env)
	if len(elements) == 1 && isError(elements[0]) {
		return elements[0]
	}
	set := NewSet()
	for _, el := range elements {
		if !set.Add(el) {
			return newError("unhashable type: %s", typeName(el))
		}
	}
	return set
}

func (e *Evaluator) evalDictLiteral(node *ast.DictLiteral, env *Environment) Object {
	dict := NewDict()
	for _, entry := range node.Entries {
		switch entry := entry.(type) {
		case *ast.DictEntry:
			key := e.Eval(entry.Key, env)
			if isError(key) {
				return key
			}
			value := e.Eval(entry.Value, env)
			if isError(value) {
				return value
			}
			if !dict.Set(key, value) {
				return newError("unhashable type: %s", typeName(key))
			}
		case *ast.DoubleSpreadExpression:
			val := e.Eval(entry.Expression, env)
			if isError(val) {
				return val
			}
			if mergeErr := mergeDict(dict, val); mergeErr != nil {
				return mergeErr
			}
		default:
			return newError("invalid dict entry: %T", entry)
		}
	}
	return dict
}

// mergeDict merges src into dst in src's own entry order, last write wins.
// src must be a Dict.
func mergeDict(dst *Dict, src Object) *Error {
	srcDict, ok := src.(*Dict)
	if !ok {
		return newError("%s is not a mapping", typeName(src))
	}
	for _, entry := range srcDict.table.entries {
		dst.table.put(entry.key, entry.value)
	}
	return nil
}
