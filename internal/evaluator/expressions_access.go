package evaluator

import (
	"github.com/funvibe/splat/internal/ast"
)

func (e *Evaluator) evalIdentifier(node *ast.Identifier, env *Environment) Object {
	if val, ok := env.Get(node.Value); ok {
		return val
	}
	if builtin, ok := Builtins[node.Value]; ok {
		return builtin
	}
	return newError("identifier not found: %s", node.Value)
}

func (e *Evaluator) evalIndexExpression(node *ast.IndexExpression, env *Environment) Object {
	left := e.Eval(node.Left, env)
	if isError(left) {
		return left
	}

	index := e.Eval(node.Index, env)
	if isError(index) {
		return index
	}

	// Dict indexing: d[key], missing key is an error.
	if dict, ok := left.(*Dict); ok {
		if _, hashable := hashOf(index); !hashable {
			return newError("unhashable type: %s", typeName(index))
		}
		val, found := dict.Get(index)
		if !found {
			return newError("key not found: %s", index.Inspect())
		}
		return val
	}

	// For List/Tuple/String/Bytes the index must be an integer; negative
	// indexes count from the end.
	idxObj, ok := index.(*Integer)
	if !ok {
		return newError("index must be Int, got %s", typeName(index))
	}
	idx := int(idxObj.Value)

	switch obj := left.(type) {
	case *List:
		max := len(obj.Elements)
		if idx < 0 {
			idx = max + idx
		}
		if idx < 0 || idx >= max {
			return newError("list index out of range")
		}
		return obj.Elements[idx]

	case *Tuple:
		max := len(obj.Elements)
		if idx < 0 {
			idx = max + idx
		}
		if idx < 0 || idx >= max {
			return newError("tuple index out of range")
		}
		return obj.Elements[idx]

	case *String:
		runes := []rune(obj.Value)
		max := len(runes)
		if idx < 0 {
			idx = max + idx
		}
		if idx < 0 || idx >= max {
			return newError("string index out of range")
		}
		return &String{Value: string(runes[idx])}

	case *Bytes:
		max := len(obj.Value)
		if idx < 0 {
			idx = max + idx
		}
		if idx < 0 || idx >= max {
			return newError("bytes index out of range")
		}
		return &Integer{Value: int64(obj.Value[idx])}

	default:
		return newError("index operator not supported: %s", typeName(left))
	}
}
