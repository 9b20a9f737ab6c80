package evaluator

import (
	"fmt"

	"github.com/funvibe/splat/internal/ast"
)

func newError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}

func isError(obj Object) bool {
	if obj != nil {
		return obj.Type() == ERROR_OBJ
	}
	return false
}

func nativeBoolToBooleanObject(input bool) *Boolean {
	if input {
		return TRUE
	}
	return FALSE
}

// isTruthy implements Python-flavoured truthiness: false, nil, zero
// numbers and empty containers are falsy. Generators are always truthy.
func isTruthy(obj Object) bool {
	switch v := obj.(type) {
	case *Boolean:
		return v.Value
	case *Nil:
		return false
	case *Integer:
		return v.Value != 0
	case *Float:
		return v.Value != 0
	case *String:
		return len(v.Value) > 0
	case *Bytes:
		return len(v.Value) > 0
	case *List:
		return len(v.Elements) > 0
	case *Tuple:
		return len(v.Elements) > 0
	case *Set:
		return v.Len() > 0
	case *Dict:
		return v.Len() > 0
	case *Range:
		return v.Len() > 0
	}
	return true
}

func intPow(n, m int64) int64 {
	if m < 0 {
		return 0
	}
	if m == 0 {
		return 1
	}
	var result int64 = 1
	for i := int64(0); i < m; i++ {
		result *= n
	}
	return result
}

// iterateOrError returns an iterator over obj, or the shared non-iterable
// error used by for loops, comprehension clauses and starred unpacking.
func iterateOrError(obj Object) (Iterator, *Error) {
	it := iteratorFor(obj)
	if it == nil {
		return nil, newError("cannot iterate over %s", typeName(obj))
	}
	return it, nil
}

// bindTargets binds value to one or more loop targets. A single target
// takes the value as-is; multiple targets destructure it element-wise.
func bindTargets(targets []*ast.Identifier, value Object, env *Environment) Object {
	if len(targets) == 1 {
		env.Set(targets[0].Value, value)
		return NIL
	}

	it := iteratorFor(value)
	if it == nil {
		return newError("cannot destructure %s value with tuple pattern", typeName(value))
	}
	for i, target := range targets {
		elem, ok := it.Next()
		if !ok {
			return newError("tuple pattern has %d elements but value has %d", len(targets), i)
		}
		if isError(elem) {
			return elem
		}
		env.Set(target.Value, elem)
	}

	extra := 0
	for {
		elem, ok := it.Next()
		if !ok {
			break
		}
		if isError(elem) {
			return elem
		}
		extra++
	}
	if extra > 0 {
		return newError("tuple pattern has %d elements but value has %d", len(targets), len(targets)+extra)
	}
	return NIL
}
