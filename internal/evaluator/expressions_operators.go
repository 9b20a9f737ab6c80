package evaluator

import (
	"math"
	"strings"

	"github.com/funvibe/splat/internal/ast"
)

func (e *Evaluator) evalPrefixExpression(node *ast.PrefixExpression, env *Environment) Object {
	right := e.Eval(node.Right, env)
	if isError(right) {
		return right
	}

	switch node.Operator {
	case "!":
		return nativeBoolToBooleanObject(!isTruthy(right))
	case "-":
		if right.Type() == INTEGER_OBJ {
			value := right.(*Integer).Value
			return &Integer{Value: -value}
		} else if right.Type() == FLOAT_OBJ {
			value := right.(*Float).Value
			return &Float{Value: -value}
		}
		return newError("unknown operator: %s%s", node.Operator, typeName(right))
	default:
		return newError("unknown operator: %s%s", node.Operator, typeName(right))
	}
}

// evalInfixExpression evaluates the left operand, short-circuits && and ||
// before touching the right one, then dispatches on the operand types.
func (e *Evaluator) evalInfixExpression(node *ast.InfixExpression, env *Environment) Object {
	left := e.Eval(node.Left, env)
	if isError(left) {
		return left
	}

	// && and || yield one of their operand values, not a forced Bool.
	switch node.Operator {
	case "&&":
		if !isTruthy(left) {
			return left
		}
		return e.Eval(node.Right, env)
	case "||":
		if isTruthy(left) {
			return left
		}
		return e.Eval(node.Right, env)
	}

	right := e.Eval(node.Right, env)
	if isError(right) {
		return right
	}
	return evalBinaryOperator(node.Operator, left, right)
}

func evalBinaryOperator(operator string, left, right Object) Object {
	// Equality is structural and never promotes, so 1 != 1.0.
	switch operator {
	case "==":
		return nativeBoolToBooleanObject(objectsEqual(left, right))
	case "!=":
		return nativeBoolToBooleanObject(!objectsEqual(left, right))
	case "in":
		return evalMembership(left, right)
	}

	if left.Type() == INTEGER_OBJ && right.Type() == INTEGER_OBJ {
		return evalIntegerInfixExpression(operator, left, right)
	}
	if left.Type() == FLOAT_OBJ && right.Type() == FLOAT_OBJ {
		return evalFloatInfixExpression(operator, left, right)
	}

	// Implicit Int -> Float conversion
	if left.Type() == INTEGER_OBJ && right.Type() == FLOAT_OBJ {
		leftVal := float64(left.(*Integer).Value)
		return evalFloatInfixExpression(operator, &Float{Value: leftVal}, right)
	}
	if left.Type() == FLOAT_OBJ && right.Type() == INTEGER_OBJ {
		rightVal := float64(right.(*Integer).Value)
		return evalFloatInfixExpression(operator, left, &Float{Value: rightVal})
	}

	if left.Type() == STRING_OBJ && right.Type() == STRING_OBJ {
		return evalStringInfixExpression(operator, left, right)
	}

	if operator == "+" {
		if left.Type() == LIST_OBJ && right.Type() == LIST_OBJ {
			leftList := left.(*List)
			rightList := right.(*List)
			elements := make([]Object, 0, len(leftList.Elements)+len(rightList.Elements))
			elements = append(elements, leftList.Elements...)
			elements = append(elements, rightList.Elements...)
			return &List{Elements: elements}
		}
		if left.Type() == TUPLE_OBJ && right.Type() == TUPLE_OBJ {
			leftTuple := left.(*Tuple)
			rightTuple := right.(*Tuple)
			elements := make([]Object, 0, len(leftTuple.Elements)+len(rightTuple.Elements))
			elements = append(elements, leftTuple.Elements...)
			elements = append(elements, rightTuple.Elements...)
			return &Tuple{Elements: elements}
		}
	}

	if operator == "*" {
		if result := evalRepeat(left, right); result != nil {
			return result
		}
	}

	if left.Type() != right.Type() {
		return newError("type mismatch: %s %s %s", typeName(left), operator, typeName(right))
	}
	return newError("unknown operator: %s %s %s", typeName(left), operator, typeName(right))
}

func evalIntegerInfixExpression(operator string, left, right Object) Object {
	leftVal := left.(*Integer).Value
	rightVal := right.(*Integer).Value

	switch operator {
	case "+":
		return &Integer{Value: leftVal + rightVal}
	case "-":
		return &Integer{Value: leftVal - rightVal}
	case "*":
		return &Integer{Value: leftVal * rightVal}
	case "/":
		if rightVal == 0 {
			return newError("division by zero")
		}
		// / is true division and always produces a Float.
		return &Float{Value: float64(leftVal) / float64(rightVal)}
	case "%":
		if rightVal == 0 {
			return newError("modulo by zero")
		}
		// The result follows the divisor's sign.
		return &Integer{Value: ((leftVal % rightVal) + rightVal) % rightVal}
	case "**":
		if rightVal < 0 {
			return &Float{Value: math.Pow(float64(leftVal), float64(rightVal))}
		}
		return &Integer{Value: intPow(leftVal, rightVal)}
	case "<":
		return nativeBoolToBooleanObject(leftVal < rightVal)
	case ">":
		return nativeBoolToBooleanObject(leftVal > rightVal)
	case "<=":
		return nativeBoolToBooleanObject(leftVal <= rightVal)
	case ">=":
		return nativeBoolToBooleanObject(leftVal >= rightVal)
	default:
		return newError("unknown operator: %s %s %s", typeName(left), operator, typeName(right))
	}
}

func evalFloatInfixExpression(operator string, left, right Object) Object {
	leftVal := left.(*Float).Value
	rightVal := right.(*Float).Value

	switch operator {
	case "+":
		return &Float{Value: leftVal + rightVal}
	case "-":
		return &Float{Value: leftVal - rightVal}
	case "*":
		return &Float{Value: leftVal * rightVal}
	case "/":
		if rightVal == 0.0 {
			return newError("division by zero")
		}
		return &Float{Value: leftVal / rightVal}
	case "**":
		return &Float{Value: math.Pow(leftVal, rightVal)}
	case "<":
		return nativeBoolToBooleanObject(leftVal < rightVal)
	case ">":
		return nativeBoolToBooleanObject(leftVal > rightVal)
	case "<=":
		return nativeBoolToBooleanObject(leftVal <= rightVal)
	case ">=":
		return nativeBoolToBooleanObject(leftVal >= rightVal)
	default:
		return newError("unknown operator: %s %s %s", typeName(left), operator, typeName(right))
	}
}

func evalStringInfixExpression(operator string, left, right Object) Object {
	leftVal := left.(*String).Value
	rightVal := right.(*String).Value

	switch operator {
	case "+":
		return &String{Value: leftVal + rightVal}
	case "<":
		return nativeBoolToBooleanObject(leftVal < rightVal)
	case ">":
		return nativeBoolToBooleanObject(leftVal > rightVal)
	case "<=":
		return nativeBoolToBooleanObject(leftVal <= rightVal)
	case ">=":
		return nativeBoolToBooleanObject(leftVal >= rightVal)
	default:
		return newError("unknown operator: %s %s %s", typeName(left), operator, typeName(right))
	}
}

// evalRepeat implements sequence repetition: seq * n or n * seq for
// String/List/Tuple. Returns nil when the pairing does not apply. A
// non-positive count yields an empty sequence.
func evalRepeat(left, right Object) Object {
	count, ok := right.(*Integer)
	seq := left
	if !ok {
		count, ok = left.(*Integer)
		seq = right
		if !ok {
			return nil
		}
	}
	n := count.Value
	if n < 0 {
		n = 0
	}

	switch s := seq.(type) {
	case *String:
		return &String{Value: strings.Repeat(s.Value, int(n))}
	case *List:
		elements := make([]Object, 0, int(n)*len(s.Elements))
		for i := int64(0); i < n; i++ {
			elements = append(elements, s.Elements...)
		}
		return &List{Elements: elements}
	case *Tuple:
		elements := make([]Object, 0, int(n)*len(s.Elements))
		for i := int64(0); i < n; i++ {
			elements = append(elements, s.Elements...)
		}
		return &Tuple{Elements: elements}
	}
	return nil
}

// evalMembership implements `x in container` for lists, tuples, sets,
// dicts (key lookup) and strings (substring).
func evalMembership(left, right Object) Object {
	switch c := right.(type) {
	case *List:
		for _, el := range c.Elements {
			if objectsEqual(left, el) {
				return TRUE
			}
		}
		return FALSE
	case *Tuple:
		for _, el := range c.Elements {
			if objectsEqual(left, el) {
				return TRUE
			}
		}
		return FALSE
	case *Set:
		if _, ok := hashOf(left); !ok {
			return newError("unhashable type: %s", typeName(left))
		}
		return nativeBoolToBooleanObject(c.Contains(left))
	case *Dict:
		if _, ok := hashOf(left); !ok {
			return newError("unhashable type: %s", typeName(left))
		}
		return nativeBoolToBooleanObject(c.Contains(left))
	case *String:
		sub, ok := left.(*String)
		if !ok {
			return newError("left operand of 'in' must be String to search a String, got %s", typeName(left))
		}
		return nativeBoolToBooleanObject(strings.Contains(c.Value, sub.Value))
	}
	return newError("right operand of 'in' must be a container, got %s", typeName(right))
}

// compareObjects orders two objects: -1, 0 or 1. Supported pairings are
// numbers (with Int -> Float promotion) and strings; ok is false for
// everything else. Shared with sorted/min/max.
func compareObjects(left, right Object) (int, bool) {
	if leftInt, ok := left.(*Integer); ok {
		if rightInt, ok := right.(*Integer); ok {
			switch {
			case leftInt.Value < rightInt.Value:
				return -1, true
			case leftInt.Value > rightInt.Value:
				return 1, true
			}
			return 0, true
		}
	}

	leftNum, leftOk := toFloat(left)
	rightNum, rightOk := toFloat(right)
	if leftOk && rightOk {
		switch {
		case leftNum < rightNum:
			return -1, true
		case leftNum > rightNum:
			return 1, true
		}
		return 0, true
	}

	if leftStr, ok := left.(*String); ok {
		if rightStr, ok := right.(*String); ok {
			return strings.Compare(leftStr.Value, rightStr.Value), true
		}
	}
	return 0, false
}

func toFloat(obj Object) (float64, bool) {
	switch v := obj.(type) {
	case *Integer:
		return float64(v.Value), true
	case *Float:
		return v.Value, true
	}
	return 0, false
}
