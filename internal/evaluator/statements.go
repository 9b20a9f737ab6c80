package evaluator

import (
	"github.com/funvibe/splat/internal/ast"
)

// evalProgram runs the top-level statement list. The program's value is
// the value of its last statement.
func (e *Evaluator) evalProgram(program *ast.Program, env *Environment) Object {
	var result Object
	for _, stmt := range program.Statements {
		result = e.Eval(stmt, env)
		if isError(result) {
			return result
		}
	}
	if result == nil {
		return NIL
	}
	return result
}

// evalAssignStatement rebinds name where it is already defined, walking
// outward, and otherwise creates it in the current scope. Evaluates to
// the assigned value.
func (e *Evaluator) evalAssignStatement(node *ast.AssignStatement, env *Environment) Object {
	val := e.Eval(node.Value, env)
	if isError(val) {
		return val
	}
	if !env.Update(node.Name.Value, val) {
		env.Set(node.Name.Value, val)
	}
	return val
}

func (e *Evaluator) evalBlockStatement(block *ast.BlockStatement, env *Environment) Object {
	var result Object
	blockEnv := NewEnclosedEnvironment(env)

	for _, stmt := range block.Statements {
		result = e.Eval(stmt, blockEnv)
		if result != nil {
			rt := result.Type()
			if rt == ERROR_OBJ {
				return result
			}
			if rt == BREAK_SIGNAL_OBJ || rt == CONTINUE_SIGNAL_OBJ {
				return result
			}
		}
	}

	if result == nil {
		return NIL
	}
	return result
}
