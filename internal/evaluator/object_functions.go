package evaluator

import (
	"strings"

	"github.com/funvibe/splat/internal/ast"
)

// Function is a user-defined lambda together with its closure environment.
type Function struct {
	Parameters []*ast.Identifier
	Body       ast.Expression
	Env        *Environment
}

func (f *Function) Type() ObjectType { return FUNCTION_OBJ }
func (f *Function) Inspect() string {
	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.Value
	}
	return "\\" + strings.Join(params, ", ") + " -> ..."
}

// BuiltinFunction is the signature of native functions. The evaluator is
// passed in so builtins can reach its output writer.
type BuiltinFunction func(e *Evaluator, args ...Object) Object

// Builtin wraps a native Go function.
type Builtin struct {
	Name string
	Fn   BuiltinFunction
}

func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string  { return "<builtin function " + b.Name + ">" }
