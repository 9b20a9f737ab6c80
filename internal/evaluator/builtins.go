package evaluator

import (
	"fmt"

	"github.com/funvibe/splat/internal/config"
)

// Builtins maps builtin names to their implementations. Identifier lookup
// falls back to this map after the environment, so user bindings shadow
// builtins without any registration step.
//
// Populated in init rather than a composite-literal initializer: the `next`
// builtin calls Generator.Next, which reaches Eval and evalIdentifier, which
// reads Builtins again — a package-level initializer would be an
// initialization cycle.
var Builtins map[string]*Builtin

func init() {
	Builtins = map[string]*Builtin{
		config.PrintFuncName: {
			Name: config.PrintFuncName,
			Fn: func(e *Evaluator, args ...Object) Object {
				for i, arg := range args {
					if i > 0 {
						_, _ = fmt.Fprint(e.Out, " ")
					}
					// Strings print their raw contents, not their quoted form.
					if str, ok := arg.(*String); ok {
						_, _ = fmt.Fprint(e.Out, str.Value)
						continue
					}
					_, _ = fmt.Fprint(e.Out, arg.Inspect())
				}
				_, _ = fmt.Fprintln(e.Out)
				return NIL
			},
		},
		config.LenFuncName: {
			Name: config.LenFuncName,
			Fn: func(e *Evaluator, args ...Object) Object {
				if len(args) != 1 {
					return newError("wrong number of arguments. got=%d, want=1", len(args))
				}
				switch obj := args[0].(type) {
				case *String:
					return &Integer{Value: int64(len([]rune(obj.Value)))}
				case *Bytes:
					return &Integer{Value: int64(len(obj.Value))}
				case *List:
					return &Integer{Value: int64(len(obj.Elements))}
				case *Tuple:
					return &Integer{Value: int64(len(obj.Elements))}
				case *Set:
					return &Integer{Value: int64(obj.Len())}
				case *Dict:
					return &Integer{Value: int64(obj.Len())}
				case *Range:
					return &Integer{Value: obj.Len()}
				default:
					return newError("argument to `len` not supported, got %s", typeName(args[0]))
				}
			},
		},
		config.TypeOfFuncName: {
			Name: config.TypeOfFuncName,
			Fn: func(e *Evaluator, args ...Object) Object {
				if len(args) != 1 {
					return newError("wrong number of arguments. got=%d, want=1", len(args))
				}
				return &String{Value: typeName(args[0])}
			},
		},
		config.ShowFuncName: {
			Name: config.ShowFuncName,
			Fn: func(e *Evaluator, args ...Object) Object {
				if len(args) != 1 {
					return newError("wrong number of arguments. got=%d, want=1", len(args))
				}
				return &String{Value: args[0].Inspect()}
			},
		},
		config.NextFuncName: {
			Name: config.NextFuncName,
			Fn: func(e *Evaluator, args ...Object) Object {
				if len(args) != 1 {
					return newError("wrong number of arguments. got=%d, want=1", len(args))
				}
				gen, ok := args[0].(*Generator)
				if !ok {
					return newError("argument to `next` must be Generator, got %s", typeName(args[0]))
				}
				val, more := gen.Next()
				if !more {
					return newError("generator exhausted")
				}
				return val
			},
		},
		config.RangeFuncName: {
			Name: config.RangeFuncName,
			Fn: func(e *Evaluator, args ...Object) Object {
				if len(args) < 1 || len(args) > 3 {
					return newError("wrong number of arguments. got=%d, want=1..3", len(args))
				}
				nums := make([]int64, len(args))
				for i, arg := range args {
					n, ok := arg.(*Integer)
					if !ok {
						return newError("argument to `range` must be Int, got %s", typeName(arg))
					}
					nums[i] = n.Value
				}
				switch len(nums) {
				case 1:
					return &Range{Start: 0, Stop: nums[0], Step: 1}
				case 2:
					return &Range{Start: nums[0], Stop: nums[1], Step: 1}
				default:
					if nums[2] == 0 {
						return newError("range() step must not be zero")
					}
					return &Range{Start: nums[0], Stop: nums[1], Step: nums[2]}
				}
			},
		},

		// Collections (builtins_collections.go)
		"list":      {Name: "list", Fn: builtinList},
		"set":       {Name: "set", Fn: builtinSet},
		"dict":      {Name: "dict", Fn: builtinDict},
		"tuple":     {Name: "tuple", Fn: builtinTuple},
		"keys":      {Name: "keys", Fn: builtinKeys},
		"values":    {Name: "values", Fn: builtinValues},
		"items":     {Name: "items", Fn: builtinItems},
		"sum":       {Name: "sum", Fn: builtinSum},
		"min":       {Name: "min", Fn: builtinMin},
		"max":       {Name: "max", Fn: builtinMax},
		"sorted":    {Name: "sorted", Fn: builtinSorted},
		"enumerate": {Name: "enumerate", Fn: builtinEnumerate},
		"zip":       {Name: "zip", Fn: builtinZip},
		"abs":       {Name: "abs", Fn: builtinAbs},

		// Serialization (builtins_yaml.go, builtins_json.go)
		"yamlDecode": {Name: "yamlDecode", Fn: builtinYamlDecode},
		"yamlEncode": {Name: "yamlEncode", Fn: builtinYamlEncode},
		"jsonDecode": {Name: "jsonDecode", Fn: builtinJsonDecode},
		"jsonEncode": {Name: "jsonEncode", Fn: builtinJsonEncode},

		// Identifiers (builtins_uuid.go)
		"uuidNew":   {Name: "uuidNew", Fn: builtinUuidNew},
		"uuidParse": {Name: "uuidParse", Fn: builtinUuidParse},

		// Terminal (builtins_term.go)
		"isTerminal": {Name: "isTerminal", Fn: builtinIsTerminal},
		"colorize":   {Name: "colorize", Fn: builtinColorize},

		// SQLite (builtins_db.go)
		"dbOpen":  {Name: "dbOpen", Fn: builtinDbOpen},
		"dbExec":  {Name: "dbExec", Fn: builtinDbExec},
		"dbQuery": {Name: "dbQuery", Fn: builtinDbQuery},
		"dbClose": {Name: "dbClose", Fn: builtinDbClose},
	}
}
