package evaluator

import "hash/fnv"

type ObjectType string

const (
	INTEGER_OBJ         = "INTEGER"
	FLOAT_OBJ           = "FLOAT"
	BOOLEAN_OBJ         = "BOOLEAN"
	STRING_OBJ          = "STRING"
	BYTES_OBJ           = "BYTES"
	NIL_OBJ             = "NIL"
	LIST_OBJ            = "LIST"
	TUPLE_OBJ           = "TUPLE"
	SET_OBJ             = "SET"
	DICT_OBJ            = "DICT"
	RANGE_OBJ           = "RANGE"
	GENERATOR_OBJ       = "GENERATOR"
	FUNCTION_OBJ        = "FUNCTION"
	BUILTIN_OBJ         = "BUILTIN"
	UUID_OBJ            = "UUID"
	DATABASE_OBJ        = "DATABASE"
	ERROR_OBJ           = "ERROR"
	BREAK_SIGNAL_OBJ    = "BREAK_SIGNAL"
	CONTINUE_SIGNAL_OBJ = "CONTINUE_SIGNAL"
)

type Object interface {
	Type() ObjectType
	Inspect() string
}

// Hashable is implemented by objects that can be set elements or dict keys.
// Tuples are hashable only when every element is; hashOf handles them.
type Hashable interface {
	Object
	Hash() uint32
}

// Helper for hashing strings
func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

// typeName returns the human-readable type name used in error messages.
func typeName(obj Object) string {
	switch obj.(type) {
	case *Integer:
		return "Int"
	case *Float:
		return "Float"
	case *Boolean:
		return "Bool"
	case *String:
		return "String"
	case *Bytes:
		return "Bytes"
	case *Nil:
		return "Nil"
	case *List:
		return "List"
	case *Tuple:
		return "Tuple"
	case *Set:
		return "Set"
	case *Dict:
		return "Dict"
	case *Range:
		return "Range"
	case *Generator:
		return "Generator"
	case *Function:
		return "Function"
	case *Builtin:
		return "Builtin"
	case *Uuid:
		return "Uuid"
	case *Database:
		return "Database"
	case *Error:
		return "Error"
	default:
		return string(obj.Type())
	}
}
