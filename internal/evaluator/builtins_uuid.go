package evaluator

import (
	"github.com/google/uuid"
)

func builtinUuidNew(e *Evaluator, args ...Object) Object {
	if len(args) != 0 {
		return newError("wrong number of arguments. got=%d, want=0", len(args))
	}
	return &Uuid{Value: uuid.New()}
}

func builtinUuidParse(e *Evaluator, args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	str, ok := args[0].(*String)
	if !ok {
		return newError("argument to `uuidParse` must be String, got %s", typeName(args[0]))
	}
	id, err := uuid.Parse(str.Value)
	if err != nil {
		return newError("uuidParse: %v", err)
	}
	return &Uuid{Value: id}
}
