package evaluator

import (
	"encoding/json"
	"fmt"
	"sort"
)

// inferFromJson converts Go values (from json.Unmarshal) to objects.
// encoding/json reports every number as float64, so whole values are
// narrowed back to Int.
func inferFromJson(data interface{}) (Object, error) {
	switch v := data.(type) {
	case nil:
		return NIL, nil
	case bool:
		return nativeBoolToBooleanObject(v), nil
	case float64:
		if v == float64(int64(v)) {
			return &Integer{Value: int64(v)}, nil
		}
		return &Float{Value: v}, nil
	case string:
		return &String{Value: v}, nil
	case []interface{}:
		elements := make([]Object, len(v))
		for i, item := range v {
			obj, err := inferFromJson(item)
			if err != nil {
				return nil, err
			}
			elements[i] = obj
		}
		return &List{Elements: elements}, nil
	case map[string]interface{}:
		names := make([]string, 0, len(v))
		for k := range v {
			names = append(names, k)
		}
		sort.Strings(names)
		dict := NewDict()
		for _, k := range names {
			obj, err := inferFromJson(v[k])
			if err != nil {
				return nil, err
			}
			dict.Set(&String{Value: k}, obj)
		}
		return dict, nil
	default:
		return nil, fmt.Errorf("unsupported JSON value type: %T", data)
	}
}

func builtinJsonDecode(e *Evaluator, args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	str, ok := args[0].(*String)
	if !ok {
		return newError("argument to `jsonDecode` must be String, got %s", typeName(args[0]))
	}
	var data interface{}
	if err := json.Unmarshal([]byte(str.Value), &data); err != nil {
		return newError("JSON parse error: %v", err)
	}
	result, err := inferFromJson(data)
	if err != nil {
		return newError("%s", err.Error())
	}
	return result
}

func builtinJsonEncode(e *Evaluator, args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	value, err := objectToGo(args[0])
	if err != nil {
		return newError("jsonEncode: %s", err.Error())
	}
	out, err := json.Marshal(value)
	if err != nil {
		return newError("JSON encoding error: %v", err)
	}
	return &String{Value: string(out)}
}
