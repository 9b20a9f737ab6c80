package evaluator

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// inferFromYaml converts Go values (from yaml.Unmarshal) to objects.
// Mappings become Dicts, sequences become Lists, scalars become
// Int/Float/Bool/String/Nil. yaml.v3 returns int for integers, not
// float64 like encoding/json, so both cases appear here.
func inferFromYaml(data interface{}) (Object, error) {
	switch v := data.(type) {
	case nil:
		return NIL, nil
	case bool:
		return nativeBoolToBooleanObject(v), nil
	case int:
		return &Integer{Value: int64(v)}, nil
	case int64:
		return &Integer{Value: v}, nil
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
			obj, err := inferFromYaml(item)
			if err != nil {
				return nil, err
			}
			elements[i] = obj
		}
		return &List{Elements: elements}, nil
	case map[string]interface{}:
		// Go maps have no iteration order; sort keys so decoded dicts
		// come out deterministic.
		names := make([]string, 0, len(v))
		for k := range v {
			names = append(names, k)
		}
		sort.Strings(names)
		dict := NewDict()
		for _, k := range names {
			obj, err := inferFromYaml(v[k])
			if err != nil {
				return nil, err
			}
			dict.Set(&String{Value: k}, obj)
		}
		return dict, nil
	case map[interface{}]interface{}:
		type pair struct {
			key   Object
			value Object
		}
		pairs := make([]pair, 0, len(v))
		for k, val := range v {
			keyObj, err := inferFromYaml(k)
			if err != nil {
				return nil, err
			}
			valObj, err := inferFromYaml(val)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, pair{key: keyObj, value: valObj})
		}
		sort.Slice(pairs, func(i, j int) bool { return pairs[i].key.Inspect() < pairs[j].key.Inspect() })
		dict := NewDict()
		for _, p := range pairs {
			if !dict.Set(p.key, p.value) {
				return nil, fmt.Errorf("unhashable type: %s", typeName(p.key))
			}
		}
		return dict, nil
	default:
		return nil, fmt.Errorf("unsupported YAML value type: %T", data)
	}
}

// objectToGo converts an object to a plain Go value for yaml/json
// encoding. Ranges and generators are drained; generators are single-pass,
// so encoding one consumes it.
func objectToGo(obj Object) (interface{}, error) {
	switch o := obj.(type) {
	case *Integer:
		return o.Value, nil
	case *Float:
		return o.Value, nil
	case *Boolean:
		return o.Value, nil
	case *String:
		return o.Value, nil
	case *Bytes:
		return o.Value, nil
	case *Nil:
		return nil, nil
	case *Uuid:
		return o.Value.String(), nil
	case *List:
		return sliceToGo(o.Elements)
	case *Tuple:
		return sliceToGo(o.Elements)
	case *Set:
		return sliceToGo(o.Elements())
	case *Range, *Generator:
		elements, err := drainIterable(obj)
		if err != nil {
			return nil, fmt.Errorf("%s", err.Message)
		}
		return sliceToGo(elements)
	case *Dict:
		if strs, ok := dictToGoMap(o); ok {
			return strs, nil
		}
		m := make(map[interface{}]interface{}, o.Len())
		for _, entry := range o.table.entries {
			key, err := objectToGo(entry.key)
			if err != nil {
				return nil, err
			}
			value, err := objectToGo(entry.value)
			if err != nil {
				return nil, err
			}
			m[key] = value
		}
		return m, nil
	default:
		return nil, fmt.Errorf("cannot encode %s", typeName(obj))
	}
}

func sliceToGo(elements []Object) (interface{}, error) {
	arr := make([]interface{}, len(elements))
	for i, elem := range elements {
		value, err := objectToGo(elem)
		if err != nil {
			return nil, err
		}
		arr[i] = value
	}
	return arr, nil
}

// dictToGoMap returns a string-keyed map when every key is a String, which
// keeps the common case encodable by both yaml and json.
func dictToGoMap(dict *Dict) (map[string]interface{}, bool) {
	m := make(map[string]interface{}, dict.Len())
	for _, entry := range dict.table.entries {
		str, ok := entry.key.(*String)
		if !ok {
			return nil, false
		}
		value, err := objectToGo(entry.value)
		if err != nil {
			return nil, false
		}
		m[str.Value] = value
	}
	return m, true
}

func builtinYamlDecode(e *Evaluator, args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	str, ok := args[0].(*String)
	if !ok {
		return newError("argument to `yamlDecode` must be String, got %s", typeName(args[0]))
	}
	var data interface{}
	if err := yaml.Unmarshal([]byte(str.Value), &data); err != nil {
		return newError("YAML parse error: %v", err)
	}
	result, err := inferFromYaml(data)
	if err != nil {
		return newError("%s", err.Error())
	}
	return result
}

func builtinYamlEncode(e *Evaluator, args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	value, err := objectToGo(args[0])
	if err != nil {
		return newError("yamlEncode: %s", err.Error())
	}
	out, err := yaml.Marshal(value)
	if err != nil {
		return newError("YAML encoding error: %v", err)
	}
	return &String{Value: string(out)}
}
