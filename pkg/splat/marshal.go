package splat

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	"github.com/google/uuid"

	"github.com/funvibe/splat/internal/evaluator"
)

// Marshaller converts values between Go and script representations.
type Marshaller struct{}

func NewMarshaller() *Marshaller {
	return &Marshaller{}
}

// ToObject converts a Go value to a script object. Pointers and
// interfaces are followed; nil becomes the script nil.
func (m *Marshaller) ToObject(val interface{}) (evaluator.Object, error) {
	if val == nil {
		return evaluator.NIL, nil
	}
	if obj, ok := val.(evaluator.Object); ok {
		return obj, nil
	}
	if id, ok := val.(uuid.UUID); ok {
		return &evaluator.Uuid{Value: id}, nil
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &evaluator.Integer{Value: v.Int()}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &evaluator.Integer{Value: int64(v.Uint())}, nil
	case reflect.Float32, reflect.Float64:
		return &evaluator.Float{Value: v.Float()}, nil
	case reflect.Bool:
		return &evaluator.Boolean{Value: v.Bool()}, nil
	case reflect.String:
		return &evaluator.String{Value: v.String()}, nil
	case reflect.Slice, reflect.Array:
		// []byte maps onto Bytes, every other slice onto List.
		if v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8 {
			data := make([]byte, v.Len())
			reflect.Copy(reflect.ValueOf(data), v)
			return &evaluator.Bytes{Value: data}, nil
		}
		return m.sliceToList(v)
	case reflect.Map:
		return m.mapToDict(v)
	case reflect.Struct:
		return m.structToDict(v)
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return evaluator.NIL, nil
		}
		return m.ToObject(v.Elem().Interface())
	}
	return nil, fmt.Errorf("cannot convert %s to a script value", v.Type())
}

func (m *Marshaller) sliceToList(v reflect.Value) (evaluator.Object, error) {
	elements := make([]evaluator.Object, v.Len())
	for i := 0; i < v.Len(); i++ {
		el, err := m.ToObject(v.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		elements[i] = el
	}
	return evaluator.NewList(elements), nil
}

// mapToDict sorts the converted pairs by key so that the same Go map
// always produces the same dict, whatever order reflect walks it in.
func (m *Marshaller) mapToDict(v reflect.Value) (evaluator.Object, error) {
	type pair struct {
		key   evaluator.Object
		value evaluator.Object
	}
	pairs := make([]pair, 0, v.Len())

	iter := v.MapRange()
	for iter.Next() {
		key, err := m.ToObject(iter.Key().Interface())
		if err != nil {
			return nil, fmt.Errorf("map key: %w", err)
		}
		value, err := m.ToObject(iter.Value().Interface())
		if err != nil {
			return nil, fmt.Errorf("map value: %w", err)
		}
		pairs = append(pairs, pair{key: key, value: value})
	}
	sort.Slice(pairs, func(a, b int) bool {
		return pairs[a].key.Inspect() < pairs[b].key.Inspect()
	})

	dict := evaluator.NewDict()
	for _, p := range pairs {
		if !dict.Set(p.key, p.value) {
			return nil, fmt.Errorf("unsupported dict key %s", p.key.Inspect())
		}
	}
	return dict, nil
}

// structToDict converts the exported fields, in declaration order.
func (m *Marshaller) structToDict(v reflect.Value) (evaluator.Object, error) {
	dict := evaluator.NewDict()
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		}
		value, err := m.ToObject(v.Field(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		dict.Set(&evaluator.String{Value: field.Name}, value)
	}
	return dict, nil
}

// FromObject converts a script object to a Go value. Integers come back
// as int64. Dicts become map[string]interface{} when every key is a
// string, and ordered [2]-element pairs otherwise. Ranges and generators
// are drained; generators are single-pass, so converting one consumes it.
func (m *Marshaller) FromObject(obj evaluator.Object) (interface{}, error) {
	switch o := obj.(type) {
	case *evaluator.Integer:
		return o.Value, nil
	case *evaluator.Float:
		return o.Value, nil
	case *evaluator.Boolean:
		return o.Value, nil
	case *evaluator.String:
		return o.Value, nil
	case *evaluator.Bytes:
		data := make([]byte, len(o.Value))
		copy(data, o.Value)
		return data, nil
	case *evaluator.Nil:
		return nil, nil
	case *evaluator.Uuid:
		return o.Value, nil
	case *evaluator.List:
		return m.sliceOut(o.Elements)
	case *evaluator.Tuple:
		return m.sliceOut(o.Elements)
	case *evaluator.Set:
		return m.sliceOut(o.Elements())
	case *evaluator.Dict:
		return m.dictOut(o)
	case *evaluator.Range:
		n := o.Len()
		out := make([]interface{}, 0, n)
		v := o.Start
		for k := int64(0); k < n; k++ {
			out = append(out, v)
			v += o.Step
		}
		return out, nil
	case *evaluator.Generator:
		out := []interface{}{}
		for {
			elem, more := o.Next()
			if !more {
				return out, nil
			}
			if errObj, failed := elem.(*evaluator.Error); failed {
				return nil, errors.New(errObj.Message)
			}
			val, err := m.FromObject(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, val)
		}
	case *evaluator.Error:
		return nil, errors.New(o.Message)
	}
	return nil, fmt.Errorf("cannot convert %s to a Go value", obj.Type())
}

func (m *Marshaller) sliceOut(elements []evaluator.Object) (interface{}, error) {
	out := make([]interface{}, len(elements))
	for i, el := range elements {
		val, err := m.FromObject(el)
		if err != nil {
			return nil, err
		}
		out[i] = val
	}
	return out, nil
}

func (m *Marshaller) dictOut(d *evaluator.Dict) (interface{}, error) {
	keys := d.Keys()
	values := d.Values()

	allStrings := true
	for _, k := range keys {
		if _, ok := k.(*evaluator.String); !ok {
			allStrings = false
			break
		}
	}

	if allStrings {
		out := make(map[string]interface{}, len(keys))
		for i, k := range keys {
			val, err := m.FromObject(values[i])
			if err != nil {
				return nil, err
			}
			out[k.(*evaluator.String).Value] = val
		}
		return out, nil
	}

	out := make([][2]interface{}, 0, len(keys))
	for i, k := range keys {
		key, err := m.FromObject(k)
		if err != nil {
			return nil, err
		}
		val, err := m.FromObject(values[i])
		if err != nil {
			return nil, err
		}
		out = append(out, [2]interface{}{key, val})
	}
	return out, nil
}
