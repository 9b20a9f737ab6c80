package evaluator

import (
	"math"
	"sort"
)

// drainIterable consumes obj to exhaustion. Generators are single-pass, so
// the caller owns every element it gets back.
func drainIterable(obj Object) ([]Object, *Error) {
	it, err := iterateOrError(obj)
	if err != nil {
		return nil, err
	}
	var elements []Object
	for {
		elem, more := it.Next()
		if !more {
			return elements, nil
		}
		if isError(elem) {
			return nil, elem.(*Error)
		}
		elements = append(elements, elem)
	}
}

func builtinList(e *Evaluator, args ...Object) Object {
	if len(args) > 1 {
		return newError("wrong number of arguments. got=%d, want=0..1", len(args))
	}
	if len(args) == 0 {
		return &List{}
	}
	elements, err := drainIterable(args[0])
	if err != nil {
		return err
	}
	return &List{Elements: elements}
}

// builtinSet is also the only spelling of an empty set, since {} is a dict.
func builtinSet(e *Evaluator, args ...Object) Object {
	if len(args) > 1 {
		return newError("wrong number of arguments. got=%d, want=0..1", len(args))
	}
	result := NewSet()
	if len(args) == 0 {
		return result
	}
	elements, err := drainIterable(args[0])
	if err != nil {
		return err
	}
	for _, elem := range elements {
		if !result.Add(elem) {
			return newError("unhashable type: %s", typeName(elem))
		}
	}
	return result
}

func builtinDict(e *Evaluator, args ...Object) Object {
	if len(args) > 1 {
		return newError("wrong number of arguments. got=%d, want=0..1", len(args))
	}
	if len(args) == 0 {
		return NewDict()
	}
	result := NewDict()
	if src, ok := args[0].(*Dict); ok {
		for _, entry := range src.table.entries {
			result.Set(entry.key, entry.value)
		}
		return result
	}
	elements, err := drainIterable(args[0])
	if err != nil {
		return err
	}
	for _, elem := range elements {
		pair, ok := elem.(*Tuple)
		if !ok {
			return newError("dict() element must be a 2-tuple, got %s", typeName(elem))
		}
		if len(pair.Elements) != 2 {
			return newError("dict() element must be a 2-tuple, got tuple of %d elements", len(pair.Elements))
		}
		if !result.Set(pair.Elements[0], pair.Elements[1]) {
			return newError("unhashable type: %s", typeName(pair.Elements[0]))
		}
	}
	return result
}

func builtinTuple(e *Evaluator, args ...Object) Object {
	if len(args) > 1 {
		return newError("wrong number of arguments. got=%d, want=0..1", len(args))
	}
	if len(args) == 0 {
		return &Tuple{}
	}
	elements, err := drainIterable(args[0])
	if err != nil {
		return err
	}
	return &Tuple{Elements: elements}
}

func builtinKeys(e *Evaluator, args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	dict, ok := args[0].(*Dict)
	if !ok {
		return newError("argument to `keys` must be Dict, got %s", typeName(args[0]))
	}
	return &List{Elements: dict.Keys()}
}

func builtinValues(e *Evaluator, args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	dict, ok := args[0].(*Dict)
	if !ok {
		return newError("argument to `values` must be Dict, got %s", typeName(args[0]))
	}
	return &List{Elements: dict.Values()}
}

func builtinItems(e *Evaluator, args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	dict, ok := args[0].(*Dict)
	if !ok {
		return newError("argument to `items` must be Dict, got %s", typeName(args[0]))
	}
	pairs := make([]Object, 0, dict.Len())
	for _, entry := range dict.table.entries {
		pairs = append(pairs, &Tuple{Elements: []Object{entry.key, entry.value}})
	}
	return &List{Elements: pairs}
}

func builtinSum(e *Evaluator, args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	elements, err := drainIterable(args[0])
	if err != nil {
		return err
	}
	var intSum int64
	var floatSum float64
	isFloat := false
	for _, elem := range elements {
		switch num := elem.(type) {
		case *Integer:
			if isFloat {
				floatSum += float64(num.Value)
			} else {
				intSum += num.Value
			}
		case *Float:
			if !isFloat {
				isFloat = true
				floatSum = float64(intSum)
			}
			floatSum += num.Value
		default:
			return newError("argument to `sum` must be an iterable of numbers, got %s", typeName(elem))
		}
	}
	if isFloat {
		return &Float{Value: floatSum}
	}
	return &Integer{Value: intSum}
}

// pickExtreme implements min and max over either a single iterable or the
// argument list itself.
func pickExtreme(name string, wantGreater bool, args []Object) Object {
	var elements []Object
	if len(args) == 0 {
		return newError("wrong number of arguments. got=0, want=1+")
	}
	if len(args) == 1 {
		drained, err := drainIterable(args[0])
		if err != nil {
			return err
		}
		elements = drained
	} else {
		elements = args
	}
	if len(elements) == 0 {
		return newError("%s() of an empty sequence", name)
	}
	best := elements[0]
	for _, elem := range elements[1:] {
		cmp, ok := compareObjects(elem, best)
		if !ok {
			return newError("cannot compare %s and %s", typeName(elem), typeName(best))
		}
		if (wantGreater && cmp > 0) || (!wantGreater && cmp < 0) {
			best = elem
		}
	}
	return best
}

func builtinMin(e *Evaluator, args ...Object) Object {
	return pickExtreme("min", false, args)
}

func builtinMax(e *Evaluator, args ...Object) Object {
	return pickExtreme("max", true, args)
}

func builtinSorted(e *Evaluator, args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	elements, err := drainIterable(args[0])
	if err != nil {
		return err
	}
	var cmpErr *Error
	sort.SliceStable(elements, func(i, j int) bool {
		cmp, ok := compareObjects(elements[i], elements[j])
		if !ok && cmpErr == nil {
			cmpErr = newError("cannot compare %s and %s", typeName(elements[i]), typeName(elements[j]))
		}
		return cmp < 0
	})
	if cmpErr != nil {
		return cmpErr
	}
	return &List{Elements: elements}
}

func builtinEnumerate(e *Evaluator, args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	elements, err := drainIterable(args[0])
	if err != nil {
		return err
	}
	pairs := make([]Object, len(elements))
	for i, elem := range elements {
		pairs[i] = &Tuple{Elements: []Object{&Integer{Value: int64(i)}, elem}}
	}
	return &List{Elements: pairs}
}

func builtinZip(e *Evaluator, args ...Object) Object {
	if len(args) < 2 {
		return newError("wrong number of arguments. got=%d, want=2+", len(args))
	}
	iters := make([]Iterator, len(args))
	for i, arg := range args {
		it, err := iterateOrError(arg)
		if err != nil {
			return err
		}
		iters[i] = it
	}
	var rows []Object
	for {
		row := make([]Object, len(iters))
		for i, it := range iters {
			elem, more := it.Next()
			if !more {
				// Shortest input wins; the partial row is dropped.
				return &List{Elements: rows}
			}
			if isError(elem) {
				return elem
			}
			row[i] = elem
		}
		rows = append(rows, &Tuple{Elements: row})
	}
}

func builtinAbs(e *Evaluator, args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	switch num := args[0].(type) {
	case *Integer:
		if num.Value < 0 {
			return &Integer{Value: -num.Value}
		}
		return num
	case *Float:
		return &Float{Value: math.Abs(num.Value)}
	default:
		return newError("argument to `abs` must be Int or Float, got %s", typeName(args[0]))
	}
}
