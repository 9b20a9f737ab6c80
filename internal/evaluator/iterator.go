package evaluator

// Iterator is the internal iteration protocol shared by loops,
// comprehensions, spreads and the drainer builtins. Next returns the next
// element and true, or (nil, false) once exhausted. A runtime failure is
// delivered as (*Error, true); callers check with isError.
type Iterator interface {
	Next() (Object, bool)
}

// iteratorFor returns an iterator over obj, or nil when obj is not
// iterable.
func iteratorFor(obj Object) Iterator {
	switch v := obj.(type) {
	case *List:
		return &sliceIterator{elements: v.Elements}
	case *Tuple:
		return &sliceIterator{elements: v.Elements}
	case *String:
		return &stringIterator{runes: []rune(v.Value)}
	case *Bytes:
		return &bytesIterator{data: v.Value}
	case *Set:
		return &tableKeyIterator{entries: v.table.entries}
	case *Dict:
		return &tableKeyIterator{entries: v.table.entries}
	case *Range:
		return &rangeIterator{current: v.Start, step: v.Step, remaining: v.Len()}
	case *Generator:
		return v
	}
	return nil
}

type sliceIterator struct {
	elements []Object
	pos      int
}

func (it *sliceIterator) Next() (Object, bool) {
	if it.pos >= len(it.elements) {
		return nil, false
	}
	el := it.elements[it.pos]
	it.pos++
	return el, true
}

// stringIterator yields one-character Strings, rune by rune.
type stringIterator struct {
	runes []rune
	pos   int
}

func (it *stringIterator) Next() (Object, bool) {
	if it.pos >= len(it.runes) {
		return nil, false
	}
	ch := it.runes[it.pos]
	it.pos++
	return &String{Value: string(ch)}, true
}

// bytesIterator yields each byte as an Integer.
type bytesIterator struct {
	data []byte
	pos  int
}

func (it *bytesIterator) Next() (Object, bool) {
	if it.pos >= len(it.data) {
		return nil, false
	}
	b := it.data[it.pos]
	it.pos++
	return &Integer{Value: int64(b)}, true
}

// tableKeyIterator walks an orderedTable in first-insertion order. For
// sets the keys are the members; for dicts iteration yields keys.
type tableKeyIterator struct {
	entries []tableEntry
	pos     int
}

func (it *tableKeyIterator) Next() (Object, bool) {
	if it.pos >= len(it.entries) {
		return nil, false
	}
	key := it.entries[it.pos].key
	it.pos++
	return key, true
}

type rangeIterator struct {
	current   int64
	step      int64
	remaining int64
}

func (it *rangeIterator) Next() (Object, bool) {
	if it.remaining <= 0 {
		return nil, false
	}
	val := it.current
	it.current += it.step
	it.remaining--
	return &Integer{Value: val}, true
}
