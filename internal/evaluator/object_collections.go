package evaluator

import (
	"bytes"
)

// Tuple represents a heterogeneous immutable collection of objects.
type Tuple struct {
	Elements []Object
}

func (t *Tuple) Type() ObjectType { return TUPLE_OBJ }
func (t *Tuple) Inspect() string {
	var out bytes.Buffer
	out.WriteString("(")
	for i, el := range t.Elements {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(el.Inspect())
	}
	if len(t.Elements) == 1 {
		out.WriteString(",")
	}
	out.WriteString(")")
	return out.String()
}

// List represents an ordered collection of objects.
type List struct {
	Elements []Object
}

func NewList(elements []Object) *List {
	return &List{Elements: elements}
}

func (l *List) Type() ObjectType { return LIST_OBJ }
func (l *List) Inspect() string {
	var out bytes.Buffer
	out.WriteString("[")
	for i, el := range l.Elements {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(el.Inspect())
	}
	out.WriteString("]")
	return out.String()
}

// tableEntry is one slot of an orderedTable. Set entries leave value nil.
type tableEntry struct {
	key   Object
	value Object
}

// orderedTable is the shared insertion-ordered hash table behind Set and
// Dict. A key keeps the slot of its first insertion; later writes replace
// only the value (last write wins). There is no delete.
type orderedTable struct {
	entries []tableEntry
	index   map[uint32][]int
}

func newOrderedTable() *orderedTable {
	return &orderedTable{index: make(map[uint32][]int)}
}

// put inserts key/value or overwrites the value of an existing key.
// Returns false when the key is unhashable.
func (t *orderedTable) put(key, value Object) bool {
	h, ok := hashOf(key)
	if !ok {
		return false
	}
	for _, i := range t.index[h] {
		if objectsEqual(t.entries[i].key, key) {
			t.entries[i].value = value
			return true
		}
	}
	t.index[h] = append(t.index[h], len(t.entries))
	t.entries = append(t.entries, tableEntry{key: key, value: value})
	return true
}

// get returns the value stored under key. Unhashable keys report not found;
// callers that must distinguish use hashOf first.
func (t *orderedTable) get(key Object) (Object, bool) {
	h, ok := hashOf(key)
	if !ok {
		return nil, false
	}
	for _, i := range t.index[h] {
		if objectsEqual(t.entries[i].key, key) {
			return t.entries[i].value, true
		}
	}
	return nil, false
}

func (t *orderedTable) contains(key Object) bool {
	_, found := t.get(key)
	return found
}

func (t *orderedTable) size() int { return len(t.entries) }

// Set is an insertion-ordered hash set.
type Set struct {
	table *orderedTable
}

func NewSet() *Set {
	return &Set{table: newOrderedTable()}
}

// Add inserts an element, ignoring duplicates. Returns false when the
// element is unhashable.
func (s *Set) Add(elem Object) bool {
	if s.table.contains(elem) {
		return true
	}
	return s.table.put(elem, nil)
}

func (s *Set) Contains(elem Object) bool { return s.table.contains(elem) }
func (s *Set) Len() int                  { return s.table.size() }

// Elements returns the members in first-insertion order.
func (s *Set) Elements() []Object {
	out := make([]Object, len(s.table.entries))
	for i, entry := range s.table.entries {
		out[i] = entry.key
	}
	return out
}

func (s *Set) Type() ObjectType { return SET_OBJ }
func (s *Set) Inspect() string {
	if s.Len() == 0 {
		return "set()"
	}
	var out bytes.Buffer
	out.WriteString("{")
	for i, entry := range s.table.entries {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(entry.key.Inspect())
	}
	out.WriteString("}")
	return out.String()
}

// Dict is an insertion-ordered hash map. Keys enumerate in first-insertion
// order; values are last write wins.
type Dict struct {
	table *orderedTable
}

func NewDict() *Dict {
	return &Dict{table: newOrderedTable()}
}

// Set stores key/value. Returns false when the key is unhashable.
func (d *Dict) Set(key, value Object) bool {
	return d.table.put(key, value)
}

func (d *Dict) Get(key Object) (Object, bool) { return d.table.get(key) }
func (d *Dict) Contains(key Object) bool      { return d.table.contains(key) }
func (d *Dict) Len() int                      { return d.table.size() }

// Keys returns the keys in first-insertion order.
func (d *Dict) Keys() []Object {
	out := make([]Object, len(d.table.entries))
	for i, entry := range d.table.entries {
		out[i] = entry.key
	}
	return out
}

// Values returns the values in key order.
func (d *Dict) Values() []Object {
	out := make([]Object, len(d.table.entries))
	for i, entry := range d.table.entries {
		out[i] = entry.value
	}
	return out
}

func (d *Dict) Type() ObjectType { return DICT_OBJ }
func (d *Dict) Inspect() string {
	var out bytes.Buffer
	out.WriteString("{")
	for i, entry := range d.table.entries {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(entry.key.Inspect())
		out.WriteString(": ")
		out.WriteString(entry.value.Inspect())
	}
	out.WriteString("}")
	return out.String()
}
