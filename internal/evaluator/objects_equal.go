package evaluator

import "bytes"

// objectsEqual performs a deep equality check between two objects.
// Cross-type comparison is always false, so Integer 1 and Float 1.0 are
// distinct values (and distinct dict keys).
func objectsEqual(a, b Object) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type() != b.Type() {
		return false
	}

	switch aVal := a.(type) {
	case *Integer:
		if bVal, ok := b.(*Integer); ok {
			return aVal.Value == bVal.Value
		}
	case *Float:
		if bVal, ok := b.(*Float); ok {
			return aVal.Value == bVal.Value
		}
	case *Boolean:
		if bVal, ok := b.(*Boolean); ok {
			return aVal.Value == bVal.Value
		}
	case *String:
		if bVal, ok := b.(*String); ok {
			return aVal.Value == bVal.Value
		}
	case *Bytes:
		if bVal, ok := b.(*Bytes); ok {
			return bytes.Equal(aVal.Value, bVal.Value)
		}
	case *Nil:
		_, ok := b.(*Nil)
		return ok
	case *Uuid:
		if bVal, ok := b.(*Uuid); ok {
			return aVal.Value == bVal.Value
		}
	case *List:
		if bVal, ok := b.(*List); ok {
			if len(aVal.Elements) != len(bVal.Elements) {
				return false
			}
			for i := range aVal.Elements {
				if !objectsEqual(aVal.Elements[i], bVal.Elements[i]) {
					return false
				}
			}
			return true
		}
	case *Tuple:
		if bVal, ok := b.(*Tuple); ok {
			if len(aVal.Elements) != len(bVal.Elements) {
				return false
			}
			for i := range aVal.Elements {
				if !objectsEqual(aVal.Elements[i], bVal.Elements[i]) {
					return false
				}
			}
			return true
		}
	case *Set:
		if bVal, ok := b.(*Set); ok {
			if aVal.Len() != bVal.Len() {
				return false
			}
			for _, entry := range aVal.table.entries {
				if !bVal.Contains(entry.key) {
					return false
				}
			}
			return true
		}
	case *Dict:
		if bVal, ok := b.(*Dict); ok {
			if aVal.Len() != bVal.Len() {
				return false
			}
			for _, entry := range aVal.table.entries {
				v2, found := bVal.Get(entry.key)
				if !found || !objectsEqual(entry.value, v2) {
					return false
				}
			}
			return true
		}
	case *Range:
		if bVal, ok := b.(*Range); ok {
			n := aVal.Len()
			if n != bVal.Len() {
				return false
			}
			if n > 0 && aVal.Start != bVal.Start {
				return false
			}
			if n > 1 && aVal.Step != bVal.Step {
				return false
			}
			return true
		}
	}

	return false
}

// hashOf returns the hash of obj, or false when obj is unhashable. Tuples
// hash element-wise and so are hashable exactly when every element is.
func hashOf(obj Object) (uint32, bool) {
	switch v := obj.(type) {
	case *Tuple:
		h := uint32(1)
		for _, el := range v.Elements {
			eh, ok := hashOf(el)
			if !ok {
				return 0, false
			}
			h = 31*h + eh
		}
		return h, true
	case Hashable:
		return v.Hash(), true
	}
	return 0, false
}
