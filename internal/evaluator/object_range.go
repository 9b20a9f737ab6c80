package evaluator

import "fmt"

// Range is a lazy arithmetic progression. It stores only the three bounds;
// iteration produces Integers on demand.
type Range struct {
	Start int64
	Stop  int64
	Step  int64
}

func (r *Range) Type() ObjectType { return RANGE_OBJ }
func (r *Range) Inspect() string {
	if r.Step == 1 {
		return fmt.Sprintf("range(%d, %d)", r.Start, r.Stop)
	}
	return fmt.Sprintf("range(%d, %d, %d)", r.Start, r.Stop, r.Step)
}

// Len returns the number of values the range produces.
func (r *Range) Len() int64 {
	if r.Step > 0 {
		if r.Start >= r.Stop {
			return 0
		}
		return (r.Stop - r.Start + r.Step - 1) / r.Step
	}
	if r.Start <= r.Stop {
		return 0
	}
	return (r.Start - r.Stop - r.Step - 1) / (-r.Step)
}

// Hash folds the normalized form so that ranges producing the same values
// hash alike, e.g. range(0, 5, 10) and range(0, 3, 7).
func (r *Range) Hash() uint32 {
	n := r.Len()
	h := uint32(2166136261)
	h = 31*h + uint32(n^(n>>32))
	if n > 0 {
		h = 31*h + uint32(r.Start^(r.Start>>32))
	}
	if n > 1 {
		h = 31*h + uint32(r.Step^(r.Step>>32))
	}
	return h
}
