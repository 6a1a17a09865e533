package dynlist

import (
	"slices"

	"github.com/mazzegi/seqbox/slicesx"
)

// Map applies fn to every element. The results must be allowed by the types of l; they are not coerced.
func (l *List) Map(fn func(v any) any) (*List, error) {
	return l.MapTo(l.types, fn)
}

// MapTo applies fn to every element and collects the results into a list accepting types
func (l *List) MapTo(types Types, fn func(v any) any) (*List, error) {
	return FromSlice(types, slicesx.Map(l.elems, fn))
}

// Filter returns a new list of the elements accepted by pred, in order
func (l *List) Filter(pred func(v any) bool) *List {
	return l.derive(slicesx.Filter(l.elems, pred))
}

func (l *List) Reverse() *List {
	return l.derive(slicesx.Reversed(l.elems))
}

// Unique returns a new list keeping the first occurrence of each value
func (l *List) Unique() *List {
	return l.derive(slicesx.DedupFnc(l.elems, elemsEqual))
}

func (l *List) Copy() *List {
	return l.derive(slices.Clone(l.elems))
}

// Sort sorts l in place in ascending order. If two elements cannot be ordered, l is left untouched.
func (l *List) Sort() error {
	return l.sortBy(compareElems)
}

// SortDesc sorts l in place in descending order
func (l *List) SortDesc() error {
	return l.sortBy(func(a, b any) (int, error) {
		return compareElems(b, a)
	})
}

func (l *List) sortBy(compare func(a, b any) (int, error)) error {
	var sortErr error
	sorted := slices.Clone(l.elems)
	slices.SortStableFunc(sorted, func(a, b any) int {
		c, err := compare(a, b)
		if err != nil && sortErr == nil {
			sortErr = err
		}
		return c
	})
	if sortErr != nil {
		return sortErr
	}
	l.elems = sorted
	return nil
}
