package dynlist

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/mazzegi/seqbox/slicesx"
	"github.com/r3labs/diff/v3"
)

func (l *List) elementwise(op arithOp, other *List) (*List, error) {
	if len(l.elems) != len(other.elems) {
		return nil, fmt.Errorf("%w: %d vs. %d", ErrLengthNotEqual, len(l.elems), len(other.elems))
	}
	res := make([]any, len(l.elems))
	for i, a := range l.elems {
		v, err := combine(op, a, other.elems[i])
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		res[i] = v
	}
	return FromSlice(l.types, res)
}

// Add returns a new list holding the position-wise sums of l and other
func (l *List) Add(other *List) (*List, error) {
	return l.elementwise(opAdd, other)
}

// Sub returns a new list holding the position-wise differences of l and other
func (l *List) Sub(other *List) (*List, error) {
	return l.elementwise(opSub, other)
}

// Repeat returns a new list holding the elements of l n times in a row
func (l *List) Repeat(n int) *List {
	return l.derive(slicesx.Cycle(l.elems, n))
}

// Concat returns a new list with the elements of l followed by those of other.
// The result keeps the types of l, so every element of other must be allowed by them.
func (l *List) Concat(other *List) (*List, error) {
	elems := make([]any, 0, len(l.elems)+len(other.elems))
	elems = append(elems, l.elems...)
	elems = append(elems, other.elems...)
	return FromSlice(l.types, elems)
}

func (l *List) Equal(other *List) (bool, error) {
	if !l.types.Equal(other.types) {
		return false, typesMismatch(l.types, other.types)
	}
	return slices.EqualFunc(l.elems, other.elems, elemsEqual), nil
}

func (l *List) NotEqual(other *List) (bool, error) {
	eq, err := l.Equal(other)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// Compare compares l and other lexicographically: the first differing element decides,
// if one list is a prefix of the other, the shorter one is less.
func (l *List) Compare(other *List) (int, error) {
	if !l.types.Equal(other.types) {
		return 0, typesMismatch(l.types, other.types)
	}
	for i := 0; i < len(l.elems) && i < len(other.elems); i++ {
		c, err := compareElems(l.elems[i], other.elems[i])
		if err != nil {
			return 0, fmt.Errorf("index %d: %w", i, err)
		}
		if c != 0 {
			return c, nil
		}
	}
	return cmp.Compare(len(l.elems), len(other.elems)), nil
}

func (l *List) compareWith(other *List, accept func(c int) bool) (bool, error) {
	c, err := l.Compare(other)
	if err != nil {
		return false, err
	}
	return accept(c), nil
}

func (l *List) Less(other *List) (bool, error) {
	return l.compareWith(other, func(c int) bool { return c < 0 })
}

func (l *List) LessEqual(other *List) (bool, error) {
	return l.compareWith(other, func(c int) bool { return c <= 0 })
}

func (l *List) Greater(other *List) (bool, error) {
	return l.compareWith(other, func(c int) bool { return c > 0 })
}

func (l *List) GreaterEqual(other *List) (bool, error) {
	return l.compareWith(other, func(c int) bool { return c >= 0 })
}

// Diff returns the position-wise changes needed to turn l into other
func (l *List) Diff(other *List) (diff.Changelog, error) {
	if !l.types.Equal(other.types) {
		return nil, typesMismatch(l.types, other.types)
	}
	cl, err := diff.Diff(l.elems, other.elems, diff.SliceOrdering(true))
	if err != nil {
		return nil, fmt.Errorf("diff: %w", err)
	}
	return cl, nil
}
