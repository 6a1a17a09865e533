// Package dynlist provides List, an ordered container which only accepts elements of a fixed set of kinds.
// Besides the usual list operations it offers element-wise arithmetic, comparison and descriptive statistics.
//
// A List is not safe for concurrent use.
package dynlist

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/mazzegi/seqbox/convert"
	"github.com/mazzegi/seqbox/errorx"
	"github.com/mazzegi/seqbox/slicesx"
)

type List struct {
	types Types
	elems []any
}

// New returns an empty list accepting elements of types
func New(types Types) *List {
	return &List{
		types: types,
		elems: []any{},
	}
}

// NewNumeric returns an empty list accepting ints and floats
func NewNumeric() *List {
	return New(Numeric)
}

// FromSlice builds a list from s. Every element is validated up front;
// if any is rejected, no list is built and the error names all offending indices.
func FromSlice[S ~[]E, E any](types Types, s S) (*List, error) {
	g := errorx.NewGroup()
	elems := make([]any, len(s))
	for i, e := range s {
		v := any(e)
		if !types.Allows(v) {
			g.Append(fmt.Errorf("index %d: %w", i, invalidElement(types, v)))
			continue
		}
		elems[i] = v
	}
	if err := g.Err(); err != nil {
		return nil, err
	}
	return &List{
		types: types,
		elems: elems,
	}, nil
}

// Of is FromSlice for a variadic list of values
func Of(types Types, vs ...any) (*List, error) {
	return FromSlice(types, vs)
}

// derive builds a list of the same types from elems, which are known to be valid; elems is taken over.
func (l *List) derive(elems []any) *List {
	if elems == nil {
		elems = []any{}
	}
	return &List{
		types: l.types,
		elems: elems,
	}
}

// ToSlice returns a copy of the elements
func (l *List) ToSlice() []any {
	return slices.Clone(l.elems)
}

func (l *List) Types() Types {
	return l.types
}

func (l *List) Len() int {
	return len(l.elems)
}

func (l *List) IsEmpty() bool {
	return len(l.elems) == 0
}

func (l *List) String() string {
	return "[" + strings.Join(slicesx.Map(l.elems, convert.ToLiteral), ", ") + "]"
}

func (l *List) validate(v any) error {
	if !l.types.Allows(v) {
		return invalidElement(l.types, v)
	}
	return nil
}

func (l *List) checkIndex(index int) error {
	if index < 0 || index >= len(l.elems) {
		return indexOutOfRange(index, len(l.elems))
	}
	return nil
}

func (l *List) Append(v any) error {
	if err := l.validate(v); err != nil {
		return err
	}
	l.elems = append(l.elems, v)
	return nil
}

// Extend appends all vs, or none of them if any is rejected
func (l *List) Extend(vs ...any) error {
	ext, err := FromSlice(l.types, vs)
	if err != nil {
		return err
	}
	l.elems = append(l.elems, ext.elems...)
	return nil
}

// Insert inserts v before index. Index Len() appends.
// The index is checked before the type of v.
func (l *List) Insert(index int, v any) error {
	if index < 0 || index > len(l.elems) {
		return indexOutOfRange(index, len(l.elems))
	}
	if err := l.validate(v); err != nil {
		return err
	}
	l.elems = slices.Insert(l.elems, index, v)
	return nil
}

// Set replaces the element at index. The index is checked before the type of v.
func (l *List) Set(index int, v any) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	if err := l.validate(v); err != nil {
		return err
	}
	l.elems[index] = v
	return nil
}

func (l *List) Get(index int) (any, error) {
	if err := l.checkIndex(index); err != nil {
		return nil, err
	}
	return l.elems[index], nil
}

func (l *List) Delete(index int) error {
	_, err := l.Pop(index)
	return err
}

// Pop removes and returns the element at index
func (l *List) Pop(index int) (any, error) {
	if err := l.checkIndex(index); err != nil {
		return nil, err
	}
	v := l.elems[index]
	l.elems = slices.Delete(l.elems, index, index+1)
	return v, nil
}

func (l *List) PopLast() (any, error) {
	return l.Pop(len(l.elems) - 1)
}

func (l *List) Clear() {
	l.elems = []any{}
}

// Slice returns a new list holding a copy of the elements [start, end)
func (l *List) Slice(start, end int) (*List, error) {
	if start < 0 || start > len(l.elems) {
		return nil, indexOutOfRange(start, len(l.elems))
	}
	if end < start || end > len(l.elems) {
		return nil, indexOutOfRange(end, len(l.elems))
	}
	return l.derive(slices.Clone(l.elems[start:end])), nil
}

// IndexOf returns the position of the first element equal to v
func (l *List) IndexOf(v any) (int, error) {
	for i, e := range l.elems {
		if elemsEqual(e, v) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s not in list", ErrUnknownValue, convert.ToLiteral(v))
}

func (l *List) Contains(v any) bool {
	_, err := l.IndexOf(v)
	return err == nil
}

// Count returns the number of elements equal to v
func (l *List) Count(v any) int {
	n := 0
	for _, e := range l.elems {
		if elemsEqual(e, v) {
			n++
		}
	}
	return n
}

// All iterates over index/element pairs in order
func (l *List) All() iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		for i, e := range l.elems {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Values iterates over the elements in order
func (l *List) Values() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, e := range l.elems {
			if !yield(e) {
				return
			}
		}
	}
}
