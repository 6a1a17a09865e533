package dynlist

import (
	"fmt"
	"math"
	"slices"

	"github.com/mazzegi/seqbox/convert"
	"github.com/mazzegi/seqbox/maps"
	"github.com/mazzegi/seqbox/mathx"
	"github.com/mazzegi/seqbox/slicesx"
)

var percentileRange = mathx.NewRange(0.0, 100.0)

// numbers returns the elements as floats, after checking that statistics apply to l at all
func (l *List) numbers() ([]float64, error) {
	if len(l.elems) == 0 {
		return nil, ErrEmptyList
	}
	if !l.types.IsNumeric() {
		return nil, fmt.Errorf("%w: statistics require numeric types, list accepts %s", ErrWrongDataType, l.types)
	}
	fs, ok := convert.MustFloats(l.elems)
	if !ok {
		return nil, fmt.Errorf("%w: list holds non-numeric elements", ErrWrongDataType)
	}
	return fs, nil
}

func (l *List) sortedNumbers() ([]float64, error) {
	fs, err := l.numbers()
	if err != nil {
		return nil, err
	}
	slices.Sort(fs)
	return fs, nil
}

// fold reduces the elements with op, starting with the first one
func (l *List) fold(op arithOp) (any, error) {
	if _, err := l.numbers(); err != nil {
		return nil, err
	}
	acc := l.elems[0]
	for _, e := range l.elems[1:] {
		v, err := combine(op, acc, e)
		if err != nil {
			return nil, err
		}
		acc = v
	}
	return acc, nil
}

// extreme returns the element, which is better than all others; on ties the first one wins
func (l *List) extreme(better func(c int) bool) (any, error) {
	if _, err := l.numbers(); err != nil {
		return nil, err
	}
	ext := l.elems[0]
	for _, e := range l.elems[1:] {
		c, err := compareElems(e, ext)
		if err != nil {
			return nil, err
		}
		if better(c) {
			ext = e
		}
	}
	return ext, nil
}

func (l *List) Mean() (float64, error) {
	fs, err := l.numbers()
	if err != nil {
		return 0, err
	}
	return slicesx.Avg(fs), nil
}

// Median returns the middle value; for an even count the mean of the two middle values
func (l *List) Median() (float64, error) {
	fs, err := l.sortedNumbers()
	if err != nil {
		return 0, err
	}
	mid := len(fs) / 2
	if len(fs)%2 == 1 {
		return fs[mid], nil
	}
	return (fs[mid-1] + fs[mid]) / 2, nil
}

// Modes returns all most frequent values in ascending order.
// Values are counted numerically, so 2 and 2.0 count as the same value,
// represented by the element seen first. NaNs are counted as one value, sorted last.
func (l *List) Modes() ([]any, error) {
	fs, err := l.numbers()
	if err != nil {
		return nil, err
	}
	counts := map[float64]int{}
	first := map[float64]any{}
	nans := 0
	var firstNaN any
	for i, f := range fs {
		if math.IsNaN(f) {
			if nans == 0 {
				firstNaN = l.elems[i]
			}
			nans++
			continue
		}
		if _, ok := first[f]; !ok {
			first[f] = l.elems[i]
		}
		counts[f]++
	}
	top, _ := maps.MaxValue(counts)
	top = mathx.Max(top, nans)
	keys := maps.KeysWhere(counts, func(n int) bool { return n == top })
	modes := slicesx.Map(keys, func(f float64) any { return first[f] })
	if nans == top {
		modes = append(modes, firstNaN)
	}
	return modes, nil
}

// Mode returns the most frequent value; ties resolve to the smallest value
func (l *List) Mode() (any, error) {
	ms, err := l.Modes()
	if err != nil {
		return nil, err
	}
	return ms[0], nil
}

func (l *List) Min() (any, error) {
	return l.extreme(func(c int) bool { return c < 0 })
}

func (l *List) Max() (any, error) {
	return l.extreme(func(c int) bool { return c > 0 })
}

// Sum is an int, if all elements are ints, otherwise a float64
func (l *List) Sum() (any, error) {
	return l.fold(opAdd)
}

// Product is an int, if all elements are ints, otherwise a float64
func (l *List) Product() (any, error) {
	return l.fold(opMul)
}

// Range returns Max - Min
func (l *List) Range() (any, error) {
	min, err := l.Min()
	if err != nil {
		return nil, err
	}
	max, err := l.Max()
	if err != nil {
		return nil, err
	}
	return combine(opSub, max, min)
}

// Variance returns the sample variance (divisor n-1). A single element has variance 0.
func (l *List) Variance() (float64, error) {
	fs, err := l.numbers()
	if err != nil {
		return 0, err
	}
	if len(fs) == 1 {
		return 0, nil
	}
	mean := slicesx.Avg(fs)
	var sumSq float64
	for _, f := range fs {
		d := f - mean
		sumSq += d * d
	}
	return sumSq / float64(len(fs)-1), nil
}

func (l *List) Std() (float64, error) {
	v, err := l.Variance()
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// Percentile returns the p-th percentile, p in [0, 100], interpolating linearly between the closest ranks.
func (l *List) Percentile(p float64) (float64, error) {
	fs, err := l.sortedNumbers()
	if err != nil {
		return 0, err
	}
	if !percentileRange.Contains(p) {
		return 0, fmt.Errorf("%w: percentile %v not in %s", ErrUnknownValue, p, percentileRange)
	}
	return percentileOf(fs, p), nil
}

// percentileOf expects sorted to be sorted and not empty
func percentileOf(sorted []float64, p float64) float64 {
	rank := p / 100 * float64(len(sorted)-1)
	lower := int(rank)
	upper := mathx.Min(lower+1, len(sorted)-1)
	return mathx.Lerp(sorted[lower], sorted[upper], rank-float64(lower))
}

// CumulativeSum returns a new list holding the running totals of l
func (l *List) CumulativeSum() (*List, error) {
	if _, err := l.numbers(); err != nil {
		return nil, err
	}
	sums := make([]any, len(l.elems))
	var acc any = 0
	for i, e := range l.elems {
		v, err := combine(opAdd, acc, e)
		if err != nil {
			return nil, err
		}
		sums[i], acc = v, v
	}
	return FromSlice(l.types, sums)
}

// Normalize scales all elements to [0, 1] by (x - min) / (max - min). The result accepts numbers.
func (l *List) Normalize() (*List, error) {
	fs, err := l.numbers()
	if err != nil {
		return nil, err
	}
	min, max := slices.Min(fs), slices.Max(fs)
	if min == max {
		return nil, fmt.Errorf("%w: cannot normalize a constant list", ErrUnknownValue)
	}
	scaled := slicesx.Map(fs, func(f float64) any {
		return (f - min) / (max - min)
	})
	return FromSlice(Numeric, scaled)
}

// Describe computes a summary of the descriptive statistics of l
func (l *List) Describe() (Summary, error) {
	fs, err := l.sortedNumbers()
	if err != nil {
		return Summary{}, err
	}
	std, err := l.Std()
	if err != nil {
		return Summary{}, err
	}
	variance, err := l.Variance()
	if err != nil {
		return Summary{}, err
	}
	min, max := fs[0], fs[len(fs)-1]
	return Summary{
		types:    l.types,
		Count:    len(fs),
		Mean:     slicesx.Avg(fs),
		Std:      std,
		Variance: variance,
		Min:      min,
		P25:      percentileOf(fs, 25),
		P50:      percentileOf(fs, 50),
		P75:      percentileOf(fs, 75),
		Max:      max,
		Range:    max - min,
	}, nil
}
