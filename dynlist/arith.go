package dynlist

import (
	"cmp"
	"fmt"
	"math"
)

type arithOp int

const (
	opAdd arithOp = iota
	opSub
	opMul
)

func (op arithOp) String() string {
	switch op {
	case opAdd:
		return "+"
	case opSub:
		return "-"
	default:
		return "*"
	}
}

func apply[T int | float64](op arithOp, a, b T) T {
	switch op {
	case opAdd:
		return a + b
	case opSub:
		return a - b
	default:
		return a * b
	}
}

// applyInt applies op to a and b; false, if the result doesn't fit into an int
func applyInt(op arithOp, a, b int) (int, bool) {
	switch op {
	case opAdd:
		c := a + b
		if (b > 0 && c < a) || (b < 0 && c > a) {
			return 0, false
		}
		return c, true
	case opSub:
		c := a - b
		if (b > 0 && c > a) || (b < 0 && c < a) {
			return 0, false
		}
		return c, true
	default:
		if a == 0 || b == 0 {
			return 0, true
		}
		if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
			return 0, false
		}
		c := a * b
		if c/b != a {
			return 0, false
		}
		return c, true
	}
}

// combine applies op to a and b. Two ints yield an int, any other numeric pair a float64.
// Int results which overflow fail with ErrArithmetic. Strings only support "+".
func combine(op arithOp, a, b any) (any, error) {
	switch av := a.(type) {
	case int:
		switch bv := b.(type) {
		case int:
			c, ok := applyInt(op, av, bv)
			if !ok {
				return nil, fmt.Errorf("%w: int overflow in %d %s %d", ErrArithmetic, av, op, bv)
			}
			return c, nil
		case float64:
			return apply(op, float64(av), bv), nil
		}
	case float64:
		switch bv := b.(type) {
		case int:
			return apply(op, av, float64(bv)), nil
		case float64:
			return apply(op, av, bv), nil
		}
	case string:
		if bv, ok := b.(string); ok && op == opAdd {
			return av + bv, nil
		}
	}
	return nil, fmt.Errorf("%w: %s %s %s", ErrArithmetic, KindOf(a), op, KindOf(b))
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// compareElems orders numbers numerically (int vs. float included), strings lexically and false before true.
func compareElems(a, b any) (int, error) {
	switch av := a.(type) {
	case int:
		switch bv := b.(type) {
		case int:
			return cmp.Compare(av, bv), nil
		case float64:
			return cmp.Compare(float64(av), bv), nil
		}
	case float64:
		switch bv := b.(type) {
		case int:
			return cmp.Compare(av, float64(bv)), nil
		case float64:
			return cmp.Compare(av, bv), nil
		}
	case string:
		if bv, ok := b.(string); ok {
			return cmp.Compare(av, bv), nil
		}
	case bool:
		if bv, ok := b.(bool); ok {
			return cmp.Compare(boolRank(av), boolRank(bv)), nil
		}
	}
	return 0, fmt.Errorf("%w: cannot order %s and %s", ErrWrongDataType, KindOf(a), KindOf(b))
}

func elemsEqual(a, b any) bool {
	c, err := compareElems(a, b)
	return err == nil && c == 0
}
