package dynlist

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidElementType = errors.New("invalid element type")
	ErrEmptyList          = errors.New("empty list")
	ErrWrongDataType      = errors.New("wrong data type")
	ErrLengthNotEqual     = errors.New("length not equal")
	ErrIndexOutOfRange    = errors.New("index out of range")
	ErrUnknownValue       = errors.New("unknown value")
	ErrArithmetic         = errors.New("unsupported arithmetic")
)

func invalidElement(types Types, v any) error {
	return fmt.Errorf("%w: list accepts %s, got %T", ErrInvalidElementType, types, v)
}

func typesMismatch(t1, t2 Types) error {
	return fmt.Errorf("%w: %s vs. %s", ErrWrongDataType, t1, t2)
}

func indexOutOfRange(index, length int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, length)
}
