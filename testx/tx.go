package testx

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func NewTx(t *testing.T) *Tx {
	return &Tx{t: t}
}

type Tx struct {
	t *testing.T
}

func (tx *Tx) T() *testing.T {
	return tx.t
}

func (tx *Tx) AssertEqual(want, have any) {
	tx.t.Helper()
	if reflect.DeepEqual(want, have) {
		return
	}
	tx.t.Fatalf("want %v (%T), have %v (%T)", want, want, have, have)
}

func (tx *Tx) AssertNoErr(err error) {
	tx.t.Helper()
	if err == nil {
		return
	}
	tx.t.Fatalf("error is not-nil but: %v", err)
}

func (tx *Tx) AssertErr(err error) {
	tx.t.Helper()
	if err != nil {
		return
	}
	tx.t.Fatalf("expect err; got none")
}

// AssertErrIs fails, if err doesn't match target in terms of errors.Is
func (tx *Tx) AssertErrIs(err error, target error) {
	tx.t.Helper()
	if errors.Is(err, target) {
		return
	}
	tx.t.Fatalf("expect err %q; got %v", target, err)
}

// AssertInDelta fails, if have differs from want by more than delta
func (tx *Tx) AssertInDelta(want, have, delta float64) {
	tx.t.Helper()
	if math.Abs(want-have) <= delta {
		return
	}
	tx.t.Fatalf("want %v (+/- %v), have %v", want, delta, have)
}
