package mathx

import (
	"testing"

	"github.com/mazzegi/seqbox/testx"
)

type roundTest struct {
	in     float64
	places int
	exp    float64
}

func TestRoundPlaces(t *testing.T) {
	tests := []roundTest{
		{34.4561, 2, 34.46},
		{5.4999, 3, 5.500},
		{12.12, 0, 12.0},
		{12.512, 2, 12.51},
		{15.11622, 3, 15.116},
		{-1.5, -1, -1.5},
	}
	testx.RunTests(testx.NewTx(t), tests, func(tx *testx.Tx, test roundTest) {
		tx.AssertEqual(test.exp, RoundPlaces(test.in, test.places))
	})
}

func TestLerp(t *testing.T) {
	tx := testx.NewTx(t)
	tx.AssertEqual(15.0, Lerp(10, 20, 0.5))
	tx.AssertEqual(10.0, Lerp(10, 20, 0))
	tx.AssertEqual(38.0, Lerp(38, 38, 0.25))
}

func TestRange(t *testing.T) {
	tx := testx.NewTx(t)
	r := NewRange(0.0, 100.0)
	tx.AssertEqual(true, r.Contains(0))
	tx.AssertEqual(true, r.Contains(100))
	tx.AssertEqual(false, r.Contains(-1))
	tx.AssertEqual(false, r.Contains(101))
	tx.AssertEqual("[0, 100]", r.String())
}
