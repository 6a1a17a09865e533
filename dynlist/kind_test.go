package dynlist

import (
	"testing"

	"github.com/mazzegi/seqbox/testx"
)

func TestKindOf(t *testing.T) {
	tests := map[string]struct {
		in  any
		exp Kind
	}{
		"int":     {in: 3, exp: Int},
		"float":   {in: 3.5, exp: Float},
		"string":  {in: "a", exp: String},
		"bool":    {in: false, exp: Bool},
		"int64":   {in: int64(3), exp: Invalid},
		"float32": {in: float32(1), exp: Invalid},
		"nil":     {in: nil, exp: Invalid},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			testx.NewTx(t).AssertEqual(test.exp, KindOf(test.in))
		})
	}
}

func TestTypes(t *testing.T) {
	tx := testx.NewTx(t)

	tx.AssertEqual(true, Numeric.Allows(1))
	tx.AssertEqual(true, Numeric.Allows(1.5))
	tx.AssertEqual(false, Numeric.Allows("1"))
	tx.AssertEqual(false, Numeric.Allows(true))
	tx.AssertEqual(false, IntType.Allows(1.0))
	tx.AssertEqual(false, TypesOf().Allows(1))

	tx.AssertEqual(true, TypesOf(Float, Int).Equal(Numeric))
	tx.AssertEqual(false, IntType.Equal(Numeric))
	tx.AssertEqual(true, TypesOf(Int, Invalid).Equal(IntType))

	tx.AssertEqual(true, Numeric.IsNumeric())
	tx.AssertEqual(true, FloatType.IsNumeric())
	tx.AssertEqual(false, TypesOf(Int, String).IsNumeric())
	tx.AssertEqual(false, TypesOf().IsNumeric())

	tx.AssertEqual([]Kind{Int, Float}, TypesOf(Float, Int).Kinds())
	tx.AssertEqual("(int, float)", Numeric.String())
	tx.AssertEqual("str", StringType.String())
}
