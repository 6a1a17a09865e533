package errorx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mazzegi/seqbox/testx"
)

var errProbe = errors.New("probe")

func TestGroup(t *testing.T) {
	tx := testx.NewTx(t)
	g := NewGroup(nil)
	tx.AssertEqual(true, g.IsEmpty())
	tx.AssertNoErr(g.Err())

	g.Append(fmt.Errorf("index 1: %w", errProbe), nil, fmt.Errorf("index 4: %w", errProbe))
	tx.AssertEqual(2, g.Len())
	err := g.Err()
	tx.AssertErrIs(err, errProbe)
	tx.AssertEqual("index 1: probe\nindex 4: probe", err.Error())
}
