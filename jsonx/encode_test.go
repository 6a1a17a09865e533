package jsonx

import (
	"bytes"
	"testing"

	"github.com/mazzegi/seqbox/testx"
)

func TestEncode(t *testing.T) {
	tx := testx.NewTx(t)
	v := struct {
		Count int     `json:"count"`
		Mean  float64 `json:"mean"`
	}{Count: 3, Mean: 2.5}

	var buf bytes.Buffer
	tx.AssertNoErr(Encode(&buf, v, false))
	tx.AssertEqual("{\"count\":3,\"mean\":2.5}\n", buf.String())

	buf.Reset()
	tx.AssertNoErr(Encode(&buf, v, true))
	tx.AssertEqual("{\n  \"count\": 3,\n  \"mean\": 2.5\n}\n", buf.String())

	tx.AssertErr(Encode(&buf, make(chan int), false))
}
