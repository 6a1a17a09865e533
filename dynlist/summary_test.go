package dynlist

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/mazzegi/seqbox/testx"
	"golang.org/x/text/language"
)

func TestDescribe(t *testing.T) {
	tx := testx.NewTx(t)
	s, err := sample(t).Describe()
	tx.AssertNoErr(err)

	tx.AssertEqual(8, s.Count)
	tx.AssertEqual(25.25, s.Mean)
	tx.AssertInDelta(228.5, s.Variance, 1e-9)
	tx.AssertInDelta(15.1162, s.Std, 1e-4)
	tx.AssertEqual(2.0, s.Min)
	tx.AssertEqual(18.25, s.P25)
	tx.AssertEqual(23.0, s.P50)
	tx.AssertEqual(38.0, s.P75)
	tx.AssertEqual(47.0, s.Max)
	tx.AssertEqual(45.0, s.Range)

	r := s.Rounded(3)
	tx.AssertEqual(15.116, r.Std)
	tx.AssertEqual(228.5, r.Variance)
	tx.AssertEqual(8, r.Count)
}

func TestDescribeSnapshot(t *testing.T) {
	tx := testx.NewTx(t)
	l := sample(t)
	s, err := l.Describe()
	tx.AssertNoErr(err)
	tx.AssertNoErr(l.Append(1000))
	tx.AssertEqual(8, s.Count)
	tx.AssertEqual(9, l.Len())
}

func TestSummaryString(t *testing.T) {
	tx := testx.NewTx(t)
	s, err := sample(t).Describe()
	tx.AssertNoErr(err)

	out := s.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	tx.AssertEqual(12, len(lines))
	tx.AssertEqual("Summary Statistics (int, float)", lines[0])
	tx.AssertEqual(strings.Repeat("-", 35), lines[1])
	tx.AssertEqual("  count : 8", lines[2])
	tx.AssertEqual("   mean : 25.25", lines[3])
	tx.AssertEqual("    std : 15.116", lines[4])
	tx.AssertEqual("    75% : 38", lines[9])
	tx.AssertEqual("  range : 45", lines[11])
}

func TestSummaryCountNotGrouped(t *testing.T) {
	tx := testx.NewTx(t)
	s := Summary{types: IntType, Count: 1500}
	tx.AssertEqual(true, strings.Contains(s.String(), "  count : 1500\n"))
	tx.AssertEqual(true, strings.Contains(s.Render(language.German, 2), "  count : 1500\n"))
}

func TestSummaryRenderGerman(t *testing.T) {
	tx := testx.NewTx(t)
	s, err := sample(t).Describe()
	tx.AssertNoErr(err)

	out := s.Render(language.German, 2)
	tx.AssertEqual(true, strings.Contains(out, "mean : 25,25\n"))
	tx.AssertEqual(true, strings.Contains(out, "std : 15,12\n"))
}

func TestSummaryJSON(t *testing.T) {
	tx := testx.NewTx(t)
	s, err := mustList(t, IntType, 1, 2, 3).Describe()
	tx.AssertNoErr(err)

	bs, err := json.Marshal(s)
	tx.AssertNoErr(err)
	var m map[string]float64
	tx.AssertNoErr(json.Unmarshal(bs, &m))
	tx.AssertEqual(3.0, m["count"])
	tx.AssertEqual(2.0, m["mean"])
	tx.AssertEqual(1.0, m["var"])
	tx.AssertEqual(2.0, m["50%"])
	tx.AssertEqual(10, len(m))
}
