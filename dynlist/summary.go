package dynlist

import (
	"strconv"
	"strings"

	"github.com/mazzegi/seqbox/mathx"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultPlaces is the number of decimal places used by Summary.String
const DefaultPlaces = 3

// Summary is a snapshot of the descriptive statistics of a list
type Summary struct {
	types    Types
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Std      float64 `json:"std"`
	Variance float64 `json:"var"`
	Min      float64 `json:"min"`
	P25      float64 `json:"25%"`
	P50      float64 `json:"50%"`
	P75      float64 `json:"75%"`
	Max      float64 `json:"max"`
	Range    float64 `json:"range"`
}

// Rounded returns a copy of s with all float values rounded to places
func (s Summary) Rounded(places int) Summary {
	r := func(v float64) float64 {
		return mathx.RoundPlaces(v, places)
	}
	return Summary{
		types:    s.types,
		Count:    s.Count,
		Mean:     r(s.Mean),
		Std:      r(s.Std),
		Variance: r(s.Variance),
		Min:      r(s.Min),
		P25:      r(s.P25),
		P50:      r(s.P50),
		P75:      r(s.P75),
		Max:      r(s.Max),
		Range:    r(s.Range),
	}
}

type summaryLine struct {
	label string
	value any
}

func (s Summary) lines() []summaryLine {
	return []summaryLine{
		{"count", strconv.Itoa(s.Count)},
		{"mean", s.Mean},
		{"std", s.Std},
		{"var", s.Variance},
		{"min", s.Min},
		{"25%", s.P25},
		{"50%", s.P50},
		{"75%", s.P75},
		{"max", s.Max},
		{"range", s.Range},
	}
}

func (s Summary) String() string {
	return s.Render(language.English, DefaultPlaces)
}

// Render renders s as a labeled block, values rounded to places and formatted for lang.
// The count is never grouped.
func (s Summary) Render(lang language.Tag, places int) string {
	p := message.NewPrinter(lang)
	var sb strings.Builder
	sb.WriteString("Summary Statistics " + s.types.String() + "\n")
	sb.WriteString(strings.Repeat("-", 35) + "\n")
	for _, ln := range s.Rounded(places).lines() {
		sb.WriteString(p.Sprintf("%7s : %v\n", ln.label, ln.value))
	}
	return sb.String()
}
