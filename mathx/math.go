package mathx

import (
	"math"

	"golang.org/x/exp/constraints"
)

func Min[T constraints.Ordered](v1 T, v2 T) T {
	if v1 < v2 {
		return v1
	}
	return v2
}

func Max[T constraints.Ordered](v1 T, v2 T) T {
	if v1 > v2 {
		return v1
	}
	return v2
}

func RoundPlaces(v float64, places int) float64 {
	if places < 0 {
		return v
	}
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

// Lerp interpolates linearly between lower and upper; frac is expected in [0, 1]
func Lerp(lower, upper float64, frac float64) float64 {
	return lower + frac*(upper-lower)
}
