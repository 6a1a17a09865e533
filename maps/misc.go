package maps

import (
	"sort"

	"golang.org/x/exp/constraints"
)

func OrderedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	ks := make([]K, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Slice(ks, func(i, j int) bool {
		return ks[i] < ks[j]
	})
	return ks
}

// KeysWhere returns the keys, whose values are accepted by fnc, in ascending order
func KeysWhere[K constraints.Ordered, V any](m map[K]V, fnc func(v V) bool) []K {
	var ks []K
	for _, k := range OrderedKeys(m) {
		if fnc(m[k]) {
			ks = append(ks, k)
		}
	}
	return ks
}

// MaxValue returns the greatest value of m; false if m is empty
func MaxValue[K comparable, V constraints.Ordered](m map[K]V) (V, bool) {
	var max V
	found := false
	for _, v := range m {
		if !found || v > max {
			max = v
			found = true
		}
	}
	return max, found
}
