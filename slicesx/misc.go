package slicesx

// Cycle returns a new slice holding ts count times in a row. A count <= 0 results in an empty slice.
func Cycle[S ~[]E, E any](ts S, count int) []E {
	if count <= 0 {
		return []E{}
	}
	cs := make([]E, 0, len(ts)*count)
	for i := 0; i < count; i++ {
		cs = append(cs, ts...)
	}
	return cs
}

// Reversed returns a reversed copy of ts
func Reversed[S ~[]E, E any](ts S) []E {
	rs := make([]E, len(ts))
	for i, t := range ts {
		rs[len(ts)-1-i] = t
	}
	return rs
}
