package slicesx

import "slices"

func DedupFnc[S ~[]E, E any](ts S, eqFnc func(t1, t2 E) bool) []E {
	dts := []E{}
	for _, te := range ts {
		if !slices.ContainsFunc(dts, func(t E) bool {
			return eqFnc(te, t)
		}) {
			dts = append(dts, te)
		}
	}
	return dts
}
