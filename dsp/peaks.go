package dsp

import "sort"

// FindPeaks locates local maxima in series that are at least minHeight tall
// and at least minDistance indices apart. A peak is a sample strictly greater
// than both of its neighbors; the first and last samples are never peaks.
//
// When two candidates fall closer than minDistance, the taller one wins. If
// they are exactly equal in height the earlier index survives. Returned
// indices are strictly ascending.
func FindPeaks(series []float64, minHeight float64, minDistance int) []int {
	if minDistance < 1 {
		minDistance = 1
	}

	var candidates []int
	for i := 1; i+1 < len(series); i++ {
		if series[i] > series[i-1] && series[i] > series[i+1] && series[i] >= minHeight {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) <= 1 {
		return candidates
	}

	// Rank candidates tallest first; equal heights rank the earlier index
	// first so it is the one that survives suppression.
	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ha := series[candidates[order[a]]]
		hb := series[candidates[order[b]]]
		if ha != hb {
			return ha > hb
		}
		return candidates[order[a]] < candidates[order[b]]
	})

	suppressed := make([]bool, len(candidates))
	kept := make([]int, 0, len(candidates))

	for _, ci := range order {
		if suppressed[ci] {
			continue
		}
		idx := candidates[ci]
		kept = append(kept, idx)

		// Knock out weaker candidates closer than minDistance on both sides.
		for j := ci - 1; j >= 0 && idx-candidates[j] < minDistance; j-- {
			suppressed[j] = true
		}
		for j := ci + 1; j < len(candidates) && candidates[j]-idx < minDistance; j++ {
			suppressed[j] = true
		}
	}

	sort.Ints(kept)
	return kept
}
