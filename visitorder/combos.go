package visitorder

import "sort"

// popcountMasks returns every mask in [0, 2^n) sorted by population count
// descending, with numeric order as the tie-break — the solver tries to
// visit as many obstacles as possible before degrading.
func popcountMasks(n int) []int {
	total := 1 << uint(n)
	masks := make([]int, total)
	for i := range masks {
		masks[i] = i
	}
	sort.SliceStable(masks, func(i, j int) bool {
		pi, pj := popcount(masks[i]), popcount(masks[j])
		if pi != pj {
			return pi > pj
		}
		return masks[i] < masks[j]
	})
	return masks
}

func popcount(m int) int {
	n := 0
	for m != 0 {
		n += m & 1
		m >>= 1
	}
	return n
}

// generateCombinations enumerates every selection (c_1, ..., c_m) with
// c_i in [0, counts[i]), depth-first. iterations bounds recursion the same
// way the original Python implementation does: the budget is decremented
// once per call and the same decremented value is handed to every sibling
// call at that level, rather than threaded as a single counter shared
// across the whole tree. For the obstacle counts this pipeline handles
// (depth <= 8) that budget is never exhausted in practice — preserved
// verbatim rather than "fixed" into a true shared counter, since a reader
// of the original would recognize the quirk as deliberate-enough to leave
// alone. See DESIGN.md.
func generateCombinations(counts []int, iterations int) [][]int {
	var result [][]int
	current := make([]int, 0, len(counts))

	var rec func(index, numIters int)
	rec = func(index, numIters int) {
		if index == len(counts) {
			combo := make([]int, len(current))
			copy(combo, current)
			result = append(result, combo)
			return
		}
		if numIters == 0 {
			return
		}
		numIters--

		for i := 0; i < counts[index]; i++ {
			current = append(current, i)
			rec(index+1, numIters)
			current = current[:len(current)-1]
		}
	}
	rec(0, iterations)
	return result
}
