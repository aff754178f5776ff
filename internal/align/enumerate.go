package align

// combinationsWithRepetition returns every non-decreasing length-k
// sequence drawn from positions (itself ascending), in lexicographic
// order. This is the "within one raw sequence, the positions chosen for
// successive occurrences of the same compared character form a
// non-decreasing sequence" constraint of §4.1 — it prunes pure
// permutations of identical characters, which cannot win the eventual LIS
// tie-break (the LIS step enforces strict increase, so repeated values
// collapse there, not here) but would otherwise inflate enumeration cost
// by a factor of k!.
//
// The count returned is C(m+k-1, k) where m = len(positions).
func combinationsWithRepetition(positions []int, k int) [][]int {
	if k == 0 {
		return [][]int{{}}
	}
	if len(positions) == 0 {
		return nil
	}

	var out [][]int
	cur := make([]int, 0, k)

	var rec func(start int)
	rec = func(start int) {
		if len(cur) == k {
			seq := make([]int, k)
			copy(seq, cur)
			out = append(out, seq)
			return
		}
		for j := start; j < len(positions); j++ {
			cur = append(cur, positions[j])
			rec(j)
			cur = cur[:len(cur)-1]
		}
	}
	rec(0)
	return out
}
