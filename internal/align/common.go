package align

// CountCommonChars returns Σ min(count_c(ch), count_a(ch)) after
// case-folding — the cheap fallback counter §4.1 defines and §4.2's quick
// compliance gate consumes. It is symmetric in its two arguments and
// invariant under letter-case changes (§8 invariant 3), since both sides
// are folded before counting.
func CountCommonChars(c, a string) int {
	ac := make(map[rune]int, len(a))
	for _, r := range a {
		ac[FoldRune(r)]++
	}

	total := 0
	cc := make(map[rune]int, len(c))
	for _, r := range c {
		cc[FoldRune(r)]++
	}
	for r, n := range cc {
		if m := ac[r]; m > 0 {
			if n < m {
				total += n
			} else {
				total += m
			}
		}
	}
	return total
}
