package typocore

import (
	"github.com/antzucaro/matchr"
	"github.com/rivo/uniseg"
)

// Similarity returns the Jaro-Winkler similarity of a and b, in [0, 1].
// It never participates in Analyze's alignment — it's a cheap pre-filter a
// caller can use to decide whether a pair is even worth sending through
// Analyze's combinatorial core (§5's cost model: allocations scale with
// the number of raw sequences enumerated, which grows with shared
// characters between the two strings).
func Similarity(a, b string) float64 {
	return matchr.JaroWinkler(a, b, false)
}

// EditDistance returns the Levenshtein distance between a and b, a coarser
// and cheaper divergence signal than Similarity when only a single integer
// is needed (e.g. for logging or ranking candidate accurate texts). Distance
// is counted in grapheme clusters rather than runes, so an accented letter
// built from a base rune plus combining marks — the same unit internal/chunk
// splits on — costs one edit, not one per combining mark.
func EditDistance(a, b string) int {
	ga, gb := graphemeClusters(a), graphemeClusters(b)
	la, lb := len(ga), len(gb)

	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// row[j] = distance(ga[:i], gb[:j])
	row := make([]int, lb+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= la; i++ {
		prev := i
		for j := 1; j <= lb; j++ {
			cost := row[j-1]
			if ga[i-1] != gb[j-1] {
				cost++ // substitute
				if row[j]+1 < cost {
					cost = row[j] + 1 // delete
				}
				if prev+1 < cost {
					cost = prev + 1 // insert
				}
			}
			row[j-1] = prev
			prev = cost
		}
		row[lb] = prev
	}
	return row[lb]
}

// graphemeClusters splits s into the same units internal/chunk.Split
// segments on, so EditDistance and a pre-split chunk boundary agree on what
// counts as one character.
func graphemeClusters(s string) []string {
	clusters := make([]string, 0, len(s))
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	return clusters
}
