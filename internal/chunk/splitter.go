// Package chunk pre-splits long input into caller-sized pieces before they
// reach typocore.Analyze. Splitting a long input isn't the core's job
// (§1's Non-goal, §5's "implementations SHOULD ... pre-split inputs") but
// giving callers a correct splitter to reach for is.
package chunk

import "github.com/rivo/uniseg"

// maxWords is the default per-chunk word budget.
const maxWords = 300

// Split300 slices s into chunks of at most 300 words, breaking only on
// whitespace boundaries between Unicode grapheme clusters. Unlike a
// byte-level scan for ASCII space/newline, this never splits inside a
// combining-character sequence (an accented letter built from a base rune
// plus combining marks, a flag emoji, ...), so a chunk boundary can't land
// in the middle of what a renderer would show as one character.
func Split300(s string) []string {
	return Split(s, maxWords)
}

// Split slices s into chunks of at most maxWords words each.
func Split(s string, maxWords int) []string {
	if maxWords <= 0 {
		maxWords = 1
	}

	hint := len(s)/(maxWords*6) + 1
	res := make([]string, 0, hint)

	gr := uniseg.NewGraphemes(s)
	start := 0
	pos := 0
	words := 0
	inWord := false

	for gr.Next() {
		cluster := gr.Str()
		clusterStart := pos
		pos += len(cluster)

		if isWhitespaceCluster(cluster) {
			if inWord {
				words++
				inWord = false
				if words == maxWords {
					res = append(res, s[start:clusterStart])
					start = clusterStart
					words = 0
				}
			}
			continue
		}
		inWord = true
	}

	// trailing slice (always appended; empty only when s is empty)
	res = append(res, s[start:])
	return res
}

func isWhitespaceCluster(cluster string) bool {
	for _, r := range cluster {
		switch r {
		case ' ', '\n', '\t', '\r':
			return true
		default:
			return false
		}
	}
	return false
}
