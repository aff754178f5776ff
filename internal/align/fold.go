package align

import (
	"golang.org/x/text/cases"
)

var folder = cases.Fold()

// Fold case-folds a string for match-decision purposes only; it never
// appears in output (output carries the original runes, with case
// mismatches recorded separately via text.CaseState — §9's "case-aware
// equality" note).
func Fold(s string) string { return folder.String(s) }

// FoldRune case-folds a single rune the same way Fold folds a string.
// Used when comparing individual characters (§4.3's rotation and swap
// passes) without paying for a full string round-trip.
func FoldRune(r rune) rune {
	folded := []rune(folder.String(string(r)))
	if len(folded) == 0 {
		return r
	}
	return folded[0]
}
