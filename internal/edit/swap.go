package edit

import (
	"github.com/gotypo/typocore/internal/align"
	"github.com/gotypo/typocore/internal/text"
)

// detectSwaps implements the swap-detection pass of §4.3: scanning right to
// left avoids invalidating not-yet-visited indices when a missing position
// is deleted out from under an extra/correct/missing triple.
func detectSwaps(t text.Text) text.Text {
	out := make(text.Text, len(t))
	copy(out, t)

	for i := len(out) - 2; i >= 1; i-- {
		if i+1 >= len(out) {
			continue
		}
		left, mid, right := out[i-1], out[i], out[i+1]
		if left.Type != text.Extra || mid.Type != text.Correct || right.Type != text.Missing {
			continue
		}
		if align.FoldRune(left.Raw) != align.FoldRune(right.Raw) {
			continue
		}
		out[i-1].Type = text.SwappedLeft
		out[i-1].CaseState = text.CaseUnset
		out[i].Type = text.SwappedRight
		out[i].CaseState = text.CaseUnset
		out = append(out[:i+1], out[i+2:]...)
	}
	return out
}
