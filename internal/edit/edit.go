// Package edit implements the text editor of §4.3: the three sequential
// passes — adjust, fuse misspells, detect swaps — that turn the text
// former's correct/missing/extra stream into the final user-facing
// annotation.
package edit

import "github.com/gotypo/typocore/internal/text"

// MakeUserFriendly runs the three passes in order (§4.3). Applying it twice
// is a no-op: the second call finds nothing left to adjust, fuse, or swap
// (§8 invariant 5).
func MakeUserFriendly(t text.Text) text.Text {
	out := adjust(t)
	out = fuseMisspells(out)
	out = detectSwaps(out)
	return out
}
