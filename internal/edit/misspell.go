package edit

import "github.com/gotypo/typocore/internal/text"

// fuseMisspells implements the misspell-fusion pass of §4.3: a left-to-right
// walk with two FIFO queues pairs each missing/extra position with the
// oldest still-unpaired position of the opposite kind, collapsing the pair
// into a single misspell atom at the extra's position and dropping the
// missing position.
func fuseMisspells(t text.Text) text.Text {
	var pendingMissing, pendingExtra []int
	intended := make(map[int]int) // extra idx -> missing idx
	removed := make(map[int]bool) // missing idx to drop

	for i, c := range t {
		switch c.Type {
		case text.Missing:
			if len(pendingExtra) > 0 {
				e := pendingExtra[0]
				pendingExtra = pendingExtra[1:]
				intended[e] = i
				removed[i] = true
			} else {
				pendingMissing = append(pendingMissing, i)
			}
		case text.Extra:
			if len(pendingMissing) > 0 {
				m := pendingMissing[0]
				pendingMissing = pendingMissing[1:]
				intended[i] = m
				removed[m] = true
			} else {
				pendingExtra = append(pendingExtra, i)
			}
		default:
			pendingMissing = pendingMissing[:0]
			pendingExtra = pendingExtra[:0]
		}
	}

	if len(intended) == 0 {
		return t
	}

	out := make(text.Text, 0, len(t))
	for i, c := range t {
		if removed[i] {
			continue
		}
		if mIdx, ok := intended[i]; ok {
			out = append(out, text.TypedChar{
				Raw:      c.Raw,
				Type:     text.Misspell,
				Intended: t[mIdx].Raw,
			})
			continue
		}
		out = append(out, c)
	}
	return out
}
