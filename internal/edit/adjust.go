package edit

import (
	"github.com/gotypo/typocore/internal/align"
	"github.com/gotypo/typocore/internal/text"
)

// adjust runs the adjustment pass of §4.3: it rotates a run of identical
// correct characters past an intervening run of missing characters
// whenever a later extra character matches the run's character, so that
// the misspell-fusion pass that follows can see the missing/extra pair
// adjacent to each other. A pattern like "correct missing correct extra"
// (around identical characters) becomes "correct missing extra correct".
func adjust(t text.Text) text.Text {
	out := make(text.Text, len(t))
	copy(out, t)

	missingCount := 0
	haveTracker := false
	firstIdx, lastIdx := -1, -1
	var runChar rune

	for i := range out {
		c := out[i]
		switch c.Type {
		case text.Missing:
			missingCount++
			haveTracker = false

		case text.Correct:
			if missingCount == 0 {
				haveTracker = false
				continue
			}
			folded := align.FoldRune(c.Raw)
			switch {
			case !haveTracker:
				haveTracker = true
				firstIdx, lastIdx = i, i
				runChar = folded
			case folded == runChar:
				lastIdx = i
			default:
				haveTracker = false
				missingCount = 0
			}

		case text.Extra:
			if haveTracker && missingCount > 0 && align.FoldRune(c.Raw) == runChar {
				rotateRun(out, firstIdx, lastIdx, i)
				firstIdx++
				lastIdx = i
				missingCount--
			} else {
				haveTracker = false
				missingCount = 0
			}

		default:
			haveTracker = false
			missingCount = 0
		}
	}
	return out
}

// rotateRun relabels positions firstIdx+1..extraIdx as correct (copying
// CaseState from the previous position within the run, flipped if the raw
// characters differ exactly) and relabels firstIdx itself as extra,
// clearing its CaseState. Only Type and CaseState move; Raw stays put at
// every position — the run only ever holds copies of the same character,
// so nothing needs to physically move for the annotation to read
// correctly.
func rotateRun(out text.Text, firstIdx, lastIdx, extraIdx int) {
	for idx := extraIdx; idx > firstIdx; idx-- {
		prev := out[idx-1]
		state := prev.CaseState
		if out[idx].Raw != prev.Raw {
			state = flipCaseState(state)
		}
		out[idx].Type = text.Correct
		out[idx].CaseState = state
	}
	out[firstIdx].Type = text.Extra
	out[firstIdx].CaseState = text.CaseUnset
}

func flipCaseState(s text.CaseState) text.CaseState {
	switch s {
	case text.CaseCorrect:
		return text.CaseWrong
	case text.CaseWrong:
		return text.CaseCorrect
	default:
		return s
	}
}
