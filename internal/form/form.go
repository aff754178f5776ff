// Package form implements the text former of §4.2: lifting the math
// core's index-level Basis into a typed-character stream containing only
// correct, missing, and extra atoms, gated by the quick and exact
// compliance checks.
package form

import (
	"github.com/gotypo/typocore/internal/align"
	"github.com/gotypo/typocore/internal/config"
	"github.com/gotypo/typocore/internal/text"
)

// FormText lifts the alignment between compared and accurate into a
// Text containing only Correct, Missing, and Extra atoms (§4.2). It never
// produces Swapped or Misspell — that's internal/edit's job.
func FormText(compared, accurate string, cfg config.Config) text.Text {
	if compared == "" {
		return applyCasePolicy(text.FromString(accurate, text.Missing), cfg)
	}
	if accurate == "" {
		return applyCasePolicy(text.FromString(compared, text.Extra), cfg)
	}

	if !quickCompliance(compared, accurate, cfg) {
		return applyCasePolicy(text.FromString(compared, text.Extra), cfg)
	}

	limits := align.Limits{MaxRawSequences: cfg.MaxRawSequences}
	basis := align.CalculateBasis(compared, accurate, limits)

	accRunes := []rune(accurate)
	if !exactCompliance(basis, len(accRunes), cfg) {
		return applyCasePolicy(text.FromString(compared, text.Extra), cfg)
	}

	cmpRunes := []rune(compared)
	formed := markCorrectAndExtra(cmpRunes, accRunes, basis, cfg)
	formed = insertMissing(formed, basis, accRunes)

	return applyCasePolicy(formed, cfg)
}

// markCorrectAndExtra implements step 6: starting from compared marked
// entirely extra, relabel positions that land on the subsequence as
// correct, in order.
func markCorrectAndExtra(cmpRunes, accRunes []rune, b align.Basis, cfg config.Config) text.Text {
	out := make(text.Text, len(cmpRunes))
	for i, r := range cmpRunes {
		out[i] = text.TypedChar{Raw: r, Type: text.Extra}
	}

	subIdx := 0
	for i, v := range b.Sequence {
		if subIdx >= len(b.Subsequence) || v != b.Subsequence[subIdx] {
			continue
		}
		out[i].Type = text.Correct
		if cfg.CaseLetterPolicy.IsCompare() {
			if accRunes[v] == cmpRunes[i] {
				out[i].CaseState = text.CaseCorrect
			} else {
				out[i].CaseState = text.CaseWrong
			}
		}
		subIdx++
	}
	return out
}

// insertMissing implements step 7: walk the sequence again, inserting the
// missing characters that belong before each correct-matched position,
// and appending whatever is left over at the end.
func insertMissing(marked text.Text, b align.Basis, accRunes []rune) text.Text {
	missing := b.MissingElements
	missingIdx := 0

	out := make(text.Text, 0, len(marked)+len(missing))
	subIdx := 0
	for i, v := range b.Sequence {
		if subIdx < len(b.Subsequence) && v == b.Subsequence[subIdx] {
			for missingIdx < len(missing) && missing[missingIdx] < v {
				out = append(out, text.TypedChar{Raw: accRunes[missing[missingIdx]], Type: text.Missing})
				missingIdx++
			}
			out = append(out, marked[i])
			subIdx++
			continue
		}
		out = append(out, marked[i])
	}
	for missingIdx < len(missing) {
		out = append(out, text.TypedChar{Raw: accRunes[missing[missingIdx]], Type: text.Missing})
		missingIdx++
	}
	return out
}

// applyCasePolicy implements step 8. Compare and Unset policies leave Raw
// untouched (Compare already recorded its verdict via CaseState in step
// 6; Unset never does); Make(version) normalizes every Raw (and Misspell
// Intended) character and clears CaseState.
func applyCasePolicy(t text.Text, cfg config.Config) text.Text {
	version, ok := cfg.CaseLetterPolicy.Make()
	if !ok {
		return t
	}
	switch version {
	case config.Uppercase:
		return t.Uppercased()
	case config.Lowercase:
		return t.Lowercased()
	default:
		return t.Capitalized()
	}
}
