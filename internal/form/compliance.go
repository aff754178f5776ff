package form

import (
	"github.com/gotypo/typocore/internal/align"
	"github.com/gotypo/typocore/internal/config"
)

// quickCompliance is the cheap pre-check of §4.2: deliberately optimistic
// — a pass is necessary but not sufficient for exact compliance (§8
// invariant 6, compliance monotonicity).
func quickCompliance(compared, accurate string, cfg config.Config) bool {
	accLen := runeLen(accurate)
	cmpLen := runeLen(compared)

	k := align.CountCommonChars(compared, accurate)
	if k == 0 {
		return false
	}

	if cfg.RequiredCorrect.IsSet() {
		if k < cfg.RequiredCorrect.Count(accLen, false) {
			return false
		}
	}

	if cfg.AcceptableWrong.IsSet() {
		wrongCompared := cmpLen - k
		wrongAccurate := accLen - k
		maxWrong := wrongCompared
		if wrongAccurate > maxWrong {
			maxWrong = wrongAccurate
		}
		if maxWrong > cfg.AcceptableWrong.Count(accLen, false) {
			return false
		}
	}

	return true
}

// exactCompliance is the post-alignment check of §4.2, using the basis
// computed by the math core.
func exactCompliance(b align.Basis, accLen int, cfg config.Config) bool {
	if len(b.Subsequence) == 0 {
		return false
	}

	if cfg.RequiredCorrect.IsSet() {
		if len(b.Subsequence) < cfg.RequiredCorrect.Count(accLen, true) {
			return false
		}
	}

	if cfg.AcceptableWrong.IsSet() {
		w := len(b.Sequence) - len(b.Subsequence) + len(b.MissingElements)
		m := len(b.MissingElements)
		maxWrong := w
		if m > maxWrong {
			maxWrong = m
		}
		if maxWrong > cfg.AcceptableWrong.Count(accLen, false) {
			return false
		}
	}

	return true
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
