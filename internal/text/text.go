package text

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Text is an ordered sequence of typed characters — the output of every
// stage of the pipeline (Math Core excepted, which works on raw index
// arrays; see internal/align.Basis).
type Text []TypedChar

// FromString builds a Text from a raw string, marking every character with
// the same kind. Used by internal/form for the empty-input shortcuts
// (§4.2 steps 1-2) and for the degenerate "plain extra" result
// internal/form/form.go returns when a compliance gate fails.
func FromString(s string, kind Kind) Text {
	runes := []rune(s)
	out := make(Text, len(runes))
	for i, r := range runes {
		out[i] = TypedChar{Raw: r, Type: kind}
	}
	return out
}

// RawValue concatenates each character's Raw, and for each Misspell also
// appends Intended immediately after — used when reconstructing the
// accurate reference text for display alongside the compared text.
func (t Text) RawValue() string {
	var b strings.Builder
	b.Grow(len(t))
	for _, c := range t {
		b.WriteRune(c.Raw)
		if c.Type == Misspell {
			b.WriteRune(c.Intended)
		}
	}
	return b.String()
}

// IsAbsolutelyRight reports whether every character is Correct with a case
// state other than CaseWrong.
func (t Text) IsAbsolutelyRight() bool {
	for _, c := range t {
		if !c.IsCorrect() {
			return false
		}
	}
	return true
}

// IsCompletelyWrong reports whether every character is Missing, Extra, or
// Misspell.
func (t Text) IsCompletelyWrong() bool {
	if len(t) == 0 {
		return false
	}
	for _, c := range t {
		switch c.Type {
		case Missing, Extra, Misspell:
		default:
			return false
		}
	}
	return true
}

// CountOfTyposAndMistakes counts extra + missing + misspell, plus the
// floor of the swapped-character count divided by two (a swapped pair is
// one mistake, not two).
func (t Text) CountOfTyposAndMistakes() int {
	n, swapped := 0, 0
	for _, c := range t {
		if c.IsMistake() {
			n++
		}
		if c.Type == SwappedLeft || c.Type == SwappedRight {
			swapped++
		}
	}
	return n + swapped/2
}

// CountOfWrongLetterCases counts characters whose CaseState is CaseWrong.
func (t Text) CountOfWrongLetterCases() int {
	n := 0
	for _, c := range t {
		if c.CaseState == CaseWrong {
			n++
		}
	}
	return n
}

// CountOfCorrectPositions counts characters for which IsCorrect is true —
// the complement used by the §8 invariant
// CountOfTyposAndMistakes + CountOfCorrectPositions == EffectiveLength.
func (t Text) CountOfCorrectPositions() int {
	n := 0
	for _, c := range t {
		if c.IsCorrect() {
			n++
		}
	}
	return n
}

// EffectiveLength is the visible character count once swapped pairs are
// counted once each instead of twice.
func (t Text) EffectiveLength() int {
	n, swapped := 0, 0
	for _, c := range t {
		if c.Type == SwappedLeft || c.Type == SwappedRight {
			swapped++
			continue
		}
		n++
	}
	return n + swapped/2
}

var (
	titleCaser = cases.Title(language.Und, cases.NoLower)
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

// Capitalized returns a copy with every character's Raw (and Misspell's
// Intended) case-transformed to capitalized form, CaseState cleared to
// CaseUnset on every transformed position (§4.4: transforms clear
// correct_case because the comparison that produced it no longer applies
// post-transform).
func (t Text) Capitalized() Text { return t.transformed(capitalizeRune) }

// Uppercased returns a copy with every character upper-cased.
func (t Text) Uppercased() Text { return t.transformed(upperRune) }

// Lowercased returns a copy with every character lower-cased.
func (t Text) Lowercased() Text { return t.transformed(lowerRune) }

func (t Text) transformed(f func(rune) rune) Text {
	out := make(Text, len(t))
	for i, c := range t {
		nc := c
		nc.Raw = f(c.Raw)
		if c.Type == Misspell {
			nc.Intended = f(c.Intended)
		}
		nc.CaseState = CaseUnset
		out[i] = nc
	}
	return out
}

func upperRune(r rune) rune { return casedRune(upperCaser, r) }

func lowerRune(r rune) rune { return casedRune(lowerCaser, r) }

// capitalizeRune upper-cases a rune using the Title caser — at the
// single-rune granularity "capitalized" and "uppercased" coincide, which
// matches how the spec's per-character CharacterType transform is defined
// (capitalization as a whole-text concept is Config's concern via
// CaseLetterPolicy.Make, not this helper's).
func capitalizeRune(r rune) rune { return casedRune(titleCaser, r) }

func casedRune(c cases.Caser, r rune) rune {
	out := []rune(c.String(string(r)))
	if len(out) == 0 {
		return r
	}
	return out[0]
}
