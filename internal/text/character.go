// Package text implements the typed character / text model: the closed
// CharacterType variant, the typed character, and the Text container with
// its aggregate queries and letter-case transforms.
package text

// Kind is the closed set of character classifications a TypedChar can
// carry. It is a sum type expressed as an enum rather than an interface
// hierarchy so exhaustiveness is a simple switch, not a type-switch over
// an open set of implementations.
type Kind int

const (
	// Correct marks a character present in both texts at matching
	// positions.
	Correct Kind = iota
	// Missing marks a character present only in the accurate text.
	Missing
	// Extra marks a character present only in the compared text.
	Extra
	// SwappedLeft marks the left half of a reversed-adjacent-pair typo.
	SwappedLeft
	// SwappedRight marks the right half of a reversed-adjacent-pair typo.
	SwappedRight
	// Misspell marks a compared character standing in for a different
	// intended character; Intended carries that character.
	Misspell
)

// String renders the kind the way log lines and test failures want it.
func (k Kind) String() string {
	switch k {
	case Correct:
		return "correct"
	case Missing:
		return "missing"
	case Extra:
		return "extra"
	case SwappedLeft:
		return "swapped(left)"
	case SwappedRight:
		return "swapped(right)"
	case Misspell:
		return "misspell"
	default:
		return "unknown"
	}
}

// CaseState is the tri-state equivalent of the spec's `correct_case:
// optional bool`. Go has no nullable bool without introducing a pointer;
// an explicit 3-value enum keeps TypedChar copyable and comparable, which
// a *bool field would not.
type CaseState int

const (
	// CaseUnset means letter case does not matter (e.g. the text was
	// normalized, or the position isn't a correct match at all).
	CaseUnset CaseState = iota
	// CaseCorrect means the compared character's case matched the
	// accurate character's case.
	CaseCorrect
	// CaseWrong means the characters matched but their case differed.
	CaseWrong
)

// TypedChar is a single annotated character in a Text.
type TypedChar struct {
	Raw  rune
	Type Kind

	// Intended is only meaningful when Type == Misspell: the accurate
	// character this position stands in place of.
	Intended rune

	CaseState CaseState
}

// IsCorrect reports whether this position counts toward "correct" for
// IsAbsolutelyRight purposes: Correct kind and not a wrong-case match.
func (c TypedChar) IsCorrect() bool {
	return c.Type == Correct && c.CaseState != CaseWrong
}

// IsMistake reports whether this position is one of extra/missing/misspell
// — the three kinds CountOfTyposAndMistakes tallies directly (swapped
// pairs are tallied separately, at half weight).
func (c TypedChar) IsMistake() bool {
	switch c.Type {
	case Extra, Missing, Misspell:
		return true
	default:
		return false
	}
}
