package typocore

import (
	"github.com/gotypo/typocore/internal/config"
	"github.com/gotypo/typocore/internal/edit"
	"github.com/gotypo/typocore/internal/form"
	"github.com/gotypo/typocore/internal/text"
)

// Config controls the compliance thresholds and letter-case policy used by
// Analyze, FormText, and the quick/exact compliance gates (§4.5).
type Config = config.Config

// Text is the typed-character sequence every entry point in this package
// returns (§3, §4.4).
type Text = text.Text

// Kind is the closed set of character classifications a position in a Text
// can carry.
type Kind = text.Kind

const (
	Correct      = text.Correct
	Missing      = text.Missing
	Extra        = text.Extra
	SwappedLeft  = text.SwappedLeft
	SwappedRight = text.SwappedRight
	Misspell     = text.Misspell
)

// CaseState is the tri-state verdict a Correct position's letter case can
// carry under the compare letter-case policy.
type CaseState = text.CaseState

const (
	CaseUnset   = text.CaseUnset
	CaseCorrect = text.CaseCorrect
	CaseWrong   = text.CaseWrong
)

// Analyze is the core's single entry point (§6): form_text composed with
// make_user_friendly.
func Analyze(compared, accurate string, cfg Config) Text {
	return edit.MakeUserFriendly(form.FormText(compared, accurate, cfg))
}

// FormText exposes the text former alone (§4.2) — the pre-edit alignment,
// before misspell fusion and swap detection.
func FormText(compared, accurate string, cfg Config) Text {
	return form.FormText(compared, accurate, cfg)
}

// MakeUserFriendly exposes the text editor alone (§4.3), for callers that
// already have a formed Text (e.g. from FormText, or from a cached result)
// and just want the adjust/fuse/swap passes applied.
func MakeUserFriendly(t Text) Text {
	return edit.MakeUserFriendly(t)
}
