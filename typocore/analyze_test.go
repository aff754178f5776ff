package typocore

import (
	"testing"

	"github.com/gotypo/typocore/internal/config"
)

type wantChar struct {
	raw       rune
	kind      Kind
	intended  rune
	caseState CaseState
}

func assertText(t *testing.T, got Text, want []wantChar) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length = %d, want %d (%+v)", len(got), len(want), got)
	}
	for i, w := range want {
		g := got[i]
		if g.Raw != w.raw || g.Type != w.kind || g.Intended != w.intended {
			t.Fatalf("position %d = %+v, want raw=%q kind=%v intended=%q", i, g, w.raw, w.kind, w.intended)
		}
	}
}

// TestAnalyze_ConcreteScenarios reproduces §8's worked examples against an
// empty configuration.
func TestAnalyze_ConcreteScenarios(t *testing.T) {
	empty := config.Config{}

	t.Run("Hello/Hola", func(t *testing.T) {
		got := Analyze("Hola", "Hello", empty)
		assertText(t, got, []wantChar{
			{raw: 'H', kind: Correct},
			{raw: 'o', kind: Misspell, intended: 'e'},
			{raw: 'l', kind: Correct},
			{raw: 'a', kind: Misspell, intended: 'l'},
			{raw: 'o', kind: Missing},
		})
	})

	t.Run("Hello/Halol", func(t *testing.T) {
		got := Analyze("Halol", "Hello", empty)
		assertText(t, got, []wantChar{
			{raw: 'H', kind: Correct},
			{raw: 'a', kind: Misspell, intended: 'e'},
			{raw: 'l', kind: Correct},
			{raw: 'o', kind: SwappedLeft},
			{raw: 'l', kind: SwappedRight},
		})
	})

	t.Run("day/dyy canonical fusion", func(t *testing.T) {
		got := Analyze("dyy", "day", empty)
		assertText(t, got, []wantChar{
			{raw: 'd', kind: Correct},
			{raw: 'y', kind: Misspell, intended: 'a'},
			{raw: 'y', kind: Correct},
		})
	})

	t.Run("day/dya swap", func(t *testing.T) {
		got := Analyze("dya", "day", empty)
		assertText(t, got, []wantChar{
			{raw: 'd', kind: Correct},
			{raw: 'y', kind: SwappedLeft},
			{raw: 'a', kind: SwappedRight},
		})
	})

	t.Run("bye/hi! no common characters", func(t *testing.T) {
		got := Analyze("hi!", "bye", empty)
		assertText(t, got, []wantChar{
			{raw: 'h', kind: Extra},
			{raw: 'i', kind: Extra},
			{raw: '!', kind: Extra},
		})
	})
}

// TestAnalyze_EmptyInputs covers §7's error-handling-as-result-shape rules.
func TestAnalyze_EmptyInputs(t *testing.T) {
	empty := config.Config{}

	t.Run("empty compared yields pure missing", func(t *testing.T) {
		got := Analyze("", "abc", empty)
		assertText(t, got, []wantChar{
			{raw: 'a', kind: Missing},
			{raw: 'b', kind: Missing},
			{raw: 'c', kind: Missing},
		})
	})

	t.Run("empty accurate yields pure extra", func(t *testing.T) {
		got := Analyze("abc", "", empty)
		assertText(t, got, []wantChar{
			{raw: 'a', kind: Extra},
			{raw: 'b', kind: Extra},
			{raw: 'c', kind: Extra},
		})
	})

	t.Run("both empty yields empty text", func(t *testing.T) {
		got := Analyze("", "", empty)
		if len(got) != 0 {
			t.Fatalf("length = %d, want 0", len(got))
		}
	})
}

// TestAnalyze_IdentityIsAbsolutelyRight is §8 invariant 4.
func TestAnalyze_IdentityIsAbsolutelyRight(t *testing.T) {
	empty := config.Config{}
	got := Analyze("accurate", "accurate", empty)
	if got.RawValue() != "accurate" {
		t.Fatalf("RawValue() = %q, want %q", got.RawValue(), "accurate")
	}
	if !got.IsAbsolutelyRight() {
		t.Fatalf("IsAbsolutelyRight() = false, want true")
	}
}

// TestAnalyze_Idempotent is §8 invariant 5: a second MakeUserFriendly pass
// finds nothing left to adjust, fuse, or swap.
func TestAnalyze_Idempotent(t *testing.T) {
	empty := config.Config{}
	once := Analyze("Halol", "Hello", empty)
	twice := MakeUserFriendly(once)

	if len(once) != len(twice) {
		t.Fatalf("length changed on second pass: %d -> %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("position %d changed on second pass: %+v -> %+v", i, once[i], twice[i])
		}
	}
}

// TestAnalyze_EffectiveLengthInvariant is §8 invariant 7.
func TestAnalyze_EffectiveLengthInvariant(t *testing.T) {
	empty := config.Config{}
	for _, pair := range []struct{ compared, accurate string }{
		{"Hola", "Hello"},
		{"Halol", "Hello"},
		{"dyy", "day"},
		{"dya", "day"},
		{"hi!", "bye"},
	} {
		got := Analyze(pair.compared, pair.accurate, empty)
		sum := got.CountOfTyposAndMistakes() + got.CountOfCorrectPositions()
		if sum != got.EffectiveLength() {
			t.Fatalf("%s/%s: typos+correct = %d, effective length = %d",
				pair.compared, pair.accurate, sum, got.EffectiveLength())
		}
	}
}
