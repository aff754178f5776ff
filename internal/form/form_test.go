package form

import (
	"testing"

	"github.com/gotypo/typocore/internal/config"
	"github.com/gotypo/typocore/internal/text"
)

func TestFormText_EmptyComparedYieldsAllMissing(t *testing.T) {
	got := FormText("", "abc", config.Config{})
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for _, c := range got {
		if c.Type != text.Missing {
			t.Fatalf("expected every position to be Missing, got %+v", c)
		}
	}
}

func TestFormText_EmptyAccurateYieldsAllExtra(t *testing.T) {
	got := FormText("abc", "", config.Config{})
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for _, c := range got {
		if c.Type != text.Extra {
			t.Fatalf("expected every position to be Extra, got %+v", c)
		}
	}
}

func TestFormText_NoCommonCharactersFallsBackToAllExtra(t *testing.T) {
	got := FormText("hi!", "bye", config.Config{})
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for _, c := range got {
		if c.Type != text.Extra {
			t.Fatalf("expected every position to be Extra on zero overlap, got %+v", c)
		}
	}
}

func TestFormText_DayDyy_MarksCorrectAndMissing(t *testing.T) {
	got := FormText("dyy", "day", config.Config{})
	var raws []rune
	var kinds []text.Kind
	for _, c := range got {
		raws = append(raws, c.Raw)
		kinds = append(kinds, c.Type)
	}
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4 (d,y,missing-a,y); got raws=%q kinds=%v", len(got), raws, kinds)
	}
}

func TestFormText_RequiredCorrectRejectsViaQuickCompliance(t *testing.T) {
	cfg := config.Config{RequiredCorrect: config.All}
	got := FormText("hi!", "hello", cfg)
	for _, c := range got {
		if c.Type != text.Extra {
			t.Fatalf("expected quick-compliance rejection to mark everything Extra, got %+v", c)
		}
	}
}

func TestFormText_CasePolicyCompareFlagsMismatch(t *testing.T) {
	cfg := config.Config{CaseLetterPolicy: config.CompareCasePolicy()}
	got := FormText("DAY", "day", cfg)
	sawWrongCase := false
	for _, c := range got {
		if c.Type == text.Correct && c.CaseState == text.CaseWrong {
			sawWrongCase = true
		}
	}
	if !sawWrongCase {
		t.Fatal("expected at least one CaseWrong correct position under the Compare policy")
	}
}

func TestFormText_CasePolicyMakeUppercaseNormalizesRaw(t *testing.T) {
	cfg := config.Config{CaseLetterPolicy: config.MakeCasePolicy(config.Uppercase)}
	got := FormText("day", "day", cfg)
	for _, c := range got {
		if c.Raw < 'A' || c.Raw > 'Z' {
			t.Fatalf("expected every raw character uppercased, got %q", c.Raw)
		}
		if c.CaseState != text.CaseUnset {
			t.Fatalf("expected CaseUnset under a Make policy, got %v", c.CaseState)
		}
	}
}
