package edit

import (
	"testing"

	"github.com/gotypo/typocore/internal/text"
)

func TestFuseMisspells_PairsExtraThenMissing(t *testing.T) {
	in := text.Text{
		{Raw: 'o', Type: text.Extra},
		{Raw: 'e', Type: text.Missing},
	}
	got := fuseMisspells(in)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Type != text.Misspell || got[0].Raw != 'o' || got[0].Intended != 'e' {
		t.Fatalf("got %+v, want Misspell raw='o' intended='e'", got[0])
	}
}

func TestFuseMisspells_PairsMissingThenExtra(t *testing.T) {
	in := text.Text{
		{Raw: 'e', Type: text.Missing},
		{Raw: 'a', Type: text.Extra},
	}
	got := fuseMisspells(in)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Type != text.Misspell || got[0].Raw != 'a' || got[0].Intended != 'e' {
		t.Fatalf("got %+v, want Misspell raw='a' intended='e'", got[0])
	}
}

func TestFuseMisspells_OtherKindClearsQueues(t *testing.T) {
	// The intervening Correct should break the missing/extra pairing, so
	// neither the leading extra nor the trailing missing fuse.
	in := text.Text{
		{Raw: 'o', Type: text.Extra},
		{Raw: 'l', Type: text.Correct},
		{Raw: 'e', Type: text.Missing},
	}
	got := fuseMisspells(in)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3 (no fusion across an intervening Correct)", len(got))
	}
	for i := range in {
		if got[i] != in[i] {
			t.Fatalf("position %d changed = %+v, want unchanged %+v", i, got[i], in[i])
		}
	}
}

func TestFuseMisspells_NoPendingLeavesTextUnchanged(t *testing.T) {
	in := text.Text{{Raw: 'a', Type: text.Correct}}
	got := fuseMisspells(in)
	if len(got) != 1 || got[0] != in[0] {
		t.Fatalf("got %+v, want unchanged %+v", got, in)
	}
}
