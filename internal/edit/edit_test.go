package edit

import (
	"testing"

	"github.com/gotypo/typocore/internal/text"
)

func TestMakeUserFriendly_DayDyaProducesSwap(t *testing.T) {
	in := text.Text{
		{Raw: 'd', Type: text.Correct},
		{Raw: 'y', Type: text.Extra},
		{Raw: 'a', Type: text.Correct},
		{Raw: 'y', Type: text.Missing},
	}
	got := MakeUserFriendly(in)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[1].Type != text.SwappedLeft || got[2].Type != text.SwappedRight {
		t.Fatalf("got %+v, want positions 1,2 to be a SwappedLeft/SwappedRight pair", got)
	}
}

func TestMakeUserFriendly_IsIdempotent(t *testing.T) {
	in := text.Text{
		{Raw: 'd', Type: text.Correct},
		{Raw: 'y', Type: text.Extra},
		{Raw: 'a', Type: text.Correct},
		{Raw: 'y', Type: text.Missing},
	}
	once := MakeUserFriendly(in)
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

func TestMakeUserFriendly_AllCorrectUnchanged(t *testing.T) {
	in := text.Text{{Raw: 'a', Type: text.Correct}, {Raw: 'b', Type: text.Correct}}
	got := MakeUserFriendly(in)
	if len(got) != 2 || got[0] != in[0] || got[1] != in[1] {
		t.Fatalf("got %+v, want unchanged %+v", got, in)
	}
}
