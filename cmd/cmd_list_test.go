package cmd

import (
	"strings"
	"testing"

	"github.com/zbiljic/emoji-commit-type/pkg/committype"
)

func TestAllCommitTypes(t *testing.T) {
	want := []committype.Type{
		committype.Breaking,
		committype.Feature,
		committype.Bugfix,
		committype.Other,
		committype.Meta,
	}

	got := allCommitTypes()

	if len(got) != len(want) {
		t.Fatalf("allCommitTypes() returned %d types; want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("allCommitTypes()[%d] = %v; want %v", i, got[i], want[i])
		}
	}
}

func TestRenderTypeTable(t *testing.T) {
	output := renderTypeTable(allCommitTypes())

	for _, want := range []string{
		"TYPE",
		"EMOJI",
		"DESCRIPTION",
		"SEMVER",
		"💥",
		"Breaking change",
		"Major",
		"🎉",
		"New functionality",
		"Minor",
		"🐛",
		"Bugfix",
		"Patch",
		"🔥",
		"Cleanup / Performance",
		"🌹",
		"Meta",
		"None",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("table output missing %q\noutput:\n%s", want, output)
		}
	}

	// rows keep the declaration order
	previous := -1
	for _, id := range []string{"breaking", "feature", "bugfix", "other", "meta"} {
		idx := strings.Index(output, id)
		if idx < 0 {
			t.Fatalf("table output missing row for %q\noutput:\n%s", id, output)
		}
		if idx <= previous {
			t.Fatalf("table row %q out of order\noutput:\n%s", id, output)
		}
		previous = idx
	}
}
