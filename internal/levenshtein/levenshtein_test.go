package levenshtein

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/ava12/spellbreak/internal/test"
)

func TestClosestStrings(t *testing.T) {
	candidates := []string{"RefRule", "RefToken", "PegRule", "Term"}
	got := ClosestStrings(3, "RefRul", slices.Values(candidates))
	if diff := cmp.Diff([]string{"RefRule"}, got); diff != "" {
		t.Errorf("unexpected result (-want +got):\n%s", diff)
	}

	got = ClosestStrings(2, "Xyz", slices.Values(candidates))
	ExpectInt(t, 0, len(got))
}

func TestClosestStringsTies(t *testing.T) {
	got := ClosestStrings(5, "ab", slices.Values([]string{"ax", "xb", "abcdef"}))
	if diff := cmp.Diff([]string{"ax", "xb"}, got); diff != "" {
		t.Errorf("unexpected result (-want +got):\n%s", diff)
	}
}

func TestSuggestion(t *testing.T) {
	ExpectString(t, " (did you mean peg?)", Suggestion("pef", slices.Values([]string{"peg", "lex", "regex"})))
	ExpectString(t, "", Suggestion("callback", slices.Values([]string{"peg", "lex"})))
	ExpectString(t, " (did you mean one of let, lex?)", Suggestion("lez", slices.Values([]string{"let", "lex"})))
}
