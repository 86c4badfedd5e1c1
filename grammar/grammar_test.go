package grammar

import (
	"strings"
	"testing"

	. "github.com/ava12/spellbreak/internal/test"
)

func TestLookup(t *testing.T) {
	for _, entry := range Entries() {
		found, e := Lookup(entry.String())
		ExpectNoError(t, e)
		Assert(t, found == entry, "expecting %s, got %s", entry, found)
	}
}

func TestLookupSuggestion(t *testing.T) {
	_, e := Lookup("pef")
	ExpectErrorCode(t, UnknownEntryError, e)
	Assert(t, strings.Contains(e.Error(), "did you mean peg?"), "expecting suggestion in %q", e.Error())

	_, e = Lookup("regex.charclass")
	Assert(t, strings.Contains(e.Error(), "regex.char-class"), "expecting suggestion in %q", e.Error())
}

func TestEntryGrammar(t *testing.T) {
	samples := map[Entry]Grammar{
		Callback:       CallbackGrammar,
		CallbackCall:   CallbackGrammar,
		RegexCharClass: RegexGrammar,
		LexRuleLine:    LexGrammar,
		PegRuleBody:    PegGrammar,
	}
	for entry, g := range samples {
		Assert(t, entry.Grammar() == g, "expecting %s for %s, got %s", g, entry, entry.Grammar())
	}

	ExpectBool(t, true, Peg.IsRoot())
	ExpectBool(t, false, PegRuleBody.IsRoot())
	ExpectBool(t, false, Entry(100).Valid())
	ExpectString(t, "unknown", Entry(-1).String())
}
