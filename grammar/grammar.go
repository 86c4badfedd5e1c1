// Package grammar enumerates grammars and their entry points.
//
// Root entries parse a whole fragment of a grammar, other entries parse a single
// production and are mostly used for testing. Any entry must consume the whole input.
package grammar

import (
	"slices"

	"github.com/ava12/spellbreak"
	"github.com/ava12/spellbreak/internal/levenshtein"
)

// Grammar is one of the four grammar languages.
type Grammar int

const (
	CallbackGrammar Grammar = iota
	RegexGrammar
	LexGrammar
	PegGrammar
)

var grammarNames = [...]string{"callback", "regex", "lex", "peg"}

func (g Grammar) String() string {
	if g < 0 || int(g) >= len(grammarNames) {
		return "unknown"
	}
	return grammarNames[g]
}

// Entry is a grammar production a fragment is parsed with.
type Entry int

const (
	Callback Entry = iota
	Regex
	Lex
	Peg

	CallbackStmt
	CallbackStmts
	CallbackExpr
	CallbackAssign
	CallbackCall
	RegexBranches
	RegexSeq
	RegexGroup
	RegexCharGroup
	RegexCharClass
	LexRuleLine
	PegRuleBody

	entryCount
)

type entryInfo struct {
	name    string
	grammar Grammar
}

var entries = [entryCount]entryInfo{
	Callback:       {"callback", CallbackGrammar},
	Regex:          {"regex", RegexGrammar},
	Lex:            {"lex", LexGrammar},
	Peg:            {"peg", PegGrammar},
	CallbackStmt:   {"callback.stmt", CallbackGrammar},
	CallbackStmts:  {"callback.stmts", CallbackGrammar},
	CallbackExpr:   {"callback.expr", CallbackGrammar},
	CallbackAssign: {"callback.assign", CallbackGrammar},
	CallbackCall:   {"callback.call", CallbackGrammar},
	RegexBranches:  {"regex.branches", RegexGrammar},
	RegexSeq:       {"regex.seq", RegexGrammar},
	RegexGroup:     {"regex.group", RegexGrammar},
	RegexCharGroup: {"regex.char-group", RegexGrammar},
	RegexCharClass: {"regex.char-class", RegexGrammar},
	LexRuleLine:    {"lex.rule-line", LexGrammar},
	PegRuleBody:    {"peg.rule-body", PegGrammar},
}

// Entries returns all entries, root entries first.
func Entries() []Entry {
	result := make([]Entry, entryCount)
	for i := range result {
		result[i] = Entry(i)
	}
	return result
}

// Valid tells whether e is a known entry.
func (e Entry) Valid() bool {
	return e >= 0 && e < entryCount
}

// String returns entry name, e.g. "peg" or "regex.char-class".
func (e Entry) String() string {
	if !e.Valid() {
		return "unknown"
	}
	return entries[e].name
}

// Grammar returns the grammar of the entry.
func (e Entry) Grammar() Grammar {
	if !e.Valid() {
		return -1
	}
	return entries[e].grammar
}

// IsRoot tells whether e parses a whole fragment.
func (e Entry) IsRoot() bool {
	return e >= Callback && e <= Peg
}

// Names returns names of all entries.
func Names() []string {
	result := make([]string, entryCount)
	for i, info := range entries {
		result[i] = info.name
	}
	return result
}

// Lookup finds an entry by name.
func Lookup(name string) (Entry, error) {
	for i, info := range entries {
		if info.name == name {
			return Entry(i), nil
		}
	}

	suggestion := levenshtein.Suggestion(name, slices.Values(Names()))
	return -1, spellbreak.FormatError(UnknownEntryError, spellbreak.SyntaxError, "unknown grammar entry %q%s", name, suggestion)
}

// Error codes used by grammar:
const (
	// UnknownEntryError indicates an unknown entry name.
	UnknownEntryError = spellbreak.ParserErrors + 50 + iota
)
