package parser

import (
	"github.com/ava12/spellbreak"
	"github.com/ava12/spellbreak/grammar"
	"github.com/ava12/spellbreak/scanner"
)

// Error codes used by parser:
const (
	// UnexpectedInputError indicates input left after an entry production.
	UnexpectedInputError = spellbreak.ParserErrors + iota
	// ExpectEntryError indicates that an entry production does not start at the beginning of input.
	ExpectEntryError
	// UnknownEntryError indicates an entry with no parsing function.
	UnknownEntryError
)

func unexpectedInputError(s *scanner.Scanner, entry grammar.Entry) *spellbreak.Error {
	return s.SyntaxErrorf(UnexpectedInputError, "unexpected input after %s", entry)
}

func expectEntryError(s *scanner.Scanner, entry grammar.Entry) *spellbreak.Error {
	return s.SyntaxErrorf(ExpectEntryError, "expect %s", entry)
}

func unknownEntryError(entry grammar.Entry) *spellbreak.Error {
	return spellbreak.FormatError(UnknownEntryError, spellbreak.InternalError, "unknown grammar entry %d", int(entry))
}
