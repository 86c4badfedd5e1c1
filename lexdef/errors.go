package lexdef

import (
	"github.com/ava12/spellbreak"
	"github.com/ava12/spellbreak/scanner"
)

// Error codes used by lexdef parser:
const (
	// UnrecognizedLineError indicates a line that is neither a rule line nor a blank or comment line.
	UnrecognizedLineError = spellbreak.LexErrors + iota
)

func unrecognizedLineError(s *scanner.Scanner) *spellbreak.Error {
	return s.SyntaxErrorf(UnrecognizedLineError, "unrecognized rule line")
}
