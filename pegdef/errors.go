package pegdef

import (
	"github.com/ava12/spellbreak"
	"github.com/ava12/spellbreak/scanner"
)

// Error codes used by pegdef parser:
const (
	// UnexpectedInputError indicates input left after the last rule.
	UnexpectedInputError = spellbreak.PegErrors + iota
	// ExpectDefOpError indicates a missing ":" after rule name.
	ExpectDefOpError
	// ExpectRuleBodyError indicates a rule with no terms.
	ExpectRuleBodyError
	// ExpectEolError indicates a rule not terminated by end of line.
	ExpectEolError
	// ExpectBranchError indicates a branch operator with no terms after it.
	ExpectBranchError
	// ExpectLookaheadUnitError indicates "&" not followed by a rule or token name.
	ExpectLookaheadUnitError
)

func unexpectedInputError(s *scanner.Scanner) *spellbreak.Error {
	return s.SyntaxErrorf(UnexpectedInputError, "unexpected input")
}

func expectDefOpError(s *scanner.Scanner, name string) *spellbreak.Error {
	return s.SyntaxErrorf(ExpectDefOpError, "expect ':' after %s", name)
}

func expectRuleBodyError(s *scanner.Scanner, name string) *spellbreak.Error {
	return s.SyntaxErrorf(ExpectRuleBodyError, "expect body of rule %s", name)
}

func expectEolError(s *scanner.Scanner, name string) *spellbreak.Error {
	return s.SyntaxErrorf(ExpectEolError, "expect end of line after rule %s", name)
}

func expectBranchError(s *scanner.Scanner, op string) *spellbreak.Error {
	return s.SyntaxErrorf(ExpectBranchError, "expect terms after '%s'", op)
}

func expectLookaheadUnitError(s *scanner.Scanner) *spellbreak.Error {
	return s.SyntaxErrorf(ExpectLookaheadUnitError, "expect rule or token name after '&'")
}
