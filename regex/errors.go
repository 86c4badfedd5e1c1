package regex

import (
	"github.com/ava12/spellbreak"
	"github.com/ava12/spellbreak/scanner"
)

// Error codes used by regex parser:
const (
	// UnexpectedInputError indicates input left after the last branch.
	UnexpectedInputError = spellbreak.RegexErrors + iota
	// UnclosedGroupError indicates a missing ")".
	UnclosedGroupError
	// UnclosedCharGroupError indicates that no "]" follows "[".
	UnclosedCharGroupError
	// ExpectCharClassError indicates an empty or malformed character group.
	ExpectCharClassError
	// ExpectCharGroupEndError indicates a character group not terminated by "]".
	ExpectCharGroupEndError
	// ExpectRangeEndError indicates a missing range end after "-".
	ExpectRangeEndError
	// UnicodeClassError indicates a Unicode property class, which is not supported.
	UnicodeClassError
)

func unexpectedInputError(s *scanner.Scanner) *spellbreak.Error {
	return s.SyntaxErrorf(UnexpectedInputError, "unexpected input")
}

func unclosedGroupError(s *scanner.Scanner) *spellbreak.Error {
	return s.SyntaxErrorf(UnclosedGroupError, "expect ')'")
}

func unclosedCharGroupError(s *scanner.Scanner) *spellbreak.Error {
	return s.SyntaxErrorf(UnclosedCharGroupError, "char group not closed")
}

func expectCharClassError(s *scanner.Scanner) *spellbreak.Error {
	return s.SyntaxErrorf(ExpectCharClassError, "expect char class")
}

func expectCharGroupEndError(s *scanner.Scanner) *spellbreak.Error {
	return s.SyntaxErrorf(ExpectCharGroupEndError, "expect ']'")
}

func expectRangeEndError(s *scanner.Scanner) *spellbreak.Error {
	return s.SyntaxErrorf(ExpectRangeEndError, "expect range end after '-'")
}

func unicodeClassError(s *scanner.Scanner) *spellbreak.Error {
	return s.Errorf(UnicodeClassError, spellbreak.Unsupported, "unicode char class not supported")
}
