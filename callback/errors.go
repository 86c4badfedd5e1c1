package callback

import (
	"github.com/ava12/spellbreak"
	"github.com/ava12/spellbreak/scanner"
)

// Error codes used by callback parser:
const (
	// UnexpectedInputError indicates input left after the last statement.
	UnexpectedInputError = spellbreak.CallbackErrors + iota
	// ExpectVarNameError indicates a missing variable name after "var" or before "=".
	ExpectVarNameError
	// ExpectExprError indicates a missing expression.
	ExpectExprError
	// MissingParenError indicates an unterminated parenthesis.
	MissingParenError
	// ExpectListError indicates a missing "[" after node type name.
	ExpectListError
	// MissingBracketError indicates an unterminated node or list constructor.
	MissingBracketError
	// UnrecognizedArgError indicates a call argument that is not an expression.
	UnrecognizedArgError
)

func unexpectedInputError(s *scanner.Scanner) *spellbreak.Error {
	return s.SyntaxErrorf(UnexpectedInputError, "unexpected input")
}

func expectVarNameError(s *scanner.Scanner) *spellbreak.Error {
	return s.SyntaxErrorf(ExpectVarNameError, "expect variable name")
}

func expectExprError(s *scanner.Scanner) *spellbreak.Error {
	return s.SyntaxErrorf(ExpectExprError, "expect expression")
}

func missingParenError(s *scanner.Scanner) *spellbreak.Error {
	return s.SyntaxErrorf(MissingParenError, "missing right paren")
}

func expectListError(s *scanner.Scanner) *spellbreak.Error {
	return s.SyntaxErrorf(ExpectListError, "expect '['")
}

func missingBracketError(s *scanner.Scanner) *spellbreak.Error {
	return s.SyntaxErrorf(MissingBracketError, "expect ']'")
}

func unrecognizedArgError(s *scanner.Scanner, fname string) *spellbreak.Error {
	return s.SyntaxErrorf(UnrecognizedArgError, "failed to recognize args of %s", fname)
}
