package scanner

import (
	"github.com/ava12/spellbreak"
)

// Error codes used by scanner:
const (
	// ZeroProgressError indicates that a repetition matched without consuming input.
	ZeroProgressError = spellbreak.ScannerErrors + iota
)

func zeroProgressError(s *Scanner) *spellbreak.Error {
	return s.Errorf(ZeroProgressError, spellbreak.InternalError, "repetition made no progress")
}
