package emit

import (
	"github.com/ava12/spellbreak"
)

// Error codes used by emit, schema check failures are reported with schema error codes:
const (
	// UnsupportedValueError indicates a node field value of unknown type.
	UnsupportedValueError = spellbreak.SchemaErrors + 50 + iota
	// UnknownTokenModeError indicates an unknown token mode name.
	UnknownTokenModeError
)

func unsupportedValueError(v any) *spellbreak.Error {
	return spellbreak.FormatError(UnsupportedValueError, spellbreak.InternalError, "cannot emit value of type %T", v)
}

func unknownTokenModeError(name string) *spellbreak.Error {
	return spellbreak.FormatError(UnknownTokenModeError, spellbreak.InternalError, "unknown token mode %q, expecting tagged or bare", name)
}
