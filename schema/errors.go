package schema

import (
	"strings"

	"github.com/ava12/spellbreak"
)

// Error codes used by schema:
const (
	// ConflictError indicates that a node kind is registered with a different field list.
	ConflictError = spellbreak.SchemaErrors + iota
	// UnknownKindError indicates that a node kind is not registered.
	UnknownKindError
	// FieldMismatchError indicates that a node's fields disagree with the registered ones.
	FieldMismatchError
	// ReferenceMismatchError indicates that the registry disagrees with the reference snapshot.
	ReferenceMismatchError
	// SnapshotError indicates that a reference snapshot cannot be decoded.
	SnapshotError
)

func fieldList(fields []string) string {
	return "[" + strings.Join(fields, ", ") + "]"
}

func conflictError(kind string, registered, fields []string) *spellbreak.Error {
	return spellbreak.FormatError(ConflictError, spellbreak.SchemaConflict,
		"node kind %s is registered with fields %s, cannot register %s", kind, fieldList(registered), fieldList(fields))
}

func unknownKindError(kind, suggestion string) *spellbreak.Error {
	return spellbreak.FormatError(UnknownKindError, spellbreak.SchemaConflict, "unknown node kind %s%s", kind, suggestion)
}

func fieldMismatchError(kind string, registered, fields []string) *spellbreak.Error {
	return spellbreak.FormatError(FieldMismatchError, spellbreak.SchemaConflict,
		"node kind %s has fields %s, registered %s", kind, fieldList(fields), fieldList(registered))
}

func referenceMismatchError(diffs []string) *spellbreak.Error {
	return spellbreak.FormatError(ReferenceMismatchError, spellbreak.SchemaConflict,
		"schema differs from reference:\n  %s", strings.Join(diffs, "\n  "))
}

func snapshotError(e error) *spellbreak.Error {
	return spellbreak.FormatError(SnapshotError, spellbreak.InternalError, "cannot read schema snapshot: %s", e)
}
