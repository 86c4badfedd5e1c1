/*
Package spellbreak is the bootstrap front end of the spellbreak toolchain.

Consists of subpackages:
  - source: immutable source buffer with line/column mapping;
  - scanner: cursor over a source with anchored pattern probing and backtracking combinators;
  - ast: tokens, node interface and field values shared by all grammars;
  - schema: registry of node kinds and their ordered field names;
  - callback: parser for the callback (action) language, embedded by lexdef and pegdef;
  - regex: parser for the constrained regular expression language, embedded by lexdef;
  - lexdef: parser for lexer rule definitions;
  - pegdef: parser for PEG rule definitions;
  - emit: serializer producing the NODE/LIST/TOKEN wire format;
  - grammar: closed set of grammars and entry points;
  - parser: front end tying registries, parsers and the emitter together;
  - config: layered settings (YAML file, SBGEN_ environment variables, flags);
  - cmd/sbgen: console utility emitting the wire format for grammar fragments.

Typical usage is:

1. Create a parser.Frontend, it registers node kinds of all grammars in its schema registry.

2. Compile a fragment with one of grammar entry points, the result is the serialized AST.

3. Inspect the call-site registry of the front end to cross-check arities across fragments.
*/
package spellbreak

import (
	"errors"
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	CallbackErrors = 1   // used by callback
	RegexErrors    = 101 // used by regex
	LexErrors      = 201 // used by lexdef
	PegErrors      = 301 // used by pegdef
	SchemaErrors   = 401 // used by schema and emit
	ScannerErrors  = 501 // used by scanner
	ParserErrors   = 601 // used by parser and grammar
)

// ErrorKind classifies errors independently of the package that raised them.
type ErrorKind int

const (
	// SyntaxError means a required production could not match at the current position.
	SyntaxError ErrorKind = iota + 1

	// SchemaConflict means a node kind disagrees with its registered field list.
	SchemaConflict

	// Unsupported means a construct was recognized only to be rejected.
	Unsupported

	// InternalError means a parser invariant was violated (e.g. a loop made no progress).
	InternalError
)

var kindNames = map[ErrorKind]string{
	SyntaxError:    "syntax error",
	SchemaConflict: "schema conflict",
	Unsupported:    "unsupported",
	InternalError:  "internal error",
}

func (k ErrorKind) String() string {
	name, has := kindNames[k]
	if !has {
		return fmt.Sprintf("error kind %d", int(k))
	}
	return name
}

// Error is the error type used by spellbreak subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Kind contains error category.
	Kind ErrorKind

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source file or 0.
	Line int

	// Col contains column number in source file or 0.
	Col int

	// Offset contains absolute byte offset of the cursor or -1.
	Offset int

	// Rest contains unconsumed input at the cursor or empty string.
	Rest string
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// source.Pos implements this interface.
type SourcePos interface {
	// SourceName returns source file name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
	// Offset returns absolute byte offset.
	Offset() int
}

// NewError creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func NewError(code int, kind ErrorKind, msg, name string, line, col int) *Error {
	if line != 0 && col != 0 {
		if name != "" {
			msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
		} else {
			msg += fmt.Sprintf(" at line %d col %d", line, col)
		}
	}
	return &Error{Code: code, Kind: kind, Message: msg, SourceName: name, Line: line, Col: col, Offset: -1}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, kind ErrorKind, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, kind, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, kind ErrorKind, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	e := NewError(code, kind, msg, pos.SourceName(), pos.Line(), pos.Col())
	e.Offset = pos.Offset()
	e.Message += fmt.Sprintf(" (offset %d)", e.Offset)
	return e
}

// IsKind reports whether e is or wraps an *Error of given kind.
func IsKind(e error, kind ErrorKind) bool {
	var ee *Error
	return errors.As(e, &ee) && ee.Kind == kind
}
