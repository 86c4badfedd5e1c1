// Package test contains assertion helpers shared by package tests.
// Every failed assertion stops the test, reporting the caller's file and line.
package test

import (
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ava12/spellbreak"
)

func fatalf(t *testing.T, message string, params ...any) {
	t.Helper()
	if len(params) > 0 {
		message = fmt.Sprintf(message, params...)
	}
	_, thisFile, _, _ := runtime.Caller(0)
	file := thisFile
	line := 0
	for i := 2; file == thisFile; i++ {
		_, file, line, _ = runtime.Caller(i)
	}
	t.Fatalf("%s at %s:%d", message, file, line)
}

func Assert(t *testing.T, cond bool, message string, params ...any) {
	t.Helper()
	if !cond {
		fatalf(t, message, params...)
	}
}

func Expect(t *testing.T, cond bool, expected, got any) {
	t.Helper()
	if !cond {
		fatalf(t, "expecting %v, got %v", expected, got)
	}
}

func ExpectBool(t *testing.T, expected, got bool) {
	t.Helper()
	Expect(t, expected == got, expected, got)
}

func ExpectInt(t *testing.T, expected, got int) {
	t.Helper()
	Expect(t, expected == got, expected, got)
}

func ExpectString(t *testing.T, expected, got string) {
	t.Helper()
	if expected != got {
		fatalf(t, "expecting %q, got %q", expected, got)
	}
}

// ExpectEqual compares values with go-cmp.
func ExpectEqual(t *testing.T, expected, got any, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(expected, got, opts...); diff != "" {
		fatalf(t, "unexpected value (-want +got):\n%s", diff)
	}
}

func ExpectNoError(t *testing.T, e error) {
	t.Helper()
	if e != nil {
		fatalf(t, "unexpected error: %s", e)
	}
}

// AsError extracts *spellbreak.Error from e, possibly wrapped.
func AsError(t *testing.T, e error) *spellbreak.Error {
	t.Helper()
	var ee *spellbreak.Error
	if !errors.As(e, &ee) {
		fatalf(t, "expecting spellbreak error, got %v", e)
	}
	return ee
}

func ExpectErrorCode(t *testing.T, expected int, e error) {
	t.Helper()
	var ee *spellbreak.Error
	if errors.As(e, &ee) && ee.Code == expected {
		return
	}

	fatalf(t, "expecting error code %d, got %v", expected, e)
}

func ExpectErrorKind(t *testing.T, expected spellbreak.ErrorKind, e error) {
	t.Helper()
	if !spellbreak.IsKind(e, expected) {
		fatalf(t, "expecting %s, got %v", expected, e)
	}
}

// ExpectErrorPos checks 1-based line and column and absolute byte offset of an error.
func ExpectErrorPos(t *testing.T, line, col, offset int, e error) {
	t.Helper()
	ee := AsError(t, e)
	if ee.Line != line || ee.Col != col || ee.Offset != offset {
		fatalf(t, "expecting error at %d:%d (offset %d), got %d:%d (offset %d)", line, col, offset, ee.Line, ee.Col, ee.Offset)
	}
}
