// Package scanner defines the cursor all grammar parsers read through.
//
// A Scanner probes anchored regular expressions at the cursor. A successful probe
// advances the cursor past the match, a failed one leaves it untouched.
// Positions are absolute byte offsets in the underlying source, so a scanner
// restricted to a sub-range (see Sub) reports positions that are valid for the
// whole source.
package scanner

import (
	"bytes"
	"fmt"
	"regexp"
	"unicode"

	"github.com/ava12/spellbreak"
	"github.com/ava12/spellbreak/source"
)

// Pattern compiles expr anchored at the cursor. Panics if expr is not valid.
func Pattern(expr string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + expr + `)`)
}

// Scanner is a cursor over a byte range of an immutable source.
type Scanner struct {
	src        *source.Source
	content    []byte
	pos        int
	start, end int
}

// New creates a scanner over the whole source.
func New(src *source.Source) *Scanner {
	return &Scanner{src: src, content: src.Content(), end: src.Len()}
}

// NewString is a shortcut for New(source.NewString(name, content)).
func NewString(name, content string) *Scanner {
	return New(source.NewString(name, content))
}

// Sub creates a scanner restricted to [from, to) of the same source.
// The new scanner starts at from; end-of-input is reported at to.
func (s *Scanner) Sub(from, to int) *Scanner {
	if from < 0 {
		from = 0
	}
	if to > len(s.content) {
		to = len(s.content)
	}
	if to < from {
		to = from
	}
	return &Scanner{src: s.src, content: s.content, pos: from, start: from, end: to}
}

// TrimSpace moves the cursor past leading white space and cuts trailing white space off the range.
func (s *Scanner) TrimSpace() {
	for s.pos < s.end && isSpace(s.content[s.pos]) {
		s.pos++
	}
	for s.end > s.pos && isSpace(s.content[s.end-1]) {
		s.end--
	}
}

func isSpace(b byte) bool {
	return b < 0x80 && unicode.IsSpace(rune(b))
}

// Source returns scanned source.
func (s *Scanner) Source() *source.Source {
	return s.src
}

// Probe matches re at the cursor. On success the cursor is advanced past the match.
// Returns matched text and true or "" and false leaving the cursor intact.
func (s *Scanner) Probe(re *regexp.Regexp) (string, bool) {
	m := re.FindIndex(s.content[s.pos:s.end])
	if m == nil || m[0] != 0 {
		return "", false
	}

	text := string(s.content[s.pos : s.pos+m[1]])
	s.pos += m[1]
	return text, true
}

// ProbeSub is like Probe but also returns absolute [from, to) bounds of submatch n.
// Bounds are -1 if the submatch did not participate.
func (s *Scanner) ProbeSub(re *regexp.Regexp, n int) (text string, from, to int, ok bool) {
	m := re.FindSubmatchIndex(s.content[s.pos:s.end])
	if m == nil || m[0] != 0 {
		return "", -1, -1, false
	}

	from, to = -1, -1
	if 2*n+1 < len(m) && m[2*n] >= 0 {
		from, to = s.pos+m[2*n], s.pos+m[2*n+1]
	}
	text = string(s.content[s.pos : s.pos+m[1]])
	s.pos += m[1]
	return text, from, to, true
}

// Check tells whether re matches at the cursor, never moves the cursor.
func (s *Scanner) Check(re *regexp.Regexp) bool {
	m := re.FindIndex(s.content[s.pos:s.end])
	return m != nil && m[0] == 0
}

// Skip advances the cursor past re if it matches.
func (s *Scanner) Skip(re *regexp.Regexp) {
	s.Probe(re)
}

// Pos returns absolute cursor offset.
func (s *Scanner) Pos() int {
	return s.pos
}

// Restore moves the cursor back to pos saved with Pos.
// Moving the cursor forward or out of scanned range is a programming error and panics.
func (s *Scanner) Restore(pos int) {
	if pos > s.pos || pos < s.start {
		panic(fmt.Sprintf("cannot restore cursor to %d: current %d, start %d", pos, s.pos, s.start))
	}

	s.pos = pos
}

// AtEnd tells whether the cursor reached end of scanned range.
func (s *Scanner) AtEnd() bool {
	return s.pos >= s.end
}

// Rest returns unconsumed input.
func (s *Scanner) Rest() string {
	return string(s.content[s.pos:s.end])
}

// Bounds returns absolute [start, end) range of the scanner.
func (s *Scanner) Bounds() (start, end int) {
	return s.start, s.end
}

// Text returns source text in absolute range [from, to).
func (s *Scanner) Text(from, to int) string {
	return string(s.content[from:to])
}

// SourcePos returns resolved cursor position.
func (s *Scanner) SourcePos() source.Pos {
	return source.NewPos(s.src, s.pos)
}

const restLimit = 32

func quoteRest(rest string) string {
	if len(rest) == 0 {
		return "end of input"
	}

	if len(rest) > restLimit {
		cut := restLimit
		for cut > 0 && !isRuneStart(rest[cut]) {
			cut--
		}
		return fmt.Sprintf("%q...", rest[:cut])
	}
	return fmt.Sprintf("%q", rest)
}

func isRuneStart(b byte) bool {
	return b&0xc0 != 0x80
}

// Errorf creates an error at the cursor, message gets the unconsumed input appended.
func (s *Scanner) Errorf(code int, kind spellbreak.ErrorKind, msg string, params ...any) *spellbreak.Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	rest := s.Rest()
	e := spellbreak.FormatErrorPos(s.SourcePos(), code, kind, "%s near %s", msg, quoteRest(rest))
	e.Rest = rest
	return e
}

// SyntaxErrorf is a shortcut for Errorf(code, spellbreak.SyntaxError, ...).
func (s *Scanner) SyntaxErrorf(code int, msg string, params ...any) *spellbreak.Error {
	return s.Errorf(code, spellbreak.SyntaxError, msg, params...)
}

// HasByte tells whether unconsumed input contains b.
func (s *Scanner) HasByte(b byte) bool {
	return bytes.IndexByte(s.content[s.pos:s.end], b) >= 0
}
