package scanner

import (
	"strings"
	"testing"

	"github.com/ava12/spellbreak"
	. "github.com/ava12/spellbreak/internal/test"
)

var (
	wordRe  = Pattern(`[a-z]+`)
	spaceRe = Pattern(` *`)
	emptyRe = Pattern(`x*`)
)

func TestProbe(t *testing.T) {
	s := NewString("", "foo bar")
	text, ok := s.Probe(wordRe)
	Assert(t, ok, "expecting match")
	ExpectString(t, "foo", text)
	ExpectInt(t, 3, s.Pos())

	text, ok = s.Probe(wordRe)
	Assert(t, !ok, "unexpected match %q", text)
	ExpectInt(t, 3, s.Pos())

	s.Skip(spaceRe)
	Assert(t, s.Check(wordRe), "expecting lookahead match")
	ExpectInt(t, 4, s.Pos())
	ExpectString(t, "bar", s.Rest())
}

func TestProbeIsAnchored(t *testing.T) {
	s := NewString("", "  foo")
	_, ok := s.Probe(wordRe)
	Assert(t, !ok, "pattern must not match past the cursor")
	ExpectInt(t, 0, s.Pos())
}

func TestSub(t *testing.T) {
	s := NewString("", "{ab} cd")
	sub := s.Sub(1, 3)
	ExpectInt(t, 1, sub.Pos())
	text, ok := sub.Probe(wordRe)
	Assert(t, ok, "expecting match")
	ExpectString(t, "ab", text)
	Assert(t, sub.AtEnd(), "expecting end of range")
	ExpectInt(t, 3, sub.Pos())
	ExpectInt(t, 0, s.Pos())
}

func TestEndAnchorInSub(t *testing.T) {
	s := NewString("", "ab}")
	sub := s.Sub(0, 2)
	Assert(t, sub.Check(Pattern(`ab\z`)), "\\z must match at range end")
}

func TestTrimSpace(t *testing.T) {
	s := NewString("", "  x y \n ")
	s.TrimSpace()
	ExpectString(t, "x y", s.Rest())
	ExpectInt(t, 2, s.Pos())
}

func TestRestoreForwardPanics(t *testing.T) {
	s := NewString("", "abc")
	defer func() {
		Assert(t, recover() != nil, "expecting panic")
	}()
	s.Restore(2)
}

func TestTryRestores(t *testing.T) {
	s := NewString("", "abc1")
	_, ok, e := Try(s, func() (string, bool, error) {
		s.Probe(wordRe)
		return "", false, nil
	})
	ExpectNoError(t, e)
	Assert(t, !ok, "unexpected match")
	ExpectInt(t, 0, s.Pos())
}

func TestOneOf(t *testing.T) {
	s := NewString("", "123")
	v, ok, e := OneOf(s, s.Match(wordRe), s.Match(Pattern(`\d+`)))
	ExpectNoError(t, e)
	Assert(t, ok, "expecting match")
	ExpectString(t, "123", v)
}

func TestMany(t *testing.T) {
	s := NewString("", "a b c1")
	words, e := Many(s, func() (string, bool, error) {
		s.Skip(spaceRe)
		w, ok := s.Probe(wordRe)
		return w, ok, nil
	})
	ExpectNoError(t, e)
	ExpectString(t, "a,b,c", strings.Join(words, ","))
	ExpectString(t, "1", s.Rest())
}

func TestZeroProgressIsRejected(t *testing.T) {
	samples := []string{"", "abc", "xxx"}
	for _, sample := range samples {
		s := NewString("", sample)
		_, e := Many(s, s.Match(emptyRe))
		ExpectErrorCode(t, ZeroProgressError, e)
		ExpectErrorKind(t, spellbreak.InternalError, e)
	}
}

func TestErrorf(t *testing.T) {
	s := NewString("frag", "ab\ncd")
	s.Probe(wordRe)
	s.Skip(Pattern(`\n`))
	e := s.SyntaxErrorf(42, "expect %s", "digit")
	ExpectInt(t, 2, e.Line)
	ExpectInt(t, 1, e.Col)
	ExpectInt(t, 3, e.Offset)
	ExpectString(t, "cd", e.Rest)
	ExpectString(t, `expect digit near "cd" in frag at line 2 col 1 (offset 3)`, e.Error())
}

func TestErrorfTruncatesRest(t *testing.T) {
	long := strings.Repeat("z", 40)
	s := NewString("", long)
	e := s.SyntaxErrorf(1, "oops")
	Assert(t, strings.Contains(e.Message, `"`+strings.Repeat("z", restLimit)+`"...`), "unexpected message %q", e.Message)
	ExpectString(t, long, e.Rest)
}
