package regex

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ava12/spellbreak"
	"github.com/ava12/spellbreak/ast"
	. "github.com/ava12/spellbreak/internal/test"
	"github.com/ava12/spellbreak/schema"
	"github.com/ava12/spellbreak/scanner"
)

func newParser(src string) *Parser {
	return New(scanner.NewString("test", src))
}

func tok(kind, text string) ast.Token {
	return ast.NewToken(kind, text)
}

func seq(units ...ast.Value) *Seq {
	if units == nil {
		units = []ast.Value{}
	}
	return &Seq{units}
}

func TestCharRange(t *testing.T) {
	p := newParser("a-z")
	n, ok, e := p.CharClass()
	ExpectNoError(t, e)
	Assert(t, ok, "expecting char class")
	if diff := cmp.Diff(&CharRange{97, 122}, n); diff != "" {
		t.Errorf("unexpected class (-want +got):\n%s", diff)
	}
}

func TestCharClass(t *testing.T) {
	samples := []struct {
		src      string
		expected ast.Node
	}{
		{"a", &CharRange{'a', 'a'}},
		{`\w`, &CharGroupPredef{tok(PredefCharGroup, `\w`)}},
		{`\t`, &CharRange{'\t', '\t'}},
		{`\]`, &CharRange{']', ']'}},
		{"*", &CharRange{'*', '*'}},
		{"é-ü", &CharRange{'é', 'ü'}},
	}

	for _, s := range samples {
		t.Run(s.src, func(t *testing.T) {
			p := newParser(s.src)
			n, ok, e := p.CharClass()
			ExpectNoError(t, e)
			Assert(t, ok, "expecting char class")
			Assert(t, p.s.AtEnd(), "unexpected input %q", p.s.Rest())
			if diff := cmp.Diff(s.expected, n); diff != "" {
				t.Errorf("unexpected class (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEmptyGroup(t *testing.T) {
	p := newParser("()")
	g, ok, e := p.Group()
	ExpectNoError(t, e)
	Assert(t, ok, "expecting group")
	if diff := cmp.Diff(&Group{tok(GroupSpecialToken, ""), []*Seq{seq()}}, g); diff != "" {
		t.Errorf("unexpected group (-want +got):\n%s", diff)
	}
}

func TestNestedCharGroup(t *testing.T) {
	p := newParser("[[)]]")
	n, ok, e := p.CharGroup()
	ExpectNoError(t, e)
	Assert(t, ok, "expecting char group")
	expected := &BracketCharGroup{tok(BeginCharGroupToken, "["), []ast.Node{
		&BracketCharGroup{tok(BeginCharGroupToken, "["), []ast.Node{&CharRange{')', ')'}}},
	}}
	if diff := cmp.Diff(expected, n); diff != "" {
		t.Errorf("unexpected group (-want +got):\n%s", diff)
	}
}

func TestSeq(t *testing.T) {
	p := newParser("")
	n, e := p.Seq()
	ExpectNoError(t, e)
	ExpectInt(t, 0, len(n.Seq))

	p = newParser(`^a\.+[^0-9_]?\b`)
	n, e = p.Seq()
	ExpectNoError(t, e)
	expected := seq(
		&PredefAnchor{tok(AnchorToken, "^")},
		ast.Int('a'),
		&Quantified{ast.Int('.'), tok(QuantifierToken, "+")},
		&Quantified{
			&BracketCharGroup{tok(BeginCharGroupToken, "[^"), []ast.Node{&CharRange{'0', '9'}, &CharRange{'_', '_'}}},
			tok(QuantifierToken, "?"),
		},
		&PredefAnchor{tok(AnchorToken, `\b`)},
	)
	if diff := cmp.Diff(expected, n); diff != "" {
		t.Errorf("unexpected seq (-want +got):\n%s", diff)
	}
}

func TestBranches(t *testing.T) {
	p := newParser("|.")
	branches, e := p.Branches()
	ExpectNoError(t, e)
	expected := []*Seq{seq(), seq(&CharGroupPredef{tok(PredefCharGroup, ".")})}
	if diff := cmp.Diff(expected, branches); diff != "" {
		t.Errorf("unexpected branches (-want +got):\n%s", diff)
	}
}

func TestParse(t *testing.T) {
	r, e := Parse(scanner.NewString("", `\?\* | \?\? | (?:ab|c)*`))
	ExpectNoError(t, e)
	ExpectInt(t, 3, len(r.Reg))
	expected := seq(&Quantified{
		&Group{tok(GroupSpecialToken, "?:"), []*Seq{seq(ast.Int('a'), ast.Int('b')), seq(ast.Int('c'))}},
		tok(QuantifierToken, "*"),
	})
	if diff := cmp.Diff(expected, r.Reg[2]); diff != "" {
		t.Errorf("unexpected branch (-want +got):\n%s", diff)
	}
}

func TestLookaroundGroups(t *testing.T) {
	for _, special := range []string{"?:", "?=", "?!", "?<=", "?<!", "?>"} {
		g, ok, e := newParser("(" + special + "x)").Group()
		ExpectNoError(t, e)
		Assert(t, ok, "expecting group")
		ExpectString(t, special, g.Special.Text)
	}
}

func TestErrors(t *testing.T) {
	samples := []struct {
		src  string
		code int
		kind spellbreak.ErrorKind
	}{
		{"(ab", UnclosedGroupError, spellbreak.SyntaxError},
		{"a[bc", UnclosedCharGroupError, spellbreak.SyntaxError},
		{"[", UnclosedCharGroupError, spellbreak.SyntaxError},
		{"[]", ExpectCharClassError, spellbreak.SyntaxError},
		{"[a/]", ExpectCharGroupEndError, spellbreak.SyntaxError},
		{"[a-]", ExpectRangeEndError, spellbreak.SyntaxError},
		{`\p{L}`, UnicodeClassError, spellbreak.Unsupported},
		{`[a\P{Lu}]`, UnicodeClassError, spellbreak.Unsupported},
		{"a)", UnexpectedInputError, spellbreak.SyntaxError},
		{"a{2}", UnexpectedInputError, spellbreak.SyntaxError},
	}

	for _, s := range samples {
		t.Run(s.src, func(t *testing.T) {
			_, e := Parse(scanner.NewString("", s.src))
			ExpectErrorCode(t, s.code, e)
			ExpectErrorKind(t, s.kind, e)
		})
	}
}

func TestNodesMatchKinds(t *testing.T) {
	r := schema.New()
	ExpectNoError(t, Register(r))
	nodes := []ast.Node{
		&Regexp{}, &Seq{}, &PredefAnchor{}, &Quantified{}, &Group{},
		&CharGroupPredef{}, &BracketCharGroup{}, &CharRange{},
	}
	for _, n := range nodes {
		ExpectNoError(t, r.Check(n.Kind(), ast.FieldNames(n)))
	}
}

func TestShapeOnlyKinds(t *testing.T) {
	r := schema.New()
	ExpectNoError(t, Register(r))
	samples := []struct {
		kind   string
		fields []string
	}{
		{"Branches", []string{"branches"}},
		{"Char", []string{"c"}},
		{"Flag", []string{"flag"}},
	}
	for _, s := range samples {
		fields, has := r.Fields(s.kind)
		Assert(t, has, "expecting %s to be registered", s.kind)
		ExpectEqual(t, s.fields, fields)
	}
}
