package callback

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ava12/spellbreak"
	"github.com/ava12/spellbreak/ast"
	. "github.com/ava12/spellbreak/internal/test"
	"github.com/ava12/spellbreak/scanner"
)

func newParser(src string) (*Parser, *Calls) {
	calls := NewCalls()
	return New(scanner.NewString("test", src), calls), calls
}

func varTok(name string) ast.Token {
	return ast.NewToken(VarToken, name)
}

func TestAssign(t *testing.T) {
	p, _ := newParser("x = 4")
	n, e := p.Assign()
	ExpectNoError(t, e)
	ExpectString(t, "x", n.VarName.Text)
	lit, valid := n.Expr.(ast.Lit)
	Assert(t, valid, "expecting literal, got %T", n.Expr)
	v, e := lit.Decode()
	ExpectNoError(t, e)
	Expect(t, v == int64(4), 4, v)
}

func TestCall(t *testing.T) {
	p, calls := newParser(":token true $1")
	n, ok, e := p.Call()
	ExpectNoError(t, e)
	Assert(t, ok, "expecting call")
	expected := &Call{ast.NewToken(FuncToken, ":token"), []Expr{
		ast.BoolLit(true),
		&Capture{ast.NewToken(CaptureToken, "$1")},
	}}
	if diff := cmp.Diff(expected, n); diff != "" {
		t.Errorf("unexpected call (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]CallSite{{":token", 2}}, calls.Entries()); diff != "" {
		t.Errorf("unexpected call sites (-want +got):\n%s", diff)
	}
}

func TestVarDecl(t *testing.T) {
	p, _ := newParser("var x")
	n, ok, e := p.Stmt()
	ExpectNoError(t, e)
	Assert(t, ok, "expecting statement")
	if diff := cmp.Diff(&VarDecl{varTok("x")}, n); diff != "" {
		t.Errorf("unexpected statement (-want +got):\n%s", diff)
	}

	p, _ = newParser("x")
	n, _, _ = p.Stmt()
	if diff := cmp.Diff(&VarRef{varTok("x")}, n); diff != "" {
		t.Errorf("unexpected statement (-want +got):\n%s", diff)
	}
}

func TestCapture(t *testing.T) {
	p, _ := newParser(" $-1 ")
	n, _, e := p.Stmt()
	ExpectNoError(t, e)
	if diff := cmp.Diff(&Capture{ast.NewToken(CaptureToken, "$-1")}, n); diff != "" {
		t.Errorf("unexpected statement (-want +got):\n%s", diff)
	}
}

func TestParen(t *testing.T) {
	p, _ := newParser("( 23 )")
	n, ok, e := p.Expr()
	ExpectNoError(t, e)
	Assert(t, ok, "expecting expression")
	Expect(t, n == ast.IntLit("23"), ast.IntLit("23"), n)
}

func TestStmts(t *testing.T) {
	samples := []struct {
		src   string
		count int
	}{
		{"a\n b", 2},
		{"a ,b", 2},
		{`:return, :token "end.lex"`, 2},
		{":style (:concat 1 z) $1", 1},
		{"\n\n,,", 0},
		{"", 0},
	}

	for _, s := range samples {
		t.Run(s.src, func(t *testing.T) {
			p, _ := newParser(s.src)
			stmts, e := p.Stmts()
			ExpectNoError(t, e)
			ExpectInt(t, s.count, len(stmts))
			Assert(t, p.s.AtEnd(), "unexpected input %q", p.s.Rest())
		})
	}
}

func TestParse(t *testing.T) {
	src := "\n  :style (:concat 1 z) $1\n" +
		"  :String\n" +
		"  :return, :token true $1\n" +
		"  var y\n" +
		"  y = Node[$1, [\"s\", nil]\n" +
		"    false, -3]\n"
	p, calls := newParser(src)
	n, e := p.Parse()
	ExpectNoError(t, e)
	ExpectInt(t, 6, len(n.Stmts))

	expected := &Assign{varTok("y"), &CreateNode{ast.NewToken(TypeToken, "Node"), []Expr{
		&Capture{ast.NewToken(CaptureToken, "$1")},
		&CreateList{[]Expr{ast.QuotedStrLit(`"s"`), ast.NilLit()}},
		ast.BoolLit(false),
		ast.IntLit("-3"),
	}}}
	if diff := cmp.Diff(expected, n.Stmts[5]); diff != "" {
		t.Errorf("unexpected statement (-want +got):\n%s", diff)
	}

	expectedCalls := []CallSite{{":concat", 2}, {":style", 2}, {":String", 0}, {":return", 0}, {":token", 2}}
	if diff := cmp.Diff(expectedCalls, calls.Entries()); diff != "" {
		t.Errorf("unexpected call sites (-want +got):\n%s", diff)
	}
}

func TestParseEmpty(t *testing.T) {
	p, _ := newParser("  \n ")
	n, e := p.Parse()
	ExpectNoError(t, e)
	Assert(t, n.Stmts != nil, "expecting empty statement list")
	ExpectInt(t, 0, len(n.Stmts))
}

func TestStringLiteralIsVerbatim(t *testing.T) {
	samples := []struct {
		src, code, value string
	}{
		{`"end.lex"`, `STR("end.lex")`, "end.lex"},
		{`"\n"`, `STR("\n")`, "\n"},
		{`"a\b"`, `STR("a\b")`, "a\b"},
		{"\"a\tb\"", "STR(\"a\tb\")", "a\tb"},
		{`"\\x"`, `STR("\\x")`, `\x`},
		{`""`, `STR("")`, ""},
	}

	for _, sample := range samples {
		p, _ := newParser(sample.src)
		n, ok, e := p.Expr()
		ExpectNoError(t, e)
		Assert(t, ok, "expecting literal for %q", sample.src)
		lit := n.(ast.Lit)
		ExpectString(t, sample.code, lit.Code)
		v, e := lit.Decode()
		ExpectNoError(t, e)
		Expect(t, v == sample.value, sample.value, v)
	}
}

func TestCallStringArgKeepsEscapes(t *testing.T) {
	p, _ := newParser(`:token "\n"`)
	c, ok, e := p.Call()
	ExpectNoError(t, e)
	Assert(t, ok, "expecting call")
	ExpectInt(t, 1, len(c.Args))
	ExpectString(t, `STR("\n")`, c.Args[0].(ast.Lit).Code)
}

func TestErrors(t *testing.T) {
	samples := []struct {
		src  string
		code int
	}{
		{"var", ExpectVarNameError},
		{"var 1", ExpectVarNameError},
		{"(1", MissingParenError},
		{"()", ExpectExprError},
		{"Foo 1", ExpectListError},
		{"[1, 2", MissingBracketError},
		{"Foo[1 ?]", MissingBracketError},
		{"x = ", ExpectExprError},
		{":f 1 ?", UnrecognizedArgError},
		{"a ]", UnexpectedInputError},
		{"a )", UnexpectedInputError},
	}

	for _, s := range samples {
		t.Run(s.src, func(t *testing.T) {
			p, calls := newParser(s.src)
			_, e := p.Parse()
			ExpectErrorCode(t, s.code, e)
			ExpectErrorKind(t, spellbreak.SyntaxError, e)
			if s.code == UnrecognizedArgError {
				ExpectInt(t, 0, calls.Len())
			}
		})
	}
}

func TestErrorPositionInSubrange(t *testing.T) {
	s := scanner.NewString("rules", "/x/ { :f ? }")
	_, e := Parse(s.Sub(5, 11), nil)
	ExpectErrorCode(t, UnrecognizedArgError, e)
	ExpectErrorPos(t, 1, 10, 9, e)
	ExpectString(t, "?", AsError(t, e).Rest)
}
