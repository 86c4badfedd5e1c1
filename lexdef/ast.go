package lexdef

import (
	"github.com/ava12/spellbreak/ast"
	"github.com/ava12/spellbreak/callback"
	"github.com/ava12/spellbreak/schema"
)

// Token kinds produced by lexdef parser.
const (
	ContextToken        = "kw.lex"
	PartialContextToken = "name.context.partial"
	ContextNameToken    = "name.context"
)

// Kinds lists node kinds of the lexer grammar.
var Kinds = []schema.Kind{
	{"Lex", []string{"context", "rules"}},
	{"String", []string{"str"}},
	{"RefPartialContext", []string{"name"}},
	{"RefContext", []string{"name"}},
	{"SeqLexRules", []string{"rules"}},
	{"PureCallbackRule", []string{"code"}},
	{"BeginCallback", []string{"first_cb", "rules"}},
	{"EndCallback", []string{"first_cb", "rules"}},
	{"LexRule", []string{"pattern", "code"}},
}

// Register adds lexer node kinds to r.
func Register(r *schema.Registry) error {
	return r.AddAll(Kinds)
}

// Lex is the root node: context name and rule lines.
type Lex struct {
	Context ast.Token
	Rules   []ast.Node
}

func (n *Lex) Kind() string { return "Lex" }
func (n *Lex) Fields() []ast.Field {
	return []ast.Field{{"context", n.Context}, {"rules", ast.ListOf(n.Rules)}}
}

// String is a quoted string pattern, Str is the text between quotes as is.
type String struct {
	Str string
}

func (n *String) Kind() string { return "String" }
func (n *String) Fields() []ast.Field {
	return []ast.Field{{"str", ast.Str(n.Str)}}
}

// RefPartialContext splices rules of a partial context, e.g. *Spaces.
type RefPartialContext struct {
	Name ast.Token
}

func (n *RefPartialContext) Kind() string { return "RefPartialContext" }
func (n *RefPartialContext) Fields() []ast.Field {
	return []ast.Field{{"name", n.Name}}
}

// RefContext refers to another context by name.
type RefContext struct {
	Name ast.Token
}

func (n *RefContext) Kind() string { return "RefContext" }
func (n *RefContext) Fields() []ast.Field {
	return []ast.Field{{"name", n.Name}}
}

// SeqLexRules is a line of rules, each either *LexRule or *RefContext.
type SeqLexRules struct {
	Rules []ast.Node
}

func (n *SeqLexRules) Kind() string { return "SeqLexRules" }
func (n *SeqLexRules) Fields() []ast.Field {
	return []ast.Field{{"rules", ast.ListOf(n.Rules)}}
}

// PureCallbackRule is a callback line with no pattern.
type PureCallbackRule struct {
	Code *callback.Callback
}

func (n *PureCallbackRule) Kind() string { return "PureCallbackRule" }
func (n *PureCallbackRule) Fields() []ast.Field {
	return []ast.Field{{"code", n.Code}}
}

// BeginCallback is a "begin" hook line, FirstCb may be nil.
type BeginCallback struct {
	FirstCb *callback.Callback
	Rules   []ast.Node
}

func (n *BeginCallback) Kind() string { return "BeginCallback" }
func (n *BeginCallback) Fields() []ast.Field {
	return []ast.Field{{"first_cb", ast.Optional(n.FirstCb)}, {"rules", ast.ListOf(n.Rules)}}
}

// EndCallback is an "end" hook line, FirstCb may be nil.
type EndCallback struct {
	FirstCb *callback.Callback
	Rules   []ast.Node
}

func (n *EndCallback) Kind() string { return "EndCallback" }
func (n *EndCallback) Fields() []ast.Field {
	return []ast.Field{{"first_cb", ast.Optional(n.FirstCb)}, {"rules", ast.ListOf(n.Rules)}}
}

// LexRule is a pattern (*String or *regex.Regexp) with at most one callback.
type LexRule struct {
	Pattern ast.Node
	Code    []*callback.Callback
}

func (n *LexRule) Kind() string { return "LexRule" }
func (n *LexRule) Fields() []ast.Field {
	return []ast.Field{{"pattern", n.Pattern}, {"code", ast.ListOf(n.Code)}}
}
