package pegdef

import (
	"github.com/ava12/spellbreak/ast"
	"github.com/ava12/spellbreak/callback"
	"github.com/ava12/spellbreak/schema"
)

// Token kinds produced by pegdef parser.
const (
	ContextToken          = "kw.peg"
	RuleNameToken         = "name.rule"
	TokenNameToken        = "name.token"
	BranchToken           = "op.branch"
	QuantifiedBranchToken = "op.branch.quantified"
)

// EpsilonName is the reserved rule name matching empty input.
const EpsilonName = "EPSILON"

// Kinds lists node kinds of the PEG grammar.
var Kinds = []schema.Kind{
	{"Peg", []string{"context", "rules"}},
	{"PegRule", []string{"name", "body"}},
	{"SeqRule", []string{"terms", "code"}},
	{"BranchRight", []string{"branch_op", "rhs"}},
	{"Term", []string{"unit"}},
	{"TermStar", []string{"unit"}},
	{"TermPlus", []string{"unit"}},
	{"TermMaybe", []string{"unit"}},
	{"Lookahead", []string{"unit"}},
	{"NegLookahead", []string{"unit"}},
	{"RefRule", []string{"name"}},
	{"RefToken", []string{"name"}},
	{"EpsilonRule", nil},
}

// Register adds PEG node kinds to r.
func Register(r *schema.Registry) error {
	return r.AddAll(Kinds)
}

// Peg is the root node: context name and rules.
type Peg struct {
	Context ast.Token
	Rules   []*PegRule
}

func (n *Peg) Kind() string { return "Peg" }
func (n *Peg) Fields() []ast.Field {
	return []ast.Field{{"context", n.Context}, {"rules", ast.ListOf(n.Rules)}}
}

// PegRule is a named rule. Body starts with *SeqRule followed by *BranchRight alternatives.
type PegRule struct {
	Name ast.Token
	Body []ast.Node
}

func (n *PegRule) Kind() string { return "PegRule" }
func (n *PegRule) Fields() []ast.Field {
	return []ast.Field{{"name", n.Name}, {"body", ast.ListOf(n.Body)}}
}

// SeqRule is a sequence of terms with at most one callback.
type SeqRule struct {
	Terms []ast.Node
	Code  []*callback.Callback
}

func (n *SeqRule) Kind() string { return "SeqRule" }
func (n *SeqRule) Fields() []ast.Field {
	return []ast.Field{{"terms", ast.ListOf(n.Terms)}, {"code", ast.ListOf(n.Code)}}
}

// BranchRight is an ordered alternative, BranchOp is "/" or one of "/*", "/+", "/?".
type BranchRight struct {
	BranchOp ast.Token
	Rhs      *SeqRule
}

func (n *BranchRight) Kind() string { return "BranchRight" }
func (n *BranchRight) Fields() []ast.Field {
	return []ast.Field{{"branch_op", n.BranchOp}, {"rhs", n.Rhs}}
}

// Term is an unquantified unit.
type Term struct {
	Unit ast.Node
}

func (n *Term) Kind() string { return "Term" }
func (n *Term) Fields() []ast.Field {
	return []ast.Field{{"unit", n.Unit}}
}

// TermStar is a unit repeated zero or more times.
type TermStar struct {
	Unit ast.Node
}

func (n *TermStar) Kind() string { return "TermStar" }
func (n *TermStar) Fields() []ast.Field {
	return []ast.Field{{"unit", n.Unit}}
}

// TermPlus is a unit repeated one or more times.
type TermPlus struct {
	Unit ast.Node
}

func (n *TermPlus) Kind() string { return "TermPlus" }
func (n *TermPlus) Fields() []ast.Field {
	return []ast.Field{{"unit", n.Unit}}
}

// TermMaybe is an optional unit.
type TermMaybe struct {
	Unit ast.Node
}

func (n *TermMaybe) Kind() string { return "TermMaybe" }
func (n *TermMaybe) Fields() []ast.Field {
	return []ast.Field{{"unit", n.Unit}}
}

// Lookahead matches a unit without consuming input.
type Lookahead struct {
	Unit ast.Node
}

func (n *Lookahead) Kind() string { return "Lookahead" }
func (n *Lookahead) Fields() []ast.Field {
	return []ast.Field{{"unit", n.Unit}}
}

// NegLookahead succeeds if a unit does not match, consuming no input.
// It has no surface syntax yet.
type NegLookahead struct {
	Unit ast.Node
}

func (n *NegLookahead) Kind() string { return "NegLookahead" }
func (n *NegLookahead) Fields() []ast.Field {
	return []ast.Field{{"unit", n.Unit}}
}

// RefRule refers to a rule by name.
type RefRule struct {
	Name ast.Token
}

func (n *RefRule) Kind() string { return "RefRule" }
func (n *RefRule) Fields() []ast.Field {
	return []ast.Field{{"name", n.Name}}
}

// RefToken refers to a token by name.
type RefToken struct {
	Name ast.Token
}

func (n *RefToken) Kind() string { return "RefToken" }
func (n *RefToken) Fields() []ast.Field {
	return []ast.Field{{"name", n.Name}}
}

// EpsilonRule matches empty input.
type EpsilonRule struct{}

func (n *EpsilonRule) Kind() string { return "EpsilonRule" }
func (n *EpsilonRule) Fields() []ast.Field {
	return []ast.Field{}
}
