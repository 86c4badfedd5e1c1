package regex

import (
	"github.com/ava12/spellbreak/ast"
	"github.com/ava12/spellbreak/schema"
)

// Token kinds produced by regex parser.
const (
	AnchorToken         = "anchor"
	QuantifierToken     = "quantifier"
	GroupSpecialToken   = "group.special"
	PredefCharGroup     = "char-group.predef"
	BeginCharGroupToken = "begin.char-group"
)

// Kinds lists node kinds of the regex grammar.
// Branches, Char and Flag are registered to keep the schema in agreement with later stages,
// the parser never builds them: branch lists are emitted as a list, single characters as an integer,
// and flags have no syntax.
var Kinds = []schema.Kind{
	{"Regexp", []string{"reg"}},
	{"Branches", []string{"branches"}},
	{"Seq", []string{"seq"}},
	{"PredefAnchor", []string{"anchor"}},
	{"Quantified", []string{"unit", "quantifier"}},
	{"Group", []string{"special", "branches"}},
	{"CharGroupPredef", []string{"tok"}},
	{"BracketCharGroup", []string{"beg_tok", "char_classes"}},
	{"CharRange", []string{"from", "to"}},
	{"Char", []string{"c"}},
	{"Flag", []string{"flag"}},
}

// Register adds regex node kinds to r.
func Register(r *schema.Registry) error {
	return r.AddAll(Kinds)
}

// Unit is a quantifiable part of a sequence: *Group, *CharGroupPredef, *BracketCharGroup, or ast.Int code point.
type Unit = ast.Value

func branchList(branches []*Seq) ast.List {
	return ast.ListOf(branches)
}

// Regexp is the root node, a list of alternative branches.
type Regexp struct {
	Reg []*Seq
}

func (n *Regexp) Kind() string { return "Regexp" }
func (n *Regexp) Fields() []ast.Field {
	return []ast.Field{{"reg", branchList(n.Reg)}}
}

// Seq is a sequence of units and anchors.
type Seq struct {
	Seq []ast.Value
}

func (n *Seq) Kind() string { return "Seq" }
func (n *Seq) Fields() []ast.Field {
	return []ast.Field{{"seq", ast.List(n.Seq)}}
}

// PredefAnchor is one of ^ $ \b \B \a \A \z \Z.
type PredefAnchor struct {
	Anchor ast.Token
}

func (n *PredefAnchor) Kind() string { return "PredefAnchor" }
func (n *PredefAnchor) Fields() []ast.Field {
	return []ast.Field{{"anchor", n.Anchor}}
}

// Quantified is a unit followed by one of ? * +.
type Quantified struct {
	Unit       Unit
	Quantifier ast.Token
}

func (n *Quantified) Kind() string { return "Quantified" }
func (n *Quantified) Fields() []ast.Field {
	return []ast.Field{{"unit", n.Unit}, {"quantifier", n.Quantifier}}
}

// Group is a parenthesized list of branches.
// Special is empty for capturing groups, otherwise one of ?: ?= ?! ?<= ?<! ?>.
type Group struct {
	Special  ast.Token
	Branches []*Seq
}

func (n *Group) Kind() string { return "Group" }
func (n *Group) Fields() []ast.Field {
	return []ast.Field{{"special", n.Special}, {"branches", branchList(n.Branches)}}
}

// CharGroupPredef is one of \d \D \w \W \h \H \s \S or dot.
type CharGroupPredef struct {
	Tok ast.Token
}

func (n *CharGroupPredef) Kind() string { return "CharGroupPredef" }
func (n *CharGroupPredef) Fields() []ast.Field {
	return []ast.Field{{"tok", n.Tok}}
}

// BracketCharGroup is a bracketed character group, BegTok is either "[" or "[^".
// Classes are *CharRange, *CharGroupPredef, or nested *BracketCharGroup.
type BracketCharGroup struct {
	BegTok      ast.Token
	CharClasses []ast.Node
}

func (n *BracketCharGroup) Kind() string { return "BracketCharGroup" }
func (n *BracketCharGroup) Fields() []ast.Field {
	return []ast.Field{{"beg_tok", n.BegTok}, {"char_classes", ast.ListOf(n.CharClasses)}}
}

// CharRange is an inclusive code point range, single characters have From == To.
type CharRange struct {
	From, To ast.Int
}

func (n *CharRange) Kind() string { return "CharRange" }
func (n *CharRange) Fields() []ast.Field {
	return []ast.Field{{"from", n.From}, {"to", n.To}}
}
