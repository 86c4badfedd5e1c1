// Package pegdef implements the parser for PEG rule definitions.
//
// Each rule occupies a line, alternatives may continue on following lines:
//
//	Term : Name op.quantified { :node "Term" $1 $2 }
//	     / &Name EPSILON
//	     /* Other+ Maybe?
//
// Upper case names refer to rules, lower case names refer to tokens.
package pegdef

import (
	"slices"
	"strings"

	"github.com/ava12/spellbreak/ast"
	"github.com/ava12/spellbreak/callback"
	"github.com/ava12/spellbreak/scanner"
)

var (
	eolsRe      = scanner.Pattern(`([ \t]*(#[^\n]*)?(\n|\z))+`)
	lineSpaceRe = scanner.Pattern(`[ \t]*`)
	ruleNameRe  = scanner.Pattern(`[A-Z]\w*(\.\w+)*`)
	tokenNameRe = scanner.Pattern(`[a-z]\w*(-\w+)*(\.\w+(-\w+)*)*`)
	defOpRe     = scanner.Pattern(` *: *`)
	branchOpRe  = scanner.Pattern(`[ \t]*/[*+?]?[ \t]*`)
	quantRe     = scanner.Pattern(`[*?+]`)
	lookaheadRe = scanner.Pattern(`&`)
)

// Parser parses PEG rules from a scanner.
type Parser struct {
	s       *scanner.Scanner
	context string
	calls   *callback.Calls
}

// New creates a parser for rules of context.
// Calls of embedded callbacks are recorded in calls if it is not nil.
func New(s *scanner.Scanner, context string, calls *callback.Calls) *Parser {
	return &Parser{s, context, calls}
}

// Parse is a shortcut for New(s, context, calls).Parse().
func Parse(s *scanner.Scanner, context string, calls *callback.Calls) (*Peg, error) {
	return New(s, context, calls).Parse()
}

// Parse parses rules up to the end of scanned range. Blank and comment lines are skipped.
func (p *Parser) Parse() (*Peg, error) {
	p.s.Skip(eolsRe)
	rules, e := scanner.Many(p.s, p.Rule)
	if e != nil {
		return nil, e
	}

	if !p.s.AtEnd() {
		return nil, unexpectedInputError(p.s)
	}

	if rules == nil {
		rules = []*PegRule{}
	}
	return &Peg{ast.NewToken(ContextToken, p.context), rules}, nil
}

// Rule parses "Name : body" and the following end of line, returns false if there is no rule name at the cursor.
func (p *Parser) Rule() (*PegRule, bool, error) {
	p.s.Skip(lineSpaceRe)
	name, ok := p.s.Probe(ruleNameRe)
	if !ok {
		return nil, false, nil
	}

	if _, ok = p.s.Probe(defOpRe); !ok {
		return nil, false, expectDefOpError(p.s, name)
	}

	body, ok, e := p.RuleBody()
	if e != nil {
		return nil, false, e
	}
	if !ok {
		return nil, false, expectRuleBodyError(p.s, name)
	}

	if _, ok = p.s.Probe(eolsRe); !ok {
		return nil, false, expectEolError(p.s, name)
	}
	return &PegRule{ast.NewToken(RuleNameToken, name), body}, true, nil
}

// RuleBody parses a sequence followed by alternatives, alternatives may start on following lines.
func (p *Parser) RuleBody() ([]ast.Node, bool, error) {
	first, ok, e := p.SeqRule()
	if e != nil || !ok {
		return nil, false, e
	}

	branches, e := scanner.Many(p.s, func() (*BranchRight, bool, error) {
		p.s.Skip(eolsRe)
		return p.branchRight()
	})
	if e != nil {
		return nil, false, e
	}

	body := make([]ast.Node, 0, len(branches)+1)
	body = append(body, first)
	for _, b := range branches {
		body = append(body, b)
	}
	return body, true, nil
}

func (p *Parser) branchRight() (*BranchRight, bool, error) {
	op, ok := p.s.Probe(branchOpRe)
	if !ok {
		return nil, false, nil
	}

	op = strings.TrimSpace(op)
	seq, ok, e := p.SeqRule()
	if e != nil {
		return nil, false, e
	}
	if !ok {
		return nil, false, expectBranchError(p.s, op)
	}

	kind := BranchToken
	if op != "/" {
		kind = QuantifiedBranchToken
	}
	return &BranchRight{ast.NewToken(kind, op), seq}, true, nil
}

// SeqRule parses one or more terms followed by an optional callback.
// A callback with blank body is the same as no callback.
func (p *Parser) SeqRule() (*SeqRule, bool, error) {
	terms, e := scanner.Many(p.s, p.Term)
	if e != nil || len(terms) == 0 {
		return nil, false, e
	}

	p.s.Skip(lineSpaceRe)
	code := []*callback.Callback{}
	from := p.s.Pos()
	cb, ok, e := callback.Block(p.s, p.calls)
	if e != nil {
		return nil, false, e
	}
	if ok && strings.TrimSpace(p.s.Text(from+1, p.s.Pos()-1)) != "" {
		code = append(code, cb)
	}
	return &SeqRule{terms, code}, true, nil
}

// Term parses a lookahead or a unit with optional quantifier.
func (p *Parser) Term() (ast.Node, bool, error) {
	p.s.Skip(lineSpaceRe)
	if _, ok := p.s.Probe(lookaheadRe); ok {
		u, ok := p.unit()
		if !ok {
			return nil, false, expectLookaheadUnitError(p.s)
		}
		return &Lookahead{u}, true, nil
	}

	u, ok := p.unit()
	if !ok {
		return nil, false, nil
	}

	q, _ := p.s.Probe(quantRe)
	switch q {
	case "*":
		return &TermStar{u}, true, nil
	case "+":
		return &TermPlus{u}, true, nil
	case "?":
		return &TermMaybe{u}, true, nil
	default:
		return &Term{u}, true, nil
	}
}

func (p *Parser) unit() (ast.Node, bool) {
	if name, ok := p.s.Probe(ruleNameRe); ok {
		if name == EpsilonName {
			return &EpsilonRule{}, true
		}
		return &RefRule{ast.NewToken(RuleNameToken, name)}, true
	}

	if name, ok := p.s.Probe(tokenNameRe); ok {
		return &RefToken{ast.NewToken(TokenNameToken, name)}, true
	}
	return nil, false
}

// RuleRefs returns names of referenced rules in order of first appearance.
func RuleRefs(peg *Peg) []string {
	var result []string
	for _, n := range ast.Collect(peg, "RefRule") {
		name := n.(*RefRule).Name.Text
		if !slices.Contains(result, name) {
			result = append(result, name)
		}
	}
	return result
}

// Undefined returns names of referenced rules not defined in peg.
func Undefined(peg *Peg) []string {
	defined := make(map[string]bool, len(peg.Rules))
	for _, r := range peg.Rules {
		defined[r.Name.Text] = true
	}

	var result []string
	for _, name := range RuleRefs(peg) {
		if !defined[name] {
			result = append(result, name)
		}
	}
	return result
}
