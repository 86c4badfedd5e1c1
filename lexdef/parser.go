// Package lexdef implements the parser for lexer rule definitions.
//
// A definition is a list of rule lines of a single context:
//
//	# comment
//	"]" { :return, :token "end.lex" }
//	/\d+/ { :token "number" } Spaces
//	*Spaces
//	begin { var depth }
//	end
//
// Regular expressions and callbacks are delegated to regex and callback parsers.
package lexdef

import (
	"strings"

	"github.com/ava12/spellbreak/ast"
	"github.com/ava12/spellbreak/callback"
	"github.com/ava12/spellbreak/regex"
	"github.com/ava12/spellbreak/scanner"
)

var (
	eolsRe      = scanner.Pattern(`([ \t]*(#[^\n]*)?(\n|\z))+`)
	lineSpaceRe = scanner.Pattern(`[ \t]*`)
	partialRe   = scanner.Pattern(`\*[A-Z]\w*`)
	contextRe   = scanner.Pattern(`[A-Z]\w*`)
	hookRe      = scanner.Pattern(`(begin|end)\b *`)
	stringRe    = scanner.Pattern(`"((?:\\.|[^"\\])*)"`)
	regexRe     = scanner.Pattern(`/((?:\\.|[^/\\])*)/`)
)

const beginKeyword = "begin"

// Parser parses lexer rules from a scanner.
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
func Parse(s *scanner.Scanner, context string, calls *callback.Calls) (*Lex, error) {
	return New(s, context, calls).Parse()
}

// Parse parses rule lines up to the end of scanned range.
// Blank and comment lines are skipped.
func (p *Parser) Parse() (*Lex, error) {
	lines, e := scanner.Many(p.s, func() (ast.Node, bool, error) {
		p.s.Skip(eolsRe)
		return p.RuleLine()
	})
	if e != nil {
		return nil, e
	}

	p.s.Skip(eolsRe)
	if !p.s.AtEnd() {
		return nil, unrecognizedLineError(p.s)
	}

	if lines == nil {
		lines = []ast.Node{}
	}
	return &Lex{ast.NewToken(ContextToken, p.context), lines}, nil
}

// RuleLine parses a partial context reference, a sequence of rules, a callback, or a begin/end hook.
func (p *Parser) RuleLine() (ast.Node, bool, error) {
	p.s.Skip(lineSpaceRe)
	if name, ok := p.s.Probe(partialRe); ok {
		return &RefPartialContext{ast.NewToken(PartialContextToken, name)}, true, nil
	}

	rules, e := p.rules()
	if e != nil {
		return nil, false, e
	}
	if len(rules) > 0 {
		return &SeqLexRules{rules}, true, nil
	}

	cb, ok, e := callback.Block(p.s, p.calls)
	if e != nil {
		return nil, false, e
	}
	if ok {
		return &PureCallbackRule{cb}, true, nil
	}

	return p.hook()
}

func (p *Parser) hook() (ast.Node, bool, error) {
	kw, ok := p.s.Probe(hookRe)
	if !ok {
		return nil, false, nil
	}

	cb, _, e := callback.Block(p.s, p.calls)
	if e != nil {
		return nil, false, e
	}

	rules, e := p.rules()
	if e != nil {
		return nil, false, e
	}

	if strings.HasPrefix(kw, beginKeyword) {
		return &BeginCallback{cb, rules}, true, nil
	}
	return &EndCallback{cb, rules}, true, nil
}

func (p *Parser) rules() ([]ast.Node, error) {
	rules, e := scanner.Many(p.s, p.Rule)
	if rules == nil && e == nil {
		rules = []ast.Node{}
	}
	return rules, e
}

// Rule parses a pattern with optional callback or a context reference.
func (p *Parser) Rule() (ast.Node, bool, error) {
	p.s.Skip(lineSpaceRe)
	pattern, ok, e := p.pattern()
	if e != nil {
		return nil, false, e
	}

	if ok {
		p.s.Skip(lineSpaceRe)
		code := []*callback.Callback{}
		cb, found, e := callback.Block(p.s, p.calls)
		if e != nil {
			return nil, false, e
		}
		if found {
			code = append(code, cb)
		}
		return &LexRule{pattern, code}, true, nil
	}

	if name, ok := p.s.Probe(contextRe); ok {
		return &RefContext{ast.NewToken(ContextNameToken, name)}, true, nil
	}
	return nil, false, nil
}

func (p *Parser) pattern() (ast.Node, bool, error) {
	if _, from, to, ok := p.s.ProbeSub(stringRe, 1); ok {
		return &String{p.s.Text(from, to)}, true, nil
	}

	_, from, to, ok := p.s.ProbeSub(regexRe, 1)
	if !ok {
		return nil, false, nil
	}

	r, e := regex.Parse(p.s.Sub(from, to))
	if e != nil {
		return nil, false, e
	}
	return r, true, nil
}

// PartialRefs returns names of referenced partial contexts without leading "*", in breadth-first order.
func PartialRefs(lex *Lex) []string {
	var result []string
	seen := make(map[string]bool)
	ast.WalkLevels(lex, func(stat ast.WalkStat) bool {
		switch n := stat.Node.(type) {
		case *RefPartialContext:
			name := strings.TrimPrefix(n.Name.Text, "*")
			if !seen[name] {
				seen[name] = true
				result = append(result, name)
			}
		case *Lex, *SeqLexRules, *BeginCallback, *EndCallback:
			return true
		}
		return false
	})
	return result
}
