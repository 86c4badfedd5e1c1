// Package regex implements the parser for the regular expression subset used by lexer rules.
//
// Supported are branches, groups (capturing, non-capturing and lookaround),
// bracketed and predefined character groups, anchors, and ? * + quantifiers.
// Bounded repetition is not supported; Unicode property classes are
// recognized only to be rejected.
package regex

import (
	"regexp"
	"unicode/utf8"

	"github.com/ava12/spellbreak/ast"
	"github.com/ava12/spellbreak/scanner"
)

var (
	branchOpRe     = scanner.Pattern(`\s*\|\s*`)
	anchorRe       = scanner.Pattern(`\^|\$|\\[bBaAzZ]`)
	quantifierRe   = scanner.Pattern(`[?*+]`)
	groupHeadRe    = scanner.Pattern(`\(`)
	groupEndRe     = scanner.Pattern(`\)`)
	groupSpecialRe = scanner.Pattern(`\?:|\?=|\?!|\?<=|\?<!|\?>`)
	charGroupHead  = scanner.Pattern(`\[|\\[dDwWhHsS]|\.`)
	predefGroupRe  = scanner.Pattern(`\\[dDwWhHsS]|\.`)
	unicodeClassRe = scanner.Pattern(`\\[pP]\{[^}]*\}`)
	charGroupBegRe = scanner.Pattern(`\[\^?`)
	charGroupEndRe = scanner.Pattern(`\]`)
	rangeOpRe      = scanner.Pattern(`-`)
	specialCharRe  = scanner.Pattern(`\\[ftnr]`)
	escapedCharRe  = scanner.Pattern(`\\[^\n]`)
	plainCharRe    = scanner.Pattern(`[^\n\\/+*?|{}()\[\]^$]`)
	classCharRe    = scanner.Pattern(`[^\n\\/\[\]]`)
)

var specialChars = map[byte]rune{'f': '\f', 't': '\t', 'n': '\n', 'r': '\r'}

// Parser parses a regular expression from a scanner.
type Parser struct {
	s *scanner.Scanner
}

// New creates a parser.
func New(s *scanner.Scanner) *Parser {
	return &Parser{s}
}

// Parse is a shortcut for New(s).Parse().
func Parse(s *scanner.Scanner) (*Regexp, error) {
	return New(s).Parse()
}

// Parse parses branches up to the end of scanned range.
func (p *Parser) Parse() (*Regexp, error) {
	branches, e := p.Branches()
	if e != nil {
		return nil, e
	}

	if !p.s.AtEnd() {
		return nil, unexpectedInputError(p.s)
	}
	return &Regexp{branches}, nil
}

// Branches parses sequences separated by "|", there is always at least one (possibly empty) sequence.
func (p *Parser) Branches() ([]*Seq, error) {
	seq, e := p.Seq()
	if e != nil {
		return nil, e
	}

	branches := []*Seq{seq}
	e = scanner.Repeat(p.s, func() (bool, error) {
		if _, ok := p.s.Probe(branchOpRe); !ok {
			return false, nil
		}

		seq, e := p.Seq()
		if e != nil {
			return false, e
		}
		branches = append(branches, seq)
		return true, nil
	})
	if e != nil {
		return nil, e
	}
	return branches, nil
}

// Seq parses a possibly empty sequence of units and anchors.
func (p *Parser) Seq() (*Seq, error) {
	units, e := scanner.Many(p.s, p.seqUnit)
	if e != nil {
		return nil, e
	}

	if units == nil {
		units = []ast.Value{}
	}
	return &Seq{units}, nil
}

func (p *Parser) seqUnit() (ast.Value, bool, error) {
	if a, ok := p.s.Probe(anchorRe); ok {
		return &PredefAnchor{ast.NewToken(AnchorToken, a)}, true, nil
	}

	u, ok, e := p.Unit()
	if e != nil || !ok {
		return nil, false, e
	}

	if q, ok := p.s.Probe(quantifierRe); ok {
		return &Quantified{u, ast.NewToken(QuantifierToken, q)}, true, nil
	}
	return u, true, nil
}

// Unit parses a group, a character group, or a single character.
func (p *Parser) Unit() (Unit, bool, error) {
	switch {
	case p.s.Check(groupHeadRe):
		g, e := p.group()
		if e != nil {
			return nil, false, e
		}
		return g, true, nil

	case p.s.Check(unicodeClassRe):
		return nil, false, unicodeClassError(p.s)

	case p.s.Check(charGroupHead):
		return p.CharGroup()
	}

	c, ok := p.singleChar(plainCharRe)
	if !ok {
		return nil, false, nil
	}
	return ast.Int(c), true, nil
}

// Group parses a parenthesized group, returns false if there is no group at the cursor.
func (p *Parser) Group() (*Group, bool, error) {
	if !p.s.Check(groupHeadRe) {
		return nil, false, nil
	}

	g, e := p.group()
	return g, e == nil, e
}

func (p *Parser) group() (*Group, error) {
	p.s.Skip(groupHeadRe)
	special, _ := p.s.Probe(groupSpecialRe)
	branches, e := p.Branches()
	if e != nil {
		return nil, e
	}

	if _, ok := p.s.Probe(groupEndRe); !ok {
		return nil, unclosedGroupError(p.s)
	}
	return &Group{ast.NewToken(GroupSpecialToken, special), branches}, nil
}

// CharGroup parses a predefined or a bracketed character group.
func (p *Parser) CharGroup() (ast.Node, bool, error) {
	if tok, ok := p.s.Probe(predefGroupRe); ok {
		return &CharGroupPredef{ast.NewToken(PredefCharGroup, tok)}, true, nil
	}

	if p.s.Check(unicodeClassRe) {
		return nil, false, unicodeClassError(p.s)
	}

	beg, ok := p.s.Probe(charGroupBegRe)
	if !ok {
		return nil, false, nil
	}

	if !p.s.HasByte(']') {
		return nil, false, unclosedCharGroupError(p.s)
	}

	first, ok, e := p.CharClass()
	if e != nil {
		return nil, false, e
	}
	if !ok {
		return nil, false, expectCharClassError(p.s)
	}

	rest, e := scanner.Many(p.s, p.CharClass)
	if e != nil {
		return nil, false, e
	}

	if _, ok := p.s.Probe(charGroupEndRe); !ok {
		return nil, false, expectCharGroupEndError(p.s)
	}

	classes := append([]ast.Node{first}, rest...)
	return &BracketCharGroup{ast.NewToken(BeginCharGroupToken, beg), classes}, true, nil
}

// CharClass parses a nested character group, a character range, or a single character.
func (p *Parser) CharClass() (ast.Node, bool, error) {
	g, ok, e := scanner.Try(p.s, p.CharGroup)
	if e != nil || ok {
		return g, ok, e
	}

	from, ok := p.singleChar(classCharRe)
	if !ok {
		return nil, false, nil
	}

	to := from
	if _, ok := p.s.Probe(rangeOpRe); ok {
		to, ok = p.singleChar(classCharRe)
		if !ok {
			return nil, false, expectRangeEndError(p.s)
		}
	}
	return &CharRange{ast.Int(from), ast.Int(to)}, true, nil
}

// singleChar decodes an escaped character or a character matching plain.
func (p *Parser) singleChar(plain *regexp.Regexp) (rune, bool) {
	if c, ok := p.s.Probe(specialCharRe); ok {
		return specialChars[c[1]], true
	}

	c, ok := p.s.Probe(escapedCharRe)
	if ok {
		c = c[1:]
	} else {
		c, ok = p.s.Probe(plain)
	}
	if !ok {
		return 0, false
	}

	r, _ := utf8.DecodeRuneInString(c)
	return r, true
}
