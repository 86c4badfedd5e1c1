// Package callback implements the parser for callback (action) code.
//
// Callback code is a list of statements separated by new lines or commas:
//
//	var x
//	x = :concat $1 "suffix"
//	:return Node[x, [$2, nil]]
//
// Lexer and PEG grammars embed callback code in their rules.
package callback

import (
	"github.com/ava12/spellbreak/ast"
	"github.com/ava12/spellbreak/scanner"
)

var (
	spaceRe     = scanner.Pattern(` *`)
	spacesRe    = scanner.Pattern(` +`)
	eolRe       = scanner.Pattern(`\n|,`)
	varKwRe     = scanner.Pattern(`var\b`)
	varNameRe   = scanner.Pattern(`[a-z]\w*`)
	assignHead  = scanner.Pattern(`\w+ *=`)
	assignOpRe  = scanner.Pattern(` *= *`)
	parenOpenRe = scanner.Pattern(`\( *`)
	parenClose  = scanner.Pattern(` *\)`)
	intRe       = scanner.Pattern(`-?\d+`)
	trueRe      = scanner.Pattern(`true\b`)
	falseRe     = scanner.Pattern(`false\b`)
	nilRe       = scanner.Pattern(`nil\b`)
	strRe       = scanner.Pattern(`"[^"]*"`)
	captureRe   = scanner.Pattern(`\$-?\d+`)
	typeNameRe  = scanner.Pattern(`[A-Z]\w*`)
	listOpenRe  = scanner.Pattern(`\[ *`)
	listCloseRe = scanner.Pattern(` *\]`)
	funcNameRe  = scanner.Pattern(`:[\w+\-*/^&|<>=!%@]+`)
	argsEndRe   = scanner.Pattern(`\)|\]|\n|,|\z`)
)

// Parser parses callback code from a scanner.
type Parser struct {
	s     *scanner.Scanner
	calls *Calls
}

// New creates a parser, leading and trailing white space of the scanned range is ignored.
// Every parsed call is recorded in calls if it is not nil.
func New(s *scanner.Scanner, calls *Calls) *Parser {
	s.TrimSpace()
	return &Parser{s: s, calls: calls}
}

// Parse is a shortcut for New(s, calls).Parse().
func Parse(s *scanner.Scanner, calls *Calls) (*Callback, error) {
	return New(s, calls).Parse()
}

// Parse parses statements up to the end of scanned range.
func (p *Parser) Parse() (*Callback, error) {
	stmts, e := p.Stmts()
	if e != nil {
		return nil, e
	}

	if !p.s.AtEnd() {
		return nil, unexpectedInputError(p.s)
	}
	return &Callback{Stmts: stmts}, nil
}

// Stmts parses statements separated by new lines or commas, empty statements are dropped.
func (p *Parser) Stmts() ([]Expr, error) {
	var result []Expr
	e := scanner.Repeat(p.s, func() (bool, error) {
		p.s.Skip(spaceRe)
		if _, ok := p.s.Probe(eolRe); ok {
			return true, nil
		}

		stmt, ok, e := p.Stmt()
		if ok {
			result = append(result, stmt)
		}
		return ok, e
	})
	if e != nil {
		return nil, e
	}

	if result == nil {
		result = []Expr{}
	}
	return result, nil
}

// Stmt parses a variable declaration or an expression.
func (p *Parser) Stmt() (Expr, bool, error) {
	p.s.Skip(spaceRe)
	if _, ok := p.s.Probe(varKwRe); !ok {
		return p.Expr()
	}

	p.s.Skip(spacesRe)
	name, ok := p.s.Probe(varNameRe)
	if !ok {
		return nil, false, expectVarNameError(p.s)
	}
	return &VarDecl{ast.NewToken(VarToken, name)}, true, nil
}

// Expr parses an expression.
// An identifier followed by "=" always starts an assignment.
func (p *Parser) Expr() (Expr, bool, error) {
	if p.s.Check(assignHead) {
		n, e := p.Assign()
		if e != nil {
			return nil, false, e
		}
		return n, true, nil
	}

	return scanner.OneOf(p.s,
		p.paren,
		p.literal,
		p.capture,
		p.varRef,
		p.createNode,
		p.createList,
		p.callExpr,
	)
}

func (p *Parser) expectExpr() (Expr, error) {
	expr, ok, e := p.Expr()
	if e == nil && !ok {
		e = expectExprError(p.s)
	}
	return expr, e
}

// Assign parses "name = expr".
func (p *Parser) Assign() (*Assign, error) {
	name, ok := p.s.Probe(varNameRe)
	if !ok {
		return nil, expectVarNameError(p.s)
	}

	p.s.Skip(assignOpRe)
	expr, e := p.expectExpr()
	if e != nil {
		return nil, e
	}

	return &Assign{ast.NewToken(VarToken, name), expr}, nil
}

func (p *Parser) paren() (Expr, bool, error) {
	if _, ok := p.s.Probe(parenOpenRe); !ok {
		return nil, false, nil
	}

	expr, e := p.expectExpr()
	if e != nil {
		return nil, false, e
	}

	if _, ok := p.s.Probe(parenClose); !ok {
		return nil, false, missingParenError(p.s)
	}
	return expr, true, nil
}

func (p *Parser) literal() (Expr, bool, error) {
	if digits, ok := p.s.Probe(intRe); ok {
		return ast.IntLit(digits), true, nil
	}
	if _, ok := p.s.Probe(trueRe); ok {
		return ast.BoolLit(true), true, nil
	}
	if _, ok := p.s.Probe(falseRe); ok {
		return ast.BoolLit(false), true, nil
	}
	if _, ok := p.s.Probe(nilRe); ok {
		return ast.NilLit(), true, nil
	}
	if quoted, ok := p.s.Probe(strRe); ok {
		return ast.QuotedStrLit(quoted), true, nil
	}
	return nil, false, nil
}

func (p *Parser) capture() (Expr, bool, error) {
	c, ok := p.s.Probe(captureRe)
	if !ok {
		return nil, false, nil
	}
	return &Capture{ast.NewToken(CaptureToken, c)}, true, nil
}

func (p *Parser) varRef() (Expr, bool, error) {
	name, ok := p.s.Probe(varNameRe)
	if !ok {
		return nil, false, nil
	}
	return &VarRef{ast.NewToken(VarToken, name)}, true, nil
}

func (p *Parser) createNode() (Expr, bool, error) {
	ty, ok := p.s.Probe(typeNameRe)
	if !ok {
		return nil, false, nil
	}

	if _, ok = p.s.Probe(listOpenRe); !ok {
		return nil, false, expectListError(p.s)
	}

	elems, e := p.lines()
	if e != nil {
		return nil, false, e
	}
	return &CreateNode{ast.NewToken(TypeToken, ty), elems}, true, nil
}

func (p *Parser) createList() (Expr, bool, error) {
	if _, ok := p.s.Probe(listOpenRe); !ok {
		return nil, false, nil
	}

	elems, e := p.lines()
	if e != nil {
		return nil, false, e
	}
	return &CreateList{elems}, true, nil
}

// lines parses constructor elements and the closing bracket.
func (p *Parser) lines() ([]Expr, error) {
	elems := []Expr{}
	e := scanner.Repeat(p.s, func() (bool, error) {
		p.s.Skip(spacesRe)
		expr, ok, e := p.Expr()
		if e != nil || ok {
			if ok {
				elems = append(elems, expr)
			}
			return ok, e
		}

		_, ok = p.s.Probe(eolRe)
		return ok, nil
	})
	if e != nil {
		return nil, e
	}

	if _, ok := p.s.Probe(listCloseRe); !ok {
		return nil, missingBracketError(p.s)
	}
	return elems, nil
}

func (p *Parser) callExpr() (Expr, bool, error) {
	c, ok, e := p.Call()
	if !ok {
		return nil, false, e
	}
	return c, true, nil
}

// Call parses a function call, its arguments end before ")", "]", new line, comma, or end of input.
func (p *Parser) Call() (*Call, bool, error) {
	fname, ok := p.s.Probe(funcNameRe)
	if !ok {
		return nil, false, nil
	}

	args := []Expr{}
	e := scanner.Repeat(p.s, func() (bool, error) {
		p.s.Skip(spacesRe)
		expr, ok, e := p.Expr()
		if e != nil {
			return false, e
		}

		if ok {
			args = append(args, expr)
			return true, nil
		}

		if p.s.Check(argsEndRe) {
			return false, nil
		}
		return false, unrecognizedArgError(p.s, fname)
	})
	if e != nil {
		return nil, false, e
	}

	if p.calls != nil {
		p.calls.Add(fname, len(args))
	}
	return &Call{ast.NewToken(FuncToken, fname), args}, true, nil
}

var blockRe = scanner.Pattern(`\{((?:"(?:\\.|[^"\\])*"|[^}"])*)\}`)

// Block parses callback code in braces at the cursor, returns false if there is no block.
// Braces inside double-quoted strings do not terminate the block.
func Block(s *scanner.Scanner, calls *Calls) (*Callback, bool, error) {
	_, from, to, ok := s.ProbeSub(blockRe, 1)
	if !ok {
		return nil, false, nil
	}

	cb, e := Parse(s.Sub(from, to), calls)
	if e != nil {
		return nil, false, e
	}
	return cb, true, nil
}
