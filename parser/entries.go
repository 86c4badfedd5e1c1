package parser

import (
	"github.com/ava12/spellbreak/ast"
	"github.com/ava12/spellbreak/callback"
	"github.com/ava12/spellbreak/grammar"
	"github.com/ava12/spellbreak/lexdef"
	"github.com/ava12/spellbreak/pegdef"
	"github.com/ava12/spellbreak/regex"
	"github.com/ava12/spellbreak/scanner"
)

type entryFunc func(s *scanner.Scanner, calls *callback.Calls, context string) (ast.Value, bool, error)

func whole[T ast.Node](n T, e error) (ast.Value, bool, error) {
	if e != nil {
		return nil, false, e
	}
	return n, true, nil
}

func optional[T any](v T, ok bool, e error) (ast.Value, bool, error) {
	if e != nil || !ok {
		return nil, false, e
	}
	return v, true, nil
}

var entryFuncs = map[grammar.Entry]entryFunc{
	grammar.Callback: func(s *scanner.Scanner, calls *callback.Calls, _ string) (ast.Value, bool, error) {
		n, e := callback.Parse(s, calls)
		return whole(n, e)
	},
	grammar.CallbackStmt: func(s *scanner.Scanner, calls *callback.Calls, _ string) (ast.Value, bool, error) {
		v, ok, e := callback.New(s, calls).Stmt()
		return optional(v, ok, e)
	},
	grammar.CallbackStmts: func(s *scanner.Scanner, calls *callback.Calls, _ string) (ast.Value, bool, error) {
		stmts, e := callback.New(s, calls).Stmts()
		if e != nil {
			return nil, false, e
		}
		return ast.List(stmts), true, nil
	},
	grammar.CallbackExpr: func(s *scanner.Scanner, calls *callback.Calls, _ string) (ast.Value, bool, error) {
		v, ok, e := callback.New(s, calls).Expr()
		return optional(v, ok, e)
	},
	grammar.CallbackAssign: func(s *scanner.Scanner, calls *callback.Calls, _ string) (ast.Value, bool, error) {
		n, e := callback.New(s, calls).Assign()
		return whole(n, e)
	},
	grammar.CallbackCall: func(s *scanner.Scanner, calls *callback.Calls, _ string) (ast.Value, bool, error) {
		n, ok, e := callback.New(s, calls).Call()
		return optional(n, ok, e)
	},

	grammar.Regex: func(s *scanner.Scanner, _ *callback.Calls, _ string) (ast.Value, bool, error) {
		n, e := regex.Parse(s)
		return whole(n, e)
	},
	grammar.RegexBranches: func(s *scanner.Scanner, _ *callback.Calls, _ string) (ast.Value, bool, error) {
		branches, e := regex.New(s).Branches()
		if e != nil {
			return nil, false, e
		}
		return ast.ListOf(branches), true, nil
	},
	grammar.RegexSeq: func(s *scanner.Scanner, _ *callback.Calls, _ string) (ast.Value, bool, error) {
		n, e := regex.New(s).Seq()
		return whole(n, e)
	},
	grammar.RegexGroup: func(s *scanner.Scanner, _ *callback.Calls, _ string) (ast.Value, bool, error) {
		n, ok, e := regex.New(s).Group()
		return optional(n, ok, e)
	},
	grammar.RegexCharGroup: func(s *scanner.Scanner, _ *callback.Calls, _ string) (ast.Value, bool, error) {
		n, ok, e := regex.New(s).CharGroup()
		return optional(n, ok, e)
	},
	grammar.RegexCharClass: func(s *scanner.Scanner, _ *callback.Calls, _ string) (ast.Value, bool, error) {
		n, ok, e := regex.New(s).CharClass()
		return optional(n, ok, e)
	},

	grammar.Lex: func(s *scanner.Scanner, calls *callback.Calls, context string) (ast.Value, bool, error) {
		n, e := lexdef.Parse(s, context, calls)
		return whole(n, e)
	},
	grammar.LexRuleLine: func(s *scanner.Scanner, calls *callback.Calls, context string) (ast.Value, bool, error) {
		n, ok, e := lexdef.New(s, context, calls).RuleLine()
		return optional(n, ok, e)
	},

	grammar.Peg: func(s *scanner.Scanner, calls *callback.Calls, context string) (ast.Value, bool, error) {
		n, e := pegdef.Parse(s, context, calls)
		return whole(n, e)
	},
	grammar.PegRuleBody: func(s *scanner.Scanner, calls *callback.Calls, context string) (ast.Value, bool, error) {
		body, ok, e := pegdef.New(s, context, calls).RuleBody()
		if e != nil || !ok {
			return nil, false, e
		}
		return ast.ListOf(body), true, nil
	},
}
