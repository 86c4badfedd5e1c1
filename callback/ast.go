package callback

import (
	"github.com/ava12/spellbreak/ast"
	"github.com/ava12/spellbreak/schema"
)

// Token kinds produced by callback parser.
const (
	VarToken     = "name.var"
	CaptureToken = "name.var.capture"
	TypeToken    = "name.type"
	FuncToken    = "name.func"
)

// Kinds lists node kinds of the callback grammar.
var Kinds = []schema.Kind{
	{"Callback", []string{"stmts"}},
	{"VarDecl", []string{"var_name"}},
	{"Assign", []string{"var_name", "expr"}},
	{"Call", []string{"func_name", "args"}},
	{"CreateNode", []string{"ty", "elems"}},
	{"CreateList", []string{"elems"}},
	{"Capture", []string{"var_name"}},
	{"VarRef", []string{"var_name"}},
}

// Register adds callback node kinds to r.
func Register(r *schema.Registry) error {
	return r.AddAll(Kinds)
}

// Expr is an expression or statement: either a node of this package or ast.Lit.
type Expr = ast.Value

// Callback is the root node, a list of statements.
type Callback struct {
	Stmts []Expr
}

func (n *Callback) Kind() string { return "Callback" }
func (n *Callback) Fields() []ast.Field {
	return []ast.Field{{"stmts", ast.List(n.Stmts)}}
}

// VarDecl declares a local variable.
type VarDecl struct {
	VarName ast.Token
}

func (n *VarDecl) Kind() string { return "VarDecl" }
func (n *VarDecl) Fields() []ast.Field {
	return []ast.Field{{"var_name", n.VarName}}
}

// Assign assigns expression value to a variable.
type Assign struct {
	VarName ast.Token
	Expr    Expr
}

func (n *Assign) Kind() string { return "Assign" }
func (n *Assign) Fields() []ast.Field {
	return []ast.Field{{"var_name", n.VarName}, {"expr", n.Expr}}
}

// Call calls a function.
type Call struct {
	FuncName ast.Token
	Args     []Expr
}

func (n *Call) Kind() string { return "Call" }
func (n *Call) Fields() []ast.Field {
	return []ast.Field{{"func_name", n.FuncName}, {"args", ast.List(n.Args)}}
}

// CreateNode constructs a node of type Ty.
type CreateNode struct {
	Ty    ast.Token
	Elems []Expr
}

func (n *CreateNode) Kind() string { return "CreateNode" }
func (n *CreateNode) Fields() []ast.Field {
	return []ast.Field{{"ty", n.Ty}, {"elems", ast.List(n.Elems)}}
}

// CreateList constructs a list.
type CreateList struct {
	Elems []Expr
}

func (n *CreateList) Kind() string { return "CreateList" }
func (n *CreateList) Fields() []ast.Field {
	return []ast.Field{{"elems", ast.List(n.Elems)}}
}

// Capture refers to a captured value by position, e.g. $1 or $-1.
type Capture struct {
	VarName ast.Token
}

func (n *Capture) Kind() string { return "Capture" }
func (n *Capture) Fields() []ast.Field {
	return []ast.Field{{"var_name", n.VarName}}
}

// VarRef refers to a variable.
type VarRef struct {
	VarName ast.Token
}

func (n *VarRef) Kind() string { return "VarRef" }
func (n *VarRef) Fields() []ast.Field {
	return []ast.Field{{"var_name", n.VarName}}
}
