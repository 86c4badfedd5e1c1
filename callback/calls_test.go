package callback

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ava12/spellbreak/ast"
	. "github.com/ava12/spellbreak/internal/test"
	"github.com/ava12/spellbreak/schema"
)

func TestCallsDeduplicates(t *testing.T) {
	c := NewCalls()
	ExpectBool(t, true, c.Add(":token", 2))
	ExpectBool(t, false, c.Add(":token", 2))
	ExpectBool(t, true, c.Add(":token", 1))
	ExpectBool(t, true, c.Add(":return", 0))
	ExpectInt(t, 3, c.Len())

	if diff := cmp.Diff([]int{2, 1}, c.Arities(":token")); diff != "" {
		t.Errorf("unexpected arities (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{":token"}, c.Conflicts()); diff != "" {
		t.Errorf("unexpected conflicts (-want +got):\n%s", diff)
	}
}

func TestCallsMerge(t *testing.T) {
	c := NewCalls()
	c.Add(":a", 1)
	other := NewCalls()
	other.Add(":a", 1)
	other.Add(":b", 0)
	ExpectInt(t, 1, c.Merge(other))
	if diff := cmp.Diff([]CallSite{{":a", 1}, {":b", 0}}, c.Entries()); diff != "" {
		t.Errorf("unexpected entries (-want +got):\n%s", diff)
	}
}

func TestRegister(t *testing.T) {
	r := schema.New()
	ExpectNoError(t, Register(r))
	ExpectNoError(t, Register(r))
	ExpectInt(t, len(Kinds), r.Len())
	for _, k := range Kinds {
		fields, _ := r.Fields(k.Name)
		ExpectInt(t, len(k.Fields), len(fields))
	}
}

func TestNodesMatchKinds(t *testing.T) {
	r := schema.New()
	ExpectNoError(t, Register(r))
	nodes := []ast.Node{
		&Callback{}, &VarDecl{}, &Assign{}, &Call{}, &CreateNode{}, &CreateList{}, &Capture{}, &VarRef{},
	}
	for _, n := range nodes {
		ExpectNoError(t, r.Check(n.Kind(), ast.FieldNames(n)))
	}
}
