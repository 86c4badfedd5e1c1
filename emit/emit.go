// Package emit serializes syntax trees to the NODE/LIST/TOKEN wire format.
//
//	NODE(<kind>, <field count>, <field>, ...)
//	LIST(<item>,\n<item>, ...)
//	TOKEN(<quoted kind>, <quoted text>) or STR(<quoted text>)
//	VAL_FROM_INT(<decimal>), VAL_TRUE, VAL_FALSE, VAL_NIL, STR(<quoted text>)
//
// Every node is checked against the schema registry before it is emitted.
// Emission never modifies the tree.
package emit

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ava12/spellbreak/ast"
	"github.com/ava12/spellbreak/schema"
)

// TokenMode selects serialization of tokens.
type TokenMode int

const (
	// TokenTagged emits TOKEN("kind", "text").
	TokenTagged TokenMode = iota
	// TokenBare emits STR("text"), dropping the kind.
	TokenBare
)

var tokenModeNames = map[string]TokenMode{
	"tagged": TokenTagged,
	"bare":   TokenBare,
}

// ParseTokenMode converts "tagged" or "bare" to TokenMode.
func ParseTokenMode(name string) (TokenMode, error) {
	mode, has := tokenModeNames[strings.ToLower(name)]
	if !has {
		return TokenTagged, unknownTokenModeError(name)
	}
	return mode, nil
}

func (m TokenMode) String() string {
	if m == TokenBare {
		return "bare"
	}
	return "tagged"
}

// Emitter serializes trees, its fields must not be changed while it is in use.
type Emitter struct {
	Registry  *schema.Registry
	TokenMode TokenMode
}

// New creates an emitter using tagged tokens.
func New(r *schema.Registry) *Emitter {
	return &Emitter{Registry: r}
}

// Emit serializes n.
func (em *Emitter) Emit(n ast.Node) (string, error) {
	return em.value(n)
}

// EmitValue serializes any field value, e.g. a list of nodes.
func (em *Emitter) EmitValue(v ast.Value) (string, error) {
	return em.value(v)
}

// Write serializes n to w.
func (em *Emitter) Write(w io.Writer, n ast.Node) error {
	text, e := em.Emit(n)
	if e != nil {
		return e
	}

	_, e = io.WriteString(w, text)
	return e
}

func (em *Emitter) value(v ast.Value) (string, error) {
	switch x := v.(type) {
	case nil:
		return ast.ValNil, nil
	case ast.Node:
		return em.node(x)
	case ast.List:
		return em.list(x)
	case ast.Token:
		return em.token(x), nil
	case ast.Int:
		return ast.EncodeInt(int64(x)), nil
	case ast.Str:
		return ast.EncodeStr(string(x)), nil
	case ast.Lit:
		return x.Code, nil
	default:
		return "", unsupportedValueError(v)
	}
}

func (em *Emitter) node(n ast.Node) (string, error) {
	fields := n.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	if e := em.Registry.Check(n.Kind(), names); e != nil {
		return "", e
	}

	parts := make([]string, 0, len(fields)+2)
	parts = append(parts, n.Kind(), strconv.Itoa(len(fields)))
	for _, f := range fields {
		text, e := em.value(f.Value)
		if e != nil {
			return "", e
		}
		parts = append(parts, text)
	}
	return "NODE(" + strings.Join(parts, ", ") + ")", nil
}

func (em *Emitter) list(l ast.List) (string, error) {
	items := make([]string, len(l))
	for i, v := range l {
		text, e := em.value(v)
		if e != nil {
			return "", e
		}
		items[i] = text
	}
	return "LIST(" + strings.Join(items, ",\n") + ")", nil
}

func (em *Emitter) token(t ast.Token) string {
	if em.TokenMode == TokenBare {
		return ast.EncodeStr(t.Text)
	}
	return fmt.Sprintf("TOKEN(%s, %s)", strconv.Quote(t.Kind), strconv.Quote(t.Text))
}
