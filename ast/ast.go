// Package ast defines values shared by syntax trees of all grammars.
//
// Every grammar defines its own node types implementing Node. A node exposes
// its fields in a fixed order; field values are limited to:
//   - Node: child node, nil interface values are not allowed (use nil Value);
//   - Token: kind tag and literal text;
//   - List: homogeneous or mixed sequence of field values;
//   - Int: integer value (e.g. a code point);
//   - Str: string value;
//   - Lit: literal value already encoded in wire form;
//   - nil: absent optional value.
package ast

// Value is a node field value, see package description for allowed types.
type Value = any

// Field is a named node field.
type Field struct {
	Name  string
	Value Value
}

// Node is a syntax tree node.
type Node interface {
	// Kind returns node kind name, registered in schema.Registry.
	Kind() string
	// Fields returns node fields in registered order.
	// Field names must not depend on field values.
	Fields() []Field
}

// Token is a pair of kind tag and literal source text.
type Token struct {
	Kind string
	Text string
}

// NewToken creates a token.
func NewToken(kind, text string) Token {
	return Token{Kind: kind, Text: text}
}

func (t Token) String() string {
	return t.Text
}

// List is a sequence of field values.
type List []Value

// Int is an integer field value.
type Int int64

// Str is a string field value.
type Str string

// FieldNames returns field names of n in order.
func FieldNames(n Node) []string {
	fields := n.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// ListOf converts a slice of nodes to a List.
func ListOf[T Node](nodes []T) List {
	result := make(List, len(nodes))
	for i, n := range nodes {
		result[i] = n
	}
	return result
}

// Optional returns n or untyped nil if n is a nil pointer.
func Optional[T interface {
	Node
	comparable
}](n T) Value {
	var zero T
	if n == zero {
		return nil
	}
	return n
}
