// Package schema implements the registry of node kinds and their ordered field names.
//
// Every grammar package registers its node kinds once, the emitter checks each
// node against the registry before serializing it. A registry is not safe for
// concurrent modification.
package schema

import (
	"io"
	"maps"
	"slices"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"

	"github.com/ava12/spellbreak/internal/levenshtein"
)

// Kind describes a node kind.
type Kind struct {
	Name   string
	Fields []string
}

// Registry maps node kind names to their field lists.
type Registry struct {
	kinds map[string][]string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{kinds: make(map[string][]string)}
}

// Add registers a node kind.
// Registering the same field list again is a no-op, a different list yields ConflictError.
func (r *Registry) Add(kind string, fields ...string) error {
	registered, has := r.kinds[kind]
	if has {
		if !slices.Equal(registered, fields) {
			return conflictError(kind, registered, fields)
		}
		return nil
	}

	r.kinds[kind] = slices.Clone(fields)
	return nil
}

// AddAll registers all kinds, stops at the first conflict.
func (r *Registry) AddAll(kinds []Kind) error {
	for _, k := range kinds {
		if e := r.Add(k.Name, k.Fields...); e != nil {
			return e
		}
	}
	return nil
}

// Fields returns registered field names of a kind.
func (r *Registry) Fields(kind string) ([]string, bool) {
	fields, has := r.kinds[kind]
	return slices.Clone(fields), has
}

// Check verifies that fields match the registered field list of kind.
func (r *Registry) Check(kind string, fields []string) error {
	registered, has := r.kinds[kind]
	if !has {
		return unknownKindError(kind, levenshtein.Suggestion(kind, maps.Keys(r.kinds)))
	}

	if !slices.Equal(registered, fields) {
		return fieldMismatchError(kind, registered, fields)
	}

	return nil
}

// Kinds returns sorted names of registered kinds.
func (r *Registry) Kinds() []string {
	return slices.Sorted(maps.Keys(r.kinds))
}

// Len returns the number of registered kinds.
func (r *Registry) Len() int {
	return len(r.kinds)
}

// Fingerprint returns a digest of the registry contents, independent of registration order.
func (r *Registry) Fingerprint() uint64 {
	h := xxhash.New()
	for _, kind := range r.Kinds() {
		h.WriteString(kind)
		for _, f := range r.kinds[kind] {
			h.WriteString("\x00")
			h.WriteString(f)
		}
		h.WriteString("\n")
	}
	return h.Sum64()
}

// WriteYAML writes the registry as a mapping of kind names to field lists, sorted by kind.
func (r *Registry) WriteYAML(w io.Writer) error {
	snapshot := make(map[string][]string, len(r.kinds))
	for kind, fields := range r.kinds {
		if fields == nil {
			fields = []string{}
		}
		snapshot[kind] = fields
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if e := enc.Encode(snapshot); e != nil {
		return e
	}
	return enc.Close()
}

// ReadYAML reads a registry written by WriteYAML.
func ReadYAML(rd io.Reader) (*Registry, error) {
	snapshot := make(map[string][]string)
	if e := yaml.NewDecoder(rd).Decode(&snapshot); e != nil && e != io.EOF {
		return nil, snapshotError(e)
	}

	r := New()
	for kind, fields := range snapshot {
		r.kinds[kind] = fields
	}
	return r, nil
}

// Verify compares the registry with a reference one.
// Reports kinds missing in either registry and kinds having different field lists.
func (r *Registry) Verify(ref *Registry) error {
	var diffs []string
	for _, kind := range ref.Kinds() {
		fields, has := r.kinds[kind]
		refFields := ref.kinds[kind]
		switch {
		case !has:
			diffs = append(diffs, "missing "+kind+" "+fieldList(refFields))
		case !slices.Equal(fields, refFields):
			diffs = append(diffs, "changed "+kind+" "+fieldList(refFields)+" -> "+fieldList(fields))
		}
	}
	for _, kind := range r.Kinds() {
		if _, has := ref.kinds[kind]; !has {
			diffs = append(diffs, "extra "+kind+" "+fieldList(r.kinds[kind]))
		}
	}

	if len(diffs) > 0 {
		return referenceMismatchError(diffs)
	}
	return nil
}
