// Package parser ties grammar parsers, the schema registry, the call site registry and the emitter together.
//
// A Frontend is created once per compilation run. It registers node kinds of all
// grammars, then parses fragments with any grammar entry. Call sites of a fragment
// are added to the run-wide registry only if the whole fragment is parsed.
package parser

import (
	"path/filepath"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/ava12/spellbreak/ast"
	"github.com/ava12/spellbreak/callback"
	"github.com/ava12/spellbreak/emit"
	"github.com/ava12/spellbreak/grammar"
	"github.com/ava12/spellbreak/internal/logging"
	"github.com/ava12/spellbreak/lexdef"
	"github.com/ava12/spellbreak/pegdef"
	"github.com/ava12/spellbreak/regex"
	"github.com/ava12/spellbreak/scanner"
	"github.com/ava12/spellbreak/schema"
)

// DefaultContext is the context name used when neither configured context nor source name provides one.
const DefaultContext = "Main"

// Frontend parses and emits fragments, it is not safe for concurrent use.
type Frontend struct {
	registry *schema.Registry
	calls    *callback.Calls
	emitter  *emit.Emitter
	log      logrus.FieldLogger
	context  string
}

// Option configures a Frontend.
type Option func(f *Frontend)

// WithLogger sets logger, by default nothing is logged.
func WithLogger(l logrus.FieldLogger) Option {
	return func(f *Frontend) {
		f.log = l
	}
}

// WithTokenMode sets token serialization mode.
func WithTokenMode(m emit.TokenMode) Option {
	return func(f *Frontend) {
		f.emitter.TokenMode = m
	}
}

// WithContext sets context name for lexer and PEG fragments.
// By default the context name is derived from the source name.
func WithContext(name string) Option {
	return func(f *Frontend) {
		f.context = name
	}
}

// WithRegistry makes the front end use an existing schema registry.
func WithRegistry(r *schema.Registry) Option {
	return func(f *Frontend) {
		f.registry = r
		f.emitter.Registry = r
	}
}

// WithCalls makes the front end use an existing call site registry.
func WithCalls(c *callback.Calls) Option {
	return func(f *Frontend) {
		f.calls = c
	}
}

var registrars = []func(*schema.Registry) error{
	callback.Register,
	regex.Register,
	lexdef.Register,
	pegdef.Register,
}

// New creates a front end and registers node kinds of all grammars.
// Returns schema.ConflictError if an existing registry disagrees with node kinds.
func New(opts ...Option) (*Frontend, error) {
	r := schema.New()
	f := &Frontend{
		registry: r,
		calls:    callback.NewCalls(),
		emitter:  emit.New(r),
		log:      logging.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}

	for _, register := range registrars {
		if e := register(f.registry); e != nil {
			return nil, e
		}
	}

	f.log.WithFields(logrus.Fields{
		"kinds":       f.registry.Len(),
		"fingerprint": f.registry.Fingerprint(),
	}).Debug("schema registered")
	return f, nil
}

func (f *Frontend) Registry() *schema.Registry {
	return f.registry
}

func (f *Frontend) Calls() *callback.Calls {
	return f.calls
}

func (f *Frontend) Emitter() *emit.Emitter {
	return f.emitter
}

// ContextName returns context name used for a source: the configured one,
// or the capitalized base name of the source if it starts with a letter.
func (f *Frontend) ContextName(sourceName string) string {
	if f.context != "" {
		return f.context
	}

	base := filepath.Base(sourceName)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	first, size := utf8.DecodeRuneInString(base)
	if !unicode.IsLetter(first) {
		return DefaultContext
	}
	return string(unicode.ToUpper(first)) + base[size:]
}

// Parse parses text with entry production, the whole text must be consumed.
// The result is a node or a list of nodes for list productions (e.g. regex.branches).
func (f *Frontend) Parse(entry grammar.Entry, name, text string) (ast.Value, error) {
	parse, found := entryFuncs[entry]
	if !found {
		return nil, unknownEntryError(entry)
	}

	s := scanner.NewString(name, text)
	staged := callback.NewCalls()
	result, ok, e := parse(s, staged, f.ContextName(name))
	if e == nil && !ok {
		e = expectEntryError(s, entry)
	}
	if e == nil && !s.AtEnd() {
		e = unexpectedInputError(s, entry)
	}
	if e != nil {
		f.log.WithFields(logrus.Fields{"entry": entry.String(), "source": name}).Debug("parse failed")
		return nil, e
	}

	conflicts := f.calls.Conflicts()
	added := f.calls.Merge(staged)
	f.log.WithFields(logrus.Fields{
		"entry":  entry.String(),
		"source": name,
		"bytes":  len(text),
		"result": kindOf(result),
		"calls":  added,
	}).Debug("parsed")

	for _, fname := range f.calls.Conflicts() {
		if !slices.Contains(conflicts, fname) {
			f.log.WithFields(logrus.Fields{
				"function": fname,
				"arities":  f.calls.Arities(fname),
				"source":   name,
			}).Warn("function called with different numbers of arguments")
		}
	}

	return result, nil
}

// Compile parses text with entry production and serializes the result.
func (f *Frontend) Compile(entry grammar.Entry, name, text string) (string, error) {
	v, e := f.Parse(entry, name, text)
	if e != nil {
		return "", e
	}

	out, e := f.emitter.EmitValue(v)
	if e != nil {
		return "", e
	}

	f.log.WithFields(logrus.Fields{"source": name, "bytes": len(out)}).Debug("emitted")
	return out, nil
}

func kindOf(v ast.Value) string {
	switch x := v.(type) {
	case ast.Node:
		return x.Kind()
	case ast.List:
		return "list"
	default:
		return "literal"
	}
}
