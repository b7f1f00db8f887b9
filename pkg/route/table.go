package route

import (
	"context"

	"github.com/wayfind-dev/wayfind/pkg/view"
)

// Params maps capture names to the matched segment values.
type Params map[string]string

// Get returns the named parameter or the empty string.
func (p Params) Get(name string) string {
	return p[name]
}

// Handler produces the view for a matched route. Handlers may block on data
// fetches; the context is cancelled if the navigation is superseded before
// the handler finishes.
type Handler func(ctx context.Context, params Params) (view.Component, error)

// Definition is one registered route: a compiled pattern and its handler.
// Definitions are immutable once registered.
type Definition struct {
	pattern *Pattern
	handler Handler
}

// Pattern returns the route's compiled pattern.
func (d *Definition) Pattern() *Pattern { return d.pattern }

// Handler returns the route's handler.
func (d *Definition) Handler() Handler { return d.handler }

// Match is a successful resolution: the route's handler plus the extracted
// parameters. A fresh value is produced per navigation.
type Match struct {
	Route   *Definition
	Handler Handler
	Params  Params
}

// Table is an ordered route table. Matching walks definitions in
// registration order and the first structural match wins; registration order
// is the only disambiguator, so more specific patterns belong before
// catch-alls. The table is read-only after startup.
type Table struct {
	defs []*Definition
}

// NewTable creates an empty route table.
func NewTable() *Table {
	return &Table{}
}

// Add compiles the pattern and appends a definition. Malformed patterns are
// a startup failure.
func (t *Table) Add(pattern string, handler Handler) error {
	p, err := CompilePattern(pattern)
	if err != nil {
		return err
	}
	t.defs = append(t.defs, &Definition{pattern: p, handler: handler})
	return nil
}

// MustAdd is Add that panics on a malformed pattern.
func (t *Table) MustAdd(pattern string, handler Handler) {
	if err := t.Add(pattern, handler); err != nil {
		panic(err)
	}
}

// Len returns the number of registered routes.
func (t *Table) Len() int {
	return len(t.defs)
}

// Routes returns the registered definitions in order.
func (t *Table) Routes() []*Definition {
	return t.defs
}

// Match resolves a canonical path against the table. The boolean is false
// when no route matches; that is an ordinary outcome, not an error.
func (t *Table) Match(canonPath string) (Match, bool) {
	parts := Split(canonPath)
	for _, def := range t.defs {
		if params, ok := def.pattern.match(parts); ok {
			return Match{Route: def, Handler: def.handler, Params: params}, true
		}
	}
	return Match{}, false
}
