/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package builder

import (
	"dirpx.dev/facet/apis"
	"dirpx.dev/facet/catalog"
	"dirpx.dev/facet/config"
	"dirpx.dev/facet/pattern"
	"dirpx.dev/facet/resolver"
	"dirpx.dev/facet/strategy"
)

// ErrInvalidPattern is returned by BuildEntry when a route pattern does not
// compile.
var ErrInvalidPattern = pattern.ErrInvalidPattern

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildCatalog builds the standard adapter chain: values that are already
// targets, then string-keyed maps, then reflection.
func (b *builder) BuildCatalog(cfg apis.Config) apis.Catalog {
	return catalog.New(cfg,
		strategy.NewTargetStrategy(),
		strategy.NewMapStrategy(),
		strategy.NewReflectStrategy(),
	)
}

// BuildResolver builds a resolver over cat. A nil catalog is replaced by
// BuildCatalog(cfg).
func (b *builder) BuildResolver(cfg apis.Config, cat apis.Catalog) apis.Resolver {
	if cat == nil {
		cat = b.BuildCatalog(cfg)
	}
	return resolver.New(cfg, cat)
}

// BuildEntry compiles route into an entry over target. The qualifier is a
// full match of route.Match (cfg.Pattern when empty); the transform is a
// substitution when route.Rewrite is set and the identity otherwise. A
// template referencing a group its pattern lacks is rejected with
// ErrInvalidPattern.
func (b *builder) BuildEntry(target any, route apis.Route, cfg apis.Config) (apis.Entry, error) {
	expr := route.Match
	if expr == "" {
		expr = cfg.Pattern
	}
	if expr == "" {
		expr = config.DefaultPattern
	}

	q, err := pattern.Compile(expr, cfg.Engine)
	if err != nil {
		return apis.Entry{}, err
	}
	entry := apis.Entry{
		Target:    target,
		Qualifier: q.FullMatch,
		Transform: apis.Identity,
	}

	if rw := route.Rewrite; rw != nil {
		m, err := pattern.Compile(rw.Pattern, cfg.Engine)
		if err != nil {
			return apis.Entry{}, err
		}
		tmpl := pattern.Template(rw.Template)
		if err := pattern.CheckTemplate(m, tmpl); err != nil {
			return apis.Entry{}, err
		}
		entry.Transform = func(name string) (string, error) {
			return m.Replace(name, tmpl)
		}
	}
	return entry, nil
}

// Option configures a route.
type Option func(*apis.Route)

// NewRoute builds a route from options. With no options the route matches
// cfg.Pattern and keeps names unchanged.
func NewRoute(opts ...Option) apis.Route {
	var r apis.Route
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// WithMatch sets the qualifier pattern. It must match whole names and
// replaces the default, so it may re-admit underscore names.
func WithMatch(expr string) Option {
	return func(r *apis.Route) {
		r.Match = expr
	}
}

// WithRename renames qualified names by substituting expr with tmpl.
func WithRename(expr, tmpl string) Option {
	return func(r *apis.Route) {
		r.Rewrite = &apis.Rewrite{Pattern: expr, Template: tmpl}
	}
}
