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

package router

import (
	"slices"

	"dirpx.dev/facet/apis"
)

// Eager is a router whose mapping is computed once, at construction.
type Eager struct {
	res     apis.Resolver
	entries []apis.Entry
	mapping apis.Mapping
}

var _ apis.Router = (*Eager)(nil)

// NewEager resolves entries with res and returns the router. The entry
// slice is copied.
func NewEager(res apis.Resolver, entries ...apis.Entry) *Eager {
	es := slices.Clone(entries)
	return &Eager{res: res, entries: es, mapping: res.Resolve(es)}
}

// Kind returns apis.Eager.
func (r *Eager) Kind() apis.Kind { return apis.Eager }

// Entries returns a copy of the router's entries.
func (r *Eager) Entries() []apis.Entry { return slices.Clone(r.entries) }

// Resolver returns the resolver the router was built with.
func (r *Eager) Resolver() apis.Resolver { return r.res }

// Mapping returns the cached mapping as a read-only view.
func (r *Eager) Mapping() apis.Mapping { return r.mapping }

// Members returns the visible names, sorted.
func (r *Eager) Members() []string { return r.mapping.Names() }

// Get reads a visible member from its target.
func (r *Eager) Get(name string) (any, error) {
	b, ok := r.mapping.Lookup(name)
	if !ok {
		return nil, notFound(name)
	}
	return b.Target.Get(b.Member)
}

// Set writes a visible member on its target. Target failures are returned
// unchanged.
func (r *Eager) Set(name string, value any) error {
	b, ok := r.mapping.Lookup(name)
	if !ok {
		return notFound(name)
	}
	return b.Target.Set(b.Member, value)
}

// Call invokes a visible function member.
func (r *Eager) Call(name string, args ...any) ([]any, error) {
	return Call(r, name, args...)
}

// Compose returns a new Eager router over r's entries followed by other's.
func (r *Eager) Compose(other apis.Router) (apis.Router, error) {
	return Compose(r, other)
}
