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

// Lazy is a router that rebuilds its mapping on every access.
type Lazy struct {
	res     apis.Resolver
	entries []apis.Entry
}

var _ apis.Router = (*Lazy)(nil)

// NewLazy returns a router over entries. Nothing is resolved until the
// first access. The entry slice is copied.
func NewLazy(res apis.Resolver, entries ...apis.Entry) *Lazy {
	return &Lazy{res: res, entries: slices.Clone(entries)}
}

// Kind returns apis.Lazy.
func (r *Lazy) Kind() apis.Kind { return apis.Lazy }

// Entries returns a copy of the router's entries.
func (r *Lazy) Entries() []apis.Entry { return slices.Clone(r.entries) }

// Resolver returns the resolver the router was built with.
func (r *Lazy) Resolver() apis.Resolver { return r.res }

// Mapping resolves and returns the current mapping.
func (r *Lazy) Mapping() apis.Mapping { return r.res.Resolve(r.entries) }

// Members returns the currently visible names, sorted.
func (r *Lazy) Members() []string { return r.Mapping().Names() }

// Get resolves the mapping and reads a visible member from its target.
func (r *Lazy) Get(name string) (any, error) {
	b, ok := r.Mapping().Lookup(name)
	if !ok {
		return nil, notFound(name)
	}
	return b.Target.Get(b.Member)
}

// Set resolves the mapping and writes a visible member on its target.
// Target failures are returned unchanged.
func (r *Lazy) Set(name string, value any) error {
	b, ok := r.Mapping().Lookup(name)
	if !ok {
		return notFound(name)
	}
	return b.Target.Set(b.Member, value)
}

// Call invokes a visible function member.
func (r *Lazy) Call(name string, args ...any) ([]any, error) {
	return Call(r, name, args...)
}

// Compose returns a new Lazy router over r's entries followed by other's.
func (r *Lazy) Compose(other apis.Router) (apis.Router, error) {
	return Compose(r, other)
}
