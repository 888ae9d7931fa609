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

package registry

import (
	"errors"
	"reflect"
	"slices"

	"dirpx.dev/facet/apis"
)

var (
	// ErrEmptyName is returned when a binding has an empty visible name.
	ErrEmptyName = errors.New("facet(registry): empty name provided")
	// ErrNilTarget is returned when a binding has no target.
	ErrNilTarget = errors.New("facet(registry): nil target provided")
	// ErrConflictingRegistration indicates that a visible name is already
	// bound to a different member and the collision policy kept the old one
	// (FirstWins) or dropped both (Exclude).
	ErrConflictingRegistration = errors.New("facet(registry): conflicting name registration")
	// ErrExcludedName indicates a registration for a name that an earlier
	// collision already excluded.
	ErrExcludedName = errors.New("facet(registry): name excluded after collision")
)

// New constructs an empty Registry applying cfg.Collision.
func New(cfg apis.Config) *Registry {
	return &Registry{
		policy: cfg.Collision,
		m:      make(map[string]apis.Binding),
	}
}

// Registry is a mutable visible-name table. It implements apis.Mapping.
//
// A Registry is not safe for concurrent writes. Resolvers fill it and then
// publish it read-only; concurrent reads of a filled registry are fine.
type Registry struct {
	// policy decides the outcome of collisions.
	policy apis.Collision
	// m maps visible name to binding.
	m map[string]apis.Binding
	// order keeps registration order for Bindings.
	order []string
	// excluded holds names dropped by the Exclude policy.
	excluded map[string]struct{}
}

var _ apis.Mapping = (*Registry)(nil)

// Register binds b.Name. It is idempotent for the same (target, member)
// pair. On collision with a different binding the policy applies:
// FirstWins keeps the old one and returns ErrConflictingRegistration,
// LastWins replaces it and returns nil, Exclude drops the name and returns
// ErrConflictingRegistration.
func (r *Registry) Register(b apis.Binding) error {
	// Validate inputs early.
	if b.Name == "" {
		return ErrEmptyName
	}
	if b.Target == nil {
		return ErrNilTarget
	}
	if _, gone := r.excluded[b.Name]; gone {
		return ErrExcludedName
	}

	old, ok := r.m[b.Name]
	if !ok {
		r.m[b.Name] = b
		r.order = append(r.order, b.Name)
		return nil
	}
	if sameBinding(old, b) {
		return nil // idempotent re-registration
	}

	switch r.policy {
	case apis.LastWins:
		r.m[b.Name] = b
		return nil
	case apis.Exclude:
		delete(r.m, b.Name)
		r.order = slices.DeleteFunc(r.order, func(n string) bool { return n == b.Name })
		if r.excluded == nil {
			r.excluded = make(map[string]struct{})
		}
		r.excluded[b.Name] = struct{}{}
		return ErrConflictingRegistration
	default:
		return ErrConflictingRegistration
	}
}

// Lookup returns the binding for a visible name if present.
func (r *Registry) Lookup(name string) (apis.Binding, bool) {
	b, ok := r.m[name]
	return b, ok
}

// Names returns the visible names in sorted order.
func (r *Registry) Names() []string {
	names := slices.Clone(r.order)
	slices.Sort(names)
	return names
}

// Bindings returns a snapshot in registration order.
func (r *Registry) Bindings() []apis.Binding {
	out := make([]apis.Binding, 0, len(r.order))
	for _, n := range r.order {
		out = append(out, r.m[n])
	}
	return out
}

// Count returns the number of visible names.
func (r *Registry) Count() int {
	return len(r.m)
}

// Reset clears all bindings and exclusions.
func (r *Registry) Reset() {
	r.m = make(map[string]apis.Binding)
	r.order = nil
	r.excluded = nil
}

// View returns a read-only apis.Mapping backed by r. It exposes neither
// Register nor Reset.
func (r *Registry) View() apis.Mapping {
	return &view{r: r}
}

type view struct {
	r *Registry
}

func (v *view) Lookup(name string) (apis.Binding, bool) { return v.r.Lookup(name) }
func (v *view) Names() []string                         { return v.r.Names() }
func (v *view) Bindings() []apis.Binding                { return v.r.Bindings() }
func (v *view) Count() int                              { return v.r.Count() }

func sameBinding(a, b apis.Binding) bool {
	return a.Member == b.Member && sameTarget(a.Target, b.Target)
}

// sameTarget compares targets without panicking on non-comparable
// dynamic types, which are never considered equal.
func sameTarget(a, b apis.Target) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
