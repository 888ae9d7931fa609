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

package apis

// Target is the capability set every routable value exposes: member
// enumeration, member read and member write. Plain Go values are adapted
// to Target by a Catalog; routers implement it directly, which is what
// makes nesting work without special cases.
type Target interface {
	// Members returns the names of the members currently reachable on the
	// target. Order is implementation-defined.
	Members() []string

	// Get reads the named member through the target's own resolution
	// mechanism: computed properties evaluate, methods come back bound.
	Get(name string) (any, error)

	// Set writes the named member through the target's own write
	// mechanism. Failures of the target (read-only, type mismatch) are
	// returned as-is.
	Set(name string, value any) error
}

// Accessor is implemented by computed members. A field or map value whose
// value implements Accessor is read through Load instead of being returned
// verbatim.
type Accessor interface {
	Load() (any, error)
}

// Mutator is the write half of a computed member. An Accessor without a
// Mutator is read-only.
type Mutator interface {
	Store(value any) error
}

// Property is a ready-made computed member built from plain functions.
// A nil Setter makes the property read-only; a nil Getter reads as nil.
type Property struct {
	Getter func() any
	Setter func(value any) error
}

var (
	_ Accessor = Property{}
	_ Mutator  = Property{}
)

// Load evaluates the getter.
func (p Property) Load() (any, error) {
	if p.Getter == nil {
		return nil, nil
	}
	return p.Getter(), nil
}

// Store invokes the setter, or reports ErrReadOnly when there is none.
func (p Property) Store(value any) error {
	if p.Setter == nil {
		return ErrReadOnly
	}
	return p.Setter(value)
}
