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

// Package facet builds lightweight facades over Go values.
//
// A facade (a router) exposes a filtered, optionally renamed subset of one
// or more values' members (fields, computed properties, bound methods)
// and forwards every read, write and call to the value that owns the
// member. Routers restrict a namespace, relabel members, merge several
// namespaces into one, or nest to build hierarchies. The underlying values
// are never modified except through writes the caller routes to them.
//
//	type Foo struct{ Bar0, Bar1 int }
//
//	foo := &Foo{Bar0: 123, Bar1: 321}
//	r := facet.MustEager(foo, facet.Match(`.*0`), facet.Rename(`^(.*)0$`, `\1`))
//
//	r.Members()        // [Bar]
//	r.Get("Bar")       // 123
//	r.Set("Bar", 456)  // foo.Bar0 == 456
//	r.Get("Bar1")      // apis.ErrMemberNotFound
//
// # Design
//
// The engine is split into small layers, leaves first:
//
//   - Catalog (packages strategy, catalog): adapts any value to apis.Target,
//     the capability set {Members, Get, Set}. Values that already implement
//     apis.Target (routers included) are used as-is; string-keyed maps
//     expose their keys; everything else exposes exported fields and
//     methods through reflection.
//
//   - Resolver (packages resolver, registry): walks an ordered list of
//     apis.Entry (target, qualifier, transform) and builds the mapping
//     visible name -> (target, member). Qualifier and transform failures,
//     errors and panics alike, exclude the candidate and never reach the
//     caller. Collisions follow Config.Collision (first registration wins
//     by default).
//
//   - Routers (package router): Eager resolves once and serves lookups from
//     the snapshot; Lazy resolves on every call. Both implement apis.Router
//     and apis.Target, so a router can route another router.
//
//   - Builder (package builder, pattern): compiles pattern routes (full
//     match qualifier, substitution transform) into entries.
//
// # Global API
//
// Like a process-wide registry, the package keeps a read-mostly snapshot
// of (Config, Builder, Resolver) behind an atomic pointer. Convenience
// constructors (Eager, Lazy, EagerEx, LazyEx) read it lock-free; SetConfig,
// SetBuilder and SetAll build a new snapshot under a mutex and publish it.
// Routers capture the resolver current at their construction and are not
// affected by later swaps.
//
// # Concurrency model
//
// Routing is synchronous and local. An Eager router's mapping is read-only
// after construction and may be read concurrently; whether the targets
// themselves tolerate concurrent access is the caller's concern. A Lazy
// router re-enumerates live targets on every call and therefore inherits
// their synchronization requirements.
//
// # Members
//
// Only exported struct fields and methods are members; Go reflection cannot
// reach unexported ones. Map keys and custom targets may carry underscore
// names, which the default pattern hides and an explicit Match can
// re-admit. A field or map value implementing apis.Accessor is a computed
// member: reads call Load and writes call Store (apis.Mutator) or fail with
// apis.ErrReadOnly.
package facet
