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

package facet

import (
	"errors"
	"sync"
	"sync/atomic"

	"dirpx.dev/facet/apis"
	"dirpx.dev/facet/builder"
	"dirpx.dev/facet/catalog"
	"dirpx.dev/facet/config"
	"dirpx.dev/facet/router"
)

// Initialize the global state with default builder and config.
func init() {
	s := &state{cfg: config.DefaultConfig(), bld: builder.New()}
	s.res = s.bld.BuildResolver(s.cfg, s.bld.BuildCatalog(s.cfg))
	st.Store(s)
}

var (
	// ErrNilCatalog is returned (via panic) when a builder returns a nil catalog.
	ErrNilCatalog = errors.New("facet: builder returned nil catalog")
	// ErrNilResolver is returned (via panic) when a builder returns a nil resolver.
	ErrNilResolver = errors.New("facet: builder returned nil resolver")
)

// RouteOption configures a convenience route.
type RouteOption = builder.Option

// Match sets the qualifier pattern of a convenience route. The pattern must
// match whole member names. Without Match, Config().Pattern applies, which
// hides names starting with an underscore.
func Match(expr string) RouteOption { return builder.WithMatch(expr) }

// Rename renames qualified members by regular expression substitution.
// tmpl may reference groups as \1, \g<1>, \g<name>, $1 or ${name}.
func Rename(expr, tmpl string) RouteOption { return builder.WithRename(expr, tmpl) }

// Eager builds an eager router over a single target from pattern options.
func Eager(target any, opts ...RouteOption) (*router.Eager, error) {
	s := st.Load()
	e, err := s.bld.BuildEntry(target, builder.NewRoute(opts...), s.cfg)
	if err != nil {
		return nil, err
	}
	return router.NewEager(s.res, e), nil
}

// MustEager is like Eager but panics if a pattern does not compile.
func MustEager(target any, opts ...RouteOption) *router.Eager {
	r, err := Eager(target, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// EagerEx builds an eager router from explicit entries.
func EagerEx(entries ...apis.Entry) *router.Eager {
	return router.NewEager(st.Load().res, entries...)
}

// Lazy builds a lazy router over a single target from pattern options.
func Lazy(target any, opts ...RouteOption) (*router.Lazy, error) {
	s := st.Load()
	e, err := s.bld.BuildEntry(target, builder.NewRoute(opts...), s.cfg)
	if err != nil {
		return nil, err
	}
	return router.NewLazy(s.res, e), nil
}

// MustLazy is like Lazy but panics if a pattern does not compile.
func MustLazy(target any, opts ...RouteOption) *router.Lazy {
	r, err := Lazy(target, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// LazyEx builds a lazy router from explicit entries.
func LazyEx(entries ...apis.Entry) *router.Lazy {
	return router.NewLazy(st.Load().res, entries...)
}

// Compose folds routers left to right: ((first + r1) + r2) + ...
// All routers must share a Kind.
func Compose(first apis.Router, rest ...apis.Router) (apis.Router, error) {
	acc := first
	for _, r := range rest {
		next, err := router.Compose(acc, r)
		if err != nil {
			return nil, err
		}
		acc = next
	}
	return acc, nil
}

// Call invokes a function member of t.
func Call(t apis.Target, name string, args ...any) ([]any, error) {
	return router.Call(t, name, args...)
}

// Members lists the candidate member names of v as the current catalog sees
// them, before any qualifier or transform.
func Members(v any) []string {
	return catalog.Members(st.Load().res.Catalog(), v)
}

// Config returns the current global config.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig replaces the global config and rebuilds catalog and resolver
// with the current builder. Routers built earlier keep their resolver.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(build(cfg, old.bld))
}

// Builder returns the current global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder replaces the global builder and rebuilds catalog and resolver.
// A nil builder is ignored.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(build(old.cfg, b))
}

// Resolver returns the current global resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetAll replaces config and builder in one shot. Nil arguments keep the
// current value. It is mainly used by tests to get a clean, deterministic
// state.
func SetAll(cfg *apis.Config, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()

	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}
	st.Store(build(ncfg, nbld))
}

// build derives a fresh state. It panics if the builder misbehaves.
func build(cfg apis.Config, b apis.Builder) *state {
	cat := b.BuildCatalog(cfg)
	if cat == nil {
		panic(ErrNilCatalog)
	}
	res := b.BuildResolver(cfg, cat)
	if res == nil {
		panic(ErrNilResolver)
	}
	return &state{cfg: cfg, bld: b, res: res}
}

// buildMu serializes writers; readers never take it.
var buildMu sync.Mutex

// st holds the current global state snapshot.
var st atomic.Pointer[state]

// state is an immutable snapshot of the global configuration.
type state struct {
	// cfg is the config convenience constructors compile routes with.
	cfg apis.Config
	// bld is the builder used to derive catalog, resolver and entries.
	bld apis.Builder
	// res is the resolver handed to new routers.
	res apis.Resolver
}
