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

package router_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/facet/apis"
	"dirpx.dev/facet/builder"
	"dirpx.dev/facet/catalog"
	"dirpx.dev/facet/config"
	"dirpx.dev/facet/resolver"
	"dirpx.dev/facet/router"
)

func newResolver(opts ...config.Option) apis.Resolver {
	cfg := config.NewConfig(opts...)
	return resolver.New(cfg, catalog.Default(cfg))
}

// route builds a pattern entry the way convenience constructors do.
func route(t testing.TB, target any, opts ...builder.Option) apis.Entry {
	t.Helper()
	e, err := builder.New().BuildEntry(target, builder.NewRoute(opts...), config.DefaultConfig())
	require.NoError(t, err)
	return e
}

func eager(t testing.TB, target any, opts ...builder.Option) *router.Eager {
	t.Helper()
	return router.NewEager(newResolver(), route(t, target, opts...))
}

func lazy(t testing.TB, target any, opts ...builder.Option) *router.Lazy {
	t.Helper()
	return router.NewLazy(newResolver(), route(t, target, opts...))
}

// both runs fn against an eager and a lazy router over the same route.
func both(t *testing.T, target any, opts []builder.Option, fn func(t *testing.T, r apis.Router)) {
	t.Run("eager", func(t *testing.T) { fn(t, eager(t, target, opts...)) })
	t.Run("lazy", func(t *testing.T) { fn(t, lazy(t, target, opts...)) })
}

func match(expr string) builder.Option { return builder.WithMatch(expr) }

func rename(expr, tmpl string) builder.Option { return builder.WithRename(expr, tmpl) }
