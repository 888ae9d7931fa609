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
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"dirpx.dev/facet/apis"
	"dirpx.dev/facet/config"
	"dirpx.dev/facet/router"
)

func TestCompose_KindAndEntries(t *testing.T) {
	a := router.NewLazy(newResolver(), apis.Entry{Target: &Data{X: 1}})
	b := router.NewLazy(newResolver(), apis.Entry{Target: map[string]int{"y": 2}})

	c, err := a.Compose(b)
	require.NoError(t, err)
	assert.Equal(t, apis.Lazy, c.Kind())
	require.Len(t, c.Entries(), 2)
	assert.Equal(t, []string{"X", "y"}, c.Members())

	// Operands are untouched.
	assert.Len(t, a.Entries(), 1)
	assert.Len(t, b.Entries(), 1)
	assert.Equal(t, []string{"X"}, a.Members())
}

func TestCompose_IncompatibleKinds(t *testing.T) {
	e := router.NewEager(newResolver(), apis.Entry{Target: &Data{}})
	l := router.NewLazy(newResolver(), apis.Entry{Target: &Data{}})

	_, err := e.Compose(l)
	assert.True(t, errors.Is(err, apis.ErrIncompatibleKind), "eager+lazy: %v", err)
	_, err = l.Compose(e)
	assert.True(t, errors.Is(err, apis.ErrIncompatibleKind), "lazy+eager: %v", err)
}

func TestCompose_NilRouter(t *testing.T) {
	e := router.NewEager(newResolver())
	_, err := router.Compose(e, nil)
	assert.ErrorIs(t, err, router.ErrNilRouter)
	_, err = router.Compose(nil, e)
	assert.ErrorIs(t, err, router.ErrNilRouter)
}

func TestCompose_UsesLeftResolver(t *testing.T) {
	left := newResolver(config.WithCollision(apis.LastWins))
	a := router.NewEager(left, apis.Entry{Target: map[string]int{"k": 1}})
	b := router.NewEager(newResolver(), apis.Entry{Target: map[string]int{"k": 2}})

	c, err := router.Compose(a, b)
	require.NoError(t, err)
	assert.Same(t, left, c.(*router.Eager).Resolver())

	v, err := c.Get("k")
	require.NoError(t, err)
	assert.Equal(t, 2, v, "last-wins resolver of the left operand applies")
}

func TestCompose_FirstWinsByDefault(t *testing.T) {
	a := router.NewEager(newResolver(), apis.Entry{Target: map[string]int{"k": 1}})
	b := router.NewEager(newResolver(), apis.Entry{Target: map[string]int{"k": 2}})
	c, err := a.Compose(b)
	require.NoError(t, err)
	v, _ := c.Get("k")
	assert.Equal(t, 1, v)
}

func TestCompose_ExcludeDropsAmbiguousNames(t *testing.T) {
	res := newResolver(config.WithCollision(apis.Exclude))
	r := router.NewEager(res,
		apis.Entry{Target: map[string]int{"k": 1, "a": 1}},
		apis.Entry{Target: map[string]int{"k": 2, "b": 2}},
	)
	assert.Equal(t, []string{"a", "b"}, r.Members())
	requireNotFound(t, r, "k")
}

// TestCompose_Associative checks that (a+b)+c and a+(b+c) expose the same
// names bound to the same values, for randomly generated map targets.
func TestCompose_Associative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		gen := rapid.MapOfN(rapid.StringMatching(`[a-d]{1,2}`), rapid.IntRange(0, 99), 0, 6)
		res := newResolver()
		kind := rapid.SampledFrom([]apis.Kind{apis.Eager, apis.Lazy}).Draw(t, "kind")
		mk := func(label string) apis.Router {
			e := apis.Entry{Target: gen.Draw(t, label)}
			if kind == apis.Eager {
				return router.NewEager(res, e)
			}
			return router.NewLazy(res, e)
		}
		a, b, c := mk("a"), mk("b"), mk("c")

		ab, err := router.Compose(a, b)
		if err != nil {
			t.Fatal(err)
		}
		left, err := router.Compose(ab, c)
		if err != nil {
			t.Fatal(err)
		}
		bc, err := router.Compose(b, c)
		if err != nil {
			t.Fatal(err)
		}
		right, err := router.Compose(a, bc)
		if err != nil {
			t.Fatal(err)
		}

		if !slices.Equal(left.Members(), right.Members()) {
			t.Fatalf("members differ: %v vs %v", left.Members(), right.Members())
		}
		for _, name := range left.Members() {
			lv, lerr := left.Get(name)
			rv, rerr := right.Get(name)
			if lerr != nil || rerr != nil || lv != rv {
				t.Fatalf("%q: (%v, %v) vs (%v, %v)", name, lv, lerr, rv, rerr)
			}
		}
	})
}

func TestCompose_Chain(t *testing.T) {
	var routers []apis.Router
	for i := range 4 {
		routers = append(routers, router.NewEager(newResolver(),
			apis.Entry{Target: map[string]int{fmt.Sprintf("k%d", i): i}}))
	}
	acc := routers[0]
	for _, r := range routers[1:] {
		var err error
		acc, err = acc.Compose(r)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"k0", "k1", "k2", "k3"}, acc.Members())
}
