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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/facet/apis"
	"dirpx.dev/facet/registry"
	"dirpx.dev/facet/router"
)

func TestLazy_SeesNewMembers(t *testing.T) {
	m := map[string]any{"a": 1}
	l := router.NewLazy(newResolver(), apis.Entry{Target: m})
	e := router.NewEager(newResolver(), apis.Entry{Target: m})

	m["b"] = 2

	assert.Equal(t, []string{"a", "b"}, l.Members())
	v, err := l.Get("b")
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	// The eager router keeps its construction-time mapping.
	assert.Equal(t, []string{"a"}, e.Members())
	requireNotFound(t, e, "b")
}

func TestLazy_ForgetsRemovedMembers(t *testing.T) {
	m := map[string]any{"a": 1, "b": 2}
	l := router.NewLazy(newResolver(), apis.Entry{Target: m})
	e := router.NewEager(newResolver(), apis.Entry{Target: m})

	delete(m, "b")

	assert.Equal(t, []string{"a"}, l.Members())
	requireNotFound(t, l, "b")

	// Eager still routes the name; the map itself reports the missing key.
	assert.Equal(t, []string{"a", "b"}, e.Members())
	_, err := e.Get("b")
	assert.True(t, errors.Is(err, apis.ErrMemberNotFound))
}

func TestLazy_ValuesAreNeverCached(t *testing.T) {
	d := &Data{X: 1}
	for _, r := range []apis.Router{
		router.NewEager(newResolver(), apis.Entry{Target: d}),
		router.NewLazy(newResolver(), apis.Entry{Target: d}),
	} {
		d.X = 7
		v, err := r.Get("X")
		require.NoError(t, err)
		assert.Equal(t, 7, v, "%v router must forward reads", r.Kind())
	}
}

func TestLazy_SetOnMap(t *testing.T) {
	m := map[string]int{"a": 1}
	l := router.NewLazy(newResolver(), apis.Entry{Target: m})
	require.NoError(t, l.Set("a", 5))
	assert.Equal(t, 5, m["a"])
	assert.True(t, errors.Is(l.Set("a", "five"), apis.ErrTypeMismatch))
}

func TestLazy_MappingIsFresh(t *testing.T) {
	l := router.NewLazy(newResolver(), apis.Entry{Target: &Data{}})
	assert.NotSame(t, l.Mapping(), l.Mapping())
	assert.Equal(t, 1, l.Mapping().Count())
}

func TestMapping_IsReadOnly(t *testing.T) {
	for _, r := range []interface{ Mapping() apis.Mapping }{
		router.NewEager(newResolver(), apis.Entry{Target: &Data{X: 1}}),
		router.NewLazy(newResolver(), apis.Entry{Target: &Data{X: 1}}),
	} {
		m := r.Mapping()
		_, isRegistry := m.(*registry.Registry)
		assert.False(t, isRegistry)
		_, canReset := m.(interface{ Reset() })
		assert.False(t, canReset)
		assert.Equal(t, []string{"X"}, m.Names())
	}
}
