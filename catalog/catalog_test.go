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

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/facet/apis"
	"dirpx.dev/facet/catalog"
	"dirpx.dev/facet/config"
	"dirpx.dev/facet/strategy"
)

type Foo struct {
	X int
	Y string
}

func (Foo) M() {}

type fixed struct{ names []string }

func (f fixed) Members() []string       { return f.names }
func (f fixed) Get(string) (any, error) { return nil, nil }
func (f fixed) Set(string, any) error   { return nil }

// staticStrategy handles everything with a fixed target.
type staticStrategy struct{ t apis.Target }

func (s staticStrategy) TryAdapt(any, apis.Config) (apis.Target, bool) { return s.t, true }

func TestDefault_Order(t *testing.T) {
	cat := catalog.Default(config.DefaultConfig())

	cases := []struct {
		name string
		val  any
		want []string
	}{
		{"struct", &Foo{}, []string{"X", "Y", "M"}},
		{"map", map[string]int{"b": 1, "a": 2}, []string{"a", "b"}},
		{"target", fixed{names: []string{"z"}}, []string{"z"}},
		{"nil", nil, nil},
		{"typed nil", (*Foo)(nil), nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := catalog.Members(cat, tc.val)
			if len(tc.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNew_FirstHandlerWins(t *testing.T) {
	cat := catalog.New(config.DefaultConfig(),
		nil, // ignored
		staticStrategy{t: fixed{names: []string{"first"}}},
		strategy.NewReflectStrategy(),
	)
	assert.Equal(t, []string{"first"}, catalog.Members(cat, &Foo{}))
}

func TestNew_NoStrategies(t *testing.T) {
	cat := catalog.New(config.DefaultConfig())
	assert.Empty(t, catalog.Members(cat, &Foo{}))
}
