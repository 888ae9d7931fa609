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

package catalog

import (
	"dirpx.dev/facet/apis"
	"dirpx.dev/facet/strategy"
)

// New constructs an apis.Catalog that tries the given strategies in order.
// Nil strategies are ignored. Values no strategy handles (nil, typed nil
// pointers) adapt to an empty target. The returned catalog is safe for
// concurrent use provided strategies themselves are.
func New(cfg apis.Config, strategies ...apis.Strategy) apis.Catalog {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{cfg: cfg, strats: out}
}

// Default returns the standard chain: Target -> Map -> Reflect.
func Default(cfg apis.Config) apis.Catalog {
	return New(cfg,
		strategy.NewTargetStrategy(),
		strategy.NewMapStrategy(),
		strategy.NewReflectStrategy(),
	)
}

// chain is an immutable, order-preserving catalog over a set of strategies.
type chain struct {
	cfg    apis.Config
	strats []apis.Strategy
}

// Adapt runs strategies in order until one handles the value.
func (c chain) Adapt(v any) apis.Target {
	for _, s := range c.strats {
		if t, ok := s.TryAdapt(v, c.cfg); ok {
			return t
		}
	}
	return strategy.Empty()
}

// Members is the catalog view of v: the member names its adapter exposes,
// before any qualifier or transform is applied.
func Members(cat apis.Catalog, v any) []string {
	return cat.Adapt(v).Members()
}
