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
	"errors"
	"fmt"

	"dirpx.dev/facet/apis"
	"dirpx.dev/facet/catalog"
	"dirpx.dev/facet/config"
	"dirpx.dev/facet/resolver"
)

// ErrNilRouter is returned when composing with a nil router.
var ErrNilRouter = errors.New("facet(router): nil router")

// resolverHolder is implemented by routers that expose their resolver.
type resolverHolder interface {
	Resolver() apis.Resolver
}

// Compose returns a new router of a's kind whose entries are a's followed
// by b's. The result uses a's resolver (b's if a has none, the default
// otherwise). Composition is associative; neither operand is modified.
func Compose(a, b apis.Router) (apis.Router, error) {
	if a == nil || b == nil {
		return nil, ErrNilRouter
	}
	if a.Kind() != b.Kind() {
		return nil, fmt.Errorf("%w: %v + %v", apis.ErrIncompatibleKind, a.Kind(), b.Kind())
	}

	entries := append(a.Entries(), b.Entries()...)
	res := resolverOf(a, b)

	switch a.Kind() {
	case apis.Eager:
		return NewEager(res, entries...), nil
	case apis.Lazy:
		return NewLazy(res, entries...), nil
	default:
		return nil, fmt.Errorf("%w: %v", apis.ErrIncompatibleKind, a.Kind())
	}
}

func resolverOf(routers ...apis.Router) apis.Resolver {
	for _, r := range routers {
		if h, ok := r.(resolverHolder); ok && h.Resolver() != nil {
			return h.Resolver()
		}
	}
	cfg := config.DefaultConfig()
	return resolver.New(cfg, catalog.Default(cfg))
}

func notFound(name string) error {
	return fmt.Errorf("%w: %q", apis.ErrMemberNotFound, name)
}
