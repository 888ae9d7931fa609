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

package resolver

import (
	"fmt"
	"log/slog"

	"dirpx.dev/facet/apis"
	"dirpx.dev/facet/registry"
)

// New constructs an apis.Resolver over cat applying cfg.Collision.
// The resolver itself is stateless and safe for concurrent use; every
// Resolve call builds a fresh mapping.
func New(cfg apis.Config, cat apis.Catalog) apis.Resolver {
	return &resolver{cfg: cfg, cat: cat}
}

type resolver struct {
	cfg apis.Config
	cat apis.Catalog
}

func (r *resolver) Catalog() apis.Catalog { return r.cat }

func (r *resolver) Config() apis.Config { return r.cfg }

// Resolve walks entries in order and, for each, the candidate names of its
// adapted target: qualifier first, then transform, then registration.
// Failing qualifiers and transforms exclude the candidate; collisions are
// settled by the registry's policy.
func (r *resolver) Resolve(entries []apis.Entry) apis.Mapping {
	reg := registry.New(r.cfg)
	log := r.cfg.Log()

	for i, e := range entries {
		target := r.cat.Adapt(e.Target)
		for _, name := range target.Members() {
			if !qualify(e.Qualifier, name, i, log) {
				continue
			}
			visible, ok := transform(e.Transform, name, i, log)
			if !ok {
				continue
			}
			err := reg.Register(apis.Binding{Name: visible, Target: target, Member: name, Entry: i})
			if err != nil {
				log.Debug("facet: binding skipped",
					"name", visible, "member", name, "entry", i,
					"collision", r.cfg.Collision.String(), "err", err)
			}
		}
	}
	return reg.View()
}

// qualify evaluates q, converting errors and panics into a rejection.
func qualify(q apis.Qualifier, name string, entry int, log *slog.Logger) (accepted bool) {
	if q == nil {
		return true
	}
	defer func() {
		if p := recover(); p != nil {
			log.Debug("facet: qualifier panicked", "member", name, "entry", entry, "panic", fmt.Sprint(p))
			accepted = false
		}
	}()

	ok, err := q(name)
	if err != nil {
		log.Debug("facet: qualifier failed", "member", name, "entry", entry, "err", err)
		return false
	}
	return ok
}

// transform evaluates tr, converting errors and panics into a skip.
func transform(tr apis.Transform, name string, entry int, log *slog.Logger) (visible string, ok bool) {
	if tr == nil {
		return name, true
	}
	defer func() {
		if p := recover(); p != nil {
			log.Debug("facet: transform panicked", "member", name, "entry", entry, "panic", fmt.Sprint(p))
			visible, ok = "", false
		}
	}()

	out, err := tr(name)
	if err != nil {
		log.Debug("facet: transform failed", "member", name, "entry", entry, "err", err)
		return "", false
	}
	return out, true
}
