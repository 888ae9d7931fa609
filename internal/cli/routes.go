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

package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"dirpx.dev/facet/apis"
	"dirpx.dev/facet/builder"
	"dirpx.dev/facet/config"
	"dirpx.dev/facet/router"
)

// Routes is the routes file: router settings plus one route per exposed
// subtree of the document.
type Routes struct {
	Kind      string     `mapstructure:"kind"`
	Collision string     `mapstructure:"collision"`
	Engine    string     `mapstructure:"engine"`
	Routes    []RouteDef `mapstructure:"routes"`
}

// RouteDef exposes members of the mapping at Path. Match defaults to the
// configured pattern; Rename and Template are optional.
type RouteDef struct {
	Path     string `mapstructure:"path"`
	Match    string `mapstructure:"match"`
	Rename   string `mapstructure:"rename"`
	Template string `mapstructure:"template"`
}

// DefaultRoutes routes every public key of the document root.
func DefaultRoutes() *Routes {
	return &Routes{
		Kind:      apis.Eager.String(),
		Collision: config.DefaultCollision.String(),
		Engine:    config.DefaultEngine.String(),
		Routes:    []RouteDef{{}},
	}
}

// LoadRoutes reads a YAML or JSON routes file. Missing settings fall back
// to DefaultRoutes; an empty routes list exposes the document root.
func LoadRoutes(path string) (*Routes, error) {
	if path == "" {
		return DefaultRoutes(), nil
	}

	def := DefaultRoutes()
	v := viper.New()
	v.SetDefault("kind", def.Kind)
	v.SetDefault("collision", def.Collision)
	v.SetDefault("engine", def.Engine)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading routes %s: %w", path, err)
	}

	var rs Routes
	if err := v.Unmarshal(&rs); err != nil {
		return nil, fmt.Errorf("decoding routes %s: %w", path, err)
	}
	if len(rs.Routes) == 0 {
		rs.Routes = def.Routes
	}
	return &rs, nil
}

// Config translates the router settings into a facet config.
func (rs *Routes) Config(logger *slog.Logger) (apis.Config, error) {
	collision, err := apis.ParseCollision(rs.Collision)
	if err != nil {
		return apis.Config{}, err
	}
	engine, err := apis.ParseEngine(rs.Engine)
	if err != nil {
		return apis.Config{}, err
	}
	return config.NewConfig(
		config.WithCollision(collision),
		config.WithEngine(engine),
		config.WithLogger(logger),
	), nil
}

// Build compiles every route against doc and composes the resulting
// routers in file order.
func (rs *Routes) Build(doc *Document, logger *slog.Logger) (apis.Router, error) {
	kind, err := apis.ParseKind(rs.Kind)
	if err != nil {
		return nil, err
	}
	cfg, err := rs.Config(logger)
	if err != nil {
		return nil, err
	}

	bld := builder.New()
	res := bld.BuildResolver(cfg, nil)

	var acc apis.Router
	for i, rd := range rs.Routes {
		target, err := doc.Lookup(rd.Path)
		if err != nil {
			return nil, fmt.Errorf("route %d: %w", i, err)
		}
		entry, err := bld.BuildEntry(target, rd.route(), cfg)
		if err != nil {
			return nil, fmt.Errorf("route %d: %w", i, err)
		}

		var r apis.Router
		if kind == apis.Lazy {
			r = router.NewLazy(res, entry)
		} else {
			r = router.NewEager(res, entry)
		}
		logger.Debug("route built", "route", i, "path", rd.Path, "members", len(r.Members()))

		if acc == nil {
			acc = r
			continue
		}
		if acc, err = acc.Compose(r); err != nil {
			return nil, fmt.Errorf("route %d: %w", i, err)
		}
	}
	if acc == nil {
		acc = router.NewEager(res)
	}
	return acc, nil
}

func (s RouteDef) route() apis.Route {
	opts := []builder.Option{builder.WithMatch(s.Match)}
	if s.Rename != "" {
		opts = append(opts, builder.WithRename(s.Rename, s.Template))
	}
	return builder.NewRoute(opts...)
}
