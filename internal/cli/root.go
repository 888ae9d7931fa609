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

// Package cli implements the facet command: route over the keys of a YAML
// or JSON document and read or write them through the routed names.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"dirpx.dev/facet/apis"
)

// ErrNoDocument is returned when a command runs without --doc.
var ErrNoDocument = errors.New("no document given (use --doc)")

// app carries flag values and derived state for one command execution.
type app struct {
	v      *viper.Viper
	logger *slog.Logger
}

// NewRootCommand returns the facet command tree. Every call builds an
// independent tree, so tests can run commands side by side.
func NewRootCommand(version string) *cobra.Command {
	a := &app{v: viper.New(), logger: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:   "facet",
		Short: "Route filtered, renamed keys of a YAML or JSON document",
		Long: `facet exposes a filtered and renamed view of a YAML/JSON document.

A routes file selects which mappings of the document are visible and how
their keys are named. Without one, every key of the root not starting with
an underscore is visible as-is.

Examples:
  facet members --doc app.yaml --routes routes.yaml
  facet get server_port --doc app.yaml --routes routes.yaml
  facet set server_port 9090 --doc app.yaml --routes routes.yaml --write`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.logger = newLogger(cmd.ErrOrStderr(), a.v.GetBool("verbose"))
			return nil
		},
	}

	root.PersistentFlags().AddFlagSet(globalFlags())
	_ = a.v.BindPFlags(root.PersistentFlags())
	a.v.SetEnvPrefix("FACET")
	a.v.AutomaticEnv()

	root.AddCommand(
		a.membersCommand(),
		a.getCommand(),
		a.setCommand(),
	)
	return root
}

// Execute runs the command tree and reports errors on stderr.
func Execute(version string) error {
	cmd := NewRootCommand(version)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "facet:", err)
		return err
	}
	return nil
}

func globalFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("global", pflag.ContinueOnError)
	fs.StringP("doc", "d", "", "YAML or JSON(C) document to route over")
	fs.StringP("routes", "r", "", "routes file (YAML or JSON)")
	fs.BoolP("verbose", "v", false, "log resolution details to stderr")
	return fs
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// open loads the document and routes named by the flags and builds the
// router over them.
func (a *app) open() (*Document, apis.Router, error) {
	path := a.v.GetString("doc")
	if path == "" {
		return nil, nil, ErrNoDocument
	}
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, nil, err
	}
	rs, err := LoadRoutes(a.v.GetString("routes"))
	if err != nil {
		return nil, nil, err
	}
	r, err := rs.Build(doc, a.logger)
	if err != nil {
		return nil, nil, err
	}
	a.logger.Debug("router ready", "doc", path, "kind", r.Kind().String(), "members", len(r.Members()))
	return doc, r, nil
}
