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

	"github.com/spf13/cobra"
)

func (a *app) membersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "members",
		Short: "List the routed names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, r, err := a.open()
			if err != nil {
				return err
			}
			for _, name := range r.Members() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func (a *app) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME...",
		Short: "Print routed values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, r, err := a.open()
			if err != nil {
				return err
			}
			for _, name := range args {
				v, err := r.Get(name)
				if err != nil {
					return err
				}
				s, err := FormatValue(v)
				if err != nil {
					return fmt.Errorf("formatting %q: %w", name, err)
				}
				if len(args) == 1 {
					fmt.Fprintln(cmd.OutOrStdout(), s)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, s)
				}
			}
			return nil
		},
	}
}

func (a *app) setCommand() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "set NAME VALUE",
		Short: "Assign a routed value",
		Long: `Assign VALUE to the routed NAME. VALUE is parsed as YAML, so 8080 is a
number, true a boolean and "8080" a string.

Without --write the updated document is printed; with it the document file
is rewritten in place.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, r, err := a.open()
			if err != nil {
				return err
			}
			v, err := ParseValue(args[1])
			if err != nil {
				return err
			}
			if err := r.Set(args[0], v); err != nil {
				return err
			}
			a.logger.Debug("value set", "name", args[0], "value", v)

			if write {
				return doc.Save()
			}
			out, err := doc.Encode()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the document file instead of printing it")
	return cmd
}
