// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/defenseunicorns/relcat"
	"github.com/defenseunicorns/relcat/config"
)

// NewShowCmd creates the show command
func NewShowCmd(s *state) *cobra.Command {
	var loc locationFlags

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Print a release's metadata and README",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			// PersistentPreRun is not run during completions
			loaded := s.cfg
			if loaded == nil {
				var err error
				loaded, err = config.LoadConfigFile(s.fs, config.DefaultFileName)
				if err != nil {
					return nil, cobra.ShellCompDirectiveError
				}
			}
			cfg := loc.resolve(cmd, loaded)
			catalog, err := relcat.ReadCatalog(s.fs, cfg.OutputPath())
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			return catalog.IDs(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loc.resolve(cmd, s.cfg)

			catalog, err := relcat.ReadCatalog(s.fs, cfg.OutputPath())
			if err != nil {
				return err
			}

			release, ok := catalog.Find(args[0])
			if !ok {
				return fmt.Errorf("release %q not found, available: %s", args[0], strings.Join(catalog.IDs(), ", "))
			}

			return relcat.RenderRelease(cmd.OutOrStdout(), release)
		},
	}

	loc.registerDocument(cmd)

	return cmd
}
