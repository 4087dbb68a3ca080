// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/defenseunicorns/relcat"
	"github.com/defenseunicorns/relcat/config"
)

// locationFlags are the path overrides shared by the sub-commands
type locationFlags struct {
	site     string
	releases string
	output   string
}

func (f *locationFlags) register(cmd *cobra.Command) {
	f.registerDocument(cmd)
	cmd.Flags().StringVar(&f.releases, "releases", "", "Releases directory (default ../releases from the website directory)")
	_ = cmd.MarkFlagDirname("releases")
}

// registerDocument only registers the flags locating the releases document
func (f *locationFlags) registerDocument(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.site, "site", "", "Website directory (default from config, else the working directory)")
	_ = cmd.MarkFlagDirname("site")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Releases document (default releases.json in the website directory)")
	_ = cmd.MarkFlagFilename("output", "json")
}

// resolve applies the flags over the loaded config, flags win
func (f *locationFlags) resolve(cmd *cobra.Command, cfg *config.Config) config.Config {
	resolved := *cfg
	if cmd.Flags().Changed("site") {
		resolved.SiteDir = f.site
	}
	if cmd.Flags().Changed("releases") {
		resolved.ReleasesDir = f.releases
	}
	if cmd.Flags().Changed("output") {
		resolved.Output = f.output
	}
	return resolved
}

// NewGenerateCmd creates the generate command
func NewGenerateCmd(s *state) *cobra.Command {
	var loc locationFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Scan the releases directory and write the releases document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loc.resolve(cmd, s.cfg)

			catalog, err := relcat.Generate(cmd.Context(), s.fs, relcat.Options{
				ReleasesDir: cfg.ReleasesPath(),
				Output:      cfg.OutputPath(),
			})
			if err != nil {
				return err
			}

			relcat.PrintSummary(cmd.OutOrStdout(), catalog)
			return nil
		},
	}

	loc.register(cmd)

	return cmd
}
