// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/defenseunicorns/relcat"
	"github.com/defenseunicorns/relcat/config"
	"github.com/defenseunicorns/relcat/site"
)

// NewCheckCmd creates the check command
func NewCheckCmd(s *state) *cobra.Command {
	var loc locationFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Generate the releases document and check the website is ready to deploy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loc.resolve(cmd, s.cfg)

			opts := relcat.Options{
				ReleasesDir: cfg.ReleasesPath(),
				Output:      cfg.OutputPath(),
			}

			report, err := site.Check(cmd.Context(), site.Options{
				Fs:             s.fs,
				SiteDir:        cfg.SiteDir,
				ReleasesDir:    opts.ReleasesDir,
				Output:         opts.Output,
				RequiredAssets: cfg.RequiredAssets,
				Generate: func(ctx context.Context) (relcat.Catalog, error) {
					return relcat.Generate(ctx, s.fs, opts)
				},
				CI: config.CIFromEnv(s.lookup),
			})
			if err != nil {
				return err
			}

			report.Render(cmd.OutOrStdout())

			return report.Err()
		},
	}

	loc.register(cmd)

	return cmd
}
