// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/defenseunicorns/relcat"
)

// NewListCmd creates the list command
func NewListCmd(s *state) *cobra.Command {
	var (
		loc    locationFlags
		filter string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the summary of the releases in the releases document",
		Example: `
relcat list --filter 'language == "C++"'

relcat list --filter 'has_documentation && !has_firmware'
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loc.resolve(cmd, s.cfg)

			catalog, err := relcat.ReadCatalog(s.fs, cfg.OutputPath())
			if err != nil {
				return err
			}

			matched, err := relcat.Filter(filter).Apply(catalog)
			if err != nil {
				return fmt.Errorf("invalid filter %q: %w", filter, err)
			}

			relcat.PrintSummary(cmd.OutOrStdout(), matched)
			return nil
		},
	}

	loc.registerDocument(cmd)
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Only list releases matching this expression")

	return cmd
}
