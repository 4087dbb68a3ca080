// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/defenseunicorns/relcat"
	"github.com/defenseunicorns/relcat/config"
)

// NewSchemaCmd creates the schema command
func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "schema [releases|config]",
		Short:     "Print the JSON schema of the releases document or of the config file",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"releases", "config"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var schema *jsonschema.Schema
			if len(args) == 1 && args[0] == "config" {
				schema = config.Schema()
			} else {
				schema = relcat.CatalogSchema()
			}

			b, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		},
	}
}
