// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

// Package main provides the entry point for the application.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/defenseunicorns/relcat"
	"github.com/defenseunicorns/relcat/config"
)

func run(root string) error {
	schemas := map[string]any{
		"releases.schema.json": relcat.CatalogSchema(),
		"relcat.schema.json":   config.Schema(),
	}

	for name, schema := range schemas {
		b, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return err
		}

		if err := os.WriteFile(filepath.Join(root, name), b, 0644); err != nil {
			return err
		}
	}

	return nil
}

// main is the entry point for the application
func main() {
	// usage: `go run gen/main.go`
	if err := run(""); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
