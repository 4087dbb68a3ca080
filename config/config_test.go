// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package config

import (
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		expected  *Config
		expectErr string
	}{
		{
			name: "valid config",
			content: `schema-version: v0
site-dir: website
releases-dir: releases
output: website/data/releases.json
required-assets:
  - index.html
  - releases.json
`,
			expected: &Config{
				SchemaVersion:  SchemaVersion,
				SiteDir:        "website",
				ReleasesDir:    "releases",
				Output:         "website/data/releases.json",
				RequiredAssets: []string{"index.html", "releases.json"},
			},
		},
		{
			name:     "empty config uses defaults",
			content:  `schema-version: v0`,
			expected: Default(),
		},
		{
			name:      "invalid yaml",
			content:   `invalid: yaml: content`,
			expectErr: "mapping value is not allowed in this context",
		},
		{
			name:      "unsupported schema version",
			content:   `schema-version: v999`,
			expectErr: `unsupported config schema version: expected "v0", got "v999"`,
		},
		{
			name:      "missing schema version",
			content:   `site-dir: website`,
			expectErr: `unsupported config schema version: expected "v0", got ""`,
		},
		{
			name: "invalid structure",
			content: `schema-version: v0
required-assets: "index.html"`,
			expectErr: "failed to parse config file",
		},
		{
			name: "validation error",
			content: `schema-version: v0
required-assets: []`,
			expectErr: "required-assets: Array must have at least 1 items",
		},
		{
			name: "unknown key",
			content: `schema-version: v0
sitedir: website`,
			expectErr: "unknown field \"sitedir\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(strings.NewReader(tt.content))

			if tt.expectErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.expectErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}

	t.Run("reader edge cases", func(t *testing.T) {
		content := "schema-version: v0\nsite-dir: website\n"

		cfg, err := LoadConfig(iotest.OneByteReader(strings.NewReader(content)))
		require.NoError(t, err)
		assert.Equal(t, "website", cfg.SiteDir)

		cfg, err = LoadConfig(iotest.HalfReader(strings.NewReader(content)))
		require.NoError(t, err)
		assert.Equal(t, "website", cfg.SiteDir)

		_, err = LoadConfig(iotest.ErrReader(assert.AnError))
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to read config file")
	})
}

func TestLoadConfigFile(t *testing.T) {
	fsys := afero.NewMemMapFs()

	cfg, err := LoadConfigFile(fsys, DefaultFileName)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	require.NoError(t, afero.WriteFile(fsys, "/repo/relcat.yaml", []byte("schema-version: v0\nsite-dir: website\n"), 0o644))
	cfg, err = LoadConfigFile(fsys, "/repo/relcat.yaml")
	require.NoError(t, err)
	assert.Equal(t, "website", cfg.SiteDir)
	assert.Equal(t, DefaultRequiredAssets(), cfg.RequiredAssets)
}

func TestPaths(t *testing.T) {
	cfg := Default()
	assert.Equal(t, filepath.Join("..", "releases"), cfg.ReleasesPath())
	assert.Equal(t, "releases.json", cfg.OutputPath())

	cfg.SiteDir = "website"
	assert.Equal(t, "releases", cfg.ReleasesPath())
	assert.Equal(t, filepath.Join("website", "releases.json"), cfg.OutputPath())

	cfg.ReleasesDir = "/srv/releases"
	cfg.Output = "/srv/out.json"
	assert.Equal(t, "/srv/releases", cfg.ReleasesPath())
	assert.Equal(t, "/srv/out.json", cfg.OutputPath())
}

func TestSchema(t *testing.T) {
	s := Schema()
	require.NotNil(t, s)
	assert.NoError(t, Validate(Default()))
	assert.Error(t, Validate(&Config{SchemaVersion: "v1"}))
}
