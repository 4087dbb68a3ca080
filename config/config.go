// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

// Package config provides the project-level configuration for relcat
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/invopop/jsonschema"
	"github.com/spf13/afero"
	"github.com/xeipuuv/gojsonschema"
)

// DefaultFileName is the default file name for the config file
const DefaultFileName = "relcat.yaml"

// SchemaVersion is the current schema version for configs
const SchemaVersion = "v0"

// DefaultRequiredAssets are the files a site directory must contain to be deployable
func DefaultRequiredAssets() []string {
	return []string{
		"index.html",
		"release.html",
		"style.css",
		"script.js",
		"releases.json",
	}
}

// Config is the project configuration file for relcat
//
// Relative paths are resolved against the working directory
type Config struct {
	SchemaVersion  string   `json:"schema-version"`
	SiteDir        string   `json:"site-dir,omitempty"`
	ReleasesDir    string   `json:"releases-dir,omitempty"`
	Output         string   `json:"output,omitempty"`
	RequiredAssets []string `json:"required-assets"`
}

// JSONSchemaExtend extends the JSON schema for a config
func (Config) JSONSchemaExtend(schema *jsonschema.Schema) {
	if schemaVersion, ok := schema.Properties.Get("schema-version"); ok && schemaVersion != nil {
		schemaVersion.Description = "Config schema version"
		schemaVersion.Enum = []any{SchemaVersion}
	}
	if siteDir, ok := schema.Properties.Get("site-dir"); ok && siteDir != nil {
		siteDir.Description = "Directory holding the website assets, defaults to the working directory"
	}
	if releasesDir, ok := schema.Properties.Get("releases-dir"); ok && releasesDir != nil {
		releasesDir.Description = "Directory with one subdirectory per release, defaults to ../releases from site-dir"
	}
	if output, ok := schema.Properties.Get("output"); ok && output != nil {
		output.Description = "Path of the generated releases document, defaults to releases.json in site-dir"
	}
	if assets, ok := schema.Properties.Get("required-assets"); ok && assets != nil {
		assets.Description = "Files that must exist directly under site-dir"
		assets.MinItems = ptr(uint64(1))
	}
	schema.Required = slices.DeleteFunc(schema.Required, func(name string) bool {
		return name == "required-assets"
	})
}

func ptr[T any](v T) *T {
	return &v
}

// Default returns a valid config with every default applied
func Default() *Config {
	return &Config{
		SchemaVersion:  SchemaVersion,
		SiteDir:        ".",
		RequiredAssets: DefaultRequiredAssets(),
	}
}

// ReleasesPath returns the releases directory, defaulting to a "releases" sibling of the site directory
func (c *Config) ReleasesPath() string {
	if c.ReleasesDir != "" {
		return c.ReleasesDir
	}
	return filepath.Join(c.SiteDir, "..", "releases")
}

// OutputPath returns the path of the releases document, defaulting to releases.json in the site directory
func (c *Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	return filepath.Join(c.SiteDir, "releases.json")
}

// LoadConfig reads and validates a config
//
// Fields absent from the document keep their defaults
func LoadConfig(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var versioned struct {
		SchemaVersion string `json:"schema-version"`
	}
	if err := yaml.Unmarshal(data, &versioned); err != nil {
		return nil, err
	}

	switch version := versioned.SchemaVersion; version {
	case SchemaVersion:
		cfg := Default()
		if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		if cfg.SiteDir == "" {
			cfg.SiteDir = "."
		}
		return cfg, Validate(cfg)
	default:
		return nil, fmt.Errorf("unsupported config schema version: expected %q, got %q", SchemaVersion, version)
	}
}

// LoadConfigFile loads the config at p
//
// If the file does not exist, this function returns the default config
func LoadConfigFile(fsys afero.Fs, p string) (*Config, error) {
	f, err := fsys.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	return LoadConfig(f)
}

// Since every validation operation leverages the same schema, only calculate it once
var schemaOnce = sync.OnceValues(func() (string, error) {
	s := Schema()
	b, err := json.Marshal(s)
	return string(b), err
})

// Validate checks if a config adheres to the JSON schema
func Validate(config *Config) error {
	schema, err := schemaOnce()
	if err != nil {
		return err
	}

	schemaLoader := gojsonschema.NewStringLoader(schema)

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(config))
	if err != nil {
		return err
	}

	if result.Valid() {
		return nil
	}

	var resErr error
	for _, err := range result.Errors() {
		resErr = errors.Join(resErr, errors.New(err.String()))
	}

	return resErr
}

// Schema returns the JSON schema for the Config type
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{DoNotReference: true}
	return reflector.Reflect(&Config{})
}
