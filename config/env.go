// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

// CI describes the continuous integration environment a build runs in
//
// It is only used for reporting and never changes what gets built
type CI struct {
	Enabled    bool
	Repository string
	Branch     string
	Commit     string
}

// LookupFunc resolves an environment variable, os.LookupEnv being the canonical implementation
type LookupFunc func(key string) (string, bool)

// CIFromEnv detects a GitHub Actions environment
func CIFromEnv(lookup LookupFunc) CI {
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}

	return CI{
		Enabled:    get("GITHUB_ACTIONS") == "true",
		Repository: get("GITHUB_REPOSITORY"),
		Branch:     get("GITHUB_REF_NAME"),
		Commit:     get("GITHUB_SHA"),
	}
}

// ShortCommit returns the first eight characters of the commit
func (c CI) ShortCommit() string {
	if len(c.Commit) > 8 {
		return c.Commit[:8]
	}
	return c.Commit
}

// EnvLookup returns a LookupFunc over the process environment, falling back to the dotenv file at p
//
// An empty p only consults the process environment
func EnvLookup(fsys afero.Fs, p string) (LookupFunc, error) {
	if p == "" {
		return os.LookupEnv, nil
	}

	f, err := fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open env file: %w", err)
	}
	defer f.Close()

	vars, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse env file %s: %w", p, err)
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}, nil
}
