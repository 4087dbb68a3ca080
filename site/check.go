// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

// Package site checks that a generated website is ready to be deployed
package site

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/afero"

	"github.com/defenseunicorns/relcat"
	"github.com/defenseunicorns/relcat/config"
)

// Generator produces the releases document, typically a closure over relcat.Generate
type Generator func(ctx context.Context) (relcat.Catalog, error)

// Options configures a readiness check
type Options struct {
	Fs             afero.Fs
	SiteDir        string
	ReleasesDir    string
	Output         string
	RequiredAssets []string
	Generate       Generator
	CI             config.CI
}

// entry is the loosely typed view of one release in the releases document
type entry struct {
	ID               string `mapstructure:"id"`
	Readme           string `mapstructure:"readme"`
	HasDocumentation bool   `mapstructure:"has_documentation"`
	HasFirmware      bool   `mapstructure:"has_firmware"`
}

// Check runs the generator, then verifies the site assets and the generated document
//
// Readiness problems are collected in the Report, the returned error is reserved for
// invalid options
func Check(ctx context.Context, opts Options) (*Report, error) {
	if opts.Generate == nil {
		return nil, errors.New("no generator provided")
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if len(opts.RequiredAssets) == 0 {
		opts.RequiredAssets = config.DefaultRequiredAssets()
	}
	if opts.Output == "" {
		opts.Output = filepath.Join(opts.SiteDir, relcat.DefaultOutputFileName)
	}

	logger := log.FromContext(ctx)

	report := &Report{
		SiteDir: opts.SiteDir,
		CI:      opts.CI,
	}

	logger.Debug("generating releases data")
	if _, err := opts.Generate(ctx); err != nil {
		report.GenerateErr = err
		return report, nil
	}

	for _, name := range opts.RequiredAssets {
		if _, err := opts.Fs.Stat(filepath.Join(opts.SiteDir, name)); err != nil {
			if !os.IsNotExist(err) {
				logger.Debug("stat failed", "asset", name, "err", err)
			}
			report.Missing = append(report.Missing, name)
			continue
		}
		report.Present = append(report.Present, name)
	}

	entries, problems := validateOutput(opts.Fs, opts.Output)
	report.Problems = append(report.Problems, problems...)

	for i, raw := range entries {
		var e entry
		if err := mapstructure.WeakDecode(raw, &e); err != nil {
			report.Warnings = append(report.Warnings, fmt.Sprintf("release #%d: %v", i, err))
			continue
		}

		report.Total++
		if e.HasDocumentation {
			report.Documented++
		}
		if e.HasFirmware {
			report.Firmware++
		}

		if opts.ReleasesDir == "" || e.ID == "" || e.Readme == "" {
			continue
		}
		for _, dest := range BrokenLinks(opts.Fs, filepath.Join(opts.ReleasesDir, e.ID), []byte(e.Readme)) {
			report.Warnings = append(report.Warnings, fmt.Sprintf("%s: README links to missing file %q", e.ID, dest))
		}
	}

	report.OK = report.GenerateErr == nil && len(report.Missing) == 0 && len(report.Problems) == 0

	return report, nil
}

// validateOutput parses the releases document and validates it against its schema
//
// The parsed entries are returned whenever the document is a list, even if it violates the schema
func validateOutput(fsys afero.Fs, p string) ([]any, []string) {
	name := filepath.Base(p)

	data, err := afero.ReadFile(fsys, p)
	if err != nil {
		return nil, []string{fmt.Sprintf("failed to read %s: %v", name, err)}
	}

	verr := relcat.ValidateDocument(data)
	if errors.Is(verr, relcat.ErrInvalidDocument) {
		return nil, []string{fmt.Sprintf("%s: %v", name, verr)}
	}

	var doc any
	_ = json.Unmarshal(data, &doc)
	entries, _ := doc.([]any)

	if verr == nil {
		return entries, nil
	}

	var problems []string
	if joined, ok := verr.(interface{ Unwrap() []error }); ok {
		for _, err := range joined.Unwrap() {
			problems = append(problems, fmt.Sprintf("%s: %v", name, err))
		}
	} else {
		problems = append(problems, fmt.Sprintf("%s: %v", name, verr))
	}
	return entries, problems
}
