// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package site

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/defenseunicorns/relcat/config"
)

// Report is the outcome of a readiness check
type Report struct {
	// OK is true only if every stage succeeded
	OK bool

	GenerateErr error
	Present     []string
	Missing     []string
	// Problems are parse and schema failures of the releases document
	Problems []string
	// Warnings never affect OK
	Warnings []string

	Documented int
	Firmware   int
	Total      int

	SiteDir string
	CI      config.CI
}

// Err returns every problem that made the check fail, nil if it passed
func (r *Report) Err() error {
	if r.OK {
		return nil
	}

	var errs []error
	if r.GenerateErr != nil {
		errs = append(errs, fmt.Errorf("error generating data: %w", r.GenerateErr))
	}
	if len(r.Missing) > 0 {
		errs = append(errs, fmt.Errorf("missing files: %s", strings.Join(r.Missing, ", ")))
	}
	for _, p := range r.Problems {
		errs = append(errs, errors.New(p))
	}
	if len(errs) == 0 {
		errs = append(errs, errors.New("site is not ready"))
	}
	return errors.Join(errs...)
}

var (
	green = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#587539", // tokyonight-day green
		Dark:  "#9ece6a", // tokyonight green
	})
	red = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#f52a65", // tokyonight-day red
		Dark:  "#f7768e", // tokyonight red
	})
	amber = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#8c6c3e", // tokyonight-day amber/yellow
		Dark:  "#e0af68", // tokyonight amber/yellow
	})
	bold = lipgloss.NewStyle().Bold(true)
)

func render(style lipgloss.Style, s string) string {
	if termenv.EnvNoColor() {
		return s
	}
	return style.Render(s)
}

// Render writes the human readable report
func (r *Report) Render(w io.Writer) {
	pass := render(green, "✔")
	fail := render(red, "✘")
	warn := render(amber, "!")

	heading := "Building website"
	if r.CI.Enabled {
		heading = "Building website for GitHub Actions"
	}
	fmt.Fprintln(w, render(bold, heading))
	fmt.Fprintln(w, strings.Repeat("=", len(heading)))

	if r.GenerateErr != nil {
		fmt.Fprintf(w, "%s error generating data: %v\n", fail, r.GenerateErr)
		return
	}
	fmt.Fprintf(w, "%s releases data generated\n", pass)

	fmt.Fprintln(w, "Checking required files:")
	for _, name := range r.Present {
		fmt.Fprintf(w, "  %s %s\n", pass, name)
	}
	for _, name := range r.Missing {
		fmt.Fprintf(w, "  %s %s\n", fail, name)
	}
	if len(r.Missing) > 0 {
		fmt.Fprintf(w, "%s missing files: %s\n", fail, strings.Join(r.Missing, ", "))
	}

	fmt.Fprintln(w, "Validating releases data:")
	for _, p := range r.Problems {
		fmt.Fprintf(w, "  %s %s\n", fail, p)
	}
	if len(r.Problems) == 0 {
		fmt.Fprintf(w, "  %s found %d releases in data file\n", pass, r.Total)
	}

	for _, wn := range r.Warnings {
		fmt.Fprintf(w, "  %s %s\n", warn, wn)
	}

	fmt.Fprintln(w, "Release summary:")
	fmt.Fprintf(w, "  releases with documentation: %d\n", r.Documented)
	fmt.Fprintf(w, "  releases with firmware:      %d\n", r.Firmware)
	fmt.Fprintf(w, "  total releases:              %d\n", r.Total)
	fmt.Fprintln(w)

	if !r.OK {
		fmt.Fprintf(w, "%s build failed\n", fail)
		return
	}

	fmt.Fprintf(w, "%s build completed successfully\n", pass)
	fmt.Fprintln(w)

	if r.CI.Enabled {
		fmt.Fprintln(w, "Website will be deployed to GitHub Pages")
		fmt.Fprintf(w, "  repository: %s\n", orUnknown(r.CI.Repository))
		fmt.Fprintf(w, "  branch:     %s\n", orUnknown(r.CI.Branch))
		fmt.Fprintf(w, "  commit:     %s\n", orUnknown(r.CI.ShortCommit()))
		return
	}

	fmt.Fprintln(w, "Website files are ready in:")
	fmt.Fprintf(w, "  %s\n", r.SiteDir)
	fmt.Fprintln(w, "To deploy, upload every file in that directory to a static web server,")
	fmt.Fprintln(w, "keeping the releases directory reachable next to it.")
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
