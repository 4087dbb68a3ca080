// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package relcat

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"
	"github.com/muesli/termenv"
)

var (
	presentStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#587539", // tokyonight-day green
		Dark:  "#9ece6a", // tokyonight green
	})
	absentStyle = lipgloss.NewStyle().Faint(true)
)

func presence(ok bool, label string) string {
	if termenv.EnvNoColor() {
		if ok {
			return label
		}
		return "----"
	}
	if ok {
		return presentStyle.Render(label)
	}
	return absentStyle.Render("----")
}

// SummaryLine renders the one-line summary of a release
//
//	 3: Turing Machine                 DOCS UF2  - Released
func SummaryLine(r Release) string {
	return fmt.Sprintf("%2s: %-30s %s %s - %s", r.Number, r.Title, presence(r.HasDocumentation, "DOCS"), presence(r.HasFirmware, "UF2 "), r.Status)
}

// PrintSummary writes the summary line of every release in the catalog
func PrintSummary(w io.Writer, catalog Catalog) {
	for _, r := range catalog {
		fmt.Fprintf(w, "  %s\n", SummaryLine(r))
	}
}

type releaseDetails struct {
	ID          string   `yaml:"id"`
	Number      string   `yaml:"number"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description,omitempty"`
	Language    string   `yaml:"language,omitempty"`
	Creator     string   `yaml:"creator,omitempty"`
	Version     string   `yaml:"version,omitempty"`
	Status      string   `yaml:"status,omitempty"`
	PDFFiles    []string `yaml:"pdf_files,omitempty"`
	UF2Files    []string `yaml:"uf2_files,omitempty"`
}

// RenderRelease writes a release's metadata as YAML followed by its README rendered as terminal markdown
//
// Styling is skipped when NO_COLOR is set
func RenderRelease(w io.Writer, r Release) error {
	b, err := yaml.MarshalWithOptions(releaseDetails{
		ID:          r.ID,
		Number:      r.Number,
		Title:       r.Title,
		Description: r.Description,
		Language:    r.Language,
		Creator:     r.Creator,
		Version:     r.Version,
		Status:      r.Status,
		PDFFiles:    r.PDFFiles,
		UF2Files:    r.UF2Files,
	}, yaml.Indent(2), yaml.IndentSequence(true))
	if err != nil {
		return err
	}

	noColor := termenv.EnvNoColor()

	if noColor {
		fmt.Fprintln(w, strings.TrimSpace(string(b)))
	} else {
		style := "tokyonight-day"
		if lipgloss.HasDarkBackground() {
			style = "tokyonight-moon"
		}
		var buf strings.Builder
		if err := quick.Highlight(&buf, string(b), "yaml", "terminal256", style); err != nil {
			buf.Reset()
			buf.Write(b)
		}
		fmt.Fprintln(w, strings.TrimSpace(buf.String()))
	}

	if strings.TrimSpace(r.Readme) == "" {
		return nil
	}

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(80)}
	if noColor {
		opts = append(opts, glamour.WithStandardStyle("notty"))
	} else {
		opts = append(opts, glamour.WithAutoStyle())
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return err
	}

	md, err := renderer.Render(r.Readme)
	if err != nil {
		return fmt.Errorf("failed to render README for %s: %w", r.ID, err)
	}

	_, err = fmt.Fprint(w, md)
	return err
}
