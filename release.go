// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

// Package relcat scans a directory of release folders and aggregates their metadata into the
// releases.json document rendered by the website
package relcat

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NameSeparator splits a release directory name into its number and title
const NameSeparator = "_"

// Release describes a single release directory
//
// Field order is the serialization order of releases.json
type Release struct {
	ID               string   `json:"id"`
	Number           string   `json:"number"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Language         string   `json:"language"`
	Creator          string   `json:"creator"`
	Version          string   `json:"version"`
	Status           string   `json:"status"`
	PDFFiles         []string `json:"pdf_files"`
	UF2Files         []string `json:"uf2_files"`
	Readme           string   `json:"readme"`
	HasDocumentation bool     `json:"has_documentation"`
	HasFirmware      bool     `json:"has_firmware"`
}

// NewRelease assembles a release, deriving every computed field
//
// nil file lists are normalized to empty lists so they serialize as []
func NewRelease(name string, m Manifest, pdfs, uf2s []string, readme string) Release {
	if pdfs == nil {
		pdfs = []string{}
	}
	if uf2s == nil {
		uf2s = []string{}
	}

	number, title := SplitName(name)

	return Release{
		ID:               name,
		Number:           number,
		Title:            title,
		Description:      m.Description,
		Language:         m.Language,
		Creator:          m.Creator,
		Version:          m.Version,
		Status:           m.Status,
		PDFFiles:         pdfs,
		UF2Files:         uf2s,
		Readme:           readme,
		HasDocumentation: len(pdfs) > 0,
		HasFirmware:      len(uf2s) > 0,
	}
}

// SplitName decomposes a release directory name into its number and title
//
// "03_turing_machine" becomes ("03", "Turing Machine"), a name without a separator is both
func SplitName(name string) (number, title string) {
	number, rest, ok := strings.Cut(name, NameSeparator)
	if !ok {
		return name, name
	}

	rest = strings.ReplaceAll(rest, NameSeparator, " ")

	return number, cases.Title(language.Und).String(rest)
}
