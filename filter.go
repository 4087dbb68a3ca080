// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package relcat

import (
	"github.com/expr-lang/expr"
)

// Filter selects releases using an expr boolean expression over their fields
//
// Fields are addressed by their releases.json names, e.g. `has_firmware && status == "Released"`
type Filter string

// String implements fmt.Stringer
func (f Filter) String() string {
	return string(f)
}

func (r Release) env() map[string]any {
	return map[string]any{
		"id":                r.ID,
		"number":            r.Number,
		"title":             r.Title,
		"description":       r.Description,
		"language":          r.Language,
		"creator":           r.Creator,
		"version":           r.Version,
		"status":            r.Status,
		"pdf_files":         r.PDFFiles,
		"uf2_files":         r.UF2Files,
		"readme":            r.Readme,
		"has_documentation": r.HasDocumentation,
		"has_firmware":      r.HasFirmware,
	}
}

// Apply returns the releases matching the filter, in catalog order
//
// An empty filter matches everything
func (f Filter) Apply(catalog Catalog) (Catalog, error) {
	if f == "" {
		return catalog, nil
	}

	program, err := expr.Compile(f.String(), expr.AsBool(), expr.Env(NewRelease("", Manifest{}, nil, nil, "").env()))
	if err != nil {
		return nil, err
	}

	matched := make(Catalog, 0, len(catalog))
	for _, r := range catalog {
		out, err := expr.Run(program, r.env())
		if err != nil {
			return nil, err
		}
		if out.(bool) { // this is safe due to expr.AsBool()
			matched = append(matched, r)
		}
	}

	return matched, nil
}
