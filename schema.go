// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package relcat

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/invopop/jsonschema"
	"github.com/xeipuuv/gojsonschema"
)

// JSONSchemaExtend extends the JSON schema for a release
func (Release) JSONSchemaExtend(schema *jsonschema.Schema) {
	describe := func(name, description string) {
		if prop, ok := schema.Properties.Get(name); ok && prop != nil {
			prop.Description = description
		}
	}

	describe("id", "Name of the release directory, unique within the catalog")
	describe("number", "Leading token of the directory name, used for ordering")
	describe("title", "Remainder of the directory name, title cased")
	describe("version", "Version from info.yaml, always text")
	describe("pdf_files", "Documentation files, relative to the site root")
	describe("uf2_files", "Firmware images, relative to the site root")
	describe("readme", "Raw text of README.md")
	describe("has_documentation", "Whether pdf_files is non-empty")
	describe("has_firmware", "Whether uf2_files is non-empty")
}

// CatalogSchema returns the JSON schema for releases.json
func CatalogSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{DoNotReference: true}
	schema := reflector.Reflect(&Catalog{})

	schema.ID = "https://raw.githubusercontent.com/defenseunicorns/relcat/main/releases.schema.json"
	schema.Title = "releases.json"
	schema.Description = "Every release found under the releases directory, ordered by number"

	return schema
}

var schemaOnce = sync.OnceValues(func() (string, error) {
	s := CatalogSchema()
	b, err := json.Marshal(s)
	return string(b), err
})

// ErrInvalidDocument is returned when a releases document is not valid JSON
var ErrInvalidDocument = errors.New("releases document does not parse")

// ValidateDocument checks that data parses and adheres to the releases.json schema
//
// Every schema violation is reported, joined into a single error
func ValidateDocument(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	schema, err := schemaOnce()
	if err != nil {
		return err
	}

	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(schema), gojsonschema.NewGoLoader(doc))
	if err != nil {
		return err
	}

	if result.Valid() {
		return nil
	}

	errs := make([]error, 0, len(result.Errors()))
	for _, err := range result.Errors() {
		errs = append(errs, errors.New(err.String()))
	}

	return errors.Join(errs...)
}
