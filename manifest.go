// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package relcat

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
)

// ManifestFileName is the optional metadata file at the root of a release directory
const ManifestFileName = "info.yaml"

// Scalar is the textual form of a YAML scalar, whatever its resolved type
//
// Numbers keep their literal spelling ("1.0" stays "1.0"), null and non-scalar values are empty
type Scalar string

// UnmarshalYAML implements yaml.NodeUnmarshaler
func (s *Scalar) UnmarshalYAML(node ast.Node) error {
	*s = Scalar(scalarText(node))
	return nil
}

func scalarText(node ast.Node) string {
	switch n := node.(type) {
	case *ast.TagNode:
		return scalarText(n.Value)
	case *ast.AnchorNode:
		return scalarText(n.Value)
	case *ast.NullNode:
		return ""
	case *ast.StringNode:
		return n.Value
	case *ast.LiteralNode:
		return n.Value.Value
	case *ast.IntegerNode:
		return n.Token.Value
	case *ast.FloatNode:
		return n.Token.Value
	case ast.ScalarNode:
		return cast.ToString(n.GetValue())
	default:
		return ""
	}
}

// Manifest is the best-effort view of a release's info.yaml
//
// Every field is optional, absent keys are empty
type Manifest struct {
	Description string
	Language    string
	Creator     string
	Version     string
	Status      string
}

type manifestDocument struct {
	Description Scalar `yaml:"Description"`
	Language    Scalar `yaml:"Language"`
	Creator     Scalar `yaml:"Creator"`
	Version     Scalar `yaml:"Version"`
	Status      Scalar `yaml:"Status"`
}

// ParseManifest decodes an info.yaml document
func ParseManifest(r io.Reader) (Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read manifest: %w", err)
	}

	var doc manifestDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Manifest{}, fmt.Errorf("failed to parse manifest: %w", err)
	}

	return Manifest{
		Description: string(doc.Description),
		Language:    string(doc.Language),
		Creator:     string(doc.Creator),
		Version:     string(doc.Version),
		Status:      string(doc.Status),
	}, nil
}

// LoadManifest loads the manifest at the root of a release directory
//
// A missing manifest is not a failure, it yields an empty Manifest
func LoadManifest(fsys afero.Fs, dir string) Result[Manifest] {
	p := filepath.Join(dir, ManifestFileName)

	f, err := fsys.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return Ok(Manifest{})
		}
		return Failed[Manifest](err)
	}
	defer f.Close()

	m, err := ParseManifest(f)
	if err != nil {
		return Failed[Manifest](err)
	}
	return Ok(m)
}
