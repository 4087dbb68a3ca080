// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package relcat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// DefaultOutputFileName is the name of the document consumed by the website
const DefaultOutputFileName = "releases.json"

// ErrReleasesNotFound is returned when the releases root does not exist
var ErrReleasesNotFound = errors.New("releases directory not found")

// Catalog is the ordered list of every release found in one build
type Catalog []Release

// Sort orders releases by their number as an integer, non-numeric numbers last
//
// The sort is stable, releases that compare equal keep their discovery order
func (c Catalog) Sort() {
	slices.SortStableFunc(c, func(a, b Release) int {
		an, aok := numericKey(a.Number)
		bn, bok := numericKey(b.Number)
		switch {
		case aok && bok:
			return an.Cmp(bn)
		case aok:
			return -1
		case bok:
			return 1
		default:
			return 0
		}
	})
}

// numericKey parses number as an integer of any size
func numericKey(number string) (*big.Int, bool) {
	return new(big.Int).SetString(strings.TrimSpace(number), 10)
}

// Find returns the release with the given id
func (c Catalog) Find(id string) (Release, bool) {
	idx := slices.IndexFunc(c, func(r Release) bool { return r.ID == id })
	if idx < 0 {
		return Release{}, false
	}
	return c[idx], true
}

// IDs returns the id of every release in catalog order
func (c Catalog) IDs() []string {
	ids := make([]string, 0, len(c))
	for _, r := range c {
		ids = append(ids, r.ID)
	}
	return ids
}

// Build scans every release directory under root and returns the sorted catalog
//
// Only a missing root is fatal, a release that fails to extract is logged and skipped
func Build(ctx context.Context, fsys afero.Fs, root string) (Catalog, error) {
	logger := log.FromContext(ctx)

	fi, err := fsys.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrReleasesNotFound, root)
		}
		return nil, err
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrReleasesNotFound, root)
	}

	logger.Info("scanning releases", "dir", root)

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	entries, err := afero.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", root, err)
	}

	catalog := make(Catalog, 0, len(entries))

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		dir := filepath.Join(abs, name)

		isDir := entry.IsDir()
		if entry.Mode()&os.ModeSymlink != 0 {
			target, err := fsys.Stat(dir)
			isDir = err == nil && target.IsDir()
		}
		if !isDir {
			continue
		}

		logger.Debug("processing", "release", name)

		release, err := Extract(ctx, fsys, dir)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			logger.Error("failed to process release", "release", name, "err", err)
			continue
		}

		catalog = append(catalog, release)
	}

	catalog.Sort()

	return catalog, nil
}

// Encode writes the catalog as indented JSON, leaving non-ASCII and HTML characters as-is
func Encode(w io.Writer, catalog Catalog) error {
	if catalog == nil {
		catalog = Catalog{}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	return enc.Encode(catalog)
}

// WriteCatalog fully replaces the document at p with the encoded catalog
//
// Missing parent directories are created, the document is written to a sibling temp file
// first and renamed into place
func WriteCatalog(fsys afero.Fs, p string, catalog Catalog) error {
	var buf bytes.Buffer
	if err := Encode(&buf, catalog); err != nil {
		return err
	}

	if err := fsys.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("failed to write %s: %w", p, err)
	}

	tmp, err := afero.TempFile(fsys, filepath.Dir(p), "."+filepath.Base(p)+"-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	cleanup := func(err error) error {
		_ = tmp.Close()
		_ = fsys.Remove(tmpName)
		return err
	}

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		return cleanup(err)
	}
	if err := tmp.Close(); err != nil {
		return cleanup(err)
	}
	if err := fsys.Chmod(tmpName, 0o644); err != nil {
		return cleanup(err)
	}

	if err := fsys.Rename(tmpName, p); err != nil {
		_ = fsys.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", p, err)
	}
	return nil
}

// ReadCatalog reads a previously written releases document
func ReadCatalog(fsys afero.Fs, p string) (Catalog, error) {
	b, err := afero.ReadFile(fsys, p)
	if err != nil {
		return nil, err
	}

	var catalog Catalog
	if err := json.Unmarshal(b, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", p, err)
	}
	return catalog, nil
}

// Options controls a generate run
type Options struct {
	// ReleasesDir is the directory containing one subdirectory per release
	ReleasesDir string
	// Output is the path of the releases document to write
	Output string
}

// Generate builds the catalog from opts.ReleasesDir and writes it to opts.Output
func Generate(ctx context.Context, fsys afero.Fs, opts Options) (Catalog, error) {
	logger := log.FromContext(ctx)

	catalog, err := Build(ctx, fsys, opts.ReleasesDir)
	if err != nil {
		return nil, err
	}

	if err := WriteCatalog(fsys, opts.Output, catalog); err != nil {
		return nil, err
	}

	logger.Info("generated releases data", "count", len(catalog), "output", opts.Output)

	return catalog, nil
}
