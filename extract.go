// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package relcat

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// ReadmeFileName is the optional narrative document at the root of a release directory
const ReadmeFileName = "README.md"

// ReadReadme reads the README at the root of a release directory as raw text
//
// A missing README is not a failure, it yields empty text
func ReadReadme(fsys afero.Fs, dir string) Result[string] {
	f, err := fsys.Open(filepath.Join(dir, ReadmeFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return Ok("")
		}
		return Failed[string](err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return Failed[string](err)
	}
	return Ok(string(b))
}

// Extract builds the Release for a single release directory
//
// A missing or broken manifest or README is logged and degrades to empty values.
// An error is only returned when the directory itself cannot be walked.
// File paths are relative to the parent of the releases root, dir is made absolute first
// so that roots such as "." resolve the same as any other spelling.
func Extract(ctx context.Context, fsys afero.Fs, dir string) (Release, error) {
	logger := log.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return Release{}, err
	}

	dir, err := filepath.Abs(dir)
	if err != nil {
		return Release{}, err
	}

	name := filepath.Base(dir)

	manifest, err := LoadManifest(fsys, dir).Unwrap()
	if err != nil {
		logger.Warn("could not parse manifest", "path", filepath.Join(dir, ManifestFileName), "err", err)
		manifest = Manifest{}
	}

	found, err := FindFiles(fsys, dir, DocumentationExt, FirmwareExt)
	if err != nil {
		return Release{}, fmt.Errorf("failed to search %s: %w", dir, err)
	}

	// paths are served relative to the directory above the releases root
	base := filepath.Dir(filepath.Dir(dir))

	pdfs, err := RelativePaths(base, found[DocumentationExt])
	if err != nil {
		return Release{}, err
	}
	uf2s, err := RelativePaths(base, found[FirmwareExt])
	if err != nil {
		return Release{}, err
	}

	readme := ReadReadme(fsys, dir)
	if err := readme.Err(); err != nil {
		logger.Warn("could not read README", "path", filepath.Join(dir, ReadmeFileName), "err", err)
	}

	logger.Debug("extracted", "release", name, "pdf", len(pdfs), "uf2", len(uf2s))

	return NewRelease(name, manifest, pdfs, uf2s, readme.Or("")), nil
}
