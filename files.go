// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package relcat

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const (
	// DocumentationExt is the extension of documentation files
	DocumentationExt = ".pdf"
	// FirmwareExt is the extension of firmware images
	FirmwareExt = ".uf2"
)

// FindFiles walks the whole subtree at dir and groups the files it finds by extension
//
// Extensions are matched case-insensitively. Entries whose name begins with a dot are skipped,
// as are subdirectories that cannot be read. Each group keeps the walk's lexical order.
// A symlinked dir is followed, links below it are not.
func FindFiles(fsys afero.Fs, dir string, exts ...string) (map[string][]string, error) {
	found := make(map[string][]string, len(exts))

	// Walk does not descend into a symlinked root, the trailing separator makes it follow the link
	root := dir
	if lst, ok := fsys.(afero.Lstater); ok {
		if fi, _, err := lst.LstatIfPossible(dir); err == nil && fi.Mode()&os.ModeSymlink != 0 {
			root = dir + string(filepath.Separator)
		}
	}

	err := afero.Walk(fsys, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			if p == root {
				return err
			}
			return nil
		}

		if p != root && strings.HasPrefix(info.Name(), ".") {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			return nil
		}

		ext := filepath.Ext(info.Name())
		for _, want := range exts {
			if strings.EqualFold(ext, want) {
				found[want] = append(found[want], p)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// RelativePaths rewrites paths relative to base using forward slashes
func RelativePaths(base string, paths []string) ([]string, error) {
	rel := make([]string, 0, len(paths))
	for _, p := range paths {
		r, err := filepath.Rel(base, p)
		if err != nil {
			return nil, err
		}
		rel = append(rel, filepath.ToSlash(r))
	}
	return rel, nil
}
