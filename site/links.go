// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package site

import (
	"net/url"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// LinkDestinations returns the destination of every inline link and image in a markdown document
func LinkDestinations(body []byte) []string {
	root := goldmark.New().Parser().Parse(text.NewReader(body))

	var dests []string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *gmast.Link:
			dests = append(dests, string(node.Destination))
		case *gmast.Image:
			dests = append(dests, string(node.Destination))
		}
		return gmast.WalkContinue, nil
	})

	return dests
}

// localTarget reports the relative file a destination points to, if any
//
// Destinations with a scheme or host, site-absolute paths and pure fragments are not local
func localTarget(dest string) (string, bool) {
	dest = strings.TrimSpace(dest)
	if dest == "" || strings.HasPrefix(dest, "#") {
		return "", false
	}

	u, err := url.Parse(dest)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Path == "" || strings.HasPrefix(u.Path, "/") {
		return "", false
	}

	return u.Path, true
}

// BrokenLinks returns the relative destinations in a README that do not exist under dir
func BrokenLinks(fsys afero.Fs, dir string, readme []byte) []string {
	var broken []string

	for _, dest := range LinkDestinations(readme) {
		target, ok := localTarget(dest)
		if !ok {
			continue
		}

		if _, err := fsys.Stat(filepath.Join(dir, filepath.FromSlash(target))); err != nil {
			if !slices.Contains(broken, dest) {
				broken = append(broken, dest)
			}
		}
	}

	return broken
}
