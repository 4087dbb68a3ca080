// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package site

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestLinkDestinations(t *testing.T) {
	body := []byte("# Title\n\n[doc](docs/Manual.pdf) and ![img](img/a.png)\n\n* [web](https://example.com)\n\n`[not](a link)`\n")
	assert.Equal(t, []string{"docs/Manual.pdf", "img/a.png", "https://example.com"}, LinkDestinations(body))
	assert.Empty(t, LinkDestinations(nil))
}

func TestLocalTarget(t *testing.T) {
	tests := []struct {
		dest     string
		expected string
		ok       bool
	}{
		{"docs/Manual.pdf", "docs/Manual.pdf", true},
		{"./a.png", "./a.png", true},
		{"a.pdf#page=2", "a.pdf", true},
		{"My%20File.pdf", "My File.pdf", true},
		{"#usage", "", false},
		{"", "", false},
		{"https://example.com/a.pdf", "", false},
		{"mailto:someone@example.com", "", false},
		{"//cdn.example.com/a.js", "", false},
		{"/index.html", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.dest, func(t *testing.T) {
			target, ok := localTarget(tt.dest)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, target)
		})
	}
}

func TestBrokenLinks(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, map[string]string{
		"/r/01_x/docs/Manual.pdf": "%PDF",
	})

	readme := []byte("[m](docs/Manual.pdf) [gone](gone.pdf) [again](gone.pdf) [web](https://example.com)\n")
	assert.Equal(t, []string{"gone.pdf"}, BrokenLinks(fsys, "/r/01_x", readme))
	assert.Empty(t, BrokenLinks(fsys, "/r/01_x", []byte("no links")))
}
