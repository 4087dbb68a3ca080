// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package relcat

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	var buf strings.Builder
	ctx := log.WithContext(t.Context(), log.New(&buf))

	t.Run("full release", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		writeTree(t, fsys, turingTree())

		r, err := Extract(ctx, fsys, "/site/releases/03_Turing_Machine")
		require.NoError(t, err)

		assert.Equal(t, Release{
			ID:          "03_Turing_Machine",
			Number:      "03",
			Title:       "Turing Machine",
			Description: "Eurorack style random looping sequencer",
			Language:    "C++",
			Creator:     "Tom Whitwell",
			Version:     "1.0",
			Status:      "Released",
			PDFFiles: []string{
				"releases/03_Turing_Machine/Turing_Machine.pdf",
				"releases/03_Turing_Machine/docs/Manual.PDF",
			},
			UF2Files: []string{
				"releases/03_Turing_Machine/build/turing.uf2",
			},
			Readme:           "# Turing Machine\n\nhello world\n",
			HasDocumentation: true,
			HasFirmware:      true,
		}, r)
	})

	t.Run("bare directory", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, fsys.MkdirAll("/site/releases/utilities", 0o755))

		r, err := Extract(ctx, fsys, "/site/releases/utilities")
		require.NoError(t, err)

		assert.Equal(t, Release{
			ID:       "utilities",
			Number:   "utilities",
			Title:    "utilities",
			PDFFiles: []string{},
			UF2Files: []string{},
		}, r)
	})

	t.Run("corrupt manifest degrades", func(t *testing.T) {
		buf.Reset()
		fsys := afero.NewMemMapFs()
		writeTree(t, fsys, map[string]string{
			"/site/releases/05_chord_blimey/info.yaml":       "Description: [unclosed\n",
			"/site/releases/05_chord_blimey/README.md":       "chords",
			"/site/releases/05_chord_blimey/chord.uf2":       "UF2",
			"/site/releases/05_chord_blimey/docs/manual.pdf": "%PDF",
		})

		r, err := Extract(ctx, fsys, "/site/releases/05_chord_blimey")
		require.NoError(t, err)

		assert.Empty(t, r.Description)
		assert.Empty(t, r.Language)
		assert.Empty(t, r.Creator)
		assert.Empty(t, r.Version)
		assert.Empty(t, r.Status)
		assert.Equal(t, "Chord Blimey", r.Title)
		assert.Equal(t, "chords", r.Readme)
		assert.True(t, r.HasFirmware)
		assert.True(t, r.HasDocumentation)
		assert.Contains(t, buf.String(), "could not parse manifest")
		assert.Contains(t, buf.String(), "/site/releases/05_chord_blimey/info.yaml")
	})

	t.Run("unreadable README degrades", func(t *testing.T) {
		buf.Reset()
		mem := afero.NewMemMapFs()
		writeTree(t, mem, turingTree())
		fsys := deniedFs{Fs: mem, name: ReadmeFileName}

		r, err := Extract(ctx, fsys, "/site/releases/03_Turing_Machine")
		require.NoError(t, err)

		assert.Empty(t, r.Readme)
		assert.Equal(t, "Released", r.Status)
		assert.Contains(t, buf.String(), "could not read README")
	})

	t.Run("unreadable manifest degrades", func(t *testing.T) {
		buf.Reset()
		mem := afero.NewMemMapFs()
		writeTree(t, mem, turingTree())
		fsys := deniedFs{Fs: mem, name: ManifestFileName}

		r, err := Extract(ctx, fsys, "/site/releases/03_Turing_Machine")
		require.NoError(t, err)

		assert.Empty(t, r.Status)
		assert.NotEmpty(t, r.Readme)
		assert.Contains(t, buf.String(), "permission denied")
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := Extract(ctx, afero.NewMemMapFs(), "/site/releases/nope")
		require.ErrorContains(t, err, "failed to search /site/releases/nope")
	})

	t.Run("cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := Extract(cctx, afero.NewMemMapFs(), "/site/releases/nope")
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestReadReadme(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeTree(t, fsys, map[string]string{
		"/r/a/README.md": "Größe <b>ü</b>",
	})
	require.NoError(t, fsys.MkdirAll("/r/b", 0o755))

	text, err := ReadReadme(fsys, "/r/a").Unwrap()
	require.NoError(t, err)
	assert.Equal(t, "Größe <b>ü</b>", text)

	text, err = ReadReadme(fsys, "/r/b").Unwrap()
	require.NoError(t, err)
	assert.Empty(t, text)
}
