// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package relcat

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// writeTree writes every file in files, creating parent directories as needed
func writeTree(t *testing.T, fsys afero.Fs, files map[string]string) {
	t.Helper()

	for p, content := range files {
		require.NoError(t, fsys.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, afero.WriteFile(fsys, p, []byte(content), 0o644))
	}
}

// deniedFs fails to open any file with the given base name
type deniedFs struct {
	afero.Fs
	name string
}

func (d deniedFs) Open(name string) (afero.File, error) {
	if filepath.Base(name) == d.name {
		return nil, &os.PathError{Op: "open", Path: name, Err: errors.New("permission denied")}
	}
	return d.Fs.Open(name)
}

// statDeniedFs fails to stat any path with the given base name
//
// It does not implement afero.Lstater, so walks fall back to Stat
type statDeniedFs struct {
	afero.Fs
	name string
}

func (d statDeniedFs) Stat(name string) (os.FileInfo, error) {
	if filepath.Base(name) == d.name {
		return nil, &os.PathError{Op: "stat", Path: name, Err: errors.New("permission denied")}
	}
	return d.Fs.Stat(name)
}

const turingManifest = `Description: Eurorack style random looping sequencer
Language: C++
Creator: Tom Whitwell
Version: 1.0
Status: Released
`

func turingTree() map[string]string {
	return map[string]string{
		"/site/releases/03_Turing_Machine/info.yaml":          turingManifest,
		"/site/releases/03_Turing_Machine/README.md":          "# Turing Machine\n\nhello world\n",
		"/site/releases/03_Turing_Machine/Turing_Machine.pdf": "%PDF",
		"/site/releases/03_Turing_Machine/docs/Manual.PDF":    "%PDF",
		"/site/releases/03_Turing_Machine/build/turing.uf2":   "UF2",
		"/site/releases/03_Turing_Machine/.git/stale.pdf":     "%PDF",
		"/site/releases/03_Turing_Machine/.hidden.uf2":        "UF2",
		"/site/releases/03_Turing_Machine/src/main.cpp":       "int main() {}",
	}
}
