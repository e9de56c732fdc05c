package finder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charliek/logfinder/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var appFile = domain.LogFile{Name: "app.log", Path: "app.log"}

func TestWriter_WritesArtifact(t *testing.T) {
	dir := t.TempDir()
	console, out := newTestConsole()
	w := NewWriter(testConfig(dir), console)

	name, err := w.Write(domain.MatchSet{
		File:      appFile,
		Criterion: domain.Include("error"),
		Lines:     []string{"ERROR fail 5\n", "error again 6\r\n"},
	})
	require.NoError(t, err)

	assert.Equal(t, "i-error-app.txt", name)
	assert.Equal(t, "ERROR fail 5\nerror again 6\r\n", readFile(t, dir, name))
	assert.Contains(t, out.String(), "File i-error-app.txt saved with 2 matches.")
}

func TestWriter_EmptyMatchSet(t *testing.T) {
	tests := []struct {
		name      string
		criterion domain.Criterion
		want      string
	}{
		{"include", domain.Include("panic"), "The argument 'panic' wasn't found in app.log file."},
		{"threshold", domain.Criterion{Kind: domain.KindThresholdAtLeast, Value: "99", Threshold: 99}, "The argument '99' wasn't found in app.log file."},
		{"exclude", domain.Exclude("a"), "The argument 'a' was found all over the app.log file."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			console, out := newTestConsole()

			name, err := NewWriter(testConfig(dir), console).Write(domain.MatchSet{File: appFile, Criterion: tt.criterion})
			require.NoError(t, err)

			assert.Empty(t, name)
			assert.Contains(t, out.String(), tt.want)

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestWriter_OverwritesPreviousArtifact(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "i-error-app.txt", "stale content from an earlier run\nmore\n")
	console, _ := newTestConsole()

	_, err := NewWriter(testConfig(dir), console).Write(domain.MatchSet{
		File:      appFile,
		Criterion: domain.Include("error"),
		Lines:     []string{"ERROR fail 5\n"},
	})
	require.NoError(t, err)

	assert.Equal(t, "ERROR fail 5\n", readFile(t, dir, "i-error-app.txt"))
}

func TestWriter_DuplicateNames(t *testing.T) {
	first := domain.MatchSet{File: appFile, Criterion: domain.Include("error"), Lines: []string{"first\n"}}
	second := domain.MatchSet{File: appFile, Criterion: domain.Include("error"), Lines: []string{"second\n"}}

	t.Run("default overwrites", func(t *testing.T) {
		dir := t.TempDir()
		console, _ := newTestConsole()
		w := NewWriter(testConfig(dir), console)

		_, err := w.Write(first)
		require.NoError(t, err)
		_, err = w.Write(second)
		require.NoError(t, err)

		assert.Equal(t, "second\n", readFile(t, dir, "i-error-app.txt"))
	})

	t.Run("strict rejects the second write", func(t *testing.T) {
		dir := t.TempDir()
		cfg := testConfig(dir)
		cfg.Strict = true
		console, _ := newTestConsole()
		w := NewWriter(cfg, console)

		_, err := w.Write(first)
		require.NoError(t, err)
		_, err = w.Write(second)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrArtifactCollision)

		assert.Equal(t, "first\n", readFile(t, dir, "i-error-app.txt"))
	})
}

func TestWriter_CustomOutputExtension(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.OutputExt = ".out"
	console, _ := newTestConsole()

	name, err := NewWriter(cfg, console).Write(domain.MatchSet{
		File:      appFile,
		Criterion: domain.Exclude("info"),
		Lines:     []string{"x\n"},
	})
	require.NoError(t, err)
	assert.Equal(t, "e-info-app.out", name)
	assert.FileExists(t, filepath.Join(dir, name))
}

func TestWriter_UnwritableName(t *testing.T) {
	dir := t.TempDir()
	console, _ := newTestConsole()

	_, err := NewWriter(testConfig(dir), console).Write(domain.MatchSet{
		File:      appFile,
		Criterion: domain.Include("missing/sub"),
		Lines:     []string{"x\n"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating")
}
