package finder

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charliek/logfinder/internal/config"
	"github.com/stretchr/testify/require"
)

const appLog = "INFO start 10\nERROR fail 5\n"

// writeFile creates name inside dir with content
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// readFile returns the content of name inside dir
func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(data)
}

// testConfig returns the default config rooted at dir
func testConfig(dir string) config.Config {
	cfg := *config.Default()
	cfg.Dir = dir
	return cfg
}

// newTestConsole returns a console writing into a buffer
func newTestConsole() (*Console, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewConsole(&buf), &buf
}
