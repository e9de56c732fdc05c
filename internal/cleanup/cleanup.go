// Package cleanup removes artifacts written by earlier searches.
package cleanup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charliek/logfinder/internal/config"
	"github.com/charliek/logfinder/internal/constants"
)

// IsArtifact reports whether name looks like an artifact written with outputExt
func IsArtifact(name, outputExt string) bool {
	if !strings.HasSuffix(name, outputExt) {
		return false
	}
	for _, prefix := range constants.ArtifactPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// Remove deletes every artifact in cfg.Dir and returns their names. Each
// name is passed to onRemoved right after deletion, when onRemoved is set.
func Remove(cfg config.Config, onRemoved func(name string)) ([]string, error) {
	entries, err := os.ReadDir(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", cfg.Dir, err)
	}

	var removed []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !IsArtifact(name, cfg.OutputExt) {
			continue
		}
		if err := os.Remove(filepath.Join(cfg.Dir, name)); err != nil {
			return removed, fmt.Errorf("removing %s: %w", name, err)
		}
		removed = append(removed, name)
		if onRemoved != nil {
			onRemoved(name)
		}
	}

	return removed, nil
}
