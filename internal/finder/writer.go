package finder

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charliek/logfinder/internal/config"
	"github.com/charliek/logfinder/internal/constants"
	"github.com/charliek/logfinder/internal/domain"
)

// Writer turns match sets into artifact files and console messages
type Writer struct {
	dir       string
	logExt    string
	outputExt string
	strict    bool
	console   *Console
	written   map[string]struct{}
}

// NewWriter creates a writer storing artifacts in cfg.Dir
func NewWriter(cfg config.Config, console *Console) *Writer {
	return &Writer{
		dir:       cfg.Dir,
		logExt:    cfg.LogExt,
		outputExt: cfg.OutputExt,
		strict:    cfg.Strict,
		console:   console,
		written:   make(map[string]struct{}),
	}
}

// Write stores a non-empty match set as an artifact, replacing any previous
// file of the same name, and returns the artifact name. An empty match set
// writes nothing and returns "". In strict mode a second write to the same
// name within the writer's lifetime fails with ErrArtifactCollision.
func (w *Writer) Write(set domain.MatchSet) (string, error) {
	if set.IsEmpty() {
		if set.Criterion.Kind == domain.KindExclude {
			w.console.FoundEverywhere(set.Criterion.Value, set.File.Name)
		} else {
			w.console.NotFound(set.Criterion.Value, set.File.Name)
		}
		return "", nil
	}

	name := domain.ArtifactName(set.Criterion, set.File, w.logExt, w.outputExt)
	if _, seen := w.written[name]; seen && w.strict {
		return "", fmt.Errorf("%w: %s", domain.ErrArtifactCollision, name)
	}

	if err := writeLines(filepath.Join(w.dir, name), set.Lines); err != nil {
		return "", err
	}
	w.written[name] = struct{}{}

	w.console.Saved(name, set.Count())
	return name, nil
}

// writeLines creates or truncates path and writes lines verbatim
func writeLines(path string, lines []string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.ArtifactFileMode)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	buf := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := buf.WriteString(line); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	if err := buf.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
