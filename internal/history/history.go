// Package history records every log-finder invocation in an append-only file.
package history

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charliek/logfinder/internal/constants"
)

// History is the run history file
type History struct {
	path string
	now  func() time.Time
}

// New creates a history stored at path
func New(path string) *History {
	return &History{path: path, now: time.Now}
}

// FormatRecord renders one history line for the given arguments
func FormatRecord(at time.Time, args []string) string {
	return at.Format(constants.HistoryTimeLayout) + constants.HistorySeparator + strings.Join(args, " ") + "\n"
}

// Append adds one record for args, creating the file if needed
func (h *History) Append(args []string) error {
	f, err := os.OpenFile(h.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, constants.ArtifactFileMode)
	if err != nil {
		return fmt.Errorf("opening history file: %w", err)
	}

	if _, err := f.WriteString(FormatRecord(h.now(), args)); err != nil {
		f.Close()
		return fmt.Errorf("writing history file: %w", err)
	}
	return f.Close()
}

// Read returns the history content. A missing file reads as empty.
func (h *History) Read() (string, error) {
	data, err := os.ReadFile(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading history file: %w", err)
	}
	return string(data), nil
}

// Purge removes every record, leaving an empty file
func (h *History) Purge() error {
	if err := os.WriteFile(h.path, nil, constants.ArtifactFileMode); err != nil {
		return fmt.Errorf("purging history file: %w", err)
	}
	return nil
}
