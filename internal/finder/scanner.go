package finder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charliek/logfinder/internal/config"
	"github.com/charliek/logfinder/internal/domain"
)

// Scanner lists the log files of a directory
type Scanner struct {
	dir         string
	logExt      string
	historyFile string
	ignore      []string
}

// NewScanner creates a scanner for the directory and extension in cfg
func NewScanner(cfg config.Config) *Scanner {
	return &Scanner{
		dir:         cfg.Dir,
		logExt:      cfg.LogExt,
		historyFile: cfg.HistoryFile,
		ignore:      cfg.Ignore,
	}
}

// Scan returns the candidate log files in directory listing order. The run
// history file and files matching an ignore pattern are left out. No match is
// an empty result, not an error.
func (s *Scanner) Scan() ([]domain.LogFile, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", s.dir, err)
	}

	files := make([]domain.LogFile, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != s.logExt || name == s.historyFile {
			continue
		}
		if s.ignored(name) {
			continue
		}
		files = append(files, domain.LogFile{
			Name: name,
			Path: filepath.Join(s.dir, name),
		})
	}

	return files, nil
}

func (s *Scanner) ignored(name string) bool {
	for _, pattern := range s.ignore {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
