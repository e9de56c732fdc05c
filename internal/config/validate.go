package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charliek/logfinder/internal/domain"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration for errors
func Validate(config *Config) error {
	var errs []string

	if config.Dir == "" {
		errs = append(errs, "dir: directory is required")
	}

	if err := ValidateExtension("log_ext", config.LogExt); err != nil {
		errs = append(errs, err.Error())
	}
	if err := ValidateExtension("output_ext", config.OutputExt); err != nil {
		errs = append(errs, err.Error())
	}
	if config.LogExt != "" && config.LogExt == config.OutputExt {
		errs = append(errs, "output_ext: must differ from log_ext")
	}

	if config.HistoryFile == "" {
		errs = append(errs, "history_file: file name is required")
	} else if filepath.Base(config.HistoryFile) != config.HistoryFile {
		errs = append(errs, fmt.Sprintf("history_file: %q must be a file name, not a path", config.HistoryFile))
	}

	for i, pattern := range config.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			errs = append(errs, fmt.Sprintf("ignore[%d]: invalid glob pattern %q", i, pattern))
		}
	}

	if _, ok := logLevels[strings.ToLower(config.LogLevel)]; !ok {
		errs = append(errs, fmt.Sprintf("log_level: unknown level %q (use debug, info, warn or error)", config.LogLevel))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, strings.Join(errs, "; "))
	}

	return nil
}

// ValidateExtension checks that ext looks like a file extension such as .log
func ValidateExtension(field, ext string) error {
	if len(ext) < 2 || !strings.HasPrefix(ext, ".") {
		return &ValidationError{Field: field, Message: fmt.Sprintf("%q must start with a dot followed by a name", ext)}
	}
	if strings.ContainsAny(ext, " \t\n/\\") {
		return &ValidationError{Field: field, Message: fmt.Sprintf("%q cannot contain whitespace or path separators", ext)}
	}
	return nil
}
