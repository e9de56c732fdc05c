package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charliek/logfinder/internal/constants"
	"github.com/charliek/logfinder/internal/domain"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config represents the log-finder configuration. Once resolved it is passed
// by value into every component and not modified.
type Config struct {
	Dir         string   `yaml:"dir" toml:"dir"`
	LogExt      string   `yaml:"log_ext" toml:"log_ext"`
	OutputExt   string   `yaml:"output_ext" toml:"output_ext"`
	HistoryFile string   `yaml:"history_file" toml:"history_file"`
	Ignore      []string `yaml:"ignore" toml:"ignore"`
	Strict      bool     `yaml:"strict" toml:"strict"`
	ClearScreen bool     `yaml:"clear_screen" toml:"clear_screen"`
	LogLevel    string   `yaml:"log_level" toml:"log_level"`
	EnvFile     string   `yaml:"env_file" toml:"env_file"`
}

// Format is the encoding of a configuration file
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from the file extension, defaulting to YAML
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads and parses a configuration file
func Load(path string) (*Config, error) {
	// First check if file exists
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("checking config file: %w", err)
	}

	// Check file permissions for security
	if err := CheckFilePermissions(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data, FormatFromPath(path))
}

// Parse parses configuration bytes in the given format, applies defaults and validates
func Parse(data []byte, format Format) (*Config, error) {
	var cfg Config

	switch format {
	case FormatTOML:
		if err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parsing toml: %w", err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to io.EOF; treat it as all defaults
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Dir == "" {
		cfg.Dir = constants.DefaultDir
	}
	if cfg.LogExt == "" {
		cfg.LogExt = constants.DefaultLogExt
	}
	if cfg.OutputExt == "" {
		cfg.OutputExt = constants.DefaultOutputExt
	}
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = constants.DefaultHistoryFile
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = constants.DefaultLogLevel
	}
	if cfg.EnvFile == "" {
		cfg.EnvFile = constants.DefaultEnvFile
	}
}

// HistoryPath returns the path of the run history file inside Dir
func (c *Config) HistoryPath() string {
	return filepath.Join(c.Dir, c.HistoryFile)
}

// SlogLevel converts LogLevel to a slog.Level, falling back to warn
func (c *Config) SlogLevel() slog.Level {
	if level, ok := logLevels[strings.ToLower(c.LogLevel)]; ok {
		return level
	}
	return slog.LevelWarn
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}
