package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/charliek/logfinder/internal/constants"
	"github.com/charliek/logfinder/internal/domain"
	"github.com/joho/godotenv"
)

// Environment variables that override configuration values
const (
	EnvDir         = "LOG_FINDER_DIR"
	EnvLogExt      = "LOG_FINDER_LOG_EXT"
	EnvOutputExt   = "LOG_FINDER_OUTPUT_EXT"
	EnvHistoryFile = "LOG_FINDER_HISTORY_FILE"
	EnvStrict      = "LOG_FINDER_STRICT"
	EnvClearScreen = "LOG_FINDER_CLEAR_SCREEN"
	EnvLogLevel    = "LOG_FINDER_LOG_LEVEL"
)

// ResolveOptions controls how Resolve builds a configuration.
//
// Fields:
//   - Path: config file to read.
//   - Explicit: true when Path was given by the user; a missing explicit file is an error,
//     a missing default file means defaults.
//   - Environ: process environment, usually EnvironMap(os.Environ()).
type ResolveOptions struct {
	Path     string
	Explicit bool
	Environ  map[string]string
}

// Resolve loads the config file (or defaults), then applies overrides from the
// dotenv file and the process environment, in that order of priority.
func Resolve(opts ResolveOptions) (*Config, error) {
	cfg, err := Load(opts.Path)
	if err != nil {
		if opts.Explicit || !errors.Is(err, domain.ErrConfigNotFound) {
			return nil, err
		}
		cfg = Default()
	}

	dotenv, err := LoadEnvFile(resolvePath(cfg.EnvFile, filepath.Dir(opts.Path)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	if err := ApplyEnv(cfg, MergeEnv(dotenv, opts.Environ)); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadEnvFile reads a .env file and returns the variables as a map.
// A missing file yields an error wrapping os.ErrNotExist.
func LoadEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("env file not found: %s: %w", path, os.ErrNotExist)
	}

	env, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}

	return env, nil
}

// MergeEnv merges multiple environment maps in order, with later maps taking precedence
func MergeEnv(envMaps ...map[string]string) map[string]string {
	result := make(map[string]string)
	for _, env := range envMaps {
		for k, v := range env {
			result[k] = v
		}
	}
	return result
}

// EnvironMap converts KEY=VALUE pairs as returned by os.Environ into a map
func EnvironMap(environ []string) map[string]string {
	result := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		result[k] = v
	}
	return result
}

// ApplyEnv overrides config values with the LOG_FINDER_* variables present in env
func ApplyEnv(cfg *Config, env map[string]string) error {
	strs := map[string]*string{
		EnvDir:         &cfg.Dir,
		EnvLogExt:      &cfg.LogExt,
		EnvOutputExt:   &cfg.OutputExt,
		EnvHistoryFile: &cfg.HistoryFile,
		EnvLogLevel:    &cfg.LogLevel,
	}
	for key, field := range strs {
		if v, ok := env[key]; ok && v != "" {
			*field = v
		}
	}

	bools := map[string]*bool{
		EnvStrict:      &cfg.Strict,
		EnvClearScreen: &cfg.ClearScreen,
	}
	for key, field := range bools {
		v, ok := env[key]
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %q is not a boolean", domain.ErrInvalidConfig, key, v)
		}
		*field = b
	}

	return nil
}

// resolvePath resolves a potentially relative path against a base directory
func resolvePath(path, baseDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}

// FindConfigFile searches dir for the first existing config file candidate
func FindConfigFile(dir string) (string, error) {
	for _, name := range constants.ConfigFileCandidates {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("%w (tried: %v)", domain.ErrConfigNotFound, constants.ConfigFileCandidates)
}

// CheckFilePermissions checks if a file has secure permissions.
// On Unix-like systems, it verifies the file is not world-writable.
// Returns an error if the file has insecure permissions.
func CheckFilePermissions(path string) error {
	// Skip permission check on Windows
	if runtime.GOOS == "windows" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("checking file permissions: %w", err)
	}

	// World-writable = others have write (0002)
	if info.Mode().Perm()&0002 != 0 {
		return fmt.Errorf("config file %s has insecure permissions: world-writable files can be modified by any user. Please run: chmod o-w %s", path, path)
	}

	return nil
}
