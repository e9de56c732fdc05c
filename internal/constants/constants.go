// Package constants provides shared configuration values used across the log-finder application.
package constants

// Application identity
const (
	// AppName is the program name shown in usage and version output
	AppName = "log-finder"

	// Version is the released version of log-finder
	Version = "v1.4.1"
)

// File defaults
const (
	// DefaultConfigFile is the default configuration filename
	DefaultConfigFile = "log-finder.yaml"

	// DefaultEnvFile is the default dotenv file read for overrides
	DefaultEnvFile = ".env"

	// DefaultDir is the directory scanned for log files
	DefaultDir = "."

	// DefaultLogExt is the extension a file needs to be scanned
	DefaultLogExt = ".log"

	// DefaultOutputExt is the extension given to written artifacts
	DefaultOutputExt = ".txt"

	// DefaultHistoryFile is the append-only run history, never scanned
	DefaultHistoryFile = "log-finder.log"

	// DefaultLogLevel is the slog level used when nothing else is configured
	DefaultLogLevel = "warn"
)

// ConfigFileCandidates are the config files looked up in the working
// directory when --config is not given, in order of preference
var ConfigFileCandidates = []string{
	DefaultConfigFile,
	"log-finder.yml",
	"log-finder.toml",
}

// Artifact prefixes, one per criterion kind
const (
	IncludePrefix   = "i-"
	ExcludePrefix   = "e-"
	ThresholdPrefix = "s-"
)

// ArtifactPrefixes lists every prefix an artifact file name can start with
var ArtifactPrefixes = []string{IncludePrefix, ExcludePrefix, ThresholdPrefix}

// History record format
const (
	// HistoryTimeLayout renders as DD-MM-YYYY HH:MM:SS
	HistoryTimeLayout = "02-01-2006 15:04:05"

	// HistorySeparator sits between the timestamp and the recorded arguments
	HistorySeparator = " - arguments : "
)

// Buffer sizes
const (
	// ReaderBufferSize is the buffer size for streaming log lines
	ReaderBufferSize = 64 * 1024 // 64KB
)

// File permissions
const (
	// ArtifactFileMode is the permission used for artifacts and the history file
	ArtifactFileMode = 0644
)
