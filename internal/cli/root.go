package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charliek/logfinder/internal/config"
	"github.com/charliek/logfinder/internal/constants"
	"github.com/charliek/logfinder/internal/domain"
	"github.com/charliek/logfinder/internal/finder"
	"github.com/charliek/logfinder/internal/history"
	"github.com/spf13/cobra"
)

// Version is set during build
var Version = constants.Version

// options holds the flag values of one invocation
type options struct {
	rawArgs    []string
	configPath string
	dir        string
	verbose    bool

	includes   []string
	excludes   []string
	thresholds []string
	strict     bool
	clear      bool
}

// Run executes log-finder with args (without the program name) and returns
// the process exit code
func Run(args []string, stdout, stderr io.Writer) int {
	opts := &options{rawArgs: args}
	cmd := newRootCmd(opts)
	cmd.SetArgs(expandMultiValueFlags(args, cmd.Flags()))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// newRootCmd builds the command tree bound to opts
func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "Search for common words in log files",
		Long: `log-finder scans every log file of a directory and saves the lines
matching each argument into its own text file:
  - i-<arg>-<log>.txt for lines including the argument
  - e-<arg>-<log>.txt for lines not including the argument
  - s-<arg>-<log>.txt for lines whose request time is at least the argument

Text matching ignores case. The request time is the last space separated
field of a line.`,
		Example: `  log-finder -i error timeout      # lines containing "error" or "timeout"
  log-finder -e healthcheck        # lines without "healthcheck"
  log-finder -s 500 -i POST        # slow requests and POST requests`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, opts)
		},
	}

	// Persistent flags available to all subcommands
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", constants.DefaultConfigFile, "Config file")
	rootCmd.PersistentFlags().StringVarP(&opts.dir, "dir", "d", "", "Directory holding the log files (default from config, or the current directory)")
	rootCmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Enable verbose output")

	// Search flags
	rootCmd.Flags().StringArrayVarP(&opts.includes, "inc", "i", nil, "one or more arguments to be included on the search")
	rootCmd.Flags().StringArrayVarP(&opts.excludes, "exc", "e", nil, "one or more arguments to be excluded from the search")
	rootCmd.Flags().StringArrayVarP(&opts.thresholds, "sec", "s", nil, "one or more request times; matches lines with a request time equal or greater")
	rootCmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail instead of overwriting an artifact already written in this run")
	rootCmd.Flags().BoolVar(&opts.clear, "clear", false, "Clear the screen before searching")
	markMultiValue(rootCmd.Flags(), "inc", "exc", "sec")

	// Set version template
	rootCmd.SetVersionTemplate(constants.AppName + " {{.Version}}\n")

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCleanCmd(opts))
	rootCmd.AddCommand(newHistoryCmd(opts))

	return rootCmd
}

// newVersionCmd represents the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", constants.AppName, Version)
		},
	}
}

// runSearch records the invocation and runs the search
func runSearch(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	if opts.strict {
		cfg.Strict = true
	}
	if opts.clear {
		cfg.ClearScreen = true
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.SlogLevel())

	// Every invocation is recorded, including the ones without arguments
	if err := history.New(cfg.HistoryPath()).Append(opts.rawArgs); err != nil {
		logger.Warn("could not record run history", "err", err)
	}

	runner := finder.NewRunner(*cfg, finder.NewConsole(cmd.OutOrStdout()), finder.RunnerConfig{
		Logger:      logger,
		ClearScreen: screenClearer(cmd.OutOrStdout()),
	})

	summary, err := runner.Run(domain.CriteriaArgs{
		Includes:   opts.includes,
		Excludes:   opts.excludes,
		Thresholds: opts.thresholds,
	})
	if err != nil {
		return err
	}

	if summary.Reason != nil {
		logger.Info("search aborted", "reason", summary.Reason)
		return nil
	}

	logger.Debug("search finished",
		"state", summary.State.String(),
		"files", len(summary.Files),
		"criteria", len(summary.Criteria),
		"artifacts", len(summary.Artifacts),
		"failed", len(summary.Failed))
	return nil
}

// loadConfig resolves the configuration and applies the persistent flags
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	path := opts.configPath
	explicit := cmd.Flags().Changed("config")
	if !explicit {
		// Without a candidate Resolve falls back to defaults
		if found, err := config.FindConfigFile("."); err == nil {
			path = found
		}
	}

	cfg, err := config.Resolve(config.ResolveOptions{
		Path:     path,
		Explicit: explicit,
		Environ:  config.EnvironMap(os.Environ()),
	})
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if opts.dir != "" {
		cfg.Dir = opts.dir
	}
	if opts.verbose {
		cfg.LogLevel = "debug"
	}

	return cfg, nil
}

// newLogger creates the diagnostics logger writing to w
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
