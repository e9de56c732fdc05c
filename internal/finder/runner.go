package finder

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charliek/logfinder/internal/config"
	"github.com/charliek/logfinder/internal/domain"
)

// State is a stage of a run
type State string

const (
	StateInit       State = "init"
	StateValidating State = "validating"
	StateScanning   State = "scanning"
	StateReporting  State = "reporting"
	StateAborted    State = "aborted"
)

// String returns the string representation of State
func (s State) String() string {
	return string(s)
}

// RunnerConfig holds the collaborators of a runner that tests may replace
type RunnerConfig struct {
	Logger      *slog.Logger
	Now         func() time.Time
	ClearScreen func() // called before scanning when the config asks for it
}

// DefaultRunnerConfig returns a config with a discarding logger and the wall clock
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Now:    time.Now,
	}
}

// PairError records a (file, criterion) pair that could not be processed
type PairError struct {
	File      domain.LogFile
	Criterion domain.Criterion
	Err       error
}

func (e PairError) Error() string {
	return fmt.Sprintf("%s on %s: %v", e.Criterion, e.File.Name, e.Err)
}

func (e PairError) Unwrap() error {
	return e.Err
}

// Summary describes the outcome of a run
type Summary struct {
	State     State
	Reason    error // why the run aborted, nil when it completed
	Criteria  []domain.Criterion
	Rejected  []error // criteria dropped during validation
	Files     []domain.LogFile
	Artifacts []string // artifact names in write order, repeated on overwrite
	Failed    []PairError
	Elapsed   time.Duration
}

// Runner drives a search: it validates criteria, discovers log files and
// applies every criterion to every file, file by file.
type Runner struct {
	cfg     config.Config
	console *Console
	scanner *Scanner
	engine  *Engine
	writer  *Writer
	logger  *slog.Logger
	now     func() time.Time
	clear   func()
	state   State
}

// NewRunner creates a runner for cfg reporting to console
func NewRunner(cfg config.Config, console *Console, runConfig RunnerConfig) *Runner {
	defaults := DefaultRunnerConfig()
	if runConfig.Logger == nil {
		runConfig.Logger = defaults.Logger
	}
	if runConfig.Now == nil {
		runConfig.Now = defaults.Now
	}

	return &Runner{
		cfg:     cfg,
		console: console,
		scanner: NewScanner(cfg),
		engine:  NewEngine(),
		writer:  NewWriter(cfg, console),
		logger:  runConfig.Logger,
		now:     runConfig.Now,
		clear:   runConfig.ClearScreen,
		state:   StateInit,
	}
}

// State returns the current state of the runner
func (r *Runner) State() State {
	return r.state
}

// Run executes one search. Missing criteria or log files abort the run
// without an error; the returned error is reserved for failures that stop
// the whole run, such as an unreadable directory. Failures of a single
// (file, criterion) pair are logged, recorded in the summary and skipped.
func (r *Runner) Run(args domain.CriteriaArgs) (*Summary, error) {
	summary := &Summary{}

	r.transition(StateValidating)
	criteria, rejected := domain.ParseCriteria(args)
	for _, err := range rejected {
		r.console.InvalidCriterion(err)
	}
	summary.Criteria = criteria
	summary.Rejected = rejected

	if len(criteria) == 0 {
		r.console.InsufficientArguments()
		return r.abort(summary, domain.ErrNoCriteria), nil
	}

	r.transition(StateScanning)
	files, err := r.scanner.Scan()
	if err != nil {
		return r.abort(summary, err), err
	}
	summary.Files = files

	if len(files) == 0 {
		r.console.FileNotFound(r.cfg.Dir, r.cfg.LogExt)
		return r.abort(summary, fmt.Errorf("%w in %s", domain.ErrNoLogFiles, r.cfg.Dir)), nil
	}

	if r.cfg.ClearScreen && r.clear != nil {
		r.clear()
	}

	start := r.now()
	r.console.BeginSearch()

	for _, file := range files {
		for _, criterion := range criteria {
			name, err := r.process(file, criterion)
			if err != nil {
				r.logger.Error("skipping search", "file", file.Name, "criterion", criterion.String(), "err", err)
				summary.Failed = append(summary.Failed, PairError{File: file, Criterion: criterion, Err: err})
				continue
			}
			if name != "" {
				summary.Artifacts = append(summary.Artifacts, name)
			}
		}
	}

	r.transition(StateReporting)
	summary.Elapsed = r.now().Sub(start)
	r.console.Completed(summary.Elapsed)
	summary.State = r.state

	return summary, nil
}

func (r *Runner) process(file domain.LogFile, criterion domain.Criterion) (string, error) {
	set, err := r.engine.Apply(file, criterion)
	if err != nil {
		return "", err
	}
	r.logger.Debug("criterion applied", "file", file.Name, "criterion", criterion.String(), "matches", set.Count())
	return r.writer.Write(set)
}

func (r *Runner) abort(summary *Summary, reason error) *Summary {
	r.transition(StateAborted)
	summary.State = r.state
	summary.Reason = reason
	return summary
}

func (r *Runner) transition(to State) {
	r.logger.Debug("run state", "from", r.state.String(), "to", to.String())
	r.state = to
}
