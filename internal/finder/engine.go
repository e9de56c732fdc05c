package finder

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/charliek/logfinder/internal/constants"
	"github.com/charliek/logfinder/internal/domain"
)

// Engine applies criteria to log files
type Engine struct{}

// NewEngine creates a new match engine
func NewEngine() *Engine {
	return &Engine{}
}

// Apply streams file once and returns the lines kept by criterion c, in file
// order with their terminators. Only open and read failures are errors.
func (e *Engine) Apply(file domain.LogFile, c domain.Criterion) (domain.MatchSet, error) {
	set := domain.MatchSet{File: file, Criterion: c}
	filter := NewFilter(c)

	for line, err := range ReadLines(file.Path) {
		if err != nil {
			return domain.MatchSet{}, err
		}
		if filter.Matches(line) {
			set.Lines = append(set.Lines, line)
		}
	}

	return set, nil
}

// ReadLines yields every line of the file at path, including its line
// terminator. The last line is yielded even when it has no terminator. The
// file is opened when iteration starts and closed when it stops.
func ReadLines(path string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		f, err := os.Open(path)
		if err != nil {
			yield("", fmt.Errorf("opening %s: %w", path, err))
			return
		}
		defer f.Close()

		reader := bufio.NewReaderSize(f, constants.ReaderBufferSize)
		for {
			line, err := reader.ReadString('\n')
			if line != "" {
				if !yield(line, nil) {
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					yield("", fmt.Errorf("reading %s: %w", path, err))
				}
				return
			}
		}
	}
}
