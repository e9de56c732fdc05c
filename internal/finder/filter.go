package finder

import (
	"strconv"
	"strings"

	"github.com/charliek/logfinder/internal/domain"
)

// Filter classifies log lines against a single criterion
type Filter struct {
	criterion domain.Criterion
	needle    string
}

// NewFilter creates a new filter for a criterion
func NewFilter(c domain.Criterion) *Filter {
	return &Filter{
		criterion: c,
		needle:    strings.ToLower(c.Value),
	}
}

// Matches returns true if the line should be kept for the criterion
func (f *Filter) Matches(line string) bool {
	switch f.criterion.Kind {
	case domain.KindInclude:
		return f.contains(line)
	case domain.KindExclude:
		return !f.contains(line)
	case domain.KindThresholdAtLeast:
		n, ok := ThresholdField(line)
		// Lines without a numeric last field never match
		return ok && n >= f.criterion.Threshold
	default:
		return false
	}
}

func (f *Filter) contains(line string) bool {
	return strings.Contains(strings.ToLower(line), f.needle)
}

// Classify reports whether line is kept by criterion c
func Classify(line string, c domain.Criterion) bool {
	return NewFilter(c).Matches(line)
}

// ThresholdField returns the last space separated field of line as a
// non-negative integer. The line terminator is not part of the field.
func ThresholdField(line string) (uint64, bool) {
	field := line
	if i := strings.LastIndexByte(line, ' '); i >= 0 {
		field = line[i+1:]
	}
	n, err := strconv.ParseUint(strings.TrimSpace(field), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
