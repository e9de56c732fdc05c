package domain

import (
	"strconv"

	"github.com/charliek/logfinder/internal/constants"
)

// Kind is the type of a search criterion
type Kind int

const (
	KindInclude Kind = iota
	KindExclude
	KindThresholdAtLeast
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindInclude:
		return "include"
	case KindExclude:
		return "exclude"
	case KindThresholdAtLeast:
		return "threshold"
	default:
		return "unknown"
	}
}

// Prefix returns the artifact file name prefix for the kind
func (k Kind) Prefix() string {
	switch k {
	case KindInclude:
		return constants.IncludePrefix
	case KindExclude:
		return constants.ExcludePrefix
	case KindThresholdAtLeast:
		return constants.ThresholdPrefix
	default:
		return ""
	}
}

// Criterion is one search directive. It is built once at startup and never
// modified afterwards.
//
// Fields:
//   - Kind: include, exclude or threshold.
//   - Value: the raw argument text, used verbatim in artifact names.
//   - Threshold: the parsed value of a threshold criterion, 0 otherwise.
type Criterion struct {
	Kind      Kind
	Value     string
	Threshold uint64
}

// Include creates an include criterion
func Include(value string) Criterion {
	return Criterion{Kind: KindInclude, Value: value}
}

// Exclude creates an exclude criterion
func Exclude(value string) Criterion {
	return Criterion{Kind: KindExclude, Value: value}
}

// ThresholdAtLeast parses value as a non-negative integer and creates a
// threshold criterion. A value that does not parse yields a *ThresholdError.
func ThresholdAtLeast(value string) (Criterion, error) {
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return Criterion{}, &ThresholdError{Value: value}
	}
	return Criterion{Kind: KindThresholdAtLeast, Value: value, Threshold: n}, nil
}

// String returns a short description such as include:error
func (c Criterion) String() string {
	return c.Kind.String() + ":" + c.Value
}

// CriteriaArgs holds the raw argument groups supplied on the command line
type CriteriaArgs struct {
	Includes   []string
	Excludes   []string
	Thresholds []string
}

// IsEmpty returns true if no argument was supplied in any group
func (a CriteriaArgs) IsEmpty() bool {
	return len(a.Includes) == 0 && len(a.Excludes) == 0 && len(a.Thresholds) == 0
}

// ParseCriteria turns the raw argument groups into criteria ordered as
// includes, excludes, thresholds, each group in argument order. Invalid
// thresholds are left out and returned as errors, one per value; they never
// stop the remaining arguments from being parsed. Duplicates are kept.
func ParseCriteria(args CriteriaArgs) ([]Criterion, []error) {
	criteria := make([]Criterion, 0, len(args.Includes)+len(args.Excludes)+len(args.Thresholds))
	var errs []error

	for _, v := range args.Includes {
		criteria = append(criteria, Include(v))
	}
	for _, v := range args.Excludes {
		criteria = append(criteria, Exclude(v))
	}
	for _, v := range args.Thresholds {
		c, err := ThresholdAtLeast(v)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		criteria = append(criteria, c)
	}

	return criteria, errs
}
