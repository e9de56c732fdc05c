package domain

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrInvalidThreshold  = errors.New("invalid threshold")
	ErrNoCriteria        = errors.New("no search criteria")
	ErrNoLogFiles        = errors.New("no log files found")
	ErrArtifactCollision = errors.New("artifact already written in this run")
	ErrConfigNotFound    = errors.New("config file not found")
	ErrInvalidConfig     = errors.New("invalid configuration")
)

// ThresholdError reports a threshold argument that is not a non-negative integer
type ThresholdError struct {
	Value string
}

func (e *ThresholdError) Error() string {
	return fmt.Sprintf("%s is not a valid threshold", e.Value)
}

// Unwrap lets errors.Is match ErrInvalidThreshold
func (e *ThresholdError) Unwrap() error {
	return ErrInvalidThreshold
}
