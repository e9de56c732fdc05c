package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThresholdError(t *testing.T) {
	err := error(&ThresholdError{Value: "abc"})

	assert.Equal(t, "abc is not a valid threshold", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidThreshold))
	assert.True(t, errors.Is(fmt.Errorf("parsing: %w", err), ErrInvalidThreshold))
	assert.False(t, errors.Is(err, ErrNoCriteria))

	var te *ThresholdError
	assert.True(t, errors.As(err, &te))
	assert.Equal(t, "abc", te.Value)
}
