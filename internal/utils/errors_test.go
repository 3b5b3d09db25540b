package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("bad input")
	assert.Equal(t, "bad input", err.Error())

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
}

func TestNewValidationErrorf(t *testing.T) {
	err := NewValidationErrorf("field %s out of range: %d", "records", -1)
	assert.Equal(t, "field records out of range: -1", err.Error())
}

func TestNewLengthMismatchError(t *testing.T) {
	err := NewLengthMismatchError("predicted", 10, 7)
	assert.Equal(t, "predicted: length mismatch: expected 10 values, got 7", err.Error())

	wrapped := fmt.Errorf("evaluating: %w", err)
	var verr *ValidationError
	assert.True(t, errors.As(wrapped, &verr))
}
