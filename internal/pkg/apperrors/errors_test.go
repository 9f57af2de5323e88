package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityErrorsUnwrapToKind(t *testing.T) {
	wrapped := fmt.Errorf("loading: %w", ErrStudentNotFound)

	assert.True(t, errors.Is(wrapped, ErrStudentNotFound))
	assert.True(t, errors.Is(wrapped, ErrResourceNotFound))
	assert.False(t, errors.Is(wrapped, ErrInterventionNotFound))
	assert.True(t, errors.Is(ErrUsernameTaken, ErrConflict))
	assert.Equal(t, "intervention not found", ErrInterventionNotFound.Error())
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("x: %w", ErrTokenExpired)
	assert.True(t, Is(err, ErrTokenInvalid, ErrTokenExpired))
	assert.False(t, Is(err, ErrTokenInvalid, ErrInvalidFormat))
}

func TestCustomError(t *testing.T) {
	var ce *CustomError
	assert.True(t, errors.As(fmt.Errorf("create: %w", ErrUsernameTaken), &ce))
	assert.Equal(t, "username already exists", ce.Message)
	assert.Equal(t, "conflict", (&CustomError{Err: ErrConflict}).Error())
	assert.Equal(t, "unknown error", (&CustomError{}).Error())
}
