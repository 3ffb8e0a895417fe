package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Error(t *testing.T) {
	err := NewValidationError("INVALID_QUANTITY", "Quantity must be positive")
	assert.Equal(t, "Quantity must be positive", err.Error())
	assert.Equal(t, "INVALID_QUANTITY", err.Code)
	assert.Equal(t, ErrorKindValidation, err.Kind)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"validation error", NewValidationError("X", "x"), ErrorKindValidation},
		{"not found error", ErrNotFound, ErrorKindNotFound},
		{"forbidden error", ErrForbidden, ErrorKindForbidden},
		{"conflict error", ErrConcurrencyConflict, ErrorKindConflict},
		{"wrapped domain error", fmt.Errorf("pick failed: %w", ErrInsufficientStock), ErrorKindValidation},
		{"plain error", errors.New("boom"), ErrorKind("")},
		{"nil error", nil, ErrorKind("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestKindPredicates(t *testing.T) {
	assert.True(t, IsValidation(ErrInvalidInput))
	assert.True(t, IsNotFound(ErrNotFound))
	assert.True(t, IsForbidden(ErrForbidden))
	assert.True(t, IsConflict(ErrAlreadyExists))

	assert.False(t, IsNotFound(ErrInvalidInput))
	assert.False(t, IsValidation(errors.New("boom")))
}
