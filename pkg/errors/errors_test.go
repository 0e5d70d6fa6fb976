package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("bad input")

	assert.Equal(t, ErrorTypeValidation, err.Type)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
	assert.Contains(t, err.Error(), "bad input")
}

func TestIsType_ThroughWrapping(t *testing.T) {
	base := NewNotFoundError("session graph")
	wrapped := fmt.Errorf("failed to load graph: %w", base)

	assert.True(t, IsType(wrapped, ErrorTypeNotFound))
	assert.False(t, IsType(wrapped, ErrorTypeValidation))
}

func TestIsType_PlainError(t *testing.T) {
	assert.False(t, IsType(fmt.Errorf("plain"), ErrorTypeInternal))
}

func TestHTTPStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatusOf(NewNotFoundError("graph")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatusOf(NewValidationError("bad")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatusOf(fmt.Errorf("plain")))
}

func TestAppError_WithCause(t *testing.T) {
	cause := fmt.Errorf("disk on fire")
	err := NewInternalError("save failed").WithCause(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk on fire")
}
