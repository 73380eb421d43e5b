package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name    string
		err     *AppError
		typ     ErrorType
		code    string
		message string
	}{
		{"validation", NewValidationError("invalid task", cause), ErrorTypeValidation, "VALIDATION_FAILED", "invalid task"},
		{"not found", NewNotFoundError("task", "abc"), ErrorTypeNotFound, "NOT_FOUND", "task not found: abc"},
		{"storage", NewStorageError("save tasks", cause), ErrorTypeStorage, "STORAGE_ERROR", "storage operation failed: save tasks"},
		{"invalid input", NewInvalidInputError("due", "13/45", "not a date"), ErrorTypeInvalidInput, "INVALID_INPUT", "invalid input for due: not a date"},
		{"timeout", NewTimeoutError("save tasks", "5s"), ErrorTypeTimeout, "TIMEOUT", "operation timed out: save tasks"},
		{"permission", NewPermissionError("delete", "task"), ErrorTypePermission, "PERMISSION_DENIED", "permission denied for delete on task"},
		{"unauthenticated", NewUnauthenticatedError("add task"), ErrorTypeUnauthenticated, "UNAUTHENTICATED", "sign in required to add task"},
		{"capture", NewCaptureError("no_speech", nil), ErrorTypeCapture, "CAPTURE_FAILED", "speech capture failed: no_speech"},
		{"capture unavailable", NewCaptureUnavailableError(), ErrorTypeCaptureUnavailable, "CAPTURE_UNAVAILABLE", "speech capture is not available; use manual entry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.typ, tt.err.Type)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.message, tt.err.Message)
		})
	}
}

func TestNewNotFoundError_Context(t *testing.T) {
	err := NewNotFoundError("task", "abc")

	resource, ok := err.GetContext("resource")
	require.True(t, ok)
	assert.Equal(t, "task", resource)

	identifier, ok := err.GetContext("identifier")
	require.True(t, ok)
	assert.Equal(t, "abc", identifier)
}

func TestWrapError(t *testing.T) {
	cause := errors.New("original error")
	err := WrapError(cause, ErrorTypeStorage, "wrapped message")

	assert.Equal(t, ErrorTypeStorage, err.Type)
	assert.Equal(t, "storage", err.Code)
	assert.Same(t, cause, err.Cause)
}

func TestAsAppError_ThroughWrapping(t *testing.T) {
	inner := NewCaptureError("engine", nil)
	outer := fmt.Errorf("dictate: %w", inner)

	got, ok := AsAppError(outer)
	require.True(t, ok)
	assert.Same(t, inner, got)
	assert.True(t, IsAppError(outer))
	assert.True(t, IsErrorType(outer, ErrorTypeCapture))
	assert.False(t, IsErrorType(outer, ErrorTypeStorage))

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
	assert.False(t, IsAppError(nil))
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"validation", NewValidationError("description is required", nil), "description is required"},
		{"storage", NewStorageError("save", errors.New("locked")), "Your tasks could not be saved or loaded. Please try again."},
		{"timeout", NewTimeoutError("save", "5s"), "The operation timed out. Please try again."},
		{"capture", NewCaptureError("no_speech", nil), "We couldn't hear a task. Please try again."},
		{"unauthenticated", NewUnauthenticatedError("list tasks"), "sign in required to list tasks"},
		{"plain", errors.New("regular error"), "regular error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetUserMessage(tt.err))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, "STORAGE_ERROR", GetErrorCode(NewStorageError("load", nil)))
	assert.Equal(t, "UNKNOWN_ERROR", GetErrorCode(errors.New("regular error")))
}

func TestShouldLogError(t *testing.T) {
	assert.False(t, ShouldLogError(NewValidationError("x", nil)))
	assert.False(t, ShouldLogError(NewCaptureUnavailableError()))
	assert.False(t, ShouldLogError(NewUnauthenticatedError("add task")))
	assert.True(t, ShouldLogError(NewStorageError("save", nil)))
	assert.True(t, ShouldLogError(NewCaptureError("engine", nil)))
	assert.True(t, ShouldLogError(errors.New("regular error")))
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(NewCaptureError("no_speech", nil)))
	assert.True(t, IsRetryable(NewStorageError("save", nil)))
	assert.True(t, IsRetryable(NewTimeoutError("save", "5s")))
	assert.False(t, IsRetryable(NewCaptureUnavailableError()))
	assert.False(t, IsRetryable(NewValidationError("x", nil)))
	assert.False(t, IsRetryable(errors.New("regular error")))
}
