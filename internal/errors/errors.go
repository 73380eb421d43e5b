package errors

import (
	"errors"
	"fmt"
)

// newError builds an AppError; kv are alternating context keys and values.
func newError(t ErrorType, code, message string, cause error, kv ...interface{}) *AppError {
	e := &AppError{Type: t, Code: code, Message: message, Cause: cause, Context: map[string]interface{}{}}
	for i := 0; i+1 < len(kv); i += 2 {
		e.Context[kv[i].(string)] = kv[i+1]
	}
	return e
}

// NewValidationError wraps field problems found before a mutation.
func NewValidationError(message string, cause error) *AppError {
	return newError(ErrorTypeValidation, "VALIDATION_FAILED", message, cause)
}

func NewNotFoundError(resource string, identifier string) *AppError {
	return newError(ErrorTypeNotFound, "NOT_FOUND", fmt.Sprintf("%s not found: %s", resource, identifier), nil,
		"resource", resource, "identifier", identifier)
}

// NewStorageError reports a failed load or save of a task collection.
func NewStorageError(operation string, cause error) *AppError {
	return newError(ErrorTypeStorage, "STORAGE_ERROR", "storage operation failed: "+operation, cause,
		"operation", operation)
}

func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return newError(ErrorTypeInvalidInput, "INVALID_INPUT", fmt.Sprintf("invalid input for %s: %s", field, reason), nil,
		"field", field, "value", value, "reason", reason)
}

func NewTimeoutError(operation string, timeout interface{}) *AppError {
	return newError(ErrorTypeTimeout, "TIMEOUT", "operation timed out: "+operation, nil,
		"operation", operation, "timeout", timeout)
}

// NewPermissionError reports an attempt to touch another owner's data.
func NewPermissionError(operation string, resource string) *AppError {
	return newError(ErrorTypePermission, "PERMISSION_DENIED", fmt.Sprintf("permission denied for %s on %s", operation, resource), nil,
		"operation", operation, "resource", resource)
}

// NewUnauthenticatedError reports an operation attempted without a signed-in owner.
func NewUnauthenticatedError(operation string) *AppError {
	return newError(ErrorTypeUnauthenticated, "UNAUTHENTICATED", "sign in required to "+operation, nil,
		"operation", operation)
}

// NewCaptureError creates a transient speech capture failure. reason is a short
// machine-readable code such as "no_speech" or "permission_denied".
func NewCaptureError(reason string, cause error) *AppError {
	return newError(ErrorTypeCapture, "CAPTURE_FAILED", "speech capture failed: "+reason, cause,
		"reason", reason)
}

// NewCaptureUnavailableError reports that speech capture is not supported on this platform.
func NewCaptureUnavailableError() *AppError {
	return newError(ErrorTypeCaptureUnavailable, "CAPTURE_UNAVAILABLE", "speech capture is not available; use manual entry", nil)
}

// WrapError wraps err as errorType with message.
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return newError(errorType, errorType.String(), message, err)
}

func IsAppError(err error) bool {
	_, ok := AsAppError(err)
	return ok
}

// AsAppError finds the first AppError in err's chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	ok := errors.As(err, &appErr)
	return appErr, ok
}

func IsErrorType(err error, errorType ErrorType) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.IsType(errorType)
}

// GetUserMessage returns text fit to show the user. Infrastructure
// failures are replaced with a retry hint.
func GetUserMessage(err error) string {
	appErr, ok := AsAppError(err)
	if !ok {
		return err.Error()
	}
	switch appErr.Type {
	case ErrorTypeStorage:
		return "Your tasks could not be saved or loaded. Please try again."
	case ErrorTypeTimeout:
		return "The operation timed out. Please try again."
	case ErrorTypeCapture:
		return "We couldn't hear a task. Please try again."
	case "":
		return "An unexpected error occurred. Please try again."
	default:
		return appErr.Message
	}
}

func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError is false for user mistakes and permanent capability state.
func ShouldLogError(err error) bool {
	appErr, ok := AsAppError(err)
	if !ok {
		return true
	}
	switch appErr.Type {
	case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeInvalidInput, ErrorTypeUnauthenticated, ErrorTypeCaptureUnavailable:
		return false
	}
	return true
}

// IsRetryable reports whether the user can simply try the same action again.
func IsRetryable(err error) bool {
	switch {
	case IsErrorType(err, ErrorTypeCapture), IsErrorType(err, ErrorTypeStorage), IsErrorType(err, ErrorTypeTimeout):
		return true
	}
	return false
}
