package cli

import (
	stderrors "errors"
	"fmt"

	"say-to-plan/internal/errors"
	"say-to-plan/internal/validation"
)

// captureHints explain capture failure reasons a user can act on.
var captureHints = map[string]string{
	"no_speech":         "type the task on one line, or raise STP_VOICE_CAPTURE_TIMEOUT",
	"permission_denied": "allow microphone access and retry",
}

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to %s: %w", operation, &userError{msg: eh.message(err), err: err})
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if err == nil {
		return nil
	}
	return &userError{msg: eh.message(err), err: err}
}

func (eh *ErrorHandler) message(err error) string {
	msg := errors.GetUserMessage(err)
	if appErr, ok := errors.AsAppError(err); ok && appErr.IsType(errors.ErrorTypeValidation) {
		var ve *validation.ValidationError
		if stderrors.As(err, &ve) {
			msg = ve.GetUserFriendlyMessage()
		}
	}
	if appErr, ok := errors.AsAppError(err); ok && appErr.IsType(errors.ErrorTypeCapture) {
		if reason, ok := appErr.GetContext("reason"); ok {
			if hint, ok := captureHints[fmt.Sprint(reason)]; ok {
				msg += " (" + hint + ")"
			}
		}
	}
	if errors.IsErrorType(err, errors.ErrorTypeUnauthenticated) {
		msg += " (set STP_USER or pass --user)"
	}
	return msg
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	return validation.IsValidationError(err) || errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotFound)
}

// IsStorageError checks if an error came from the persistence layer
func (eh *ErrorHandler) IsStorageError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeStorage) || errors.IsErrorType(err, errors.ErrorTypeTimeout)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}

// userError shows msg while keeping err inspectable with errors.Is/As.
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg }
func (e *userError) Unwrap() error { return e.err }
