package errors

import (
	"fmt"
)

// ErrorType is the category of an AppError. The value doubles as its log label.
type ErrorType string

const (
	ErrorTypeValidation         ErrorType = "validation"
	ErrorTypeNotFound           ErrorType = "not_found"
	ErrorTypeStorage            ErrorType = "storage"
	ErrorTypeInvalidInput       ErrorType = "invalid_input"
	ErrorTypeTimeout            ErrorType = "timeout"
	ErrorTypePermission         ErrorType = "permission"
	ErrorTypeUnauthenticated    ErrorType = "unauthenticated"
	ErrorTypeCapture            ErrorType = "capture"
	ErrorTypeCaptureUnavailable ErrorType = "capture_unavailable"
)

func (et ErrorType) String() string {
	if et == "" {
		return "unknown"
	}
	return string(et)
}

// AppError represents a structured application error
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
	Context map[string]interface{}
}

func (e *AppError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Type, e.Message)
	}
	return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches another AppError of the same type and code, so sentinel
// values can be compared with errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && e.Type == t.Type && e.Code == t.Code
}

func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

// WithContext sets key and returns e for chaining.
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = map[string]interface{}{}
	}
	e.Context[key] = value
	return e
}

// GetContext returns the value stored under key.
func (e *AppError) GetContext(key string) (interface{}, bool) {
	value, ok := e.Context[key]
	return value, ok
}
