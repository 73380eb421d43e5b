package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Rule names the check a field failed.
type Rule string

const (
	RuleRequired   Rule = "required"
	RuleFormat     Rule = "format"
	RuleMaxLength  Rule = "max_length"
	RuleCharacters Rule = "characters"
)

// FieldError is one failed check on one input field.
type FieldError struct {
	Field   string
	Rule    Rule
	Message string
	Value   interface{}
}

func (fe *FieldError) Error() string {
	return fe.Message
}

// ValidationError collects every field problem found in one pass so the
// user can fix them together.
type ValidationError struct {
	Errors []FieldError
}

func NewValidationError() *ValidationError {
	return &ValidationError{}
}

func (ve *ValidationError) Error() string {
	if len(ve.Errors) == 0 {
		return "validation failed"
	}
	return "validation failed: " + ve.join("; ")
}

// IsValidationError checks if err is or wraps a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func (ve *ValidationError) HasErrors() bool {
	return len(ve.Errors) > 0
}

// Merge appends the problems of other, if it is a ValidationError.
func (ve *ValidationError) Merge(other error) {
	var o *ValidationError
	if errors.As(other, &o) {
		ve.Errors = append(ve.Errors, o.Errors...)
	}
}

func (ve *ValidationError) add(field string, rule Rule, value interface{}, format string, args ...interface{}) {
	ve.Errors = append(ve.Errors, FieldError{
		Field:   field,
		Rule:    rule,
		Message: fmt.Sprintf(format, args...),
		Value:   value,
	})
}

func (ve *ValidationError) AddRequiredError(field string) {
	ve.add(field, RuleRequired, nil, "%s is required", field)
}

func (ve *ValidationError) AddInvalidFormatError(field string, value interface{}, expected string) {
	ve.add(field, RuleFormat, value, "%s must be %s", field, expected)
}

// AddInvalidLengthError records a value longer than max characters.
func (ve *ValidationError) AddInvalidLengthError(field string, value interface{}, max int) {
	ve.add(field, RuleMaxLength, value, "%s must be at most %d characters long", field, max)
}

func (ve *ValidationError) AddInvalidCharacterError(field string, value interface{}) {
	ve.add(field, RuleCharacters, value, "%s must be a single line of printable text", field)
}

// For returns the problems recorded for field.
func (ve *ValidationError) For(field string) []FieldError {
	var out []FieldError
	for _, fe := range ve.Errors {
		if fe.Field == field {
			out = append(out, fe)
		}
	}
	return out
}

// GetUserFriendlyMessage lists the problems without the error prefix.
func (ve *ValidationError) GetUserFriendlyMessage() string {
	if len(ve.Errors) == 0 {
		return "Input validation failed"
	}
	return ve.join("; ")
}

func (ve *ValidationError) join(sep string) string {
	msgs := make([]string, len(ve.Errors))
	for i := range ve.Errors {
		msgs[i] = ve.Errors[i].Message
	}
	return strings.Join(msgs, sep)
}
