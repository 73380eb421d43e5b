package validation

import "strings"

// TaskValidator validates task input before the store is mutated.
type TaskValidator struct {
	validator *Validator
	maxLength int
}

// NewTaskValidator creates a task validator. A non-positive maxLength uses the default.
func NewTaskValidator(maxLength int) *TaskValidator {
	if maxLength <= 0 {
		maxLength = DefaultDescriptionMaxLength
	}
	return &TaskValidator{
		validator: NewValidator(),
		maxLength: maxLength,
	}
}

// ValidateDescription checks a description for creation or update.
func (tv *TaskValidator) ValidateDescription(description string) error {
	validationError := NewValidationError()
	trimmed := strings.TrimSpace(description)

	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("description")
		return validationError
	}
	if !tv.validator.IsWithinLength(trimmed, tv.maxLength) {
		validationError.AddInvalidLengthError("description", trimmed, tv.maxLength)
	}
	if !tv.validator.HasNoControlCharacters(trimmed) {
		validationError.AddInvalidCharacterError("description", trimmed)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateTaskForCreation validates a task for creation
func (tv *TaskValidator) ValidateTaskForCreation(description string) error {
	return tv.ValidateDescription(description)
}

// ValidateTaskForUpdate validates the id and new description of an edit.
func (tv *TaskValidator) ValidateTaskForUpdate(id, description string) error {
	validationError := NewValidationError()

	validationError.Merge(tv.ValidateTaskID(id))
	validationError.Merge(tv.ValidateDescription(description))

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id string) error {
	if strings.TrimSpace(id) == "" {
		validationError := NewValidationError()
		validationError.AddRequiredError("task_id")
		return validationError
	}
	return nil
}

// ValidateOwnerID validates the signed-in owner identifier.
func (tv *TaskValidator) ValidateOwnerID(ownerID string) error {
	if tv.validator.IsValidOwnerID(ownerID) {
		return nil
	}
	validationError := NewValidationError()
	if strings.TrimSpace(ownerID) == "" {
		validationError.AddRequiredError("owner_id")
	} else {
		validationError.AddInvalidFormatError("owner_id", ownerID, "free of surrounding whitespace and control characters")
	}
	return validationError
}
