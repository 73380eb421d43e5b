package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultDescriptionMaxLength bounds task descriptions when no limit is configured.
const DefaultDescriptionMaxLength = 500

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsWithinLength reports whether the trimmed s has at most max runes.
func (v *Validator) IsWithinLength(s string, max int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) <= max
}

// HasNoControlCharacters rejects newlines, tabs and other control runes.
func (v *Validator) HasNoControlCharacters(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) < 0
}

// IsValidOwnerID checks an identifier supplied by the identity provider.
func (v *Validator) IsValidOwnerID(id string) bool {
	return v.IsNonEmptyString(id) && id == strings.TrimSpace(id) && v.HasNoControlCharacters(id)
}
