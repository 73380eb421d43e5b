package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.IsNonEmptyString("Buy milk"))
	assert.True(t, v.IsNonEmptyString("  x  "))
	assert.False(t, v.IsNonEmptyString(""))
	assert.False(t, v.IsNonEmptyString(" \t\n "))
}

func TestValidator_IsWithinLength(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name string
		s    string
		max  int
		want bool
	}{
		{"under", "milk", 5, true},
		{"exact", "milks", 5, true},
		{"over", "milkshake", 5, false},
		{"surrounding space ignored", "  milks  ", 5, true},
		{"counts runes not bytes", "café!", 5, true},
		{"long", strings.Repeat("a", 501), DefaultDescriptionMaxLength, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.IsWithinLength(tt.s, tt.max))
		})
	}
}

func TestValidator_HasNoControlCharacters(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.HasNoControlCharacters("Call mom at 5"))
	assert.False(t, v.HasNoControlCharacters("Call\nmom"))
	assert.False(t, v.HasNoControlCharacters("Call\tmom"))
	assert.False(t, v.HasNoControlCharacters("bell\a"))
}

func TestValidator_IsValidOwnerID(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.IsValidOwnerID("alice"))
	assert.True(t, v.IsValidOwnerID("auth0|5f8c"))
	assert.False(t, v.IsValidOwnerID(""))
	assert.False(t, v.IsValidOwnerID(" alice"))
	assert.False(t, v.IsValidOwnerID("ali\x00ce"))
}
