package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

// Config holds all configuration options for say-to-plan
type Config struct {
	Database    DatabaseConfig
	Time        TimeConfig
	Validation  ValidationConfig
	Voice       VoiceConfig
	Identity    IdentityConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"STP_DB_DIR"`
	Filename       string        `env:"STP_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"STP_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"STP_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"STP_DB_DIR_PERMISSIONS"`
}

// TimeConfig holds time formatting configuration
type TimeConfig struct {
	DisplayFormat   string `env:"STP_TIME_DISPLAY_FORMAT"`
	DateInputFormat string `env:"STP_DATE_INPUT_FORMAT"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	DescriptionMaxLength int `env:"STP_VALIDATION_DESCRIPTION_MAX"`
}

// VoiceConfig holds speech capture configuration. The locale is fixed per install.
type VoiceConfig struct {
	Enabled        bool          `env:"STP_VOICE_ENABLED"`
	Locale         string        `env:"STP_VOICE_LOCALE"`
	CaptureTimeout time.Duration `env:"STP_VOICE_CAPTURE_TIMEOUT"`
}

// IdentityConfig carries the owner id handed over by the identity provider.
// An empty User means nobody is signed in.
type IdentityConfig struct {
	User string `env:"STP_USER"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"STP_APP_TIMEOUT"`
	Verbose bool          `env:"STP_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Database: DatabaseConfig{
			Dir:            filepath.Join(homeDir, ".stp"),
			Filename:       "stp.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Time: TimeConfig{
			DisplayFormat:   "2006-01-02 15:04",
			DateInputFormat: "2006-01-02",
		},
		Validation: ValidationConfig{
			DescriptionMaxLength: 500,
		},
		Voice: VoiceConfig{
			Enabled:        true,
			Locale:         "en-US",
			CaptureTimeout: 30 * time.Second,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// LoadFromEnvironment loads configuration from environment variables.
// Values that do not parse keep their current setting.
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("STP_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("STP_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("STP_DB_QUERY_TIMEOUT"); timeout != "" {
		c.Database.QueryTimeout = ParseDurationWithFallback(timeout, c.Database.QueryTimeout)
	}
	if timeout := os.Getenv("STP_DB_WRITE_TIMEOUT"); timeout != "" {
		c.Database.WriteTimeout = ParseDurationWithFallback(timeout, c.Database.WriteTimeout)
	}
	if perms := os.Getenv("STP_DB_DIR_PERMISSIONS"); perms != "" {
		c.Database.DirPermissions = ParseUint32WithFallback(perms, 8, c.Database.DirPermissions)
	}

	// Time configuration
	if format := os.Getenv("STP_TIME_DISPLAY_FORMAT"); format != "" {
		c.Time.DisplayFormat = format
	}
	if format := os.Getenv("STP_DATE_INPUT_FORMAT"); format != "" {
		c.Time.DateInputFormat = format
	}

	// Validation configuration
	if maxLen := os.Getenv("STP_VALIDATION_DESCRIPTION_MAX"); maxLen != "" {
		c.Validation.DescriptionMaxLength = ParseIntWithFallback(maxLen, c.Validation.DescriptionMaxLength)
	}

	// Voice configuration
	if enabled := os.Getenv("STP_VOICE_ENABLED"); enabled != "" {
		c.Voice.Enabled = ParseBoolWithFallback(enabled, c.Voice.Enabled)
	}
	if locale := os.Getenv("STP_VOICE_LOCALE"); locale != "" {
		c.Voice.Locale = locale
	}
	if timeout := os.Getenv("STP_VOICE_CAPTURE_TIMEOUT"); timeout != "" {
		c.Voice.CaptureTimeout = ParseDurationWithFallback(timeout, c.Voice.CaptureTimeout)
	}

	// Identity
	if user := os.Getenv("STP_USER"); user != "" {
		c.Identity.User = strings.TrimSpace(user)
	}

	// Application configuration
	if timeout := os.Getenv("STP_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("STP_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Time.DisplayFormat == "" {
		return &ConfigError{Field: "time.display_format", Message: "display format cannot be empty"}
	}
	if c.Time.DateInputFormat == "" {
		return &ConfigError{Field: "time.date_input_format", Message: "date input format cannot be empty"}
	}

	if c.Validation.DescriptionMaxLength < 1 {
		return &ConfigError{Field: "validation.description_max_length", Message: "description maximum length must be at least 1"}
	}

	if c.Voice.Locale == "" {
		return &ConfigError{Field: "voice.locale", Message: "voice locale cannot be empty"}
	}
	if c.Voice.CaptureTimeout < 0 {
		return &ConfigError{Field: "voice.capture_timeout", Message: "capture timeout cannot be negative"}
	}

	if c.Identity.User != "" && strings.IndexFunc(c.Identity.User, unicode.IsControl) >= 0 {
		return &ConfigError{Field: "identity.user", Message: "user id cannot contain control characters"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
