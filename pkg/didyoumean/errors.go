package didyoumean

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates that the match options or the key extraction
// descriptor are invalid. All configuration failures unwrap to it.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigError reports an invalid option value.
type ConfigError struct {
	// Field is the option with the invalid value
	Field string
	// Details provides additional context
	Details string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid configuration for '%s': %s", e.Field, e.Details)
	}
	return fmt.Sprintf("invalid configuration: %s", e.Details)
}

// Unwrap returns the underlying sentinel error.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// KeyError reports a failed key extraction on a candidate item.
type KeyError struct {
	// Path is the key path that failed, in dotted form
	Path string
	// Details provides additional context
	Details string
}

// Error implements the error interface.
func (e *KeyError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("extracting key at '%s': %s", e.Path, e.Details)
	}
	return fmt.Sprintf("extracting key: %s", e.Details)
}

// Unwrap returns the underlying sentinel error.
func (e *KeyError) Unwrap() error {
	return ErrInvalidConfig
}
