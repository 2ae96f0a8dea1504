package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures template schema violations.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ConfigError reports an override entry the layout engine refused to apply.
// It is diagnostic only: the offending entry is skipped and rendering continues.
type ConfigError struct {
	Field   string
	Attr    string
	Message string
}

// NewConfigError constructs a ConfigError for a field, optionally narrowed to one attribute.
func NewConfigError(field, attr, message string) error {
	return &ConfigError{Field: field, Attr: attr, Message: message}
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	if e.Attr != "" {
		return fmt.Sprintf("config error: field %q attribute %q: %s", e.Field, e.Attr, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("config error: field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}
