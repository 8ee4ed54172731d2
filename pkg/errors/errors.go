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

// ValidationError captures layout configuration issues.
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

// PluginError indicates issues within panel plugin registration or activation.
type PluginError struct {
	Plugin  string
	Slot    string
	Message string
	Err     error
}

// NewPluginError constructs a PluginError for the given plugin name.
func NewPluginError(plugin string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &PluginError{Plugin: plugin, Message: message, Err: err}
}

// NewSlotPluginError constructs a PluginError bound to a layout slot.
func NewSlotPluginError(plugin, slot string, err error) error {
	pe := NewPluginError(plugin, err).(*PluginError)
	pe.Slot = slot
	return pe
}

func (e *PluginError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Plugin != "" && e.Slot != "":
		return fmt.Sprintf("plugin error [%s@%s]: %s", e.Plugin, e.Slot, e.Message)
	case e.Plugin != "":
		return fmt.Sprintf("plugin error [%s]: %s", e.Plugin, e.Message)
	default:
		return fmt.Sprintf("plugin error: %s", e.Message)
	}
}

// Unwrap exposes the underlying error.
func (e *PluginError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UsageError reports a wiring defect: an API used outside the scope it
// requires. It is never recoverable at runtime.
type UsageError struct {
	Op      string
	Message string
}

// NewUsageError constructs a UsageError for the named operation.
func NewUsageError(op, message string) error {
	return &UsageError{Op: op, Message: message}
}

func (e *UsageError) Error() string {
	if e == nil {
		return ""
	}
	if e.Op != "" {
		return fmt.Sprintf("usage error: %s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("usage error: %s", e.Message)
}
