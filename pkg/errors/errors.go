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

// ValidationError captures configuration validation issues.
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

// StoreError reports a failed read or write of persisted preferences.
type StoreError struct {
	Op   string
	Path string
	Err  error
}

// NewStoreError constructs a StoreError for the given operation ("load", "save", "watch").
func NewStoreError(op, path string, err error) error {
	return &StoreError{Op: op, Path: path, Err: err}
}

func (e *StoreError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("store error: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("store error: %s: %v", e.Op, e.Err)
}

// Unwrap exposes the root error.
func (e *StoreError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// QueryDecodeError indicates a query parameter whose percent-encoding could not be decoded.
// Callers are expected to recover from it by treating the parameter as empty.
type QueryDecodeError struct {
	Param string
	Raw   string
	Err   error
}

// NewQueryDecodeError constructs a QueryDecodeError.
func NewQueryDecodeError(param, raw string, err error) error {
	return &QueryDecodeError{Param: param, Raw: raw, Err: err}
}

func (e *QueryDecodeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("query decode error [%s=%s]: %v", e.Param, e.Raw, e.Err)
}

// Unwrap exposes the underlying error.
func (e *QueryDecodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
