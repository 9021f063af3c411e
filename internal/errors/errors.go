// Package errors provides standardized error handling for binviz.
// It defines the error kinds shared by the converters and the shells, plus
// helpers for creating, wrapping and surfacing errors to the user.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// User-facing messages. These are surfaced verbatim by every shell.
const (
	MsgDecimalRange = "Please enter a valid number between 0 and 255."
	MsgEmptyText    = "Please enter some text."
	MsgNoFile       = "No file selected."
	MsgReadFile     = "Error reading file."
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Validation error kinds
	InvalidNumber
	EmptyText
	UnsupportedCharacter
	// I/O error kinds
	NoFileSelected
	FileReadFailed
	// Config error kinds
	InvalidConfig
	ConfigNotFound
)

// Common error constants for frequently occurring errors
var (
	ErrInvalidNumber = NewValidationError(MsgDecimalRange, "decimal", InvalidNumber, nil)
	ErrEmptyText     = NewValidationError(MsgEmptyText, "text", EmptyText, nil)
	ErrNoFile        = NewIOError(MsgNoFile, "", NoFileSelected, nil)
	ErrInvalidConfig = NewConfigError("invalid configuration", "", InvalidConfig, nil)
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// Message returns the message without any wrapped cause.
func (e *ApplicationError) Message() string {
	return e.msg
}

// ValidationError reports bad or missing user input.
type ValidationError struct {
	ApplicationError
	field string
}

// NewValidationError creates a new validation error for the named input field
func NewValidationError(msg string, field string, kind ErrorKind, err error) *ValidationError {
	return &ValidationError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		field: field,
	}
}

// Field returns the input field the error refers to
func (e *ValidationError) Field() string {
	return e.field
}

// Is matches validation errors of the same kind, so callers can compare
// against the Err* values.
func (e *ValidationError) Is(target error) bool {
	var other *ValidationError
	if !errors.As(target, &other) {
		return false
	}
	return other.kind == e.kind
}

// IOError represents errors related to reading user-selected files
type IOError struct {
	ApplicationError
	path string
}

// NewIOError creates a new I/O error
func NewIOError(msg string, path string, kind ErrorKind, err error) *IOError {
	return &IOError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the I/O error message
func (e *IOError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *IOError) Path() string {
	return e.path
}

// Is matches I/O errors of the same kind.
func (e *IOError) Is(target error) bool {
	var other *IOError
	if !errors.As(target, &other) {
		return false
	}
	return other.kind == e.kind
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}

// IsIO checks if the error is a file read error
func IsIO(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

// UserMessage returns the text shown in the error alert. Validation and I/O
// errors render their message without the wrapped cause; anything else
// renders its full Error string.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr.Message()
	}
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return ioErr.Message()
	}
	return err.Error()
}
