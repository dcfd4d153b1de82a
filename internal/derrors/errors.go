// Package derrors provides custom error types for wsfind.
// Each type carries a stable code so callers can branch on the failure class
// without matching message text.
package derrors

import (
	"fmt"
)

// WsfindError is the base interface for all wsfind errors
type WsfindError interface {
	error
	// Code returns a unique error code for programmatic error handling
	Code() string
}

// baseError provides common functionality for all wsfind errors
type baseError struct {
	code    string
	message string
	cause   error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Code() string {
	return e.code
}

func (e *baseError) Unwrap() error {
	return e.cause
}

// InvalidRootError is returned when the search folder does not exist
type InvalidRootError struct {
	baseError
	Path string
}

// NewInvalidRootError creates a new invalid root error.
// The message is the one printed to the user verbatim.
func NewInvalidRootError(path string) *InvalidRootError {
	return &InvalidRootError{
		baseError: baseError{
			code:    "INVALID_ROOT",
			message: fmt.Sprintf("Folder %q does not exist", path),
		},
		Path: path,
	}
}

// ConfigurationError represents errors in configuration files
type ConfigurationError struct {
	baseError
	Path string
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(path string, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		baseError: baseError{
			code:    "CONFIG_ERROR",
			message: message,
			cause:   cause,
		},
		Path: path,
	}
}

// ValidationError represents invalid user input
type ValidationError struct {
	baseError
	Field string
}

// NewValidationError creates a new validation error
func NewValidationError(field string, message string, cause error) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			code:    "VALIDATION_ERROR",
			message: message,
			cause:   cause,
		},
		Field: field,
	}
}

// WalkError represents a filesystem failure during directory traversal
type WalkError struct {
	baseError
	Path string
}

// NewWalkError creates a new walk error
func NewWalkError(path string, cause error) *WalkError {
	return &WalkError{
		baseError: baseError{
			code:    "WALK_ERROR",
			message: fmt.Sprintf("failed to walk %s", path),
			cause:   cause,
		},
		Path: path,
	}
}
