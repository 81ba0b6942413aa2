// Package errors provides custom error types for the partsmerge system.
// These errors enable programmatic error checking and carry enough context
// to report discovery and verification failures precisely.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the partsmerge system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrDiscovery indicates that input discovery could not locate the
	// required files
	ErrDiscovery = errors.New("discovery failed")

	// ErrInvariant indicates that a merge invariant was violated
	ErrInvariant = errors.New("invariant violated")
)

// DiscoveryError reports that fewer input files of a required kind were
// found than the reconciliation pass needs.
type DiscoveryError struct {
	Kind      string // "invoice", "product", "csv"
	Directory string
	Found     int
	Required  int
}

// Error implements the error interface
func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("need >=%d %s files in %s; found %d", e.Required, e.Kind, e.Directory, e.Found)
}

// Is implements errors.Is support
func (e *DiscoveryError) Is(target error) bool {
	return target == ErrDiscovery
}

// NewDiscoveryError creates a new DiscoveryError
func NewDiscoveryError(kind, directory string, found, required int) *DiscoveryError {
	return &DiscoveryError{Kind: kind, Directory: directory, Found: found, Required: required}
}

// InvariantError reports a failed merge verification check. Invariant names
// the check ("new-row-count", "old-data-immutability", "mcu-population");
// Key and Column are populated when a specific cell diverged.
type InvariantError struct {
	Invariant string
	Key       string
	Column    string
	BaseValue string
	GotValue  string
	Message   string
}

// Error implements the error interface
func (e *InvariantError) Error() string {
	if e.Key != "" && e.Column != "" {
		return fmt.Sprintf("invariant %s violated: column %q differs for key %s: base=%q merged=%q",
			e.Invariant, e.Column, e.Key, e.BaseValue, e.GotValue)
	}
	return fmt.Sprintf("invariant %s violated: %s", e.Invariant, e.Message)
}

// Is implements errors.Is support
func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariant
}

// NewInvariantError creates a new InvariantError
func NewInvariantError(invariant, message string) *InvariantError {
	return &InvariantError{Invariant: invariant, Message: message}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "csv", "yaml"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "open", "stat"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsDiscovery checks if an error is a discovery failure
func IsDiscovery(err error) bool {
	return errors.Is(err, ErrDiscovery)
}

// IsInvariant checks if an error is an invariant violation
func IsInvariant(err error) bool {
	return errors.Is(err, ErrInvariant)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
