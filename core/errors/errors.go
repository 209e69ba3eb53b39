// Package errors provides the error types shared by the lexicon lookup tool.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrNotFound indicates a lookup yielded no record
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates user input that could not be parsed
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidMode indicates an operation mode other than 's' or 't'
	ErrInvalidMode = errors.New("invalid mode")
	// ErrDataLoad indicates a dataset could not be read or decoded
	ErrDataLoad = errors.New("data load failed")
)

// NotFoundError represents a lookup that matched no record
type NotFoundError struct {
	Resource string // Kind of record (e.g., "strong's number", "transliteration")
	ID       string // Key that was searched for
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// DataLoadError represents a dataset file that is missing, unreadable or malformed
type DataLoadError struct {
	Op   string // Operation being performed (e.g., "open", "decompress", "decode")
	Path string // Dataset path
	Err  error  // Underlying error
}

func (e *DataLoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s dataset %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s dataset: %v", e.Op, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrDataLoad) match any DataLoadError.
func (e *DataLoadError) Is(target error) bool {
	return target == ErrDataLoad
}

// InputParseError represents console input that could not be parsed
type InputParseError struct {
	Input   string // Raw input as typed
	Message string // Human-readable reason
	Err     error  // Underlying error, if any
}

func (e *InputParseError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Input, e.Message)
}

func (e *InputParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// Is lets errors.Is(err, ErrInvalidInput) match even when Err is set.
func (e *InputParseError) Is(target error) bool {
	return target == ErrInvalidInput
}

// InvalidModeError represents an operation mode that is neither 's' nor 't'
type InvalidModeError struct {
	Mode string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid mode %q: choose 's' or 't'", e.Mode)
}

func (e *InvalidModeError) Unwrap() error {
	return ErrInvalidMode
}

// ValidationError represents a configuration value that failed validation
type ValidationError struct {
	Field   string // Field name that failed validation
	Value   string // Value that failed validation
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// Helper functions for creating common errors

// NewNotFound creates a NotFoundError
func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		ID:       id,
	}
}

// NewDataLoad creates a DataLoadError
func NewDataLoad(op, path string, err error) *DataLoadError {
	return &DataLoadError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// NewInputParse creates an InputParseError
func NewInputParse(input, message string, err error) *InputParseError {
	return &InputParseError{
		Input:   input,
		Message: message,
		Err:     err,
	}
}

// NewInvalidMode creates an InvalidModeError
func NewInvalidMode(mode string) *InvalidModeError {
	return &InvalidModeError{Mode: mode}
}

// NewValidation creates a ValidationError
func NewValidation(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// IsSoft reports whether err is reported to the user without failing the run.
// Not-found lookups and invalid modes are soft; everything else is fatal.
func IsSoft(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidMode)
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
