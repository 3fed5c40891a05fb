// Package errors defines the structured error type used across stagecheck.
// Every failure carries a stable code so callers and tests can tell a
// missing tool from a failed harness run without matching on messages.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Toolchain resolution errors
	ErrToolNotFound   ErrorCode = "TOOL_NOT_FOUND"
	ErrLibdirNotFound ErrorCode = "LIBDIR_NOT_FOUND"
	ErrEnvUnset       ErrorCode = "ENV_UNSET"

	// Child process errors
	ErrProcessStart  ErrorCode = "PROCESS_START"
	ErrProcessFailed ErrorCode = "PROCESS_FAILED"
)

// CheckError represents a structured error with code and details
type CheckError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CheckError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CheckError) Unwrap() error {
	return e.Wrapped
}

// Is matches any *CheckError with the same code
func (e *CheckError) Is(target error) bool {
	var targetErr *CheckError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CheckError with the given code and message
func New(code ErrorCode, message string) *CheckError {
	return &CheckError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CheckError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CheckError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *CheckError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CheckError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *CheckError) WithDetail(key string, value interface{}) *CheckError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var checkErr *CheckError
	if errors.As(err, &checkErr) {
		return checkErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a CheckError
func GetErrorCode(err error) ErrorCode {
	var checkErr *CheckError
	if errors.As(err, &checkErr) {
		return checkErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a CheckError
func GetErrorDetails(err error) map[string]interface{} {
	var checkErr *CheckError
	if errors.As(err, &checkErr) {
		return checkErr.Details
	}
	return nil
}
