package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Comments part parse errors
	ErrUnexpectedRoot   ErrorCode = "UNEXPECTED_ROOT"
	ErrMissingAttribute ErrorCode = "MISSING_ATTRIBUTE"
	ErrInvalidCellRef   ErrorCode = "INVALID_CELL_REF"
	ErrInvalidAuthorID  ErrorCode = "INVALID_AUTHOR_ID"
	ErrMissingChild     ErrorCode = "MISSING_CHILD"
	ErrEmptyCommentText ErrorCode = "EMPTY_COMMENT_TEXT"

	// Cell reference errors
	ErrCellRefSyntax ErrorCode = "CELL_REF_SYNTAX"

	// Document I/O errors
	ErrDocRead  ErrorCode = "DOC_READ"
	ErrDocWrite ErrorCode = "DOC_WRITE"
	ErrDocParse ErrorCode = "DOC_PARSE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// CellnotesError represents a structured error with code and details
type CellnotesError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CellnotesError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CellnotesError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *CellnotesError) Is(target error) bool {
	var targetErr *CellnotesError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CellnotesError with the given code and message
func New(code ErrorCode, message string) *CellnotesError {
	return &CellnotesError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CellnotesError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CellnotesError {
	return &CellnotesError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a CellnotesError
func Wrap(err error, code ErrorCode, message string) *CellnotesError {
	if err == nil {
		return nil
	}
	return &CellnotesError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CellnotesError {
	if err == nil {
		return nil
	}
	return &CellnotesError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *CellnotesError) WithDetail(key string, value interface{}) *CellnotesError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var cnErr *CellnotesError
	if errors.As(err, &cnErr) {
		return cnErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a CellnotesError
func GetErrorCode(err error) ErrorCode {
	var cnErr *CellnotesError
	if errors.As(err, &cnErr) {
		return cnErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a CellnotesError
func GetErrorDetails(err error) map[string]interface{} {
	var cnErr *CellnotesError
	if errors.As(err, &cnErr) {
		return cnErr.Details
	}
	return nil
}
