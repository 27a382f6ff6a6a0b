// Package errors provides structured error types for the typemap engine.
// All errors include a category, code, message, and retryable flag for
// consistent error handling across components.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies errors by engine component.
type ErrorCategory string

const (
	ErrCategoryMapping  ErrorCategory = "MAPPING"
	ErrCategoryLiteral  ErrorCategory = "LITERAL"
	ErrCategoryConfig   ErrorCategory = "CONFIG"
	ErrCategoryInternal ErrorCategory = "INTERNAL"
)

// Error codes for each category.
const (
	// Mapping codes
	CodeTypeNotSupported      = "TYPE_NOT_SUPPORTED"
	CodeStoreTypeNotSupported = "STORE_TYPE_NOT_SUPPORTED"
	CodeSizingUnsupported     = "SIZING_UNSUPPORTED"
	CodeInvalidFacets         = "INVALID_FACETS"

	// Literal codes
	CodeValueNotAssignable = "VALUE_NOT_ASSIGNABLE"

	// Config codes
	CodeInvalidConfig     = "INVALID_CONFIG"
	CodeInvalidUDTPattern = "INVALID_UDT_PATTERN"

	// Internal codes
	CodeUnexpected = "UNEXPECTED"
)

// TypeMapError is the structured error type used throughout the engine.
// Every operation in the engine is pure, synchronous, and in-memory, so no
// mapping error is ever retryable; the flag is kept so callers embedding the
// engine can treat these errors uniformly with their own.
type TypeMapError struct {
	Category  ErrorCategory
	Code      string
	Message   string
	Details   map[string]interface{}
	Cause     error
	Retryable bool
}

// Error returns a formatted error string.
func (e *TypeMapError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Category, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Category, e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *TypeMapError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches this error's category and code.
func (e *TypeMapError) Is(target error) bool {
	var t *TypeMapError
	if errors.As(target, &t) {
		return e.Category == t.Category && e.Code == t.Code
	}
	return false
}

// New creates a new TypeMapError.
func New(category ErrorCategory, code, message string) *TypeMapError {
	return &TypeMapError{
		Category: category,
		Code:     code,
		Message:  message,
	}
}

// Wrap creates a new TypeMapError wrapping an existing error.
func Wrap(category ErrorCategory, code, message string, cause error) *TypeMapError {
	return &TypeMapError{
		Category: category,
		Code:     code,
		Message:  message,
		Cause:    cause,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *TypeMapError) WithDetails(details map[string]interface{}) *TypeMapError {
	cp := *e
	cp.Details = details
	return &cp
}

// IsRetryable checks whether an error (or its chain) is retryable.
func IsRetryable(err error) bool {
	var te *TypeMapError
	if errors.As(err, &te) {
		return te.Retryable
	}
	return false
}

// GetCategory extracts the error category from an error chain.
// Returns empty string if the error is not a TypeMapError.
func GetCategory(err error) ErrorCategory {
	var te *TypeMapError
	if errors.As(err, &te) {
		return te.Category
	}
	return ""
}

// GetCode extracts the error code from an error chain.
// Returns empty string if the error is not a TypeMapError.
func GetCode(err error) string {
	var te *TypeMapError
	if errors.As(err, &te) {
		return te.Code
	}
	return ""
}

// IsNotSupported reports whether err says no mapping exists for the
// requested CLR type or store type name.
func IsNotSupported(err error) bool {
	code := GetCode(err)
	return code == CodeTypeNotSupported || code == CodeStoreTypeNotSupported
}

// IsInvalidOperation reports whether err says an operation was invoked on a
// mapping variant that does not support it.
func IsInvalidOperation(err error) bool {
	return GetCode(err) == CodeSizingUnsupported
}

// Convenience constructors for common errors.

func NewMappingError(code, message string) *TypeMapError {
	return New(ErrCategoryMapping, code, message)
}

func NewLiteralError(code, message string) *TypeMapError {
	return New(ErrCategoryLiteral, code, message)
}

func NewConfigError(code, message string, cause error) *TypeMapError {
	return Wrap(ErrCategoryConfig, code, message, cause)
}

func NewInternalError(message string, cause error) *TypeMapError {
	return Wrap(ErrCategoryInternal, CodeUnexpected, message, cause)
}
