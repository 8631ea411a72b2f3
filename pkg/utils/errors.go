package utils

import (
	"fmt"
)

// ErrorType represents different types of errors
type ErrorType string

const (
	ErrorTypeUsage         ErrorType = "usage"
	ErrorTypeValidation    ErrorType = "validation"
	ErrorTypeNotFound      ErrorType = "not_found"
	ErrorTypeIO            ErrorType = "io"
	ErrorTypeExtraction    ErrorType = "extraction"
	ErrorTypeSelfOverwrite ErrorType = "self_overwrite"
	ErrorTypeSystem        ErrorType = "system"
)

// AppError represents an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target
func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return e.Type == t.Type
	}
	return false
}

// NewError creates a new application error
func NewError(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewUsageError creates a usage error (bad or unknown arguments)
func NewUsageError(message string, cause error) *AppError {
	return NewError(ErrorTypeUsage, message, cause)
}

// NewValidationError creates a validation error
func NewValidationError(message string, cause error) *AppError {
	return NewError(ErrorTypeValidation, message, cause)
}

// NewNotFoundError creates a not found error
func NewNotFoundError(message string, cause error) *AppError {
	return NewError(ErrorTypeNotFound, message, cause)
}

// NewIOError creates an I/O error
func NewIOError(message string, cause error) *AppError {
	return NewError(ErrorTypeIO, message, cause)
}

// NewExtractionError creates a per-file extraction error.
// Extraction errors are the only recoverable kind: the pipeline logs a
// warning and skips the file.
func NewExtractionError(message string, cause error) *AppError {
	return NewError(ErrorTypeExtraction, message, cause)
}

// NewSelfOverwriteError creates a self-overwrite guard error
func NewSelfOverwriteError(message string, cause error) *AppError {
	return NewError(ErrorTypeSelfOverwrite, message, cause)
}

// NewSystemError creates a system error
func NewSystemError(message string, cause error) *AppError {
	return NewError(ErrorTypeSystem, message, cause)
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}

	// If it's already an AppError, preserve the original type unless explicitly overridden
	if appErr, ok := err.(*AppError); ok && errorType == "" {
		return &AppError{
			Type:    appErr.Type,
			Message: message + ": " + appErr.Message,
			Cause:   appErr.Cause,
		}
	}

	if errorType == "" {
		errorType = ErrorTypeSystem
	}

	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   err,
	}
}

// IsRecoverable reports whether the run may continue after this error.
// Only per-file extraction failures are recoverable; everything else
// aborts the run.
func IsRecoverable(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type == ErrorTypeExtraction
	}
	return false
}

// GetErrorType extracts the error type from an error
func GetErrorType(err error) ErrorType {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type
	}
	return ErrorTypeSystem
}
