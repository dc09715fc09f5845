package models

import (
	"errors"
	"fmt"
)

// Error codes carried by AppError.
const (
	CodeRequiredField = "REQUIRED_FIELD"
	CodeNotFound      = "NOT_FOUND"
	CodeValidation    = "VALIDATION_ERROR"
	CodeInternal      = "INTERNAL_ERROR"
)

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewRequiredFieldError reports a missing mandatory field or a zero identifier.
func NewRequiredFieldError(message string) *AppError {
	return &AppError{
		Code:    CodeRequiredField,
		Message: message,
	}
}

// NewNotFoundError reports a reference to an entity that does not exist.
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: message,
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// IsRequiredField reports whether err carries a REQUIRED_FIELD AppError.
func IsRequiredField(err error) bool {
	return hasCode(err, CodeRequiredField)
}

// IsNotFound reports whether err carries a NOT_FOUND AppError.
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

func hasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}
