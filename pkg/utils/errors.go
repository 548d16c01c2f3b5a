package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// Core failure taxonomy. Orchestration code matches these with errors.Is and
// converts them into typed error-variant results at the report boundary.
var (
	ErrUnsupportedFormat     = errors.New("unsupported file format")
	ErrExtractionFailed      = errors.New("failed to extract text from file")
	ErrEmptyInput            = errors.New("no extractable text in document")
	ErrConnectionUnavailable = errors.New("model server unreachable")
	ErrTimeout               = errors.New("model server request timed out")
	ErrMalformedOutput       = errors.New("model output was not valid JSON")
)

// ServerError is a non-success response from the model server. The body is
// passed through as opaque diagnostic text and never parsed.
type ServerError struct {
	Status int
	Body   string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("model server returned status %d: %s", e.Status, e.Body)
}

// CustomError represents a custom application error
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e *CustomError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

// Common error constructors
func NewBadRequestError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

func NewInternalServerError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusInternalServerError,
		Message: message,
	}
}

func NewValidationError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: "Validation failed",
		Detail:  detail,
	}
}

// NewExtractionError returns an error for documents the parsers cannot read
func NewExtractionError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: "Failed to parse file",
		Detail:  detail,
	}
}

// NewFileTooLargeError returns an error for uploads over the configured size limit
func NewFileTooLargeError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusRequestEntityTooLarge,
		Message: message,
	}
}
