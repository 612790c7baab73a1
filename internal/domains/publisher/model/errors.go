package model

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodePublisherNotFound   = "PUBLISHER_NOT_FOUND"
	CodeInvalidPublisherID  = "INVALID_PUBLISHER_ID"
	CodeInvalidPublisher    = "INVALID_PUBLISHER"
	CodeCreatePublisherErr  = "CREATE_PUBLISHER_ERROR"
	CodeListPublisherErr    = "LIST_PUBLISHER_ERROR"
	CodeGetPublisherErr     = "GET_PUBLISHER_ERROR"
	CodeUpdatePublisherErr  = "UPDATE_PUBLISHER_ERROR"
	CodeDeletePublisherErr  = "DELETE_PUBLISHER_ERROR"
	CodeInternalServerError = "INTERNAL_ERROR"
)

// PublisherError is the base error of the publisher domain
type PublisherError struct {
	Code    string // unique error code, e.g. "PUBLISHER_NOT_FOUND"
	Message string // human-readable message
	Details interface{}
	Err     error // underlying error
}

func (e *PublisherError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *PublisherError) Unwrap() error {
	return e.Err
}

// ============================================
// ERROR FACTORY FUNCTIONS
// ============================================

func NewPublisherNotFound(id int64) *PublisherError {
	return &PublisherError{
		Code:    CodePublisherNotFound,
		Message: fmt.Sprintf("Publisher with ID %d not found", id),
	}
}

func NewInvalidPublisherID(id string) *PublisherError {
	return &PublisherError{
		Code:    CodeInvalidPublisherID,
		Message: fmt.Sprintf("Invalid publisher ID: %s", id),
	}
}

// NewInvalidPublisher wraps request validation failures; details carries the per-field messages.
func NewInvalidPublisher(details interface{}, err error) *PublisherError {
	return &PublisherError{
		Code:    CodeInvalidPublisher,
		Message: "Publisher request is invalid",
		Details: details,
		Err:     err,
	}
}

func NewCreatePublisherError(err error) *PublisherError {
	return &PublisherError{
		Code:    CodeCreatePublisherErr,
		Message: "Failed to create publisher",
		Err:     err,
	}
}

func NewListPublisherError(err error) *PublisherError {
	return &PublisherError{
		Code:    CodeListPublisherErr,
		Message: "Failed to list publishers",
		Err:     err,
	}
}

func NewGetPublisherError(err error) *PublisherError {
	return &PublisherError{
		Code:    CodeGetPublisherErr,
		Message: "Failed to get publisher",
		Err:     err,
	}
}

func NewUpdatePublisherError(err error) *PublisherError {
	return &PublisherError{
		Code:    CodeUpdatePublisherErr,
		Message: "Failed to update publisher",
		Err:     err,
	}
}

func NewDeletePublisherError(err error) *PublisherError {
	return &PublisherError{
		Code:    CodeDeletePublisherErr,
		Message: "Failed to delete publisher",
		Err:     err,
	}
}

// ============================================
// ERROR CHECKING FUNCTIONS
// ============================================

func IsPublisherNotFound(err error) bool {
	return GetErrorCode(err) == CodePublisherNotFound
}

func IsDomainError(err error) bool {
	var pubErr *PublisherError
	return errors.As(err, &pubErr)
}

func GetErrorCode(err error) string {
	var pubErr *PublisherError
	if errors.As(err, &pubErr) {
		return pubErr.Code
	}
	return "UNKNOWN_ERROR"
}

// MapErrorToHTTP turns an error into (status, code, message, details).
// Failures of the store are never described to the client.
func MapErrorToHTTP(err error) (int, string, string, interface{}) {
	var pubErr *PublisherError
	if !errors.As(err, &pubErr) {
		return http.StatusInternalServerError, CodeInternalServerError, "Internal server error", nil
	}

	switch pubErr.Code {
	case CodePublisherNotFound:
		return http.StatusNotFound, pubErr.Code, pubErr.Message, nil
	case CodeInvalidPublisherID, CodeInvalidPublisher:
		return http.StatusBadRequest, pubErr.Code, pubErr.Message, pubErr.Details
	default:
		return http.StatusInternalServerError, CodeInternalServerError, "Internal server error", nil
	}
}
