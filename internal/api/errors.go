package api

// errors.go defines the error codes used by the gateway API

import "fmt"

// APIError represents a structured error from the api package.
type APIError struct {
	// code is the API error code
	code ErrorCode

	// message is a human-readable error message
	message string

	// wrapped is the optional underlying error
	wrapped error
}

func (e *APIError) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", e.message, e.wrapped)
	}
	return e.message
}

func (e *APIError) Code() ErrorCode { return e.code }
func (e *APIError) Unwrap() error   { return e.wrapped }

// ErrorCode is used in errors raised by the API layer (request decoding, field validation, middleware)
type ErrorCode string

const (
	// ErrCodeMalformedRequest is used when the request body is not valid JSON or does not match the request schema
	ErrCodeMalformedRequest ErrorCode = "malformed_request"

	// ErrCodeInvalidInput is used when a required field is missing or a numeric field is out of range
	ErrCodeInvalidInput ErrorCode = "invalid_input"

	// ErrCodeNotFound is used for requests to unknown routes
	ErrCodeNotFound ErrorCode = "not_found"

	// ErrCodeMethodNotAllowed is used when the route exists but not for the request method
	ErrCodeMethodNotAllowed ErrorCode = "method_not_allowed"

	// ErrCodeRateLimitExceeded is used when the rate limit is exceeded
	// - this is only used in the middleware
	ErrCodeRateLimitExceeded ErrorCode = "rate_limit_exceeded"

	// ErrCodeRequestTooLarge is used when the request body is too large
	// - this is only used in the middleware
	ErrCodeRequestTooLarge ErrorCode = "request_too_large"

	// ErrCodeInternal is used when an unexpected server side error occurs
	ErrCodeInternal ErrorCode = "internal"
)

// NewMalformedRequestError creates an error for malformed requests.
func NewMalformedRequestError(msg string) error {
	return &APIError{code: ErrCodeMalformedRequest, message: msg}
}

// WrapMalformedRequestError wraps an existing error (typically from the JSON decoder) as a malformed request error.
func WrapMalformedRequestError(err error, msg string) error {
	return &APIError{code: ErrCodeMalformedRequest, message: msg, wrapped: err}
}

// NewInvalidInputError creates an error for a missing or out of range request field.
//
// Identifier fields (public keys, secrets, signatures) are validated by the crypto package
// and return crypto errors instead.
func NewInvalidInputError(msg string) error {
	return &APIError{code: ErrCodeInvalidInput, message: msg}
}

// WrapInvalidInputError wraps an existing error as an invalid input error.
func WrapInvalidInputError(err error, msg string) error {
	return &APIError{code: ErrCodeInvalidInput, message: msg, wrapped: err}
}

// NewNotFoundError creates a not found error.
func NewNotFoundError(msg string) error {
	return &APIError{code: ErrCodeNotFound, message: msg}
}

// NewMethodNotAllowedError creates a method not allowed error.
func NewMethodNotAllowedError(msg string) error {
	return &APIError{code: ErrCodeMethodNotAllowed, message: msg}
}

// NewRateLimitError creates a rate limit exceeded error.
func NewRateLimitError(msg string) error {
	return &APIError{code: ErrCodeRateLimitExceeded, message: msg}
}

// NewRequestTooLargeError creates a request too large error.
func NewRequestTooLargeError(msg string) error {
	return &APIError{code: ErrCodeRequestTooLarge, message: msg}
}

// NewInternalError creates an internal error for unexpected failures.
// The message is returned to the client, so it must not carry details of the failure.
func NewInternalError(msg string) error {
	return &APIError{code: ErrCodeInternal, message: msg}
}
