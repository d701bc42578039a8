package client

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a stock API failure. The distinction matters most on
// destructive operations: a user deleting a watchlist needs to know whether
// the server rejected the request or was never reached at all.
type ErrorKind string

const (
	// KindNetwork is a transport/connectivity failure — potentially retryable.
	KindNetwork ErrorKind = "network"
	// KindValidation is a request rejected by a business rule — not
	// retryable without changing the input.
	KindValidation ErrorKind = "validation"
	// KindNotFound means the referenced entity no longer exists server-side.
	KindNotFound ErrorKind = "not_found"
)

// APIError carries the failure classification alongside the message.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Validationf builds a validation-kind error without a round trip. Used for
// rejections the portal can make locally, like a blank watchlist name.
func Validationf(format string, args ...interface{}) *APIError {
	return &APIError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the classification of err, or "" if err carries none.
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

// IsNetwork reports whether err is a transport/connectivity failure.
func IsNetwork(err error) bool { return KindOf(err) == KindNetwork }

// IsValidation reports whether err is a business-rule rejection.
func IsValidation(err error) bool { return KindOf(err) == KindValidation }

// IsNotFound reports whether err means the entity no longer exists.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }
