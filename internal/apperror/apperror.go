// Package apperror defines the error taxonomy shared by every layer.
// Lower layers return kind-tagged errors; handlers translate them to
// HTTP status codes in exactly one place.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for boundary translation.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuth
	KindNotFound
	KindUpstream
)

// Error is a kind-tagged error. Message is safe to return to clients;
// Cause is logged server-side only.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// New creates a kind-tagged error with a client-safe message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a cause that will be logged but never surfaced.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func Validation(message string) *Error { return New(KindValidation, message) }
func Auth(message string) *Error       { return New(KindAuth, message) }
func NotFound(message string) *Error   { return New(KindNotFound, message) }

// Upstream marks a failure of an external service, keeping the
// underlying message visible to the caller.
func Upstream(message string, cause error) *Error {
	return Wrap(KindUpstream, message, cause)
}

// Internal masks unexpected failures behind a generic message.
func Internal(cause error) *Error {
	return Wrap(KindInternal, "internal server error", cause)
}

// KindOf extracts the kind of err, defaulting to KindInternal for
// untagged errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the client-safe message for err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}

// Status maps an error kind to its HTTP status code.
func Status(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
