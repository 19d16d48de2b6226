// Package apperr is the error taxonomy every service raises from the
// point of detection. Errors carry the HTTP status and a stable
// machine-readable kind; the message stays a plain human-readable
// string. A single boundary (the Fiber error handler) serializes them.
package apperr

import "net/http"

type Kind string

const (
	KindValidation   Kind = "VALIDATION"
	KindNotFound     Kind = "NOT_FOUND"
	KindConflict     Kind = "CONFLICT"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindForbidden    Kind = "FORBIDDEN"
	KindInternal     Kind = "INTERNAL"
)

type Error struct {
	Status  int
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(status int, kind Kind, message string) *Error {
	return &Error{Status: status, Kind: kind, Message: message}
}

func Validation(message string) *Error {
	return New(http.StatusBadRequest, KindValidation, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, KindNotFound, message)
}

// Conflict covers duplicate bookings, availability mismatches and
// email-in-use; these all answer 400 on this API.
func Conflict(message string) *Error {
	return New(http.StatusBadRequest, KindConflict, message)
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, KindUnauthorized, message)
}

func Forbidden(message string) *Error {
	return New(http.StatusForbidden, KindForbidden, message)
}
