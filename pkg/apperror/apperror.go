// Package apperror is the single error taxonomy handlers return. Each Kind
// maps to exactly one HTTP status; the conversion happens once, in the
// Fiber error handler.
package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"QR-Code-Tracker/models"
)

type Kind uint8

const (
	KindInternal Kind = iota
	KindValidation
	KindAuthentication
	KindNotFound
	KindConflict
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindDecode:
		return "decode"
	default:
		return "internal"
	}
}

// Status returns the HTTP status code for the kind. Conflicts are reported
// as 400 and ownership mismatches as 404 so that responses never reveal
// whether another user's record exists.
func (k Kind) Status() int {
	switch k {
	case KindValidation, KindConflict, KindDecode:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind       Kind
	Message    string
	Violations []*models.FieldViolation
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(msg string, violations ...*models.FieldViolation) *Error {
	return &Error{Kind: KindValidation, Message: msg, Violations: violations}
}

func Unauthorized(msg string, err error) *Error {
	return &Error{Kind: KindAuthentication, Message: msg, Err: err}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func Decode(msg string, err error) *Error {
	return &Error{Kind: KindDecode, Message: msg, Err: err}
}

func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// As extracts an *Error from err, wrapping anything else as internal.
func As(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("Internal server error", err)
}
