package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an error that knows which HTTP status it maps to. Message is what the
// client sees; Err is kept for logs only.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Message != "" && e.Err != nil:
		return e.Message + ": " + e.Err.Error()
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	case e.Status != 0:
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, message string, err error) *Error {
	return &Error{Status: status, Message: message, Err: err}
}

func BadRequest(format string, args ...any) *Error {
	return New(http.StatusBadRequest, fmt.Sprintf(format, args...), nil)
}

func NotFound(format string, args ...any) *Error {
	return New(http.StatusNotFound, fmt.Sprintf(format, args...), nil)
}

func Unauthorized(format string, args ...any) *Error {
	return New(http.StatusUnauthorized, fmt.Sprintf(format, args...), nil)
}

func Forbidden(format string, args ...any) *Error {
	return New(http.StatusForbidden, fmt.Sprintf(format, args...), nil)
}

// Internal hides err from the client behind a generic message.
func Internal(err error) *Error {
	return New(http.StatusInternalServerError, "Server Error", err)
}

// MissingReference is the 400 returned when a referenced document does not exist.
func MissingReference(entity string) *Error {
	return New(http.StatusBadRequest, entity+" not found", nil)
}

// As extracts an *Error from err, wrapping unknown errors as internal.
func As(err error) *Error {
	if err == nil {
		return nil
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Internal(err)
}

// StatusOf returns the HTTP status for err (500 when untyped).
func StatusOf(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return As(err).Status
}
