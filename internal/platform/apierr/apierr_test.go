package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAsKeepsTypedErrorsThroughWrapping(t *testing.T) {
	base := MissingReference("State")
	wrapped := fmt.Errorf("create division: %w", base)

	got := As(wrapped)
	if got != base {
		t.Fatalf("As lost the typed error: %#v", got)
	}
	if got.Status != http.StatusBadRequest {
		t.Fatalf("status: got=%d want=%d", got.Status, http.StatusBadRequest)
	}
	if got.Message != "State not found" {
		t.Fatalf("message: got=%q", got.Message)
	}
}

func TestAsWrapsUnknownErrorsAsInternal(t *testing.T) {
	cause := errors.New("connection reset")
	got := As(cause)
	if got.Status != http.StatusInternalServerError {
		t.Fatalf("status: got=%d want=500", got.Status)
	}
	if got.Message != "Server Error" {
		t.Fatalf("message leaked cause: %q", got.Message)
	}
	if !errors.Is(got, cause) {
		t.Fatalf("cause not reachable through Unwrap")
	}
}

func TestStatusOf(t *testing.T) {
	cases := map[error]int{
		nil:                           http.StatusOK,
		NotFound("Booth not found"):   http.StatusNotFound,
		Forbidden("no"):               http.StatusForbidden,
		Unauthorized("no token"):      http.StatusUnauthorized,
		errors.New("boom"):            http.StatusInternalServerError,
		BadRequest("bad %s", "input"): http.StatusBadRequest,
	}
	for err, want := range cases {
		if got := StatusOf(err); got != want {
			t.Fatalf("StatusOf(%v): got=%d want=%d", err, got, want)
		}
	}
}
