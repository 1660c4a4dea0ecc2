package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("wraps the cause", func(t *testing.T) {
		cause := errors.New("dial tcp: refused")
		appErr := NewDomainError("UPSTREAM_DOWN", "Service unavailable", cause, http.StatusServiceUnavailable)

		if !errors.Is(appErr, cause) {
			t.Fatal("expected errors.Is to reach the wrapped cause")
		}
		if appErr.Error() != "UPSTREAM_DOWN: dial tcp: refused" {
			t.Fatalf("unexpected error string: %s", appErr.Error())
		}
	})

	t.Run("simple error uses the message", func(t *testing.T) {
		appErr := NewDomainErrorSimple("INVALID_STATUS", "Unknown status value", http.StatusBadRequest)
		if appErr.Error() != "INVALID_STATUS: Unknown status value" {
			t.Fatalf("unexpected error string: %s", appErr.Error())
		}
	})

	t.Run("http body never carries the cause", func(t *testing.T) {
		appErr := NewInternalError(errors.New("pk violation on backup_submissions"))
		body := appErr.ToHTTPError()
		if body.Code != "INTERNAL_ERROR" {
			t.Fatalf("unexpected code: %s", body.Code)
		}
		if body.Message != "An internal error occurred" {
			t.Fatalf("internal detail leaked: %s", body.Message)
		}
	})
}
