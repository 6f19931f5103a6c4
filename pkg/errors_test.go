package pkg

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("message includes cause", func(t *testing.T) {
		cause := errors.New("dial tcp: refused")
		appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

		if appErr.Error() != "An internal error occurred: dial tcp: refused" {
			t.Fatalf("unexpected message: %s", appErr.Error())
		}
		if !errors.Is(appErr, cause) {
			t.Fatalf("expected errors.Is to match the cause")
		}
	})

	t.Run("simple error has no cause", func(t *testing.T) {
		appErr := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

		if appErr.Error() != "Invalid request" {
			t.Fatalf("unexpected message: %s", appErr.Error())
		}
		if appErr.Unwrap() != nil {
			t.Fatalf("expected nil cause")
		}
	})

	t.Run("http body never carries the cause", func(t *testing.T) {
		cause := errors.New("password=hunter2 rejected")
		appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

		data, err := json.Marshal(appErr.ToHTTPError())
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if string(data) != `{"code":"INTERNAL_ERROR","message":"An internal error occurred"}` {
			t.Fatalf("unexpected body: %s", data)
		}
	})
}
