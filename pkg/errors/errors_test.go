package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	pkgErrors "meeting-room-booking/pkg/errors"
)

func TestAsHTTPError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", pkgErrors.NewHTTPError(http.StatusConflict, "taken"))

	httpErr, ok := pkgErrors.AsHTTPError(wrapped)
	if !ok {
		t.Fatalf("expected wrapped HTTPError to be found")
	}
	if httpErr.Code != http.StatusConflict || httpErr.Error() != "taken" {
		t.Errorf("unexpected error: %+v", httpErr)
	}

	if _, ok := pkgErrors.AsHTTPError(fmt.Errorf("plain")); ok {
		t.Errorf("plain error must not be reported as HTTPError")
	}
}
