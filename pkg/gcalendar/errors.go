package gcalendar

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

var (
	ErrNotFound     = errors.New("gcalendar: not found")
	ErrForbidden    = errors.New("gcalendar: forbidden")
	ErrUnauthorized = errors.New("gcalendar: unauthorized")
)

// wrap annotates err with op and maps well-known Google API status codes to
// the package sentinels so callers can use errors.Is.
func wrap(op string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusNotFound, http.StatusGone:
			return fmt.Errorf("%s: %w: %v", op, ErrNotFound, err)
		case http.StatusForbidden:
			return fmt.Errorf("%s: %w: %v", op, ErrForbidden, err)
		case http.StatusUnauthorized:
			return fmt.Errorf("%s: %w: %v", op, ErrUnauthorized, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
