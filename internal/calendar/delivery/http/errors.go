package http

import (
	"errors"
	"net/http"

	"meeting-room-booking/internal/calendar"
	pkgErrors "meeting-room-booking/pkg/errors"
)

var (
	errInvalidStartTime = pkgErrors.NewHTTPError(http.StatusBadRequest, "startTime must be an RFC 3339 timestamp")
	errInvalidEndTime   = pkgErrors.NewHTTPError(http.StatusBadRequest, "endTime must be an RFC 3339 timestamp")
	errMissingID        = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors become a generic 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, calendar.ErrInvalidTimeRange),
		errors.Is(err, calendar.ErrInvalidDuration),
		errors.Is(err, calendar.ErrInvalidSeats),
		errors.Is(err, calendar.ErrRoomRequired),
		errors.Is(err, calendar.ErrEventIDRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, calendar.ErrRoomNotFound),
		errors.Is(err, calendar.ErrEventNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, calendar.ErrEventNotEditable),
		errors.Is(err, calendar.ErrProviderForbidden):
		return pkgErrors.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, calendar.ErrProviderAuth):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return pkgErrors.ErrInternalServerError
}
