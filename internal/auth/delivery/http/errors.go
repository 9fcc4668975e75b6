package http

import (
	"errors"
	"net/http"

	"meeting-room-booking/internal/auth"
	pkgErrors "meeting-room-booking/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidCode),
		errors.Is(err, auth.ErrInvalidState):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, errMessage(err))
	case errors.Is(err, auth.ErrEmailNotVerified),
		errors.Is(err, auth.ErrDomainNotAllowed):
		return pkgErrors.NewHTTPError(http.StatusForbidden, errMessage(err))
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, errMessage(err))
	}
	return pkgErrors.ErrInternalServerError
}

// errMessage returns the sentinel text without wrapped provider details.
func errMessage(err error) string {
	for _, sentinel := range []error{
		auth.ErrInvalidCode, auth.ErrInvalidState, auth.ErrEmailNotVerified,
		auth.ErrDomainNotAllowed, auth.ErrInvalidToken, auth.ErrSessionNotFound,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
