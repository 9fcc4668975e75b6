package http

import (
	"github.com/gin-gonic/gin"

	"meeting-room-booking/internal/model"
	pkgErrors "meeting-room-booking/pkg/errors"
)

// processScope returns the caller identity set by the Auth middleware.
func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

func (h *handler) processListEventsReq(c *gin.Context) (listEventsReq, error) {
	var req listEventsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewHTTPError(pkgErrors.ErrBadRequest.Code, err.Error())
	}
	return req, nil
}

func (h *handler) processAvailableRoomsReq(c *gin.Context) (availableRoomsReq, error) {
	var req availableRoomsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewHTTPError(pkgErrors.ErrBadRequest.Code, err.Error())
	}
	return req, nil
}

func (h *handler) processCreateEventReq(c *gin.Context) (bookingReq, error) {
	var req bookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(pkgErrors.ErrBadRequest.Code, err.Error())
	}
	return req, nil
}

func (h *handler) processUpdateEventReq(c *gin.Context) (updateEventReq, error) {
	var req updateEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(pkgErrors.ErrBadRequest.Code, err.Error())
	}
	return req, nil
}

func (h *handler) processDeleteEventReq(c *gin.Context) (string, error) {
	id := c.Query("id")
	if id == "" {
		return "", errMissingID
	}
	return id, nil
}
