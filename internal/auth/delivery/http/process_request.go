package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "meeting-room-booking/pkg/errors"
)

func (h *handler) processOAuthURLReq(c *gin.Context) (oauthURLReq, error) {
	var req oauthURLReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewHTTPError(pkgErrors.ErrBadRequest.Code, err.Error())
	}
	return req, nil
}

func (h *handler) processCallbackReq(c *gin.Context) (callbackReq, error) {
	var req callbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(pkgErrors.ErrBadRequest.Code, err.Error())
	}
	return req, nil
}

func (h *handler) processRefreshReq(c *gin.Context) (refreshReq, error) {
	var req refreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.ErrUnauthorized
	}
	return req, nil
}
