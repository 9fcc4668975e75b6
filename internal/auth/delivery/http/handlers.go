package http

import (
	"github.com/gin-gonic/gin"

	"meeting-room-booking/internal/auth"
	"meeting-room-booking/internal/model"
	"meeting-room-booking/pkg/response"
)

// OAuthURL godoc
// @Summary     Get the Google consent URL
// @Tags        Auth
// @Produce     json
// @Param       client query string false "web or extension"
// @Success     200 {object} response.Resp{data=oauthURLResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /auth/oauth-url [GET]
func (h *handler) OAuthURL(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOAuthURLReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	url, err := h.uc.OAuthURL(ctx, auth.ParseClient(req.Client))
	if err != nil {
		h.l.Errorf(ctx, "uc.OAuthURL: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, oauthURLResp{URL: url})
}

// Callback godoc
// @Summary     Complete the OAuth login
// @Description Exchanges the authorization code and opens a session.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body callbackReq true "Authorization code"
// @Success     200 {object} response.Resp{data=tokenResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Account not allowed"
// @Router      /auth/oauth/callback [POST]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCallbackReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.HandleCallback(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.HandleCallback: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLoginResp(out))
}

// RefreshToken godoc
// @Summary     Refresh the token pair
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body refreshReq true "Refresh token"
// @Success     200 {object} response.Resp{data=tokenResp}
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /auth/refresh-token [POST]
func (h *handler) RefreshToken(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRefreshReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	pair, err := h.uc.Refresh(ctx, req.RefreshToken)
	if err != nil {
		h.l.Debugf(ctx, "uc.Refresh: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTokenResp(pair))
}

// ValidateSession godoc
// @Summary     Validate the session
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp{data=bool}
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /auth/validate-session [GET]
func (h *handler) ValidateSession(c *gin.Context) {
	response.OK(c, true)
}

// Logout godoc
// @Summary     Log out
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	sc, _ := model.GetScopeFromContext(ctx)
	if err := h.uc.Logout(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.Logout: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
