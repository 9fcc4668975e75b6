package http

import "meeting-room-booking/internal/auth"

// --- Request DTOs ---

type oauthURLReq struct {
	Client string `form:"client" binding:"omitempty,oneof=web extension"`
}

type callbackReq struct {
	Code   string `json:"code"   binding:"required"`
	State  string `json:"state"`
	Client string `json:"client" binding:"omitempty,oneof=web extension"`
}

func (r callbackReq) toInput() auth.CallbackInput {
	return auth.CallbackInput{
		Code:   r.Code,
		State:  r.State,
		Client: auth.ParseClient(r.Client),
	}
}

type refreshReq struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// --- Response DTOs ---

type oauthURLResp struct {
	URL string `json:"url"`
}

type tokenResp struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"`
	Email        string `json:"email,omitempty"`
	Name         string `json:"name,omitempty"`
	Avatar       string `json:"avatar,omitempty"`
}

func (h *handler) newLoginResp(out auth.LoginOutput) tokenResp {
	resp := h.newTokenResp(out.TokenPair)
	resp.Email = out.Email
	resp.Name = out.Name
	resp.Avatar = out.Avatar
	return resp
}

func (h *handler) newTokenResp(pair auth.TokenPair) tokenResp {
	return tokenResp{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}
}
