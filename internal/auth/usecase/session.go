package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"meeting-room-booking/internal/auth"
	"meeting-room-booking/internal/model"
	"meeting-room-booking/pkg/jwt"
)

// Refresh rotates the token pair of a live session and extends its lifetime.
// Only the most recently issued refresh token is accepted.
func (uc *implUseCase) Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	claims, err := uc.tokens.Verify(refreshToken, jwt.TypeRefresh)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	sess, ok := uc.sessions.Get(claims.SessionID)
	if !ok {
		return auth.TokenPair{}, auth.ErrSessionNotFound
	}
	if claims.ID != sess.refreshID {
		uc.l.Warnf(ctx, "uc.Refresh: rotated refresh token reused for %s", sess.Email)
		return auth.TokenPair{}, fmt.Errorf("%w: refresh token was already used", auth.ErrInvalidToken)
	}

	pair, err := uc.issue(&sess)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Refresh issue: %v", err)
		return auth.TokenPair{}, err
	}
	uc.sessions.Add(sess.ID, sess)
	return pair, nil
}

// Authenticate resolves an access token to the scope of its live session.
func (uc *implUseCase) Authenticate(ctx context.Context, accessToken string) (model.Scope, error) {
	claims, err := uc.tokens.Verify(accessToken, jwt.TypeAccess)
	if err != nil {
		return model.Scope{}, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}

	sess, ok := uc.sessions.Peek(claims.SessionID)
	if !ok {
		return model.Scope{}, auth.ErrSessionNotFound
	}

	return model.Scope{
		SessionID:   sess.ID,
		Email:       sess.Email,
		Domain:      sess.Domain,
		Name:        sess.Name,
		TokenSource: sess.tokenSource,
	}, nil
}

// Logout ends the caller's session. Ending an unknown session is not an error.
func (uc *implUseCase) Logout(ctx context.Context, sc model.Scope) error {
	if sc.SessionID == "" {
		return nil
	}
	uc.sessions.Remove(sc.SessionID)
	uc.l.Infof(ctx, "uc.Logout: session closed for %s", sc.Email)
	return nil
}

// issue signs a new pair and records the refresh token id on sess.
func (uc *implUseCase) issue(sess *liveSession) (auth.TokenPair, error) {
	claims := jwt.Claims{SessionID: sess.ID, Email: sess.Email, Domain: sess.Domain}

	access, err := uc.tokens.Sign(claims, jwt.TypeAccess, uc.cfg.AccessTTL)
	if err != nil {
		return auth.TokenPair{}, err
	}
	refreshID := uuid.NewString()
	claims.ID = refreshID
	refresh, err := uc.tokens.Sign(claims, jwt.TypeRefresh, uc.cfg.RefreshTTL)
	if err != nil {
		return auth.TokenPair{}, err
	}
	sess.refreshID = refreshID

	return auth.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int(uc.cfg.AccessTTL.Seconds()),
	}, nil
}
