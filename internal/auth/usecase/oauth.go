package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"meeting-room-booking/internal/auth"
	"meeting-room-booking/pkg/gcalendar"
)

// OAuthURL issues a one-time state and returns the consent URL carrying it.
func (uc *implUseCase) OAuthURL(ctx context.Context, client auth.Client) (string, error) {
	state := uuid.NewString()
	uc.states.Add(state, client)
	return uc.provider.AuthCodeURL(client, state), nil
}

// HandleCallback exchanges the code, checks the account and opens a session.
// A state, when given, must have been issued by OAuthURL and is consumed.
func (uc *implUseCase) HandleCallback(ctx context.Context, input auth.CallbackInput) (auth.LoginOutput, error) {
	client := input.Client
	if input.State != "" {
		issuedFor, ok := uc.states.Get(input.State)
		if !ok {
			return auth.LoginOutput{}, auth.ErrInvalidState
		}
		uc.states.Remove(input.State)
		client = issuedFor
	}

	tok, err := uc.provider.Exchange(ctx, client, input.Code)
	if err != nil {
		uc.l.Warnf(ctx, "uc.HandleCallback Exchange: %v", err)
		return auth.LoginOutput{}, fmt.Errorf("%w: %v", auth.ErrInvalidCode, err)
	}

	ts := uc.provider.TokenSource(client, tok)
	info, err := uc.provider.UserInfo(ctx, ts)
	if err != nil {
		uc.l.Errorf(ctx, "uc.HandleCallback UserInfo: %v", err)
		return auth.LoginOutput{}, err
	}
	if !info.VerifiedEmail {
		return auth.LoginOutput{}, auth.ErrEmailNotVerified
	}

	domain := workspaceDomain(info)
	if !uc.domainAllowed(domain) {
		uc.l.Warnf(ctx, "uc.HandleCallback: %s rejected, domain %q not allowed", info.Email, domain)
		return auth.LoginOutput{}, auth.ErrDomainNotAllowed
	}

	sess := liveSession{
		Session: auth.Session{
			ID:        uuid.NewString(),
			Email:     info.Email,
			Domain:    domain,
			Name:      info.Name,
			Avatar:    info.Picture,
			Client:    client,
			Token:     tok,
			CreatedAt: uc.now(),
		},
		tokenSource: ts,
	}

	pair, err := uc.issue(&sess)
	if err != nil {
		uc.l.Errorf(ctx, "uc.HandleCallback issue: %v", err)
		return auth.LoginOutput{}, err
	}
	uc.sessions.Add(sess.ID, sess)

	uc.l.Infof(ctx, "uc.HandleCallback: session opened for %s", sess.Email)
	return auth.LoginOutput{
		TokenPair: pair,
		Email:     sess.Email,
		Name:      sess.Name,
		Avatar:    sess.Avatar,
	}, nil
}

func (uc *implUseCase) domainAllowed(domain string) bool {
	if len(uc.cfg.AllowedDomains) == 0 {
		return true
	}
	for _, d := range uc.cfg.AllowedDomains {
		if strings.EqualFold(strings.TrimSpace(d), domain) {
			return true
		}
	}
	return false
}

// workspaceDomain prefers the hosted domain Google reports and falls back to
// the domain of the email address.
func workspaceDomain(info gcalendar.UserInfo) string {
	if info.HostedDomain != "" {
		return strings.ToLower(info.HostedDomain)
	}
	if i := strings.LastIndex(info.Email, "@"); i >= 0 {
		return strings.ToLower(info.Email[i+1:])
	}
	return ""
}
