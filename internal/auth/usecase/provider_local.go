package usecase

import (
	"context"
	"net/mail"
	"net/url"
	"strings"

	"golang.org/x/oauth2"

	"meeting-room-booking/internal/auth"
	"meeting-room-booking/pkg/gcalendar"
)

// NewLocalProvider returns a Provider for development against the mock
// calendar. The authorization code is taken to be the user's email address,
// so no Google client is needed.
func NewLocalProvider(consentURL string) Provider {
	return localProvider{consentURL: consentURL}
}

type localProvider struct {
	consentURL string
}

func (p localProvider) AuthCodeURL(client auth.Client, state string) string {
	q := url.Values{}
	q.Set("client", string(client))
	q.Set("state", state)
	return p.consentURL + "?" + q.Encode()
}

func (localProvider) Exchange(ctx context.Context, client auth.Client, code string) (*oauth2.Token, error) {
	addr, err := mail.ParseAddress(code)
	if err != nil {
		return nil, auth.ErrInvalidCode
	}
	return &oauth2.Token{AccessToken: addr.Address, TokenType: "local"}, nil
}

func (localProvider) TokenSource(client auth.Client, tok *oauth2.Token) oauth2.TokenSource {
	return oauth2.StaticTokenSource(tok)
}

func (localProvider) UserInfo(ctx context.Context, ts oauth2.TokenSource) (gcalendar.UserInfo, error) {
	tok, err := ts.Token()
	if err != nil {
		return gcalendar.UserInfo{}, err
	}
	email := tok.AccessToken
	name, domain, _ := strings.Cut(email, "@")
	return gcalendar.UserInfo{
		ID:            email,
		Email:         email,
		VerifiedEmail: true,
		Name:          name,
		HostedDomain:  domain,
	}, nil
}
