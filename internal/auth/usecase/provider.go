package usecase

import (
	"context"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"meeting-room-booking/internal/auth"
	"meeting-room-booking/pkg/gcalendar"
)

// Provider is the OAuth identity provider.
type Provider interface {
	AuthCodeURL(client auth.Client, state string) string
	Exchange(ctx context.Context, client auth.Client, code string) (*oauth2.Token, error)
	TokenSource(client auth.Client, tok *oauth2.Token) oauth2.TokenSource
	UserInfo(ctx context.Context, ts oauth2.TokenSource) (gcalendar.UserInfo, error)
}

// GoogleConfig holds the OAuth client registered with Google.
type GoogleConfig struct {
	ClientID             string
	ClientSecret         string
	RedirectURL          string
	ExtensionRedirectURL string
}

type googleProvider struct {
	web       *oauth2.Config
	extension *oauth2.Config
}

// NewGoogleProvider creates a Provider backed by Google OAuth 2.0.
func NewGoogleProvider(cfg GoogleConfig) Provider {
	base := oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes:       gcalendar.Scopes,
		Endpoint:     google.Endpoint,
	}
	ext := base
	if cfg.ExtensionRedirectURL != "" {
		ext.RedirectURL = cfg.ExtensionRedirectURL
	}
	return &googleProvider{web: &base, extension: &ext}
}

func (p *googleProvider) config(client auth.Client) *oauth2.Config {
	if client == auth.ClientExtension {
		return p.extension
	}
	return p.web
}

func (p *googleProvider) AuthCodeURL(client auth.Client, state string) string {
	return p.config(client).AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
}

func (p *googleProvider) Exchange(ctx context.Context, client auth.Client, code string) (*oauth2.Token, error) {
	return p.config(client).Exchange(ctx, code)
}

// TokenSource refreshes the Google token on demand. The background context
// keeps the source usable after the request that created it ends.
func (p *googleProvider) TokenSource(client auth.Client, tok *oauth2.Token) oauth2.TokenSource {
	return p.config(client).TokenSource(context.Background(), tok)
}

func (p *googleProvider) UserInfo(ctx context.Context, ts oauth2.TokenSource) (gcalendar.UserInfo, error) {
	client, err := gcalendar.NewClientFromTokenSource(ctx, ts)
	if err != nil {
		return gcalendar.UserInfo{}, err
	}
	return client.UserInfo(ctx)
}
