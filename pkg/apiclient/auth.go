package apiclient

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

// ValidateSession reports whether the stored access token is accepted.
func (c *Client) ValidateSession(ctx context.Context) bool {
	if _, ok := c.tokens.Tokens(); !ok {
		return false
	}
	var valid bool
	if err := c.do(ctx, request{method: http.MethodGet, path: "/auth/validate-session"}, &valid); err != nil {
		c.l.Debugf(ctx, "apiclient.ValidateSession: %v", err)
		return false
	}
	return valid
}

// RefreshToken trades the stored refresh token for a new pair and stores it.
// It returns nil on any failure.
func (c *Client) RefreshToken(ctx context.Context) *TokenPair {
	current, ok := c.tokens.Tokens()
	if !ok || current.RefreshToken == "" {
		return nil
	}

	var pair TokenPair
	err := c.do(ctx, request{
		method:  http.MethodPost,
		path:    pathRefresh,
		body:    map[string]string{"refreshToken": current.RefreshToken},
		noRetry: true,
	}, &pair)
	if err != nil || pair.AccessToken == "" {
		c.l.Warnf(ctx, "apiclient.RefreshToken: %v", err)
		return nil
	}
	if err := c.tokens.SetTokens(pair); err != nil {
		c.l.Errorf(ctx, "apiclient.RefreshToken SetTokens: %v", err)
		return nil
	}
	return &pair
}

// Logout ends the server session when possible and always clears the
// stored tokens.
func (c *Client) Logout(ctx context.Context) {
	if _, ok := c.tokens.Tokens(); ok {
		if err := c.do(ctx, request{method: http.MethodPost, path: pathLogout, noRetry: true}, nil); err != nil {
			c.l.Debugf(ctx, "apiclient.Logout: %v", err)
		}
	}
	if err := c.tokens.Clear(); err != nil {
		c.l.Errorf(ctx, "apiclient.Logout Clear: %v", err)
	}
}

type oauthURL struct {
	URL string `json:"url"`
}

// GetOAuthURL fetches the consent URL. client is "web" or "extension".
func (c *Client) GetOAuthURL(ctx context.Context, client string) Envelope[string] {
	q := url.Values{}
	if client != "" {
		q.Set("client", client)
	}
	env := call[oauthURL](ctx, c, request{method: http.MethodGet, path: "/auth/oauth-url", query: q, noRetry: true})
	return Envelope[string]{Status: env.Status, Message: env.Message, Data: env.Data.URL, Code: env.Code}
}

// HandleOAuthCallback exchanges an authorization code and stores the
// resulting session.
func (c *Client) HandleOAuthCallback(ctx context.Context, code, state string) Envelope[LoginResult] {
	req := request{
		method:  http.MethodPost,
		path:    "/auth/oauth/callback",
		body:    map[string]string{"code": code, "state": state},
		noRetry: true,
	}
	env := call[LoginResult](ctx, c, req)
	if !env.OK() {
		return env
	}
	if err := c.tokens.SetTokens(env.Data.TokenPair); err != nil {
		return failure[LoginResult](ctx, c, req, err)
	}
	return env
}

// Login sends the user to the consent page.
func (c *Client) Login(ctx context.Context) Envelope[string] {
	env := c.GetOAuthURL(ctx, "web")
	if env.OK() {
		c.nav.Navigate(env.Data)
	}
	return env
}

// LoginViaBridge runs the extension flow: the bridge returns the code for
// the consent URL and the code is exchanged here.
func (c *Client) LoginViaBridge(ctx context.Context, bridge Bridge) Envelope[LoginResult] {
	urlEnv := c.GetOAuthURL(ctx, "extension")
	if !urlEnv.OK() {
		return Envelope[LoginResult]{Status: urlEnv.Status, Message: urlEnv.Message, Code: urlEnv.Code}
	}

	req := request{method: http.MethodPost, path: "/auth/oauth/callback"}
	if bridge == nil {
		return failure[LoginResult](ctx, c, req, errors.New("apiclient: no bridge"))
	}
	code, err := bridge.Authorize(ctx, urlEnv.Data)
	if err != nil {
		return failure[LoginResult](ctx, c, req, err)
	}

	var state string
	if u, err := url.Parse(urlEnv.Data); err == nil {
		state = u.Query().Get("state")
	}
	return c.HandleOAuthCallback(ctx, code, state)
}
