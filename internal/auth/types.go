package auth

import (
	"time"

	"golang.org/x/oauth2"
)

// Client names the front end that started a login.
type Client string

const (
	ClientWeb       Client = "web"
	ClientExtension Client = "extension"
)

// ParseClient maps an unknown or empty client to ClientWeb.
func ParseClient(s string) Client {
	if Client(s) == ClientExtension {
		return ClientExtension
	}
	return ClientWeb
}

// Session is a signed-in user. Sessions live in memory only.
type Session struct {
	ID        string
	Email     string
	Domain    string
	Name      string
	Avatar    string
	Client    Client
	Token     *oauth2.Token
	CreatedAt time.Time
}

// TokenPair is issued on login and on refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int // seconds until the access token expires
}

// --- UseCase Inputs ---

type CallbackInput struct {
	Code   string
	State  string
	Client Client
}

// --- UseCase Outputs ---

type LoginOutput struct {
	TokenPair
	Email  string
	Name   string
	Avatar string
}
