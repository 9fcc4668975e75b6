package apiclient

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"meeting-room-booking/pkg/log"
)

const (
	defaultTimeout    = 15 * time.Second
	defaultDevTimeout = 60 * time.Second

	HeaderClientEnv = "X-Client-Env"
)

// Routes handed to the Navigator.
const (
	RouteSignIn = "/signin"
	RouteError  = "/error"
)

// Config configures the client.
type Config struct {
	// BaseURL of the booking API, e.g. http://localhost:8080.
	BaseURL string

	// Environment is sent as X-Client-Env. "development" selects DevTimeout.
	Environment string

	Timeout    time.Duration
	DevTimeout time.Duration

	// HTTPClient is an optional custom HTTP client (for testing).
	HTTPClient *http.Client
}

// TokenStore persists the session between calls.
type TokenStore interface {
	Tokens() (TokenPair, bool)
	SetTokens(TokenPair) error
	Clear() error
}

// Navigator moves the user to another view or opens a URL.
type Navigator interface {
	Navigate(target string)
}

// Bridge obtains an authorization code out of band, e.g. through a browser
// extension's identity API.
type Bridge interface {
	Authorize(ctx context.Context, authURL string) (code string, err error)
}

// Client is the single authenticated gateway to the booking API.
type Client struct {
	l       log.Logger
	http    *http.Client
	baseURL string
	env     string
	tokens  TokenStore
	nav     Navigator
}

// New creates a Client. A nil TokenStore keeps tokens in memory and a nil
// Navigator discards navigation.
func New(cfg Config, tokens TokenStore, nav Navigator, l log.Logger) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		if cfg.Environment == "development" {
			timeout = cfg.DevTimeout
			if timeout <= 0 {
				timeout = defaultDevTimeout
			}
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	if tokens == nil {
		tokens = &MemoryTokenStore{}
	}
	if nav == nil {
		nav = NavigatorFunc(func(string) {})
	}
	if l == nil {
		l = log.NewNop()
	}

	return &Client{
		l:       l,
		http:    httpClient,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		env:     cfg.Environment,
		tokens:  tokens,
		nav:     nav,
	}
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(target string)

func (f NavigatorFunc) Navigate(target string) { f(target) }

// MemoryTokenStore keeps tokens for the life of the process.
type MemoryTokenStore struct {
	mu   sync.Mutex
	pair TokenPair
	set  bool
}

func (s *MemoryTokenStore) Tokens() (TokenPair, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pair, s.set
}

func (s *MemoryTokenStore) SetTokens(p TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair, s.set = p, true
	return nil
}

func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair, s.set = TokenPair{}, false
	return nil
}
