package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/oauth2"

	"meeting-room-booking/internal/auth"
	"meeting-room-booking/pkg/jwt"
	"meeting-room-booking/pkg/log"
)

const (
	defaultAccessTTL   = 15 * time.Minute
	defaultRefreshTTL  = 7 * 24 * time.Hour
	defaultMaxSessions = 10000
	stateTTL           = 10 * time.Minute
)

// Config tunes token lifetimes and the workspace restriction.
type Config struct {
	AccessTTL      time.Duration
	RefreshTTL     time.Duration
	MaxSessions    int
	AllowedDomains []string // empty allows any Google account
}

type liveSession struct {
	auth.Session
	tokenSource oauth2.TokenSource
	refreshID   string // id of the only refresh token still accepted
}

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	l        log.Logger
	provider Provider
	tokens   *jwt.Manager
	cfg      Config
	now      func() time.Time

	mu       sync.Mutex // serializes refresh rotation
	sessions *expirable.LRU[string, liveSession]
	states   *expirable.LRU[string, auth.Client]
}

var _ auth.UseCase = (*implUseCase)(nil)

// New creates a new auth UseCase implementation.
func New(l log.Logger, provider Provider, tokens *jwt.Manager, cfg Config) *implUseCase {
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = defaultAccessTTL
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = defaultRefreshTTL
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = defaultMaxSessions
	}

	return &implUseCase{
		l:        l,
		provider: provider,
		tokens:   tokens,
		cfg:      cfg,
		now:      time.Now,
		sessions: expirable.NewLRU[string, liveSession](cfg.MaxSessions, nil, cfg.RefreshTTL),
		states:   expirable.NewLRU[string, auth.Client](cfg.MaxSessions, nil, stateTTL),
	}
}
