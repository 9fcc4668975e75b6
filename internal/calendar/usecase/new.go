package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"meeting-room-booking/internal/calendar"
	"meeting-room-booking/internal/calendar/repository"
	"meeting-room-booking/pkg/log"
)

const (
	defaultRoomsCacheTTL  = 10 * time.Minute
	defaultRoomsCacheSize = 256
)

// Config tunes the room directory cache.
type Config struct {
	Customer       string
	RoomsCacheTTL  time.Duration
	RoomsCacheSize int
}

// implUseCase is the private implementation of calendar.UseCase.
type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	customer string
	rooms    *expirable.LRU[string, []calendar.ConferenceRoom]
}

var _ calendar.UseCase = (*implUseCase)(nil)

// New creates a new calendar UseCase implementation.
func New(l log.Logger, repo repository.Repository, cfg Config) *implUseCase {
	if cfg.RoomsCacheTTL <= 0 {
		cfg.RoomsCacheTTL = defaultRoomsCacheTTL
	}
	if cfg.RoomsCacheSize <= 0 {
		cfg.RoomsCacheSize = defaultRoomsCacheSize
	}

	return &implUseCase{
		l:        l,
		repo:     repo,
		customer: cfg.Customer,
		rooms:    expirable.NewLRU[string, []calendar.ConferenceRoom](cfg.RoomsCacheSize, nil, cfg.RoomsCacheTTL),
	}
}
