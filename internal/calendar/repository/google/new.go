package google

import (
	"context"

	"meeting-room-booking/internal/calendar/repository"
	"meeting-room-booking/internal/model"
	"meeting-room-booking/pkg/gcalendar"
	"meeting-room-booking/pkg/log"
)

// ClientFactory builds a Google API client acting as the caller.
type ClientFactory func(ctx context.Context, sc model.Scope) (*gcalendar.Client, error)

type implRepository struct {
	l         log.Logger
	newClient ClientFactory
}

// New creates a repository backed by the Google Calendar and Directory APIs.
// A nil factory authenticates with the caller's token source.
func New(l log.Logger, factory ClientFactory) repository.Repository {
	if factory == nil {
		factory = FromTokenSource
	}
	return &implRepository{
		l:         l,
		newClient: factory,
	}
}

// FromTokenSource is the default ClientFactory.
func FromTokenSource(ctx context.Context, sc model.Scope) (*gcalendar.Client, error) {
	if sc.TokenSource == nil {
		return nil, repository.ErrNoCredential
	}
	return gcalendar.NewClientFromTokenSource(ctx, sc.TokenSource)
}
