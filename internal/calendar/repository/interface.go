package repository

import (
	"context"

	"meeting-room-booking/internal/calendar"
	"meeting-room-booking/internal/model"
)

// Repository is the calendar provider seen by the use case. Implementations
// act on behalf of the caller identified by sc.
type Repository interface {
	RoomRepository
	EventRepository
}

// RoomRepository reads the room directory and room availability.
type RoomRepository interface {
	ListRooms(ctx context.Context, sc model.Scope, opt ListRoomsOptions) ([]calendar.ConferenceRoom, error)
	QueryBusy(ctx context.Context, sc model.Scope, opt QueryBusyOptions) (map[string][]calendar.TimeRange, error)
}

// EventRepository defines all data access methods for calendar events.
type EventRepository interface {
	ListEvents(ctx context.Context, sc model.Scope, opt ListEventsOptions) ([]calendar.Event, error)
	GetEvent(ctx context.Context, sc model.Scope, eventID string) (calendar.Event, error)
	CreateEvent(ctx context.Context, sc model.Scope, opt CreateEventOptions) (calendar.Event, error)
	UpdateEvent(ctx context.Context, sc model.Scope, opt UpdateEventOptions) (calendar.Event, error)
	DeleteEvent(ctx context.Context, sc model.Scope, eventID string) error
}
