package calendar

import (
	"context"

	"meeting-room-booking/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Events
	ListEvents(ctx context.Context, sc model.Scope, input ListEventsInput) ([]Event, error)
	CreateEvent(ctx context.Context, sc model.Scope, input BookingInput) (Event, error)
	UpdateEvent(ctx context.Context, sc model.Scope, input UpdateEventInput) (Event, error)
	DeleteEvent(ctx context.Context, sc model.Scope, eventID string) (DeleteResult, error)

	// Rooms
	AvailableRooms(ctx context.Context, sc model.Scope, input AvailableRoomsInput) ([]ConferenceRoom, error)
	HighestSeatCount(ctx context.Context, sc model.Scope) (int, error)
	ListFloors(ctx context.Context, sc model.Scope) ([]string, error)
}
