package mock

import (
	"sync"
	"time"

	"meeting-room-booking/internal/calendar"
	"meeting-room-booking/internal/calendar/repository"
	"meeting-room-booking/pkg/log"
)

// DefaultRooms is the room directory served when none is given to New.
var DefaultRooms = []calendar.ConferenceRoom{
	{ID: "mock-1", Email: "huddle-1@resource.calendar.google.com", Name: "Huddle 1", Seats: 2, Floor: "1", Building: "HQ"},
	{ID: "mock-2", Email: "focus@resource.calendar.google.com", Name: "Focus", Seats: 4, Floor: "1", Building: "HQ"},
	{ID: "mock-3", Email: "everest@resource.calendar.google.com", Name: "Everest", Seats: 8, Floor: "2", Building: "HQ"},
	{ID: "mock-4", Email: "k2@resource.calendar.google.com", Name: "K2", Seats: 8, Floor: "2", Building: "HQ"},
	{ID: "mock-5", Email: "boardroom@resource.calendar.google.com", Name: "Boardroom", Seats: 16, Floor: "3", Building: "HQ"},
}

type implRepository struct {
	l     log.Logger
	now   func() time.Time
	rooms []calendar.ConferenceRoom

	mu     sync.RWMutex
	events map[string]calendar.Event
}

// New creates an in-memory calendar provider. Every caller sees the same
// rooms and events, which live only as long as the process.
func New(l log.Logger, rooms []calendar.ConferenceRoom) repository.Repository {
	if len(rooms) == 0 {
		rooms = DefaultRooms
	}
	return &implRepository{
		l:      l,
		now:    time.Now,
		rooms:  append([]calendar.ConferenceRoom(nil), rooms...),
		events: make(map[string]calendar.Event),
	}
}
