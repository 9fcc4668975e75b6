package repository

import "time"

// ListRoomsOptions selects the room directory to read.
type ListRoomsOptions struct {
	Customer string // Workspace customer, "my_customer" when empty
}

// QueryBusyOptions asks for the busy blocks of rooms within a window.
type QueryBusyOptions struct {
	RoomEmails []string
	TimeMin    time.Time
	TimeMax    time.Time
	TimeZone   string
}

// ListEventsOptions holds the window of events to list.
type ListEventsOptions struct {
	TimeMin  time.Time
	TimeMax  time.Time
	TimeZone string
}

// CreateEventOptions holds parameters for booking a room.
// Attendees must not contain the room.
type CreateEventOptions struct {
	Title            string
	Start            time.Time
	End              time.Time
	TimeZone         string
	RoomEmail        string
	RoomName         string
	Attendees        []string
	CreateConference bool
}

// UpdateEventOptions holds parameters for replacing a booking.
type UpdateEventOptions struct {
	EventID string
	CreateEventOptions
}
