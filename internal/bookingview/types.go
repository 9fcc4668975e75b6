package bookingview

import (
	"context"

	"meeting-room-booking/pkg/apiclient"
)

// Phase is where the view is in its lifecycle.
type Phase string

const (
	PhaseLoading   Phase = "loading"
	PhaseIdle      Phase = "idle"
	PhaseSearching Phase = "searching"
	PhaseBooking   Phase = "booking"
)

// NoRoomsMessage is shown when a search finds nothing.
const NoRoomsMessage = "No rooms available"

// DefaultDurations are the meeting lengths offered, in minutes.
var DefaultDurations = []int{15, 30, 45, 60, 90, 120}

const (
	defaultDuration = 30
	defaultSeats    = 1

	msgBooked       = "Room booked"
	msgInvalidStart = "Pick a valid start time"
)

// API is the part of the booking API the view needs.
type API interface {
	GetMaxSeatCount(ctx context.Context) apiclient.Envelope[int]
	GetAvailableRooms(ctx context.Context, q apiclient.AvailableRoomsQuery) apiclient.Envelope[[]apiclient.Room]
	CreateEvent(ctx context.Context, p apiclient.BookingPayload) apiclient.Envelope[apiclient.Event]
}

// Preferences seeds the form on mount.
type Preferences struct {
	Seats            int
	Duration         int
	Floor            string
	Title            string
	CreateConference bool
	Attendees        []string
}

type PreferenceStore interface {
	Load() (Preferences, bool)
}

// Notifier shows transient messages to the user.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// State is a snapshot of the form and its results.
type State struct {
	Phase  Phase
	Loaded bool

	CapacityOptions []int
	DurationOptions []int
	TimeOptions     []string

	StartTime        string // "H:MM AM/PM", today
	Duration         int
	Seats            int
	Floor            string
	Title            string
	CreateConference bool
	Attendees        []string

	Rooms   []apiclient.Room
	Room    string // selected room email
	NoRooms bool
}

func (s State) clone() State {
	cp := s
	cp.CapacityOptions = append([]int(nil), s.CapacityOptions...)
	cp.DurationOptions = append([]int(nil), s.DurationOptions...)
	cp.TimeOptions = append([]string(nil), s.TimeOptions...)
	cp.Attendees = append([]string(nil), s.Attendees...)
	cp.Rooms = append([]apiclient.Room(nil), s.Rooms...)
	return cp
}
