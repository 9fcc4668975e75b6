package calendar

import "time"

// DefaultTitle is used for bookings created without a title.
const DefaultTitle = "Meeting Room Booking"

// --- Domain Model ---

// ConferenceRoom is a bookable room from the Workspace resource directory.
type ConferenceRoom struct {
	ID       string
	Email    string
	Name     string
	Seats    int
	Floor    string
	Building string
}

// Event is a calendar event that books a conference room.
type Event struct {
	EventID    string
	Title      string
	Room       string
	Start      time.Time
	End        time.Time
	Meet       string
	Floor      string
	RoomEmail  string
	RoomID     string
	Seats      int
	Attendees  []string
	Organizer  string
	CreatedAt  time.Time
	IsEditable bool
}

// DeleteResult reports the outcome of DeleteEvent.
type DeleteResult struct {
	EventID string
	Deleted bool
}

// TimeRange is a half-open interval [Start, End).
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether r and o share any instant.
func (r TimeRange) Overlaps(o TimeRange) bool {
	return r.Start.Before(o.End) && o.Start.Before(r.End)
}

// Subtract returns the parts of r not covered by o.
func (r TimeRange) Subtract(o TimeRange) []TimeRange {
	if !r.Overlaps(o) {
		return []TimeRange{r}
	}
	var out []TimeRange
	if r.Start.Before(o.Start) {
		out = append(out, TimeRange{Start: r.Start, End: o.Start})
	}
	if o.End.Before(r.End) {
		out = append(out, TimeRange{Start: o.End, End: r.End})
	}
	return out
}

// --- UseCase Inputs ---

type ListEventsInput struct {
	StartTime time.Time
	EndTime   time.Time
	TimeZone  string
}

type AvailableRoomsInput struct {
	StartTime time.Time
	Duration  int // minutes
	TimeZone  string
	Seats     int
	Floor     string
	EventID   string // busy blocks of this event are ignored
}

// MaxDurationMinutes caps a booking at one day.
const MaxDurationMinutes = 24 * 60

// BookingInput is a booking request. The end time is StartTime + Duration.
type BookingInput struct {
	StartTime        time.Time
	Duration         int // minutes
	Seats            int
	Floor            string
	TimeZone         string
	CreateConference bool
	Title            string
	Room             string // room resource email
	Attendees        []string
}

// EndTime derives the end of the booking window.
func (in BookingInput) EndTime() time.Time {
	return in.StartTime.Add(time.Duration(in.Duration) * time.Minute)
}

type UpdateEventInput struct {
	EventID string
	BookingInput
}
