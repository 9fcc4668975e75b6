package gcalendar

import "time"

// Attendee is a guest of an event. Resource attendees are rooms.
type Attendee struct {
	Email          string
	DisplayName    string
	Resource       bool
	Self           bool
	ResponseStatus string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID            string
	Summary       string
	Description   string
	HtmlLink      string
	MeetLink      string
	StartTime     time.Time
	EndTime       time.Time
	TimeZone      string
	Location      string
	Organizer     string
	OrganizerSelf bool
	Attendees     []Attendee
	Created       time.Time
	Status        string
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID       string
	Summary          string
	Description      string
	Location         string
	StartTime        time.Time
	EndTime          time.Time
	Timezone         string // e.g. "Asia/Ho_Chi_Minh"
	Attendees        []Attendee
	CreateConference bool
}

// UpdateEventRequest replaces the mutable fields of an existing event.
// A conference is only added, never removed.
type UpdateEventRequest struct {
	EventID string
	CreateEventRequest
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}

// FreeBusyRequest asks for the busy blocks of a set of calendars.
type FreeBusyRequest struct {
	CalendarIDs []string
	TimeMin     time.Time
	TimeMax     time.Time
	TimeZone    string
}

// BusyBlock is one busy interval of a calendar.
type BusyBlock struct {
	Start time.Time
	End   time.Time
}

// Room is a conference room calendar resource from the Workspace directory.
type Room struct {
	ID       string
	Email    string
	Name     string
	Capacity int
	Floor    string
	Building string
	Category string
}

// UserInfo is the profile of the signed-in Google account.
type UserInfo struct {
	ID            string
	Email         string
	VerifiedEmail bool
	Name          string
	Picture       string
	HostedDomain  string
}
