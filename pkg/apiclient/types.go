package apiclient

// Status is the outcome carried by every envelope.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
	// StatusIgnore marks a request the caller cancelled. It never comes from
	// the server.
	StatusIgnore Status = "ignore"
)

// Envelope is what every domain operation resolves to. Code is the HTTP
// status when one was received.
type Envelope[T any] struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
	Code    int    `json:"-"`
}

// OK reports whether the call succeeded.
func (e Envelope[T]) OK() bool { return e.Status == StatusSuccess }

// Ignored reports whether the call was cancelled by the caller.
func (e Envelope[T]) Ignored() bool { return e.Status == StatusIgnore }

// TokenPair is the session issued by the backend.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"`
}

// LoginResult is returned by the OAuth callback.
type LoginResult struct {
	TokenPair
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

type Room struct {
	ID       string `json:"id,omitempty"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Seats    int    `json:"seats"`
	Floor    string `json:"floor,omitempty"`
	Building string `json:"building,omitempty"`
}

type Event struct {
	EventID    string   `json:"eventId"`
	Title      string   `json:"title"`
	Room       string   `json:"room"`
	Start      string   `json:"start"`
	End        string   `json:"end"`
	Meet       string   `json:"meet,omitempty"`
	Floor      string   `json:"floor,omitempty"`
	RoomEmail  string   `json:"roomEmail"`
	RoomID     string   `json:"roomId,omitempty"`
	Seats      int      `json:"seats"`
	Attendees  []string `json:"attendees"`
	CreatedAt  string   `json:"createdAt,omitempty"`
	IsEditable bool     `json:"isEditable"`
}

type DeleteResult struct {
	EventID string `json:"eventId"`
	Deleted bool   `json:"deleted"`
}

// BookingPayload is the body of a create or update. StartTime is RFC 3339.
type BookingPayload struct {
	StartTime        string   `json:"startTime"`
	Duration         int      `json:"duration"`
	Seats            int      `json:"seats"`
	Floor            string   `json:"floor,omitempty"`
	TimeZone         string   `json:"timeZone"`
	CreateConference bool     `json:"createConference"`
	Title            string   `json:"title,omitempty"`
	Room             string   `json:"room"`
	Attendees        []string `json:"attendees,omitempty"`
}

type AvailableRoomsQuery struct {
	StartTime string
	Duration  int
	TimeZone  string
	Seats     int
	Floor     string
	EventID   string
}

type EventsQuery struct {
	StartTime string
	EndTime   string
	TimeZone  string
}
