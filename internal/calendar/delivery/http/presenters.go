package http

import (
	"time"

	"meeting-room-booking/internal/calendar"
	"meeting-room-booking/pkg/datemath"
)

// --- Request DTOs ---

type listEventsReq struct {
	StartTime string `form:"startTime" binding:"required"`
	EndTime   string `form:"endTime"   binding:"required"`
	TimeZone  string `form:"timeZone"`
}

func (r listEventsReq) toInput() (calendar.ListEventsInput, error) {
	start, err := datemath.ParseWallClockIn(r.StartTime, r.TimeZone)
	if err != nil {
		return calendar.ListEventsInput{}, errInvalidStartTime
	}
	end, err := datemath.ParseWallClockIn(r.EndTime, r.TimeZone)
	if err != nil {
		return calendar.ListEventsInput{}, errInvalidEndTime
	}
	return calendar.ListEventsInput{
		StartTime: start,
		EndTime:   end,
		TimeZone:  r.TimeZone,
	}, nil
}

// ---

type availableRoomsReq struct {
	StartTime string `form:"startTime" binding:"required"`
	Duration  int    `form:"duration"  binding:"required,min=1,max=1440"`
	TimeZone  string `form:"timeZone"`
	Seats     int    `form:"seats"     binding:"required,min=1"`
	Floor     string `form:"floor"`
	EventID   string `form:"eventId"`
}

func (r availableRoomsReq) toInput() (calendar.AvailableRoomsInput, error) {
	start, err := datemath.ParseWallClockIn(r.StartTime, r.TimeZone)
	if err != nil {
		return calendar.AvailableRoomsInput{}, errInvalidStartTime
	}
	return calendar.AvailableRoomsInput{
		StartTime: start,
		Duration:  r.Duration,
		TimeZone:  r.TimeZone,
		Seats:     r.Seats,
		Floor:     r.Floor,
		EventID:   r.EventID,
	}, nil
}

// ---

type bookingReq struct {
	StartTime        string   `json:"startTime"        binding:"required"`
	Duration         int      `json:"duration"         binding:"required,min=1,max=1440"`
	Seats            int      `json:"seats"            binding:"required,min=1"`
	Floor            string   `json:"floor"`
	TimeZone         string   `json:"timeZone"`
	CreateConference bool     `json:"createConference"`
	Title            string   `json:"title"            binding:"max=1024"`
	Room             string   `json:"room"             binding:"required"`
	Attendees        []string `json:"attendees"        binding:"omitempty,dive,email"`
}

func (r bookingReq) toInput() (calendar.BookingInput, error) {
	start, err := datemath.ParseWallClockIn(r.StartTime, r.TimeZone)
	if err != nil {
		return calendar.BookingInput{}, errInvalidStartTime
	}
	return calendar.BookingInput{
		StartTime:        start,
		Duration:         r.Duration,
		Seats:            r.Seats,
		Floor:            r.Floor,
		TimeZone:         r.TimeZone,
		CreateConference: r.CreateConference,
		Title:            r.Title,
		Room:             r.Room,
		Attendees:        r.Attendees,
	}, nil
}

type updateEventReq struct {
	EventID string `json:"eventId" binding:"required"`
	bookingReq
}

func (r updateEventReq) toInput() (calendar.UpdateEventInput, error) {
	in, err := r.bookingReq.toInput()
	if err != nil {
		return calendar.UpdateEventInput{}, err
	}
	return calendar.UpdateEventInput{EventID: r.EventID, BookingInput: in}, nil
}

// --- Response DTOs ---

type eventResp struct {
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

func newEventResp(ev calendar.Event) eventResp {
	attendees := ev.Attendees
	if attendees == nil {
		attendees = []string{}
	}
	return eventResp{
		EventID:    ev.EventID,
		Title:      ev.Title,
		Room:       ev.Room,
		Start:      formatTime(ev.Start),
		End:        formatTime(ev.End),
		Meet:       ev.Meet,
		Floor:      ev.Floor,
		RoomEmail:  ev.RoomEmail,
		RoomID:     ev.RoomID,
		Seats:      ev.Seats,
		Attendees:  attendees,
		CreatedAt:  formatTime(ev.CreatedAt),
		IsEditable: ev.IsEditable,
	}
}

func (h *handler) newListEventsResp(events []calendar.Event) []eventResp {
	out := make([]eventResp, len(events))
	for i, ev := range events {
		out[i] = newEventResp(ev)
	}
	return out
}

type roomResp struct {
	ID       string `json:"id,omitempty"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Seats    int    `json:"seats"`
	Floor    string `json:"floor,omitempty"`
	Building string `json:"building,omitempty"`
}

func (h *handler) newRoomsResp(rooms []calendar.ConferenceRoom) []roomResp {
	out := make([]roomResp, len(rooms))
	for i, r := range rooms {
		out[i] = roomResp{
			ID:       r.ID,
			Email:    r.Email,
			Name:     r.Name,
			Seats:    r.Seats,
			Floor:    r.Floor,
			Building: r.Building,
		}
	}
	return out
}

type deleteResp struct {
	EventID string `json:"eventId"`
	Deleted bool   `json:"deleted"`
}

func (h *handler) newDeleteResp(res calendar.DeleteResult) deleteResp {
	return deleteResp{EventID: res.EventID, Deleted: res.Deleted}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
