package google

import (
	"errors"
	"fmt"

	"meeting-room-booking/internal/calendar"
	"meeting-room-booking/internal/calendar/repository"
	"meeting-room-booking/pkg/gcalendar"
)

func mapErr(err error) error {
	switch {
	case errors.Is(err, gcalendar.ErrNotFound):
		return fmt.Errorf("%w: %v", repository.ErrNotFound, err)
	case errors.Is(err, gcalendar.ErrForbidden):
		return fmt.Errorf("%w: %v", repository.ErrForbidden, err)
	case errors.Is(err, gcalendar.ErrUnauthorized):
		return fmt.Errorf("%w: %v", repository.ErrUnauthorized, err)
	}
	return err
}

func toRoom(r gcalendar.Room) calendar.ConferenceRoom {
	return calendar.ConferenceRoom{
		ID:       r.ID,
		Email:    r.Email,
		Name:     r.Name,
		Seats:    r.Capacity,
		Floor:    r.Floor,
		Building: r.Building,
	}
}

// toEvent maps a Google event. The first resource attendee is the room;
// room details beyond its email are filled in by the use case.
func toEvent(ev gcalendar.Event) calendar.Event {
	out := calendar.Event{
		EventID:    ev.ID,
		Title:      ev.Summary,
		Start:      ev.StartTime,
		End:        ev.EndTime,
		Meet:       ev.MeetLink,
		Organizer:  ev.Organizer,
		CreatedAt:  ev.Created,
		IsEditable: ev.OrganizerSelf,
	}
	for _, a := range ev.Attendees {
		if a.Resource {
			if out.RoomEmail == "" {
				out.RoomEmail = a.Email
				out.Room = a.DisplayName
			}
			continue
		}
		out.Attendees = append(out.Attendees, a.Email)
	}
	return out
}

func toCreateRequest(opt repository.CreateEventOptions) gcalendar.CreateEventRequest {
	attendees := make([]gcalendar.Attendee, 0, len(opt.Attendees)+1)
	attendees = append(attendees, gcalendar.Attendee{
		Email:       opt.RoomEmail,
		DisplayName: opt.RoomName,
		Resource:    true,
	})
	for _, email := range opt.Attendees {
		attendees = append(attendees, gcalendar.Attendee{Email: email})
	}

	return gcalendar.CreateEventRequest{
		Summary:          opt.Title,
		Location:         opt.RoomName,
		StartTime:        opt.Start,
		EndTime:          opt.End,
		Timezone:         opt.TimeZone,
		Attendees:        attendees,
		CreateConference: opt.CreateConference,
	}
}
