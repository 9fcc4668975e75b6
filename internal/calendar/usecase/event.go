package usecase

import (
	"context"
	"strings"

	"meeting-room-booking/internal/calendar"
	repo "meeting-room-booking/internal/calendar/repository"
	"meeting-room-booking/internal/model"
)

// ListEvents returns the caller's room bookings overlapping the window.
// Events without a room resource are skipped.
func (uc *implUseCase) ListEvents(ctx context.Context, sc model.Scope, input calendar.ListEventsInput) ([]calendar.Event, error) {
	if input.StartTime.IsZero() || !input.EndTime.After(input.StartTime) {
		return nil, calendar.ErrInvalidTimeRange
	}

	events, err := uc.repo.ListEvents(ctx, sc, repo.ListEventsOptions{
		TimeMin:  input.StartTime,
		TimeMax:  input.EndTime,
		TimeZone: input.TimeZone,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListEvents ListEvents: %v", err)
		return nil, uc.mapRepoErr(err)
	}

	rooms, err := uc.listRooms(ctx, sc)
	if err != nil {
		return nil, err
	}

	out := make([]calendar.Event, 0, len(events))
	for _, ev := range events {
		if ev.RoomEmail == "" {
			continue
		}
		out = append(out, uc.enrich(sc, ev, rooms))
	}
	return out, nil
}

// CreateEvent books input.Room for [StartTime, StartTime+Duration).
func (uc *implUseCase) CreateEvent(ctx context.Context, sc model.Scope, input calendar.BookingInput) (calendar.Event, error) {
	room, err := uc.validateBooking(ctx, sc, input)
	if err != nil {
		return calendar.Event{}, err
	}

	ev, err := uc.repo.CreateEvent(ctx, sc, uc.toCreateOptions(sc, input, room))
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateEvent CreateEvent: %v", err)
		return calendar.Event{}, uc.mapRepoErr(err)
	}

	uc.l.Infof(ctx, "uc.CreateEvent: %s booked %s as %s", sc.Email, room.Email, ev.EventID)
	return uc.enrich(sc, ev, []calendar.ConferenceRoom{room}), nil
}

// UpdateEvent moves an existing booking. Only the organizer may update it.
func (uc *implUseCase) UpdateEvent(ctx context.Context, sc model.Scope, input calendar.UpdateEventInput) (calendar.Event, error) {
	if input.EventID == "" {
		return calendar.Event{}, calendar.ErrEventIDRequired
	}
	if _, err := uc.editableEvent(ctx, sc, input.EventID); err != nil {
		return calendar.Event{}, err
	}

	room, err := uc.validateBooking(ctx, sc, input.BookingInput)
	if err != nil {
		return calendar.Event{}, err
	}

	ev, err := uc.repo.UpdateEvent(ctx, sc, repo.UpdateEventOptions{
		EventID:            input.EventID,
		CreateEventOptions: uc.toCreateOptions(sc, input.BookingInput, room),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateEvent UpdateEvent: %v", err)
		return calendar.Event{}, uc.mapRepoErr(err)
	}

	return uc.enrich(sc, ev, []calendar.ConferenceRoom{room}), nil
}

// DeleteEvent cancels a booking. Only the organizer may delete it.
func (uc *implUseCase) DeleteEvent(ctx context.Context, sc model.Scope, eventID string) (calendar.DeleteResult, error) {
	if eventID == "" {
		return calendar.DeleteResult{}, calendar.ErrEventIDRequired
	}
	if _, err := uc.editableEvent(ctx, sc, eventID); err != nil {
		return calendar.DeleteResult{}, err
	}

	if err := uc.repo.DeleteEvent(ctx, sc, eventID); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteEvent DeleteEvent: %v", err)
		return calendar.DeleteResult{}, uc.mapRepoErr(err)
	}

	return calendar.DeleteResult{EventID: eventID, Deleted: true}, nil
}

func (uc *implUseCase) editableEvent(ctx context.Context, sc model.Scope, eventID string) (calendar.Event, error) {
	ev, err := uc.repo.GetEvent(ctx, sc, eventID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.editableEvent GetEvent: %v", err)
		return calendar.Event{}, uc.mapRepoErr(err)
	}
	if !isEditable(sc, ev) {
		return calendar.Event{}, calendar.ErrEventNotEditable
	}
	return ev, nil
}

func (uc *implUseCase) validateBooking(ctx context.Context, sc model.Scope, input calendar.BookingInput) (calendar.ConferenceRoom, error) {
	if input.Room == "" {
		return calendar.ConferenceRoom{}, calendar.ErrRoomRequired
	}
	if input.Duration <= 0 || input.Duration > calendar.MaxDurationMinutes {
		return calendar.ConferenceRoom{}, calendar.ErrInvalidDuration
	}
	if input.StartTime.IsZero() {
		return calendar.ConferenceRoom{}, calendar.ErrInvalidTimeRange
	}
	return uc.findRoom(ctx, sc, input.Room)
}

func (uc *implUseCase) toCreateOptions(sc model.Scope, input calendar.BookingInput, room calendar.ConferenceRoom) repo.CreateEventOptions {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = calendar.DefaultTitle
	}

	return repo.CreateEventOptions{
		Title:            title,
		Start:            input.StartTime,
		End:              input.EndTime(),
		TimeZone:         input.TimeZone,
		RoomEmail:        room.Email,
		RoomName:         room.Name,
		Attendees:        attendeeList(sc.Email, room.Email, input.Attendees),
		CreateConference: input.CreateConference,
	}
}

// enrich fills the room details of ev from the directory and resolves
// whether the caller may edit it.
func (uc *implUseCase) enrich(sc model.Scope, ev calendar.Event, rooms []calendar.ConferenceRoom) calendar.Event {
	for _, room := range rooms {
		if strings.EqualFold(room.Email, ev.RoomEmail) {
			ev.Room = room.Name
			ev.RoomID = room.ID
			ev.Floor = room.Floor
			ev.Seats = room.Seats
			break
		}
	}
	ev.IsEditable = isEditable(sc, ev)
	return ev
}
