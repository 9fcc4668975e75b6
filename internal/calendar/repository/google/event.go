package google

import (
	"context"

	"meeting-room-booking/internal/calendar"
	"meeting-room-booking/internal/calendar/repository"
	"meeting-room-booking/internal/model"
	"meeting-room-booking/pkg/gcalendar"
)

func (r *implRepository) ListEvents(ctx context.Context, sc model.Scope, opt repository.ListEventsOptions) ([]calendar.Event, error) {
	client, err := r.newClient(ctx, sc)
	if err != nil {
		r.l.Errorf(ctx, "calendar.repository.google.ListEvents.newClient: %v", err)
		return nil, err
	}

	events, err := client.ListEvents(ctx, gcalendar.ListEventsRequest{
		TimeMin: opt.TimeMin,
		TimeMax: opt.TimeMax,
	})
	if err != nil {
		r.l.Errorf(ctx, "calendar.repository.google.ListEvents: %v", err)
		return nil, mapErr(err)
	}

	out := make([]calendar.Event, 0, len(events))
	for _, ev := range events {
		out = append(out, toEvent(ev))
	}
	return out, nil
}

func (r *implRepository) GetEvent(ctx context.Context, sc model.Scope, eventID string) (calendar.Event, error) {
	client, err := r.newClient(ctx, sc)
	if err != nil {
		r.l.Errorf(ctx, "calendar.repository.google.GetEvent.newClient: %v", err)
		return calendar.Event{}, err
	}

	ev, err := client.GetEvent(ctx, "", eventID)
	if err != nil {
		r.l.Errorf(ctx, "calendar.repository.google.GetEvent: %v", err)
		return calendar.Event{}, mapErr(err)
	}
	return toEvent(*ev), nil
}

func (r *implRepository) CreateEvent(ctx context.Context, sc model.Scope, opt repository.CreateEventOptions) (calendar.Event, error) {
	client, err := r.newClient(ctx, sc)
	if err != nil {
		r.l.Errorf(ctx, "calendar.repository.google.CreateEvent.newClient: %v", err)
		return calendar.Event{}, err
	}

	ev, err := client.CreateEvent(ctx, toCreateRequest(opt))
	if err != nil {
		r.l.Errorf(ctx, "calendar.repository.google.CreateEvent: %v", err)
		return calendar.Event{}, mapErr(err)
	}
	return toEvent(*ev), nil
}

func (r *implRepository) UpdateEvent(ctx context.Context, sc model.Scope, opt repository.UpdateEventOptions) (calendar.Event, error) {
	client, err := r.newClient(ctx, sc)
	if err != nil {
		r.l.Errorf(ctx, "calendar.repository.google.UpdateEvent.newClient: %v", err)
		return calendar.Event{}, err
	}

	ev, err := client.UpdateEvent(ctx, gcalendar.UpdateEventRequest{
		EventID:            opt.EventID,
		CreateEventRequest: toCreateRequest(opt.CreateEventOptions),
	})
	if err != nil {
		r.l.Errorf(ctx, "calendar.repository.google.UpdateEvent: %v", err)
		return calendar.Event{}, mapErr(err)
	}
	return toEvent(*ev), nil
}

func (r *implRepository) DeleteEvent(ctx context.Context, sc model.Scope, eventID string) error {
	client, err := r.newClient(ctx, sc)
	if err != nil {
		r.l.Errorf(ctx, "calendar.repository.google.DeleteEvent.newClient: %v", err)
		return err
	}

	if err := client.DeleteEvent(ctx, "", eventID); err != nil {
		r.l.Errorf(ctx, "calendar.repository.google.DeleteEvent: %v", err)
		return mapErr(err)
	}
	return nil
}
