package google

import (
	"context"

	"meeting-room-booking/internal/calendar"
	"meeting-room-booking/internal/calendar/repository"
	"meeting-room-booking/internal/model"
	"meeting-room-booking/pkg/gcalendar"
)

func (r *implRepository) ListRooms(ctx context.Context, sc model.Scope, opt repository.ListRoomsOptions) ([]calendar.ConferenceRoom, error) {
	client, err := r.newClient(ctx, sc)
	if err != nil {
		r.l.Errorf(ctx, "calendar.repository.google.ListRooms.newClient: %v", err)
		return nil, err
	}

	rooms, err := client.ListRooms(ctx, opt.Customer)
	if err != nil {
		r.l.Errorf(ctx, "calendar.repository.google.ListRooms: %v", err)
		return nil, mapErr(err)
	}

	out := make([]calendar.ConferenceRoom, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, toRoom(room))
	}
	return out, nil
}

func (r *implRepository) QueryBusy(ctx context.Context, sc model.Scope, opt repository.QueryBusyOptions) (map[string][]calendar.TimeRange, error) {
	if len(opt.RoomEmails) == 0 {
		return map[string][]calendar.TimeRange{}, nil
	}

	client, err := r.newClient(ctx, sc)
	if err != nil {
		r.l.Errorf(ctx, "calendar.repository.google.QueryBusy.newClient: %v", err)
		return nil, err
	}

	busy, err := client.QueryFreeBusy(ctx, gcalendar.FreeBusyRequest{
		CalendarIDs: opt.RoomEmails,
		TimeMin:     opt.TimeMin,
		TimeMax:     opt.TimeMax,
		TimeZone:    opt.TimeZone,
	})
	if err != nil {
		r.l.Errorf(ctx, "calendar.repository.google.QueryBusy: %v", err)
		return nil, mapErr(err)
	}

	out := make(map[string][]calendar.TimeRange, len(busy))
	for email, blocks := range busy {
		ranges := make([]calendar.TimeRange, 0, len(blocks))
		for _, b := range blocks {
			ranges = append(ranges, calendar.TimeRange{Start: b.Start, End: b.End})
		}
		out[email] = ranges
	}
	return out, nil
}
