package mock

import (
	"context"

	"meeting-room-booking/internal/calendar"
	"meeting-room-booking/internal/calendar/repository"
	"meeting-room-booking/internal/model"
)

func (r *implRepository) ListRooms(ctx context.Context, sc model.Scope, opt repository.ListRoomsOptions) ([]calendar.ConferenceRoom, error) {
	return append([]calendar.ConferenceRoom(nil), r.rooms...), nil
}

func (r *implRepository) QueryBusy(ctx context.Context, sc model.Scope, opt repository.QueryBusyOptions) (map[string][]calendar.TimeRange, error) {
	window := calendar.TimeRange{Start: opt.TimeMin, End: opt.TimeMax}

	wanted := make(map[string]bool, len(opt.RoomEmails))
	out := make(map[string][]calendar.TimeRange, len(opt.RoomEmails))
	for _, email := range opt.RoomEmails {
		wanted[email] = true
		out[email] = nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ev := range r.events {
		if !wanted[ev.RoomEmail] {
			continue
		}
		block := calendar.TimeRange{Start: ev.Start, End: ev.End}
		if block.Overlaps(window) {
			out[ev.RoomEmail] = append(out[ev.RoomEmail], block)
		}
	}
	return out, nil
}

func (r *implRepository) findRoom(email string) (calendar.ConferenceRoom, bool) {
	for _, room := range r.rooms {
		if room.Email == email {
			return room, true
		}
	}
	return calendar.ConferenceRoom{}, false
}
