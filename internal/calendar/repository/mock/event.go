package mock

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"meeting-room-booking/internal/calendar"
	"meeting-room-booking/internal/calendar/repository"
	"meeting-room-booking/internal/model"
)

const meetBaseURL = "https://meet.google.com/"

func (r *implRepository) ListEvents(ctx context.Context, sc model.Scope, opt repository.ListEventsOptions) ([]calendar.Event, error) {
	window := calendar.TimeRange{Start: opt.TimeMin, End: opt.TimeMax}

	r.mu.RLock()
	var out []calendar.Event
	for _, ev := range r.events {
		if !visibleTo(ev, sc.Email) {
			continue
		}
		if !window.Overlaps(calendar.TimeRange{Start: ev.Start, End: ev.End}) {
			continue
		}
		out = append(out, r.present(ev, sc))
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Start.Equal(out[j].Start) {
			return out[i].EventID < out[j].EventID
		}
		return out[i].Start.Before(out[j].Start)
	})
	return out, nil
}

func (r *implRepository) GetEvent(ctx context.Context, sc model.Scope, eventID string) (calendar.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ev, ok := r.events[eventID]
	if !ok || !visibleTo(ev, sc.Email) {
		return calendar.Event{}, repository.ErrNotFound
	}
	return r.present(ev, sc), nil
}

func (r *implRepository) CreateEvent(ctx context.Context, sc model.Scope, opt repository.CreateEventOptions) (calendar.Event, error) {
	ev := calendar.Event{
		EventID:   strings.ReplaceAll(uuid.NewString(), "-", ""),
		Organizer: sc.Email,
		CreatedAt: r.now(),
	}
	r.apply(&ev, opt)
	if opt.CreateConference {
		ev.Meet = newMeetLink()
	}

	r.mu.Lock()
	r.events[ev.EventID] = ev
	r.mu.Unlock()

	r.l.Debugf(ctx, "calendar.repository.mock.CreateEvent: %s in %s", ev.EventID, ev.RoomEmail)
	return r.present(ev, sc), nil
}

func (r *implRepository) UpdateEvent(ctx context.Context, sc model.Scope, opt repository.UpdateEventOptions) (calendar.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.events[opt.EventID]
	if !ok || !visibleTo(stored, sc.Email) {
		return calendar.Event{}, repository.ErrNotFound
	}
	if !strings.EqualFold(stored.Organizer, sc.Email) {
		return calendar.Event{}, repository.ErrForbidden
	}

	ev := stored
	r.apply(&ev, opt.CreateEventOptions)
	if opt.CreateConference && ev.Meet == "" {
		ev.Meet = newMeetLink()
	}
	r.events[ev.EventID] = ev

	return r.present(ev, sc), nil
}

func (r *implRepository) DeleteEvent(ctx context.Context, sc model.Scope, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.events[eventID]
	if !ok || !visibleTo(stored, sc.Email) {
		return repository.ErrNotFound
	}
	if !strings.EqualFold(stored.Organizer, sc.Email) {
		return repository.ErrForbidden
	}
	delete(r.events, eventID)
	return nil
}

func (r *implRepository) apply(ev *calendar.Event, opt repository.CreateEventOptions) {
	ev.Title = opt.Title
	ev.Start = opt.Start
	ev.End = opt.End
	ev.RoomEmail = opt.RoomEmail
	ev.Room = opt.RoomName
	ev.Attendees = append([]string(nil), opt.Attendees...)
	if room, ok := r.findRoom(opt.RoomEmail); ok {
		ev.Room = room.Name
	}
}

// present returns a copy of ev as seen by the caller.
func (r *implRepository) present(ev calendar.Event, sc model.Scope) calendar.Event {
	ev.Attendees = append([]string(nil), ev.Attendees...)
	ev.IsEditable = strings.EqualFold(ev.Organizer, sc.Email)
	return ev
}

func visibleTo(ev calendar.Event, email string) bool {
	if strings.EqualFold(ev.Organizer, email) {
		return true
	}
	for _, a := range ev.Attendees {
		if strings.EqualFold(a, email) {
			return true
		}
	}
	return false
}

func newMeetLink() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return meetBaseURL + id[0:3] + "-" + id[3:7] + "-" + id[7:10]
}
