package bookingview

import (
	"context"

	"meeting-room-booking/pkg/apiclient"
)

// Submit books the selected room. It does nothing and returns false when no
// room is selected.
func (v *View) Submit(ctx context.Context) bool {
	v.mu.Lock()
	if v.state.Room == "" || !v.state.Loaded {
		v.mu.Unlock()
		return false
	}
	q, err := v.queryLocked()
	if err != nil {
		v.mu.Unlock()
		v.notify.Error(msgInvalidStart)
		return false
	}
	s := v.state
	payload := apiclient.BookingPayload{
		StartTime:        q.StartTime,
		Duration:         s.Duration,
		Seats:            s.Seats,
		Floor:            s.Floor,
		TimeZone:         q.TimeZone,
		CreateConference: s.CreateConference,
		Title:            s.Title,
		Room:             s.Room,
		Attendees:        append([]string(nil), s.Attendees...),
	}
	// A search still running was started for the form before the booking;
	// its result must not replace the room being booked.
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.gen++
	v.state.Phase = PhaseBooking
	v.mu.Unlock()

	env := v.api.CreateEvent(ctx, payload)
	if env.Ignored() {
		v.setPhase(PhaseIdle)
		return false
	}
	if !env.OK() {
		v.l.Warnf(ctx, "bookingview.Submit %s: %s", payload.Room, env.Message)
		v.setPhase(PhaseIdle)
		v.search()
		v.notify.Error(env.Message)
		return false
	}

	v.mu.Lock()
	v.state.Phase = PhaseIdle
	v.state.Room = ""
	v.mu.Unlock()

	v.notify.Success(msgBooked)
	if v.onBooked != nil {
		v.onBooked(env.Data)
	}
	return true
}

func (v *View) setPhase(p Phase) {
	v.mu.Lock()
	v.state.Phase = p
	v.mu.Unlock()
}
