package bookingview

import (
	"context"

	"meeting-room-booking/pkg/apiclient"
)

// search aborts any running search and starts a new one for the current
// form. Results of a superseded search are dropped even if they arrive.
func (v *View) search() {
	v.mu.Lock()
	if v.cancel != nil {
		v.cancel()
	}
	q, err := v.queryLocked()
	if err != nil {
		v.cancel = nil
		v.gen++
		v.state.Phase = PhaseIdle
		v.mu.Unlock()
		v.l.Warnf(v.base, "bookingview.search: %v", err)
		v.notify.Error(msgInvalidStart)
		return
	}

	ctx, cancel := context.WithCancel(v.base)
	v.cancel = cancel
	v.gen++
	gen := v.gen
	v.state.Phase = PhaseSearching
	v.wg.Add(1)
	v.mu.Unlock()

	go func() {
		defer v.wg.Done()
		defer cancel()
		env := v.api.GetAvailableRooms(ctx, q)
		v.applySearch(gen, env)
	}()
}

func (v *View) queryLocked() (apiclient.AvailableRoomsQuery, error) {
	s := v.state
	start, err := v.parser.ConvertToRFC3339(v.parser.Today(), s.StartTime)
	if err != nil {
		return apiclient.AvailableRoomsQuery{}, err
	}
	return apiclient.AvailableRoomsQuery{
		StartTime: start,
		Duration:  s.Duration,
		TimeZone:  v.parser.TimeZone(),
		Seats:     s.Seats,
		Floor:     s.Floor,
	}, nil
}

func (v *View) applySearch(gen uint64, env apiclient.Envelope[[]apiclient.Room]) {
	if env.Ignored() {
		return
	}

	v.mu.Lock()
	if gen != v.gen {
		v.mu.Unlock()
		return
	}
	s := &v.state
	s.Phase = PhaseIdle
	s.Room = ""
	if !env.OK() {
		s.Rooms = nil
		s.NoRooms = false
		v.mu.Unlock()
		v.fail(env.Message, env.Code)
		return
	}

	s.Rooms = append([]apiclient.Room(nil), env.Data...)
	s.NoRooms = len(s.Rooms) == 0
	if !s.NoRooms {
		s.Room = s.Rooms[0].Email
	}
	v.mu.Unlock()
}
