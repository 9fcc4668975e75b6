package bookingview

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"sync"

	"meeting-room-booking/pkg/apiclient"
	"meeting-room-booking/pkg/datemath"
	"meeting-room-booking/pkg/log"
)

var ErrNotLoaded = errors.New("bookingview: could not load seat capacity")

// Config is the dependency bag passed to New().
type Config struct {
	API         API
	Parser      *datemath.Parser
	Preferences PreferenceStore
	Notifier    Notifier
	Navigator   apiclient.Navigator
	Logger      log.Logger

	// OnBooked is called after a successful booking.
	OnBooked  func(apiclient.Event)
	Durations []int
}

// View is the booking form. Only one availability search is in flight at a
// time; starting a new one aborts the previous one.
type View struct {
	api      API
	parser   *datemath.Parser
	prefs    PreferenceStore
	notify   Notifier
	nav      apiclient.Navigator
	l        log.Logger
	onBooked func(apiclient.Event)

	mu     sync.Mutex
	state  State
	base   context.Context
	cancel context.CancelFunc
	gen    uint64
	wg     sync.WaitGroup
}

func New(cfg Config) *View {
	v := &View{
		api:      cfg.API,
		parser:   cfg.Parser,
		prefs:    cfg.Preferences,
		notify:   cfg.Notifier,
		nav:      cfg.Navigator,
		l:        cfg.Logger,
		onBooked: cfg.OnBooked,
		base:     context.Background(),
		state:    State{Phase: PhaseLoading},
	}
	if v.parser == nil {
		v.parser = datemath.NewLocalParser()
	}
	if v.notify == nil {
		v.notify = nopNotifier{}
	}
	if v.nav == nil {
		v.nav = apiclient.NavigatorFunc(func(string) {})
	}
	if v.l == nil {
		v.l = log.NewNop()
	}
	v.state.DurationOptions = cfg.Durations
	if len(v.state.DurationOptions) == 0 {
		v.state.DurationOptions = DefaultDurations
	}
	return v
}

// Mount loads the option lists, seeds the form and runs the first search.
// Searches started later are bound to ctx.
func (v *View) Mount(ctx context.Context) error {
	env := v.api.GetMaxSeatCount(ctx)
	if !env.OK() {
		if !env.Ignored() {
			v.fail(env.Message, env.Code)
		}
		return ErrNotLoaded
	}

	prefs, _ := v.loadPreferences()

	v.mu.Lock()
	v.base = ctx
	s := &v.state
	s.CapacityOptions = capacityOptions(env.Data)
	s.TimeOptions = v.parser.TimeOptions()

	s.Seats = clamp(prefs.Seats, defaultSeats, s.CapacityOptions[len(s.CapacityOptions)-1])
	s.Duration = prefs.Duration
	if !slices.Contains(s.DurationOptions, s.Duration) {
		s.Duration = defaultDuration
		if !slices.Contains(s.DurationOptions, s.Duration) {
			s.Duration = s.DurationOptions[0]
		}
	}
	s.Floor = prefs.Floor
	s.Title = prefs.Title
	s.CreateConference = prefs.CreateConference
	s.Attendees = append([]string(nil), prefs.Attendees...)
	if len(s.TimeOptions) > 0 {
		s.StartTime = s.TimeOptions[0]
	}
	s.Loaded = true
	s.Phase = PhaseIdle
	hasSlot := s.StartTime != ""
	v.mu.Unlock()

	if !hasSlot {
		v.l.Infof(ctx, "bookingview.Mount: no start times left today")
		return nil
	}
	v.search()
	return nil
}

func (v *View) loadPreferences() (Preferences, bool) {
	if v.prefs == nil {
		return Preferences{}, false
	}
	return v.prefs.Load()
}

// SetStartTime takes a display time such as "2:15 PM".
func (v *View) SetStartTime(clock string) {
	v.update(func(s *State) { s.StartTime = clock }, true)
}

func (v *View) SetDuration(minutes int) {
	v.update(func(s *State) { s.Duration = minutes }, true)
}

func (v *View) SetSeats(seats int) {
	v.update(func(s *State) { s.Seats = seats }, true)
}

func (v *View) SetFloor(floor string) {
	v.update(func(s *State) { s.Floor = floor }, true)
}

func (v *View) SetTitle(title string) {
	v.update(func(s *State) { s.Title = title }, false)
}

func (v *View) SetCreateConference(on bool) {
	v.update(func(s *State) { s.CreateConference = on }, false)
}

func (v *View) SetAttendees(emails []string) {
	v.update(func(s *State) { s.Attendees = append([]string(nil), emails...) }, false)
}

// SelectRoom picks a room from the current results.
func (v *View) SelectRoom(email string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, r := range v.state.Rooms {
		if r.Email == email {
			v.state.Room = email
			return true
		}
	}
	return false
}

func (v *View) update(fn func(*State), research bool) {
	v.mu.Lock()
	fn(&v.state)
	loaded := v.state.Loaded
	v.mu.Unlock()

	if research && loaded {
		v.search()
	}
}

// Snapshot returns a copy of the current state.
func (v *View) Snapshot() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state.clone()
}

// Wait blocks until every started search has settled.
func (v *View) Wait() {
	v.wg.Wait()
}

// Close aborts the in-flight search.
func (v *View) Close() {
	v.mu.Lock()
	if v.cancel != nil {
		v.cancel()
	}
	v.mu.Unlock()
	v.wg.Wait()
}

// fail reports an error and sends the user to the recovery view when the
// failure is not something they can fix by changing the form.
func (v *View) fail(msg string, code int) {
	v.notify.Error(msg)
	if code == http.StatusForbidden || code >= http.StatusInternalServerError {
		v.nav.Navigate(apiclient.RouteError)
	}
}

func capacityOptions(max int) []int {
	if max < 1 {
		max = 1
	}
	opts := make([]int, max)
	for i := range opts {
		opts[i] = i + 1
	}
	return opts
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

type nopNotifier struct{}

func (nopNotifier) Success(string) {}
func (nopNotifier) Error(string)   {}
