package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-room-booking/internal/calendar"
	"meeting-room-booking/internal/calendar/repository"
	"meeting-room-booking/internal/calendar/repository/mock"
	"meeting-room-booking/internal/model"
	"meeting-room-booking/pkg/log"
)

var (
	ann = model.Scope{Email: "ann@example.com", Domain: "example.com"}
	bob = model.Scope{Email: "bob@example.com", Domain: "example.com"}

	testRooms = []calendar.ConferenceRoom{
		{ID: "r1", Email: "small@rooms", Name: "Small", Seats: 2, Floor: "1"},
		{ID: "r2", Email: "medium@rooms", Name: "Medium", Seats: 6, Floor: "2"},
		{ID: "r3", Email: "alpha@rooms", Name: "Alpha", Seats: 6, Floor: "2"},
		{ID: "r4", Email: "large@rooms", Name: "Large", Seats: 12, Floor: "10"},
		{ID: "r5", Email: "lobby@rooms", Name: "Lobby", Seats: 4, Floor: "Ground"},
	}
)

// countingRepo counts directory reads.
type countingRepo struct {
	repository.Repository
	listRooms int
}

func (r *countingRepo) ListRooms(ctx context.Context, sc model.Scope, opt repository.ListRoomsOptions) ([]calendar.ConferenceRoom, error) {
	r.listRooms++
	return r.Repository.ListRooms(ctx, sc, opt)
}

func newTestUseCase() (*implUseCase, *countingRepo) {
	repo := &countingRepo{Repository: mock.New(log.NewNop(), testRooms)}
	return New(log.NewNop(), repo, Config{}), repo
}

func at(h, m int) time.Time {
	return time.Date(2024, 1, 15, h, m, 0, 0, time.UTC)
}

func names(rooms []calendar.ConferenceRoom) []string {
	out := make([]string, len(rooms))
	for i, r := range rooms {
		out[i] = r.Name
	}
	return out
}

func TestAvailableRooms(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	t.Run("filters by seats and sorts by seats then name", func(t *testing.T) {
		rooms, err := uc.AvailableRooms(ctx, ann, calendar.AvailableRoomsInput{StartTime: at(9, 0), Duration: 30, Seats: 4})
		require.NoError(t, err)
		assert.Equal(t, []string{"Lobby", "Alpha", "Medium", "Large"}, names(rooms))
	})

	t.Run("filters by floor", func(t *testing.T) {
		rooms, err := uc.AvailableRooms(ctx, ann, calendar.AvailableRoomsInput{StartTime: at(9, 0), Duration: 30, Seats: 1, Floor: "2"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Alpha", "Medium"}, names(rooms))
	})

	t.Run("no candidates is an empty list", func(t *testing.T) {
		rooms, err := uc.AvailableRooms(ctx, ann, calendar.AvailableRoomsInput{StartTime: at(9, 0), Duration: 30, Seats: 50})
		require.NoError(t, err)
		assert.NotNil(t, rooms)
		assert.Empty(t, rooms)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := uc.AvailableRooms(ctx, ann, calendar.AvailableRoomsInput{StartTime: at(9, 0), Duration: 0, Seats: 1})
		assert.True(t, errors.Is(err, calendar.ErrInvalidDuration))
		_, err = uc.AvailableRooms(ctx, ann, calendar.AvailableRoomsInput{StartTime: at(9, 0), Duration: 1 << 50, Seats: 1})
		assert.True(t, errors.Is(err, calendar.ErrInvalidDuration), "an overflowing duration is rejected")
		_, err = uc.CreateEvent(ctx, ann, calendar.BookingInput{StartTime: at(9, 0), Duration: calendar.MaxDurationMinutes + 1, Seats: 1, Room: "small@rooms"})
		assert.True(t, errors.Is(err, calendar.ErrInvalidDuration))
		_, err = uc.AvailableRooms(ctx, ann, calendar.AvailableRoomsInput{StartTime: at(9, 0), Duration: 15, Seats: 0})
		assert.True(t, errors.Is(err, calendar.ErrInvalidSeats))
		_, err = uc.AvailableRooms(ctx, ann, calendar.AvailableRoomsInput{Duration: 15, Seats: 1})
		assert.True(t, errors.Is(err, calendar.ErrInvalidTimeRange))
	})
}

func TestAvailableRoomsExcludesBookedRooms(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	ev, err := uc.CreateEvent(ctx, ann, calendar.BookingInput{StartTime: at(9, 0), Duration: 60, Seats: 6, Room: "alpha@rooms"})
	require.NoError(t, err)

	rooms, err := uc.AvailableRooms(ctx, bob, calendar.AvailableRoomsInput{StartTime: at(9, 30), Duration: 30, Seats: 6})
	require.NoError(t, err)
	assert.Equal(t, []string{"Medium", "Large"}, names(rooms))

	rooms, err = uc.AvailableRooms(ctx, bob, calendar.AvailableRoomsInput{StartTime: at(10, 0), Duration: 30, Seats: 6})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Medium", "Large"}, names(rooms), "the room is free when the booking ends")

	t.Run("own event is not busy when moving it", func(t *testing.T) {
		rooms, err := uc.AvailableRooms(ctx, ann, calendar.AvailableRoomsInput{StartTime: at(9, 30), Duration: 60, Seats: 6, EventID: ev.EventID})
		require.NoError(t, err)
		assert.Equal(t, []string{"Alpha", "Medium", "Large"}, names(rooms))
	})

	t.Run("other bookings still count when moving", func(t *testing.T) {
		_, err := uc.CreateEvent(ctx, bob, calendar.BookingInput{StartTime: at(10, 0), Duration: 30, Seats: 6, Room: "alpha@rooms"})
		require.NoError(t, err)

		rooms, err := uc.AvailableRooms(ctx, ann, calendar.AvailableRoomsInput{StartTime: at(9, 30), Duration: 60, Seats: 6, EventID: ev.EventID})
		require.NoError(t, err)
		assert.Equal(t, []string{"Medium", "Large"}, names(rooms))
	})

	t.Run("unknown event", func(t *testing.T) {
		_, err := uc.AvailableRooms(ctx, ann, calendar.AvailableRoomsInput{StartTime: at(9, 30), Duration: 60, Seats: 6, EventID: "nope"})
		assert.True(t, errors.Is(err, calendar.ErrEventNotFound))
	})
}

// unreadableRepo drops one room from free/busy results.
type unreadableRepo struct {
	repository.Repository
	unreadable string
}

func (r *unreadableRepo) QueryBusy(ctx context.Context, sc model.Scope, opt repository.QueryBusyOptions) (map[string][]calendar.TimeRange, error) {
	busy, err := r.Repository.QueryBusy(ctx, sc, opt)
	if err != nil {
		return nil, err
	}
	delete(busy, r.unreadable)
	return busy, nil
}

func TestAvailableRoomsSkipsRoomsWithUnknownBusyState(t *testing.T) {
	repo := &unreadableRepo{Repository: mock.New(log.NewNop(), testRooms), unreadable: "alpha@rooms"}
	uc := New(log.NewNop(), repo, Config{})

	rooms, err := uc.AvailableRooms(context.Background(), ann, calendar.AvailableRoomsInput{StartTime: at(9, 0), Duration: 30, Seats: 6})
	require.NoError(t, err)
	assert.Equal(t, []string{"Medium", "Large"}, names(rooms))
}

func TestRoomDirectoryIsCached(t *testing.T) {
	uc, repo := newTestUseCase()
	ctx := context.Background()

	seats, err := uc.HighestSeatCount(ctx, ann)
	require.NoError(t, err)
	assert.Equal(t, 12, seats)

	floors, err := uc.ListFloors(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "10", "Ground"}, floors)

	assert.Equal(t, 1, repo.listRooms, "same domain shares the cached directory")

	_, err = uc.ListFloors(ctx, model.Scope{Email: "eve@other.com", Domain: "other.com"})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listRooms)
}

func TestCreateEvent(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	ev, err := uc.CreateEvent(ctx, ann, calendar.BookingInput{
		StartTime:        at(14, 0),
		Duration:         45,
		Seats:            3,
		Room:             "medium@rooms",
		Attendees:        []string{"bob@example.com", "ANN@example.com", "medium@rooms", ""},
		CreateConference: true,
	})
	require.NoError(t, err)

	assert.Equal(t, calendar.DefaultTitle, ev.Title)
	assert.Equal(t, at(14, 45), ev.End)
	assert.Equal(t, []string{"ann@example.com", "bob@example.com"}, ev.Attendees)
	assert.Equal(t, "Medium", ev.Room)
	assert.Equal(t, "r2", ev.RoomID)
	assert.Equal(t, "2", ev.Floor)
	assert.Equal(t, 6, ev.Seats)
	assert.NotEmpty(t, ev.Meet)
	assert.True(t, ev.IsEditable)

	_, err = uc.CreateEvent(ctx, ann, calendar.BookingInput{StartTime: at(14, 0), Duration: 45})
	assert.True(t, errors.Is(err, calendar.ErrRoomRequired))

	_, err = uc.CreateEvent(ctx, ann, calendar.BookingInput{StartTime: at(14, 0), Duration: 45, Room: "ghost@rooms"})
	assert.True(t, errors.Is(err, calendar.ErrRoomNotFound))
}

func TestListEvents(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	_, err := uc.CreateEvent(ctx, ann, calendar.BookingInput{StartTime: at(9, 0), Duration: 30, Room: "small@rooms", Attendees: []string{bob.Email}})
	require.NoError(t, err)

	events, err := uc.ListEvents(ctx, bob, calendar.ListEventsInput{StartTime: at(0, 0), EndTime: at(23, 59)})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Small", events[0].Room)
	assert.False(t, events[0].IsEditable, "bob is only a guest")

	_, err = uc.ListEvents(ctx, bob, calendar.ListEventsInput{StartTime: at(10, 0), EndTime: at(9, 0)})
	assert.True(t, errors.Is(err, calendar.ErrInvalidTimeRange))
}

func TestUpdateAndDeleteEvent(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	ev, err := uc.CreateEvent(ctx, ann, calendar.BookingInput{StartTime: at(9, 0), Duration: 30, Room: "small@rooms", Attendees: []string{bob.Email}})
	require.NoError(t, err)

	_, err = uc.UpdateEvent(ctx, bob, calendar.UpdateEventInput{
		EventID:      ev.EventID,
		BookingInput: calendar.BookingInput{StartTime: at(11, 0), Duration: 30, Room: "large@rooms"},
	})
	assert.True(t, errors.Is(err, calendar.ErrEventNotEditable))

	moved, err := uc.UpdateEvent(ctx, ann, calendar.UpdateEventInput{
		EventID:      ev.EventID,
		BookingInput: calendar.BookingInput{StartTime: at(11, 0), Duration: 60, Room: "large@rooms", Title: "Moved"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Moved", moved.Title)
	assert.Equal(t, "large@rooms", moved.RoomEmail)
	assert.Equal(t, at(12, 0), moved.End)

	_, err = uc.UpdateEvent(ctx, ann, calendar.UpdateEventInput{BookingInput: calendar.BookingInput{StartTime: at(11, 0), Duration: 60, Room: "large@rooms"}})
	assert.True(t, errors.Is(err, calendar.ErrEventIDRequired))

	_, err = uc.DeleteEvent(ctx, ann, "missing")
	assert.True(t, errors.Is(err, calendar.ErrEventNotFound))

	res, err := uc.DeleteEvent(ctx, ann, ev.EventID)
	require.NoError(t, err)
	assert.Equal(t, calendar.DeleteResult{EventID: ev.EventID, Deleted: true}, res)
}

func TestAttendeeList(t *testing.T) {
	got := attendeeList("ann@example.com", "room@rooms", []string{" bob@example.com ", "Room@Rooms", "ann@EXAMPLE.com"})
	assert.Equal(t, []string{"ann@example.com", "bob@example.com"}, got)
}
