package mock

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-room-booking/internal/calendar/repository"
	"meeting-room-booking/internal/model"
	"meeting-room-booking/pkg/log"
)

var (
	ann = model.Scope{Email: "ann@example.com", Domain: "example.com"}
	bob = model.Scope{Email: "bob@example.com", Domain: "example.com"}
)

func at(h, m int) time.Time {
	return time.Date(2024, 1, 15, h, m, 0, 0, time.UTC)
}

func book(t *testing.T, repo repository.Repository, sc model.Scope, room string, start, end time.Time) string {
	t.Helper()
	ev, err := repo.CreateEvent(context.Background(), sc, repository.CreateEventOptions{
		Title:     "Sync",
		Start:     start,
		End:       end,
		RoomEmail: room,
		Attendees: []string{sc.Email},
	})
	require.NoError(t, err)
	return ev.EventID
}

func TestCreateAndQueryBusy(t *testing.T) {
	repo := New(log.NewNop(), nil)
	everest := DefaultRooms[2].Email

	book(t, repo, ann, everest, at(9, 0), at(10, 0))

	busy, err := repo.QueryBusy(context.Background(), bob, repository.QueryBusyOptions{
		RoomEmails: []string{everest, DefaultRooms[3].Email},
		TimeMin:    at(9, 30),
		TimeMax:    at(10, 30),
	})
	require.NoError(t, err)
	assert.Len(t, busy[everest], 1)
	assert.Empty(t, busy[DefaultRooms[3].Email])

	busy, err = repo.QueryBusy(context.Background(), bob, repository.QueryBusyOptions{
		RoomEmails: []string{everest},
		TimeMin:    at(10, 0),
		TimeMax:    at(11, 0),
	})
	require.NoError(t, err)
	assert.Empty(t, busy[everest], "back-to-back bookings do not conflict")
}

func TestCreateEventConference(t *testing.T) {
	repo := New(log.NewNop(), nil)

	ev, err := repo.CreateEvent(context.Background(), ann, repository.CreateEventOptions{
		Title:            "Design review",
		Start:            at(14, 0),
		End:              at(15, 0),
		RoomEmail:        DefaultRooms[0].Email,
		CreateConference: true,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, ev.EventID)
	assert.True(t, strings.HasPrefix(ev.Meet, meetBaseURL))
	assert.Equal(t, DefaultRooms[0].Name, ev.Room)
	assert.True(t, ev.IsEditable)
}

func TestEventVisibilityAndOwnership(t *testing.T) {
	repo := New(log.NewNop(), nil)
	ctx := context.Background()
	id := book(t, repo, ann, DefaultRooms[1].Email, at(9, 0), at(9, 30))

	_, err := repo.GetEvent(ctx, bob, id)
	assert.True(t, errors.Is(err, repository.ErrNotFound), "bob is not invited")

	events, err := repo.ListEvents(ctx, ann, repository.ListEventsOptions{TimeMin: at(0, 0), TimeMax: at(23, 59)})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, id, events[0].EventID)

	_, err = repo.UpdateEvent(ctx, ann, repository.UpdateEventOptions{
		EventID: id,
		CreateEventOptions: repository.CreateEventOptions{
			Title:     "Sync",
			Start:     at(9, 0),
			End:       at(9, 30),
			RoomEmail: DefaultRooms[1].Email,
			Attendees: []string{ann.Email, bob.Email},
		},
	})
	require.NoError(t, err)

	ev, err := repo.GetEvent(ctx, bob, id)
	require.NoError(t, err)
	assert.False(t, ev.IsEditable)

	err = repo.DeleteEvent(ctx, bob, id)
	assert.True(t, errors.Is(err, repository.ErrForbidden))

	require.NoError(t, repo.DeleteEvent(ctx, ann, id))
	_, err = repo.GetEvent(ctx, ann, id)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestConcurrentBookings(t *testing.T) {
	repo := New(log.NewNop(), nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			start := at(8, 0).Add(time.Duration(i) * 15 * time.Minute)
			_, err := repo.CreateEvent(context.Background(), ann, repository.CreateEventOptions{
				Start:     start,
				End:       start.Add(15 * time.Minute),
				RoomEmail: DefaultRooms[4].Email,
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	events, err := repo.ListEvents(context.Background(), ann, repository.ListEventsOptions{TimeMin: at(0, 0), TimeMax: at(23, 59)})
	require.NoError(t, err)
	assert.Len(t, events, 20)
	for i := 1; i < len(events); i++ {
		assert.True(t, events[i-1].Start.Before(events[i].Start))
	}
}
