package google

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"meeting-room-booking/internal/calendar/repository"
	"meeting-room-booking/internal/model"
	"meeting-room-booking/pkg/gcalendar"
	"meeting-room-booking/pkg/log"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestRepo(t *testing.T, handler http.HandlerFunc) repository.Repository {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	return New(log.NewNop(), func(ctx context.Context, sc model.Scope) (*gcalendar.Client, error) {
		return gcalendar.NewClientFromHTTP(ctx, tsClient)
	})
}

func TestFromTokenSourceRequiresCredentials(t *testing.T) {
	_, err := FromTokenSource(context.Background(), model.Scope{Email: "ann@example.com"})
	if !errors.Is(err, repository.ErrNoCredential) {
		t.Fatalf("expected ErrNoCredential, got %v", err)
	}
}

func TestListEventsMapsRoomAttendee(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendar/v3/calendars/primary/events" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"items": [{
			"id": "ev1",
			"summary": "Planning",
			"organizer": {"email": "ann@example.com", "self": true},
			"start": {"dateTime": "2024-01-15T09:00:00Z"},
			"end": {"dateTime": "2024-01-15T10:00:00Z"},
			"attendees": [
				{"email": "ann@example.com", "self": true},
				{"email": "everest@resource.calendar.google.com", "displayName": "Everest", "resource": true},
				{"email": "bob@example.com"}
			]
		}]}`))
	})

	events, err := repo.ListEvents(context.Background(), model.Scope{}, repository.ListEventsOptions{
		TimeMin: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		TimeMax: time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	ev := events[0]
	if ev.RoomEmail != "everest@resource.calendar.google.com" || ev.Room != "Everest" {
		t.Errorf("unexpected room: %q %q", ev.RoomEmail, ev.Room)
	}
	if len(ev.Attendees) != 2 {
		t.Errorf("expected the room to be excluded from attendees, got %v", ev.Attendees)
	}
	if !ev.IsEditable {
		t.Errorf("expected organizer event to be editable")
	}
}

func TestGetEventNotFound(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": {"code": 404, "message": "Not Found"}}`))
	})

	_, err := repo.GetEvent(context.Background(), model.Scope{}, "missing")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestQueryBusySkipsEmptyRoomList(t *testing.T) {
	called := false
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	busy, err := repo.QueryBusy(context.Background(), model.Scope{}, repository.QueryBusyOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if called || len(busy) != 0 {
		t.Errorf("expected no provider call for an empty room list")
	}
}

func TestToCreateRequestAddsRoomResource(t *testing.T) {
	req := toCreateRequest(repository.CreateEventOptions{
		Title:     "Sync",
		RoomEmail: "everest@resource.calendar.google.com",
		RoomName:  "Everest",
		Attendees: []string{"ann@example.com"},
	})

	if len(req.Attendees) != 2 {
		t.Fatalf("expected room + 1 attendee, got %d", len(req.Attendees))
	}
	if !req.Attendees[0].Resource || req.Attendees[0].Email != "everest@resource.calendar.google.com" {
		t.Errorf("expected first attendee to be the room, got %+v", req.Attendees[0])
	}
	if req.Location != "Everest" {
		t.Errorf("expected location to be the room name, got %q", req.Location)
	}
}
