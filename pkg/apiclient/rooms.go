package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// GetAvailableRooms searches free rooms. Cancel ctx to abandon the search;
// the envelope is then StatusIgnore.
func (c *Client) GetAvailableRooms(ctx context.Context, q AvailableRoomsQuery) Envelope[[]Room] {
	v := url.Values{}
	v.Set("startTime", q.StartTime)
	v.Set("duration", strconv.Itoa(q.Duration))
	v.Set("timeZone", q.TimeZone)
	v.Set("seats", strconv.Itoa(q.Seats))
	if q.Floor != "" {
		v.Set("floor", q.Floor)
	}
	if q.EventID != "" {
		v.Set("eventId", q.EventID)
	}
	return call[[]Room](ctx, c, request{method: http.MethodGet, path: "/available-rooms", query: v})
}

// GetRooms lists the caller's room bookings in the window.
func (c *Client) GetRooms(ctx context.Context, q EventsQuery) Envelope[[]Event] {
	v := url.Values{}
	v.Set("startTime", q.StartTime)
	v.Set("endTime", q.EndTime)
	v.Set("timeZone", q.TimeZone)
	return call[[]Event](ctx, c, request{method: http.MethodGet, path: "/rooms", query: v})
}

func (c *Client) CreateEvent(ctx context.Context, p BookingPayload) Envelope[Event] {
	return call[Event](ctx, c, request{method: http.MethodPost, path: "/room", body: p})
}

func (c *Client) UpdateEvent(ctx context.Context, eventID string, p BookingPayload) Envelope[Event] {
	body := struct {
		EventID string `json:"eventId"`
		BookingPayload
	}{eventID, p}
	return call[Event](ctx, c, request{method: http.MethodPut, path: "/room", body: body})
}

func (c *Client) DeleteEvent(ctx context.Context, eventID string) Envelope[DeleteResult] {
	v := url.Values{}
	v.Set("id", eventID)
	return call[DeleteResult](ctx, c, request{method: http.MethodDelete, path: "/room", query: v})
}

func (c *Client) GetMaxSeatCount(ctx context.Context) Envelope[int] {
	return call[int](ctx, c, request{method: http.MethodGet, path: "/highest-seat-count"})
}

func (c *Client) GetFloors(ctx context.Context) Envelope[[]string] {
	return call[[]string](ctx, c, request{method: http.MethodGet, path: "/floors"})
}
