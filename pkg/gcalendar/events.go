package gcalendar

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/api/calendar/v3"
)

const (
	primaryCalendar    = "primary"
	conferenceTypeMeet = "hangoutsMeet"
)

func calendarID(id string) string {
	if id == "" {
		return primaryCalendar
	}
	return id
}

// ListEvents lists single events overlapping [TimeMin, TimeMax) ordered by start.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	call := c.service.Events.List(calendarID(req.CalendarID)).
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	var events []Event
	err := call.Pages(ctx, func(page *calendar.Events) error {
		for _, item := range page.Items {
			if item.Status == "cancelled" {
				continue
			}
			events = append(events, toEvent(item))
		}
		return nil
	})
	if err != nil {
		return nil, wrap("failed to list calendar events", err)
	}
	return events, nil
}

// GetEvent fetches a single event.
func (c *Client) GetEvent(ctx context.Context, calID, eventID string) (*Event, error) {
	item, err := c.service.Events.Get(calendarID(calID), eventID).Context(ctx).Do()
	if err != nil {
		return nil, wrap("failed to get calendar event", err)
	}
	ev := toEvent(item)
	return &ev, nil
}

// CreateEvent creates a new Google Calendar event and invites its attendees.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := buildEvent(req)
	if req.CreateConference {
		event.ConferenceData = newMeetRequest()
	}

	created, err := c.service.Events.Insert(calendarID(req.CalendarID), event).
		ConferenceDataVersion(1).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrap("failed to create calendar event", err)
	}

	ev := toEvent(created)
	return &ev, nil
}

// UpdateEvent replaces the summary, time window and attendees of an event.
func (c *Client) UpdateEvent(ctx context.Context, req UpdateEventRequest) (*Event, error) {
	calID := calendarID(req.CalendarID)

	existing, err := c.service.Events.Get(calID, req.EventID).Context(ctx).Do()
	if err != nil {
		return nil, wrap("failed to get calendar event", err)
	}

	patch := buildEvent(req.CreateEventRequest)
	existing.Summary = patch.Summary
	existing.Start = patch.Start
	existing.End = patch.End
	existing.Attendees = patch.Attendees
	if patch.Description != "" {
		existing.Description = patch.Description
	}
	if patch.Location != "" {
		existing.Location = patch.Location
	}
	if req.CreateConference && existing.HangoutLink == "" && existing.ConferenceData == nil {
		existing.ConferenceData = newMeetRequest()
	}

	updated, err := c.service.Events.Update(calID, req.EventID, existing).
		ConferenceDataVersion(1).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrap("failed to update calendar event", err)
	}

	ev := toEvent(updated)
	return &ev, nil
}

// DeleteEvent deletes an event and notifies its attendees.
func (c *Client) DeleteEvent(ctx context.Context, calID, eventID string) error {
	err := c.service.Events.Delete(calendarID(calID), eventID).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		return wrap("failed to delete calendar event", err)
	}
	return nil
}

// QueryFreeBusy returns the busy blocks of each requested calendar.
// Calendars the server reported errors for are left out of the result,
// since their busy list is not known.
func (c *Client) QueryFreeBusy(ctx context.Context, req FreeBusyRequest) (map[string][]BusyBlock, error) {
	items := make([]*calendar.FreeBusyRequestItem, 0, len(req.CalendarIDs))
	for _, id := range req.CalendarIDs {
		items = append(items, &calendar.FreeBusyRequestItem{Id: id})
	}

	resp, err := c.service.Freebusy.Query(&calendar.FreeBusyRequest{
		TimeMin:  req.TimeMin.Format(time.RFC3339),
		TimeMax:  req.TimeMax.Format(time.RFC3339),
		TimeZone: req.TimeZone,
		Items:    items,
	}).Context(ctx).Do()
	if err != nil {
		return nil, wrap("failed to query free/busy", err)
	}

	out := make(map[string][]BusyBlock, len(resp.Calendars))
	for id, cal := range resp.Calendars {
		if len(cal.Errors) > 0 {
			continue
		}
		blocks := make([]BusyBlock, 0, len(cal.Busy))
		for _, period := range cal.Busy {
			start, errStart := time.Parse(time.RFC3339, period.Start)
			end, errEnd := time.Parse(time.RFC3339, period.End)
			if errStart != nil || errEnd != nil {
				continue
			}
			blocks = append(blocks, BusyBlock{Start: start, End: end})
		}
		out[id] = blocks
	}
	return out, nil
}

func newMeetRequest() *calendar.ConferenceData {
	return &calendar.ConferenceData{
		CreateRequest: &calendar.CreateConferenceRequest{
			RequestId:             uuid.NewString(),
			ConferenceSolutionKey: &calendar.ConferenceSolutionKey{Type: conferenceTypeMeet},
		},
	}
}

func buildEvent(req CreateEventRequest) *calendar.Event {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Location:    req.Location,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}
	for _, a := range req.Attendees {
		event.Attendees = append(event.Attendees, &calendar.EventAttendee{
			Email:       a.Email,
			DisplayName: a.DisplayName,
			Resource:    a.Resource,
		})
	}
	return event
}

func toEvent(item *calendar.Event) Event {
	ev := Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		HtmlLink:    item.HtmlLink,
		MeetLink:    item.HangoutLink,
		Location:    item.Location,
		Status:      item.Status,
	}
	if ev.MeetLink == "" && item.ConferenceData != nil {
		for _, ep := range item.ConferenceData.EntryPoints {
			if ep.EntryPointType == "video" {
				ev.MeetLink = ep.Uri
				break
			}
		}
	}
	if item.Start != nil {
		ev.StartTime = parseEventTime(item.Start)
		ev.TimeZone = item.Start.TimeZone
	}
	if item.End != nil {
		ev.EndTime = parseEventTime(item.End)
	}
	if item.Organizer != nil {
		ev.Organizer = item.Organizer.Email
		ev.OrganizerSelf = item.Organizer.Self
	}
	if item.Created != "" {
		ev.Created, _ = time.Parse(time.RFC3339, item.Created)
	}
	for _, a := range item.Attendees {
		ev.Attendees = append(ev.Attendees, Attendee{
			Email:          a.Email,
			DisplayName:    a.DisplayName,
			Resource:       a.Resource,
			Self:           a.Self,
			ResponseStatus: a.ResponseStatus,
		})
	}
	return ev
}

// parseEventTime handles both timed and all-day events.
func parseEventTime(dt *calendar.EventDateTime) time.Time {
	if dt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, dt.DateTime)
		if err == nil {
			return t
		}
	}
	if dt.Date != "" {
		t, err := time.Parse("2006-01-02", dt.Date)
		if err == nil {
			return t
		}
	}
	return time.Time{}
}
