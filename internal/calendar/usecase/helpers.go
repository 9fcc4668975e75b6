package usecase

import (
	"errors"
	"strings"

	"meeting-room-booking/internal/calendar"
	repo "meeting-room-booking/internal/calendar/repository"
	"meeting-room-booking/internal/model"
)

// mapRepoErr translates provider errors into domain errors.
func (uc *implUseCase) mapRepoErr(err error) error {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return calendar.ErrEventNotFound
	case errors.Is(err, repo.ErrForbidden):
		return calendar.ErrProviderForbidden
	case errors.Is(err, repo.ErrUnauthorized), errors.Is(err, repo.ErrNoCredential):
		return calendar.ErrProviderAuth
	}
	return err
}

func isEditable(sc model.Scope, ev calendar.Event) bool {
	return ev.IsEditable || (ev.Organizer != "" && strings.EqualFold(ev.Organizer, sc.Email))
}

// attendeeList returns the guests of a booking: the caller first, then the
// requested attendees, deduplicated case-insensitively, never the room.
func attendeeList(caller, room string, requested []string) []string {
	seen := map[string]bool{strings.ToLower(room): true}
	out := make([]string, 0, len(requested)+1)
	for _, email := range append([]string{caller}, requested...) {
		email = strings.TrimSpace(email)
		key := strings.ToLower(email)
		if email == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, email)
	}
	return out
}

func anyOverlap(blocks []calendar.TimeRange, window calendar.TimeRange) bool {
	for _, b := range blocks {
		if b.Overlaps(window) {
			return true
		}
	}
	return false
}

func excludeRange(blocks []calendar.TimeRange, own calendar.TimeRange) []calendar.TimeRange {
	out := make([]calendar.TimeRange, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, b.Subtract(own)...)
	}
	return out
}
