package usecase

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"

	"meeting-room-booking/internal/calendar"
	repo "meeting-room-booking/internal/calendar/repository"
	"meeting-room-booking/internal/model"
)

// AvailableRooms lists rooms with enough seats on the requested floor that
// have no busy block in [StartTime, StartTime+Duration). When EventID is set
// the event's own booking does not count as busy.
func (uc *implUseCase) AvailableRooms(ctx context.Context, sc model.Scope, input calendar.AvailableRoomsInput) ([]calendar.ConferenceRoom, error) {
	if input.Duration <= 0 || input.Duration > calendar.MaxDurationMinutes {
		return nil, calendar.ErrInvalidDuration
	}
	if input.Seats < 1 {
		return nil, calendar.ErrInvalidSeats
	}
	if input.StartTime.IsZero() {
		return nil, calendar.ErrInvalidTimeRange
	}

	window := calendar.TimeRange{
		Start: input.StartTime,
		End:   calendar.BookingInput{StartTime: input.StartTime, Duration: input.Duration}.EndTime(),
	}

	rooms, err := uc.listRooms(ctx, sc)
	if err != nil {
		return nil, err
	}

	candidates := make([]calendar.ConferenceRoom, 0, len(rooms))
	emails := make([]string, 0, len(rooms))
	for _, room := range rooms {
		if room.Seats < input.Seats {
			continue
		}
		if input.Floor != "" && room.Floor != input.Floor {
			continue
		}
		candidates = append(candidates, room)
		emails = append(emails, room.Email)
	}
	if len(candidates) == 0 {
		return []calendar.ConferenceRoom{}, nil
	}

	busy, err := uc.repo.QueryBusy(ctx, sc, repo.QueryBusyOptions{
		RoomEmails: emails,
		TimeMin:    window.Start,
		TimeMax:    window.End,
		TimeZone:   input.TimeZone,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AvailableRooms QueryBusy: %v", err)
		return nil, uc.mapRepoErr(err)
	}

	if input.EventID != "" {
		ev, err := uc.repo.GetEvent(ctx, sc, input.EventID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.AvailableRooms GetEvent: %v", err)
			return nil, uc.mapRepoErr(err)
		}
		if blocks, ok := busy[ev.RoomEmail]; ok {
			busy[ev.RoomEmail] = excludeRange(blocks, calendar.TimeRange{Start: ev.Start, End: ev.End})
		}
	}

	available := make([]calendar.ConferenceRoom, 0, len(candidates))
	for _, room := range candidates {
		blocks, ok := busy[room.Email]
		if !ok {
			// free/busy unknown for this room
			continue
		}
		if !anyOverlap(blocks, window) {
			available = append(available, room)
		}
	}

	sort.SliceStable(available, func(i, j int) bool {
		if available[i].Seats != available[j].Seats {
			return available[i].Seats < available[j].Seats
		}
		return available[i].Name < available[j].Name
	})
	return available, nil
}

// HighestSeatCount returns the capacity of the largest room, 0 without rooms.
func (uc *implUseCase) HighestSeatCount(ctx context.Context, sc model.Scope) (int, error) {
	rooms, err := uc.listRooms(ctx, sc)
	if err != nil {
		return 0, err
	}

	highest := 0
	for _, room := range rooms {
		if room.Seats > highest {
			highest = room.Seats
		}
	}
	return highest, nil
}

// ListFloors returns the distinct floors of the room directory.
// Numeric floors sort numerically and before named ones.
func (uc *implUseCase) ListFloors(ctx context.Context, sc model.Scope) ([]string, error) {
	rooms, err := uc.listRooms(ctx, sc)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	floors := make([]string, 0)
	for _, room := range rooms {
		f := strings.TrimSpace(room.Floor)
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		floors = append(floors, f)
	}

	sort.Slice(floors, func(i, j int) bool { return floorLess(floors[i], floors[j]) })
	return floors, nil
}

// listRooms returns the room directory of the caller's domain, cached.
func (uc *implUseCase) listRooms(ctx context.Context, sc model.Scope) ([]calendar.ConferenceRoom, error) {
	key := sc.Domain
	if key == "" {
		key = sc.Email
	}
	if rooms, ok := uc.rooms.Get(key); ok {
		return rooms, nil
	}

	rooms, err := uc.repo.ListRooms(ctx, sc, repo.ListRoomsOptions{Customer: uc.customer})
	if err != nil {
		uc.l.Errorf(ctx, "uc.listRooms ListRooms: %v", err)
		if errors.Is(err, repo.ErrNotFound) {
			return nil, calendar.ErrRoomNotFound
		}
		return nil, uc.mapRepoErr(err)
	}

	uc.rooms.Add(key, rooms)
	return rooms, nil
}

func (uc *implUseCase) findRoom(ctx context.Context, sc model.Scope, email string) (calendar.ConferenceRoom, error) {
	rooms, err := uc.listRooms(ctx, sc)
	if err != nil {
		return calendar.ConferenceRoom{}, err
	}
	for _, room := range rooms {
		if strings.EqualFold(room.Email, email) {
			return room, nil
		}
	}
	return calendar.ConferenceRoom{}, calendar.ErrRoomNotFound
}

func floorLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	}
	return a < b
}
