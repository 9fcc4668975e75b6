package calendar

import "errors"

var (
	ErrInvalidTimeRange  = errors.New("end time must be after start time")
	ErrInvalidDuration   = errors.New("duration must be between 1 and 1440 minutes")
	ErrInvalidSeats      = errors.New("seats must be at least 1")
	ErrRoomRequired      = errors.New("room is required")
	ErrRoomNotFound      = errors.New("room not found")
	ErrEventIDRequired   = errors.New("event id is required")
	ErrEventNotFound     = errors.New("event not found")
	ErrEventNotEditable  = errors.New("event is not editable by the caller")
	ErrProviderAuth      = errors.New("calendar provider rejected the credentials")
	ErrProviderForbidden = errors.New("calendar provider denied access")
)
