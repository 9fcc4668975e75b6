package datemath

const (
	SlotMinutes = 15
	SlotsPerDay = 24 * 60 / SlotMinutes

	DateLayout      = "2006-01-02"
	ClockLayout     = "3:04 PM"
	Clock24Layout   = "15:04"
	WallClockLayout = "2006-01-02T15:04:05"

	// EmptyTime is what ConvertToLocaleTime renders for a missing timestamp.
	EmptyTime = "-"
)
