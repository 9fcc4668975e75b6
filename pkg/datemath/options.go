package datemath

import "time"

// PopulateTimeOptions lists the display strings of every quarter-hour slot
// from now, rounded up to the next boundary, through 11:45 PM. The result is
// empty once the last slot of the day has started.
func PopulateTimeOptions(now time.Time) []string {
	h, m := roundUpToSlot(now.Hour(), now.Minute())
	from := ToMinutesSinceMidnight(h, m)

	var options []string
	for _, slot := range DaySlots() {
		if slot.Minutes() >= from {
			options = append(options, slot.String())
		}
	}
	return options
}
