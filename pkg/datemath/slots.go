package datemath

import "fmt"

// Slot is a quarter-hour start time within a day.
type Slot struct {
	Hour   int
	Minute int
}

// Minutes returns the slot as minutes since midnight.
func (s Slot) Minutes() int {
	return ToMinutesSinceMidnight(s.Hour, s.Minute)
}

func (s Slot) String() string {
	return FormatTime(s.Hour, s.Minute)
}

// DaySlots returns all quarter-hour slots of a day, 00:00 through 23:45.
func DaySlots() []Slot {
	slots := make([]Slot, 0, SlotsPerDay)
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m += SlotMinutes {
			slots = append(slots, Slot{Hour: h, Minute: m})
		}
	}
	return slots
}

// ToMinutesSinceMidnight is the ordering key for clock times.
func ToMinutesSinceMidnight(h, m int) int {
	return h*60 + m
}

// FormatTime converts a 24-hour clock time to "H:MM AM/PM".
func FormatTime(h, m int) string {
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	hour := h % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, m, period)
}

// roundUpToSlot moves (h, m) forward to the next quarter-hour boundary.
// Times already on a boundary are kept. 23:46 and later roll over to 24:00.
func roundUpToSlot(h, m int) (int, int) {
	rounded := m / SlotMinutes * SlotMinutes
	if m > rounded {
		rounded += SlotMinutes
	}
	if rounded > 59 {
		h++
		rounded = 0
	}
	return h, rounded
}
