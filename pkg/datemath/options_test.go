package datemath_test

import (
	"testing"
	"time"

	"meeting-room-booking/pkg/datemath"
)

func TestPopulateTimeOptions(t *testing.T) {
	day := func(h, m int) time.Time { return time.Date(2024, 1, 15, h, m, 0, 0, time.UTC) }

	tests := []struct {
		name      string
		now       time.Time
		wantFirst string
		wantLen   int
	}{
		{name: "Midnight", now: day(0, 0), wantFirst: "12:00 AM", wantLen: 96},
		{name: "On boundary", now: day(10, 15), wantFirst: "10:15 AM", wantLen: 55},
		{name: "Rounds up", now: day(10, 7), wantFirst: "10:15 AM", wantLen: 55},
		{name: "Hour overflow", now: day(9, 50), wantFirst: "10:00 AM", wantLen: 56},
		{name: "Noon", now: day(12, 0), wantFirst: "12:00 PM", wantLen: 48},
		{name: "Last slot", now: day(23, 45), wantFirst: "11:45 PM", wantLen: 1},
		{name: "After last slot", now: day(23, 46), wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := datemath.PopulateTimeOptions(tt.now)
			if len(got) != tt.wantLen {
				t.Fatalf("expected %d options, got %d", tt.wantLen, len(got))
			}
			if tt.wantLen > 0 && got[0] != tt.wantFirst {
				t.Errorf("expected first option %q, got %q", tt.wantFirst, got[0])
			}
		})
	}
}

func TestPopulateTimeOptionsEveryMinute(t *testing.T) {
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 24*60; i++ {
		now := start.Add(time.Duration(i) * time.Minute)
		floor := now.Hour()*60 + now.Minute()/15*15

		options := datemath.PopulateTimeOptions(now)
		if len(options) == 0 {
			if now.Hour() != 23 || now.Minute() <= 45 {
				t.Fatalf("%s: unexpected empty options", now.Format("15:04"))
			}
			continue
		}

		prev := -1
		for _, opt := range options {
			parsed, err := time.Parse(datemath.ClockLayout, opt)
			if err != nil {
				t.Fatalf("%s: option %q does not parse: %v", now.Format("15:04"), opt, err)
			}
			minutes := datemath.ToMinutesSinceMidnight(parsed.Hour(), parsed.Minute())
			if minutes < floor {
				t.Fatalf("%s: option %q is before the current slot", now.Format("15:04"), opt)
			}
			if prev >= 0 && minutes-prev != datemath.SlotMinutes {
				t.Fatalf("%s: options not in 15 minute steps around %q", now.Format("15:04"), opt)
			}
			prev = minutes
		}
		if options[len(options)-1] != "11:45 PM" {
			t.Fatalf("%s: expected last option 11:45 PM, got %q", now.Format("15:04"), options[len(options)-1])
		}
	}
}

func TestDaySlots(t *testing.T) {
	slots := datemath.DaySlots()
	if len(slots) != datemath.SlotsPerDay {
		t.Fatalf("expected %d slots, got %d", datemath.SlotsPerDay, len(slots))
	}
	if slots[0].String() != "12:00 AM" || slots[len(slots)-1].String() != "11:45 PM" {
		t.Errorf("unexpected bounds: %s .. %s", slots[0], slots[len(slots)-1])
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		h, m int
		want string
	}{
		{0, 0, "12:00 AM"},
		{12, 0, "12:00 PM"},
		{13, 5, "1:05 PM"},
		{11, 59, "11:59 AM"},
		{23, 45, "11:45 PM"},
		{9, 30, "9:30 AM"},
	}
	for _, tt := range tests {
		if got := datemath.FormatTime(tt.h, tt.m); got != tt.want {
			t.Errorf("FormatTime(%d, %d) = %q, want %q", tt.h, tt.m, got, tt.want)
		}
	}
}

func TestToMinutesSinceMidnightInjective(t *testing.T) {
	seen := make(map[int]bool, 24*60)
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			key := datemath.ToMinutesSinceMidnight(h, m)
			if seen[key] {
				t.Fatalf("collision at %02d:%02d", h, m)
			}
			seen[key] = true
		}
	}
}
