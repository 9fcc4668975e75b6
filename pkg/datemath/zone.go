package datemath

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidOffset   = errors.New("offset must match ±HH:MM")
	ErrInvalidDateTime = errors.New("invalid date or time")
)

var offsetPattern = regexp.MustCompile(`^([+-])(\d{2}):(\d{2})$`)

// TimeZoneString returns the IANA name of the runtime's timezone.
func TimeZoneString() string {
	if tz := os.Getenv("TZ"); tz != "" {
		if _, err := time.LoadLocation(tz); err == nil {
			return tz
		}
	}
	if name := time.Local.String(); name != "" && name != "Local" {
		return name
	}
	return "UTC"
}

// TimezoneOffset returns "±HH:MM" for t's zone using the minutes-west
// convention: zones west of UTC get a leading '+', zones east get '-'.
// ConvertToRFC3339WithOffset undoes exactly this convention, so the two must
// change together.
func TimezoneOffset(t time.Time) string {
	_, eastSeconds := t.Zone()
	westMinutes := -eastSeconds / 60

	sign := "+"
	if westMinutes < 0 {
		sign = "-"
		westMinutes = -westMinutes
	}
	return fmt.Sprintf("%s%02d:%02d", sign, westMinutes/60, westMinutes%60)
}

// ConvertToRFC3339WithOffset parses "{date} {clock}" as a wall-clock time in
// loc, shifts it by the offset in the minutes-west convention and returns
// "{date}T{time}{offset}" with the offset string appended unchanged.
func ConvertToRFC3339WithOffset(date, clock, offset string, loc *time.Location) (string, error) {
	match := offsetPattern.FindStringSubmatch(offset)
	if match == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidOffset, offset)
	}
	hours, _ := strconv.Atoi(match[2])
	minutes, _ := strconv.Atoi(match[3])
	shift := hours*60 + minutes
	if match[1] == "+" {
		shift = -shift
	}

	naive, err := parseWallClock(date, clock, loc)
	if err != nil {
		return "", err
	}

	shifted := naive.Add(time.Duration(shift) * time.Minute)
	return shifted.UTC().Format(WallClockLayout) + offset, nil
}

func parseWallClock(date, clock string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	value := strings.TrimSpace(date) + " " + strings.ToUpper(strings.TrimSpace(clock))
	for _, layout := range []string{DateLayout + " " + ClockLayout, DateLayout + " " + Clock24Layout} {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, value)
}

// ConvertToLocaleTime renders an RFC 3339 timestamp as "H:MM AM/PM" in loc.
// Empty or unparsable input renders as EmptyTime.
func ConvertToLocaleTime(value string, loc *time.Location) string {
	if strings.TrimSpace(value) == "" {
		return EmptyTime
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return EmptyTime
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(ClockLayout)
}

// ParseWallClockIn reads the wall-clock part of an RFC 3339 timestamp and
// places it in timezone. The timestamp's own offset is used only when
// timezone is empty or unknown.
func ParseWallClockIn(value, timezone string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, value)
	}
	if timezone == "" {
		return t, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return t, nil
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc), nil
}
