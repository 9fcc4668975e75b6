package datemath

import (
	"fmt"
	"time"
)

// Parser holds the location and clock that the time helpers evaluate against.
type Parser struct {
	location *time.Location
	now      func() time.Time
}

// NewParser creates a new parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc, now: time.Now}, nil
}

// NewLocalParser creates a parser for the runtime's own timezone.
func NewLocalParser() *Parser {
	p, err := NewParser(TimeZoneString())
	if err != nil {
		return &Parser{location: time.UTC, now: time.Now}
	}
	return p
}

// WithClock returns a copy of p that reads "now" from the given function.
func (p *Parser) WithClock(now func() time.Time) *Parser {
	cp := *p
	cp.now = now
	return &cp
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// TimeZone returns the IANA name of the parser's timezone.
func (p *Parser) TimeZone() string {
	return p.location.String()
}

// Now returns the current time in the parser's timezone.
func (p *Parser) Now() time.Time {
	return p.now().In(p.location)
}

// Today returns the current date as YYYY-MM-DD.
func (p *Parser) Today() string {
	return p.Now().Format(DateLayout)
}

// TimeOptions returns the bookable start times left today.
func (p *Parser) TimeOptions() []string {
	return PopulateTimeOptions(p.Now())
}

// TimezoneOffset returns the offset string of the parser's timezone right now.
func (p *Parser) TimezoneOffset() string {
	return TimezoneOffset(p.Now())
}

// ConvertToRFC3339 converts a local date and clock string to the timestamp
// format the booking API expects, using the parser's current offset.
func (p *Parser) ConvertToRFC3339(date, clock string) (string, error) {
	return ConvertToRFC3339WithOffset(date, clock, p.TimezoneOffset(), p.location)
}

// ConvertToLocaleTime renders an RFC 3339 timestamp as "H:MM AM/PM" in the
// parser's timezone.
func (p *Parser) ConvertToLocaleTime(value string) string {
	return ConvertToLocaleTime(value, p.location)
}
