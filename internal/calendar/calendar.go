package calendar

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// DefaultZone is the zone puzzles are released in.
const DefaultZone = "America/New_York"

// Unset is the day sentinel meaning "use today".
const Unset = -1

// MaxDay is the largest day number accepted.
const MaxDay = 31

// Provider supplies the current date.
type Provider interface {
	Today() time.Time
}

// Zoned reports the current time in a fixed location.
type Zoned struct {
	Location *time.Location
	Now      func() time.Time
}

// NewZoned returns a Provider bound to the named IANA zone. An empty name
// selects DefaultZone.
func NewZoned(zone string) (*Zoned, error) {
	if zone == "" {
		zone = DefaultZone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("loading time zone %q: %w", zone, err)
	}
	return &Zoned{Location: loc, Now: time.Now}, nil
}

// Today returns the current instant expressed in z.Location.
func (z *Zoned) Today() time.Time {
	now := time.Now
	if z.Now != nil {
		now = z.Now
	}
	return now().In(z.Location)
}

// ResolveDay returns day unchanged when it is set, otherwise the day of month
// reported by p.
func ResolveDay(day int, p Provider) int {
	if day >= 0 {
		return day
	}
	return p.Today().Day()
}

// ValidDay reports whether day is within 0..MaxDay.
func ValidDay(day int) bool {
	return day >= 0 && day <= MaxDay
}
