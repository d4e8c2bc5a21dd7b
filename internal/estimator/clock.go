package estimator

import (
	"fmt"
	"time"

	"github.com/andresuchdata/replenish/internal/domain"
)

// DefaultUTCOffsetHours is the business timezone the shop operates in (UTC+8).
const DefaultUTCOffsetHours = 8

// Clock maps instants to business calendar days.
type Clock struct {
	loc *time.Location
}

// NewClock returns a Clock for a fixed offset from UTC, in hours.
func NewClock(utcOffsetHours int) Clock {
	name := fmt.Sprintf("UTC%+d", utcOffsetHours)
	return Clock{loc: time.FixedZone(name, utcOffsetHours*3600)}
}

// Location is the business timezone. The zero Clock uses DefaultUTCOffsetHours.
func (c Clock) Location() *time.Location {
	if c.loc == nil {
		return NewClock(DefaultUTCOffsetHours).loc
	}
	return c.loc
}

// BusinessDate reads t as UTC, converts it to the business timezone and
// returns that calendar day.
func (c Clock) BusinessDate(t time.Time) domain.Date {
	return domain.DateOf(t.UTC().In(c.Location()))
}
