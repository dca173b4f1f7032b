package kernel

import "time"

// Clock supplies the current time to lifecycle transitions, so that time
// gated rules can be exercised with a fixed instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in a fixed location.
type SystemClock struct {
	location *time.Location
}

// NewSystemClock returns a clock reporting times in loc (time.Local when nil).
func NewSystemClock(loc *time.Location) SystemClock {
	if loc == nil {
		loc = time.Local
	}
	return SystemClock{location: loc}
}

// Now returns the current time truncated to microseconds, the precision of
// Postgres timestamps.
func (c SystemClock) Now() time.Time {
	return time.Now().In(c.location).Truncate(time.Microsecond)
}

// FixedClock always reports the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
