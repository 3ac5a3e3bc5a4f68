// Package clock supplies wall-clock time to services and page views.
package clock

import (
	"fmt"
	"time"
)

// Clock provides time operations that can be mocked for testing
type Clock interface {
	Now() time.Time
}

// System reads the host clock in UTC
type System struct{}

// New creates a System clock
func New() *System {
	return &System{}
}

func (System) Now() time.Time {
	return time.Now().UTC()
}

// Ago renders the distance between t and now the way the dashboard shows
// "last update" and directory listing ages. Future times read as "just now".
func Ago(now, t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour")
	default:
		return plural(int(d/(24*time.Hour)), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
