// Package event models branding events and implements the two-stage
// validation pipeline over an events directory tree: per-directory checks
// first, then cross-event schedule checks over the survivors.
package event

import (
	"fmt"
	"strings"
	"time"
)

// scheduleYear is the arbitrary year all month/day values are normalized
// onto. It is a leap year so February 29 stays representable.
const scheduleYear = 2020

// dateLayout matches values like "July 10" once the schedule year is appended.
const dateLayout = "January 2 2006"

// Event is the runtime representation of a correctly configured event.
type Event struct {
	Name        string
	Fallback    bool
	StartDate   time.Time // zero for the fallback event
	EndDate     time.Time // zero for the fallback event
	Description string
	Banners     int // direct files in the banners directory
	ServerIcons int // direct files in the server icons directory
}

// Window renders the active range for display, e.g. "June 1 - June 10".
func (e Event) Window() string {
	if e.Fallback {
		return "fallback"
	}
	if e.StartDate.Equal(e.EndDate) {
		return FormatDay(e.StartDate)
	}
	return fmt.Sprintf("%s - %s", FormatDay(e.StartDate), FormatDay(e.EndDate))
}

// ParseDay parses a year-agnostic "Month Day" value such as "July 10" and
// normalizes it onto the schedule year.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, fmt.Sprintf("%s %d", strings.TrimSpace(s), scheduleYear))
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a valid \"Month Day\" date", s)
	}
	return t, nil
}

// FormatDay renders a normalized date back as "Month Day".
func FormatDay(t time.Time) string {
	return t.Format("January 2")
}
