package event

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"brandlint/internal/report"
)

// CheckSchedule runs the cross-event stage over stage-one survivors: the
// collection must hold exactly one fallback event, and the active windows
// of the rest must not overlap. Windows are closed intervals on the
// month/day axis, so two events sharing a single day collide.
func CheckSchedule(events []Event) []report.Issue {
	var issues []report.Issue

	var fallbacks []string
	var dated []Event
	for _, ev := range events {
		if ev.Fallback {
			fallbacks = append(fallbacks, ev.Name)
		} else {
			dated = append(dated, ev)
		}
	}

	switch len(fallbacks) {
	case 1:
	case 0:
		issues = append(issues, report.Issue{
			Severity: report.SeverityError,
			Code:     report.FallbackCount,
			Message:  "there is no fallback event",
		})
	default:
		sort.Strings(fallbacks)
		issues = append(issues, report.Issue{
			Severity: report.SeverityError,
			Code:     report.FallbackCount,
			Message:  fmt.Sprintf("there are multiple fallback events: %s (must be exactly 1)", strings.Join(fallbacks, ", ")),
		})
	}

	sort.Slice(dated, func(i, j int) bool {
		if !dated[i].StartDate.Equal(dated[j].StartDate) {
			return dated[i].StartDate.Before(dated[j].StartDate)
		}
		return dated[i].Name < dated[j].Name
	})

	for i := 0; i < len(dated); i++ {
		for j := i + 1; j < len(dated); j++ {
			a, b := dated[i], dated[j]
			if !overlaps(a, b) {
				continue
			}
			issues = append(issues, report.Issue{
				Severity: report.SeverityError,
				Code:     report.EventCollision,
				Message:  fmt.Sprintf("event collision: %s and %s overlap on %s", a.Name, b.Name, overlapSpan(a, b)),
			})
		}
	}

	return issues
}

// overlaps applies the closed-interval intersection test.
func overlaps(a, b Event) bool {
	return !a.StartDate.After(b.EndDate) && !b.StartDate.After(a.EndDate)
}

// overlapSpan formats the shared days of two colliding events, e.g.
// "June 10" or "June 8 - June 10".
func overlapSpan(a, b Event) string {
	start := laterOf(a.StartDate, b.StartDate)
	end := earlierOf(a.EndDate, b.EndDate)
	if start.Equal(end) {
		return FormatDay(start)
	}
	return fmt.Sprintf("%s - %s", FormatDay(start), FormatDay(end))
}

func laterOf(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlierOf(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
