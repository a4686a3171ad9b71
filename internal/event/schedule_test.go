package event

import (
	"testing"
	"time"

	"brandlint/internal/report"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDay(s)
	if err != nil {
		t.Fatalf("ParseDay(%q): %v", s, err)
	}
	return d
}

func dated(t *testing.T, name, start, end string) Event {
	t.Helper()
	return Event{Name: name, StartDate: day(t, start), EndDate: day(t, end)}
}

func TestCheckScheduleValid(t *testing.T) {
	issues := CheckSchedule([]Event{
		{Name: "fallback", Fallback: true},
		dated(t, "spring", "March 20", "March 27"),
		dated(t, "summer", "June 1", "June 10"),
	})
	if len(issues) != 0 {
		t.Fatalf("issues = %v, want none", issues)
	}
}

func TestCheckScheduleFallbackCount(t *testing.T) {
	t.Run("zero", func(t *testing.T) {
		issues := CheckSchedule([]Event{dated(t, "summer", "June 1", "June 10")})
		if len(issues) != 1 || issues[0].Code != report.FallbackCount {
			t.Fatalf("issues = %v, want one fallback_count issue", issues)
		}
		if issues[0].Message != "there is no fallback event" {
			t.Fatalf("message = %q", issues[0].Message)
		}
	})

	t.Run("multiple", func(t *testing.T) {
		issues := CheckSchedule([]Event{
			{Name: "b", Fallback: true},
			{Name: "a", Fallback: true},
		})
		if len(issues) != 1 || issues[0].Code != report.FallbackCount {
			t.Fatalf("issues = %v, want one fallback_count issue", issues)
		}
		want := "there are multiple fallback events: a, b (must be exactly 1)"
		if issues[0].Message != want {
			t.Fatalf("message = %q, want %q", issues[0].Message, want)
		}
	})
}

func TestCheckScheduleCollisions(t *testing.T) {
	cases := []struct {
		name     string
		a, b     Event
		wantSpan string // empty means no collision expected
	}{
		{
			name:     "shared_boundary_day",
			a:        dated(t, "first", "June 1", "June 10"),
			b:        dated(t, "second", "June 10", "June 15"),
			wantSpan: "June 10",
		},
		{
			name:     "nested_range",
			a:        dated(t, "first", "June 1", "June 30"),
			b:        dated(t, "second", "June 5", "June 12"),
			wantSpan: "June 5 - June 12",
		},
		{
			name:     "partial_overlap",
			a:        dated(t, "first", "October 1", "October 20"),
			b:        dated(t, "second", "October 15", "October 31"),
			wantSpan: "October 15 - October 20",
		},
		{
			name: "adjacent_days_do_not_collide",
			a:    dated(t, "first", "June 1", "June 10"),
			b:    dated(t, "second", "June 11", "June 15"),
		},
		{
			name: "disjoint_months",
			a:    dated(t, "first", "April 1", "April 10"),
			b:    dated(t, "second", "September 1", "September 10"),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			events := []Event{{Name: "fallback", Fallback: true}, tc.a, tc.b}
			issues := CheckSchedule(events)

			if tc.wantSpan == "" {
				if len(issues) != 0 {
					t.Fatalf("issues = %v, want none", issues)
				}
				return
			}

			if len(issues) != 1 || issues[0].Code != report.EventCollision {
				t.Fatalf("issues = %v, want one event_collision issue", issues)
			}
			want := "event collision: first and second overlap on " + tc.wantSpan
			if issues[0].Message != want {
				t.Fatalf("message = %q, want %q", issues[0].Message, want)
			}
		})
	}
}

func TestCheckScheduleReportsEveryCollidingPair(t *testing.T) {
	issues := CheckSchedule([]Event{
		{Name: "fallback", Fallback: true},
		dated(t, "a", "June 1", "June 20"),
		dated(t, "b", "June 5", "June 10"),
		dated(t, "c", "June 8", "June 25"),
	})

	var collisions int
	for _, it := range issues {
		if it.Code == report.EventCollision {
			collisions++
		}
	}
	if collisions != 3 { // a/b, a/c, b/c
		t.Fatalf("collisions = %d, want 3: %v", collisions, issues)
	}
}
