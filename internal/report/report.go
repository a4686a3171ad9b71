// Package report collects validation issues and renders the run report
// printed in CI and in watch mode.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Severity of a single issue. Warnings fail the run only when the caller
// asks for that via Failed.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Code identifies one class of event misconfiguration.
type Code string

const (
	MissingMetadata    Code = "missing_metadata"
	MalformedMetadata  Code = "malformed_metadata"
	InvalidDateRange   Code = "invalid_date_range"
	MissingDescription Code = "missing_description"
	DescriptionTooLong Code = "description_too_long"
	MissingAssetDir    Code = "missing_asset_dir"
	UnknownField       Code = "unknown_field"
	FallbackCount      Code = "fallback_count"
	EventCollision     Code = "event_collision"
)

// Issue is a single validation finding. Event is empty for collection-wide
// findings such as fallback-count or collision problems.
type Issue struct {
	Severity Severity
	Code     Code
	Event    string
	Message  string
}

// Report aggregates the findings of one validation run.
type Report struct {
	RunID string

	scanned []string
	failed  map[string]bool
	issues  []Issue

	// DatesSkipped is set when per-event failures prevented the schedule
	// stage from running.
	DatesSkipped bool
}

// New returns an empty report tagged with a fresh run id.
func New() *Report {
	return &Report{
		RunID:  uuid.NewString(),
		failed: make(map[string]bool),
	}
}

// Record registers one scanned event and its stage-one issues.
func (r *Report) Record(event string, issues []Issue) {
	r.scanned = append(r.scanned, event)
	for _, it := range issues {
		if it.Severity == SeverityError {
			r.failed[event] = true
		}
	}
	r.issues = append(r.issues, issues...)
}

// Add appends collection-wide issues from the schedule stage.
func (r *Report) Add(issues ...Issue) {
	r.issues = append(r.issues, issues...)
}

// Events returns the scanned event names, sorted.
func (r *Report) Events() []string {
	names := append([]string(nil), r.scanned...)
	sort.Strings(names)
	return names
}

// Passed reports whether the named event survived stage one.
func (r *Report) Passed(event string) bool {
	return !r.failed[event]
}

// Issues returns all findings in deterministic order: event name first,
// then code, then message.
func (r *Report) Issues() []Issue {
	out := append([]Issue(nil), r.issues...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Event != out[j].Event {
			return out[i].Event < out[j].Event
		}
		if out[i].Code != out[j].Code {
			return out[i].Code < out[j].Code
		}
		return out[i].Message < out[j].Message
	})
	return out
}

// Counts returns the number of error and warning findings.
func (r *Report) Counts() (errs, warns int) {
	for _, it := range r.issues {
		switch it.Severity {
		case SeverityError:
			errs++
		case SeverityWarning:
			warns++
		}
	}
	return errs, warns
}

// Failed reports whether the run should exit non-zero.
func (r *Report) Failed(failOnWarn bool) bool {
	errs, warns := r.Counts()
	return errs > 0 || (failOnWarn && warns > 0)
}

// Render produces the human-readable report. When styled is false the
// output carries no escape sequences, which is what CI logs want.
func (r *Report) Render(styled bool) string {
	st := newStyles(styled)
	var sb strings.Builder

	byEvent := make(map[string][]Issue)
	var global []Issue
	for _, it := range r.Issues() {
		if it.Event == "" {
			global = append(global, it)
			continue
		}
		byEvent[it.Event] = append(byEvent[it.Event], it)
	}

	for _, name := range r.Events() {
		if r.Passed(name) {
			sb.WriteString(fmt.Sprintf("%s [%s]\n", st.pass.Render("[PASS]"), name))
		} else {
			sb.WriteString(fmt.Sprintf("%s [%s]\n", st.fail.Render("[FAIL]"), name))
		}
		for _, it := range byEvent[name] {
			sb.WriteString(fmt.Sprintf("  - %s: %s\n", st.severity(it.Severity), it.Message))
		}
	}

	if r.DatesSkipped {
		sb.WriteString(st.warn.Render("Dates will not be verified until all events pass validation!"))
		sb.WriteString("\n")
	}

	for _, it := range global {
		sb.WriteString(fmt.Sprintf("%s %s\n", st.fail.Render("[FAIL]"), it.Message))
	}

	errs, warns := r.Counts()
	if errs == 0 && warns == 0 {
		sb.WriteString(st.pass.Render(fmt.Sprintf("[PASS] All %d events passed validation", len(r.scanned))))
		sb.WriteString("\n")
	} else {
		sb.WriteString(fmt.Sprintf("Issues: %d errors, %d warnings\n", errs, warns))
	}

	return sb.String()
}
