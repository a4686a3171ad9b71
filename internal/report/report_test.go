package report

import (
	"strings"
	"testing"
)

func TestReportPassFailTracking(t *testing.T) {
	r := New()
	if r.RunID == "" {
		t.Fatal("RunID is empty")
	}

	r.Record("good", nil)
	r.Record("warned", []Issue{{Severity: SeverityWarning, Code: UnknownField, Event: "warned", Message: "unrecognized front-matter key 'colour'"}})
	r.Record("bad", []Issue{{Severity: SeverityError, Code: MissingMetadata, Event: "bad", Message: "missing 'meta.md'"}})

	if !r.Passed("good") || !r.Passed("warned") {
		t.Fatal("events without errors should pass")
	}
	if r.Passed("bad") {
		t.Fatal("event with an error should fail")
	}

	errs, warns := r.Counts()
	if errs != 1 || warns != 1 {
		t.Fatalf("Counts = %d, %d, want 1, 1", errs, warns)
	}
}

func TestReportFailedSemantics(t *testing.T) {
	warnOnly := New()
	warnOnly.Record("ev", []Issue{{Severity: SeverityWarning, Code: UnknownField, Event: "ev", Message: "m"}})
	if warnOnly.Failed(false) {
		t.Fatal("warnings alone should not fail the run")
	}
	if !warnOnly.Failed(true) {
		t.Fatal("fail-on-warn should fail a run with warnings")
	}

	clean := New()
	clean.Record("ev", nil)
	if clean.Failed(true) {
		t.Fatal("clean run failed")
	}
}

func TestReportIssuesDeterministicOrder(t *testing.T) {
	r := New()
	r.Record("zebra", []Issue{{Severity: SeverityError, Code: MissingMetadata, Event: "zebra", Message: "m"}})
	r.Record("apple", []Issue{
		{Severity: SeverityError, Code: MissingDescription, Event: "apple", Message: "m"},
		{Severity: SeverityError, Code: DescriptionTooLong, Event: "apple", Message: "m"},
	})

	got := r.Issues()
	if got[0].Event != "apple" || got[0].Code != DescriptionTooLong {
		t.Fatalf("first issue = %+v", got[0])
	}
	if got[2].Event != "zebra" {
		t.Fatalf("last issue = %+v", got[2])
	}
}

func TestReportRenderSuccess(t *testing.T) {
	r := New()
	r.Record("christmas", nil)
	r.Record("fallback", nil)

	out := r.Render(false)
	for _, want := range []string{
		"[PASS] [christmas]",
		"[PASS] [fallback]",
		"[PASS] All 2 events passed validation",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatal("plain render contains escape sequences")
	}
}

func TestReportRenderFailures(t *testing.T) {
	r := New()
	r.Record("ok", nil)
	r.Record("broken", []Issue{{Severity: SeverityError, Code: MissingAssetDir, Event: "broken", Message: "no files in 'banners'"}})
	r.DatesSkipped = true

	out := r.Render(false)
	for _, want := range []string{
		"[PASS] [ok]",
		"[FAIL] [broken]",
		"  - error: no files in 'banners'",
		"Dates will not be verified until all events pass validation!",
		"Issues: 1 errors, 0 warnings",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestReportRenderGlobalIssues(t *testing.T) {
	r := New()
	r.Record("summer", nil)
	r.Record("winter", nil)
	r.Add(Issue{
		Severity: SeverityError,
		Code:     EventCollision,
		Message:  "event collision: summer and winter overlap on June 10",
	})

	out := r.Render(false)
	if !strings.Contains(out, "[FAIL] event collision: summer and winter overlap on June 10") {
		t.Fatalf("output missing collision line:\n%s", out)
	}
}

func TestTableRender(t *testing.T) {
	tbl := NewTable("EVENT", "WINDOW")
	tbl.AddRow("halloween", "October 20 - October 31")
	tbl.AddRow("fallback", "fallback")

	out := tbl.Render(false)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "EVENT") {
		t.Fatalf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "halloween") || !strings.Contains(lines[1], "October 20") {
		t.Fatalf("row = %q", lines[1])
	}
}
