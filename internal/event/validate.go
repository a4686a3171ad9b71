package event

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"

	"brandlint/internal/report"
)

// DefaultDescriptionLimit caps description length in characters. The chat
// platform rejects longer guild descriptions.
const DefaultDescriptionLimit = 2048

// Options control how an events tree is checked.
type Options struct {
	MetaFile         string
	BannersDir       string
	IconsDir         string
	DescriptionLimit int
	Ignore           []string // glob patterns matched against asset filenames
}

// DefaultOptions returns the layout the consuming bot expects.
func DefaultOptions() Options {
	return Options{
		MetaFile:         "meta.md",
		BannersDir:       "banners",
		IconsDir:         "server_icons",
		DescriptionLimit: DefaultDescriptionLimit,
	}
}

// Result is the outcome of one full validation run.
type Result struct {
	Report *report.Report
	Events []Event // stage-one survivors, in scan order
}

// ValidateTree runs both validation stages over root. The returned error
// covers setup problems only (unreadable root); misconfigurations are
// recorded as issues on the report.
func ValidateTree(root string, opts Options) (*Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("events root is not a directory: %s", root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	res := &Result{Report: report.New()}
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		ev, issues := validateDir(filepath.Join(root, entry.Name()), entry.Name(), opts)
		res.Report.Record(entry.Name(), issues)
		if res.Report.Passed(entry.Name()) {
			res.Events = append(res.Events, ev)
		}
	}

	if len(res.Events) != len(res.Report.Events()) {
		res.Report.DatesSkipped = true
		return res, nil
	}

	res.Report.Add(CheckSchedule(res.Events)...)
	return res, nil
}

// validateDir runs every stage-one check on one event directory and returns
// all issues found. Checks do not short-circuit so a single run reports
// every problem in the event.
func validateDir(dir, name string, opts Options) (Event, []report.Issue) {
	ev := Event{Name: name}
	var issues []report.Issue

	fail := func(code report.Code, format string, args ...any) {
		issues = append(issues, report.Issue{
			Severity: report.SeverityError,
			Code:     code,
			Event:    name,
			Message:  fmt.Sprintf(format, args...),
		})
	}
	warn := func(code report.Code, format string, args ...any) {
		issues = append(issues, report.Issue{
			Severity: report.SeverityWarning,
			Code:     code,
			Event:    name,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	ev.Banners = checkAssetDir(dir, opts.BannersDir, opts.Ignore, fail)
	ev.ServerIcons = checkAssetDir(dir, opts.IconsDir, opts.Ignore, fail)

	data, err := os.ReadFile(filepath.Join(dir, opts.MetaFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fail(report.MissingMetadata, "missing '%s'", opts.MetaFile)
		} else {
			fail(report.MissingMetadata, "cannot read '%s': %v", opts.MetaFile, err)
		}
		return ev, issues
	}

	meta, err := ParseMeta(data)
	if err != nil {
		fail(report.MalformedMetadata, "failed to parse '%s': %v", opts.MetaFile, err)
		return ev, issues
	}

	for _, key := range meta.Unknown {
		warn(report.UnknownField, "unrecognized front-matter key '%s'", key)
	}

	switch n := utf8.RuneCountInString(meta.Body); {
	case n == 0:
		fail(report.MissingDescription, "no description in '%s'", opts.MetaFile)
	case n > opts.DescriptionLimit:
		fail(report.DescriptionTooLong, "description is %d characters, must be <= %d", n, opts.DescriptionLimit)
	}
	ev.Description = meta.Body

	if meta.Fallback != nil && *meta.Fallback {
		ev.Fallback = true
		return ev, issues
	}

	var missing []string
	if meta.StartDate == "" {
		missing = append(missing, "start_date")
	}
	if meta.EndDate == "" {
		missing = append(missing, "end_date")
	}
	if len(missing) > 0 {
		fail(report.InvalidDateRange, "non-fallback event must have attributes: %s", strings.Join(missing, ", "))
		return ev, issues
	}

	start, startErr := ParseDay(meta.StartDate)
	if startErr != nil {
		fail(report.InvalidDateRange, "attribute 'start_date': %v", startErr)
	}
	end, endErr := ParseDay(meta.EndDate)
	if endErr != nil {
		fail(report.InvalidDateRange, "attribute 'end_date': %v", endErr)
	}
	if startErr != nil || endErr != nil {
		return ev, issues
	}

	if end.Before(start) {
		fail(report.InvalidDateRange, "end_date %s precedes start_date %s", FormatDay(end), FormatDay(start))
	}

	ev.StartDate = start
	ev.EndDate = end
	return ev, issues
}

// checkAssetDir counts the files directly inside dir/sub, recording an issue
// when the directory is absent or holds no files. Subdirectories are not
// descended into; the bot only reads top-level assets.
func checkAssetDir(dir, sub string, ignore []string, fail func(report.Code, string, ...any)) int {
	entries, err := os.ReadDir(filepath.Join(dir, sub))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fail(report.MissingAssetDir, "missing directory '%s'", sub)
		} else {
			fail(report.MissingAssetDir, "'%s' is not a readable directory: %v", sub, err)
		}
		return 0
	}

	n := 0
	for _, e := range entries {
		if e.IsDir() || ignored(e.Name(), ignore) {
			continue
		}
		n++
	}
	if n == 0 {
		fail(report.MissingAssetDir, "no files in '%s'", sub)
	}
	return n
}

func ignored(name string, patterns []string) bool {
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, name); err == nil && ok {
			return true
		}
	}
	return false
}
