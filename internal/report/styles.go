package report

import "github.com/charmbracelet/lipgloss"

// Semantic colors shared with the rest of the output surface.
var (
	successColor = lipgloss.Color("#8BC34A") // lime green
	failureColor = lipgloss.Color("#e53935") // red
	warningColor = lipgloss.Color("#FFC107") // yellow
)

type styles struct {
	pass lipgloss.Style
	fail lipgloss.Style
	warn lipgloss.Style
}

// newStyles returns colored styles for terminal output, or inert ones for
// plain output.
func newStyles(styled bool) styles {
	if !styled {
		return styles{
			pass: lipgloss.NewStyle(),
			fail: lipgloss.NewStyle(),
			warn: lipgloss.NewStyle(),
		}
	}
	return styles{
		pass: lipgloss.NewStyle().Foreground(successColor).Bold(true),
		fail: lipgloss.NewStyle().Foreground(failureColor).Bold(true),
		warn: lipgloss.NewStyle().Foreground(warningColor),
	}
}

func (s styles) severity(sev Severity) string {
	switch sev {
	case SeverityError:
		return s.fail.Render(string(sev))
	case SeverityWarning:
		return s.warn.Render(string(sev))
	}
	return string(sev)
}
