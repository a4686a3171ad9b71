package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders small static tables, such as the event listing.
type Table struct {
	Headers []string
	Rows    [][]string
}

// NewTable creates a Table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{Headers: headers}
}

// AddRow appends a row.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render lays the table out with padded columns. When styled is true the
// header row is bold.
func (t *Table) Render(styled bool) string {
	if len(t.Rows) == 0 {
		return ""
	}

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	headerStyle := lipgloss.NewStyle()
	if styled {
		headerStyle = headerStyle.Bold(true)
	}

	var sb strings.Builder
	writeRow := func(cells []string, style lipgloss.Style) {
		for i, cell := range cells {
			if i >= len(widths) {
				break
			}
			sb.WriteString(style.Render(cell))
			if i < len(widths)-1 {
				sb.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+2))
			}
		}
		sb.WriteString("\n")
	}

	writeRow(t.Headers, headerStyle)
	for _, row := range t.Rows {
		writeRow(row, lipgloss.NewStyle())
	}
	return sb.String()
}
