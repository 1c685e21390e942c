// Package render formats tabular CLI output.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	sepStyle    = lipgloss.NewStyle().Faint(true)
)

// Table renders headers and rows as an aligned text table. Rows shorter than
// the header are padded with empty cells; longer rows are truncated.
func Table(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		widths[i] += 2
	}

	var sb strings.Builder
	writeRow(&sb, headers, widths, headerStyle)

	var total int
	for _, w := range widths {
		total += w + 1
	}
	sb.WriteString(sepStyle.Render(strings.Repeat("-", total-1)))
	sb.WriteString("\n")

	for _, row := range rows {
		cells := make([]string, len(headers))
		copy(cells, row)
		writeRow(&sb, cells, widths, cellStyle)
	}

	return sb.String()
}

func writeRow(sb *strings.Builder, cells []string, widths []int, style lipgloss.Style) {
	for i, cell := range cells {
		sb.WriteString(style.Width(widths[i]).Render(cell))
		if i < len(cells)-1 {
			sb.WriteString(sepStyle.Render("|"))
		}
	}
	sb.WriteString("\n")
}
