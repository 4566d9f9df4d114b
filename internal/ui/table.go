package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusTableRow represents one target in the status table.
type StatusTableRow struct {
	Time    string // Check timestamp (e.g., "14:02:31")
	Site    string // Target URL
	Status  string // Status label (e.g., "UP (200)")
	Latency string // Response time or "N/A"
	Trend   string // Sparkline of recent latencies
	Up      bool   // Drives row coloring
}

// Column widths for the status table.
const (
	colTimeWidth    = 10
	colSiteWidth    = 32
	colStatusWidth  = 24
	colLatencyWidth = 15
)

// RenderStatusTable renders poll results as a formatted table. Up rows are
// green and down rows red, matching the dashboard coloring.
func RenderStatusTable(rows []StatusTableRow) string {
	if len(rows) == 0 {
		return "No targets to display"
	}

	successStyle := lipgloss.NewStyle().Foreground(ColorSuccess)
	errorStyle := lipgloss.NewStyle().Foreground(ColorError)
	mutedStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(ColorMuted)

	var output strings.Builder

	header := padRight("Time", colTimeWidth) +
		padRight("Site", colSiteWidth) +
		padRight("Status", colStatusWidth) +
		padRight("Response Time", colLatencyWidth) +
		"Trend"
	output.WriteString(headerStyle.Render(header))
	output.WriteString("\n")

	for _, row := range rows {
		rowStyle := errorStyle
		icon := SymbolFail
		if row.Up {
			rowStyle = successStyle
			icon = SymbolComplete
		}

		line := mutedStyle.Render(padRight(row.Time, colTimeWidth)) +
			rowStyle.Render(padRight(truncate(row.Site, colSiteWidth-2), colSiteWidth)) +
			rowStyle.Render(padRight(icon+" "+row.Status, colStatusWidth)) +
			rowStyle.Render(padRight(row.Latency, colLatencyWidth)) +
			mutedStyle.Render(row.Trend)
		output.WriteString(line)
		output.WriteString("\n")
	}

	return output.String()
}

// padRight pads a string to the specified width.
func padRight(s string, width int) string {
	// Account for ANSI codes when calculating visible length
	visibleLen := lipgloss.Width(s)
	if visibleLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visibleLen)
}

// truncate shortens a string to width runes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width || width <= 1 {
		return s
	}
	return string(runes[:width-1]) + "…"
}
