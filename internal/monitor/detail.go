package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Detail view styles
var (
	detailContainerStyle = lipgloss.NewStyle().
				Padding(1, 2)

	detailSectionStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder).
				Padding(0, 1).
				MarginBottom(1)
)

// updateDetailViewportContent refreshes the viewport with the selected
// target's detail view.
func (m *Model) updateDetailViewportContent() {
	if !m.viewportReady {
		return
	}
	m.detailViewport.SetContent(m.renderDetailView())
}

// renderDetailView renders the expanded single-target detail view.
func (m Model) renderDetailView() string {
	if m.selected < 0 || m.selected >= len(m.rows) {
		return LabelStyle.Render("No target selected")
	}
	row := m.rows[m.selected]

	var b strings.Builder

	b.WriteString(m.renderDetailHeader(row))
	b.WriteString("\n\n")

	contentWidth := m.width - 6
	if contentWidth < 40 {
		contentWidth = 40
	}

	b.WriteString(m.renderDetailLatencySection(row, contentWidth))
	b.WriteString("\n")
	b.WriteString(m.renderDetailStatsSection(row, contentWidth))
	b.WriteString("\n")
	b.WriteString(MutedStyle.Render("Esc to return · up/down to switch target"))

	return detailContainerStyle.Render(b.String())
}

// renderDetailHeader renders the target URL and status prominently.
func (m Model) renderDetailHeader(row Row) string {
	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render(row.URL)

	statusStyle := StatusDownStyle
	glyph := StatusDownGlyph
	if row.Result.Up {
		statusStyle = StatusUpStyle
		glyph = StatusUpGlyph
	}
	status := statusStyle.Render(glyph + " " + row.Result.StatusLabel())

	return fmt.Sprintf("%s  %s", title, status)
}

// renderDetailLatencySection renders the latency history with a full-width
// sparkline and summary statistics.
func (m Model) renderDetailLatencySection(row Row, width int) string {
	var lines []string
	lines = append(lines, LabelStyle.Render("Response Time"))

	spark := row.Sparkline
	if spark == "" {
		spark = MutedStyle.Render("no samples yet")
	} else {
		spark = SparklineStyle.Render(spark)
	}
	lines = append(lines, spark)

	minVal, maxVal, avg, samples := latencyStats(row.History)
	if samples > 0 {
		stats := fmt.Sprintf("min %dms   avg %dms   max %dms   last %s",
			int(minVal), int(avg), int(maxVal), row.Result.LatencyLabel())
		lines = append(lines, ValueStyle.Render(stats))
	} else {
		lines = append(lines, MutedStyle.Render("no completed checks in history"))
	}

	return detailSectionStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// renderDetailStatsSection renders lifetime counters for the target.
func (m Model) renderDetailStatsSection(row Row, width int) string {
	var lines []string
	lines = append(lines, LabelStyle.Render("Checks"))

	lines = append(lines, ValueStyle.Render(fmt.Sprintf(
		"total %d   failed %d   uptime %.1f%%",
		row.Checks, row.Fails, row.UptimePercent())))

	if row.ConsecutiveFails > 0 {
		streak := fmt.Sprintf("%d consecutive failures", row.ConsecutiveFails)
		if !row.Result.Up {
			streak += " (" + row.Result.Reason.String() + ")"
		}
		lines = append(lines, StatusDownStyle.Render(streak))
	}

	lines = append(lines, MutedStyle.Render("last checked "+row.CheckedAt.Format("15:04:05")))

	return detailSectionStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// latencyStats summarizes the non-gap samples in a history window.
func latencyStats(history []Sample) (minVal, maxVal, avg float64, samples int) {
	var sum float64
	for _, s := range history {
		if s.Gap {
			continue
		}
		if samples == 0 {
			minVal, maxVal = s.Value, s.Value
		}
		if s.Value < minVal {
			minVal = s.Value
		}
		if s.Value > maxVal {
			maxVal = s.Value
		}
		sum += s.Value
		samples++
	}
	if samples > 0 {
		avg = sum / float64(samples)
	}
	return minVal, maxVal, avg, samples
}
