package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column widths for the dashboard table.
const (
	viewTimeWidth    = 10
	viewSiteWidth    = 34
	viewStatusWidth  = 24
	viewLatencyWidth = 15
	trendMinWidth    = 10
)

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	if m.showHelp {
		return m.renderHelpOverlay("")
	}

	var b strings.Builder

	header := m.renderHeader()
	b.WriteString(header)
	b.WriteString("\n\n")

	if m.viewMode == ViewDetail {
		if m.viewportReady {
			b.WriteString(m.detailViewport.View())
		} else {
			b.WriteString(m.renderDetailView())
		}
	} else {
		b.WriteString(m.renderTable())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the dashboard header with summary stats.
func (m Model) renderHeader() string {
	total := len(m.rows)
	up := m.UpCount()
	lastUpdate := m.SecondsSinceUpdate()

	var updateText string
	switch {
	case m.lastUpdate.IsZero():
		updateText = "waiting for first cycle"
	case lastUpdate == 0:
		updateText = "just now"
	case lastUpdate == 1:
		updateText = "1s ago"
	default:
		updateText = fmt.Sprintf("%ds ago", lastUpdate)
	}

	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render("uptop " + m.version)

	stats := lipgloss.NewStyle().
		Foreground(ColorTextSecondary).
		Render(fmt.Sprintf(" | %d targets | %d up | every %s | updated %s", total, up, m.interval, updateText))

	return HeaderStyle.Render(title + stats)
}

// renderTable renders the target rows as a table with the selected row
// highlighted.
func (m Model) renderTable() string {
	if len(m.rows) == 0 {
		return LabelStyle.Render("  " + m.spinner.View() + " waiting for first poll cycle...")
	}

	var b strings.Builder

	header := "  " +
		padCell("Time", viewTimeWidth) +
		padCell("Site", viewSiteWidth) +
		padCell("Status", viewStatusWidth) +
		padCell("Response Time", viewLatencyWidth) +
		"Trend"
	b.WriteString(TableHeaderStyle.Render(header))
	b.WriteString("\n")

	trendWidth := m.trendWidth()

	for i, row := range m.rows {
		b.WriteString(m.renderRow(row, i == m.selected, trendWidth))
		b.WriteString("\n")
	}

	return b.String()
}

// renderRow renders a single target line.
func (m Model) renderRow(row Row, selected bool, trendWidth int) string {
	statusStyle := StatusDownStyle
	glyph := StatusDownGlyph
	if row.Result.Up {
		statusStyle = StatusUpStyle
		glyph = StatusUpGlyph
	}

	latencyStyle := ValueStyle
	if row.Result.Up && row.Result.Latency >= SlowLatencyThreshold {
		latencyStyle = StatusDegradeStyle
	}

	cursor := "  "
	if selected {
		cursor = lipgloss.NewStyle().Foreground(ColorAccent).Render("❯ ")
	}

	site := row.URL
	if len([]rune(site)) > viewSiteWidth-2 {
		site = string([]rune(site)[:viewSiteWidth-3]) + "…"
	}

	line := cursor +
		MutedStyle.Render(padCell(row.CheckedAt.Format("15:04:05"), viewTimeWidth)) +
		statusStyle.Render(padCell(site, viewSiteWidth)) +
		statusStyle.Render(padCell(glyph+" "+row.Result.StatusLabel(), viewStatusWidth)) +
		latencyStyle.Render(padCell(row.Result.LatencyLabel(), viewLatencyWidth)) +
		SparklineStyle.Render(TrimSparkline(row.Sparkline, trendWidth))

	if selected {
		return RowSelectedStyle.Render(line)
	}
	return line
}

// trendWidth returns how many sparkline glyphs fit in the Trend column.
func (m Model) trendWidth() int {
	used := 2 + viewTimeWidth + viewSiteWidth + viewStatusWidth + viewLatencyWidth
	width := m.width - used - 2
	if width < trendMinWidth {
		width = trendMinWidth
	}
	if width > HistorySize {
		width = HistorySize
	}
	return width
}

// renderFooter renders key hints and cycle stats.
func (m Model) renderFooter() string {
	hints := "q quit · r refresh · s sort (" + m.sortOrder.String() + ") · enter details · ? help"

	var cycleText string
	if m.cycle > 0 {
		cycleText = fmt.Sprintf("  cycle %d in %dms", m.cycle, m.cycleDuration.Milliseconds())
	} else {
		cycleText = "  " + m.spinner.View() + " polling"
	}

	return FooterStyle.Render(hints + cycleText)
}

// padCell pads a plain string to width columns.
func padCell(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
