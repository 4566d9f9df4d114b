package monitor

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Dashboard color palette
const (
	// Background colors
	ColorDarkBg    = lipgloss.Color("#0A0A0F") // Deep void
	ColorSurfaceBg = lipgloss.Color("#12121A") // Dark surface
	ColorBorder    = lipgloss.Color("#2A2A4A") // Glass border (purple tint)

	// Semantic colors for target state - neon style
	ColorUp      = lipgloss.Color("#39FF14") // Neon green
	ColorDegrade = lipgloss.Color("#FFAA00") // Electric amber
	ColorDown    = lipgloss.Color("#FF0055") // Hot red-pink

	// Text colors
	ColorTextPrimary   = lipgloss.Color("#FFFFFF") // Pure white
	ColorTextSecondary = lipgloss.Color("#B4B4D0") // Lavender gray
	ColorTextMuted     = lipgloss.Color("#6B6B8D") // Purple-gray

	// Accent colors
	ColorAccent = lipgloss.Color("#FF2E97") // Neon pink

	// Graph colors
	ColorGraph = lipgloss.Color("#00FFFF") // Neon cyan
)

// SlowLatencyThreshold is the response time at which an up target's latency
// renders amber instead of white.
const SlowLatencyThreshold = time.Second

// Base styles for the dashboard
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	// Text styles
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	// Status styles
	StatusUpStyle = lipgloss.NewStyle().
			Foreground(ColorUp)

	StatusDownStyle = lipgloss.NewStyle().
			Foreground(ColorDown)

	StatusDegradeStyle = lipgloss.NewStyle().
				Foreground(ColorDegrade)

	// Table row styles
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary).
				Bold(true)

	RowSelectedStyle = lipgloss.NewStyle().
				Background(ColorSurfaceBg).
				Bold(true)

	SparklineStyle = lipgloss.NewStyle().
			Foreground(ColorGraph)
)

// Status indicator characters
const (
	StatusUpGlyph   = "◉" // Filled target
	StatusDownGlyph = "◌" // Dashed circle
)
