package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func init() {
	// Force a deterministic color profile so renders don't depend on the
	// terminal running the tests.
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestRenderStatusTable(t *testing.T) {
	rows := []StatusTableRow{
		{
			Time:    "14:02:31",
			Site:    "https://example.com",
			Status:  "UP (200)",
			Latency: "123ms",
			Trend:   "▁▂▃",
			Up:      true,
		},
		{
			Time:    "14:02:31",
			Site:    "https://down.example",
			Status:  "DOWN (Timeout)",
			Latency: "N/A",
			Trend:   "▁▂ ",
			Up:      false,
		},
	}

	output := RenderStatusTable(rows)

	assert.Contains(t, output, "Time")
	assert.Contains(t, output, "Site")
	assert.Contains(t, output, "Status")
	assert.Contains(t, output, "Response Time")
	assert.Contains(t, output, "Trend")

	assert.Contains(t, output, "https://example.com")
	assert.Contains(t, output, "UP (200)")
	assert.Contains(t, output, "123ms")
	assert.Contains(t, output, "DOWN (Timeout)")
	assert.Contains(t, output, "N/A")
	assert.Contains(t, output, "▁▂▃")

	// Up rows carry the filled dot, down rows the fail mark.
	assert.Contains(t, output, SymbolComplete+" UP (200)")
	assert.Contains(t, output, SymbolFail+" DOWN (Timeout)")
}

func TestRenderStatusTable_Empty(t *testing.T) {
	output := RenderStatusTable(nil)
	assert.Equal(t, "No targets to display", output)
}

func TestRenderStatusTable_OneLinePerRow(t *testing.T) {
	rows := []StatusTableRow{
		{Time: "10:00:00", Site: "https://a.example", Status: "UP (200)", Latency: "5ms", Up: true},
		{Time: "10:00:00", Site: "https://b.example", Status: "UP (204)", Latency: "9ms", Up: true},
	}

	output := RenderStatusTable(rows)
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")

	// Header (with its border line) plus one line per row
	assert.GreaterOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[len(lines)-2], "a.example")
	assert.Contains(t, lines[len(lines)-1], "b.example")
}

func TestRenderStatusTable_TruncatesLongURLs(t *testing.T) {
	long := "https://" + strings.Repeat("x", 80) + ".example"
	rows := []StatusTableRow{
		{Time: "10:00:00", Site: long, Status: "UP (200)", Latency: "5ms", Up: true},
	}

	output := RenderStatusTable(rows)
	assert.Contains(t, output, "…")
	assert.NotContains(t, output, long)
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{
			name:     "pads short string",
			input:    "abc",
			width:    6,
			expected: "abc   ",
		},
		{
			name:     "leaves long string",
			input:    "abcdef",
			width:    3,
			expected: "abcdef",
		},
		{
			name:     "exact width unchanged",
			input:    "abc",
			width:    3,
			expected: "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, padRight(tt.input, tt.width))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
	assert.Equal(t, "abc", truncate("abc", 5))
}
