package monitor

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upRow(url string, latency time.Duration) Row {
	return Row{
		URL:    url,
		Checks: 1,
		Result: CheckResult{Up: true, StatusCode: 200, Latency: latency, HasLatency: true},
	}
}

func downRow(url string, reason DownReason) Row {
	return Row{
		URL:              url,
		Checks:           1,
		Fails:            1,
		ConsecutiveFails: 1,
		Result:           CheckResult{Reason: reason},
	}
}

func TestModelAppliesSnapshot(t *testing.T) {
	snapshots := make(chan Snapshot, 1)
	m := NewModel([]string{"https://a.example", "https://b.example"}, snapshots, nil, nil, "v0.1.0", 10*time.Second)

	snapshot := Snapshot{
		Cycle:    1,
		TakenAt:  time.Now(),
		Duration: 150 * time.Millisecond,
		Rows: []Row{
			upRow("https://a.example", 120*time.Millisecond),
			downRow("https://b.example", ReasonTimeout),
		},
	}

	updated, cmd := m.Update(snapshotMsg(snapshot))
	m = updated.(Model)

	require.Len(t, m.rows, 2)
	assert.Equal(t, uint64(1), m.cycle)
	assert.Equal(t, 1, m.UpCount())
	assert.NotNil(t, cmd, "model must re-arm the snapshot receiver")
}

func TestModelPreservesSelectionAcrossSnapshots(t *testing.T) {
	m := NewModel([]string{"https://a.example", "https://b.example"}, nil, nil, nil, "v0.1.0", 0)

	first := Snapshot{Cycle: 1, Rows: []Row{
		upRow("https://a.example", time.Millisecond),
		upRow("https://b.example", time.Millisecond),
	}}
	m.applySnapshot(first)

	m.selected = 1
	assert.Equal(t, "https://b.example", m.SelectedURL())

	// Status sort puts down targets first, moving b.example around
	m.sortOrder = SortByStatus
	second := Snapshot{Cycle: 2, Rows: []Row{
		upRow("https://a.example", time.Millisecond),
		downRow("https://b.example", ReasonConnection),
	}}
	m.applySnapshot(second)

	assert.Equal(t, "https://b.example", m.SelectedURL())
	assert.Equal(t, 0, m.selected, "down target sorts to the top")
}

func TestModelSortOrders(t *testing.T) {
	rows := []Row{
		{URL: "https://c.example", Checks: 1, Result: CheckResult{Up: true, StatusCode: 200, Latency: 50 * time.Millisecond, HasLatency: true}},
		{URL: "https://a.example", Checks: 1, Result: CheckResult{Up: true, StatusCode: 200, Latency: 300 * time.Millisecond, HasLatency: true}},
		{URL: "https://b.example", Checks: 1, Fails: 1, Result: CheckResult{Reason: ReasonTimeout}},
	}

	tests := []struct {
		name     string
		order    SortOrder
		expected []string
	}{
		{
			name:     "input order",
			order:    SortByInput,
			expected: []string{"https://c.example", "https://a.example", "https://b.example"},
		},
		{
			name:     "url order",
			order:    SortByURL,
			expected: []string{"https://a.example", "https://b.example", "https://c.example"},
		},
		{
			name:     "status puts failures first",
			order:    SortByStatus,
			expected: []string{"https://b.example", "https://a.example", "https://c.example"},
		},
		{
			name:     "latency puts missing then slowest first",
			order:    SortByLatency,
			expected: []string{"https://b.example", "https://a.example", "https://c.example"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel([]string{"https://c.example", "https://a.example", "https://b.example"}, nil, nil, nil, "v0.1.0", 0)
			m.rows = append([]Row(nil), rows...)
			m.sortOrder = tt.order

			m.sortRows()

			require.Len(t, m.rows, len(tt.expected))
			for i, url := range tt.expected {
				assert.Equal(t, url, m.rows[i].URL)
			}
		})
	}
}

func TestModelWindowResize(t *testing.T) {
	m := NewModel([]string{"https://a.example"}, nil, nil, nil, "v0.1.0", 0)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.True(t, m.viewportReady)
}

func TestModelViewEmptyWhileQuitting(t *testing.T) {
	m := testModelWithRows("https://a.example")
	m.quitting = true
	assert.Empty(t, m.View())
}

func TestSecondsSinceUpdate(t *testing.T) {
	m := NewModel(nil, nil, nil, nil, "v0.1.0", 0)
	assert.Equal(t, 0, m.SecondsSinceUpdate())

	m.lastUpdate = time.Now().Add(-3 * time.Second)
	assert.GreaterOrEqual(t, m.SecondsSinceUpdate(), 3)
}
