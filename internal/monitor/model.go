package monitor

import (
	"context"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the Bubble Tea model for the monitoring dashboard. It is a pure
// consumer: the poller runs on its own goroutine and publishes snapshots on
// a channel; the model renders whatever the latest snapshot holds.
type Model struct {
	rows       []Row
	inputOrder []string // Original target order for default sorting
	selected   int
	sortOrder  SortOrder
	viewMode   ViewMode
	showHelp   bool

	width  int
	height int

	// Latest cycle metadata
	cycle         uint64
	lastUpdate    time.Time
	cycleDuration time.Duration

	interval time.Duration
	version  string
	quitting bool

	snapshots <-chan Snapshot
	refresh   func()
	cancel    context.CancelFunc

	spinner spinner.Model

	// Detail view viewport for scrollable content
	detailViewport viewport.Model
	viewportReady  bool
}

// snapshotMsg carries a completed poll cycle into the update loop.
type snapshotMsg Snapshot

// NewModel creates a dashboard model consuming snapshots from the given
// channel. refresh requests an immediate poll cycle; cancel stops the
// poller when the user quits.
func NewModel(targets []string, snapshots <-chan Snapshot, refresh func(), cancel context.CancelFunc, version string, interval time.Duration) Model {
	order := make([]string, len(targets))
	copy(order, targets)

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(ColorAccent)

	return Model{
		inputOrder: order,
		selected:   0,
		sortOrder:  SortByInput,
		interval:   interval,
		version:    version,
		snapshots:  snapshots,
		refresh:    refresh,
		cancel:     cancel,
		spinner:    sp,
	}
}

// Init starts the spinner and begins listening for snapshots.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.waitForSnapshot(),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}
		// Unhandled keys scroll the detail viewport
		if m.viewMode == ViewDetail && m.viewportReady {
			var cmd tea.Cmd
			m.detailViewport, cmd = m.detailViewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Reserve space for header and footer
		headerHeight := 3
		footerHeight := 2
		viewportHeight := m.height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.viewportReady {
			m.detailViewport = viewport.New(m.width, viewportHeight)
			m.detailViewport.YPosition = headerHeight
			m.viewportReady = true
		} else {
			m.detailViewport.Width = m.width
			m.detailViewport.Height = viewportHeight
		}

		if m.viewMode == ViewDetail {
			m.updateDetailViewportContent()
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case snapshotMsg:
		m.applySnapshot(Snapshot(msg))
		if m.viewMode == ViewDetail {
			m.updateDetailViewportContent()
		}
		// Re-arm the receiver for the next cycle
		return m, m.waitForSnapshot()
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// waitForSnapshot returns a command that blocks until the poller publishes
// the next snapshot. The command re-arms itself from Update on delivery.
func (m Model) waitForSnapshot() tea.Cmd {
	return func() tea.Msg {
		snapshot, ok := <-m.snapshots
		if !ok {
			return nil
		}
		return snapshotMsg(snapshot)
	}
}

// applySnapshot replaces the displayed rows with a completed cycle,
// preserving the current selection by URL.
func (m *Model) applySnapshot(s Snapshot) {
	selectedURL := m.SelectedURL()

	m.rows = s.Rows
	m.cycle = s.Cycle
	m.lastUpdate = s.TakenAt
	m.cycleDuration = s.Duration

	m.sortRows()

	if selectedURL != "" {
		for i, row := range m.rows {
			if row.URL == selectedURL {
				m.selected = i
				break
			}
		}
	}
	if m.selected >= len(m.rows) {
		m.selected = len(m.rows) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// SelectedURL returns the URL of the currently selected row.
func (m Model) SelectedURL() string {
	if m.selected >= 0 && m.selected < len(m.rows) {
		return m.rows[m.selected].URL
	}
	return ""
}

// UpCount returns the number of targets currently up.
func (m Model) UpCount() int {
	count := 0
	for _, row := range m.rows {
		if row.Result.Up {
			count++
		}
	}
	return count
}

// SecondsSinceUpdate returns how many seconds have passed since the last cycle.
func (m Model) SecondsSinceUpdate() int {
	if m.lastUpdate.IsZero() {
		return 0
	}
	return int(time.Since(m.lastUpdate).Seconds())
}

// sortRows sorts the rows slice based on the current sort order.
// Preserves the selected row by updating the selected index after sorting.
func (m *Model) sortRows() {
	if len(m.rows) == 0 {
		return
	}

	selectedURL := m.SelectedURL()

	switch m.sortOrder {
	case SortByInput:
		orderIndex := make(map[string]int)
		for i, u := range m.inputOrder {
			orderIndex[u] = i
		}
		sort.SliceStable(m.rows, func(i, j int) bool {
			return orderIndex[m.rows[i].URL] < orderIndex[m.rows[j].URL]
		})

	case SortByURL:
		sort.SliceStable(m.rows, func(i, j int) bool {
			return m.rows[i].URL < m.rows[j].URL
		})

	case SortByStatus:
		// Down targets first so problems surface at the top
		sort.SliceStable(m.rows, func(i, j int) bool {
			upI := m.rows[i].Result.Up
			upJ := m.rows[j].Result.Up
			if upI != upJ {
				return !upI
			}
			return m.rows[i].URL < m.rows[j].URL
		})

	case SortByLatency:
		// Slowest first; rows without latency go to the top with the failures
		sort.SliceStable(m.rows, func(i, j int) bool {
			hasI := m.rows[i].Result.HasLatency
			hasJ := m.rows[j].Result.HasLatency
			if hasI != hasJ {
				return !hasI
			}
			if !hasI {
				return m.rows[i].URL < m.rows[j].URL
			}
			return m.rows[i].Result.Latency > m.rows[j].Result.Latency
		})
	}

	if selectedURL != "" {
		for i, row := range m.rows {
			if row.URL == selectedURL {
				m.selected = i
				break
			}
		}
	}
}
