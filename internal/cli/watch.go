package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/rileyhilliard/uptop/internal/config"
	"github.com/rileyhilliard/uptop/internal/errors"
	"github.com/rileyhilliard/uptop/internal/logger"
	"github.com/rileyhilliard/uptop/internal/monitor"
	"github.com/rileyhilliard/uptop/internal/ui"
)

// watchCmd runs the continuous monitoring dashboard.
var watchCmd = &cobra.Command{
	Use:   "watch [url...]",
	Short: "Monitor targets continuously",
	Long: `Poll the given URLs on a fixed cadence and display their status in a
live dashboard. Without a terminal (or with --plain), each poll cycle
prints as a timestamped table instead.

Examples:
  uptop watch example.com
  uptop watch --plain example.com | tee uptime.log`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	AddMonitorFlags(watchCmd)
}

// watchCommand resolves config and runs either the TUI dashboard or the
// plain snapshot stream, depending on the terminal.
func watchCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	isTTY := stdoutIsTerminal()

	// Bare invocation on a terminal: ask for targets interactively
	if len(cfg.Targets) == 0 && isTTY && !cfg.Plain {
		if err := promptForTargets(cfg); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	checker := monitor.NewHTTPChecker(cfg.Timeout, cfg.StrictHTTP)
	defer checker.Close()

	poller := monitor.NewPoller(cfg.Targets, checker, cfg.Interval)
	poller.SetLogger(logger.NewEnvLogger("[poller]"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Plain || !isTTY {
		return runPlainWatch(ctx, poller)
	}
	return runDashboard(ctx, poller, cfg)
}

// runDashboard wires the poller to the Bubble Tea dashboard. The poller
// runs on its own goroutine and publishes snapshots on a channel the model
// consumes.
func runDashboard(ctx context.Context, poller *monitor.Poller, cfg *config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	snapshots := make(chan monitor.Snapshot, 1)
	pollDone := make(chan error, 1)

	go func() {
		pollDone <- poller.Run(ctx, func(s monitor.Snapshot) {
			select {
			case snapshots <- s:
			case <-ctx.Done():
			}
		})
		close(snapshots)
	}()

	model := monitor.NewModel(cfg.Targets, snapshots, poller.Refresh, cancel, formatVersion(version), cfg.Interval)
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Cancellation from outside (signal) must also tear down the TUI
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	_, err := p.Run()
	cancel()
	<-pollDone

	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"dashboard terminated unexpectedly",
			"Run with --plain if your terminal does not support the dashboard")
	}
	return nil
}

// runPlainWatch streams each snapshot as a timestamped table until the
// context is cancelled.
func runPlainWatch(ctx context.Context, poller *monitor.Poller) error {
	ui.PrintHeader(ui.HeaderInfo{
		Version: formatVersion(version),
		Tagline: "Terminal uptime monitor",
	})

	err := poller.Run(ctx, func(s monitor.Snapshot) {
		fmt.Println(ui.RenderStatusTable(snapshotTableRows(s)))
	})
	if stderrors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// snapshotTableRows converts a snapshot into table renderer rows.
func snapshotTableRows(s monitor.Snapshot) []ui.StatusTableRow {
	rows := make([]ui.StatusTableRow, len(s.Rows))
	for i, row := range s.Rows {
		rows[i] = ui.StatusTableRow{
			Time:    row.CheckedAt.Format("15:04:05"),
			Site:    row.URL,
			Status:  row.Result.StatusLabel(),
			Latency: row.Result.LatencyLabel(),
			Trend:   row.Sparkline,
			Up:      row.Result.Up,
		}
	}
	return rows
}

// promptForTargets asks for URLs and an interval via an interactive form.
func promptForTargets(cfg *config.Config) error {
	var rawTargets string
	interval := cfg.Interval.String()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Which sites should uptop watch?").
				Description("Space or comma separated, e.g. example.com api.example.com").
				Value(&rawTargets),
			huh.NewInput().
				Title("Poll interval").
				Description("How often to check, e.g. 10s, 1m").
				Value(&interval),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"failed to read targets",
			"Pass URLs as arguments instead, e.g. 'uptop example.com'")
	}

	fields := strings.FieldsFunc(rawTargets, func(r rune) bool {
		return r == ' ' || r == ','
	})
	for _, f := range fields {
		cfg.Targets = append(cfg.Targets, config.NormalizeTarget(f))
	}

	if interval != "" {
		d, err := time.ParseDuration(interval)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("%q doesn't look like a valid interval", interval),
				"Try something like 10s, 30s, or 1m")
		}
		cfg.Interval = d
	}

	return nil
}
