package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/uptop/internal/errors"
	"github.com/rileyhilliard/uptop/internal/monitor"
	"github.com/rileyhilliard/uptop/internal/ui"
)

var checkFormatFlag string

// checkCmd runs a single poll cycle and prints the results.
var checkCmd = &cobra.Command{
	Use:   "check [url...]",
	Short: "Check targets once and exit",
	Long: `Run exactly one poll cycle against the given URLs and print the results.
Exits non-zero when any target is down, so it composes with shell scripts
and CI checks.

Examples:
  uptop check example.com
  uptop check --format json example.com api.example.com
  uptop check --strict-http --format yaml example.com`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return checkCommand(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	AddMonitorFlags(checkCmd)
	checkCmd.Flags().StringVar(&checkFormatFlag, "format", "table", "output format: table, json, or yaml")
}

// checkReport is the machine-readable shape of a one-shot check.
type checkReport struct {
	CheckedAt time.Time           `json:"checked_at" yaml:"checked_at"`
	Targets   []checkReportTarget `json:"targets" yaml:"targets"`
}

type checkReportTarget struct {
	URL       string `json:"url" yaml:"url"`
	Up        bool   `json:"up" yaml:"up"`
	Status    string `json:"status" yaml:"status"`
	Code      int    `json:"code,omitempty" yaml:"code,omitempty"`
	LatencyMs int64  `json:"latency_ms,omitempty" yaml:"latency_ms,omitempty"`
	Reason    string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

func checkCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if checkFormatFlag != "table" && checkFormatFlag != "json" && checkFormatFlag != "yaml" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("unknown format %q", checkFormatFlag),
			"Use --format table, json, or yaml")
	}

	checker := monitor.NewHTTPChecker(cfg.Timeout, cfg.StrictHTTP)
	defer checker.Close()

	poller := monitor.NewPoller(cfg.Targets, checker, cfg.Interval)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Only animate on an interactive table run; json/yaml stay clean for pipes
	var spin *ui.Spinner
	if checkFormatFlag == "table" && stdoutIsTerminal() {
		spin = ui.NewSpinner(fmt.Sprintf("Checking %d targets", len(cfg.Targets)))
		spin.Start()
	}

	snapshot, err := poller.RunOnce(ctx)
	if spin != nil {
		spin.Clear()
	}
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTarget,
			"check did not complete",
			"The run was interrupted before all targets responded")
	}

	if err := printSnapshot(snapshot, checkFormatFlag); err != nil {
		return err
	}

	down := 0
	for _, row := range snapshot.Rows {
		if !row.Result.Up {
			down++
		}
	}
	if down > 0 {
		return errors.New(errors.ErrTarget,
			fmt.Sprintf("%d of %d targets down", down, len(snapshot.Rows)),
			"See the report above for per-target failure reasons")
	}
	return nil
}

// printSnapshot writes a snapshot to stdout in the requested format.
func printSnapshot(s monitor.Snapshot, format string) error {
	switch format {
	case "json":
		out, err := json.MarshalIndent(buildReport(s), "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to encode JSON report")
		}
		fmt.Println(string(out))

	case "yaml":
		out, err := yaml.Marshal(buildReport(s))
		if err != nil {
			return errors.Wrap(err, "failed to encode YAML report")
		}
		fmt.Print(string(out))

	default:
		fmt.Println(ui.RenderStatusTable(snapshotTableRows(s)))
	}
	return nil
}

func buildReport(s monitor.Snapshot) checkReport {
	report := checkReport{
		CheckedAt: s.TakenAt,
		Targets:   make([]checkReportTarget, len(s.Rows)),
	}
	for i, row := range s.Rows {
		target := checkReportTarget{
			URL:    row.URL,
			Up:     row.Result.Up,
			Status: row.Result.StatusLabel(),
			Code:   row.Result.StatusCode,
		}
		if row.Result.HasLatency {
			target.LatencyMs = row.Result.Latency.Milliseconds()
		}
		if !row.Result.Up {
			target.Reason = row.Result.Reason.String()
		}
		report.Targets[i] = target
	}
	return report
}
