package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rileyhilliard/uptop/internal/config"
	"github.com/rileyhilliard/uptop/internal/ui"
)

// AddMonitorFlags registers the monitoring flags shared by the root, watch,
// and check commands.
func AddMonitorFlags(cmd *cobra.Command) {
	cmd.Flags().Duration("interval", config.DefaultInterval, "time between poll cycle starts")
	cmd.Flags().Duration("timeout", config.DefaultTimeout, "per-check HTTP timeout")
	cmd.Flags().Bool("strict-http", false, "treat HTTP status >= 400 as down")
	cmd.Flags().Bool("plain", false, "print snapshots as plain tables instead of the dashboard")
	cmd.Flags().Bool("no-color", false, "disable colored output")
}

// loadConfig resolves configuration for a command invocation and applies
// the color profile before anything renders.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := config.Load(cmd.Flags(), args)
	if err != nil {
		return nil, err
	}
	if cfg.NoColor {
		ui.DisableColor()
	}
	return cfg, nil
}

// stdoutIsTerminal reports whether stdout is attached to a TTY.
// Split out so tests can stub it.
var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
