package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command. Bare "uptop [url...]" behaves like
// "uptop watch [url...]".
var rootCmd = &cobra.Command{
	Use:   "uptop [url...]",
	Short: "Terminal availability monitor",
	Long: `uptop polls a set of URLs on a fixed cadence and shows their status,
response times, and latency trends in a live terminal dashboard.

Targets come from arguments or the UPTOP_TARGETS environment variable.
Bare hosts are treated as https:// URLs.

Examples:
  uptop example.com api.example.com
  uptop --interval 30s https://example.com
  uptop check --format json example.com`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand(cmd, args)
	},
}

func init() {
	AddMonitorFlags(rootCmd)
}

// Execute runs the CLI. Structured errors render with their suggestion;
// the process exits non-zero on any failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
