// Package cli implements the uptop command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to the monitor package for the actual polling work:
//
//	uptop [url...]        - Watch targets (alias for watch)
//	uptop watch [url...]  - Continuous dashboard or plain stream
//	uptop check [url...]  - One poll cycle, table/json/yaml output
//	uptop version         - Build and runtime information
//	uptop completion      - Shell completion scripts (cobra built-in)
//
// # Flag Handling
//
// The monitoring flags (--interval, --timeout, --strict-http, --plain,
// --no-color) are registered on root, watch, and check. Configuration
// resolves through Viper with precedence defaults < UPTOP_* environment
// variables < flags; targets come from positional arguments or
// UPTOP_TARGETS.
//
// # Output Modes
//
// On a terminal, watch runs the Bubble Tea dashboard in the alternate
// screen. With --plain, or when stdout is not a terminal, each snapshot
// prints as a timestamped table instead, so output pipes cleanly.
package cli
