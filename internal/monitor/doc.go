// Package monitor implements the availability poller and the real-time TUI
// dashboard that displays its results.
//
// The dashboard shows one row per monitored URL with its current status,
// response time, and a sparkline of recent latencies, with color-coded
// up/down indicators and a scrollable per-target detail view.
//
// # Architecture
//
// The package splits into two halves connected by a channel of snapshots:
//
//   - Poller: runs cycles on its own goroutine, fanning out one check per
//     target, folding the results into an immutable Snapshot per cycle
//   - Model: a Bubble Tea model (The Elm Architecture) that consumes
//     snapshots and renders them
//
// # Key Components
//
//	Poller        - Drives the repeating check cycle across all targets
//	HTTPChecker   - Issues one GET per check and classifies the outcome
//	historyBuffer - Ring buffer of the last 50 latency samples per target
//	Model         - The Bubble Tea model containing all dashboard state
//
// # Message Flow
//
// Cycles are anchored at their start time:
//
//  1. The poller checks every target concurrently and waits for all results
//  2. Counters and history update, and a Snapshot is published
//  3. snapshotMsg arrives in the model, replacing the displayed rows
//  4. The poller sleeps for interval minus the cycle's elapsed time
//
// A failed check records a gap in the target's history so the sparkline's
// time axis stays aligned across targets.
package monitor
