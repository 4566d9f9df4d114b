package monitor

import (
	"fmt"
	"time"
)

// DownReason classifies why a check failed to produce a completed HTTP response.
type DownReason int

const (
	ReasonNone DownReason = iota
	ReasonTimeout
	ReasonTLS
	ReasonConnection
	// ReasonHTTP marks a completed response with status >= 400, reported as
	// down only when strict HTTP classification is enabled.
	ReasonHTTP
)

// String returns the display label for the reason.
func (r DownReason) String() string {
	switch r {
	case ReasonTimeout:
		return "Timeout"
	case ReasonTLS:
		return "SSL Error"
	case ReasonConnection:
		return "Connection Error"
	case ReasonHTTP:
		return "HTTP Error"
	default:
		return "Unknown Error"
	}
}

// CheckResult is the outcome of a single check against one target.
type CheckResult struct {
	Up         bool
	StatusCode int           // set whenever an HTTP response completed
	Reason     DownReason    // set when Up is false
	Latency    time.Duration // wall clock from request start to terminal outcome
	HasLatency bool          // false when the connection never completed
	Err        error         // underlying error for diagnostics, nil when Up
}

// StatusLabel renders the result as "UP (200)" or "DOWN (Timeout)".
func (r CheckResult) StatusLabel() string {
	if r.Up {
		return fmt.Sprintf("UP (%d)", r.StatusCode)
	}
	if r.Reason == ReasonHTTP {
		return fmt.Sprintf("DOWN (HTTP %d)", r.StatusCode)
	}
	return fmt.Sprintf("DOWN (%s)", r.Reason)
}

// LatencyLabel renders the round-trip time as "123ms", or "N/A" when the
// check never completed a connection.
func (r CheckResult) LatencyLabel() string {
	if !r.HasLatency {
		return "N/A"
	}
	return fmt.Sprintf("%dms", r.Latency.Milliseconds())
}

// Sample is one entry in a target's latency history. Gap samples hold the
// position of a check that produced no measurable latency so the time axis
// stays intact.
type Sample struct {
	Value float64 // milliseconds
	Gap   bool
}

// Row is the per-target slice of a Snapshot.
type Row struct {
	URL              string
	CheckedAt        time.Time
	Result           CheckResult
	Sparkline        string
	History          []Sample
	Checks           int
	Fails            int
	ConsecutiveFails int
}

// UptimePercent returns the share of checks that classified as up, in 0-100.
// Returns 100 before the first check completes.
func (r Row) UptimePercent() float64 {
	if r.Checks == 0 {
		return 100
	}
	return float64(r.Checks-r.Fails) / float64(r.Checks) * 100
}

// Snapshot is the immutable result of one poll cycle, ready for display.
// Rows preserve the original target input order; every row shares the
// cycle's timestamp.
type Snapshot struct {
	Cycle    uint64
	TakenAt  time.Time
	Duration time.Duration
	Rows     []Row
}
