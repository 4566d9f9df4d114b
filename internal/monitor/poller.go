package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rileyhilliard/uptop/internal/logger"
)

// Target tracks the per-URL state that persists across poll cycles.
type Target struct {
	url              string
	history          *historyBuffer
	checks           int
	fails            int
	consecutiveFails int
	last             CheckResult
	lastChecked      time.Time
}

// Poller drives the repeating check cycle across all targets. Each cycle
// fans out one check per target, waits for all of them, then folds the
// results into an immutable Snapshot.
type Poller struct {
	targets  []*Target
	checker  Checker
	interval time.Duration
	refresh  chan struct{}
	cycle    uint64
	log      logger.Logger
}

// NewPoller creates a poller over urls. Target order is preserved: rows in
// every snapshot appear in the same order the urls were given.
func NewPoller(urls []string, checker Checker, interval time.Duration) *Poller {
	targets := make([]*Target, 0, len(urls))
	for _, u := range urls {
		targets = append(targets, &Target{
			url:     u,
			history: newHistoryBuffer(HistorySize),
		})
	}

	return &Poller{
		targets:  targets,
		checker:  checker,
		interval: interval,
		refresh:  make(chan struct{}, 1),
		log:      logger.Noop(),
	}
}

// SetLogger replaces the poller's logger.
func (p *Poller) SetLogger(log logger.Logger) {
	if log != nil {
		p.log = log
	}
}

// Refresh requests an immediate cycle, cutting short the current sleep.
// Non-blocking: if a refresh is already pending it is a no-op.
func (p *Poller) Refresh() {
	select {
	case p.refresh <- struct{}{}:
	default:
	}
}

// Run polls until ctx is cancelled, invoking onSnapshot after every
// completed cycle. Cadence is anchored at cycle start: the sleep after a
// cycle is interval minus the time the cycle took, clamped at zero, so a
// slow target delays the next cycle rather than drifting the schedule.
func (p *Poller) Run(ctx context.Context, onSnapshot func(Snapshot)) error {
	for {
		cycleStart := time.Now()

		snapshot, ok := p.runCycle(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if ok && onSnapshot != nil {
			onSnapshot(snapshot)
		}

		sleep := p.interval - time.Since(cycleStart)
		if sleep < 0 {
			sleep = 0
		}

		timer := time.NewTimer(sleep)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-p.refresh:
			timer.Stop()
		case <-timer.C:
		}
	}
}

// RunOnce performs a single cycle and returns its snapshot.
func (p *Poller) RunOnce(ctx context.Context) (Snapshot, error) {
	snapshot, ok := p.runCycle(ctx)
	if !ok {
		if err := ctx.Err(); err != nil {
			return Snapshot{}, err
		}
		return Snapshot{}, fmt.Errorf("poll cycle abandoned")
	}
	return snapshot, nil
}

// runCycle checks every target concurrently and folds the results into a
// snapshot. If ctx is cancelled before the cycle completes the partial
// results are discarded and no target state is mutated (ok is false).
func (p *Poller) runCycle(ctx context.Context) (Snapshot, bool) {
	start := time.Now()
	results := make([]CheckResult, len(p.targets))

	var wg sync.WaitGroup
	for i, target := range p.targets {
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					p.log.Debug("check of %s panicked: %v", url, r)
					results[i] = CheckResult{
						Reason: ReasonConnection,
						Err:    fmt.Errorf("check panic: %v", r),
					}
				}
			}()
			results[i] = p.checker.Check(ctx, url)
		}(i, target.url)
	}
	wg.Wait()

	if ctx.Err() != nil {
		return Snapshot{}, false
	}

	takenAt := time.Now()
	rows := make([]Row, len(p.targets))

	for i, target := range p.targets {
		result := results[i]

		target.checks++
		if result.Up {
			target.consecutiveFails = 0
		} else {
			target.fails++
			target.consecutiveFails++
		}
		target.last = result
		target.lastChecked = takenAt

		if result.HasLatency {
			target.history.push(Sample{Value: float64(result.Latency.Milliseconds())})
		} else {
			target.history.push(Sample{Gap: true})
		}

		history := target.history.getAll()
		rows[i] = Row{
			URL:              target.url,
			CheckedAt:        takenAt,
			Result:           result,
			Sparkline:        EncodeSparkline(history),
			History:          history,
			Checks:           target.checks,
			Fails:            target.fails,
			ConsecutiveFails: target.consecutiveFails,
		}

		p.log.Debug("checked %s: %s %s", target.url, result.StatusLabel(), result.LatencyLabel())
	}

	p.cycle++
	snapshot := Snapshot{
		Cycle:    p.cycle,
		TakenAt:  takenAt,
		Duration: time.Since(start),
		Rows:     rows,
	}

	return snapshot, true
}
