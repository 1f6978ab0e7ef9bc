package main

import "sync/atomic"

// LoopMetrics counts what the collision loop has done since start
type LoopMetrics struct {
	Ticks         atomic.Int64
	Overruns      atomic.Int64 // passes that took longer than one period
	FetchFailures atomic.Int64
	Collisions    atomic.Int64 // colliding pairs
	Applied       atomic.Int64
	Failed        atomic.Int64
	TotalTickNs   atomic.Int64
}

// Record folds one finished pass into the counters
func (m *LoopMetrics) Record(r PassReport) {
	m.Ticks.Add(1)
	m.TotalTickNs.Add(r.Duration.Nanoseconds())
	m.Collisions.Add(int64(r.Collisions))
	m.Applied.Add(int64(r.Applied))
	m.Failed.Add(int64(r.Failed))
}

// Snapshot returns a read-only copy for HTTP output
func (m *LoopMetrics) Snapshot() map[string]any {
	ticks := m.Ticks.Load()
	total := m.TotalTickNs.Load()
	var avgMs float64
	if ticks > 0 {
		avgMs = float64(total) / float64(ticks) / 1e6
	}
	return map[string]any{
		"ticks":          ticks,
		"overruns":       m.Overruns.Load(),
		"fetch_failures": m.FetchFailures.Load(),
		"collisions":     m.Collisions.Load(),
		"applied":        m.Applied.Load(),
		"failed":         m.Failed.Load(),
		"avg_tick_ms":    avgMs,
	}
}
