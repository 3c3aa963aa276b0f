package stats

import "sync/atomic"

// Counters tracks how many scenarios and reports were served since start.
// Values only grow and are safe for concurrent use.
type Counters struct {
	scenarios atomic.Int64
	reports   atomic.Int64
}

// NewCounters returns counters starting at zero
func NewCounters() *Counters {
	return &Counters{}
}

// IncScenarios records one analysed scenario and returns the new total
func (c *Counters) IncScenarios() int64 {
	return c.scenarios.Add(1)
}

// IncReports records one exported report and returns the new total
func (c *Counters) IncReports() int64 {
	return c.reports.Add(1)
}

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	Scenarios int64
	Reports   int64
}

// Snapshot reads both counters
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		Scenarios: c.scenarios.Load(),
		Reports:   c.reports.Load(),
	}
}
