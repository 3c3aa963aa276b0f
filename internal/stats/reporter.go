package stats

import (
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Reporter periodically logs the usage counters
type Reporter struct {
	cron     *cron.Cron
	counters *Counters
	log      *logrus.Logger

	mu   sync.Mutex
	last Snapshot
}

// NewReporter schedules a usage log line on the given cron spec
// (standard five-field syntax or descriptors such as "@every 1h").
func NewReporter(spec string, counters *Counters, log *logrus.Logger) (*Reporter, error) {
	r := &Reporter{
		cron:     cron.New(),
		counters: counters,
		log:      log,
	}
	if _, err := r.cron.AddFunc(spec, r.report); err != nil {
		return nil, fmt.Errorf("invalid stats schedule %q: %w", spec, err)
	}
	return r, nil
}

// Start runs the schedule in the background
func (r *Reporter) Start() {
	r.cron.Start()
	r.log.Infof("Usage reporter started with %d job(s)", len(r.cron.Entries()))
}

// Stop halts the schedule and waits for a running report to finish
func (r *Reporter) Stop() {
	<-r.cron.Stop().Done()
	r.report()
}

func (r *Reporter) report() {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.counters.Snapshot()
	r.log.WithFields(logrus.Fields{
		"scenarios_total":  s.Scenarios,
		"reports_total":    s.Reports,
		"scenarios_period": s.Scenarios - r.last.Scenarios,
		"reports_period":   s.Reports - r.last.Reports,
	}).Info("Usage report")
	r.last = s
}
