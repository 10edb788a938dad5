package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mpoirier/dealflow/internal/store"
)

const (
	jobExpirySweep  = "expiry_sweep"
	jobMatchRefresh = "match_refresh"

	defaultJobTimeout = 10 * time.Minute
)

// Scheduler runs the expiry sweep and match refresh on fixed intervals,
// recording each execution as a job run.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	store  store.Store
	log    *slog.Logger
}

// NewScheduler creates a new Scheduler bound to the given engine.
func NewScheduler(
	eng *Engine,
	s store.Store,
	expiryInterval time.Duration,
	refreshInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	sched := &Scheduler{
		cron:   c,
		engine: eng,
		store:  s,
		log:    log,
	}

	if _, err := c.AddFunc(
		"@every "+expiryInterval.String(),
		sched.runExpirySweep,
	); err != nil {
		return nil, err
	}

	if _, err := c.AddFunc(
		"@every "+refreshInterval.String(),
		sched.runMatchRefresh,
	); err != nil {
		return nil, err
	}

	return sched, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runExpirySweep() {
	s.runJob(context.Background(), jobExpirySweep, defaultJobTimeout, s.engine.RunExpirySweep)
}

func (s *Scheduler) runMatchRefresh() {
	s.runJob(context.Background(), jobMatchRefresh, defaultJobTimeout, s.engine.RunMatchRefresh)
}

// runJob executes fn under a timeout, recording the run in the job_runs
// table. Job-run bookkeeping failures are logged but never fail the job.
func (s *Scheduler) runJob(
	ctx context.Context,
	name string,
	timeout time.Duration,
	fn func(context.Context) (int, error),
) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	s.log.Info("scheduled job starting", "job", name)

	runID, err := s.store.InsertJobRun(ctx, name)
	if err != nil {
		s.log.Error("recording job run failed", "job", name, "error", err)
	}

	rows, jobErr := fn(ctx)

	status := "succeeded"
	errText := ""
	if jobErr != nil {
		status = "failed"
		errText = jobErr.Error()
		s.log.Error("scheduled job failed", "job", name, "error", jobErr)
	} else {
		s.log.Info("scheduled job finished", "job", name, "rows", rows)
	}

	if runID != "" {
		if err := s.store.CompleteJobRun(ctx, runID, status, errText, rows); err != nil {
			s.log.Error("completing job run failed", "job", name, "error", err)
		}
	}

	return jobErr
}
