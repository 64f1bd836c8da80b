// Package scheduler runs background jobs on cron schedules.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"wealthview/internal/services"
)

// Job is a unit of scheduled work.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// Scheduler wraps a cron runner. Overlapping runs of the same job are
// skipped.
type Scheduler struct {
	cron *cron.Cron
	log  *zap.SugaredLogger
	ctx  context.Context
}

// New creates a scheduler. Jobs receive ctx when they run.
func New(ctx context.Context, log *zap.SugaredLogger) *Scheduler {
	log = log.With("component", "scheduler")
	return &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.Recover(cronLogger{log}),
			cron.SkipIfStillRunning(cronLogger{log}),
		)),
		log: log,
		ctx: ctx,
	}
}

// AddJob registers job on a standard five-field cron spec or a descriptor
// such as "@hourly" or "@every 30m".
func (s *Scheduler) AddJob(spec string, job Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		if err := s.RunNow(job); err != nil {
			s.log.Errorw("job failed", "job", job.Name(), "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q for job %s: %w", spec, job.Name(), err)
	}

	s.log.Infow("job registered", "job", job.Name(), "schedule", spec)
	return nil
}

// RunNow executes job immediately, outside its schedule.
func (s *Scheduler) RunNow(job Job) error {
	start := time.Now()
	s.log.Debugw("running job", "job", job.Name())
	if err := job.Run(s.ctx); err != nil {
		return err
	}
	s.log.Debugw("job completed", "job", job.Name(), "duration", time.Since(start))
	return nil
}

// Start starts the cron runner in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started")
}

// Stop stops the runner and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("scheduler stopped")
}

// SeedJob re-runs the seed pipeline against the configured source.
type SeedJob struct {
	Service services.SeedServicer
}

// Name implements Job.
func (SeedJob) Name() string { return "seed" }

// Run implements Job.
func (j SeedJob) Run(ctx context.Context) error {
	_, err := j.Service.SeedFromSource(ctx, "")
	return err
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	log *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
