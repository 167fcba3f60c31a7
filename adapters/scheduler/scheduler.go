package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"github.com/mahathirrr/portfolio/pkg/logger"
)

type JobFunc func(ctx context.Context) error

type JobStats struct {
	Name       string    `json:"name"`
	Schedule   string    `json:"schedule"`
	LastRun    time.Time `json:"last_run"`
	RunCount   int       `json:"run_count"`
	ErrorCount int       `json:"error_count"`
	LastError  string    `json:"last_error,omitempty"`
}

// Scheduler wraps gocron. Jobs run in singleton mode and an overlapping run is rescheduled.
type Scheduler struct {
	gocron gocron.Scheduler
	logger logger.Logger
	ctx    context.Context
	cancel context.CancelFunc

	mu   sync.Mutex
	jobs map[string]*JobStats
}

func New(log logger.Logger) (*Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLogger(logger.NewKeyValueAdapter(log.With(zap.String("component", "scheduler")))))
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		gocron: s,
		logger: log,
		ctx:    ctx,
		cancel: cancel,
		jobs:   make(map[string]*JobStats),
	}, nil
}

// AddCronJob registers a job on a five-field cron expression.
func (s *Scheduler) AddCronJob(name, cronExpr string, fn JobFunc) error {
	s.mu.Lock()
	s.jobs[name] = &JobStats{Name: name, Schedule: cronExpr}
	s.mu.Unlock()

	_, err := s.gocron.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(s.wrap(name, fn)),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to create job %s: %w", name, err)
	}
	s.logger.Info("Added job to scheduler", zap.String("name", name), zap.String("schedule", cronExpr))
	return nil
}

func (s *Scheduler) wrap(name string, fn JobFunc) func() {
	return func() {
		start := time.Now()
		s.logger.Info("Starting job", zap.String("name", name))
		err := fn(s.ctx)

		s.mu.Lock()
		stats := s.jobs[name]
		stats.LastRun = start
		stats.RunCount++
		if err != nil {
			stats.ErrorCount++
			stats.LastError = err.Error()
		} else {
			stats.LastError = ""
		}
		s.mu.Unlock()

		if err != nil {
			s.logger.Error("Job failed", err, zap.String("name", name))
			return
		}
		s.logger.Info("Job completed", zap.String("name", name), zap.Duration("duration", time.Since(start)))
	}
}

func (s *Scheduler) Stats(name string) (JobStats, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats, ok := s.jobs[name]
	if !ok {
		return JobStats{}, false
	}
	return *stats, true
}

func (s *Scheduler) Start() {
	s.logger.Info("Starting job scheduler")
	s.gocron.Start()
}

func (s *Scheduler) Stop() error {
	s.logger.Info("Stopping job scheduler")
	s.cancel()
	return s.gocron.Shutdown()
}
