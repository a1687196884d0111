package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/stonetrade/backend/internal/infrastructure/config"
)

// JobStatus represents the status of a job run
type JobStatus string

const (
	JobStatusPending JobStatus = "PENDING"
	JobStatusRunning JobStatus = "RUNNING"
	JobStatusSuccess JobStatus = "SUCCESS"
	JobStatusFailed  JobStatus = "FAILED"
)

// JobFunc is the work a scheduled job performs
type JobFunc func(ctx context.Context) error

// Run records a single execution of a job
type Run struct {
	ID          uuid.UUID  `json:"id"`
	Job         string     `json:"job"`
	Status      JobStatus  `json:"status"`
	Error       string     `json:"error,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func newRun(job string) *Run {
	return &Run{ID: uuid.New(), Job: job, Status: JobStatusPending}
}

func (r *Run) start() {
	now := time.Now()
	r.Status = JobStatusRunning
	r.StartedAt = &now
}

func (r *Run) finish(err error) {
	now := time.Now()
	r.CompletedAt = &now
	if err != nil {
		r.Status = JobStatusFailed
		r.Error = err.Error()
		return
	}
	r.Status = JobStatusSuccess
}

type job struct {
	name    string
	spec    string
	fn      JobFunc
	entryID cron.EntryID
	running sync.Mutex
}

// Scheduler runs registered jobs on cron schedules (standard 5-field expressions).
// A job never overlaps itself: a tick that fires while the previous run is still going is skipped.
type Scheduler struct {
	cfg    config.SchedulerConfig
	cron   *cron.Cron
	logger *zap.Logger

	mu        sync.Mutex
	jobs      map[string]*job
	lastRuns  map[string]Run
	isRunning bool
	baseCtx   context.Context
	cancel    context.CancelFunc
}

// NewScheduler creates a scheduler. Nothing runs until Start.
func NewScheduler(cfg config.SchedulerConfig, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	cl := cronLogger{logger: logger.Named("cron")}
	return &Scheduler{
		cfg:      cfg,
		cron:     cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl))),
		logger:   logger,
		jobs:     make(map[string]*job),
		lastRuns: make(map[string]Run),
		baseCtx:  context.Background(),
	}
}

// Register adds a named job on the given cron spec
func (s *Scheduler) Register(name, spec string, fn JobFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[name]; exists {
		return fmt.Errorf("%w: job %q already registered", ErrInvalidConfig, name)
	}
	j := &job{name: name, spec: spec, fn: fn}
	id, err := s.cron.AddFunc(spec, func() { s.tick(j) })
	if err != nil {
		return fmt.Errorf("%w: job %q: %v", ErrInvalidConfig, name, err)
	}
	j.entryID = id
	s.jobs[name] = j
	return nil
}

// Start starts the cron loop. With RunOnStart every job also runs once in the background.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = true
	s.baseCtx, s.cancel = context.WithCancel(context.WithoutCancel(ctx))
	jobs := make([]*job, 0, len(s.jobs))
	for _, j := range s.jobs {
		jobs = append(jobs, j)
	}
	s.mu.Unlock()

	s.cron.Start()
	for _, j := range jobs {
		s.logger.Info("Scheduled job",
			zap.String("job", j.name),
			zap.String("spec", j.spec),
			zap.Time("next_run", s.cron.Entry(j.entryID).Next),
		)
		if s.cfg.RunOnStart {
			go s.tick(j)
		}
	}
	return nil
}

// Stop stops scheduling new runs and waits for running jobs until ctx expires.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	s.mu.Unlock()

	done := s.cron.Stop().Done()
	select {
	case <-done:
		s.cancel()
		s.logger.Info("Scheduler stopped gracefully")
		return nil
	case <-ctx.Done():
		s.cancel()
		s.logger.Warn("Scheduler stop timed out")
		return ctx.Err()
	}
}

// RunNow executes the named job synchronously, honouring the no-overlap rule.
func (s *Scheduler) RunNow(ctx context.Context, name string) (Run, error) {
	s.mu.Lock()
	j, ok := s.jobs[name]
	s.mu.Unlock()
	if !ok {
		return Run{}, ErrJobNotFound
	}
	if !j.running.TryLock() {
		return Run{}, ErrJobAlreadyRunning
	}
	defer j.running.Unlock()
	return s.execute(ctx, j), nil
}

// LastRun returns the most recent finished run of a job
func (s *Scheduler) LastRun(name string) (Run, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.lastRuns[name]
	return r, ok
}

func (s *Scheduler) tick(j *job) {
	if !j.running.TryLock() {
		s.logger.Warn("Skipping job tick, previous run still in progress", zap.String("job", j.name))
		return
	}
	defer j.running.Unlock()

	s.mu.Lock()
	ctx := s.baseCtx
	s.mu.Unlock()
	s.execute(ctx, j)
}

func (s *Scheduler) execute(ctx context.Context, j *job) Run {
	timeout := s.cfg.JobTimeout
	if timeout <= 0 {
		timeout = 30 * time.Minute
	}
	jobCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	run := newRun(j.name)
	run.start()
	s.logger.Info("Processing job", zap.String("job", j.name), zap.String("run_id", run.ID.String()))

	err := j.fn(jobCtx)
	run.finish(err)
	if err != nil {
		s.logger.Error("Job failed",
			zap.String("job", j.name),
			zap.String("run_id", run.ID.String()),
			zap.Error(err),
		)
	} else {
		s.logger.Info("Job completed successfully",
			zap.String("job", j.name),
			zap.String("run_id", run.ID.String()),
			zap.Duration("duration", run.CompletedAt.Sub(*run.StartedAt)),
		)
	}

	s.mu.Lock()
	s.lastRuns[j.name] = *run
	s.mu.Unlock()
	return *run
}

// cronLogger adapts zap to cron.Logger
type cronLogger struct {
	logger *zap.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Sugar().Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
