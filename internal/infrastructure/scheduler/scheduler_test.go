package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stonetrade/backend/internal/infrastructure/config"
)

func newTestScheduler(runOnStart bool) *Scheduler {
	return NewScheduler(config.SchedulerConfig{
		Enabled:    true,
		JobTimeout: time.Second,
		RunOnStart: runOnStart,
	}, zap.NewNop())
}

func TestScheduler_Register(t *testing.T) {
	s := newTestScheduler(false)
	noop := func(context.Context) error { return nil }

	require.NoError(t, s.Register("recalculate", "0 2 * * *", noop))

	err := s.Register("recalculate", "0 3 * * *", noop)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	err = s.Register("broken", "every day", noop)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestScheduler_RunNow(t *testing.T) {
	s := newTestScheduler(false)
	var calls atomic.Int32
	require.NoError(t, s.Register("ok", "@daily", func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		calls.Add(1)
		return nil
	}))
	require.NoError(t, s.Register("fails", "@daily", func(context.Context) error {
		return errors.New("db down")
	}))

	run, err := s.RunNow(context.Background(), "ok")
	require.NoError(t, err)
	assert.Equal(t, JobStatusSuccess, run.Status)
	assert.NotNil(t, run.StartedAt)
	assert.NotNil(t, run.CompletedAt)
	assert.Equal(t, int32(1), calls.Load())

	run, err = s.RunNow(context.Background(), "fails")
	require.NoError(t, err)
	assert.Equal(t, JobStatusFailed, run.Status)
	assert.Equal(t, "db down", run.Error)

	last, ok := s.LastRun("fails")
	require.True(t, ok)
	assert.Equal(t, run.ID, last.ID)

	_, err = s.RunNow(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrJobNotFound)
	_, ok = s.LastRun("missing")
	assert.False(t, ok)
}

func TestScheduler_RunNow_NoOverlap(t *testing.T) {
	s := newTestScheduler(false)
	started := make(chan struct{})
	release := make(chan struct{})
	require.NoError(t, s.Register("slow", "@daily", func(context.Context) error {
		close(started)
		<-release
		return nil
	}))

	done := make(chan struct{})
	go func() {
		_, _ = s.RunNow(context.Background(), "slow")
		close(done)
	}()
	<-started

	_, err := s.RunNow(context.Background(), "slow")
	assert.ErrorIs(t, err, ErrJobAlreadyRunning)

	close(release)
	<-done
}

func TestScheduler_StartStop(t *testing.T) {
	s := newTestScheduler(true)
	ran := make(chan struct{}, 1)
	require.NoError(t, s.Register("sweep", "0 2 * * *", func(context.Context) error {
		ran <- struct{}{}
		return nil
	}))

	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.Start(context.Background()))

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("run_on_start job did not run")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	require.NoError(t, s.Stop(ctx))
}
