package bot

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgard/shopbot/internal/bot/tasks"
	"github.com/edgard/shopbot/internal/config"
)

func TestSchedulerRunsEnabledTasks(t *testing.T) {
	var enabledRuns, disabledRuns atomic.Int32

	cfg := &config.SchedulerConfig{Tasks: map[string]config.TaskConfig{
		"enabled":    {Enabled: true, Schedule: "* * * * * *"},
		"disabled":   {Enabled: false, Schedule: "* * * * * *"},
		"unknown":    {Enabled: true, Schedule: "* * * * * *"},
		"bad_format": {Enabled: true, Schedule: "not a cron"},
	}}
	taskMap := map[string]tasks.ScheduledTaskFunc{
		"enabled":    func(context.Context) error { enabledRuns.Add(1); return nil },
		"disabled":   func(context.Context) error { disabledRuns.Add(1); return nil },
		"bad_format": func(context.Context) error { return nil },
	}

	s, err := NewScheduler(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), cfg, taskMap)
	require.NoError(t, err)
	require.NoError(t, s.Start())
	t.Cleanup(func() { _ = s.Stop() })

	assert.Error(t, s.Start(), "second start must fail")

	require.Eventually(t, func() bool { return enabledRuns.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
	assert.Zero(t, disabledRuns.Load())

	require.NoError(t, s.Stop())
	assert.NoError(t, s.Stop(), "stopping a stopped scheduler is a no-op")
}

func TestSchedulerCancelsTaskContextOnStop(t *testing.T) {
	started := make(chan struct{}, 1)
	cancelled := make(chan struct{}, 1)

	cfg := &config.SchedulerConfig{Tasks: map[string]config.TaskConfig{
		"blocking": {Enabled: true, Schedule: "* * * * * *"},
	}}
	taskMap := map[string]tasks.ScheduledTaskFunc{
		"blocking": func(ctx context.Context) error {
			select {
			case started <- struct{}{}:
			default:
			}
			<-ctx.Done()
			select {
			case cancelled <- struct{}{}:
			default:
			}
			return ctx.Err()
		},
	}

	logs := &lockedWriter{}
	s, err := NewScheduler(slog.New(slog.NewTextHandler(logs, nil)), cfg, taskMap)
	require.NoError(t, err)
	require.NoError(t, s.Start())

	select {
	case <-started:
	case <-time.After(3 * time.Second):
		t.Fatal("task did not start")
	}

	require.NoError(t, s.Stop())

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("task context was not cancelled")
	}

	require.Eventually(t, func() bool {
		return strings.Contains(logs.String(), "Scheduled task cancelled by shutdown")
	}, time.Second, 10*time.Millisecond)
	assert.NotContains(t, logs.String(), "level=ERROR")
}

func TestSchedulerLogsTaskFailure(t *testing.T) {
	cfg := &config.SchedulerConfig{Tasks: map[string]config.TaskConfig{
		"failing": {Enabled: true, Schedule: "* * * * * *"},
	}}
	taskMap := map[string]tasks.ScheduledTaskFunc{
		"failing": func(context.Context) error { return errors.New("getMe: unauthorized") },
	}

	logs := &lockedWriter{}
	s, err := NewScheduler(slog.New(slog.NewTextHandler(logs, nil)), cfg, taskMap)
	require.NoError(t, err)
	require.NoError(t, s.Start())
	t.Cleanup(func() { _ = s.Stop() })

	require.Eventually(t, func() bool {
		return strings.Contains(logs.String(), "Scheduled task failed")
	}, 3*time.Second, 50*time.Millisecond)
	assert.Contains(t, logs.String(), "getMe: unauthorized")
}

func TestSchedulerWithoutTasks(t *testing.T) {
	var buf bytes.Buffer
	s, err := NewScheduler(slog.New(slog.NewTextHandler(&buf, nil)), nil, nil)
	require.NoError(t, err)
	require.NoError(t, s.Start())
	require.NoError(t, s.Stop())
	assert.Contains(t, buf.String(), "No scheduler tasks configured.")
}
