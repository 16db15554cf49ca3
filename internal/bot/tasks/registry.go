package tasks

import (
	"context"
)

// ScheduledTaskFunc defines the standard signature for all scheduled tasks.
// The context is cancelled when the scheduler stops.
type ScheduledTaskFunc func(ctx context.Context) error

// RegisterAllTasks returns all scheduled tasks keyed by the name used in the
// scheduler.tasks config section.
func RegisterAllTasks(deps TaskDeps) map[string]ScheduledTaskFunc {
	tasks := map[string]ScheduledTaskFunc{
		"session_check": newSessionCheckTask(deps),
	}

	deps.Logger.Debug("Initialized scheduled tasks", "count", len(tasks))
	return tasks
}
