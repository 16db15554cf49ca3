package tasks

import (
	"context"
	"fmt"
	"time"
)

const sessionCheckTimeout = 15 * time.Second

// newSessionCheckTask creates the task that confirms the Telegram session is
// still accepted by calling getMe.
func newSessionCheckTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "session_check")

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, sessionCheckTimeout)
		defer cancel()

		startTime := time.Now()
		me, err := deps.Telegram.GetMe(ctx)
		if err != nil {
			return fmt.Errorf("session check failed: %w", err)
		}

		log.InfoContext(ctx, "Telegram session alive", "bot_id", me.ID, "bot_username", me.Username, "duration", time.Since(startTime))
		return nil
	}
}
