// Package tasks implements scheduled background tasks for the shop bot.
package tasks

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot/models"
)

// SessionClient is the part of the Telegram client the tasks use.
type SessionClient interface {
	GetMe(ctx context.Context) (*models.User, error)
}

// TaskDeps contains all dependencies required by scheduled tasks.
type TaskDeps struct {
	Logger   *slog.Logger
	Telegram SessionClient
}
