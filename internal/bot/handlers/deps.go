package handlers

import (
	"log/slog"

	"github.com/edgard/shopbot/internal/config"
)

// HandlerDeps provides dependencies for Telegram command handlers.
type HandlerDeps struct {
	Logger  *slog.Logger
	Content *config.Content
}
