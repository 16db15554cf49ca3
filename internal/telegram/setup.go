// Package telegram handles the construction of the Telegram client, the
// registration of command handlers, and the one-time profile sync at startup.
package telegram

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-telegram/bot"

	"github.com/edgard/shopbot/internal/bot/handlers"
	"github.com/edgard/shopbot/internal/config"
)

// Long polling requests are held open for PollTimeout; the HTTP client needs
// a little headroom on top of that.
const httpTimeoutMargin = 10 * time.Second

// NewTelegramBot creates a new Telegram bot instance using the go-telegram/bot library.
// bot.New calls getMe, so a returned bot has a verified session.
func NewTelegramBot(cfg config.TelegramConfig, logger *slog.Logger, opts ...bot.Option) (*bot.Bot, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("telegram bot token cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "telegram_bot")

	baseOpts := []bot.Option{
		bot.WithHTTPClient(cfg.PollTimeout, &http.Client{Timeout: cfg.PollTimeout + httpTimeoutMargin}),
	}
	if cfg.Workers > 0 {
		baseOpts = append(baseOpts, bot.WithWorkers(cfg.Workers))
	}
	if cfg.CheckInitTimeout > 0 {
		baseOpts = append(baseOpts, bot.WithCheckInitTimeout(cfg.CheckInitTimeout))
	}
	if cfg.ServerURL != "" {
		baseOpts = append(baseOpts, bot.WithServerURL(cfg.ServerURL))
	}

	b, err := bot.New(cfg.Token, append(baseOpts, opts...)...)
	if err != nil {
		log.Error("Failed to create Telegram bot instance", "error", err)
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	log.Info("Telegram bot instance created successfully", "token_prefix", tokenPrefix(cfg.Token))
	return b, nil
}

// RegisterHandlers registers the command table with the Telegram bot instance.
// Each command gets its own match function so only its own command reaches it.
func RegisterHandlers(b *bot.Bot, logger *slog.Logger, cmds []handlers.Command, botUsername string) error {
	if b == nil {
		return fmt.Errorf("bot instance cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "handler_registry")

	if len(cmds) == 0 {
		log.Warn("No handlers provided for registration.")
		return nil
	}

	for _, cmd := range cmds {
		if cmd.Handle == nil {
			log.Warn("Skipping registration for nil handler", "command", cmd.Name)
			continue
		}
		b.RegisterHandlerMatchFunc(cmd.MatchFunc(botUsername), cmd.HandlerFunc(logger, botUsername))
		log.Debug("Registered handler", "command", cmd.Name)
	}

	log.Info("Registered Telegram handlers successfully", "count", len(cmds))
	return nil
}

func tokenPrefix(token string) string {
	if len(token) <= 8 {
		return "..."
	}
	return token[:8] + "..."
}
