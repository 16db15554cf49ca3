// Package bot implements the runtime loop of the shop bot: the one-time
// profile sync, long polling, and the background scheduler.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	tgbot "github.com/go-telegram/bot"
	"golang.org/x/sync/errgroup"

	"github.com/edgard/shopbot/internal/bot/handlers"
	"github.com/edgard/shopbot/internal/config"
	"github.com/edgard/shopbot/internal/telegram"
)

// State is the lifecycle state of the runtime loop.
type State int32

const (
	StateStarting State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Bot represents the main bot application and manages its components' lifecycle.
type Bot struct {
	logger    *slog.Logger
	cfg       *config.Config
	tgBot     *tgbot.Bot
	scheduler *Scheduler
	commands  []handlers.Command
	state     atomic.Int32
}

// NewBot creates a new instance of the bot. tgBot must already have a live
// session and the command handlers registered.
func NewBot(
	logger *slog.Logger,
	cfg *config.Config,
	tgBot *tgbot.Bot,
	scheduler *Scheduler,
	commands []handlers.Command,
) *Bot {
	b := &Bot{
		logger:    logger.With("component", "bot_orchestrator"),
		cfg:       cfg,
		tgBot:     tgBot,
		scheduler: scheduler,
		commands:  commands,
	}
	b.state.Store(int32(StateStarting))
	return b
}

// State returns the current lifecycle state.
func (b *Bot) State() State {
	return State(b.state.Load())
}

// Run pushes the bot profile once, then polls for updates and runs the
// scheduler until ctx is cancelled or a component fails.
func (b *Bot) Run(ctx context.Context) error {
	defer b.state.Store(int32(StateStopped))

	b.logger.Info("Starting bot orchestrator...")

	if err := telegram.SyncProfile(ctx, b.tgBot, b.logger, &b.cfg.Content, b.commands); err != nil {
		b.logger.ErrorContext(ctx, "Bot profile sync failed, continuing", "error", err)
	}

	b.state.Store(int32(StateRunning))

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		b.logger.Info("Starting Telegram bot listener...")

		b.tgBot.Start(gCtx)
		b.logger.Info("Telegram bot listener stopped.")

		if gCtx.Err() == nil {
			b.logger.Warn("Telegram bot listener stopped unexpectedly without context cancellation.")
			return fmt.Errorf("telegram listener stopped unexpectedly")
		}
		return nil
	})

	g.Go(func() error {
		b.logger.Info("Starting scheduler...")
		if err := b.scheduler.Start(); err != nil {
			b.logger.Error("Failed to start scheduler", "error", err)
			return fmt.Errorf("failed to start scheduler: %w", err)
		}

		<-gCtx.Done()
		b.logger.Info("Shutdown signal received, stopping scheduler...")

		if err := b.scheduler.Stop(); err != nil {
			b.logger.Error("Error stopping scheduler", "error", err)
		}
		return nil
	})

	b.logger.Info("Bot orchestrator running. Waiting for shutdown signal or error...")
	err := g.Wait()

	if err != nil && !errors.Is(err, context.Canceled) {
		b.logger.Error("Bot orchestrator stopped due to error", "error", err)
		return err
	}

	b.logger.Info("Bot orchestrator stopped gracefully.")
	return nil
}
