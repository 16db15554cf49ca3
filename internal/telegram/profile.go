package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"

	"github.com/edgard/shopbot/internal/bot/handlers"
	"github.com/edgard/shopbot/internal/config"
)

// ProfileClient is the part of the Telegram client used to publish the bot profile.
type ProfileClient interface {
	SetMyDescription(ctx context.Context, params *bot.SetMyDescriptionParams) (bool, error)
	SetMyCommands(ctx context.Context, params *bot.SetMyCommandsParams) (bool, error)
}

// SyncProfile pushes the bot description and the command menu to Telegram.
// Both steps are attempted even if the first fails. Failures are returned,
// not logged; the caller logs them once. Command handling works without them.
func SyncProfile(ctx context.Context, client ProfileClient, logger *slog.Logger, content *config.Content, cmds []handlers.Command) error {
	log := logger.With("component", "profile_sync")

	var errs []error

	if _, err := client.SetMyDescription(ctx, &bot.SetMyDescriptionParams{Description: content.Description}); err != nil {
		errs = append(errs, fmt.Errorf("set description: %w", err))
	}

	if _, err := client.SetMyCommands(ctx, &bot.SetMyCommandsParams{Commands: handlers.BotCommands(cmds)}); err != nil {
		errs = append(errs, fmt.Errorf("set commands: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	log.InfoContext(ctx, "Bot profile synced", "commands", len(cmds))
	return nil
}
