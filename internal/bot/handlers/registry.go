// Package handlers contains the Telegram bot command handlers, the fixed
// command table and the glue that adapts them to the bot client.
package handlers

import (
	"context"
	"log/slog"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Command names understood by the bot.
const (
	CommandStart = "start"
	CommandShop  = "shop"
)

// sendTimeout bounds a reply once dispatched. Replies are detached from the
// polling context so shutdown does not abort one already in flight.
const sendTimeout = 30 * time.Second

// CommandFunc handles one command event. A returned error is logged by the
// dispatcher and never reaches the user.
type CommandFunc func(ctx context.Context, m Messenger, ev Event) error

// Command is one entry in the command table: its name, the description shown
// in the Telegram command menu, and its handler.
type Command struct {
	Name        string
	Description string
	Handle      CommandFunc
}

// RegisterAllCommands returns the command table in menu order.
func RegisterAllCommands(deps HandlerDeps) []Command {
	return []Command{
		{
			Name:        CommandStart,
			Description: deps.Content.StartCommand,
			Handle:      NewStartHandler(deps),
		},
		{
			Name:        CommandShop,
			Description: deps.Content.ShopCommand,
			Handle:      NewShopHandler(deps),
		},
	}
}

// BotCommands converts the table into the list pushed with setMyCommands.
func BotCommands(cmds []Command) []models.BotCommand {
	out := make([]models.BotCommand, 0, len(cmds))
	for _, c := range cmds {
		out = append(out, models.BotCommand{Command: c.Name, Description: c.Description})
	}
	return out
}

// MatchFunc reports whether update carries this command for the bot named botUsername.
func (c Command) MatchFunc(botUsername string) tgbot.MatchFunc {
	return func(update *models.Update) bool {
		ev, ok := ParseEvent(update, botUsername)
		return ok && ev.Command == c.Name
	}
}

// HandlerFunc adapts the command to the bot client. Handler errors are logged
// once and swallowed so the polling loop keeps serving other users.
func (c Command) HandlerFunc(logger *slog.Logger, botUsername string) tgbot.HandlerFunc {
	log := logger.With("handler", c.Name)

	return func(ctx context.Context, b *tgbot.Bot, update *models.Update) {
		ev, ok := ParseEvent(update, botUsername)
		if !ok {
			log.WarnContext(ctx, "Command handler received update without a command", "update_id", update.ID)
			return
		}
		c.Dispatch(ctx, log, b, ev)
	}
}

// Dispatch runs the handler for ev and logs a failure instead of returning it.
func (c Command) Dispatch(ctx context.Context, log *slog.Logger, m Messenger, ev Event) {
	log.DebugContext(ctx, "Handling command", "command", c.Name, "chat_id", ev.ChatID, "user_id", ev.UserID)

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sendTimeout)
	defer cancel()

	if err := c.Handle(sendCtx, m, ev); err != nil {
		log.ErrorContext(ctx, "Command handler failed", "command", c.Name, "chat_id", ev.ChatID, "user_id", ev.UserID, "error", err)
	}
}

// DefaultHandler receives every update no command matched. It sends nothing.
func DefaultHandler(logger *slog.Logger) tgbot.HandlerFunc {
	log := logger.With("handler", "default")
	return func(ctx context.Context, _ *tgbot.Bot, update *models.Update) {
		log.DebugContext(ctx, "Ignoring update without a registered command", "update_id", update.ID)
	}
}
