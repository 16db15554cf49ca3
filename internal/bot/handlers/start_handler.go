package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewStartHandler returns a handler for the /start command. It greets the user
// with the welcome animation and the store button.
func NewStartHandler(deps HandlerDeps) CommandFunc {
	return startHandler{deps}.Handle
}

// startHandler processes the /start command using injected dependencies.
type startHandler struct {
	deps HandlerDeps
}

func (h startHandler) Handle(ctx context.Context, m Messenger, ev Event) error {
	_, err := m.SendAnimation(ctx, &bot.SendAnimationParams{
		ChatID:      ev.ChatID,
		Animation:   &models.InputFileString{Data: h.deps.Content.AnimationURL},
		Caption:     h.deps.Content.Welcome,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: storeKeyboard(h.deps),
	})
	if err != nil {
		return fmt.Errorf("failed to send welcome animation: %w", err)
	}

	h.deps.Logger.InfoContext(ctx, "Sent welcome message", "handler", "start", "user_id", ev.UserID, "chat_id", ev.ChatID)
	return nil
}
