package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
)

// NewShopHandler returns a handler for the /shop command.
func NewShopHandler(deps HandlerDeps) CommandFunc {
	return shopHandler{deps}.Handle
}

type shopHandler struct {
	deps HandlerDeps
}

func (h shopHandler) Handle(ctx context.Context, m Messenger, ev Event) error {
	_, err := m.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      ev.ChatID,
		Text:        h.deps.Content.ShopPrompt,
		ReplyMarkup: storeKeyboard(h.deps),
	})
	if err != nil {
		return fmt.Errorf("failed to send shop prompt: %w", err)
	}

	h.deps.Logger.DebugContext(ctx, "Sent shop prompt", "handler", "shop", "user_id", ev.UserID, "chat_id", ev.ChatID)
	return nil
}
