package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Messenger is the part of the Telegram client the command handlers send through.
// *bot.Bot satisfies it.
type Messenger interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	SendAnimation(ctx context.Context, params *bot.SendAnimationParams) (*models.Message, error)
}

// storeKeyboard builds the single-button markup that opens the store web app.
func storeKeyboard(deps HandlerDeps) *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{
					Text:   deps.Content.ButtonText,
					WebApp: &models.WebAppInfo{URL: deps.Content.WebAppURL},
				},
			},
		},
	}
}
