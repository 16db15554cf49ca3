package handlers

import (
	"strings"
	"unicode/utf16"

	"github.com/go-telegram/bot/models"
)

// Event is one inbound command addressed to the bot.
type Event struct {
	UpdateID int64
	ChatID   int64
	UserID   int64
	Command  string // without the leading slash and @mention
}

// ParseEvent extracts a command event from update. A message counts as a
// command only when it starts with a bot_command entity. Commands addressed to
// a different bot ("/start@other_bot") are rejected; botUsername may be empty,
// in which case any mention is rejected.
func ParseEvent(update *models.Update, botUsername string) (Event, bool) {
	if update == nil || update.Message == nil {
		return Event{}, false
	}
	msg := update.Message

	var entity *models.MessageEntity
	for i := range msg.Entities {
		if msg.Entities[i].Type == models.MessageEntityTypeBotCommand && msg.Entities[i].Offset == 0 {
			entity = &msg.Entities[i]
			break
		}
	}
	if entity == nil {
		return Event{}, false
	}

	raw, ok := entityText(msg.Text, entity.Offset, entity.Length)
	if !ok || !strings.HasPrefix(raw, "/") {
		return Event{}, false
	}

	name, mention, _ := strings.Cut(raw[1:], "@")
	if name == "" {
		return Event{}, false
	}
	if mention != "" && !strings.EqualFold(mention, botUsername) {
		return Event{}, false
	}

	ev := Event{
		UpdateID: update.ID,
		ChatID:   msg.Chat.ID,
		Command:  strings.ToLower(name),
	}
	if msg.From != nil {
		ev.UserID = msg.From.ID
	}
	return ev, true
}

// entityText slices text by an entity's offset and length, which Telegram
// counts in UTF-16 code units.
func entityText(text string, offset, length int) (string, bool) {
	units := utf16.Encode([]rune(text))
	if offset < 0 || length <= 0 || offset+length > len(units) {
		return "", false
	}
	return string(utf16.Decode(units[offset : offset+length])), true
}
