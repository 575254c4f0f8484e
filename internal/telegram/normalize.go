package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mkorobko/orderbot/internal/bot"
)

// Normalize converts a raw platform update into the event shape the router
// consumes. Updates that carry neither a message nor a callback are dropped.
func Normalize(u tgbotapi.Update) (bot.Event, bool) {
	switch {
	case u.CallbackQuery != nil:
		cq := u.CallbackQuery
		ev := bot.Event{
			Type:       bot.EventCallback,
			CallbackID: cq.ID,
			Token:      cq.Data,
		}
		if cq.From != nil {
			ev.UserID = cq.From.ID
			ev.Username = displayName(cq.From)
		}
		if cq.Message != nil {
			ev.ChatID = cq.Message.Chat.ID
			ev.MessageID = cq.Message.MessageID
		}
		return ev, true

	case u.Message != nil:
		m := u.Message
		ev := bot.Event{
			ChatID: m.Chat.ID,
			Text:   m.Text,
		}
		if m.From != nil {
			ev.UserID = m.From.ID
			ev.Username = displayName(m.From)
		} else {
			ev.UserID = m.Chat.ID
		}
		if m.IsCommand() {
			ev.Type = bot.EventCommand
			ev.Command = m.Command()
		} else {
			ev.Type = bot.EventText
		}
		return ev, true
	}

	return bot.Event{}, false
}

func displayName(u *tgbotapi.User) string {
	if u.UserName != "" {
		return u.UserName
	}
	return fmt.Sprintf("user_%d", u.ID)
}
