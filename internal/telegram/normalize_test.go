package telegram

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mkorobko/orderbot/internal/bot"
)

func TestNormalizeCommand(t *testing.T) {
	update := tgbotapi.Update{
		Message: &tgbotapi.Message{
			MessageID: 10,
			From:      &tgbotapi.User{ID: 7, UserName: "tester"},
			Chat:      &tgbotapi.Chat{ID: 7},
			Text:      "/start",
			Entities: []tgbotapi.MessageEntity{
				{Type: "bot_command", Offset: 0, Length: 6},
			},
		},
	}

	ev, ok := Normalize(update)
	if !ok {
		t.Fatal("expected event")
	}
	if ev.Type != bot.EventCommand || ev.Command != "start" {
		t.Fatalf("unexpected event %+v", ev)
	}
	if ev.UserID != 7 || ev.Username != "tester" || ev.ChatID != 7 {
		t.Fatalf("unexpected identity %+v", ev)
	}
}

func TestNormalizePlainText(t *testing.T) {
	update := tgbotapi.Update{
		Message: &tgbotapi.Message{
			From: &tgbotapi.User{ID: 7},
			Chat: &tgbotapi.Chat{ID: 7},
			Text: "Catalog",
		},
	}

	ev, ok := Normalize(update)
	if !ok {
		t.Fatal("expected event")
	}
	if ev.Type != bot.EventText || ev.Text != "Catalog" {
		t.Fatalf("unexpected event %+v", ev)
	}
	if ev.Username != "user_7" {
		t.Fatalf("expected fallback display name, got %q", ev.Username)
	}
}

func TestNormalizeCallback(t *testing.T) {
	update := tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   "cb-1",
			Data: "qty_5_a1",
			From: &tgbotapi.User{ID: 7, UserName: "tester"},
			Message: &tgbotapi.Message{
				MessageID: 42,
				Chat:      &tgbotapi.Chat{ID: 7},
			},
		},
	}

	ev, ok := Normalize(update)
	if !ok {
		t.Fatal("expected event")
	}
	if ev.Type != bot.EventCallback {
		t.Fatalf("unexpected type %v", ev.Type)
	}
	if ev.CallbackID != "cb-1" || ev.Token != "qty_5_a1" {
		t.Fatalf("unexpected callback fields %+v", ev)
	}
	if ev.ChatID != 7 || ev.MessageID != 42 || ev.UserID != 7 {
		t.Fatalf("unexpected addressing %+v", ev)
	}
}

func TestNormalizeDropsEmptyUpdate(t *testing.T) {
	if _, ok := Normalize(tgbotapi.Update{UpdateID: 1}); ok {
		t.Fatal("expected empty update to be dropped")
	}
}
