// Package telegram binds the conversation core to the Telegram Bot API.
// It owns transport concerns only: sending, editing, callback acks, webhook
// registration and the long-poll pump.
package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mkorobko/orderbot/internal/bot"
)

// Client implements bot.Messenger over the Telegram Bot API.
type Client struct {
	api    *tgbotapi.BotAPI
	logger *slog.Logger
}

// New authenticates against the Bot API.
func New(token string, logger *slog.Logger) (*Client, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("authorize bot: %w", err)
	}
	logger.Info("telegram bot authorized", slog.String("account", api.Self.UserName))
	return &Client{api: api, logger: logger}, nil
}

// Send delivers a new message, optionally with an inline keyboard.
func (c *Client) Send(ctx context.Context, chatID int64, text string, kb bot.Keyboard) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if kb != nil {
		msg.ReplyMarkup = inlineMarkup(kb)
	}
	_, err := c.api.Send(msg)
	return err
}

// Edit replaces the text and keyboard of an existing message. When the
// platform refuses the edit the text is delivered as a new message instead,
// so the user still sees the result.
func (c *Client) Edit(ctx context.Context, chatID int64, messageID int, text string, kb bot.Keyboard) error {
	var msg tgbotapi.Chattable
	if kb != nil {
		edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, inlineMarkup(kb))
		msg = edit
	} else {
		msg = tgbotapi.NewEditMessageText(chatID, messageID, text)
	}

	_, err := c.api.Send(msg)
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "message is not modified") {
		return nil
	}

	c.logger.Warn("edit rejected, sending new message",
		slog.Int64("chat_id", chatID),
		slog.String("error", err.Error()),
	)
	return c.Send(ctx, chatID, text, kb)
}

// Answer acknowledges a callback query.
func (c *Client) Answer(ctx context.Context, callbackID, notice string) error {
	_, err := c.api.Request(tgbotapi.NewCallback(callbackID, notice))
	return err
}

// SendMenu shows a persistent reply keyboard, one button per row.
func (c *Client) SendMenu(ctx context.Context, chatID int64, text string, buttons []string) error {
	rows := make([][]tgbotapi.KeyboardButton, 0, len(buttons))
	for _, label := range buttons {
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(label)))
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewReplyKeyboard(rows...)
	_, err := c.api.Send(msg)
	return err
}

// RegisterCommands publishes the command menu shown by the client UI.
func (c *Client) RegisterCommands(ctx context.Context) error {
	cmd := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "start", Description: "Start the bot"},
		tgbotapi.BotCommand{Command: "catalog", Description: "Open the product catalog"},
		tgbotapi.BotCommand{Command: "orders", Description: "Show my orders"},
		tgbotapi.BotCommand{Command: "help", Description: "Help"},
	)
	_, err := c.api.Request(cmd)
	return err
}

// RegisterWebhook points Telegram at the public webhook endpoint.
func (c *Client) RegisterWebhook(ctx context.Context, publicURL string) error {
	cfg, err := tgbotapi.NewWebhook(publicURL)
	if err != nil {
		return fmt.Errorf("build webhook config: %w", err)
	}
	if _, err := c.api.Request(cfg); err != nil {
		return fmt.Errorf("register webhook: %w", err)
	}
	c.logger.Info("webhook registered", slog.String("url", publicURL))
	return nil
}

// DropWebhook removes a stale webhook registration; long polling and
// webhooks are mutually exclusive on the platform side.
func (c *Client) DropWebhook(ctx context.Context) error {
	_, err := c.api.Request(tgbotapi.DeleteWebhookConfig{DropPendingUpdates: true})
	return err
}

// Updates opens the long-poll update channel.
func (c *Client) Updates(timeoutSeconds int) tgbotapi.UpdatesChannel {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = timeoutSeconds
	return c.api.GetUpdatesChan(u)
}

// StopUpdates closes the long-poll update channel.
func (c *Client) StopUpdates() {
	c.api.StopReceivingUpdates()
}

func inlineMarkup(kb bot.Keyboard) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(kb))
	for _, row := range kb {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Token))
		}
		rows = append(rows, buttons)
	}
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}
