package telegram

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/mkorobko/orderbot/internal/bot"
	"github.com/mkorobko/orderbot/internal/config"
)

// Module wires the Telegram client and update pump into the fx graph.
var Module = fx.Options(
	fx.Provide(
		func(cfg *config.Config, logger *slog.Logger) (*Client, error) {
			return New(cfg.Token, logger)
		},
		func(c *Client) bot.Messenger { return c },
		func(cfg *config.Config, client *Client, router *bot.Router, logger *slog.Logger) *Poller {
			return NewPoller(client, router, cfg.PollTimeout, cfg.WorkerPoolSize, logger)
		},
	),
)
