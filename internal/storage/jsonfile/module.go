package jsonfile

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/mkorobko/orderbot/internal/config"
	"github.com/mkorobko/orderbot/internal/domain/repository"
)

// Module wires the file-backed order store into the fx graph.
var Module = fx.Provide(
	func(cfg *config.Config, logger *slog.Logger) *Store {
		return New(cfg.OrdersFile, logger)
	},
	func(s *Store) repository.OrderRepository { return s },
)
