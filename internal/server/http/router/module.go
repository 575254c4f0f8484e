package router

import (
	"go.uber.org/fx"

	"github.com/mkorobko/orderbot/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(
	handlers.NewWebhookHandler,
	Setup,
)
