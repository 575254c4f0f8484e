package di

import (
	"go.uber.org/fx"

	"github.com/mkorobko/orderbot/internal/app"
	"github.com/mkorobko/orderbot/internal/bot"
	"github.com/mkorobko/orderbot/internal/catalog"
	"github.com/mkorobko/orderbot/internal/config"
	"github.com/mkorobko/orderbot/internal/logger"
	"github.com/mkorobko/orderbot/internal/server/http/handlers"
	"github.com/mkorobko/orderbot/internal/server/http/router"
	"github.com/mkorobko/orderbot/internal/storage/jsonfile"
	"github.com/mkorobko/orderbot/internal/telegram"
	"github.com/mkorobko/orderbot/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		jsonfile.Module,
		catalog.Module,
		usecase.Module,
		telegram.Module,
		bot.Module,
		fx.Provide(
			func(f *app.ShopFacade) bot.Facade { return f },
			func(f *app.ShopFacade) handlers.ShopFacade { return f },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
