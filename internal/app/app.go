package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/mkorobko/orderbot/internal/config"
	"github.com/mkorobko/orderbot/internal/telegram"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewShopFacade,
		newHTTPServer,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type lifecycleParams struct {
	fx.In

	// Ctx is the application root context; the poller must outlive the
	// startup hook's own context.
	Ctx        context.Context
	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Client     *telegram.Client
	Poller     *telegram.Poller
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting orderbot",
				slog.String("addr", p.Server.Addr),
				slog.String("mode", p.Config.Mode),
			)

			if err := p.Client.RegisterCommands(ctx); err != nil {
				p.Logger.Warn("register bot commands failed", slog.String("error", err.Error()))
			}

			switch p.Config.Mode {
			case config.ModeWebhook:
				if err := p.Client.RegisterWebhook(ctx, p.Config.WebhookURL()); err != nil {
					return err
				}
			default:
				p.Poller.Start(p.Ctx)
			}

			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if p.Config.Mode != config.ModeWebhook {
				p.Poller.Stop()
			}

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("orderbot stopped")
			return nil
		},
	})
}
