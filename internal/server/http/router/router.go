package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/mkorobko/orderbot/internal/server/http/handlers"
	"github.com/mkorobko/orderbot/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware. The webhook
// route is mounted in every mode; Telegram only posts to it after a
// webhook registration.
func Setup(facade handlers.ShopFacade, hook *handlers.WebhookHandler, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	shopHandler := handlers.NewShopHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)

	engine.POST("/bot/:token", hook.Handle)

	api := engine.Group("/api")
	api.GET("/products", shopHandler.Products)
	api.POST("/order", shopHandler.CreateOrder)

	admin := api.Group("/admin")
	admin.GET("/orders", adminHandler.List)
	admin.POST("/order/status", adminHandler.UpdateStatus)

	return engine
}
