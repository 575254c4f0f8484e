package handlers

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mkorobko/orderbot/internal/bot"
	"github.com/mkorobko/orderbot/internal/config"
	"github.com/mkorobko/orderbot/internal/telegram"
)

// WebhookHandler feeds pushed platform updates into the router. The bot
// token doubles as the route secret, so the path parameter is checked
// against it before anything is parsed.
type WebhookHandler struct {
	token  string
	router *bot.Router
}

// NewWebhookHandler constructs WebhookHandler.
func NewWebhookHandler(cfg *config.Config, router *bot.Router) *WebhookHandler {
	return &WebhookHandler{token: cfg.Token, router: router}
}

// Handle handles POST /bot/:token. The transport request is acknowledged
// immediately; the update is dispatched asynchronously so a slow handler
// never provokes a platform-side redelivery.
func (h *WebhookHandler) Handle(c *gin.Context) {
	if subtle.ConstantTimeCompare([]byte(c.Param("token")), []byte(h.token)) != 1 {
		c.Status(http.StatusNotFound)
		return
	}

	var update tgbotapi.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if ev, ok := telegram.Normalize(update); ok {
		go h.router.Dispatch(context.WithoutCancel(c.Request.Context()), ev)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
