package bot

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	domainErrors "github.com/mkorobko/orderbot/internal/domain/errors"
	"github.com/mkorobko/orderbot/internal/domain/model"
	"github.com/mkorobko/orderbot/internal/usecase"
)

// Facade exposes the application operations the router dispatches to.
type Facade interface {
	CreateOrder(ctx context.Context, userID int64, username string, selections []usecase.Selection) (*model.Order, error)
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	AdvanceStatus(ctx context.Context, number int) (*model.Order, error)
	Categories() []model.Category
	CategoryItems(categoryKey string) ([]model.Product, error)
}

// Router dispatches normalized inbound events to handlers. It owns the
// per-user quantity entry sessions.
type Router struct {
	facade    Facade
	sessions  *SessionStore
	messenger Messenger
	logger    *slog.Logger
}

func NewRouter(facade Facade, sessions *SessionStore, messenger Messenger, logger *slog.Logger) *Router {
	return &Router{facade: facade, sessions: sessions, messenger: messenger, logger: logger}
}

// Dispatch routes one event. Handler failures become chat notices; they
// never propagate to the transport layer.
func (r *Router) Dispatch(ctx context.Context, ev Event) {
	switch ev.Type {
	case EventCommand:
		r.handleCommand(ctx, ev)
	case EventText:
		r.handleText(ctx, ev)
	case EventCallback:
		r.handleCallback(ctx, ev)
	}
}

func (r *Router) handleCommand(ctx context.Context, ev Event) {
	switch ev.Command {
	case "start":
		r.trySend(ctx, ev.ChatID, func() error {
			return r.messenger.SendMenu(ctx, ev.ChatID, welcomeText, []string{catalogMenuLabel})
		})
	case "catalog":
		r.sendCategories(ctx, ev.ChatID)
	case "orders":
		r.sendOrders(ctx, ev)
	case "help":
		r.trySend(ctx, ev.ChatID, func() error {
			return r.messenger.Send(ctx, ev.ChatID, helpText, nil)
		})
	}
}

func (r *Router) handleText(ctx context.Context, ev Event) {
	// The persistent menu button arrives as plain text.
	if ev.Text == catalogMenuLabel {
		r.sendCategories(ctx, ev.ChatID)
	}
}

// handleCallback answers the callback exactly once, whatever the outcome.
// Unanswered callbacks look stuck to the user.
func (r *Router) handleCallback(ctx context.Context, ev Event) {
	notice := r.routeCallback(ctx, ev)
	if err := r.messenger.Answer(ctx, ev.CallbackID, notice); err != nil {
		r.logger.Error("answer callback failed",
			slog.String("token", ev.Token),
			slog.String("error", err.Error()),
		)
	}
}

func (r *Router) routeCallback(ctx context.Context, ev Event) string {
	if ev.Token == backToCategoriesToken {
		r.sessions.Drop(ev.UserID)
		r.editCategories(ctx, ev)
		return ""
	}

	verb, rest, _ := strings.Cut(ev.Token, tokenSep)
	switch verb {
	case verbCategory:
		return r.showItems(ctx, ev, rest)
	case verbItem:
		r.sessions.Select(ev.UserID, rest)
		r.tryEdit(ctx, ev, QuantityPrompt(""), QuantityKeyboard(rest))
		return ""
	case verbQuantity:
		return r.handleQuantity(ctx, ev, rest)
	case verbStatus:
		return r.advanceStatus(ctx, ev, rest)
	case verbOrders:
		return r.refreshOrders(ctx, ev)
	default:
		// Unrecognized verbs are acknowledged no-ops.
		r.logger.Info("unrecognized callback", slog.String("token", ev.Token))
		return ""
	}
}

func (r *Router) showItems(ctx context.Context, ev Event, categoryKey string) string {
	items, err := r.facade.CategoryItems(categoryKey)
	if err != nil {
		return "Category not found"
	}
	r.tryEdit(ctx, ev, "🛒 Items in the category:", ItemsKeyboard(items))
	return ""
}

// handleQuantity processes one digit pad tap. The token carries the action
// and the item id, so entry keeps working across duplicate deliveries.
func (r *Router) handleQuantity(ctx context.Context, ev Event, rest string) string {
	action, itemID, ok := strings.Cut(rest, tokenSep)
	if !ok {
		return ""
	}

	switch action {
	case "enter":
		return r.commitQuantity(ctx, ev, itemID)
	case "backspace":
		digits, err := r.sessions.Backspace(ev.UserID, itemID)
		if err != nil {
			return "Empty"
		}
		r.tryEdit(ctx, ev, QuantityPrompt(digits), QuantityKeyboard(itemID))
		return ""
	case "clear":
		digits := r.sessions.Clear(ev.UserID, itemID)
		r.tryEdit(ctx, ev, QuantityPrompt(digits), QuantityKeyboard(itemID))
		return "Cleared"
	default:
		if len(action) != 1 || action[0] < '0' || action[0] > '9' {
			return ""
		}
		digits, err := r.sessions.AppendDigit(ev.UserID, itemID, action)
		if err != nil {
			return "The number is too long!"
		}
		r.tryEdit(ctx, ev, QuantityPrompt(digits), QuantityKeyboard(itemID))
		return ""
	}
}

func (r *Router) commitQuantity(ctx context.Context, ev Event, itemID string) string {
	quantity, err := r.sessions.Commit(ev.UserID, itemID)
	if err != nil {
		return "The quantity must be greater than zero!"
	}

	order, err := r.facade.CreateOrder(ctx, ev.UserID, ev.Username, []usecase.Selection{{ItemID: itemID, Quantity: quantity}})
	switch {
	case errors.Is(err, domainErrors.ErrItemNotFound):
		r.tryEdit(ctx, ev, "Error: item not found", nil)
		return ""
	case err != nil:
		r.logger.Error("create order failed",
			slog.Int64("user_id", ev.UserID),
			slog.String("error", err.Error()),
		)
		r.tryEdit(ctx, ev, "Something went wrong while placing the order. Please try again.", nil)
		return ""
	}

	r.tryEdit(ctx, ev, OrderSummary(order), StatusKeyboard(order.Number))
	return ""
}

func (r *Router) advanceStatus(ctx context.Context, ev Event, rest string) string {
	number, err := strconv.Atoi(rest)
	if err != nil {
		return ""
	}

	order, err := r.facade.AdvanceStatus(ctx, number)
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		return "Order not found"
	case err != nil:
		r.logger.Error("advance status failed",
			slog.Int("order", number),
			slog.String("error", err.Error()),
		)
		return "Failed to update the status"
	}

	r.tryEdit(ctx, ev, OrderSummary(order), StatusKeyboard(order.Number))
	return ""
}

func (r *Router) refreshOrders(ctx context.Context, ev Event) string {
	orders, err := r.facade.Orders(ctx, ev.UserID)
	if err != nil {
		r.logger.Error("list orders failed",
			slog.Int64("user_id", ev.UserID),
			slog.String("error", err.Error()),
		)
		return "Failed to load your orders"
	}
	if len(orders) == 0 {
		return "You have no orders yet"
	}

	r.trySend(ctx, ev.ChatID, func() error {
		return r.messenger.Send(ctx, ev.ChatID, OrdersList(orders), OrdersKeyboard())
	})
	return ""
}

func (r *Router) sendCategories(ctx context.Context, chatID int64) {
	r.trySend(ctx, chatID, func() error {
		return r.messenger.Send(ctx, chatID, "📂 Choose a category:", CategoriesKeyboard(r.facade.Categories()))
	})
}

func (r *Router) editCategories(ctx context.Context, ev Event) {
	r.tryEdit(ctx, ev, "📂 Choose a category:", CategoriesKeyboard(r.facade.Categories()))
}

func (r *Router) sendOrders(ctx context.Context, ev Event) {
	orders, err := r.facade.Orders(ctx, ev.UserID)
	if err != nil {
		r.logger.Error("list orders failed",
			slog.Int64("user_id", ev.UserID),
			slog.String("error", err.Error()),
		)
		r.trySend(ctx, ev.ChatID, func() error {
			return r.messenger.Send(ctx, ev.ChatID, "Failed to load your orders. Please try again.", nil)
		})
		return
	}
	if len(orders) == 0 {
		r.trySend(ctx, ev.ChatID, func() error {
			return r.messenger.Send(ctx, ev.ChatID, "You have no orders yet.", nil)
		})
		return
	}

	r.trySend(ctx, ev.ChatID, func() error {
		return r.messenger.Send(ctx, ev.ChatID, OrdersList(orders), OrdersKeyboard())
	})
}

func (r *Router) tryEdit(ctx context.Context, ev Event, text string, kb Keyboard) {
	if err := r.messenger.Edit(ctx, ev.ChatID, ev.MessageID, text, kb); err != nil {
		r.logger.Error("edit message failed",
			slog.Int64("chat_id", ev.ChatID),
			slog.String("error", err.Error()),
		)
	}
}

func (r *Router) trySend(ctx context.Context, chatID int64, send func() error) {
	if err := send(); err != nil {
		r.logger.Error("send message failed",
			slog.Int64("chat_id", chatID),
			slog.String("error", err.Error()),
		)
	}
}
