package bot

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	domainErrors "github.com/mkorobko/orderbot/internal/domain/errors"
	"github.com/mkorobko/orderbot/internal/domain/model"
	"github.com/mkorobko/orderbot/internal/test"
	"github.com/mkorobko/orderbot/internal/usecase"
)

type sentMessage struct {
	chatID   int64
	text     string
	keyboard Keyboard
}

type editedMessage struct {
	chatID    int64
	messageID int
	text      string
	keyboard  Keyboard
}

type messengerStub struct {
	sent    []sentMessage
	edited  []editedMessage
	answers []string
	menus   []string
}

func (m *messengerStub) Send(_ context.Context, chatID int64, text string, kb Keyboard) error {
	m.sent = append(m.sent, sentMessage{chatID: chatID, text: text, keyboard: kb})
	return nil
}

func (m *messengerStub) Edit(_ context.Context, chatID int64, messageID int, text string, kb Keyboard) error {
	m.edited = append(m.edited, editedMessage{chatID: chatID, messageID: messageID, text: text, keyboard: kb})
	return nil
}

func (m *messengerStub) Answer(_ context.Context, callbackID, notice string) error {
	m.answers = append(m.answers, notice)
	return nil
}

func (m *messengerStub) SendMenu(_ context.Context, chatID int64, text string, buttons []string) error {
	m.menus = append(m.menus, text)
	return nil
}

func newTestRouter(facade Facade) (*Router, *messengerStub) {
	messenger := &messengerStub{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(facade, NewSessionStore(), messenger, logger), messenger
}

func callbackEvent(userID int64, token string) Event {
	return Event{
		Type:       EventCallback,
		UserID:     userID,
		Username:   "tester",
		ChatID:     userID,
		MessageID:  100,
		CallbackID: "cb-1",
		Token:      token,
	}
}

func TestStartCommandSendsMenu(t *testing.T) {
	router, messenger := newTestRouter(test.ShopFacadeStub{})

	router.Dispatch(context.Background(), Event{Type: EventCommand, Command: "start", ChatID: 7})

	if len(messenger.menus) != 1 {
		t.Fatalf("expected one menu message, got %d", len(messenger.menus))
	}
	if !strings.Contains(messenger.menus[0], "Welcome") {
		t.Fatalf("unexpected welcome text %q", messenger.menus[0])
	}
}

func TestCatalogCommandSendsCategories(t *testing.T) {
	router, messenger := newTestRouter(test.ShopFacadeStub{})

	router.Dispatch(context.Background(), Event{Type: EventCommand, Command: "catalog", ChatID: 7})

	if len(messenger.sent) != 1 {
		t.Fatalf("expected one message, got %d", len(messenger.sent))
	}
	kb := messenger.sent[0].keyboard
	if len(kb) != 1 || kb[0][0].Token != "cat_fruits" {
		t.Fatalf("unexpected keyboard %+v", kb)
	}
}

func TestCatalogMenuTextOpensCategories(t *testing.T) {
	router, messenger := newTestRouter(test.ShopFacadeStub{})

	router.Dispatch(context.Background(), Event{Type: EventText, Text: "Catalog", ChatID: 7})

	if len(messenger.sent) != 1 {
		t.Fatalf("expected one message, got %d", len(messenger.sent))
	}
}

func TestOrdersCommandEmpty(t *testing.T) {
	facade := test.ShopFacadeStub{
		OrdersFn: func(context.Context, int64) ([]model.Order, error) {
			return nil, nil
		},
	}
	router, messenger := newTestRouter(facade)

	router.Dispatch(context.Background(), Event{Type: EventCommand, Command: "orders", UserID: 7, ChatID: 7})

	if len(messenger.sent) != 1 || messenger.sent[0].text != "You have no orders yet." {
		t.Fatalf("unexpected messages %+v", messenger.sent)
	}
}

func TestCategoryCallbackShowsItems(t *testing.T) {
	router, messenger := newTestRouter(test.ShopFacadeStub{})

	router.Dispatch(context.Background(), callbackEvent(7, "cat_fruits"))

	if len(messenger.answers) != 1 || messenger.answers[0] != "" {
		t.Fatalf("expected one empty answer, got %+v", messenger.answers)
	}
	if len(messenger.edited) != 1 {
		t.Fatalf("expected one edit, got %d", len(messenger.edited))
	}
	kb := messenger.edited[0].keyboard
	if kb[0][0].Token != "item_a1" {
		t.Fatalf("unexpected keyboard %+v", kb)
	}
}

func TestUnknownCategoryAnswersNotice(t *testing.T) {
	facade := test.ShopFacadeStub{
		ItemsFn: func(string) ([]model.Product, error) {
			return nil, domainErrors.ErrNotFound
		},
	}
	router, messenger := newTestRouter(facade)

	router.Dispatch(context.Background(), callbackEvent(7, "cat_nope"))

	if len(messenger.answers) != 1 || messenger.answers[0] != "Category not found" {
		t.Fatalf("unexpected answers %+v", messenger.answers)
	}
	if len(messenger.edited) != 0 {
		t.Fatalf("expected no edits, got %d", len(messenger.edited))
	}
}

func TestQuantityEntryPlacesOrder(t *testing.T) {
	var captured []usecase.Selection
	facade := test.ShopFacadeStub{
		CreateFn: func(_ context.Context, userID int64, _ string, selections []usecase.Selection) (*model.Order, error) {
			captured = selections
			order := test.SampleOrder(1, userID, model.StatusCollecting)
			return order, nil
		},
	}
	router, messenger := newTestRouter(facade)
	ctx := context.Background()

	router.Dispatch(ctx, callbackEvent(7, "item_a1"))
	router.Dispatch(ctx, callbackEvent(7, "qty_1_a1"))
	router.Dispatch(ctx, callbackEvent(7, "qty_2_a1"))
	router.Dispatch(ctx, callbackEvent(7, "qty_enter_a1"))

	if len(captured) != 1 || captured[0].ItemID != "a1" || captured[0].Quantity != 12 {
		t.Fatalf("unexpected selections %+v", captured)
	}

	last := messenger.edited[len(messenger.edited)-1]
	if !strings.Contains(last.text, "✅ Order №1 placed!") {
		t.Fatalf("expected order summary, got %q", last.text)
	}
	if last.keyboard[0][0].Token != "status_1" {
		t.Fatalf("unexpected keyboard %+v", last.keyboard)
	}
	if len(messenger.answers) != 4 {
		t.Fatalf("every callback must be answered, got %d answers", len(messenger.answers))
	}
}

func TestEmptyBufferConfirmRejected(t *testing.T) {
	created := false
	facade := test.ShopFacadeStub{
		CreateFn: func(context.Context, int64, string, []usecase.Selection) (*model.Order, error) {
			created = true
			return nil, nil
		},
	}
	router, messenger := newTestRouter(facade)
	ctx := context.Background()

	router.Dispatch(ctx, callbackEvent(7, "item_a1"))
	router.Dispatch(ctx, callbackEvent(7, "qty_enter_a1"))

	if created {
		t.Fatal("order must not be created from an empty buffer")
	}
	if got := messenger.answers[len(messenger.answers)-1]; got != "The quantity must be greater than zero!" {
		t.Fatalf("unexpected notice %q", got)
	}
}

func TestSixthDigitAnswersTooLong(t *testing.T) {
	router, messenger := newTestRouter(test.ShopFacadeStub{})
	ctx := context.Background()

	router.Dispatch(ctx, callbackEvent(7, "item_a1"))
	for _, d := range []string{"1", "2", "3", "4", "5", "6"} {
		router.Dispatch(ctx, callbackEvent(7, "qty_"+d+"_a1"))
	}

	if got := messenger.answers[len(messenger.answers)-1]; got != "The number is too long!" {
		t.Fatalf("unexpected notice %q", got)
	}
}

func TestBackspaceOnEmptyBufferAnswersEmptyNotice(t *testing.T) {
	router, messenger := newTestRouter(test.ShopFacadeStub{})
	ctx := context.Background()

	router.Dispatch(ctx, callbackEvent(7, "item_a1"))
	router.Dispatch(ctx, callbackEvent(7, "qty_backspace_a1"))

	if got := messenger.answers[len(messenger.answers)-1]; got != "Empty" {
		t.Fatalf("unexpected notice %q", got)
	}
}

func TestCommitUnknownItemEditsError(t *testing.T) {
	facade := test.ShopFacadeStub{
		CreateFn: func(context.Context, int64, string, []usecase.Selection) (*model.Order, error) {
			return nil, domainErrors.ErrItemNotFound
		},
	}
	router, messenger := newTestRouter(facade)
	ctx := context.Background()

	router.Dispatch(ctx, callbackEvent(7, "item_gone"))
	router.Dispatch(ctx, callbackEvent(7, "qty_5_gone"))
	router.Dispatch(ctx, callbackEvent(7, "qty_enter_gone"))

	last := messenger.edited[len(messenger.edited)-1]
	if last.text != "Error: item not found" {
		t.Fatalf("unexpected edit %q", last.text)
	}
}

func TestStatusCallbackAdvances(t *testing.T) {
	facade := test.ShopFacadeStub{
		AdvanceFn: func(_ context.Context, number int) (*model.Order, error) {
			return test.SampleOrder(number, 7, model.StatusPreparing), nil
		},
	}
	router, messenger := newTestRouter(facade)

	router.Dispatch(context.Background(), callbackEvent(7, "status_1"))

	last := messenger.edited[len(messenger.edited)-1]
	if !strings.Contains(last.text, "Current status: Preparing") {
		t.Fatalf("expected refreshed summary, got %q", last.text)
	}
}

func TestStatusCallbackUnknownOrder(t *testing.T) {
	facade := test.ShopFacadeStub{
		AdvanceFn: func(context.Context, int) (*model.Order, error) {
			return nil, domainErrors.ErrNotFound
		},
	}
	router, messenger := newTestRouter(facade)

	router.Dispatch(context.Background(), callbackEvent(7, "status_99"))

	if got := messenger.answers[len(messenger.answers)-1]; got != "Order not found" {
		t.Fatalf("unexpected notice %q", got)
	}
}

func TestOrdersCallbackEmptyAnswersNotice(t *testing.T) {
	facade := test.ShopFacadeStub{
		OrdersFn: func(context.Context, int64) ([]model.Order, error) {
			return nil, nil
		},
	}
	router, messenger := newTestRouter(facade)

	router.Dispatch(context.Background(), callbackEvent(7, "orders"))

	if got := messenger.answers[len(messenger.answers)-1]; got != "You have no orders yet" {
		t.Fatalf("unexpected notice %q", got)
	}
}

func TestBackToCategoriesDropsSession(t *testing.T) {
	router, messenger := newTestRouter(test.ShopFacadeStub{})
	ctx := context.Background()

	router.Dispatch(ctx, callbackEvent(7, "item_a1"))
	router.Dispatch(ctx, callbackEvent(7, "qty_9_a1"))
	router.Dispatch(ctx, callbackEvent(7, backToCategoriesToken))

	if got := router.sessions.Digits(7, "a1"); got != "" {
		t.Fatalf("expected session dropped, got buffer %q", got)
	}
	last := messenger.edited[len(messenger.edited)-1]
	if last.keyboard[0][0].Token != "cat_fruits" {
		t.Fatalf("expected categories keyboard, got %+v", last.keyboard)
	}
}

func TestUnrecognizedCallbackStillAnswered(t *testing.T) {
	router, messenger := newTestRouter(test.ShopFacadeStub{})

	router.Dispatch(context.Background(), callbackEvent(7, "mystery_thing"))

	if len(messenger.answers) != 1 || messenger.answers[0] != "" {
		t.Fatalf("expected one empty answer, got %+v", messenger.answers)
	}
}
