// Package bot holds the platform-agnostic conversation core: the update
// router, per-user quantity entry sessions and message rendering. The
// Telegram binding lives in internal/telegram.
package bot

import "context"

// EventType classifies a normalized inbound platform event.
type EventType string

const (
	EventCommand  EventType = "command"
	EventText     EventType = "text"
	EventCallback EventType = "callback"
)

// Event is one normalized inbound update. The transport adapter owns
// parsing and verification; the router only consumes this shape.
type Event struct {
	Type     EventType
	UserID   int64
	Username string
	ChatID   int64

	// MessageID refers to the message carrying the tapped keyboard,
	// set for callbacks only.
	MessageID int
	// CallbackID must be acknowledged for every callback event.
	CallbackID string

	Command string
	Text    string
	Token   string
}

// Button is one keyboard cell: a visible label and an opaque callback token.
type Button struct {
	Label string
	Token string
}

// Keyboard is a grid of buttons rendered under a message.
type Keyboard [][]Button

// Messenger is the outbound boundary to the messaging platform.
type Messenger interface {
	Send(ctx context.Context, chatID int64, text string, kb Keyboard) error
	Edit(ctx context.Context, chatID int64, messageID int, text string, kb Keyboard) error
	// Answer acknowledges a callback, optionally with a short notice toast.
	Answer(ctx context.Context, callbackID, notice string) error
	// SendMenu shows a persistent reply keyboard next to the input field.
	SendMenu(ctx context.Context, chatID int64, text string, buttons []string) error
}
