package adapter

import "context"

// InlineButton is one key of an inline keyboard. Exactly one of URL or Data
// should be set: URL opens a link, Data is sent back as a callback.
type InlineButton struct {
	Text string
	URL  string
	Data string
}

// MessageRef identifies a previously sent message so it can be deleted or
// edited later. A zero ref means "no message".
type MessageRef struct {
	ChatID    int64
	MessageID int
}

func (m MessageRef) IsZero() bool { return m.MessageID == 0 }

// CallbackEvent is an inline-button press delivered by the platform.
type CallbackEvent struct {
	ID      string
	Data    string
	Name    string
	Message MessageRef
}

// ChatAdapter is the domain-level port for the messaging platform.
// Keep it minimal so the application layer stays platform-agnostic.
type ChatAdapter interface {
	SendText(ctx context.Context, chatID int64, text string) (MessageRef, error)
	SendPhoto(ctx context.Context, chatID int64, photoURL, caption string, keyboard [][]InlineButton) error
	DeleteMessage(ctx context.Context, ref MessageRef) error
	EditCaption(ctx context.Context, ref MessageRef, caption string, keyboard [][]InlineButton) error
	AnswerCallback(ctx context.Context, callbackID string) error
}

// EventHandler receives inbound chat events from the platform adapter.
type EventHandler interface {
	HandleStart(ctx context.Context, chatID int64, name string) error
	HandleHelp(ctx context.Context, chatID int64) error
	HandleMessage(ctx context.Context, chatID int64, name string) error
	HandleCallback(ctx context.Context, ev CallbackEvent) error
}
