package telegram

import (
	"context"
	"errors"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bunny00908/anime/internal/config"
	"github.com/bunny00908/anime/internal/domain/ports/adapter"
	"github.com/bunny00908/anime/internal/infra/logging"
	"github.com/bunny00908/anime/internal/infra/metrics"
)

// Compile-time check
var _ adapter.ChatAdapter = (*RealTelegramBotAdapter)(nil)

// RealTelegramBotAdapter implements adapter.ChatAdapter using tgbotapi with
// concurrent polling. Inbound updates are routed to an adapter.EventHandler.
type RealTelegramBotAdapter struct {
	bot *tgbotapi.BotAPI
	cfg *config.BotConfig
	log *zerolog.Logger

	// updateWorkers is how many goroutines will concurrently process updates.
	updateWorkers int
	// cancelPolling cancels polling when called
	cancelPolling context.CancelFunc
}

// NewRealTelegramBotAdapter creates a new bot adapter. updateWorkers controls
// how many updates are handled concurrently.
func NewRealTelegramBotAdapter(cfg *config.BotConfig, updateWorkers int, logger *zerolog.Logger) (*RealTelegramBotAdapter, error) {
	if cfg == nil {
		return nil, errors.New("bot config is nil")
	}
	if updateWorkers <= 0 {
		updateWorkers = 5
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, err
	}

	return &RealTelegramBotAdapter{
		bot:           bot,
		cfg:           cfg,
		log:           logger,
		updateWorkers: updateWorkers,
	}, nil
}

// StartPolling begins polling Telegram for updates concurrently and routes
// them to handler. It runs until ctx is canceled. Handler errors are logged
// and counted; the loop keeps serving subsequent updates.
func (r *RealTelegramBotAdapter) StartPolling(ctx context.Context, handler adapter.EventHandler) error {
	if handler == nil {
		return errors.New("event handler is nil")
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := r.bot.GetUpdatesChan(u)

	ctx, cancel := context.WithCancel(ctx)
	r.cancelPolling = cancel

	var wg sync.WaitGroup
	updateChan := make(chan tgbotapi.Update, 100)

	// Start worker goroutines to process updates concurrently
	for i := 0; i < r.updateWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for {
				select {
				case update, ok := <-updateChan:
					if !ok {
						return
					}
					if err := r.handleUpdate(ctx, handler, update); err != nil {
						metrics.IncHandlerError()
						r.log.Error().Err(err).Int("worker", workerID).Int("update_id", update.UpdateID).Msg("error handling update")
					}
				case <-ctx.Done():
					return
				}
			}
		}(i + 1)
	}

	// Dispatcher goroutine: feed updates into updateChan
	go func() {
		defer close(updateChan)
		for {
			select {
			case update := <-updates:
				select {
				case updateChan <- update:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	<-ctx.Done()
	r.bot.StopReceivingUpdates()
	wg.Wait()
	return nil
}

// StopPolling stops the polling loop gracefully.
func (r *RealTelegramBotAdapter) StopPolling() {
	if r.cancelPolling != nil {
		r.cancelPolling()
	}
}

// handleUpdate classifies a single Telegram update and dispatches it.
func (r *RealTelegramBotAdapter) handleUpdate(ctx context.Context, handler adapter.EventHandler, update tgbotapi.Update) error {
	ctx = logging.WithTraceID(ctx, uuid.NewString())

	if q := update.CallbackQuery; q != nil {
		metrics.IncUpdate("callback")
		ev := adapter.CallbackEvent{
			ID:      q.ID,
			Data:    q.Data,
			Name:    firstName(q.From),
			Message: refOf(q.Message),
		}
		return handler.HandleCallback(logging.WithChatID(ctx, ev.Message.ChatID), ev)
	}

	msg := update.Message
	if msg == nil {
		return nil
	}
	chatID := msg.Chat.ID
	ctx = logging.WithChatID(ctx, chatID)
	name := firstName(msg.From)

	switch {
	case msg.IsCommand() && msg.Command() == "start":
		metrics.IncUpdate("command")
		return handler.HandleStart(ctx, chatID, name)
	case msg.IsCommand() && msg.Command() == "help":
		metrics.IncUpdate("command")
		return handler.HandleHelp(ctx, chatID)
	case len(msg.Photo) > 0:
		metrics.IncUpdate("photo")
		return handler.HandleMessage(ctx, chatID, name)
	default:
		// Unknown commands get the same image reply as plain text.
		metrics.IncUpdate("text")
		return handler.HandleMessage(ctx, chatID, name)
	}
}

// ---- adapter.ChatAdapter ----

func (r *RealTelegramBotAdapter) SendText(_ context.Context, chatID int64, text string) (adapter.MessageRef, error) {
	sent, err := r.bot.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		return adapter.MessageRef{}, err
	}
	return adapter.MessageRef{ChatID: chatID, MessageID: sent.MessageID}, nil
}

func (r *RealTelegramBotAdapter) SendPhoto(_ context.Context, chatID int64, photoURL, caption string, keyboard [][]adapter.InlineButton) error {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(photoURL))
	photo.Caption = caption
	photo.ReplyMarkup = toMarkup(keyboard)
	_, err := r.bot.Send(photo)
	return err
}

func (r *RealTelegramBotAdapter) DeleteMessage(_ context.Context, ref adapter.MessageRef) error {
	_, err := r.bot.Request(tgbotapi.NewDeleteMessage(ref.ChatID, ref.MessageID))
	return err
}

func (r *RealTelegramBotAdapter) EditCaption(_ context.Context, ref adapter.MessageRef, caption string, keyboard [][]adapter.InlineButton) error {
	edit := tgbotapi.NewEditMessageCaption(ref.ChatID, ref.MessageID, caption)
	markup := toMarkup(keyboard)
	edit.ReplyMarkup = &markup
	_, err := r.bot.Send(edit)
	return err
}

func (r *RealTelegramBotAdapter) AnswerCallback(_ context.Context, callbackID string) error {
	_, err := r.bot.Request(tgbotapi.NewCallback(callbackID, ""))
	return err
}

// ---- helpers ----

func toMarkup(rows [][]adapter.InlineButton) tgbotapi.InlineKeyboardMarkup {
	kb := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		btns := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			if b.URL != "" {
				btns = append(btns, tgbotapi.NewInlineKeyboardButtonURL(b.Text, b.URL))
			} else {
				btns = append(btns, tgbotapi.NewInlineKeyboardButtonData(b.Text, b.Data))
			}
		}
		kb = append(kb, btns)
	}
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: kb}
}

func firstName(u *tgbotapi.User) string {
	if u == nil {
		return ""
	}
	return u.FirstName
}

func refOf(m *tgbotapi.Message) adapter.MessageRef {
	if m == nil {
		return adapter.MessageRef{}
	}
	return adapter.MessageRef{ChatID: m.Chat.ID, MessageID: m.MessageID}
}
