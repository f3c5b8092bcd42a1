package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bunny00908/anime/internal/domain/model"
	"github.com/bunny00908/anime/internal/domain/ports/adapter"
	"github.com/bunny00908/anime/internal/infra/logging"
	"github.com/bunny00908/anime/internal/usecase"
)

// Compile-time check
var _ adapter.EventHandler = (*BotFacade)(nil)

// Callback payloads for the inline keyboard action row.
const (
	CallbackGetRandom = "get_random"
	CallbackHelp      = "help"
)

const fetchingText = "🎨 Getting a fresh anime image for you... ✨"

// ChannelLink describes one promoted channel button.
type ChannelLink struct {
	Handle string
	Name   string
}

// BotFacade composes the image resolver and the user directory into the
// reply flow every inbound event follows. The Telegram adapter only routes
// events here and ships the replies back out.
type BotFacade struct {
	users  usecase.UserUseCase
	images usecase.ImageUseCase
	chat   adapter.ChatAdapter
	main   ChannelLink
	backup ChannelLink
	log    *zerolog.Logger
}

func NewBotFacade(
	users usecase.UserUseCase,
	images usecase.ImageUseCase,
	chat adapter.ChatAdapter,
	main, backup ChannelLink,
	logger *zerolog.Logger,
) *BotFacade {
	return &BotFacade{
		users:  users,
		images: images,
		chat:   chat,
		main:   main,
		backup: backup,
		log:    logger,
	}
}

// HandleStart replies with an image and an explicit welcome greeting.
func (b *BotFacade) HandleStart(ctx context.Context, chatID int64, name string) error {
	if name == "" {
		name = "there"
	}
	logging.With(ctx, b.log).Info().Int64("chat_id", chatID).Str("name", name).Msg("start command")
	return b.sendImageReply(ctx, chatID, name, welcomeText(name))
}

// HandleHelp replies with the full help text. No image is fetched.
func (b *BotFacade) HandleHelp(ctx context.Context, chatID int64) error {
	_, err := b.chat.SendText(ctx, chatID, b.helpText())
	if err != nil {
		return fmt.Errorf("send help: %w", err)
	}
	return nil
}

// HandleMessage covers any plain text or photo message.
func (b *BotFacade) HandleMessage(ctx context.Context, chatID int64, name string) error {
	return b.sendImageReply(ctx, chatID, name, "")
}

// HandleCallback routes inline-button presses. The press is acknowledged
// first so the client stops its spinner even if the reply fails.
func (b *BotFacade) HandleCallback(ctx context.Context, ev adapter.CallbackEvent) error {
	log := logging.With(ctx, b.log)
	if err := b.chat.AnswerCallback(ctx, ev.ID); err != nil {
		log.Debug().Err(err).Msg("failed to answer callback query")
	}
	switch ev.Data {
	case CallbackGetRandom:
		log.Info().Int64("chat_id", ev.Message.ChatID).Str("name", ev.Name).Msg("random image requested")
		return b.sendImageReply(ctx, ev.Message.ChatID, ev.Name, "")
	case CallbackHelp:
		// Help rewrites the pressed message in place instead of sending a new one.
		if err := b.chat.EditCaption(ctx, ev.Message, b.condensedHelpText(), b.channelKeyboard()); err != nil {
			return fmt.Errorf("edit help caption: %w", err)
		}
		return nil
	default:
		log.Warn().Str("data", ev.Data).Msg("unknown callback payload")
		return nil
	}
}

// sendImageReply is the per-event sequence: refresh the directory, show a
// placeholder, resolve, clean up, send the final reply. Outbound failures
// degrade to a fallback reply instead of surfacing to the user.
func (b *BotFacade) sendImageReply(ctx context.Context, chatID int64, name, greeting string) error {
	log := logging.With(ctx, b.log)
	first, err := b.users.Remember(ctx, chatID, name)
	if err != nil {
		// The directory only personalizes captions; losing one write is not fatal.
		log.Warn().Err(err).Int64("chat_id", chatID).Msg("failed to refresh user directory")
	}
	if name == "" {
		name = "there"
	}
	if greeting == "" && first {
		greeting = welcomeText(name)
	}

	placeholder, err := b.chat.SendText(ctx, chatID, fetchingText)
	if err != nil {
		log.Warn().Err(err).Int64("chat_id", chatID).Msg("failed to send placeholder")
		placeholder = adapter.MessageRef{}
	}
	// The placeholder is removed on every exit path below; a failed delete is
	// logged and must never replace the error being handled.
	defer b.removePlaceholder(ctx, &placeholder)

	img := b.images.Resolve(ctx)
	b.removePlaceholder(ctx, &placeholder)

	caption := b.composeCaption(name, greeting, img)
	if err := b.chat.SendPhoto(ctx, chatID, img.URL, caption, b.channelKeyboard()); err != nil {
		log.Error().Err(err).Int64("chat_id", chatID).Msg("failed to send image reply")
		return b.sendDegraded(ctx, chatID, name)
	}
	log.Info().Int64("chat_id", chatID).Str("name", name).Msg("image sent")
	return nil
}

// removePlaceholder deletes the status message if one was actually sent and
// clears the ref so repeated cleanup is a no-op.
func (b *BotFacade) removePlaceholder(ctx context.Context, ref *adapter.MessageRef) {
	if ref == nil || ref.IsZero() {
		return
	}
	if err := b.chat.DeleteMessage(ctx, *ref); err != nil {
		logging.With(ctx, b.log).Debug().Err(err).Int64("chat_id", ref.ChatID).Msg("failed to delete placeholder")
	}
	*ref = adapter.MessageRef{}
}

// sendDegraded ships a reply built straight from a fallback entry. This is
// the last resort; its own failure is the only error a handler returns.
func (b *BotFacade) sendDegraded(ctx context.Context, chatID int64, name string) error {
	img := b.images.Fallback()
	caption := b.composeCaption(name, "", img)
	if err := b.chat.SendPhoto(ctx, chatID, img.URL, caption, b.channelKeyboard()); err != nil {
		return fmt.Errorf("send degraded reply: %w", err)
	}
	logging.With(ctx, b.log).Info().Int64("chat_id", chatID).Msg("degraded fallback reply sent")
	return nil
}

// composeCaption assembles, in order: greeting or salutation, alt text,
// attribution, call to action.
func (b *BotFacade) composeCaption(name, greeting string, img model.Image) string {
	if name == "" {
		name = "there"
	}
	var sb strings.Builder
	if greeting != "" {
		sb.WriteString(greeting)
	} else {
		fmt.Fprintf(&sb, "🌸 Here's your anime image, %s! 🌸", name)
	}
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "🎨 %s\n", img.Alt)
	fmt.Fprintf(&sb, "📸 Photo by: %s\n\n", img.Photographer)
	sb.WriteString("💫 Join our channels for more anime content! 👇")
	return sb.String()
}

// channelKeyboard is the fixed 2x2 layout: two channel links on top, the
// action buttons below.
func (b *BotFacade) channelKeyboard() [][]adapter.InlineButton {
	return [][]adapter.InlineButton{
		{
			{Text: "🌸 " + b.main.Name, URL: channelURL(b.main.Handle)},
			{Text: "💫 " + b.backup.Name, URL: channelURL(b.backup.Handle)},
		},
		{
			{Text: "🎲 Get Another Image", Data: CallbackGetRandom},
			{Text: "❓ Help", Data: CallbackHelp},
		},
	}
}

func channelURL(handle string) string {
	return "https://t.me/" + strings.TrimPrefix(handle, "@")
}

func welcomeText(name string) string {
	return fmt.Sprintf("🌸 Welcome %s! 🌸\n\n✨ I'm your personal anime bot! Every time you send me a message or photo, I'll respond with a beautiful anime image and show you our amazing channels!", name)
}

func (b *BotFacade) helpText() string {
	var sb strings.Builder
	sb.WriteString("🤖 Anime Channel Bot Help\n\n")
	sb.WriteString("🌸 How it works:\n")
	sb.WriteString("• Send me ANY message or photo\n")
	sb.WriteString("• I'll respond with anime images + channel links\n")
	sb.WriteString("• Get unlimited fresh anime content!\n\n")
	sb.WriteString("🎮 Commands:\n")
	sb.WriteString("• /start - Welcome message + anime image\n")
	sb.WriteString("• /help - Show this help message\n\n")
	fmt.Fprintf(&sb, "💫 Channels:\n• Main: %s\n• Backup: %s\n\n", b.main.Handle, b.backup.Handle)
	sb.WriteString("🎨 Just send me anything and enjoy anime art!")
	return sb.String()
}

func (b *BotFacade) condensedHelpText() string {
	var sb strings.Builder
	sb.WriteString("🤖 Quick Help\n\n")
	sb.WriteString("🌸 Send me any message or photo for anime images!\n\n")
	fmt.Fprintf(&sb, "💫 Our Channels:\n• Main: %s\n• Backup: %s\n\n", b.main.Handle, b.backup.Handle)
	sb.WriteString("🎨 Enjoy unlimited anime content!")
	return sb.String()
}
