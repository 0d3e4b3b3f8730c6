package telegram

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/spotymate/spotymate-bot/internal/logger"
	"github.com/spotymate/spotymate-bot/internal/service/bot"
)

const (
	// longPollTimeout is how long Telegram holds a getUpdates request open.
	longPollTimeout = 50 * time.Second

	// httpTimeout must stay above longPollTimeout,
	// otherwise the HTTP client cancels the long poll before Telegram answers.
	httpTimeout = 75 * time.Second
)

// ErrEmptyToken is returned when the Telegram bot token is not set.
var ErrEmptyToken = fmt.Errorf("telegram bot token is empty")

// Bot wraps the Telegram Bot API client.
// It receives updates over long polling and implements bot.Messenger
// for the outgoing side.
type Bot struct {
	api      *tgbotapi.BotAPI
	stopOnce sync.Once
}

var _ bot.Messenger = (*Bot)(nil)

// NewBot authorizes against the Telegram Bot API with the provided token.
func NewBot(token string) (*Bot, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}

	httpClient := &http.Client{ //nolint:exhaustruct // Defaults are fine here.
		Timeout: httpTimeout,
	}

	api, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to authorize bot: %w", err)
	}

	return &Bot{ //nolint:exhaustruct // stopOnce needs no initialization.
		api: api,
	}, nil
}

// Username returns the bot account's username as reported by Telegram.
func (b *Bot) Username() string {
	return b.api.Self.UserName
}

// Run polls Telegram for updates and dispatches them to the service
// until the context is canceled.
// Each update is handled in its own goroutine
// so a slow download never blocks other chats.
func (b *Bot) Run(ctx context.Context, service bot.Service) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = int(longPollTimeout.Seconds())

	updates := b.api.GetUpdatesChan(updateConfig)

	logger.Infof(ctx, "listening for updates as @%s", b.Username())

	for {
		select {
		case update, ok := <-updates:
			if !ok {
				return nil
			}

			go b.dispatchUpdate(ctx, service, update)
		case <-ctx.Done():
			b.stopReceivingUpdates(ctx)

			return nil
		}
	}
}

func (b *Bot) stopReceivingUpdates(ctx context.Context) {
	b.stopOnce.Do(func() {
		logger.Info(ctx, "stopping update polling")
		b.api.StopReceivingUpdates()
	})
}

func (b *Bot) dispatchUpdate(ctx context.Context, service bot.Service, update tgbotapi.Update) {
	switch {
	case update.Message != nil:
		b.dispatchMessage(ctx, service, update.Message)
	case update.CallbackQuery != nil:
		b.dispatchCallback(ctx, service, update.CallbackQuery)
	}
}

func (b *Bot) dispatchMessage(ctx context.Context, service bot.Service, message *tgbotapi.Message) {
	if message.From == nil || message.Text == "" {
		return
	}

	service.HandleTextMessage(ctx, &bot.TextMessage{
		ChatID:    message.Chat.ID,
		UserID:    message.From.ID,
		MessageID: message.MessageID,
		Text:      message.Text,
	})
}

func (b *Bot) dispatchCallback(ctx context.Context, service bot.Service, callbackQuery *tgbotapi.CallbackQuery) {
	// Callbacks attached to inline-mode results carry no message,
	// there is no chat to answer in.
	if callbackQuery.Message == nil {
		logger.Warnf(ctx, "ignoring callback %s without a message", callbackQuery.ID)

		return
	}

	service.HandleCallback(ctx, &bot.Callback{
		ID:        callbackQuery.ID,
		ChatID:    callbackQuery.Message.Chat.ID,
		UserID:    callbackQuery.From.ID,
		MessageID: callbackQuery.Message.MessageID,
		Data:      callbackQuery.Data,
	})
}

// SendText delivers a plain text message to the chat.
func (b *Bot) SendText(_ context.Context, chatID int64, text string) error {
	message := tgbotapi.NewMessage(chatID, text)

	return b.send(message)
}

// SendTextWithKeyboard delivers a text message with an inline keyboard attached.
func (b *Bot) SendTextWithKeyboard(_ context.Context, chatID int64, text string, keyboard bot.Keyboard) error {
	message := tgbotapi.NewMessage(chatID, text)
	message.ReplyMarkup = buildInlineKeyboard(keyboard)

	return b.send(message)
}

// SendTrackCard delivers a track card as a photo with a caption and keyboard.
// When there is no cover image, or Telegram rejects the photo,
// the card falls back to a plain text message so the buttons still reach the user.
func (b *Bot) SendTrackCard(ctx context.Context, chatID int64, card *bot.TrackCard) error {
	if card.CoverURL == "" {
		return b.SendTextWithKeyboard(ctx, chatID, card.Caption, card.Keyboard)
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(card.CoverURL))
	photo.Caption = card.Caption
	photo.ReplyMarkup = buildInlineKeyboard(card.Keyboard)

	if err := b.send(photo); err != nil {
		logger.Warnf(ctx, "failed to send photo card to chat %d, falling back to text: %v", chatID, err)

		return b.SendTextWithKeyboard(ctx, chatID, card.Caption, card.Keyboard)
	}

	return nil
}

// SendAudio uploads an audio file from the local filesystem to the chat.
func (b *Bot) SendAudio(_ context.Context, chatID int64, audio *bot.AudioMessage) error {
	message := tgbotapi.NewAudio(chatID, tgbotapi.FilePath(audio.Path))
	message.Caption = audio.Caption
	message.Title = audio.Title
	message.Performer = audio.Performer

	return b.send(message)
}

// AnswerCallback acknowledges a callback query
// so the client stops showing the loading indicator on the pressed button.
func (b *Bot) AnswerCallback(_ context.Context, callbackID string) error {
	callback := tgbotapi.NewCallback(callbackID, "")

	if _, err := b.api.Request(callback); err != nil {
		return fmt.Errorf("failed to answer callback %s: %w", callbackID, err)
	}

	return nil
}

func (b *Bot) send(message tgbotapi.Chattable) error {
	if _, err := b.api.Send(message); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

func buildInlineKeyboard(keyboard bot.Keyboard) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(keyboard))

	for _, row := range keyboard {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))

		for _, button := range row {
			if button.URL != "" {
				buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonURL(button.Label, button.URL))

				continue
			}

			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(button.Label, button.Data))
		}

		rows = append(rows, buttons)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
