package bot

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"

	"github.com/spotymate/spotymate-bot/internal/catalog"
	"github.com/spotymate/spotymate-bot/internal/client/spotify"
	"github.com/spotymate/spotymate-bot/internal/client/ytdlp"
	"github.com/spotymate/spotymate-bot/internal/config"
	"github.com/spotymate/spotymate-bot/internal/logger"
	"github.com/spotymate/spotymate-bot/internal/storage"
)

// Service handles incoming chat events.
// Handlers do not return errors: failures are logged and answered with a
// localized message, so a single bad update never takes the bot down.
type Service interface {
	// HandleTextMessage processes a text message or command.
	HandleTextMessage(ctx context.Context, msg *TextMessage)
	// HandleCallback processes an inline button press.
	HandleCallback(ctx context.Context, cb *Callback)
}

// Messenger sends replies back to the chat transport.
type Messenger interface {
	// SendText sends a plain text message.
	SendText(ctx context.Context, chatID int64, text string) error
	// SendTextWithKeyboard sends a text message with an inline keyboard.
	SendTextWithKeyboard(ctx context.Context, chatID int64, text string, keyboard Keyboard) error
	// SendTrackCard sends a track card, falling back to plain text when the
	// cover image cannot be attached.
	SendTrackCard(ctx context.Context, chatID int64, card *TrackCard) error
	// SendAudio uploads an audio file to the chat.
	SendAudio(ctx context.Context, chatID int64, audio *AudioMessage) error
	// AnswerCallback acknowledges a button press so the client stops its spinner.
	AnswerCallback(ctx context.Context, callbackID string) error
}

// ServiceImpl provides the default implementation of Service.
type ServiceImpl struct {
	config        *config.Config
	store         storage.Store
	catalog       *catalog.Catalog
	spotifyClient spotify.Client
	songClient    ytdlp.Client
	downloader    Downloader
	tagProcessor  TagProcessor
	messenger     Messenger
}

var _ Service = (*ServiceImpl)(nil)

// NewService creates a new Service instance with the provided dependencies.
func NewService(
	cfg *config.Config,
	store storage.Store,
	messageCatalog *catalog.Catalog,
	spotifyClient spotify.Client,
	songClient ytdlp.Client,
	downloader Downloader,
	tagProcessor TagProcessor,
	messenger Messenger,
) *ServiceImpl {
	return &ServiceImpl{
		config:        cfg,
		store:         store,
		catalog:       messageCatalog,
		spotifyClient: spotifyClient,
		songClient:    songClient,
		downloader:    downloader,
		tagProcessor:  tagProcessor,
		messenger:     messenger,
	}
}

// userLanguage resolves the user's interface language, falling back to the
// catalog's default when nothing is stored or the stored value is stale.
func (s *ServiceImpl) userLanguage(ctx context.Context, userID int64) catalog.Language {
	stored, found, err := s.store.GetLanguage(ctx, userID)
	if err != nil {
		logger.Errorf(ctx, "Failed to read language of user %d: %v", userID, err)

		return s.catalog.DefaultLanguage()
	}

	if !found {
		return s.catalog.DefaultLanguage()
	}

	language, ok := catalog.ParseLanguage(stored)
	if !ok {
		logger.Warnf(ctx, "User %d has unknown stored language %q", userID, stored)

		return s.catalog.DefaultLanguage()
	}

	return language
}

// hasStoredLanguage reports whether the user has chosen a language before.
func (s *ServiceImpl) hasStoredLanguage(ctx context.Context, userID int64) bool {
	_, found, err := s.store.GetLanguage(ctx, userID)
	if err != nil {
		logger.Errorf(ctx, "Failed to read language of user %d: %v", userID, err)

		return false
	}

	return found
}

// reply sends a localized message, logging delivery failures.
func (s *ServiceImpl) reply(
	ctx context.Context,
	chatID int64,
	language catalog.Language,
	key catalog.Key,
	substitutions map[string]string,
) {
	text := s.catalog.Render(language, key, substitutions)

	if err := s.messenger.SendText(ctx, chatID, text); err != nil {
		logger.Errorf(ctx, "Failed to send %q message to chat %d: %v", key, chatID, err)
	}
}

// languageKeyboard builds the language selection keyboard.
func languageKeyboard() Keyboard {
	return Keyboard{
		{
			Button{Label: catalog.LanguagePersian.DisplayName(), Data: EncodeLanguageTag(string(catalog.LanguagePersian))},
			Button{Label: catalog.LanguageEnglish.DisplayName(), Data: EncodeLanguageTag(string(catalog.LanguageEnglish))},
		},
	}
}
