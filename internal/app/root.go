package app

import (
	"context"

	"github.com/spotymate/spotymate-bot/internal/catalog"
	spotify_client "github.com/spotymate/spotymate-bot/internal/client/spotify"
	ytdlp_client "github.com/spotymate/spotymate-bot/internal/client/ytdlp"
	"github.com/spotymate/spotymate-bot/internal/config"
	"github.com/spotymate/spotymate-bot/internal/logger"
	bot_service "github.com/spotymate/spotymate-bot/internal/service/bot"
	"github.com/spotymate/spotymate-bot/internal/storage"
	"github.com/spotymate/spotymate-bot/internal/telegram"
)

// ExecuteRootCommand is the entry point for the application.
// It builds every component the bot depends on
// and polls Telegram for updates until the context is canceled.
func ExecuteRootCommand(ctx context.Context, cfg *config.Config) {
	store, err := storage.NewStore(ctx, cfg.DatabasePath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open preference store: %v", err)
	}

	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Errorf(ctx, "Failed to close preference store: %v", closeErr)
		}
	}()

	defaultLanguage, ok := catalog.ParseLanguage(cfg.DefaultLanguage)
	if !ok {
		logger.Fatalf(ctx, "Unsupported default language: %s", cfg.DefaultLanguage)
	}

	messageCatalog := catalog.NewCatalog(defaultLanguage)

	spotifyClient, err := spotify_client.NewClient(ctx, cfg.SpotifyClientID, cfg.SpotifyClientSecret)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Spotify client: %v", err)
	}

	songClient, err := ytdlp_client.NewClient(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize song download client: %v", err)
	}

	telegramBot, err := telegram.NewBot(cfg.TelegramToken)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Telegram bot: %v", err)
	}

	downloader := bot_service.NewDownloader(cfg.ParsedPreviewTimeout, cfg.ParsedMaxPreviewSize)
	tagProcessor := bot_service.NewTagProcessor()

	s := bot_service.NewService(
		cfg,
		store,
		messageCatalog,
		spotifyClient,
		songClient,
		downloader,
		tagProcessor,
		telegramBot,
	)

	if err = telegramBot.Run(ctx, s); err != nil {
		logger.Fatalf(ctx, "Bot stopped with an error: %v", err)
	}
}
