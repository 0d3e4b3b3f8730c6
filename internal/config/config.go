package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/spotymate/spotymate-bot/internal/logger"
	"github.com/spotymate/spotymate-bot/internal/utils"
)

// Config holds all configuration settings.
type Config struct {
	// TelegramToken is the bot token for the Telegram API.
	TelegramToken string `mapstructure:"telegram_token"`
	// SpotifyClientID is the client ID for the Spotify Web API.
	SpotifyClientID string `mapstructure:"spotify_client_id"`
	// SpotifyClientSecret is the client secret for the Spotify Web API.
	SpotifyClientSecret string `mapstructure:"spotify_client_secret"`
	// DatabasePath is the path to the sqlite file holding user language preferences.
	DatabasePath string `mapstructure:"database_path"`
	// DownloadsPath is the directory where per-request download folders are staged.
	DownloadsPath string `mapstructure:"downloads_path"`
	// DefaultLanguage is the language used before a user picks one ("fa" or "en").
	DefaultLanguage string `mapstructure:"default_language"`
	// SimilarTracksLimit is the number of recommendations returned for a similar-tracks request.
	SimilarTracksLimit int64 `mapstructure:"similar_tracks_limit"`
	// PreviewTimeout bounds the HTTP fetch of a track preview (e.g., "10s").
	PreviewTimeout string `mapstructure:"preview_timeout"`
	// MaxPreviewSize bounds the size of a fetched preview (e.g., "20MB").
	MaxPreviewSize string `mapstructure:"max_preview_size"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// ParsedPreviewTimeout is the parsed preview fetch timeout.
	ParsedPreviewTimeout time.Duration
	// ParsedMaxPreviewSize is the parsed preview size limit in bytes.
	ParsedMaxPreviewSize int64
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".spotymate-bot.yaml"

	// DefaultDatabasePath is the default location of the preference store.
	DefaultDatabasePath = "data/users.db"

	// DefaultDownloadsPath is the default staging directory for downloads.
	DefaultDownloadsPath = "data/downloads"

	// DefaultSimilarTracksLimit is the default number of similar tracks to suggest.
	DefaultSimilarTracksLimit = 3

	// DefaultPreviewTimeout is the default bound on the preview HTTP fetch.
	DefaultPreviewTimeout = "10s"

	// DefaultMaxPreviewSize is the default bound on a fetched preview's size.
	DefaultMaxPreviewSize = "20MB"

	// DefaultLogLevel is the default logging verbosity.
	DefaultLogLevel = "info"
)

// Static error definitions for better error handling.
var (
	// ErrEmptyTelegramToken indicates that the Telegram bot token is missing.
	ErrEmptyTelegramToken = errors.New("telegram token cannot be empty")
	// ErrEmptySpotifyCredentials indicates that the Spotify client ID or secret is missing.
	ErrEmptySpotifyCredentials = errors.New("spotify client ID and secret cannot be empty")
	// ErrInvalidDefaultLanguage indicates that the default language is not supported.
	ErrInvalidDefaultLanguage = errors.New("default language must be one of: fa, en")
	// ErrInvalidSimilarTracksLimit indicates that the similar tracks limit is invalid.
	ErrInvalidSimilarTracksLimit = errors.New("similar tracks limit must be a positive integer")
	// ErrInvalidPreviewTimeout indicates that the preview timeout duration is invalid.
	ErrInvalidPreviewTimeout = errors.New("preview_timeout must be positive")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
)

// environmentBindings maps config keys to the environment variables that override them.
//
//nolint:gochecknoglobals // This is an immutable lookup table used during config loading.
var environmentBindings = map[string]string{
	"telegram_token":        "TELEGRAM_TOKEN",
	"spotify_client_id":     "SPOTIFY_CLIENT_ID",
	"spotify_client_secret": "SPOTIFY_CLIENT_SECRET",
	"database_path":         "DATABASE_PATH",
	"downloads_path":        "DOWNLOADS_PATH",
	"default_language":      "DEFAULT_LANGUAGE",
	"log_level":             "LOG_LEVEL",
}

// LoadConfig loads configuration settings from an optional YAML file and the environment.
// A missing config file is not an error: every setting has a default or an environment binding.
func LoadConfig(configFilename string) (*Config, error) {
	v := viper.New()

	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	v.SetConfigFile(configFilename)

	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("downloads_path", DefaultDownloadsPath)
	v.SetDefault("default_language", "en")
	v.SetDefault("similar_tracks_limit", DefaultSimilarTracksLimit)
	v.SetDefault("preview_timeout", DefaultPreviewTimeout)
	v.SetDefault("max_preview_size", DefaultMaxPreviewSize)
	v.SetDefault("log_level", DefaultLogLevel)

	for key, envName := range environmentBindings {
		if err := v.BindEnv(key, envName); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", envName, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(err, &notFoundErr) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	var err error

	cfg.TelegramToken = strings.TrimSpace(cfg.TelegramToken)
	if cfg.TelegramToken == "" {
		return ErrEmptyTelegramToken
	}

	cfg.SpotifyClientID = strings.TrimSpace(cfg.SpotifyClientID)
	cfg.SpotifyClientSecret = strings.TrimSpace(cfg.SpotifyClientSecret)

	if cfg.SpotifyClientID == "" || cfg.SpotifyClientSecret == "" {
		return ErrEmptySpotifyCredentials
	}

	switch cfg.DefaultLanguage {
	case "fa", "en":
	default:
		return fmt.Errorf("%w: '%s'", ErrInvalidDefaultLanguage, cfg.DefaultLanguage)
	}

	if cfg.SimilarTracksLimit <= 0 {
		return ErrInvalidSimilarTracksLimit
	}

	cfg.ParsedPreviewTimeout, err = time.ParseDuration(cfg.PreviewTimeout)
	if err != nil {
		return fmt.Errorf("failed to parse preview timeout: %w", err)
	}

	if cfg.ParsedPreviewTimeout <= 0 {
		return ErrInvalidPreviewTimeout
	}

	parsedMaxPreviewSize, err := humanize.ParseBytes(cfg.MaxPreviewSize)
	if err != nil {
		return fmt.Errorf("failed to parse max preview size: %w", err)
	}

	// io.LimitReader accepts only int64 so we transform it safely in order to use it later.
	cfg.ParsedMaxPreviewSize = utils.SafeUint64ToInt64(parsedMaxPreviewSize)

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	return nil
}
