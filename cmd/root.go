package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/spotymate/spotymate-bot/internal/app"
	"github.com/spotymate/spotymate-bot/internal/config"
	"github.com/spotymate/spotymate-bot/internal/logger"
	"github.com/spotymate/spotymate-bot/internal/version"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "spotymate-bot [flags]",
		Short: "Telegram bot that turns Spotify track links into cards, suggestions and MP3 downloads.",
		Long: `Spotymate Bot is a Telegram bot for music lovers.
Paste a Spotify track link into a chat and the bot replies with:
- A track card with cover art, genre, duration and release date
- Similar track suggestions
- The 30-second preview as an audio message
- The full song as a tagged MP3, in 128 or 320 kbps

The bot answers in English or Persian, per user preference.`,
		Version:          version.Full(),
		Args:             cobra.NoArgs,
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			logger.SetLevel(appConfig.ParsedLogLevel)

			app.ExecuteRootCommand(cmd.Context(), appConfig)
		},
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	rootCmdFlags := rootCmd.Flags()

	rootCmdFlags.StringP(
		"language",
		"l",
		"",
		"default interface language for users who haven't picked one: fa or en.")

	rootCmdFlags.StringP(
		"downloads",
		"d",
		"",
		"directory for temporary download folders (the path will be created if it doesn't exist).")

	rootCmdFlags.Int64P(
		"similar-limit",
		"s",
		0,
		"number of similar tracks to suggest per request.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	// Secrets may live in a local .env file, a missing file is fine.
	_ = godotenv.Load()

	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("language"); flag != nil && flag.Changed {
		cfg.DefaultLanguage, _ = flags.GetString("language")
	}

	if flag := flags.Lookup("downloads"); flag != nil && flag.Changed {
		cfg.DownloadsPath, _ = flags.GetString("downloads")
	}

	if flag := flags.Lookup("similar-limit"); flag != nil && flag.Changed {
		cfg.SimilarTracksLimit, _ = flags.GetInt64("similar-limit")
	}

	return config.ValidateConfig(cfg)
}
