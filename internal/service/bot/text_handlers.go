package bot

import (
	"context"
	"errors"
	"strings"

	"github.com/spotymate/spotymate-bot/internal/catalog"
	"github.com/spotymate/spotymate-bot/internal/client/spotify"
	"github.com/spotymate/spotymate-bot/internal/logger"
)

// Bot commands.
const (
	commandStart       = "/start"
	commandSetLanguage = "/setlanguage"
	commandHelp        = "/help"
)

// HandleTextMessage processes a text message or command.
func (s *ServiceImpl) HandleTextMessage(ctx context.Context, msg *TextMessage) {
	text := strings.TrimSpace(msg.Text)

	switch command(text) {
	case commandStart:
		s.handleStart(ctx, msg)
	case commandSetLanguage:
		s.handleSetLanguagePrompt(ctx, msg)
	case commandHelp:
		s.reply(ctx, msg.ChatID, s.userLanguage(ctx, msg.UserID), catalog.KeyHelp, nil)
	default:
		s.handlePlainText(ctx, msg)
	}
}

// command extracts the command part of the text, tolerating bot-name suffixes
// ("/start@SpotyMateBot") and trailing arguments.
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}

	head := strings.Fields(text)[0]
	if at := strings.Index(head, "@"); at != -1 {
		head = head[:at]
	}

	return strings.ToLower(head)
}

func (s *ServiceImpl) handleStart(ctx context.Context, msg *TextMessage) {
	// Returning users get a welcome in their language, newcomers pick one first.
	if s.hasStoredLanguage(ctx, msg.UserID) {
		s.reply(ctx, msg.ChatID, s.userLanguage(ctx, msg.UserID), catalog.KeyWelcome, nil)

		return
	}

	err := s.messenger.SendTextWithKeyboard(ctx, msg.ChatID, catalog.ChooseLanguagePrompt, languageKeyboard())
	if err != nil {
		logger.Errorf(ctx, "Failed to send language prompt to chat %d: %v", msg.ChatID, err)
	}
}

func (s *ServiceImpl) handleSetLanguagePrompt(ctx context.Context, msg *TextMessage) {
	language := s.userLanguage(ctx, msg.UserID)
	prompt := s.catalog.Render(language, catalog.KeySetLanguagePrompt, nil)

	err := s.messenger.SendTextWithKeyboard(ctx, msg.ChatID, prompt, languageKeyboard())
	if err != nil {
		logger.Errorf(ctx, "Failed to send language prompt to chat %d: %v", msg.ChatID, err)
	}
}

func (s *ServiceImpl) handlePlainText(ctx context.Context, msg *TextMessage) {
	language := s.userLanguage(ctx, msg.UserID)

	link, found := spotify.ExtractLink(msg.Text)
	if !found {
		// Anything that is neither a command nor a link gets the usage help.
		s.reply(ctx, msg.ChatID, language, catalog.KeyHelp, nil)

		return
	}

	s.handleTrackLink(ctx, msg, language, link)
}

func (s *ServiceImpl) handleTrackLink(
	ctx context.Context,
	msg *TextMessage,
	language catalog.Language,
	link string,
) {
	trackID, err := spotify.ParseTrackID(link)
	if err != nil {
		if errors.Is(err, spotify.ErrUnsupportedLink) {
			s.reply(ctx, msg.ChatID, language, catalog.KeyUnsupportedLink, nil)

			return
		}

		logger.Errorf(ctx, "Failed to parse link %q: %v", link, err)
		s.reply(ctx, msg.ChatID, language, catalog.KeyError, nil)

		return
	}

	record, err := s.spotifyClient.FetchTrack(ctx, trackID)
	if err != nil {
		logger.Errorf(ctx, "Failed to fetch track %q: %v", trackID, err)
		s.reply(ctx, msg.ChatID, language, catalog.KeyError, nil)

		return
	}

	card := &TrackCard{
		CoverURL: record.CoverURL,
		Caption:  s.trackCaption(language, record),
		Keyboard: s.trackKeyboard(language, msg, record),
	}

	if err = s.messenger.SendTrackCard(ctx, msg.ChatID, card); err != nil {
		logger.Errorf(ctx, "Failed to send track card to chat %d: %v", msg.ChatID, err)
		s.reply(ctx, msg.ChatID, language, catalog.KeyError, nil)
	}
}

func (s *ServiceImpl) trackCaption(language catalog.Language, record *spotify.TrackRecord) string {
	genre := record.Genre
	if genre == "" {
		genre = s.catalog.Render(language, catalog.KeyNoGenre, nil)
	}

	return s.catalog.Render(language, catalog.KeyTrackInfo, map[string]string{
		"title":        record.Title,
		"artist":       record.Artist,
		"genre":        genre,
		"duration":     record.Duration,
		"release_date": record.ReleaseDate,
	})
}

// trackKeyboard builds the card's action buttons. The originating message
// coordinates are threaded into the download tags so that later dialogue steps
// can scope their resources to this request.
func (s *ServiceImpl) trackKeyboard(
	language catalog.Language,
	msg *TextMessage,
	record *spotify.TrackRecord,
) Keyboard {
	firstRow := []Button{{
		Label: s.catalog.Render(language, catalog.KeySimilarSongsButton, nil),
		Data:  EncodeSimilarTag(record.ID),
	}}

	if record.ExternalURL != "" {
		firstRow = append(firstRow, Button{
			Label: s.catalog.Render(language, catalog.KeyMoreInfoButton, nil),
			URL:   record.ExternalURL,
		})
	}

	secondRow := []Button{
		{
			Label: s.catalog.Render(language, catalog.KeyDownloadPreviewButton, nil),
			Data:  EncodeDownloadPreviewTag(record.ID, record.PreviewURL),
		},
		{
			Label: s.catalog.Render(language, catalog.KeyDownloadSongButton, nil),
			Data:  EncodeSelectQualityTag(record.ID, msg.ChatID, msg.MessageID),
		},
	}

	return Keyboard{firstRow, secondRow}
}
