package bot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/spotymate/spotymate-bot/internal/catalog"
	"github.com/spotymate/spotymate-bot/internal/client/spotify"
	"github.com/spotymate/spotymate-bot/internal/client/ytdlp"
	"github.com/spotymate/spotymate-bot/internal/logger"
)

// HandleCallback processes an inline button press.
func (s *ServiceImpl) HandleCallback(ctx context.Context, cb *Callback) {
	language := s.userLanguage(ctx, cb.UserID)

	// Acknowledge the press first so the client stops its spinner either way.
	if err := s.messenger.AnswerCallback(ctx, cb.ID); err != nil {
		logger.Warnf(ctx, "Failed to answer callback %q: %v", cb.ID, err)
	}

	intent, err := ParseCallbackTag(cb.Data)
	if err != nil {
		logger.Warnf(ctx, "Malformed callback data %q from user %d: %v", cb.Data, cb.UserID, err)
		s.reply(ctx, cb.ChatID, language, catalog.KeyInvalidButtonData, nil)

		return
	}

	switch intent.Kind {
	case IntentSetLanguage:
		s.handleSetLanguage(ctx, cb, intent)
	case IntentSimilar:
		s.handleSimilar(ctx, cb, language, intent)
	case IntentDownloadPreview:
		s.handleDownloadPreview(ctx, cb, language, intent)
	case IntentSelectQuality:
		s.handleSelectQuality(ctx, cb, language, intent)
	case IntentDownloadSong:
		s.handleDownloadSong(ctx, cb, language, intent)
	case IntentUnknown:
		s.reply(ctx, cb.ChatID, language, catalog.KeyInvalidButtonData, nil)
	}
}

func (s *ServiceImpl) handleSetLanguage(ctx context.Context, cb *Callback, intent *CallbackIntent) {
	language, ok := catalog.ParseLanguage(intent.Language)
	if !ok {
		logger.Warnf(ctx, "Unknown language %q in callback from user %d", intent.Language, cb.UserID)
		s.reply(ctx, cb.ChatID, s.catalog.DefaultLanguage(), catalog.KeyInvalidButtonData, nil)

		return
	}

	if err := s.store.SetLanguage(ctx, cb.UserID, string(language)); err != nil {
		logger.Errorf(ctx, "Failed to store language of user %d: %v", cb.UserID, err)
		s.reply(ctx, cb.ChatID, language, catalog.KeyError, nil)

		return
	}

	s.reply(ctx, cb.ChatID, language, catalog.KeyLanguageSelected, map[string]string{
		"language": language.DisplayName(),
	})
}

func (s *ServiceImpl) handleSimilar(
	ctx context.Context,
	cb *Callback,
	language catalog.Language,
	intent *CallbackIntent,
) {
	// Suggestions are best effort: a provider failure reads the same as an
	// empty result, only the log tells them apart.
	tracks, err := s.spotifyClient.FetchSimilar(ctx, intent.TrackID, int(s.config.SimilarTracksLimit))
	if err != nil {
		logger.Errorf(ctx, "Failed to fetch similar tracks for %q: %v", intent.TrackID, err)
		s.reply(ctx, cb.ChatID, language, catalog.KeySimilarSongsPlaceholder, nil)

		return
	}

	if len(tracks) == 0 {
		s.reply(ctx, cb.ChatID, language, catalog.KeySimilarSongsPlaceholder, nil)

		return
	}

	lines := make([]string, 0, len(tracks))
	for i, track := range tracks {
		line := fmt.Sprintf("%d. %s - %s", i+1, track.Title, track.Artist)
		if track.ExternalURL != "" {
			line += "\n" + track.ExternalURL
		}

		lines = append(lines, line)
	}

	s.reply(ctx, cb.ChatID, language, catalog.KeySimilarSongs, map[string]string{
		"songs": strings.Join(lines, "\n"),
	})
}

func (s *ServiceImpl) handleDownloadPreview(
	ctx context.Context,
	cb *Callback,
	language catalog.Language,
	intent *CallbackIntent,
) {
	// Tracks without a preview are answered right away, nothing to fetch.
	if !intent.HasPreview {
		s.reply(ctx, cb.ChatID, language, catalog.KeyNoPreview, nil)

		return
	}

	dir := filepath.Join(s.config.DownloadsPath, "preview_"+uuid.NewString())
	defer s.removeDownloadDir(ctx, dir)

	previewPath := filepath.Join(dir, "preview.mp3")

	if err := s.downloader.DownloadFile(ctx, intent.PreviewURL, previewPath); err != nil {
		logger.Errorf(ctx, "Failed to download preview of track %q: %v", intent.TrackID, err)
		s.reply(ctx, cb.ChatID, language, catalog.KeyDownloadError, nil)

		return
	}

	audio := &AudioMessage{
		Path:    previewPath,
		Caption: s.catalog.Render(language, catalog.KeyDownloadPreviewCaption, nil),
	}

	if err := s.messenger.SendAudio(ctx, cb.ChatID, audio); err != nil {
		logger.Errorf(ctx, "Failed to send preview of track %q to chat %d: %v", intent.TrackID, cb.ChatID, err)
		s.reply(ctx, cb.ChatID, language, catalog.KeyError, nil)
	}
}

func (s *ServiceImpl) handleSelectQuality(
	ctx context.Context,
	cb *Callback,
	language catalog.Language,
	intent *CallbackIntent,
) {
	// The originating message coordinates ride along unchanged so the final
	// download step stays scoped to the request that started the dialogue.
	keyboard := Keyboard{{
		Button{
			Label: TrackQualityMP3Mid.Label(),
			Data:  EncodeDownloadSongTag(intent.TrackID, intent.ChatID, intent.MessageID, TrackQualityMP3Mid),
		},
		Button{
			Label: TrackQualityMP3High.Label(),
			Data:  EncodeDownloadSongTag(intent.TrackID, intent.ChatID, intent.MessageID, TrackQualityMP3High),
		},
	}}

	prompt := s.catalog.Render(language, catalog.KeySelectQuality, nil)

	if err := s.messenger.SendTextWithKeyboard(ctx, cb.ChatID, prompt, keyboard); err != nil {
		logger.Errorf(ctx, "Failed to send quality keyboard to chat %d: %v", cb.ChatID, err)
	}
}

func (s *ServiceImpl) handleDownloadSong(
	ctx context.Context,
	cb *Callback,
	language catalog.Language,
	intent *CallbackIntent,
) {
	record, err := s.spotifyClient.FetchTrack(ctx, intent.TrackID)
	if err != nil {
		logger.Errorf(ctx, "Failed to fetch track %q before download: %v", intent.TrackID, err)
		s.reply(ctx, cb.ChatID, language, catalog.KeyDownloadError, nil)

		return
	}

	// Each download request works in its own directory keyed by the
	// originating message, removed on every exit path.
	dir := filepath.Join(s.config.DownloadsPath,
		fmt.Sprintf("%d_%d_%s", intent.ChatID, intent.MessageID, uuid.NewString()))
	defer s.removeDownloadDir(ctx, dir)

	query := record.Artist + " - " + record.Title

	songs, err := s.songClient.Search(ctx, query, 1)
	if err != nil {
		if errors.Is(err, ytdlp.ErrNoSearchResults) {
			logger.Infof(ctx, "No sources found for track %q (query %q)", intent.TrackID, query)
		} else {
			logger.Errorf(ctx, "Failed to search sources for track %q: %v", intent.TrackID, err)
		}

		s.reply(ctx, cb.ChatID, language, catalog.KeyDownloadError, nil)

		return
	}

	if len(songs) == 0 {
		logger.Infof(ctx, "No sources found for track %q (query %q)", intent.TrackID, query)
		s.reply(ctx, cb.ChatID, language, catalog.KeyDownloadError, nil)

		return
	}

	songPath, err := s.songClient.Download(ctx, songs[0].URL, dir, intent.Quality.AudioQuality())
	if err != nil {
		if errors.Is(err, ytdlp.ErrMissingOutput) {
			logger.Errorf(ctx, "Download of track %q finished without a file", intent.TrackID)
		} else {
			logger.Errorf(ctx, "Failed to download track %q: %v", intent.TrackID, err)
		}

		s.reply(ctx, cb.ChatID, language, catalog.KeyDownloadError, nil)

		return
	}

	s.tagDownloadedSong(ctx, record, dir, songPath)

	audio := &AudioMessage{
		Path:      songPath,
		Title:     record.Title,
		Performer: record.Artist,
		Caption: s.catalog.Render(language, catalog.KeyDownloadSongCaption, map[string]string{
			"title":  record.Title,
			"artist": record.Artist,
		}),
	}

	if err = s.messenger.SendAudio(ctx, cb.ChatID, audio); err != nil {
		logger.Errorf(ctx, "Failed to send track %q to chat %d: %v", intent.TrackID, cb.ChatID, err)
		s.reply(ctx, cb.ChatID, language, catalog.KeyError, nil)
	}
}

// tagDownloadedSong enriches the MP3 with metadata and cover art.
// Tagging is best effort: the file is still delivered when it fails.
func (s *ServiceImpl) tagDownloadedSong(
	ctx context.Context,
	record *spotify.TrackRecord,
	dir, songPath string,
) {
	coverPath := ""

	if record.CoverURL != "" {
		coverPath = filepath.Join(dir, "cover.jpg")
		if err := s.downloader.DownloadFile(ctx, record.CoverURL, coverPath); err != nil {
			logger.Warnf(ctx, "Failed to download cover art for track %q: %v", record.ID, err)

			coverPath = ""
		}
	}

	req := &WriteTagsRequest{
		TrackPath: songPath,
		CoverPath: coverPath,
		Title:     record.Title,
		Artist:    record.Artist,
		Album:     record.Album,
		Genre:     record.Genre,
		Year:      releaseYear(record.ReleaseDate),
	}

	if err := s.tagProcessor.WriteTags(ctx, req); err != nil {
		logger.Warnf(ctx, "Failed to tag track %q: %v", record.ID, err)
	}
}

// releaseYear extracts the year from a "YYYY-MM-DD" or "YYYY" release date.
func releaseYear(releaseDate string) string {
	if len(releaseDate) < 4 {
		return releaseDate
	}

	return releaseDate[:4]
}

func (s *ServiceImpl) removeDownloadDir(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		logger.Errorf(ctx, "Failed to remove download directory %q: %v", dir, err)
	}
}
