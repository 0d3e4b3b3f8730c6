package bot

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/spotymate/spotymate-bot/internal/catalog"
	"github.com/spotymate/spotymate-bot/internal/client/spotify"
	"github.com/spotymate/spotymate-bot/internal/client/ytdlp"
	"github.com/spotymate/spotymate-bot/internal/constants"
)

func testCallback(data string) *Callback {
	return &Callback{
		ID:        "cb-1",
		ChatID:    testChatID,
		UserID:    testUserID,
		MessageID: 90,
		Data:      data,
	}
}

func TestHandleCallback_AnswersEveryPress(t *testing.T) {
	t.Parallel()

	setup := newTestBotSetup(t)
	setup.expectLanguage(testUserID, "en")

	setup.service.HandleCallback(context.Background(), testCallback("garbage"))

	assert.Equal(t, []string{"cb-1"}, setup.messenger.answered)
}

func TestHandleCallback_MalformedTags(t *testing.T) {
	t.Parallel()

	malformed := []string{
		"",
		"garbage",
		"lang_",
		"similar_",
		"download_preview_abc",
		"select_quality_abc_x_y",
		"download_song_abc_1_2_999",
		"download_song_abc_1_2",
		"_",
		strings.Repeat("_", 64),
	}

	for _, data := range malformed {
		t.Run("tag "+data, func(t *testing.T) {
			t.Parallel()

			setup := newTestBotSetup(t)
			setup.expectLanguage(testUserID, "en")

			// Must reply with the invalid-data message and never panic.
			setup.service.HandleCallback(context.Background(), testCallback(data))

			assert.Equal(t,
				setup.rendered(catalog.LanguageEnglish, catalog.KeyInvalidButtonData, nil),
				setup.messenger.lastText(t).text)
		})
	}
}

func TestHandleCallback_SetLanguage(t *testing.T) {
	t.Parallel()

	setup := newTestBotSetup(t)
	setup.expectNoLanguage(testUserID)
	setup.store.EXPECT().
		SetLanguage(gomock.Any(), testUserID, "fa").
		Return(nil)

	setup.service.HandleCallback(context.Background(), testCallback("lang_fa"))

	assert.Equal(t,
		setup.rendered(catalog.LanguagePersian, catalog.KeyLanguageSelected, map[string]string{
			"language": catalog.LanguagePersian.DisplayName(),
		}),
		setup.messenger.lastText(t).text)
}

func TestHandleCallback_SetLanguage_StoreError(t *testing.T) {
	t.Parallel()

	setup := newTestBotSetup(t)
	setup.expectNoLanguage(testUserID)
	setup.store.EXPECT().
		SetLanguage(gomock.Any(), testUserID, "en").
		Return(errors.New("disk full"))

	setup.service.HandleCallback(context.Background(), testCallback("lang_en"))

	assert.Equal(t,
		setup.rendered(catalog.LanguageEnglish, catalog.KeyError, nil),
		setup.messenger.lastText(t).text)
}

func TestHandleCallback_Similar(t *testing.T) {
	t.Parallel()

	setup := newTestBotSetup(t)
	setup.expectLanguage(testUserID, "en")
	setup.spotifyClient.EXPECT().
		FetchSimilar(gomock.Any(), testTrackID, 3).
		Return([]spotify.SimilarTrack{
			{
				ID:          "1dfeR4HaWDbWqFHLkxsg1d",
				Title:       "Karma Police",
				Artist:      "Radiohead",
				ExternalURL: "https://open.spotify.com/track/1dfeR4HaWDbWqFHLkxsg1d",
			},
			{
				ID:     "5ghIJDpPoe3CfHMGu71E6T",
				Title:  "Creep",
				Artist: "Radiohead",
			},
		}, nil)

	setup.service.HandleCallback(context.Background(), testCallback(EncodeSimilarTag(testTrackID)))

	reply := setup.messenger.lastText(t).text
	assert.Contains(t, reply, "1. Karma Police - Radiohead")
	assert.Contains(t, reply, "https://open.spotify.com/track/1dfeR4HaWDbWqFHLkxsg1d")
	assert.Contains(t, reply, "2. Creep - Radiohead")
}

func TestHandleCallback_Similar_Empty(t *testing.T) {
	t.Parallel()

	setup := newTestBotSetup(t)
	setup.expectLanguage(testUserID, "en")
	setup.spotifyClient.EXPECT().
		FetchSimilar(gomock.Any(), testTrackID, 3).
		Return(nil, nil)

	setup.service.HandleCallback(context.Background(), testCallback(EncodeSimilarTag(testTrackID)))

	assert.Equal(t,
		setup.rendered(catalog.LanguageEnglish, catalog.KeySimilarSongsPlaceholder, nil),
		setup.messenger.lastText(t).text)
}

// A provider failure is a soft fail: the user sees the same placeholder as an
// empty result, not the generic error.
func TestHandleCallback_Similar_ErrorRendersPlaceholder(t *testing.T) {
	t.Parallel()

	setup := newTestBotSetup(t)
	setup.expectLanguage(testUserID, "en")
	setup.spotifyClient.EXPECT().
		FetchSimilar(gomock.Any(), testTrackID, 3).
		Return(nil, errors.New("quota exceeded"))

	setup.service.HandleCallback(context.Background(), testCallback(EncodeSimilarTag(testTrackID)))

	assert.Equal(t,
		setup.rendered(catalog.LanguageEnglish, catalog.KeySimilarSongsPlaceholder, nil),
		setup.messenger.lastText(t).text)
}

func TestHandleCallback_Preview_NoPreviewShortCircuits(t *testing.T) {
	t.Parallel()

	setup := newTestBotSetup(t)
	setup.expectLanguage(testUserID, "en")

	// No spotify, song or downloader expectations: the no-preview marker
	// must be answered without touching the network.
	setup.service.HandleCallback(context.Background(),
		testCallback(EncodeDownloadPreviewTag(testTrackID, "")))

	assert.Equal(t,
		setup.rendered(catalog.LanguageEnglish, catalog.KeyNoPreview, nil),
		setup.messenger.lastText(t).text)
	assert.Empty(t, setup.downloader.urls)
	assert.Empty(t, setup.messenger.audios)
}

func TestHandleCallback_Preview_Success(t *testing.T) {
	t.Parallel()

	previewURL := "https://p.scdn.co/mp3-preview/a_b_c"

	setup := newTestBotSetup(t)
	setup.expectLanguage(testUserID, "en")

	setup.service.HandleCallback(context.Background(),
		testCallback(EncodeDownloadPreviewTag(testTrackID, previewURL)))

	assert.Equal(t, []string{previewURL}, setup.downloader.urls)
	require.Len(t, setup.messenger.audios, 1)

	audio := setup.messenger.audios[0].audio
	assert.Equal(t,
		setup.rendered(catalog.LanguageEnglish, catalog.KeyDownloadPreviewCaption, nil),
		audio.Caption)

	setup.assertNoLeftoverDownloads(t)
}

func TestHandleCallback_Preview_DownloadError(t *testing.T) {
	t.Parallel()

	setup := newTestBotSetup(t)
	setup.expectLanguage(testUserID, "en")
	setup.downloader.err = errors.New("connection reset")

	setup.service.HandleCallback(context.Background(),
		testCallback(EncodeDownloadPreviewTag(testTrackID, "https://p.scdn.co/mp3-preview/abc")))

	assert.Empty(t, setup.messenger.audios)
	assert.Equal(t,
		setup.rendered(catalog.LanguageEnglish, catalog.KeyDownloadError, nil),
		setup.messenger.lastText(t).text)
	setup.assertNoLeftoverDownloads(t)
}

func TestHandleCallback_SelectQuality_RoundTrip(t *testing.T) {
	t.Parallel()

	setup := newTestBotSetup(t)
	setup.expectLanguage(testUserID, "en")

	originChatID := int64(-1001234)
	originMessageID := 567

	setup.service.HandleCallback(context.Background(),
		testCallback(EncodeSelectQualityTag(testTrackID, originChatID, originMessageID)))

	reply := setup.messenger.lastText(t)
	assert.Equal(t,
		setup.rendered(catalog.LanguageEnglish, catalog.KeySelectQuality, nil),
		reply.text)
	require.Len(t, reply.keyboard, 1)
	require.Len(t, reply.keyboard[0], 2)

	// Every quality button must carry the originating coordinates forward.
	expectedQualities := []TrackQuality{TrackQualityMP3Mid, TrackQualityMP3High}
	for i, button := range reply.keyboard[0] {
		intent, err := ParseCallbackTag(button.Data)
		require.NoError(t, err)

		assert.Equal(t, IntentDownloadSong, intent.Kind)
		assert.Equal(t, testTrackID, intent.TrackID)
		assert.Equal(t, originChatID, intent.ChatID)
		assert.Equal(t, originMessageID, intent.MessageID)
		assert.Equal(t, expectedQualities[i], intent.Quality)
	}
}

func downloadSongTag() string {
	return EncodeDownloadSongTag(testTrackID, testChatID, testMessageID, TrackQualityMP3High)
}

func TestHandleCallback_DownloadSong_Success(t *testing.T) {
	t.Parallel()

	setup := newTestBotSetup(t)
	setup.expectLanguage(testUserID, "en")
	setup.spotifyClient.EXPECT().
		FetchTrack(gomock.Any(), testTrackID).
		Return(testTrackRecord(), nil)
	setup.songClient.EXPECT().
		Search(gomock.Any(), "Radiohead - Paranoid Android", 1).
		Return([]ytdlp.SongRef{{
			ID:    "abc123",
			Title: "Radiohead - Paranoid Android",
			URL:   "https://www.youtube.com/watch?v=abc123",
		}}, nil)
	setup.songClient.EXPECT().
		Download(gomock.Any(), "https://www.youtube.com/watch?v=abc123", gomock.Any(), "320K").
		DoAndReturn(func(_ context.Context, _, destDir, _ string) (string, error) {
			require.NoError(t, os.MkdirAll(destDir, constants.DefaultFolderPermissions))

			songPath := filepath.Join(destDir, "Paranoid_Android.mp3")

			return songPath, os.WriteFile(songPath, []byte("mp3 bytes"), constants.DefaultFilePermissions)
		})

	setup.service.HandleCallback(context.Background(), testCallback(downloadSongTag()))

	// Cover art was fetched for tagging.
	assert.Equal(t, []string{"https://i.scdn.co/image/cover"}, setup.downloader.urls)

	require.Len(t, setup.tagProcessor.requests, 1)

	tags := setup.tagProcessor.requests[0]
	assert.Equal(t, "Paranoid Android", tags.Title)
	assert.Equal(t, "Radiohead", tags.Artist)
	assert.Equal(t, "OK Computer", tags.Album)
	assert.Equal(t, "art rock", tags.Genre)
	assert.Equal(t, "1997", tags.Year)
	assert.NotEmpty(t, tags.CoverPath)

	require.Len(t, setup.messenger.audios, 1)

	audio := setup.messenger.audios[0].audio
	assert.Equal(t, "Paranoid Android", audio.Title)
	assert.Equal(t, "Radiohead", audio.Performer)
	assert.Contains(t, audio.Caption, "Paranoid Android")

	setup.assertNoLeftoverDownloads(t)
}

func TestHandleCallback_DownloadSong_NoSearchResults(t *testing.T) {
	t.Parallel()

	setup := newTestBotSetup(t)
	setup.expectLanguage(testUserID, "en")
	setup.spotifyClient.EXPECT().
		FetchTrack(gomock.Any(), testTrackID).
		Return(testTrackRecord(), nil)
	setup.songClient.EXPECT().
		Search(gomock.Any(), gomock.Any(), 1).
		Return(nil, ytdlp.ErrNoSearchResults)

	setup.service.HandleCallback(context.Background(), testCallback(downloadSongTag()))

	assert.Empty(t, setup.messenger.audios)
	assert.Equal(t,
		setup.rendered(catalog.LanguageEnglish, catalog.KeyDownloadError, nil),
		setup.messenger.lastText(t).text)
	setup.assertNoLeftoverDownloads(t)
}

// A search that succeeds with zero songs must not reach the download step.
func TestHandleCallback_DownloadSong_EmptySearchResult(t *testing.T) {
	t.Parallel()

	setup := newTestBotSetup(t)
	setup.expectLanguage(testUserID, "en")
	setup.spotifyClient.EXPECT().
		FetchTrack(gomock.Any(), testTrackID).
		Return(testTrackRecord(), nil)
	setup.songClient.EXPECT().
		Search(gomock.Any(), gomock.Any(), 1).
		Return([]ytdlp.SongRef{}, nil)

	setup.service.HandleCallback(context.Background(), testCallback(downloadSongTag()))

	assert.Empty(t, setup.messenger.audios)
	assert.Equal(t,
		setup.rendered(catalog.LanguageEnglish, catalog.KeyDownloadError, nil),
		setup.messenger.lastText(t).text)
	setup.assertNoLeftoverDownloads(t)
}

func TestHandleCallback_DownloadSong_MissingOutput(t *testing.T) {
	t.Parallel()

	setup := newTestBotSetup(t)
	setup.expectLanguage(testUserID, "en")
	setup.spotifyClient.EXPECT().
		FetchTrack(gomock.Any(), testTrackID).
		Return(testTrackRecord(), nil)
	setup.songClient.EXPECT().
		Search(gomock.Any(), gomock.Any(), 1).
		Return([]ytdlp.SongRef{{URL: "https://www.youtube.com/watch?v=abc123"}}, nil)
	setup.songClient.EXPECT().
		Download(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", ytdlp.ErrMissingOutput)

	setup.service.HandleCallback(context.Background(), testCallback(downloadSongTag()))

	assert.Empty(t, setup.messenger.audios)
	assert.Equal(t,
		setup.rendered(catalog.LanguageEnglish, catalog.KeyDownloadError, nil),
		setup.messenger.lastText(t).text)
	setup.assertNoLeftoverDownloads(t)
}

func TestHandleCallback_DownloadSong_TaggingFailureStillDelivers(t *testing.T) {
	t.Parallel()

	setup := newTestBotSetup(t)
	setup.expectLanguage(testUserID, "en")
	setup.tagProcessor.err = errors.New("not an mp3")
	setup.spotifyClient.EXPECT().
		FetchTrack(gomock.Any(), testTrackID).
		Return(testTrackRecord(), nil)
	setup.songClient.EXPECT().
		Search(gomock.Any(), gomock.Any(), 1).
		Return([]ytdlp.SongRef{{URL: "https://www.youtube.com/watch?v=abc123"}}, nil)
	setup.songClient.EXPECT().
		Download(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, destDir, _ string) (string, error) {
			require.NoError(t, os.MkdirAll(destDir, constants.DefaultFolderPermissions))

			songPath := filepath.Join(destDir, "song.mp3")

			return songPath, os.WriteFile(songPath, []byte("mp3 bytes"), constants.DefaultFilePermissions)
		})

	setup.service.HandleCallback(context.Background(), testCallback(downloadSongTag()))

	require.Len(t, setup.messenger.audios, 1)
	setup.assertNoLeftoverDownloads(t)
}

func TestHandleCallback_DownloadSong_MetadataError(t *testing.T) {
	t.Parallel()

	setup := newTestBotSetup(t)
	setup.expectLanguage(testUserID, "fa")
	setup.spotifyClient.EXPECT().
		FetchTrack(gomock.Any(), testTrackID).
		Return(nil, errors.New("spotify is down"))

	setup.service.HandleCallback(context.Background(), testCallback(downloadSongTag()))

	assert.Empty(t, setup.messenger.audios)
	assert.Equal(t,
		setup.rendered(catalog.LanguagePersian, catalog.KeyDownloadError, nil),
		setup.messenger.lastText(t).text)
	setup.assertNoLeftoverDownloads(t)
}
