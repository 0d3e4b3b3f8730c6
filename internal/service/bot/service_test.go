package bot

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/spotymate/spotymate-bot/internal/catalog"
	"github.com/spotymate/spotymate-bot/internal/client/spotify"
)

const (
	testChatID    = int64(777)
	testUserID    = int64(555)
	testMessageID = 31
	testTrackID   = "6LgJvl0Xdtc73RJ1mmpotq"
	testTrackLink = "https://open.spotify.com/track/" + testTrackID
)

func testTrackRecord() *spotify.TrackRecord {
	return &spotify.TrackRecord{
		ID:          testTrackID,
		Title:       "Paranoid Android",
		Artist:      "Radiohead",
		ArtistID:    "4Z8W4fKeB5YxbusRsdQVPb",
		Album:       "OK Computer",
		Genre:       "art rock",
		Duration:    "6:23",
		ReleaseDate: "1997-05-21",
		CoverURL:    "https://i.scdn.co/image/cover",
		PreviewURL:  "https://p.scdn.co/mp3-preview/abc",
		ExternalURL: testTrackLink,
	}
}

func TestCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{name: "plain command", text: "/start", expected: "/start"},
		{name: "command with bot name", text: "/start@SpotyMateBot", expected: "/start"},
		{name: "command with arguments", text: "/setlanguage fa", expected: "/setlanguage"},
		{name: "upper case", text: "/HELP", expected: "/help"},
		{name: "not a command", text: "hello", expected: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, command(tc.text))
		})
	}
}

func TestHandleTextMessage_StartNewUser(t *testing.T) {
	t.Parallel()

	setup := newTestBotSetup(t)
	setup.expectNoLanguage(testUserID)

	setup.service.HandleTextMessage(context.Background(), &TextMessage{
		ChatID: testChatID,
		UserID: testUserID,
		Text:   "/start",
	})

	reply := setup.messenger.lastText(t)
	assert.Equal(t, catalog.ChooseLanguagePrompt, reply.text)
	require.Len(t, reply.keyboard, 1)
	require.Len(t, reply.keyboard[0], 2)
	assert.Equal(t, EncodeLanguageTag("fa"), reply.keyboard[0][0].Data)
	assert.Equal(t, EncodeLanguageTag("en"), reply.keyboard[0][1].Data)
}

func TestHandleTextMessage_StartReturningUser(t *testing.T) {
	t.Parallel()

	setup := newTestBotSetup(t)
	setup.expectLanguage(testUserID, "fa")

	setup.service.HandleTextMessage(context.Background(), &TextMessage{
		ChatID: testChatID,
		UserID: testUserID,
		Text:   "/start",
	})

	reply := setup.messenger.lastText(t)
	assert.Equal(t, setup.rendered(catalog.LanguagePersian, catalog.KeyWelcome, nil), reply.text)
	assert.Empty(t, reply.keyboard)
}

func TestHandleTextMessage_SetLanguagePrompt(t *testing.T) {
	t.Parallel()

	setup := newTestBotSetup(t)
	setup.expectLanguage(testUserID, "en")

	setup.service.HandleTextMessage(context.Background(), &TextMessage{
		ChatID: testChatID,
		UserID: testUserID,
		Text:   "/setlanguage",
	})

	reply := setup.messenger.lastText(t)
	assert.Equal(t, setup.rendered(catalog.LanguageEnglish, catalog.KeySetLanguagePrompt, nil), reply.text)
	require.Len(t, reply.keyboard, 1)
}

func TestHandleTextMessage_Help(t *testing.T) {
	t.Parallel()

	setup := newTestBotSetup(t)
	setup.expectLanguage(testUserID, "en")

	setup.service.HandleTextMessage(context.Background(), &TextMessage{
		ChatID: testChatID,
		UserID: testUserID,
		Text:   "/help",
	})

	assert.Equal(t,
		setup.rendered(catalog.LanguageEnglish, catalog.KeyHelp, nil),
		setup.messenger.lastText(t).text)
}

func TestHandleTextMessage_PlainTextWithoutLink(t *testing.T) {
	t.Parallel()

	setup := newTestBotSetup(t)
	setup.expectLanguage(testUserID, "en")

	setup.service.HandleTextMessage(context.Background(), &TextMessage{
		ChatID: testChatID,
		UserID: testUserID,
		Text:   "what can you do?",
	})

	assert.Equal(t,
		setup.rendered(catalog.LanguageEnglish, catalog.KeyHelp, nil),
		setup.messenger.lastText(t).text)
}

func TestHandleTextMessage_AlbumLink(t *testing.T) {
	t.Parallel()

	setup := newTestBotSetup(t)
	setup.expectLanguage(testUserID, "en")

	setup.service.HandleTextMessage(context.Background(), &TextMessage{
		ChatID: testChatID,
		UserID: testUserID,
		Text:   "https://open.spotify.com/album/6dVIqQ8qmQ5GBnJ9shOYGE",
	})

	assert.Equal(t,
		setup.rendered(catalog.LanguageEnglish, catalog.KeyUnsupportedLink, nil),
		setup.messenger.lastText(t).text)
}

func TestHandleTextMessage_TrackLink(t *testing.T) {
	t.Parallel()

	setup := newTestBotSetup(t)
	setup.expectLanguage(testUserID, "en")
	setup.spotifyClient.EXPECT().
		FetchTrack(gomock.Any(), testTrackID).
		Return(testTrackRecord(), nil)

	setup.service.HandleTextMessage(context.Background(), &TextMessage{
		ChatID:    testChatID,
		UserID:    testUserID,
		MessageID: testMessageID,
		Text:      "listen to this " + testTrackLink,
	})

	require.Len(t, setup.messenger.cards, 1)

	card := setup.messenger.cards[0].card
	assert.Equal(t, "https://i.scdn.co/image/cover", card.CoverURL)
	assert.Contains(t, card.Caption, "Paranoid Android")
	assert.Contains(t, card.Caption, "Radiohead")
	assert.Contains(t, card.Caption, "art rock")
	assert.Contains(t, card.Caption, "6:23")

	require.Len(t, card.Keyboard, 2)
	require.Len(t, card.Keyboard[0], 2)
	assert.Equal(t, EncodeSimilarTag(testTrackID), card.Keyboard[0][0].Data)
	assert.Equal(t, testTrackLink, card.Keyboard[0][1].URL)

	require.Len(t, card.Keyboard[1], 2)
	assert.Equal(t,
		EncodeDownloadPreviewTag(testTrackID, "https://p.scdn.co/mp3-preview/abc"),
		card.Keyboard[1][0].Data)
	assert.Equal(t,
		EncodeSelectQualityTag(testTrackID, testChatID, testMessageID),
		card.Keyboard[1][1].Data)
}

func TestHandleTextMessage_TrackLink_NoGenreAndNoPreview(t *testing.T) {
	t.Parallel()

	record := testTrackRecord()
	record.Genre = ""
	record.PreviewURL = ""

	setup := newTestBotSetup(t)
	setup.expectLanguage(testUserID, "en")
	setup.spotifyClient.EXPECT().
		FetchTrack(gomock.Any(), testTrackID).
		Return(record, nil)

	setup.service.HandleTextMessage(context.Background(), &TextMessage{
		ChatID:    testChatID,
		UserID:    testUserID,
		MessageID: testMessageID,
		Text:      testTrackLink,
	})

	require.Len(t, setup.messenger.cards, 1)

	card := setup.messenger.cards[0].card
	assert.Contains(t, card.Caption,
		setup.rendered(catalog.LanguageEnglish, catalog.KeyNoGenre, nil))
	assert.Equal(t,
		EncodeDownloadPreviewTag(testTrackID, ""),
		card.Keyboard[1][0].Data)
	assert.True(t, strings.HasSuffix(card.Keyboard[1][0].Data, "no_preview"))
}

func TestHandleTextMessage_TrackLink_FetchError(t *testing.T) {
	t.Parallel()

	setup := newTestBotSetup(t)
	setup.expectLanguage(testUserID, "en")
	setup.spotifyClient.EXPECT().
		FetchTrack(gomock.Any(), testTrackID).
		Return(nil, errors.New("spotify is down"))

	setup.service.HandleTextMessage(context.Background(), &TextMessage{
		ChatID: testChatID,
		UserID: testUserID,
		Text:   testTrackLink,
	})

	assert.Empty(t, setup.messenger.cards)
	assert.Equal(t,
		setup.rendered(catalog.LanguageEnglish, catalog.KeyError, nil),
		setup.messenger.lastText(t).text)
}

func TestHandleTextMessage_StoreFailureFallsBackToDefaultLanguage(t *testing.T) {
	t.Parallel()

	setup := newTestBotSetup(t)
	setup.store.EXPECT().
		GetLanguage(gomock.Any(), testUserID).
		Return("", false, errors.New("database is locked")).
		AnyTimes()

	setup.service.HandleTextMessage(context.Background(), &TextMessage{
		ChatID: testChatID,
		UserID: testUserID,
		Text:   "/help",
	})

	assert.Equal(t,
		setup.rendered(catalog.LanguageEnglish, catalog.KeyHelp, nil),
		setup.messenger.lastText(t).text)
}
