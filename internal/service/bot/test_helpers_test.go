package bot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/spotymate/spotymate-bot/internal/catalog"
	mock_spotify "github.com/spotymate/spotymate-bot/internal/client/spotify/mocks"
	mock_ytdlp "github.com/spotymate/spotymate-bot/internal/client/ytdlp/mocks"
	"github.com/spotymate/spotymate-bot/internal/config"
	"github.com/spotymate/spotymate-bot/internal/constants"
	mock_storage "github.com/spotymate/spotymate-bot/internal/storage/mocks"
)

// sentText is one recorded SendText or SendTextWithKeyboard call.
type sentText struct {
	chatID   int64
	text     string
	keyboard Keyboard
}

// sentAudio is one recorded SendAudio call.
type sentAudio struct {
	chatID int64
	audio  *AudioMessage
}

// sentCard is one recorded SendTrackCard call.
type sentCard struct {
	chatID int64
	card   *TrackCard
}

// mockMessenger records outgoing replies for assertions.
type mockMessenger struct {
	texts    []sentText
	cards    []sentCard
	audios   []sentAudio
	answered []string

	sendAudioErr error
	sendCardErr  error
}

func (m *mockMessenger) SendText(_ context.Context, chatID int64, text string) error {
	m.texts = append(m.texts, sentText{chatID: chatID, text: text})

	return nil
}

func (m *mockMessenger) SendTextWithKeyboard(
	_ context.Context, chatID int64, text string, keyboard Keyboard,
) error {
	m.texts = append(m.texts, sentText{chatID: chatID, text: text, keyboard: keyboard})

	return nil
}

func (m *mockMessenger) SendTrackCard(_ context.Context, chatID int64, card *TrackCard) error {
	m.cards = append(m.cards, sentCard{chatID: chatID, card: card})

	return m.sendCardErr
}

func (m *mockMessenger) SendAudio(_ context.Context, chatID int64, audio *AudioMessage) error {
	m.audios = append(m.audios, sentAudio{chatID: chatID, audio: audio})

	return m.sendAudioErr
}

func (m *mockMessenger) AnswerCallback(_ context.Context, callbackID string) error {
	m.answered = append(m.answered, callbackID)

	return nil
}

// lastText returns the most recent text reply.
func (m *mockMessenger) lastText(t *testing.T) sentText {
	t.Helper()
	require.NotEmpty(t, m.texts, "expected at least one text reply")

	return m.texts[len(m.texts)-1]
}

// mockDownloader records DownloadFile calls, writing a placeholder file on success.
type mockDownloader struct {
	urls []string
	err  error
}

func (m *mockDownloader) DownloadFile(_ context.Context, url, destPath string) error {
	m.urls = append(m.urls, url)

	if m.err != nil {
		return m.err
	}

	if err := os.MkdirAll(filepath.Dir(destPath), constants.DefaultFolderPermissions); err != nil {
		return err
	}

	return os.WriteFile(destPath, []byte("fake download"), constants.DefaultFilePermissions)
}

// mockTagProcessor records WriteTags requests.
type mockTagProcessor struct {
	requests []*WriteTagsRequest
	err      error
}

func (m *mockTagProcessor) WriteTags(_ context.Context, req *WriteTagsRequest) error {
	m.requests = append(m.requests, req)

	return m.err
}

// testBotSetup encapsulates common test dependencies and configuration.
type testBotSetup struct {
	ctrl          *gomock.Controller
	store         *mock_storage.MockStore
	spotifyClient *mock_spotify.MockClient
	songClient    *mock_ytdlp.MockClient
	downloader    *mockDownloader
	tagProcessor  *mockTagProcessor
	messenger     *mockMessenger
	catalog       *catalog.Catalog
	config        *config.Config
	service       *ServiceImpl
}

// newTestBotSetup creates a standard test setup with optional config overrides.
func newTestBotSetup(t *testing.T, configOverrides ...func(*config.Config)) *testBotSetup {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{
		DownloadsPath:      filepath.Join(t.TempDir(), "downloads"),
		DefaultLanguage:    string(catalog.LanguageEnglish),
		SimilarTracksLimit: 3,
	}

	for _, override := range configOverrides {
		override(cfg)
	}

	setup := &testBotSetup{
		ctrl:          ctrl,
		store:         mock_storage.NewMockStore(ctrl),
		spotifyClient: mock_spotify.NewMockClient(ctrl),
		songClient:    mock_ytdlp.NewMockClient(ctrl),
		downloader:    new(mockDownloader),
		tagProcessor:  new(mockTagProcessor),
		messenger:     new(mockMessenger),
		catalog:       catalog.NewCatalog(catalog.LanguageEnglish),
		config:        cfg,
	}

	setup.service = NewService(
		cfg,
		setup.store,
		setup.catalog,
		setup.spotifyClient,
		setup.songClient,
		setup.downloader,
		setup.tagProcessor,
		setup.messenger,
	)

	return setup
}

// expectLanguage stubs the store to report the given stored language.
func (s *testBotSetup) expectLanguage(userID int64, language string) {
	s.store.EXPECT().
		GetLanguage(gomock.Any(), userID).
		Return(language, true, nil).
		AnyTimes()
}

// expectNoLanguage stubs the store to report no stored preference.
func (s *testBotSetup) expectNoLanguage(userID int64) {
	s.store.EXPECT().
		GetLanguage(gomock.Any(), userID).
		Return("", false, nil).
		AnyTimes()
}

// rendered returns the message the catalog would produce, for comparing replies.
func (s *testBotSetup) rendered(language catalog.Language, key catalog.Key, subs map[string]string) string {
	return s.catalog.Render(language, key, subs)
}

// assertNoLeftoverDownloads fails when per-request download directories survived a handler.
func (s *testBotSetup) assertNoLeftoverDownloads(t *testing.T) {
	t.Helper()

	entries, err := os.ReadDir(s.config.DownloadsPath)
	if os.IsNotExist(err) {
		return
	}

	require.NoError(t, err)
	require.Empty(t, entries, "download directories must be removed on every exit path")
}
