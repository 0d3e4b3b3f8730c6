package ytdlp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	goytdlp "github.com/lrstanley/go-ytdlp"

	"github.com/spotymate/spotymate-bot/internal/constants"
	"github.com/spotymate/spotymate-bot/internal/logger"
)

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

const (
	// outputTemplate names downloaded files after the source title.
	outputTemplate = "%(title)s.%(ext)s"

	watchURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// Client searches for songs and downloads them as MP3 files.
type Client interface {
	// Search returns up to limit songs matching the query.
	Search(ctx context.Context, query string, limit int) ([]SongRef, error)
	// Download fetches the song at url into destDir as an MP3 file at the
	// given bitrate (e.g. "128K") and returns the path of the produced file.
	Download(ctx context.Context, url, destDir, audioQuality string) (string, error)
}

// ClientImpl implements Client on top of the yt-dlp tool.
type ClientImpl struct{}

var _ Client = (*ClientImpl)(nil)

// NewClient ensures a yt-dlp binary is available, downloading one when the
// host has none, and returns a ready client.
func NewClient(ctx context.Context) (*ClientImpl, error) {
	if _, err := goytdlp.Install(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to install yt-dlp: %w", err)
	}

	return &ClientImpl{}, nil
}

// Search returns up to limit songs matching the query.
func (c *ClientImpl) Search(ctx context.Context, query string, limit int) ([]SongRef, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	if limit <= 0 {
		limit = 1
	}

	dl := goytdlp.New().
		DumpSingleJSON().
		SkipDownload().
		FlatPlaylist()

	result, err := dl.Run(ctx, fmt.Sprintf("ytsearch%d:%s", limit, query))
	if err != nil {
		return nil, fmt.Errorf("search failed for %q: %w", query, err)
	}

	infos, err := result.GetExtractedInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to parse search output for %q: %w", query, err)
	}

	songs := collectSongs(infos)
	if len(songs) == 0 {
		logger.Infof(ctx, "Search %q matched nothing", query)

		return nil, ErrNoSearchResults
	}

	return songs, nil
}

// Download fetches the song at url into destDir as an MP3 file.
func (c *ClientImpl) Download(ctx context.Context, url, destDir, audioQuality string) (string, error) {
	if err := os.MkdirAll(destDir, constants.DefaultFolderPermissions); err != nil {
		return "", fmt.Errorf("failed to create download directory: %w", err)
	}

	dl := goytdlp.New().
		NoPlaylist().
		ForceOverwrites().
		RestrictFilenames().
		ExtractAudio().
		AudioFormat("mp3").
		AudioQuality(audioQuality).
		Output(filepath.Join(destDir, outputTemplate))

	if _, err := dl.Run(ctx, url); err != nil {
		return "", fmt.Errorf("download failed for %q: %w", url, err)
	}

	// yt-dlp reports the pre-conversion filename, so locate the MP3 on disk.
	outputPath, err := findOutputFile(destDir)
	if err != nil {
		return "", err
	}

	logger.Debugf(ctx, "Downloaded %q to %q", url, outputPath)

	return outputPath, nil
}

// collectSongs flattens extracted info into song references, skipping entries
// without a usable link.
func collectSongs(infos []*goytdlp.ExtractedInfo) []SongRef {
	var songs []SongRef

	for _, info := range infos {
		if info == nil {
			continue
		}

		if len(info.Entries) > 0 {
			songs = append(songs, collectSongs(info.Entries)...)

			continue
		}

		song := SongRef{ID: info.ID}

		if info.Title != nil {
			song.Title = *info.Title
		}

		if info.Uploader != nil {
			song.Uploader = *info.Uploader
		}

		switch {
		case info.URL != nil && *info.URL != "":
			song.URL = *info.URL
		case info.ID != "":
			song.URL = fmt.Sprintf(watchURLTemplate, info.ID)
		default:
			continue
		}

		songs = append(songs, song)
	}

	return songs
}

// findOutputFile returns the single MP3 file inside dir.
func findOutputFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read download directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if strings.EqualFold(filepath.Ext(entry.Name()), constants.ExtensionMP3) {
			return filepath.Join(dir, entry.Name()), nil
		}
	}

	return "", ErrMissingOutput
}
