package bot

//go:generate $MOCKGEN -source=downloader.go -destination=mocks/downloader_mock.go

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spotymate/spotymate-bot/internal/constants"
	transport_http "github.com/spotymate/spotymate-bot/internal/transport/http"
	"github.com/spotymate/spotymate-bot/internal/utils"
)

// Downloader fetches small remote files such as preview clips and cover art.
type Downloader interface {
	// DownloadFile saves the file at url to destPath.
	// Files larger than the configured cap yield ErrFileTooLarge.
	DownloadFile(ctx context.Context, url, destPath string) error
}

// DownloaderImpl implements Downloader over HTTP.
type DownloaderImpl struct {
	httpClient *http.Client
	maxSize    int64
}

var _ Downloader = (*DownloaderImpl)(nil)

// NewDownloader creates a Downloader with the given request timeout and
// per-file size cap in bytes.
func NewDownloader(timeout time.Duration, maxSize int64) *DownloaderImpl {
	if timeout <= 0 {
		timeout = transport_http.DefaultTimeout
	}

	return &DownloaderImpl{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: transport_http.NewLogTransport(
				transport_http.NewUserAgentInjector(http.DefaultTransport,
					utils.NewSimpleUserAgentProvider(transport_http.DefaultUserAgent)),
				transport_http.DefaultMaxLogLength),
		},
		maxSize: maxSize,
	}
}

// DownloadFile saves the file at url to destPath.
func (d *DownloaderImpl) DownloadFile(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %q: %w", url, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s for %q", ErrUnexpectedStatus, resp.Status, url)
	}

	if err = os.MkdirAll(filepath.Dir(destPath), constants.DefaultFolderPermissions); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	out, err := os.OpenFile(filepath.Clean(destPath),
		os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", destPath, err)
	}

	defer out.Close()

	reader := resp.Body
	if d.maxSize > 0 {
		// Read one byte past the cap to tell "exactly at cap" from "over it".
		reader = io.NopCloser(io.LimitReader(resp.Body, d.maxSize+1))
	}

	written, err := io.Copy(out, reader)
	if err != nil {
		return fmt.Errorf("failed to save %q: %w", destPath, err)
	}

	if d.maxSize > 0 && written > d.maxSize {
		return fmt.Errorf("%w: %q", ErrFileTooLarge, url)
	}

	return nil
}
