package spotify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	spotifysdk "github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	transport_http "github.com/spotymate/spotymate-bot/internal/transport/http"
	"github.com/spotymate/spotymate-bot/internal/utils"
)

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go -exclude_interfaces=webAPI

const (
	// trackCacheSize bounds the in-memory track metadata cache.
	trackCacheSize = 1024
	// similarCacheSize bounds the in-memory similar-track cache.
	similarCacheSize = 1024

	linkHost = "open.spotify.com"

	resourceTrack = "track"
)

// Client fetches track metadata and similar-track suggestions.
type Client interface {
	// FetchTrack resolves a track ID to its metadata.
	FetchTrack(ctx context.Context, trackID string) (*TrackRecord, error)
	// FetchSimilar returns up to limit suggestions seeded by the track.
	FetchSimilar(ctx context.Context, trackID string, limit int) ([]SimilarTrack, error)
}

// webAPI is the subset of the Spotify SDK client the bot relies on.
type webAPI interface {
	GetTrack(ctx context.Context, id spotifysdk.ID, opts ...spotifysdk.RequestOption) (*spotifysdk.FullTrack, error)
	GetAlbum(ctx context.Context, id spotifysdk.ID, opts ...spotifysdk.RequestOption) (*spotifysdk.FullAlbum, error)
	GetArtist(ctx context.Context, id spotifysdk.ID) (*spotifysdk.FullArtist, error)
	GetRecommendations(ctx context.Context,
		seeds spotifysdk.Seeds,
		trackAttributes *spotifysdk.TrackAttributes,
		opts ...spotifysdk.RequestOption) (*spotifysdk.Recommendations, error)
}

// ClientImpl implements Client against the Spotify Web API.
type ClientImpl struct {
	api          webAPI
	trackCache   *lru.Cache[string, *TrackRecord]
	similarCache *lru.Cache[string, []SimilarTrack]
}

var _ Client = (*ClientImpl)(nil)

// NewClient creates a Spotify client authenticated with the client-credentials
// flow. The credentials are verified immediately by requesting a token, so a
// misconfigured bot fails at startup rather than on first use.
func NewClient(ctx context.Context, clientID, clientSecret string) (*ClientImpl, error) {
	if clientID == "" || clientSecret == "" {
		return nil, ErrEmptyCredentials
	}

	authConfig := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}

	baseClient := &http.Client{
		Timeout: transport_http.DefaultTimeout,
		Transport: transport_http.NewLogTransport(
			transport_http.NewUserAgentInjector(http.DefaultTransport,
				utils.NewSimpleUserAgentProvider(transport_http.DefaultUserAgent)),
			transport_http.DefaultMaxLogLength),
	}

	// Both the token endpoint and the API calls go through the logging transport.
	ctx = context.WithValue(ctx, oauth2.HTTPClient, baseClient)

	if _, err := authConfig.Token(ctx); err != nil {
		return nil, fmt.Errorf("failed to verify spotify credentials: %w", err)
	}

	return newClientWithAPI(spotifysdk.New(authConfig.Client(ctx)))
}

func newClientWithAPI(api webAPI) (*ClientImpl, error) {
	trackCache, err := lru.New[string, *TrackRecord](trackCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create track cache: %w", err)
	}

	similarCache, err := lru.New[string, []SimilarTrack](similarCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create similar-track cache: %w", err)
	}

	return &ClientImpl{
		api:          api,
		trackCache:   trackCache,
		similarCache: similarCache,
	}, nil
}

// ParseTrackID extracts the track ID from a Spotify link.
// Links to albums, playlists, artists and anything else that is not a track
// yield ErrUnsupportedLink. Regional prefixes ("/intl-fr/...") and query
// parameters ("?si=...") are tolerated.
func ParseTrackID(link string) (string, error) {
	trimmed := strings.TrimSpace(link)

	// Bare "spotify:track:ID" URIs.
	if rest, found := strings.CutPrefix(trimmed, "spotify:"); found {
		resource, id, ok := strings.Cut(rest, ":")
		if !ok || resource != resourceTrack || id == "" {
			return "", ErrUnsupportedLink
		}

		return id, nil
	}

	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Host != linkHost {
		return "", ErrUnsupportedLink
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) > 0 && strings.HasPrefix(segments[0], "intl-") {
		segments = segments[1:]
	}

	if len(segments) != 2 || segments[0] != resourceTrack || segments[1] == "" {
		return "", ErrUnsupportedLink
	}

	return segments[1], nil
}

// ExtractLink returns the first Spotify link found in the text.
func ExtractLink(text string) (string, bool) {
	for _, field := range strings.Fields(text) {
		if strings.Contains(field, linkHost) || strings.HasPrefix(field, "spotify:") {
			return field, true
		}
	}

	return "", false
}

// FetchTrack resolves a track ID to its metadata.
func (c *ClientImpl) FetchTrack(ctx context.Context, trackID string) (*TrackRecord, error) {
	if trackID == "" {
		return nil, ErrEmptyTrackID
	}

	if record, ok := c.trackCache.Get(trackID); ok {
		return record, nil
	}

	track, err := c.api.GetTrack(ctx, spotifysdk.ID(trackID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch track %q: %w", trackID, err)
	}

	record := buildTrackRecord(track)

	record.Genre, err = c.resolveGenre(ctx, track)
	if err != nil {
		return nil, err
	}

	c.trackCache.Add(trackID, record)

	return record, nil
}

// FetchSimilar returns up to limit suggestions seeded by the track.
func (c *ClientImpl) FetchSimilar(ctx context.Context, trackID string, limit int) ([]SimilarTrack, error) {
	if trackID == "" {
		return nil, ErrEmptyTrackID
	}

	if tracks, ok := c.similarCache.Get(trackID); ok {
		return tracks, nil
	}

	recommendations, err := c.api.GetRecommendations(ctx,
		spotifysdk.Seeds{Tracks: []spotifysdk.ID{spotifysdk.ID(trackID)}},
		nil,
		spotifysdk.Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch similar tracks for %q: %w", trackID, err)
	}

	tracks := utils.Map(recommendations.Tracks, func(track spotifysdk.SimpleTrack) SimilarTrack {
		return SimilarTrack{
			ID:          track.ID.String(),
			Title:       track.Name,
			Artist:      primaryArtistName(track.Artists),
			ExternalURL: track.ExternalURLs["spotify"],
		}
	})

	c.similarCache.Add(trackID, tracks)

	return tracks, nil
}

// resolveGenre picks the track's genre: album genres first, then the primary
// artist's genres, and an empty string when neither carries one.
func (c *ClientImpl) resolveGenre(ctx context.Context, track *spotifysdk.FullTrack) (string, error) {
	if track.Album.ID != "" {
		album, err := c.api.GetAlbum(ctx, track.Album.ID)
		if err != nil {
			return "", fmt.Errorf("failed to fetch album %q: %w", track.Album.ID, err)
		}

		if len(album.Genres) > 0 {
			return album.Genres[0], nil
		}
	}

	if len(track.Artists) == 0 {
		return "", nil
	}

	artist, err := c.api.GetArtist(ctx, track.Artists[0].ID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch artist %q: %w", track.Artists[0].ID, err)
	}

	if len(artist.Genres) > 0 {
		return artist.Genres[0], nil
	}

	return "", nil
}

func buildTrackRecord(track *spotifysdk.FullTrack) *TrackRecord {
	record := &TrackRecord{
		ID:          track.ID.String(),
		Title:       track.Name,
		Artist:      primaryArtistName(track.Artists),
		Album:       track.Album.Name,
		Duration:    FormatDuration(track),
		ReleaseDate: track.Album.ReleaseDate,
		PreviewURL:  track.PreviewURL,
		ExternalURL: track.ExternalURLs["spotify"],
	}

	if len(track.Artists) > 0 {
		record.ArtistID = track.Artists[0].ID.String()
	}

	if len(track.Album.Images) > 0 {
		record.CoverURL = track.Album.Images[0].URL
	}

	return record
}

func primaryArtistName(artists []spotifysdk.SimpleArtist) string {
	if len(artists) == 0 {
		return ""
	}

	return artists[0].Name
}

// FormatDuration renders the track length as "M:SS".
func FormatDuration(track *spotifysdk.FullTrack) string {
	totalSeconds := int(track.TimeDuration().Seconds())

	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}
