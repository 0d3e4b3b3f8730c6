package bot

import (
	"fmt"
	"strconv"
	"strings"
)

// Callback tag prefixes. Tag fields are joined with "_"; track IDs and
// numeric fields never contain the delimiter, so only the preview URL field
// (which may) has to sit last in its tag.
const (
	tagPrefixLanguage        = "lang_"
	tagPrefixSimilar         = "similar_"
	tagPrefixDownloadPreview = "download_preview_"
	tagPrefixSelectQuality   = "select_quality_"
	tagPrefixDownloadSong    = "download_song_"

	// tagNoPreview marks a track without a preview clip.
	tagNoPreview = "no_preview"
)

// IntentKind discriminates parsed callback intents.
type IntentKind uint8

// Enum values for IntentKind.
const (
	// IntentUnknown means the callback data matched no known tag.
	IntentUnknown IntentKind = iota
	// IntentSetLanguage switches the user's interface language.
	IntentSetLanguage
	// IntentSimilar requests similar-track suggestions.
	IntentSimilar
	// IntentDownloadPreview requests the 30-second preview clip.
	IntentDownloadPreview
	// IntentSelectQuality opens the download quality keyboard.
	IntentSelectQuality
	// IntentDownloadSong downloads the full song at a chosen quality.
	IntentDownloadSong
)

// CallbackIntent is a callback tag parsed into typed fields.
// Only the fields relevant to the Kind are set.
type CallbackIntent struct {
	// Kind says which tag was parsed.
	Kind IntentKind
	// Language is the requested language tag for IntentSetLanguage.
	Language string
	// TrackID is the Spotify track ID the button refers to.
	TrackID string
	// PreviewURL is the preview clip URL for IntentDownloadPreview.
	PreviewURL string
	// HasPreview is false when the track carries no preview clip.
	HasPreview bool
	// ChatID identifies the chat of the originating link message.
	ChatID int64
	// MessageID identifies the originating link message within the chat.
	MessageID int
	// Quality is the chosen bitrate for IntentDownloadSong.
	Quality TrackQuality
}

// ParseCallbackTag parses raw callback data into a typed intent.
// Data that matches no tag shape yields ErrMalformedCallbackTag.
func ParseCallbackTag(data string) (*CallbackIntent, error) {
	switch {
	case strings.HasPrefix(data, tagPrefixLanguage):
		return parseLanguageTag(strings.TrimPrefix(data, tagPrefixLanguage))
	case strings.HasPrefix(data, tagPrefixDownloadPreview):
		return parseDownloadPreviewTag(strings.TrimPrefix(data, tagPrefixDownloadPreview))
	case strings.HasPrefix(data, tagPrefixDownloadSong):
		return parseDownloadSongTag(strings.TrimPrefix(data, tagPrefixDownloadSong))
	case strings.HasPrefix(data, tagPrefixSelectQuality):
		return parseSelectQualityTag(strings.TrimPrefix(data, tagPrefixSelectQuality))
	case strings.HasPrefix(data, tagPrefixSimilar):
		return parseSimilarTag(strings.TrimPrefix(data, tagPrefixSimilar))
	default:
		return nil, fmt.Errorf("%w: %q", ErrMalformedCallbackTag, data)
	}
}

func parseLanguageTag(rest string) (*CallbackIntent, error) {
	if rest == "" || strings.Contains(rest, "_") {
		return nil, fmt.Errorf("%w: bad language %q", ErrMalformedCallbackTag, rest)
	}

	return &CallbackIntent{Kind: IntentSetLanguage, Language: rest}, nil
}

func parseSimilarTag(rest string) (*CallbackIntent, error) {
	if rest == "" {
		return nil, fmt.Errorf("%w: empty track ID", ErrMalformedCallbackTag)
	}

	return &CallbackIntent{Kind: IntentSimilar, TrackID: rest}, nil
}

func parseDownloadPreviewTag(rest string) (*CallbackIntent, error) {
	// The preview URL may itself contain the delimiter, so split once only.
	parts := strings.SplitN(rest, "_", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("%w: bad preview tag %q", ErrMalformedCallbackTag, rest)
	}

	intent := &CallbackIntent{
		Kind:    IntentDownloadPreview,
		TrackID: parts[0],
	}

	if parts[1] != tagNoPreview {
		intent.PreviewURL = parts[1]
		intent.HasPreview = true
	}

	return intent, nil
}

func parseSelectQualityTag(rest string) (*CallbackIntent, error) {
	parts := strings.Split(rest, "_")
	if len(parts) != 3 || parts[0] == "" {
		return nil, fmt.Errorf("%w: bad quality selection tag %q", ErrMalformedCallbackTag, rest)
	}

	chatID, messageID, err := parseMessageCoordinates(parts[1], parts[2])
	if err != nil {
		return nil, err
	}

	return &CallbackIntent{
		Kind:      IntentSelectQuality,
		TrackID:   parts[0],
		ChatID:    chatID,
		MessageID: messageID,
	}, nil
}

func parseDownloadSongTag(rest string) (*CallbackIntent, error) {
	parts := strings.Split(rest, "_")
	if len(parts) != 4 || parts[0] == "" {
		return nil, fmt.Errorf("%w: bad download tag %q", ErrMalformedCallbackTag, rest)
	}

	chatID, messageID, err := parseMessageCoordinates(parts[1], parts[2])
	if err != nil {
		return nil, err
	}

	quality := ParseQuality(parts[3])
	if quality == TrackQualityUnknown {
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuality, parts[3])
	}

	return &CallbackIntent{
		Kind:      IntentDownloadSong,
		TrackID:   parts[0],
		ChatID:    chatID,
		MessageID: messageID,
		Quality:   quality,
	}, nil
}

func parseMessageCoordinates(rawChatID, rawMessageID string) (int64, int, error) {
	chatID, err := strconv.ParseInt(rawChatID, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad chat ID %q", ErrMalformedCallbackTag, rawChatID)
	}

	messageID, err := strconv.Atoi(rawMessageID)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad message ID %q", ErrMalformedCallbackTag, rawMessageID)
	}

	return chatID, messageID, nil
}

// EncodeLanguageTag builds a language selection tag.
func EncodeLanguageTag(language string) string {
	return tagPrefixLanguage + language
}

// EncodeSimilarTag builds a similar-tracks tag.
func EncodeSimilarTag(trackID string) string {
	return tagPrefixSimilar + trackID
}

// EncodeDownloadPreviewTag builds a preview download tag.
// An empty previewURL encodes as a no-preview marker.
func EncodeDownloadPreviewTag(trackID, previewURL string) string {
	if previewURL == "" {
		previewURL = tagNoPreview
	}

	return tagPrefixDownloadPreview + trackID + "_" + previewURL
}

// EncodeSelectQualityTag builds a quality selection tag.
func EncodeSelectQualityTag(trackID string, chatID int64, messageID int) string {
	return fmt.Sprintf("%s%s_%d_%d", tagPrefixSelectQuality, trackID, chatID, messageID)
}

// EncodeDownloadSongTag builds a song download tag.
func EncodeDownloadSongTag(trackID string, chatID int64, messageID int, quality TrackQuality) string {
	return fmt.Sprintf("%s%s_%d_%d_%s", tagPrefixDownloadSong, trackID, chatID, messageID, quality)
}
