package bot

// TextMessage is an incoming text message from a chat.
type TextMessage struct {
	// ChatID identifies the chat the message arrived in.
	ChatID int64
	// UserID identifies the sender.
	UserID int64
	// MessageID is the message's ID within the chat.
	MessageID int
	// Text is the message text, including any command.
	Text string
}

// Callback is an incoming inline button press.
type Callback struct {
	// ID is the callback query ID used to acknowledge the press.
	ID string
	// ChatID identifies the chat holding the message with the button.
	ChatID int64
	// UserID identifies the user who pressed the button.
	UserID int64
	// MessageID is the ID of the message the button is attached to.
	MessageID int
	// Data is the raw callback tag.
	Data string
}

// Button is a single inline keyboard button.
// Exactly one of Data and URL should be set.
type Button struct {
	// Label is the visible button text.
	Label string
	// Data is the callback tag sent back when the button is pressed.
	Data string
	// URL opens a link instead of sending a callback.
	URL string
}

// Keyboard is an inline keyboard, a list of button rows.
type Keyboard [][]Button

// TrackCard is a cover photo with a caption and buttons describing a track.
type TrackCard struct {
	// CoverURL is the album cover to attach, empty to send text only.
	CoverURL string
	// Caption is the card text.
	Caption string
	// Keyboard holds the card's action buttons.
	Keyboard Keyboard
}

// AudioMessage is an audio file reply.
type AudioMessage struct {
	// Path is the local path of the audio file to upload.
	Path string
	// Caption is the text shown under the audio.
	Caption string
	// Title is the audio title shown by the player.
	Title string
	// Performer is the artist name shown by the player.
	Performer string
}

// TrackQuality is an audio bitrate the user can download at.
type TrackQuality uint8

// Enum values for TrackQuality.
const (
	// TrackQualityUnknown represents an unknown or unspecified audio quality.
	TrackQualityUnknown TrackQuality = iota
	// TrackQualityMP3Mid represents MP3 format at 128 Kbps.
	TrackQualityMP3Mid
	// TrackQualityMP3High represents MP3 format at 320 Kbps.
	TrackQualityMP3High
)

// String representations of TrackQuality values as they appear in callback tags.
const (
	// TrackQualityMP3MidString is the tag form of 128 Kbps MP3.
	TrackQualityMP3MidString = "128"
	// TrackQualityMP3HighString is the tag form of 320 Kbps MP3.
	TrackQualityMP3HighString = "320"
)

// ParseQuality converts a tag string to a TrackQuality.
func ParseQuality(s string) TrackQuality {
	switch s {
	case TrackQualityMP3MidString:
		return TrackQualityMP3Mid
	case TrackQualityMP3HighString:
		return TrackQualityMP3High
	default:
		return TrackQualityUnknown
	}
}

// String returns the tag form of the quality.
func (q TrackQuality) String() string {
	switch q {
	case TrackQualityMP3Mid:
		return TrackQualityMP3MidString
	case TrackQualityMP3High:
		return TrackQualityMP3HighString
	default:
		return "unknown"
	}
}

// AudioQuality returns the quality in the form the downloader expects.
func (q TrackQuality) AudioQuality() string {
	return q.String() + "K"
}

// Label returns the quality as shown on keyboard buttons.
func (q TrackQuality) Label() string {
	return q.String() + " kbps"
}
