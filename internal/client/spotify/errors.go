package spotify

import "errors"

var (
	// ErrEmptyCredentials is returned when the client is created without API credentials.
	ErrEmptyCredentials = errors.New("spotify credentials are empty")
	// ErrUnsupportedLink is returned for links that are not Spotify track links.
	ErrUnsupportedLink = errors.New("unsupported spotify link")
	// ErrEmptyTrackID is returned when an operation is called with an empty track ID.
	ErrEmptyTrackID = errors.New("track ID is empty")
)
