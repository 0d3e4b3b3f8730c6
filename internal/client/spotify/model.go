package spotify

// TrackRecord is the bot's view of a single Spotify track.
type TrackRecord struct {
	// ID is the Spotify track ID.
	ID string
	// Title is the track title.
	Title string
	// Artist is the primary artist's name.
	Artist string
	// ArtistID is the primary artist's Spotify ID.
	ArtistID string
	// Album is the album title.
	Album string
	// Genre is the resolved genre, empty when neither the album
	// nor the primary artist carries one.
	Genre string
	// Duration is the track length formatted as "M:SS".
	Duration string
	// ReleaseDate is the album release date as reported by Spotify.
	ReleaseDate string
	// CoverURL points to the largest album cover image, empty when absent.
	CoverURL string
	// PreviewURL points to the 30-second preview clip, empty when absent.
	PreviewURL string
	// ExternalURL is the public open.spotify.com page of the track.
	ExternalURL string
}

// SimilarTrack is a single similar-track suggestion.
type SimilarTrack struct {
	// ID is the Spotify track ID.
	ID string
	// Title is the track title.
	Title string
	// Artist is the primary artist's name.
	Artist string
	// ExternalURL is the public open.spotify.com page of the track.
	ExternalURL string
}
