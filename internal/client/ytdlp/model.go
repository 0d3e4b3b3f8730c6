package ytdlp

// SongRef points at a downloadable song found by search.
type SongRef struct {
	// ID is the source video ID.
	ID string
	// Title is the source video title.
	Title string
	// Uploader is the channel that published the video, empty when unknown.
	Uploader string
	// URL is the watch page URL to download from.
	URL string
}
