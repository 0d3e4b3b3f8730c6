package ytdlp

import "errors"

var (
	// ErrEmptyQuery is returned when Search is called with an empty query.
	ErrEmptyQuery = errors.New("search query is empty")
	// ErrNoSearchResults is returned when the search yields no entries.
	ErrNoSearchResults = errors.New("no search results")
	// ErrMissingOutput is returned when the download finished without
	// producing an MP3 file in the destination directory.
	ErrMissingOutput = errors.New("download produced no output file")
)
