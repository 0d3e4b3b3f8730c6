package bot

import "errors"

// Static error definitions for better error handling.
var (
	// ErrMalformedCallbackTag indicates that callback data does not match any known tag shape.
	ErrMalformedCallbackTag = errors.New("malformed callback tag")
	// ErrUnknownQuality indicates a download tag carrying an unsupported quality value.
	ErrUnknownQuality = errors.New("unknown track quality")
	// ErrFileTooLarge indicates that a remote file exceeds the configured size cap.
	ErrFileTooLarge = errors.New("file exceeds size limit")
	// ErrUnexpectedStatus indicates a non-200 response while fetching a remote file.
	ErrUnexpectedStatus = errors.New("unexpected response status")
)
