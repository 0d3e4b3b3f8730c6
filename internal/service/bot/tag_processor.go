package bot

//go:generate $MOCKGEN -source=tag_processor.go -destination=mocks/tag_processor_mock.go

import (
	"context"
	"errors"
	"mime"
	"os"
	"path/filepath"

	"github.com/oshokin/id3v2/v2"
)

// TagProcessor defines the interface for writing metadata tags to audio files.
type TagProcessor interface {
	WriteTags(ctx context.Context, req *WriteTagsRequest) error
}

// WriteTagsRequest contains parameters for writing metadata to a downloaded track.
type WriteTagsRequest struct {
	// TrackPath is the file path of the MP3 file.
	TrackPath string
	// CoverPath is the file path of the cover art image, empty to skip embedding.
	CoverPath string
	// Title is the track title.
	Title string
	// Artist is the primary artist's name.
	Artist string
	// Album is the album title.
	Album string
	// Genre is the track genre, empty when unknown.
	Genre string
	// Year is the release year.
	Year string
}

// TagProcessorImpl provides the default implementation of TagProcessor.
type TagProcessorImpl struct{}

// Static error definitions for better error handling.
var (
	// ErrEmptyTrackPath indicates that the track file path is empty.
	ErrEmptyTrackPath = errors.New("track path cannot be empty")
)

// NewTagProcessor creates a new TagProcessor instance.
func NewTagProcessor() TagProcessor {
	return new(TagProcessorImpl)
}

// WriteTags writes metadata to the MP3 file described by the request.
func (tp *TagProcessorImpl) WriteTags(_ context.Context, req *WriteTagsRequest) error {
	if req.TrackPath == "" {
		return ErrEmptyTrackPath
	}

	//nolint:exhaustruct // ParseFrames intentionally omitted when Parse=false (parsing disabled).
	tag, err := id3v2.Open(req.TrackPath, id3v2.Options{Parse: false})
	if err != nil {
		return err
	}

	defer tag.Close()

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.SetAlbum(req.Album)
	tag.SetArtist(req.Artist)
	tag.SetGenre(req.Genre)
	tag.SetTitle(req.Title)
	tag.SetYear(req.Year)

	if req.CoverPath != "" {
		if err = tp.embedCover(tag, req.CoverPath); err != nil {
			return err
		}
	}

	return tag.Save()
}

func (tp *TagProcessorImpl) embedCover(tag *id3v2.Tag, coverPath string) error {
	imageData, err := os.ReadFile(filepath.Clean(coverPath))
	if err != nil {
		return err
	}

	//nolint:exhaustruct // Description field intentionally empty for cover images.
	tag.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    mime.TypeByExtension(filepath.Ext(coverPath)),
		PictureType: id3v2.PTFrontCover,
		Picture:     imageData,
	})

	return nil
}
