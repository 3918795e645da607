package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxTrackTitleLen = 255
	maxArtistLen     = 255

	// MaxAudioBytes caps uploaded audio stored inline in the catalog table.
	MaxAudioBytes = 32 << 20 // 32 MiB
)

// Track represents a catalog entry. Audio is stored separately and omitted
// from list/detail responses.
type Track struct {
	ID              string    `json:"id"           db:"id"`
	Title           string    `json:"title"        db:"title"`
	Artist          string    `json:"artist"       db:"artist"`
	Album           *string   `json:"album"        db:"album"`
	Genre           string    `json:"genre"        db:"genre"`
	DurationSeconds int       `json:"duration"     db:"duration_seconds"`
	ReleaseYear     int       `json:"release_year" db:"release_year"`
	Tags            []string  `json:"tags"         db:"tags"`
	CreatedAt       time.Time `json:"created_at"   db:"created_at"`
}

// CreateTrackRequest contains fields to create a new track, including the
// raw audio payload from the multipart upload.
type CreateTrackRequest struct {
	Title           string
	Artist          string
	Album           *string
	Genre           string
	DurationSeconds int
	ReleaseYear     int
	Tags            []string
	Audio           []byte
}

// Validate checks track creation input.
func (r *CreateTrackRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("title is required and cannot be empty")
	}
	if utf8.RuneCountInString(r.Title) > maxTrackTitleLen {
		return errors.New("title cannot exceed 255 characters")
	}
	if strings.TrimSpace(r.Artist) == "" {
		return errors.New("artist is required and cannot be empty")
	}
	if utf8.RuneCountInString(r.Artist) > maxArtistLen {
		return errors.New("artist cannot exceed 255 characters")
	}
	if strings.TrimSpace(r.Genre) == "" {
		return errors.New("genre is required and cannot be empty")
	}
	if r.DurationSeconds <= 0 {
		return errors.New("duration must be a positive number of seconds")
	}
	if r.ReleaseYear < 1000 || r.ReleaseYear > time.Now().Year()+1 {
		return errors.New("release_year is out of range")
	}
	if len(r.Audio) == 0 {
		return errors.New("audio_file is required")
	}
	if len(r.Audio) > MaxAudioBytes {
		return errors.New("audio_file exceeds the maximum allowed size")
	}
	return nil
}

// TrackListOptions contains pagination options for track listing.
type TrackListOptions struct {
	Limit  int
	Offset int
}
