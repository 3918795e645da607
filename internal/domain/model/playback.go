package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PlaybackAction is what the listener did with a track.
// Keep string form for easy persistence and JSON.
type PlaybackAction string

const (
	PlaybackActionPlay  PlaybackAction = "play"
	PlaybackActionPause PlaybackAction = "pause"
	PlaybackActionStop  PlaybackAction = "stop"
)

// Valid reports whether the action is one of the known values.
func (a PlaybackAction) Valid() bool {
	switch a {
	case PlaybackActionPlay, PlaybackActionPause, PlaybackActionStop:
		return true
	default:
		return false
	}
}

// PlaybackLog records one playback action. User and track ids are plain
// columns rather than foreign keys: the user and catalog tables live in
// other services' databases.
type PlaybackLog struct {
	ID        string         `json:"id"         db:"id"`
	UserID    string         `json:"user_id"    db:"user_id"`
	TrackID   string         `json:"track_id"   db:"track_id"`
	Action    PlaybackAction `json:"action"     db:"action"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}

// LogPlaybackRequest contains fields to record a playback action.
// UserID is filled in from the authenticated principal, never from the body.
type LogPlaybackRequest struct {
	UserID  string         `json:"-"`
	TrackID string         `json:"track_id"`
	Action  PlaybackAction `json:"action"`
}

// Validate checks playback input.
func (r *LogPlaybackRequest) Validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return errors.New("user_id is required")
	}
	if strings.TrimSpace(r.TrackID) == "" {
		return errors.New("track_id is required")
	}
	if _, err := uuid.Parse(r.TrackID); err != nil {
		return errors.New("track_id must be a valid UUID")
	}
	if r.Action == "" {
		// Bare POST /play without an action means "play" in the original API.
		r.Action = PlaybackActionPlay
	}
	if !r.Action.Valid() {
		return errors.New("action must be one of play, pause, stop")
	}
	return nil
}

// PlaybackHistoryOptions contains pagination options for history listing.
type PlaybackHistoryOptions struct {
	UserID string
	Limit  int
	Offset int
}
