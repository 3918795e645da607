// Package event defines the payload shapes published on the service bus.
// Payloads are JSON-encoded; the Type field discriminates on the wire.
package event

import "time"

// Event type discriminators.
const (
	TypeUserRegistered = "UserRegistered"
	TypeTrackUploaded  = "TrackUploaded"
	TypeTrackPlayed    = "TrackPlayed"
)

// Pub/sub channels, one per producing service.
const (
	ChannelUserEvents     = "user_events"
	ChannelTrackEvents    = "track_events"
	ChannelPlaybackEvents = "playback_events"
)

// UserRegistered is published when a new account is created.
type UserRegistered struct {
	Type      string    `json:"type"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}

// NewUserRegistered builds a UserRegistered payload with the envelope filled in.
func NewUserRegistered(userID, email string, at time.Time) UserRegistered {
	return UserRegistered{
		Type:      TypeUserRegistered,
		UserID:    userID,
		Email:     email,
		Timestamp: at.UTC(),
	}
}

// TrackUploaded is published when a track lands in the catalog.
type TrackUploaded struct {
	Type      string    `json:"type"`
	TrackID   string    `json:"track_id"`
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

// NewTrackUploaded builds a TrackUploaded payload with the envelope filled in.
func NewTrackUploaded(trackID, userID string, at time.Time) TrackUploaded {
	return TrackUploaded{
		Type:      TypeTrackUploaded,
		TrackID:   trackID,
		UserID:    userID,
		Timestamp: at.UTC(),
	}
}

// TrackPlayed is published when a playback action is logged.
type TrackPlayed struct {
	Type      string    `json:"type"`
	TrackID   string    `json:"track_id"`
	UserID    string    `json:"user_id"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// NewTrackPlayed builds a TrackPlayed payload with the envelope filled in.
func NewTrackPlayed(trackID, userID, action string, at time.Time) TrackPlayed {
	return TrackPlayed{
		Type:      TypeTrackPlayed,
		TrackID:   trackID,
		UserID:    userID,
		Action:    action,
		Timestamp: at.UTC(),
	}
}
