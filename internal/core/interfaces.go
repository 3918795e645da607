package core

import (
	"context"
	"time"

	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// InsertUserParams groups parameters for UserRepository.Insert.
type InsertUserParams struct {
	Username     string
	Email        string
	PasswordHash string
}

// UserRepository defines the interface for credential and account data.
// Insert relies on the storage layer's uniqueness constraints so that
// concurrent registrations of the same handle cannot both succeed.
type UserRepository interface {
	Insert(ctx context.Context, params InsertUserParams) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	PrincipalExists(ctx context.Context, id string) (bool, error)
}

// TrackRepository defines the interface for catalog data operations.
type TrackRepository interface {
	Create(ctx context.Context, req *model.CreateTrackRequest) (*model.Track, error)
	GetByID(ctx context.Context, id string) (*model.Track, error)
	List(ctx context.Context, opts model.TrackListOptions) ([]*model.Track, error)
	GetAudio(ctx context.Context, id string) ([]byte, error)
}

// PlaybackRepository defines the interface for playback log operations.
type PlaybackRepository interface {
	Insert(ctx context.Context, req *model.LogPlaybackRequest) (*model.PlaybackLog, error)
	ListByUser(ctx context.Context, opts model.PlaybackHistoryOptions) ([]*model.PlaybackLog, error)
}

// CacheRepository defines the interface for the ad-hoc key-value cache.
type CacheRepository interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) (bool, error)
	Health(ctx context.Context) error
}

// EventPublisher publishes domain event payloads to the service bus.
// Publishing is best-effort: services log failures but do not fail the
// request that produced the event.
type EventPublisher interface {
	Publish(ctx context.Context, channel string, payload any) error
}
