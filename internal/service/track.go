package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/core"
	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/data"
	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/domain/event"
	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/domain/model"
	apperrors "github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/errors"
)

// TrackServiceOptions groups dependencies for TrackService.
type TrackServiceOptions struct {
	Tracks core.TrackRepository
	Events core.EventPublisher // Optional: nil disables event publishing
	Logger *slog.Logger        // Optional: structured logger
	Clock  func() time.Time    // Optional: time source, defaults to time.Now
}

// TrackService orchestrates catalog reads and uploads.
type TrackService struct {
	tracks core.TrackRepository
	events core.EventPublisher
	logger *slog.Logger
	clock  func() time.Time
}

// NewTrackService constructs a new TrackService.
func NewTrackService(opts TrackServiceOptions) *TrackService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	return &TrackService{
		tracks: opts.Tracks,
		events: opts.Events,
		logger: logger,
		clock:  clock,
	}
}

// Create stores a track with its audio payload and announces the upload.
// uploaderID is the authenticated principal that performed the upload.
func (s *TrackService) Create(ctx context.Context, req *model.CreateTrackRequest, uploaderID string) (*model.Track, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	track, err := s.tracks.Create(ctx, req)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to create track")
	}

	if s.events != nil {
		payload := event.NewTrackUploaded(track.ID, uploaderID, s.clock())
		if pubErr := s.events.Publish(ctx, event.ChannelTrackEvents, payload); pubErr != nil {
			s.logger.WarnContext(ctx, "failed to publish event",
				"channel", event.ChannelTrackEvents,
				"error", pubErr)
		}
	}
	return track, nil
}

// GetByID retrieves a track's metadata.
func (s *TrackService) GetByID(ctx context.Context, id string) (*model.Track, error) {
	track, err := s.tracks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrTrackNotFound) {
			return nil, apperrors.NotFound("Track not found")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to look up track")
	}
	return track, nil
}

// List returns a page of tracks, newest first.
func (s *TrackService) List(ctx context.Context, opts model.TrackListOptions) ([]*model.Track, error) {
	tracks, err := s.tracks.List(ctx, opts)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to list tracks")
	}
	return tracks, nil
}

// GetAudio returns the raw audio bytes for streaming.
func (s *TrackService) GetAudio(ctx context.Context, id string) ([]byte, error) {
	audio, err := s.tracks.GetAudio(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrTrackNotFound) {
			return nil, apperrors.NotFound("Track or audio not found")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to load audio")
	}
	return audio, nil
}
