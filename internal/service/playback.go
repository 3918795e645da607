package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/core"
	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/domain/event"
	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/domain/model"
	apperrors "github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/errors"
)

// PlaybackServiceOptions groups dependencies for PlaybackService.
type PlaybackServiceOptions struct {
	Playbacks core.PlaybackRepository
	Events    core.EventPublisher // Optional: nil disables event publishing
	Logger    *slog.Logger        // Optional: structured logger
	Clock     func() time.Time    // Optional: time source, defaults to time.Now
}

// PlaybackService records playback actions and serves listening history.
// Track ids are not checked against the catalog; the log is append-only and
// trusts the caller's id, matching the service-per-database split.
type PlaybackService struct {
	playbacks core.PlaybackRepository
	events    core.EventPublisher
	logger    *slog.Logger
	clock     func() time.Time
}

// NewPlaybackService constructs a new PlaybackService.
func NewPlaybackService(opts PlaybackServiceOptions) *PlaybackService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	return &PlaybackService{
		playbacks: opts.Playbacks,
		events:    opts.Events,
		logger:    logger,
		clock:     clock,
	}
}

// LogPlayback records one playback action for the authenticated principal
// and announces it. UserID on the request must already be set from the
// verified token, never from the request body.
func (s *PlaybackService) LogPlayback(ctx context.Context, req *model.LogPlaybackRequest) (*model.PlaybackLog, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	entry, err := s.playbacks.Insert(ctx, req)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to record playback")
	}

	if s.events != nil {
		payload := event.NewTrackPlayed(entry.TrackID, entry.UserID, string(entry.Action), s.clock())
		if pubErr := s.events.Publish(ctx, event.ChannelPlaybackEvents, payload); pubErr != nil {
			s.logger.WarnContext(ctx, "failed to publish event",
				"channel", event.ChannelPlaybackEvents,
				"error", pubErr)
		}
	}
	return entry, nil
}

// History returns a user's playback log, newest first.
func (s *PlaybackService) History(ctx context.Context, opts model.PlaybackHistoryOptions) ([]*model.PlaybackLog, error) {
	entries, err := s.playbacks.ListByUser(ctx, opts)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to list playback history")
	}
	return entries, nil
}
