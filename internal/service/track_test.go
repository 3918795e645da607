package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/data"
	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/domain/event"
	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/domain/model"
	apperrors "github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/errors"
	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/mocks"
)

func validCreateTrackRequest() *model.CreateTrackRequest {
	return &model.CreateTrackRequest{
		Title:           "Paranoid Android",
		Artist:          "Radiohead",
		Genre:           "rock",
		DurationSeconds: 387,
		ReleaseYear:     1997,
		Tags:            []string{"90s"},
		Audio:           bytes.Repeat([]byte{0xff}, 1024),
	}
}

func TestTrackServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("stores track and publishes event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		tracks := mocks.NewMockTrackRepository(ctrl)
		events := mocks.NewMockEventPublisher(ctrl)
		svc := NewTrackService(TrackServiceOptions{
			Tracks: tracks,
			Events: events,
			Clock:  func() time.Time { return testClockTime },
		})

		req := validCreateTrackRequest()
		stored := &model.Track{ID: "t-1", Title: req.Title, Artist: req.Artist}
		tracks.EXPECT().Create(gomock.Any(), req).Return(stored, nil)
		events.EXPECT().Publish(gomock.Any(), event.ChannelTrackEvents, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, payload any) error {
				ev, ok := payload.(event.TrackUploaded)
				require.True(t, ok)
				assert.Equal(t, event.TypeTrackUploaded, ev.Type)
				assert.Equal(t, "t-1", ev.TrackID)
				assert.Equal(t, "u-1", ev.UserID)
				return nil
			})

		track, err := svc.Create(ctx, req, "u-1")
		require.NoError(t, err)
		assert.Equal(t, stored, track)
	})

	t.Run("invalid input never reaches the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		tracks := mocks.NewMockTrackRepository(ctrl)
		svc := NewTrackService(TrackServiceOptions{Tracks: tracks})

		req := validCreateTrackRequest()
		req.Audio = nil

		_, err := svc.Create(ctx, req, "u-1")
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("publish failure does not fail the upload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		tracks := mocks.NewMockTrackRepository(ctrl)
		events := mocks.NewMockEventPublisher(ctrl)
		svc := NewTrackService(TrackServiceOptions{Tracks: tracks, Events: events})

		req := validCreateTrackRequest()
		tracks.EXPECT().Create(gomock.Any(), req).Return(&model.Track{ID: "t-1"}, nil)
		events.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("bus down"))

		track, err := svc.Create(ctx, req, "u-1")
		require.NoError(t, err)
		require.NotNil(t, track)
	})
}

func TestTrackServiceReads(t *testing.T) {
	ctx := context.Background()

	t.Run("get by id maps missing track to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		tracks := mocks.NewMockTrackRepository(ctrl)
		svc := NewTrackService(TrackServiceOptions{Tracks: tracks})

		tracks.EXPECT().GetByID(gomock.Any(), "t-missing").Return(nil, data.ErrTrackNotFound)

		_, err := svc.GetByID(ctx, "t-missing")
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("list passes pagination through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		tracks := mocks.NewMockTrackRepository(ctrl)
		svc := NewTrackService(TrackServiceOptions{Tracks: tracks})

		opts := model.TrackListOptions{Limit: 10, Offset: 20}
		want := []*model.Track{{ID: "t-1"}, {ID: "t-2"}}
		tracks.EXPECT().List(gomock.Any(), opts).Return(want, nil)

		got, err := svc.List(ctx, opts)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("audio maps missing payload to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		tracks := mocks.NewMockTrackRepository(ctrl)
		svc := NewTrackService(TrackServiceOptions{Tracks: tracks})

		tracks.EXPECT().GetAudio(gomock.Any(), "t-1").Return(nil, data.ErrTrackNotFound)

		_, err := svc.GetAudio(ctx, "t-1")
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("audio returns raw bytes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		tracks := mocks.NewMockTrackRepository(ctrl)
		svc := NewTrackService(TrackServiceOptions{Tracks: tracks})

		want := []byte{0x49, 0x44, 0x33}
		tracks.EXPECT().GetAudio(gomock.Any(), "t-1").Return(want, nil)

		got, err := svc.GetAudio(ctx, "t-1")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}
