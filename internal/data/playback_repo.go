package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/data/pgxutil"
	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/domain/model"
)

// PlaybackRepo provides database operations for playback logs.
type PlaybackRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewPlaybackRepo creates a new PlaybackRepo with real time provider.
func NewPlaybackRepo(db *sql.DB) *PlaybackRepo {
	return &PlaybackRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewPlaybackRepoWithTimeProvider creates a new PlaybackRepo with a custom time provider (useful for tests).
func NewPlaybackRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *PlaybackRepo {
	return &PlaybackRepo{DB: db, timeProvider: tp}
}

const (
	playbackInsertQuery = `
		INSERT INTO playbacks (user_id, track_id, action, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, track_id, action, created_at`

	playbackListByUserQuery = `
		SELECT id, user_id, track_id, action, created_at
		FROM playbacks
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
)

// Insert records a playback action.
func (r *PlaybackRepo) Insert(ctx context.Context, req *model.LogPlaybackRequest) (*model.PlaybackLog, error) {
	if req == nil {
		return nil, errors.New("log playback request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.PlaybackLog
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, playbackInsertQuery,
			req.UserID,
			req.TrackID,
			string(req.Action),
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.PlaybackLog])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to insert playback: %w", err)
	}
	return &out, nil
}

// ListByUser retrieves a user's playback history, newest first.
func (r *PlaybackRepo) ListByUser(ctx context.Context, opts model.PlaybackHistoryOptions) ([]*model.PlaybackLog, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 100
	}
	offset := max(opts.Offset, 0)

	var rowsOut []model.PlaybackLog
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, playbackListByUserQuery, opts.UserID, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.PlaybackLog])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list playbacks: %w", err)
	}

	res := make([]*model.PlaybackLog, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}
