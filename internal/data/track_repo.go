package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/data/pgxutil"
	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/domain/model"
)

// ErrTrackNotFound is returned when a track is not found.
var ErrTrackNotFound = errors.New("track not found")

// TrackRepo provides database operations for the catalog.
type TrackRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewTrackRepo creates a new TrackRepo with real time provider.
func NewTrackRepo(db *sql.DB) *TrackRepo {
	return &TrackRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewTrackRepoWithTimeProvider creates a new TrackRepo with a custom time provider (useful for tests).
func NewTrackRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *TrackRepo {
	return &TrackRepo{DB: db, timeProvider: tp}
}

// trackColumns is the column list for track queries; audio is deliberately
// excluded and only fetched by GetAudio.
const trackColumns = `id, title, artist, album, genre, duration_seconds, release_year, tags, created_at`

const (
	trackGetByIDQuery = `
		SELECT ` + trackColumns + `
		FROM tracks
		WHERE id = $1`

	trackListQuery = `
		SELECT ` + trackColumns + `
		FROM tracks
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	trackGetAudioQuery = `SELECT audio FROM tracks WHERE id = $1`

	trackInsertQuery = `
		INSERT INTO tracks (
			title, artist, album, genre, duration_seconds, release_year, tags, audio, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING ` + trackColumns
)

// Create inserts a new track with its audio payload.
func (r *TrackRepo) Create(ctx context.Context, req *model.CreateTrackRequest) (*model.Track, error) {
	if req == nil {
		return nil, errors.New("create track request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	var out model.Track
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, trackInsertQuery,
			strings.TrimSpace(req.Title),
			strings.TrimSpace(req.Artist),
			req.Album,
			strings.TrimSpace(req.Genre),
			req.DurationSeconds,
			req.ReleaseYear,
			tags,
			req.Audio,
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Track])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create track: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a track by ID without its audio payload.
func (r *TrackRepo) GetByID(ctx context.Context, id string) (*model.Track, error) {
	var track model.Track
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, trackGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		track, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Track])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTrackNotFound
		}
		return nil, fmt.Errorf("failed to get track by ID: %w", err)
	}
	return &track, nil
}

// List retrieves tracks with pagination, newest first.
func (r *TrackRepo) List(ctx context.Context, opts model.TrackListOptions) ([]*model.Track, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	var rowsOut []model.Track
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, trackListQuery, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Track])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list tracks: %w", err)
	}

	res := make([]*model.Track, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// GetAudio retrieves the raw audio payload for a track.
func (r *TrackRepo) GetAudio(ctx context.Context, id string) ([]byte, error) {
	var audio []byte
	err := r.DB.QueryRowContext(ctx, trackGetAudioQuery, id).Scan(&audio)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTrackNotFound
		}
		return nil, fmt.Errorf("failed to get track audio: %w", err)
	}
	if len(audio) == 0 {
		return nil, ErrTrackNotFound
	}
	return audio, nil
}
