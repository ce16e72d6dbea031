package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jamstream/server/internal/domain"
)

// playlistColumns is the shared projection for playlist rows. Net value is
// derived in SQL: follower count plus the view sum of contained musics.
const playlistColumns = `
	pl.id, pl.name, pl.description, pl.creator_id, pr.username,
	(SELECT COUNT(*) FROM playlist_followers pf WHERE pf.playlist_id = pl.id)
	+ COALESCE((
		SELECT SUM(m.number_of_views) FROM playlist_musics pm
		JOIN musics m ON m.id = pm.music_id
		WHERE pm.playlist_id = pl.id
	), 0) AS net_value,
	pl.created_at
`

const playlistFrom = ` FROM playlists pl JOIN profiles pr ON pr.id = pl.creator_id `

// PlaylistRepositoryImpl is the pgx-backed playlist store.
type PlaylistRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewPlaylistRepository creates a playlist repository.
func NewPlaylistRepository(db *pgxpool.Pool) PlaylistRepository {
	return &PlaylistRepositoryImpl{db: db}
}

// Create inserts a playlist and fills in its generated ID.
func (r *PlaylistRepositoryImpl) Create(ctx context.Context, playlist *domain.Playlist) error {
	query := `
		INSERT INTO playlists (name, description, creator_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.db.QueryRow(ctx, query,
		playlist.Name,
		playlist.Description,
		playlist.CreatorID,
		playlist.CreatedAt,
	).Scan(&playlist.ID)
}

// GetByID returns the playlist with the given ID.
func (r *PlaylistRepositoryImpl) GetByID(ctx context.Context, id int64) (*domain.Playlist, error) {
	query := `SELECT ` + playlistColumns + playlistFrom + ` WHERE pl.id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// Delete removes the playlist. Membership and follower rows go with it
// via cascading foreign keys.
func (r *PlaylistRepositoryImpl) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	return err
}

// ListByCreator returns playlists created by a profile.
func (r *PlaylistRepositoryImpl) ListByCreator(ctx context.Context, profileID int64) ([]*domain.Playlist, error) {
	query := `SELECT ` + playlistColumns + playlistFrom + ` WHERE pl.creator_id = $1`
	return r.list(ctx, query, profileID)
}

// ListFollowedBy returns playlists followed by a profile.
func (r *PlaylistRepositoryImpl) ListFollowedBy(ctx context.Context, profileID int64) ([]*domain.Playlist, error) {
	query := `
		SELECT ` + playlistColumns + playlistFrom + `
		JOIN playlist_followers pf ON pf.playlist_id = pl.id
		WHERE pf.profile_id = $1
	`
	return r.list(ctx, query, profileID)
}

// Follow adds the profile to the playlist's follower set. Re-following is
// a no-op (set semantics).
func (r *PlaylistRepositoryImpl) Follow(ctx context.Context, playlistID, profileID int64) error {
	query := `
		INSERT INTO playlist_followers (playlist_id, profile_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, playlistID, profileID)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return domain.ErrPlaylistNotFound
	}
	return err
}

// Unfollow removes the profile from the playlist's follower set.
func (r *PlaylistRepositoryImpl) Unfollow(ctx context.Context, playlistID, profileID int64) error {
	query := `DELETE FROM playlist_followers WHERE playlist_id = $1 AND profile_id = $2`
	_, err := r.db.Exec(ctx, query, playlistID, profileID)
	return err
}

// AddMusic adds a music to the playlist's set. Duplicates are no-ops.
func (r *PlaylistRepositoryImpl) AddMusic(ctx context.Context, playlistID, musicID int64) error {
	query := `
		INSERT INTO playlist_musics (playlist_id, music_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, playlistID, musicID)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return domain.ErrPlaylistNotFound
	}
	return err
}

// ListTop returns all playlists ordered by net value, highest first.
func (r *PlaylistRepositoryImpl) ListTop(ctx context.Context) ([]*domain.Playlist, error) {
	query := `SELECT ` + playlistColumns + playlistFrom + ` ORDER BY net_value DESC`
	return r.list(ctx, query)
}

// Search returns playlists whose name or description contains the query,
// case-insensitively.
func (r *PlaylistRepositoryImpl) Search(ctx context.Context, query string) ([]*domain.Playlist, error) {
	sql := `
		SELECT ` + playlistColumns + playlistFrom + `
		WHERE pl.name ILIKE '%' || $1 || '%' OR pl.description ILIKE '%' || $1 || '%'
	`
	return r.list(ctx, sql, escapeLike(query))
}

func (r *PlaylistRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]*domain.Playlist, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var playlists []*domain.Playlist
	for rows.Next() {
		var p domain.Playlist
		err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CreatorID, &p.CreatorUsername, &p.NetValue, &p.CreatedAt)
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, &p)
	}
	return playlists, rows.Err()
}

func (r *PlaylistRepositoryImpl) scanOne(row pgx.Row) (*domain.Playlist, error) {
	var p domain.Playlist
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.CreatorID, &p.CreatorUsername, &p.NetValue, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPlaylistNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
