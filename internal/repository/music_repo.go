package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jamstream/server/internal/domain"
)

// musicColumns is the shared projection for music rows. The artist column
// resolves to the most recently credited performer, matching the public
// music shape.
const musicColumns = `
	m.id, m.name, m.links, m.number_of_views,
	COALESCE((
		SELECT p.name FROM music_performers mp
		JOIN performers p ON p.id = mp.performer_id
		WHERE mp.music_id = m.id
		ORDER BY p.id DESC
		LIMIT 1
	), '') AS artist
`

// MusicRepositoryImpl is the pgx-backed music store.
type MusicRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewMusicRepository creates a music repository.
func NewMusicRepository(db *pgxpool.Pool) MusicRepository {
	return &MusicRepositoryImpl{db: db}
}

// GetByID returns the music with the given ID.
func (r *MusicRepositoryImpl) GetByID(ctx context.Context, id int64) (*domain.Music, error) {
	query := `SELECT ` + musicColumns + ` FROM musics m WHERE m.id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// FetchAndCountView increments the view counter and returns the updated
// music in one statement, so concurrent fetches never lose a count.
func (r *MusicRepositoryImpl) FetchAndCountView(ctx context.Context, id int64) (*domain.Music, error) {
	query := `
		WITH bumped AS (
			UPDATE musics
			SET number_of_views = number_of_views + 1
			WHERE id = $1
			RETURNING id, name, links, number_of_views
		)
		SELECT ` + musicColumns + ` FROM bumped m
	`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// ListLikedBy returns the musics liked by a profile.
func (r *MusicRepositoryImpl) ListLikedBy(ctx context.Context, profileID int64) ([]*domain.Music, error) {
	query := `
		SELECT ` + musicColumns + `
		FROM musics m
		JOIN music_likes ml ON ml.music_id = m.id
		WHERE ml.profile_id = $1
	`
	return r.list(ctx, query, profileID)
}

// Like adds the profile to the music's liked-by set. Re-liking is a no-op
// (set semantics).
func (r *MusicRepositoryImpl) Like(ctx context.Context, musicID, profileID int64) error {
	query := `
		INSERT INTO music_likes (music_id, profile_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, musicID, profileID)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return domain.ErrMusicNotFound
	}
	return err
}

// Unlike removes the profile from the music's liked-by set.
func (r *MusicRepositoryImpl) Unlike(ctx context.Context, musicID, profileID int64) error {
	query := `DELETE FROM music_likes WHERE music_id = $1 AND profile_id = $2`
	_, err := r.db.Exec(ctx, query, musicID, profileID)
	return err
}

// ListByPlaylist returns the musics contained in a playlist.
func (r *MusicRepositoryImpl) ListByPlaylist(ctx context.Context, playlistID int64) ([]*domain.Music, error) {
	query := `
		SELECT ` + musicColumns + `
		FROM musics m
		JOIN playlist_musics pm ON pm.music_id = m.id
		WHERE pm.playlist_id = $1
	`
	return r.list(ctx, query, playlistID)
}

// ListByAlbum returns the musics of an album.
func (r *MusicRepositoryImpl) ListByAlbum(ctx context.Context, albumID int64) ([]*domain.Music, error) {
	query := `SELECT ` + musicColumns + ` FROM musics m WHERE m.album_id = $1`
	return r.list(ctx, query, albumID)
}

// ListByGenre returns the musics filed under a genre name.
func (r *MusicRepositoryImpl) ListByGenre(ctx context.Context, genreName string) ([]*domain.Music, error) {
	query := `
		SELECT ` + musicColumns + `
		FROM musics m
		JOIN genres g ON g.id = m.genre_id
		WHERE g.genre_name = $1
	`
	return r.list(ctx, query, genreName)
}

// Search returns musics whose name contains the query, case-insensitively.
func (r *MusicRepositoryImpl) Search(ctx context.Context, query string) ([]*domain.Music, error) {
	sql := `SELECT ` + musicColumns + ` FROM musics m WHERE m.name ILIKE '%' || $1 || '%'`
	return r.list(ctx, sql, escapeLike(query))
}

func (r *MusicRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]*domain.Music, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var musics []*domain.Music
	for rows.Next() {
		var m domain.Music
		if err := rows.Scan(&m.ID, &m.Name, &m.Links, &m.NumberOfViews, &m.ArtistName); err != nil {
			return nil, err
		}
		musics = append(musics, &m)
	}
	return musics, rows.Err()
}

func (r *MusicRepositoryImpl) scanOne(row pgx.Row) (*domain.Music, error) {
	var m domain.Music
	err := row.Scan(&m.ID, &m.Name, &m.Links, &m.NumberOfViews, &m.ArtistName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrMusicNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}
