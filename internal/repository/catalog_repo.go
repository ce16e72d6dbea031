package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jamstream/server/internal/domain"
)

// albumColumns derives the album net value in SQL: the view sum of its
// musics.
const albumColumns = `
	a.id, a.name, a.description,
	COALESCE((
		SELECT SUM(m.number_of_views) FROM musics m WHERE m.album_id = a.id
	), 0) AS net_value
`

// AlbumRepositoryImpl is the pgx-backed album store.
type AlbumRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewAlbumRepository creates an album repository.
func NewAlbumRepository(db *pgxpool.Pool) AlbumRepository {
	return &AlbumRepositoryImpl{db: db}
}

// GetByID returns the album with the given ID.
func (r *AlbumRepositoryImpl) GetByID(ctx context.Context, id int64) (*domain.Album, error) {
	query := `SELECT ` + albumColumns + ` FROM albums a WHERE a.id = $1`
	var a domain.Album
	err := r.db.QueryRow(ctx, query, id).Scan(&a.ID, &a.Name, &a.Description, &a.NetValue)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAlbumNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListTop returns all albums ordered by net value, highest first.
func (r *AlbumRepositoryImpl) ListTop(ctx context.Context) ([]*domain.Album, error) {
	query := `SELECT ` + albumColumns + ` FROM albums a ORDER BY net_value DESC`
	return r.list(ctx, query)
}

// Search returns albums whose name or description contains the query,
// case-insensitively.
func (r *AlbumRepositoryImpl) Search(ctx context.Context, query string) ([]*domain.Album, error) {
	sql := `
		SELECT ` + albumColumns + `
		FROM albums a
		WHERE a.name ILIKE '%' || $1 || '%' OR a.description ILIKE '%' || $1 || '%'
	`
	return r.list(ctx, sql, escapeLike(query))
}

func (r *AlbumRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]*domain.Album, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var albums []*domain.Album
	for rows.Next() {
		var a domain.Album
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.NetValue); err != nil {
			return nil, err
		}
		albums = append(albums, &a)
	}
	return albums, rows.Err()
}

// GenreRepositoryImpl is the pgx-backed genre store.
type GenreRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewGenreRepository creates a genre repository.
func NewGenreRepository(db *pgxpool.Pool) GenreRepository {
	return &GenreRepositoryImpl{db: db}
}

// GetByName returns the genre with the given unique name.
func (r *GenreRepositoryImpl) GetByName(ctx context.Context, genreName string) (*domain.Genre, error) {
	query := `SELECT id, genre_name, description FROM genres WHERE genre_name = $1`
	var g domain.Genre
	err := r.db.QueryRow(ctx, query, genreName).Scan(&g.ID, &g.GenreName, &g.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrGenreNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// List returns up to limit genres in storage order.
func (r *GenreRepositoryImpl) List(ctx context.Context, limit int) ([]*domain.Genre, error) {
	query := `SELECT id, genre_name, description FROM genres LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var genres []*domain.Genre
	for rows.Next() {
		var g domain.Genre
		if err := rows.Scan(&g.ID, &g.GenreName, &g.Description); err != nil {
			return nil, err
		}
		genres = append(genres, &g)
	}
	return genres, rows.Err()
}

// ChartRepositoryImpl is the pgx-backed chart store.
type ChartRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewChartRepository creates a chart repository.
func NewChartRepository(db *pgxpool.Pool) ChartRepository {
	return &ChartRepositoryImpl{db: db}
}

// Search returns charts whose name or description contains the query,
// case-insensitively.
func (r *ChartRepositoryImpl) Search(ctx context.Context, query string) ([]*domain.Chart, error) {
	sql := `
		SELECT id, name, description
		FROM charts
		WHERE name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'
	`
	rows, err := r.db.Query(ctx, sql, escapeLike(query))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var charts []*domain.Chart
	for rows.Next() {
		var c domain.Chart
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		charts = append(charts, &c)
	}
	return charts, rows.Err()
}

// PerformerRepositoryImpl is the pgx-backed performer store.
type PerformerRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewPerformerRepository creates a performer repository.
func NewPerformerRepository(db *pgxpool.Pool) PerformerRepository {
	return &PerformerRepositoryImpl{db: db}
}

// Search returns performers whose name or description contains the query,
// case-insensitively.
func (r *PerformerRepositoryImpl) Search(ctx context.Context, query string) ([]*domain.Performer, error) {
	sql := `
		SELECT id, name, description
		FROM performers
		WHERE name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'
	`
	rows, err := r.db.Query(ctx, sql, escapeLike(query))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var performers []*domain.Performer
	for rows.Next() {
		var p domain.Performer
		if err := rows.Scan(&p.ID, &p.Name, &p.Description); err != nil {
			return nil, err
		}
		performers = append(performers, &p)
	}
	return performers, rows.Err()
}
