package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jamstream/server/internal/domain"
)

// ProfileRepositoryImpl is the pgx-backed profile store.
type ProfileRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a profile repository.
func NewProfileRepository(db *pgxpool.Pool) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

// Create inserts a profile and fills in its generated ID. Unique
// violations are mapped to ErrUsernameTaken / ErrEmailTaken.
func (r *ProfileRepositoryImpl) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (username, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		profile.Username,
		profile.Email,
		profile.PasswordHash,
		profile.CreatedAt,
	).Scan(&profile.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return domain.ErrEmailTaken
			}
			return domain.ErrUsernameTaken
		}
		return err
	}
	return nil
}

// GetByID returns the profile with the given ID.
func (r *ProfileRepositoryImpl) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	query := `
		SELECT id, username, email, password_hash, created_at
		FROM profiles
		WHERE id = $1
	`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// GetByUsername returns the profile with the given username.
func (r *ProfileRepositoryImpl) GetByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	query := `
		SELECT id, username, email, password_hash, created_at
		FROM profiles
		WHERE username = $1
	`
	return r.scanOne(r.db.QueryRow(ctx, query, username))
}

// Search returns profiles whose username contains the query,
// case-insensitively.
func (r *ProfileRepositoryImpl) Search(ctx context.Context, query string) ([]*domain.Profile, error) {
	sql := `
		SELECT id, username, email, password_hash, created_at
		FROM profiles
		WHERE username ILIKE '%' || $1 || '%'
	`
	rows, err := r.db.Query(ctx, sql, escapeLike(query))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*domain.Profile
	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(&p.ID, &p.Username, &p.Email, &p.PasswordHash, &p.CreatedAt); err != nil {
			return nil, err
		}
		profiles = append(profiles, &p)
	}
	return profiles, rows.Err()
}

func (r *ProfileRepositoryImpl) scanOne(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(&p.ID, &p.Username, &p.Email, &p.PasswordHash, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
