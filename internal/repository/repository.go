package repository

import (
	"context"

	"github.com/jamstream/server/internal/domain"
)

// ProfileRepository stores registered profiles.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id int64) (*domain.Profile, error)
	GetByUsername(ctx context.Context, username string) (*domain.Profile, error)
	Search(ctx context.Context, query string) ([]*domain.Profile, error)
}

// MusicRepository stores musics and their like relations.
type MusicRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Music, error)
	// FetchAndCountView returns the music and atomically increments its
	// view counter in the same statement.
	FetchAndCountView(ctx context.Context, id int64) (*domain.Music, error)
	ListLikedBy(ctx context.Context, profileID int64) ([]*domain.Music, error)
	Like(ctx context.Context, musicID, profileID int64) error
	Unlike(ctx context.Context, musicID, profileID int64) error
	ListByPlaylist(ctx context.Context, playlistID int64) ([]*domain.Music, error)
	ListByAlbum(ctx context.Context, albumID int64) ([]*domain.Music, error)
	ListByGenre(ctx context.Context, genreName string) ([]*domain.Music, error)
	Search(ctx context.Context, query string) ([]*domain.Music, error)
}

// PlaylistRepository stores playlists, their musics and follower sets.
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *domain.Playlist) error
	GetByID(ctx context.Context, id int64) (*domain.Playlist, error)
	Delete(ctx context.Context, id int64) error
	ListByCreator(ctx context.Context, profileID int64) ([]*domain.Playlist, error)
	ListFollowedBy(ctx context.Context, profileID int64) ([]*domain.Playlist, error)
	Follow(ctx context.Context, playlistID, profileID int64) error
	Unfollow(ctx context.Context, playlistID, profileID int64) error
	AddMusic(ctx context.Context, playlistID, musicID int64) error
	ListTop(ctx context.Context) ([]*domain.Playlist, error)
	Search(ctx context.Context, query string) ([]*domain.Playlist, error)
}

// AlbumRepository stores albums.
type AlbumRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Album, error)
	ListTop(ctx context.Context) ([]*domain.Album, error)
	Search(ctx context.Context, query string) ([]*domain.Album, error)
}

// GenreRepository stores genres.
type GenreRepository interface {
	GetByName(ctx context.Context, genreName string) (*domain.Genre, error)
	List(ctx context.Context, limit int) ([]*domain.Genre, error)
}

// ChartRepository stores editorial charts.
type ChartRepository interface {
	Search(ctx context.Context, query string) ([]*domain.Chart, error)
}

// PerformerRepository stores performers.
type PerformerRepository interface {
	Search(ctx context.Context, query string) ([]*domain.Performer, error)
}
