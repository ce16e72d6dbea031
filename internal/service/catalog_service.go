package service

import (
	"context"

	"github.com/jamstream/server/internal/domain"
	"github.com/jamstream/server/internal/repository"
)

// topGenresLimit caps the unordered genre listing.
const topGenresLimit = 10

// CatalogService serves album/genre detail and listing reads.
type CatalogService struct {
	albums repository.AlbumRepository
	genres repository.GenreRepository
	musics repository.MusicRepository
}

// NewCatalogService creates a catalog service.
func NewCatalogService(albums repository.AlbumRepository, genres repository.GenreRepository, musics repository.MusicRepository) *CatalogService {
	return &CatalogService{
		albums: albums,
		genres: genres,
		musics: musics,
	}
}

// AlbumMusics returns the musics of an existing album.
func (s *CatalogService) AlbumMusics(ctx context.Context, albumID int64) ([]*domain.Music, error) {
	return detailMusics(ctx,
		func(ctx context.Context) error {
			_, err := s.albums.GetByID(ctx, albumID)
			return err
		},
		func(ctx context.Context) ([]*domain.Music, error) {
			return s.musics.ListByAlbum(ctx, albumID)
		},
	)
}

// GenreMusics returns the musics filed under an existing genre name.
func (s *CatalogService) GenreMusics(ctx context.Context, genreName string) ([]*domain.Music, error) {
	return detailMusics(ctx,
		func(ctx context.Context) error {
			_, err := s.genres.GetByName(ctx, genreName)
			return err
		},
		func(ctx context.Context) ([]*domain.Music, error) {
			return s.musics.ListByGenre(ctx, genreName)
		},
	)
}

// TopGenres returns the first genres in storage order; no ordering is
// guaranteed.
func (s *CatalogService) TopGenres(ctx context.Context) ([]*domain.Genre, error) {
	return s.genres.List(ctx, topGenresLimit)
}

// detailMusics is the shared lookup-then-list operation behind the
// playlist/album/genre detail endpoints: confirm the parent entity
// exists, then list its musics.
func detailMusics(
	ctx context.Context,
	lookup func(context.Context) error,
	list func(context.Context) ([]*domain.Music, error),
) ([]*domain.Music, error) {
	if err := lookup(ctx); err != nil {
		return nil, err
	}
	return list(ctx)
}
