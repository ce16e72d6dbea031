package service

import (
	"context"
	"errors"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/jamstream/server/internal/domain"
	"github.com/jamstream/server/internal/repository"
)

// ErrQueryTooShort signals a query below the minimum length. The handler
// reports it as a soft rejection, not an error status.
var ErrQueryTooShort = errors.New("search query too short")

// SearchService fans a free-text query out to the six entity collections.
type SearchService struct {
	musics     repository.MusicRepository
	albums     repository.AlbumRepository
	playlists  repository.PlaylistRepository
	profiles   repository.ProfileRepository
	charts     repository.ChartRepository
	performers repository.PerformerRepository
}

// NewSearchService creates a search service.
func NewSearchService(
	musics repository.MusicRepository,
	albums repository.AlbumRepository,
	playlists repository.PlaylistRepository,
	profiles repository.ProfileRepository,
	charts repository.ChartRepository,
	performers repository.PerformerRepository,
) *SearchService {
	return &SearchService{
		musics:     musics,
		albums:     albums,
		playlists:  playlists,
		profiles:   profiles,
		charts:     charts,
		performers: performers,
	}
}

// Search runs the six collection queries concurrently and returns the
// combined envelope. Queries shorter than the minimum are rejected before
// any storage access.
func (s *SearchService) Search(ctx context.Context, query string) (*domain.SearchResult, error) {
	if utf8.RuneCountInString(query) < domain.MinSearchQueryLength {
		return nil, ErrQueryTooShort
	}

	result := &domain.SearchResult{Query: query}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		result.MusicResults, err = s.musics.Search(gctx, query)
		return err
	})
	g.Go(func() error {
		var err error
		result.AlbumResults, err = s.albums.Search(gctx, query)
		return err
	})
	g.Go(func() error {
		var err error
		result.PlaylistResults, err = s.playlists.Search(gctx, query)
		return err
	})
	g.Go(func() error {
		var err error
		result.UserResults, err = s.profiles.Search(gctx, query)
		return err
	})
	g.Go(func() error {
		var err error
		result.ChartResults, err = s.charts.Search(gctx, query)
		return err
	})
	g.Go(func() error {
		var err error
		result.PerformerResults, err = s.performers.Search(gctx, query)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Empty lists serialize as [], not null.
	if result.MusicResults == nil {
		result.MusicResults = []*domain.Music{}
	}
	if result.AlbumResults == nil {
		result.AlbumResults = []*domain.Album{}
	}
	if result.PlaylistResults == nil {
		result.PlaylistResults = []*domain.Playlist{}
	}
	if result.UserResults == nil {
		result.UserResults = []*domain.Profile{}
	}
	if result.ChartResults == nil {
		result.ChartResults = []*domain.Chart{}
	}
	if result.PerformerResults == nil {
		result.PerformerResults = []*domain.Performer{}
	}

	return result, nil
}
