package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jamstream/server/internal/domain"
	"github.com/jamstream/server/internal/repository"
	"github.com/jamstream/server/pkg/logger"
	"github.com/jamstream/server/pkg/redis"
)

// rankingTTL bounds staleness of the cached listings between cron
// refreshes.
const rankingTTL = 10 * time.Minute

// RankingService serves the net-value-ordered playlist and album listings,
// caching them in Redis.
type RankingService struct {
	playlists repository.PlaylistRepository
	albums    repository.AlbumRepository
	cache     *redis.Client
	log       logger.Logger
}

// NewRankingService creates a ranking service. cache may be nil, in which
// case every read goes to the database.
func NewRankingService(
	playlists repository.PlaylistRepository,
	albums repository.AlbumRepository,
	cache *redis.Client,
	log logger.Logger,
) *RankingService {
	return &RankingService{
		playlists: playlists,
		albums:    albums,
		cache:     cache,
		log:       log,
	}
}

// TopPlaylists returns playlists ordered by net value descending.
func (s *RankingService) TopPlaylists(ctx context.Context) ([]*domain.Playlist, error) {
	var cached []*domain.Playlist
	if s.cacheGet(ctx, redis.TopPlaylistsKey(), &cached) {
		return cached, nil
	}

	playlists, err := s.playlists.ListTop(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, redis.TopPlaylistsKey(), playlists)
	return playlists, nil
}

// TopAlbums returns albums ordered by net value descending.
func (s *RankingService) TopAlbums(ctx context.Context) ([]*domain.Album, error) {
	var cached []*domain.Album
	if s.cacheGet(ctx, redis.TopAlbumsKey(), &cached) {
		return cached, nil
	}

	albums, err := s.albums.ListTop(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, redis.TopAlbumsKey(), albums)
	return albums, nil
}

// Refresh recomputes both rankings and rewrites the cache. Used by the
// scheduled refresh job.
func (s *RankingService) Refresh(ctx context.Context) error {
	playlists, err := s.playlists.ListTop(ctx)
	if err != nil {
		return err
	}
	s.cacheSet(ctx, redis.TopPlaylistsKey(), playlists)

	albums, err := s.albums.ListTop(ctx)
	if err != nil {
		return err
	}
	s.cacheSet(ctx, redis.TopAlbumsKey(), albums)

	return nil
}

// cacheGet loads a cached listing. Cache failures only disable the cache
// for this read; the database remains authoritative.
func (s *RankingService) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, redis.ErrKeyNotFound) {
			s.log.Warn("ranking cache read failed", logger.String("key", key), logger.Err(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		s.log.Warn("ranking cache entry corrupt", logger.String("key", key), logger.Err(err))
		return false
	}
	return true
}

func (s *RankingService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		s.log.Warn("ranking cache marshal failed", logger.String("key", key), logger.Err(err))
		return
	}
	if err := s.cache.Set(ctx, key, data, rankingTTL); err != nil {
		s.log.Warn("ranking cache write failed", logger.String("key", key), logger.Err(err))
	}
}
