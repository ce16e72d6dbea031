package service

import (
	"context"
	"time"

	"github.com/jamstream/server/internal/domain"
	"github.com/jamstream/server/internal/repository"
)

// PlaylistService handles playlist mutations and listings.
type PlaylistService struct {
	playlists repository.PlaylistRepository
	musics    repository.MusicRepository
}

// NewPlaylistService creates a playlist service.
func NewPlaylistService(playlists repository.PlaylistRepository, musics repository.MusicRepository) *PlaylistService {
	return &PlaylistService{
		playlists: playlists,
		musics:    musics,
	}
}

// Create validates and persists a playlist owned by the caller.
func (s *PlaylistService) Create(ctx context.Context, creatorID int64, creatorUsername, name, description string) (*domain.Playlist, error) {
	playlist := &domain.Playlist{
		Name:            name,
		Description:     description,
		CreatorID:       creatorID,
		CreatorUsername: creatorUsername,
		CreatedAt:       time.Now(),
	}
	if err := playlist.Validate(); err != nil {
		return nil, err
	}
	if err := s.playlists.Create(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// Delete removes a playlist. Only the creator may delete it; ownership is
// decided by username equality and nothing changes on refusal.
func (s *PlaylistService) Delete(ctx context.Context, id int64, callerUsername string) error {
	playlist, err := s.playlists.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !playlist.OwnedBy(callerUsername) {
		return domain.ErrNotOwner
	}
	return s.playlists.Delete(ctx, id)
}

// SetFollow toggles the caller's membership in the playlist's follower
// set. Set semantics: repeating an action leaves the set unchanged.
func (s *PlaylistService) SetFollow(ctx context.Context, playlistID, profileID int64, action domain.FollowAction) error {
	if !action.Valid() {
		return domain.ErrInvalidAction
	}

	if _, err := s.playlists.GetByID(ctx, playlistID); err != nil {
		return err
	}

	if action == domain.ActionFollow {
		return s.playlists.Follow(ctx, playlistID, profileID)
	}
	return s.playlists.Unfollow(ctx, playlistID, profileID)
}

// AddMusic adds a music to a playlist's set. Both must exist.
func (s *PlaylistService) AddMusic(ctx context.Context, musicID, playlistID int64) error {
	if _, err := s.musics.GetByID(ctx, musicID); err != nil {
		return err
	}
	if _, err := s.playlists.GetByID(ctx, playlistID); err != nil {
		return err
	}
	return s.playlists.AddMusic(ctx, playlistID, musicID)
}

// Musics returns the musics of an existing playlist.
func (s *PlaylistService) Musics(ctx context.Context, playlistID int64) ([]*domain.Music, error) {
	return detailMusics(ctx,
		func(ctx context.Context) error {
			_, err := s.playlists.GetByID(ctx, playlistID)
			return err
		},
		func(ctx context.Context) ([]*domain.Music, error) {
			return s.musics.ListByPlaylist(ctx, playlistID)
		},
	)
}

// ListMine returns the caller's own playlists.
func (s *PlaylistService) ListMine(ctx context.Context, profileID int64) ([]*domain.Playlist, error) {
	return s.playlists.ListByCreator(ctx, profileID)
}

// ListFollowed returns the playlists the caller follows.
func (s *PlaylistService) ListFollowed(ctx context.Context, profileID int64) ([]*domain.Playlist, error) {
	return s.playlists.ListFollowedBy(ctx, profileID)
}
