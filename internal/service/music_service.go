package service

import (
	"context"

	"github.com/jamstream/server/internal/domain"
	"github.com/jamstream/server/internal/repository"
)

// MusicService handles music reads and like toggles.
type MusicService struct {
	musics repository.MusicRepository
}

// NewMusicService creates a music service.
func NewMusicService(musics repository.MusicRepository) *MusicService {
	return &MusicService{musics: musics}
}

// GetMusic returns a music by ID. The fetch counts as a view: the counter
// is incremented atomically with the read.
func (s *MusicService) GetMusic(ctx context.Context, id int64) (*domain.Music, error) {
	return s.musics.FetchAndCountView(ctx, id)
}

// ListLiked returns the musics liked by the caller.
func (s *MusicService) ListLiked(ctx context.Context, profileID int64) ([]*domain.Music, error) {
	return s.musics.ListLikedBy(ctx, profileID)
}

// SetLike toggles the caller's membership in the music's liked-by set.
// Toggles have set semantics: repeating an action leaves the set
// unchanged. A missing music is reported as ErrMusicNotFound; any other
// failure propagates unmasked.
func (s *MusicService) SetLike(ctx context.Context, musicID, profileID int64, action domain.LikeAction) error {
	if !action.Valid() {
		return domain.ErrInvalidAction
	}

	if _, err := s.musics.GetByID(ctx, musicID); err != nil {
		return err
	}

	if action == domain.ActionLike {
		return s.musics.Like(ctx, musicID, profileID)
	}
	return s.musics.Unlike(ctx, musicID, profileID)
}
