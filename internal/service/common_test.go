package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jamstream/server/internal/domain"
	"github.com/jamstream/server/internal/geoip"
)

// MockProfileRepository mocks repository.ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) Search(ctx context.Context, query string) ([]*domain.Profile, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Profile), args.Error(1)
}

// MockMusicRepository mocks repository.MusicRepository.
type MockMusicRepository struct {
	mock.Mock
}

func (m *MockMusicRepository) GetByID(ctx context.Context, id int64) (*domain.Music, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Music), args.Error(1)
}

func (m *MockMusicRepository) FetchAndCountView(ctx context.Context, id int64) (*domain.Music, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Music), args.Error(1)
}

func (m *MockMusicRepository) ListLikedBy(ctx context.Context, profileID int64) ([]*domain.Music, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Music), args.Error(1)
}

func (m *MockMusicRepository) Like(ctx context.Context, musicID, profileID int64) error {
	args := m.Called(ctx, musicID, profileID)
	return args.Error(0)
}

func (m *MockMusicRepository) Unlike(ctx context.Context, musicID, profileID int64) error {
	args := m.Called(ctx, musicID, profileID)
	return args.Error(0)
}

func (m *MockMusicRepository) ListByPlaylist(ctx context.Context, playlistID int64) ([]*domain.Music, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Music), args.Error(1)
}

func (m *MockMusicRepository) ListByAlbum(ctx context.Context, albumID int64) ([]*domain.Music, error) {
	args := m.Called(ctx, albumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Music), args.Error(1)
}

func (m *MockMusicRepository) ListByGenre(ctx context.Context, genreName string) ([]*domain.Music, error) {
	args := m.Called(ctx, genreName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Music), args.Error(1)
}

func (m *MockMusicRepository) Search(ctx context.Context, query string) ([]*domain.Music, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Music), args.Error(1)
}

// MockPlaylistRepository mocks repository.PlaylistRepository.
type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) Create(ctx context.Context, playlist *domain.Playlist) error {
	args := m.Called(ctx, playlist)
	return args.Error(0)
}

func (m *MockPlaylistRepository) GetByID(ctx context.Context, id int64) (*domain.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlaylistRepository) ListByCreator(ctx context.Context, profileID int64) ([]*domain.Playlist, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) ListFollowedBy(ctx context.Context, profileID int64) ([]*domain.Playlist, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) Follow(ctx context.Context, playlistID, profileID int64) error {
	args := m.Called(ctx, playlistID, profileID)
	return args.Error(0)
}

func (m *MockPlaylistRepository) Unfollow(ctx context.Context, playlistID, profileID int64) error {
	args := m.Called(ctx, playlistID, profileID)
	return args.Error(0)
}

func (m *MockPlaylistRepository) AddMusic(ctx context.Context, playlistID, musicID int64) error {
	args := m.Called(ctx, playlistID, musicID)
	return args.Error(0)
}

func (m *MockPlaylistRepository) ListTop(ctx context.Context) ([]*domain.Playlist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) Search(ctx context.Context, query string) ([]*domain.Playlist, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Playlist), args.Error(1)
}

// MockAlbumRepository mocks repository.AlbumRepository.
type MockAlbumRepository struct {
	mock.Mock
}

func (m *MockAlbumRepository) GetByID(ctx context.Context, id int64) (*domain.Album, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Album), args.Error(1)
}

func (m *MockAlbumRepository) ListTop(ctx context.Context) ([]*domain.Album, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Album), args.Error(1)
}

func (m *MockAlbumRepository) Search(ctx context.Context, query string) ([]*domain.Album, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Album), args.Error(1)
}

// MockGenreRepository mocks repository.GenreRepository.
type MockGenreRepository struct {
	mock.Mock
}

func (m *MockGenreRepository) GetByName(ctx context.Context, genreName string) (*domain.Genre, error) {
	args := m.Called(ctx, genreName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Genre), args.Error(1)
}

func (m *MockGenreRepository) List(ctx context.Context, limit int) ([]*domain.Genre, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Genre), args.Error(1)
}

// MockChartRepository mocks repository.ChartRepository.
type MockChartRepository struct {
	mock.Mock
}

func (m *MockChartRepository) Search(ctx context.Context, query string) ([]*domain.Chart, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Chart), args.Error(1)
}

// MockPerformerRepository mocks repository.PerformerRepository.
type MockPerformerRepository struct {
	mock.Mock
}

func (m *MockPerformerRepository) Search(ctx context.Context, query string) ([]*domain.Performer, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Performer), args.Error(1)
}

// stubResolver maps addresses to fixed countries for gate tests.
type stubResolver struct {
	countries map[string]string
	err       error
}

func (r *stubResolver) Country(ip string) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	country, ok := r.countries[ip]
	if !ok {
		return "", geoip.ErrUnresolvable
	}
	return country, nil
}
