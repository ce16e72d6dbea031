package service

import (
	"context"
	"errors"

	"github.com/jamstream/server/internal/domain"
	"github.com/jamstream/server/internal/repository"
	"github.com/jamstream/server/pkg/crypto"
	"github.com/jamstream/server/pkg/jwt"
)

// AuthService verifies credentials and issues access tokens.
type AuthService struct {
	profiles repository.ProfileRepository
	hasher   *crypto.PasswordHasher
	tokens   *jwt.Manager
}

// NewAuthService creates an auth service.
func NewAuthService(profiles repository.ProfileRepository, hasher *crypto.PasswordHasher, tokens *jwt.Manager) *AuthService {
	return &AuthService{
		profiles: profiles,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// Login checks the credentials and returns a signed access token.
// Unknown usernames and wrong passwords are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	profile, err := s.profiles.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return "", domain.ErrInvalidCredential
		}
		return "", err
	}

	match, err := s.hasher.Verify(password, profile.PasswordHash)
	if err != nil || !match {
		return "", domain.ErrInvalidCredential
	}

	return s.tokens.GenerateToken(profile.ID, profile.Username)
}
