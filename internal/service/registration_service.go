package service

import (
	"context"
	"errors"
	"time"

	"github.com/jamstream/server/internal/domain"
	"github.com/jamstream/server/internal/geoip"
	"github.com/jamstream/server/internal/repository"
	"github.com/jamstream/server/pkg/crypto"
)

// RegistrationService gates and performs profile registration.
type RegistrationService struct {
	profiles repository.ProfileRepository
	resolver geoip.Resolver
	hasher   *crypto.PasswordHasher
	allowed  map[string]struct{}
}

// NewRegistrationService creates a registration service. allowedCountries
// is the set of country names permitted to register.
func NewRegistrationService(
	profiles repository.ProfileRepository,
	resolver geoip.Resolver,
	hasher *crypto.PasswordHasher,
	allowedCountries []string,
) *RegistrationService {
	allowed := make(map[string]struct{}, len(allowedCountries))
	for _, c := range allowedCountries {
		allowed[c] = struct{}{}
	}
	return &RegistrationService{
		profiles: profiles,
		resolver: resolver,
		hasher:   hasher,
		allowed:  allowed,
	}
}

// CountryAllowed reports whether registration may proceed for a request
// from the given address. An empty address means the client IP could not
// be determined; no resolution is attempted and the request is denied.
func (s *RegistrationService) CountryAllowed(ip string) bool {
	if ip == "" {
		return false
	}
	country, err := s.resolver.Country(ip)
	if err != nil {
		return false
	}
	_, ok := s.allowed[country]
	return ok
}

// Register validates the form and persists a new profile. Field-level
// problems (including taken username/email) come back in the map; other
// errors are infrastructure failures.
func (s *RegistrationService) Register(ctx context.Context, form *domain.RegistrationForm) (*domain.Profile, map[string]string, error) {
	if fieldErrs := form.Validate(); len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	// Credentials are always hashed before storage; cleaned form fields
	// are never persisted directly.
	hash, err := s.hasher.Hash(form.Password1)
	if err != nil {
		return nil, nil, err
	}

	profile := &domain.Profile{
		Username:     form.Username,
		Email:        form.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := s.profiles.Create(ctx, profile); err != nil {
		switch {
		case errors.Is(err, domain.ErrUsernameTaken):
			return nil, map[string]string{"username": "username already taken"}, nil
		case errors.Is(err, domain.ErrEmailTaken):
			return nil, map[string]string{"email": "email already registered"}, nil
		default:
			return nil, nil, err
		}
	}

	return profile, nil, nil
}
