// Package jwt provides JWT token generation and validation.
package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jamstream/server/pkg/errors"
)

// Claims represents JWT claims carried by an access token.
type Claims struct {
	ProfileID int64  `json:"profile_id"`
	Username  string `json:"username"`
	jwt.RegisteredClaims
}

// Manager handles JWT operations.
type Manager struct {
	secret      []byte
	issuer      string
	tokenExpiry time.Duration
}

// Config holds JWT manager configuration.
type Config struct {
	Secret      string
	Issuer      string
	TokenExpiry time.Duration // Default: 24 hours
}

// NewManager creates a new JWT manager.
func NewManager(cfg *Config) *Manager {
	tokenExpiry := cfg.TokenExpiry
	if tokenExpiry == 0 {
		tokenExpiry = 24 * time.Hour
	}

	return &Manager{
		secret:      []byte(cfg.Secret),
		issuer:      cfg.Issuer,
		tokenExpiry: tokenExpiry,
	}
}

// GenerateToken generates a signed access token for a profile.
func (m *Manager) GenerateToken(profileID int64, username string) (string, error) {
	now := time.Now()
	claims := &Claims{
		ProfileID: profileID,
		Username:  username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   strconv.FormatInt(profileID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenExpiry)),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken parses and validates an access token and returns its claims.
func (m *Manager) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, errors.ErrTokenInvalid.WithError(err)
	}
	if !token.Valid {
		return nil, errors.ErrTokenInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.ErrTokenInvalid
	}
	return claims, nil
}

// GetExpiryTime returns the expiry time for access tokens.
func (m *Manager) GetExpiryTime() time.Duration {
	return m.tokenExpiry
}
