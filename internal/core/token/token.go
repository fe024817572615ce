// Package token issues and verifies the stateless bearer tokens the API uses
// for authentication. Tokens are HS256 JWTs carrying the account id as the
// subject; validity is purely a function of signature and expiry, recomputed
// on every request. Nothing is stored server-side.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hop4deals/deals-api/internal/core/domain"
)

// DefaultTTL is the token lifetime when none is configured.
const DefaultTTL = 7 * 24 * time.Hour

// Config holds the immutable signing parameters. Construct once at startup
// and pass into NewManager; tests construct their own with distinct keys.
type Config struct {
	Secret string
	TTL    time.Duration
}

// Manager issues and verifies tokens. Safe for concurrent use: all state is
// immutable after construction.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager builds a Manager from cfg. An empty secret is a configuration
// error: refusing it here is what makes a missing JWT_SECRET fatal at startup
// instead of a source of forgeable tokens at request time.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.Secret == "" {
		return nil, errors.New("token: signing secret must not be empty")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{secret: []byte(cfg.Secret), ttl: ttl}, nil
}

// Issue mints a signed token for accountID, expiring TTL from now.
func (m *Manager) Issue(accountID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   accountID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded account id.
// Failures map to the distinct domain token errors so callers can log the
// kind while still answering the client uniformly.
func (m *Manager) Verify(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", domain.ErrTokenSignatureInvalid
		default:
			return "", domain.ErrTokenMalformed
		}
	}
	if !tkn.Valid || claims.Subject == "" {
		return "", domain.ErrTokenMalformed
	}
	return claims.Subject, nil
}

// TTL reports the configured token lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
