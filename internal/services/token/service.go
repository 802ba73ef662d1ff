package token

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mcoot/partycards-go/internal/dependencies/clock"
	"github.com/mcoot/partycards-go/internal/model"
)

// claims is the JWT claims payload carried by player tokens
type claims struct {
	jwt.RegisteredClaims
	PlayerID string `json:"playerId"`
}

// Service issues and verifies player identity tokens.
// A token binds a PlayerID to the bearer; it carries no other identity.
type Service struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
	logger *slog.Logger
}

// Config holds configuration for the token service
type Config struct {
	// Secret is the HMAC signing key
	Secret string
	// TTL is the token lifetime
	TTL time.Duration
}

// DefaultConfig returns default token configuration
func DefaultConfig() Config {
	return Config{
		TTL: 24 * time.Hour,
	}
}

// New creates a new token service
func New(cfg Config, clock clock.Clock, logger *slog.Logger) *Service {
	if cfg.TTL == 0 {
		cfg.TTL = DefaultConfig().TTL
	}
	return &Service{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TTL,
		clock:  clock,
		logger: logger,
	}
}

// Issue mints a signed token carrying the given player identity
func (s *Service) Issue(playerID model.PlayerID) (string, error) {
	now := s.clock.Now()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		PlayerID: string(playerID),
	})

	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify decodes a raw credential and returns the player identity it
// carries. The credential may be a bare token or an Authorization header
// value with a Bearer prefix. Every decode failure maps to
// model.ErrBadToken; the underlying cause is logged, never surfaced.
func (s *Service) Verify(raw string) (model.PlayerID, error) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "Bearer "))
	if trimmed == "" {
		return "", model.ErrBadToken
	}

	var parsed claims
	_, err := jwt.ParseWithClaims(trimmed, &parsed, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		s.logger.Warn("bad token",
			slog.String("token", raw),
			slog.String("error", err.Error()),
		)
		return "", model.ErrBadToken
	}

	if parsed.PlayerID == "" {
		s.logger.Warn("token missing playerId claim", slog.String("token", raw))
		return "", model.ErrBadToken
	}

	return model.PlayerID(parsed.PlayerID), nil
}
