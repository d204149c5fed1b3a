package auth

import (
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mcoot/blackjack-go/internal/dependencies/clock"
	"github.com/mcoot/blackjack-go/internal/model"
)

// Verifier checks that a signature over a message was produced by the
// wallet behind an address. Implementations must treat addresses
// case-insensitively.
type Verifier interface {
	Verify(address, message, signature string) (bool, error)
}

// Config holds configuration for the auth service
type Config struct {
	// Secret signs and verifies issued tokens
	Secret []byte
	// TokenDuration is how long issued tokens stay valid
	TokenDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		TokenDuration: time.Hour,
	}
}

// Service verifies wallet signatures and issues/validates bearer tokens
type Service struct {
	verifier Verifier
	clock    clock.Clock
	cfg      Config
	logger   *slog.Logger
}

// New creates a new auth Service
func New(verifier Verifier, clock clock.Clock, cfg Config, logger *slog.Logger) *Service {
	if cfg.TokenDuration == 0 {
		cfg.TokenDuration = DefaultConfig().TokenDuration
	}
	return &Service{
		verifier: verifier,
		clock:    clock,
		cfg:      cfg,
		logger:   logger,
	}
}

// VerifyAndIssue checks a wallet signature over the client's challenge
// message and, on success, issues a signed bearer token whose subject is
// the canonical player ID. A failed or erroring verification is reported
// as model.ErrInvalidSignature and never retried.
func (s *Service) VerifyAndIssue(address, message, signature string) (string, error) {
	ok, err := s.verifier.Verify(address, message, signature)
	if err != nil {
		s.logger.Warn("signature verification errored",
			slog.String("address", address),
			slog.String("error", err.Error()),
		)
		return "", model.ErrInvalidSignature
	}
	if !ok {
		return "", model.ErrInvalidSignature
	}

	now := s.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   string(model.CanonicalPlayerID(address)),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenDuration)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.cfg.Secret)
	if err != nil {
		return "", err
	}

	s.logger.Info("token issued", slog.String("player", claims.Subject))
	return token, nil
}

// Validate checks a token's integrity and expiry, then compares its
// subject against the claimed player case-insensitively. Returns the
// canonical player ID from the token on success.
func (s *Service) Validate(token string, claimed model.PlayerID) (model.PlayerID, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(t *jwt.Token) (any, error) { return s.cfg.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", model.ErrTokenExpired
		}
		return "", model.ErrTokenInvalid
	}

	subject := model.CanonicalPlayerID(claims.Subject)
	if subject != model.CanonicalPlayerID(string(claimed)) {
		return "", model.ErrUnauthorized
	}
	return subject, nil
}
