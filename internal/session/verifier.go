// Package session resolves the current user from backend-issued session
// tokens. The front end never issues tokens; it only verifies the ones the
// backend's auth flow stored in the session cookie.
package session

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/pvidigal/agromarket/internal/platform/errors"
)

// verifierEnv holds raw env values before post-parse validation.
type verifierEnv struct {
	Issuer    string `env:"AGROMARKET_SESSION_ISSUER"`
	Audience  string `env:"AGROMARKET_SESSION_AUDIENCE"`
	PublicKey string `env:"AGROMARKET_SESSION_PUBLIC_KEY"`
}

// Config defines how session tokens are verified.
type Config struct {
	Issuer   string
	Audience string
	Key      ed25519.PublicKey
	Now      func() time.Time
}

// Identity captures the validated subject of a session token.
type Identity struct {
	UserID    string
	ExpiresAt time.Time
}

// LoadConfigFromEnv reads session verification configuration.
func LoadConfigFromEnv(now func() time.Time) (Config, error) {
	var raw verifierEnv
	if err := env.Parse(&raw); err != nil {
		return Config{}, fmt.Errorf("parse session env: %w", err)
	}
	issuer := strings.TrimSpace(raw.Issuer)
	audience := strings.TrimSpace(raw.Audience)
	publicKey := strings.TrimSpace(raw.PublicKey)
	if issuer == "" {
		return Config{}, fmt.Errorf("AGROMARKET_SESSION_ISSUER is required")
	}
	if audience == "" {
		return Config{}, fmt.Errorf("AGROMARKET_SESSION_AUDIENCE is required")
	}
	if publicKey == "" {
		return Config{}, fmt.Errorf("AGROMARKET_SESSION_PUBLIC_KEY is required")
	}
	keyBytes, err := decodeBase64(publicKey)
	if err != nil {
		return Config{}, fmt.Errorf("decode session public key: %w", err)
	}
	if len(keyBytes) != ed25519.PublicKeySize {
		return Config{}, fmt.Errorf("session public key must be %d bytes", ed25519.PublicKeySize)
	}
	if now == nil {
		now = time.Now
	}
	return Config{
		Issuer:   issuer,
		Audience: audience,
		Key:      ed25519.PublicKey(keyBytes),
		Now:      now,
	}, nil
}

// Verifier validates session tokens and extracts the user identity.
type Verifier struct {
	cfg Config
}

// NewVerifier creates a verifier from config.
func NewVerifier(cfg Config) (*Verifier, error) {
	if cfg.Issuer == "" || cfg.Audience == "" || len(cfg.Key) != ed25519.PublicKeySize {
		return nil, errors.New("session verifier is not configured")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Verifier{cfg: cfg}, nil
}

// Verify validates token and returns the identity it carries. Every failure
// maps to an unauthorized typed error so callers prompt re-authentication
// rather than retrying.
func (v *Verifier) Verify(token string) (Identity, error) {
	if v == nil {
		return Identity{}, errors.New("session verifier is nil")
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return Identity{}, unauthorized("session token is required")
	}

	var parsed jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return v.cfg.Key, nil
	},
		jwt.WithValidMethods([]string{"EdDSA"}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return Identity{}, unauthorized("session token is invalid")
	}

	if parsed.Issuer == "" || parsed.Issuer != v.cfg.Issuer {
		return Identity{}, unauthorized("session token issuer mismatch")
	}
	if !audienceContains(parsed.Audience, v.cfg.Audience) {
		return Identity{}, unauthorized("session token audience mismatch")
	}
	if strings.TrimSpace(parsed.Subject) == "" {
		return Identity{}, unauthorized("session token subject is required")
	}
	if parsed.ExpiresAt == nil {
		return Identity{}, unauthorized("session token exp is required")
	}

	now := v.cfg.Now().UTC()
	exp := parsed.ExpiresAt.Time.UTC()
	if !exp.After(now) {
		return Identity{}, unauthorized("session token is expired")
	}
	if parsed.NotBefore != nil && now.Before(parsed.NotBefore.Time.UTC()) {
		return Identity{}, unauthorized("session token not active yet")
	}

	return Identity{
		UserID:    strings.TrimSpace(parsed.Subject),
		ExpiresAt: exp,
	}, nil
}

func unauthorized(message string) error {
	return apperrors.EK(apperrors.KindUnauthorized, "error.auth.required", message)
}

func audienceContains(audience jwt.ClaimStrings, want string) bool {
	for _, entry := range audience {
		if entry == want {
			return true
		}
	}
	return false
}

func decodeBase64(value string) ([]byte, error) {
	if decoded, err := base64.StdEncoding.DecodeString(value); err == nil {
		return decoded, nil
	}
	return base64.RawStdEncoding.DecodeString(value)
}
