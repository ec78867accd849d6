package session

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/pvidigal/agromarket/internal/platform/errors"
)

const (
	testIssuer   = "agromarket-auth"
	testAudience = "agromarket-web"
)

func testKeys(t *testing.T) (ed25519.PublicKey, ed25519.PrivateKey) {
	t.Helper()
	public, private, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return public, private
}

func signToken(t *testing.T, private ed25519.PrivateKey, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(private)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func validClaims(now time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Audience:  jwt.ClaimStrings{testAudience},
		Subject:   "u-42",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
}

func newTestVerifier(t *testing.T, public ed25519.PublicKey, now time.Time) *Verifier {
	t.Helper()
	verifier, err := NewVerifier(Config{
		Issuer:   testIssuer,
		Audience: testAudience,
		Key:      public,
		Now:      func() time.Time { return now },
	})
	if err != nil {
		t.Fatalf("NewVerifier error = %v", err)
	}
	return verifier
}

func TestVerifyValidToken(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	public, private := testKeys(t)
	verifier := newTestVerifier(t, public, now)

	identity, err := verifier.Verify(signToken(t, private, validClaims(now)))
	if err != nil {
		t.Fatalf("Verify error = %v", err)
	}
	if identity.UserID != "u-42" {
		t.Fatalf("UserID = %q, want %q", identity.UserID, "u-42")
	}
	if !identity.ExpiresAt.Equal(now.Add(time.Hour)) {
		t.Fatalf("ExpiresAt = %v", identity.ExpiresAt)
	}
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	public, private := testKeys(t)
	_, otherPrivate := testKeys(t)
	verifier := newTestVerifier(t, public, now)

	expired := validClaims(now)
	expired.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute))

	wrongIssuer := validClaims(now)
	wrongIssuer.Issuer = "someone-else"

	wrongAudience := validClaims(now)
	wrongAudience.Audience = jwt.ClaimStrings{"other-app"}

	missingSubject := validClaims(now)
	missingSubject.Subject = "  "

	notYetValid := validClaims(now)
	notYetValid.NotBefore = jwt.NewNumericDate(now.Add(time.Minute))

	missingExpiry := validClaims(now)
	missingExpiry.ExpiresAt = nil

	tests := []struct {
		name  string
		token string
	}{
		{name: "blank", token: "   "},
		{name: "garbage", token: "not-a-jwt"},
		{name: "wrong key", token: signToken(t, otherPrivate, validClaims(now))},
		{name: "expired", token: signToken(t, private, expired)},
		{name: "wrong issuer", token: signToken(t, private, wrongIssuer)},
		{name: "wrong audience", token: signToken(t, private, wrongAudience)},
		{name: "missing subject", token: signToken(t, private, missingSubject)},
		{name: "not yet valid", token: signToken(t, private, notYetValid)},
		{name: "missing expiry", token: signToken(t, private, missingExpiry)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := verifier.Verify(tc.token)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := apperrors.KindOf(err); got != apperrors.KindUnauthorized {
				t.Fatalf("KindOf = %s, want %s", got, apperrors.KindUnauthorized)
			}
		})
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	public, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	t.Setenv("AGROMARKET_SESSION_ISSUER", testIssuer)
	t.Setenv("AGROMARKET_SESSION_AUDIENCE", testAudience)
	t.Setenv("AGROMARKET_SESSION_PUBLIC_KEY", base64.StdEncoding.EncodeToString(public))

	cfg, err := LoadConfigFromEnv(nil)
	if err != nil {
		t.Fatalf("LoadConfigFromEnv error = %v", err)
	}
	if cfg.Issuer != testIssuer || cfg.Audience != testAudience {
		t.Fatalf("cfg = %+v", cfg)
	}
	if len(cfg.Key) != ed25519.PublicKeySize {
		t.Fatalf("key length = %d", len(cfg.Key))
	}
	if cfg.Now == nil {
		t.Fatal("Now defaulted to nil")
	}
}

func TestLoadConfigFromEnvMissingValues(t *testing.T) {
	t.Setenv("AGROMARKET_SESSION_ISSUER", "")
	t.Setenv("AGROMARKET_SESSION_AUDIENCE", "")
	t.Setenv("AGROMARKET_SESSION_PUBLIC_KEY", "")

	if _, err := LoadConfigFromEnv(nil); err == nil {
		t.Fatal("expected error for missing config")
	}
}

func TestNewVerifierRejectsIncompleteConfig(t *testing.T) {
	t.Parallel()

	if _, err := NewVerifier(Config{}); err == nil {
		t.Fatal("expected error for empty config")
	}
}
