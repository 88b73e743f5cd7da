package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/otakudev/anicat/internal/domain"
)

func testUser() domain.User {
	return domain.User{
		ID:       1,
		Username: "rei",
		Email:    "rei@example.com",
		Roles:    []string{domain.RoleUser},
	}
}

func TestTokenServiceRoundTrip(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), "anicat", time.Hour)

	signed, err := svc.Sign(testUser())
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := svc.Validate(signed)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Username != "rei" {
		t.Fatalf("expected username rei, got %q", claims.Username)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != domain.RoleUser {
		t.Fatalf("unexpected roles: %v", claims.Roles)
	}
	if claims.Issuer != "anicat" {
		t.Fatalf("expected issuer anicat, got %q", claims.Issuer)
	}
}

func TestTokenServiceRejectsExpiredToken(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), "anicat", -time.Hour)

	signed, err := svc.Sign(testUser())
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = svc.Validate(signed)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenServiceRejectsWrongSecret(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), "anicat", time.Hour)
	other := NewTokenService([]byte("other-secret"), "anicat", time.Hour)

	signed, err := other.Sign(testUser())
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = svc.Validate(signed)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenServiceRejectsUnsignedAlg(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), "anicat", time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"username": "rei",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = svc.Validate(signed)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestNewRefreshTokenIsUnique(t *testing.T) {
	first, err := NewRefreshToken()
	if err != nil {
		t.Fatalf("first token: %v", err)
	}
	second, err := NewRefreshToken()
	if err != nil {
		t.Fatalf("second token: %v", err)
	}

	if first == second {
		t.Fatal("expected distinct refresh tokens")
	}
	if len(first) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(first))
	}
}
