package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MicahParks/jwkset"
	"github.com/golang-jwt/jwt/v5"
	"github.com/otakudev/anicat/internal/domain"
)

type staticKeyfunc struct {
	secret []byte
}

func (s staticKeyfunc) Keyfunc(_ *jwt.Token) (any, error) {
	return s.secret, nil
}

func (s staticKeyfunc) KeyfuncCtx(_ context.Context) jwt.Keyfunc {
	return s.Keyfunc
}

func (s staticKeyfunc) Storage() jwkset.Storage {
	return nil
}

func (s staticKeyfunc) VerificationKeySet(_ context.Context) (jwt.VerificationKeySet, error) {
	return jwt.VerificationKeySet{}, nil
}

func signExternalToken(t *testing.T, claims jwt.MapClaims, secret []byte) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	return signed
}

func externalClaims(issuer, audience, username string) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"iss":      issuer,
		"sub":      username,
		"aud":      audience,
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(time.Hour).Unix(),
	}
}

func newJWKSAuthenticator(users domain.UserRepository) *jwksAuthenticator {
	return &jwksAuthenticator{
		issuer:   "http://sso.local/realms/anicat",
		audience: "anicat-api",
		jwks:     staticKeyfunc{secret: []byte("test-secret")},
		users:    users,
	}
}

func TestJWKSAuthenticatorResolvesPrincipal(t *testing.T) {
	users := &stubUserRepo{users: map[string]domain.User{
		"rei": {Username: "rei", Email: "rei@example.com", Roles: []string{domain.RoleUser}},
	}}
	authenticator := newJWKSAuthenticator(users)

	token := signExternalToken(t,
		externalClaims("http://sso.local/realms/anicat", "anicat-api", "rei"),
		[]byte("test-secret"))

	principal, err := authenticator.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if principal.Username != "rei" {
		t.Fatalf("expected username rei, got %q", principal.Username)
	}
}

func TestJWKSAuthenticatorRejectsWrongIssuer(t *testing.T) {
	users := &stubUserRepo{users: map[string]domain.User{
		"rei": {Username: "rei"},
	}}
	authenticator := newJWKSAuthenticator(users)

	token := signExternalToken(t,
		externalClaims("http://evil.local", "anicat-api", "rei"),
		[]byte("test-secret"))

	_, err := authenticator.Authenticate(context.Background(), token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWKSAuthenticatorRejectsWrongAudience(t *testing.T) {
	users := &stubUserRepo{users: map[string]domain.User{
		"rei": {Username: "rei"},
	}}
	authenticator := newJWKSAuthenticator(users)

	token := signExternalToken(t,
		externalClaims("http://sso.local/realms/anicat", "other-api", "rei"),
		[]byte("test-secret"))

	_, err := authenticator.Authenticate(context.Background(), token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWKSAuthenticatorUnknownAccount(t *testing.T) {
	authenticator := newJWKSAuthenticator(&stubUserRepo{users: map[string]domain.User{}})

	token := signExternalToken(t,
		externalClaims("http://sso.local/realms/anicat", "anicat-api", "ghost"),
		[]byte("test-secret"))

	_, err := authenticator.Authenticate(context.Background(), token)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
