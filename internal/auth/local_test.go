package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/otakudev/anicat/internal/domain"
)

func TestLocalAuthenticatorResolvesPrincipal(t *testing.T) {
	tokens := NewTokenService([]byte("test-secret"), "anicat", time.Hour)
	users := &stubUserRepo{users: map[string]domain.User{
		"rei": {
			ID:       1,
			Username: "rei",
			Email:    "rei@example.com",
			Roles:    []string{domain.RoleUser, domain.RoleAdmin},
		},
	}}
	authenticator := NewLocalAuthenticator(tokens, users)

	signed, err := tokens.Sign(users.users["rei"])
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	principal, err := authenticator.Authenticate(context.Background(), signed)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if principal.Username != "rei" {
		t.Fatalf("expected username rei, got %q", principal.Username)
	}
	if !principal.HasRole(domain.RoleAdmin) {
		t.Fatal("expected admin role on principal")
	}
}

func TestLocalAuthenticatorUnknownUser(t *testing.T) {
	tokens := NewTokenService([]byte("test-secret"), "anicat", time.Hour)
	users := &stubUserRepo{users: map[string]domain.User{}}
	authenticator := NewLocalAuthenticator(tokens, users)

	signed, err := tokens.Sign(domain.User{Username: "ghost"})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = authenticator.Authenticate(context.Background(), signed)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestLocalAuthenticatorGarbageToken(t *testing.T) {
	tokens := NewTokenService([]byte("test-secret"), "anicat", time.Hour)
	authenticator := NewLocalAuthenticator(tokens, &stubUserRepo{users: map[string]domain.User{}})

	_, err := authenticator.Authenticate(context.Background(), "not-a-jwt")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
