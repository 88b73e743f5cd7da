package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/otakudev/anicat/internal/auth"
	"github.com/otakudev/anicat/internal/domain"
)

type stubAuthenticator struct {
	principals map[string]auth.Principal
}

func (s stubAuthenticator) Authenticate(_ context.Context, token string) (auth.Principal, error) {
	principal, ok := s.principals[token]
	if !ok {
		return auth.Principal{}, auth.ErrInvalidToken
	}
	return principal, nil
}

func testPrincipals() map[string]auth.Principal {
	return map[string]auth.Principal{
		"user-token": {
			Username: "toto",
			Email:    "toto@example.com",
			Roles:    []string{domain.RoleUser},
		},
		"admin-token": {
			Username: "root",
			Email:    "root@example.com",
			Roles:    []string{domain.RoleUser, domain.RoleAdmin},
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp MessageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode message body: %v", err)
	}
	return resp.Message
}

func TestWithAuthAnonymousPassesThrough(t *testing.T) {
	api := &API{Logger: discardLogger(), Authenticator: stubAuthenticator{}}
	called := false
	handler := api.withAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if _, ok := auth.PrincipalFromContext(r.Context()); ok {
			t.Fatal("expected no principal on anonymous request")
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/animes", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !called {
		t.Fatal("expected downstream handler to be called")
	}
}

func TestWithAuthRejectsMalformedScheme(t *testing.T) {
	api := &API{Logger: discardLogger(), Authenticator: stubAuthenticator{principals: testPrincipals()}}
	handler := api.withAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/animes", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "invalid authorization header" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestWithAuthRejectsInvalidToken(t *testing.T) {
	api := &API{Logger: discardLogger(), Authenticator: stubAuthenticator{principals: testPrincipals()}}
	handler := api.withAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/animes", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != auth.ErrInvalidToken.Error() {
		t.Fatalf("unexpected message %q", msg)
	}
}

type failingAuthenticator struct {
	err error
}

func (f failingAuthenticator) Authenticate(context.Context, string) (auth.Principal, error) {
	return auth.Principal{}, f.err
}

func TestWithAuthHidesInfrastructureFailures(t *testing.T) {
	lookupErr := fmt.Errorf("find user %q: %w", "toto", errors.New("connection refused to 10.0.0.5:5432"))
	api := &API{Logger: discardLogger(), Authenticator: failingAuthenticator{err: lookupErr}}
	handler := api.withAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/animes", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if resp.Error != "internal server error" {
		t.Fatalf("unexpected error body %q", resp.Error)
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Fatalf("response leaks internal detail: %s", rec.Body.String())
	}
}

func TestWithAuthExpiredTokenStays401(t *testing.T) {
	api := &API{Logger: discardLogger(), Authenticator: failingAuthenticator{err: auth.ErrTokenExpired}}
	handler := api.withAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/animes", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != auth.ErrTokenExpired.Error() {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestWithAuthStoresPrincipal(t *testing.T) {
	api := &API{Logger: discardLogger(), Authenticator: stubAuthenticator{principals: testPrincipals()}}
	handler := api.withAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := auth.PrincipalFromContext(r.Context())
		if !ok {
			t.Fatal("expected principal in context")
		}
		if principal.Username != "toto" {
			t.Fatalf("unexpected principal %q", principal.Username)
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/animes", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestRequireRoleAnonymous(t *testing.T) {
	api := &API{Logger: discardLogger()}
	handler := api.requireRole(domain.RoleUser, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/animes", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "authentication required" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestRequireRoleMissingRole(t *testing.T) {
	api := &API{Logger: discardLogger()}
	handler := api.requireRole(domain.RoleAdmin, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	req := httptest.NewRequest(http.MethodPost, "/api/animes", nil)
	ctx := auth.WithPrincipal(req.Context(), auth.Principal{
		Username: "toto",
		Roles:    []string{domain.RoleUser},
	})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req.WithContext(ctx))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "access denied" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestRequireRoleAllows(t *testing.T) {
	api := &API{Logger: discardLogger()}
	handler := api.requireRole(domain.RoleAdmin, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/animes", nil)
	ctx := auth.WithPrincipal(req.Context(), auth.Principal{
		Username: "root",
		Roles:    []string{domain.RoleUser, domain.RoleAdmin},
	})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req.WithContext(ctx))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestRequireRoleEmptyIsPublic(t *testing.T) {
	api := &API{Logger: discardLogger()}
	handler := api.requireRole("", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
