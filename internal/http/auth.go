package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/otakudev/anicat/internal/auth"
)

const bearerPrefix = "Bearer "

// withAuth resolves the Authorization header into a request-scoped
// Principal. A request without the header continues anonymous; whether
// that is good enough is the route table's call.
func (a *API) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}

		if !strings.HasPrefix(header, bearerPrefix) {
			a.respond(ctx, w, r, http.StatusUnauthorized, MessageResponse{Message: "invalid authorization header"})
			return
		}

		principal, err := a.Authenticator.Authenticate(ctx, strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			if isCredentialError(err) {
				a.Logger.DebugContext(ctx, "token rejected", "err", err.Error())
				a.respond(ctx, w, r, http.StatusUnauthorized, MessageResponse{Message: err.Error()})
				return
			}
			// infrastructure fault, not a bad credential
			a.Logger.ErrorContext(ctx, "authentication failed", "err", err.Error())
			a.respond(ctx, w, r, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(ctx, principal)))
	})
}

// isCredentialError reports whether the authenticator declined the
// credential itself, as opposed to failing while checking it. Only
// credential failures surface their message in a 401 body.
func isCredentialError(err error) bool {
	return errors.Is(err, auth.ErrInvalidToken) ||
		errors.Is(err, auth.ErrTokenExpired) ||
		errors.Is(err, auth.ErrUserNotFound) ||
		errors.Is(err, auth.ErrIdentityMismatch)
}

// requireRole gates a handler on the central policy table. Anonymous
// callers get 401, authenticated callers without the role get 403.
func (a *API) requireRole(role string, next http.HandlerFunc) http.HandlerFunc {
	if role == "" {
		return next
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		principal, ok := auth.PrincipalFromContext(ctx)
		if !ok {
			a.respond(ctx, w, r, http.StatusUnauthorized, MessageResponse{Message: "authentication required"})
			return
		}

		if !principal.HasRole(role) {
			a.Logger.InfoContext(ctx, "access denied",
				"username", principal.Username, "required_role", role)
			a.respond(ctx, w, r, http.StatusForbidden, MessageResponse{Message: "access denied"})
			return
		}

		next(w, r)
	}
}
