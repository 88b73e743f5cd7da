package http

import (
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/otakudev/anicat/internal/auth"
	"github.com/otakudev/anicat/internal/domain"
)

// @Summary Register a new account
// @Tags security
// @Accept json
// @Produce json
// @Param payload body RegisterRequest true "Account to create"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /api/register [post]
func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !a.allowAttempt(r, "register") {
		a.respond(ctx, w, r, http.StatusTooManyRequests, ErrorResponse{Error: "too many requests"})
		return
	}

	req, err := decode[RegisterRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	if err := a.validate.Struct(req); err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: validationMessage(err)})
		return
	}

	user, err := a.Accounts.Register(ctx, domain.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			a.respond(ctx, w, r, http.StatusConflict, ErrorResponse{Error: "username or email already taken"})
			return
		}
		a.renderDomainError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusCreated, RegisterResponse{
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}

// @Summary Log in with email and password
// @Tags security
// @Accept json
// @Produce json
// @Param payload body LoginRequest true "Credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} MessageResponse
// @Failure 429 {object} ErrorResponse
// @Router /api/login [post]
func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !a.allowAttempt(r, "login") {
		a.respond(ctx, w, r, http.StatusTooManyRequests, ErrorResponse{Error: "too many requests"})
		return
	}

	req, err := decode[LoginRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	if err := a.validate.Struct(req); err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: validationMessage(err)})
		return
	}

	pair, err := a.Sessions.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			a.respond(ctx, w, r, http.StatusUnauthorized, MessageResponse{Message: "invalid credentials"})
			return
		}
		a.Logger.ErrorContext(ctx, "login failed", "err", err.Error())
		a.respond(ctx, w, r, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	a.respond(ctx, w, r, http.StatusOK, TokenResponse{
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// @Summary Exchange a refresh token for a new token pair
// @Tags security
// @Accept json
// @Produce json
// @Param payload body RefreshRequest true "Current refresh token"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} MessageResponse
// @Router /api/refresh_token [post]
func (a *API) handleRefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := decode[RefreshRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	if err := a.validate.Struct(req); err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: validationMessage(err)})
		return
	}

	pair, err := a.Sessions.Refresh(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrRefreshTokenUnknown) || errors.Is(err, auth.ErrRefreshTokenExpired) ||
			errors.Is(err, auth.ErrUserNotFound) {
			a.respond(ctx, w, r, http.StatusUnauthorized, MessageResponse{Message: err.Error()})
			return
		}
		a.Logger.ErrorContext(ctx, "refresh failed", "err", err.Error())
		a.respond(ctx, w, r, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	a.respond(ctx, w, r, http.StatusOK, TokenResponse{
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// @Summary Log out and revoke the stored session
// @Tags security
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResponse
// @Failure 401 {object} MessageResponse
// @Router /api/logout [get]
func (a *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	principal, ok := auth.PrincipalFromContext(ctx)
	if !ok {
		a.respond(ctx, w, r, http.StatusUnauthorized, MessageResponse{Message: "authentication required"})
		return
	}

	if a.Sessions != nil {
		if err := a.Sessions.Logout(ctx, principal.Username); err != nil {
			a.Logger.ErrorContext(ctx, "logout failed", "username", principal.Username, "err", err.Error())
			a.respond(ctx, w, r, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
			return
		}
	}

	a.respond(ctx, w, r, http.StatusOK, MessageResponse{Message: "user disconnected"})
}

// allowAttempt applies the login/register rate limit keyed by client
// IP. With no limiter configured everything passes.
func (a *API) allowAttempt(r *http.Request, action string) bool {
	if a.LoginLimiter == nil {
		return true
	}
	return a.LoginLimiter.Allow(r.Context(), action+":"+a.clientIP(r))
}

// clientIP keys the rate limiter. X-Forwarded-For is attacker-supplied
// on a directly exposed service, so it is honored only when the
// deployment declares a trusted proxy in front.
func (a *API) clientIP(r *http.Request) string {
	if a.TrustProxy {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			if ip, _, ok := strings.Cut(fwd, ","); ok {
				return strings.TrimSpace(ip)
			}
			return strings.TrimSpace(fwd)
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
