package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/otakudev/anicat/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// SessionService issues token pairs on login, rotates them on refresh
// and revokes the stored session on logout.
type SessionService struct {
	tokens     *TokenService
	users      domain.UserRepository
	sessions   domain.RefreshTokenRepository
	refreshTTL time.Duration
}

func NewSessionService(
	tokens *TokenService,
	users domain.UserRepository,
	sessions domain.RefreshTokenRepository,
	refreshTTL time.Duration,
) *SessionService {
	return &SessionService{
		tokens:     tokens,
		users:      users,
		sessions:   sessions,
		refreshTTL: refreshTTL,
	}
}

// Login verifies the email/password pair and issues a fresh token
// pair. Unknown email and wrong password are indistinguishable to the
// caller.
func (s *SessionService) Login(ctx context.Context, email, password string) (TokenPair, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return TokenPair{}, ErrInvalidCredentials
		}
		return TokenPair{}, fmt.Errorf("find user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return TokenPair{}, ErrInvalidCredentials
	}

	return s.issue(ctx, user)
}

// Refresh exchanges a stored refresh token for a new pair. The old
// token is invalidated by the rotation: the username's row is
// overwritten with the new value.
func (s *SessionService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	stored, err := s.sessions.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return TokenPair{}, ErrRefreshTokenUnknown
		}
		return TokenPair{}, fmt.Errorf("find refresh token: %w", err)
	}

	if time.Now().After(stored.ExpiresAt) {
		return TokenPair{}, ErrRefreshTokenExpired
	}

	user, err := s.users.FindByUsername(ctx, stored.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return TokenPair{}, ErrUserNotFound
		}
		return TokenPair{}, fmt.Errorf("find user %q: %w", stored.Username, err)
	}

	return s.issue(ctx, user)
}

// Logout deletes the caller's refresh-token row. Logging out with no
// stored session is not an error.
func (s *SessionService) Logout(ctx context.Context, username string) error {
	if err := s.sessions.DeleteByUsername(ctx, username); err != nil {
		return fmt.Errorf("delete refresh token for %q: %w", username, err)
	}
	return nil
}

func (s *SessionService) issue(ctx context.Context, user domain.User) (TokenPair, error) {
	access, err := s.tokens.Sign(user)
	if err != nil {
		return TokenPair{}, err
	}

	refresh, err := NewRefreshToken()
	if err != nil {
		return TokenPair{}, err
	}

	expiresAt := time.Now().Add(s.refreshTTL)
	if err := s.sessions.Upsert(ctx, user.Username, refresh, expiresAt); err != nil {
		return TokenPair{}, fmt.Errorf("store refresh token: %w", err)
	}

	return TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
