package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/otakudev/anicat/internal/domain"
)

// LocalAuthenticator validates bearer tokens signed by this process
// and resolves the account they belong to.
type LocalAuthenticator struct {
	tokens *TokenService
	users  domain.UserRepository
}

func NewLocalAuthenticator(tokens *TokenService, users domain.UserRepository) *LocalAuthenticator {
	return &LocalAuthenticator{
		tokens: tokens,
		users:  users,
	}
}

func (a *LocalAuthenticator) Authenticate(ctx context.Context, bearerToken string) (Principal, error) {
	claims, err := a.tokens.Validate(bearerToken)
	if err != nil {
		return Principal{}, err
	}
	if claims.Username == "" {
		return Principal{}, ErrInvalidToken
	}

	user, err := a.users.FindByUsername(ctx, claims.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Principal{}, ErrUserNotFound
		}
		return Principal{}, fmt.Errorf("find user %q: %w", claims.Username, err)
	}

	// Re-decode and compare against the loaded account. A token whose
	// claims no longer name the stored account is declined, not mapped
	// to whichever row the first lookup happened to return.
	check, err := a.tokens.Validate(bearerToken)
	if err != nil {
		return Principal{}, err
	}
	if check.Username != user.Username {
		return Principal{}, ErrIdentityMismatch
	}

	return principalFromUser(user), nil
}
