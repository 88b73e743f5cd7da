package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/otakudev/anicat/internal/domain"
)

// JWKSConfig configures validation of tokens minted by an external
// issuer whose signing keys are published as a JWK Set.
type JWKSConfig struct {
	JWKSURL  string
	Issuer   string
	Audience string
}

type jwksAuthenticator struct {
	issuer   string
	audience string
	jwks     keyfunc.Keyfunc
	users    domain.UserRepository
}

// NewJWKSAuthenticator fetches the key set and returns an
// Authenticator that verifies tokens against it. Accounts are still
// resolved locally by the token's username claim.
func NewJWKSAuthenticator(ctx context.Context, cfg JWKSConfig, users domain.UserRepository) (Authenticator, error) {
	if cfg.JWKSURL == "" {
		return nil, fmt.Errorf("jwks url is empty")
	}

	kf, err := keyfunc.NewDefaultCtx(ctx, []string{cfg.JWKSURL})
	if err != nil {
		return nil, fmt.Errorf("fetch jwks from %s: %w", cfg.JWKSURL, err)
	}

	return &jwksAuthenticator{
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		jwks:     kf,
		users:    users,
	}, nil
}

func (a *jwksAuthenticator) Authenticate(ctx context.Context, bearerToken string) (Principal, error) {
	claims, err := a.decode(bearerToken)
	if err != nil {
		return Principal{}, err
	}

	username := claims.Username
	if username == "" {
		username = claims.Subject
	}
	if username == "" {
		return Principal{}, ErrInvalidToken
	}

	user, err := a.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Principal{}, ErrUserNotFound
		}
		return Principal{}, fmt.Errorf("find user %q: %w", username, err)
	}

	check, err := a.decode(bearerToken)
	if err != nil {
		return Principal{}, err
	}
	checkName := check.Username
	if checkName == "" {
		checkName = check.Subject
	}
	if checkName != user.Username {
		return Principal{}, ErrIdentityMismatch
	}

	return principalFromUser(user), nil
}

func (a *jwksAuthenticator) decode(bearerToken string) (*Claims, error) {
	claims := &Claims{}

	opts := []jwt.ParserOption{jwt.WithLeeway(5 * time.Second)}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}
	if a.audience != "" {
		opts = append(opts, jwt.WithAudience(a.audience))
	}

	token, err := jwt.ParseWithClaims(bearerToken, claims, a.jwks.Keyfunc, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
