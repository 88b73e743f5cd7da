package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/otakudev/anicat/internal/domain"
)

// Claims carried by access tokens: the registered set plus the
// username the account is looked up by and its role identifiers.
type Claims struct {
	jwt.RegisteredClaims
	Username string   `json:"username"`
	Roles    []string `json:"roles,omitempty"`
}

// TokenService signs and verifies HS256 access tokens and mints opaque
// refresh-token values.
type TokenService struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
}

func NewTokenService(secret []byte, issuer string, accessTTL time.Duration) *TokenService {
	return &TokenService{
		secret:    secret,
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

// Sign mints a short-lived access token for the user.
func (s *TokenService) Sign(user domain.User) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
		Username: user.Username,
		Roles:    user.Roles,
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Validate verifies signature and expiry and returns the decoded
// claims. The same call backs both the initial decode and the
// credential cross-check, so repeated calls on one token are
// deterministic.
func (s *TokenService) Validate(raw string) (*Claims, error) {
	claims := &Claims{}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(5 * time.Second),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
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

// NewRefreshToken returns a random opaque refresh-token value.
func NewRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate refresh token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
