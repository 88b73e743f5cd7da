package auth

import "errors"

// Failures surfaced to callers as 401 bodies; the messages are the
// human-readable reasons the API returns.
var (
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrUserNotFound        = errors.New("user not found")
	ErrIdentityMismatch    = errors.New("token identity mismatch")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrRefreshTokenUnknown = errors.New("unknown refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
