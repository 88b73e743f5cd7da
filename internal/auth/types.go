package auth

import (
	"time"

	"github.com/otakudev/anicat/internal/domain"
)

// Principal is the identity resolved from a bearer credential for the
// duration of one request. It references the stored account; it never
// owns it.
type Principal struct {
	Username  string
	Email     string
	Roles     []string
	CreatedAt time.Time
}

// HasRole reports whether the principal carries the given role.
func (p Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func principalFromUser(user domain.User) Principal {
	roles := make([]string, len(user.Roles))
	copy(roles, user.Roles)

	return Principal{
		Username:  user.Username,
		Email:     user.Email,
		Roles:     roles,
		CreatedAt: user.CreatedAt,
	}
}

// TokenPair is what login and refresh hand back to the client.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
