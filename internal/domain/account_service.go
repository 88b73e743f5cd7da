package domain

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type accountService struct {
	users UserRepository
}

func NewAccountService(users UserRepository) AccountService {
	return &accountService{users: users}
}

// Register hashes the password and stores a new account with the base
// user role. Username uniqueness is enforced by the store; a duplicate
// surfaces as ErrConflict.
func (s *accountService) Register(ctx context.Context, input RegisterInput) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	return s.users.Create(ctx, input.Username, input.Email, string(hash), []string{RoleUser})
}
