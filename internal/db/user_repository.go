package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/otakudev/anicat/internal/domain"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, username, email, passwordHash string, roles []string) (domain.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash, roles)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, email, password_hash, roles, created_at
	`

	var user domain.User
	err := r.pool.QueryRow(ctx, query, username, email, passwordHash, roles).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Roles, &user.CreatedAt)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return domain.User{}, domain.ErrConflict
		}
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.findBy(ctx, "username", username)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.findBy(ctx, "email", email)
}

func (r *UserRepository) findBy(ctx context.Context, column, value string) (domain.User, error) {
	query := fmt.Sprintf(`
		SELECT id, username, email, password_hash, roles, created_at
		FROM users
		WHERE %s = $1
	`, column)

	var user domain.User
	err := r.pool.QueryRow(ctx, query, value).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Roles, &user.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, fmt.Errorf("select user by %s: %w", column, err)
	}

	return user, nil
}
