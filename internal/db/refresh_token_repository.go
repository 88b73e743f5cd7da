package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/otakudev/anicat/internal/domain"
)

type RefreshTokenRepository struct {
	pool *pgxpool.Pool
}

func NewRefreshTokenRepository(pool *pgxpool.Pool) *RefreshTokenRepository {
	return &RefreshTokenRepository{pool: pool}
}

// Upsert stores the refresh token for the username, replacing any
// previous row. The refresh_tokens_username_key constraint keeps at
// most one live session per account.
func (r *RefreshTokenRepository) Upsert(ctx context.Context, username, token string, expiresAt time.Time) error {
	query := `
		INSERT INTO refresh_tokens (username, token, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT ON CONSTRAINT refresh_tokens_username_key
		DO UPDATE SET token = EXCLUDED.token,
		              expires_at = EXCLUDED.expires_at,
		              created_at = now()
	`

	if _, err := r.pool.Exec(ctx, query, username, token, expiresAt); err != nil {
		return fmt.Errorf("upsert refresh token: %w", err)
	}

	return nil
}

func (r *RefreshTokenRepository) Find(ctx context.Context, token string) (domain.RefreshToken, error) {
	query := `
		SELECT id, username, token, expires_at, created_at
		FROM refresh_tokens
		WHERE token = $1
	`

	var row domain.RefreshToken
	err := r.pool.QueryRow(ctx, query, token).
		Scan(&row.ID, &row.Username, &row.Token, &row.ExpiresAt, &row.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return domain.RefreshToken{}, domain.ErrNotFound
		}
		return domain.RefreshToken{}, fmt.Errorf("select refresh token: %w", err)
	}

	return row, nil
}

// DeleteByUsername removes the username's session row. Deleting a
// missing row is not an error.
func (r *RefreshTokenRepository) DeleteByUsername(ctx context.Context, username string) error {
	query := `
		DELETE FROM refresh_tokens
		WHERE username = $1
	`

	if _, err := r.pool.Exec(ctx, query, username); err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}

	return nil
}
