package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/otakudev/anicat/internal/domain"
)

type TypeAnimeRepository struct {
	pool *pgxpool.Pool
}

func NewTypeAnimeRepository(pool *pgxpool.Pool) *TypeAnimeRepository {
	return &TypeAnimeRepository{pool: pool}
}

func (r *TypeAnimeRepository) List(ctx context.Context) ([]domain.TypeAnime, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, slug, content, created_at FROM type_anime ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select type animes: %w", err)
	}
	defer rows.Close()

	out := make([]domain.TypeAnime, 0)
	for rows.Next() {
		var ta domain.TypeAnime
		if err := rows.Scan(&ta.ID, &ta.Name, &ta.Slug, &ta.Content, &ta.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan type anime: %w", err)
		}
		out = append(out, ta)
	}

	return out, rows.Err()
}

func (r *TypeAnimeRepository) FindByID(ctx context.Context, id int64) (domain.TypeAnime, error) {
	var ta domain.TypeAnime
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, slug, content, created_at FROM type_anime WHERE id = $1`, id).
		Scan(&ta.ID, &ta.Name, &ta.Slug, &ta.Content, &ta.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return domain.TypeAnime{}, domain.ErrNotFound
		}
		return domain.TypeAnime{}, fmt.Errorf("select type anime: %w", err)
	}

	return ta, nil
}

func (r *TypeAnimeRepository) Create(ctx context.Context, input domain.TypeAnimeInput) (domain.TypeAnime, error) {
	var ta domain.TypeAnime
	err := r.pool.QueryRow(ctx, `
		INSERT INTO type_anime (name, slug, content)
		VALUES ($1, $2, $3)
		RETURNING id, name, slug, content, created_at
	`, input.Name, input.Slug, input.Content).
		Scan(&ta.ID, &ta.Name, &ta.Slug, &ta.Content, &ta.CreatedAt)
	if err != nil {
		return domain.TypeAnime{}, translateUnique(err)
	}

	return ta, nil
}

func (r *TypeAnimeRepository) Update(ctx context.Context, id int64, input domain.TypeAnimeInput) (domain.TypeAnime, error) {
	var ta domain.TypeAnime
	err := r.pool.QueryRow(ctx, `
		UPDATE type_anime
		SET name = $2, slug = $3, content = $4
		WHERE id = $1
		RETURNING id, name, slug, content, created_at
	`, id, input.Name, input.Slug, input.Content).
		Scan(&ta.ID, &ta.Name, &ta.Slug, &ta.Content, &ta.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return domain.TypeAnime{}, domain.ErrNotFound
		}
		return domain.TypeAnime{}, translateUnique(err)
	}

	return ta, nil
}

func (r *TypeAnimeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM type_anime WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete type anime: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
