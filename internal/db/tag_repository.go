package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/otakudev/anicat/internal/domain"
)

type TagRepository struct {
	pool *pgxpool.Pool
}

func NewTagRepository(pool *pgxpool.Pool) *TagRepository {
	return &TagRepository{pool: pool}
}

func (r *TagRepository) List(ctx context.Context) ([]domain.Tag, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, slug FROM tag ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select tags: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Tag, 0)
	for rows.Next() {
		var tag domain.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Slug); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		out = append(out, tag)
	}

	return out, rows.Err()
}

func (r *TagRepository) FindByID(ctx context.Context, id int64) (domain.Tag, error) {
	var tag domain.Tag
	err := r.pool.QueryRow(ctx, `SELECT id, name, slug FROM tag WHERE id = $1`, id).
		Scan(&tag.ID, &tag.Name, &tag.Slug)
	if err != nil {
		if isNoRows(err) {
			return domain.Tag{}, domain.ErrNotFound
		}
		return domain.Tag{}, fmt.Errorf("select tag: %w", err)
	}

	return tag, nil
}

func (r *TagRepository) Create(ctx context.Context, input domain.TagInput) (domain.Tag, error) {
	var tag domain.Tag
	err := r.pool.QueryRow(ctx,
		`INSERT INTO tag (name, slug) VALUES ($1, $2) RETURNING id, name, slug`,
		input.Name, input.Slug).
		Scan(&tag.ID, &tag.Name, &tag.Slug)
	if err != nil {
		return domain.Tag{}, translateUnique(err)
	}

	return tag, nil
}

func (r *TagRepository) Update(ctx context.Context, id int64, input domain.TagInput) (domain.Tag, error) {
	var tag domain.Tag
	err := r.pool.QueryRow(ctx,
		`UPDATE tag SET name = $2, slug = $3 WHERE id = $1 RETURNING id, name, slug`,
		id, input.Name, input.Slug).
		Scan(&tag.ID, &tag.Name, &tag.Slug)
	if err != nil {
		if isNoRows(err) {
			return domain.Tag{}, domain.ErrNotFound
		}
		return domain.Tag{}, translateUnique(err)
	}

	return tag, nil
}

func (r *TagRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tag WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete tag: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
