package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/otakudev/anicat/internal/domain"
)

type AuthorRepository struct {
	pool *pgxpool.Pool
}

func NewAuthorRepository(pool *pgxpool.Pool) *AuthorRepository {
	return &AuthorRepository{pool: pool}
}

func (r *AuthorRepository) List(ctx context.Context) ([]domain.Author, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, slug FROM author ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select authors: %w", err)
	}
	defer rows.Close()

	return scanAuthors(rows)
}

func (r *AuthorRepository) FindByID(ctx context.Context, id int64) (domain.Author, error) {
	var author domain.Author
	err := r.pool.QueryRow(ctx, `SELECT id, name, slug FROM author WHERE id = $1`, id).
		Scan(&author.ID, &author.Name, &author.Slug)
	if err != nil {
		if isNoRows(err) {
			return domain.Author{}, domain.ErrNotFound
		}
		return domain.Author{}, fmt.Errorf("select author: %w", err)
	}

	return author, nil
}

func (r *AuthorRepository) Create(ctx context.Context, input domain.AuthorInput) (domain.Author, error) {
	var author domain.Author
	err := r.pool.QueryRow(ctx,
		`INSERT INTO author (name, slug) VALUES ($1, $2) RETURNING id, name, slug`,
		input.Name, input.Slug).
		Scan(&author.ID, &author.Name, &author.Slug)
	if err != nil {
		return domain.Author{}, translateUnique(err)
	}

	return author, nil
}

func (r *AuthorRepository) Update(ctx context.Context, id int64, input domain.AuthorInput) (domain.Author, error) {
	var author domain.Author
	err := r.pool.QueryRow(ctx,
		`UPDATE author SET name = $2, slug = $3 WHERE id = $1 RETURNING id, name, slug`,
		id, input.Name, input.Slug).
		Scan(&author.ID, &author.Name, &author.Slug)
	if err != nil {
		if isNoRows(err) {
			return domain.Author{}, domain.ErrNotFound
		}
		return domain.Author{}, translateUnique(err)
	}

	return author, nil
}

func (r *AuthorRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM author WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete author: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func scanAuthors(rows pgx.Rows) ([]domain.Author, error) {
	out := make([]domain.Author, 0)
	for rows.Next() {
		var author domain.Author
		if err := rows.Scan(&author.ID, &author.Name, &author.Slug); err != nil {
			return nil, fmt.Errorf("scan author: %w", err)
		}
		out = append(out, author)
	}

	return out, rows.Err()
}
