package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/otakudev/anicat/internal/domain"
)

const characterSelect = `
	SELECT c.id, c.name, c.slug, c.content, c.genre, c.age, c.height,
	       c.file_url, c.created_at, c.updated_at, c.published_at,
	       a.id, a.name, a.slug
	FROM character c
	LEFT JOIN anime a ON a.id = c.anime_id
`

type CharacterRepository struct {
	pool *pgxpool.Pool
}

func NewCharacterRepository(pool *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{pool: pool}
}

// List returns one page of characters matching the filter together
// with the total match count.
func (r *CharacterRepository) List(ctx context.Context, filter domain.CharacterFilter) (domain.CharacterPage, error) {
	where, args := buildCharacterWhere(filter)

	countQuery := "SELECT count(*) FROM character c" + where
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return domain.CharacterPage{}, fmt.Errorf("count characters: %w", err)
	}

	order := "ASC"
	if filter.OrderByID == domain.SortDesc {
		order = "DESC"
	}

	query := fmt.Sprintf("%s%s ORDER BY c.id %s LIMIT $%d OFFSET $%d",
		characterSelect, where, order, len(args)+1, len(args)+2)
	args = append(args, filter.ItemsPerPage, (filter.Page-1)*filter.ItemsPerPage)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return domain.CharacterPage{}, fmt.Errorf("select characters: %w", err)
	}
	defer rows.Close()

	items, err := scanCharacters(rows)
	if err != nil {
		return domain.CharacterPage{}, err
	}

	return domain.CharacterPage{
		Items:        items,
		Total:        total,
		Page:         filter.Page,
		ItemsPerPage: filter.ItemsPerPage,
	}, nil
}

func (r *CharacterRepository) FindByID(ctx context.Context, id int64) (domain.Character, error) {
	return r.findOne(ctx, characterSelect+" WHERE c.id = $1", id)
}

func (r *CharacterRepository) FindBySlug(ctx context.Context, slug string) (domain.Character, error) {
	return r.findOne(ctx, characterSelect+" WHERE c.slug = $1", slug)
}

func (r *CharacterRepository) ListByGenre(ctx context.Context, genre string) ([]domain.Character, error) {
	rows, err := r.pool.Query(ctx, characterSelect+" WHERE c.genre = $1 ORDER BY c.id", genre)
	if err != nil {
		return nil, fmt.Errorf("select characters by genre: %w", err)
	}
	defer rows.Close()

	return scanCharacters(rows)
}

func (r *CharacterRepository) Create(ctx context.Context, input domain.CharacterInput) (domain.Character, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO character (name, slug, content, genre, age, height, anime_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, input.Name, input.Slug, input.Content, input.Genre, input.Age, input.Height, input.AnimeID).
		Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Character{}, fmt.Errorf("%w: unknown anime reference", domain.ErrInvalidInput)
		}
		return domain.Character{}, translateUnique(err)
	}

	return r.FindByID(ctx, id)
}

func (r *CharacterRepository) Update(ctx context.Context, id int64, input domain.CharacterInput) (domain.Character, error) {
	var updated int64
	err := r.pool.QueryRow(ctx, `
		UPDATE character
		SET name = $2, slug = $3, content = $4, genre = $5,
		    age = $6, height = $7, anime_id = $8, updated_at = now()
		WHERE id = $1
		RETURNING id
	`, id, input.Name, input.Slug, input.Content, input.Genre, input.Age, input.Height, input.AnimeID).
		Scan(&updated)
	if err != nil {
		if isNoRows(err) {
			return domain.Character{}, domain.ErrNotFound
		}
		if isForeignKeyViolation(err) {
			return domain.Character{}, fmt.Errorf("%w: unknown anime reference", domain.ErrInvalidInput)
		}
		return domain.Character{}, translateUnique(err)
	}

	return r.FindByID(ctx, id)
}

func (r *CharacterRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM character WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete character: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *CharacterRepository) SetFileURL(ctx context.Context, id int64, fileURL string) (domain.Character, error) {
	var updated int64
	err := r.pool.QueryRow(ctx, `
		UPDATE character
		SET file_url = $2, updated_at = now()
		WHERE id = $1
		RETURNING id
	`, id, fileURL).Scan(&updated)
	if err != nil {
		if isNoRows(err) {
			return domain.Character{}, domain.ErrNotFound
		}
		return domain.Character{}, fmt.Errorf("update character file url: %w", err)
	}

	return r.FindByID(ctx, id)
}

func (r *CharacterRepository) findOne(ctx context.Context, query string, arg any) (domain.Character, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return domain.Character{}, fmt.Errorf("select character: %w", err)
	}
	defer rows.Close()

	characters, err := scanCharacters(rows)
	if err != nil {
		return domain.Character{}, err
	}
	if len(characters) == 0 {
		return domain.Character{}, domain.ErrNotFound
	}

	return characters[0], nil
}

// buildCharacterWhere turns the filter into a WHERE clause with
// positional args. Name and content match partially, the rest exactly.
func buildCharacterWhere(filter domain.CharacterFilter) (string, []any) {
	conds := make([]string, 0, 6)
	args := make([]any, 0, 6)

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.ID != nil {
		add("c.id = $%d", *filter.ID)
	}
	if filter.Slug != "" {
		add("c.slug = $%d", filter.Slug)
	}
	if filter.Name != "" {
		add("c.name ILIKE '%%' || $%d || '%%'", filter.Name)
	}
	if filter.Content != "" {
		add("c.content ILIKE '%%' || $%d || '%%'", filter.Content)
	}
	if filter.CreatedAfter != nil {
		add("c.created_at >= $%d", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		add("c.created_at <= $%d", *filter.CreatedBefore)
	}

	if len(conds) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanCharacters(rows pgx.Rows) ([]domain.Character, error) {
	out := make([]domain.Character, 0)
	for rows.Next() {
		var character domain.Character
		var animeID *int64
		var animeName, animeSlug *string

		err := rows.Scan(
			&character.ID, &character.Name, &character.Slug, &character.Content,
			&character.Genre, &character.Age, &character.Height,
			&character.FileURL, &character.CreatedAt, &character.UpdatedAt, &character.PublishedAt,
			&animeID, &animeName, &animeSlug,
		)
		if err != nil {
			return nil, fmt.Errorf("scan character: %w", err)
		}

		if animeID != nil {
			character.Anime = &domain.Anime{
				ID:   *animeID,
				Name: *animeName,
				Slug: *animeSlug,
			}
		}

		out = append(out, character)
	}

	return out, rows.Err()
}
