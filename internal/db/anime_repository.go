package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/otakudev/anicat/internal/domain"
)

const animeSelect = `
	SELECT a.id, a.name, a.slug, a.content, a.first_broadcast, a.episodes,
	       t.id, t.name, t.slug, t.content, t.created_at,
	       au.id, au.name, au.slug
	FROM anime a
	LEFT JOIN type_anime t ON t.id = a.type_anime_id
	LEFT JOIN author au ON au.id = a.author_id
`

type AnimeRepository struct {
	pool *pgxpool.Pool
}

func NewAnimeRepository(pool *pgxpool.Pool) *AnimeRepository {
	return &AnimeRepository{pool: pool}
}

func (r *AnimeRepository) List(ctx context.Context, orderEpisodes domain.SortOrder) ([]domain.Anime, error) {
	order := "ASC"
	if orderEpisodes == domain.SortDesc {
		order = "DESC"
	}

	return r.list(ctx, animeSelect+fmt.Sprintf(" ORDER BY a.episodes %s, a.id", order))
}

func (r *AnimeRepository) FindByID(ctx context.Context, id int64) (domain.Anime, error) {
	animes, err := r.list(ctx, animeSelect+" WHERE a.id = $1", id)
	if err != nil {
		return domain.Anime{}, err
	}
	if len(animes) == 0 {
		return domain.Anime{}, domain.ErrNotFound
	}

	return animes[0], nil
}

func (r *AnimeRepository) ListByTagSlug(ctx context.Context, slug string) ([]domain.Anime, error) {
	query := animeSelect + `
		WHERE a.id IN (
			SELECT at.anime_id
			FROM anime_tag at
			JOIN tag tg ON tg.id = at.tag_id
			WHERE tg.slug = $1
		)
		ORDER BY a.id
	`

	return r.list(ctx, query, slug)
}

func (r *AnimeRepository) ListByAuthorSlug(ctx context.Context, slug string) ([]domain.Anime, error) {
	return r.list(ctx, animeSelect+" WHERE au.slug = $1 ORDER BY a.id", slug)
}

func (r *AnimeRepository) ListByFirstBroadcastYear(ctx context.Context, year int) ([]domain.Anime, error) {
	query := animeSelect + `
		WHERE a.first_broadcast >= $1 AND a.first_broadcast < $2
		ORDER BY a.first_broadcast, a.id
	`

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	return r.list(ctx, query, from, to)
}

func (r *AnimeRepository) Create(ctx context.Context, input domain.AnimeInput) (domain.Anime, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.Anime{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO anime (name, slug, content, type_anime_id, author_id, first_broadcast, episodes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, input.Name, input.Slug, input.Content, input.TypeAnimeID, input.AuthorID, input.FirstBroadcast, input.Episodes).
		Scan(&id)
	if err != nil {
		return domain.Anime{}, translateAnimeWriteError(err)
	}

	if err := replaceAnimeTags(ctx, tx, id, input.TagIDs); err != nil {
		return domain.Anime{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Anime{}, fmt.Errorf("commit tx: %w", err)
	}

	return r.FindByID(ctx, id)
}

func (r *AnimeRepository) Update(ctx context.Context, id int64, input domain.AnimeInput) (domain.Anime, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.Anime{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var updated int64
	err = tx.QueryRow(ctx, `
		UPDATE anime
		SET name = $2, slug = $3, content = $4, type_anime_id = $5,
		    author_id = $6, first_broadcast = $7, episodes = $8
		WHERE id = $1
		RETURNING id
	`, id, input.Name, input.Slug, input.Content, input.TypeAnimeID, input.AuthorID, input.FirstBroadcast, input.Episodes).
		Scan(&updated)
	if err != nil {
		if isNoRows(err) {
			return domain.Anime{}, domain.ErrNotFound
		}
		return domain.Anime{}, translateAnimeWriteError(err)
	}

	if err := replaceAnimeTags(ctx, tx, id, input.TagIDs); err != nil {
		return domain.Anime{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Anime{}, fmt.Errorf("commit tx: %w", err)
	}

	return r.FindByID(ctx, id)
}

func (r *AnimeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM anime WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete anime: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *AnimeRepository) list(ctx context.Context, query string, args ...any) ([]domain.Anime, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select animes: %w", err)
	}
	defer rows.Close()

	animes, err := scanAnimes(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadTags(ctx, animes); err != nil {
		return nil, err
	}

	return animes, nil
}

// loadTags fetches the tag lists for all animes in one query.
func (r *AnimeRepository) loadTags(ctx context.Context, animes []domain.Anime) error {
	if len(animes) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(animes))
	byID := make(map[int64]*domain.Anime, len(animes))
	for i := range animes {
		ids = append(ids, animes[i].ID)
		byID[animes[i].ID] = &animes[i]
	}

	rows, err := r.pool.Query(ctx, `
		SELECT at.anime_id, t.id, t.name, t.slug
		FROM anime_tag at
		JOIN tag t ON t.id = at.tag_id
		WHERE at.anime_id = ANY($1)
		ORDER BY t.id
	`, ids)
	if err != nil {
		return fmt.Errorf("select anime tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var animeID int64
		var tag domain.Tag
		if err := rows.Scan(&animeID, &tag.ID, &tag.Name, &tag.Slug); err != nil {
			return fmt.Errorf("scan anime tag: %w", err)
		}
		if anime, ok := byID[animeID]; ok {
			anime.Tags = append(anime.Tags, tag)
		}
	}

	return rows.Err()
}

func scanAnimes(rows pgx.Rows) ([]domain.Anime, error) {
	out := make([]domain.Anime, 0)
	for rows.Next() {
		var anime domain.Anime
		var taID *int64
		var taName, taSlug, taContent *string
		var taCreated *time.Time
		var auID *int64
		var auName, auSlug *string

		err := rows.Scan(
			&anime.ID, &anime.Name, &anime.Slug, &anime.Content, &anime.FirstBroadcast, &anime.Episodes,
			&taID, &taName, &taSlug, &taContent, &taCreated,
			&auID, &auName, &auSlug,
		)
		if err != nil {
			return nil, fmt.Errorf("scan anime: %w", err)
		}

		if taID != nil {
			anime.TypeAnime = &domain.TypeAnime{
				ID:        *taID,
				Name:      *taName,
				Slug:      *taSlug,
				Content:   *taContent,
				CreatedAt: *taCreated,
			}
		}
		if auID != nil {
			anime.Author = &domain.Author{
				ID:   *auID,
				Name: *auName,
				Slug: *auSlug,
			}
		}

		out = append(out, anime)
	}

	return out, rows.Err()
}

func replaceAnimeTags(ctx context.Context, tx pgx.Tx, animeID int64, tagIDs []int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM anime_tag WHERE anime_id = $1`, animeID); err != nil {
		return fmt.Errorf("clear anime tags: %w", err)
	}

	for _, tagID := range tagIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO anime_tag (anime_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			animeID, tagID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: unknown tag id %d", domain.ErrInvalidInput, tagID)
			}
			return fmt.Errorf("insert anime tag: %w", err)
		}
	}

	return nil
}

func translateAnimeWriteError(err error) error {
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: unknown type anime or author reference", domain.ErrInvalidInput)
	}
	return translateUnique(err)
}
