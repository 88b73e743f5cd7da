package domain

import (
	"context"
	"time"
)

type UserRepository interface {
	Create(ctx context.Context, username, email, passwordHash string, roles []string) (User, error)
	FindByUsername(ctx context.Context, username string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
}

// RefreshTokenRepository persists the one-active-session-per-username
// refresh credential. Upsert overwrites any previous row for the
// username (last write wins).
type RefreshTokenRepository interface {
	Upsert(ctx context.Context, username, token string, expiresAt time.Time) error
	Find(ctx context.Context, token string) (RefreshToken, error)
	DeleteByUsername(ctx context.Context, username string) error
}

type AnimeRepository interface {
	List(ctx context.Context, orderEpisodes SortOrder) ([]Anime, error)
	FindByID(ctx context.Context, id int64) (Anime, error)
	ListByTagSlug(ctx context.Context, slug string) ([]Anime, error)
	ListByAuthorSlug(ctx context.Context, slug string) ([]Anime, error)
	ListByFirstBroadcastYear(ctx context.Context, year int) ([]Anime, error)
	Create(ctx context.Context, input AnimeInput) (Anime, error)
	Update(ctx context.Context, id int64, input AnimeInput) (Anime, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type CharacterRepository interface {
	List(ctx context.Context, filter CharacterFilter) (CharacterPage, error)
	FindByID(ctx context.Context, id int64) (Character, error)
	FindBySlug(ctx context.Context, slug string) (Character, error)
	ListByGenre(ctx context.Context, genre string) ([]Character, error)
	Create(ctx context.Context, input CharacterInput) (Character, error)
	Update(ctx context.Context, id int64, input CharacterInput) (Character, error)
	Delete(ctx context.Context, id int64) (bool, error)
	SetFileURL(ctx context.Context, id int64, fileURL string) (Character, error)
}

type AuthorRepository interface {
	List(ctx context.Context) ([]Author, error)
	FindByID(ctx context.Context, id int64) (Author, error)
	Create(ctx context.Context, input AuthorInput) (Author, error)
	Update(ctx context.Context, id int64, input AuthorInput) (Author, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type TagRepository interface {
	List(ctx context.Context) ([]Tag, error)
	FindByID(ctx context.Context, id int64) (Tag, error)
	Create(ctx context.Context, input TagInput) (Tag, error)
	Update(ctx context.Context, id int64, input TagInput) (Tag, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type TypeAnimeRepository interface {
	List(ctx context.Context) ([]TypeAnime, error)
	FindByID(ctx context.Context, id int64) (TypeAnime, error)
	Create(ctx context.Context, input TypeAnimeInput) (TypeAnime, error)
	Update(ctx context.Context, id int64, input TypeAnimeInput) (TypeAnime, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
