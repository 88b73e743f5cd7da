package domain

import "context"

type AccountService interface {
	Register(ctx context.Context, input RegisterInput) (User, error)
}

type AnimeService interface {
	ListAnimes(ctx context.Context, orderEpisodes SortOrder) ([]Anime, error)
	GetAnime(ctx context.Context, id int64) (Anime, error)
	ListAnimesByTag(ctx context.Context, tagSlug string) ([]Anime, error)
	ListAnimesByAuthor(ctx context.Context, authorSlug string) ([]Anime, error)
	ListAnimesByYear(ctx context.Context, year int) ([]Anime, error)
	CreateAnime(ctx context.Context, input AnimeInput) (Anime, error)
	UpdateAnime(ctx context.Context, id int64, input AnimeInput) (Anime, error)
	DeleteAnime(ctx context.Context, id int64) error
}

type CharacterService interface {
	ListCharacters(ctx context.Context, filter CharacterFilter) (CharacterPage, error)
	GetCharacter(ctx context.Context, id int64) (Character, error)
	GetCharacterBySlug(ctx context.Context, slug string) (Character, error)
	ListCharactersByGenre(ctx context.Context, genre string) ([]Character, error)
	CreateCharacter(ctx context.Context, input CharacterInput) (Character, error)
	UpdateCharacter(ctx context.Context, id int64, input CharacterInput) (Character, error)
	DeleteCharacter(ctx context.Context, id int64) error
	AttachPortrait(ctx context.Context, id int64, fileURL string) (Character, error)
}

type AuthorService interface {
	ListAuthors(ctx context.Context) ([]Author, error)
	GetAuthor(ctx context.Context, id int64) (Author, error)
	CreateAuthor(ctx context.Context, input AuthorInput) (Author, error)
	UpdateAuthor(ctx context.Context, id int64, input AuthorInput) (Author, error)
	DeleteAuthor(ctx context.Context, id int64) error
}

type TagService interface {
	ListTags(ctx context.Context) ([]Tag, error)
	GetTag(ctx context.Context, id int64) (Tag, error)
	CreateTag(ctx context.Context, input TagInput) (Tag, error)
	UpdateTag(ctx context.Context, id int64, input TagInput) (Tag, error)
	DeleteTag(ctx context.Context, id int64) error
}

type TypeAnimeService interface {
	ListTypeAnimes(ctx context.Context) ([]TypeAnime, error)
	GetTypeAnime(ctx context.Context, id int64) (TypeAnime, error)
	CreateTypeAnime(ctx context.Context, input TypeAnimeInput) (TypeAnime, error)
	UpdateTypeAnime(ctx context.Context, id int64, input TypeAnimeInput) (TypeAnime, error)
	DeleteTypeAnime(ctx context.Context, id int64) error
}
