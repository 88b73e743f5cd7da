package domain

import (
	"context"
	"fmt"
)

// Genres accepted on character rows.
const (
	GenreMan   = "man"
	GenreWoman = "woman"
)

type animeService struct {
	animes AnimeRepository
}

func NewAnimeService(animes AnimeRepository) AnimeService {
	return &animeService{animes: animes}
}

func (s *animeService) ListAnimes(ctx context.Context, orderEpisodes SortOrder) ([]Anime, error) {
	return s.animes.List(ctx, orderEpisodes)
}

func (s *animeService) GetAnime(ctx context.Context, id int64) (Anime, error) {
	return s.animes.FindByID(ctx, id)
}

func (s *animeService) ListAnimesByTag(ctx context.Context, tagSlug string) ([]Anime, error) {
	return s.animes.ListByTagSlug(ctx, tagSlug)
}

func (s *animeService) ListAnimesByAuthor(ctx context.Context, authorSlug string) ([]Anime, error) {
	return s.animes.ListByAuthorSlug(ctx, authorSlug)
}

func (s *animeService) ListAnimesByYear(ctx context.Context, year int) ([]Anime, error) {
	if year < 1900 || year > 2200 {
		return nil, fmt.Errorf("%w: year out of range", ErrInvalidInput)
	}
	return s.animes.ListByFirstBroadcastYear(ctx, year)
}

func (s *animeService) CreateAnime(ctx context.Context, input AnimeInput) (Anime, error) {
	if err := validateSlug(input.Slug); err != nil {
		return Anime{}, err
	}
	return s.animes.Create(ctx, input)
}

func (s *animeService) UpdateAnime(ctx context.Context, id int64, input AnimeInput) (Anime, error) {
	if err := validateSlug(input.Slug); err != nil {
		return Anime{}, err
	}
	return s.animes.Update(ctx, id, input)
}

func (s *animeService) DeleteAnime(ctx context.Context, id int64) error {
	deleted, err := s.animes.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

type characterService struct {
	characters CharacterRepository
}

func NewCharacterService(characters CharacterRepository) CharacterService {
	return &characterService{characters: characters}
}

func (s *characterService) ListCharacters(ctx context.Context, filter CharacterFilter) (CharacterPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.ItemsPerPage < 1 {
		filter.ItemsPerPage = DefaultCharactersPerPage
	}
	return s.characters.List(ctx, filter)
}

func (s *characterService) GetCharacter(ctx context.Context, id int64) (Character, error) {
	return s.characters.FindByID(ctx, id)
}

func (s *characterService) GetCharacterBySlug(ctx context.Context, slug string) (Character, error) {
	return s.characters.FindBySlug(ctx, slug)
}

func (s *characterService) ListCharactersByGenre(ctx context.Context, genre string) ([]Character, error) {
	if genre != GenreMan && genre != GenreWoman {
		return nil, fmt.Errorf("%w: genre must be %q or %q", ErrInvalidInput, GenreMan, GenreWoman)
	}
	return s.characters.ListByGenre(ctx, genre)
}

func (s *characterService) CreateCharacter(ctx context.Context, input CharacterInput) (Character, error) {
	if err := validateSlug(input.Slug); err != nil {
		return Character{}, err
	}
	return s.characters.Create(ctx, input)
}

func (s *characterService) UpdateCharacter(ctx context.Context, id int64, input CharacterInput) (Character, error) {
	if err := validateSlug(input.Slug); err != nil {
		return Character{}, err
	}
	return s.characters.Update(ctx, id, input)
}

func (s *characterService) DeleteCharacter(ctx context.Context, id int64) error {
	deleted, err := s.characters.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *characterService) AttachPortrait(ctx context.Context, id int64, fileURL string) (Character, error) {
	return s.characters.SetFileURL(ctx, id, fileURL)
}

// DefaultCharactersPerPage mirrors the catalog's paginated character
// collection default.
const DefaultCharactersPerPage = 2

type authorService struct {
	authors AuthorRepository
}

func NewAuthorService(authors AuthorRepository) AuthorService {
	return &authorService{authors: authors}
}

func (s *authorService) ListAuthors(ctx context.Context) ([]Author, error) {
	return s.authors.List(ctx)
}

func (s *authorService) GetAuthor(ctx context.Context, id int64) (Author, error) {
	return s.authors.FindByID(ctx, id)
}

func (s *authorService) CreateAuthor(ctx context.Context, input AuthorInput) (Author, error) {
	return s.authors.Create(ctx, input)
}

func (s *authorService) UpdateAuthor(ctx context.Context, id int64, input AuthorInput) (Author, error) {
	return s.authors.Update(ctx, id, input)
}

func (s *authorService) DeleteAuthor(ctx context.Context, id int64) error {
	deleted, err := s.authors.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

type tagService struct {
	tags TagRepository
}

func NewTagService(tags TagRepository) TagService {
	return &tagService{tags: tags}
}

func (s *tagService) ListTags(ctx context.Context) ([]Tag, error) {
	return s.tags.List(ctx)
}

func (s *tagService) GetTag(ctx context.Context, id int64) (Tag, error) {
	return s.tags.FindByID(ctx, id)
}

func (s *tagService) CreateTag(ctx context.Context, input TagInput) (Tag, error) {
	return s.tags.Create(ctx, input)
}

func (s *tagService) UpdateTag(ctx context.Context, id int64, input TagInput) (Tag, error) {
	return s.tags.Update(ctx, id, input)
}

func (s *tagService) DeleteTag(ctx context.Context, id int64) error {
	deleted, err := s.tags.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

type typeAnimeService struct {
	types TypeAnimeRepository
}

func NewTypeAnimeService(types TypeAnimeRepository) TypeAnimeService {
	return &typeAnimeService{types: types}
}

func (s *typeAnimeService) ListTypeAnimes(ctx context.Context) ([]TypeAnime, error) {
	return s.types.List(ctx)
}

func (s *typeAnimeService) GetTypeAnime(ctx context.Context, id int64) (TypeAnime, error) {
	return s.types.FindByID(ctx, id)
}

func (s *typeAnimeService) CreateTypeAnime(ctx context.Context, input TypeAnimeInput) (TypeAnime, error) {
	if err := validateSlug(input.Slug); err != nil {
		return TypeAnime{}, err
	}
	return s.types.Create(ctx, input)
}

func (s *typeAnimeService) UpdateTypeAnime(ctx context.Context, id int64, input TypeAnimeInput) (TypeAnime, error) {
	if err := validateSlug(input.Slug); err != nil {
		return TypeAnime{}, err
	}
	return s.types.Update(ctx, id, input)
}

func (s *typeAnimeService) DeleteTypeAnime(ctx context.Context, id int64) error {
	deleted, err := s.types.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
