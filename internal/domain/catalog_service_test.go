package domain

import (
	"context"
	"errors"
	"testing"
)

type stubCharacterRepo struct {
	listFn       func(context.Context, CharacterFilter) (CharacterPage, error)
	findByIDFn   func(context.Context, int64) (Character, error)
	findBySlugFn func(context.Context, string) (Character, error)
	byGenreFn    func(context.Context, string) ([]Character, error)
	createFn     func(context.Context, CharacterInput) (Character, error)
	updateFn     func(context.Context, int64, CharacterInput) (Character, error)
	deleteFn     func(context.Context, int64) (bool, error)
	setFileURLFn func(context.Context, int64, string) (Character, error)
}

func (s stubCharacterRepo) List(ctx context.Context, filter CharacterFilter) (CharacterPage, error) {
	if s.listFn == nil {
		return CharacterPage{}, nil
	}
	return s.listFn(ctx, filter)
}

func (s stubCharacterRepo) FindByID(ctx context.Context, id int64) (Character, error) {
	if s.findByIDFn == nil {
		return Character{}, ErrNotFound
	}
	return s.findByIDFn(ctx, id)
}

func (s stubCharacterRepo) FindBySlug(ctx context.Context, slug string) (Character, error) {
	if s.findBySlugFn == nil {
		return Character{}, ErrNotFound
	}
	return s.findBySlugFn(ctx, slug)
}

func (s stubCharacterRepo) ListByGenre(ctx context.Context, genre string) ([]Character, error) {
	if s.byGenreFn == nil {
		return nil, nil
	}
	return s.byGenreFn(ctx, genre)
}

func (s stubCharacterRepo) Create(ctx context.Context, input CharacterInput) (Character, error) {
	if s.createFn == nil {
		return Character{}, nil
	}
	return s.createFn(ctx, input)
}

func (s stubCharacterRepo) Update(ctx context.Context, id int64, input CharacterInput) (Character, error) {
	if s.updateFn == nil {
		return Character{}, nil
	}
	return s.updateFn(ctx, id, input)
}

func (s stubCharacterRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if s.deleteFn == nil {
		return false, nil
	}
	return s.deleteFn(ctx, id)
}

func (s stubCharacterRepo) SetFileURL(ctx context.Context, id int64, fileURL string) (Character, error) {
	if s.setFileURLFn == nil {
		return Character{}, nil
	}
	return s.setFileURLFn(ctx, id, fileURL)
}

type stubAnimeRepo struct {
	byYearFn func(context.Context, int) ([]Anime, error)
	createFn func(context.Context, AnimeInput) (Anime, error)
	deleteFn func(context.Context, int64) (bool, error)
}

func (s stubAnimeRepo) List(context.Context, SortOrder) ([]Anime, error) { return nil, nil }

func (s stubAnimeRepo) FindByID(context.Context, int64) (Anime, error) { return Anime{}, ErrNotFound }

func (s stubAnimeRepo) ListByTagSlug(context.Context, string) ([]Anime, error) { return nil, nil }

func (s stubAnimeRepo) ListByAuthorSlug(context.Context, string) ([]Anime, error) { return nil, nil }

func (s stubAnimeRepo) ListByFirstBroadcastYear(ctx context.Context, year int) ([]Anime, error) {
	if s.byYearFn == nil {
		return nil, nil
	}
	return s.byYearFn(ctx, year)
}

func (s stubAnimeRepo) Create(ctx context.Context, input AnimeInput) (Anime, error) {
	if s.createFn == nil {
		return Anime{}, nil
	}
	return s.createFn(ctx, input)
}

func (s stubAnimeRepo) Update(context.Context, int64, AnimeInput) (Anime, error) {
	return Anime{}, nil
}

func (s stubAnimeRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if s.deleteFn == nil {
		return false, nil
	}
	return s.deleteFn(ctx, id)
}

func TestListCharactersDefaultsPagination(t *testing.T) {
	var got CharacterFilter
	service := NewCharacterService(stubCharacterRepo{
		listFn: func(_ context.Context, filter CharacterFilter) (CharacterPage, error) {
			got = filter
			return CharacterPage{Page: filter.Page, ItemsPerPage: filter.ItemsPerPage}, nil
		},
	})

	_, err := service.ListCharacters(context.Background(), CharacterFilter{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Page != 1 {
		t.Fatalf("expected page to default to 1, got %d", got.Page)
	}
	if got.ItemsPerPage != DefaultCharactersPerPage {
		t.Fatalf("expected itemsPerPage to default to %d, got %d", DefaultCharactersPerPage, got.ItemsPerPage)
	}
}

func TestListCharactersKeepsExplicitPagination(t *testing.T) {
	var got CharacterFilter
	service := NewCharacterService(stubCharacterRepo{
		listFn: func(_ context.Context, filter CharacterFilter) (CharacterPage, error) {
			got = filter
			return CharacterPage{}, nil
		},
	})

	_, err := service.ListCharacters(context.Background(), CharacterFilter{Page: 3, ItemsPerPage: 25})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Page != 3 || got.ItemsPerPage != 25 {
		t.Fatalf("expected explicit pagination to pass through, got page=%d itemsPerPage=%d", got.Page, got.ItemsPerPage)
	}
}

func TestListCharactersByGenreRejectsUnknownGenre(t *testing.T) {
	service := NewCharacterService(stubCharacterRepo{})

	_, err := service.ListCharactersByGenre(context.Background(), "robot")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateCharacterRejectsBadSlug(t *testing.T) {
	called := false
	service := NewCharacterService(stubCharacterRepo{
		createFn: func(context.Context, CharacterInput) (Character, error) {
			called = true
			return Character{}, nil
		},
	})

	_, err := service.CreateCharacter(context.Background(), CharacterInput{Slug: "Not A Slug"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if called {
		t.Fatal("expected repository not to be called for an invalid slug")
	}
}

func TestListAnimesByYearRejectsOutOfRangeYear(t *testing.T) {
	service := NewAnimeService(stubAnimeRepo{})

	if _, err := service.ListAnimesByYear(context.Background(), 1812); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for an ancient year, got %v", err)
	}
	if _, err := service.ListAnimesByYear(context.Background(), 9999); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for a far-future year, got %v", err)
	}
}

func TestDeleteAnimeReportsNotFound(t *testing.T) {
	service := NewAnimeService(stubAnimeRepo{
		deleteFn: func(context.Context, int64) (bool, error) {
			return false, nil
		},
	})

	if err := service.DeleteAnime(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteCharacterSucceedsWhenRowRemoved(t *testing.T) {
	service := NewCharacterService(stubCharacterRepo{
		deleteFn: func(context.Context, int64) (bool, error) {
			return true, nil
		},
	})

	if err := service.DeleteCharacter(context.Background(), 42); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
