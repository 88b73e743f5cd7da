package db

import (
	"testing"
	"time"

	"github.com/otakudev/anicat/internal/domain"
)

func TestBuildCharacterWhereEmptyFilter(t *testing.T) {
	where, args := buildCharacterWhere(domain.CharacterFilter{Page: 1, ItemsPerPage: 2})
	if where != "" {
		t.Fatalf("expected empty clause, got %q", where)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestBuildCharacterWhereAllFilters(t *testing.T) {
	id := int64(7)
	after := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	before := after.AddDate(1, 0, 0)

	where, args := buildCharacterWhere(domain.CharacterFilter{
		ID:            &id,
		Slug:          "rei-ayanami",
		Name:          "rei",
		Content:       "pilot",
		CreatedAfter:  &after,
		CreatedBefore: &before,
	})

	want := " WHERE c.id = $1 AND c.slug = $2 AND c.name ILIKE '%' || $3 || '%'" +
		" AND c.content ILIKE '%' || $4 || '%' AND c.created_at >= $5 AND c.created_at <= $6"
	if where != want {
		t.Fatalf("unexpected clause:\n got %q\nwant %q", where, want)
	}
	if len(args) != 6 {
		t.Fatalf("expected 6 args, got %d", len(args))
	}
	if args[0] != id || args[1] != "rei-ayanami" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildCharacterWherePartialFilter(t *testing.T) {
	where, args := buildCharacterWhere(domain.CharacterFilter{Name: "asuka"})
	if where != " WHERE c.name ILIKE '%' || $1 || '%'" {
		t.Fatalf("unexpected clause %q", where)
	}
	if len(args) != 1 || args[0] != "asuka" {
		t.Fatalf("unexpected args %v", args)
	}
}
