package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/otakudev/anicat/internal/domain"
)

func TestTranslateUniqueNameConstraint(t *testing.T) {
	for _, constraint := range []string{"uq_anime_name", "uq_character_name", "uq_type_anime_name"} {
		err := translateUnique(&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: constraint})
		if !errors.Is(err, domain.ErrNameTaken) {
			t.Fatalf("constraint %s: expected ErrNameTaken, got %v", constraint, err)
		}
	}
}

func TestTranslateUniqueOtherConstraint(t *testing.T) {
	err := translateUnique(&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "users_email_key"})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestTranslateUniquePassesThroughOtherErrors(t *testing.T) {
	sentinel := fmt.Errorf("boom")
	if got := translateUnique(sentinel); got != sentinel {
		t.Fatalf("expected passthrough, got %v", got)
	}

	fk := &pgconn.PgError{Code: foreignKeyViolationCode}
	if got := translateUnique(fk); got != error(fk) {
		t.Fatalf("expected passthrough for fk violation, got %v", got)
	}
	if !isForeignKeyViolation(fk) {
		t.Fatal("expected fk violation to be detected")
	}
}
