package db

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/otakudev/anicat/internal/domain"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// uniqueViolation returns the violated constraint name when err is a
// Postgres unique-constraint error.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// isForeignKeyViolation reports whether err is a Postgres
// foreign-key error, i.e. the payload referenced a row that does not
// exist.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}

// translateUnique maps a violated catalog name index to ErrNameTaken
// and any other unique violation to ErrConflict. Non-unique errors
// pass through unchanged.
func translateUnique(err error) error {
	constraint, ok := uniqueViolation(err)
	if !ok {
		return err
	}

	switch constraint {
	case "uq_anime_name", "uq_character_name", "uq_type_anime_name":
		return domain.ErrNameTaken
	default:
		return domain.ErrConflict
	}
}
