package domain

import "time"

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type AnimeInput struct {
	Name           string
	Slug           string
	Content        string
	TypeAnimeID    *int64
	AuthorID       *int64
	TagIDs         []int64
	FirstBroadcast *time.Time
	Episodes       int32
}

type CharacterInput struct {
	Name    string
	Slug    string
	Content string
	Genre   string
	Age     int32
	Height  int32
	AnimeID *int64
}

type AuthorInput struct {
	Name string
	Slug string
}

type TagInput struct {
	Name string
	Slug string
}

type TypeAnimeInput struct {
	Name    string
	Slug    string
	Content string
}

// SortOrder is a normalized asc/desc flag for list endpoints.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// CharacterFilter narrows and pages the character listing. Zero values
// mean "not filtered".
type CharacterFilter struct {
	ID            *int64
	Slug          string
	Name          string
	Content       string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	OrderByID     SortOrder
	Page          int
	ItemsPerPage  int
}
