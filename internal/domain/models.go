package domain

import "time"

// User is a registered account. PasswordHash is a bcrypt hash and never
// leaves the domain layer.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Roles        []string
	CreatedAt    time.Time
}

// HasRole reports whether the user carries the given role identifier.
func (u User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// RefreshToken is the single server-side session record for a username.
// The refresh_tokens table keeps at most one row per username.
type RefreshToken struct {
	ID        int64
	Username  string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

type Author struct {
	ID   int64
	Name string
	Slug string
}

type Tag struct {
	ID   int64
	Name string
	Slug string
}

type TypeAnime struct {
	ID        int64
	Name      string
	Slug      string
	Content   string
	CreatedAt time.Time
}

type Anime struct {
	ID             int64
	Name           string
	Slug           string
	Content        string
	TypeAnime      *TypeAnime
	Author         *Author
	Tags           []Tag
	FirstBroadcast *time.Time
	Episodes       int32
}

type Character struct {
	ID          int64
	Name        string
	Slug        string
	Content     string
	Genre       string
	Age         int32
	Height      int32
	Anime       *Anime
	FileURL     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	PublishedAt time.Time
}

// CharacterPage is one page of a filtered character listing.
type CharacterPage struct {
	Items        []Character
	Total        int64
	Page         int
	ItemsPerPage int
}
