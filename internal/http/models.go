package http

import (
	"fmt"
	"time"

	"github.com/otakudev/anicat/internal/domain"
)

const broadcastDateLayout = "2006-01-02"

// ErrorResponse is the envelope for resource errors.
type ErrorResponse struct {
	Error string `json:"error" example:"not found"`
}

// MessageResponse is the envelope for auth outcomes (401/403, logout).
type MessageResponse struct {
	Message string `json:"message" example:"authentication required"`
}

type RegisterRequest struct {
	Username        string `json:"username" example:"toto" validate:"required,min=3,max=255"`
	Email           string `json:"email" example:"toto@example.com" validate:"required,email,min=5,max=255"`
	Password        string `json:"password" example:"sup3rsecret" validate:"required,min=5,max=60"`
	PasswordConfirm string `json:"password_confirm" example:"sup3rsecret" validate:"required,min=5,max=60,eqfield=Password"`
}

type RegisterResponse struct {
	Username  string    `json:"username" example:"toto"`
	Email     string    `json:"email" example:"toto@example.com"`
	CreatedAt time.Time `json:"createdAt" example:"2026-08-29T15:04:05Z"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"toto@example.com" validate:"required,email"`
	Password string `json:"password" example:"sup3rsecret" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// TokenResponse carries a freshly issued token pair.
type TokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthorRequest struct {
	Name string `json:"name" example:"Hajime Isayama" validate:"required,min=3,max=255"`
	Slug string `json:"slug" example:"hajime-isayama" validate:"required,min=3,max=255,slug"`
}

type AuthorResponse struct {
	ID   int64  `json:"id" example:"1"`
	Name string `json:"name" example:"Hajime Isayama"`
	Slug string `json:"slug" example:"hajime-isayama"`
}

type TagRequest struct {
	Name string `json:"name" example:"Shonen" validate:"required,min=3,max=255"`
	Slug string `json:"slug" example:"shonen" validate:"required,min=3,max=255,slug"`
}

type TagResponse struct {
	ID   int64  `json:"id" example:"3"`
	Name string `json:"name" example:"Shonen"`
	Slug string `json:"slug" example:"shonen"`
}

type TypeAnimeRequest struct {
	Name    string `json:"name" example:"Seinen" validate:"required,min=3,max=255"`
	Slug    string `json:"slug" example:"seinen" validate:"required,min=3,max=255,slug"`
	Content string `json:"content" example:"Series aimed at an adult audience." validate:"required,min=15,max=255"`
}

type TypeAnimeResponse struct {
	ID        int64     `json:"id" example:"2"`
	Name      string    `json:"name" example:"Seinen"`
	Slug      string    `json:"slug" example:"seinen"`
	Content   string    `json:"content" example:"Series aimed at an adult audience."`
	CreatedAt time.Time `json:"createdAt" example:"2026-08-29T15:04:05Z"`
}

type AnimeRequest struct {
	Name           string  `json:"name" example:"One Piece" validate:"required,min=3,max=255"`
	Slug           string  `json:"slug" example:"one-piece" validate:"required,min=3,max=255,slug"`
	Content        string  `json:"content" example:"A pirate crew hunts the ultimate treasure." validate:"required,min=15,max=255"`
	TypeAnimeID    *int64  `json:"type_anime_id" example:"2"`
	AuthorID       *int64  `json:"author_id" example:"1"`
	TagIDs         []int64 `json:"tag_ids" example:"3"`
	FirstBroadcast string  `json:"first_broadcast" example:"1999-10-20"`
	Episodes       int32   `json:"episodes" example:"1000" validate:"required,gt=0"`
}

type AnimeResponse struct {
	ID             int64              `json:"id" example:"1"`
	Name           string             `json:"name" example:"One Piece"`
	Slug           string             `json:"slug" example:"one-piece"`
	Content        string             `json:"content" example:"A pirate crew hunts the ultimate treasure."`
	TypeAnime      *TypeAnimeResponse `json:"type_anime,omitempty"`
	Author         *AuthorResponse    `json:"author,omitempty"`
	Tags           []TagResponse      `json:"tags"`
	FirstBroadcast string             `json:"first_broadcast,omitempty" example:"1999-10-20"`
	Episodes       int32              `json:"episodes" example:"1000"`
}

type CharacterRequest struct {
	Name    string `json:"name" example:"Monkey D. Luffy" validate:"required,min=3,max=255"`
	Slug    string `json:"slug" example:"monkey-d-luffy" validate:"required,min=3,max=255,slug"`
	Content string `json:"content" example:"Rubber-bodied captain of the Straw Hats." validate:"required,min=15,max=255"`
	Genre   string `json:"genre" example:"man" validate:"required,oneof=man woman"`
	Age     int32  `json:"age" example:"19" validate:"gte=0"`
	Height  int32  `json:"height" example:"174" validate:"gte=0"`
	AnimeID *int64 `json:"anime_id" example:"1"`
}

type CharacterResponse struct {
	ID          int64          `json:"id" example:"1"`
	Name        string         `json:"name" example:"Monkey D. Luffy"`
	Slug        string         `json:"slug" example:"monkey-d-luffy"`
	Content     string         `json:"content" example:"Rubber-bodied captain of the Straw Hats."`
	Genre       string         `json:"genre" example:"man"`
	Age         int32          `json:"age" example:"19"`
	Height      int32          `json:"height" example:"174"`
	Anime       *AnimeResponse `json:"anime,omitempty"`
	FileURL     string         `json:"fileUrl,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	PublishedAt time.Time      `json:"publishedAt"`
}

// CharacterPageResponse is the paginated character listing.
type CharacterPageResponse struct {
	Items        []CharacterResponse `json:"items"`
	Total        int64               `json:"total" example:"12"`
	Page         int                 `json:"page" example:"1"`
	ItemsPerPage int                 `json:"itemsPerPage" example:"2"`
}

// UploadResponse reports where the uploaded portrait ended up.
type UploadResponse struct {
	ID      int64  `json:"id" example:"1"`
	FileURL string `json:"fileUrl" example:"https://cdn.example.com/characters/2026/08/abc.png"`
}

func authorToResponse(a domain.Author) AuthorResponse {
	return AuthorResponse{ID: a.ID, Name: a.Name, Slug: a.Slug}
}

func authorsToResponse(authors []domain.Author) []AuthorResponse {
	out := make([]AuthorResponse, 0, len(authors))
	for _, a := range authors {
		out = append(out, authorToResponse(a))
	}
	return out
}

func tagToResponse(t domain.Tag) TagResponse {
	return TagResponse{ID: t.ID, Name: t.Name, Slug: t.Slug}
}

func tagsToResponse(tags []domain.Tag) []TagResponse {
	out := make([]TagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, tagToResponse(t))
	}
	return out
}

func typeAnimeToResponse(ta domain.TypeAnime) TypeAnimeResponse {
	return TypeAnimeResponse{
		ID:        ta.ID,
		Name:      ta.Name,
		Slug:      ta.Slug,
		Content:   ta.Content,
		CreatedAt: ta.CreatedAt,
	}
}

func typeAnimesToResponse(tas []domain.TypeAnime) []TypeAnimeResponse {
	out := make([]TypeAnimeResponse, 0, len(tas))
	for _, ta := range tas {
		out = append(out, typeAnimeToResponse(ta))
	}
	return out
}

func animeToResponse(a domain.Anime) AnimeResponse {
	resp := AnimeResponse{
		ID:       a.ID,
		Name:     a.Name,
		Slug:     a.Slug,
		Content:  a.Content,
		Tags:     tagsToResponse(a.Tags),
		Episodes: a.Episodes,
	}
	if a.TypeAnime != nil {
		ta := typeAnimeToResponse(*a.TypeAnime)
		resp.TypeAnime = &ta
	}
	if a.Author != nil {
		au := authorToResponse(*a.Author)
		resp.Author = &au
	}
	if a.FirstBroadcast != nil {
		resp.FirstBroadcast = a.FirstBroadcast.Format(broadcastDateLayout)
	}
	return resp
}

func animesToResponse(animes []domain.Anime) []AnimeResponse {
	out := make([]AnimeResponse, 0, len(animes))
	for _, a := range animes {
		out = append(out, animeToResponse(a))
	}
	return out
}

func characterToResponse(c domain.Character) CharacterResponse {
	resp := CharacterResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Content:     c.Content,
		Genre:       c.Genre,
		Age:         c.Age,
		Height:      c.Height,
		FileURL:     c.FileURL,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		PublishedAt: c.PublishedAt,
	}
	if c.Anime != nil {
		anime := animeToResponse(*c.Anime)
		resp.Anime = &anime
	}
	return resp
}

func charactersToResponse(characters []domain.Character) []CharacterResponse {
	out := make([]CharacterResponse, 0, len(characters))
	for _, c := range characters {
		out = append(out, characterToResponse(c))
	}
	return out
}

func characterPageToResponse(page domain.CharacterPage) CharacterPageResponse {
	return CharacterPageResponse{
		Items:        charactersToResponse(page.Items),
		Total:        page.Total,
		Page:         page.Page,
		ItemsPerPage: page.ItemsPerPage,
	}
}

func (r AnimeRequest) toInput() (domain.AnimeInput, error) {
	input := domain.AnimeInput{
		Name:        r.Name,
		Slug:        r.Slug,
		Content:     r.Content,
		TypeAnimeID: r.TypeAnimeID,
		AuthorID:    r.AuthorID,
		TagIDs:      r.TagIDs,
		Episodes:    r.Episodes,
	}

	if r.FirstBroadcast != "" {
		date, err := time.Parse(broadcastDateLayout, r.FirstBroadcast)
		if err != nil {
			return domain.AnimeInput{}, fmt.Errorf("parse first_broadcast: %w", err)
		}
		input.FirstBroadcast = &date
	}

	return input, nil
}

func (r CharacterRequest) toInput() domain.CharacterInput {
	return domain.CharacterInput{
		Name:    r.Name,
		Slug:    r.Slug,
		Content: r.Content,
		Genre:   r.Genre,
		Age:     r.Age,
		Height:  r.Height,
		AnimeID: r.AnimeID,
	}
}

func (r AuthorRequest) toInput() domain.AuthorInput {
	return domain.AuthorInput{Name: r.Name, Slug: r.Slug}
}

func (r TagRequest) toInput() domain.TagInput {
	return domain.TagInput{Name: r.Name, Slug: r.Slug}
}

func (r TypeAnimeRequest) toInput() domain.TypeAnimeInput {
	return domain.TypeAnimeInput{Name: r.Name, Slug: r.Slug, Content: r.Content}
}
