package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/otakudev/anicat/internal/auth"
	"github.com/otakudev/anicat/internal/domain"
	"github.com/otakudev/anicat/internal/ratelimit"
	httpSwagger "github.com/swaggo/http-swagger"
)

// PortraitStore uploads a portrait and returns its public URL.
type PortraitStore interface {
	Put(ctx context.Context, body io.Reader, contentType, ext string) (string, error)
}

type API struct {
	Logger        *slog.Logger
	DB            *pgxpool.Pool
	Authenticator auth.Authenticator
	Sessions      *auth.SessionService // nil when tokens come from an external issuer
	Accounts      domain.AccountService
	Animes        domain.AnimeService
	Characters    domain.CharacterService
	Authors       domain.AuthorService
	Tags          domain.TagService
	TypeAnimes    domain.TypeAnimeService
	Portraits     PortraitStore
	LoginLimiter  *ratelimit.Limiter
	TrustProxy    bool // honor X-Forwarded-For for rate-limit keys

	validate *validator.Validate
}

func NewAPI(logger *slog.Logger, db *pgxpool.Pool) *API {
	return &API{
		Logger:   logger,
		DB:       db,
		validate: newValidator(),
	}
}

// route is one row of the access policy: the operation, the path it
// lives on and the role it requires. An empty role means public.
type route struct {
	method   string
	pattern  string
	requires string
	handler  http.HandlerFunc
}

func (a *API) routes() []route {
	routes := []route{
		{http.MethodGet, "/healthz", "", a.handleHealthz},
		{http.MethodGet, "/readyz", "", a.handleReadyz},

		{http.MethodPost, "/api/register", "", a.handleRegister},
		{http.MethodGet, "/api/logout", domain.RoleUser, a.handleLogout},

		{http.MethodGet, "/api/animes", domain.RoleUser, a.handleListAnimes},
		{http.MethodPost, "/api/animes", domain.RoleAdmin, a.handleCreateAnime},
		{http.MethodGet, "/api/animes/{id}", domain.RoleUser, a.handleGetAnime},
		{http.MethodPut, "/api/animes/{id}", domain.RoleAdmin, a.handleUpdateAnime},
		{http.MethodDelete, "/api/animes/{id}", domain.RoleAdmin, a.handleDeleteAnime},
		{http.MethodGet, "/api/animes/{tag}/tag", domain.RoleUser, a.handleListAnimesByTag},
		{http.MethodGet, "/api/animes/{author}/author", domain.RoleUser, a.handleListAnimesByAuthor},
		{http.MethodGet, "/api/animes/{year}/firstBroadcast", domain.RoleUser, a.handleListAnimesByYear},

		{http.MethodGet, "/api/characters", domain.RoleUser, a.handleListCharacters},
		{http.MethodPost, "/api/characters", domain.RoleAdmin, a.handleCreateCharacter},
		{http.MethodGet, "/api/characters/{id}", domain.RoleUser, a.handleGetCharacter},
		{http.MethodPut, "/api/characters/{id}", domain.RoleAdmin, a.handleUpdateCharacter},
		{http.MethodDelete, "/api/characters/{id}", domain.RoleAdmin, a.handleDeleteCharacter},
		{http.MethodGet, "/api/characters/slug/{slug}", domain.RoleUser, a.handleGetCharacterBySlug},
		{http.MethodGet, "/api/characters/gender/{gender}", domain.RoleUser, a.handleListCharactersByGenre},
		{http.MethodPost, "/api/characters/{id}/image", domain.RoleAdmin, a.handleUploadCharacterImage},

		{http.MethodGet, "/api/authors", domain.RoleUser, a.handleListAuthors},
		{http.MethodPost, "/api/authors", domain.RoleAdmin, a.handleCreateAuthor},
		{http.MethodGet, "/api/authors/{id}", domain.RoleUser, a.handleGetAuthor},
		{http.MethodPut, "/api/authors/{id}", domain.RoleAdmin, a.handleUpdateAuthor},
		// historical behavior: author deletion needs only ROLE_USER
		{http.MethodDelete, "/api/authors/{id}", domain.RoleUser, a.handleDeleteAuthor},

		{http.MethodGet, "/api/tags", domain.RoleUser, a.handleListTags},
		{http.MethodPost, "/api/tags", domain.RoleAdmin, a.handleCreateTag},
		{http.MethodGet, "/api/tags/{id}", domain.RoleUser, a.handleGetTag},
		{http.MethodPut, "/api/tags/{id}", domain.RoleAdmin, a.handleUpdateTag},
		{http.MethodDelete, "/api/tags/{id}", domain.RoleAdmin, a.handleDeleteTag},

		{http.MethodGet, "/api/type_animes", domain.RoleUser, a.handleListTypeAnimes},
		{http.MethodPost, "/api/type_animes", domain.RoleAdmin, a.handleCreateTypeAnime},
		{http.MethodGet, "/api/type_animes/{id}", domain.RoleUser, a.handleGetTypeAnime},
		{http.MethodPut, "/api/type_animes/{id}", domain.RoleAdmin, a.handleUpdateTypeAnime},
		{http.MethodDelete, "/api/type_animes/{id}", domain.RoleAdmin, a.handleDeleteTypeAnime},
	}

	// local-issuer mode only: external issuers own login and refresh
	if a.Sessions != nil {
		routes = append(routes,
			route{http.MethodPost, "/api/login", "", a.handleLogin},
			route{http.MethodPost, "/api/refresh_token", "", a.handleRefreshToken},
		)
	}

	return routes
}

func (a *API) Router() http.Handler {
	mux := http.NewServeMux()

	for _, rt := range a.routes() {
		mux.HandleFunc(rt.method+" "+rt.pattern, a.requireRole(rt.requires, rt.handler))
	}
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return a.withAuth(mux)
}
