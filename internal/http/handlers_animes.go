package http

import (
	"net/http"
	"strconv"

	"github.com/otakudev/anicat/internal/domain"
)

// @Summary List animes
// @Tags animes
// @Produce json
// @Security BearerAuth
// @Param order[episodes] query string false "Order by episode count" Enums(asc, desc)
// @Success 200 {array} AnimeResponse
// @Failure 401 {object} MessageResponse
// @Failure 403 {object} MessageResponse
// @Router /api/animes [get]
func (a *API) handleListAnimes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	order := domain.SortAsc
	if r.URL.Query().Get("order[episodes]") == string(domain.SortDesc) {
		order = domain.SortDesc
	}

	animes, err := a.Animes.ListAnimes(ctx, order)
	if err != nil {
		a.renderDomainError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusOK, animesToResponse(animes))
}

// @Summary Get anime by ID
// @Tags animes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Anime ID"
// @Success 200 {object} AnimeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/animes/{id} [get]
func (a *API) handleGetAnime(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	anime, err := a.Animes.GetAnime(ctx, id)
	if err != nil {
		a.renderDomainError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusOK, animeToResponse(anime))
}

// @Summary List animes carrying a tag
// @Tags animes
// @Produce json
// @Security BearerAuth
// @Param tag path string true "Tag slug"
// @Success 200 {array} AnimeResponse
// @Router /api/animes/{tag}/tag [get]
func (a *API) handleListAnimesByTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	animes, err := a.Animes.ListAnimesByTag(ctx, r.PathValue("tag"))
	if err != nil {
		a.renderDomainError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusOK, animesToResponse(animes))
}

// @Summary List animes by author
// @Tags animes
// @Produce json
// @Security BearerAuth
// @Param author path string true "Author slug"
// @Success 200 {array} AnimeResponse
// @Router /api/animes/{author}/author [get]
func (a *API) handleListAnimesByAuthor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	animes, err := a.Animes.ListAnimesByAuthor(ctx, r.PathValue("author"))
	if err != nil {
		a.renderDomainError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusOK, animesToResponse(animes))
}

// @Summary List animes first broadcast in a year
// @Tags animes
// @Produce json
// @Security BearerAuth
// @Param year path int true "Broadcast year"
// @Success 200 {array} AnimeResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/animes/{year}/firstBroadcast [get]
func (a *API) handleListAnimesByYear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	animes, err := a.Animes.ListAnimesByYear(ctx, year)
	if err != nil {
		a.renderDomainError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusOK, animesToResponse(animes))
}

// @Summary Create anime
// @Tags animes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body AnimeRequest true "Anime to create"
// @Success 201 {object} AnimeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/animes [post]
func (a *API) handleCreateAnime(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	input, ok := a.decodeAnimeRequest(w, r)
	if !ok {
		return
	}

	anime, err := a.Animes.CreateAnime(ctx, input)
	if err != nil {
		a.renderDomainError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusCreated, animeToResponse(anime))
}

// @Summary Update anime
// @Tags animes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Anime ID"
// @Param payload body AnimeRequest true "New anime state"
// @Success 200 {object} AnimeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/animes/{id} [put]
func (a *API) handleUpdateAnime(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	input, ok := a.decodeAnimeRequest(w, r)
	if !ok {
		return
	}

	anime, err := a.Animes.UpdateAnime(ctx, id, input)
	if err != nil {
		a.renderDomainError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusOK, animeToResponse(anime))
}

// @Summary Delete anime
// @Tags animes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Anime ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/animes/{id} [delete]
func (a *API) handleDeleteAnime(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	if err := a.Animes.DeleteAnime(ctx, id); err != nil {
		a.renderDomainError(ctx, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) decodeAnimeRequest(w http.ResponseWriter, r *http.Request) (domain.AnimeInput, bool) {
	ctx := r.Context()

	req, err := decode[AnimeRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return domain.AnimeInput{}, false
	}

	if err := a.validate.Struct(req); err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: validationMessage(err)})
		return domain.AnimeInput{}, false
	}

	input, err := req.toInput()
	if err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "first_broadcast must be a yyyy-mm-dd date"})
		return domain.AnimeInput{}, false
	}

	return input, true
}
