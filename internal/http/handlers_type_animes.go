package http

import (
	"net/http"

	"github.com/otakudev/anicat/internal/domain"
)

// @Summary List anime types
// @Tags type_animes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} TypeAnimeResponse
// @Router /api/type_animes [get]
func (a *API) handleListTypeAnimes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	typeAnimes, err := a.TypeAnimes.ListTypeAnimes(ctx)
	if err != nil {
		a.renderDomainError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusOK, typeAnimesToResponse(typeAnimes))
}

// @Summary Get anime type by ID
// @Tags type_animes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Type ID"
// @Success 200 {object} TypeAnimeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/type_animes/{id} [get]
func (a *API) handleGetTypeAnime(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	typeAnime, err := a.TypeAnimes.GetTypeAnime(ctx, id)
	if err != nil {
		a.renderDomainError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusOK, typeAnimeToResponse(typeAnime))
}

// @Summary Create anime type
// @Tags type_animes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body TypeAnimeRequest true "Type to create"
// @Success 201 {object} TypeAnimeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/type_animes [post]
func (a *API) handleCreateTypeAnime(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	input, ok := a.decodeTypeAnimeRequest(w, r)
	if !ok {
		return
	}

	typeAnime, err := a.TypeAnimes.CreateTypeAnime(ctx, input)
	if err != nil {
		a.renderDomainError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusCreated, typeAnimeToResponse(typeAnime))
}

// @Summary Update anime type
// @Tags type_animes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Type ID"
// @Param payload body TypeAnimeRequest true "New type state"
// @Success 200 {object} TypeAnimeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/type_animes/{id} [put]
func (a *API) handleUpdateTypeAnime(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	input, ok := a.decodeTypeAnimeRequest(w, r)
	if !ok {
		return
	}

	typeAnime, err := a.TypeAnimes.UpdateTypeAnime(ctx, id, input)
	if err != nil {
		a.renderDomainError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusOK, typeAnimeToResponse(typeAnime))
}

// @Summary Delete anime type
// @Tags type_animes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Type ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/type_animes/{id} [delete]
func (a *API) handleDeleteTypeAnime(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	if err := a.TypeAnimes.DeleteTypeAnime(ctx, id); err != nil {
		a.renderDomainError(ctx, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) decodeTypeAnimeRequest(w http.ResponseWriter, r *http.Request) (domain.TypeAnimeInput, bool) {
	ctx := r.Context()

	req, err := decode[TypeAnimeRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return domain.TypeAnimeInput{}, false
	}

	if err := a.validate.Struct(req); err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: validationMessage(err)})
		return domain.TypeAnimeInput{}, false
	}

	return req.toInput(), true
}
