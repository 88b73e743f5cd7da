package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/otakudev/anicat/internal/domain"
)

// @Summary List characters
// @Tags characters
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param itemsPerPage query int false "Items per page"
// @Param id query int false "Exact character ID"
// @Param slug query string false "Exact slug"
// @Param name query string false "Partial name match"
// @Param content query string false "Partial content match"
// @Param createdAt[after] query string false "Created at or after (RFC3339)"
// @Param createdAt[before] query string false "Created at or before (RFC3339)"
// @Param order[id] query string false "Order by ID" Enums(asc, desc)
// @Success 200 {object} CharacterPageResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/characters [get]
func (a *API) handleListCharacters(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := characterFilterFromQuery(r)
	if err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	page, err := a.Characters.ListCharacters(ctx, filter)
	if err != nil {
		a.renderDomainError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusOK, characterPageToResponse(page))
}

// @Summary Get character by ID
// @Tags characters
// @Produce json
// @Security BearerAuth
// @Param id path int true "Character ID"
// @Success 200 {object} CharacterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/characters/{id} [get]
func (a *API) handleGetCharacter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	character, err := a.Characters.GetCharacter(ctx, id)
	if err != nil {
		a.renderDomainError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusOK, characterToResponse(character))
}

// @Summary Get character by slug
// @Tags characters
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Character slug"
// @Success 200 {object} CharacterResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/characters/slug/{slug} [get]
func (a *API) handleGetCharacterBySlug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	character, err := a.Characters.GetCharacterBySlug(ctx, r.PathValue("slug"))
	if err != nil {
		a.renderDomainError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusOK, characterToResponse(character))
}

// @Summary List characters by gender
// @Tags characters
// @Produce json
// @Security BearerAuth
// @Param gender path string true "Genre" Enums(man, woman)
// @Success 200 {array} CharacterResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/characters/gender/{gender} [get]
func (a *API) handleListCharactersByGenre(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	characters, err := a.Characters.ListCharactersByGenre(ctx, r.PathValue("gender"))
	if err != nil {
		a.renderDomainError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusOK, charactersToResponse(characters))
}

// @Summary Create character
// @Tags characters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body CharacterRequest true "Character to create"
// @Success 201 {object} CharacterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/characters [post]
func (a *API) handleCreateCharacter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	input, ok := a.decodeCharacterRequest(w, r)
	if !ok {
		return
	}

	character, err := a.Characters.CreateCharacter(ctx, input)
	if err != nil {
		a.renderDomainError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusCreated, characterToResponse(character))
}

// @Summary Update character
// @Tags characters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Character ID"
// @Param payload body CharacterRequest true "New character state"
// @Success 200 {object} CharacterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/characters/{id} [put]
func (a *API) handleUpdateCharacter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	input, ok := a.decodeCharacterRequest(w, r)
	if !ok {
		return
	}

	character, err := a.Characters.UpdateCharacter(ctx, id, input)
	if err != nil {
		a.renderDomainError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusOK, characterToResponse(character))
}

// @Summary Delete character
// @Tags characters
// @Produce json
// @Security BearerAuth
// @Param id path int true "Character ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/characters/{id} [delete]
func (a *API) handleDeleteCharacter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	if err := a.Characters.DeleteCharacter(ctx, id); err != nil {
		a.renderDomainError(ctx, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) decodeCharacterRequest(w http.ResponseWriter, r *http.Request) (domain.CharacterInput, bool) {
	ctx := r.Context()

	req, err := decode[CharacterRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return domain.CharacterInput{}, false
	}

	if err := a.validate.Struct(req); err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: validationMessage(err)})
		return domain.CharacterInput{}, false
	}

	return req.toInput(), true
}

func characterFilterFromQuery(r *http.Request) (domain.CharacterFilter, error) {
	q := r.URL.Query()
	var filter domain.CharacterFilter

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return domain.CharacterFilter{}, errBadQueryParam("page")
		}
		filter.Page = page
	}
	if raw := q.Get("itemsPerPage"); raw != "" {
		perPage, err := strconv.Atoi(raw)
		if err != nil {
			return domain.CharacterFilter{}, errBadQueryParam("itemsPerPage")
		}
		filter.ItemsPerPage = perPage
	}
	if raw := q.Get("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domain.CharacterFilter{}, errBadQueryParam("id")
		}
		filter.ID = &id
	}

	filter.Slug = q.Get("slug")
	filter.Name = q.Get("name")
	filter.Content = q.Get("content")

	if raw := q.Get("createdAt[after]"); raw != "" {
		after, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return domain.CharacterFilter{}, errBadQueryParam("createdAt[after]")
		}
		filter.CreatedAfter = &after
	}
	if raw := q.Get("createdAt[before]"); raw != "" {
		before, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return domain.CharacterFilter{}, errBadQueryParam("createdAt[before]")
		}
		filter.CreatedBefore = &before
	}

	if q.Get("order[id]") == string(domain.SortDesc) {
		filter.OrderByID = domain.SortDesc
	} else {
		filter.OrderByID = domain.SortAsc
	}

	return filter, nil
}

type badQueryParamError string

func errBadQueryParam(name string) error {
	return badQueryParamError(name)
}

func (e badQueryParamError) Error() string {
	return "invalid query parameter " + string(e)
}
