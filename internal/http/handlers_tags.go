package http

import (
	"net/http"

	"github.com/otakudev/anicat/internal/domain"
)

// @Summary List tags
// @Tags tags
// @Produce json
// @Security BearerAuth
// @Success 200 {array} TagResponse
// @Router /api/tags [get]
func (a *API) handleListTags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tags, err := a.Tags.ListTags(ctx)
	if err != nil {
		a.renderDomainError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusOK, tagsToResponse(tags))
}

// @Summary Get tag by ID
// @Tags tags
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tag ID"
// @Success 200 {object} TagResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/tags/{id} [get]
func (a *API) handleGetTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	tag, err := a.Tags.GetTag(ctx, id)
	if err != nil {
		a.renderDomainError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusOK, tagToResponse(tag))
}

// @Summary Create tag
// @Tags tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body TagRequest true "Tag to create"
// @Success 201 {object} TagResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/tags [post]
func (a *API) handleCreateTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	input, ok := a.decodeTagRequest(w, r)
	if !ok {
		return
	}

	tag, err := a.Tags.CreateTag(ctx, input)
	if err != nil {
		a.renderDomainError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusCreated, tagToResponse(tag))
}

// @Summary Update tag
// @Tags tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tag ID"
// @Param payload body TagRequest true "New tag state"
// @Success 200 {object} TagResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/tags/{id} [put]
func (a *API) handleUpdateTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	input, ok := a.decodeTagRequest(w, r)
	if !ok {
		return
	}

	tag, err := a.Tags.UpdateTag(ctx, id, input)
	if err != nil {
		a.renderDomainError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusOK, tagToResponse(tag))
}

// @Summary Delete tag
// @Tags tags
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tag ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/tags/{id} [delete]
func (a *API) handleDeleteTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	if err := a.Tags.DeleteTag(ctx, id); err != nil {
		a.renderDomainError(ctx, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) decodeTagRequest(w http.ResponseWriter, r *http.Request) (domain.TagInput, bool) {
	ctx := r.Context()

	req, err := decode[TagRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return domain.TagInput{}, false
	}

	if err := a.validate.Struct(req); err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: validationMessage(err)})
		return domain.TagInput{}, false
	}

	return req.toInput(), true
}
