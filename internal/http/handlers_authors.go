package http

import (
	"net/http"

	"github.com/otakudev/anicat/internal/domain"
)

// @Summary List authors
// @Tags authors
// @Produce json
// @Security BearerAuth
// @Success 200 {array} AuthorResponse
// @Router /api/authors [get]
func (a *API) handleListAuthors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	authors, err := a.Authors.ListAuthors(ctx)
	if err != nil {
		a.renderDomainError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusOK, authorsToResponse(authors))
}

// @Summary Get author by ID
// @Tags authors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Author ID"
// @Success 200 {object} AuthorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/authors/{id} [get]
func (a *API) handleGetAuthor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	author, err := a.Authors.GetAuthor(ctx, id)
	if err != nil {
		a.renderDomainError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusOK, authorToResponse(author))
}

// @Summary Create author
// @Tags authors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body AuthorRequest true "Author to create"
// @Success 201 {object} AuthorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/authors [post]
func (a *API) handleCreateAuthor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	input, ok := a.decodeAuthorRequest(w, r)
	if !ok {
		return
	}

	author, err := a.Authors.CreateAuthor(ctx, input)
	if err != nil {
		a.renderDomainError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusCreated, authorToResponse(author))
}

// @Summary Update author
// @Tags authors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Author ID"
// @Param payload body AuthorRequest true "New author state"
// @Success 200 {object} AuthorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/authors/{id} [put]
func (a *API) handleUpdateAuthor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	input, ok := a.decodeAuthorRequest(w, r)
	if !ok {
		return
	}

	author, err := a.Authors.UpdateAuthor(ctx, id, input)
	if err != nil {
		a.renderDomainError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusOK, authorToResponse(author))
}

// @Summary Delete author
// @Tags authors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Author ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/authors/{id} [delete]
func (a *API) handleDeleteAuthor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	if err := a.Authors.DeleteAuthor(ctx, id); err != nil {
		a.renderDomainError(ctx, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) decodeAuthorRequest(w http.ResponseWriter, r *http.Request) (domain.AuthorInput, bool) {
	ctx := r.Context()

	req, err := decode[AuthorRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return domain.AuthorInput{}, false
	}

	if err := a.validate.Struct(req); err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: validationMessage(err)})
		return domain.AuthorInput{}, false
	}

	return req.toInput(), true
}
