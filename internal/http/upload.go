package http

import (
	"net/http"
	"path/filepath"
)

// maxPortraitBytes caps the multipart form held in memory.
const maxPortraitBytes = 8 << 20

// @Summary Upload a character portrait
// @Tags characters
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Character ID"
// @Param file formData file true "Portrait image"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/characters/{id}/image [post]
func (a *API) handleUploadCharacterImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if a.Portraits == nil {
		a.respond(ctx, w, r, http.StatusServiceUnavailable, ErrorResponse{Error: "portrait storage unavailable"})
		return
	}

	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	// confirm the character exists before touching object storage
	if _, err := a.Characters.GetCharacter(ctx, id); err != nil {
		a.renderDomainError(ctx, w, r, err)
		return
	}

	if err := r.ParseMultipartForm(maxPortraitBytes); err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "invalid multipart form"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "missing file"})
		return
	}
	defer file.Close()

	fileURL, err := a.Portraits.Put(ctx, file, header.Header.Get("Content-Type"), filepath.Ext(header.Filename))
	if err != nil {
		a.Logger.ErrorContext(ctx, "portrait upload failed", "character_id", id, "err", err.Error())
		a.respond(ctx, w, r, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	character, err := a.Characters.AttachPortrait(ctx, id, fileURL)
	if err != nil {
		a.renderDomainError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusOK, UploadResponse{
		ID:      character.ID,
		FileURL: character.FileURL,
	})
}
