package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/otakudev/anicat/internal/domain"
)

func encode[T any](w http.ResponseWriter, _ *http.Request, status int, v T) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func decode[T any](r *http.Request) (T, error) {
	var v T
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		return v, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}

func parsePathInt64(r *http.Request, key string) (int64, error) {
	return strconv.ParseInt(r.PathValue(key), 10, 64)
}

// renderDomainError maps a service error to the resource error
// envelope. Unexpected errors are logged and hidden behind a 500.
func (a *API) renderDomainError(ctx context.Context, w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	resp := ErrorResponse{Error: "internal server error"}

	switch {
	case errors.Is(err, domain.ErrNameTaken):
		status = http.StatusConflict
		resp = ErrorResponse{Error: domain.ErrNameTaken.Error()}
	case errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
		resp = ErrorResponse{Error: "resource already exists"}
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		resp = ErrorResponse{Error: "not found"}
	case errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
		resp = ErrorResponse{Error: err.Error()}
	default:
		a.Logger.ErrorContext(ctx, "unhandled service error", "err", err.Error())
	}

	if err := encode(w, r, status, resp); err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

func (a *API) respond(ctx context.Context, w http.ResponseWriter, r *http.Request, status int, v any) {
	if err := encode(w, r, status, v); err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}
