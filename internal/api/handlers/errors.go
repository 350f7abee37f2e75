package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/chj1210/investigator/internal/api/httpx"
	"github.com/chj1210/investigator/internal/services"
	"github.com/chj1210/investigator/internal/validate"
)

// uuidParam extracts a uuid path parameter. A malformed id cannot
// reference any row, so callers treat it as not found rather than letting
// it reach the store as an encode error.
func uuidParam(r *http.Request, name string) (string, bool) {
	id := chi.URLParam(r, name)
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// writeErr translates service errors into the API error envelope.
func writeErr(w http.ResponseWriter, err error) {
	var verrs validate.Errs
	switch {
	case errors.As(err, &verrs):
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeValidation, "validation failed", verrs)
	case errors.Is(err, services.ErrCaseNotFound):
		httpx.WriteError(w, http.StatusNotFound, httpx.CodeNotFound, "case not found", nil)
	case errors.Is(err, services.ErrTransactionNotFound):
		httpx.WriteError(w, http.StatusNotFound, httpx.CodeNotFound, "transaction not found", nil)
	default:
		slog.Error("request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, httpx.CodeInternal, "internal error", nil)
	}
}
