// internal/handlers/respond.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/electromart/electromart-be/internal/core/domain"
)

func respondJSON(logger *slog.Logger, w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func respondError(logger *slog.Logger, w http.ResponseWriter, status int, message string) {
	respondJSON(logger, w, status, map[string]string{"error": message})
}

// respondDomainError maps service-layer errors onto HTTP statuses. Conflicts
// carry a Retry-After hint because the service has already retried once.
func respondDomainError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()

	switch {
	case domain.IsValidation(err):
		respondError(logger, w, http.StatusBadRequest, err.Error())
	case domain.IsInsufficientStock(err):
		respondError(logger, w, http.StatusUnprocessableEntity, err.Error())
	case domain.IsNotFound(err):
		respondError(logger, w, http.StatusNotFound, err.Error())
	case domain.IsConflict(err):
		w.Header().Set("Retry-After", "1")
		respondError(logger, w, http.StatusConflict, err.Error())
	default:
		logger.ErrorContext(ctx, "request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		respondError(logger, w, http.StatusInternalServerError, "Internal server error")
	}
}
