package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"greenhire-backend/internal/domain"
	"greenhire-backend/internal/logger"
	"greenhire-backend/internal/security"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// respondError maps domain errors onto HTTP status codes. Every failure
// becomes a JSON body; nothing propagates as an uncaught fault.
func respondError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	var uploadErr *domain.UploadError
	var persistenceErr *domain.PersistenceError

	switch {
	case errors.As(err, &validationErr), errors.Is(err, domain.ErrInvalidRange):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotAuthenticated),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken):
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		respondJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidTransition):
		respondJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.As(err, &uploadErr), errors.As(err, &persistenceErr):
		respondJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
	default:
		logger.Error("Unclassified error reached the transport layer", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
