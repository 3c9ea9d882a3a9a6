package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"dsr-service/internal/domain/repository"
	"dsr-service/internal/infrastructure/auth"
	"dsr-service/internal/usecase"
)

// errorResponse is the body of every failed request
type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

// fail maps err to a status code. Unexpected errors are logged, counted and
// returned as 500 with the error text.
func (h *Handler) fail(w http.ResponseWriter, op, notFound string, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, usecase.ErrUnknownProfile):
		writeMessage(w, http.StatusNotFound, notFound)
	case errors.Is(err, usecase.ErrInvalidPage):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		writeMessage(w, http.StatusUnauthorized, err.Error())
	default:
		h.logger.Error("Request failed", "operation", op, "error", err)
		h.metrics.ErrorsCount.WithLabelValues(op).Inc()
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}
}
