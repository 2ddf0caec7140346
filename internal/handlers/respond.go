package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"chefpal-backend/internal/models"
	"chefpal-backend/internal/services"
)

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
		Detail: message,
	}
}

// handleServiceError maps typed service errors onto user-facing statuses.
// unavailableMsg names the failing feature; provider detail never leaves the
// logs.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error, unavailableMsg string) {
	switch e := err.(type) {
	case *services.UnavailableError:
		writeJSON(w, http.StatusServiceUnavailable, errorResp("SERVICE_UNAVAILABLE", unavailableMsg, r))
	case *services.FormatError:
		writeJSON(w, http.StatusBadGateway, errorResp("UPSTREAM_FORMAT_ERROR", e.Message, r))
	case *services.NotFoundError:
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", e.Message, r))
	case *services.ValidationError:
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", e.Message, r))
	default:
		slog.Error("unexpected error", "path", r.URL.Path, "request_id", r.Header.Get("X-Request-ID"), "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "An unexpected error occurred", r))
	}
}
