package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"chefpal-backend/internal/models"
)

// sessionStore is the persistence contract the session endpoints rely on.
type sessionStore interface {
	List() ([]models.Session, error)
	Save(sess models.Session) error
	Delete(id string) error
}

type SessionHandler struct {
	store sessionStore
}

func NewSessionHandler(store sessionStore) *SessionHandler {
	return &SessionHandler{store: store}
}

func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.store.List()
	if err != nil {
		handleServiceError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, sessions)
}

func (h *SessionHandler) Save(w http.ResponseWriter, r *http.Request) {
	var sess models.Session
	if err := json.NewDecoder(r.Body).Decode(&sess); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if err := h.store.Save(sess); err != nil {
		handleServiceError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "Saved"})
}

func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session_id")

	if err := h.store.Delete(id); err != nil {
		handleServiceError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "Deleted"})
}
