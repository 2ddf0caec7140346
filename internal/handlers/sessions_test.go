package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chefpal-backend/internal/models"
	"chefpal-backend/internal/services"
)

type stubStore struct {
	sessions []models.Session
	saveErr  error
	delErr   error
	listErr  error
	saved    *models.Session
	deleted  string
}

func (s *stubStore) List() ([]models.Session, error) {
	return s.sessions, s.listErr
}

func (s *stubStore) Save(sess models.Session) error {
	s.saved = &sess
	return s.saveErr
}

func (s *stubStore) Delete(id string) error {
	s.deleted = id
	return s.delErr
}

func TestSessionList(t *testing.T) {
	store := &stubStore{sessions: []models.Session{
		{ID: "a", Name: "first", Messages: []models.Message{{User: "hi", Bot: "hello"}}},
		{ID: "b", Name: "second"},
	}}
	h := NewSessionHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
	rr := httptest.NewRecorder()

	h.List(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var got []models.Session
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, store.sessions, got)
}

func TestSessionListEmptyIsJSONArray(t *testing.T) {
	h := NewSessionHandler(&stubStore{sessions: []models.Session{}})

	req := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
	rr := httptest.NewRecorder()

	h.List(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestSessionSave(t *testing.T) {
	store := &stubStore{}
	h := NewSessionHandler(store)

	body := `{"id":"s1","name":"Dinner","messages":[{"user":"hi","bot":"hello"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/sessions", bytes.NewReader([]byte(body)))
	rr := httptest.NewRecorder()

	h.Save(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"Saved"}`, rr.Body.String())
	require.NotNil(t, store.saved)
	assert.Equal(t, "s1", store.saved.ID)
	assert.Equal(t, "Dinner", store.saved.Name)
}

func TestSessionSaveInvalidBody(t *testing.T) {
	h := NewSessionHandler(&stubStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/sessions", bytes.NewReader([]byte("not json")))
	rr := httptest.NewRecorder()

	h.Save(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSessionSaveInvalidID(t *testing.T) {
	h := NewSessionHandler(&stubStore{saveErr: &services.ValidationError{Message: "Invalid session id"}})

	req := httptest.NewRequest(http.MethodPost, "/api/sessions", bytes.NewReader([]byte(`{"id":"../x","name":"n"}`)))
	rr := httptest.NewRecorder()

	h.Save(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeError(t, rr).Error.Code)
}

func TestSessionDeleteNotFound(t *testing.T) {
	h := NewSessionHandler(&stubStore{delErr: &services.NotFoundError{Message: "Session not found"}})

	req := httptest.NewRequest(http.MethodDelete, "/api/sessions/missing", nil)
	rr := httptest.NewRecorder()

	h.Delete(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	resp := decodeError(t, rr)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	assert.Equal(t, "Session not found", resp.Detail)
}
