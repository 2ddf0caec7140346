package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"chefpal-backend/internal/models"
)

type ChatHandler struct {
	ai foodAssistant
}

func NewChatHandler(ai foodAssistant) *ChatHandler {
	return &ChatHandler{ai: ai}
}

func (h *ChatHandler) ChatBot(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Query is required", r))
		return
	}

	// Absent chat_history decodes to "" and needs no special casing.
	result, err := h.ai.Chat(r.Context(), req.Query, req.ChatHistory)
	if err != nil {
		handleServiceError(w, r, err, "Chat service unavailable")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
