package handlers

import (
	"bytes"
	"context"
	"errors"
	"image"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	_ "image/jpeg"
	_ "image/png"
)

// foodAssistant is the slice of the Gemini service the HTTP handlers need.
// Tests substitute a stub.
type foodAssistant interface {
	AnalyzeFood(ctx context.Context, img []byte, format string) (map[string]interface{}, error)
	Chat(ctx context.Context, query, chatHistory string) (map[string]interface{}, error)
}

type AnalyzeHandler struct {
	ai             foodAssistant
	maxUploadBytes int
}

func NewAnalyzeHandler(ai foodAssistant, maxUploadBytes int) *AnalyzeHandler {
	return &AnalyzeHandler{ai: ai, maxUploadBytes: maxUploadBytes}
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

func (h *AnalyzeHandler) AnalyzeFood(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(int64(h.maxUploadBytes)); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid multipart form", r))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Image file required", r))
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		writeJSON(w, http.StatusBadRequest, errorResp("UNSUPPORTED_MEDIA_TYPE", "Only JPG/PNG images allowed", r))
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, int64(h.maxUploadBytes)+1))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("INVALID_IMAGE", "Failed to read image file", r))
		return
	}
	if len(data) > h.maxUploadBytes {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Image exceeds maximum upload size", r))
		return
	}

	// The raw bytes go to the model; decoding only proves they are a real image.
	_, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			writeJSON(w, http.StatusBadRequest, errorResp("INVALID_IMAGE", "Invalid image file", r))
		} else {
			writeJSON(w, http.StatusBadRequest, errorResp("INVALID_IMAGE", "Image processing error: "+err.Error(), r))
		}
		return
	}

	result, err := h.ai.AnalyzeFood(r.Context(), data, format)
	if err != nil {
		handleServiceError(w, r, err, "Food analysis service unavailable")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
