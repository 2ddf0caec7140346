package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"chefpal-backend/internal/handlers"
	"chefpal-backend/internal/middleware"
)

func New(
	analyzeHandler *handlers.AnalyzeHandler,
	chatHandler *handlers.ChatHandler,
	sessionHandler *handlers.SessionHandler,
	frontendURL string,
	aiRequestsPerMin int,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recover)
	r.Use(middleware.CORS(frontendURL))

	// AI rate limiter (per IP)
	aiLimiter := middleware.NewRateLimiter(aiRequestsPerMin, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// ──── AI Routes ────
	r.Group(func(r chi.Router) {
		r.Use(aiLimiter.Middleware)
		r.Post("/analyze-food", analyzeHandler.AnalyzeFood)
		r.Post("/chat-bot", chatHandler.ChatBot)
	})

	// ──── Session Routes ────
	r.Route("/api/sessions", func(r chi.Router) {
		r.Get("/", sessionHandler.List)
		r.Post("/", sessionHandler.Save)
		r.Delete("/{session_id}", sessionHandler.Delete)
	})

	return r
}
