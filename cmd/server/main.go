package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chefpal-backend/internal/config"
	"chefpal-backend/internal/handlers"
	"chefpal-backend/internal/logging"
	"chefpal-backend/internal/repository"
	"chefpal-backend/internal/router"
	"chefpal-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting ChefPal Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Logging ────
	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("✗ Logger initialization failed: %v", err)
	}
	defer cleanup()
	logger.Info("logger ready", "level", cfg.LogLevel, "env", cfg.Env)

	// ──── Step 3: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(
		cfg.GeminiAPIKey,
		cfg.GeminiModel,
		cfg.GeminiConcurrentReqs,
		cfg.GeminiTimeoutSecs,
	)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	log.Printf("✓ Gemini client initialized (%s)", cfg.GeminiModel)

	// ──── Step 4: Initialize Session Store ────
	sessionRepo, err := repository.NewSessionRepo(cfg.SessionsDir)
	if err != nil {
		log.Fatalf("✗ Session store initialization failed: %v", err)
	}
	log.Printf("✓ Session store ready at %s", cfg.SessionsDir)

	// ──── Initialize Handlers ────
	assistant := services.NewAssistant(geminiService)
	analyzeHandler := handlers.NewAnalyzeHandler(assistant, cfg.MaxUploadBytes)
	chatHandler := handlers.NewChatHandler(assistant)
	sessionHandler := handlers.NewSessionHandler(sessionRepo)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(
		analyzeHandler,
		chatHandler,
		sessionHandler,
		cfg.FrontendURL,
		cfg.AIRequestsPerMin,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ ChefPal Backend ready on http://localhost:%s", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
