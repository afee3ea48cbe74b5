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

	"saathi-backend/internal/config"
	"saathi-backend/internal/handlers"
	"saathi-backend/internal/router"
	"saathi-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting Saathi Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	log.Printf("✓ Gemini client initialized (model %s)", geminiService.ModelName())

	// ──── Initialize Handlers ────
	healthHandler := handlers.NewHealthHandler(geminiService.ModelName())
	chatHandler := handlers.NewChatHandler(geminiService, cfg.GeminiTimeout, cfg.MaxBodyBytes)

	// ──── Step 3: Start HTTP Server ────
	r := router.New(healthHandler, chatHandler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.GeminiTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	idle := make(chan struct{})
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.GeminiTimeout+5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("✗ Shutdown did not finish cleanly: %v", err)
		}
		close(idle)
	}()

	log.Printf("✓ Saathi Backend ready on http://localhost:%s (%s)", cfg.Port, cfg.Env)
	log.Printf("  Chat:   POST http://localhost:%s/api/chat", cfg.Port)
	log.Printf("  Health: GET  http://localhost:%s/health", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
	<-idle
}
