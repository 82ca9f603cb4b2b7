package main

import (
	"fmt"
	"log"
	"os"

	"github.com/marketlens/backend/config"
	httpDelivery "github.com/marketlens/backend/internal/delivery/http"
	"github.com/marketlens/backend/internal/infrastructure/history"
	"github.com/marketlens/backend/internal/infrastructure/openai"
	"github.com/marketlens/backend/internal/usecase"
)

func main() {
	// Load configuration; a missing API key is fatal before any input is accepted
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting MarketLens Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Model: %s (location bias: %s/%s)", cfg.OpenAI.Model, cfg.OpenAI.Country, cfg.OpenAI.City)

	// Initialize infrastructure dependencies
	historyStore := history.NewMemoryStore()

	modelClient := openai.NewClient(openai.Config{
		APIKey:      cfg.OpenAI.APIKey,
		BaseURL:     cfg.OpenAI.BaseURL,
		Model:       cfg.OpenAI.Model,
		Temperature: cfg.OpenAI.Temperature,
		Timeout:     cfg.OpenAI.Timeout,
		Country:     cfg.OpenAI.Country,
		City:        cfg.OpenAI.City,
	})

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		modelClient.SetDebug(true)
		log.Printf("OpenAI client debug mode enabled")
	}

	keyPreview := cfg.OpenAI.APIKey
	if len(keyPreview) > 8 {
		keyPreview = keyPreview[:8]
	}
	log.Printf("OpenAI API configured: %s (key: %s...)", cfg.OpenAI.BaseURL, keyPreview)

	// Initialize usecase layer
	searchService := usecase.NewSearchService(modelClient, historyStore)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(searchService, historyStore)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
