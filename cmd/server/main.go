package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/giftwise/backend/config"
	httpDelivery "github.com/giftwise/backend/internal/delivery/http"
	"github.com/giftwise/backend/internal/domain"
	"github.com/giftwise/backend/internal/infrastructure/cache"
	"github.com/giftwise/backend/internal/infrastructure/catalog"
	"github.com/giftwise/backend/internal/usecase"
)

func main() {
	// Load .env if present, then configuration
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment from .env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Giftwise Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Catalog source: %s", cfg.Catalog.Source)

	debug := cfg.Server.Environment == "development"

	// Load the catalog
	source := newCatalogSource(cfg, debug)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	products, err := source.Load(ctx)
	cancel()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("Catalog loaded: %d products", len(products))

	// Build the recommendation engine; the similarity index build is the
	// one-time O(n^2) cold-start cost.
	recommender := usecase.NewRecommendService(products, usecase.RecommendConfig{
		MaxNeighbors:       cfg.Recommender.MaxNeighbors,
		BuildWorkers:       cfg.Recommender.BuildWorkers,
		DefaultLimit:       cfg.Recommender.DefaultLimit,
		EnableDebugLogging: debug,
	})
	log.Printf("Recommender ready: neighbors=%d, default limit=%d",
		cfg.Recommender.MaxNeighbors, cfg.Recommender.DefaultLimit)

	// Response cache
	responseCache := cache.NewMemoryCache()
	log.Printf("Response cache TTL: %s", cfg.Cache.TTL)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(recommender, responseCache, cfg.Cache.TTL)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// newCatalogSource picks the configured catalog source.
func newCatalogSource(cfg *config.Config, debug bool) domain.CatalogSource {
	if cfg.Catalog.Source == "file" {
		fileSource := catalog.NewFileSource(cfg.Catalog.Path)
		fileSource.SetDebug(debug)
		return fileSource
	}
	return catalog.NewSyntheticSource(cfg.Catalog.SyntheticSize, cfg.Catalog.SyntheticSeed)
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
