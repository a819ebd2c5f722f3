package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"loan-pricing/internal/api/handlers"
	"loan-pricing/internal/api/middleware"
	"loan-pricing/internal/registry"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}
	configPath := os.Getenv("PRICING_CONFIG")
	if configPath == "" {
		configPath = "examples/config.yaml"
	}

	// An invalid configuration is fatal: refuse to serve rather than
	// degrade silently.
	reg := registry.New(configPath)
	if err := reg.Load(); err != nil {
		log.Fatalf("Failed to load pricing config %s: %v", configPath, err)
	}
	log.Printf("Loaded pricing config from %s", configPath)

	// SIGHUP rebuilds the bundle and swaps it atomically; in-flight
	// requests keep the version they started with. A bad reload keeps the
	// previous bundle serving.
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	go func() {
		for range hup {
			if err := reg.Load(); err != nil {
				log.Printf("Config reload failed, keeping previous config: %v", err)
				continue
			}
			log.Printf("Reloaded pricing config from %s", configPath)
		}
	}()

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	quoteHandler := handlers.NewQuoteHandler(reg)
	scoreHandler := handlers.NewScoreHandler(reg)
	scorecardHandler := handlers.NewScorecardHandler(reg)
	pricingHandler := handlers.NewPricingHandler(reg)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/quote", quoteHandler.BuildQuote)
		api.POST("/quote/batch", quoteHandler.BatchQuote)
		api.POST("/score", scoreHandler.Score)

		api.GET("/scorecard", scorecardHandler.GetScorecard)
		api.GET("/pricing", pricingHandler.GetPricing)
	}

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
