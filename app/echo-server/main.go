package main

import (
	"context"
	"fmt"
	"log"
	"movieRadar/app/echo-server/router"
	"movieRadar/business/forecast"
	"movieRadar/business/recommend"
	"movieRadar/internal/middleware"
	"movieRadar/internal/repository/memory"
	psqlRepo "movieRadar/internal/repository/postgres"
	"movieRadar/internal/rest"
	"movieRadar/pkg/config"
	"movieRadar/pkg/database"
	"movieRadar/pkg/logger"
	"movieRadar/pkg/metrics"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting MovieRadar", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	if err := psqlRepo.SeedIfEmpty(startupCtx, db); err != nil {
		logger.Fatal("Failed to seed database", "error", err)
	}

	// Init repo
	movieRepo := psqlRepo.NewMovieRepository(db)
	ratingSeedRepo := psqlRepo.NewRatingRepository(db)
	ratingStore := memory.NewRatingRepository()
	stockSource := memory.NewStockSeriesSource()

	// Catalog snapshot, loaded once and read-only afterwards
	catalog, err := movieRepo.FindAll(startupCtx)
	if err != nil {
		logger.Fatal("Failed to load catalog", "error", err)
	}
	logger.Info("Catalog loaded", "movies", len(catalog))

	// Pre-populate the in-memory rating store with the community signal
	seedRatings, err := ratingSeedRepo.FindAll(startupCtx)
	if err != nil {
		logger.Fatal("Failed to load rating seed", "error", err)
	}
	if err := ratingStore.Load(startupCtx, seedRatings); err != nil {
		logger.Fatal("Failed to load rating store", "error", err)
	}
	logger.Info("Rating store loaded", "facts", len(seedRatings))

	// Init service
	engineCfg := recommend.Config{
		SimilarityFloor:     cfg.Engine.SimilarityFloor,
		MaxNeighbors:        cfg.Engine.MaxNeighbors,
		ContentWeight:       cfg.Engine.ContentWeight,
		CollaborativeWeight: cfg.Engine.CollaborativeWeight,
	}
	recommendService := recommend.NewService(catalog, ratingStore, engineCfg)
	forecastService := forecast.NewService(stockSource)

	// Init handler
	movieHandler := rest.NewMovieHandler(movieRepo)
	recommendationHandler := rest.NewRecommendationHandler(recommendService, ratingSeedRepo)
	forecastHandler := rest.NewForecastHandler(forecastService)

	metrics.Init()

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.Metrics())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupMovieRoutes(api, movieHandler)
	router.SetupRecommendationRoutes(api, recommendationHandler)
	router.SetupForecastRoutes(api, forecastHandler)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
