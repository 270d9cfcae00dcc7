package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/junhyuk/worddrill/internal/api"
	"github.com/junhyuk/worddrill/internal/catalog"
	"github.com/junhyuk/worddrill/internal/config"
	"github.com/junhyuk/worddrill/internal/db"
	"github.com/junhyuk/worddrill/internal/logger"
	"github.com/junhyuk/worddrill/internal/repository/sqlite"
	"github.com/junhyuk/worddrill/internal/scheduler"
	"github.com/junhyuk/worddrill/internal/services"
	"github.com/junhyuk/worddrill/internal/session"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("WordDrill Server Starting")
	log.Info("===========================================")
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("catalog_path=%s", cfg.CatalogPath)
	log.Debug("words_per_day=%d", cfg.WordsPerDay)
	log.Debug("review_count=%d", cfg.ReviewCount)
	log.Debug("review_cycle_days=%d", cfg.ReviewCycleDays)
	log.Debug("review_policy=%s", cfg.ReviewPolicy)
	log.Debug("log_level=%s", cfg.LogLevel)

	// Load the word catalog; a missing or malformed file is fatal.
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Error("failed to load catalog: %v", err)
		os.Exit(1)
	}
	log.Info("catalog covers %d days at %d words per day", cat.Days(cfg.WordsPerDay), cfg.WordsPerDay)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Initialize repositories
	progressRepo := sqlite.NewProgressRepository(database.DB)
	noteRepo := sqlite.NewNoteRepository(database.DB)

	// Build the session from the stored day pointer.
	startDay, err := progressRepo.LastDay(context.Background())
	if err != nil {
		log.Error("failed to read day pointer: %v", err)
		os.Exit(1)
	}
	sess := session.New(startDay)
	log.Info("session starts at day %d", startDay)

	drillService := services.NewDrillService(cat, sess, progressRepo, noteRepo, services.Options{
		WordsPerDay:     cfg.WordsPerDay,
		ReviewCount:     cfg.ReviewCount,
		ReviewCycleDays: cfg.ReviewCycleDays,
		Policy:          scheduler.ParsePolicy(cfg.ReviewPolicy),
	})

	srv := &api.Server{
		DrillService: drillService,
	}

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("WordDrill Server Stopped")
	log.Info("===========================================")
}
