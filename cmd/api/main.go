package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/contentpulse/content-api/internal/config"
	"github.com/contentpulse/content-api/internal/server"
	"github.com/contentpulse/content-api/pkg/logger"
)

// @title                      ContentPulse API
// @version                    1.0
// @description                REST API for posts (video and news) and threaded comments.
// @BasePath                   /api
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config: %v", err)
	}

	srv, db, err := server.New(cfg, log)
	if err != nil {
		log.Fatal("failed to initialize server: %v", err)
	}

	go func() {
		log.Info("server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown: %v", err)
	}

	if err := db.Close(); err != nil {
		log.Error("error closing database: %v", err)
	}

	log.Info("server exited")
}
