package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"whimsy/internal/auth"
	"whimsy/internal/config"
	"whimsy/internal/database"
	"whimsy/internal/logger"
	"whimsy/internal/server"
	"whimsy/internal/sessions"
)

func main() {
	lgr := logger.New("whimsy-api")
	logger.SetDefault(lgr)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	db, err := database.New(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("Connected to database")

	tokens := auth.NewTokenManager(cfg.TokenSecret, cfg.TokenTTL)
	authService := auth.NewService(auth.NewRepository(db), tokens, cfg.MinPasswordLength)
	authHandler := auth.NewHandler(authService)

	sessionStore := sessions.NewRepository(db)
	var sessionService *sessions.Service
	if cfg.RedisAddr != "" {
		sessionService = sessions.NewServiceWithCache(sessionStore, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	} else {
		sessionService = sessions.NewService(sessionStore)
	}
	sessionsHandler := sessions.NewHandler(sessionService)

	srv := server.New(db, authHandler, sessionsHandler, authService)
	httpServer := srv.NewHTTPServer(cfg)

	go func() {
		slog.Info("Whimsy API listening", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}

	db.Close()
	slog.Info("Stopped")
}
