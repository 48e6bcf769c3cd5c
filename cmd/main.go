package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/genai"

	"github.com/btdosparca/league-system/config"
	"github.com/btdosparca/league-system/db"
	"github.com/btdosparca/league-system/handlers"
	"github.com/btdosparca/league-system/live"
	"github.com/btdosparca/league-system/repositories"
	"github.com/btdosparca/league-system/routes"
	"github.com/btdosparca/league-system/services"
	"github.com/btdosparca/league-system/storage"
)

const (
	dbConnectTimeout = 10 * time.Second
	shutdownTimeout  = 15 * time.Second
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	database, err := db.Connect(cfg.DatabaseURL, dbConnectTimeout)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer database.Close()
	logger.Info("database connection established")

	var uploader storage.FileUploader
	if cfg.R2AccountID != "" {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
	} else {
		logger.Warn("R2 storage not configured, avatar uploads disabled")
	}

	var genaiClient *genai.Client
	if cfg.GeminiAPIKey != "" {
		genaiClient, err = genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey:  cfg.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			logger.Error("failed to initialize Gemini client", slog.Any("error", err))
			os.Exit(1)
		}
	} else {
		logger.Warn("Gemini API key not configured, team suggestions disabled")
	}

	hub := live.NewHub(logger)
	go hub.Run()

	playerRepo := repositories.NewPostgresPlayerRepository(database)
	matchRepo := repositories.NewPostgresMatchRepository(database)
	userRepo := repositories.NewPostgresUserRepository(database)

	authService := services.NewAuthService(userRepo)
	playerService := services.NewPlayerService(playerRepo, uploader, hub)
	matchService := services.NewMatchService(matchRepo, playerRepo, hub)
	rankingService := services.NewRankingService(playerRepo, matchRepo, uploader)
	importService := services.NewImportService(matchRepo, playerRepo, hub)
	suggestionService := services.NewSuggestionService(genaiClient, playerRepo, matchRepo)
	dashboardService := services.NewDashboardService(playerRepo, matchRepo)

	router := routes.SetupRoutes(routes.Handlers{
		Auth:       handlers.NewAuthHandler(authService, cfg.JWTSecretKey),
		Player:     handlers.NewPlayerHandler(playerService),
		Match:      handlers.NewMatchHandler(matchService),
		Ranking:    handlers.NewRankingHandler(rankingService),
		Import:     handlers.NewImportHandler(importService),
		Suggestion: handlers.NewSuggestionHandler(suggestionService),
		Dashboard:  handlers.NewDashboardHandler(dashboardService),
		WebSocket:  handlers.NewWebSocketHandler(hub, logger),
	}, cfg.JWTSecretKey)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  time.Minute,
	}

	shutdownErr := make(chan error, 1)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit
		logger.Info("shutting down server", slog.String("signal", s.String()))

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		shutdownErr <- server.Shutdown(ctx)
	}()

	logger.Info("starting server", slog.Int("port", cfg.ServerPort))
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}

	if err := <-shutdownErr; err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
