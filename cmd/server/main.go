// Package main initializes and starts the photoboard API server,
// setting up configuration, logging, database connections, repositories,
// services, and handlers.
package main

import (
	"cmp"
	"context"
	"fmt"
	"time"

	nethttp "net/http"

	"github.com/avoronov/photoboard/internal/config"
	"github.com/avoronov/photoboard/internal/db"
	"github.com/avoronov/photoboard/internal/logger"
	"github.com/avoronov/photoboard/internal/repository"
	"github.com/avoronov/photoboard/internal/server/handler/http"
	"github.com/avoronov/photoboard/internal/service"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()
	addr := options.Port
	dbName := options.DatabaseDSN

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Initialize PostgreSQL connection.
	postgresDB, err := db.InitPostgres(dbName)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Periodically prune like ids left behind by deleted users.
	db.StartLikeCleaner(context.Background(), postgresDB,
		time.Hour, // interval
		zapLogger,
	)

	// Initialize repositories for users and cards.
	userRepo := repository.NewPostgresUserRepository(postgresDB)
	cardRepo := repository.NewPostgresCardRepository(postgresDB)

	// Initialize business-logic services.
	userService := service.NewUserService(userRepo)
	cardService := service.NewCardService(cardRepo, userRepo)

	// Create HTTP handlers for user and card endpoints.
	userHandler := &http.UserHandler{UserService: userService}
	cardHandler := &http.CardHandler{CardService: cardService}

	// Build the router with middleware and routes.
	router := http.NewRouter(userHandler, cardHandler, userRepo, zapLogger)

	server := &nethttp.Server{
		Addr:    addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
