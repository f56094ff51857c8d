package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	redisclient "github.com/smartsales/smartsales-backend/internal/clients/redis"
	"github.com/smartsales/smartsales-backend/internal/db"
	"github.com/smartsales/smartsales-backend/internal/handlers"
	"github.com/smartsales/smartsales-backend/internal/logger"
	"github.com/smartsales/smartsales-backend/internal/middleware"
	"github.com/smartsales/smartsales-backend/internal/ml/mlconfig"
	"github.com/smartsales/smartsales-backend/internal/ml/registry"
	"github.com/smartsales/smartsales-backend/internal/repos"
	"github.com/smartsales/smartsales-backend/internal/server"
	"github.com/smartsales/smartsales-backend/internal/services"
	"github.com/smartsales/smartsales-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	httpAddr := utils.GetEnv("HTTP_ADDR", ":8080", log)
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "", log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Warn("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	detalleVentaRepo := repos.NewDetalleVentaRepo(thePG, log)
	productoRepo := repos.NewProductoRepo(thePG, log)

	// Models: load once, before any traffic, then treat as immutable.
	mlCfg, err := mlconfig.Load("")
	if err != nil {
		log.Error("Could not load ML config", "error", err)
		os.Exit(1)
	}
	modelRegistry := registry.Load(mlCfg.ModelDir, log)

	// Optional recommendation cache
	var cache redisclient.Cache
	if c, err := redisclient.NewCache(log); err != nil {
		log.Warn("Recommendation cache disabled", "error", err)
	} else {
		cache = c
		defer cache.Close()
	}

	// Services
	log.Info("Setting up Services from main...")
	predictionService := services.NewPredictionService(thePG, log, modelRegistry, detalleVentaRepo, productoRepo, cache)

	// Handlers
	predictionHandler := handlers.NewPredictionHandler(predictionService)
	authMiddleware := middleware.NewAuthMiddleware(log, jwtSecretKey)

	router := server.NewRouter(server.RouterConfig{
		PredictionHandler: predictionHandler,
		AuthMiddleware:    authMiddleware,
	})

	srv := &http.Server{
		Addr:              httpAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", "addr", httpAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		log.Info("Server stopped")
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server exited", "error", err)
			os.Exit(1)
		}
	}
}
