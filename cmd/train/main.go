package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/smartsales/smartsales-backend/internal/db"
	"github.com/smartsales/smartsales-backend/internal/logger"
	"github.com/smartsales/smartsales-backend/internal/ml/mlconfig"
	"github.com/smartsales/smartsales-backend/internal/ml/trainer"
	"github.com/smartsales/smartsales-backend/internal/repos"
)

// Operator-invoked batch: reads the full sale history, trains the three
// models and writes their artifacts. Single-threaded, run to completion; a
// crash mid-run means re-running the whole thing.
func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to ML config YAML (defaults to $SMARTSALES_ML_CONFIG)")
	flag.Parse()

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

	mlCfg, err := mlconfig.Load(configPath)
	if err != nil {
		log.Error("Could not load ML config", "error", err)
		os.Exit(1)
	}

	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Warn("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	detalleVentaRepo := repos.NewDetalleVentaRepo(thePG, log)
	runRepo := repos.NewEntrenamientoRunRepo(thePG, log)

	t := trainer.New(log, mlCfg, detalleVentaRepo, runRepo)
	results, err := t.Run(context.Background())
	if err != nil {
		log.Error("Training run failed", "error", err)
		os.Exit(1)
	}

	failed := 0
	for _, res := range results {
		log.Info("Model result", "role", res.Role, "status", res.Status, "rows", res.Rows, "error", res.Err)
		if res.Status == trainer.StatusFailed {
			failed++
		}
	}
	log.Info("Training run complete", "model_dir", mlCfg.ModelDir, "failed", failed)
	if failed > 0 {
		os.Exit(1)
	}
}
