package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/AINative-Studio/kwanzaa-sub004/adapters/excel"
	"github.com/AINative-Studio/kwanzaa-sub004/adapters/jsonl"
	"github.com/AINative-Studio/kwanzaa-sub004/adapters/postgres"
	"github.com/AINative-Studio/kwanzaa-sub004/internal/config"
	"github.com/AINative-Studio/kwanzaa-sub004/internal/ops"
)

// Standalone ops server for a postgres-backed decision log. The in-memory
// log is process-local, so this binary requires DATABASE_URL.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Database.URL == "" {
		log.Fatalf("DATABASE_URL is required for the standalone ops server")
	}

	db, err := postgres.Connect(context.Background(), cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	repo := postgres.NewDecisionLogRepository(db)
	if err := repo.InitSchema(context.Background()); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	opsApp := ops.NewApp(repo, jsonl.NewExporter(), excel.NewWriter(), func() int64 { return 0 })
	if err := opsApp.Start(ops.Config{Port: cfg.Server.OpsPort}); err != nil {
		log.Fatalf("Ops server failed: %v", err)
	}
}
