package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/AINative-Studio/kwanzaa-sub004/adapters/excel"
	"github.com/AINative-Studio/kwanzaa-sub004/adapters/jsonl"
	"github.com/AINative-Studio/kwanzaa-sub004/adapters/memlog"
	"github.com/AINative-Studio/kwanzaa-sub004/adapters/postgres"
	"github.com/AINative-Studio/kwanzaa-sub004/app"
	"github.com/AINative-Studio/kwanzaa-sub004/internal/api"
	"github.com/AINative-Studio/kwanzaa-sub004/internal/classifier"
	"github.com/AINative-Studio/kwanzaa-sub004/internal/config"
	"github.com/AINative-Studio/kwanzaa-sub004/internal/ops"
	"github.com/AINative-Studio/kwanzaa-sub004/ports"
)

func main() {
	// .env is optional; real deployments use the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	registry, err := config.LoadRegistry(cfg.Policy)
	if err != nil {
		log.Fatalf("Failed to load policy registry: %v", err)
	}

	decisionLog, err := buildDecisionLog(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize decision log: %v", err)
	}

	service := app.NewEvaluationService(registry, classifier.NewHeuristic(), decisionLog)

	// Ops surface shares the same log sink as the evaluate API
	opsApp := ops.NewApp(decisionLog, jsonl.NewExporter(), excel.NewWriter(), service.LogFailures)
	go func() {
		if err := opsApp.Start(ops.Config{Port: cfg.Server.OpsPort}); err != nil {
			log.Fatalf("Ops server failed: %v", err)
		}
	}()

	gin.SetMode(cfg.Server.GinMode)
	router := api.NewRouter(service, registry)
	log.Printf("Evaluate API listening on :%s", cfg.Server.APIPort)
	if err := router.Run(":" + cfg.Server.APIPort); err != nil {
		log.Fatalf("API server failed: %v", err)
	}
}

// buildDecisionLog picks the postgres sink when DATABASE_URL is set, and the
// in-memory sink otherwise
func buildDecisionLog(cfg *config.Config) (ports.DecisionLogPort, error) {
	if cfg.Database.URL == "" {
		log.Printf("DATABASE_URL not set, using in-memory decision log")
		return memlog.NewAdapter(), nil
	}

	ctx := context.Background()
	db, err := postgres.Connect(ctx, cfg.Database.URL)
	if err != nil {
		return nil, err
	}
	repo := postgres.NewDecisionLogRepository(db)
	if err := repo.InitSchema(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}
