// Kura write-path server - the agent-safe write-and-read contract core.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/jonzim-cmd/kura/pkg/abuse"
	"github.com/jonzim-cmd/kura/pkg/api"
	"github.com/jonzim-cmd/kura/pkg/attest"
	"github.com/jonzim-cmd/kura/pkg/cleanup"
	"github.com/jonzim-cmd/kura/pkg/config"
	"github.com/jonzim-cmd/kura/pkg/contextbundle"
	"github.com/jonzim-cmd/kura/pkg/database"
	"github.com/jonzim-cmd/kura/pkg/services"
	"github.com/jonzim-cmd/kura/pkg/tier"
	"github.com/jonzim-cmd/kura/pkg/verify"
	"github.com/jonzim-cmd/kura/pkg/writepath"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		log.Printf("Warning: Could not load %s file: %v", envPath, err)
		log.Printf("Continuing with existing environment variables...")
	} else {
		log.Printf("Loaded environment from %s", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting Kura write-path server",
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	cfg, err := config.Initialize(*configDir)
	if err != nil {
		log.Fatalf("Failed to initialize configuration: %v", err)
	}

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to load database config: %v", err)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			log.Printf("Error closing database client: %v", err)
		}
	}()
	slog.Info("Connected to PostgreSQL; schema is current")

	// Services.
	eventService := services.NewEventService(dbClient)
	projectionService := services.NewProjectionService(dbClient)
	accessLogService := services.NewAccessLogService(dbClient)
	telemetryService := services.NewTelemetryService(dbClient)

	// Pipeline collaborators. The cooldown registry and the nonce cache
	// (inside the attestation verifier) are explicitly constructed
	// process-local singletons, owned here and passed down.
	cooldowns := abuse.NewCooldownRegistry()
	attestor := attest.NewVerifier(cfg.Process)
	tierEngine := tier.NewEngine(eventService)
	verifier := verify.NewVerifier(projectionService)
	orchestrator := writepath.NewOrchestrator(cfg, eventService, projectionService, attestor, tierEngine, verifier)
	bundles := contextbundle.NewBuilder(projectionService, eventService)

	// Retention sweeps.
	interval, err := cfg.CleanupInterval()
	if err != nil {
		log.Fatalf("Invalid cleanup interval: %v", err)
	}
	retention := cleanup.NewService(cfg.Retention, interval, accessLogService, telemetryService)
	retention.Start(ctx)
	defer retention.Stop()

	server := api.NewServer(cfg, dbClient, eventService, projectionService,
		accessLogService, telemetryService, orchestrator, bundles, cooldowns)

	slog.Info("HTTP server listening", "addr", ":"+httpPort)
	if err := server.Start(":" + httpPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
