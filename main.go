// @title Mock Test API
// @version 1.0
// @description Role-gated examination platform: admins author courses and examinations, members take them.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"github.com/Ss09shubh/mock-test/internal/app"
	"github.com/Ss09shubh/mock-test/internal/config"
	"github.com/Ss09shubh/mock-test/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migration and exit")
	migrate := flag.Bool("migrate", false, "force database migration on startup (even in release mode)")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if cfg.MigrateOnly {
		log.Println("Database migration completed, exiting")
		return
	}

	application.Run()
}
