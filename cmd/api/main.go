package main

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"fountains/adapters/bitcodec"
	"fountains/adapters/postgres"
	"fountains/internal/api"
	"fountains/internal/config"
	"fountains/internal/testkit"
	"fountains/ports"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	repo, cleanup, err := initRepository(appConfig)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer cleanup()

	app := api.NewApp(repo, bitcodec.New())
	if err := app.Run(":" + appConfig.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// initRepository connects to PostgreSQL when DATABASE_URL is set and falls
// back to in-memory storage otherwise.
func initRepository(appConfig *config.Config) (ports.SpecRepository, func(), error) {
	if appConfig.Database.URL == "" {
		log.Println("DATABASE_URL not set, using in-memory storage")
		return testkit.NewInMemorySpecRepository(), func() {}, nil
	}

	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, nil, err
	}

	if err := postgres.Migrate(context.Background(), db); err != nil {
		db.Close()
		return nil, nil, err
	}

	return postgres.NewSpecRepository(db), func() { db.Close() }, nil
}
