package main

import (
	"hrms-console/config"
	"hrms-console/internal/database"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

func main() {
	log.Info("Starting database seeding...")

	// Separate script, so it loads .env itself
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}

	cfg := config.Load()
	db, err := config.ConnectDB(cfg.DB)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	if err := database.SeedAll(db, time.Now()); err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Info("Seeding finished")
}
