// Package main provides a standalone migration runner for environments where
// the server process does not own schema changes (CI, one-off rollbacks).
package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/TripVibes/trip-vibes-backend/config"
	"github.com/TripVibes/trip-vibes-backend/db"
)

func main() {
	down := flag.Bool("down", false, "Revert the most recent migration instead of applying pending ones")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if !cfg.Database.IsConfigured() {
		log.Fatal("Database is not configured; set DB_HOST, DB_USER, DB_PASSWORD and DB_NAME")
	}

	url := cfg.Database.URL()
	if *down {
		if err := db.RollbackMigrations(url); err != nil {
			log.Fatalf("Rollback failed: %v", err)
		}
		log.Println("Rolled back most recent migration")
		return
	}

	if err := db.RunMigrations(url); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Schema is up to date")
}
