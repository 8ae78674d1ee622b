package main

import (
	"context"
	"database/sql"
	"driver-assignment-service/internal/adapters/csvfile"
	"driver-assignment-service/internal/adapters/repositories"
	"driver-assignment-service/internal/config"
	"driver-assignment-service/internal/platform/db"
	"log"
	"time"
)

// dbtool creates the input tables and loads them from the configured CSV files.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := initAndSeed(ctx, conn, cfg); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(ctx context.Context, conn *sql.DB, cfg config.Config) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return err
	}
	log.Println("Schema ready.")

	log.Printf("Seeding database drivers=%s orders=%s routes=%s", cfg.DriversCSV, cfg.OrdersCSV, cfg.RoutesCSV)
	src := csvfile.NewSource(cfg.DriversCSV, cfg.OrdersCSV, cfg.RoutesCSV)
	if err := repositories.Seed(ctx, conn, src, src, src); err != nil {
		return err
	}
	log.Println("Seeding complete.")

	return nil
}
