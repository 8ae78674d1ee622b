package main

import (
	"context"
	"driver-assignment-service/internal/adapters/csvfile"
	"driver-assignment-service/internal/app"
	"driver-assignment-service/internal/config"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
)

// assign runs one assignment pass, writes OUTPUT_CSV and prints the driver summary.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	sources, closeSources, err := app.OpenSources(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeSources()

	svc, err := app.NewService(cfg, sources, csvfile.NewFileSink(cfg.OutputCSV))
	if err != nil {
		log.Fatal(err)
	}

	res, err := svc.Run(ctx)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Assignments written to %s (run %s)\n\n", cfg.OutputCSV, res.RunID)
	fmt.Print(res.Report.Summary())
}
