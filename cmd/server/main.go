package main

import (
	"context"
	"driver-assignment-service/internal/adapters/artifacts"
	"driver-assignment-service/internal/api"
	"driver-assignment-service/internal/app"
	"driver-assignment-service/internal/config"
	"driver-assignment-service/internal/platform/metrics"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// main is the application composition root.
// It selects the record sources and artifact store, then serves the HTTP trigger.
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

	store, closeStore, err := app.OpenArtifactStore(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeStore()

	svc, err := app.NewService(cfg, sources, artifacts.NewSink(store))
	if err != nil {
		log.Fatal(err)
	}

	metrics.RegisterDefault()
	router := api.NewRouter(svc, store, cfg.RunRatePerMin)

	log.Printf("Server listening addr=:%s source=%s", cfg.Port, cfg.Source)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped unexpectedly: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
