package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"matchmaker/internal/config"
	"matchmaker/internal/dataset"
	"matchmaker/internal/lookup"
	"matchmaker/internal/server"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	source, err := dataset.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open dataset source: %v", err)
	}
	defer dataset.Close(source)
	log.Printf("Dataset source: %s (match mode: %s)", source.Name(), cfg.MatchMode)

	svc := lookup.New(source, lookup.MatcherFromConfig(cfg))

	srv := server.New(cfg)
	srv.RegisterRoutes(svc)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
