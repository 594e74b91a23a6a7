package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"rentmate/internal/app"
	"rentmate/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}
	defer a.Close()

	if err := a.Serve(ctx); err != nil {
		log.Printf("server error: %v", err)
	}
}
