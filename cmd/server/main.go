// Command server runs the mood analyzer backend: the REST API, the tab
// WebSocket and the probes.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/moodverse-backend/internal/app"
)

func main() {
	// A missing .env is fine; the environment and CONFIG_PATH still apply.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
